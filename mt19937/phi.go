// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mt19937

// φ(t), the characteristic polynomial of the MT19937 recurrence, has
// degree 19937 and 135 nonzero terms. phiBitPos lists the exponents of the
// 134 terms below the leading one, in increasing order.
var phiBitPos = [134]uint32{
	0, 1189, 1416, 1585, 1643, 1870, 2493, 2773,
	3000, 3227, 3454, 3681, 3908, 4135, 4362, 4753,
	5661, 6337, 6569, 7129, 7477, 7525, 7583, 7752,
	7979, 8206, 9505, 9901, 9969, 10128, 10693, 10761,
	10920, 11089, 11147, 11157, 11215, 11321, 11374, 11384,
	11485, 11611, 11712, 11717, 11838, 11881, 11944, 11997,
	12277, 12335, 12393, 12504, 12509, 12620, 12673, 12731,
	12736, 12789, 12905, 12958, 12963, 13137, 13185, 13190,
	13243, 13301, 13412, 13528, 13533, 13639, 13697, 13760,
	13813, 13866, 14093, 14151, 14209, 14320, 14325, 14436,
	14547, 14552, 14605, 14721, 14774, 14779, 14953, 15001,
	15006, 15059, 15117, 15228, 15344, 15349, 15455, 15513,
	15576, 15629, 15682, 15909, 15967, 16025, 16136, 16141,
	16252, 16363, 16368, 16421, 16537, 16590, 16595, 16817,
	16822, 16875, 16933, 17044, 17160, 17271, 17329, 17445,
	17498, 17725, 17783, 17841, 17952, 18068, 18179, 18237,
	18406, 18633, 18691, 18860, 19087, 19314,
}

// phiBlockPos partitions the reducible bit range [19937, 39936) into 33
// blocks, bottom positions in decreasing order with the exclusive top
// first. Every block is shorter than the 623-bit gap between the two
// highest terms of φ.
var phiBlockPos = [34]uint32{
	39936, 39329, 38723, 38117, 37511, 36905, 36299, 35693,
	35087, 34481, 33875, 33269, 32663, 32057, 31451, 30845,
	30239, 29633, 29027, 28421, 27815, 27209, 26603, 25997,
	25391, 24785, 24179, 23573, 22967, 22361, 21755, 21149,
	20543, 19937,
}
