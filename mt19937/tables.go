// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mt19937

// jumpPoly[i][j] is t^((j+1)·8^i) mod φ(t) for i ∈ [0, 20] and j ∈ [0, 6],
// stored as 624 little-endian 32-bit words. Together the entries compose
// any jump of up to 8²¹−1 = 2⁶³−1 positions from the octal digits of the
// step count.
var jumpPoly = [21][7][624]uint32{
	{
		{
			0x00000002, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000004, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000008, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000010, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000020, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000040, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000080, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
	},
	{
		{
			0x00000100, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00010000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x01000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000100, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00010000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x01000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
	},
	{
		{
			0x00000000, 0x00000000, 0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
	},
	{
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
	},
	{
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x80000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000010, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000080, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00010000, 0x00000000, 0x00000400, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00002000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x10000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00100000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00800000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x04000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x20000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000008, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000040, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000200, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00010000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x10000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000001,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000100, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x01000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00100000, 0x00000000, 0x00000010, 0x40000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000080, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000400, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00002000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000001, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00001000, 0x00000000,
			0x00010000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00008000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000010,
			0x00000000, 0x00000100, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000080, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00010000, 0x00000000, 0x00100400, 0x00000000, 0x00004000,
			0x00000000, 0x00000000, 0x01000000, 0x00000000, 0x00802000, 0x00000000, 0x00000000, 0x10000000,
			0x00000000, 0x00000000, 0x00000000, 0x04000000, 0x00000000, 0x00000000, 0x80000000, 0x00000010,
			0x00000000, 0x00000000, 0x20000000, 0x00000000, 0x00000100, 0x00000000, 0x00000080, 0x10000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00100000, 0x00000000, 0x00004000, 0x00000000, 0x00000100, 0x00000000, 0x00000000, 0x10800000,
			0x00000000, 0x00000000, 0x00000000, 0x00000800, 0x00000000, 0x00000001, 0x84000000, 0x00000000,
			0x00100000, 0x00000000, 0x00000000, 0x00000000, 0x00000100, 0x20000000, 0x00000004, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00010000, 0x00000000, 0x00000021, 0x04000000, 0x00000000,
			0x00100000, 0x00000000, 0x00000000, 0x00000000, 0x00000008, 0x00000000, 0x00000000, 0x10800000,
			0x00000000, 0x00000000, 0x00000000, 0x00000040, 0x00000000, 0x00000001, 0x80000000, 0x00000000,
			0x00100000, 0x00000000, 0x00000200, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00001000, 0x00000000, 0x00000040, 0x00000000, 0x00000001, 0x00000000, 0x00000000,
			0x00108000, 0x00000000, 0x00000000, 0x00000000, 0x00000008, 0x00000000, 0x00000000, 0x00840000,
			0x00000000, 0x00001000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x04200000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000100, 0x21000000, 0x00000000, 0x00040000,
			0x00000000, 0x00001000, 0x00000000, 0x00000000, 0x08000000, 0x00000000, 0x00000000, 0x00000000,
			0x00108000, 0x00000000, 0x00000000, 0x40000000, 0x00000000, 0x01000000, 0x00000000, 0x00800000,
			0x00000000, 0x00001000, 0x00000000, 0x00000002, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000010, 0x40000000, 0x00000000, 0x01000000, 0x00000000, 0x00000000,
			0x00000000, 0x00001080, 0x00000000, 0x00000000, 0x08000000, 0x00000000, 0x00000000, 0x00000000,
			0x00008400, 0x00000000, 0x00000010, 0x00000000, 0x00000000, 0x01000000, 0x00000000, 0x00042000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00210000, 0x00000000,
			0x00000400, 0x00000000, 0x00000010, 0x00000000, 0x00000000, 0x00080000, 0x00000000, 0x00000000,
			0x00000000, 0x00000080, 0x00000000, 0x00000000, 0x00400000, 0x00000000, 0x00010000, 0x00000000,
			0x00000000, 0x00000000, 0x00000010, 0x02000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x10000000, 0x00000000, 0x00400000, 0x00000000, 0x00010000, 0x00000000,
			0x00000000, 0x80000000, 0x00000000, 0x00000000, 0x00000000, 0x00080000, 0x00000000, 0x00000000,
			0x00000000, 0x00000004, 0x10000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000020, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000100,
			0x00000000, 0x00000004, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000800, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00004000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00020000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x20000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x80000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000008, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000040, 0x00000000, 0x00000020, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000200, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00001000, 0x00000000, 0x00000004, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00008000,
			0x00000000, 0x00000000, 0x00000000, 0x00000010, 0x00000000, 0x00000000, 0x00044000, 0x00000000,
			0x00000100, 0x00000000, 0x00000080, 0x00000000, 0x00000000, 0x00220000, 0x00000000, 0x00010000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x01100000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x08800000, 0x00000000, 0x00400000, 0x00000000, 0x00010000,
			0x00000000, 0x00000000, 0x40000000, 0x00000000, 0x00000000, 0x00000000, 0x00080000, 0x00000000,
			0x00000000, 0x00000000, 0x00000002, 0x10040000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000010, 0x00000000, 0x00000000, 0x00100000, 0x00000000, 0x00000000, 0x00000000,
			0x00000080, 0x01000000, 0x00000004, 0x00800000, 0x00000000, 0x00000000, 0x00000000, 0x00000400,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00002000, 0x40000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00010000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000010, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x80000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00004000, 0x00000000, 0x00000000, 0x00000000, 0x00001000, 0x00000000, 0x00000000,
			0x00020000, 0x00000000, 0x00010000, 0x00000000, 0x00008000, 0x00000000, 0x00000000, 0x00100000,
			0x00000000, 0x01000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00800000, 0x00000000,
			0x00400000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x40000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x10000000, 0x00000000,
			0x00000000, 0x00000000, 0x00010000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x40000000, 0x00000000, 0x00000000, 0x00000004, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000042, 0x00000000, 0x00000001, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000210, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x10000000, 0x00000000,
			0x00001080, 0x00000000, 0x00000040, 0x00400000, 0x00000000, 0x00000000, 0x00000000, 0x00108400,
			0x00000000, 0x00000000, 0x02000000, 0x00000000, 0x01000000, 0x00000000, 0x00802000, 0x00000000,
			0x00000004, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x04010000, 0x00000000, 0x00000000,
			0x00000000, 0x00000010, 0x00000000, 0x00000000, 0x20080000, 0x00000000, 0x00000100, 0x00000000,
			0x00000080, 0x00000000, 0x00000000, 0x00400000, 0x00000001, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000010, 0x02000000, 0x00000008, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x10000000, 0x00000040, 0x00000000, 0x00000000, 0x00010000, 0x00000000, 0x00000000,
			0x80000000, 0x00000210, 0x00000000, 0x00000000, 0x00080000, 0x00000000, 0x00000000, 0x00000000,
			0x00000084, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00010000, 0x00000000, 0x00000420,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x40000000, 0x00002100, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000802, 0x00000000, 0x00000001,
			0x00000000, 0x00000000, 0x00000400, 0x00000000, 0x00000010, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x10000000, 0x00000000, 0x00001080, 0x00000000, 0x00010040, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00108400, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x10842000, 0x00000000, 0x00400004, 0x00000000, 0x00000040, 0x00000000, 0x00000001,
			0x84210000, 0x00000000, 0x00000000, 0x00000000, 0x00000210, 0x00000000, 0x00000000, 0x20084000,
			0x00000004, 0x00040100, 0x00000000, 0x00001080, 0x00000000, 0x00000000, 0x00020000, 0x00000021,
			0x00010000, 0x00000000, 0x00108000, 0x04000000, 0x00000000, 0x00100000, 0x00000008, 0x00000000,
			0x00000000, 0x00800000, 0x00000000, 0x00000004, 0x10800000, 0x00000040, 0x00400000, 0x00000000,
			0x00010040, 0x00000000, 0x00000000, 0x80000000, 0x00000200, 0x40000000, 0x00000000, 0x00080200,
			0x00000000, 0x00000100, 0x00000000, 0x00001004, 0x10040000, 0x00000000, 0x00000000, 0x00000001,
			0x00000040, 0x00000000, 0x00008020, 0x04000000, 0x00000000, 0x00100000, 0x00000008, 0x00000000,
			0x40000000, 0x00040100, 0x01000000, 0x00000004, 0x10840000, 0x00000000, 0x00000000, 0x00000000,
			0x00200842, 0x00000000, 0x00000000, 0x80200000, 0x00000000, 0x00000000, 0x00000000, 0x01000210,
			0x40000000, 0x00000100, 0x00000000, 0x00000000, 0x00040000, 0x00000000, 0x08001080, 0x00000000,
			0x00010040, 0x00000000, 0x00000000, 0x04000000, 0x00000000, 0x40108400, 0x00000000, 0x00004010,
			0x40000000, 0x00000100, 0x00000000, 0x00000000, 0x10802000, 0x00000002, 0x00400000, 0x00000000,
			0x00000802, 0x00000000, 0x00000000, 0x84010000, 0x00000000, 0x00100400, 0x00000000, 0x00000000,
			0x40000000, 0x00000000, 0x20080000, 0x00000004, 0x00040000, 0x00000000, 0x00001000, 0x00000000,
			0x00010000, 0x00400000, 0x00000021, 0x04010000, 0x00000000, 0x00108400, 0x00000000, 0x00000000,
			0x42000000, 0x00000008, 0x00000000, 0x00000000, 0x10802000, 0x00000000, 0x00000000, 0x10000000,
			0x00000002, 0x00400000, 0x00000001, 0x80000000, 0x00000000, 0x00000400, 0x80000000, 0x00000010,
			0x40000000, 0x00000100, 0x00000000, 0x00000000, 0x00040000, 0x00000000, 0x00001084, 0x10000000,
			0x00000040, 0x00400000, 0x00000001, 0x00000000, 0x00000000, 0x00008020, 0x00000000, 0x00004000,
			0x02000000, 0x00000008, 0x00000000, 0x00000000, 0x00040100, 0x00000000, 0x00001004, 0x00000000,
			0x00000000, 0x00400000, 0x00000000, 0x00200800, 0x00000000, 0x00000400, 0x00000000, 0x00000010,
			0x00000000, 0x00000000, 0x01004000, 0x00000000, 0x00040100, 0x00000000, 0x00001084, 0x00000000,
			0x00000000, 0x08420000, 0x00000000, 0x00000000, 0x00000000, 0x00008020, 0x00000000, 0x00000000,
			0x42100000, 0x00000000, 0x01004000, 0x00000000, 0x00000000, 0x00000000, 0x00000004, 0x10800000,
			0x00000002, 0x00400000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x84000000, 0x00000000,
			0x40100000, 0x00000000, 0x01004000, 0x00000000, 0x00000000, 0x20000000, 0x00000000, 0x00000000,
			0x00000000, 0x08020000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x04000000, 0x00000010,
			0x00000000, 0x00000000, 0x00004000, 0x00000000, 0x00000008, 0x00000000, 0x00000000, 0x10000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000040, 0x00000000, 0x00000401, 0x84000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000200, 0x00000000, 0x00000100, 0x20000000, 0x00000000, 0x00000000,
			0x00000000, 0x00001000, 0x00000000, 0x00000040, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00008000, 0x00000000, 0x00004000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00040000,
			0x00000000, 0x00001000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00200000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000100, 0x01000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x08000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x00000000, 0x00000000, 0x00000000, 0x00800000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x80000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00008000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00080000, 0x00000000, 0x00800000, 0x00000000, 0x00000000, 0x00000000, 0x00000800,
			0x10400000, 0x00000000, 0x00200000, 0x00000000, 0x00000000, 0x80000000, 0x00000000, 0x82000000,
			0x00000018, 0x20000000, 0x00000000, 0x00000000, 0x00000000, 0x00000100, 0x10000000, 0x000000c4,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00018000, 0x80000000, 0x00000620, 0x00000000,
			0x00000008, 0x00100000, 0x00000000, 0x00000000, 0x00000000, 0x00003004, 0x01000000, 0x00000000,
			0x10800000, 0x00000000, 0x00000000, 0x00000000, 0x00018020, 0x00000000, 0x00000201, 0x80000000,
			0x00000000, 0x00100000, 0x00000000, 0x000c0100, 0x40000000, 0x00000080, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00601800, 0x00000000, 0x00000040, 0x00000000, 0x00000001, 0x00010000,
			0x00000000, 0x0310c000, 0x00000000, 0x00002000, 0x00000000, 0x00000008, 0x00000000, 0x00000000,
			0x00860000, 0x00000000, 0x00001000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x04300000,
			0x00000000, 0x00000000, 0x00000000, 0x00000010, 0x00000000, 0x00000180, 0x21800000, 0x00000000,
			0x00040100, 0x00000000, 0x00000080, 0x10000000, 0x00000000, 0x0c000000, 0x00000000, 0x00000000,
			0x00000000, 0x00100000, 0x00000000, 0x00000000, 0x60100000, 0x00000000, 0x00004000, 0x00000000,
			0x00800000, 0x00000000, 0x00001000, 0x00800000, 0x00000003, 0x80000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x04000000, 0x00000018, 0x00100000, 0x00000000, 0x00000000, 0x00000000,
			0x00000100, 0x20000000, 0x000010c0, 0x00000000, 0x00000020, 0x00000000, 0x00000000, 0x00010000,
			0x00000000, 0x00008601, 0x04000000, 0x00000000, 0x00000000, 0x00000000, 0x01000000, 0x00000000,
			0x00043008, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00218040,
			0x00000000, 0x00000001, 0x00000000, 0x00000000, 0x00100000, 0x00000000, 0x000c0210, 0x00000000,
			0x00000100, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00600080, 0x00000000, 0x00000040,
			0x00000000, 0x00000000, 0x00010000, 0x00000010, 0x03100400, 0x00000000, 0x00004000, 0x00000000,
			0x00000000, 0x01000000, 0x00000000, 0x18802000, 0x00000000, 0x00001000, 0x00000000, 0x00000000,
			0x00000000, 0x00000001, 0xc4000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x20000000, 0x00000006, 0x00040000, 0x00000000, 0x00000000, 0x10000000, 0x00000000,
			0x00000000, 0x00000030, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00100000,
			0x00000180, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00001000, 0x00800000, 0x00000c00,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x04000000, 0x00006000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x20000000, 0x00030000, 0x00000000, 0x00000000,
			0x00001000, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x00000000, 0x00000000, 0x00108000,
			0x00000000, 0x00000000, 0x00000000, 0x00000008, 0x00000000, 0x00000000, 0x00800000, 0x00000000,
			0x80000000, 0x00000001, 0x00000040, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000210, 0x00000000, 0x00000100, 0x00000000, 0x00001000, 0x00000000, 0x00000000,
			0x00001080, 0x00000000, 0x00000000, 0x00000000, 0x00008001, 0x00000000, 0x00000000, 0x00108400,
			0x00000000, 0x00004000, 0x00000000, 0x00000008, 0x01000000, 0x00000000, 0x00842000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x04200000, 0x00000010, 0x00000000,
			0x00000000, 0x00000010, 0x00000000, 0x00000100, 0x21000000, 0x00000080, 0x00000000, 0x00000000,
			0x00000080, 0x00000000, 0x00010000, 0x08000000, 0x00000400, 0x00010000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x40100000, 0x00002000, 0x01000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00800000, 0x00000002, 0x00400000, 0x00000001, 0x00000000, 0x00000000, 0x00000000,
			0x04000000, 0x00000010, 0x40000000, 0x00000000, 0x00000000, 0x00000000, 0x10000100, 0x20000000,
			0x00000080, 0x00000000, 0x00000040, 0x00001000, 0x00000000, 0x00010000, 0x00000000, 0x00100401,
			0x00000000, 0x00000010, 0x00008000, 0x00000000, 0x01000000, 0x00000000, 0x00802008, 0x01000000,
			0x00000000, 0x10000000, 0x00000000, 0x00000000, 0x00000000, 0x04010040, 0x00000000, 0x00000400,
			0x80000000, 0x00000010, 0x00100000, 0x00000000, 0x20080200, 0x40000000, 0x00000100, 0x00000000,
			0x00000080, 0x00000000, 0x00000000, 0x00400000, 0x00000001, 0x00010000, 0x00000000, 0x00000000,
			0x00000000, 0x00000010, 0x02000000, 0x00000008, 0x01004000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x10000000, 0x00000040, 0x00400000, 0x00000000, 0x00010000, 0x00000000, 0x00000001,
			0x80000000, 0x00000200, 0x40000000, 0x00000000, 0x00080000, 0x00000000, 0x00000100, 0x00000000,
			0x00000004, 0x10000000, 0x00000000, 0x00000000, 0x00000000, 0x00010000, 0x00000000, 0x00000020,
			0x00000000, 0x00000000, 0x00100000, 0x00000000, 0x00000000, 0x00000000, 0x00000100, 0x00000000,
			0x00000004, 0x00800000, 0x00000000, 0x00001000, 0x00000000, 0x00000800, 0x00000000, 0x00000001,
			0x00000000, 0x00000000, 0x00000001, 0x00000000, 0x00004000, 0x00000000, 0x00000100, 0x00000000,
			0x00000000, 0x10000000, 0x00000000, 0x00020000, 0x00000000, 0x00010040, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00004000, 0x00000000, 0x00000000, 0x01000000,
			0x00000000, 0x00000000, 0x00000000, 0x00400000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00100000, 0x00000000, 0x00000000, 0x00000000, 0x00000100, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x04000000, 0x00000000, 0x00000000, 0x00000000, 0x00000010, 0x00000000, 0x00000000, 0x01000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000001,
			0x00000000, 0x00000000, 0x00100000, 0x00000000, 0x00000010, 0x40000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000080, 0x00000000, 0x00000040, 0x00000000, 0x00000000,
			0x00010000, 0x00000000, 0x00000400, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00002000, 0x00000000, 0x00001000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00040000, 0x00000000, 0x00000000, 0x10000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00100000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00800000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x04000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x20000000, 0x00000000, 0x00000000, 0x00000000, 0x00001000, 0x00000000,
			0x00000000, 0x00000000, 0x00000001, 0x00000000, 0x00000000, 0x00008000, 0x00000000, 0x00000000,
			0x00000000, 0x00000008, 0x01000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000040, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000200,
			0x40000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
	},
	{
		{
			0x00000000, 0x00000000, 0x00400000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x80000000,
			0x00000000, 0x00000000, 0x00000000, 0x00080000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000020, 0x80000000,
			0x00000000, 0x00008000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000004,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000800, 0x00000000, 0x00000000, 0x08000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000010, 0x40000000, 0x00000000,
			0x01000000, 0x00000000, 0x00020080, 0x00000000, 0x00000000, 0x08000000, 0x00000002, 0x08000000,
			0x00000000, 0x00010000, 0x00000000, 0x00000000, 0x00000000, 0x00000010, 0x40180000, 0x00000000,
			0x00002000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00c00000, 0x00000002, 0x00400000,
			0x00000000, 0x00010000, 0x80000000, 0x00000001, 0x06000000, 0x00000000, 0x00080000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x30000000, 0x00000000, 0x00000000, 0x00000000, 0x00001000,
			0x00000000, 0x00000800, 0x80000000, 0x00000001, 0x02000000, 0x00000000, 0x00108000, 0x00000000,
			0x00004000, 0x00000000, 0x0000010c, 0x00800000, 0x00000000, 0x00800000, 0x00000000, 0x00020000,
			0x00000000, 0x00000860, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00004310, 0x20000000, 0x00000100, 0x00000000, 0x00000000, 0x00800000, 0x00000000, 0x00020080,
			0x00000000, 0x00000000, 0x00000000, 0x00000001, 0x04010000, 0x00000000, 0x00100400, 0x00000000,
			0x00004000, 0x00000000, 0x00000008, 0x21800000, 0x00000000, 0x00802000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x80000000, 0x00000001, 0x04000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000010, 0x00000000, 0x00000000, 0x20000000, 0x00000000, 0x00000000, 0x00000000, 0x00001000,
			0x10000000, 0x00000000, 0x00000000, 0x00000000, 0x00018000, 0x00000000, 0x00008000, 0x00000000,
			0x00000010, 0x00180000, 0x00000000, 0x00800000, 0x00000000, 0x00000000, 0x00000000, 0x00001800,
			0x10c00000, 0x00000000, 0x00600000, 0x00000000, 0x00010000, 0x80000000, 0x00000001, 0x86000000,
			0x00000018, 0x20000000, 0x00000000, 0x01000000, 0x00000000, 0x00000100, 0x30000000, 0x000000c4,
			0x00000000, 0x00000000, 0x08001000, 0x00000000, 0x00008000, 0x80000000, 0x00000621, 0x00000000,
			0x00000008, 0x00008000, 0x00000000, 0x00000000, 0x00000000, 0x0000300c, 0x00000000, 0x00000000,
			0x00800000, 0x00000000, 0x00000000, 0x00000000, 0x00018060, 0x00000000, 0x00000201, 0x80000000,
			0x00000000, 0x00000000, 0x00000000, 0x000c0310, 0x00000000, 0x00000080, 0x00000000, 0x00000000,
			0x10000000, 0x00000000, 0x00601880, 0x00000000, 0x00000040, 0x00000000, 0x00000001, 0x00010000,
			0x00000000, 0x03104400, 0x00000000, 0x00002000, 0x00000000, 0x00000108, 0x01000000, 0x00000000,
			0x00862000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x08000000, 0x00000001, 0x04100000,
			0x00000000, 0x00000000, 0x00000000, 0x00000010, 0x40000000, 0x00000080, 0x21800000, 0x00000000,
			0x00000000, 0x00000000, 0x00000080, 0x10000000, 0x00000002, 0x0c000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x60100000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00001000, 0x00800000, 0x00000003, 0x80000000, 0x00000001, 0x00000000,
			0x00000000, 0x00000000, 0x04000000, 0x00000018, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x20000000, 0x000010c0, 0x00000000, 0x00000060, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00008601, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x01000000, 0x00000000,
			0x00043008, 0x01000000, 0x00000000, 0x10800000, 0x00000000, 0x00000000, 0x00000000, 0x00218040,
			0x00000000, 0x00000001, 0x80000000, 0x00000000, 0x00100000, 0x00000000, 0x000c0200, 0x40000000,
			0x00000008, 0x00000000, 0x00000080, 0x00000000, 0x00000000, 0x00601000, 0x00000000, 0x00010000,
			0x00000000, 0x00000000, 0x00010000, 0x00000000, 0x03008000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x18040000, 0x00000000, 0x00400000, 0x00000000, 0x00010000,
			0x08000000, 0x00000000, 0x40200000, 0x00000000, 0x00000000, 0x00000000, 0x00080010, 0x40000000,
			0x00000100, 0x00000000, 0x00000006, 0x00000100, 0x00000000, 0x00000000, 0x10000000, 0x00000802,
			0x00000000, 0x00000010, 0x00000000, 0x00000000, 0x00108000, 0x00000000, 0x00004010, 0x00000000,
			0x00000180, 0x01084000, 0x00000000, 0x00800000, 0x00000000, 0x00021000, 0x10000000, 0x00000c00,
			0x08400000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00006010, 0x00100000,
			0x00000000, 0x00080000, 0x00000000, 0x00000000, 0x00000000, 0x00030084, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000800, 0x00000000, 0x00000400, 0x84000000, 0x00000000, 0x00100000,
			0x00000000, 0x00084000, 0x00000000, 0x00002000, 0x00000000, 0x00000004, 0x00000000, 0x00000000,
			0x80420000, 0x00000001, 0x00000800, 0x00000000, 0x00000000, 0x80000000, 0x00000000, 0x02100000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000080, 0x10800000, 0x00000000,
			0x00020000, 0x00000000, 0x00010800, 0x00000000, 0x00000000, 0x04000000, 0x00000010, 0x00000000,
			0x00000000, 0x00084000, 0x00000000, 0x00000000, 0x20000000, 0x00000000, 0x10800000, 0x00000000,
			0x00000000, 0x00000000, 0x00000800, 0x00000000, 0x00000001, 0x80000000, 0x00000010, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000008, 0x20000000, 0x00000084, 0x00800000, 0x00000000,
			0x00000000, 0x00000000, 0x00010840, 0x00000000, 0x00000420, 0x04000000, 0x00000000, 0x00000000,
			0x00000000, 0x00004200, 0x00000000, 0x00002008, 0x00000000, 0x00000000, 0x00800000, 0x00000000,
			0x00021000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x80000000, 0x00000000, 0x00108000,
			0x00000000, 0x00000200, 0x00000000, 0x00000108, 0x00000000, 0x00000000, 0x00040000, 0x00000000,
			0x00000000, 0x00000000, 0x00000840, 0x00000000, 0x00000000, 0x00200000, 0x00000000, 0x00008000,
			0x00000000, 0x00000000, 0x00000000, 0x00000008, 0x01000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x08000000, 0x00000000, 0x00200000, 0x00000000, 0x00008000,
			0x00000000, 0x00000000, 0x40000000, 0x00000008, 0x00000000, 0x00000000, 0x00040000, 0x00000000,
			0x00000000, 0x00000000, 0x00000042, 0x08000000, 0x00000001, 0x00000000, 0x00000000, 0x00008000,
			0x00000000, 0x00000210, 0x00000000, 0x00000008, 0x01000000, 0x00000000, 0x00000000, 0x00000000,
			0x00001080, 0x00000000, 0x00000042, 0x08000000, 0x00000000, 0x00000000, 0x00000000, 0x00000400,
			0x00000000, 0x00000200, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00002000, 0x00000000,
			0x00000080, 0x00000000, 0x00000000, 0x08000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00080000, 0x00000000, 0x00002000, 0x00000000,
			0x00000080, 0x00000000, 0x00000000, 0x00400000, 0x00000000, 0x00000000, 0x00000000, 0x00000400,
			0x00000000, 0x00000010, 0x02000001, 0x00000000, 0x00080000, 0x00000000, 0x00000100, 0x00000000,
			0x00000080, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
			0x80000000, 0x00000000, 0x02000000, 0x00000000, 0x00004000, 0x00000000, 0x00000000, 0x00000000,
			0x00000004, 0x10000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000020,
			0x80000000, 0x00000000, 0x00100000, 0x00000000, 0x00000000, 0x00000000, 0x00000100, 0x00000000,
			0x00000004, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000020,
			0x04000000, 0x00000000, 0x00100000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
		},
		{
			0x40000000, 0x10008000, 0x00000000, 0x00405000, 0x00000000, 0x00003000, 0x00000000, 0x00000005,
			0x80000002, 0x00000000, 0x02028000, 0x00000000, 0x00004a00, 0x00000000, 0x00000000, 0xc0000010,
			0x00000004, 0x00940000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000080, 0x00000060,
			0x00a00000, 0x00000000, 0x00028000, 0x00000000, 0x00000a00, 0x08000400, 0x00000108, 0x25000000,
			0x00000000, 0x00000000, 0x00000000, 0x00005000, 0x00002000, 0x00000040, 0x28100008, 0x00000002,
			0x08aa0000, 0x00000000, 0x00068000, 0x00010000, 0x00000ea0, 0x40800000, 0x00000001, 0xe0000000,
			0x00000000, 0x00b94000, 0x40008000, 0x00003501, 0xa4000200, 0x00000012, 0x52800000, 0x00000000,
			0x01600000, 0x00040000, 0x00012800, 0x20000000, 0x00000c95, 0x54000000, 0x80000030, 0x0b000800,
			0x00200000, 0x00098000, 0x00000000, 0x00004429, 0x00000000, 0x000000ca, 0x18004000, 0x01000000,
			0x00000000, 0x00000000, 0x0003a548, 0x00000000, 0x00000005, 0x14000000, 0x00000000, 0x00000000,
			0x00000000, 0x00190040, 0x00000000, 0x00000500, 0x00000000, 0x00000016, 0x08000000, 0x01080000,
			0x002b0218, 0x00000000, 0x00000c0a, 0x00000000, 0x000000b6, 0x40a00000, 0x00000000, 0x004000c0,
			0x00000000, 0x00016000, 0x40000000, 0x000000b9, 0x05014000, 0x42000006, 0x02d80600, 0x00000000,
			0x00001280, 0x00000000, 0x000001ca, 0x29400000, 0x00000010, 0x18c03000, 0x00000000, 0x00508000,
			0x18010000, 0x00016e00, 0x00000000, 0x80000000, 0xf6000000, 0x00000000, 0x0040a000, 0xc0000000,
			0x000b7008, 0x00000000, 0x0000000a, 0x30000000, 0x00000007, 0x160000c0, 0x00000000, 0x000b9440,
			0x14000000, 0x00000040, 0x00000020, 0x0000003c, 0x00280000, 0x00000000, 0x0000a000, 0x00000000,
			0x00001200, 0x00180100, 0x000001c0, 0x00003000, 0x10000005, 0x00018180, 0x00000000, 0x00008400,
			0x18c00000, 0x00000d00, 0x00000000, 0x0000000c, 0x00000c00, 0x40108000, 0x00040000, 0x66004000,
			0x00007080, 0x700c0000, 0x00000000, 0x000a0000, 0x00840000, 0x00210140, 0x30000000, 0x00034403,
			0x14000000, 0x00000000, 0x00000000, 0x04200000, 0x01098000, 0x80100000, 0x00060199, 0x03000000,
			0x00000000, 0x18180000, 0x21000000, 0x08c00000, 0x00000000, 0x0000014c, 0x00000000, 0x00000005,
			0x14c00000, 0x00000000, 0x20080001, 0x04000000, 0x00086060, 0xc0000000, 0x00000700, 0x00000000,
			0x00000000, 0x10540008, 0x00000002, 0x00400310, 0x00000000, 0x00000000, 0x80000000, 0x00001c00,
			0x82000040, 0x00000000, 0x00181880, 0x00000000, 0x0001c030, 0x80000000, 0x8000e101, 0x30004210,
			0x0000000c, 0x00806400, 0x00000000, 0x00006000, 0x00000000, 0x00010006, 0x80000004, 0x00000001,
			0x82a32000, 0x00000000, 0x00009800, 0x00010000, 0x00000a00, 0x80000020, 0x0000010d, 0x05980000,
			0x0000001c, 0x10140000, 0x00000000, 0x00000000, 0x00000100, 0x00000960, 0x28c00000, 0x008000c0,
			0x9c260180, 0x00000000, 0x001094a0, 0x04010800, 0x00004360, 0x6c000000, 0x04000601, 0x04000000,
			0x00000000, 0x0010a500, 0x00004000, 0x00000094, 0x30080008, 0x00003802, 0x08ca6000, 0x10000000,
			0x14270000, 0x00020000, 0x000000a0, 0x00400000, 0x00004003, 0x40000000, 0x00000001, 0xa0b94000,
			0x80000000, 0x00002501, 0x02000200, 0x00000098, 0x22980000, 0x00000080, 0x808a0000, 0x10000000,
			0x00002800, 0x10000000, 0x000008c0, 0x80000000, 0x00000050, 0x04001001, 0x80000000, 0x00004000,
			0x80000000, 0x00044700, 0x06000000, 0x0000208c, 0x00008100, 0x00000140, 0x00400004, 0x00000000,
			0x0022b004, 0x01001000, 0x00000000, 0x00000000, 0x00000a00, 0xc0180020, 0x00000000, 0x0091c020,
			0x00008000, 0x00080200, 0x00000000, 0x00000808, 0x00c00000, 0x00000000, 0x082c0118, 0x40000000,
			0x00000800, 0x80000000, 0x00001c41, 0x06000000, 0x00000008, 0x207000c0, 0x00000000, 0x0200c000,
			0x00100000, 0x8000e000, 0x10018010, 0x00000044, 0x0390a600, 0x00000002, 0x01406000, 0x00000000,
			0x0000800a, 0x81800084, 0x00000200, 0x18853000, 0x00000008, 0x00209400, 0x00000800, 0x00008200,
			0xca008420, 0x0000300d, 0x63280000, 0x0000000c, 0x3080a000, 0x00000000, 0x000e0010, 0x00042100,
			0x000180a0, 0x18000000, 0x00000262, 0x98000140, 0x00000000, 0x00000c80, 0x18200800, 0x000d8310,
			0x00000000, 0x00000398, 0x00010000, 0x00000000, 0x00086000, 0x01004000, 0x00201880, 0x00000008,
			0x00001882, 0x098a5080, 0x00000027, 0x8ce70000, 0x08020000, 0x0360d8a0, 0x18000000, 0x00002c00,
			0xc0400400, 0x00000109, 0x65394000, 0x00008018, 0x00920501, 0x60080200, 0x00022010, 0x12940000,
			0x0000080a, 0x01000000, 0x008400c7, 0x00b12982, 0x00000000, 0x00039023, 0x14000000, 0x08000010,
			0x40000000, 0x042000b9, 0x25800a00, 0x02000000, 0x0080a718, 0xa5000000, 0x0000128c, 0x00000008,
			0x21000108, 0x24ca0000, 0x00000000, 0x04033000, 0x00001080, 0x00008080, 0x9ca10000, 0x00000800,
			0xa2700001, 0x00000001, 0x21194000, 0x40008400, 0x00800001, 0x45000000, 0x00000010, 0x000c0008,
			0x01080043, 0x800a5000, 0x10000001, 0x000009ca, 0x00000080, 0x000008a6, 0x9c000040, 0x08000018,
			0x42200000, 0x80000008, 0x01094050, 0x40000000, 0x80104639, 0x85000200, 0x420000c8, 0x0194a000,
			0x00080020, 0x09c25280, 0x00000000, 0x0080308a, 0x28000084, 0x00000603, 0x14a50002, 0x00400010,
			0x00328000, 0x00000000, 0x0000ce50, 0x40108420, 0x80041121, 0x20280000, 0x00000094, 0x1014a000,
			0x00080000, 0x000e7000, 0x00842100, 0x000080c0, 0x29400000, 0x00000087, 0x00a00000, 0x08000010,
			0x02138000, 0x04210801, 0x000c8850, 0x0a000020, 0x80000230, 0x80280010, 0x00000080, 0x009ca000,
			0x21004008, 0x00a26280, 0x50000000, 0x00011140, 0x00000084, 0x00000003, 0x10450000, 0x08020000,
			0x03009400, 0x80010800, 0x00000852, 0x0a000000, 0x80000000, 0xa7000000, 0x40100008, 0x18980000,
			0x00080000, 0x00422014, 0x00000000, 0x000108c0, 0x38000000, 0x00800046, 0xcc850002, 0x00420000,
			0x000194a0, 0x80000800, 0x0009c252, 0x8a000001, 0x84000030, 0x03280000, 0x02000006, 0x101ca500,
			0x00004000, 0x00005280, 0x50000000, 0x200000ce, 0x21400084, 0x00800011, 0x90602800, 0x00000000,
			0x001014a0, 0x00000800, 0x00000e70, 0x40000421, 0x00000081, 0xa5294000, 0x00000000, 0x0018a000,
			0x00080000, 0x00021380, 0x50002108, 0x20000cc8, 0x200a0000, 0x10800003, 0x00802800, 0x00000000,
			0x00008ca0, 0x80010040, 0x0001a262, 0xc0500000, 0x84000019, 0x05000000, 0x00000000, 0x0010c500,
			0x00080200, 0x00030094, 0x52800108, 0x0000000c, 0x010a0000, 0x00800000, 0x08a70000, 0x00401000,
			0x00009800, 0x14000800, 0x00000200, 0x40000000, 0x00000009, 0x46380000, 0x02008000, 0x00088500,
			0xa0004200, 0x0000008c, 0x12800008, 0x000001c2, 0xb08a0000, 0x00840001, 0x00032800, 0x00020000,
			0x00001465, 0x80000040, 0x00000032, 0xce500000, 0x04200000, 0x0120c000, 0x00008000, 0x00148628,
			0xa0000000, 0x00007014, 0x70000008, 0x21000004, 0x01400000, 0x00000000, 0x00821940, 0x00000000,
			0x000094a0, 0x80000000, 0x08000013, 0x02500001, 0x00200001, 0x05180a00, 0x00108000, 0x00002028,
			0xa0000000, 0x4000008c, 0x62800000, 0x00000002, 0x29405000, 0x00840000, 0x00030140, 0x00000000,
			0x00001cc5, 0x8c000002, 0x08000010, 0x08528001, 0x00000000, 0x00010a00, 0x00008000, 0x0000c700,
			0x00000010, 0x00000018, 0x20140000, 0x00000000, 0x00ca5000, 0x00000000, 0x00013800, 0x00000080,
			0x00001025, 0x8ca00042, 0x08000001, 0x02128000, 0x00000000, 0x0009ca00, 0x40000400, 0x00000629,
			0xc5000000, 0x40000004, 0x20140000, 0x00000000, 0x01ce5000, 0x00002000, 0x000008c0, 0x28000080,
			0x00000003, 0x00a00000, 0x00000000, 0x0e700000, 0x00010000, 0x0000ca00, 0x40000000, 0x00000031,
			0x05000000, 0x0000000c, 0x13800000, 0x00080000, 0x00025000, 0x00002000, 0x0000000a, 0x28000000,
			0x00000000, 0x00000000, 0x00400000, 0x00128000, 0x00000000, 0x00000050, 0x40000000, 0x00000301,
			0x00000000, 0x02000000, 0x00980000, 0x00000000, 0x00020280, 0x00000000, 0x000009c0, 0x00000000,
			0x10000001, 0x04000000, 0x00000000, 0x00001400, 0x00000000, 0x00000050, 0x40000000, 0x00000001,
		},
		{
			0x00a00008, 0x38000050, 0x400300e0, 0x01204000, 0x00000000, 0x02002000, 0x00004040, 0x3d000a40,
			0x000002e0, 0x40000020, 0x01020000, 0x00000000, 0x00000000, 0x00000000, 0x28085200, 0x00001400,
			0x0000380e, 0x00100000, 0x0000c080, 0x00900000, 0x00020000, 0x40429000, 0x00001001, 0x00000080,
			0x00800000, 0x00400400, 0xc0000000, 0x00100000, 0x02148000, 0x00004000, 0x0a0e0380, 0x04000080,
			0x60000002, 0x00000000, 0x04800000, 0x10040000, 0x00000000, 0x44000100, 0x20000a00, 0x00601417,
			0x24080008, 0x04002000, 0xc0240000, 0x000208a0, 0x0381a000, 0x00002607, 0x0f00a439, 0x80000040,
			0x00000008, 0x01300000, 0x00b0a146, 0x00403000, 0x8002303b, 0x12002248, 0x42000200, 0xb0921408,
			0x0f800000, 0x05425230, 0x00280000, 0x001d8160, 0x90013244, 0x00001600, 0x08900060, 0x7c000000,
			0x2c285182, 0x101c0000, 0x00000ae0, 0x61098220, 0x00001a00, 0x44800120, 0xa000000a, 0x08088013,
			0x1b000000, 0x07600000, 0x08041100, 0x0000d040, 0x24001000, 0x00000052, 0xc010009c, 0x0000000b,
			0x0b201800, 0x00008000, 0x0001c000, 0x21800400, 0x00000319, 0x050004f0, 0x81000054, 0x12161402,
			0x1e030000, 0x00080060, 0x20002408, 0x00001408, 0x0c004784, 0x400002d0, 0x18b70001, 0xf4180000,
			0x00500304, 0x00000000, 0x0000c048, 0x00023820, 0x40000201, 0x003d01b0, 0x21000002, 0x02841020,
			0x11080200, 0x0004e258, 0x0011d300, 0x00000862, 0x81c04050, 0x18000014, 0x14008001, 0x00000000,
			0x00801ac0, 0x00979800, 0x00002048, 0x6fa06810, 0xb00000a1, 0xa20681e8, 0x02408000, 0x0140c400,
			0x06bcc000, 0x00001080, 0x70100000, 0x8000050b, 0x10300f45, 0x0000001f, 0x0606b001, 0x35a60000,
			0x00005208, 0xfc1a0400, 0x00002803, 0x01000230, 0x802000f9, 0x1fb40010, 0xac000000, 0x00002041,
			0xa0000000, 0x00016000, 0x08000180, 0x00000080, 0x01a0c000, 0x60000000, 0x0004834d, 0x06800000,
			0x00001e0e, 0x081e0c00, 0x00000228, 0x6d000000, 0x00100000, 0x10a0114b, 0x01c07000, 0x80487006,
			0x10f06240, 0x40000140, 0x48840400, 0x14800001, 0x84e0aa58, 0xa0400000, 0x008102c1, 0x80030204,
			0x00001200, 0x40310000, 0xa40001e3, 0x480452d0, 0x701c0004, 0x00800a40, 0xc1000020, 0x00001a00,
			0x01000120, 0x2000001e, 0x70369685, 0x01000020, 0x01e00068, 0xe8000100, 0x00025081, 0x08018000,
			0x000000f0, 0x4112b428, 0x8000001a, 0x07206c00, 0x00200000, 0x0010c00f, 0x40400400, 0x00000608,
			0x0295a140, 0x0000000e, 0x1000fa04, 0x10000000, 0x01000000, 0x50000000, 0x001fbc03, 0x05ec1a00,
			0x0000029c, 0x1c000000, 0x80000000, 0x00000010, 0x00010000, 0x000180d0, 0xe420d010, 0x70000741,
			0x200080d0, 0x0240801e, 0x28080a80, 0x1d004000, 0x006f800c, 0x61028480, 0x0000a641, 0x86000030,
			0x42840071, 0x40105002, 0x00000001, 0x00608064, 0x08102400, 0x0004f00a, 0x00e0701c, 0x04200100,
			0x04818002, 0x41200012, 0x03c01600, 0x40812000, 0x00280050, 0x40001d00, 0x31000000, 0x80404000,
			0x70700010, 0x18801e01, 0x040b4080, 0x00709e96, 0xb4080740, 0x8801e1a0, 0x00d20011, 0x40000005,
			0xf9800000, 0x200a0400, 0x0a4012b0, 0x74000100, 0x40070a6c, 0x05603c87, 0x24080008, 0x2801c000,
			0x40d40006, 0x4e009d80, 0x0601b000, 0x001074c9, 0x0700e43a, 0x00000148, 0x61500003, 0x02a0003c,
			0x8004ec02, 0x01804002, 0x0002603d, 0x18002010, 0x02000a40, 0x20001008, 0x07000180, 0x00276010,
			0x00680007, 0x000f8280, 0xc0001080, 0x0000120a, 0x04000040, 0x38000f00, 0x001b009c, 0x60000004,
			0x00000840, 0x00108400, 0x00000451, 0x20000000, 0x8001401c, 0x005800e1, 0x1b000000, 0x0240e000,
			0x00842000, 0x0000a040, 0x00012000, 0x0003c0f4, 0x02d0070c, 0x00000000, 0x0e201000, 0x04210000,
			0x0a014000, 0x01400000, 0x00060688, 0x16803870, 0x80000000, 0x18280006, 0x20080000, 0x5000a000,
			0x40000000, 0x00003800, 0xb4000380, 0x00000014, 0x04800000, 0x00400020, 0xa00d001d, 0x00000000,
			0x0001a000, 0xa1401810, 0x70000005, 0xee060070, 0x00408000, 0x004404e8, 0x16004000, 0x000fd084,
			0x7a00d480, 0x001c01ec, 0x00018040, 0x12040001, 0x02002040, 0x00010000, 0x00420034, 0x301ba300,
			0x08400820, 0x80406838, 0x0420c004, 0x1e09c110, 0x40600000, 0x83000600, 0x88d91800, 0x02404901,
			0x00200000, 0x21018008, 0xf0c00880, 0x80000014, 0x06003000, 0x4688c000, 0x10004814, 0x1c0b0600,
			0x080000a0, 0x41400416, 0x000004a5, 0x08800000, 0x34160018, 0x000040a2, 0x75000100, 0x40002a08,
			0x4a6024b7, 0x240881e9, 0x06000070, 0xa0340040, 0x80020c93, 0x02c0c000, 0x01a0a047, 0x1f10243a,
			0x000501c2, 0x60004006, 0x05b00f80, 0x14b1a94d, 0x01c03000, 0x8a06543b, 0x08872250, 0x420805a0,
			0xe0903000, 0x1b801000, 0x0cc35aec, 0xc0000000, 0x60d98701, 0x443a2204, 0x01481d00, 0x94810041,
			0xdb0061da, 0xe41a3364, 0x30380800, 0xc13d0940, 0x61510422, 0x0a403a09, 0xa7080360, 0x98002a08,
			0x28298d25, 0x3408008a, 0x86c00070, 0x0a84310f, 0x120ef8c0, 0x1e404070, 0x808008c2, 0xc1846d2f,
			0x01400073, 0x0340ac15, 0x04068000, 0x04750070, 0x01404400, 0x04185799, 0x0123286c, 0x0100200c,
			0xa214f801, 0x34370300, 0xa0880060, 0xc0003408, 0x00ca1008, 0x0ed94394, 0x70800252, 0x48930503,
			0xa378042a, 0x8910ff15, 0x00350801, 0x0790e130, 0x39da5cb0, 0x300802b9, 0xc7380140, 0x1940983e,
			0xba8f08ac, 0x100f4200, 0x306d2160, 0x4ed2d788, 0x0014bc03, 0x32c1406c, 0x4a841ab4, 0x840f4063,
			0x0c02000d, 0xe1789414, 0x7299bc41, 0x0204cf7a, 0x8f40600c, 0xf4201e26, 0xb646011a, 0x4260805e,
			0xd994a800, 0x80c2e00d, 0x00a41ab3, 0x30103908, 0xa1010507, 0xb9f158c3, 0xf0000221, 0x0eb60001,
			0x05170052, 0x08282181, 0xd02c0b00, 0x0806e823, 0xc1ca8215, 0xf0201e20, 0xd0160060, 0x2b88830c,
			0x63c1a40c, 0x14014000, 0x400340ac, 0x7e0437a0, 0x0014f480, 0x9940c040, 0x4c440677, 0x0c092020,
			0x0700c000, 0x00a21ce4, 0x6036bf02, 0x08a4cb60, 0x0ac00027, 0x96000b10, 0x405f0152, 0x02708002,
			0x2a589305, 0x15b33810, 0x01a91bff, 0x40003508, 0xb00018e0, 0x8bb84ad4, 0xc0300002, 0x2ec53900,
			0xac194080, 0x01ba8f08, 0x60060f42, 0x88006c01, 0x97425297, 0x6c0014bd, 0x3432c180, 0x634a841a,
			0x05840740, 0x140c0200, 0x40017894, 0xda129bbc, 0x0c0004c3, 0x260f4000, 0x2af4201e, 0x1aa00600,
			0x00426080, 0x01d994a8, 0xb084d2e0, 0x0800a41f, 0x06b02039, 0x43a10105, 0x2109f141, 0x01f00000,
			0x0a0eb600, 0x80259700, 0x00082809, 0x03d0340b, 0x150807e8, 0x20c1ca06, 0x00f0200e, 0x0cc21601,
			0x052f8880, 0x0063c0e0, 0xcc150140, 0xa0400b40, 0x807e0017, 0x40000075, 0x77994140, 0x286c4400,
			0x000c0300, 0xe40100c0, 0x0200a214, 0x006004bf, 0x270800ca, 0x100b8000, 0x4396000b, 0x02400e01,
			0x05027080, 0x100a5893, 0xff142338, 0x08000910, 0xe0400035, 0x5cb00018, 0x0289304a, 0x01403000,
			0x802ec739, 0x00a41940, 0x4200ba8f, 0x0160100f, 0xd788006c, 0xbd834252, 0x406c0000, 0x023432c1,
			0x00234a84, 0x00058407, 0x94140c02, 0xbc400178, 0xc23a1289, 0x100c0004, 0x1e208ec0, 0x015a7420,
			0x801aa006, 0xb8000260, 0xe0000910, 0x60b09442, 0x39080024, 0x0506b050, 0x4ac7a100, 0x002109f1,
			0x0000f000, 0x00000e82, 0x1194a617, 0x03000028, 0xe803b014, 0x06350807, 0x0029000a, 0x0000f020,
			0x8000c416, 0x20a53388, 0x40000bc0, 0x40cc1401, 0x16a0400b, 0x04407000, 0x40400000, 0x0017a940,
			0x05288c44, 0xc0004c03, 0x18ec0100, 0xb7020002, 0x0a006000, 0x00270800, 0x00900b80, 0x29449600,
			0x8002400e, 0xe7050370, 0x78100050, 0x109f0004, 0x11000001, 0x00e02000, 0x4a60b000, 0x000080b1,
			0x3b000030, 0x40800280, 0x90000023, 0x0f420002, 0x0c016000, 0x53278800, 0x000c020a, 0xc1405c01,
			0x04001409, 0x0700011a, 0x40000044, 0x48040004, 0x803c4000, 0x00002052, 0xc0000c00, 0x2000a18e,
			0x060008f0, 0x608000a0, 0x002c0003, 0x09e00003, 0x00008280, 0x50010000, 0x00050e70, 0xb0004781,
			0x00001900, 0x01000090, 0x0f000006, 0x00081400, 0x00030000, 0x002803b0, 0x40022408, 0x2000c801,
			0x08014080, 0x08000000, 0x0020a000, 0x00000000, 0x00c00000, 0x00112040, 0x0001800a, 0x40000400,
			0x40000000, 0x02050000, 0x01c00000, 0x00001800, 0x10880200, 0x00020000, 0x00001300, 0x00000002,
			0x01e80002, 0x00000014, 0x20000001, 0x80401000, 0x00000000, 0x00000000, 0x00000010, 0x00000000,
		},
		{
			0x00000008, 0x30000000, 0xc8000010, 0x03800000, 0x02a00000, 0x00084000, 0x33080100, 0x2002b8c0,
			0x00080000, 0x00000001, 0x0da00000, 0x15000000, 0x00400a80, 0x00000000, 0x00004213, 0x00400800,
			0x0000000c, 0xe0000000, 0xa8000000, 0x008a5400, 0xc2000000, 0x0006300c, 0x00004000, 0x00000042,
			0x184c0000, 0x40800000, 0x0052a005, 0x00000000, 0x00108000, 0x00000000, 0x00000310, 0x58000000,
			0x80000038, 0x8295002a, 0x00000000, 0x000c6330, 0x80000000, 0x00001180, 0x00000000, 0x80000206,
			0x6400014b, 0x54000004, 0x01280000, 0x61002000, 0x0057dc02, 0x01000004, 0x0000a610, 0x9e0000dc,
			0x0000000a, 0x03519c00, 0x08018000, 0x0294e253, 0xc0003820, 0x00008604, 0x700003a0, 0x02080018,
			0x6a8c6605, 0x00884005, 0x15f21310, 0x00c80100, 0x00079b40, 0x1c801500, 0x104000c6, 0x52410000,
			0x10e00000, 0xad189080, 0x00000800, 0x8001c000, 0x64015000, 0x82000325, 0x23198418, 0xa4000002,
			0x3c8e8018, 0x00000000, 0x00003098, 0x200a8100, 0x100000cb, 0x19c000bc, 0x00000010, 0x405000c0,
			0x03800003, 0x0001fc00, 0x00018000, 0x801d8e59, 0xc0005600, 0x04005481, 0x03800008, 0x00100005,
			0x03ea0000, 0x00010000, 0x00ec5ac8, 0x10007a04, 0x2100050c, 0x1d066008, 0x10840057, 0xac100100,
			0x0e880001, 0x07622640, 0x50158020, 0x00014041, 0xaa530240, 0xf82002a8, 0x82000000, 0x74500000,
			0x3b0d3200, 0x001e8100, 0x40011244, 0x13000088, 0x01001585, 0x1fa00038, 0xa2000004, 0x046d9983,
			0x00601800, 0x00009c54, 0x98000c00, 0x0800a838, 0x60000001, 0x10010020, 0x2467cc1d, 0x07b0c000,
			0x01d49100, 0xa610c200, 0x400541d4, 0x18100008, 0x80001b21, 0x76be6000, 0x016e0001, 0x00270000,
			0x30840000, 0x002a00a5, 0x00000002, 0x00000811, 0xf5f30005, 0x7c300013, 0x70254000, 0x00008000,
			0x014a0130, 0x00038000, 0x800039fc, 0xaf0001a0, 0x5b80009f, 0x00c00000, 0x00000100, 0x0a500000,
			0x00000000, 0x1001f000, 0x66000104, 0x0c0004fd, 0xa100004a, 0x0800001d, 0x04296000, 0x0010d000,
			0x00000700, 0xb0000d60, 0x6210270b, 0x71806610, 0x40000005, 0x3d4a0010, 0x00800000, 0x00001a60,
			0x15007b00, 0x0081325e, 0xd0261283, 0x9a000700, 0xe8180080, 0x00000000, 0x001e6000, 0xa8035000,
			0x040993e4, 0x60198418, 0xd0100150, 0x009e0000, 0x00000000, 0x00807898, 0x401a8100, 0x204f96c5,
			0x0004b060, 0x00001a31, 0x90f00020, 0x0d000002, 0x0018b000, 0x00810000, 0x027ebe2a, 0xa0018621,
			0x00000000, 0x87800000, 0x00000012, 0x31a60000, 0x05038000, 0x00d5c950, 0x60041808, 0x00000d42,
			0x2c0001a0, 0x000000b0, 0x0c000000, 0x351c0000, 0x06af0280, 0x00618040, 0x00000010, 0x00000d01,
			0x38000521, 0x00800001, 0xadb001f8, 0x05769400, 0x66160010, 0x40067118, 0x00100100, 0x0000046d,
			0x10c00000, 0x2d000007, 0x1b32b500, 0x10620080, 0x05600440, 0x10800400, 0x00180260, 0xa0007800,
			0x6801031b, 0xdf14a811, 0x85900400, 0x004c6019, 0x80006000, 0x00c31a58, 0x00980000, 0x410000a0,
			0x50c5415b, 0x19082002, 0x54061984, 0x0c055001, 0x00508040, 0xa8661002, 0x00400579, 0x672a1adb,
			0xc4000002, 0x150a0660, 0x602a0000, 0x00445714, 0x26000000, 0x80006286, 0x580082dc, 0x36000e13,
			0x014800ee, 0x61002001, 0x067404a6, 0x01000084, 0x00007210, 0x70040064, 0x000070b3, 0x80a05030,
			0x08010005, 0x02a4e253, 0x0000c820, 0x008c8100, 0x80358320, 0x00138507, 0x03683b95, 0x00080040,
			0x1c801300, 0x00380100, 0x00078080, 0x082c0900, 0x009c263e, 0x10140c00, 0x01400148, 0xe501d800,
			0xd0000808, 0x00080000, 0x41600001, 0x040131fe, 0x5a006000, 0x080001a0, 0x0016c001, 0x00000040,
			0x01e02000, 0x0b000000, 0x200b00f2, 0x05030110, 0x00005e00, 0x40c01a08, 0x0c801000, 0x60010000,
			0x00000009, 0x01d30791, 0x8000d801, 0x00006801, 0x0600d000, 0x0010801c, 0x71b80000, 0x00088000,
			0x02781c88, 0x40a04408, 0x00150001, 0x2d800010, 0x008084f0, 0xf8000d00, 0x8cc40061, 0x13c01441,
			0x00360040, 0x00010010, 0x0c000080, 0x88042635, 0x05000001, 0xe360005e, 0xb6102203, 0x4e010010,
			0x458571d0, 0x01b00100, 0x000028ae, 0x0b0010c8, 0x1b000000, 0x0880051f, 0x00001085, 0x0013ea26,
			0x0d801100, 0x00294008, 0xc801b855, 0xd8200000, 0x960c2bd9, 0x82508036, 0x38740202, 0x00018804,
			0x004d007c, 0x61c80008, 0xc0000580, 0xab633e06, 0x01c401b3, 0x445d8000, 0x04080000, 0x007819e0,
			0xf0000000, 0x00002021, 0xdb19f036, 0x14200a1a, 0x1a0040b1, 0xa0000006, 0x020cc208, 0x000c8010,
			0x00007b1e, 0xa90780b4, 0x250070b6, 0x00e80108, 0x21002016, 0x04b19347, 0x11020084, 0x0571ac76,
			0xe43d08e0, 0x0801e4d4, 0x0070dc44, 0x1800001c, 0x5029fa79, 0x80010020, 0x02c6a01c, 0xa1ecc040,
			0x4217470b, 0x6b587005, 0xa108414d, 0x9ac87210, 0x01d40155, 0x66111bc0, 0x05635200, 0x008390d9,
			0x5e760100, 0x0540027b, 0x743b0880, 0xc8740aa4, 0x8103c800, 0xad7b5020, 0x0000d5c6, 0x600d8410,
			0x680000dc, 0x21b00018, 0x55000de0, 0x00c801f0, 0x7adaa007, 0x00551411, 0x950040d4, 0x40001e47,
			0xb5000185, 0x08027d02, 0x05417066, 0x8e80004c, 0x02b3abeb, 0x40505401, 0x0428661f, 0xc31d883a,
			0x00009811, 0x23aa2600, 0x75150000, 0x01957fc4, 0x21906008, 0x2100318f, 0x266a6150, 0x50844090,
			0x4e900d85, 0xb5aa1002, 0x09da2645, 0x14410018, 0x0a000eb1, 0x90320ea1, 0x842452b3, 0x96088010,
			0xa800016c, 0x35679428, 0x020802c0, 0x000143e8, 0x40085408, 0x0102b970, 0x0c8661d0, 0x000478d6,
			0x17acb040, 0x05420600, 0xa5632c05, 0x8803a801, 0x08222e3b, 0x62615001, 0x0000013b, 0xba760750,
			0x80003010, 0x7226ba10, 0x27154205, 0x5d932a64, 0x00405400, 0x21001e49, 0xc6b65b50, 0x100400d4,
			0x9e7d18c4, 0x20e81002, 0xec00bd25, 0x78550002, 0x0000c060, 0xd1b3daa0, 0x84205488, 0x1fa60420,
			0xc54081ac, 0x03352130, 0x661d0210, 0x46456148, 0xec8e8000, 0x0003b34d, 0x9ec04054, 0x3a000076,
			0x1bc28c80, 0x00000080, 0x0023de26, 0xfc750000, 0x001c121f, 0x0be08820, 0x50206c27, 0x9430e261,
			0x055085cc, 0x7a4e9004, 0x85b50210, 0x40e5e137, 0xb1504100, 0xa100002e, 0x36e0320e, 0x00842e33,
			0x9c960880, 0x28a80000, 0x074cbf9a, 0x58220802, 0x081a01a2, 0x5c400854, 0x50010739, 0xd6148661,
			0xc0000401, 0x3b196ccc, 0x32054200, 0x00056a0c, 0x3b8803a8, 0x0108174e, 0x3b626150, 0x50000001,
			0xc0cc75e3, 0x18800001, 0x03ba66d6, 0x84271542, 0x0040db2b, 0x49008854, 0x5021001e, 0x576ba97b,
			0x8400040e, 0x033c3518, 0x2520e810, 0x020018b2, 0x60785400, 0xa0000040, 0x08394ada, 0x20042023,
			0x0e0fbd06, 0x31c54080, 0x10033521, 0xc8661502, 0x00400560, 0xcaab8e81, 0x50000116, 0x1e1ec040,
			0x883a0000, 0x8005c28c, 0x26000000, 0x000003b6, 0x25c47500, 0x000001be, 0x230d2198, 0x61502000,
			0x00542ee2, 0x08854084, 0x1003be90, 0x3645b502, 0x00400881, 0x8eb15040, 0x0ea10001, 0x54b39032,
			0x80000420, 0x00d49608, 0x94202800, 0x02001fbf, 0xa3e86600, 0x54080000, 0x84704018, 0x61500102,
			0x00d60c86, 0xbc840004, 0x0000096c, 0x2c320502, 0xa8000573, 0xa63b8883, 0xd801081e, 0x043b6260,
			0x64300000, 0x0000cc76, 0xdc198010, 0x020003de, 0x2a742615, 0x540040f5, 0x1a490088, 0x40502100,
			0x005663b5, 0x18840084, 0x1001fc5b, 0xbda531e8, 0x00020008, 0x08607800, 0x02800000, 0x0291ffca,
			0x86600420, 0x800071be, 0x21310d40, 0x02100251, 0x00806615, 0x40004005, 0x1606ff88, 0x41100000,
			0x002f1ec0, 0x8c883a00, 0x00800ae2, 0x2e260000, 0x00000002, 0xb8476442, 0x98000000, 0x003c4dc1,
			0x62615020, 0x84005638, 0x90088540, 0x02100138, 0xc23b4401, 0x44004000, 0x00c6b150, 0x530e8100,
			0x2002a5a2, 0x09800000, 0x00000086, 0x1bfc2008, 0x00020004, 0x07128066, 0x10540800, 0x00142613,
			0x06605021, 0x04005008, 0xcffc8040, 0x00100018, 0x01545400, 0x82a04000, 0x00a42898, 0x60000008,
			0x000021a2, 0x70e40200, 0x00800045, 0x40a01980, 0x10020001, 0x054384a6, 0x88000840, 0x00128100,
			0x07200001, 0x0400002d, 0x55000000, 0x80100000, 0x2a022530, 0x00000200, 0x000861b0, 0x39000000,
			0x200001a8, 0x28066050, 0x00800056, 0x50213100, 0x15000001, 0x0021b800, 0x00000000, 0x00000d40,
			0x80000001, 0x04000001, 0x81900800, 0x0000000a, 0x001c0000, 0x00150000, 0x00003a00, 0x01984008,
			0x01001502, 0x08800000, 0x00000004, 0x00000980, 0x00a80000, 0x00001000, 0x98000040, 0x00000000,
		},
		{
			0x18000000, 0x40000e28, 0x14080010, 0x02000001, 0xae801000, 0x00a80008, 0x380408d0, 0x000300e0,
			0x00200410, 0x28400000, 0x02000008, 0x2a004000, 0x05400a40, 0x009ac680, 0x00000020, 0x01001200,
			0x42000000, 0x80000a69, 0xa0040000, 0x2808522b, 0x05563400, 0x0008380e, 0x00000480, 0x10000080,
			0x0090536a, 0xd8000000, 0x4042900a, 0x06f10001, 0x00000000, 0x00f60000, 0x80000400, 0xc0029b50,
			0x01000020, 0x821480d0, 0x15880000, 0x000e8380, 0x00010080, 0x00000002, 0x00151707, 0x85000208,
			0x5004028a, 0xc4420004, 0x1500011d, 0x00811a00, 0x00601417, 0x04023a38, 0x40003840, 0xc0200251,
			0xe2120002, 0x0381a0eb, 0x0b481000, 0x03202438, 0x0013f9d0, 0x60008609, 0x0110ff20, 0x01b00156,
			0x00403023, 0x30668003, 0x1300204f, 0x029c4e80, 0xb0060480, 0x0e804450, 0x0d800ab0, 0x08280136,
			0x601c0000, 0x98012200, 0x02aa4400, 0x00010000, 0x743c0008, 0x6c005182, 0x101dc730, 0x090001f0,
			0x4111001a, 0x15123a00, 0x00002120, 0xa015a400, 0x20028013, 0x1a0e60e2, 0x84000000, 0x00c00058,
			0x8a10d000, 0x00001000, 0x0fe80000, 0x0010009c, 0x80048d0b, 0x00201801, 0x06000180, 0xb5830000,
			0x03800005, 0x003d8100, 0x008044e0, 0x813de05a, 0x1a001502, 0x2e070681, 0xae180060, 0x3040043d,
			0xc8c10001, 0x04025703, 0x40c082c0, 0x08000001, 0x74381750, 0x50c00305, 0x800001ee, 0x8a604000,
			0x2002b801, 0x40660080, 0x800501a0, 0x20019846, 0x1600112c, 0x01800b79, 0xb441e004, 0x0011d20c,
			0x02db0400, 0x00004050, 0x00005814, 0xb0008861, 0x80004708, 0x98a00020, 0x04969062, 0x09580000,
			0x01b06810, 0x706071a0, 0x820642f8, 0x20411065, 0x00001204, 0x26b4800c, 0x32210000, 0x00100000,
			0x81000500, 0x10320fc3, 0x00088336, 0x04000821, 0x35a401e6, 0xb6000008, 0x681b0400, 0xf9846800,
			0x01100600, 0x000410b0, 0x1e000110, 0xac000352, 0x38000041, 0x01800013, 0x00016000, 0x08802000,
			0x00208000, 0x0000c000, 0x60001b90, 0x0000020d, 0x86801810, 0x9c50300f, 0x043e8006, 0x00078830,
			0x20000400, 0x00118980, 0x01a0114b, 0x01c0b048, 0x08780006, 0x30f00046, 0x00305180, 0x20000400,
			0x15aab001, 0x0d009a58, 0xb0402135, 0x2e000381, 0x80000218, 0x15d28400, 0x00108000, 0xa46341e8,
			0x6804d2d0, 0x701d3aa8, 0x59000050, 0x01180000, 0xaed42a00, 0x0080012e, 0x6aa5b000, 0x00229685,
			0x00008d42, 0x03001868, 0xf0c00029, 0x4e225003, 0x00218075, 0x19700000, 0x0112b428, 0x8008aa0a,
			0x00207001, 0x8601ea80, 0xa1100017, 0x204003aa, 0x04060000, 0x0195a140, 0x00035050, 0x00001b04,
			0x200002e0, 0x080000c4, 0x50001d44, 0x302e0001, 0x0cac1a06, 0x0a2a829c, 0x38008000, 0x80001950,
			0x28100611, 0x04001322, 0xdc8020c8, 0x2430d010, 0x20dc1140, 0x000080c0, 0x005cc810, 0x60801a0c,
			0x1c009f3a, 0x58208004, 0x5182858b, 0x0b842a01, 0x06000030, 0x5c080400, 0x0411d060, 0x0003cc93,
			0x20080205, 0x88102423, 0x2a21500a, 0x00e0701d, 0x00000900, 0x248c0312, 0x012324d0, 0xe8301580,
			0x6001640a, 0x0a021050, 0x50041ca1, 0x34b80020, 0x80604880, 0x60616e90, 0x22000641, 0x04095400,
			0x19408297, 0x38090250, 0x5e5501a0, 0x01ba4410, 0x40e95486, 0x85006208, 0x401b4286, 0xc20212b0,
			0x150003b1, 0xc0811a70, 0x05e23c86, 0x021f2258, 0x8001d040, 0x405006b0, 0x14109582, 0x0601bc89,
			0x1770680f, 0x0710e438, 0x34fad3c0, 0x41508202, 0x06d376a0, 0xa004ac02, 0x01801828, 0x30468085,
			0x3980200a, 0xa3100e00, 0x20040001, 0x06f62820, 0x00256010, 0x1068800b, 0x5e0e0380, 0xcc000080,
			0xbe50000a, 0x0000000d, 0x315e4000, 0x000b009c, 0x60010658, 0x30000040, 0x60100040, 0x1a801450,
			0x0000006c, 0xbd812800, 0x005800e1, 0x1a103320, 0x0380f000, 0x00802af7, 0xe800a003, 0x80012030,
			0x76a00014, 0x02d0070c, 0x00c6b400, 0x00201000, 0x0400a800, 0x2a000018, 0x01400187, 0x00000000,
			0x16803861, 0x8634d800, 0x00380006, 0x209785e0, 0x5000b0c0, 0x40000634, 0xf4100060, 0xb4000305,
			0x27cd8014, 0x38000000, 0x80001f70, 0x8815863d, 0x040029a3, 0xfd002000, 0xa1501817, 0x5e3a1105,
			0x0f060069, 0x02e17820, 0x508434e8, 0x17004ed0, 0x5001d000, 0x1a80d5a2, 0x81ac8b2c, 0x0003880c,
			0x15303e81, 0x86012000, 0x00009912, 0xe1320414, 0xb01b197f, 0x18c65830, 0x80402870, 0x107e1805,
			0x3e0c0100, 0x40798d94, 0x60000000, 0x88d10143, 0xd8720181, 0x00200348, 0x5c990000, 0xf0601800,
			0x987c6cb5, 0x02010000, 0x46e64198, 0x49800814, 0x100b0647, 0x280600a0, 0x02408016, 0xc39ebeaf,
			0x88000208, 0x741cf09e, 0x5c026022, 0x15000725, 0x80a13a04, 0x426404ff, 0x1097d279, 0x86401036,
			0xa0882271, 0x24130513, 0x0280f8e5, 0xeb201800, 0x4310a46b, 0x16babb3a, 0x6208c636, 0x070648a0,
			0x25b0495d, 0x01c638a3, 0x425e9503, 0x280720d5, 0x335049e2, 0xf040011d, 0x1ebdcc40, 0x8e835ae8,
			0xd8373ee2, 0x629f0603, 0x447835a8, 0xd0224510, 0x820100ef, 0xa5c2c0c2, 0x740ab344, 0x70322315,
			0xd9050348, 0x6345502c, 0xfc103b80, 0x1400434c, 0x93ff9a34, 0x3031aca5, 0x14113202, 0x04a00034,
			0x02007e4a, 0xfa1f7c00, 0x060056fa, 0x8e082000, 0x81856532, 0x7afa7ecb, 0x01403014, 0x003f2bd0,
			0x3ffa6010, 0x0358fc57, 0x8a869900, 0x0023486c, 0xdf1e8c6a, 0xaa003882, 0x14cd07a9, 0x791b00e4,
			0xc845837f, 0x8c09a002, 0x075b45a3, 0xac9a8142, 0x60140107, 0x22b8868a, 0x21906714, 0xc2391d2f,
			0xc4a36110, 0x39d25892, 0x22c28230, 0x80004177, 0x1faa687c, 0x66830924, 0x01716991, 0x566120e6,
			0x4ed3328e, 0xe0cf3181, 0x83014067, 0x4d3d4295, 0x6428c821, 0x8fb3778b, 0x09980024, 0xf49948e1,
			0xfb7aed5a, 0x03586026, 0xd82e87a6, 0xb646010b, 0x5aacfc77, 0x72000804, 0xa0d0f77c, 0x6ed70ab3,
			0x48501a3e, 0xfaf50503, 0xb0714843, 0x31eae1a9, 0x36140823, 0x856abff8, 0x1f2031a1, 0x140c1658,
			0xcd02c820, 0x01d2027a, 0x92598be8, 0x12064161, 0x298a2f60, 0xc301850c, 0x1401f6ac, 0xd0014030,
			0x1e801638, 0x13f75a40, 0x8002c84f, 0x4dca9099, 0x2e0a2040, 0x8706cc3c, 0xe93a0825, 0xe0169b06,
			0x45b81b70, 0x02c8400b, 0x12d552a0, 0x70574342, 0x0047d283, 0x8a501401, 0x14b33886, 0xff019be7,
			0x70c21419, 0x96c52360, 0x02b85250, 0xc0dd8282, 0x7c830140, 0x241faa90, 0x10668709, 0xe6160748,
			0x4cd66000, 0x1542d296, 0x6ae0cf30, 0x94030180, 0x215e5d42, 0x836400c8, 0x248402bb, 0xe1699800,
			0xfa949a38, 0x66fb7ae1, 0xa6835800, 0x2a781687, 0x37a00600, 0x04006354, 0xdc720008, 0xb0a4d2c2,
			0x836ed70f, 0x02c8601a, 0x43eaf505, 0xa9007141, 0x21fcf7a3, 0xc0361408, 0xa1a5b6bf, 0xb01f2019,
			0x1014140d, 0x14c282c8, 0xe801d202, 0x0092c39b, 0x60000640, 0x0d2d860f, 0x6cc300c1, 0x50140106,
			0x3bd00140, 0x400e8017, 0x471733da, 0x99800348, 0x486cda96, 0x3c2e0000, 0x258100ea, 0x05693a00,
			0x006004b7, 0x3f7f1c1a, 0xa0038840, 0x43118d52, 0x83700643, 0x0100703a, 0x86aa5014, 0x63142338,
			0x0d2f2190, 0x6070c214, 0x5894c4a3, 0x82003052, 0x4140b2c2, 0x687c8001, 0x2124194a, 0x69916683,
			0x00e60007, 0xd69e5660, 0x300142d2, 0x406820db, 0x7a940301, 0x0821526d, 0xff9b6401, 0x04248400,
			0xb4612998, 0xe00a9488, 0x100cea7a, 0x87a002d8, 0x014a700e, 0xacf7a00e, 0x1904007c, 0xa77da200,
			0x0030b442, 0x190ee5d7, 0x0500c010, 0x4a43fc74, 0x67a90071, 0x0820e0e8, 0x1eca3600, 0x01b52615,
			0x0b5e4720, 0xc8003414, 0x0214d502, 0xb5e80012, 0x0100774d, 0xcf600006, 0x01ad3189, 0x00dec300,
			0x40501401, 0x16a1d001, 0xaa400080, 0x48403b42, 0x92998002, 0x05488c42, 0xd5bc2e00, 0x002c8100,
			0xb700e99a, 0x1a006000, 0x4007df17, 0xdaa00180, 0x2b44127b, 0x9e817006, 0x01010160, 0x3807b050,
			0x90030004, 0x100ead79, 0xa3600082, 0x526090b4, 0x26900033, 0x03400030, 0x40106480, 0x80010021,
			0x0774ab56, 0x00006010, 0xd3068176, 0xea80001a, 0x01405800, 0x051c1400, 0x0008010a, 0x03b3cae4,
			0xa8002184, 0x80342d28, 0xf4600054, 0xc0000c09, 0x1c18a000, 0x06400870, 0x60b671a0, 0x000d0401,
			0x01a05cb0, 0xa30002a0, 0x5000007b, 0xac050000, 0x32004380, 0x05b39100, 0x00086080, 0x0d007a06,
			0x10001500, 0x0003021d, 0x86680030, 0x50020486, 0x39848801, 0x00404000, 0x08074000, 0x8000a800,
			0x00001208, 0x00c00000, 0x80102000, 0x1820400a, 0x00100000, 0x40100080, 0x00050000, 0x01d4b044,
			0x90001900, 0x10800140, 0xc5020004, 0x00001200, 0x015b0000, 0x00280002, 0x00a00234, 0x00000001,
		},
		{
			0x000b28e8, 0x40006200, 0x800031d0, 0x07600000, 0x02005682, 0x1881140d, 0x100d02a8, 0x0052ec80,
			0x00000000, 0x00004400, 0x44000000, 0x10ae0410, 0x148a18c0, 0x00281540, 0x026e3a00, 0x0dd98800,
			0x02aefc80, 0x00008a00, 0x80000402, 0x1a6d4200, 0x03400000, 0x147b2004, 0x00004000, 0x35000480,
			0x008e5000, 0x000006b8, 0xd36a3004, 0x0a80000b, 0x998e8000, 0x066000e2, 0x03180400, 0x00500001,
			0x05601736, 0x9b508020, 0x50000056, 0x04080100, 0x58006005, 0x050f9d00, 0x028c4000, 0x0006cf08,
			0x360c0118, 0xe008f250, 0xf38281a2, 0x99a06da5, 0x0a7d7803, 0x1462002a, 0x0039b040, 0x302000c0,
			0x1f27150b, 0xcb875d14, 0xcc180149, 0x252cb810, 0x18208150, 0x03181cc9, 0xab0b4200, 0xfc68301b,
			0xbe1088aa, 0x280e23c0, 0x5c000000, 0xc1800000, 0x08c7e808, 0x288c110e, 0xe3415ed8, 0x61514557,
			0x080002a6, 0xad001bb3, 0x1400191d, 0x0fe40047, 0x44010000, 0x4f1022b2, 0xa80806be, 0x46d82d2d,
			0x51000018, 0x200e2801, 0x3708032d, 0x23080000, 0x7071159a, 0x14001484, 0x01603f00, 0xc0000040,
			0x08770004, 0x8f4080ac, 0x9080000f, 0x80808e11, 0x00008076, 0x7600df40, 0x1d01fc01, 0x400001e7,
			0x3f95856c, 0x0000e07a, 0x5988c880, 0x81a063ad, 0x0d031027, 0x79e20120, 0x0000a755, 0x90ac3e62,
			0x08800136, 0x0f2de400, 0x0c2008aa, 0x8004f857, 0x3c100c5d, 0xee006f6d, 0x95611021, 0x0401eb6d,
			0x922f2011, 0x20184550, 0x16ee0e48, 0x002f2800, 0x702ef000, 0x330dc187, 0x2004010c, 0xfcf91046,
			0x40022a85, 0xb6fe1501, 0x1fc00760, 0x08e2f9d0, 0x806ec400, 0x00006c80, 0x55088c11, 0xe610c0b1,
			0x8f03941c, 0x2bc28005, 0x47a10f80, 0x0361a00c, 0x0003bfe4, 0x11841108, 0x0086013e, 0xbc8560f7,
			0x0045d85d, 0x06fc13c1, 0x0ebe0060, 0x1e9c7e20, 0x82221540, 0x84300aec, 0x4ca503b8, 0xee815415,
			0x08568001, 0xf5f80000, 0x00e5c193, 0x60044210, 0x218d9770, 0xe15819c0, 0x00001cdb, 0xce4001fc,
			0xa400008d, 0x0164809f, 0x80001080, 0x0c75b720, 0xda101961, 0x44000399, 0x26117001, 0x20008460,
			0xcc018a3d, 0x290a8001, 0x0635ec1a, 0xd909e81a, 0x00071a31, 0x28800101, 0xc0000064, 0xdf1caf0b,
			0x31dc015d, 0x311c9bb4, 0x2d481850, 0x0000fcfc, 0xb1001bb3, 0x14001e75, 0xb1fd385f, 0xc021060e,
			0xdc7772da, 0x88095680, 0x01c651f6, 0x091f8340, 0xa000aa78, 0x2b89c353, 0x73080011, 0xe2a7af88,
			0x000c9586, 0x00de1f90, 0x00000080, 0x1d02000b, 0x554e12d8, 0xce00002b, 0x1e7d5431, 0x90550062,
			0xc1989980, 0x80111000, 0xa8064d47, 0x40febac0, 0x401dc090, 0xa55aa000, 0x82a0631e, 0x378c0404,
			0x01b80034, 0x000b49e0, 0x0075dfa0, 0x1040001e, 0x99540c42, 0x1cc01535, 0x66e581d0, 0x0834c430,
			0x84016450, 0x8d6f4d01, 0x86003d35, 0x79a2681a, 0xc41becfc, 0xe70e8900, 0x002c0d03, 0x2000f1f0,
			0x55780000, 0x30900d32, 0xa73f3bd8, 0x5a9a37dc, 0xaf807c25, 0x07b31c06, 0x1028d500, 0x0bc01400,
			0x34081ecc, 0xe8fa0401, 0xe6d00f0a, 0xc33b0024, 0x89008001, 0x1e1e091b, 0x8e1aa01e, 0x00097c91,
			0x8c0477c8, 0x26554c95, 0x605bc8ab, 0x06c7010f, 0x527602e8, 0xf8b01271, 0x03c30636, 0x3a810f60,
			0xaaa3c228, 0xc4980778, 0x30217c38, 0x8e888931, 0x818c542a, 0x0df6d80a, 0x6dc00100, 0x20070078,
			0x10528cd1, 0xb1101632, 0x06712883, 0x03820050, 0x6fb91e54, 0x40400b40, 0x0ea60a0e, 0x32569088,
			0x085f0224, 0x0e2e2810, 0x0720021f, 0x6201e2b8, 0x41914000, 0xf5368e3f, 0xf3108448, 0x0410c608,
			0xc48c01ba, 0xc1080000, 0x3014c543, 0x019000f8, 0xa9873cd0, 0x14a362c7, 0x101ecfa6, 0x7001e800,
			0x84403fd9, 0x905c2876, 0x0001cd00, 0x4c12ffc0, 0xe40c263d, 0x819668b6, 0x1c086e9b, 0x8009c000,
			0x8ff1435b, 0x78000004, 0x321c9de0, 0x0ed13003, 0x07c2a640, 0xe03a0080, 0x1e89af08, 0x5d8b075c,
			0x0f000019, 0x050cb001, 0x36890813, 0x659c8380, 0xc01a52c0, 0xf6000063, 0x64530560, 0x00178c68,
			0x5c337807, 0xb5cc0096, 0x10308003, 0x11b001e0, 0x00062100, 0x82983f90, 0x00c0641e, 0x6d2d0000,
			0xaf4204b2, 0x630a19dd, 0xbee8cc16, 0x114fe8a1, 0x9a0f0480, 0x0201fde3, 0x07c22812, 0x3b1474f2,
			0x605a999b, 0x00b43800, 0x8065c600, 0x3e7f0004, 0x115c0f2c, 0x0cc931b8, 0x8c630610, 0x459568d8,
			0x7ab30583, 0x2326bded, 0x22813440, 0x1d909531, 0x59b91001, 0xf649f2bf, 0xbdf6a196, 0x2d100017,
			0x95a807e0, 0x56142015, 0x0e2ca648, 0x7d7c5e9d, 0x924cf402, 0x71cd0ddf, 0x8d0160b1, 0xd710045d,
			0x4f4c10e4, 0x0069d4ea, 0x6cd8f060, 0x22606802, 0x4c006efc, 0x1800c1f0, 0x0ba41d11, 0x7a724200,
			0x1cf80a1c, 0xb2d38300, 0x536a31a7, 0x3221adc9, 0x60ad7f28, 0x6173b411, 0x4d935207, 0x07f8c0b9,
			0xc0001bc0, 0x944f5488, 0x1b9f6d88, 0xb03876a2, 0xecfbf030, 0x100b80c8, 0x8b0f1a07, 0x2feb8406,
			0xb6a12411, 0x166e2e4e, 0x3e4098bf, 0x8d855800, 0x00500619, 0x1becff63, 0x2d7a2035, 0x6d198911,
			0x7430dab0, 0x124854c1, 0x11fd13ec, 0xb6c06f24, 0x857c22a8, 0x7e11fc5a, 0xe379dc52, 0x40c10182,
			0x47fd03af, 0x5eecc000, 0x6019d63c, 0x2d830737, 0x0f1c5505, 0x5ee7fb90, 0x37700d88, 0x05f7629c,
			0x46281b44, 0x1f48a4a0, 0xb248a674, 0xa540152d, 0xef6afa5f, 0x63a0cc3c, 0xd459d559, 0x093af940,
			0xbc28896c, 0x233bcfa5, 0xe0058f8e, 0x81079a1f, 0xf29e20f5, 0x6786331d, 0x293cd064, 0x0158e5ac,
			0xda767dfe, 0x0a980ad4, 0x575bf883, 0xb4b30805, 0xbf6f5106, 0x50c13c66, 0x92cb5bfe, 0xc4523ea1,
			0x80e8a512, 0xb11d2ef0, 0x059ef1a0, 0xab129002, 0x91115902, 0x34414c12, 0x79bfe0ad, 0x00d40968,
			0x8881cb04, 0x26f25170, 0xd749fdd1, 0xc40f0ccd, 0xd7023992, 0x65ef4502, 0x0debc74c, 0xfce13e00,
			0x72c32984, 0x46fa4269, 0xe45a0c57, 0x24dbeb2f, 0x8ace4068, 0x5a24d106, 0xcc7631fc, 0x974d38f7,
			0x1724645f, 0x19c60563, 0xbc50feb2, 0xe262198c, 0x147daaca, 0xe0df5055, 0x275eebf9, 0x92704cfd,
			0x468202ab, 0xa236051b, 0xdc1f48fc, 0x793383a4, 0x8dad4015, 0x66198b79, 0x3fa27749, 0x70d54294,
			0xa7993d82, 0xfdfc29e8, 0xaf807bca, 0xcfa0158d, 0x206c7f42, 0x17fc1e4b, 0x645fe67b, 0xb8b9bcd1,
			0x3c015ce5, 0xe2c5f647, 0x010a0538, 0x52af30a3, 0x3644b24c, 0x66a9add1, 0x16557164, 0xa192c350,
			0x8a28563e, 0xff000134, 0x4fbc2d0e, 0x88859ef1, 0x02331851, 0xe2911159, 0xac9540b2, 0xaf1d0fe0,
			0x04015509, 0x08aa00cb, 0xa5223240, 0xcc679f7d, 0x93a8190c, 0x02d70740, 0x57816fd5, 0x000dcbd2,
			0x4530e63e, 0xc954c312, 0x6096e720, 0x9be45a00, 0x15f49beb, 0xde8acac0, 0xa95b14e0, 0xff643630,
			0x5ea74d66, 0xf33fec71, 0xe91c4664, 0x203ceefe, 0x0aa26219, 0x551dfda4, 0xeb42df50, 0xf4a66306,
			0x5f7e7074, 0x0b468023, 0x54a7c628, 0x26dc0ec9, 0x156d33f4, 0x539dad40, 0x0566186a, 0x995f63b7,
			0xc310cd26, 0xe8a0192b, 0x4afd7029, 0x807eb0de, 0xeabfa015, 0x2b30e37b, 0x7b17f31c, 0xd1f00806,
			0xe5b8b9bc, 0x473c015b, 0x5754d8da, 0xa7010a05, 0x4cd6d77a, 0x510634a1, 0x64664caf, 0x5bffa0c1,
			0x3ea192a0, 0x388ac132, 0x2ee70000, 0xa639ab1d, 0x90024513, 0x7c022b16, 0x55a29011, 0xe0ac9541,
			0x09a84e2f, 0xcbc40155, 0x61188881, 0xf0f12298, 0x0cc35e99, 0x01920819, 0x5502a86a, 0x4f8c816f,
			0x3c01d808, 0x0ac6d4fb, 0x0a6354c3, 0x0009dee7, 0xeb9be45a, 0xc0154c9b, 0x69068aca, 0x20a05508,
			0x157efd8e, 0x684ea74d, 0x6023764c, 0xfa011c46, 0x14aa01bc, 0x884a5622, 0x70000009, 0xba5a86de,
			0xbc74a662, 0x00dd3e60, 0x280b4680, 0xa554a556, 0xd5b0fc0a, 0x40154f53, 0x8fdde3a1, 0xd3056607,
			0x06193e0d, 0x20831000, 0x2a84a019, 0xde86fd50, 0x1d807a2b, 0x579bbfc0, 0x3c2b301c, 0x4a6b1880,
			0x24d1a000, 0x54a1a5a8, 0xdc2b7c01, 0x055132d0, 0xf4b8820a, 0xe150001a, 0x1f6b860d, 0x10c40002,
			0xa00baf20, 0x015ca14a, 0x00009a81, 0xed6ee700, 0x0a8007a5, 0x0316050d, 0xdd680001, 0x25702280,
			0x0fc1aa55, 0x980eb496, 0x2e208001, 0x540004bd, 0x0960ab68, 0x3100001a, 0x6a019208, 0x6fd502a8,
			0x007ea480, 0xcb442000, 0xa0000c61, 0x85881d42, 0x4a000000, 0xb6068057, 0x7e800c40, 0x039d2402,
			0x08200000, 0x000122a7, 0x58602a15, 0xc0000680, 0xb012010c, 0x02006200, 0x1029cc15, 0xd0b40000,
			0x00111132, 0xa10750a8, 0x81943020, 0x00000002, 0x00000006, 0x81ca80a8, 0x08000000, 0x0088a9c2,
			0x000a8540, 0x00002006, 0x1001bb30, 0x400001c0, 0x90400551, 0x40100000, 0x561408a0, 0x00806a15,
			0x3000580a, 0x90000100, 0x00000014, 0x02003a8a, 0x00800000, 0x22205082, 0x000140aa, 0x00000000,
		},
		{
			0x00000000, 0xa0000808, 0x00000800, 0x6614d248, 0x10004310, 0x1d000000, 0x40f38800, 0x000d0000,
			0x20004c40, 0x00805007, 0xb9204000, 0x88000094, 0x000300e0, 0x0188a400, 0x08400000, 0x0a00e000,
			0x00024039, 0x85000000, 0x40000299, 0xca000024, 0x00ea0000, 0x42004c00, 0x40040008, 0x2016a1c8,
			0x280800c0, 0x88802520, 0x50003920, 0x2e280084, 0x10000040, 0xd1c00042, 0x00150e40, 0x404a8000,
			0xc4000e61, 0x0a000186, 0x3a800000, 0xd0000400, 0xc0080210, 0x01a85000, 0x020195c8, 0x00014014,
			0x929c4bb6, 0x0408628c, 0xa0003288, 0x16311077, 0x00e28008, 0x106dc000, 0x100398c4, 0x309a5db0,
			0xe0430a51, 0x04a00001, 0x928e003d, 0x55156040, 0x64ac0201, 0x0672c928, 0x27186500, 0x1210bbb9,
			0x43002726, 0x9b3001e3, 0xc8afc20e, 0x80000000, 0x010b4346, 0x26d70000, 0x68c3816a, 0x120003e0,
			0x98000ac0, 0xf57e0478, 0xa15c0055, 0xd1330a22, 0x03300000, 0x001c9f60, 0xe6009904, 0x00184401,
			0x6bf00020, 0xda000027, 0x42cc1117, 0x1c9f8b00, 0x000ba1e0, 0x01a54018, 0xe0c23a00, 0x4b816630,
			0xc00019db, 0x18000ee0, 0x78f9d057, 0x8cb80420, 0x005c3000, 0x0610d000, 0x5c0019ff, 0x8da06eda,
			0x74242df0, 0x96ce8011, 0x622cfb83, 0x2d300f88, 0x3027a000, 0xe1888db1, 0x780676f2, 0x00a4054c,
			0x3674105a, 0x1af1300d, 0x3c9fc043, 0x841d0060, 0x20445914, 0x001ab396, 0x01002db0, 0xb3a0846c,
			0x3cb92108, 0xac038209, 0x20e9430e, 0xf465d3e4, 0x0047bcbe, 0x29037400, 0xcd000154, 0x01cc030d,
			0x0761084d, 0x17c01020, 0x05a1b821, 0x007d0037, 0x40038000, 0x6801b301, 0x42480cfe, 0x10a88634,
			0xfe00ccd3, 0xaccb1102, 0x115501b8, 0x001ed080, 0x51001500, 0x13e0cde5, 0x844431a6, 0xf37003e8,
			0x0d981045, 0x01681fc4, 0x02590000, 0x086fc850, 0x8ce332b6, 0x2a209a03, 0x84300e9c, 0x003c8234,
			0x09400021, 0x12812d44, 0x00004008, 0x2f2a1530, 0x0184d018, 0x01000f50, 0x49c410b8, 0x4580011a,
			0x9400e800, 0x1ab00036, 0x04482980, 0x800160c7, 0x0ce054ce, 0x062c8040, 0xc0018000, 0x69600102,
			0x8620ea2d, 0x01578d10, 0x10003a0e, 0x001edde7, 0x3d640232, 0x40062000, 0xe0000116, 0xbd297fe9,
			0x33816086, 0x485801e8, 0x10f68151, 0xe82011c0, 0x26d10687, 0x4ad440b1, 0x853a882c, 0xc5ab0000,
			0x000018f1, 0x1e03005c, 0x01108600, 0x769d1a3c, 0xcf00446d, 0x4a4332f4, 0x6a450504, 0x0188a040,
			0x01688450, 0xc8843a4e, 0xa06047e0, 0x00102c2b, 0x08200b3a, 0x4125a042, 0x03a0016a, 0xc0de6000,
			0x44225001, 0x0268e3d6, 0x1800095d, 0xd7faa131, 0x85ad001a, 0x003e9802, 0x03bb1c80, 0x21f0000f,
			0x10692682, 0xec004b06, 0x01a1acd8, 0xad280010, 0x10f70312, 0x97440000, 0x8c80000f, 0x91f91a1d,
			0x001dc430, 0xbe85b438, 0x49508298, 0x7200c9c7, 0x59201001, 0x401ee02d, 0x06f8d5e0, 0x01126003,
			0x33e83801, 0x5a062185, 0x0007727a, 0x245585a0, 0x22800a0a, 0x17142c02, 0x00d18618, 0xc18e2800,
			0xd000a65c, 0x7c32799a, 0x41bc6c81, 0x44107c3a, 0xa7a0201f, 0x449d70c6, 0x0c3accc0, 0x9d7e414a,
			0xd1ccc0c8, 0x1d600103, 0x044c2619, 0xc5210004, 0x28119315, 0x6121e710, 0xe82801f0, 0x52dcea56,
			0x6d001c00, 0xa9732930, 0xe1080410, 0xe548e637, 0x91538c95, 0x7cd9001f, 0x3cd407bf, 0x080b63ac,
			0xa0a011c2, 0x1e310166, 0x0df30008, 0x4f39106f, 0x0ac54bdc, 0x37f0bdf8, 0x40431681, 0x1b63d901,
			0xda10615d, 0x0b99e978, 0x14c40579, 0x50509087, 0x376c0e00, 0x0218ccb7, 0x43cd1102, 0xc4c403f1,
			0x7d844bcd, 0x38001ac0, 0x803cf73d, 0xe1a11802, 0x8a848041, 0x1e8f01a4, 0x40201d90, 0xc6ab6669,
			0xe2c00042, 0xf925615d, 0x5f98c000, 0x520f8184, 0x1104cd90, 0x0110020a, 0x1540f568, 0x4080401b,
			0x0e1dcfeb, 0xc4c78088, 0x00c90035, 0x38582920, 0x0e900450, 0xaa151639, 0x40013ad8, 0x40587f5f,
			0x35b5005e, 0x05c8ff89, 0xd4eb6401, 0x04003e0c, 0x50ad4c40, 0xcd0446d0, 0x8763a2d0, 0xb1a82103,
			0x0020f96d, 0x4afa48a4, 0x2b3d0000, 0x80805c40, 0xf02637aa, 0x16e058ac, 0x8d401000, 0x19384268,
			0x1f858520, 0x9600a000, 0x0f528210, 0x0111a155, 0x78cad410, 0xca0846d4, 0xaa05497a, 0x4b75102c,
			0x0017001b, 0xc9638b80, 0x09ad4aa0, 0xca54a400, 0x400000b8, 0x8e060e9b, 0x029951c4, 0x11c0104c,
			0x8b08d800, 0x590adcc4, 0x0b487201, 0xf52cf796, 0xb401ffa4, 0xb4447f01, 0x540081ca, 0xcaa00009,
			0x8872b100, 0x751d4002, 0x91a14161, 0x2042f00e, 0xbe500008, 0x2ed102f0, 0x33800084, 0xdbc59481,
			0x84a50054, 0x863d1481, 0x14b57eeb, 0x11015d00, 0xa8000f9d, 0xb9100435, 0x2a2dc400, 0x2520c0e1,
			0x48514800, 0xf4677edc, 0x08168bf2, 0x89cc182a, 0x96770497, 0x7848bc64, 0xc9d82023, 0x15c52061,
			0x309af6e0, 0xc0e32b85, 0x48a06308, 0xcf802e2f, 0x15494142, 0xfd7800cb, 0x0666b023, 0x7563a601,
			0x71bbc825, 0x68fa20ed, 0xcae4a21b, 0x9b0b1c3a, 0x500001f0, 0x651545bc, 0xb0110085, 0x919fb068,
			0x7bc737c2, 0x587d1220, 0x3e5a4386, 0x540508a6, 0x077f1f84, 0xedee7151, 0x13a710dd, 0xc40253bd,
			0x02f00314, 0xe76ce2f0, 0xcf8804e0, 0xf84ff264, 0x0a2e0c09, 0x81d49aa9, 0x283df8e9, 0x1d662ae8,
			0x02e3f520, 0xe713052a, 0x3363e1ff, 0x7a77757e, 0x8ac87d7a, 0x421a180f, 0x020f7c77, 0xdfdac4a0,
			0xe84f4881, 0x5757e8b3, 0x09376089, 0x63581845, 0x464611bf, 0x250ea197, 0x16accb71, 0xfc887e10,
			0xd48e4991, 0xaeac4126, 0xad578850, 0xc25b8a19, 0xdcbd1c8a, 0xcab87380, 0x626ab0f7, 0xb3d089f8,
			0xf6c0a5b6, 0xd185bf53, 0x87e3512d, 0x7ebd9323, 0xd38111fe, 0x03f72662, 0x11a76e72, 0xae4673d8,
			0xb8841022, 0xe2d29bfc, 0x1c041fa0, 0x9b5b0460, 0x83a447b6, 0x4ec43211, 0xf03c8dfe, 0x529c7945,
			0x384f9c35, 0xaa11f585, 0x97fb3115, 0x3e9b53fa, 0x92e11003, 0x81b6250a, 0xa169c75c, 0x7c3fae98,
			0xd38a0ec5, 0x3c190941, 0x21cf79e6, 0x95d38818, 0x099e0360, 0x24a623ec, 0x1120c0a2, 0x6f333d66,
			0x0817663b, 0xb34b3f54, 0x77e751fb, 0x5333731e, 0x08f0c764, 0x0902683a, 0x70a7de2c, 0xb8020f0c,
			0x59921a8d, 0xf3308f8c, 0x9184e014, 0x2e5fbb60, 0xff6349bb, 0x4406638c, 0xf125fea1, 0x90812ccf,
			0x91903e58, 0x26ce20eb, 0xc0aac811, 0x99bc9686, 0xa5a2570b, 0x81d3bc7c, 0xf7cab873, 0xf807db90,
			0xb0c20799, 0xd3f6c8a5, 0x29e19fe9, 0x83866351, 0xc47eb6a1, 0x92438110, 0x752ff726, 0xea9133ee,
			0x22ae0673, 0x4cba48f4, 0x20e2d287, 0x601c0438, 0x321b5b04, 0x0863a56b, 0x6a4f1432, 0x4df03de0,
			0xb55445d9, 0x45384c08, 0x1aaa1465, 0x1907fb31, 0x033e9b58, 0xaa90e110, 0x1c810229, 0x981379c7,
			0xd57c242e, 0x41c5ca0e, 0x22bc1901, 0x3834cf79, 0x60e5d388, 0xed8bc506, 0xa21a0e23, 0x66112080,
			0x3bdc1999, 0x94080486, 0xc38b4b26, 0x1737e751, 0x647e335b, 0x1680b0c7, 0x2c088068, 0xdd72df8a,
			0x8db0000f, 0x7d8b92d2, 0x09f33098, 0x000745a4, 0xb480dfbb, 0x8dc86349, 0xa1442f63, 0xcfb1210e,
			0xd6908095, 0x0b919081, 0x1126c400, 0xa4e5aac8, 0x0a21a21d, 0x1ca5b657, 0x71807cbd, 0xe0f686e8,
			0x24f80227, 0x80009300, 0x0afbf6d8, 0x510d159d, 0xa189ce63, 0x00c47ebd, 0xa6924f41, 0x9e75001d,
			0x7394190b, 0x3d62b646, 0x83fcb848, 0x3024e2d2, 0x04601c04, 0x2b321d4b, 0x320980f0, 0x405702d4,
			0xb34db000, 0xde355443, 0xa2f0284c, 0x3107aa14, 0x98193c7b, 0x1008643b, 0x444a1ee1, 0x971c803f,
			0x2e9e92ca, 0x0c5c3424, 0x1881d1ca, 0xe8e2e419, 0x80233d0b, 0x0960e7d3, 0xd2ed880d, 0x74a21242,
			0x99221121, 0x423bf819, 0x20940804, 0x100a024b, 0x43033667, 0x57642c73, 0xc816a2fe, 0xf07c090f,
			0x21dd7302, 0x010db006, 0x9851c393, 0x64b1f330, 0x3b000405, 0x5d3480b4, 0x728dc863, 0x7aa14a2f,
			0x95cfb110, 0x84b5b081, 0x050b31c0, 0xc80066d0, 0x7b282276, 0x5f02430e, 0x1d1ca0e8, 0x2e008188,
			0x25d9f68e, 0x2951d802, 0xc000d0cf, 0xad24c516, 0x231210a4, 0xbf818d8e, 0x4a804423, 0x046fb209,
			0x42067100, 0x00015d31, 0x6a2884b6, 0xc0908001, 0x47300807, 0x90406207, 0x3e683010, 0x54320900,
			0x0199324a, 0x483045b1, 0xc48635d6, 0x00a2f2b9, 0x231116ea, 0x75428091, 0xb1140001, 0x00574050,
			0x8a292d80, 0x2430aeb2, 0x5f0e84d0, 0x180001d1, 0x2a180488, 0x1c004001, 0x664c9281, 0x0c0de000,
			0x21140392, 0x30001e71, 0x04001334, 0x50a02108, 0x00000009, 0x00001408, 0x8ab00000, 0x88a01162,
			0x40003408, 0x00006001, 0x85004818, 0xd8c0004a, 0xd330a040, 0x56800018, 0x00d1c802, 0x00059c40,
			0x0000000a, 0x28000480, 0x70000280, 0x01c90200, 0x04001000, 0x11ca1800, 0x100c8200, 0x00000000,
		},
	},
	{
		{
			0x087b40e0, 0x6a2a8010, 0x0008674d, 0x8f180000, 0xa340059d, 0x9be10000, 0x40000005, 0x43d7e000,
			0x51540080, 0x000f1463, 0x1880008a, 0x100022e0, 0xa00b08af, 0x0d0d004a, 0x7bb0faa0, 0x8400040e,
			0x0019533a, 0xa400a240, 0x00000a29, 0x20404150, 0x00000000, 0xf67bec00, 0x00002010, 0x03dfb1d4,
			0x2046e280, 0x8000d200, 0x08a02002, 0x00000a29, 0x2c0e0ba7, 0x0a010005, 0x04412c00, 0x00689000,
			0x00415af1, 0x6f000014, 0x0000514a, 0x76800400, 0xd0080028, 0xed815c00, 0x54e8a201, 0x032c296b,
			0x338aa000, 0xb8041be0, 0xf98a00c4, 0x80400148, 0x39f4e00e, 0x10000001, 0x0987db84, 0x0c151140,
			0x4001d328, 0x3a610fb1, 0xa3801651, 0xad224020, 0xee2881e6, 0x4e9f40e4, 0xc215ac80, 0x000ecb3c,
			0xab00000a, 0x1c00b116, 0x305b81a5, 0x01140c3e, 0x539a5000, 0x19872006, 0x00a04ec4, 0x8a801a1a,
			0xe01c166c, 0x22956488, 0x8e807d0d, 0xa4c27d6e, 0xc9700000, 0x00305c80, 0x2c0c4900, 0x00271d48,
			0x74ab6447, 0x85030f90, 0x78ae0037, 0x00050001, 0x142adaa2, 0x974e0000, 0x01329800, 0xed5e663a,
			0xa006168e, 0x224c00e3, 0x52400019, 0x0e361711, 0x00000000, 0x09944b00, 0x36fbefd0, 0x0201c367,
			0xd8d3e8a0, 0x92000107, 0xb370930a, 0x00146800, 0xbb72ec20, 0xa1c97e81, 0x000648ad, 0xd24c38e8,
			0x1140084d, 0xc57c0800, 0xe4314001, 0x691bf061, 0x444a55a2, 0x81fc7a35, 0x15f88000, 0xc2004dc0,
			0xd3f4c014, 0xd00a0fa2, 0x60ff0b7b, 0xa252ad00, 0x0c6d44db, 0x93063a00, 0x400201b1, 0x09e21c1e,
			0x00007d07, 0x4268d5b0, 0xeb956802, 0x639cac9c, 0xc0214020, 0x00ef0b0b, 0x1129c9e0, 0x028141cf,
			0x5f878800, 0x9cab4016, 0x1b3734e7, 0x01968003, 0x00981044, 0x50336114, 0x14001d4f, 0xc7ab1e43,
			0xff400054, 0x2b7c435c, 0x3fd00816, 0x3b88e3a0, 0xccd008a0, 0xa0004639, 0x24b00800, 0xe40002bd,
			0x07e0a2e5, 0x65a000b0, 0x24635996, 0x39cbc000, 0x00036556, 0x8d5b0000, 0x2001945b, 0xdb1d1ffb,
			0xb000048d, 0x067000fe, 0x0e7e0000, 0x0001acb0, 0x89400000, 0x002011be, 0xf6a2458c, 0x68002c12,
			0x0b2376a9, 0xa1014680, 0x0cf60b45, 0xd1e4b000, 0x010ed4ef, 0xe903ac60, 0x011442e0, 0x85000c04,
			0x11de2001, 0x6763645b, 0xcad01a1a, 0x086e5960, 0x9fcd7e40, 0x44800cd3, 0xd0db665b, 0x3ea00167,
			0xb074431c, 0x90000001, 0x5af7dcf7, 0xaf92b200, 0xc500667c, 0x849f018d, 0x80050012, 0x169205dd,
			0x174e0000, 0x1da0cf88, 0x7450d400, 0x2008ee9d, 0xa64a9651, 0x14404130, 0x02285440, 0x430000cf,
			0x085a111e, 0xe2862000, 0x00568fcd, 0x8166e360, 0xa200c691, 0xa3c78c00, 0x00000678, 0x43831208,
			0x15e90001, 0x0355c68f, 0x256d9448, 0x00167108, 0xda69cbc0, 0x25e01b0f, 0xda797bc0, 0x6f1d0022,
			0x15df223c, 0xa7800000, 0x46800ed1, 0xe02c7e01, 0xe000010b, 0xf5aa0174, 0xade82111, 0xc635894e,
			0x5a6d1314, 0xa41a661e, 0xc71711dc, 0x1a1a0cfd, 0x7d9476f0, 0x7a010890, 0x695d0c25, 0x4c005085,
			0x0c214913, 0x4e8082a0, 0x1a001e2a, 0x6d1c5c1a, 0x10085cad, 0x818be136, 0xda8dc535, 0x207dc7ef,
			0x836c3505, 0x000050c9, 0x19932510, 0x9504a364, 0xd1e4afb0, 0x0014214f, 0x16cdc923, 0x6fe2ad29,
			0x14177a19, 0x65264e01, 0x7e31119d, 0x703d9ad1, 0xe63b5e3d, 0x9487a9e7, 0x06000000, 0x48136731,
			0xab8b00f1, 0xf129270a, 0xa2b56687, 0x0000045a, 0x05849458, 0x00801140, 0x40011ca6, 0xc6a1a521,
			0x29e63ee9, 0x71a1203e, 0x14d62e2a, 0x3576fdef, 0x04009207, 0x1237fcca, 0xeb00400a, 0x072e167b,
			0x9c7600a5, 0x00004315, 0x4ab61604, 0x099cc000, 0xa2200cfc, 0xb7800001, 0x28697930, 0xd5a171c8,
			0x75a07ebd, 0x0db9fb91, 0x4ce00183, 0x4452a440, 0xc00f1608, 0x59e7947e, 0x2d0b8e41, 0x6003cf73,
			0xb5178069, 0x00000e50, 0x6c893404, 0x000000f8, 0x0994fa51, 0x685c720a, 0x6813ddc0, 0x2c7f003d,
			0x01806257, 0x95a558a0, 0x00000122, 0x07a02a00, 0xa2f58a50, 0x150e4cdc, 0x654a9a58, 0x0c17d08e,
			0x07f9d400, 0x000009ba, 0x78e91000, 0x11365281, 0xa802b0a5, 0x9f240f5a, 0x00babedb, 0x3c708000,
			0xe96018ec, 0x7879fac0, 0xb9e7958b, 0xeee3f9a1, 0xf4800004, 0x469e61c1, 0xf0420001, 0x600013a0,
			0x13ebc1a5, 0x4f3ca103, 0x01ce0101, 0xf807d7be, 0x2627644f, 0xba8a1046, 0x4a0aa783, 0xd9c8bda5,
			0x052515ab, 0xbb289ced, 0x6801509a, 0x0c475e3f, 0xc86850e0, 0x009bc08f, 0xb8376c00, 0x6939ed91,
			0x497f3478, 0x21792410, 0x67cd659c, 0xe2d281a5, 0x014d98e7, 0xe1580216, 0x49850bee, 0x7bc54903,
			0x2db43277, 0x63721de1, 0x3ca00d25, 0x000c5b53, 0xd4000000, 0x943b6d5a, 0x492d5c12, 0xfb190625,
			0xa0ed971c, 0xb6750073, 0xee0dd218, 0x5a3000f4, 0x200166ee, 0x9eb0e3c0, 0x78009335, 0x99c2b17f,
			0xa3281151, 0xe8caa51c, 0x49602ca8, 0xa19d8170, 0xe88d9041, 0x0a403961, 0x1cc07c45, 0xc40fcb3f,
			0x64d78822, 0x8b18681a, 0xad9d829e, 0xfd5557a9, 0x0130aadf, 0x70885c04, 0x0b6ab984, 0x0e7ce868,
			0x6bc40a19, 0x6a983599, 0x3399754d, 0x955dda0c, 0x8e5aeb16, 0x00914bae, 0xa31be470, 0x094f460c,
			0x1b300b9a, 0x0cf34a7a, 0xa9117555, 0x8b3aa090, 0x94a7cae6, 0x84d9e7b6, 0x269a007c, 0x65f6daf6,
			0x657f139d, 0x1dd35f49, 0x55d69884, 0xf5cdbe3a, 0xb4fb32a3, 0x1e01143b, 0x9881a026, 0x11e2cefe,
			0x1c388b42, 0x6fb9617b, 0x26009099, 0xf6e28a63, 0x5510c9de, 0xb6c3ea64, 0x19887755, 0x5a1e1e05,
			0xf8c3710d, 0x1128f72b, 0x89bdf2ad, 0xad095a89, 0xec6603a1, 0x30160f23, 0x7969f91a, 0x6f67c886,
			0xc69eb4c2, 0xba35ca40, 0xa14a1dc4, 0x93467969, 0xd410b414, 0x34dc7e1b, 0x80084296, 0xf5882b3c,
			0x259031d2, 0x015afc95, 0x25496760, 0x6c2fd828, 0xf2ae436b, 0x89f290a2, 0x017ca290, 0x76a70210,
			0x0ca75785, 0xfbdae54a, 0xc17b9b0e, 0x4b21e232, 0x56ac0d33, 0x448d4444, 0x391cf111, 0xa4f38a7d,
			0xfabf4784, 0x149fd854, 0x8fffcb16, 0x2c4d6935, 0xf585cce3, 0xe944aded, 0x0124116a, 0x0f969a01,
			0xb6a57413, 0x17481df2, 0xea49435c, 0x3c15e8ff, 0x42bc8c0d, 0x3487ae14, 0x30ec00b4, 0xa08d0b88,
			0xc57eefdd, 0x124f581d, 0xd40b8dcb, 0x696c6980, 0x6737e3ea, 0x6c552524, 0xa596ebba, 0x8a614eed,
			0x92eb58ca, 0xbeb47aaa, 0x8d11944e, 0x9739b6e5, 0xa0f5c95c, 0xe5ec6103, 0x6f767699, 0x860f7f6a,
			0xda2f67c8, 0x40c69ab4, 0x377b3fb3, 0xce214a1d, 0x10934e78, 0x9be7156c, 0x1b443cef, 0x3e9f7ea4,
			0x46f0973c, 0x613d9025, 0x60014312, 0x305fc967, 0x6a3c0a2d, 0xc985af43, 0x8089f290, 0xb0007d8a,
			0x0536b33a, 0x4a1a4523, 0xcdfb8684, 0x38405b71, 0x7cf205e2, 0xc38b15ad, 0x10526884, 0xfb39b811,
			0x4614cfb4, 0x548aff45, 0x421d8efb, 0x4846ffcb, 0xe250ad6b, 0x0895cbc8, 0x694144ac, 0x00a18b29,
			0x4ebf969a, 0x52fe8384, 0x370f481f, 0xff842153, 0x518d69c8, 0x0903f5cc, 0xb5aba0cf, 0x2030ec00,
			0x5fe08d0a, 0x055d7ef6, 0xd42a48a7, 0x1886ea08, 0xea632600, 0x283a2c45, 0xba6c5525, 0xffa5e6d6,
			0x0eca6128, 0xb108d469, 0x7361bc3a, 0xe58d1105, 0x4cebb846, 0x03a0d9e9, 0x08826866, 0x5a648d46,
			0xc8862839, 0xf0b78e37, 0xb340c68f, 0x1d3b0e3f, 0x7969a14a, 0xec098346, 0x6fc43e91, 0x42948819,
			0xbc988f78, 0x31d2f559, 0xf505a590, 0x7040015a, 0x20565f88, 0xfbc1380e, 0x90a6601f, 0x99d089f2,
			0x449002db, 0xc4c776a6, 0xc54a1a81, 0x1ae53b86, 0xa760607b, 0x0d2612ac, 0x9c438bb8, 0xd11101c8,
			0x5cf73db0, 0x0d9c1400, 0x11bd4d5a, 0x43431c82, 0x69811326, 0xa4e27ca5, 0xac082a3a, 0x19196c74,
			0x9a00a18a, 0xcc246396, 0x1f4bb690, 0x446ea294, 0xc8906e09, 0x2c002a09, 0x4f6b4318, 0x00b5ac6d,
			0xe4203704, 0xfa5da087, 0x01659c7e, 0x08df2248, 0x001885ea, 0xc8fa6449, 0x25280414, 0x63ba6c55,
			0x3aeda5b0, 0x040fd669, 0x041b80d0, 0x1002886f, 0x34db0d11, 0x0140008d, 0x0cd9a000, 0xd698811f,
			0xc8da84c5, 0x37c88601, 0x86756b7a, 0x3ec75186, 0x0a1cc185, 0x0719f680, 0xb4ec00d2, 0x7e7f2c2e,
			0x06e0940c, 0x0213f671, 0x742a8870, 0x5aef5e35, 0x4370000b, 0xa6201eca, 0xb2f30175, 0xf384a066,
			0x991adc8d, 0xa9100000, 0x80c6e48f, 0xb1200002, 0x3b003ec2, 0xd5530bad, 0x0045031e, 0x99259841,
			0xc0811100, 0x00091b5d, 0xb6000014, 0xc2005410, 0xeaf05d67, 0x01280165, 0x46f642c0, 0x40088837,
			0x00cc9df8, 0xb00000a0, 0x1002f179, 0x97c2e960, 0x11400be7, 0x42a61000, 0x000000ae, 0x0b74a6e0,
			0x0001a1a0, 0x818dc006, 0xba01d100, 0x00001312, 0x0434f550, 0x0000000c, 0x00056000, 0x0035e000,
			0x00145008, 0xd00a8804, 0x5002f8a1, 0x44c40004, 0x00500015, 0x506a5800, 0x74e00001, 0x00000001,
		},
		{
			0x92205ca0, 0x404abf6f, 0x403c22f2, 0x94ce24e2, 0xe25318d3, 0x82bd006a, 0x00c13a75, 0x4d507cc8,
			0x005fa58c, 0x6e6acb02, 0xe00169c2, 0x43c84252, 0x1d406bf1, 0x3c09f3ac, 0xe18aa802, 0x12afd97e,
			0xcd8d6cb2, 0x3b2271bf, 0xe01ab485, 0xe00809dc, 0x286f5724, 0x8dbd0011, 0xbd3d76b3, 0x8cd06390,
			0x8542d5a1, 0x6c0000ed, 0x40403acc, 0x4387a9ce, 0x1d6cce89, 0xbdc180b4, 0x88bbbe76, 0x68e809f2,
			0xb9052f4e, 0x808217c1, 0x5793cc2a, 0x5140044a, 0x44a6882a, 0x6517e404, 0x1fbcb352, 0x5acb7048,
			0xbf449c42, 0x77fd99ac, 0x81f82f2d, 0xc7f62795, 0xae90b802, 0x64f3f391, 0x23c8e19a, 0xfa84098d,
			0x1a6a659b, 0xfc0cbfd5, 0x6dd67e04, 0xda54422a, 0x9f203e1c, 0xa11ceb7d, 0xbe916929, 0xa5cd9702,
			0xf01efa4f, 0x948a7ce8, 0x0e22408f, 0x09e844e6, 0xe179a01f, 0xf5a51f9b, 0x01ee94f0, 0x130b7802,
			0xbd453a2c, 0x1ea7ee2e, 0xd6b3e33b, 0x1a24b8e0, 0xe5ea96cc, 0x26d451eb, 0x0af6dedc, 0xcac49a92,
			0x8aaf77d0, 0x812e1c70, 0x73db7eb9, 0x17ff5de8, 0xdeb80e01, 0x451d1488, 0x0c5e2dd5, 0xe33804a6,
			0xa420cf82, 0x1eb8f91f, 0x06926e87, 0x1f02d076, 0x07fd3fe2, 0x73495183, 0x0795902f, 0xe7a549ff,
			0x9e550143, 0xdb6d028f, 0x0c646f16, 0x43a60877, 0x92e885bd, 0xe406e581, 0xd0a2f344, 0x92454079,
			0xb3f95c98, 0xb2c05332, 0x7e946e00, 0xd3a05527, 0x204b66bb, 0x7e937772, 0x2012ac91, 0x02e28668,
			0xb7ddce30, 0x2388ad37, 0xfec97cea, 0x2d3d5fcc, 0xf4c427d5, 0x2e31f911, 0x3485021d, 0x74941681,
			0x98996c16, 0x834d4359, 0x3ec90156, 0x0dbe5ef3, 0x9beb427d, 0xd33d4153, 0x1363863a, 0x5229c3c2,
			0x031bdd9f, 0xd6ae1337, 0x2d53eba9, 0xfe76467c, 0x0a22a513, 0x58bbf394, 0x7085bafb, 0xb056f8fa,
			0xe910cd91, 0x04100a99, 0xc5865e0f, 0xc3dad1a6, 0x35a68056, 0x685602a3, 0x079a74ba, 0x5bd482aa,
			0xd8f55cab, 0x1dc5f7dc, 0x01e79e27, 0x44900758, 0xbfdbd1c5, 0xe1f60685, 0x62f8f7f7, 0xe7a2f958,
			0x25ef3b4f, 0x907061b4, 0x033bea87, 0x6938b257, 0x314af793, 0x7b2f9c89, 0x4eb64593, 0xe9b6b7e7,
			0x86c08ae5, 0x3466353f, 0x0f39b21a, 0xb9c43ea0, 0x4bc919a1, 0xcc925688, 0xbd6900fd, 0xdcbdaeae,
			0xfc62ad32, 0x1991ef07, 0xf2a353fb, 0xdf2bf7c4, 0xdc33f1cf, 0x985757d7, 0xf83c5572, 0x773fdf2e,
			0x519e6410, 0x151a7e32, 0x98635b7a, 0xed800940, 0xc0908ac8, 0x0053ddc9, 0x663c32f2, 0xea3a1480,
			0x5b4dbcca, 0x0401b174, 0x3d13e339, 0x0d218502, 0x1b3a42b5, 0x6a8bf112, 0x75360109, 0x4b71a451,
			0x81cead1c, 0x07b6bbc0, 0x37468af0, 0x6291e6e4, 0x6b142a14, 0xac0bc8f2, 0x71a58d1f, 0x75b60232,
			0x47da83f7, 0x885e9b4d, 0x60500010, 0x7aa357f6, 0x245b2c63, 0x8618c894, 0x57bab77c, 0xf32c96a6,
			0x26a04b87, 0x50cba923, 0x929ec472, 0x242c523e, 0x88540961, 0x0d8702f3, 0x0c49809e, 0x55ec140e,
			0xd1464c68, 0x80519ad5, 0x1a08cc80, 0xf2573531, 0xe16ca0d1, 0x47d1f044, 0xd31ce944, 0xa9f80467,
			0xe610e553, 0xe44622f6, 0xf586bffd, 0xae09273b, 0x69536bff, 0x50954627, 0x35116dfe, 0xc7502cf4,
			0x1c0fb50d, 0x3e52a7a8, 0xc03be22d, 0x835e2498, 0x59963a88, 0x4fcf431d, 0x6fc96b02, 0xf40d6df7,
			0xaa33e1d4, 0x1f5df584, 0x4bc65620, 0xd070a702, 0xb68cf20d, 0x9ab05c54, 0x987ab678, 0x7baa399a,
			0x9d811f74, 0xc089457b, 0x8e05e20f, 0x58638dc4, 0x5abdaa33, 0x1d46111e, 0x1a7aca71, 0x0de9d84a,
			0x8c16a68f, 0x237d8b6a, 0xb91cf1b2, 0xf756971a, 0xa4a41c7e, 0x3078159e, 0xf386be07, 0xaa44a2e0,
			0xbc4c5b30, 0xe9b7790b, 0x7e7a4eae, 0xf0a9f254, 0xce2db1fe, 0x2cdb7e5e, 0x506d4bee, 0x183a0d29,
			0xc3ce1698, 0x92a4f976, 0xf7be4667, 0xc8cbcd6a, 0x0abcbcc0, 0x46e64f50, 0x0c968a8b, 0x2c82d4aa,
			0xdc184a38, 0x3cb69368, 0x5c9a4944, 0xdc9f05bf, 0x3a48a8cb, 0x07cb6aff, 0x9cb152ed, 0xd62de85a,
			0xd6790916, 0xae0127d9, 0x77a85dde, 0xc48a8a68, 0x883a8054, 0xb41355d8, 0x479b7bc1, 0xe8dd4624,
			0x0feff773, 0xb7ef148b, 0xa0699d51, 0x27b503fe, 0xb76970df, 0x3116ef68, 0xb24cc480, 0xd58abef8,
			0x37fe2b3d, 0x70658b74, 0xa37ab75e, 0x5d5bab12, 0x1a8ecc3c, 0xe8aa2440, 0xdabf52c3, 0x7885a862,
			0x0bb7bc77, 0x342e22e3, 0x0bcf246d, 0xc87023ca, 0x43c88354, 0x8e42c179, 0x5e433481, 0x5aca15f7,
			0x8971e6ee, 0xcf96426f, 0xedfbe961, 0x1b1f68a7, 0x2a742c3d, 0xea8b03a5, 0xe118d7b2, 0xd7d1f565,
			0x994f30d3, 0x27b11101, 0x3ca4902c, 0xab33e29d, 0x897177af, 0x5a11d3d7, 0x985370c8, 0x85d4ba20,
			0x8f8e5784, 0x7ee10968, 0x5f5c1a59, 0x1f394eb3, 0xb9f4ac45, 0x4d6c9704, 0x56d8badc, 0x5a208fad,
			0x5f3e4895, 0x68a72e2f, 0x2fe01003, 0x3ff9257f, 0xb37ee90c, 0xc62fa2ac, 0xcdf04f9a, 0x039a85e8,
			0x378ab071, 0x63221a51, 0x0a688263, 0xd1f04719, 0xcb8c2e0b, 0xc4961dfe, 0xa70f2bfd, 0x2f620243,
			0x835894e2, 0xf08ee155, 0xafa651af, 0x030d5aed, 0x8f5d050a, 0x21dc5ffa, 0x363a0432, 0xda8a0cb7,
			0xefc2f82a, 0x4d6988f3, 0xa30d8572, 0x4084dfbb, 0xcad0b856, 0x7ccb0f75, 0x0261c72f, 0xd46cf8c7,
			0xaaa8e70c, 0xbcacf3bd, 0xac774049, 0x71a463a8, 0xf208f1f0, 0x7c9f9263, 0x33708480, 0x0a9fb185,
			0x60731c9a, 0x1a0146e5, 0xca4816cc, 0xd8e75070, 0x80a9dbfe, 0x9782a649, 0x968ff142, 0x73f064d9,
			0x7dfa39fa, 0xa7ae495a, 0x2b0e9aab, 0x06679578, 0x7d00eb97, 0x682cea0d, 0x45884dea, 0x02994f5d,
			0xf19a6c65, 0x4295d8f9, 0x04002694, 0xc35443ae, 0x6855aebd, 0x33a93957, 0xe0a56646, 0x2f03d7f8,
			0x6e485eb7, 0x1ed96549, 0x00f52a38, 0xc1ab0a3a, 0x2b985b64, 0xb13197d3, 0xfb7c3161, 0x74ae2608,
			0x0e63c6d1, 0xa94ce4ab, 0xa84b3dd3, 0x7fb9cdfe, 0x272c9308, 0xfb13d189, 0x85c4aadf, 0x8965158a,
			0x0ba0aa35, 0xb43c3d87, 0xaef55a08, 0xb1223dc9, 0x8163659a, 0xf4608a5b, 0xa2f61e9c, 0xcef67a66,
			0x310c057e, 0x310a1974, 0x163757b8, 0xec92682f, 0xfad81211, 0x099493cc, 0xa3a61ba8, 0x60947d9d,
			0x34a02ab4, 0xb959ec6d, 0xa56feb85, 0x7656fd6f, 0xd6734644, 0x37bc18d7, 0x393e7fa6, 0xa94114b6,
			0x1ae3c33a, 0x5a7ccaf6, 0xa92922df, 0x08f690cf, 0x78628327, 0xb7f2ca62, 0xbb7c57d5, 0xb00f73a2,
			0xf88efb10, 0xb33df07b, 0x49e94b40, 0x339958b4, 0xf05f8582, 0x66b9f32b, 0x44f82e4f, 0xc248dc1d,
			0x2aa82e8f, 0x9933cd50, 0x61d6f1c1, 0x1b6a47b9, 0xb58a73bf, 0xba8954ed, 0x781ded89, 0x4def6a75,
			0x970c9c2a, 0x867ecbb6, 0x64725ec1, 0xce2cffeb, 0x2765c1d9, 0x96df71e0, 0xb7856013, 0x985a5b2c,
			0x4e45e3a2, 0x5b574fb2, 0xba263ad5, 0x4c77fd9c, 0xa88e2d09, 0x476fc17e, 0xd2af851f, 0x06883e8c,
			0x3cb0f5e4, 0xf0b90bf0, 0x71f6f4a8, 0x1a948b90, 0x46b25e23, 0x7c2b2008, 0xa1cf83b0, 0xf3de4fce,
			0x01e06f63, 0x917bd3ed, 0xd4e8573c, 0xd82078a0, 0xcba5736f, 0x01c4529a, 0x61277119, 0xfd3da610,
			0x07cda506, 0x498a61a0, 0x215c7977, 0x37904e64, 0xacb28fbd, 0x8b9c7386, 0xe596e679, 0xb7fab367,
			0xbfbc0f90, 0xea8ec5a0, 0xb2b389de, 0xa84cba74, 0x8fb1ac58, 0xbca84d3a, 0xcd7f99bb, 0x733e5ae8,
			0x825febd1, 0x3eab6a39, 0xa0e3ffa1, 0x75c8f91d, 0x95606ad1, 0x9d2d12a1, 0xb163d932, 0x6af4a066,
			0x26605c1d, 0xa231f5fa, 0xcc818890, 0xcee03e4e, 0x7bc7b19f, 0x26af43f2, 0x61118671, 0x5cbc8ffc,
			0x21355485, 0xb2dd5122, 0x2ab5a851, 0x4a9ffc0a, 0x3cdd12b9, 0x0a668533, 0x340f5930, 0xd98c0728,
			0xf18a73af, 0x5ab53a41, 0x8bdf290b, 0x86e436d5, 0xccccd6e1, 0xc0f63692, 0xa3cad475, 0x76ffea77,
			0x75d5ba47, 0xf76cc05a, 0x433c2e42, 0x58889706, 0x61d9c0d1, 0x2ecba57f, 0x02f0e7bb, 0xa0cf94b1,
			0x56b1d20e, 0x4aa54b0c, 0x7e169e95, 0xec6b6ca2, 0x9ae50bf5, 0x7faa1206, 0x21a3da45, 0xee8d817d,
			0x46d22920, 0x5fea302a, 0xe11d426f, 0x541db741, 0x9c3cd0e2, 0x02e6a3bb, 0x62ffc757, 0x58305ff4,
			0x9046c84c, 0xa030042c, 0xb3790f86, 0x3880c37c, 0x72abba83, 0x57041092, 0x13e46973, 0x5a036447,
			0xc5c54513, 0x8a6d73d2, 0x788bb1f2, 0xd8ff9638, 0xaed1ec40, 0x0089d11d, 0x97b65b1e, 0xc3903755,
			0xf610bc87, 0x846e3a00, 0x824467a5, 0xd00e2e0f, 0x3ef704ac, 0xac6f7dc5, 0xf5c5e10b, 0xa0b35f45,
			0x003bbe9c, 0xa3a2a86e, 0x0cf1f03d, 0xf2c15f19, 0x00299bdf, 0x5b3b450c, 0xd1b7213b, 0x54918013,
			0x8fd93a60, 0x1964e26e, 0x4e97336d, 0xb943bfc4, 0x2c41c37d, 0x507c002c, 0x281144bb, 0xf6a91d88,
			0x3808cde8, 0x0c910571, 0x9a005199, 0x536f0bb5, 0x98805143, 0x7ff1893b, 0x4dddac12, 0x840634d1,
			0x303017a0, 0x1017d7bf, 0x08425308, 0x5db0a829, 0x90051f26, 0x68a543dc, 0xdffc881c, 0x00000001,
		},
		{
			0xa81e49ec, 0x8a17f731, 0x420c7cb1, 0xc5647028, 0x9eb7b01a, 0xfca95b00, 0x0b800399, 0xef60607a,
			0x9aadd021, 0xda24856c, 0x743625a8, 0x62c2004f, 0x85d63609, 0x8325012d, 0x20db42a1, 0xbb2b83df,
			0x9a4c0850, 0x1d59fd28, 0x2c1aadbe, 0x80253f98, 0x546c3a43, 0x15968b1a, 0xc66ce01a, 0x78a8be81,
			0x0ecfead8, 0x1145c0cb, 0xa4e4f16a, 0x472be661, 0x71e47185, 0x4909bfb1, 0xa74c295e, 0x9a82122b,
			0x006df824, 0xd8888f3a, 0x4a557780, 0x2ea9361b, 0x6758c10a, 0x26d605ba, 0x71aae264, 0xdc6db3ba,
			0x6ed34e04, 0x6e7ccc16, 0x6b0b4733, 0xc6c4f6c4, 0x53d2163f, 0x470db8cd, 0x681e84d9, 0x231abb48,
			0x1433cef4, 0x98ea0764, 0x4c496fbc, 0x5e7fa5cc, 0xed6617b1, 0x2d6d31e1, 0xd55663f8, 0xfd41e30e,
			0xa3ec330e, 0x2c4ee36f, 0x4c67a899, 0x1f924b49, 0xd3c55fd1, 0x5bab06ca, 0xd6ae0dc3, 0x26c180c2,
			0x9eee82c2, 0x39550b63, 0x45137c54, 0xa9c6a4c9, 0xb5165ae3, 0xdbb42f09, 0x9649a551, 0x42760a91,
			0xd3d5c366, 0x8a6aa674, 0xd279cddb, 0xfb2ce830, 0x54b4c89e, 0x761fc21f, 0xe9b800a2, 0x62093860,
			0x69353a57, 0x2f53f881, 0xd784653d, 0x99758567, 0x19f2a81e, 0xe6e36bec, 0x36a4aba1, 0x71541e67,
			0x4e694e7e, 0x8dc61225, 0xf089ada2, 0xf56ffbd2, 0x0e84a934, 0xf9413b96, 0x37c7c6e4, 0xd3abd04a,
			0x82bafe10, 0x767bfbd9, 0x537c7fae, 0x0f083535, 0xf158246c, 0x10a9345f, 0x1d98d933, 0x43822212,
			0x1247d155, 0x81db4c99, 0x2e7690e6, 0xd2182a4c, 0xbabcba97, 0x285af309, 0x09d7e70e, 0x2e71071f,
			0x30684c76, 0x26d4ca77, 0x6b6f1f5d, 0x63fadbf7, 0xbaeddeae, 0x8578f233, 0x2238befc, 0x822bda03,
			0x932ebb26, 0x5427a711, 0x018abed5, 0xd3c1976d, 0x2bc6e400, 0x85f29d18, 0x4f5847e5, 0x955706bd,
			0x1823ba40, 0x7a5d92c2, 0xbeea42ce, 0x0c6c7e16, 0x54e7382b, 0x0427752c, 0x47475c2f, 0xb60d1379,
			0xffacce25, 0x7c6f9cfa, 0x54d0be0e, 0x5549f0f9, 0x9c1228b6, 0x1cfc80ba, 0x0bc9038e, 0x8e6e7c48,
			0x98f88cae, 0x7da1cd35, 0x6c32e258, 0x7f814095, 0xc99aa7d9, 0x619c5fea, 0x493c38ec, 0xcb8ad14f,
			0x15bc3b9b, 0x189faf60, 0x7da03b80, 0x53cdbadc, 0xa7d4128b, 0x829aa668, 0x647455c7, 0xc3568162,
			0xa57adea1, 0x0d82e5d1, 0x05b064d0, 0x1994b6e2, 0xcbe60fa9, 0x2dea7e64, 0x7bb0d658, 0x55127003,
			0xfc31aea1, 0xf7dcafce, 0xe16ada7c, 0x92bb8930, 0x8b68c47c, 0xfd44dbf7, 0xae747c82, 0x6d6b0262,
			0x67c90bd8, 0x3ea780ad, 0x9af177d6, 0xccde77c1, 0x23ff4233, 0x134d3951, 0x72021be5, 0x045df47e,
			0xf77bb9bc, 0xc2d7f784, 0x12552c0f, 0x53313ba6, 0x4d82babc, 0x8f671161, 0xda697499, 0x9cdfef99,
			0xcd17cc54, 0xef96abfa, 0x2f1abd4e, 0xe0f40e6f, 0xd49f5d2e, 0x4941f29a, 0x2b7b306e, 0x60bde295,
			0x74529489, 0xfef545ff, 0xef479970, 0xf6ab8b0d, 0xf61ad801, 0x4347c259, 0x100c3d4d, 0x62cd6b23,
			0x1fb6d0ea, 0x0df36a9c, 0xf4f4bf82, 0x899cec41, 0x6be651c5, 0xaf7a8254, 0xd5727078, 0x173ed4b9,
			0x8da41032, 0x1e27b920, 0x3ea98633, 0x8b8dfe30, 0xee96f0b3, 0xf6461d4b, 0x27b4b7a0, 0x008cb843,
			0x3a42a212, 0x713a8e79, 0x4dc1a547, 0x83bd6cf6, 0x1080873a, 0x3c3ea730, 0xec6f2399, 0x2bb5719f,
			0x274b95d7, 0x9ee2ea55, 0xb3ef85bd, 0x774da875, 0x6295f485, 0xfb034663, 0x6047458c, 0xf76c411d,
			0xa7b98b77, 0x2a7b48c4, 0x9acf7318, 0xc2f43214, 0x0a43f3ee, 0x31c73158, 0x28b09c9b, 0xc565bd44,
			0x3f34af7a, 0x4820bd3a, 0x629f909d, 0x3ca0463a, 0x88c6b328, 0xe40b4939, 0xb1859185, 0x7aa97033,
			0x1a9f1afb, 0xcee377e1, 0x3cf6f291, 0x293f6a41, 0x5a0b27f4, 0x3c5f4c9d, 0x091f6d79, 0x65c23dbb,
			0xf87daf09, 0xd8b138b4, 0x560f1f24, 0xac160d35, 0x0cf0a85e, 0xafd76706, 0x2b5051dc, 0xe11556b6,
			0x55fe77c1, 0x02ca7d45, 0xcdb3256a, 0x8456f07d, 0x7e62775c, 0x1bfc83a5, 0x52e3321a, 0x31477195,
			0x021185b3, 0xc1148f2d, 0x06c6b12f, 0x51a50898, 0x7ae5f0b7, 0x86aff862, 0xe75646f6, 0xb9e7c83d,
			0x516da87b, 0xc85e9c0b, 0xd80ab124, 0xd380aae9, 0x115ef0ef, 0xb8fd7888, 0xf973e402, 0x74d7afc1,
			0x8aa18290, 0x5128be61, 0x465594ac, 0xd04ef93b, 0xa69249d3, 0x47d5f98b, 0x1d267599, 0x4eb7bfc9,
			0x33c2e34d, 0xaf7bb410, 0x44213485, 0x61903fa1, 0x1508a0ca, 0x5c1cbcb8, 0x4636391d, 0xbdc6b773,
			0x19454b23, 0xab00aeb6, 0x32800f44, 0x2466ad3a, 0xe4b29aae, 0xbcaf4227, 0x006e90eb, 0x8cba7b7f,
			0xc04c38e2, 0x85424491, 0x41b157a0, 0x11355309, 0x8b99a812, 0x427b9cd5, 0x10d9550f, 0x35857930,
			0x0d3f92e1, 0xf0eb977d, 0x655da7a9, 0x7c490646, 0xd73d6553, 0xf6493dcd, 0x06cf5fad, 0xb593ad4a,
			0x0a6d52de, 0x262ce40c, 0xca896c34, 0xcd4bb8bc, 0x8d6345d0, 0x81d88fb2, 0x50cfc933, 0x0e98008b,
			0xbac146ea, 0xf4107c6a, 0xfab0b1e8, 0xf41c0339, 0x974c4cc5, 0x228dcf0f, 0xd6852eab, 0xc6c109e4,
			0x7f5f33e7, 0x29b6b174, 0x33379559, 0xf7a39ffe, 0x4abcb81a, 0xa1b9df21, 0xa4f0137a, 0x5a6f118a,
			0x544c9d85, 0x4070a562, 0x4bdecd74, 0x5d588703, 0xef6cc827, 0xd4314e68, 0x7d9f11af, 0x5eaa74b1,
			0xa3b45f56, 0x1644a04e, 0x391236df, 0xb8cd600d, 0x93c1694e, 0xbbc075dd, 0x7e5e2828, 0xa8e40fb1,
			0xec54b2ad, 0x5b92bedb, 0x8c079f00, 0x33a227a6, 0x468288d9, 0xbf6bfc07, 0x34e4e305, 0x9d1b33b7,
			0x778251ed, 0x6f0611b9, 0xe869c958, 0x9d59bf11, 0xa3245c7f, 0x64af4b5c, 0xd929402b, 0xbdfb3e11,
			0xff77d33d, 0x65df670c, 0x197eb2b4, 0x1bcd1e27, 0x5a63ed0d, 0x1adde5cd, 0x146e6c03, 0xa8f3192e,
			0x3da0fd63, 0xcba2ce3d, 0x094e23be, 0x5c1f64c1, 0x579f76a0, 0x1a3cb1ab, 0x0318c1c8, 0x6d544040,
			0xdc80b4f7, 0x86319dd1, 0x0c50aa70, 0xb36b10ec, 0xbbf23882, 0x737453f9, 0x95d95f28, 0x8d7ef170,
			0xb7d99c77, 0xc7220c8d, 0x47a43c2f, 0xad65dc14, 0x5cbacd2d, 0x2e6b4bf1, 0x97ef2076, 0x6f44665c,
			0x9e2a9ec7, 0x6a0cbea5, 0xbc6f1045, 0x6d6abcb9, 0x48450a65, 0x597712cc, 0xdb8bca94, 0xfb66baf3,
			0xfea9c8c6, 0x4d249607, 0xefda7344, 0x010e4bee, 0x41db0be5, 0x70c0935a, 0x7bdd53ca, 0xa8de41a5,
			0xecf5c0a7, 0x45902aac, 0x6a679c20, 0x25c9b1e5, 0x05aa075e, 0x93d3da37, 0xfaa5981c, 0x0f2e3a00,
			0xc0561022, 0xf6673f74, 0xb5695f1d, 0x2ba6dcdd, 0x78401dfe, 0x781d26eb, 0x92b2d355, 0x07e11416,
			0xa599f035, 0x92a1d2f4, 0x2d61b9b0, 0x84cbb797, 0x0dee957f, 0xf11b2221, 0xb6c72ff7, 0x4dff7827,
			0xe7ebee08, 0x1e774058, 0x773a53c8, 0xe72467a8, 0xdab7487e, 0x86b574c2, 0x7e831906, 0xab67074c,
			0x8a47ab5a, 0x7635e0ca, 0xa025ba37, 0x92a7d2c0, 0xfd48c1f3, 0x7c51b196, 0x844442fc, 0x1eabd9cc,
			0xf81941ae, 0xcd3e2ace, 0x4514d771, 0xe7aa2f2f, 0x99dbaa14, 0x76a4b0aa, 0x9e36608d, 0xde23bc71,
			0xe7337bea, 0xbf1160b8, 0xba0aba34, 0x58f295ad, 0xadbf8fb6, 0x58021bf2, 0x9c37a12c, 0xd81717c0,
			0xf917dee2, 0xcec80c4e, 0xf7a9ee15, 0xf7d2a861, 0xae42e030, 0xdd3ca2b6, 0x72db0341, 0x0bb5fc5d,
			0xd04981d5, 0x34b024a3, 0xda3c8412, 0x7db4e8c9, 0x0d79cd64, 0x07438309, 0x7b486ce8, 0xe70766b7,
			0xf717f772, 0x44efaa44, 0x0d12a83e, 0x7d83a4f1, 0x28d8d08b, 0x26524696, 0x63274574, 0xcf36df81,
			0x8eac66e2, 0xa517fa2a, 0x898eabc0, 0x3517d7d3, 0x677d7951, 0xff99421a, 0x92f11cca, 0x2e8c5ae5,
			0xa4d903d2, 0x4704a7a7, 0xb027a8a5, 0x9a0b53d8, 0x2c9ff04b, 0x4389a76a, 0x6370096e, 0x66397f59,
			0x2c20ea68, 0xb60128e5, 0x193af838, 0xd57395d5, 0x7e500adf, 0x81751164, 0xcc4dd102, 0xb57ef118,
			0x5c9aea93, 0x65b00a0d, 0x4e8b6e0a, 0xe558a521, 0x8a46b640, 0x41ad5750, 0x417bba80, 0xd5e46b38,
			0x2938a521, 0xc709f67b, 0x89f8eda2, 0xac9dd8ab, 0x6072306d, 0xc41ee44d, 0x75485d74, 0xafc92873,
			0xac7260fa, 0xfb52c791, 0x980a0bf0, 0x3b4a2d0f, 0xf0e6b563, 0x52ccf2d4, 0x2627f001, 0x4d9270c5,
			0xd65c5165, 0xe06aeab1, 0x7c397339, 0xdcedbe31, 0xf86bbb3c, 0x7ee01dbb, 0xc52a5750, 0xd3cbca9c,
			0x5f28fbeb, 0x6b4c4b69, 0xb21029dc, 0x58c4505d, 0x47c2fb25, 0x6421c936, 0x384b40f5, 0x8e0085c7,
			0x495a7db8, 0x2aea3c99, 0xbe8fedf8, 0x0c9e9389, 0xca6a7bc5, 0x910a1a21, 0x6c24a4b8, 0xf7ad529f,
			0x80cdf3ce, 0x778d39a2, 0xe28e6c55, 0x7046429d, 0xc2fb6f8b, 0x6d997479, 0xe0f8e7c9, 0x024bf378,
			0x860a75b3, 0x6816e2ae, 0x714f5f55, 0x832150e1, 0xefb273e1, 0x050d73eb, 0x2f01d4a8, 0x084a8ea6,
			0xfa2efe3e, 0xa1efb809, 0x9a164f4b, 0x4c651610, 0xf7ebe370, 0x1840adf0, 0x0a6da6dd, 0x59596416,
			0x5e456f41, 0x458794a4, 0x247bfa4d, 0xdaa17570, 0xf9c582a3, 0x0bb1d2d1, 0xfc67fca5, 0x00000000,
		},
		{
			0x6df32afe, 0x7eab0cac, 0xbefa4d71, 0xadc4c8b2, 0x23f269f1, 0xf0955951, 0xa19bc77c, 0xccf01d2f,
			0x89f90a3b, 0x67691fcd, 0xc612f21b, 0x58846827, 0xea84d6f9, 0xa024724a, 0x11e0ae46, 0x7f1c4ca3,
			0x93e769bc, 0x60683f55, 0xf86e41bc, 0x5d567f3c, 0x2e1f091d, 0x692a7e93, 0x2359ef12, 0x0b58b2c0,
			0xf06d9493, 0xeccdef01, 0x7e2be6a2, 0x3cf24c13, 0x1c9f44db, 0x3fb5d8a4, 0x144d3faf, 0x320092e9,
			0x7054523c, 0x42997177, 0x1787d509, 0xdebc078a, 0x5aaeb386, 0x931fd6a6, 0xa7b8ddfe, 0xe03e657b,
			0x0f9920b3, 0x7b9905ca, 0xc6b0c6c1, 0x4dd5202c, 0x40359cf1, 0x32e3cb72, 0xa8030761, 0x5c433f85,
			0x4af627c4, 0x2690772c, 0x735adb08, 0x2ee6afdc, 0x7a5a6c81, 0x0898faf7, 0xbaf1c4a2, 0xd62a8fea,
			0xfb14df97, 0x0c5144c2, 0x3f16b27e, 0xc18df4b3, 0x6eddc0cf, 0xad5a221c, 0x5145bed4, 0xad742fe2,
			0xaeb3370b, 0x4fe7a88b, 0x03d8bfd0, 0xbb7da76e, 0xd37ba3d4, 0x4f0b4778, 0x0931d190, 0xc4c93cbd,
			0x7361dc46, 0x6a357040, 0xad3442f4, 0xcf778ab0, 0x082d3bfe, 0x12915fe6, 0xf1a38cb1, 0xf069cd80,
			0xcb8e1763, 0x02d67f85, 0xb19693f8, 0xc4c7246b, 0xc6ccda01, 0x1e7a413b, 0xbd606660, 0xa18a553a,
			0xfecc9766, 0x5963723d, 0x3cb73c9b, 0xae9efa7b, 0xf4e84c1f, 0xf2bb02aa, 0x3a0a1227, 0xeefe6b5a,
			0xeb2ffe48, 0x21f46276, 0xd0b930df, 0x45657132, 0xb11ecaa4, 0xcaa88258, 0x82dae28f, 0xf7de8900,
			0x2bb6d4d8, 0x83a40bae, 0x1e48a137, 0x64cd3bc7, 0x1d79c98d, 0x20fda111, 0xe8f90e31, 0xc389e322,
			0xe9491785, 0xb09b966f, 0xf6c96f54, 0x923a8c0d, 0x47e1c778, 0x53348054, 0xe3f7fb74, 0x510245ca,
			0xfcd8ee40, 0xf33d907c, 0xc893f8ae, 0x12486ee1, 0x61de23f5, 0x2c50648b, 0x7a50d21f, 0x913b6d92,
			0x194b0bdc, 0x9aa1f5d0, 0x59b7fbc5, 0x1563fdbc, 0xa0b8c39c, 0x84ceeaba, 0x24045370, 0x4c70236c,
			0x76d8abce, 0x7518f2f4, 0x54d41d16, 0x9c6e661d, 0x09cf99fc, 0x62967b52, 0xfee508b1, 0x2a734b9f,
			0x50135637, 0x27f8726c, 0xa8d64246, 0x0d79c054, 0xe135ce55, 0x8ca16ff9, 0x661a80ef, 0x1aed170c,
			0xaa02cbac, 0xc02e1168, 0x52722adc, 0x4f5a2505, 0x522b22f9, 0xac4f4300, 0xb974f1e9, 0xc8e41ae8,
			0x1d558c63, 0x29f0cab4, 0x2370640b, 0xa6e063f7, 0x34e436e7, 0xcefc457a, 0xa7107b46, 0x2056d593,
			0x60acef1f, 0xcc302c9f, 0xd8180b7a, 0xa8b82496, 0xc81e5237, 0x83671917, 0xb17db7bd, 0xa82f8b02,
			0xc143f425, 0x023c3573, 0x9ec7da44, 0xbc47fffe, 0xd37b9ed1, 0x2a9e7eb0, 0xaddceca4, 0x91cad071,
			0x4d17cc60, 0xeab1107c, 0x6403cc01, 0x3d868f19, 0x5be5a795, 0x7a3aa33e, 0xe239e614, 0x8c84cff5,
			0x708e558d, 0x35c52964, 0xb0fb49eb, 0xfb059a02, 0xc74e00d9, 0xa25e1c8d, 0x3e33c11e, 0x4baff421,
			0x1987e12c, 0xe4d54472, 0x453237dc, 0xb68937df, 0xd7878393, 0x7c08fe2e, 0xd23d2a0b, 0x90fb33ec,
			0xe6e6c8fd, 0x09281233, 0x62571b02, 0xf08df485, 0x0956b5d9, 0xa4f3f91c, 0x46a631ef, 0x7cbe51e1,
			0xc7857b86, 0xed67e22e, 0xb8b7dac0, 0x017fb4e6, 0x4b9803e5, 0xb57b6432, 0x30f37aa6, 0xf4fc73d3,
			0x4866c355, 0x9ec898fa, 0xeca55312, 0xd8156db6, 0xa5ba8807, 0x4dcc4554, 0x799e57d3, 0xd3413725,
			0x45662187, 0x7b2dff59, 0x7d3c8071, 0xc79def33, 0x161a09fa, 0xdfbf1fb2, 0x914d5f1b, 0x86021f42,
			0x4b82806a, 0x2bac0545, 0x8ab601f3, 0xc00220bd, 0xc482d0a5, 0xa76f5824, 0xf52bb5f3, 0xe0f55c25,
			0x47f25d13, 0x42f71ffb, 0x09dfafd6, 0x6b93afc7, 0xbe8aeb01, 0x79bc0d1f, 0x4e843718, 0x5c8c13fc,
			0x141a6e5c, 0x55bfcdd6, 0xd2fcf28a, 0x14ee8ed7, 0x1c93d772, 0xc129008e, 0x61805675, 0x27e22987,
			0xb2aae41a, 0xbad5b1db, 0xe5c7e0d9, 0xffe7b659, 0xbae4c34e, 0xe3a22059, 0xa51f6fa7, 0x05816c33,
			0xe61c276d, 0xd92d83cd, 0xcfcd327f, 0xb083cd35, 0x3821f57e, 0x372ca022, 0xbd003b47, 0x0dc1aa8d,
			0x3897089d, 0xba148634, 0xb3d53f2a, 0x480b174c, 0xe091d5f3, 0x7589c8bb, 0x15cedae0, 0xc42d80e6,
			0xd5cc304c, 0xb810d6ea, 0x035cb0d4, 0x03226722, 0x6796e622, 0x2882eb50, 0xc8b4968c, 0x6dc5aab8,
			0x6bed6442, 0xc0371b44, 0x35f273c4, 0xdc855590, 0xff734de5, 0x20840dea, 0x5f9df6c7, 0xfa4e1cd5,
			0x9cc64e10, 0xd874afa1, 0x198d2a62, 0x13d92dcf, 0x938539c0, 0xce691092, 0xbf2dced7, 0xf043abdd,
			0xc2568953, 0xdeea32ed, 0xb8346176, 0xbdca4be9, 0xfe0ba665, 0x3392e1a4, 0xb6d7ee0e, 0xe7287f2e,
			0x6eac7044, 0x73211586, 0x1644b661, 0x64914aa8, 0x38fc5881, 0xec3f5a1e, 0x33782633, 0x8f3ccff3,
			0x130acc82, 0xe16adee2, 0x083824e4, 0x2adef6ba, 0x66864277, 0x00e7ba58, 0xf4bf11b9, 0x82a9435b,
			0x993ae794, 0xd1da7674, 0x85b818fa, 0x3fb184c4, 0x9d447a17, 0x7f4f38ac, 0x33aad744, 0xb744aa59,
			0x94a0e6a2, 0x5b877e7e, 0x333473ad, 0x4099a4fe, 0xffe05fc8, 0x3148b0f2, 0x03f4d5bc, 0xb7166e53,
			0x038ca301, 0x025b101a, 0x691d2d45, 0x2c79fe2e, 0xf8670882, 0xdd7f137e, 0x648ec02b, 0x2450138c,
			0xc7faf2d9, 0xf9eaa8d4, 0x5eb7e2fd, 0x8598ba54, 0x45056d6d, 0x2049d7a3, 0x0458e03b, 0xcc729790,
			0x9a6c4eb6, 0x1f1199e6, 0x8270379f, 0xc2904f08, 0xde7a97ea, 0x6ae6b57a, 0xe680ce9d, 0xa869aa4c,
			0x91ed8767, 0x2a85b8d7, 0x53cfa372, 0x56d07626, 0x662ec41b, 0x3b8b74b7, 0x0d18bea3, 0x2c2f19f0,
			0xa6d6b0a9, 0xf0a8e819, 0x1e0aba84, 0xadbb42d8, 0x7e64ae3a, 0x049bc863, 0xbebfa1e4, 0x0c110c39,
			0x38f1eb3c, 0xa2aec7bf, 0xd2e73d92, 0x79a525bd, 0x9f8e4e0f, 0x266d0ca2, 0xb3f8b9fb, 0x12cb1000,
			0xbb56ac97, 0xd90189f2, 0x5aa6591c, 0x92485e89, 0x645321ac, 0xa92743e7, 0x811d2e95, 0x19df1d2b,
			0x80f64590, 0xbd7c8a75, 0x66562d6d, 0xacb28d28, 0xce1fe1e7, 0x7a138a01, 0xd63ea468, 0x1b4497a5,
			0x85f1f0b2, 0x7c99b97e, 0x4b0113e3, 0x5628bafd, 0x8ba7e042, 0x9ab5d848, 0xe3e6b974, 0x77932da8,
			0x40f7e374, 0xc9b6bc5e, 0x8f14a77e, 0x6e8f22ea, 0x4bf2d014, 0xab61d46d, 0xd0d43940, 0xe28d074b,
			0xc854c216, 0xdba749dd, 0x997737af, 0x12651c8a, 0x82245826, 0x367ed190, 0x698468d4, 0xf4bb2137,
			0x8fe114f5, 0x0596b440, 0x678e7f4f, 0x15866f46, 0x3bb4e9f9, 0x550272a2, 0x1cb36315, 0xc9baa847,
			0xfab56ce1, 0xdaa587b5, 0xd8d34788, 0xac166b9b, 0x24f64548, 0x24b1ed72, 0xd0daff29, 0x4a52ea11,
			0x63f809ed, 0x061bd7c3, 0x2d0679e2, 0x58d2476e, 0x34026f04, 0x686c948f, 0x099e8172, 0x41902863,
			0xd3efa08c, 0xc22ce857, 0xf1ac125c, 0x97b49fe6, 0x12a8107b, 0x387f3602, 0x554673ba, 0x02442fae,
			0x6ff00875, 0xc4b19427, 0xe2c08c3c, 0xe9bf1881, 0x90580b2f, 0xc58d42b8, 0x21c93ca5, 0x22ac3484,
			0x8e377962, 0x7eefc4a3, 0x7275f6e7, 0xe9c9f32b, 0xfd2c46db, 0x63eb94fb, 0x5073a894, 0x8750e968,
			0xed0e7c75, 0xc2ded347, 0x9e3d0dc8, 0x498271fb, 0x70ff97ca, 0x4aab151b, 0x7218d914, 0x4d010e68,
			0x4689d046, 0x2a707427, 0xbe623eed, 0xfed455ff, 0x53690eac, 0xb848310d, 0xf3fcb7b0, 0x40dc3283,
			0xf764e416, 0xb1fd7da7, 0xd024e345, 0xedbb9dd2, 0x79c99b3c, 0x13b0e5e5, 0x51ca5dd3, 0xdae497e3,
			0x2256090e, 0xf1295c04, 0xe14f4c15, 0xd0a26a57, 0x0ffcaa12, 0x83b8c4f2, 0xe4007c96, 0xa7a6a41b,
			0x8205a30b, 0x14b2afa5, 0xdac6904d, 0xe5ce10d8, 0xcbbf27b8, 0x4fb7d01c, 0xd53bc9b8, 0x02d9ce36,
			0xacf26d97, 0x703de1f9, 0x02cc9618, 0x45984d87, 0xf558eb3f, 0x05ef6841, 0x88be1ee7, 0x39a2703f,
			0xd97ca04e, 0x48e35039, 0x0cda8881, 0xe68481ef, 0x25921fd0, 0x9c6be6d5, 0x38b79457, 0x54994e56,
			0x333b4e9f, 0xd9ea551e, 0x060c1cfe, 0x9101e16c, 0x1081af6c, 0xd2d2dd81, 0x3bc080bb, 0xb3fef358,
			0x476b987b, 0x62dee751, 0xb8c2e9af, 0x3209e7e2, 0x719e9b4a, 0x53615727, 0xa85aa982, 0xe79f0c32,
			0xc568e2bf, 0x636ade37, 0xb80eb8a0, 0x82ba431a, 0x272de181, 0xafd623c8, 0x1ac6475a, 0x2c6beaee,
			0xa20ee8cd, 0x13735ce5, 0xee967dd4, 0x21d58e76, 0x65a7d016, 0x08b6e7b0, 0x631e38d0, 0x8d1639a9,
			0x54435fc7, 0xdf32cf3a, 0x4a3d022c, 0x4c40e3e4, 0x124b242e, 0x14d1aade, 0xffa63459, 0x4f3c0062,
			0x4d8f8d6e, 0x8e42994d, 0x73bb383c, 0x3d7f9110, 0xc399e168, 0xc6a1b279, 0x3771ba04, 0xd533f333,
			0x4eec9510, 0xb0571327, 0xacea1b64, 0xdb9baa85, 0xa327e725, 0xaa682a2b, 0x8efc4ad8, 0xcae6bdc3,
			0x74110fe6, 0xcddbcada, 0x7c11a9cd, 0xecdf108a, 0x64c83e51, 0xe66ccf5f, 0x6353efd9, 0xf98d6ccd,
			0xce5894bb, 0x0151b56c, 0xde8117cf, 0xc1690409, 0x7d282b3c, 0xcd48ee59, 0xd6002857, 0xf12318f3,
			0x9639130f, 0xaabb9e4d, 0x8c5650d9, 0x9c1a506b, 0xde395cb0, 0x38841ec8, 0x43360adc, 0x00000001,
		},
		{
			0x2c76622d, 0x64c9e3bf, 0x0e986a4a, 0xe501b0d5, 0xe32b8245, 0xb02115bc, 0x09c63eae, 0x9a2ca4ef,
			0xd923d4d8, 0x7dd088d4, 0x74fa8298, 0xa46a74c9, 0x3f90c44b, 0xea0e53ad, 0x35a24f19, 0xa0a8d45b,
			0x4172252a, 0x51666ed9, 0x1f8904c9, 0xb2e42533, 0x563e8a51, 0x1f1ab650, 0x0a87407a, 0x614a7ab3,
			0x94f6f3c4, 0xfa875e59, 0xb43f14b3, 0xfd1a9bed, 0xaaa373b6, 0xc3382077, 0x29b88b83, 0xca11455e,
			0xda32e2eb, 0x5eab37bd, 0x336cc99e, 0x078a018f, 0x2a35b8ad, 0x875cab91, 0xfae906ef, 0x6445ace5,
			0xa92fcf24, 0x662182fa, 0x1aebc132, 0x3f287ae3, 0x2934009b, 0x723f2619, 0x4a47aea1, 0xa8474522,
			0x572e688e, 0x9d32ff7e, 0x2ee06b4b, 0x23de021c, 0x5857e2df, 0xea6c8070, 0xe8fb26e9, 0x110769fb,
			0xb70a16ac, 0xa01c374e, 0xf183b654, 0x4dbc5382, 0xeec54ab3, 0x368572fc, 0x672ad862, 0xeb13435a,
			0xc262413b, 0xd2b592bb, 0x921a1387, 0x49b432e1, 0xe18a66c7, 0xf63641f5, 0xa69ecbf6, 0x9b6d35b2,
			0xe4e05918, 0xfb0d3ecd, 0xa7d8bead, 0x12fa53c2, 0x62b22158, 0xc404fc4b, 0x7cdd680a, 0xb2213f5a,
			0xbd7b5c7f, 0x088d4d1b, 0x6ff75884, 0xdf8581d6, 0xa4b7b57b, 0x6a377f0b, 0xf818f81e, 0xb9da855d,
			0x76278eb8, 0x9fd17085, 0x7a418824, 0x53396f6c, 0x60194ed3, 0xe6f8c532, 0xbc9be67d, 0x3b7412fd,
			0x0c43834f, 0x83bbf9a6, 0x8ad5aa74, 0xa7eaab72, 0x92944449, 0x4c0c5d63, 0x016c2140, 0x05ff9037,
			0xf10accbe, 0x28a90774, 0x5be7f0de, 0x1c2ad5a7, 0xa89b1087, 0x5cc89602, 0x4a17a71e, 0x47468577,
			0x29f4cfa2, 0x55ddba64, 0x612791bf, 0x073906f8, 0x37d6d6fc, 0xb670d80b, 0x260c08cc, 0x7e75f5d3,
			0xd8a7a4f6, 0x319ff6ab, 0x867e2924, 0x72e723f5, 0x8e20692f, 0xb29c6262, 0x039f9c20, 0x6d40f0f2,
			0xe33e1561, 0x90d7804e, 0x38eede04, 0xd4049f7a, 0xa7423de0, 0x785d024f, 0x607625dc, 0x7bdd277d,
			0x945a0274, 0x2df4d90f, 0xc92f66db, 0xac3aae13, 0xb44e9bb2, 0x30ac9df9, 0xa25d3c28, 0xbc0641c0,
			0x1647774f, 0x5f0e18b6, 0xd5ea16a3, 0xbecca93d, 0x8ebe2701, 0xec9ce7d0, 0x6d8bf094, 0x300a0f6a,
			0xe6f9f528, 0x86600cf5, 0x1bf806fd, 0x787d38a7, 0xe0a9e97a, 0x63b2c139, 0xf1caaeb6, 0x8445391c,
			0xf82ad064, 0xc1559f21, 0x959ce996, 0x4bb64ee3, 0x5e06659b, 0x3217825c, 0x75d568d4, 0x56bd6132,
			0x0386d81f, 0xd6400736, 0x313aa97c, 0xb0c92cfb, 0x6f06095e, 0xc397ab90, 0xb16f95aa, 0x74a500b0,
			0x7ef98f3c, 0x00d180ab, 0x6fa2c4e4, 0x7d60c940, 0xf60c56c1, 0x03aaa01c, 0x1c0b045c, 0xcaa1f368,
			0x66fa280d, 0xf319d628, 0x3408c851, 0x177c1f96, 0x9e86dde8, 0xb4b74b40, 0xbfb6a044, 0x2c116549,
			0x2ee92324, 0xd83883ff, 0x37005e66, 0x166c3987, 0x16d8586e, 0x33062bac, 0x2483bf99, 0xe53e1bd3,
			0xcf32f658, 0x153b669d, 0x5a7d8b13, 0x7083ed92, 0x8368cd6c, 0x870d02fb, 0xc875935e, 0x0348fc91,
			0x18eba66d, 0x749483b7, 0x6f43b83a, 0xb5abb9ba, 0xfe562c91, 0xdf781926, 0x6cb32f37, 0x252ad713,
			0xdbb64ffd, 0x33071f11, 0x98eed21e, 0xce0215f1, 0x3933f9f9, 0x6a599683, 0x89583774, 0x2fa57bd8,
			0x900a5202, 0x0e4e91ab, 0xc31465d1, 0x9549bad3, 0x7cdcf646, 0xba02f20b, 0x9f094c87, 0xa4a7e7bb,
			0x7c0f3baf, 0xcb136c55, 0x15255f86, 0x8a6d3ff4, 0x910ceb74, 0x01c48e65, 0xc60e2897, 0xa506cd4b,
			0x6c8483d1, 0xe7758d3c, 0x03c287bb, 0x09701375, 0x1391b504, 0x54de8d0b, 0x646dfcb4, 0x2569c557,
			0x8619e496, 0xdd980497, 0x92dba79e, 0x4aa8c7f9, 0xac79657e, 0x213cb22c, 0x85648b21, 0x8c314768,
			0x2c630dda, 0x5b74b72c, 0x73751c50, 0xa2b4e749, 0xf5bcf99e, 0x419e5207, 0x0984c9ec, 0xc9cf9b3f,
			0x763097a1, 0x8294813d, 0x912d3c00, 0xa32f9480, 0x66e772e7, 0x1a920733, 0x9e263931, 0xa313a553,
			0x5c16fa86, 0xcc83db20, 0x1ebee75d, 0xb81d1f66, 0x3bca38a0, 0xd7188114, 0xea8ca355, 0x8ab5f5f3,
			0x40d60bbf, 0x235c6de5, 0xebfa0680, 0x78349c83, 0x93d1384c, 0xa1514833, 0x29d1a240, 0x658478cc,
			0xde97e478, 0x85f40e02, 0xa1a74b36, 0x52a2143a, 0x51047069, 0xab31a0c9, 0xf11e437c, 0x490d4b46,
			0xd2090f38, 0x78211e28, 0xf69099f4, 0xc370f240, 0x89aee916, 0xa4b34c88, 0xe9b194f6, 0xa7c863ae,
			0x7810d4f2, 0x59520266, 0xaeca66c7, 0x923e0439, 0xa47ac78d, 0x4f98c5ab, 0x2f099a10, 0xf4b5ddbc,
			0x2bf8bf81, 0x277d5b3f, 0x8c7a7f80, 0x4dc18bae, 0x4bbb7d20, 0x986c7e96, 0xc4732911, 0xad40b08a,
			0x231f464c, 0x17c1df8a, 0x969f21b5, 0x35913459, 0x5a5f271c, 0x345d4c73, 0x7246df83, 0xd8edd4e3,
			0x163586d8, 0x992813cc, 0x0ec25f74, 0x8490acc2, 0x9e932710, 0x7d20ee0a, 0xb09e2299, 0x5bbbfea3,
			0x310218c3, 0xa7c376ce, 0x0ca8a24e, 0xfc439eca, 0x04122d23, 0xf9cecfc7, 0x5628b6c3, 0xd81418f0,
			0x77fc240c, 0x3e545371, 0x79392da6, 0xd9bc74ec, 0xbb07d02c, 0x29856a0d, 0xded4f19b, 0x2db2c85d,
			0x076198b6, 0x53f67902, 0x822cf0d2, 0x7f165ad7, 0xdeae927c, 0xd6a59ecc, 0x62c11095, 0xb79a7847,
			0xdcce7bd1, 0x64b7ad26, 0xfedb035b, 0x851fc58d, 0xd683976d, 0xa1ccacdd, 0x89e9a8eb, 0xefc6b9bf,
			0x6ef4289f, 0x9ef55d02, 0xfa40d9de, 0x89bc304b, 0x58afb556, 0x33bb5e18, 0x530a91c8, 0x8ad38c4b,
			0xde480a57, 0xaee5fc6a, 0x834ed076, 0x2983974b, 0xf9a7e658, 0xae2d4713, 0xbb431d6d, 0xe31f7dd5,
			0x5538b933, 0x720a0f23, 0x418afa10, 0xb22a4e5e, 0x7e4df9f3, 0x136eb8e0, 0xfd7a9c8f, 0x8726b47d,
			0x4a3afe55, 0xd6b27955, 0x02419edf, 0x69fbdc3f, 0x94d3cb8c, 0x86c1816c, 0x16c07dd3, 0x08da40dd,
			0x1f94e2d7, 0x01cc028a, 0xc9a58d7c, 0x21e2d3f7, 0xd70e4d60, 0xcc006a80, 0x7773e964, 0x62a203d5,
			0x7f5cc76b, 0xbf893e91, 0x10ed090f, 0x52813180, 0x49568385, 0x83e00ae4, 0x680ca5c4, 0x71cf4323,
			0x7c7c5885, 0xad57e38f, 0xa80b79fe, 0xc3fdf45d, 0x25f24295, 0xf1a92ce1, 0x581d5b5b, 0xfa2742c6,
			0x19b50314, 0x4c72d551, 0x0dda657e, 0x9956d53a, 0xf72d8b69, 0xaba36ded, 0x1e5642db, 0x99ea87a8,
			0xfb809e9d, 0xdbab66c6, 0x60f79e20, 0x14e770d4, 0x105373fc, 0x84204c21, 0x1a675627, 0x9a73bea3,
			0xe26609f6, 0x4e3d2d39, 0x7a41d142, 0x2f55613a, 0x1dc91950, 0xc5ac3eae, 0x85466646, 0x968750c4,
			0xaafb5683, 0x0d433df8, 0xd6c24ff3, 0xc637f0b8, 0x18758281, 0xad53b495, 0x574b7903, 0xc4f86d76,
			0x0d342c36, 0x93798b7c, 0x432cc4fc, 0x7f6bc4c3, 0x49efedb4, 0x456d8ad9, 0x422a44c0, 0x9ac514ce,
			0x783e8224, 0x4848c197, 0x5dc26a30, 0x2d537ae5, 0xb0b19885, 0x21633e95, 0x1c79c86c, 0x4bd0a203,
			0x42fba493, 0xb6c0efa9, 0x46b39890, 0xb4c12545, 0x82959efd, 0x06ff3adb, 0x655fa372, 0xee850344,
			0x8f1ffbab, 0x71b1a3dc, 0x85bee3d2, 0xb4fe772d, 0x94d8df70, 0x2a753c42, 0xf1bb41c0, 0x16edeac7,
			0x82fd50a7, 0x35c432c0, 0x7e7a92ad, 0xce93bc34, 0xee2794d1, 0x8c871a44, 0xd3ea7c3d, 0xbc1cdfd4,
			0xd5e0a138, 0xad2866ee, 0x92452901, 0x50d305fd, 0xe4d26b4d, 0x69bab08d, 0x727c4560, 0x863c1c75,
			0x6b069cac, 0x6b312782, 0xb6598678, 0x7977bc1f, 0xde105638, 0x3e985345, 0xd18bb4c0, 0xf99ec51b,
			0x218c9f94, 0x62ce89da, 0x98369f49, 0x70b709e0, 0x12f32296, 0x4b224eb6, 0x2b47c3c6, 0xcb037656,
			0x517dfa27, 0xc75e6ff9, 0x2ff4a033, 0x39400af7, 0x574b6b82, 0x8027ff0c, 0x951547e4, 0xd84171ba,
			0x1a7b3690, 0x173cf177, 0x32b40ca0, 0xe6b71207, 0x45adfba3, 0x5d34d618, 0x5c0a8883, 0xbc2384d6,
			0x3cd8def3, 0x6312f2aa, 0xe4b00237, 0x7ef6bd22, 0x5d334f54, 0x1eaa70cf, 0x2e74b233, 0x71e8e245,
			0x02a12a70, 0x524ee8b9, 0xf45099a5, 0xd54819a0, 0x6b5582c0, 0x9bc2d9ed, 0x9960c5c1, 0xf95661a8,
			0x9f1316e7, 0xbf09c56e, 0xf2039432, 0x9969c33b, 0xbec76f26, 0x594e7300, 0x179971aa, 0x9cc0285d,
			0xc26e6171, 0x7a17301a, 0xa3cb585f, 0xf8d1a337, 0xbde2bd3e, 0xd5a48a3e, 0xc813f966, 0xdea6f0a2,
			0x9dae3588, 0x6843b5be, 0x17ac942c, 0x492d028e, 0xe044ec2b, 0xfbef52c5, 0xefc1c623, 0xbb653b1b,
			0xec3edca1, 0xf527b742, 0x7f8074c7, 0xe5a9bc8a, 0x52f6e0c7, 0xc8acf039, 0x1b905de9, 0xed719a65,
			0x4bfb99be, 0xa2e6e319, 0x5d1a4df6, 0xbb8bbfe1, 0x241c3abe, 0x3cfaccfe, 0x0e6f64d1, 0xb121c764,
			0x53b1d3de, 0x7e163317, 0xafbbaac1, 0x99627f7f, 0xb2227927, 0xa784af9a, 0x04ac1ffa, 0xe2a45e77,
			0x0f11ed70, 0xfed6c25b, 0xd0aa2f17, 0x91dc8bcc, 0x51360758, 0x2dd58014, 0x539e4004, 0x8a324343,
			0xde13bb5a, 0xa10e0ea4, 0x4f19591b, 0x680e626c, 0x8f1843a7, 0x18816ca0, 0x08311097, 0x6bf58dc6,
			0x7ba520dd, 0x0ddf7718, 0xdf77dbce, 0x05701fc1, 0x5f7c151a, 0x99618df6, 0x73f9ef8f, 0x00000001,
		},
		{
			0x0c49f665, 0x0a4f32f7, 0x6994a33b, 0x68b77b38, 0x4d1c127c, 0xd9cfc031, 0xec7d32cb, 0x711c02ff,
			0x77454dee, 0xe370410b, 0xec678a33, 0x743d4e75, 0xb6928a55, 0xd75b0d15, 0xd4f166b2, 0x0e140c1d,
			0x52f47d4f, 0x722968bd, 0x3caeb42e, 0x91ffce9d, 0x9ef7f9a4, 0x6975632a, 0xb74771f7, 0x2a50b0a3,
			0x1b9e22cf, 0x184b687e, 0x4ed7a7b4, 0x4ab3bdcc, 0x043e6be7, 0x68f07142, 0x4928956b, 0xe74da0a1,
			0x0b559e20, 0xb044b0df, 0x27398b0a, 0xfb2ad575, 0x9a6fccb1, 0x8dd2b69e, 0x932f096a, 0x66e0f22e,
			0xcec08e38, 0xc2475900, 0xe27ee54b, 0x0619acae, 0x2f8d3fd2, 0xf66624f8, 0xdd46902a, 0x9dc3233f,
			0xa94bfcb5, 0xf0703e4c, 0x27382a67, 0x41616b3c, 0x09d62d91, 0xb4778d42, 0x07838e74, 0x121c51a4,
			0xf47262d0, 0x78c80726, 0x95ebb7f5, 0x7875404f, 0xcbbea11f, 0xd6bddabb, 0x99fdffa9, 0x518ac6da,
			0xced43968, 0x226dffb8, 0x88bc8ccf, 0x792a0ac3, 0xb826c6e7, 0x54326b72, 0x03c7e4f4, 0xaf5c6704,
			0x46c36eb3, 0x0926284e, 0xf27ef980, 0xcf0810e8, 0xa1d6ee2e, 0xc820d669, 0xef238168, 0x3e99f586,
			0x93f49503, 0xd2bd2604, 0xe60b5dda, 0x0e8f443a, 0x8f1879a6, 0xe86722fc, 0xa0ea4a7c, 0xf5447d93,
			0x05c0f4df, 0x85411086, 0x007d20fe, 0x86dd4e75, 0xd608be13, 0x8a2ee655, 0x49ad0ae8, 0x99001c68,
			0x9abd7954, 0x8e5f3110, 0x1fe0c1a2, 0xf97d464c, 0xe642405a, 0x056b6c41, 0xbdfe881f, 0x582c1524,
			0xdb8acb70, 0x5adb175e, 0xd4b1621f, 0x28891a48, 0x89592379, 0x2c0f59f9, 0xffd41254, 0xc9724385,
			0x413092bf, 0xbe581d80, 0x7a66fe13, 0xb8626e30, 0x7ca90138, 0xd4d676ae, 0x248bdfff, 0x8e8d1275,
			0x2db74a6e, 0x65e89e59, 0x1877311c, 0xa12b1949, 0x1025bb77, 0x1131ed11, 0x050fe910, 0x0d61a190,
			0xe30b0d76, 0x75281ba8, 0xa6ed43dd, 0x73521f3f, 0xc2cb9e11, 0xd1ce02b0, 0x48ef0c37, 0x642a8e82,
			0x4d94a107, 0x008184fa, 0xdb77d26e, 0x4965b4f0, 0x417caa2c, 0x1f5c3b92, 0xb1e6d2c8, 0xdc5bf776,
			0x400fe68d, 0xbd9563f1, 0x565fec2e, 0xfdc36623, 0xfa4edcdd, 0x5e2b693a, 0xeda15333, 0x91d32125,
			0x49d823b3, 0x79737533, 0xb785acb1, 0x4e0dd91f, 0x964646c8, 0x3f2812e5, 0x4dd2f440, 0xcc96a524,
			0xa6fc3dad, 0x6187b2ff, 0x44a89f92, 0xcad121d5, 0x549fa967, 0xa618f471, 0x9cc07c4c, 0x78a1e7bb,
			0x3e169663, 0xa532a3a8, 0xc63e4e9f, 0x561441c3, 0x286d551a, 0x909d9d0b, 0x169d3ba5, 0x4838c68a,
			0xc1c9d043, 0xd1d38584, 0xd5fd455f, 0x4d2a9871, 0x4ddd823f, 0x437023ae, 0x737f6300, 0xb39234b9,
			0x051b2540, 0x8c7b2aa6, 0x5ea2f5eb, 0xa41ceaf0, 0x0c92f3df, 0xd9019828, 0xc1c88c48, 0x08a6112f,
			0xb8698d30, 0x2b156e75, 0xfaf71e76, 0xacb04af1, 0xfe6af741, 0x7a45e05f, 0x3ae014b6, 0x592448c7,
			0x6d2246ed, 0x653963c1, 0xb5b21305, 0x6024434e, 0x2b289b4a, 0x3876e185, 0x329370f7, 0x9932f9ca,
			0x0f9550b0, 0xe624a1b6, 0xe172e2d9, 0x7af62859, 0x9845a36c, 0xe2ca4d1d, 0xcbc6d16e, 0xbbfe11d1,
			0xa1f2f258, 0x0f5de31c, 0x923b2ddf, 0xc9d3f739, 0x8b35a861, 0xa0d061f0, 0x45a1b91f, 0x357cd6b7,
			0x38b3b7bb, 0x2d148657, 0x1beb40ec, 0xa46d1721, 0xed00f11a, 0x01e670e7, 0x11bb63a9, 0x086c4357,
			0x00d22c04, 0x85c26a08, 0xdfd5b25d, 0x8209d41a, 0xcff8a651, 0x57469c2a, 0xa7ca805c, 0x88e3fc5e,
			0x31169037, 0xc2e15dee, 0xf82cad65, 0x037dc4cb, 0x290a2fc3, 0x91dcafe2, 0xecf0de76, 0x375afc2e,
			0xba486c37, 0x9c28168b, 0x11eb3e3f, 0x2da6aafa, 0xd3428e6a, 0xea4f10a7, 0xf5ac80c8, 0x08507e05,
			0xad5d6687, 0x44d67840, 0xb332d694, 0x39cc11e5, 0x39120594, 0x86517ed5, 0x78730fa2, 0xf047cb3d,
			0x5377b25f, 0x594d8e3c, 0xd80274b2, 0xb82ab3fe, 0xf414a966, 0x5b1d39a0, 0xa55e5aec, 0xf794df46,
			0x15972aff, 0x92e54fb5, 0xbb6531cb, 0x58354176, 0xd4db36cd, 0xfcaa9312, 0x5a39be99, 0x9cecd42f,
			0x56b5cad3, 0x4896c8c3, 0x79df1bdc, 0xcc3f9ad9, 0x79931ca1, 0xf380ec44, 0xe7683da9, 0x0851fc64,
			0xc9c6189b, 0x5d8a08ff, 0x5c928b20, 0x2113268d, 0x0df0f38c, 0x098c34e5, 0x97d8b089, 0xace11d0c,
			0xd59843e2, 0x5066c546, 0x1d2e4840, 0x8ffd5741, 0x3cfcbe75, 0x644c262a, 0xc6615f7e, 0xea49d177,
			0x2a71c217, 0x7ca57d5a, 0x526a5830, 0x3416efcb, 0xf75407de, 0xdb336239, 0x26a15d1c, 0xa4e9889f,
			0x02278b23, 0x1ba3b358, 0x43647620, 0xc0e46708, 0x11e34c73, 0xd42bee26, 0x4f29d4e3, 0x6b5eb78c,
			0xce6cd28a, 0x5136821d, 0xe8f56c31, 0x75910639, 0x7646e0c0, 0xc374bdf0, 0x29bddc4a, 0x3a31d7d8,
			0xb9b35146, 0x2a339bf0, 0xa6082092, 0x6ae6e0e6, 0x954a02cc, 0x6b914626, 0x11fa3735, 0x2a382143,
			0xec34ee4c, 0xe36ce615, 0x1d0ca2cf, 0x328b99b8, 0x2caa9cd5, 0x0d68602c, 0x41d4d355, 0x7be2f19a,
			0xb53e5b70, 0xad0df64a, 0xf05917bb, 0xa4803cbb, 0xddbc43d7, 0xfe3defd9, 0x0ae575a0, 0xc5812cb2,
			0x104737d0, 0x33a3bd9e, 0xe71bc0b9, 0x916846d3, 0x4c9f97c0, 0x817ac526, 0x1d0895da, 0x793d7e7b,
			0xac54ffd1, 0x3ed4ebf8, 0x1a2ede9d, 0x51a0cf93, 0xb835a275, 0x05911bdf, 0x90ab18b2, 0xb4647059,
			0xce6e23b0, 0x0ca6ead9, 0x2cccf516, 0x948e4703, 0xb4fed1e0, 0xf5b4775d, 0x7f14ec96, 0x60dee3f9,
			0x48133b4c, 0x999c5b30, 0xd94fe9f9, 0xf59a592d, 0xd8e2b077, 0xf9bf04a4, 0x2ca5bffc, 0xf643da10,
			0x04295f29, 0x62f3fb78, 0x7a8e2627, 0x91141bbc, 0x22084f03, 0x8ac8ccdd, 0x426bbabc, 0x83c24638,
			0xdc54887c, 0xbce93b52, 0x54cac820, 0x7ea78fdc, 0x1d122ca5, 0x5403d35a, 0xb29a2c7e, 0xc47f608c,
			0x9aaa6591, 0x10899bf8, 0x44ffb72a, 0x9828abd4, 0x4954e0c0, 0xa6594a54, 0x63c9302f, 0xf152460e,
			0x52736860, 0x17231d0b, 0xc2c73b8b, 0xc3afb599, 0x73473b97, 0x3aecaa6d, 0x520b8567, 0x3f5edf17,
			0x5bcebd3d, 0x71bac6ee, 0xa306bed6, 0x789226f3, 0xaca4141d, 0xa903eb5f, 0x6bccefda, 0xa7efbe34,
			0x810a9529, 0xc2bf5cf4, 0x2ec068de, 0x6e9bf8b2, 0xc4e3dcfd, 0x5c4b70ef, 0xbe785a4e, 0x1bec0c07,
			0x55d3636b, 0xd670d280, 0x2851ef2b, 0xdfc0fff0, 0x83dd1b3c, 0x5cba2394, 0xd1a68201, 0xb7a846ee,
			0x190bfe3b, 0xfdcd372c, 0x19735462, 0x97c5bd69, 0x14161d67, 0x8f590faa, 0xf1834c0f, 0xfdc68e74,
			0xe5779ca8, 0x8e85a099, 0xe49a1927, 0xb4ba1ba5, 0x5b664e43, 0x350bc9b0, 0x65e08682, 0x46310442,
			0x0436d86a, 0x9e9c6812, 0x21415b4a, 0x86565dc2, 0xa2e85d12, 0x7f5da8fe, 0x316639ff, 0xa4071fc0,
			0x92c118e0, 0x6967cbe3, 0xa5294ece, 0x4a47f15e, 0xc6eb2b5b, 0xf1145c75, 0x29740f47, 0x0568cdbe,
			0x3bccf9e8, 0xdb81ba86, 0xfb87ce02, 0x8b85ee8e, 0xc5197e76, 0xf7427bcb, 0x70afad93, 0xe094b239,
			0x87caa085, 0xd87198a1, 0xac588de5, 0xe09f1f89, 0xf210d687, 0xd31401f4, 0x29a41117, 0xb2d9dc41,
			0xe92ca494, 0x1af06eda, 0x2fe363e1, 0x3a5deb96, 0x4ad8a945, 0xaffb3b9e, 0x6ae87445, 0x59325a55,
			0x7288c614, 0x1727ea67, 0x917780cb, 0x8b015214, 0xb2acc69a, 0x123bd986, 0x381cfa07, 0x28100f54,
			0x7a7627b9, 0xac4811ca, 0x0755d268, 0xe1af6d35, 0x0547dc2a, 0x190df447, 0x42605f5b, 0xcba0b1d0,
			0x321a90f8, 0xfa8d3b0f, 0x462f66a6, 0x264257b3, 0xf5fc9b19, 0x64bce22a, 0xe1ec0a81, 0xd75bdb5a,
			0xb86c3872, 0xdcc5cf43, 0x6d4cebae, 0x834c9bf8, 0xf1126f7a, 0x6d58c4bf, 0x10548c46, 0xd6d1b83e,
			0xbbc66fb9, 0xa23ec660, 0xe11f65b9, 0x84f4c039, 0xcdaeeee2, 0xe4702f08, 0x82fad989, 0xbf856d0c,
			0xf3086f80, 0x59372c08, 0x0b24d66e, 0x0001dd9c, 0xe726a207, 0x2c13cfbe, 0x80ffaa0b, 0x061dcf21,
			0x432ceb04, 0x3594be85, 0x0f749450, 0x149433e2, 0x37ae9755, 0xf6f08d2e, 0x3dcbaf6c, 0x48af2d71,
			0xd76dca50, 0x247afb79, 0x95156e8b, 0xb7d33e03, 0xd9746358, 0x642276c3, 0x541a9e11, 0x4f666eed,
			0x7abd8872, 0xc89be1f2, 0x4e976ae8, 0x82173bbf, 0x323f8b47, 0xf24b9609, 0x589c4978, 0xb903673d,
			0xec62fff2, 0xc7fa2aa8, 0x6806b8a4, 0x206d15c2, 0x4233fac8, 0x61ee2930, 0x8b87d06b, 0xa40f24ac,
			0xa6faf65d, 0x37f90b3d, 0x49b7dda4, 0x9d137b96, 0x5b659312, 0x2e5a9fae, 0xa19dbb25, 0x93ada7b7,
			0x6299cf5a, 0x11ced8fc, 0x1299e06c, 0x5937434d, 0x9166dc0e, 0xf4a7fbf9, 0x6a6010c4, 0xd5e7b7a0,
			0xb1bdf75f, 0x247ed91f, 0x00cb773b, 0xb2482bf9, 0xa486e2c2, 0xdec3bdaa, 0xe7813afc, 0x20a9d51e,
			0x2cd36791, 0xcb0c5364, 0xb308f26e, 0x0cba6c7a, 0x7bfd5183, 0x47837ea3, 0xdab1b345, 0xcd67d326,
			0x5e530328, 0x6b3a5830, 0x6c44c485, 0x649cba10, 0xd50f2829, 0xa2836b9e, 0x6269ee3e, 0x51abc7c0,
			0xbe11501a, 0xa781d630, 0xed208794, 0xaf98ad79, 0x7e34b773, 0x45fe9a5e, 0x504921cf, 0x00000001,
		},
		{
			0x01ab5e13, 0xcbf1bf1f, 0x2c80f386, 0x83b684f1, 0x4e1ae7f9, 0xbcb23946, 0x85c657e7, 0x501380ed,
			0x0cbdc9ec, 0x7e51d7d0, 0x5a879178, 0xbdc57f37, 0xc2464982, 0x9918f319, 0x3c4aefd2, 0x233917e9,
			0x084478e5, 0xc36eb06c, 0x4a681cb2, 0xe8d347f0, 0xc5fc9621, 0x604321b9, 0x0609e3d0, 0x8b79be65,
			0x11a097bf, 0xa0e4a298, 0x9c0a89e1, 0x09e283b0, 0x079dbf26, 0xdcf97515, 0x2e9ca7dd, 0x3f9180a4,
			0x70e5655a, 0x5f6c9472, 0x0737c615, 0x4f947af2, 0xaf053914, 0xcc2ccc36, 0x11550be8, 0x779bf416,
			0x77e2951b, 0x6d1a469f, 0xedb6f8b6, 0x19312db2, 0x65c2aaa9, 0xe8e1271a, 0x0b0a5932, 0xd4d6a08b,
			0x74d053a4, 0x3200392e, 0xce37f70b, 0x8f96bb5a, 0x8e190d7c, 0xea67d84d, 0x07c53728, 0x45a27719,
			0x70f28c72, 0x1d7e7180, 0x8a7944e8, 0x26a8ff28, 0x087d0db2, 0xa7f74e28, 0xc32e0e9f, 0x991998d4,
			0x59294c66, 0xcc85e255, 0xb3e4a0f4, 0xdff24d6a, 0x6891d4f8, 0x06b0f018, 0xf97352bb, 0x1beb50b2,
			0xa8441393, 0x3cee4448, 0xdb958c4f, 0x52bdb7ad, 0x97c99e9c, 0x350833ff, 0x86c17b97, 0x87ccf9ad,
			0x3d3b2f46, 0x0d23afaf, 0xdb657d2b, 0x325c7ea2, 0x52891d59, 0xf3bfbeee, 0x34ce418a, 0x8fdf8575,
			0x7b01a937, 0xd04b81f7, 0x233eb5d3, 0x0d1d6b86, 0x1ce6d285, 0x862f3449, 0xc78e6f9c, 0x1623d521,
			0x821c9d2d, 0xa464ccd2, 0x0a99c0f2, 0xe93cde21, 0xb8845766, 0x5e16a8e1, 0x38546025, 0xb3a78562,
			0x09c7cff8, 0x3c7fe006, 0xd4ca56a5, 0xc726ad02, 0x26becb6f, 0xc7c76e60, 0x0954dbb4, 0x2011a0eb,
			0x5680544c, 0xaeab6b2d, 0xfe438467, 0xc4bf56e2, 0xafcb7145, 0x859e1684, 0x2ad0dc4a, 0x731abffc,
			0xd1bd1724, 0xfc9b9e0d, 0x7f8f38f6, 0x51efc9d6, 0x2d4077e3, 0x847586e1, 0xef9255dc, 0x6ea1f5f5,
			0xfb3dadbd, 0x6c24dbc7, 0x475340ba, 0xe43276fe, 0x069ffdb4, 0xd7c4c08f, 0xe0e31d9e, 0xba03fdba,
			0x51996fb7, 0x7fe8d8e1, 0x6a656e55, 0x524f7ae1, 0xd03d96fc, 0x8b23ff0b, 0x1b5aa80a, 0xf707939e,
			0x8235e54d, 0x237f7946, 0x4d193580, 0x5bf7e077, 0x82f58f8d, 0x479e106f, 0x3b6077ee, 0x76e53d2f,
			0x217ea0f3, 0xae7702fb, 0x3d971600, 0x114fb49b, 0xad1441dc, 0x8f43ef1c, 0x9a6aa269, 0x89db1720,
			0xdac1ee17, 0x1170308c, 0x7e13f16d, 0x85331add, 0xf12f421e, 0xb739dae5, 0x7caeb263, 0xabc482c9,
			0xe89ff230, 0x71bb9cb0, 0xd16c7f45, 0xe16a4ac3, 0x3219041f, 0xb355b82f, 0xb737e97c, 0x08b00255,
			0x28dc81e3, 0xadc9f031, 0xe8f90a9a, 0x616889b4, 0xc06abb52, 0x62afb4a9, 0x99fad20b, 0xa7cc3da5,
			0x3a5a1f31, 0x6cfc55ff, 0x3abbb8f0, 0x241f3084, 0xc10732a5, 0x298ab625, 0xca72c67a, 0xaf86bca1,
			0xe10a3d7e, 0x2e5cf600, 0xae015e44, 0x43a810f6, 0xa0be2b68, 0xea33f70c, 0xbfc41902, 0x60d258a0,
			0xfa12b578, 0x0b724416, 0xc2aa92df, 0x2bd1117a, 0x07dc0542, 0xcbaec9c4, 0x86bda3df, 0xf5a9b26a,
			0x44bfc7be, 0xe34f7b83, 0x2ae1eef1, 0x0feb2915, 0x3db099d0, 0x18de38ba, 0xf3e11628, 0x416eb2a0,
			0x52486261, 0x83acd6cc, 0x4680000f, 0xaa3ba743, 0x5b5d47ba, 0xeddc00e3, 0x50f0f5c2, 0x72c473e7,
			0x0286e2cb, 0x4be1cc75, 0x41095245, 0x19bf7c24, 0xfb2557d5, 0xbd49444e, 0x711ba85e, 0x5c93eca0,
			0x0dbabf94, 0x43eb3065, 0x496aa25f, 0x29eae858, 0xfbbfe7f1, 0x699a85fa, 0xc1d941c8, 0xa183f74d,
			0x920e677e, 0x038f79d1, 0x14eeb6ae, 0x576016af, 0x0a062ed6, 0xbcb9bac7, 0x1e18aa0c, 0xae23fb85,
			0x57c72560, 0x4617a153, 0xa71b0c6a, 0xa48d26d2, 0x25622cce, 0x3d8230e5, 0x89815a94, 0x6d131d4b,
			0xdf6df75b, 0x46432dc6, 0xdf9ae8cc, 0xfd1dc5b7, 0x8636a718, 0xda55ccfc, 0x814a7467, 0xd9a21a95,
			0x923ccca9, 0x04c1e6f5, 0x0c036cf0, 0x35df1c13, 0xff80f790, 0xa6b47210, 0x5e757ed7, 0xe5dd4acb,
			0x89d3146c, 0xac79f6d5, 0xffdbcb32, 0x4aabee8c, 0xecab2965, 0x47a8bf53, 0x5d9bab27, 0xd0fa27cf,
			0xddd579d7, 0x0a947996, 0x80bcdbd9, 0xbdefdf4a, 0x53e167cc, 0x0a09906e, 0xc702fec9, 0x3f4e78d8,
			0xd996249e, 0x56726780, 0xcde153fa, 0x1af22c36, 0x19b644cf, 0x2a332c30, 0xfde11216, 0x6077ffee,
			0x612f1438, 0x8f0f76bf, 0x430e3a8c, 0x5a2aca60, 0x741f0ab6, 0xb1580893, 0xc1300aec, 0x79038d21,
			0xc251a2a2, 0x952f345b, 0x3b00ce81, 0xb44c2a27, 0x6905930c, 0x358a2370, 0x370c3394, 0xbb23d806,
			0xadee2d04, 0x83085981, 0xd80a6057, 0x0353474e, 0xa3427c29, 0x9d836bac, 0xe45f7ebf, 0x26b94fe3,
			0x7c998856, 0xc012583e, 0x0e07e4fb, 0xd2d1aa2e, 0xee27243a, 0xf04f3859, 0x49a59d2f, 0x0d40697f,
			0x06acb970, 0xa3cfdad6, 0x6578c310, 0xef448592, 0xbddacd9a, 0x77399564, 0x9693eede, 0x161666ff,
			0xf856ac59, 0xc241e132, 0x1768905c, 0xf19336e4, 0x063b1335, 0x6b1aae3e, 0xff063bfd, 0xcc0ab947,
			0x8f29b1e9, 0xe0a2c3ab, 0x295d0805, 0x47843dca, 0x4ae9fdf7, 0x3a29c082, 0x2a0110a4, 0xadb55f11,
			0x89ada899, 0xa76d3928, 0xd4bd2cc2, 0x7530be38, 0xa1c3944f, 0x384d912d, 0xb1b92628, 0x66ca7017,
			0x00301884, 0x68743b62, 0xeee5db6c, 0x96ef1b56, 0x9f474953, 0xbc3ecd18, 0xa9b28dc8, 0xa1b0021f,
			0x4f849990, 0xbe19a662, 0x4d07dba5, 0x188e7204, 0x98ad0c36, 0xc714cd3b, 0xa1f3ed87, 0x373de044,
			0xb9c922c2, 0x9eb7d989, 0x9bb89577, 0x1de9ad8a, 0x34d4168f, 0x2fd847bf, 0x3b0002c3, 0xe50b2265,
			0xa1e399a5, 0x38b5e8ca, 0xa752b08d, 0x9424a7d6, 0x8c3dd7a8, 0xb32beb6c, 0x5008a049, 0xd99a8d23,
			0xeaa634a0, 0x36e25750, 0x749eaf01, 0x21d8f32d, 0x8f473251, 0xb6eccfa1, 0xc9c52ff6, 0x87999315,
			0x97ff78bf, 0xdd81a86f, 0xb45c8430, 0x333ab92c, 0x9bb6d929, 0xe95468e6, 0xc8ee8520, 0x92d82577,
			0x0d1ce760, 0x4c1f0037, 0xe898f54d, 0x8311bb50, 0xf2980574, 0xa078474e, 0x01d14634, 0xa583dedb,
			0xb8e2b87b, 0x0a095656, 0xec6f9da6, 0x31b0f6ee, 0xfc1b7805, 0x735130bf, 0xc4a646ea, 0x1506413d,
			0xbd985479, 0x0889e348, 0xf201cb82, 0x7a195ccd, 0xe6da2d8d, 0xe5dc5723, 0x129db7ff, 0xe509ce0e,
			0x829e15d3, 0xa6cb0238, 0xf3b5b7c6, 0x990991c0, 0x4bcb23b1, 0xbed6b1be, 0xbcb64f4b, 0x3662f42c,
			0xe9b7025d, 0xecc62f01, 0x4e7958fe, 0x54929bb1, 0x2791cb4f, 0x17cf02d2, 0xa486441b, 0x1ef03639,
			0x2cc91421, 0xdcd7aaaf, 0xb59317ab, 0x6e35018b, 0xdf604cf2, 0x98f8d07e, 0x0afe457a, 0x22d203a7,
			0xe63b2406, 0xb9a89183, 0x0122d1da, 0x0e66e6fa, 0x6c6d4453, 0x814b734e, 0x859163c2, 0x7b34e1ab,
			0x72ca5ea0, 0x47d61215, 0xc9a44cb4, 0x0cfb6cbe, 0xf8968060, 0x8bb08088, 0xf0a73e70, 0x977f5cfe,
			0x5e5cdc45, 0x0502359c, 0x2a0030d0, 0xefd38f22, 0x61ffe06b, 0x61afed61, 0x84aafb46, 0x66c553e0,
			0x955d2c70, 0x5b35f9b9, 0x2620a6d3, 0x3e62de77, 0x12c55f77, 0x9de07a6e, 0xd5357c2d, 0x5b07d676,
			0x12bdf037, 0xc7c13d59, 0x550e7c0b, 0x389bb34e, 0xf40862bf, 0xcdf25c0f, 0x2d5c9ddd, 0x32622b82,
			0xa473884a, 0x99e4afa8, 0x4781f8ea, 0xb1349d8d, 0x5fd5eac1, 0xbf998ccf, 0x8cc99ebe, 0xc823e2f7,
			0xa12d9b10, 0x99e471c2, 0xa7d678da, 0x4b0686eb, 0xca2c984e, 0x2abdd2b2, 0xc8ac28e7, 0xa6283403,
			0xb2cb42ea, 0x64258cd5, 0x0d6e2461, 0x5bc2b23e, 0x66ab7cf2, 0x0131273d, 0xb694e570, 0x03d9959b,
			0x2815b6ba, 0xf15db1f8, 0xdb893eae, 0xd52f66d8, 0xee0ed6ca, 0xba832669, 0xa84b1784, 0x06c26465,
			0xb217f149, 0x6384a6c8, 0xd93db506, 0x472b1d5b, 0x8d5394b5, 0x45d9ca2f, 0x773840bf, 0xb3b846d1,
			0x2cddaf4f, 0xe896093b, 0x81818d06, 0x8d1b79b1, 0x0584acf4, 0xf3fc48c2, 0xb8974acd, 0xfd562215,
			0x8404c074, 0x1fc464bb, 0x71aa57f5, 0x74368b5f, 0x13cdf9dc, 0x4191353e, 0x8fa23cb8, 0x2b23e3bb,
			0x98fe49e9, 0xf5bdd4e8, 0xf71acabc, 0x067fc3b8, 0x3f0922bd, 0x6ddf1291, 0xacf6ce9e, 0x1537d539,
			0xd266168d, 0xeb1dad0c, 0xfaa15772, 0x569cdf01, 0x6e9628d2, 0x9e19dc84, 0xf67cf924, 0xc03242b2,
			0xfb09ceec, 0x769c7246, 0x07458263, 0x37a7e6b0, 0x64ede164, 0x03f75656, 0x90e223ba, 0x0d15203f,
			0xee37c59d, 0xe9228794, 0x0e449d54, 0x9c763222, 0xed54bf90, 0x7d188500, 0xb51c0209, 0xeb5921cb,
			0x75751317, 0xa563f58a, 0x51b959c1, 0xf3fe7067, 0xf871df2a, 0x0fabef39, 0xa1434ea3, 0x04e0890b,
			0xc87f2530, 0x11a1c88a, 0xd7cc8e5a, 0x4f0d3af6, 0x537b5517, 0xee9c4949, 0x5169174a, 0x8eaa9c0e,
			0xebcb8313, 0x07c9f63a, 0x4f3684d7, 0xf4154d35, 0xd0ff386f, 0xb79a1443, 0x226586ce, 0x4a9e0edd,
			0x955421d5, 0x0e29ce71, 0x9fae61a8, 0x98e2c9ca, 0x57e5ba40, 0x33ddb315, 0x9a378c9e, 0x2d6e7580,
			0x00396249, 0x0d46d136, 0x916c434c, 0x6aee2c3e, 0x01eaa623, 0x7329c402, 0x9b637c8b, 0x00000001,
		},
	},
	{
		{
			0xd3d85409, 0xf1faedd8, 0x12a25f8c, 0x4d733d74, 0xd5cbcf0f, 0x4c37ebc1, 0x8cfef434, 0x6d5d4d26,
			0x5dbcd926, 0xe6523731, 0xfa893617, 0x3c31eb5e, 0x3f11533e, 0x25150fd2, 0x5617ebe7, 0x488c44c0,
			0xd32e6e59, 0xb0066aef, 0x6762d840, 0xa9b88640, 0x5221b4ed, 0xdac07d8a, 0x8434a31f, 0xb166070f,
			0x462bb946, 0xa65f1a13, 0xe1df8eb3, 0x04c62792, 0x378b6171, 0x48609521, 0x54b11930, 0x2566f369,
			0x04d0e1d2, 0xad15dd44, 0x9432f8cd, 0xd0d67f91, 0x2c41461a, 0x4beb5d61, 0x04f9804e, 0xb2e7f993,
			0xa7490d6c, 0x12df3fce, 0xa258bb68, 0x3bf3dbca, 0xe8654f82, 0x1395e86a, 0x90da6d15, 0x4c8e84ff,
			0x739bcb4a, 0x4b23b84e, 0x6400bfaf, 0xc1fb38cc, 0x002cd881, 0xe492ae1c, 0x9b6eb5b6, 0x54a55d66,
			0xb50a5df3, 0x151a9e63, 0x8d6915ee, 0xccd35d95, 0xdb3bfaf2, 0xcb5d23a0, 0x580f319c, 0x98970f3e,
			0x7a2ad659, 0x146af321, 0x42868690, 0xcc387125, 0x8dd76f4b, 0x083cc79c, 0x166c8a54, 0x76aac664,
			0x40705150, 0xf8be07c6, 0x8405fdda, 0x60ea4d68, 0x14e4d6f2, 0xb3b79887, 0x5a56247c, 0xf09bc210,
			0x32e7067e, 0xb67de19f, 0x146717c2, 0x2e0c5e49, 0x6582bdcd, 0xe03cbb8d, 0xb4ec19c0, 0x8d1502ee,
			0x0ff5933b, 0xf0394502, 0x437b1e3a, 0x70d05e4a, 0xe2410b64, 0x70a5ed0d, 0x7cb8a8b1, 0x1dec86aa,
			0x5af83ea3, 0xbba4c8fa, 0xf2f9e26e, 0xf44b4985, 0x8ea1f1b5, 0xd72827a8, 0xb0715854, 0xd6cd51a5,
			0xb4f9d51a, 0x7aab696f, 0x434bfca6, 0xb8835f9d, 0x8f4d220e, 0x174c0f81, 0x18c165cb, 0x89e80fa2,
			0xa18833e8, 0xc1de7a50, 0xa805fb77, 0x7d5ee3ac, 0x616f68f4, 0x4243a966, 0x18f5dd87, 0x657632f4,
			0x269422ee, 0x0d405aae, 0x7c4dbe97, 0xbaccec2c, 0x882daa9f, 0x64962e17, 0x3ef28047, 0x0cb7fe2b,
			0x97991e49, 0x8f3b721d, 0xfe4a7aef, 0x0ae1113f, 0x54cc27a8, 0xf6abad46, 0x9e624936, 0xb43777d0,
			0xb1a59ec4, 0xd83533ea, 0xa44c97b0, 0xa1683cf3, 0x5d40aee5, 0x33e7ec02, 0x74c22fad, 0x0394038b,
			0xa8e5932d, 0x21ac4ae3, 0xf24662b9, 0xb713c8a0, 0x90ce52d2, 0x61eff6d9, 0x8670691e, 0x2609c7b7,
			0xea63ef47, 0x3ede0dfa, 0x38bf0abd, 0xef77c939, 0xfd40949e, 0x9125cd56, 0xeed58c23, 0x6f99da43,
			0x59070332, 0xc4ad9e65, 0x21a95e44, 0xffe0cb28, 0xa20008ef, 0x476e0c08, 0x9b8879be, 0xf00d017d,
			0xc754af89, 0xb0f22f94, 0x66609c1f, 0x36094163, 0x35b07eba, 0xd1286763, 0x5f754f75, 0x6e6a9a47,
			0x3e76d494, 0x5a90285b, 0x23ab5315, 0xadbd630a, 0xca7f4dd3, 0x6b98936d, 0xbb657fdc, 0x6522aad2,
			0xe9ff4ee6, 0x0c55acbf, 0x22e74370, 0xc120f39f, 0x7654dbec, 0x0ed5f712, 0x396bfd6a, 0x595fe7a3,
			0x1d981c32, 0x7c50a56b, 0x2b634af5, 0xbc4d72b1, 0x56420b50, 0x5992977f, 0x51167ec6, 0xa541f44a,
			0xb2596f7b, 0x11d2699b, 0x904176e6, 0xf88efe08, 0x71b307bd, 0xca6f56ad, 0x0405689a, 0x90801ab0,
			0x87bc933b, 0x27e54fd5, 0x7be45154, 0x41b7973c, 0xf98712c6, 0x4eac73d9, 0x490bab12, 0x928ca4ea,
			0xa75689d8, 0x5055eb83, 0xe967a56b, 0xba57c93a, 0x837d995b, 0xbe74d924, 0x0226bad4, 0xe88a072c,
			0x20f139a8, 0x178b682f, 0xc39f0908, 0x4de5ce1b, 0x5f56e8ad, 0xc72a4ddd, 0xb42c105b, 0xb341ca00,
			0x383536e9, 0xe6bf6b98, 0x220eda79, 0xa7cfc4d0, 0x03109b29, 0x0ae6f3e6, 0x5bac3889, 0x7b49e3d8,
			0xbd9f8972, 0x63cff5f7, 0x79ca2a4d, 0xeb50aac3, 0x62adff75, 0xb6623687, 0x0c8cb8c7, 0x438f506b,
			0x392c0ff0, 0x4a797f0b, 0x76b35904, 0xf0862e5c, 0xec4715ed, 0xf8633702, 0xe861b91b, 0x0676006e,
			0xb9452030, 0xac4dd7a5, 0x9f53700a, 0x6afd44de, 0x3911529c, 0xb7819d72, 0x304b8a3a, 0x9c1bfae3,
			0x19d10449, 0x87abd60d, 0x6ae14c4b, 0x7e45eda2, 0x2dd2222d, 0x76d54da6, 0x18e436e3, 0x7beef4d5,
			0x6b30fc66, 0xe2a07c38, 0xf67eb90b, 0x29ec7c11, 0xd75628bf, 0x47949ffa, 0x83df7f15, 0x9bf2c21b,
			0x5524bf31, 0xe8a53a4b, 0x62d99fc6, 0xb495c68f, 0x77ab962f, 0x91923bea, 0x984aebb4, 0x463589ab,
			0x1db7de0f, 0x905337c3, 0xa81a47c4, 0x261f0c81, 0xec169217, 0x28bfa4ca, 0x256446d6, 0x401fbcc8,
			0xb090d37d, 0x6b206e3a, 0xae6a7f70, 0xe759a489, 0xf2b09cde, 0xd87b5c2f, 0x2f0e4362, 0xc8ffc73c,
			0x403ae7b2, 0x62c4835f, 0xbbecb88d, 0x3a000213, 0x8720691c, 0x792f9003, 0x3b3dc569, 0x626fcd3c,
			0x2df4b172, 0xd414f1f7, 0xc8272db6, 0xa2983cd3, 0x4903ef95, 0xfdfe71b2, 0xf3cb5873, 0xe42b60b2,
			0x7ef8c2c7, 0xd49ab36c, 0x9f6830b3, 0x56b868eb, 0x48f5cf0d, 0x96f3d3e4, 0x037880bd, 0x1c36c5f1,
			0x20528942, 0xaf8645e0, 0x04b092cc, 0x31eaca7f, 0x5eb24cd3, 0xb7d80192, 0xb630276d, 0x6de79808,
			0xbe43fc97, 0xd62eed38, 0x3e93fc8e, 0xc095cb5b, 0x6db224f8, 0xaeca0bb8, 0x09fe642b, 0xcb8480da,
			0x7bb9d87d, 0x19fd2a71, 0x19afd45e, 0x5471f8e9, 0x1d3f5be3, 0x867d9508, 0xa5cd269b, 0xa54efe4c,
			0x18e5e7b7, 0xf9c49bf3, 0x3fa77449, 0x67fdde26, 0xaef28dcb, 0xae161137, 0xbc26be70, 0xf6911076,
			0x6e499075, 0x67565590, 0x54744363, 0x2ea407d4, 0xac967d32, 0xf5821d5f, 0x8a6bc27e, 0x576d32cd,
			0x31c5e06f, 0x69c6e5dc, 0xd6d860ad, 0xdefd4889, 0x77554b3d, 0x9cc20fc6, 0xdedf6a9b, 0x463a9a18,
			0x1006782c, 0xdf756cd3, 0x01dc0725, 0xa340f129, 0x5f5c3550, 0xae8830ce, 0xb2d75fb6, 0xcd30022f,
			0x260286f1, 0xe74de01f, 0x4d640a05, 0x6476187b, 0xe74c2f47, 0x4d7b9424, 0xe748b4e5, 0x67b9d474,
			0x22ef873c, 0x0942a6a1, 0xa6b4fd19, 0x3c5c6d1a, 0x6dcfc463, 0x16001f24, 0xd5aad4be, 0xcc8605d6,
			0xfa5c8903, 0x3ee90215, 0x6db36eed, 0x28707e43, 0x4397109b, 0x48cea6bf, 0xbd878d18, 0x1bd20a8a,
			0x2e75f93c, 0x17e249de, 0xb4054c5b, 0xf75f901e, 0xe158ea54, 0xf1a33002, 0x33f5a3c9, 0x8e43597d,
			0x817a2200, 0xa3432c7a, 0xc00ec2ea, 0x3897ef73, 0x9ef82e23, 0xc171ab32, 0xe5a02fa5, 0x5636d19e,
			0xbfe25947, 0x0ccf39b4, 0xecefc3d5, 0x01b29f06, 0x3c3c814b, 0x5e38ff5e, 0x36720f13, 0x8cd0718b,
			0x8e85c801, 0xb3c61cb2, 0x80086e15, 0xedf1db41, 0x44a9f737, 0x7781146a, 0x9246066e, 0x23db7159,
			0xddb6373e, 0x2a59403f, 0xc468de0a, 0x56b7c960, 0x51baedef, 0xab0bea6f, 0x266ec91f, 0x0cde2374,
			0xc08b3ac1, 0xe120a336, 0x4fac46da, 0xeb0be3f4, 0xa0477cc6, 0xbaa62238, 0xf2b7a571, 0xce4ebf62,
			0xd6cd0127, 0xeae93304, 0x24952a27, 0xebeff186, 0xa95235ab, 0x9078ea3b, 0x7855829e, 0xfbafc243,
			0x34c8a381, 0xf2e5c91b, 0x0ad57b61, 0x7913d884, 0xc0dae703, 0x0b8bc453, 0xaab19564, 0x5fc1567f,
			0xd1353a85, 0xa41266d8, 0x615a0605, 0x198dd2cb, 0xa1bfa80f, 0x10f73ebf, 0xae0501ba, 0xa9040823,
			0xba2354fe, 0x4a1357e3, 0x86abb595, 0xda642597, 0x0430a3a2, 0x52a727b7, 0xaccd02e8, 0xc9e7ffa6,
			0xf0450c83, 0x952cd20b, 0xb30dc361, 0x5b30c0e8, 0x8b84a1be, 0xc9698def, 0xec43bcd0, 0x04af280e,
			0x0f2afb6e, 0x5169b1a4, 0x91679d66, 0x2c8ebec7, 0xb617a33a, 0x2969a1d9, 0xa2402bc8, 0x2e5da5c5,
			0xd6cbe2ac, 0xb6ab23a0, 0xeaa9036f, 0x6667f7f5, 0xeb1125cf, 0xbeb1e8f4, 0x68cc8546, 0xc0b7832e,
			0x4dd6d7ae, 0xbda68250, 0xd7e6c46f, 0xa766721f, 0x1beb78c5, 0xa412a550, 0x7e359ab3, 0xb360ad86,
			0xde1f3583, 0xa4d56237, 0x4084dc8f, 0xc9cb3d5b, 0x292975d3, 0xbccc2867, 0x33a6a056, 0x73601d4c,
			0xe6c964f6, 0x8d2dbba1, 0x5fd9b991, 0xfc9a25ae, 0x04bcbd60, 0x8d842d7e, 0x5d9832c3, 0xb48e0235,
			0xaf615841, 0xf80c69cd, 0xd91ef98e, 0x200f289b, 0xf8c20ee8, 0x212796ba, 0xc8f00543, 0x8fd814f3,
			0xc9f6eb8b, 0xa19c13b9, 0x550d5592, 0x4384ac4a, 0xa82485c5, 0x7e89eeb6, 0xc1554a58, 0x27b0b85a,
			0x5b49e7f0, 0x0837579e, 0x57eab996, 0x946acf5a, 0x5f56ab3f, 0xce812fad, 0x0d8ceaef, 0x794999f1,
			0x9f1d57ce, 0x82626938, 0x7f6a579e, 0x92956126, 0xc05a47a4, 0xaf180fc5, 0xf822cd8a, 0xf5647c47,
			0x7b821079, 0x231c1a0f, 0xc9b93471, 0xed4d0f56, 0x69fbe7e8, 0xe6c2a67b, 0xbc110d80, 0xe9f9a37b,
			0xf20c4f1b, 0xc7f8d7e9, 0x975e029d, 0xfabeff2d, 0x7018d89c, 0xa15e844e, 0x202b1f9a, 0x655872c8,
			0xfc644527, 0xf8185aec, 0xb0ea8975, 0x62b7972d, 0x808a42d2, 0x5cae5b90, 0xa5243756, 0xa49ac497,
			0x26349803, 0x6879b472, 0x1d593bb7, 0x61587d1e, 0x4e7ca66e, 0x4eb297f3, 0x600b5f17, 0xf942665d,
			0x9ee4ec6f, 0xb09f4793, 0xe3a9ac53, 0xe11f855c, 0x926d2061, 0x608a0e10, 0xe95c06fd, 0x614cfa67,
			0xd2fe6c09, 0x2886c72d, 0x639fc67d, 0xbfda4681, 0xfbbe35a8, 0xd0dfb26e, 0x3dd4529b, 0xabbad9f9,
			0x01811a77, 0xe49f232a, 0x25dab102, 0xf8519010, 0xc59c8533, 0xe9e76b5e, 0xa15796be, 0x00000001,
		},
		{
			0x0c65f413, 0x743b0cf9, 0x7971857b, 0xe7227284, 0xa60dcf9c, 0x5126d47e, 0x7aa23298, 0x38553769,
			0x1d959726, 0xecc8a57b, 0x4f3ae6af, 0x30255cc2, 0xba9d2234, 0xd1180e05, 0x57fa75b7, 0x5c97fdb7,
			0xb6a3736f, 0xb0a60dac, 0x2a230ea1, 0x93a3d5dd, 0x76ecce92, 0xe678a086, 0x4207034c, 0x25a8c4ad,
			0x9e7c65cd, 0x55fb4f3a, 0x8e6bdc24, 0x234e9180, 0x9449c600, 0x308ab5dc, 0x6aa61ed5, 0xa0ae99d5,
			0x6ba28356, 0x5a6a75ad, 0x8c609531, 0xa41022f9, 0x0392c467, 0x285850c7, 0x963dc2bc, 0xef921352,
			0xb878f1b5, 0xad30e1da, 0xf87b30d4, 0xb5a5ffa9, 0x5f274cfc, 0xb1abba12, 0xf4526c76, 0x03a4a582,
			0xd0709037, 0x82539b67, 0xf5c7cfdf, 0xd99663f6, 0x5c0839e1, 0xe1ee8394, 0x33bb4b14, 0x4a17a0f6,
			0xc530b7be, 0xc7495b78, 0xc3ccaf86, 0x08a489f5, 0x727280de, 0xd297863a, 0x32409739, 0x45d38e45,
			0xf2541d79, 0x660d840d, 0x61b8e959, 0x57b8c0e2, 0x19e03f13, 0xec9ca0f9, 0x7eeda683, 0x4016f458,
			0x9b4cf5c7, 0x0103d9ba, 0x7bce908f, 0xd382a136, 0xb8486fd9, 0x05d48e0a, 0x0a6539d2, 0x217c95d4,
			0xc3e065a0, 0x0de58177, 0x95688b8e, 0xc1b3e3f8, 0x21519118, 0x2d6aa6ff, 0xfef09241, 0x98449181,
			0x4c785d42, 0x12237888, 0x5f7612a2, 0xf84e67ee, 0xfb6b3df3, 0xb7395c94, 0x6e7a9eb1, 0x43dcfbe7,
			0x8c0e6ce1, 0x748e4a9c, 0x9ec99e98, 0xb6904fd7, 0x3093c29b, 0xcb314496, 0xe1737beb, 0x1641818a,
			0x025bd857, 0x4583e89e, 0xbf451114, 0x84640692, 0x912c6075, 0x7fe93583, 0xc0d711d4, 0xa5ea92b8,
			0x1e79a492, 0xf364997f, 0xe8840820, 0x1e98b4d0, 0x19779430, 0x8f2758f9, 0xf0e93daa, 0xad1f2010,
			0x1496ba9f, 0x868b04df, 0xf84585df, 0x76a9dde2, 0x53273c4a, 0x5378d98f, 0xf8694eed, 0x1ba81ffc,
			0xef87cdac, 0x6daa2125, 0x429a1576, 0x23db8e2c, 0x4f9a7e77, 0x37c659a4, 0x2401683e, 0xcaf8feda,
			0x63b42d8d, 0xa35b443b, 0x1177cb09, 0x5e7b223a, 0xc4cef527, 0xd6ace01c, 0x166bc98d, 0xf772bf5d,
			0xdcd30208, 0xa04bd1a2, 0xe5769542, 0xd858fb51, 0x8a792052, 0xe1903202, 0x7b14e9a2, 0x16941284,
			0xb03a77e8, 0xcad87d5a, 0x4ae6056d, 0x38557ed5, 0xed9a8e26, 0x9f5f757c, 0xdcfc02ed, 0x2b772a93,
			0x08f9b976, 0x7af8364f, 0x70e79c33, 0xa8e6f026, 0x8d9bdb35, 0x7b851579, 0xcb8f2b28, 0xdfbeef94,
			0xe6ee9321, 0x03644533, 0xb3129879, 0xfcec910e, 0xe4f5ac46, 0xa9737f81, 0x78ee6cbc, 0xd1d5af37,
			0x5d0f16e2, 0x49b1ef58, 0x648d89d7, 0xd286f258, 0xe5c5c074, 0xb153ea50, 0xf1a824d1, 0x81c2ec7b,
			0xf083ffff, 0x3c24f63d, 0x45afd916, 0xf5f66d03, 0xe2053019, 0x2fddccd1, 0x188e24be, 0x8271ac95,
			0x373c46ee, 0x4b0b394e, 0x9dddc55d, 0x4f14b3c6, 0x40cf49c7, 0x3012f8b6, 0x613aedaf, 0xde21e5ec,
			0x548ad13e, 0x711fd144, 0x6f3294a4, 0x9e757cf4, 0x3e06a46d, 0x5547bc40, 0x65e04d2c, 0xa7eaa7ca,
			0xab0294a4, 0xe7a1ce5a, 0x8495582e, 0x217418fb, 0x09e7b454, 0x38b4c2bf, 0xbeb165f7, 0x8855058b,
			0x21b1df0d, 0xf2bd0a09, 0xad59b04b, 0x9f8ed2c6, 0x717a4771, 0x547cc7d0, 0x790d68d2, 0x73975da4,
			0x1473f01a, 0x4985fbb3, 0xf8863d46, 0xac98b258, 0x1fd7935c, 0xc9cb401f, 0x4a6a51d8, 0xed391d93,
			0xe7ec2e24, 0xc2dd4286, 0xbef3bfc1, 0x9f273c11, 0x45f185b8, 0x6499fd45, 0x15530cc5, 0xe89baf98,
			0x1da7175e, 0x43d4c935, 0x5731e931, 0x0b2ddd49, 0x424e95c5, 0xdd157a39, 0x6a183717, 0x19cb1a47,
			0x3c7e014c, 0x7d528d10, 0xc5c876e3, 0xd489abf3, 0xcc88b259, 0x4b660be7, 0x2e2172b5, 0x39efca07,
			0x5d711b52, 0x33c407ee, 0x0375ac96, 0x4364a186, 0x3e157d1e, 0x090ed6b4, 0x4a34d7cf, 0xb5492d03,
			0xece329eb, 0x7088cf9e, 0x10d1358f, 0x1645c489, 0x4463891d, 0xe491dfa1, 0x4ac837ba, 0xf0fa724d,
			0xc8949c48, 0xc92cffe3, 0xe68cf0b3, 0x452886c2, 0x5bb1efbd, 0x75308468, 0xdfcc65a4, 0xe4f15341,
			0x34e4081b, 0xdb4e15cd, 0x568e167b, 0x7b9f4349, 0x791929ed, 0x5dc3a10b, 0x47435ce7, 0x912d6500,
			0x9abe2e22, 0xe773d151, 0x7977c9bd, 0xfcec497f, 0xcf05fc98, 0xca49944c, 0xcb22c1a1, 0x2dfb85c3,
			0xd14ada2c, 0x17f703cf, 0x22092987, 0x42e2b6f2, 0x63f5751e, 0x59703525, 0xad2fa73f, 0x7fac057e,
			0x32dcd890, 0x69250870, 0xd292cf0a, 0x554d693d, 0x3d650f47, 0xd57ee686, 0x242aeae3, 0x94d72ade,
			0x9378ee69, 0x2ae072ca, 0x6845009b, 0xb043beda, 0xdf610389, 0xf4b2feda, 0x3d7da909, 0xc4742587,
			0x65fe14df, 0x09eb1463, 0x1e6fb3bc, 0x931df0fc, 0x75dbe957, 0x907d563b, 0x428bf434, 0x516f14ed,
			0x8fb21634, 0xc4a35b57, 0x769c35f2, 0x3efefaf2, 0x62cceac6, 0x9fe1afe7, 0xff149e9e, 0x2d4e07f7,
			0x96bf0a43, 0xd38369c7, 0xa8b9a874, 0xffff5a44, 0xcc5acb2e, 0xab2d9f17, 0x3fb15860, 0x27251b19,
			0x1a569b8a, 0x00115934, 0xeade7c01, 0x204ec666, 0xb3aad112, 0x6e68c364, 0xe4583bbd, 0x0f980f81,
			0x9f9d4791, 0x50a4ccd8, 0x0c634f0b, 0x55764008, 0xc900b669, 0x7f493c28, 0xc48945af, 0x3b2f2544,
			0xeb62bbf3, 0x39c9ec3d, 0xb5aae480, 0xb4fc3dac, 0xcab3388f, 0xe4a7fe76, 0x6ed64452, 0x52e5beea,
			0x1ab50a66, 0xff1326ca, 0x199177d0, 0x6f11c02a, 0xf1443cc8, 0x162a10f7, 0x6d8bdf06, 0x9ccb6c76,
			0x27a03452, 0x1fa0e9ec, 0x1c13c320, 0x506598d3, 0x49ceca13, 0x5554e776, 0x8a5a35ce, 0x0cbd5e9e,
			0x503df3c3, 0xf9dfcfde, 0xc18a5840, 0xacb6e537, 0x724fea97, 0xf04d813e, 0xf20f69aa, 0x5a3dd01b,
			0xcb4bb0ce, 0x81b6cb06, 0xec5c99f3, 0x513c4ffd, 0xbceb498c, 0x8a012cce, 0x32389d56, 0x87ec11d6,
			0xc23d7deb, 0xeb72f7bc, 0x828a41dd, 0x945c1159, 0xebc0e69e, 0x773c3c37, 0x167db2b8, 0x21d098dd,
			0xcf8c058d, 0xe3d856ed, 0x337c786a, 0x232285ab, 0x0c1763e6, 0x5e4e280d, 0xec462130, 0xabeb8b81,
			0xce83d3a1, 0xb5fd97be, 0xf7ffb09f, 0x2549bd5f, 0x9c2411a1, 0xf18e4ebe, 0x222c2c28, 0x4559a9fd,
			0xf0cc490c, 0x4fde10e5, 0xb3cd928e, 0xba499f32, 0xd4c89204, 0x1497a7d0, 0x2c73effc, 0x56bcec9e,
			0x77e9000b, 0xc470cef9, 0x4d88d9d3, 0xa022ce1d, 0x61f419fb, 0xee5d3dd4, 0x4c043713, 0xf9d5c6c8,
			0xbdd151d8, 0x6d141893, 0xab3d4969, 0x505e1947, 0xa801c30e, 0x0b074d9b, 0x0b502c62, 0xe5ccf8d7,
			0x1316d311, 0x6eed7575, 0xabbbd4b0, 0x2b647c6a, 0xae9015bf, 0xd2c00608, 0xbea193e0, 0xc12a13ec,
			0xab58b123, 0x156bb7cd, 0x5b2530f0, 0xb5201e46, 0x0d402ee5, 0xeecfa7ca, 0x44df579a, 0xc83f2bd4,
			0x5473c38a, 0x5f59df74, 0x9872f16d, 0x95c4620d, 0xe457ca7f, 0x21a93dd4, 0x07a9af67, 0x01d26baf,
			0x4102f408, 0xa6f67adf, 0x59fede58, 0xae21a939, 0x93a8ba6a, 0x7d010f9c, 0xf0173c7b, 0x072eaa05,
			0x988a6605, 0xc18b87ec, 0xfc49bb08, 0x9c1acf69, 0xf4ac7401, 0x9a371558, 0x1f3ad7ed, 0x619214f4,
			0x9bcf2b61, 0x914a5980, 0xe55dd3d3, 0xe844c886, 0x3e86b84a, 0x69f67421, 0x31844c96, 0xf1b78c17,
			0xaca77bee, 0x678cbce8, 0xbeeb496d, 0xe06d1203, 0xa3280bde, 0x22a1981a, 0xde52430e, 0x8ba8a687,
			0x6f1a2e4f, 0x95cab9dd, 0x672aa240, 0xf6289a35, 0xf0701d3f, 0x4754c3ae, 0xa63ce8bc, 0x5e7e3ef7,
			0x27b5bd13, 0xa155cdeb, 0x91a140ba, 0xa22be305, 0x91db1e65, 0x67c78be5, 0x76e5b11d, 0x65402a3d,
			0xd360a9ae, 0xfaeadeda, 0x0d33dbf6, 0x4140d390, 0x2f7a5e31, 0x0c186630, 0x56937182, 0x7c2a015f,
			0xdb99cac3, 0xdb66dcce, 0x25c802ee, 0xc243d93d, 0x7d6b55c8, 0x95304fa0, 0x795de356, 0x92bc2393,
			0x1d99153c, 0x1b5ebd13, 0x52da8c88, 0xcb94a944, 0xf97ea4ac, 0x7000d878, 0x2836ce6f, 0x682a489d,
			0xea1e99a5, 0x939a8330, 0xc942f024, 0xe3d6b9fd, 0x699286d5, 0xeac00389, 0x843988a8, 0xb48da3b5,
			0xfe4427bc, 0xaf4a0f74, 0xb74007b0, 0x1e6f9097, 0xd8e58d72, 0xd2067c0b, 0x758b1a29, 0x11bed7d4,
			0x8cd51ea1, 0x2260f293, 0x9f424dd7, 0x25b4e071, 0x6e22f34a, 0xc1c2b1c3, 0x7dbba4c5, 0xf5a63fe2,
			0x5f664acb, 0xe4066112, 0x79acb106, 0x5e61037b, 0x101a0677, 0x376b11ed, 0x7029100c, 0x21ca02a9,
			0xf5a6cf7f, 0x775beaef, 0xc547308e, 0x0d517f10, 0x0934a677, 0x7ed4cef1, 0xe04d73d2, 0xa41a8766,
			0x6cd79959, 0xfc14c948, 0x50c3ecc5, 0x07b8e9e2, 0xda763aa2, 0xadf5cbef, 0x7c2c6e4b, 0x6a747677,
			0xfd0bd2af, 0xd79aeb4a, 0xef4d38da, 0x372d2180, 0x27621747, 0x27bebf11, 0x69551ed8, 0x05b13724,
			0xeacd8686, 0x257f7b86, 0x9a822dce, 0x4079e079, 0x46ed457d, 0xcbc30335, 0x261a57b9, 0xceb22cd1,
			0xd2ef1559, 0x84ac101a, 0xc2767607, 0xde3dcc8c, 0xf379e359, 0xaaf0d87d, 0x11bcc8a7, 0x48e81cc0,
			0x1d7c7776, 0xf7484c19, 0xa492118f, 0x3c96254d, 0xaa4e9440, 0x8838ea3b, 0xab34c134, 0x00000000,
		},
		{
			0x45858fb6, 0x8ae61aac, 0x57637af3, 0xd4831a2d, 0xad05ef51, 0x7eb42390, 0xf1ea215a, 0xa314fc9c,
			0xefe3cb2f, 0x56589c22, 0x223589a8, 0x945a69ab, 0x5516eeef, 0x7655971e, 0x1fe34c6b, 0xf3638a4b,
			0xb86f5501, 0x4fdcf656, 0xc555e48d, 0xed04213b, 0xbc8a799c, 0xb3ae9487, 0xd922ea87, 0x56fe0a48,
			0xee0e59dc, 0xcd01edc0, 0xa5c0dca2, 0xbc43a835, 0xdf1f5b9e, 0xa3cdf3ff, 0x1091e68c, 0x4eb7a851,
			0x48f768f9, 0x5c407ffe, 0x9ad3c511, 0x596ffb71, 0x7d3638a5, 0x60a76151, 0xb8ffc3a9, 0x649ec42f,
			0x707c7249, 0x092aef1a, 0x2b5b503f, 0xe640d681, 0xb3349d3a, 0xbe6340ee, 0x00a50af0, 0xb53aae10,
			0xcd76e9b7, 0x683d37ca, 0xaa79adf3, 0x8bc44a8e, 0x26e274d3, 0x67b2bf76, 0xc879be8c, 0x555f5f9d,
			0xb3876372, 0x7399e96a, 0xe5f73165, 0xfed8d50e, 0x3afee405, 0xdffd71c2, 0x534679e3, 0x9bac80a8,
			0x2fe8a6b0, 0x7fde554c, 0x46fd1f2a, 0x77fa294e, 0xef6e553b, 0x8c96a6bc, 0xc093a958, 0x98666138,
			0x0d992c58, 0xcc405f97, 0x27d499ae, 0x9b571413, 0xf88bd1b5, 0xa12f1765, 0xfa8cce8c, 0x00596f92,
			0x0e1a6f09, 0x340f5fb4, 0x00706c44, 0xb6999074, 0xf35be077, 0x2c19756f, 0xda101598, 0xcd2258fe,
			0xdca58791, 0xcae7ec83, 0x49c37fa5, 0xc7e1ba58, 0xffab301e, 0x42e251e7, 0xf77da736, 0x0b4febad,
			0x8dae0152, 0x74705240, 0x0fab73ce, 0x69ac62d8, 0x730785db, 0x2f9ec50f, 0x5054f059, 0x3955571e,
			0x24c45ca9, 0x1ffca776, 0xd2d60288, 0x194dc309, 0x644953d0, 0xb0d820e9, 0x6b4c5412, 0xac4c3b4b,
			0x524d8e75, 0x8d50abde, 0x92f55456, 0x937148bf, 0xbbed030c, 0x9375e6a2, 0xbf07c595, 0xfbc69ebe,
			0x9a66c2d4, 0x06fd3376, 0x9a5790db, 0x30fa2118, 0xd141d25d, 0xe9832f4a, 0xde3e9467, 0x2e21ae59,
			0x5185a9f0, 0xd1b6adbe, 0xaac16d1c, 0x6b9819a2, 0xd46eca87, 0x966d0ce8, 0xf85c6ad1, 0xee2ba5d3,
			0xf06087a4, 0x2ac050d0, 0x9f5aac3e, 0x322bc809, 0xdc9b4396, 0xbd14e1ea, 0xf5ddf3eb, 0x1bd3354d,
			0x457287b1, 0x99a8d426, 0x1352c6f2, 0x42ce654a, 0x978f812b, 0x70c518b5, 0x3732b2ab, 0xadf24578,
			0xa0d1a46b, 0xf6ccfe22, 0x9ec24073, 0xe5f292fd, 0x0c066822, 0x414a54ea, 0x36cc54d4, 0xe6ad6e0c,
			0x59c2a3be, 0x86faf802, 0xef87c667, 0x7df205b7, 0x58162c42, 0x58a163ed, 0x2ee1f6ec, 0x082cbb58,
			0xd72d7496, 0xac448358, 0x5eeb3a32, 0xe70cc649, 0xe8724d84, 0x07b4d26d, 0x5ac8b176, 0x03011512,
			0xb29a3ccc, 0x1c484fcb, 0x8a7fdd0c, 0xb18f6f89, 0x0d2dcc0c, 0xec2d6515, 0xe956bdc3, 0xe1a19047,
			0x9217423b, 0xee130172, 0xe93fb11c, 0xd2e8f179, 0x3f576dca, 0x05d02b05, 0xc6cf7035, 0xf6a225dd,
			0xab93b317, 0xfbfa7bd8, 0xcdb70a2d, 0x8d72500d, 0xb5a59d96, 0xe47c7ef0, 0xb0504a1b, 0xbe2b3878,
			0x5acee6a4, 0x64552aa8, 0x12928f40, 0xe5305f5d, 0x27d4466e, 0x2cab3940, 0x35f4fdf5, 0x978f855a,
			0x988f9430, 0x94746b1f, 0xd0c7a067, 0x14cd1b7e, 0xdd640689, 0x02247e1b, 0x09a9894f, 0x177aa7fe,
			0xa06ca2de, 0x893aae06, 0x54cfa541, 0x6a20e21f, 0xa28bbe07, 0xe9251cff, 0xefeca47e, 0x4bd1446d,
			0xbcedbb64, 0x7591a263, 0x52b8588f, 0x1b9c7dd8, 0x5513e495, 0xe9bddf62, 0xaf92f7f5, 0x7395f605,
			0x4e3f4d3a, 0xce356c73, 0xbefdd6b0, 0xec755370, 0x970f3e19, 0x652dfbb2, 0xc3648677, 0x172b2832,
			0xe8a60f9b, 0x77f1a3a0, 0x3a031f94, 0x1705fad5, 0x0e6c3654, 0x4bd44334, 0x7acd76de, 0x410423aa,
			0x909907af, 0x98944706, 0x6af075ba, 0xbf968146, 0x248741cc, 0xe576c24a, 0x5db759a2, 0x29d4c74d,
			0x24b4b507, 0x72903578, 0xf746bd3b, 0x90e5d3bb, 0x78b9c6d7, 0x628e073d, 0xb9f6cdce, 0x17b8eb9b,
			0x4d4f2292, 0x81052ac1, 0x170d32ce, 0x9546c2f9, 0x6c9eaf35, 0xb95105f0, 0x51955191, 0xb96b78af,
			0x27da108e, 0xad6b104b, 0x2d33196d, 0x69b9b4e0, 0x4c42cc09, 0xdc45e0e5, 0xf82e3762, 0x77a8c43e,
			0x14e3de73, 0xb084ff05, 0xdd6a82a6, 0x09de9ce8, 0x3d2a0632, 0xc7cfb605, 0x6035431a, 0x9bdad15b,
			0x1351ea1d, 0x61e7c858, 0xb4d12d38, 0xeb25f89f, 0x3e39f606, 0x00b0c677, 0x7cd1f987, 0x512abcc6,
			0x3b2ec634, 0xcd2e63f9, 0xed4075cb, 0x0ad88912, 0xbeb13f3b, 0x49297b39, 0x8d51c81b, 0x864ab18a,
			0x75f45fd8, 0x803d52d1, 0x03d04b53, 0xc73ff0bd, 0xcb5693c7, 0x9e1b1f3b, 0xe4abaf4e, 0x97250d57,
			0x86b4b3a5, 0x44d0a890, 0x9911a2c6, 0x84e5d56e, 0x2514f7cd, 0x9f0d2e88, 0x4549c451, 0xf378e7ca,
			0x0357767c, 0x3d022aaf, 0xa10cf7cb, 0xc3fed4ab, 0x69a34c5f, 0xea8bc0b1, 0x6467bde2, 0x46e6bb78,
			0xb4c4f937, 0x8efd0efa, 0x2ceef62d, 0x9cf531f4, 0x0c6cf1a7, 0x4c58b6ea, 0x52d4b688, 0x65e8f620,
			0x191f9452, 0xf7ea5a34, 0x33cdc839, 0xd5f5377f, 0x37384f7a, 0xa151702f, 0xb819cc5b, 0xcd730c62,
			0xc365a9a7, 0x965e072f, 0x2540aab3, 0xd0fb84ed, 0x36a8a769, 0x557d43f7, 0x23d8c6ef, 0xfb51e582,
			0xd667dfea, 0xa4d5aa08, 0xb0615647, 0x4981ef13, 0xda6f5cba, 0x8a794456, 0x75f89f2d, 0x987753de,
			0xbe0b214b, 0x9c14b0ae, 0xb85a898e, 0x7a8a7852, 0xb21788b5, 0x601323f1, 0x2ca1fa5b, 0x217de627,
			0x6ca92ac6, 0xd6c0e328, 0xc75feecb, 0x5763d080, 0xeb7f1268, 0x0bf9fd70, 0x7403722a, 0x14bb1e2e,
			0xbaad9bea, 0x3a9f3718, 0xf645c1b2, 0xf5aaf67b, 0x52c80059, 0x70e1b661, 0xec8e474d, 0x536f357b,
			0xf974faba, 0x76eb115d, 0x9b261ffa, 0x232e1b17, 0x7b5b57fe, 0xe29ab372, 0x74de4968, 0x2b7bd641,
			0xd38ff88d, 0x15e04e07, 0xf8a90cac, 0xe0be2b96, 0xa75bd3ce, 0x879bf2fe, 0x8a414814, 0x9e3564a9,
			0xdc5c9074, 0xda7f8376, 0xb33d4403, 0x8ee2f1e7, 0xcb9d082a, 0x89f6341d, 0xa0a9a712, 0x49d0ea6e,
			0xc1ce9f30, 0x4cac60ff, 0xd81596d5, 0x3dc0b10f, 0x785f0ccd, 0x75fa5be6, 0x1e6d0a92, 0x4c632951,
			0xbf86e365, 0x169fd1aa, 0xa23ce9fa, 0x2ab401b6, 0xe07b0431, 0xece45afe, 0xd6b80f9c, 0x06060062,
			0xb869ef3d, 0x0f5f9ed7, 0x014897f9, 0x1da3d523, 0xf7df8e85, 0x0fcc654d, 0x4039bda5, 0xa3c663d9,
			0x9e888ba1, 0xb6a899ab, 0x678bd072, 0xb98a7ec8, 0x916a9c35, 0xf8cc77bc, 0xb2814b64, 0x46d6927a,
			0x8eb7d317, 0x87f50a0c, 0x928dbf53, 0xea0111bd, 0x6c70316a, 0x26b5f6ad, 0x4f5d2910, 0xd46bcfa7,
			0x0028b2f5, 0xa0b4b375, 0x9499cbc8, 0x36cc4536, 0xc6a6467e, 0x38ddf005, 0xa1664db4, 0x6a01cf5b,
			0x93214b83, 0x17b253f0, 0x3693acbd, 0xdbaa2ac5, 0x90a351fe, 0x1f85ad84, 0x4101e213, 0xedf13fa9,
			0xf66dcf51, 0x8db91994, 0x527c4b6e, 0x94a2add7, 0x04005c48, 0xed602332, 0x35fafc6c, 0x4b61ff6d,
			0x2ca08866, 0xe664d00e, 0x64b030da, 0x239a79a1, 0x0dcc870f, 0x70c7840e, 0x53670e50, 0x1f923949,
			0x68299768, 0x392cb2ff, 0x50ad1acf, 0x4e5e82f1, 0x0b39711d, 0x7d5db97e, 0x264e85ef, 0x2d9cfb1a,
			0x94e70568, 0xafd1cc2f, 0x2ba8cd70, 0x213cba76, 0xd0dc54c9, 0x3248bb14, 0x5b8a6e9e, 0x248b9962,
			0x7240bf46, 0xd1c8e844, 0x9440748e, 0x5ca118ff, 0x2b516237, 0x55ff702f, 0xc3378d21, 0xaab20b7a,
			0xc1f9e0a5, 0x84a36be2, 0x74eb501d, 0xf5ebf11a, 0xfaaf7641, 0x9e562226, 0x60b5127f, 0xa44338fe,
			0xbedc7d03, 0x35166b7e, 0x681edb83, 0x58925951, 0x76c52fb5, 0xb8e71a33, 0x5cfcaf90, 0x589c4deb,
			0xfdc5a1bd, 0xafc1dd40, 0x36c675b1, 0xd22d5ab1, 0x30e066a7, 0x3d62357f, 0x4d4ecc66, 0x29e39acf,
			0xf3ab4cc8, 0xe37c0b96, 0x61e2c4fe, 0xaa791050, 0xff19c163, 0x4e8ec714, 0x939d0f42, 0xd2487cc0,
			0x09b76e34, 0x839338ce, 0x0354a226, 0x35c39c31, 0xfd376da4, 0xc3bb77b1, 0x369828a5, 0xa1479ad4,
			0x416c7199, 0xe6848024, 0x9bcae73b, 0x0d84ad30, 0x61ad961c, 0xcbf82ede, 0xbe7714d2, 0x69fd14c6,
			0x8750006d, 0x4531ce0c, 0x54ab743e, 0x74a3274f, 0x6e8e39c2, 0x537246c3, 0x694087e3, 0x7dabed3f,
			0x3c5835f9, 0x37e68551, 0x239b6843, 0x6d56498e, 0x7b3f7aca, 0xe5044b23, 0x96c3ae24, 0x5cf6f426,
			0x09107ed0, 0xebb4cbd8, 0xafb42f85, 0xb1515d8a, 0xbcd0a536, 0x5190f2a1, 0x4bb19a48, 0x5589c627,
			0xd3086a6d, 0xfb78e90a, 0xc4d57530, 0xe9379321, 0xc22cc655, 0x0d5b207e, 0x7b9d2d9b, 0x8ee3c69f,
			0x2598f0dc, 0x1ac8bfe6, 0x65fe8e3c, 0xa8a6087a, 0xf0f97ae4, 0x53a0649a, 0x0c87ec9a, 0x00f8bd66,
			0x3aaf896c, 0x6d00387d, 0x7c404074, 0x2454205b, 0x16c2722e, 0xb1c31534, 0x7af00e2d, 0x2141b8d1,
			0x10484f2a, 0x2588759f, 0xc6383ca8, 0x70eea975, 0xb18d5d68, 0x6a7f7117, 0xb20b44f6, 0x54f97f7d,
			0xc35acee0, 0xda02a5fa, 0x6ee62e06, 0xfb37efa8, 0x5bab7beb, 0x0a57da87, 0x4047c195, 0xa7dfb945,
			0xd10a5ab1, 0xa4116819, 0x069ad7c7, 0x027a808e, 0x36684c38, 0x97e97f35, 0x67c3f487, 0x00000001,
		},
		{
			0xeb828349, 0x780c40f6, 0xfafd093e, 0x56ee9112, 0xfb8986d0, 0x0ad04b4b, 0x0d5a5cea, 0x7d2a760f,
			0xae93bfa6, 0xda215f81, 0x3d9d5b05, 0xd14f54f2, 0x750515e1, 0x8b5ca79f, 0x5100f928, 0x52023081,
			0xff4388ad, 0x70fd0a54, 0xd5a5f719, 0x25e272d1, 0x56d0ed66, 0x1d146a25, 0xfc78ac2e, 0x11c0da83,
			0xd299c028, 0x744a050f, 0x62223a16, 0x31704e55, 0x48b3b445, 0xda75e006, 0x5c812a6f, 0x4c6de145,
			0x6ab55f9e, 0xeb98b2eb, 0x05bf3ca3, 0x8cf08ed4, 0xdf0bfdfd, 0xe9daed65, 0x172fa1c2, 0x73050bdf,
			0x6c13a9b4, 0xb8eab9d2, 0x2545e82f, 0x6ccb9d0a, 0x45a256e6, 0xfd3b5c9d, 0xf6f7791a, 0xb5dbf485,
			0xe889c242, 0xb0eea027, 0x3e49a69c, 0xc812070b, 0xb8ac3d4f, 0x0799834d, 0x974f1bbd, 0xc5665b76,
			0x47b9a22c, 0x51991f1a, 0xafa20702, 0x602c8d4b, 0xdeab4517, 0xfdacb5aa, 0x5e97974e, 0x6ea0f8e9,
			0x55208668, 0xcc56cf45, 0x831ac262, 0xf0b12b97, 0xabf5d3b2, 0x7cb7056e, 0xfae6813d, 0x383f5cd6,
			0xddc6cb66, 0xa266b1ce, 0xec6c55a8, 0x10876c4f, 0xe654824a, 0x3765f0db, 0x590c5bb8, 0xf23225cd,
			0x4a8aedcc, 0x38a6fefb, 0xb308d23d, 0xcb489b8a, 0xd58b8078, 0x66142937, 0xfeeb18c1, 0x99baf2ed,
			0x160bea27, 0x4a528250, 0x80ee630c, 0x58efbed4, 0x8d5d8cef, 0x46d9c320, 0x00a005f1, 0xb8e9c639,
			0x3890b3c0, 0xfa0816e0, 0xf9cb0751, 0xa8ce188e, 0x224fefc9, 0x6bcf0b76, 0x821d1ebc, 0x5d4ad0b2,
			0xae9c556e, 0x67d831fd, 0x8bce539e, 0x18ab21f3, 0x8cdf0bbe, 0x0b398748, 0x4d95c6ca, 0x49df94ac,
			0x77d34532, 0xece09dca, 0xd6409f1e, 0xd09a9878, 0x6cd06b59, 0x5eee7c5a, 0x4a3e7e1a, 0x355c895a,
			0x57131e87, 0xc5c44149, 0x9347a618, 0x16541c6e, 0x739814b4, 0x30c7c031, 0x43264b10, 0x805408a8,
			0xb03002c2, 0x38d23067, 0xce812be8, 0x80ae6317, 0x0dccee83, 0xbd218f23, 0x62d18814, 0x7ddd438a,
			0x9b4c81b3, 0x83adf577, 0xcd61ab97, 0xee636c09, 0x7dd9bf59, 0x15e8fc7e, 0xe91bbfc3, 0x4fb3267f,
			0xe9f15b7b, 0x171c87bd, 0x5564f722, 0x30fa85e5, 0x4c08cbc1, 0xe9344eed, 0xa4c565ce, 0x215a897b,
			0x9650a262, 0x6f81f1ae, 0x78cc7ee5, 0x671223d2, 0x11344978, 0xa45a19ee, 0x0f1e4903, 0x9c636124,
			0xfccdb026, 0xf10ddaea, 0x6cefe767, 0xf0bdbf5f, 0x1d8d59e0, 0xba91288c, 0x9ea5a76f, 0xaa82c461,
			0x80990735, 0x0f47568d, 0xbd93925e, 0xe77e6720, 0x0534a050, 0x36850f1a, 0xaa7454dc, 0x4d9d2d32,
			0x0980781e, 0x7d749aca, 0xa9150fa1, 0x716176c7, 0x5c998d45, 0x8b39d2d2, 0x87f2041c, 0xcb10813b,
			0x8c6e6f9f, 0xeb80c246, 0x21918f6d, 0x2eab7c78, 0xb6f8613a, 0x2e984ae8, 0x4a0fbd07, 0xd4970e38,
			0xc35c9a2e, 0xa7202c77, 0xe834d66d, 0xc61509bf, 0x0072b93d, 0x19b36b15, 0xf9b82d67, 0xb08fdc91,
			0xe2e5bfeb, 0xcc3d7594, 0x725d9b05, 0x35ffc408, 0x69c97eea, 0x6635d251, 0x758408c4, 0xf0a22fbe,
			0x86c70edd, 0x761ca63d, 0x33576a15, 0xb4da0244, 0xdfccc053, 0x4d48fb27, 0xbc3c3545, 0xd4d995b8,
			0xe0a7a92b, 0xd127dbe5, 0x0b53b27a, 0x100ad583, 0xba32c2b0, 0x3fb4688d, 0xe483885f, 0x5683f55f,
			0xf8a1155a, 0xe662bae4, 0x4f4e158c, 0xbca6c412, 0x34ba174d, 0x56c81727, 0xc54dcd7a, 0x8a19dcd5,
			0x868e50eb, 0xd7518675, 0x30b14818, 0x6e0a5a56, 0xc5387455, 0x694cd9ee, 0x30394e9a, 0x5d106cf8,
			0x0765dab2, 0xe330b06d, 0x2f512053, 0x1d6697ff, 0x929d9d9f, 0x2172182a, 0xbf53a076, 0x29182c97,
			0x6615bb8c, 0x11098338, 0xeec370b5, 0x32e1c5cf, 0xde97bdb0, 0xc139908a, 0x5fddfafb, 0x6a8c8a21,
			0x4f5bee8b, 0x240654c4, 0x6e4f58de, 0x19e3ed9c, 0x6b6e0d43, 0x08b5f15e, 0xf6e82410, 0xff5841db,
			0xdd38e969, 0x48cc55dc, 0xd36f4f16, 0x8164d173, 0xce0f797e, 0x96a782b1, 0x13629958, 0x9661a87e,
			0x3ae5fc8c, 0x03ed470a, 0xb90d3a18, 0xce529f0b, 0x76c2323b, 0xde5710da, 0xbd7b9d0d, 0xce364e1d,
			0x0c697a64, 0x606d8ad7, 0x6895f965, 0x485a0350, 0x005e24f1, 0x2e10cfbc, 0xf616bbac, 0xa5aeea91,
			0xc402ed92, 0xb630f085, 0xab205ac2, 0x2af48902, 0x2b42bd41, 0x9a3ae383, 0x16332c6d, 0x33953fa6,
			0x16ce69b7, 0x790c206f, 0xbdeaeeaf, 0x5151cf88, 0xfb2baaad, 0xf3469dca, 0x2f941826, 0x6847ddb2,
			0x59534a91, 0x8b94aa57, 0x360fe23c, 0x0c38262f, 0x23aa1b47, 0x7591c373, 0xdcd85aa4, 0x4b56ee51,
			0x2c4fc565, 0x901735be, 0x813eb1c2, 0xeae85fd8, 0x2c80e219, 0x0a127937, 0x89257144, 0x052e6f24,
			0x07acd1c0, 0xee7834eb, 0x5a966024, 0x9fcd664e, 0xcf1cb338, 0xe1605172, 0xbcfdea82, 0x9ca44f8c,
			0x3d500093, 0xb4e38c24, 0x46803d72, 0xf2f8a4a9, 0x9fad1341, 0x632107c7, 0x8d777d28, 0x8697257a,
			0x08c5c95f, 0xab0c095e, 0x68f65b91, 0x446210bd, 0x72278965, 0x7b343bfe, 0xcc102875, 0x6b6aca9f,
			0xc86f04e0, 0xd4e0cc13, 0x18fb6c3f, 0x911297b7, 0x1440d83e, 0xdc2ee4fb, 0xed6c9896, 0x7a1b33cb,
			0x45400d76, 0xf6988926, 0x64f338e2, 0x3ce2507a, 0x4f962c5c, 0x03bb6f76, 0x37d91068, 0xbea2f83a,
			0x64eea873, 0x20bcb5c5, 0x8f9a697b, 0xc2647519, 0x94ce1dd6, 0x650d0811, 0x654cfe24, 0x56fd828c,
			0x614a06e7, 0x615d1f05, 0xeebcdaea, 0xc0bfe06d, 0xe148c747, 0xf734c7a4, 0x6c940c75, 0xf01f6a5d,
			0x39f51ab9, 0xce87918e, 0x3029253c, 0x26dda36f, 0x549de71c, 0xc61da0cf, 0x1b279483, 0xb5c80477,
			0xe29cd378, 0xeec35b96, 0x3a433597, 0x1c877a6e, 0xc0d95792, 0x5c6d964f, 0x832149f3, 0xc48695ba,
			0x9b675ac1, 0xb9369b81, 0x2a196f98, 0x3242c2fa, 0x4db4c5d6, 0x9dc43619, 0xcec361f8, 0x55994e3e,
			0x6e832354, 0xa808e521, 0xe95840d7, 0x5283fb64, 0x03dc6bd5, 0xb527ce1b, 0x4b9e37ca, 0x315dbec5,
			0xfd6c916d, 0x072f2e15, 0x569bec5a, 0x6f859b5a, 0xdc3045e6, 0x5f658f89, 0x7b1afa3d, 0x81130470,
			0x3aff9f4d, 0x55704119, 0xfce67278, 0x6f42cda4, 0xe33ed17e, 0xf2016b3f, 0xad135bb7, 0x41452da3,
			0x044b3eb6, 0xa1734d1b, 0xaee11382, 0x44f6cf01, 0x03592c88, 0xdb5d7558, 0x29900fd2, 0x28dd402e,
			0x9f67d662, 0xd63e8a42, 0x6dac7819, 0xfb7cfbea, 0x7312165f, 0x4a7e1c1a, 0xa1ecfb14, 0xae626fbf,
			0xc963ceea, 0x54d0efad, 0x508821c5, 0xc1c6e687, 0x1205390a, 0x82b1a2a6, 0xaa66bbff, 0xf4ffec9c,
			0xba1e3cb9, 0x7371f863, 0x66558888, 0xa48ecbbc, 0x697c628d, 0x6af50c96, 0x24c850d0, 0xf107689f,
			0xbe7114dd, 0xa0ec0840, 0x3f5c658f, 0x8539d810, 0xe066ed8c, 0x7879e153, 0x6acda45d, 0xafe03119,
			0xb6f9c824, 0xd1f387b5, 0x3d2fbe43, 0x98b212ad, 0xa501ba3b, 0x6ebd77cd, 0x7e0eb94d, 0xf0daf21d,
			0xc781aca7, 0xd393a660, 0xe1937fc3, 0xe5cb2807, 0x82b62e3e, 0x6d9936b5, 0xcef8a279, 0xbb664ab7,
			0x7f9d902e, 0x326b6342, 0xa6f09d66, 0xfc690606, 0x728971d7, 0x0f191025, 0x7ac68316, 0x166cc39c,
			0x9e3e6b33, 0x690db1f6, 0xc22a0fb6, 0xae005170, 0x49d09056, 0xdcb87069, 0xbe58bb30, 0xe60dc8e9,
			0x27fc9ab4, 0x8c1a81ca, 0x61c8e206, 0x2c1127a2, 0x007bb9d9, 0xc1548022, 0xb07a2300, 0xe39dec44,
			0x85bf1555, 0x2aeab996, 0xf838184c, 0x48bf0b3a, 0x5493b802, 0x7815954b, 0xc9ce57af, 0x9776cd89,
			0x26e53a49, 0xa5827f5c, 0x9f6c0dd7, 0x5a6fb75a, 0xbc67d19a, 0x2ef53e1e, 0xb3b348ca, 0x6aab7425,
			0x6cc0acac, 0xc03c0e47, 0x95d3a630, 0x0f3108f0, 0x8b92c4f1, 0x55483350, 0x2badf7d9, 0xa1ad6442,
			0x168be50c, 0x4d6d5a72, 0x6ebd71ab, 0x45b51470, 0xf8c057ed, 0xc465e966, 0x1044e57d, 0x3ddab004,
			0xb873ecf0, 0xe8cdaa17, 0x5c0a275b, 0x8bc79b73, 0xc289c637, 0xe747e88b, 0x859b3ad0, 0x3fcb1f15,
			0xbb410815, 0x40bcafdc, 0x8a43f78c, 0xb9902c7a, 0x5cb7531f, 0xd9ab0e0d, 0x25204c0b, 0x11b7cfa6,
			0xb25d0f73, 0x462f5267, 0x76c20d2a, 0x03bee902, 0xd0d7ca0c, 0x5dd46d0a, 0x64e20e42, 0xfe66b5aa,
			0x6b07d79b, 0xfa23db69, 0x8a221e24, 0xabd0fb8c, 0xf29680fb, 0x7869c159, 0xfa9dfe89, 0x42573ad1,
			0xce07f0c0, 0x5f3b59e2, 0x7c219865, 0xe83ce262, 0x78fc65bb, 0xfc43880d, 0xe8abbd41, 0x30d91271,
			0x5e9386f6, 0xe6d906c1, 0x6cc9a476, 0xec62a114, 0x416f56d3, 0x5a41cf01, 0x405a1910, 0x991575e3,
			0x9a4c9daf, 0xfb2774f7, 0x1b263bb2, 0x412549e9, 0xa54c8a74, 0x3041284a, 0x2dd2d229, 0xdff5ab6e,
			0xe353201e, 0x71805f4d, 0x703bbde8, 0xf98ffcd8, 0x26e55687, 0x2c1e38b8, 0xf7ed3781, 0x242bfbbc,
			0x6a62f79b, 0x618dd074, 0xe8001dd1, 0x226d23c6, 0x4722b8dd, 0x10cb481e, 0x5b9aeb2b, 0x596cc922,
			0x0dbf9bdd, 0x42ef9b6e, 0x2f00b247, 0xba40985e, 0x6c6e0e71, 0x36b50c5d, 0x43bb2b7c, 0xd2b23cda,
			0x7d8ae91e, 0x28f55874, 0x7d7ab9e8, 0x5d875c39, 0x2ef32c17, 0x8b450e61, 0xed07e867, 0x00000000,
		},
		{
			0x36ceeee3, 0xd7a71768, 0x3b890993, 0x69bd217d, 0x2c4fc16b, 0xbb4da4a8, 0xc29bfe4f, 0x01d4e013,
			0xefeeda2d, 0x6a29d80a, 0x5cb3510b, 0x5df98ba4, 0x9846adad, 0x49330272, 0xf6fdfcf4, 0x7c2ab715,
			0x9b7404f2, 0xddc38437, 0x7ef7cd20, 0xe16e77ea, 0xcf699050, 0x54e429b7, 0x26377b6d, 0x43c762cd,
			0x0662c939, 0x436896d5, 0x4ba4767a, 0x0d2832ef, 0x3486669f, 0xcd711213, 0xae9cb8b6, 0x061b4c4d,
			0xeb0fe82f, 0xf4a6a6d5, 0xc49fc2d2, 0x4e117859, 0xfb593ddd, 0x4a3a0199, 0xc0301194, 0x0f82f32a,
			0x2c1e1487, 0x305f5bb7, 0xefe59a0c, 0xc1f21376, 0x7b2482e5, 0x179459e8, 0xb12fb709, 0xd557c680,
			0xb76bdfb6, 0x2022165a, 0x422e55f3, 0x6ddbe711, 0xd1d9f3cb, 0xf1affafd, 0x7eb1c67e, 0x92fcc5db,
			0x06161dc1, 0x68e33215, 0xcb4d78c6, 0x1481fd27, 0x1ff224d8, 0x0b3ba207, 0x62724783, 0xb50bb3df,
			0xcee8a4f2, 0xa9c19f71, 0xbbe7d172, 0xaac0db68, 0x37ad1d1a, 0x77af4dd9, 0xd3e9fbae, 0x440dae91,
			0x62c9d535, 0x2e7d4ac0, 0x38b6dbc1, 0x146ecd60, 0x3527c23d, 0x0a17d6ef, 0x6981b52d, 0x22e26439,
			0x5a5a9e57, 0x90aea7c2, 0xade79f20, 0x00c6abf7, 0x79da4cd5, 0x52761f6d, 0x9d5a7ca6, 0x505ace2d,
			0x298c0420, 0x45c2d995, 0xabb49891, 0x0b015d40, 0xcb1ad33f, 0x0b8abc49, 0x60b3a16a, 0x16cb8f35,
			0x7aaf1d13, 0xd08e0511, 0x7749e039, 0xdb8b0b5d, 0x8846f521, 0xc522c1dc, 0xba3109d9, 0x3c1c28f6,
			0x3fdc09bb, 0x07742292, 0x3e4404e1, 0x0538e89b, 0x13a96c92, 0xa25462fc, 0x601c4810, 0x8ab147d7,
			0xca78f66c, 0xe191b9ce, 0xd694cceb, 0x7cd36c9c, 0xea9cea05, 0xf677cc95, 0x1c7c861c, 0x6b576ad9,
			0x70019332, 0xa9654df9, 0x8c866c68, 0x69718ee3, 0x9dd07d5d, 0x75bf3383, 0x6e49690c, 0x7a989b69,
			0x8e7ecbeb, 0x5aed6431, 0x45e18129, 0xd3e64e13, 0xf367bb3e, 0x0525e628, 0x39768e06, 0xa5d97597,
			0x65ea751a, 0x1ece188d, 0xe49f81ac, 0xce894682, 0x72270982, 0x9e97ccb7, 0x4951be96, 0x053a8d7d,
			0xc7e02722, 0x1dcca493, 0x727cb642, 0x7b2fd597, 0x553303c7, 0xe49db3ad, 0xfd93548e, 0x61388104,
			0x68190966, 0xae99101d, 0x86014f6a, 0xa4e87d08, 0x337ac910, 0x8b37fb2e, 0x5b9f48fc, 0x95fee9f6,
			0x27d2aa79, 0xd4bc8aa5, 0x359f5429, 0x8a8f2dcc, 0x03b78937, 0xe0102002, 0xa381f608, 0x70906284,
			0x5a61187e, 0x8482b6c9, 0x412d4abe, 0x6bc8ddd6, 0x70bc3743, 0x9f8116e3, 0x16f4babb, 0xf9e6ca4b,
			0x1c426d00, 0xdab3d64b, 0xe977801e, 0xf14b5b53, 0xd167e298, 0x876bccd9, 0xc03bc21a, 0xe92fb13b,
			0x015d606d, 0x44ff805c, 0x2258188a, 0xc167110b, 0x7a7c68dd, 0x9bb415af, 0x9b4454a2, 0x57bdf223,
			0x70b68ee2, 0x99197b72, 0xee5d2c83, 0xef63c6db, 0x4e340310, 0xcd504561, 0x2aaa55a8, 0x650cb8ec,
			0xe80f7847, 0xf01e9c66, 0xd601bca5, 0xfbc9ff0e, 0xece604d9, 0x56bebdee, 0x58c81d40, 0x69540b70,
			0x8b7ccd92, 0xe63daf9a, 0xe8b5fd49, 0xd4e3aa2f, 0x3c69a87d, 0xeaf3c538, 0xcbf6f634, 0xea5654d1,
			0xd8baa68d, 0xc4df2bc9, 0x8d92427e, 0x391d4a26, 0xc9f64516, 0x16a0e5cb, 0x8a334216, 0x043b05e7,
			0x30f9e988, 0x9d5979c7, 0x68fbb7b8, 0x5cb33464, 0x8502ea7e, 0xc3e18927, 0x00f45fe5, 0xae5979a6,
			0xcad9a048, 0xdaee6411, 0xe7e15cb1, 0x3e847fbd, 0x0c9e2e18, 0x06052427, 0x545bbac9, 0xb7fb3324,
			0x09aeba05, 0x32bc0801, 0x74620c9c, 0xf956e098, 0xb48a01ae, 0x15d55022, 0x10c00c8a, 0xc795d0b8,
			0x4d625daf, 0x16251e27, 0xa60ac061, 0x378015fb, 0x96bf1668, 0x5240e94c, 0x5c2c5a24, 0x0705579b,
			0xc0405542, 0x43d742df, 0xcf4884e0, 0xd8d7b878, 0x09579389, 0x94204d3b, 0x3bc5cd2a, 0x61e5a0d8,
			0xab9eecd4, 0x27f84bab, 0x6d877dda, 0xdb327f97, 0xb8174a64, 0x81022cb3, 0x2039f76f, 0x28045191,
			0x6025c164, 0x7f5e4ed2, 0xcbd1cb7d, 0xc2e86c63, 0x6f3bee56, 0x3ca23d95, 0xfdc5789e, 0x87384923,
			0x600a72a3, 0xbb18938f, 0x3655081f, 0xb67ded11, 0x2b46efed, 0x534c2df6, 0xa247e3ce, 0x2d7e3415,
			0x7e50b313, 0xf651761e, 0x39383979, 0x0dae554d, 0x7ab48c62, 0x8adff1a0, 0x17118bde, 0xfcbc98c1,
			0xac8b88a4, 0x6eb794ea, 0x9592cf5b, 0x7746d498, 0x6da84df0, 0x166601fa, 0xd3bef33b, 0x5ac0e677,
			0xdcb43712, 0x150616c9, 0x393ec80f, 0xd055a3fc, 0xabd8670e, 0xe864537e, 0x9dfd8ddd, 0x249cc9cc,
			0x067dea67, 0xa12bc186, 0x1456602b, 0xc2b8cafb, 0x9fc1ce45, 0x1d69a5fe, 0x0b468bf4, 0x75137f4a,
			0x6517fc34, 0x65d63e70, 0x4d332a3b, 0xb8a2d79d, 0x194a5672, 0x8d0efcd5, 0x5c9a144b, 0xc7d805f8,
			0x57b8693d, 0x51c6e8cb, 0x15929aec, 0x32840071, 0x46331906, 0x5fb33e8f, 0x17264cd7, 0x30d24c25,
			0x407086f1, 0xa3b9cbd7, 0x1a53d290, 0x5e2a39f2, 0xce007bf4, 0xd4ee0f01, 0xd8319d55, 0x5c2b49b8,
			0xbc88c035, 0x9ede0331, 0xa92cab08, 0xde82b5e0, 0x51a652e9, 0xf2971a92, 0xabd5759e, 0x0e7dfbf9,
			0x791fe781, 0x133d6875, 0x65517f8c, 0x3ce4ba24, 0xe690e6d1, 0xe9d49833, 0xd1bf0cb6, 0x1378bef4,
			0x1150e6fd, 0x59a6bf02, 0xffdc3752, 0x2ab84ec2, 0xcfa33296, 0xb1619c2e, 0x8da2ee64, 0xce73699c,
			0x22597c30, 0x0a00c5bc, 0x48cbaaf9, 0x16543820, 0xc55af2c2, 0x8a12136f, 0x46b54103, 0xfeeeba40,
			0xaa7fefab, 0x904dff79, 0xa5296007, 0xc346cbe1, 0x94e3d80e, 0x8b628b30, 0xf4a34e8d, 0xe30d3758,
			0xe3211040, 0x44243a82, 0x41134e22, 0x93b5eb19, 0x58180a38, 0xa63b5b9d, 0x4f468753, 0xd93256f5,
			0x5c5377e9, 0x40477fa6, 0x71528812, 0x9c55f8d1, 0x7285f045, 0x570c6088, 0x05f6b705, 0x22949d86,
			0x2938c5f8, 0xa5b4121b, 0xbe1e518a, 0x3e043c19, 0x2d5e4294, 0xe65a8141, 0x9191b28f, 0x528eec2c,
			0x7a5feec6, 0x2d30c2ba, 0x68c437d1, 0x4b7f3b9d, 0x9a8c2948, 0xb0746db3, 0x429f8603, 0x255ac521,
			0x335a765d, 0x5ec9234e, 0x2118f986, 0x38bce6c7, 0x6b7e62b4, 0x45661947, 0x4bfc51cf, 0xdcfa4a8a,
			0x5dc2f2a9, 0x32159148, 0xd64048c4, 0x7cf2e090, 0x91d19720, 0xf932bec8, 0x621d902f, 0x02a07f9f,
			0x851113b4, 0x3160d9cb, 0x585d2f71, 0x1aafc55f, 0xf4775e06, 0x9e87f053, 0xa0e88828, 0x0695cb62,
			0xdb4c23c1, 0x211dd849, 0x6a5c9c1e, 0xa52d7b40, 0x8f7ff95e, 0xa3ab8c13, 0xf6f54563, 0x73156a8b,
			0xde3e79da, 0x21041a8b, 0x724176dd, 0x73433d84, 0xe3e3aac1, 0x9bb48d18, 0xca7614ad, 0x866f7039,
			0x48df600b, 0x21b56374, 0xbb0c9606, 0x0232bc89, 0x00475fc8, 0x84b9c09d, 0xbd6a2c9b, 0x0b6dc73e,
			0x868b65d0, 0x0e062ac5, 0xfa55ea6f, 0xa2d0ca45, 0xbb59069f, 0x9d775aa5, 0xd42fda02, 0x3483e5a0,
			0x76ddfd5c, 0x763ba7ab, 0x321e323a, 0x0bf65828, 0xc23d8f8a, 0xadba60cb, 0xbec07c23, 0xbe762c3b,
			0x48a6b76e, 0x46fda49e, 0x1b6b0729, 0x71cd6b4b, 0xe95c36cb, 0x9272e089, 0xb25d5300, 0x7e39fdc9,
			0xdf316848, 0x2e14f310, 0x840d8d23, 0x53ffcc7e, 0x6f9eb484, 0x8f1b88ab, 0x5430dded, 0xedea10e7,
			0x26ab68ff, 0xb5f07194, 0x372cd8f6, 0xc3a08e6a, 0xf532b315, 0xb0f9b455, 0x7e8c93a1, 0xd3094267,
			0x3993e7fc, 0xefcdf204, 0x85010f2d, 0x9390d7a8, 0x4b6c1ffc, 0x89eb6ecf, 0xbed597a1, 0x5543066c,
			0x6b3390e8, 0xde9e18f2, 0x71965407, 0x157e42a7, 0xf328addd, 0xe75132ca, 0x05c89102, 0xcf80f374,
			0x872796f8, 0xbe8ca20b, 0x9ab0ad4b, 0xaf52707f, 0x2199b2e8, 0xfe886ac8, 0x5ffb9b6a, 0x4c6d482c,
			0xacb903ea, 0x47b86ee4, 0xcba74f3a, 0xad0baac9, 0x0a936ee7, 0x69376fff, 0x474d1826, 0xb269b709,
			0x45379fab, 0xfe55eef9, 0xdcb30cb9, 0x690a8644, 0x8ffcf0ae, 0xe5efd4d5, 0xea0bc000, 0x6707e9b1,
			0x58b98d16, 0x774c8ae9, 0x9f01471f, 0x7193b911, 0xa536ba64, 0x827dc9a7, 0x3027c687, 0xfeaddaaf,
			0x1a71bc02, 0x9580100c, 0xbe415679, 0xb7b92186, 0x8f8b7146, 0xc5af74ce, 0xec3d8182, 0x109588a2,
			0xb4ca64a8, 0x928b7111, 0x4708d352, 0x67e284bc, 0x328b04cd, 0xca3e8320, 0x1e25ee18, 0xeb1e76ca,
			0x11b6875c, 0x3054a7ab, 0x374b9204, 0xa2da19e4, 0x364a0012, 0xf4d9d3f7, 0x37fb79f2, 0x7a274d16,
			0x037999f1, 0xb3da48d9, 0x92c28d0d, 0xafd5157e, 0x8e863326, 0x70cf3b06, 0x29bb8b48, 0x63b644dc,
			0xbc7742b8, 0x67e35411, 0x00bc4f6a, 0x9549afd2, 0x32a2fece, 0x3b783c23, 0x6960cad6, 0x55980278,
			0x4b2d3a11, 0xc1a35eb7, 0x606677a3, 0x9b6c053d, 0x8585a80e, 0x8b369e2e, 0x2406e627, 0xf22c2bad,
			0x205c2fd7, 0x282b1453, 0x5c0b3bb8, 0x84b4f231, 0x931519e0, 0x7a4e2cde, 0xb38a2962, 0xffde87e3,
			0x172c95a6, 0xed1673ad, 0x2f5211f1, 0xcac3eece, 0x44280f15, 0xcdd8ce06, 0x4847f0cd, 0x05ff3da6,
			0x006ef676, 0x8117f003, 0xa286dda6, 0x3bded00a, 0x7a7ad94c, 0x811eb3fa, 0xbfb6b6d5, 0x00000001,
		},
		{
			0x6c633369, 0xeccc131f, 0x79628d7a, 0x195c0a89, 0x363be1c7, 0x84924c4c, 0x4ae02dc2, 0x3d859398,
			0xa3a0b61a, 0xb43009c5, 0xe5140580, 0x801f7a4d, 0x2e4a1a33, 0xcac81dce, 0x7394f622, 0x0985396c,
			0x5afda666, 0x079ff647, 0x402c5cb2, 0xee3ac234, 0xe9d19c28, 0xe01d95f1, 0xa30135b4, 0x428a9f8d,
			0x905b99ed, 0x1da6b6a7, 0x904245f9, 0xb6d1ae06, 0x1e7e45a7, 0x6078c2f3, 0x5c20a299, 0x34e7ba68,
			0x4da6db88, 0x687af2de, 0x666f4fe7, 0x6badeda8, 0x6fb712ef, 0x620306ec, 0xe269796b, 0x1be82a60,
			0xd9b56038, 0xdc327a10, 0x94473927, 0xb5cf6498, 0xb0b6ed71, 0x46df71df, 0x2f957bd6, 0xdf6276ce,
			0xb9759290, 0x4ac40122, 0x8927cc63, 0x446a176a, 0xe3d62c49, 0xcee68675, 0x204614ec, 0x19f73db9,
			0x1dc4c011, 0x59ebc3cf, 0x03af0398, 0x13d5bd3e, 0xffc617cc, 0x3c99aec3, 0x64ce39fb, 0xed72956d,
			0xd7152ce9, 0xaf7beba8, 0xeee6d15b, 0x76ff8e7e, 0xb021fcc7, 0x84008185, 0x91c52706, 0x94fb13f0,
			0x10a76a0b, 0xfc30c45a, 0x944089a0, 0x7d1fe248, 0x59036bed, 0x9bb2eafc, 0x64b6200a, 0x4d22814b,
			0x5fe0ec56, 0xf952fcfc, 0xdab37677, 0xc4944e78, 0x377a9570, 0x89f33409, 0x6a1672e1, 0xc321111a,
			0x5d8d1ca4, 0x2e83a3b1, 0xf0a6afc8, 0x85606fdd, 0x714b49a5, 0x154574cd, 0x6ef17e75, 0xb4a1db84,
			0x57b0a1ab, 0x97a83edb, 0xe93ccea4, 0xe0eba10f, 0xfcf47ce5, 0x79c8ffdc, 0x7b58f54d, 0x569401b4,
			0xd45d39ae, 0xf1af1208, 0x9b1f1a60, 0x25119e9d, 0x1f50a500, 0x112da3d9, 0x44a23830, 0x2e72b3f5,
			0xc0e2b744, 0x29e5499d, 0xeffd3ef4, 0x57b33386, 0x34de4c73, 0xee66c2fd, 0x973127b9, 0x4e696739,
			0xf9a826e7, 0xa2609655, 0x6681ff99, 0xc06dddb5, 0x779330f2, 0xf6c90600, 0x04e943f3, 0xf78e1348,
			0x149a0ebf, 0xf46280db, 0xb379aaaa, 0xd9b5fccc, 0xe35fd572, 0x93ba38ff, 0xcbc88de8, 0xcbd4aeb8,
			0x88c45ebd, 0x4da3e366, 0xb35f3a2b, 0xf2609eee, 0x01def668, 0xb757bbd1, 0x10358aa2, 0x8379dd70,
			0x0ee53239, 0xdb989cf7, 0xb97912a7, 0x6b89cb16, 0xf1776edc, 0xcd984b5c, 0xb98f1d84, 0xa3825915,
			0x97eff841, 0xc17f91d8, 0x66f38725, 0x47c82511, 0x2bbf8a88, 0x54085f8d, 0x2ed39214, 0xa2ab85ff,
			0xaf7604e3, 0x021dc9e4, 0xdb2a6c67, 0xae90cfad, 0x7f03f154, 0x90cb07cf, 0x624bd0d8, 0x210502af,
			0x8ed5ed6f, 0xc124b861, 0xcc34907e, 0x6298988d, 0x8f1de11a, 0xecdf7ca7, 0x72cab703, 0xaab4eeb2,
			0x9cafae83, 0x5fb2f7ad, 0x03f5192e, 0xf1250619, 0xbf1ee0ff, 0x77f0234a, 0x9e4a94b6, 0xf6cf256e,
			0xb7fc226c, 0x9bffde28, 0x4592f95e, 0x4de2bbe5, 0xed06e7e7, 0x36dac57c, 0xb17b00ca, 0x63ddcd49,
			0x9686835f, 0x3f2ed03e, 0x7895c462, 0xd077180b, 0x31e3b704, 0x22d6cdac, 0x646db31c, 0x43dfed1b,
			0x8037935a, 0xb0aa214f, 0x56c78545, 0x8f4e344e, 0xe3ad82e5, 0xdf859e20, 0xab9f5d18, 0x4770e625,
			0x388d5ca7, 0x07c3a6cb, 0x99428256, 0x0959e078, 0x533ffe1d, 0xd7ab79ba, 0x6d5e768c, 0xcd101dc7,
			0xfa86944f, 0xc6809f39, 0x904ab224, 0x0ccfcd15, 0xa3a72f6d, 0x36e3b46a, 0xcfd57ac4, 0x833229a6,
			0xfaf49e77, 0xd401b197, 0x3f164855, 0xb2b8ff3a, 0x01bb1ed8, 0x14af72ce, 0x706fba52, 0xc22264ac,
			0x7631be1d, 0x5855182e, 0xa7dd77af, 0x20a0a8c5, 0x1b942e24, 0x981adf9f, 0xd16d8ae1, 0xe0167576,
			0x70b57334, 0x33e4131a, 0xdb5e1793, 0xac6dcee2, 0xbc28432e, 0x5928e870, 0x83866243, 0x22d24c59,
			0x6c554a84, 0xbb0d07fc, 0x7feec73f, 0xca78fdd2, 0xa6db97bd, 0xb0743bcd, 0xb98f1ca6, 0x76e4d5c7,
			0x3e2bae63, 0xde235aed, 0xb19cc908, 0xcc3aa17b, 0xc2b83f6a, 0x90becd3b, 0xf91b29f8, 0xe17f5d57,
			0x257c27b9, 0x163b5931, 0x29e9b2ca, 0x3e905173, 0x33d61c60, 0xfd561266, 0x43f3247b, 0xcbee6589,
			0x3a49de6a, 0x5c3775ea, 0x4c590b60, 0x64390280, 0xaf9c91c6, 0x77d10a13, 0x369d978c, 0x7c7a42bc,
			0x17653f55, 0x0bac2019, 0x7dd83f25, 0x8c96a8bb, 0xe603c48c, 0x81932156, 0x25919ffa, 0x99a00ce3,
			0x48931a51, 0x50337059, 0x00b7d2d4, 0xa5b606f8, 0x3c436312, 0x830531e0, 0x2391b1af, 0x3019769e,
			0x53da3c36, 0xe6958fd4, 0xdfe701c9, 0x95a94550, 0xc2c23b93, 0x285cf2d9, 0x944a8d5d, 0xa93a2e4a,
			0x32aaa04a, 0xdcc5ecad, 0x84ab4353, 0xb82df679, 0x8aa194a5, 0x4685a1e7, 0xa123400c, 0xefc309d8,
			0x03be68e0, 0x96e3a142, 0x06fca2e2, 0x087a74f6, 0x71dd4a71, 0x732b0708, 0x96eb77a2, 0x630dd14b,
			0x50af57b1, 0x87be55bd, 0x0275404f, 0x7e044898, 0x5b2748b1, 0xecc4ccdf, 0xa78e357e, 0x169b1559,
			0x648c9451, 0x0f9d6532, 0x92000a64, 0x30134ef2, 0x4d2e0238, 0x8622ec19, 0x5c70bb30, 0x534bacd9,
			0xafbe4631, 0x44196263, 0x1cad481d, 0xc4d8e89b, 0xc547460b, 0x6729ecce, 0xd153529e, 0xcb8fe16b,
			0x4e3daca6, 0x2cb5dd0a, 0x21313a07, 0xaab06463, 0x54d1ac7a, 0x13ca2bd9, 0x1cfa7743, 0x7c06e8b5,
			0x722318d8, 0x0187f7b3, 0x8ae25eea, 0x4e4356d0, 0x3c1610c3, 0xdb7c259f, 0xbfb57468, 0x24ec75b0,
			0xdd3155c6, 0x90cd1b52, 0x04076805, 0x5bc93d61, 0xbcfef99f, 0x3d455a74, 0xb9f4953c, 0xf83c51f3,
			0xe12f19af, 0x20617c5c, 0x8ab1deb1, 0x4928b91f, 0x3786561f, 0x68e43609, 0x926173bd, 0xa461ada3,
			0x44266747, 0xd66ea76b, 0xf161cc11, 0xacebc05e, 0xa99f7f58, 0x779882d9, 0xe45b3e4e, 0x6286ba3c,
			0xbffa7cfc, 0x2b8d2d33, 0xfb8eaeba, 0xc56a48cf, 0x6334ae9d, 0x237cd8cf, 0x5706138b, 0x52547da3,
			0xafe2826b, 0xa346a825, 0xf017d139, 0x9754700b, 0x605c990a, 0x3ee21b5a, 0x0aaa0254, 0x7dba6a45,
			0x932b9c8d, 0xba8c0c8d, 0xc3b56252, 0x9612bf88, 0xdf387d7b, 0xb1fa2e43, 0x61445768, 0x408bbb89,
			0xe5db23fb, 0x406a1031, 0xe173aa3f, 0x0fdf71b4, 0xca9a3886, 0xd3949d61, 0x3610d93c, 0x4385875d,
			0x80d52e2d, 0x06add0bc, 0x2c920306, 0x2a7773c3, 0xafcbd413, 0x6e0b9b0e, 0x89bf78c3, 0x242ed49d,
			0x2492b76a, 0x4685303a, 0xc306702a, 0x6df5dd26, 0xecc3fa90, 0xaf6d967e, 0x9ff99708, 0xeb8c6920,
			0x31f279e6, 0xd4e3d317, 0x010248ba, 0x35518a1d, 0x96893cb0, 0xcfd959ae, 0x995afd9f, 0xd5a45781,
			0xb7e6350a, 0xbc31c27a, 0xb76812eb, 0xa3aa1589, 0xe037cfcd, 0x88fd8fb8, 0x613d6464, 0x2effde26,
			0x496bf7e3, 0x30586850, 0xd1cf7823, 0xf0606167, 0xce955024, 0xc6f5d520, 0xa6e7d025, 0xa3441237,
			0xf31a0912, 0xda1eb3d3, 0x53252e2c, 0xc4b9a53a, 0xb833d926, 0x3d982b31, 0x849ac06d, 0xda620dfb,
			0x6489f37c, 0x20133f02, 0xdda8b655, 0xe135459c, 0xd7a2e78a, 0x63f8d062, 0x038d28b4, 0x0c82a39a,
			0x507a0fc6, 0xaaa4c6f6, 0x6e6b9032, 0x0bc44da8, 0x3a79a1eb, 0x3263ab69, 0x3d786df8, 0xe24f06f8,
			0x005618af, 0x363e01b7, 0x2ebb777d, 0xd41cb9c5, 0x57839cfd, 0x55cfc2d2, 0x00a24afe, 0x150ab688,
			0xdb8e309a, 0x12dbc440, 0xf77cdbe6, 0x3edec8a2, 0x77d12773, 0xa40a615a, 0x01f930af, 0x3fb8cf97,
			0x396df4e0, 0x84784d5c, 0x38f3066d, 0x092c2a88, 0x129c669c, 0x7f93887e, 0xbc6d7c7b, 0x22ce6689,
			0x69567bde, 0x11bb8ca3, 0xfae5b4c0, 0x7e1c072d, 0x69a69cf6, 0xb73b8917, 0xcf1476e8, 0x236b19bd,
			0x32233dea, 0xaeda64b5, 0x2ce9c3dc, 0xc3ff95ae, 0xef1d9df0, 0x93bfc3bc, 0x4084b1db, 0x94018fc0,
			0x2f9b7f67, 0x3bf38bc2, 0xafa10708, 0x2e85c3e5, 0xc07b1c0a, 0x65a0f18c, 0x6e8f0776, 0x2abee101,
			0xc154ede2, 0xbe0ef49d, 0x09078ebd, 0xd20ac513, 0xe55b20ca, 0x92279a6d, 0xea53364b, 0xf57cc9d0,
			0xfa14cdef, 0x5fb9df48, 0xc4782238, 0x7e56f9ba, 0x8d303051, 0x299b6b8b, 0xc0c18b2c, 0x8af636a8,
			0x74399992, 0x0303a4e8, 0xae672d31, 0x77521be8, 0xd280993e, 0x5aee0a25, 0x9abb3749, 0x946784fc,
			0x603caeac, 0x0e32c559, 0x58a2cb6e, 0x9eaa332a, 0xd23625f7, 0x11674c55, 0xd8a03e32, 0xa97ac25e,
			0x1432d006, 0x8d182c93, 0xcdbe697b, 0xb0de7c6d, 0x347fc4f2, 0xdeca1160, 0xd9525794, 0xf4877ad8,
			0x46e61da9, 0xd5885c74, 0x7d00983f, 0x74c8528f, 0x6d1f1ff6, 0x90458588, 0xc75838ad, 0x5aef406c,
			0xc103786d, 0x36a6e545, 0x550710fc, 0xb3f5c33f, 0xa448dcbc, 0x9bc22f4e, 0xd8f04ac2, 0xdcc6519c,
			0xd7993655, 0x951206d1, 0xe737fb7f, 0xa83b78de, 0xf1c670af, 0x73af7599, 0x9b054e33, 0x2a16cc2c,
			0xe150ee59, 0xe866c95b, 0x6152c8f1, 0x61e92f61, 0xf913dcc7, 0xd67ccda4, 0x605b4aca, 0x97381946,
			0x0cc4a9be, 0x6f777909, 0x84fbf8a5, 0x8ad089c4, 0x35204fbd, 0x849f3782, 0xcce14d0a, 0xec8ddf4d,
			0xaebfd253, 0x11285f71, 0x0f8e41d9, 0xeca4808a, 0xca5543d4, 0x48920082, 0xbc6a62ad, 0x9c87e9cb,
			0x32e28356, 0x618e3b38, 0xf1286a59, 0xbf6f6d4f, 0xdaf09b95, 0x14f489d7, 0x25d094de, 0x00000000,
		},
		{
			0xf2033afb, 0x3997a8ec, 0x41bb8417, 0xa211ba01, 0xb3637a89, 0x3313a08b, 0xac495a5d, 0xfcc7ae43,
			0x0401af27, 0x38731acc, 0xb1b68fc2, 0x2d1e8824, 0x9c574d5d, 0x93c196be, 0x6f33bc18, 0x9621e6b5,
			0x891924bf, 0xc1f5aca6, 0x83457e56, 0x440310f9, 0x33b8108b, 0x6718a2bd, 0x8c1373ca, 0x3f2655ed,
			0x0ff83263, 0x61148222, 0x28130437, 0xfe894084, 0xa0804cad, 0x36e489b4, 0x5882fb42, 0x48814b70,
			0x1d8ed1ef, 0x553386ea, 0xa03289e2, 0x1f7ab783, 0x1ec199cc, 0x7f7ddff3, 0xb8c11e8c, 0x6b09d968,
			0xf2263cad, 0x489496a9, 0x414ea2db, 0x88bccec5, 0xc36cebc4, 0x8bd0562e, 0x83829159, 0x2832fbf1,
			0x7d8b350d, 0x9b82da72, 0xaafb4a04, 0x933c8c78, 0x40c79197, 0x91a2b128, 0x2d62bedf, 0xefc2134f,
			0xe1525e57, 0xaf6be2a8, 0x5a26092c, 0x2e86442b, 0x543c39b5, 0xacfa6812, 0x1b7104b9, 0xce7820ed,
			0xe9338da6, 0xb11027c1, 0x07385bc7, 0xc49052aa, 0x3bca6eb7, 0xc93bb4b7, 0x9f4c1b90, 0x06af11fa,
			0x62c053f2, 0x37dcecf5, 0xc69933bf, 0x697783f8, 0x4fc25a6f, 0x75e70bee, 0xbd603be3, 0x630b8188,
			0xaa737990, 0xf0c568f7, 0x285c0c73, 0x14ba9dd9, 0x104f5900, 0x604acf1a, 0x9d0bc2d8, 0x669d35ba,
			0x66cdf3ef, 0xb47df4a4, 0x905ddff8, 0xe470d9f8, 0xeaa1b77a, 0x49440c79, 0xbd31e596, 0x858e3a64,
			0x01efcc79, 0xf7068564, 0x63c101c3, 0x693ead7d, 0x3cb92730, 0x71a70a98, 0x533afbe4, 0xefdffa28,
			0xfb5b88a3, 0x153fd45c, 0x131bfe0b, 0xf7e14cba, 0xbae0812b, 0x2f495ac8, 0x7fd41c33, 0x699ccc48,
			0xb21638ab, 0xa6b4e461, 0x70041638, 0xea500baf, 0x5d9086cc, 0xbd634dfa, 0xb900dcda, 0x3209ad71,
			0xc51ff05c, 0xf0b66800, 0xd252ab8c, 0x29de4ad7, 0xc6f13034, 0x758f7a2d, 0x85629ace, 0x9cf4bdfa,
			0x6150ea85, 0x3383abfd, 0xa6f975d4, 0x9f476c4d, 0x5caf4745, 0x03bdcfff, 0x32a79500, 0x50b00eab,
			0xc7fb6e2a, 0x345fd408, 0x08526932, 0xe1dfe0cb, 0x2616ae21, 0x2317e251, 0x56cb4561, 0xffa4a166,
			0xc5e080a1, 0x7178b0d6, 0x4c832f6f, 0x64630e46, 0xcaf2bd6f, 0xc9812c07, 0xef727bed, 0x9f8f40bf,
			0x358924aa, 0x4a0a613a, 0x854cd067, 0xb2760241, 0x196fd88e, 0xafa48e00, 0x64128b1e, 0xb905e4cd,
			0x9be16a1e, 0xd1205501, 0x7ba35ae2, 0x02f8c698, 0x92b757c2, 0x6b38b5f9, 0x7bd19789, 0x30860a87,
			0xe3931b3f, 0x381b9a89, 0xce2b42a7, 0x28f82cdf, 0xaac209a5, 0x2fea4562, 0xe7258a8c, 0x54babc24,
			0x63b5682a, 0xef6c9995, 0xd63e9498, 0x937fe56d, 0x3994c3a4, 0xd79dbc49, 0x701f36af, 0xa2acd767,
			0xf7f17cde, 0x2764746d, 0xfa8e3d0c, 0x4bc3a51b, 0x2659fd5b, 0x2e1076d5, 0x9b111801, 0xe3a5a646,
			0xd60c7999, 0x8e2fb441, 0xdeaf57ce, 0x9a3f06d6, 0x7e13ee1a, 0x673e9f44, 0xcc11a89a, 0x0abcbc60,
			0x61512baf, 0x38261f34, 0xa1259952, 0x0a9bda0d, 0x45337639, 0x4737a608, 0xaa8546f7, 0x391eeae8,
			0xfe8bf1b5, 0x27850921, 0x8c96c106, 0x1c2b1be6, 0x86a29bda, 0xc01948c7, 0xee63a6c3, 0x7d1fe095,
			0x4db5f1df, 0x28cfde45, 0xd7ea8e7a, 0xa64b20c1, 0x13fe53f5, 0x72c47978, 0xc11c69f2, 0x58407986,
			0xf52cbc25, 0xfba1c6ca, 0xbf638656, 0x3cdc1556, 0xdbcfb92c, 0xca0db12c, 0x65ece115, 0x7e273a8f,
			0xd395fec4, 0xd3120246, 0x4e890a01, 0x9656cd8d, 0x3ba6c056, 0xf1482624, 0xe9d66bc1, 0x91384406,
			0x44e151dc, 0x5a332d95, 0xf09f44b6, 0x8c0b4afe, 0xd3965854, 0x058c2711, 0xdb572a5c, 0x3f527750,
			0x4eb5868e, 0x7bec4c88, 0x601e7faf, 0x7f8ec90c, 0x70a80ba7, 0xa88e4028, 0x11deade4, 0x78613097,
			0x8780e4b8, 0x7678f98c, 0x0e1cd5aa, 0x144daa3b, 0xf27342eb, 0xffe6e8f6, 0x525a2016, 0xb26a0cfe,
			0x673437cd, 0x36ca9ab7, 0x8efb3905, 0xb6208fd3, 0x851dd93d, 0x997038e7, 0x27db186b, 0x0bd6c9f7,
			0xbe9ee496, 0x202d98a9, 0xc8af77bc, 0xe7a3f788, 0x6c1eb153, 0x1d8e79f0, 0x4bae58a0, 0xa52f4ed8,
			0xc79d94a0, 0xdf5549fa, 0x493b9838, 0xab6ed6cf, 0xa4dc3f39, 0xc955ea0a, 0xeadb234b, 0x0084f184,
			0x2555e5bd, 0x9e3a2b61, 0x4a72968e, 0xc74f02b0, 0xda2723df, 0x727f5e4f, 0xbd640223, 0x12d1c9e1,
			0xab8c22ff, 0x0c23afa8, 0xbcf9e54f, 0xba50634d, 0xfb2a3bc6, 0x22e475bf, 0xbfb3d67d, 0x2d9a6759,
			0xf0055869, 0x90c3d297, 0x1061c332, 0x9b0ebcfe, 0xaddf712b, 0x04450431, 0x39ff3d79, 0x4f42a516,
			0xb62e3498, 0xb3d6dd88, 0xec4bda80, 0xa609c214, 0x540b9589, 0x0b212394, 0xb5717784, 0xd4fe67df,
			0x0fcb7935, 0xd9982f11, 0x08a927b6, 0x7cd87521, 0x8d63690e, 0xe1003722, 0xd113f62f, 0x769d0057,
			0xb4546575, 0x09a9da96, 0xa2c0e99e, 0x2b677f5d, 0x49bdb350, 0x6b09558e, 0x64e0597f, 0xb81ea825,
			0xb99dbb85, 0xab1c9f27, 0x8abbf490, 0x12ce3f15, 0xf11f84de, 0x8fbfebf5, 0xeb390673, 0x58d95cb4,
			0x4a89bd11, 0x1edad22a, 0x54a3b769, 0xbca130bb, 0xb9a429b2, 0x52678eec, 0xf3df677d, 0xfc1c3a38,
			0x797f924f, 0x0a986953, 0x80153a15, 0x329b996f, 0x0a634ae3, 0x800f34d9, 0x44d0a0b3, 0x63dc8935,
			0x42a2a68b, 0x685ab31e, 0x0a612732, 0xd506e36a, 0x34c5c62c, 0x5892b7d1, 0x57ea11a6, 0xeabeb332,
			0xc29c7804, 0x9e04f85a, 0xb17e7cac, 0xd5ae9e29, 0xaa384e47, 0x97b3fb21, 0xf5511641, 0x2980d9f7,
			0xb02bbc00, 0xdc375bae, 0x9933e67e, 0xc24796e2, 0x80566f01, 0xa8534e71, 0xe97dd5b9, 0xbc3de96d,
			0x3e3adb5f, 0xcd0f2f10, 0x624355e4, 0x38efdc68, 0x595dbfdc, 0x001278d3, 0xb0b529d6, 0x26baa11e,
			0x4ab70ba1, 0x70966939, 0x2d0eeb63, 0xd01f4f1f, 0x46ba4350, 0xa46113c1, 0x52870f27, 0x6309c5e6,
			0x528b7c04, 0x6e978722, 0xa32de5a8, 0xce2026ab, 0xfb65383b, 0xab68a9b1, 0x3096f458, 0x657ad297,
			0x04a1183b, 0x3171caa3, 0x896863e9, 0x55a70824, 0xd1ef5efb, 0xd91c9de5, 0x2bdc3620, 0x11e990c6,
			0x667803dd, 0xabbf2311, 0xfdbb16a8, 0x5cc30a54, 0x06c9c376, 0x09ff3e31, 0xf639ccf0, 0x5f48384f,
			0x14ea30f7, 0xdc33727a, 0xcacbf222, 0x37867170, 0x56ebf588, 0xb687f1f3, 0xd62db8fe, 0x71956507,
			0x3aa80a40, 0xba77821a, 0xc17f3420, 0x40304e3e, 0x73d895a5, 0x64bf8d86, 0x92d6f865, 0xee5106ea,
			0xf0f94b89, 0x7fa24e0c, 0xa84aa077, 0x30179428, 0x93b47639, 0xa174d670, 0xe9219ff9, 0x89010345,
			0xa3fc41e6, 0xdc5a4463, 0x17cd8a0b, 0xa7057b7f, 0xdb686f11, 0xf31e8234, 0x4a74f0c9, 0xb26744cd,
			0xe1febad6, 0xa9eb121d, 0x444f973e, 0x0b240505, 0xac07fa0b, 0x5874541b, 0x9dac282a, 0x9e782a62,
			0x3dbf3561, 0xb0e64c39, 0x06cde950, 0x24e0c5db, 0xf460c481, 0x03a490b1, 0x1200de67, 0xf2b43447,
			0x8bb00898, 0xe5dc8b93, 0xa8c3fc44, 0xa2d714a0, 0x2b4f2e48, 0xad8a205a, 0x29e66e3b, 0x4b3d4c30,
			0xbc85fa61, 0x9dccf368, 0x92e5b4b3, 0x4871009a, 0x956a4b20, 0x12a92286, 0xce4d6414, 0x05c68f6d,
			0x6c7eb9b2, 0x8eb1dfe3, 0xb4334201, 0x0bcc9759, 0x7ed1df88, 0xfe83fe69, 0x3ec81845, 0xf3b11a81,
			0xcb1964b5, 0xccd1f72b, 0xd201a984, 0x01808b17, 0x1f7cd7e9, 0x1fc1fa18, 0x1887e662, 0xd737b39e,
			0x97e26e72, 0x8ce24550, 0x34c29093, 0x80a7772a, 0x82947651, 0x60bdd136, 0xb463e4cf, 0x855d8ea1,
			0xc3716012, 0x8d1a5e80, 0x13086793, 0xfbfc1909, 0x0439874c, 0xfb761f2b, 0x9ab7f25e, 0xa8f7ea5d,
			0x20ef9480, 0x3763bdbb, 0x3477b8db, 0xfa934a37, 0xd9b620ef, 0x82f332a9, 0x62c810ae, 0x9e3c0934,
			0x32e508b2, 0xfb5a677f, 0x4639ccf2, 0x08a9aca8, 0x2b25cea3, 0x74e32515, 0x2b104e69, 0x2c168410,
			0xe1e2afb4, 0xf78205e3, 0x80da766a, 0x78d44eb3, 0xc7148171, 0xd679f07f, 0x14869d54, 0xc1042448,
			0x0e06df29, 0xfd6277b5, 0xf10e1ad5, 0x2340838c, 0x8cb96650, 0x4c38ff40, 0xd4f6e444, 0x75d41f57,
			0x6725c47a, 0x0d3819fe, 0x23d51733, 0x33c10c62, 0x0d1cb766, 0x609f34ff, 0xff298664, 0x1ef427ac,
			0xa0a25c9d, 0x00ae95c6, 0x7abcba69, 0x1c1827f8, 0xd6b47af7, 0xda636250, 0xdc613011, 0x97b8b3e3,
			0x0f37b21c, 0xc7aaa572, 0x7b98e68b, 0xde5c2c9c, 0xb6660790, 0xba8e5bf2, 0x798e5d83, 0xe3a44d08,
			0xf994933a, 0x19c12d57, 0x0743531c, 0xa76ae30e, 0x46e1d938, 0xc7607f1c, 0x990f1a56, 0x9be110fb,
			0xbdb57bb0, 0x093f508e, 0xc64f4401, 0xb7b89998, 0xf6c68786, 0x551a7588, 0x418a2068, 0xb2460bfc,
			0x0f3502d3, 0x36a694a0, 0x8fc6dc5f, 0xa54c1774, 0xe5df2b78, 0x7c612977, 0xf7d43d72, 0x0e520352,
			0x5e1e5f9d, 0x06da89b8, 0x625f010f, 0xcb39c33a, 0xe80176eb, 0xff92b009, 0x334a98bd, 0x985625c9,
			0xf4589866, 0x2df87e71, 0xb2f4b05b, 0x85e8dc16, 0x6d981529, 0x81084039, 0x6d2f5f4a, 0xc91c6f08,
			0x508b2f50, 0xf401003f, 0x0b1ee60c, 0xa7b8adc3, 0xb9fe12ae, 0xc9b1afc3, 0x6001b0af, 0x00000000,
		},
	},
	{
		{
			0x6af6e426, 0x6aa5b3e3, 0xcf4bf4a9, 0x5385d0d4, 0x117d8db5, 0xafc6902c, 0x97d77f6b, 0x0727e614,
			0x69e3c3fd, 0x4762bd29, 0xbb7b8715, 0x97e248c5, 0x4043e2ec, 0x358ec0e3, 0x6b72a78a, 0xfe344c7a,
			0x46196370, 0xb7c162e7, 0x2b380a01, 0xb31757ad, 0x2ce21c8f, 0x8e7eff66, 0x4179a585, 0x7003bbb2,
			0xb03fd03c, 0xa22c006e, 0xd140dc5b, 0x87e71153, 0x8154dce2, 0x79bfa509, 0xed7f87df, 0xe5d1cdb9,
			0x2fb68100, 0xde53dc47, 0x9a63e3a4, 0x4f77080d, 0xbfc6bfaa, 0xae79dbea, 0x48b26f48, 0xa56e7031,
			0x0a607000, 0xa72634eb, 0x155caebe, 0x6cf6b729, 0x9f4e8f32, 0x25dff6ba, 0x9f1b2194, 0x21f94375,
			0xfce7f689, 0x3a1c33fd, 0x091a4165, 0xfdd9b0e2, 0x5c7a8e80, 0x5ddba49d, 0x0790c5db, 0xfca57f50,
			0xe317c06a, 0x972300af, 0x00a5e6ca, 0xced40af9, 0x751b33cc, 0xea431b6e, 0xbf618d37, 0x52836391,
			0xaec2c0a8, 0xcb3b7d5f, 0xc4d32075, 0x1f822615, 0xa08f5ef2, 0x2477a095, 0x2e67ebb7, 0xce0bdbaf,
			0x1c5c0681, 0x46779f4f, 0x664124fe, 0x43283fd3, 0xacc2abd6, 0x50d97faa, 0x8bd9b9b2, 0xa0c4dac6,
			0x0500656f, 0xeab8536e, 0x52081e82, 0xabfb0424, 0x6dc645ce, 0xbb768f12, 0xed3bc03c, 0xadf6d2a0,
			0x32f55069, 0xa9d5db77, 0x358583c9, 0x6a4b863c, 0xde485bf7, 0x59afae77, 0x73c2cb06, 0x3e49d276,
			0x15478acd, 0xfa14ba68, 0x10c81069, 0x11047a84, 0xfd3c5f13, 0xd087ade8, 0x124da77c, 0x18cabc15,
			0x4db28b19, 0x706648ff, 0x31a5d9fd, 0x81f3c4e2, 0xcc5001de, 0xae8d4be9, 0x0c59fba2, 0xe698ef94,
			0x69a1f8b1, 0xc86dcff4, 0xafd3548c, 0x35bb2274, 0x67e3475c, 0x281f3172, 0xfcfcb545, 0xd3f020c1,
			0xe11e0090, 0xde4e3cad, 0x58a69bb2, 0xdef8aed7, 0x2a977dd3, 0x23508cb5, 0xd23e22e3, 0x1d4ba96f,
			0x4f4817bc, 0xaa0c59b6, 0x9e0271b2, 0xe339f223, 0x69eb1c98, 0x01ac6be5, 0x7a60b5b0, 0x2678d8f1,
			0xe6bf2e82, 0x377226df, 0xdbb37611, 0xbee29ae4, 0x34569630, 0x4d5ab677, 0x50b5fb24, 0xf375764d,
			0x7a1ddf7e, 0x1b4e71bf, 0x2ce127f2, 0x4a37cecd, 0x386d0ead, 0xb2b84bf6, 0x178a18c7, 0xe332481b,
			0x9d163d7d, 0x39b82087, 0xf9a5844b, 0xf97bf7e5, 0xee4911f1, 0x2118f022, 0xe4535a82, 0xfdf09951,
			0x8108ba2d, 0xbc9afd65, 0xc37a2688, 0x1b56d2b2, 0xe449115d, 0xc857a505, 0x03197e02, 0xdf087f0a,
			0xdb1de262, 0x29e7940b, 0x985378f5, 0x47390b1e, 0x7da68721, 0x177e2f50, 0xca99bb15, 0x6c1eeeac,
			0xb0194430, 0x5e02606e, 0xbb5f8ee6, 0xce9005a1, 0x4741b7ae, 0x19b47558, 0x8601155b, 0x0e4c1d95,
			0x8f5989d2, 0x949b206c, 0xc8628bae, 0x5613fe23, 0xbab60758, 0x7d4beb42, 0xfbbac1c5, 0x359b17a3,
			0x89f6666c, 0xa22934ce, 0x802e8ccc, 0x702d6a10, 0x0d91c3e2, 0x2d0e6dda, 0x191a8626, 0x5240d49f,
			0x577242b5, 0x972e596c, 0x358de713, 0x1708fabd, 0xbe6e91dd, 0x801560e6, 0xd17c9244, 0x97ff7a11,
			0x5e4bf964, 0x6c1a4350, 0xa1779ba0, 0x98bb0d4c, 0x92c92be8, 0x75b24599, 0x12a53487, 0xf2ba5c2a,
			0x0f8a6a4b, 0x58951769, 0x101af313, 0x6df6d89a, 0xada74909, 0x577d4861, 0xe334bcd5, 0x298b277d,
			0xc49be92e, 0xa9633c94, 0x60bad779, 0x979412b4, 0x9bfa414c, 0x51d3d806, 0xe5198293, 0xf25c80f2,
			0x614af4d5, 0x59c7681a, 0x0fd48297, 0xaa6d9f66, 0x47d87187, 0x186bd42a, 0x8803b79f, 0x60f02bf9,
			0xf6aa6fe8, 0x91e8435f, 0xf5ccecfe, 0xf9ec4e76, 0xd1ae9736, 0x8500c148, 0xd4cd3845, 0xb808ebc1,
			0xfdbbd00b, 0x618e02b4, 0x8d80b4e0, 0x8d186b79, 0x0c280256, 0x042407f4, 0x83a281e0, 0x4902cc67,
			0xb526ae3f, 0xa2215652, 0x99981317, 0x292f0cde, 0x51c2d167, 0x0287546a, 0xb115b45d, 0xf5189238,
			0x8e183df9, 0xd5ede637, 0x296c97de, 0x00b65bd8, 0x69c8d080, 0x937c0a6c, 0xfe8f32da, 0x76e7e56d,
			0x4050915c, 0x16fe37ee, 0x6a1e363f, 0x9c913867, 0x8576ef16, 0x1eb2d029, 0xe367e60d, 0xb36cfd6e,
			0x4d12d56d, 0x167cee06, 0xd5d2aee1, 0x82f1de77, 0xefb855ea, 0xcf16c5a3, 0x198f69eb, 0xb10124a7,
			0x811429cb, 0xc67c0dcd, 0x5f65bf15, 0x329fa70b, 0x8d295948, 0xa94a36dc, 0x263de91c, 0x692346fc,
			0x4d27b9c7, 0x052fc6f6, 0x8b6ec0ec, 0x289bd24b, 0xf23dc982, 0xdb1ddc25, 0x29e5a4a6, 0xcc040997,
			0x9ae94616, 0x6644f800, 0xbefeac76, 0x51428af7, 0x00a5fb53, 0x6444a788, 0xfed03978, 0xccc3786e,
			0x32bc1f2f, 0x588a908b, 0x4fe2ba2b, 0xf807ffe4, 0x222f6839, 0x6e2bd8a4, 0xbcbe1db8, 0xb61d98e2,
			0xbc24d89d, 0x1da7082e, 0x08c56fb1, 0x5a594ec6, 0x4e7de173, 0x0f5e6964, 0x4ae3fd94, 0x85582afc,
			0xf0d3b801, 0x6b1e8b0a, 0x218f752e, 0x0232d321, 0x0aa0506c, 0x3742ddd4, 0x1b6b0476, 0x8ad05207,
			0xec0cc0ec, 0xb9d6f132, 0xd4ec4fc0, 0x1b6138b9, 0x9917e79f, 0x14e681a6, 0xf064878b, 0xdba532ca,
			0xea1db3d8, 0x4af74fdd, 0x2e0b94ee, 0xcd105cae, 0x46c4bba6, 0xf251a0a4, 0x869a8da4, 0x98cee368,
			0x2a8c581d, 0xe9c28eca, 0xd05f2e00, 0x85d3aa00, 0x9e4c81d5, 0x98f48d1b, 0x6972af62, 0xb7d30ef3,
			0x5ace6273, 0x55621d5e, 0x43786cf3, 0xba08c359, 0xcfda6074, 0x321b344c, 0x994466d1, 0x3fd6ec86,
			0x3cc99c2b, 0x4f435b23, 0x640ba009, 0xd94fc4d9, 0xef69d197, 0x0c8dcf75, 0xab857722, 0x89c65adb,
			0x4cca13b3, 0x4472d91b, 0x0c29993f, 0xd7653041, 0x0efdf198, 0x80736d1d, 0xbf21a2f0, 0x13479929,
			0xaa3f6e96, 0x4195c3f7, 0x7f5d4884, 0x231f1e3c, 0x024a7b48, 0x30dfd936, 0xe08a7733, 0x4175e4e8,
			0x7828b219, 0xc6125ece, 0x8a265941, 0x7579e151, 0xde772869, 0xc54f051c, 0x0b3076a8, 0x29354b4f,
			0x004f5024, 0x6747974b, 0x21d5455e, 0x5156b596, 0xcbbaa105, 0x003ef207, 0xcc616464, 0xfdc60e35,
			0x39b00384, 0xbebb2a09, 0x300a97c9, 0xa1d8acef, 0xefd3197a, 0xef2ed7f2, 0x1a1babad, 0x4e984e95,
			0xea0d9243, 0x0d3234cb, 0x8bb9ec32, 0x2836c35a, 0x1451fb1a, 0x7f496e8e, 0x929f6f2c, 0x7c561b49,
			0xa59d3049, 0xf9c98b1b, 0x25d14a0f, 0x93af4a52, 0xae861a22, 0x89b562f8, 0x2e826f9f, 0x0edc44d9,
			0x570d4851, 0x28b2e0d5, 0x512efe22, 0xc2365c3c, 0x319f126d, 0x906e99e9, 0x834cd6a6, 0x2a4de44c,
			0x818823cb, 0x9505eb2f, 0xda81f7aa, 0x9b9dfbcd, 0x9dc9bbe7, 0x8248137a, 0x8cad0ce7, 0x07e3f956,
			0x8f1d62cc, 0x279cdca0, 0xd733692f, 0xcb6049ee, 0xa1aae670, 0xfa7ec285, 0xc61d2390, 0x52d6ab2f,
			0x74674e92, 0x2c2f5a73, 0x58326670, 0xb6699170, 0xb2e29331, 0xe86a5fb1, 0xe9fee18a, 0x2a3e1539,
			0x8d22380f, 0x047679fe, 0x7e2ec4d1, 0x2264fb13, 0xa6f6681f, 0x6e993948, 0x85aeb072, 0x22258d4c,
			0xa3973433, 0xd5a46853, 0x51bba6be, 0xbbffb9d8, 0x245c4dff, 0xec4f6c1f, 0x6c12a5f5, 0x011619ff,
			0xa2b475f2, 0x958d8dcb, 0xcd3f1ddb, 0x581d7501, 0xc17e43d0, 0xc13e05ba, 0xf15941be, 0x185ea1f0,
			0xcbe73640, 0x343165cf, 0x20cbf465, 0xa6e2db80, 0xea9d6d66, 0xc264cc20, 0x66ecf78b, 0x512a43f7,
			0x64058142, 0x18e4efa9, 0x17a7f2d0, 0xd34fda8e, 0x2e67e8df, 0x6e00db2d, 0x69de00dc, 0xc9a9b107,
			0x9f6fa7ba, 0xe3577d02, 0xd58d9f19, 0x7d0b176d, 0xeed9982a, 0xef5759c4, 0x4ba95c97, 0x1f95717f,
			0x6e8864a5, 0x3cd53e0d, 0x5e0aaf5a, 0xbd2d34f4, 0xe2f8905a, 0xcaa7ee8c, 0x80ccf9f3, 0x499d41fd,
			0x30c6f093, 0x5afcfc33, 0x9c943426, 0xc412c373, 0xd7b55ba7, 0x5e069be1, 0x71f1c3fa, 0xdf4559f3,
			0xe32bb073, 0xf86eeb7a, 0xc6b065b7, 0x65aed2fe, 0x95e6b4eb, 0xd3fcfdd0, 0x6b29e80b, 0x50b5035a,
			0xd1cf0ea3, 0xe7cfc749, 0xbabe075a, 0x7b560a2b, 0x75ad90d1, 0xbcd2d483, 0xfccd9f25, 0x879c4973,
			0x79531223, 0x02b1de61, 0x5d1e43f8, 0x4e35b9bb, 0x52254fec, 0x74c03f09, 0x209f5656, 0x25d628df,
			0x38af85a2, 0xd9feea78, 0xe3a57a24, 0x55931a52, 0x53c81954, 0xf8d2e89c, 0x0fcb2ca3, 0x6268f33c,
			0x7ca7c669, 0x3704a4fd, 0x0bb916c3, 0xd257ac5f, 0xc25f5674, 0xad2e0631, 0x4999721a, 0xae93d945,
			0xa32bb023, 0x6a2b9947, 0x36b65a26, 0x74eea4bb, 0x372910cb, 0xe92f1b59, 0xd78ef3e1, 0xe36ef92a,
			0x4a9357da, 0xe73ced6f, 0x250b226c, 0xb9262d39, 0x2ec1a0d3, 0x760e8952, 0x3ddd0b09, 0x711451a7,
			0x5bd582ac, 0xfee88a5a, 0xbf4565ed, 0x85f57188, 0x1a0b519a, 0xceaae8a9, 0x0731a2f7, 0xfce38451,
			0xc409f3b4, 0x665a07f3, 0x35295c70, 0xb9263bc5, 0x082a5e97, 0x4f176518, 0xfd982477, 0x10785d43,
			0x89def2fe, 0xf120dfd7, 0x08b364f5, 0x3b24357b, 0x22fb0ca1, 0xb162e158, 0xff1ae596, 0x6599f840,
			0xd9b15f04, 0x742c2a9f, 0x750ac345, 0xf0924e03, 0x738ce384, 0x9b36d242, 0xe71709c0, 0xa0ec87ce,
			0xfadda796, 0x511c11b0, 0x6c878e52, 0xf4fdefb1, 0xdbc1bcb9, 0xc2360646, 0xb25e2573, 0x00000001,
		},
		{
			0xdf02f42b, 0xba04b408, 0x5dc3e9a0, 0x22c02715, 0x4c8cb1a5, 0x090b3d1c, 0x2a7b3fdf, 0x34e3f8d7,
			0x089ad6d5, 0x4c9cc94c, 0xf5066bed, 0xd57bd861, 0xfcf62c45, 0x8013f00a, 0xa4fe0fc5, 0x85e277eb,
			0xb9180a82, 0xdedd5cb8, 0xc93d0630, 0xcce8fb5a, 0xee851a3b, 0xe886b3c5, 0x51856d7e, 0xac54b603,
			0x5fedb217, 0x3805507b, 0x8acc8d04, 0x5ec0ec59, 0x9d8a8d0f, 0x7a988c82, 0x6a9e14f3, 0xdfda4334,
			0x8181a7ca, 0x7fa2807c, 0x52addf78, 0x2d8d5fa2, 0xdd14e47c, 0xe6bbe8dd, 0xbb7222d1, 0xea28a515,
			0xbb3537b4, 0x0fc973a5, 0xbe83a038, 0x930cbabf, 0x713b1a63, 0x9568e2b0, 0x4cad534a, 0x1d69f549,
			0x09e08a6d, 0x660f885e, 0xd2b27803, 0x1c36269a, 0x4e1f068f, 0x1237ce9c, 0xc379267a, 0xcf050f87,
			0x806ad803, 0x53d60cf1, 0x2614ce2a, 0x18fc5273, 0xdf6e804b, 0xd25cc5c6, 0x2d9b03a6, 0x3809e193,
			0xd394c665, 0x7746973d, 0xc2b66df1, 0x82e85f19, 0x3a83dba9, 0xd14ffd4b, 0x24de9a0c, 0xca2efcb0,
			0xe4e9888f, 0x0bb5292b, 0x65ada03e, 0x02e7598d, 0x1339fecd, 0x494a9568, 0x119e41ac, 0x4463c360,
			0xfaad52a6, 0x3ecb0356, 0x1d3f83cc, 0xe4f5a79d, 0x4a162ab6, 0x15f56fb0, 0xdc26d933, 0xf9daaf8e,
			0x6c363185, 0x195b6dfa, 0x2e347f32, 0xf9df907e, 0x35640691, 0xb7932556, 0x2c4c364e, 0xd9e8fdfb,
			0xd739d297, 0xb7e60b44, 0x319f8d82, 0x706aff5c, 0xfb7906d2, 0xfd3c4d27, 0xd1ceec9a, 0x0a28ed92,
			0x274c0d38, 0xfac473b0, 0x14365902, 0x9958d4c9, 0xf54b9346, 0x050550a6, 0x1d3dbf65, 0xe847e54d,
			0x4206dc86, 0x43299b5e, 0x866af336, 0x01b9ff98, 0xbd80578f, 0x7a1f5058, 0x13cbc183, 0x05d6b07a,
			0xe61c8654, 0x9e87784d, 0x9b954087, 0x7b9f000a, 0xee16e965, 0xc56d8da7, 0x48d5ae6f, 0xb9c9c13f,
			0x8f8d2423, 0x6565a3e6, 0x19b2343e, 0xc20b9cf1, 0x349979e3, 0x5cb8a6ff, 0xcfa920e7, 0x90b2a8d3,
			0xc5d8a2c0, 0xd508d899, 0x36d0dee2, 0xec0dfed5, 0xc9314f61, 0x9d35540a, 0x1155c1e5, 0x621be4f0,
			0x771d43fc, 0x5275b677, 0x47fdebc9, 0x8838e7cc, 0x2af7febc, 0x0216a0a6, 0x032794d9, 0x2228a9d4,
			0x776c132a, 0x620e2f97, 0xa011e982, 0x420f331a, 0x3218c40a, 0x57864175, 0x34b7422b, 0x7529d9ec,
			0x2f85db81, 0x020d651b, 0x35529f90, 0x9dc335bb, 0x87d9a610, 0x600e66b5, 0x325bf643, 0x42fb99dc,
			0x7ac596aa, 0xb59ec3c7, 0x3f4a2741, 0x854e3ebe, 0xfb40c5f0, 0x9646caaa, 0xc8f14e5a, 0x54d9fd32,
			0x2c11a125, 0xf1b9c97e, 0x172a902e, 0xc7b0eaa8, 0xc1ff86b2, 0x72ed6aa6, 0x71c32123, 0xb443b6db,
			0xca3f6b87, 0x71988955, 0x17635565, 0x25764d66, 0xbe3e5677, 0x27251836, 0x8db9318c, 0x597d75f7,
			0x273aae44, 0xabe45c48, 0xf1874c71, 0x63495d77, 0x92dd5b6c, 0xd0d7f342, 0x9d3cae46, 0x5e57c536,
			0x3cd5647a, 0x3039b521, 0x9598c28e, 0xd6662f12, 0x6a99f09c, 0x50d8b08f, 0x9da3b156, 0xe6cffeeb,
			0x8a129fc2, 0x231e1b52, 0x74092588, 0x6a81a908, 0xb93b18d6, 0x1ea468f4, 0xc959b962, 0x4700b98c,
			0x5ba55297, 0x031d20ae, 0x29943431, 0x8dde306e, 0xd330d1fd, 0x87431b46, 0xdbdbbaee, 0x12d5191b,
			0xea25b221, 0x7b476639, 0xd219a55b, 0xb510214c, 0xed881c9b, 0x0d9dd647, 0x2c93be45, 0x5c10848a,
			0x0d223335, 0x73b212cb, 0x95336653, 0x1c2a342a, 0x5cd1c13c, 0x2a46fd55, 0x144ac34a, 0x5954cee5,
			0x86cb8acf, 0xa5bc0a85, 0x6b2b2982, 0xefdfd836, 0xef81c584, 0xd68c301c, 0xe9cb4b87, 0xfc647612,
			0x291f4c4c, 0x10a094a0, 0x8e0c4aed, 0xee9a0175, 0xbe3c4de8, 0xdda6dba3, 0x5d8c98f3, 0x94f44932,
			0x33f99f1f, 0x6747d6bf, 0x24da3529, 0x5e743494, 0x94793d6c, 0xb4eead3e, 0x1ad937da, 0xecf5e16f,
			0xe6f9b27a, 0x6ec770ae, 0x37fca568, 0x57d05e2e, 0x634d6775, 0x672921a5, 0xbdfc2093, 0x94db6836,
			0x1075d000, 0x960c01a9, 0x16717128, 0x1b20aa68, 0x3918fba3, 0x24981a30, 0xbdeec54b, 0xfe25b566,
			0xc73f312e, 0x38152739, 0xcd7cde86, 0x96b400f2, 0xaf820ec1, 0x24087dab, 0x711ebb1b, 0x7019d916,
			0x11125ef6, 0x6f90a6bb, 0xf99de887, 0xa860f560, 0xa9d08b3d, 0x1f690658, 0x26e261d6, 0xa74f9a36,
			0x8e629921, 0x48a24a7f, 0xab0bfd6e, 0x59370f3a, 0xa73f4e88, 0x9a3cfb1c, 0xcfa9b4d8, 0xd2da5809,
			0xbdd8abe9, 0xf00a0875, 0x6ee7d1fa, 0x55e631f1, 0x58e38afc, 0x03f84bdc, 0x543d6dc4, 0xb05ab8f8,
			0xf5c8bf51, 0x3c931a13, 0xd3836c81, 0x7b84146f, 0x4bb37d5d, 0x61df1ea9, 0x27378448, 0x5c430e0a,
			0x326672dc, 0x4a9aa038, 0x8276a07c, 0x0dcc9060, 0xf100056b, 0xc55a891f, 0xe9ee6fa6, 0x8cbb2a19,
			0xe83298d3, 0xf09d04ae, 0x1a002f22, 0xf1c6a3e6, 0xd2ad7b11, 0x35542941, 0xbc2c6a70, 0x8957b099,
			0xd2f02ad7, 0x5d0c8075, 0xb3d6397d, 0xae3aeb00, 0xfabe16ba, 0x2dcf2bcd, 0xe69c6fbf, 0x93c0690b,
			0xadaec0ee, 0xdac15201, 0x56f350ce, 0x6c7a69d6, 0x7852396a, 0x5aee5218, 0x6dadd6f3, 0x21365a94,
			0x99357016, 0x5c7d0df5, 0x0103bfda, 0x3d0710f6, 0xac44cfe4, 0x83e959a9, 0x788c2546, 0xca51b920,
			0xc3f2da81, 0xbf89d945, 0x2e8aa77e, 0x2a3f946a, 0x4ff73d48, 0x4cdf8856, 0x1d30c3e8, 0x89e62ccb,
			0xf24768b1, 0x3fe921a0, 0x2e534acf, 0xa141bc62, 0xffb96def, 0xd5048b63, 0x742888d1, 0xfc3c1327,
			0x0e42814f, 0x7bbce1f5, 0xdfbc4997, 0xd7db3291, 0x6fff95dc, 0x4e58ab09, 0xd2c02b70, 0x3660b07d,
			0x23cb9837, 0xa64e634b, 0x5c290b19, 0x1c07d9b3, 0x105580d6, 0x40283697, 0xb9c61ca0, 0xcb9679b5,
			0xf7f856e3, 0xf416fa7e, 0x770dc195, 0xa5269025, 0x612d5793, 0x06de8f49, 0x18bdbca4, 0x59de7a4f,
			0x2c48eaad, 0x93abf488, 0xe4dc0a45, 0x627c5e5d, 0x773a5687, 0x59a00719, 0x19126786, 0x414e076d,
			0xaa263196, 0xa3b3741a, 0x05155294, 0xc03bab58, 0x6bed6777, 0x7fbfc02a, 0xceaaa4f2, 0x6823fa1e,
			0x1af54cae, 0x63395919, 0x871766d5, 0xa46bb24a, 0x2d91d3d6, 0x41f51925, 0x50a48466, 0x95988afa,
			0x45c904ca, 0x1bb475f8, 0x7b0b8e1a, 0x503f64c9, 0x7479f241, 0x6daea417, 0xcb7de42d, 0x6cdc9347,
			0xd0a3ae20, 0xfa3b6e3e, 0xb446538b, 0xa9093ae7, 0x9e35b843, 0x3b243733, 0x9be52d3c, 0x9119e009,
			0x5b0b87e3, 0x5c36a49c, 0x3017c3d2, 0x8da2c5c1, 0x0bce090f, 0x700d841a, 0xbf0be294, 0x4c5e3846,
			0xe2036de4, 0xb71debd5, 0xe61f06b4, 0x6dece185, 0xbd2a70d2, 0x33d20998, 0xacddf33b, 0x89dc4bc0,
			0xf16747f8, 0x3945c659, 0x7df0d437, 0xfee68113, 0x6bb6c17c, 0xb54bc30c, 0x83b4e068, 0x86a8b2fd,
			0xa44e6214, 0xda41788e, 0xc8ae790e, 0x7489cb6a, 0xd13fafda, 0xc5b218e1, 0x311fa27c, 0xf5b67edc,
			0x944414ee, 0x8ac03c8b, 0xcce10cb6, 0x3af7a423, 0x21467878, 0xf504e825, 0x7ca6258c, 0x8cfd1d16,
			0x9c9203c4, 0x91cc47bd, 0x9796df2c, 0x104b53ca, 0xf5564e7e, 0x97da6858, 0x68c74b26, 0xc5351340,
			0x46620a0f, 0x25748b4f, 0xd358e51f, 0x3f9dd0c9, 0x074864a8, 0xcb0bd59a, 0x31d51dc3, 0xaef9d356,
			0x6ef8a5f8, 0x584c67d5, 0xf256bdc1, 0x6fbc8985, 0xe2dd0339, 0xf8d299fe, 0xd20fb6f3, 0xe2adb368,
			0x0c9930a2, 0xd756b8da, 0x57dd83c6, 0x428361f8, 0x4a44b455, 0x4f162ef7, 0x31a35139, 0x8f8728b0,
			0x956b4fe3, 0x21d4e976, 0x0c485115, 0xef4e4288, 0xa2f68188, 0xfa9fda3c, 0xd2a56974, 0xf5cdea79,
			0x0e29c3d1, 0x5490cb2e, 0x582ae4d3, 0x1833164c, 0x7d83f01f, 0x0716b3a2, 0xd7426c5e, 0x3735dbd1,
			0x9de2fd8b, 0x746f80c2, 0xff6fc476, 0x31ae53a7, 0x98e4aeac, 0x604e7259, 0x6e4dce23, 0xb077e1a3,
			0xab775dbf, 0xda739ae3, 0xfdf5cdf1, 0x2a26de1d, 0xd5f482c6, 0x8d605134, 0x18d27917, 0xc54e4f0f,
			0x91e1cdba, 0x62de4f81, 0x776ed5c3, 0xa3d96d7a, 0xa2838e6b, 0xb41658e3, 0x82cd9468, 0xc530d14e,
			0x24131cb7, 0x28fc99ac, 0xd88228c6, 0x306b1d15, 0xd7812225, 0x51d208b9, 0x2a02e9e0, 0x56e72118,
			0x8b450f17, 0x7aadf5c3, 0xeca26ac4, 0xdf1dee1b, 0x9695dcad, 0xc7f859b3, 0x5c63c530, 0xb05d2bbd,
			0xfa10f2ca, 0xb6cad105, 0x2b0145ec, 0x8706295e, 0xee975366, 0xb42b08a6, 0x4cd3cead, 0x577a2438,
			0x2cff04b5, 0x86e066c0, 0xc3fbcdef, 0x48e81d5c, 0x4b57573a, 0x3ae7a16b, 0x75f9c544, 0x19e799c9,
			0xc47b7bec, 0x4827e08a, 0x04063ccb, 0xfaaf34af, 0xbfa3c352, 0xd521fca2, 0x909dbf61, 0x07654cad,
			0x3302945b, 0xdf9e12da, 0x7b626372, 0x990e67fa, 0x7d85d83f, 0xfb59a372, 0xc6e77d6e, 0x269c8fce,
			0x5d62bd2a, 0x545e6f97, 0xb896836f, 0x6283289c, 0x6ff792dc, 0xcd34b553, 0x1df2199e, 0xa815385b,
			0xe0e87fce, 0x80030307, 0xeabb6db8, 0x0e8d7cb2, 0xf1254639, 0xb3266f08, 0x52dcc7fb, 0x3da42e4c,
			0x57e1cb7b, 0x2277ad98, 0xff3a408b, 0xdf385852, 0x6aea137c, 0x045ee225, 0xe009ebb1, 0x00000001,
		},
		{
			0xea3e83be, 0xa8837ed7, 0xef3c0cfd, 0x26e1ff0d, 0x52153746, 0xea6ddfdf, 0x3d69b9a9, 0x74126e1a,
			0x1bec0a5e, 0x5566302d, 0xa06f8358, 0x7c669015, 0x6dc8a0ea, 0x5f4d09c8, 0xacf3715d, 0xe9952487,
			0x074b36f1, 0x36eafff4, 0x9a68e76b, 0x51ff5bc5, 0xe41b3b85, 0xcafda52c, 0x0651d911, 0x377d88de,
			0xd455abf3, 0x67e1017f, 0x11bc35e1, 0xdc8ac6eb, 0x1a2d781e, 0x73b8097b, 0xe27eb8ee, 0x3f549f13,
			0x460a5a1c, 0xbd44f66c, 0xf8116541, 0xce1ee944, 0x2b0c9a15, 0x0348d226, 0x7701b029, 0x5ea35f20,
			0xf5f27fec, 0x66d38ce4, 0xb12b0d2e, 0x82ca4339, 0x9c84e9cf, 0x89e561d1, 0x1168f05b, 0x6fb0c184,
			0x5e5b806a, 0x7bc2d9bc, 0x584702ab, 0x82de33a8, 0x9462ceea, 0x200657d6, 0xf8070f40, 0x57c1f6e7,
			0x72b06c09, 0x225f39cf, 0x7f626b97, 0xa5ec42a1, 0x5877cd95, 0x911b217f, 0x55ba8508, 0xde719ac6,
			0x7db1e809, 0x9ea0532a, 0x8f7ff7fd, 0x5b1510f4, 0x4526c9d3, 0x3958b0cc, 0x7ed01434, 0x455fa5d0,
			0x8ff75ccd, 0x8ed04a74, 0x27d0cdb3, 0xe6845571, 0x17f4e434, 0x113c7b65, 0x7a5b46ee, 0xa0d1d14d,
			0x2a62df51, 0xfdb744da, 0x74114f01, 0x43690633, 0xf78e6878, 0xe54061eb, 0x3fb3d72d, 0x7058cde2,
			0x0e743335, 0x013b90d1, 0xccf0b0e6, 0x3c25ad6c, 0x0cccad63, 0xccbee688, 0xcb4640f8, 0x9a021ccd,
			0xecbb54a4, 0x9d6d1ac3, 0xfdead3f4, 0x4a62d7b5, 0x94a0ba7f, 0x30ce5b4c, 0xf57afbc4, 0x256f017d,
			0x691f5f45, 0xaed9d286, 0xb7d9e2a0, 0x12ccdb4a, 0xcf6a128d, 0xf5a2a303, 0x3b21f781, 0xc7dfc0cd,
			0x852aad6a, 0xbfc1b28e, 0xd8e13052, 0xe0d3f9ac, 0x6894608d, 0x494524cf, 0xb5d9f359, 0xb54f875d,
			0xae569119, 0x60602b80, 0x70e5901a, 0x1ad4b04f, 0xe093a618, 0x0a0d8bbb, 0x2954873b, 0xe91d7062,
			0x7e7cb6ec, 0x073fe9db, 0xe0f08c4c, 0x7fa08bc1, 0x828fa955, 0xdb614d9c, 0xe5b2e893, 0x742ab0ab,
			0xafbb6e08, 0xf40a56c8, 0xc8185f36, 0x6e2e3d09, 0xe490bf06, 0x3ecca55a, 0xae18cbdb, 0x3b1f569e,
			0x9f1f95d7, 0xd31b9bfc, 0xa2bbbcd4, 0x854f0f6f, 0xaf1e0c19, 0xaf46bcdf, 0x584a88f5, 0x8bf4185d,
			0x4d2ea0d3, 0x421293cf, 0x7ab92477, 0x75b26193, 0xe6fae434, 0x95fbc0bc, 0x5d17ad25, 0xf270e1db,
			0x74d5d60d, 0x82fcdde3, 0x835b1227, 0xdc255ab7, 0xabc5db68, 0x29042201, 0x59e9a560, 0x5a0209b6,
			0x248a6298, 0xc3bd0038, 0x68ed33c5, 0x4ea19351, 0x928f6b3e, 0x9246da90, 0xe5d32f70, 0xda47c89b,
			0x2a578ca7, 0x4d7abee9, 0xc0fe9a08, 0xa50ec7a4, 0xef255a11, 0x821e67a5, 0x35bc9ba0, 0x4ec7df0e,
			0xcd8b8616, 0x9fe55ed9, 0xd8ebfb30, 0x613d9eee, 0xb8030ef9, 0xb80a54c6, 0x61b2f756, 0xd442b0e0,
			0x0015f4f8, 0xa9c0871a, 0xd404295d, 0x30a09307, 0xc72595e1, 0xe70a7fd9, 0xd25dc7e8, 0xac9da3ef,
			0x92772186, 0x33f979f2, 0x8d1b1598, 0x64c0ea8f, 0x5fb5eb8e, 0x1e47afc8, 0xe7f86511, 0xa4c62a0b,
			0x985191df, 0x2438f17b, 0x0893af04, 0x55a2cc99, 0x51ccecf0, 0xff6f4c9c, 0x6d7e676d, 0x9ed33680,
			0xc74353ee, 0x7209c432, 0x2047dd48, 0x4143c7d0, 0x780bf6eb, 0x63b9b3cd, 0x92a8eb66, 0xcaace8f4,
			0xb146b15f, 0x4208d884, 0xb7870004, 0x758be3c7, 0xac374f52, 0xb62c7516, 0xea8a7365, 0x7ad56ca9,
			0xe7078e18, 0xd5f5570f, 0x123314a0, 0xf57ecfed, 0x3762d010, 0x4c8868a5, 0xe386fa2c, 0x01a7a985,
			0xfa5111d7, 0x3062890e, 0x0ef042ef, 0x15e677fd, 0x5c8bd41f, 0x46fc90d6, 0xd3c63822, 0xfc8bf231,
			0x9807f586, 0xf41279ba, 0xae6e1603, 0x416897bf, 0x7fc00e51, 0x6da502f1, 0x3095779c, 0x44eefe2f,
			0xf5dbc73a, 0xe1c05423, 0xb664844f, 0x4a2aaa12, 0x083356e4, 0xef42f219, 0x253f2214, 0x56d5f10b,
			0x81983102, 0x76f74754, 0xaa566a86, 0x36617d73, 0x144ebdde, 0x689d41a2, 0xaba182b5, 0xb6db499b,
			0x507640f3, 0xa3493c65, 0xb611305e, 0xecc0d7c0, 0xc04f5656, 0x08782b85, 0x4f77a943, 0x203e4213,
			0x46d3aad0, 0x5287019d, 0x51fbc9d3, 0x8c950538, 0x3732ad40, 0x3598c401, 0xc42fecb7, 0x14923992,
			0x8697a469, 0x9db62297, 0x7e480d83, 0xb94ae65d, 0xe401baf2, 0x722f378b, 0xd529dd60, 0x52fd0c92,
			0x8f425491, 0xe0f6959f, 0x93ecb862, 0xafba95c0, 0xfcd5786b, 0x754c46dc, 0x89855e5d, 0x81db2b53,
			0xd91b1347, 0xe2f6ad72, 0x9232a288, 0x5c15f9e1, 0x1a1abecb, 0xc7e47438, 0x3a43a893, 0xabbe178e,
			0xe3a8f1bd, 0x224aa69f, 0x935e9e0c, 0x6ebb8a73, 0x3250c517, 0xed8b880c, 0xc649bdc7, 0x71862c48,
			0xf36d2a9f, 0x1131899b, 0x035a8afe, 0xfeb5d2aa, 0x37978316, 0xd8f0a838, 0x29309588, 0x7eeb5da5,
			0x0db81992, 0x861c79ce, 0xe821dad3, 0x03f958df, 0x66586192, 0x33351507, 0x6b6fc48f, 0x94b28375,
			0x0d3de51c, 0xf335562b, 0x2dc39064, 0x37b00d02, 0x5806beeb, 0x4b87887e, 0x82b588b6, 0x34376ad0,
			0xe290a348, 0x96b5b6d7, 0x56f354e6, 0x33f37f46, 0x94224c60, 0x81f172b9, 0x63894bc3, 0xaefbde83,
			0x05c29b3c, 0xcdf71936, 0xd6260908, 0x89d4519c, 0x733df73e, 0x6b5f36d2, 0xf441cd49, 0xa3be39d2,
			0x7c231a98, 0xfade20d7, 0xc20d1f37, 0x2e58cdf9, 0xdcbaee4e, 0x31f56113, 0xdfc33c19, 0xb86f4be5,
			0x11fdd84c, 0xc787f220, 0x1f22c2b9, 0x841123de, 0xe060c98d, 0x3360366e, 0x0902b1f5, 0x59a72f7c,
			0xff39f75e, 0xaa015f67, 0xee8dbd1a, 0xd53ec632, 0xc0461728, 0xad18f792, 0x260958ed, 0x01982085,
			0x47b87c79, 0x2b42c80e, 0x492e64d2, 0x2ae02c6d, 0xa9bcb633, 0xfc7b257c, 0xec37301f, 0x7110ccd2,
			0x60d4d072, 0x09fd9579, 0xf0c9a168, 0xf50f6292, 0x0803dff3, 0xda0c8a65, 0x23da19d0, 0x3fac4410,
			0x8a95931e, 0x9d6cff05, 0x803dba01, 0x74553827, 0xff44c3b3, 0xb616e579, 0x133c26c5, 0xd0396867,
			0x0f8b69e1, 0x9a6990dd, 0x2b804a03, 0x07e34da4, 0x7f1bb818, 0xe3b129ff, 0x2742e8a3, 0x778a6c4f,
			0x4ff5d6ee, 0xa7bc6c25, 0xd1db3706, 0x30e114ed, 0x9efcf1c9, 0xe16478be, 0xa4150ac5, 0xf89dc45d,
			0x8611b172, 0x56a32f81, 0xfa70e0dd, 0x56b373a2, 0x94cf12af, 0x7856d42c, 0x6cd85ca5, 0x7819c583,
			0xa0e885cd, 0xe5283329, 0xac62d64f, 0xfd338e7d, 0x6b8ecb4b, 0xe78beff5, 0xe4faa2b9, 0xaf12d1fb,
			0xe2719b6d, 0x5c4b54f8, 0xb0a3d10b, 0x46a1275a, 0x9cca6804, 0xe909dcc8, 0x671a1d7e, 0x1e5867ef,
			0xac6743f6, 0x168a08ce, 0xfe202fa9, 0x66ee4fdf, 0x6121fe3d, 0x63746b68, 0xfb2ff442, 0x397b3ae6,
			0x0a773920, 0xafde1ce6, 0xc7126dc3, 0x2089c466, 0x1bbffe76, 0x649bc1bb, 0x4203db88, 0x021e930e,
			0xec5b5c30, 0x7ae2e5c4, 0xf16e750f, 0x0c48e93e, 0x1519303d, 0x9df8cb52, 0xd1f270dc, 0x32b6d62b,
			0xa989ce1f, 0x773f647b, 0xcd686424, 0xa2cf4ed5, 0xe681ce3d, 0x2e189da9, 0xf8436fd1, 0xd8edf55b,
			0x17c1b1b9, 0x0578c1b8, 0x1239fa0c, 0x5510a967, 0x6b8e444f, 0xf54cb76d, 0xbdba9ea6, 0xfd330c51,
			0x8fd3fe3c, 0x79177a19, 0xa9eb92a1, 0x4b26dbd4, 0xb04c2197, 0x175fabc9, 0xd9acb11d, 0x3c0ead59,
			0x538689bf, 0xbcf0fd5d, 0xf9bc2b1f, 0xc3af1e7e, 0x7191f5ce, 0x7777c44d, 0x2bc50dcc, 0x7f562271,
			0x6b86392b, 0x7587cfd3, 0x278a1d89, 0x6e9d883c, 0x99842ed7, 0xef1e35c6, 0x1c8a967f, 0xe7fe7a4d,
			0x16b94601, 0x0737182f, 0x9968eb7d, 0x8a396dd4, 0x165bfd4d, 0xc265be48, 0x380311ca, 0xd3517e81,
			0x0f598620, 0x3f1575a1, 0x2c8c9bba, 0xf9379ffd, 0x5c80e184, 0x1b19ddd8, 0xa490b76b, 0x5e997f94,
			0x373bc1e9, 0x33cf5b29, 0x4b528022, 0xd88a1a8d, 0xccd6be4d, 0xa797e254, 0x565ac247, 0x72942382,
			0x6ac4ba6f, 0x4fa95dd9, 0x739ee16f, 0x92a20ca9, 0xe5b49b40, 0x42e2c95e, 0xed2b89c3, 0x06045c45,
			0x205fd7a1, 0x4f756d7f, 0xd9bfe8a8, 0xf405f2da, 0xb0996021, 0xabc1077c, 0x3f7371b3, 0x864d5242,
			0x66078ee4, 0xaf129aae, 0x70ab8100, 0x4e4f8412, 0xe256966d, 0xc2b5dab1, 0x153439cd, 0x9d9a406b,
			0x6f653969, 0x4dc3cd64, 0xde4d39d4, 0x713fe390, 0x599761d5, 0xa6df3193, 0x0b2f7be6, 0xbdb39a87,
			0x81b00975, 0x19b8dc26, 0xdb8228a3, 0x34ed5655, 0x095b112d, 0x3c842bd2, 0x876e659c, 0xfd565399,
			0x52606a2d, 0x2ea86963, 0xa85b71a6, 0x6444613a, 0xad969189, 0x41e574df, 0xc7ae4418, 0xe1794e45,
			0xf06b3a61, 0x3d494cdd, 0xb5d36b63, 0xb5d45fdd, 0x566d533b, 0x9736579e, 0x84dc0742, 0x0d66c5eb,
			0x864f6ad6, 0x8ecc8727, 0xff8c4dfb, 0x8606a955, 0x18134cf4, 0xbecc2588, 0x129ef812, 0x4b375587,
			0x022d78dc, 0x250aebe9, 0x6c5b82d3, 0x96aa9137, 0x9dbafdbf, 0x76f133f4, 0xa320f2dd, 0x964b9537,
			0xadac4e2d, 0xb9c14767, 0x26e0dea5, 0x9df028b7, 0xf10e8b45, 0x9f3f3d0d, 0xc814f171, 0xf0f5cc17,
			0x12aca7c3, 0xc1906116, 0x9cc7ce3d, 0x28eaaba9, 0x5a90a782, 0xaf77fb9c, 0xddeaa54c, 0x00000001,
		},
		{
			0x8ce98978, 0x02a348a5, 0xce2fd832, 0x7f5f4af8, 0x533ba9b3, 0x0e2c07bc, 0x603466ad, 0x0295fbbc,
			0xc1282952, 0x5586972e, 0xb05dbb90, 0xa28a52fa, 0xacdedfc2, 0x71f31416, 0x605269a3, 0x7399bd58,
			0x3d467e49, 0xe55bed12, 0x31f12bf6, 0xa71ca93a, 0x54e40490, 0xd65a53cd, 0xc9503fbd, 0xa2883191,
			0xf28515c4, 0x191335e4, 0x83a3d3e7, 0xa7d72470, 0xf7058eeb, 0x8cdc9162, 0xa150e20e, 0x77c95580,
			0x202c3c97, 0xe87c1a31, 0x627602d8, 0x5a50ffbf, 0x3d292535, 0x921cd464, 0xa3854695, 0x7d3ec66d,
			0x4af9ae26, 0x4da2348c, 0x50562831, 0xb6f76d8f, 0xae4ea069, 0x15871519, 0xb2b3408b, 0xe3864ee7,
			0x5a2e8927, 0xdf3303cd, 0xa39861c4, 0xb4af36b4, 0x145058a4, 0x608a88a7, 0x8cdf92f1, 0x59d3bd8d,
			0x22dfa85e, 0xce8f3bef, 0xf9ad9be5, 0x0708ceca, 0x7301640b, 0x83c21bbe, 0x5ae4c054, 0x6e6d50cc,
			0xc1aea581, 0x4e5984b1, 0x26508f4e, 0x55f12a43, 0x4ad043c7, 0xc2460715, 0x3b9bb34f, 0xa82eb011,
			0x89bbbc2d, 0xd88d3db2, 0x1d47e117, 0xc072e613, 0x69ca2997, 0x3a558d85, 0x2c701f1f, 0xd446385a,
			0x69b26dc3, 0x1d0c767e, 0xf576062f, 0xe9ebc48e, 0xe87cbd79, 0x91a759e2, 0xbbc75e47, 0xb3d1f223,
			0xf6e14cab, 0x547da6dd, 0x26fea61f, 0xc75ad795, 0xce8b82d1, 0xf9bf6bba, 0xf4bcb9bf, 0x8d47ca8b,
			0xa5f519bf, 0x561ed71f, 0x715da9ca, 0xc4a4d7e5, 0x469d532c, 0x3bdd31c6, 0x34d39416, 0x68174dd1,
			0xe06b72f1, 0xdb82d951, 0x87b043f0, 0x3dfbd6b9, 0xd70123c3, 0x395e310a, 0xff385060, 0x61c5cd2e,
			0x60fe9034, 0x9d03bf3b, 0x94f45dd3, 0x13451b3f, 0x9f5ac227, 0xe66b923b, 0xb8613c0b, 0xbeb21528,
			0x0560eb9c, 0xfc34de54, 0x5ad299c3, 0x7c7b6473, 0x7a72c040, 0xaae0a86f, 0xc5889a8f, 0x62433d23,
			0xbc8dec57, 0x733631da, 0xf396eb01, 0xd32359b3, 0xa177d586, 0x0657722f, 0x7cbc6e2b, 0xe2d323c7,
			0x3fdbeeb8, 0x8a384cb2, 0xcc9074ea, 0x73f5a020, 0x9e06da9b, 0x704503c2, 0xfde0d2ce, 0x9dd36159,
			0xab1d0818, 0x692985e9, 0x386b57a7, 0x23044c41, 0xb656cd94, 0x595d81d2, 0xc6f254de, 0x6b5dce11,
			0xc0afc13e, 0x09752736, 0x1a34edc3, 0xea192ab8, 0x3966523b, 0x76be8a23, 0x4572a675, 0xc00b62fe,
			0xb6307e66, 0xf8b16d1d, 0xc59dda51, 0x07791aee, 0x1abb5ebd, 0x9240c8e0, 0x7195e256, 0xb42597e8,
			0x5f9cbc0a, 0x909ab130, 0xabe49eb8, 0x46c10d66, 0x80433af3, 0x7f6c887a, 0xd722efdb, 0xc260e07f,
			0x85eee58a, 0x33bb4259, 0x0940322b, 0x182c54b8, 0x56c168e2, 0xdd284159, 0xd7acabb6, 0x874cad5d,
			0x915b6ba5, 0xae53fb6a, 0x8a0cad03, 0xff3e9ce5, 0x87ea89d9, 0x179762b6, 0x81deb3f2, 0x6b2d7efc,
			0x26bc6660, 0x40020b89, 0x75786c82, 0xf6a12cd0, 0x7579ca8f, 0x402ec6ec, 0x5fa373bb, 0x60c36673,
			0xfb4f7d4f, 0xeb5ec7ed, 0x9a23ba4d, 0x0240d1e8, 0xbb86380e, 0xe2fa42e4, 0xe9d844ec, 0xb2322d42,
			0x471ada37, 0xccc33f2d, 0xdee391c8, 0x2ffe642d, 0xc4eecb46, 0x651fd86f, 0xb328c142, 0xf42487bf,
			0x7af9e465, 0xa0e19dd5, 0x5aa593fc, 0xf132a513, 0x0d73b06c, 0x0541a300, 0x46d1b40c, 0xe15a10da,
			0x25374c77, 0x686446da, 0x2410637e, 0x063c6be5, 0x011a5d03, 0xce833a77, 0x009cc0b4, 0x30955ba4,
			0xbb54ad5c, 0x139c3659, 0x83aa86ff, 0x1a4a4f27, 0x7fd6aa97, 0x0e11a95e, 0x5911c1c0, 0x85ab3b9f,
			0xb0cca809, 0xe8e6f561, 0x09241902, 0x3a2f888d, 0x9586740a, 0x08676436, 0x0c2e56b1, 0x986ca804,
			0x6205ce46, 0xf0bf77ce, 0xa04c53df, 0xc0087a05, 0xf1384e6a, 0xec19c9a7, 0x9bec03ce, 0x15818b08,
			0xd14fa316, 0x7a1c4a0b, 0x7180c3fe, 0x10ecfec9, 0x17e98de0, 0x2aa0cee2, 0xcb7eb41e, 0x5fc918bc,
			0x62585ec9, 0x54ea4e81, 0xfd2c0592, 0x6cee940b, 0xfab970e1, 0xbf64a2db, 0x3d1f7d25, 0x1b5287a1,
			0x12c490b5, 0xa717f37b, 0x65933227, 0xcd20cc3b, 0x792debf6, 0x86a9e245, 0x479c3f40, 0x038a81a6,
			0xc205a42b, 0xd1a5eae4, 0xfeabd8ca, 0x4f6c2237, 0x2bb78162, 0x1c5250ae, 0x11b6b22b, 0x31ffd2e6,
			0x9c8e6c54, 0xb8b77932, 0x473757a5, 0x8bf878d5, 0xa01447ec, 0x77467503, 0x22d28c1c, 0x0fd9843b,
			0x8fe2ab2b, 0x5a03ec89, 0x2a96f9f8, 0x91e68729, 0xe0222031, 0x28afc1ff, 0xbb7a9e98, 0xa27e422f,
			0xb1e63a3a, 0xe8c16433, 0xed8a7862, 0x702d8a00, 0x6851bc45, 0x4979e7b3, 0x0fb37065, 0x81204bb1,
			0xdc67682b, 0x5f3a6d39, 0x35525eb0, 0x2c761e98, 0x2e239140, 0x2078d0c7, 0x87e7b460, 0x6b511540,
			0x1137ab69, 0x149ddff6, 0x1d11ac61, 0x82849dff, 0x0c238d2c, 0xc38fd4b0, 0x0ee0579e, 0x9fc7f52d,
			0xdb51904c, 0xf2f5f45d, 0x26952681, 0x4540a438, 0x7e632e10, 0x64bb3bfc, 0xce0cb44d, 0x2ea6cc1c,
			0x7f100bc8, 0xca44dc3c, 0xf5de76b8, 0xcafadb5d, 0xad078ef2, 0x9eca19b8, 0xd3a0e45c, 0xd1ad3adb,
			0x1c3a1c3a, 0xbe6a55b6, 0xf3f34e95, 0x05895997, 0x1efe5270, 0x0128e78c, 0x6fd7f10f, 0x16ebdc8a,
			0xabff7d5f, 0x947be793, 0x14b4a65f, 0x59a8f820, 0xd078f7b6, 0xd676e926, 0xc3b987f6, 0x59b48aab,
			0xbe75ccb5, 0x25aa6d7d, 0xa3d8c6e7, 0x7e10841f, 0x4363bb32, 0x7960b722, 0xef27c15e, 0xab5670e3,
			0x41359008, 0x1e831ffe, 0x443e4a4e, 0x198d89a7, 0xa5ecb06e, 0x354e1d64, 0xcad23f6c, 0xf9f26348,
			0x797f1de6, 0xfce2865b, 0xeed7e05e, 0xb11c17f0, 0xe30fa046, 0xbc060cde, 0xbf0b0fea, 0x8bf122db,
			0x03476e36, 0x91bdffc7, 0x4090878e, 0xe189ad52, 0x211fd5d4, 0xa97fb663, 0x218b0425, 0xdabc322c,
			0xa81a7654, 0xbf89981a, 0xa2395b8e, 0xb6b3047a, 0x4c867d52, 0x6f433edd, 0x8947e3ca, 0x44514e09,
			0x3559bfe8, 0x54894ade, 0x57046f1d, 0x531bc79a, 0xa849e51b, 0xe15739df, 0x3e819e4b, 0x8cdadb0c,
			0x7d90c21e, 0x3b8e760e, 0x8840a361, 0x17234624, 0x6068d636, 0x250315fd, 0x294715ac, 0xdd350d52,
			0xba88e43b, 0x9767d3c6, 0xcd63a16d, 0xe18e8a4f, 0xf6893228, 0xa11d217b, 0x4160d0a1, 0x3dd1ca14,
			0x1186c028, 0x37482dda, 0xbf5981c6, 0x02a87561, 0x117d3e08, 0xd5d51268, 0x66394901, 0xb0576fd1,
			0xe1a5e587, 0xdc023111, 0x4d9d1471, 0x9bace397, 0x99e9290d, 0xef8fa812, 0x48aea8f1, 0xab619edb,
			0x184ff42b, 0x945dee23, 0x2aea7b28, 0x895e85e6, 0xc46b4e3b, 0x3bd9099a, 0x476c91ae, 0xf2618fa0,
			0xd2a602f7, 0x4752c01c, 0x47dfee89, 0x688a2dbd, 0x6239e3ea, 0x4c34890c, 0xe012af73, 0x7f2b60cb,
			0x9c72f1c4, 0xe43c7f07, 0x6dc4a3ca, 0x1d46ac2d, 0x0b3a2262, 0x1509fd6d, 0x7954db76, 0xa912a40a,
			0x13d2878d, 0x32bb5731, 0xefdcb405, 0x65b25c34, 0xf0df7ed0, 0xb840b726, 0xf5c01f7d, 0xab51220b,
			0x6dc053bf, 0x6a1eb72c, 0x4f410423, 0x03cc492f, 0x59b83676, 0x07b920d2, 0x96695f07, 0xe7f547bb,
			0xa5be79b4, 0x14444700, 0xb2b37e0b, 0xf07110f4, 0xf31bf275, 0x72f4f88e, 0x0782543e, 0x44d8fd52,
			0xd99fdb8c, 0x3ae2b87e, 0xb32d9d26, 0x29ec5d1a, 0xf97b0bae, 0x784e0a9a, 0x292c58e5, 0x97e7cea9,
			0x14c0f5b9, 0x724374cb, 0xb9d2ed45, 0x017fa183, 0x09a0a65e, 0x4f667621, 0x6788703d, 0x81fc60f7,
			0x435b60e1, 0x80a7edbd, 0xcc117154, 0xc2e583a5, 0xf41d443a, 0x4e247a14, 0x5bdd09c3, 0x6ee02030,
			0x75ebb75d, 0x8b71392f, 0x57afe16f, 0x4e69a80a, 0x81a03c23, 0xeb405f3f, 0x460bba8e, 0xbbc18a2f,
			0x3be942ae, 0xc77555b4, 0x5021a3db, 0xbe2cbd17, 0x569d31ca, 0xbc9b8f89, 0x7ab59aa2, 0x2d8adb82,
			0x8fe22f6c, 0x3572baa3, 0xacc893d2, 0xb04f2cc5, 0x8b2d82c6, 0x0ad5fdbe, 0xb6451f0f, 0x3ceae8b2,
			0xdd0247de, 0x40efdc82, 0x1d7b30f6, 0x1a1f4530, 0x236477b6, 0x5908fdc4, 0xaf0a4da5, 0x027105d9,
			0xdf0c523e, 0xa1ef2e5a, 0x91a91e10, 0x12b3b4cf, 0xfe231765, 0xb36f0351, 0xc53eb4be, 0xa3d0f887,
			0xbcb0a457, 0xb0e23613, 0x9b06877e, 0x7c328ae4, 0x297ccbe9, 0x6039f44c, 0x0da62e68, 0x6561296f,
			0x5177ba6c, 0x974905b5, 0xf09f3a73, 0x0a138ab2, 0xddd05ddf, 0x864d1715, 0x54f6bcbf, 0xf16160be,
			0x8324bc87, 0x4b309e52, 0x5a075159, 0x75d853a1, 0x1ffe8823, 0x7d5aba68, 0x939da5be, 0x55b6943d,
			0xc0a38863, 0x8ea5da9c, 0x863d19d5, 0x2628b1e2, 0x229a8c32, 0x181b1a83, 0xbd720e75, 0xda96a53a,
			0x4d84a60e, 0x0c8d3ec5, 0xb55c7863, 0xa34204d4, 0x6b641c3f, 0xf4d511f8, 0xe2b78eee, 0xf30b69b3,
			0x94430d87, 0xe0d602b8, 0x3d105b65, 0xf795fe4b, 0xa002d249, 0x45684f4f, 0xc0c507d6, 0xa3b37f39,
			0xccb009c2, 0x5ea2cf4f, 0x00e1cc2b, 0x7fa52609, 0x55fa4414, 0xaca0aeb4, 0xe3dd76b6, 0x040085e0,
			0x26cc74ae, 0x043cca44, 0x04cfb49d, 0x7be45f2a, 0x477c9973, 0x26a862de, 0x01fa5602, 0x4d283ff3,
			0xd600f1f7, 0x5efc4182, 0x36e40d6e, 0xa5c4703b, 0xd55652ac, 0x37118149, 0xc9f4cd25, 0x00000000,
		},
		{
			0x538c4b20, 0x481ee744, 0xf138383b, 0x489c8860, 0x9d6a7aaa, 0x46dd8ef4, 0x977c7a66, 0x4266933e,
			0xc81fbf39, 0xbf436b26, 0x6f08f1d9, 0xe1866ebc, 0xa84ee24c, 0x2580113e, 0xb1de893c, 0x20224f04,
			0x4c85f7ed, 0x995881e3, 0x9c07ac50, 0xde2808a4, 0x4e68bded, 0x0551778d, 0x09b85101, 0x8f3a7907,
			0x6ae87106, 0x9154788f, 0x3c2c365b, 0xc851bb3b, 0xda052677, 0x1d61ca93, 0x80e62832, 0x93117f8a,
			0x6fb0f8f9, 0x6805c678, 0x5dafc68e, 0x05a70699, 0xa5d694a9, 0x24c1b910, 0x833d9d0c, 0xf083056f,
			0xd663880c, 0xc901ef9c, 0x646912a8, 0x4fa0869a, 0x0d415b9b, 0xfb155368, 0xf32ad016, 0xc1930cf3,
			0x2eeb49e6, 0x6935e622, 0x42212b75, 0x9c77b7bf, 0x8288eea0, 0xcfa8296b, 0xaa15264a, 0xe90ed6e7,
			0x8a914520, 0x61def3f9, 0xb464d3dd, 0x42e6b638, 0xfdb9c4fc, 0xa2d6b37c, 0x7ecbfc93, 0x1d4e0cf9,
			0xf9c901b0, 0x65c5a22a, 0x65e9a2c6, 0x5bdc0406, 0x2484285e, 0xb544a516, 0x02a750bb, 0x683069d0,
			0x44162a42, 0x1f41b08b, 0x9bc66372, 0xd0cfc178, 0xa270d38a, 0xfef83dcf, 0xa2bb3cfc, 0xb5481f04,
			0xb73c539e, 0x47df9415, 0xec423046, 0xa156db32, 0x9e41c009, 0xe4dfc419, 0x1ed1ef81, 0x8f1c8fcc,
			0x961d634c, 0x7f859b84, 0x1fd1caa8, 0xb44513c1, 0xe619e5a4, 0x6e3d3093, 0xad03f46b, 0x2ef7e2b6,
			0xba5aa01e, 0x7c621d94, 0x59675ccd, 0x83f79758, 0x3e860ce4, 0x5ceb2c91, 0x3e21f51f, 0xb85c72f0,
			0xf3fea002, 0x4bfa95b2, 0x238a0993, 0xbc958e42, 0x741ab1cc, 0x9402f364, 0x389243a8, 0x8b90eae9,
			0xb4130738, 0xb2ebf2c9, 0xb3ee4a8a, 0x91692c3f, 0x6bcb739f, 0x66936b6c, 0xb04f4195, 0x2aedf5ad,
			0xb388e70d, 0xd60a5916, 0x860ea2a3, 0xb81ddb2c, 0xae75c116, 0x84635865, 0x3c0665f1, 0x09f0a46e,
			0x1610419e, 0xa044e493, 0xf7eda451, 0xec2c6128, 0xa1759c1f, 0x1eb27cf0, 0xd5011936, 0xa3cd2378,
			0xd1f2f3a3, 0x01519b0a, 0x0eb791c2, 0xdf930810, 0xc649abf1, 0x92b41f4b, 0x118f264b, 0x788b09cd,
			0x3ae4a04b, 0x950e11b3, 0xa4357201, 0xc6ba90ab, 0x3c8b97fe, 0xcbae049c, 0xecbe9c68, 0x54dd420d,
			0x836c8e72, 0xb74a3da7, 0xfc27e8c5, 0x2ce5be86, 0x3f6dcfaf, 0xa2685654, 0xeeffb7ec, 0x480d90b2,
			0x6b5664e8, 0xd3ee8869, 0x7c5547be, 0x8dd5f85c, 0xa24f2dc0, 0x73228ec1, 0xdfd38876, 0x27a9c83a,
			0x3521a3ed, 0xf1e2fc13, 0x141665e6, 0x0b9fef8e, 0x70c74aa5, 0x25596ff1, 0x470a12f0, 0x74c95c6b,
			0xa34b8956, 0x9955fc2b, 0x854c5252, 0xa4bbd7f2, 0xbdb4b9aa, 0x12293fed, 0xe86ca8dc, 0xbc8bbe2f,
			0x044d784e, 0x88b09c03, 0x70a0afd8, 0xdc767ac6, 0x558497cf, 0x2db7991d, 0xe025996f, 0x4fa413ac,
			0x9a79b656, 0x7aea6e5f, 0x84a73d92, 0x2e20fcda, 0xee68e7c1, 0xd666b18e, 0x644550d0, 0xcb8741b0,
			0x9dc9ad1a, 0xeec3bb38, 0xfa9cb3f3, 0xd72d44ba, 0x793ac040, 0x59ca49b5, 0xf460f279, 0x97c59e0b,
			0xc949d0b8, 0x5ef48fdd, 0xc9e2ac84, 0xbcee9bd3, 0x891ec145, 0x549a3e3a, 0xa64ea633, 0x57530417,
			0x330ff363, 0x77635e61, 0x7bae75b8, 0x13cf28cd, 0xb57fafa0, 0x5e910662, 0x0eac1e91, 0x960ed41f,
			0xa3755269, 0x6a777efe, 0xf70357ad, 0xeca34bca, 0xa167d2a7, 0xaac35747, 0x23c8cf44, 0x5e70792c,
			0xa76c83fa, 0xc5de3275, 0xa65154d7, 0x322cf400, 0xb77aff25, 0xe841dfe4, 0x784394d1, 0x67e6bb00,
			0xc9155793, 0xd78423ea, 0x1c1cd8d5, 0xce2b834a, 0xa224074d, 0x2dee8735, 0x1b2ad3d8, 0x8090c735,
			0x80f4ec04, 0x701a5f67, 0x9587304f, 0x307642a3, 0x7d660715, 0x91fe7e5b, 0xa9692bbb, 0x963b0c25,
			0x05234c8c, 0x97f9b18a, 0x5f2fa84e, 0x93113ee6, 0x092653ef, 0xb9841fee, 0x4fffef56, 0xe174aa66,
			0x7831d439, 0xd6a09c6b, 0x6f55c663, 0x14f78f3b, 0x2afb88f9, 0xed6c8139, 0x1571ff10, 0x622206e3,
			0x9df1a553, 0xfb5e6c61, 0x53c9771c, 0xa2f18c6a, 0xd8e15c9e, 0xa55dbf30, 0x44a48a5d, 0x1dabce84,
			0x3482ab7f, 0x1436b580, 0xb35034c5, 0x0e1aac5d, 0x73e260da, 0x1657c16a, 0x23ff74c0, 0xfeb4f5c8,
			0xe8e43f15, 0xc9ef92ff, 0xc2837b59, 0x63201a6a, 0x8c95779b, 0x319abfc2, 0xf4c14700, 0x49fb4ae3,
			0xb961bc38, 0xe1f9e858, 0x63e82229, 0x2bb67245, 0x73b6a7ce, 0xad7ea43d, 0xab42a792, 0x3abc9d90,
			0x1fe66f46, 0xa6721c10, 0xe6d349fc, 0x668fd142, 0x776b42aa, 0xbf215e8d, 0xeb5208c4, 0xe8345393,
			0xf39d95fb, 0x2953f690, 0x438ff282, 0x2a165c2a, 0x00af2769, 0x66d1c575, 0xcb7df36a, 0xde52dff4,
			0x7673c828, 0x158c0442, 0xdf2f06b3, 0x62bcc937, 0x36061ef0, 0xea3fb0a4, 0x6d27a9bc, 0xfcb6030d,
			0x2a3b3b6d, 0xe82d0e36, 0x1ce7676f, 0xaff72adb, 0xcfb6ba10, 0x935c3773, 0xfebd69c3, 0x96753810,
			0x9c8fd79f, 0x68c9f23d, 0x3af82235, 0xd2f24024, 0x81a550fc, 0xb3f4a188, 0x2c4e42e0, 0xaeb76cdb,
			0x4035d769, 0xd5f61d65, 0x80cc2692, 0xc49007f5, 0xbe6aae6c, 0x555fe5e1, 0xff705fde, 0x23c5ecda,
			0xa3def274, 0xb45fa7a0, 0xd71b55dd, 0x3564141d, 0x2604ed7a, 0xe99ca30d, 0x6b8e14eb, 0x6633ee05,
			0x31f71f95, 0xc45d34fb, 0xb9acf5e5, 0x5a744027, 0xccadc60f, 0xc3ec914d, 0x9e85dbaf, 0xd05c511f,
			0xa8ca4591, 0xb1f2eed4, 0xfeee8207, 0x88057eed, 0xfa967685, 0x1c154043, 0xe5046541, 0x4b87545c,
			0x9527b614, 0xb583a1fc, 0x19ff6b9d, 0xbaddecb2, 0xdc1d1463, 0xbacedbda, 0xd76929f9, 0xe4f97822,
			0xb90203ce, 0x48cb7123, 0xd71e9a33, 0xf900ec87, 0x79a302e9, 0xb0f20a31, 0xa0f7fd63, 0xea5c9737,
			0x9d325e60, 0x71e54a7b, 0x58449c78, 0xa7a88f27, 0x7e73ad08, 0x7eb9673a, 0x77bd22ea, 0x7eb6873c,
			0xe3bda44f, 0x0968acb7, 0xf7d3dafd, 0xca8083f6, 0xa0e11c04, 0x2caf4f0a, 0x0cb1dc71, 0x4a0d2b0c,
			0x8eaf8158, 0xa001bcfe, 0x6fc47b71, 0xa0af2ff6, 0x60ee00e0, 0x01eeb43a, 0x1ef3f63d, 0xd2d60a08,
			0x0f3b469e, 0x7c145a5c, 0xbcc6b609, 0x0c319044, 0xae18f60b, 0x7d77b0d6, 0x64a99a2c, 0x0fd7bbec,
			0x5a17b341, 0xd4f00484, 0x2dce80b2, 0x1ee7adf4, 0x3d263d55, 0xc57c210c, 0x3dec0bcb, 0x69b52b17,
			0x1f71065b, 0x7f75fef2, 0x8189e1e1, 0x7dc948ab, 0x517857c5, 0xfd6e3c26, 0x7762a50b, 0x832b23e0,
			0x89b84d30, 0x17e48917, 0xe35e5c0b, 0x11280b7d, 0x7d29ad03, 0x438f8dba, 0x94717143, 0xac82142a,
			0x9373e253, 0xdecfc80a, 0x05e736e8, 0x1adc4a85, 0x917659c1, 0xc3af1f67, 0x67817206, 0x30eba3f2,
			0x9f04c808, 0xf2218103, 0x24e4f9bb, 0x9ed20376, 0x0ca18f1b, 0x424dc46a, 0xd0225909, 0x2c31e3c1,
			0xe8cbe4f8, 0x5d4ac4a8, 0xb5e598e8, 0x393b8676, 0x9a8a4c23, 0xbd1536d4, 0xdb5ec454, 0x5adc3f78,
			0x4658a06b, 0x6febe8a4, 0x0fe03fc8, 0xb7bca67c, 0xa1a8b67e, 0x33f48a2c, 0x040a8171, 0xbacca08e,
			0x2608de89, 0x22a4faff, 0x3a7e6747, 0x465650fe, 0x31a164f1, 0xcb28b466, 0x059dfa57, 0x56fc59bf,
			0x94f4c653, 0x344321b1, 0xec81d850, 0xe4528ba6, 0x22f85340, 0xc83475b7, 0x7c083283, 0x60c314fa,
			0xe548f67d, 0x0be27e79, 0xee0278d8, 0xebf2d133, 0x99aeaca0, 0x9b34b22b, 0x236c975a, 0x7da7d9c7,
			0x784ee1f8, 0x280067f9, 0x361dd2dd, 0x977305e2, 0xf1e2d02a, 0xb0165ed1, 0x516a006e, 0x59714dd6,
			0xaf9e1457, 0x7926f94e, 0x0ea2d281, 0x88df99e5, 0xdbc452b3, 0xa2346e10, 0x572c6ada, 0x6d353e13,
			0x73165f99, 0x3aa33536, 0x13354e77, 0x5e9c0c3f, 0x51a6e703, 0x1b3a4ec2, 0xf8ee5a15, 0x4393521b,
			0xcbd59943, 0x2480cd80, 0x367d8216, 0xdcd537fc, 0x8eace73d, 0xb33b22e3, 0x382aa546, 0xd0fa7430,
			0x18ba3086, 0xd8359197, 0x96266e33, 0x965b0499, 0x29933f56, 0xfa6a0979, 0xe7cbfc06, 0x614cff5c,
			0xd5b5bb55, 0x8e015228, 0x6f4fdaaa, 0x445ee9a8, 0x616809c6, 0xeb4ce0c3, 0xf054b8e9, 0x5117a489,
			0x196c7c09, 0x9e926d16, 0x559de483, 0x8336dee8, 0xaa6b315b, 0x1858bad2, 0xbe8743ae, 0x98cb2968,
			0xe3a8fc9a, 0x4ed325b7, 0x92141551, 0xbb55ebee, 0xfc54644e, 0x1bd9e664, 0xe5c538d0, 0x2e5e6ae3,
			0x1da41830, 0x3e5e2ae9, 0x6b7c3596, 0xcf4f7852, 0x8028f364, 0xa6788c0f, 0xf9e74ad6, 0x3d36ad6c,
			0xb9836cae, 0x41019e3c, 0x2436ca29, 0xbd7c6bed, 0x0027be2f, 0x0d0261c2, 0xf50e1a38, 0xd5b0bf20,
			0x647afec8, 0x7d869f1b, 0x21e89529, 0x4678f514, 0xbe51204c, 0x9b804f52, 0x0c1e6788, 0x8f756aff,
			0xf47ab651, 0xd132ce55, 0xf46169a7, 0xb544f496, 0x0420fc71, 0xdc7e30b0, 0xedce4eee, 0xe7d01950,
			0x5add6ab7, 0x761ad054, 0x4e974570, 0x02ed94df, 0xdb77bdd2, 0x4260e814, 0x727fdd22, 0x80c2a284,
			0x8c7a4ccb, 0xbd83941b, 0x6f3de15d, 0xd7705a67, 0xd263b36d, 0xd9473e03, 0xb4ea08d1, 0x8ce3d0f4,
			0x45e05e7e, 0x32edb974, 0xc0b0c219, 0x1bd0a191, 0x2b44532d, 0xcc106f83, 0x951d0bc9, 0x00000001,
		},
		{
			0xfae0eee4, 0xa4c1eb96, 0x370c76f5, 0xf94b7c14, 0x37ca895e, 0x44d2e038, 0xa02a4e9a, 0x1b64bf41,
			0x6ed61d4d, 0x19237b58, 0xe0116ab9, 0x08bb13fb, 0xdf5aa95f, 0x10d4216d, 0xabdafef0, 0xd2ea15d9,
			0xaf227df0, 0xb1e847ae, 0x447b41bf, 0xa49d6222, 0xf7dd078d, 0x4c620a03, 0xae9a52b2, 0x317a8988,
			0x268e070f, 0x5f07b956, 0xb6f0f807, 0x78bdb094, 0x19cbaf3d, 0xb8892f14, 0x0b7ceb84, 0x47962c22,
			0xc7a6177e, 0x4ad912f6, 0x8c675c9d, 0x77045bc6, 0x9dfd125f, 0x88ae4370, 0xa8c4ce37, 0x24259ea3,
			0x7fa18f6b, 0x9be58414, 0xe77a2beb, 0x9b929f45, 0x1d524b07, 0x6410ea88, 0x3573b04a, 0x3997286d,
			0x58b057e6, 0xb1bac74c, 0xcfffad94, 0xafc76240, 0xd8e47e95, 0x70936fd3, 0xac983813, 0x189a85ff,
			0x4d354bd9, 0xe7000246, 0x600fc41a, 0x58e8e02b, 0x12e1b338, 0x925cc9cf, 0x29f1c6d6, 0x9e949ad3,
			0xe30e8169, 0x9f8df781, 0x38cce829, 0xd9ae2c5d, 0xc42798e9, 0x6c8e519f, 0x7298f720, 0xd540d004,
			0x0a87fcb0, 0x65ffcc54, 0xf20572a8, 0x3d8ace53, 0xc96fa7b6, 0x38bcb1f2, 0xdd98286f, 0x6697c9a5,
			0x5f8b7882, 0x2c3fa1f6, 0xbb5e21ca, 0xf50afb08, 0x4738c6ed, 0xfbf600e9, 0xa5156888, 0x2b4275c8,
			0x704b2104, 0x8be31196, 0x7a5bb62f, 0xd6f2487c, 0x9d3d39fd, 0x58dc2448, 0x916fb287, 0x27611f8b,
			0x23f7bfb3, 0x89df0988, 0xe3c79570, 0xe6d38bfb, 0xcd381a6f, 0xeed7e4aa, 0xf416b16e, 0x6d2c16d1,
			0x5edfe68f, 0xb1318a78, 0x6568df07, 0x22ba1080, 0xb82c8b84, 0x5cf7e558, 0x4931f7a7, 0xf2075275,
			0x0a37db38, 0x2bd0aaa0, 0xf082b42d, 0xb658f911, 0x2314ed60, 0xdb93832a, 0xe7322f7c, 0xbd112d49,
			0x27af6304, 0xff1a0a4c, 0xf93f89f7, 0xc6386201, 0x0722d6af, 0x79f71a44, 0x43b42d39, 0x7e5f8691,
			0xf8216253, 0xdef93031, 0xd6f6fa63, 0x4540f827, 0xda9059ed, 0x4610de7b, 0x60b26493, 0x00bd25b7,
			0xa759f3cb, 0xd6441be9, 0x7da27cd7, 0x2d9e7938, 0x8aba63ae, 0x12e99a18, 0xf6cdbab0, 0x98bd5f61,
			0x7728aefe, 0xf2277166, 0x37add109, 0xf21dfb73, 0x0749219e, 0xc0e21f00, 0xb01c8f57, 0xd18a807b,
			0x7956564c, 0x2328a6eb, 0x016b38d7, 0xe6b88069, 0x2f74fb29, 0x4cc1ead8, 0x8e6a8a69, 0x5a1e8e41,
			0x4b5cb965, 0x9115c4e8, 0xcb8f4371, 0x06428ba4, 0x3c814c4e, 0xe8853e2f, 0xf34b67e2, 0x8642c58c,
			0xecec03b5, 0x17ebfc87, 0xac60095e, 0x55176f1e, 0x6a2175e0, 0x2fa07db4, 0xd25c06c1, 0xb8a4ca98,
			0xa6f3efd6, 0x68289656, 0x002e4d3c, 0x79df8b8a, 0x47ae132b, 0x2039a6e6, 0xf20e41f5, 0xf53ecc48,
			0xea8b27e7, 0x87aa609b, 0xc5f0b4fd, 0x789b95e3, 0x4f036b1b, 0xd821f217, 0x3410360a, 0xa3f1ff30,
			0xa8305180, 0xb3b66922, 0x69cd915c, 0x84288693, 0x95e15fa7, 0xe3448d1c, 0x990fa654, 0xae05a08e,
			0xf973abc4, 0x3736c657, 0xda731ff1, 0x2234beab, 0xd2b580e4, 0xaae9e47b, 0xfb7d0386, 0xf0cf3530,
			0x652c3400, 0xaac59fb6, 0xb5db8f9f, 0x739a5b75, 0x13842403, 0xe835686f, 0x9cab65b1, 0xc579f44d,
			0x1dca27c6, 0x0601a500, 0x5d94376a, 0x4a779c09, 0x827277aa, 0x648c27c2, 0xba82f17a, 0x9dbdfcf4,
			0xea584aea, 0xfaeea9ca, 0x5cf4456c, 0xb997b070, 0x85221114, 0xe956c348, 0xe17d5a06, 0x98b6147e,
			0x39141455, 0xd03f83ea, 0xc90e0489, 0xcfd79c93, 0xe9c5563f, 0xee24f396, 0x13856a09, 0xe1d93084,
			0x3b1a0b23, 0x1b8fb8f9, 0x3420596f, 0x1fc581d1, 0xc3592edf, 0xfd158f6f, 0xa01be374, 0xc47a0021,
			0xf4865cb2, 0xa97f0158, 0x78c8076f, 0x6aa89c43, 0x53ce206b, 0xaff0cd94, 0x801cd530, 0x4b1a8fca,
			0x731d81dd, 0xea876b4b, 0xca6f0186, 0xe7877151, 0xe493fc4a, 0x61ddea4e, 0x8c434280, 0xb5051dc0,
			0x567d72fe, 0x69818cdd, 0xb2ef8914, 0x5d2e4ed0, 0x1129010f, 0x5adc82b7, 0xf1797543, 0x5e822b38,
			0xd78bbdc4, 0x89ec1b1e, 0x1772c325, 0xded7fa24, 0x19eb39d3, 0x440aeb90, 0x3eb39e53, 0x2b31f51c,
			0xd7cac5cf, 0x6ab02170, 0x463a6e44, 0x2282a8b2, 0x7e2264f0, 0x5dccc754, 0xfc2ceb96, 0xf18c38c4,
			0x8812a86e, 0xd79a7b6d, 0xea6085ef, 0xb692b34d, 0xf79a2def, 0x9efe8f7d, 0xeaef2f80, 0x16e76ece,
			0x7512dd25, 0xb01acba5, 0x6f46e58d, 0x7a1f980a, 0x6526e65e, 0x08a8b74d, 0x6cfd17c4, 0x16eba629,
			0x74c7fb85, 0x283ea074, 0xd88fb4ba, 0x029b26cd, 0x6b9f9990, 0x591664ed, 0x823e63ac, 0x18c1490a,
			0x9852f4ac, 0xefdcf0ad, 0x486b44fa, 0xb5aa49fc, 0xc7ff0b3a, 0x19e00af3, 0x6c49aaa0, 0x06e3268a,
			0xa79439ec, 0x86318889, 0x0451c7c8, 0x7277e637, 0xa9792b13, 0xf197f760, 0xba7a88e0, 0x4c0e707d,
			0xd4bef1d2, 0x72016b50, 0xa20eb8d0, 0xb04e1776, 0x568f67e9, 0x7912d035, 0x179e872e, 0xc8ef379f,
			0x03fa8391, 0x21e3b7e6, 0xda023bc3, 0x17143b84, 0x41550822, 0x727c33f6, 0x09088ce6, 0xedbda162,
			0x4da6dd68, 0x3f3adc51, 0xe80d0961, 0x63d6f351, 0x66aeec34, 0x28f21af5, 0x0dbba16d, 0xb1280cdd,
			0x744fc0fa, 0x48f4bc41, 0x124c0469, 0x6140ed37, 0xa31b8e31, 0xb262c54e, 0xbb6e70b4, 0xc136ca3c,
			0x19d8a86f, 0xf5ff8d9f, 0x88beb4e1, 0xd7113219, 0x8fa88919, 0x33f5b9fc, 0xe545ff82, 0x9dea52ce,
			0x37145805, 0x058901a4, 0x5109a2a2, 0x269c102a, 0xaada971a, 0x1b56009d, 0x5ad2843c, 0x066b0291,
			0x3d505c9d, 0xc3e19896, 0xacd6a2ef, 0x0578f4ef, 0x4b2be708, 0x27de342c, 0x8082bb33, 0xccd0987c,
			0xa198f070, 0x2300ed06, 0x0603521a, 0xd24341c7, 0x6c13f28d, 0x65bf6a95, 0x336a6681, 0x82a78c31,
			0x8972c13d, 0xa717c2e2, 0x838058db, 0x43fa11b9, 0xff270721, 0xc5bb8678, 0x88f7383e, 0x1733b9fd,
			0x6bd3ae67, 0xe2df325d, 0x211e6347, 0x3760c50a, 0xf65463bd, 0xf9e2927d, 0x15e9ba3a, 0xdf67178d,
			0x86d208b3, 0x0d0fd2c3, 0xef7fe6fb, 0xa536e0fa, 0xbe726f10, 0xaf2eb636, 0x2403239f, 0xf3c78834,
			0x8a2e5eb0, 0x07c0b956, 0x80b7737d, 0x19bca22f, 0x7525a4a2, 0x187df3e2, 0xac8e1daf, 0xe2d08801,
			0x8557cace, 0x50c5c759, 0x5ad1fa54, 0x66f4dc0c, 0x14aa865a, 0xe0400ad6, 0x101ce512, 0x721544f4,
			0xdf78f28f, 0x42a187ee, 0xe63b6c04, 0x55be2abc, 0x92fe5a8f, 0xbc7dbca2, 0x2c8e868f, 0x9ade3589,
			0x65cec431, 0xb242bcd8, 0xa060f376, 0x2ed00214, 0x8b82a39c, 0xdb08fdb0, 0x9dc6dd0a, 0xe9aa213a,
			0xade68b61, 0x3c58dd13, 0xe65c1195, 0xa4d4d3ee, 0xc502ecfd, 0x6edf42e9, 0x14a2d86d, 0xe84b5b1a,
			0xc4604707, 0x81cb2247, 0xe9fa9ca9, 0xc8110c13, 0xff883aef, 0xfb9728d6, 0xbe9f02fe, 0x38c7f16c,
			0x8cd58cd3, 0xd2c46227, 0xedf03834, 0xa12bd389, 0xe97cfaeb, 0x838b2f6b, 0xb74abfe6, 0x5f324642,
			0xacf28f83, 0xda6fc80d, 0x8c87b10c, 0x46a98f98, 0xfeca6a5c, 0x902855f6, 0x5b69cb14, 0x471c1e8e,
			0x67971c69, 0x865ffe2a, 0x8f2c01e7, 0x9124ceea, 0xbf3912fa, 0xa2ca5be2, 0x0e852c72, 0x77ae6b89,
			0x14a68faf, 0x945fce0a, 0x71d51b2f, 0xa6d7f0b4, 0xa75781f6, 0x9e1a4ab9, 0xf55b3327, 0xa5e2ede4,
			0xa7d7f7d5, 0x1a361a70, 0x3b6cfef3, 0xa0c14b22, 0xfeef034a, 0xe7f8da66, 0x66237e87, 0xc7803d6f,
			0x78acb66b, 0x71cc5cc0, 0xf5c1c07a, 0x493781d1, 0xeec98aa3, 0x2112a91f, 0x97945355, 0x7535e74a,
			0x7aea6373, 0x1d71bed0, 0x89310611, 0xa0b5c7be, 0xcfea1288, 0xc3752b98, 0xf2fe1335, 0x0687c8f5,
			0x9d62b1bb, 0x44f2bda3, 0xa4569847, 0xb13e2973, 0xf9394043, 0x1a438415, 0x0adc87a6, 0x077f1f4a,
			0x0aedae93, 0x2684d5a2, 0x0f419758, 0xad93e5f3, 0x15cb765b, 0x601968c4, 0x631d0663, 0x7d72db27,
			0xad14d787, 0x797e366d, 0x049f504c, 0x73bcb242, 0x2a3401dd, 0x865a8591, 0x121f01a5, 0x8078b2d1,
			0xaafef680, 0x0e522fd0, 0x9a183ca3, 0x9bb92fb9, 0x090cdf6d, 0x4bb3b456, 0xd4db522a, 0xd3a15464,
			0x1f5150b4, 0x767d6f60, 0x6b789816, 0xa324ca56, 0x34343c37, 0x9248dfea, 0x98558ec2, 0x59a5b769,
			0xa74f3324, 0xfdc23fc0, 0xbbdbe34c, 0x7af58e7e, 0xaf1ba2db, 0xb673af00, 0xce45d5ce, 0x8fdf2ca3,
			0xcd5725d5, 0x307938d5, 0xbe0a4a46, 0x4949b09e, 0x064be47a, 0xeebc77bb, 0x210b2ccd, 0xe44827fa,
			0x7d1c5f59, 0x66f7e04a, 0x43bd57ab, 0x0e2f0cdf, 0x271ee950, 0x53df99e1, 0x4e3e2577, 0x2667eee3,
			0xfeed0d9f, 0x13afe680, 0xf80879d8, 0xd038d00c, 0x75326acc, 0x78e27e34, 0x66a55a1a, 0xd574a311,
			0x63194b3c, 0xbe9b3d8c, 0x496a07b4, 0x343a5826, 0xdf0b9c0a, 0x8b91cf58, 0x02deba6e, 0x2cd3d59a,
			0xf3161742, 0x8eb6ea21, 0x81f69202, 0x2e324ace, 0x18a239b8, 0x5d808b51, 0xd999c93a, 0x752fd059,
			0x14939e56, 0x16d87ffc, 0xa69d3877, 0xe67d9aa5, 0x03a98702, 0x7578a882, 0x5920805c, 0xdaa2daed,
			0x73c5cb9b, 0x8c95d941, 0x9ed60ff4, 0xa71d8091, 0x7eff7662, 0xf28cb6f0, 0x39cb8bd7, 0x00000000,
		},
		{
			0xba87bdb2, 0xeb0e163f, 0x58809230, 0x69c04975, 0x61a21142, 0xd9560ca6, 0x7bb7ebf3, 0x56606261,
			0x92832721, 0x4224a381, 0x5b38b711, 0x96134233, 0x54c430ec, 0xf93be241, 0xe16ce7ec, 0x568f0570,
			0x3dd634bc, 0x2fb474d8, 0x30c88f7a, 0x56da125b, 0x446a9044, 0x3c1ee583, 0xd4d250dc, 0x5266f27e,
			0x166e6ca5, 0x9920519d, 0xa4cabc0d, 0xa48ea040, 0x6c705bc0, 0x2ece4b91, 0x09a4e0c3, 0x6ea82617,
			0x5a6b8241, 0xffc2176c, 0xc77eeea4, 0x29153f8c, 0x2d749614, 0x9c5194cf, 0x8e41e5e5, 0xc02c306d,
			0x89cea240, 0x7b9ddb82, 0xb46bc7cc, 0xc83f8145, 0x3cc37b4a, 0xbdf04acb, 0x1b9b0a50, 0xda78aae6,
			0x689908cf, 0xa97b5b91, 0xca6fb787, 0xde073da1, 0x600cadc9, 0xd3eb1836, 0x14761869, 0x11def157,
			0x64cb2f21, 0x90d1fca6, 0xbb26d4ee, 0x8e4f363a, 0x41cda37e, 0x3d1dbf36, 0xcb44680d, 0xc0dff021,
			0xe906ec9d, 0x50db80ec, 0x2cbb0fcd, 0x5086f9c4, 0x2cf5ca71, 0x75b20af0, 0x168a94ea, 0x6b51e3d4,
			0x3af45777, 0xc2c162db, 0xddad4461, 0x7d1be55a, 0x89b2ef6f, 0xc1b00380, 0x9aa62b92, 0x27d02f7c,
			0x57ca762a, 0x330f30db, 0x031e7d44, 0x23c0a334, 0x38c316a0, 0x2b2fc45d, 0x987ca106, 0x0cc2cf8f,
			0xdbab9cdf, 0xfa45b3eb, 0xa7c038ef, 0xc511ff3c, 0x756b24a8, 0xb933fc68, 0x36fba2de, 0xf2362a78,
			0x87307355, 0x7411e686, 0xc46f6543, 0x30d4225f, 0x991bc1ac, 0x33d13f4a, 0x53cc8a88, 0x7a8809e3,
			0xac9570f0, 0x6aed148c, 0xa4948f54, 0xc6af8e74, 0x6d4d9307, 0x683b050e, 0xdc94697d, 0x5d1e5dfd,
			0x46f12b7b, 0x3b5b5b38, 0xcc87ccae, 0x440e7d15, 0xe61cc990, 0x55d6b1dd, 0x32755502, 0x57be4320,
			0xc63f1b20, 0x66c5a0f0, 0x51c7afc8, 0x612757a6, 0x2b48d733, 0xff16a774, 0x1f180378, 0xb10cdc0f,
			0x45f7fb99, 0xd3d94eba, 0x64b61cc4, 0x88f2df4e, 0x5408d3e1, 0xd89a3f67, 0x18ff0e38, 0x515fe1bf,
			0xe869763c, 0xbaaa23c3, 0xf18d6d8e, 0xf31a54a6, 0x3bef8011, 0x0656366a, 0x646d079f, 0x179eca75,
			0x6fe79df8, 0x1f32fe0e, 0xa7688037, 0xb8355e8b, 0xb3df4bc9, 0x39f680e7, 0x81955c61, 0x6c7e06dc,
			0xa247684a, 0x37487198, 0x3980ec66, 0x343abaf8, 0x9f065a75, 0x10dc847b, 0x92b58ca6, 0x64457bdd,
			0x065d3ca1, 0x1615a4d4, 0x23034f59, 0x56161857, 0x838aa6a3, 0x78e18415, 0xa4bc7627, 0x748dba75,
			0x02e76e14, 0x17f78c05, 0x7f2714ba, 0xa4c58032, 0x804c8fd0, 0x583a6041, 0x15cd6291, 0xd9f5eafb,
			0x3d3415b2, 0x04417373, 0x982f922f, 0xb2167fe2, 0x60db76a6, 0x69ec0fe2, 0x6b601b63, 0x1ed97eba,
			0x31ae6c9e, 0x77279790, 0xcf3b5bab, 0x969cbd81, 0x23d6e228, 0x077ea494, 0x00fadd9b, 0xc9ac29f1,
			0x2249594c, 0x39176049, 0x1f0e3c45, 0x3589d700, 0x965c05c5, 0x55db620b, 0x8892da16, 0xd07a450d,
			0xfa9cdcb5, 0xebedd17d, 0xa509121c, 0x217f6917, 0xf0486970, 0xdee56276, 0xad2aba47, 0xd8f1b70a,
			0x5b836849, 0x780ec7c5, 0xb098efa3, 0xef38688c, 0xe064fae5, 0x10bf4509, 0x12c054ac, 0xa71774dd,
			0x87b45d12, 0xf52e2f16, 0xda11fbca, 0x394292cc, 0xb12ceb1d, 0xc076b2d4, 0x1d1984ed, 0x882c3782,
			0xfa742d8b, 0x4d18e952, 0x24c2060f, 0x27c2bd8d, 0x86a86b32, 0x650c1a1e, 0xc0d5c629, 0xcfc2eeaa,
			0x6a2c1762, 0x328dbe32, 0x6ae0ca6d, 0x72b46017, 0x57a9c7a8, 0x2b749f1f, 0x335cef1d, 0x6b6c2cf0,
			0xe475cc5e, 0x92237f7b, 0x1f5563a4, 0xe77bb4c1, 0x280037c7, 0x47f7b729, 0x574fa6fb, 0x15142834,
			0x50baebd3, 0xfddfc836, 0x0a9b86b4, 0x86ca9358, 0x0dcde456, 0xbd737308, 0xcad5dc60, 0x3476c0e4,
			0x4cfa4807, 0x3f2abdcb, 0x29f5f593, 0x1f89c297, 0x0dd9748d, 0x66250efe, 0x0f3531f3, 0x91070adf,
			0x2226e2cc, 0xa392310b, 0x5187cecf, 0x8f742dc9, 0x0ae63b3c, 0x59e0bdcf, 0x975f9f5f, 0x6c1d8c50,
			0x013f80c7, 0x7edf4179, 0x9d6cdff0, 0x1465b83b, 0xc04ec4fa, 0x439061da, 0x9000f240, 0xc54f7865,
			0xee5ac2f9, 0x9692232a, 0x6be36eba, 0x1b7746e0, 0xcc6fce13, 0x7f1e5c5b, 0xf493a309, 0x5e000ad6,
			0x5c35ca1a, 0x69ae8b0b, 0xad480c02, 0xbd4c3335, 0x13b0986b, 0x5cc44aa7, 0xd02026cb, 0xdf2fd300,
			0x60b7f178, 0xeafd74ef, 0x9763d144, 0x37308cc6, 0xbaffcbfb, 0x7ddd3d5c, 0x975fbade, 0x33f2430d,
			0xbd3ed9d2, 0x587fb82e, 0xe55d9f11, 0x8deeac2f, 0x87ec8809, 0x58b6abbc, 0xcf8f79f7, 0x0f8a280a,
			0x3d80cd53, 0x7b7bf4a9, 0x86f144bb, 0x7c6b6dcd, 0x3b188bbb, 0x131e9c62, 0x1a37209a, 0xc79e04b2,
			0xac192ee2, 0xa00b1cfa, 0x47a27075, 0x3d7d199d, 0x7b365fc7, 0x0269d607, 0x95628564, 0xfef82956,
			0xfb728ddc, 0xecb4a9ba, 0x4e2d9796, 0x2e0320c9, 0xabe989c7, 0xf82c789e, 0x82a7f665, 0xe516e3f6,
			0xd28a1a46, 0x2bc4c2a0, 0x7309e173, 0x08bd2414, 0x3f832002, 0x0a2b933d, 0x4e23733f, 0x197131bf,
			0xd6758f17, 0xa91d8d30, 0x10dfea8f, 0x6729bffc, 0xe30a1237, 0x6ebeca33, 0x3497bdc7, 0x995937a9,
			0xf0fa6ac3, 0x29476e35, 0x22da43b9, 0xaf031c4d, 0xf7f94152, 0xdd0011b0, 0xc8c93dee, 0x29146132,
			0x03a62cc6, 0x2d0e0b9d, 0xb05854e2, 0xe22e54b2, 0x287b7710, 0x1db9b84d, 0x903a08ce, 0x17c17ebb,
			0x2e7b1dd4, 0xf8061dfa, 0xa62c6a1b, 0x6c874871, 0x8fdbf25d, 0x647d9cba, 0x98d18885, 0xfe2523af,
			0x90065db8, 0xcdf3217e, 0xf678ee00, 0x3685a5bd, 0xd504e7e0, 0x175c08a4, 0xc55d0009, 0x21d8baad,
			0x06b8ef0e, 0x7242bb43, 0x2f804cd1, 0xc0374c1d, 0x0c24bfa5, 0xb90551b2, 0xb0ec774f, 0x9d4ff8e6,
			0xd42d60e9, 0x7413088a, 0x8f2d3464, 0xc7549d2a, 0xe20bd108, 0x2c3cb59b, 0x647a8650, 0xd049ba54,
			0x6df25715, 0x7f0c6ef5, 0x872a9f7d, 0x85927bc4, 0x3cb150fc, 0xc391f300, 0xfae60507, 0x4d66ea9e,
			0x956184e6, 0x9b703d09, 0xad10af77, 0x7049bb6d, 0x705b5769, 0xacfb1b68, 0xdc98f58c, 0xb5265138,
			0x73e5a946, 0xc32e6135, 0xcb57b77f, 0x68662abf, 0x243d359e, 0x47ecc538, 0x353e7b54, 0xe980c779,
			0x6cea2931, 0xda20d033, 0x5fa88a51, 0x6cfa55b1, 0x5b640a56, 0xd37b772b, 0x6c55cf6f, 0x2f73562f,
			0xe6a06133, 0x249b1d15, 0xf1d86e84, 0xd5158f59, 0x04cf2f1f, 0x2fe84f08, 0xe3d22b85, 0x831a2d54,
			0x128c20d1, 0x056f42b8, 0xc5761f3e, 0x1d477975, 0x09274507, 0x74cdc8b7, 0xcf25490b, 0xc834590f,
			0x6cd37d85, 0xad01110f, 0x8aa7475f, 0x1bd860f7, 0xda764129, 0xebf17c5f, 0x26bc14eb, 0x7c88f7ec,
			0x59d64e62, 0x7366f640, 0x1433d436, 0x44b567a9, 0x1dbe072e, 0xab88a617, 0xcc46b167, 0xe731fa6d,
			0xafb0dfe6, 0x9bd4986d, 0xca707e01, 0xd82a015f, 0x0eea8e9b, 0x2d4cd751, 0x0fda1f0f, 0xc8ccca72,
			0x7f992f88, 0xf424406a, 0x33e67ada, 0xa2cc364f, 0x8f702d45, 0xcbb8542f, 0x32588e5e, 0x0c3bfb5b,
			0x41634a21, 0x6a04fb71, 0x50c33d47, 0x590a6261, 0x751db15c, 0x7797f8ad, 0x4281893e, 0x27f09a75,
			0xcd707368, 0x231d250d, 0x416e9c3c, 0x42bca60e, 0xe759238b, 0x65670473, 0x9141a98f, 0x6cb06e71,
			0x1d0d3a6f, 0xbb53db21, 0x8f26841c, 0x2aafebe1, 0x1c54a2e0, 0x6b507dab, 0xaa569080, 0x49b1cf75,
			0xbeb2428f, 0x46dc3ee8, 0x2822f5a4, 0xd842a8ef, 0x31391f50, 0x039ab35b, 0xac057432, 0x5ff66182,
			0x16265f3e, 0x829f45b9, 0x10231a1a, 0x592ab2cf, 0x8de04e38, 0x09ee8635, 0xf7d685f0, 0xb33b8c2b,
			0x1f315f25, 0x69527ba8, 0x0f6d949b, 0x92685fd5, 0x8daa5b51, 0xfd530e0c, 0x623f8577, 0x8eab7f8d,
			0x30cc751a, 0x4de11cd4, 0xc625904f, 0xc61fb6ea, 0x1c8b0d69, 0x1fe7b936, 0x0bf0663e, 0x9c48cf93,
			0x92e07072, 0xb5b04d20, 0x158178a6, 0xd485d025, 0x30f378ca, 0xabf04243, 0x69ff3802, 0xca5fb1a6,
			0x5c899214, 0x1d057c6f, 0xfe7188e4, 0xcff850e0, 0x014ad0b6, 0x55c4e0fa, 0x292c8344, 0xdeeae1d4,
			0x58e76778, 0x849cc594, 0x83566837, 0x18640330, 0x9d5153dc, 0x57d2eae3, 0x2e49e004, 0x14515fc9,
			0x87d05967, 0xc11d4172, 0xed7aac9a, 0x5be66395, 0x76ebdf29, 0xd39b4c02, 0x635d7b5b, 0xff7110f0,
			0x991ac3ec, 0x8bfe3a55, 0x4bd8dd86, 0x4e6bf91e, 0xbf284299, 0xb309feaf, 0x082fadf2, 0x38e96e9c,
			0xf761a5f5, 0x7732e94a, 0x84d66e1d, 0xcceda514, 0x53fd055a, 0x41ec3b45, 0x05c01e4c, 0xd652da78,
			0x0bbace74, 0x1468bdb2, 0x5918cd30, 0x5808d6ce, 0x6166b4ef, 0x027c2281, 0x499d911e, 0x7058fd32,
			0xe2632a24, 0xe729e9ec, 0xe1377430, 0x6ff22c3d, 0x0d8fd48b, 0x10b023e0, 0x9e405f89, 0x13e62e13,
			0x4e8cbdcb, 0x53cc7c50, 0xd5db5fa5, 0x18ac9d8b, 0xe3c79e6c, 0xce593742, 0x2ed0734b, 0x3ce33d4c,
			0x605fcf2e, 0xbf520d18, 0x71e655a2, 0xa4f6648b, 0x5f468c09, 0xcf341654, 0x95e7cdf0, 0x8ad02d9f,
			0x8666dfbe, 0x75ef956e, 0xd9516628, 0x050bb597, 0x97fabaa6, 0x0e793c00, 0xfe2cb0ca, 0x00000000,
		},
	},
	{
		{
			0x7917e8d2, 0x7cc676ba, 0x363a2678, 0x82ccdeee, 0x0b4a0faf, 0xdab38ac6, 0x7b24e59a, 0x0ab4c553,
			0x2ff40076, 0x926eb457, 0x2c8022ec, 0x1c05fdc8, 0x10297d6a, 0x1e3c145c, 0xebbc1968, 0xccea1f64,
			0x72e86655, 0x8834c364, 0x0d5c65db, 0x2b0071d9, 0xa6a9b85d, 0xfc70bd18, 0x46dff9eb, 0x2ea6b21b,
			0x4a574947, 0x170d6d5a, 0x99c555c8, 0xb65dd09e, 0x6d63a504, 0x977e2235, 0x55322b5b, 0x3b8cb613,
			0x422ac9d8, 0x178ca74d, 0xe5d20210, 0x3cfe3b9c, 0x9cd50820, 0x72f79e1b, 0x5882cbd4, 0x8d9e2394,
			0xb23d866c, 0xaf4291c9, 0x5e25b486, 0xca3c2a4f, 0xb525cfb3, 0x4a0e9db8, 0x449ee0d1, 0x6714f271,
			0x79f29871, 0x58ef2763, 0xa0533222, 0x233805d1, 0xc8df12d1, 0xa41a2805, 0x2878c56c, 0x366bdcd9,
			0xdb05bc24, 0xa467a3e2, 0xf05c06b1, 0xa47a7238, 0x00c7a2dc, 0x9644a9cd, 0xc22d6e7e, 0x3fac00d0,
			0x15dc14f0, 0x858567e8, 0x54ec4610, 0xfd34fcaa, 0x6fc7b81f, 0xdd27bfa7, 0x66611e01, 0xd99780c9,
			0x19c39bfc, 0x56ec4455, 0xd15a66b9, 0x6723fccc, 0xffaae8a5, 0x953a161d, 0xe2350d99, 0x8ceec061,
			0xa309ecc7, 0x6ca8a817, 0x810e59b1, 0xbaa33fa6, 0x5cd8148f, 0xc6264369, 0xad2f5d1b, 0xac0f8b5a,
			0x6bf32e75, 0xbff85a0d, 0xf5596753, 0x4e3f727e, 0x5252e405, 0x333a8ed2, 0xbbf07040, 0x57597021,
			0x56875e6c, 0x3b5dca11, 0x4a349363, 0x7c670c98, 0x9832b45e, 0xec9db89e, 0x4c172ed7, 0x54a07ab8,
			0x1c11c6a9, 0x3e910b25, 0xb1618467, 0xb682a0ad, 0x79497bc9, 0x7ad39686, 0xc685d1b3, 0x17d901a6,
			0x4a020abb, 0xf7e9b87d, 0x24d8f42b, 0x245bd69a, 0x5481c00d, 0x660f12ad, 0xe6f5ec55, 0x3849b026,
			0x73696911, 0x7b090152, 0x252b8d2d, 0x5fd49837, 0xcd3e8eb1, 0x1068d461, 0xd4b3a1a5, 0xf5bfa6d5,
			0xe2bb666c, 0x4681b444, 0x83bed3c3, 0xa20be15b, 0xa54a9134, 0xeab80405, 0xdc34c768, 0xdd5b6ae1,
			0xd5533b09, 0x83e55699, 0xf0dc96e8, 0x6d2aa731, 0x52b01d33, 0x22fffdef, 0x9d8e270d, 0x17a9abcf,
			0x278c14a5, 0xf3a02a87, 0xb21f8ec7, 0xe2714bee, 0x0623f9b5, 0x6af32bf0, 0x8746b499, 0x4e82deb2,
			0x8b770579, 0x5d1b35dd, 0xb1349f6f, 0xf3a069b6, 0x84fadea4, 0x7c09123e, 0x8f9367f8, 0xc55e8840,
			0xc2ca4bd7, 0xc5144065, 0xfd067f8e, 0xce45420c, 0xd1ca241f, 0x1eaee58e, 0x1b07ec2f, 0x339c757d,
			0x4caec7a8, 0x86fa496d, 0x613093ff, 0xd71ea645, 0xb6e5e8a5, 0x6eb86922, 0x845ecfde, 0xc204e5e2,
			0x2ed51153, 0x57b3a49e, 0x3d0c2431, 0xf3f3d852, 0x58149e3a, 0x5bdfb0c2, 0x0bdb9616, 0x7936946f,
			0x87efeba2, 0x2afe9fcd, 0xfb832c24, 0x76916670, 0xe459a5b7, 0x473e1b2f, 0x96b96dde, 0xad64d570,
			0x0a04d617, 0x6def55f6, 0x4b772ceb, 0x09a103e8, 0xa32fc447, 0x11cd7c5b, 0x43d204c9, 0x00c9818a,
			0xa211e2bd, 0x422962fe, 0xc6c50bb7, 0xdf09e811, 0x68a0a092, 0x09d2178c, 0x40d770bd, 0x637ad856,
			0xd19981ed, 0xd6c1166f, 0x89403d89, 0x8cd3f8b0, 0xd20236bb, 0x68fa9e38, 0x29416a68, 0x6e57a53c,
			0x7cf8989b, 0x3a9d67b7, 0xf07ef6bc, 0x1db42ac4, 0xe3592c86, 0xc98e4026, 0x4e42f9a0, 0xa922407e,
			0x48ee5627, 0x95862b29, 0x1ce786b6, 0x6d818be3, 0x5aff1f7a, 0x5c9179e7, 0xa7fac51d, 0x2cba1791,
			0x13801223, 0x370b122b, 0x024220cb, 0xdb85697c, 0x0d73eada, 0x56749903, 0xac76e253, 0x39d8a44a,
			0x597b5a93, 0x6534e51b, 0xb49a723e, 0x5b7ca2df, 0xad415cd5, 0x89ff1e4a, 0x8b4f25db, 0x3e151051,
			0x1bc958df, 0xe4b5004d, 0x09de26b7, 0x8fe2c366, 0xeb694736, 0xf95906fb, 0x04afa6df, 0xdc704484,
			0x98331b9e, 0x0da5923a, 0xc78d9e11, 0x1932cda1, 0x8835d01e, 0x1e940899, 0x663c7275, 0x382a04c6,
			0x02420d94, 0x5eedb35c, 0xa4ed8c7e, 0xed4ea98d, 0x7f4cd6e3, 0xc3ef0a7d, 0x1c44f856, 0x3e498743,
			0xf3b0c694, 0x80dfa731, 0xa30c75cf, 0x5eb90502, 0xdab958db, 0xd6f0c88f, 0xdb7471e3, 0xe5e097ec,
			0xd137dbd9, 0xf44dfd00, 0x47437405, 0xa43f490d, 0x6cd0c6e7, 0x5d6a7e4e, 0x19216f9b, 0xf81c2bdd,
			0xf6a8bb09, 0xdd08b838, 0xfc3e3cd8, 0xedd4c836, 0xccec9204, 0x092ddd9c, 0x6a5278b5, 0xc3ccd696,
			0x1b6f3f8e, 0x79018198, 0x49e782f7, 0x7332d038, 0x60554616, 0x3ae83bf5, 0x5e80347c, 0xe3a6fdda,
			0xd8f43a44, 0x0215f1ad, 0x6f0eb8ed, 0x47bcf63a, 0x280a122a, 0x53f58ae7, 0x6b9edfb4, 0xc511ea17,
			0xc29894a1, 0x8bf64e73, 0x5a48ccd3, 0x37b34f02, 0x5f27dd34, 0x68021e68, 0x2177b303, 0x845de75b,
			0x0b6a8ce0, 0xfe206e81, 0x147b2094, 0xa373f896, 0x082d6b4d, 0x371ae03e, 0x9a43d1bc, 0x630ce928,
			0x687abd47, 0x61ccf742, 0x35f053e5, 0xa0fa6f7e, 0x7abd27a9, 0x89af571a, 0x5aab473f, 0x5f3b7253,
			0x3964b794, 0x3829306d, 0xf9a206d5, 0x48a629e5, 0x192562a7, 0x74363df8, 0xe465a10b, 0x3463c545,
			0x6cd569c5, 0x800826e7, 0x40867fe2, 0x449cb9d1, 0xe3daa5a7, 0x7fcb325d, 0xfa7c9271, 0x496e06c3,
			0xb3f198a9, 0x9619cc7e, 0xa422ba5a, 0x7e852b1d, 0x474fddaa, 0xa755c12f, 0x32553381, 0x097ec3af,
			0xd6349398, 0xe571d92a, 0x4b1a43f4, 0x8c30f5f5, 0xf19eed63, 0x232093dc, 0xd07b2ffa, 0xd8d551a1,
			0x078ff9b6, 0x2368ef81, 0x2dd06f92, 0xac368e63, 0x51f8ea16, 0xc005f9a9, 0x2d0eeeab, 0x8167c419,
			0x6d1e3440, 0x193883e3, 0x5e4e47ba, 0x77cc8891, 0xd366bc8c, 0x097260a0, 0xf4846191, 0x67bfb972,
			0x8c0926e4, 0x048d60a0, 0x6f6edb00, 0x8ebab842, 0xd7a6087e, 0x7555b496, 0x75edc7bb, 0xe9720e8b,
			0x7abd8bee, 0x9e609691, 0x69b05a32, 0xffb5a0d3, 0xadd4c710, 0xd12c7a2d, 0x429ff879, 0xf5071d9c,
			0x36b781b3, 0x448090dd, 0x25ba210c, 0x943df4b4, 0x2c14fcd0, 0xef066564, 0xf899b64f, 0x61c33e43,
			0xfb78dcb3, 0xd5fa69a5, 0x041a28cb, 0x0f58a55d, 0xaa34e7c2, 0xed2b3578, 0xd0d93326, 0x534fc536,
			0x4f7074c8, 0x7f7a549a, 0xbe17a105, 0xd8c99e54, 0x820fc1cd, 0x7890928b, 0xc94a1cc8, 0x4f9da641,
			0xf1bcab6f, 0xe71ec20a, 0xf72f1a4a, 0xbd4ce320, 0xcc4a7fd4, 0xdf5430ba, 0xac15c74b, 0xbc646b95,
			0x6585539d, 0x27a1ca4b, 0x00aea57e, 0x03f1051a, 0xa1ddb73a, 0x99a44899, 0xf0b752cf, 0x85c19253,
			0x7be85767, 0x158cc027, 0x2d69e24a, 0x9206215a, 0x6026ec87, 0x26265462, 0xb60329f9, 0xf14e18e1,
			0xa6b6db65, 0x5c99f185, 0x84178ef8, 0x2d0096df, 0xd7f67f67, 0xb8717d20, 0x85a2ef2b, 0x22e93458,
			0xb1ae4b46, 0x6ef75b75, 0x2c9f69ac, 0x2b0e6362, 0x76966a36, 0x9713f1fc, 0xf2393016, 0xa82df66b,
			0x2728373b, 0x552e0c2f, 0xfd8b8edf, 0x33964268, 0x3533e4ae, 0xd5df1999, 0x04afa4f4, 0x7a36ce54,
			0xdfbd6d13, 0xb8d05636, 0xce581011, 0x4828fb31, 0x1a8e72b1, 0x302a2b87, 0x0b86cf50, 0x583526ad,
			0xef50bf75, 0xd16145e5, 0xdcbd3e3c, 0x7b6df70c, 0x83322055, 0xf7ef06a8, 0xd679237d, 0xe7275e89,
			0xece411ad, 0x293cad34, 0xa60a4f39, 0x2852c93c, 0x3cfa784b, 0xa112a875, 0x217278e0, 0x5b730762,
			0x5e8e233b, 0xbb47b9c7, 0x9323df81, 0x1c345093, 0xd023a9e3, 0xbec468ef, 0x4443d355, 0x01cfb4db,
			0x886da984, 0xcd676f8b, 0x01bcb54b, 0xa67f9433, 0x83c7905f, 0x8585f699, 0xb9b6ac59, 0x633fa843,
			0x687c3254, 0x05cde948, 0xfa15cfc4, 0x64fec980, 0x7b38a84c, 0x8a10d0af, 0xc1d15d96, 0x747fd410,
			0xde8d5aba, 0x7183d99c, 0xd218976b, 0x28567c4e, 0x9ef7f628, 0x78b591f9, 0xfa5bc5a5, 0xd8954b2e,
			0x4b77ab12, 0x20fe3eec, 0xc34891c3, 0x63b2acc0, 0xb0980b41, 0x21beca6e, 0x94c50cd4, 0x26a6da06,
			0x01249a53, 0x1f7f935d, 0x4c8067a9, 0x57a38e21, 0x30f26874, 0x74204cac, 0xf90c21e1, 0xb450fbdd,
			0xd7edc5f2, 0x6561a30b, 0xde7927a7, 0x381a0411, 0xce7a9324, 0x18a856ac, 0x773319c4, 0x43da29ae,
			0x6ecee8ae, 0x3e76d7c1, 0xacca7538, 0x6cc73f9f, 0xcc914922, 0x0487afbd, 0x42705fdd, 0xa52a7dc0,
			0x3e627ae9, 0xcdad7234, 0x2da47578, 0x65a215a8, 0xfdd00c31, 0x1e2c6763, 0xd45105da, 0xe3479daf,
			0x9e395988, 0x1f6524a0, 0x43424177, 0xce4c2c64, 0x99164e19, 0xbb4d4fc7, 0xb97dd074, 0x1d330af5,
			0x2456f3d2, 0x8c4e35a2, 0x7a0860d2, 0x76ed40c6, 0xb6c16211, 0xb2c7dbeb, 0xef936d0a, 0xca69cef7,
			0x866c09fd, 0x50a83e73, 0xdbbab312, 0x486f8627, 0xb7f93730, 0xa2702f9e, 0xe5e0fbb0, 0x1fbbfc35,
			0x05b241db, 0x8b089322, 0xdd8e75d5, 0x680c97d5, 0xb87efae2, 0x6f76f24a, 0x7385e618, 0x66cec6f3,
			0x8f5d22c7, 0x1ce68195, 0x079abf84, 0xffee7819, 0x7fd2514f, 0x293ac400, 0xc1e3ea2b, 0x4b61826f,
			0xf77f3a4f, 0x1bc24b58, 0x725171e0, 0x0fa0f6c6, 0xd06426ab, 0xffc9d1c9, 0x4c25fe68, 0x454201f3,
			0x336c08bf, 0x643632a7, 0x9c3daba4, 0xb693dd5b, 0xe8e1d95d, 0x117e5c5a, 0x8832b9ec, 0x00000000,
		},
		{
			0x36809230, 0xf9496d84, 0x5c1beee4, 0xba1a6d2c, 0xa2094a54, 0xde73ee71, 0x82f07e20, 0xfb2f66f4,
			0xf187a313, 0x2db63ad3, 0x6d2afe38, 0xd62808d0, 0x9dea5513, 0x6a57c63b, 0x8c91c7fb, 0x6a6ba4b6,
			0x07ff1051, 0x9436b27f, 0xb4099cd9, 0xe5ddefdd, 0xc24cbbd6, 0x4f8caa69, 0x03694a87, 0xc1c9ebf7,
			0xcd42bc8c, 0x99ac9dd6, 0x7fc8e67e, 0x299ba478, 0xfb944042, 0xadf52a79, 0x23c33629, 0xa9dc6671,
			0x6b52bc4f, 0xddcaeed1, 0x4c7e41ca, 0xdcd66868, 0xccb1f407, 0xdeb9c1d3, 0x0d871b05, 0x4dd0a872,
			0x174c8b69, 0xa2cb9cb6, 0x265a0570, 0x3d43f781, 0x3b32c86c, 0x09a9cf3e, 0x84270494, 0xf512ca0d,
			0x141419a4, 0xa704295b, 0xe11e5461, 0xa15ea4e5, 0x9fbc52aa, 0x86f82710, 0x866c8590, 0xd36e3370,
			0x6934eb2a, 0x88e5f765, 0xc1a1fa81, 0xa51e17ec, 0xf3e7a327, 0xb080c86a, 0xd5bdc7ad, 0xbbe77385,
			0xe3eab2ed, 0xf9d36c26, 0x2d6250da, 0xa1700cb2, 0x06b2e1e2, 0x7c223e21, 0x06626df7, 0x46af5360,
			0xa24be51b, 0x91cb1278, 0xecc0bc54, 0x1dc2b4ef, 0x19e538f7, 0x52449162, 0x9abd8189, 0x87732b7a,
			0xe4814570, 0x5f88429a, 0x26987bc8, 0xe47f5fb8, 0xa6270fec, 0x541f3bdb, 0x1c2f1616, 0x94bd3ae2,
			0x9dff7800, 0xd4037694, 0x1b9c12ec, 0x45d1e199, 0x79f16e6a, 0x86bc838c, 0x4f7dd85c, 0x4d2d2830,
			0xaff94f65, 0x4b6d14fe, 0xf910cf79, 0x68aab19a, 0x9b88210a, 0xc81792ad, 0xc1603876, 0xfacb6583,
			0xcd1f6639, 0xe87ac841, 0x62fc8e7e, 0x31ea83af, 0x6eadd411, 0x912807b3, 0x623fe259, 0xfe3fb45c,
			0x48afba05, 0xc8d7704c, 0x06a05c88, 0x8267178b, 0x98233e15, 0x8f1193a7, 0x7447ea59, 0x295f7af4,
			0xd98cadba, 0x222cbd32, 0x75cb901c, 0xe70536b8, 0x05e97587, 0x9f40afc2, 0xfe5f019b, 0xb7c66100,
			0xff5b3ce6, 0xa0867fe9, 0xd6d889e6, 0x2487fa38, 0x5cdfec90, 0x7a039ec3, 0xdbee52bb, 0x43326dc6,
			0x30386dbc, 0x9a3f5b9d, 0x139dedb2, 0xdbf6b3c9, 0xc6b0058a, 0xc7f7d7e7, 0xaa322609, 0x2f135776,
			0x126018d3, 0x2fa6c21d, 0xba590219, 0xbd9e9a04, 0xfe4dcd2f, 0xc209e547, 0xd9d59eff, 0x44945f65,
			0x4c1133ca, 0x5c366e90, 0xebe5bbaf, 0xd6bd6307, 0x66e95a02, 0x03ea5108, 0xf77a1066, 0xa888ed14,
			0x48fe5fc6, 0xe2756eab, 0x196b2374, 0x9748646d, 0x4c921e5a, 0xf5567c4d, 0x3021dcde, 0x9c39a8d3,
			0xe12e7189, 0x70408ee1, 0x24fbcb39, 0xfc3bb97e, 0x5f92ada2, 0x387d8fb9, 0x04a0c5be, 0x0689f5ee,
			0xf74865a6, 0xc4cb61d5, 0x86860f6d, 0x3c19cf78, 0xcfecf423, 0xb3c5672b, 0xdbd4de6a, 0x8b078345,
			0x40fb220d, 0xa2fa08bc, 0x62356fa7, 0x45709194, 0x38c811cd, 0xc6ca1473, 0x52b0e452, 0xd04958ab,
			0x6c530cae, 0xb65e722a, 0xa6fcd01f, 0xd494138f, 0x4106459a, 0x043bc067, 0x4c9e80ac, 0xbff542b3,
			0x54ff646d, 0xd0ffd66f, 0x6ad0ce43, 0xdf04b113, 0xb4982270, 0xb1f9eea6, 0x15d409bb, 0xde301e07,
			0xeee6f4b3, 0xfa9b37af, 0x5558f818, 0xeb23673c, 0x22d78b1b, 0x55b3e62a, 0x38e9b409, 0xa960e077,
			0xf689cba6, 0x86004f84, 0xc74ec90a, 0xdfd5f6e2, 0x48b9084f, 0x7ba70e00, 0x42bdeaf8, 0x6dc39a84,
			0x70e2dfc4, 0x4634b32b, 0x9d07a495, 0x7a75f3dc, 0xc9be556e, 0xbed0f940, 0x10838841, 0x4f908184,
			0x1344fef7, 0x76cb7f8b, 0x882a0efa, 0xc4867584, 0xe8133aa1, 0x67d2d462, 0x27ce0f91, 0x2effe624,
			0xba7f7fad, 0x8e8a53f5, 0x9c0fb515, 0x0c2bbb74, 0x6f37b269, 0xd0a1b0b1, 0xabe8b381, 0xf759491b,
			0xe7fc54d5, 0x00f7b948, 0x73ba877d, 0x42b6a1b1, 0x9994f458, 0xe9381e36, 0x1f622ffc, 0x6d2e5fc4,
			0x1729b7b2, 0x2c8947ba, 0xaa3a9652, 0x47821648, 0x35e78e4b, 0xfb1834d4, 0xb93b69b7, 0xdcc154c2,
			0x33ea29dd, 0x7f6df252, 0x3cd864e8, 0xfe7ec707, 0x88599b19, 0x60be2d5b, 0x9d283e18, 0x348037c5,
			0x8df65e62, 0x98470db0, 0x937b421b, 0x2a3e5c5f, 0x21c36ff5, 0x565bbe8a, 0xba037be4, 0x30bb4570,
			0xf589585d, 0x44972370, 0xef50f26f, 0x3f589c71, 0xb6a98503, 0xb99d4d26, 0x25d7554b, 0x0df2e1ec,
			0x67936015, 0x7e760d72, 0xaba0f451, 0xdff0fd19, 0x4ac0126f, 0xacf110b3, 0xd5e54065, 0xe6d2fb7a,
			0x4889514f, 0x9b1351af, 0x6924af52, 0x890b3fef, 0xea0ea733, 0x10013a4c, 0xb33ad5d8, 0xbce7680d,
			0x91a0de8f, 0xbc1e311a, 0x1ed08426, 0x0c65f76e, 0x9cc4ce80, 0x62afaa93, 0x7566a450, 0x784e6b24,
			0x712a45ce, 0x51425870, 0x505cbb18, 0xe01d944b, 0x72f490ca, 0xd9cf78fd, 0x30a8502c, 0xba29bc14,
			0x4747b2f8, 0x0cdc18cd, 0x64758edc, 0x2ef9cf48, 0x3bf95c0f, 0x293561dc, 0xb8ff6036, 0xbf7749e0,
			0x09eefd57, 0xa04702bb, 0x936795f5, 0x19bfec8c, 0x852c4cd6, 0x55efb5a5, 0x24a16851, 0x5524f4fa,
			0xa81d88d5, 0x0779ce84, 0x5b6a2621, 0xb2f26b2b, 0x4cb48c2a, 0x85c99431, 0x1245abda, 0x8665edec,
			0xc1993d24, 0x64b55231, 0x891a5d0e, 0xd1944d9d, 0x46db96c2, 0xd6bb2003, 0xe7d831c6, 0xba9f313f,
			0x3d213a41, 0x810ceede, 0xca660ce9, 0xa85d9245, 0x58943cef, 0x78b20894, 0x1915d9b9, 0xb4f72f0a,
			0x534699f5, 0xe82f8f44, 0xcd99389d, 0x9210c4d6, 0xe4862cf4, 0x58fbfa00, 0x98ab05fd, 0x958e388b,
			0xc9b80806, 0x4bb743bc, 0x8293ac72, 0x75b6feb1, 0xe76ccf3d, 0xa3f22e42, 0xcff8fac7, 0xdf4030ed,
			0xc48d9148, 0xfae29c9f, 0xde61a78f, 0xc68d3fcd, 0x31b395f0, 0x9b738902, 0xc70e4810, 0x3a930031,
			0xe47a94ee, 0xe7e5737a, 0x26b86d23, 0xa04e1101, 0x5c634eef, 0x3c9730a7, 0x0bd2914b, 0x70812bc1,
			0xae41f82e, 0x314aa23a, 0xd7bb5284, 0x36c096f7, 0x8725ac6c, 0x1678f3d9, 0x37fc5688, 0x5a87ca3f,
			0xbbcb427d, 0x8a9ef9a7, 0x7f0a045a, 0x7ebfaaeb, 0x544a6f29, 0x5c85a794, 0x2eb314de, 0xb029fa27,
			0x165849a2, 0x46ee54ec, 0x01634cce, 0xad4bd90e, 0xcf10a24d, 0x60050625, 0x43a692b3, 0x2bafa1fa,
			0x9a11563a, 0x64fa317b, 0xa10a533b, 0x05c229dc, 0x1cfcf11c, 0xc1bd5633, 0xd6588c7b, 0x7b424583,
			0x6c581b01, 0xe018dea2, 0x286e2c1f, 0x67da808c, 0x16b67414, 0x4c58786d, 0x47455285, 0x5e31356c,
			0xe81e0c98, 0x4b3821ee, 0x82d291e6, 0xf4cd7f8d, 0xb6ac8459, 0x34a72b88, 0x4e58d7f5, 0xbf63ca20,
			0x7238dabc, 0x99cd316c, 0x0db885be, 0x6062ca9b, 0x11042272, 0x3a1ad8da, 0x92a7f355, 0xeaeafe5a,
			0x5a4c5a1f, 0x28fd49e5, 0xebca442c, 0x6a1e04ab, 0x70b034c2, 0xff4c8d78, 0xa09f4413, 0x89718022,
			0x0aa3d5e9, 0xe731bb2d, 0x219908e4, 0xc435e170, 0xe72aacf3, 0x10a1c3ab, 0x2029cbdf, 0x25f758e6,
			0x72cdca6f, 0x4cd8019e, 0x609c7e15, 0x49ed3da7, 0x34f0a6a8, 0xc0080a13, 0x1c656e9c, 0xd76bc23a,
			0xbc791150, 0xba5ed00b, 0xa2648c88, 0x5631b8f1, 0x9179d37b, 0xcce308b1, 0xd68a7f43, 0x93a60306,
			0x128b5c4d, 0x0db052f5, 0x81874712, 0x36e0e1ed, 0xfd4b9a6f, 0xec05f389, 0x7d86aa3f, 0x9ce4ff38,
			0xb5048a4e, 0xb19e0985, 0x0fc8dd65, 0x3a8d961a, 0x1d666151, 0x4faa93cf, 0x5ef7c002, 0x7253531f,
			0xc6dc5fcb, 0xf481c891, 0xddf7b4cb, 0xe2965e13, 0x65a776b8, 0xf2343899, 0x998d08ad, 0xad5c7cda,
			0x34186083, 0xa5e31b6e, 0x25e1a4a1, 0x259c4c37, 0xf6beaba7, 0xfaf3df37, 0x28fba357, 0x35068920,
			0xbd325c28, 0xcab6065a, 0x4534c17d, 0xd60fee1f, 0xb4b24031, 0x92b6b49f, 0x093914b4, 0x300d6530,
			0x2cf33268, 0xe505c7cc, 0xfc18f906, 0x25e9d54a, 0x725f1901, 0xd546a438, 0x24d45136, 0x216163a5,
			0x761d80c7, 0xff6e79db, 0x63d3f2e3, 0x1ac1ae3c, 0xc3702ae9, 0x570a0ab5, 0x9649baaa, 0x0cd82014,
			0x5c0ed292, 0xe2d51083, 0x8c172c8e, 0x499eabba, 0x0014a952, 0x1ff73064, 0x16c4523c, 0x67b9c674,
			0xe9dfafa9, 0x70384644, 0xa8050207, 0x22d7bb41, 0xf4c714b4, 0x73a38c21, 0x157b576c, 0x8aa87bb2,
			0x545bad25, 0xd43b4c06, 0xaad2c9a8, 0xd4767ee1, 0xa6e655e9, 0x70ae093e, 0xdce9ddf8, 0xeaff31a3,
			0x2cb7b743, 0xde060c58, 0x403f9c71, 0x686596a2, 0x8ef387aa, 0x2843df44, 0xc8a478c7, 0x0e2d0df0,
			0x69434d7e, 0xeef6e30e, 0x46707059, 0xacfeed67, 0x1177116f, 0xa54330e1, 0x1dd93bc2, 0x7dfc1e5a,
			0xd89905e5, 0xf2225bea, 0x64612518, 0xfbe42ca0, 0xddc02b24, 0x9b6c831c, 0x1f3ebdd8, 0xc2df0923,
			0x2d02e7b4, 0x9cf184c0, 0x8b37776c, 0x292839e1, 0x04a1b2e4, 0x3320d798, 0xc84e6633, 0x06273b40,
			0x722baa21, 0x2fe63017, 0x10697e85, 0x89e3afab, 0x180af8da, 0x57d90e75, 0xf7538bf6, 0x7fde47c5,
			0xcb25f195, 0x8f25b5a8, 0x7ef7aa43, 0xcdde8d32, 0x6436596e, 0x8316921a, 0x9a6f714b, 0xcc681e57,
			0x86fe7f31, 0x3db7dcd3, 0x76f1bf6a, 0x100a1dbc, 0x68272e31, 0x866ed7ed, 0xd3a577e6, 0xd89593a3,
			0xc13a8ea0, 0x45d7d477, 0x993bf5ae, 0xb42c5bbe, 0x32d5b6af, 0xf0740e3d, 0x4827db4e, 0x00000001,
		},
		{
			0x3d7668b2, 0x0596817a, 0x2a32e0f7, 0x1fa67e8c, 0x54a73824, 0x361b5f35, 0x30f48391, 0x54b1675c,
			0x141bdbec, 0x8724ad9f, 0xaa1fc645, 0xc3581d7c, 0xa27caebd, 0x94044ed7, 0x78b8203a, 0x3f7a1567,
			0x28ecf3a0, 0x1b1fb63b, 0xa2a58fde, 0x2286d4d6, 0x3e0250a0, 0x5c65b45b, 0x39d17930, 0x6fb64cba,
			0xca83d083, 0x80cee856, 0x9ccd2388, 0xf17fe73d, 0x281d8108, 0x7982c2c1, 0xad6f8b4e, 0xa8bc02a7,
			0x389c50e4, 0x779b1cce, 0x437cc708, 0xe2f9553f, 0xdbafeb6e, 0xf62524de, 0x9097f50c, 0x3a5369ac,
			0x149c03ec, 0x589ab81b, 0xee98753c, 0x96ae7a2d, 0x1381fd47, 0x14ddd51f, 0x29bebbb5, 0x9db4b1b0,
			0x63c678e5, 0x764ee97f, 0xa85d19d8, 0x140932e7, 0x800ce2ab, 0x6867c1de, 0x0d1f3927, 0xdb4d65bb,
			0xb3159621, 0x276386a5, 0x3a7efa05, 0xf8934f31, 0xb4d0652f, 0x908967f2, 0x1ebf9ae1, 0x58bd2c24,
			0x7e78701e, 0x24ce054a, 0x26e37122, 0xa67b97c8, 0xe984c129, 0x09dac31e, 0x1a280830, 0x349fe51d,
			0x892948ac, 0x94f63656, 0x16a1eed1, 0x1e43cc0c, 0x96e3878f, 0x4421c35a, 0x3d774a42, 0x69117429,
			0x01eb678c, 0xe428ac14, 0xc811a89d, 0xfe3afddd, 0x798bc7f8, 0xc10195ec, 0xca4c256f, 0x500cf15c,
			0x77b4d769, 0x2e9a8244, 0x11d389dc, 0xf1a03039, 0x1c1be1e8, 0xe12da25a, 0xc9efe54f, 0x68fc4558,
			0xf1464a78, 0x387569fa, 0x68c9c6d5, 0x7105bcf9, 0x81ebeb3d, 0x9dc68fba, 0x23298113, 0x7e96c4e1,
			0x8b675173, 0x1651c995, 0xd2ed594d, 0xe1cc738f, 0x468b4a6d, 0x4b91d7c2, 0x11c28554, 0x92aebd94,
			0x68e7a50b, 0x0932a40a, 0x5c785046, 0x7e0d5648, 0xd6bc5a36, 0xcd361048, 0xd26139d8, 0xd22f7c8d,
			0x1a3b9b0c, 0x5200cccf, 0x1688d390, 0x97c535f0, 0x0c21b6d6, 0x0657b9fd, 0x20a952a7, 0xb4af3083,
			0x6636e630, 0xda012791, 0x2721e300, 0x8d3ac0dd, 0x60010b0e, 0xf159c258, 0x1938f6ad, 0xc67faec8,
			0xa28babc6, 0xa2e32299, 0x1c838e46, 0xad30030e, 0xe88ae9ee, 0x35221b62, 0xa008b284, 0xf1ff20e0,
			0xc71d60d6, 0xf081a6cf, 0x71cf790a, 0x7e764e1f, 0xa85841b8, 0xf023f08d, 0x50037383, 0xa9bbd9e9,
			0xc6e8a32e, 0x05339e0a, 0xe405035e, 0x07ba5da0, 0x18176605, 0xca79cd1d, 0x30487a6b, 0x795f729d,
			0x3d30b76b, 0x6b14e21e, 0xec9a89d3, 0x8b96d9b8, 0xcc3e886e, 0x36209bb3, 0x477e1cb3, 0x02dbe337,
			0x5065bd16, 0x011068bf, 0xe10000d4, 0x196ad381, 0x398f7025, 0xb4f3c0ff, 0x06296142, 0x41c50e7b,
			0x3b59986a, 0xf589c9d6, 0x69c7206e, 0x2c1db3ab, 0xb4d22cdc, 0x47ee0ad0, 0x0c406848, 0xbc1b3d39,
			0x236fd557, 0xfd072d87, 0x26d16795, 0x517fcf0a, 0xb7e63484, 0x95ed8c8e, 0xbb1d5544, 0x08ed61fb,
			0xfa8d76cf, 0xa8ed59c6, 0x4008e542, 0x5a51578c, 0x63027aa7, 0xe7e27d8d, 0x67e9e340, 0x89e362fe,
			0x83bc190b, 0x26f12226, 0x115e6a08, 0x53beab78, 0x2021aab9, 0xda78b586, 0xab2a22a2, 0x922d36fb,
			0xbb83d54c, 0xa1a0af5c, 0x79abd37c, 0x1435da44, 0xb4aefcda, 0xa22b5998, 0xccf9cd51, 0x27f620da,
			0x0a0bbb8c, 0x4c85370e, 0x6d06c110, 0x7b3606c9, 0xf71d6a89, 0x7c91ad5e, 0xdb6c1680, 0xd799cda0,
			0x4e22c704, 0xdb049c9a, 0x215cc1e4, 0x4b95d539, 0x5041dc28, 0x9958d0a9, 0x96c955ca, 0x9dcfc704,
			0x5f628833, 0x1fec647d, 0x7c7c1b38, 0xb1b68d10, 0xd15661fd, 0x2ff2a265, 0x0b625093, 0x5fe8c4df,
			0x5c740421, 0xbfe84528, 0x8354620d, 0x3c3f556b, 0x40a2c386, 0x25af531e, 0xdc8dbd56, 0x7d6d379a,
			0x43684088, 0x0cc9a575, 0xd08b127f, 0xdfc0fb67, 0x1d1ca488, 0x47a0faa0, 0xcb993839, 0x4fd6130e,
			0xf1067975, 0xc368d53e, 0x63462256, 0xf3117db2, 0xe4b70876, 0x80e4e2df, 0xd8f2201f, 0x0fdd08d1,
			0xcbaee377, 0x964f30f9, 0x7d33c3ac, 0xd291c2c6, 0xc17337bb, 0x05ac2ee7, 0x45c9915a, 0x1d1e831e,
			0x86d43a9a, 0x7dbb7dcc, 0x160c1924, 0x4873a1e4, 0xacaa1ee4, 0xb9360794, 0xbfc33d37, 0xf080b407,
			0x55ff7660, 0x5d18baab, 0x57a2e813, 0x1e2cbfdb, 0xbdc2e7d5, 0xd720452f, 0xbb60157c, 0xee2b731c,
			0x2c8f9910, 0x194b9a67, 0xa444a0d9, 0x210d910d, 0x88222312, 0xc0767fd9, 0xe853478e, 0x38b07ea6,
			0xcd4077fe, 0xab3ed30b, 0x364fedf1, 0x4278565c, 0xf816e7ad, 0x7d4779bb, 0x3111ca3a, 0x038395b5,
			0x6994a6a6, 0x82fe73ce, 0x6d934f39, 0x6d85565d, 0x42439dbf, 0x192e1d93, 0x08921f88, 0xc51545e4,
			0x44589132, 0xd499c0d5, 0x301e36a6, 0x0612527a, 0x81a91881, 0x5a870f6d, 0x549160e5, 0xfd0f643f,
			0x7ba03c78, 0x609a4ab8, 0x1afbbda1, 0xf9314718, 0x3f2c0682, 0xd82f1fb9, 0x5dbfe04b, 0x985fa929,
			0x0c8c0b86, 0xf7ac7660, 0xec08a9c7, 0x7f0f60b8, 0x472fb401, 0x13e8dad3, 0xc26b2b8a, 0x6e09c739,
			0xa1a546a1, 0x8fade448, 0xbc2e2de0, 0xd347a6ec, 0xd68db10e, 0xc0ca09d0, 0x8f0e2804, 0x0cdc4683,
			0xf8791d58, 0xed1b5cb6, 0xe57b1096, 0x249f193a, 0x25fb4fa6, 0xd6614b7d, 0x03fb17cd, 0x5cff00af,
			0x6d2e2f6e, 0x120b2358, 0x3870850e, 0x8fdb0d39, 0xb3d526cf, 0x97d20c63, 0x68035d1a, 0x66857302,
			0xec963395, 0x673a94a4, 0x6338864d, 0xb5081b10, 0xf67123f3, 0x12e7fd26, 0xcbb1989b, 0x8885e357,
			0xc058b988, 0x7be65f3a, 0xe52efe10, 0x6d724a2f, 0xe5a42411, 0x378e14ac, 0xc2a16b48, 0xf2a0ef4d,
			0xe0d380df, 0xd1fa3880, 0x365b5dda, 0x305ad1a1, 0xe9f50fe8, 0xa983d10d, 0x6782f32e, 0xb8c310f6,
			0xc7e6dea0, 0xf86322d6, 0xb44b2874, 0xb3fa4703, 0x5fe82e38, 0x8b4d4dde, 0x998ca89a, 0x31b0b803,
			0xa9ad6a21, 0x0f47f40b, 0x649d5a43, 0xd8768fb6, 0xfc481696, 0xe81fb87e, 0xb98f5419, 0x06dc76f8,
			0x5e4870d2, 0xc5ab978d, 0xd43cd5f8, 0x8285bd1d, 0xa266ad0a, 0xef8372c2, 0xe59644ae, 0xbc834dc8,
			0x42a95d9a, 0xa53fd222, 0x411a42e9, 0x188ff0c4, 0x44e3930d, 0x26bfd3e2, 0x8e280ef7, 0xddc3ef4b,
			0x59f2b45e, 0xc44e8370, 0x14112b3d, 0x4617d47f, 0xcb097f08, 0x875ba5c7, 0xc619399f, 0xed6bf4c8,
			0x1e121830, 0x265bbe62, 0x9770727b, 0xf186a001, 0xaff57720, 0xa88a9a74, 0xf25d5db2, 0xc5c8511b,
			0x2ef68a7a, 0x0a1b3d64, 0xabd8faa6, 0x7c252d2f, 0x463baae7, 0x59e6738b, 0x28a782e4, 0x75d58d1f,
			0xfe483a92, 0x856246a8, 0x5f8ca571, 0x95ffd1e4, 0x345f0793, 0xf51b8f00, 0x4d98f4e8, 0x280d0490,
			0x535dcfc6, 0x603b21c9, 0x77dde567, 0x5e8ca67a, 0x3e185e44, 0xd812c6f9, 0x3c45d5c3, 0x5dd7fa8e,
			0x416d9b6f, 0x7a12d42e, 0x996011fd, 0xbbe1b171, 0xaee23ba5, 0x3d2ffe0e, 0x385f193b, 0x91ef00ce,
			0x927822f5, 0xcf14ed4a, 0x7ae49fd8, 0xb8464a42, 0x79f794e8, 0x17d3ba3c, 0x25830c4b, 0x5a7aa487,
			0xeaed0633, 0x5200ad07, 0x68730a3d, 0xcac8b845, 0x2e26a647, 0xb1f6b0a1, 0xba5aa064, 0xad33ce30,
			0xe1c345d5, 0xbd58d74b, 0x56ffa129, 0x0ba06537, 0xc40d54e4, 0x69a4b4bb, 0xea7871f1, 0x7e6b1665,
			0xd81b3827, 0xce526679, 0xd11675be, 0xc73efded, 0x0912450e, 0xf979a92b, 0xe10e6e9b, 0x538178ca,
			0xd614ebe9, 0x8cdc1282, 0x4bb86451, 0x265a38c0, 0xced6732a, 0x772c8952, 0xb40b65d9, 0x5eacec34,
			0x527af480, 0xe5bf1295, 0x6c8b3a1c, 0xc4947a08, 0xcab4de4f, 0x595fe57b, 0xfe6a3a78, 0x17caa5e2,
			0xa4d232eb, 0xd1e12a75, 0x992b0233, 0xf3b33090, 0xe300fd46, 0xdb682d96, 0x213b294b, 0x470899ad,
			0x67310009, 0x5454540d, 0x52a14503, 0x71a12f39, 0x3f0bfdfe, 0xd60134f7, 0x8e84e675, 0x674be6ac,
			0xd1ac2650, 0xd98d308b, 0x69c3d6bc, 0x6cb252b6, 0xcfd730b0, 0xcf6e8ff5, 0x38a180b9, 0x90dc517a,
			0x18fd66ab, 0xa9cbe316, 0x1bab7b33, 0xd6f6edaf, 0x8e630911, 0x6b6117a8, 0x4c9a1593, 0xa780f568,
			0x9cffc8d4, 0x524f17ff, 0x4331196b, 0x1c55bf2f, 0xe0a32784, 0x4c06e732, 0x1bb5bca0, 0xf16a93c3,
			0x76c424ea, 0x78572057, 0x48a40b04, 0xc6e00dcf, 0xdfe8fe00, 0x83f07cfa, 0xc30f7bcf, 0x91f90300,
			0xd88acbe6, 0x2da092d6, 0x5ad93bb5, 0x8ef96302, 0xc42d751e, 0x64a12e74, 0xb98319d1, 0x2901a74e,
			0xb012e421, 0x4f01be1c, 0x32577df5, 0x887b3863, 0xce4feeca, 0xe8d9efaa, 0x94a3b3df, 0xe338a42a,
			0xbd26c8d5, 0x34b4e81a, 0x8b415a32, 0xd1f2875b, 0x592e6b5c, 0xaf6ee0e8, 0xf04b4c7f, 0x44847d07,
			0x0cddc5ce, 0xc493fdb9, 0x8d411ba4, 0x0e05c1bf, 0x25f2ddd7, 0xe28de573, 0x9fd40018, 0x33007dad,
			0x0f9c8d4e, 0x5c48c012, 0xbbe4002d, 0x4fba98e1, 0x4dd99a44, 0xfc8ba074, 0x404c35f0, 0x8a790524,
			0x59695e4a, 0x125ebe93, 0x1a37fd1d, 0xef1b2aa0, 0x1c6196b8, 0x3d6c003b, 0x7ad75e92, 0x9beea20a,
			0xc48127f1, 0xfe37e332, 0xb6095fb6, 0xf245c6ba, 0xf7773616, 0xdf10cccf, 0x588902de, 0xa75c22ad,
			0xd6409e9c, 0xf9805240, 0x79ade82d, 0xa1625e80, 0xc3fe898e, 0x04eeb43f, 0xa313b180, 0x00000000,
		},
		{
			0xd285a016, 0xad09e066, 0x602617b6, 0xfe5f25e5, 0xda51c8d6, 0x4992aaa7, 0xed73585a, 0xdf426a58,
			0xd5bcfb5c, 0xf26f0e22, 0xa555b7c8, 0x307502af, 0x39617050, 0x25176d46, 0xc2f4fea3, 0x091428d3,
			0xde927fa2, 0xff9140c0, 0x90a79746, 0xd1d43610, 0x33bb1847, 0xcb48ae8e, 0x896c630b, 0x5ba4b2be,
			0x52f33e84, 0x1f3aacec, 0x298e2ff6, 0x39570abb, 0x9bca7337, 0xa05119ff, 0xbe9e840a, 0x448de216,
			0x90e8c647, 0x15bbbdf8, 0xea57a867, 0xd909023c, 0x8283003d, 0xed777515, 0x1fab939c, 0x6a98bc04,
			0x14e85d82, 0x920cfc68, 0x27d19055, 0xfd52c1dc, 0x90c927ed, 0x3d8396d4, 0x0aa7ea9f, 0x94f98d1d,
			0x61d9b92f, 0xed01f040, 0xce923e36, 0xd758667a, 0x49f83a03, 0xc7362fb1, 0x440bbc71, 0xbb932759,
			0xae7e840c, 0x51ee9ee0, 0x45c4384c, 0x7abeff6e, 0x62a1ae2d, 0xc8448666, 0x6aa692e3, 0xd5959b0a,
			0x313c8a45, 0xc6036280, 0xf2855257, 0x312cbe2e, 0x999b37d0, 0x18ee9795, 0x4fd85bce, 0x7ab267e7,
			0x62d37612, 0x7510cbdf, 0xbb834a55, 0xffc2aac9, 0x63ee851d, 0x445f519c, 0x4716141a, 0x1a25db81,
			0xd34bf975, 0xacc7f4b0, 0xef1d01d9, 0x1dc0b661, 0xb6abe333, 0x7e0e2ac0, 0x37cfe0c3, 0x214fe98a,
			0x8aebfc4e, 0x241dd31d, 0xd400dfcb, 0xfde1be5f, 0xa8d791a0, 0x9a6531d7, 0x095a3096, 0x15110b73,
			0xb3735947, 0xb0d1bce9, 0x2ea7a1d2, 0x3ba03e90, 0x033d5988, 0x74e8e74f, 0x7a9630c4, 0x5f514505,
			0x293ac04f, 0x0591d04b, 0x1bb6bca2, 0x606bdc19, 0x6dfdee94, 0x4ed68b74, 0xc6ec4a02, 0xb0ad8d6d,
			0x3a987bd3, 0x18892663, 0x1f688c70, 0x3dd73436, 0x846af9e1, 0x9c4ae180, 0x61cd74c4, 0xd61124c4,
			0x888e9b25, 0x41c2ca35, 0xcd8d8710, 0x209d3d0e, 0x02a0f942, 0xbd2289c3, 0x94b44170, 0x6cadeb4c,
			0x91748dad, 0x84d33dad, 0x88a8d643, 0xe9c30479, 0xf18ed269, 0xd74c2df5, 0xd25c3294, 0xef9797c5,
			0x0bed78df, 0x49d17de8, 0x85f9418b, 0xe2ed3adf, 0xff0f9c96, 0x5c8a256c, 0x44deb765, 0xa3baa53a,
			0x38e40048, 0xadff672b, 0x86efa34b, 0xab7ef434, 0x7d74e08b, 0xa26f06e8, 0x2e0f4a5b, 0xbcc9eda3,
			0x578d714b, 0xd5760aec, 0x887d4302, 0x73f26076, 0x57ca05e5, 0xebf2cff3, 0x16106967, 0x9bff2af7,
			0x76d6b20d, 0x068d7109, 0x226a9c8b, 0x85aefd48, 0xd0f00338, 0x9a67db4e, 0x4b169296, 0xa8e4a6de,
			0xe95a7a09, 0x3c79f6f8, 0x028c1f6e, 0x88a6f252, 0x9b2355b8, 0x8993b0cd, 0xc3d160f6, 0x62d4e80b,
			0x2bbe12cc, 0x6382b3d7, 0x889a0180, 0xd00282d6, 0x391ea0ee, 0xfdb618ba, 0x7733478c, 0x4f9d4460,
			0xf772c166, 0xf47f7c1a, 0x8e6fec5a, 0x63f88102, 0xdf174ed2, 0x585b833f, 0xd8b8f1a8, 0x0b4882fb,
			0xcf50b78a, 0x1216bad1, 0x10e46975, 0xfcd8266b, 0x18c6c800, 0x4686cfa1, 0xef23406d, 0xcd4bb323,
			0x01af6df2, 0x31b8588b, 0xff38c65f, 0xd899838a, 0xc28c729e, 0x59575ee4, 0x93d11553, 0x1b5e4c83,
			0x8c882006, 0x03bc8111, 0xbefa7437, 0x95084c62, 0x7a45322d, 0x19b9200d, 0xb23ffeff, 0xf3d319c2,
			0x0b1cc1e8, 0xdeee4d92, 0x8e670a00, 0xe9ee27cd, 0xdf20ed1f, 0x65c9179e, 0x41e21a08, 0x63b74b81,
			0x373cfd4b, 0x12f11955, 0x4fcb01d0, 0xb0c4111c, 0x85f0c771, 0x4166c105, 0x0e6181bf, 0xeeac86be,
			0x69042094, 0x6683b8d9, 0x221788a2, 0xacb14578, 0xfbd75fea, 0xe852fae9, 0x316a0147, 0x5b9e1f6e,
			0x2a4b0199, 0x4f2dd340, 0x7c719554, 0x78d7346a, 0x50506159, 0x281ab456, 0x73fdca52, 0x2f929cb5,
			0xa87dbc93, 0x17c4e84c, 0x19a9bd3c, 0x587bb3da, 0x8c7ada3b, 0xdaba0b96, 0xcd9af50c, 0x5fe519ec,
			0xf4de3188, 0xee29f20c, 0x62061dba, 0xe5a935ba, 0xafd5a8aa, 0xef6ad005, 0xbc04d96e, 0x6216d587,
			0x456c6aaf, 0xf7286d33, 0x3705f4ac, 0xf9f9fe48, 0x94ef0b5c, 0x978b2d81, 0xf14fc2f5, 0x3f6efe16,
			0xf461b0ec, 0xe7494990, 0x517139b8, 0xe3f7ce84, 0xac91ed51, 0xf738d739, 0x02d69f7e, 0x8357c079,
			0xd6b2c08d, 0x5c28d688, 0x01bcbbf6, 0x34332288, 0xedb3308c, 0x9a8f812b, 0xdc7894e2, 0x824f912b,
			0x33d1b053, 0x15bbb4d3, 0x05c07b50, 0xb735bfe3, 0xd5629999, 0xad7734f5, 0x651c566b, 0xb81ccf6a,
			0xa952f0ad, 0x244480b9, 0x33390409, 0xba2ae1ad, 0x2d71ce0d, 0x18ed5d5a, 0xe9ae8ec6, 0x0fb0f93f,
			0xb5e1c822, 0xd61c1387, 0xc5cd6d64, 0x0b15f892, 0xe1987b28, 0x3e72e0c8, 0x5b8c2496, 0xc5616b01,
			0xabb6f3f8, 0xd11a2631, 0x4811e70d, 0xf60a62d7, 0xfa6f9889, 0xf21a81f2, 0x5540cd09, 0x1e94c8ad,
			0xc99e325f, 0x7046e47d, 0xad91eaf0, 0xdfca47d5, 0x2b07254b, 0x09d77576, 0x184a2f1d, 0x5a3125a7,
			0xcf8d104a, 0xf90d209f, 0x413ca50a, 0x44f23fd6, 0x7a61ff9a, 0xb93b6210, 0xba517823, 0x1b33966c,
			0x663ad03c, 0xa9e353ff, 0x4b59d94e, 0x5302dc49, 0x6477bd8a, 0x601da0d8, 0x1af242bd, 0x637f81ef,
			0xb6bb9bfc, 0xe0839234, 0x4143ab8d, 0xcbb894fc, 0xe3de3198, 0x1a993849, 0x9f8f5565, 0x29a1b8e4,
			0x5a775256, 0xfd21b9da, 0xfede3c2b, 0x48049e9b, 0x990e095f, 0xf633bf20, 0x2ad6409d, 0xe95b1ca2,
			0x0ddbf3d2, 0xb9e4c3fc, 0x7eaedc55, 0xaa40eabf, 0x32123563, 0xd2c26661, 0x81f96516, 0xdd2516cf,
			0xf64b838a, 0x230f32c5, 0xed4d5215, 0x004a383b, 0xb87a682b, 0xdaaaed6b, 0x9262508a, 0x46493913,
			0xc3c4fe31, 0x54f2e667, 0x79c927d5, 0xff9d7205, 0xe3af78a7, 0xc066a4f0, 0x40768018, 0x66463175,
			0x49f2acb9, 0xece343ae, 0xddbb8f20, 0x7a08da2f, 0x416d11ce, 0x3e7c62f5, 0xd6759209, 0xd8be4864,
			0x31cb3748, 0x16de9e11, 0x31450b4f, 0xfc62b468, 0xc8886768, 0xdbe7250a, 0x2a7613e7, 0xd988a914,
			0x76f7bded, 0xe5e470ca, 0x1ae44235, 0xb7b5691b, 0xe0d005f1, 0x4d2989d9, 0x9093b331, 0x7dad2df4,
			0xb1f9383d, 0x7e95d2d7, 0x725aa2f4, 0xdd7779ec, 0xbf5c1ab9, 0x79560bd0, 0xa1c505e3, 0xa8c17890,
			0xfdaae579, 0x556a50e4, 0x76c5d2ea, 0xb3a18343, 0xe09ebe22, 0xbf68369a, 0xcd2d80f6, 0x523c4fad,
			0xcb0ba2ae, 0x831b74e9, 0xaf5323ea, 0xae84392d, 0x731f7868, 0xc910834d, 0x60bb7ba3, 0xa8919254,
			0x188258e4, 0x1aa79f70, 0xa8ed1c6a, 0xd1bf1b5c, 0x523d0850, 0x8d10398a, 0x31919617, 0xb71f02b7,
			0x9954e8cb, 0xf8cacc42, 0xb246ed1a, 0x6bb37af9, 0x0d81b1bf, 0x7c397e31, 0x041a2348, 0x74992d6a,
			0x99050335, 0x796bbae3, 0xb5826a90, 0xdbb4997a, 0x5b58649b, 0x7792a64a, 0xb3baf21d, 0x28d33bf1,
			0x2bfc1001, 0x462d3f41, 0x167f6807, 0x06bd2bf2, 0x585b92e5, 0x6139f187, 0x2ccf3071, 0xca4394ba,
			0x978f9a9b, 0x0eca323f, 0xd88f668b, 0x63c8be55, 0x42fce9b4, 0x02e0a8f1, 0x734dc579, 0xf2981733,
			0x943cfa46, 0x126fb32b, 0x879c8680, 0xeb893ecf, 0x4fa8e319, 0x48995987, 0x025a5f59, 0xb3c4e5f7,
			0x1c163d71, 0x070643ef, 0x6fa67341, 0x59f2e54d, 0x769209a5, 0xb0dcee3b, 0xc3babcce, 0x3aba262f,
			0x435600f5, 0xb53dd68f, 0x07b9ab6b, 0x54112f65, 0x74d7c04f, 0x244777cc, 0x63c5866e, 0x01791747,
			0x3d7c8ec2, 0x0c0936fc, 0x7abc49cf, 0xd874bbaf, 0x8c50edfc, 0x86c4dc63, 0x92130281, 0xabc31cbc,
			0x04ce3f6f, 0x05f69565, 0x300181ce, 0x16b11bee, 0x172678a1, 0x2bc0a5c6, 0x41fa18ed, 0x276dcfc0,
			0xad05b9ad, 0x0d2239a6, 0x20f68288, 0xfc34cfb3, 0xf0e39f66, 0xced67c2d, 0xe6b49e6e, 0xd146c170,
			0xf8dc2b02, 0xb53885bb, 0xeb8c855e, 0xd2b17d03, 0xebb2c4e6, 0x57a84fc3, 0xdd77c8bf, 0xf8fa1bf2,
			0x72ea4411, 0xd3288fa5, 0xc29c8d9a, 0xd49fee71, 0x00fa426c, 0x9a716fae, 0xac47528e, 0x2f305a4a,
			0x60025729, 0x177db365, 0x5672ffe2, 0xcc1d2494, 0x38fdc20f, 0xced9250a, 0x192529bb, 0x9e2772ab,
			0x23c71c1b, 0xec551ebb, 0x8bf4365c, 0x3c0adce3, 0xcd86033f, 0x6543e482, 0xe62e0740, 0xc0893984,
			0xf25a8edb, 0x3bba230d, 0xa873e0a2, 0x2479c029, 0x249617ad, 0x7f80caeb, 0x59ffc08e, 0xf1978cf2,
			0x44b162be, 0xaf339dd0, 0x4f79f239, 0x52d46531, 0x88ee975e, 0xf2dd4f25, 0x37cd9442, 0x19cc05cb,
			0xe63b4784, 0x5b100f3b, 0xc3081eaf, 0xf37713b8, 0x9f5e6aa2, 0x8de7ad91, 0x339cdf4b, 0xaf5cf089,
			0xf3b689bb, 0x971f230e, 0x42f769a5, 0x567c3f01, 0xd19914d0, 0x49c1d767, 0xf9c04f51, 0x803c29a7,
			0xa9f3124e, 0xce644135, 0xa70b53a5, 0x423750d2, 0xefc0b1eb, 0xb156383d, 0x7c652bd9, 0xa7c3d925,
			0x45770c9f, 0x95892b61, 0x8812e0a3, 0x536b89ec, 0x5a82b72c, 0x5b2d443c, 0xba182f7b, 0xed929a04,
			0x9c74a11b, 0xf23f1265, 0xe4f42d95, 0x589ef856, 0x66cad713, 0x727d3c36, 0x021f462a, 0xfb83c6a3,
			0xdb04f5d4, 0x7dc75a40, 0x7b15e74b, 0xea5266b8, 0x45132d08, 0x217de7cf, 0x96c7cd4d, 0xf76999c2,
			0x4c62c566, 0xc8d9be6c, 0x375d4344, 0xa5796744, 0xf3796b86, 0xd624d94f, 0x14ea3a8e, 0x00000000,
		},
		{
			0x5a1c863f, 0xce1e4352, 0x4bc81053, 0x3a5cd02b, 0x3175b38e, 0x80abddd3, 0x7a9d7189, 0xd995da62,
			0xf8041626, 0x35011eff, 0xcc7492ce, 0xd8f97eb6, 0xf50aea5f, 0xee1225b4, 0x04d5f7c2, 0xeb68c898,
			0x8b65b520, 0xe7b29765, 0xc09af945, 0xcb75a48e, 0xa0b5f8d3, 0x8cc403e1, 0x15f019a1, 0x2bb459ed,
			0x5181213e, 0xfacbdaa6, 0x2bbf4fdb, 0xb93a6106, 0x88b96aa4, 0x80c8229d, 0x192d89fb, 0xc810b9aa,
			0x88bab260, 0x4e51d9ce, 0x8e35e8a0, 0xdc6d72a6, 0x2e929d80, 0xc47b8519, 0x092bb618, 0x4e500d69,
			0x86cf818f, 0xc8b1fc89, 0xe4e503b6, 0xf2fb0a9d, 0x49796917, 0xc5ea84a2, 0xf9271af6, 0x797ff731,
			0xf66bbd53, 0x0376e0a0, 0x37c61952, 0xc51cf721, 0x17e00de9, 0x55c70a92, 0xd577a7b4, 0x92aac0b4,
			0xfa694e73, 0x8729f4f0, 0xa58ff182, 0xa0d5cbf8, 0xcbbab270, 0x515f812d, 0x56abd6dc, 0x28a52886,
			0x8d3118d8, 0xbda7b848, 0x98cb1890, 0x88c4fd93, 0xbab6cb57, 0xd356df77, 0xdded827c, 0x4aa189c9,
			0x380290b1, 0xf9363eb2, 0xe2591c14, 0x190fbe0f, 0x88a10eb5, 0x952d4adf, 0x4905350f, 0x5714fe7f,
			0x8edac7d6, 0x4c7a3e03, 0x9c3cd2ee, 0x61610254, 0x69810aa9, 0xc5978603, 0x16947833, 0xc63c20b6,
			0xfc0578d8, 0x59723b58, 0xa16da502, 0x9363fc57, 0xde246b16, 0x16223f4f, 0x0c0135b1, 0x5de55403,
			0xe6c012b5, 0x48d0dc5e, 0xbd151192, 0xb4b2a563, 0x74edf596, 0x42fe1d2e, 0x303635db, 0xebf4a4ac,
			0x6d6b5747, 0x0d7a4383, 0xfa5a4423, 0xe12a0af6, 0x2fdebe86, 0xa274fb9d, 0x1d91f4cc, 0x362b63c0,
			0x698fec2a, 0xd2900f06, 0xa99f69cb, 0xf4e994b3, 0xe884f418, 0x584725ed, 0xd9f9437a, 0x2992eb22,
			0x7d7ba57b, 0xe0ffacb9, 0x811fb553, 0x706fb39f, 0x8f2428f9, 0x330895e1, 0x0fcb2785, 0xa4520823,
			0x64c71105, 0x16c269ee, 0x0cbde91e, 0x2ff86d9e, 0xb084e0b1, 0x20b67e3a, 0xd2d507f1, 0x3d00f021,
			0x21c56a77, 0x3752a8b7, 0x1d54bcb8, 0xd9229cd5, 0x6f257156, 0xd2b36c15, 0xdcd1dc80, 0xb16a6418,
			0x8035bde2, 0x95adc5d4, 0x15d6b69f, 0x7158122a, 0x53ed3740, 0xe541d757, 0x4b929441, 0x226f8805,
			0x84c34e8f, 0x835e8408, 0x9d476c5c, 0xcd5cfb18, 0xb106a19d, 0xcf066f81, 0xbdcb83e3, 0x93c2e43f,
			0xa14b0412, 0xc7174cf6, 0xb481ed8a, 0xde4c921a, 0x13e45be0, 0x10f28a4c, 0xc8dbd7c7, 0x14f9b1c0,
			0x0b0de038, 0x8bafe697, 0x77998356, 0x49f5cd8f, 0xc69d5985, 0x9ccee35c, 0x2592df63, 0x692b27ef,
			0xc6520ee8, 0xe64ae6c0, 0xcad0d52c, 0x33ba98b8, 0x3dbdeb13, 0xf16ff0e3, 0xb9579b01, 0xc6ef2f85,
			0xf79a9c71, 0xab6061f5, 0x28f10598, 0x70eb2d73, 0x38354515, 0x427b850a, 0x6682c163, 0xdfe84107,
			0xfa93ccbb, 0x408d8153, 0xe1dad3e0, 0xd9a982e8, 0x884897d5, 0xc31b2a1e, 0xb478f4fa, 0xee99ff6e,
			0xc45157e0, 0x947c2164, 0x095f2aef, 0xa6e9d2b0, 0x8de34255, 0x53b9bbaf, 0xe365ff81, 0x93fefacb,
			0x63e258c2, 0x2b10a166, 0xa68ee08f, 0xcc748535, 0x57574a78, 0xad9283cd, 0x89f8c2d2, 0xcdd11aeb,
			0x5e4ee7de, 0x456e7032, 0x9a4bb62c, 0x83b993fb, 0xbb0462d4, 0x951827e8, 0xd839d9e2, 0x5fabaaf0,
			0xaa1073e1, 0xb60101b7, 0x85e5e714, 0x9886798a, 0x47ccfc2a, 0x2a43c082, 0x639cfbee, 0x3a22748d,
			0x84a8b74b, 0xab68d196, 0xe4ea47b2, 0x1254a263, 0xd7f7b145, 0xe72420fe, 0x96196a33, 0x87881e61,
			0x328821b2, 0x4e3242a5, 0xfb87ec03, 0x41dfd7ee, 0xecc69ce6, 0x610d2670, 0x63904dc5, 0x7570968c,
			0xb731b3e8, 0x1e33bef2, 0x3f089ef9, 0x6254bb7b, 0x5bfbdf2b, 0x2e0252ed, 0xb666b087, 0xc540c54f,
			0xcc29e040, 0x5e45e243, 0x229529e5, 0xd26bc761, 0xf0236643, 0x20330696, 0x9b30a163, 0x2dad0157,
			0x079c1540, 0xf4c815f9, 0x88651de7, 0xe35d3c98, 0x4573213f, 0x941ebe10, 0x81e2912c, 0x4b4b49d9,
			0xb1bb5636, 0x7e8b9569, 0x5e5f890f, 0xa84f27e1, 0x35a6964a, 0x8182d0f1, 0xaaac2092, 0x2d8525a5,
			0xada09831, 0x744d5ae5, 0xa2d37234, 0x05ce3f7c, 0xb7ba84e1, 0xe36b0abe, 0x6db15de8, 0x05e1f4f9,
			0x8a44781b, 0xa480046e, 0x1878fe0e, 0x5e9359d9, 0x864a2e18, 0x19c31ead, 0x29db321a, 0x530c0bb0,
			0xf3362ba0, 0x51f998cb, 0x6ce5437c, 0x82f6e1fb, 0xc16ccf88, 0x23a9bbde, 0xbb4ddf66, 0x6000b6f5,
			0xbfe39fad, 0x778c7b33, 0x1a0154de, 0x2b633e5c, 0x53f48ec7, 0xdf20beb5, 0xf4076178, 0xc38ca21c,
			0x072ed861, 0x17954455, 0x3ac6416e, 0x98cc6682, 0x8b4e07a4, 0xb35be300, 0xddbb774d, 0x48f425cc,
			0x508f1d8d, 0xa9fdd72c, 0x009d1b8e, 0x3b361e89, 0x9cd166ea, 0x2fd2eab0, 0x3e306c96, 0x17e250b2,
			0x63326f9b, 0x3ec2ba0f, 0xec720548, 0xfd3283e4, 0x765730be, 0x77adbced, 0x48dcbeaa, 0x6adfe504,
			0x464a47e9, 0x76b75b45, 0x0a7435cd, 0x1b97b010, 0x5c6ff212, 0x8afb73f5, 0xea08af12, 0x24ce4d7c,
			0xe8d451d7, 0x25ff2e3a, 0xe7f96de4, 0x59edea6e, 0x2906558e, 0xfad1db99, 0x0e1e25a1, 0xa4d03113,
			0xd95f1df3, 0xb8a7d8a8, 0x1f685987, 0xebe69e56, 0x68b324ad, 0x298c9ee1, 0xf9ef11b9, 0xe41999a5,
			0xcc3ad687, 0xd715a764, 0xaf069ec5, 0xcf678cb8, 0x06a695b5, 0x374b3e4f, 0x25500ede, 0xdf2f0a78,
			0x04ac0c01, 0xec68079d, 0x3e45fdab, 0x0452fe65, 0xb97a6f9f, 0x9d80cbea, 0x10e8bc59, 0xe5e8804f,
			0x95a546cf, 0xd171e378, 0x150b7e05, 0x6d7a875d, 0x88597fb5, 0x32477995, 0x7d57e05a, 0x3a915f27,
			0x515359e4, 0xefa661ce, 0x0fdcca8d, 0x0d51c26b, 0xbbb40ffd, 0x8b05e320, 0xcc402f5c, 0x892eed0a,
			0xf3f186b1, 0x9e1ae687, 0x903dec55, 0x835aa0a2, 0x301ed71d, 0xd935d06b, 0x769728c4, 0x330f41b2,
			0x8b3e8490, 0x474727a9, 0xd22136b3, 0xa2944e13, 0xd3dd1bdc, 0x7da5d6f9, 0x74390efb, 0x09185263,
			0xa086906f, 0x258a7065, 0x625a0c78, 0x5d60c158, 0xca9da197, 0x99c74a8d, 0x329cee03, 0x17cb5e9a,
			0xea96cd7a, 0x6212eef7, 0x88532ee8, 0x199e525a, 0xed38d858, 0xe37ee107, 0xf5a58537, 0x63c93a2d,
			0xd9a08f5d, 0x237f531c, 0x4fde48a6, 0xfe7adc7a, 0x8c6a076d, 0x405f3f6b, 0x6e3ff695, 0x1c79a1c1,
			0x2b2a97ad, 0x40d8a902, 0xf6401ab7, 0x35e20ef4, 0xa5dd3939, 0x8f038e9e, 0x3945a89e, 0x1ca1a762,
			0x128bd29b, 0x4d339c85, 0x047fb350, 0x86df202d, 0x9833208c, 0xd49a6fb2, 0x814b098c, 0xc83f0eca,
			0xf968d519, 0xf56aa774, 0xc2b209e7, 0x85169362, 0x7a89c0aa, 0xf26b2ccd, 0x5f7858fd, 0x73b0fb61,
			0x9ed5e9b0, 0x6e9b16a3, 0x68006b06, 0x59d811d4, 0xec2c2573, 0x0f7ceda1, 0xf4efcca4, 0x5e472bde,
			0xaf6516a3, 0xa3d937a7, 0x3fd15e7a, 0x4bded079, 0x3838dd94, 0x948bb11a, 0x72b98e49, 0x9a7c98ad,
			0xd886dbf1, 0xebf71a6d, 0x9cdadf41, 0xe8f90311, 0x0f60e1a5, 0xbe977923, 0xca27ec18, 0xd132170d,
			0x539f0aa3, 0x75b926ad, 0x547a8343, 0x1e173ecf, 0x8707b2b6, 0xf1e345b5, 0x51a131da, 0x3b1376eb,
			0xf7b47ec9, 0x7c0279c3, 0xc794909d, 0x4c87e9aa, 0xb1eb24cf, 0x9ad8bbc4, 0x70e79e34, 0x7d0a974c,
			0xe84c6bf3, 0x3581f00c, 0x7775326d, 0x750c624b, 0xb250eb38, 0xa8e0fe59, 0x447d33f2, 0xc5bb3a29,
			0x1274ebe3, 0x66a3d581, 0xa2329c26, 0x3913b4bc, 0x52110578, 0x6db5a7f3, 0xfabd69aa, 0x5184362f,
			0xf7318200, 0x0e0040de, 0x871fefd2, 0x48b3cb58, 0x70301242, 0xcf16a6a9, 0x1e1e51a8, 0x4c26d2ca,
			0xe4cad956, 0xdab0ae02, 0x963fc685, 0x5f2c3033, 0x00a133b1, 0x5c2edfbe, 0xc12fa396, 0xf0e29214,
			0xb9c6165f, 0xb78f1b5f, 0x1db46eb7, 0x959902eb, 0x41b9c62c, 0x598b4c22, 0xe340b2b1, 0x9186238b,
			0x2e581a2b, 0xf8147ffe, 0xd9f9df14, 0xf5806cab, 0x9508612c, 0xb4085b79, 0x6e53d04f, 0xf0defa42,
			0xe4d0aa67, 0x9b8eb7d1, 0x3fdb55c3, 0xadf127bb, 0x2b2726ff, 0xd5993a67, 0xc0eaf472, 0xd7d34b34,
			0x91b3874d, 0xbccd560f, 0x07003b79, 0x8c102cb4, 0xc07801a7, 0xed12e974, 0x01918c75, 0xa6c74256,
			0x5d688fb5, 0x8b546045, 0xc81bad02, 0x081b4449, 0xdc93f658, 0x955e617f, 0x776ff62a, 0x1371de74,
			0xd9b0c15d, 0xfbe45d11, 0x39a44231, 0xe9a2fc54, 0xb4a651c3, 0x5abd0178, 0x93c196a3, 0xfcbf0de3,
			0x997559f4, 0xc0377c37, 0x7ee54217, 0xad73b6a4, 0x8bcc2ef0, 0xa07549b8, 0xa9837f90, 0xf22a64c9,
			0x2d038379, 0x150eecc5, 0x2747b979, 0xbede49ec, 0xb130a5a8, 0xc790e819, 0x42ff5f54, 0xb512974c,
			0x066ac76d, 0x0ea3bf54, 0x81e9cef1, 0x720b46a0, 0x0cbba9ce, 0x8dce95b2, 0xe532b4e8, 0xad1a633a,
			0xd09b9f93, 0x9f769aeb, 0x1d04ba1d, 0x311e3730, 0xd585f15c, 0x864558da, 0x9595d9b9, 0x55a11f89,
			0x78a01b36, 0x345bc60e, 0x69016cd3, 0x39c9afa3, 0x0e43a5e2, 0x0a261add, 0xecd04bb0, 0x3b3de17b,
			0xe994415f, 0xc86db46f, 0xbc78f14d, 0xee50f89a, 0x5d98d4cd, 0x6e67d7b1, 0x407d0174, 0x00000001,
		},
		{
			0x39bbb090, 0x26617e54, 0x3f5c22ab, 0xe6758629, 0xee8858c7, 0x95d02af9, 0x32b184f3, 0xc0228282,
			0x264bbb7b, 0x236401e6, 0x198ee7b7, 0x8723caf1, 0x60194804, 0x05095455, 0xfcd3e25e, 0xb64ea2b2,
			0x5d9ac517, 0x58da0cba, 0x42f3a2c5, 0x13e392b3, 0xe2be4ad8, 0xc5a21866, 0x5d0e0499, 0x408bd2e3,
			0x12d96e3b, 0x0f9d5e47, 0xd1d93318, 0xff341bf8, 0xcdec2c5b, 0xd92279e6, 0x399e63ee, 0xc79ba224,
			0xd4a536ec, 0xb056558c, 0xd38ab607, 0x27dd7915, 0x27a88bcd, 0xdce22d7a, 0x2030fce7, 0x63d82bba,
			0x000cc011, 0x9d0f8806, 0xa6fd717b, 0x60fdff2c, 0xb1c62193, 0x064e5460, 0x9fe961d0, 0xb707ad16,
			0xb5fbfff5, 0xfdca2b23, 0x8e62e2f3, 0x60eb482e, 0x875077b1, 0x267a6fd3, 0xf2ab3f81, 0x824c4c5f,
			0x043873a0, 0x5a5f62f4, 0x09ba1545, 0xd30b11e7, 0x3299e0f2, 0xd8ab2df7, 0x98057453, 0xc4457940,
			0xee988154, 0x3a1ef0fa, 0xf78c963a, 0xfe8abd3f, 0x2fd03f4f, 0x234882a6, 0x3fa5b9e9, 0xc2f8fbf4,
			0x4243ef9b, 0x8278d67c, 0x87bc85d1, 0x87990cdc, 0xa0a0eb22, 0x76574214, 0x6bf90d66, 0xa08df33d,
			0xab4c8c79, 0x70d03f17, 0xe9dba51b, 0x0f5c2ddf, 0xb5d7751b, 0x502572cd, 0xa66317e7, 0x2e50719b,
			0x12d83026, 0x3145633a, 0xb31699df, 0x9548bcf5, 0x45536601, 0xd07e4fc1, 0x4786f6bd, 0x54626fab,
			0x2b58a63d, 0xa5734963, 0x79ce7da6, 0x115ebc11, 0xa0676948, 0x07913e76, 0x9f1a2ea3, 0x7c856cda,
			0xa9f13fea, 0x717ca145, 0x8e8497ef, 0x83e2673e, 0x33e51890, 0x08a95887, 0xff86fefe, 0x8be2e339,
			0x5ce079bb, 0x83c73fac, 0x89abeb0e, 0xb1f1dd83, 0xb47ae1b0, 0x12ac4342, 0x1a0dd52e, 0x53a70199,
			0x22f6a3a5, 0xaed67872, 0x39767bb7, 0x33fe9f89, 0xb7358d59, 0xde589d4a, 0x3e80b0c0, 0xd8ce6e4d,
			0x8ae4e9e9, 0x93901f52, 0x7beed44c, 0xdaf3deea, 0x6c1ca1ce, 0x586875f0, 0x74f6375f, 0x9eb70b69,
			0x2d9d89ed, 0x1b87fa55, 0x11955b9a, 0x9691ff0e, 0x7170bd84, 0xd770e405, 0x502b9155, 0x45a66416,
			0x42efb3a8, 0x8a17f5ad, 0xbd3dc4ff, 0x1b60436d, 0xe7f2649f, 0x68314a74, 0xaceebb69, 0x6ec94fd4,
			0xe6f128a8, 0xd5739937, 0x84bd1621, 0x8283b9cb, 0x59f00b98, 0x29a936a9, 0xb8c62b22, 0xc31f81b1,
			0x54d7523f, 0xabb683fd, 0x110f6e11, 0xcf690d8f, 0x0176b9bb, 0x511cf430, 0x8d836bf6, 0xd6624afb,
			0xd4a2314e, 0x5ab3e846, 0x2a7cf9f1, 0xbf87469b, 0x755c347b, 0x13bda201, 0x5bdf66a9, 0x089f1ea3,
			0x545c0bd2, 0x6a8a8fd5, 0xd4c18ad7, 0xcd390b54, 0xb280f20c, 0x09c4c1bc, 0x5a5a1358, 0xe3503b41,
			0x2a182022, 0x2c0e019b, 0xfe7493fe, 0x796830c8, 0xf3e57d5b, 0x48dda7ad, 0x4f1a5d17, 0xe479b473,
			0xdda26015, 0xb5ef42a3, 0xa7a0fa99, 0xc75550b9, 0x727b4259, 0x75f37404, 0x256eb01d, 0x9f512d62,
			0x1b7c226d, 0x667e4b41, 0x6e419af9, 0xf669dc4f, 0x3680b7d1, 0xadb4972e, 0xdd6a8fd7, 0x6844b089,
			0xb6158e06, 0x5b29d5bb, 0x14c96b28, 0x68b7dd89, 0x7a66fd2b, 0xe5fff1c5, 0x79ff7280, 0xe3c96bbd,
			0xf53edb2e, 0xc2d4efd7, 0xe24c5671, 0x58e0cf3f, 0xda3c3885, 0x7e8762dc, 0xb3fcb801, 0x43d75041,
			0xef89bbb2, 0xb6229bf7, 0x35f5b769, 0x716e1616, 0xa260f816, 0xe6ac7c7d, 0x0a330b95, 0x5c3065db,
			0x90fd0685, 0x7993cc9b, 0x24355b35, 0x967ab3bd, 0x39b15ac7, 0x3a72d9cb, 0x885b7c68, 0x529f0dd6,
			0x23ba848f, 0xd23be21b, 0x4f46c4e2, 0x10f428c4, 0x8e2a4ee3, 0x822b1d39, 0x54ec6f2f, 0x46d0d902,
			0x8e205b0f, 0xcc881367, 0x60cd8acf, 0x836b0732, 0x0010319b, 0xe60e32fa, 0x95f8e924, 0xa89650f7,
			0x0eff4fb0, 0xee577f74, 0xae0e8a8b, 0xa7b2c2c2, 0x2d7dd6ca, 0x8f974e5b, 0x00939589, 0x6457a402,
			0xf580a26b, 0x4f524cff, 0x0d8b3f65, 0x9fdd3daf, 0x03fb58fa, 0x6174bcc3, 0x25bc1260, 0x38ea5346,
			0x9d5d5cc7, 0x2309f681, 0x4981aba5, 0xdc33b767, 0x6c368ee0, 0x8fa600f5, 0xf1024154, 0x30e7461a,
			0xfc753b2c, 0xc220f01f, 0xf01bca32, 0x4ef2f798, 0x21cf9014, 0x900799a5, 0x58349b09, 0xad4267a0,
			0xd40113c6, 0xfddb5518, 0x7828a0b6, 0x6850350c, 0x718f996e, 0xff598ec6, 0xa1a1032d, 0xa0874dd7,
			0x473d10a1, 0x1b12d7c5, 0x16bc18cb, 0x91d4546a, 0xfbbbee9a, 0x2b5ca76d, 0x26a79f79, 0x10cdac20,
			0x61b7ad4c, 0x7e488ddc, 0xfd671851, 0xf59ae66b, 0xa86a9f9c, 0x1047104e, 0x139db6cb, 0x5c8d4175,
			0x35495a51, 0xdd39477a, 0x7fc83f9b, 0x187607f9, 0xea99bdaa, 0x5b35d92d, 0xdf1e2ea0, 0xd43c3bd3,
			0xe45776cf, 0xb587fcd8, 0x455641b3, 0x488b0119, 0xa2371524, 0xd366473d, 0xf30e0dd4, 0x822275a1,
			0x78e6a9ea, 0x2e7a1740, 0x493bab76, 0xa9c59885, 0x8876b560, 0x0b6ad788, 0x95cbd504, 0x25a46d2d,
			0x80ce5ec7, 0x771b940f, 0xc2bf628d, 0xd7edba64, 0xa11d832d, 0x03ac9a5c, 0xed59f83c, 0xc8cb8cf7,
			0xe0398734, 0x111e155d, 0xadfd78b1, 0x5fbc5525, 0xdac49422, 0x1b02d6ab, 0x438d97fd, 0x7b647281,
			0xa24cfb68, 0xa74b0c17, 0x9c3bee7e, 0x1d16e8fa, 0x8df95ba8, 0x6fcc6dcc, 0xef00c546, 0x3c1af3ba,
			0x77ee3620, 0x0b7f8801, 0xb4325254, 0xb6fb536c, 0xbc16d4b0, 0x068ea6a4, 0xd6c6e8c4, 0x6fe05cd5,
			0xaf63d9f1, 0xc4824fd9, 0x93ca3ac5, 0x1ffb2de2, 0x96d85164, 0x4608fe25, 0x38fd6d55, 0x3eb6b3cd,
			0x71ec5064, 0xfafc4aba, 0x951d2b69, 0x2c2c6304, 0x01162633, 0x95a82c77, 0x930d9d81, 0x316c28c3,
			0x60109cf8, 0xe988ef02, 0xd1729d5f, 0x13904238, 0x98d57c02, 0x2e3b879a, 0x77e3f77e, 0xaf8254c4,
			0x4a72d1ab, 0xcee981ec, 0xa67b0cdb, 0xa52eba6d, 0xc3bb9a71, 0xaec92edc, 0x4cedeca1, 0x4ab879de,
			0x562c9eb3, 0xfb026b27, 0x6843fa2f, 0xd2d3649e, 0xfc9ba690, 0xea7e214e, 0x46f2d793, 0x4b4f3edd,
			0x3358ed16, 0xa46eee00, 0x51a2f0dd, 0x93d2a38b, 0x2c632ba5, 0x634d6f20, 0x88f90184, 0x8954c8ca,
			0x9c4199b3, 0xbee9c495, 0x0d3fdf05, 0x0c46c2ca, 0x2c2119f8, 0x6c187161, 0xbeeedb8e, 0xed971827,
			0x32d8820a, 0x595053c2, 0x76e9de3a, 0x87ee7db8, 0x369f6afa, 0x05a37910, 0xa76cca81, 0xd9001b4d,
			0xaa9e44fa, 0xd1364a7e, 0x462044ce, 0x02030e52, 0x495e9657, 0x3bcc85f9, 0x253618cb, 0x4678f1ba,
			0xb7337f66, 0x586a80a9, 0xe1396cca, 0xc0c9119e, 0x451ae9b2, 0xb234c65d, 0x85833a3f, 0x573d8f65,
			0x35ebc362, 0x6c9e0340, 0x09c63ee2, 0xb959d981, 0xab99e848, 0xcc87d11e, 0xf15bfbcd, 0x478536c5,
			0xbbf08527, 0xb05ca812, 0xb2a6a53a, 0x6a9db606, 0x0604b50e, 0xfa2b3125, 0xb570dc89, 0xd7ee1d22,
			0x7c3b780d, 0xafd3ccbf, 0xc1545020, 0x969feb48, 0x37fc21f6, 0x4282e54f, 0x2a52411a, 0x8271e38d,
			0x1e40448f, 0xd51db62b, 0xf3708cf8, 0xa44ccdaa, 0xe98cb826, 0x40124c36, 0xcdf90ce7, 0xa8467b10,
			0x2a0a7c97, 0x970e0fc1, 0xe3e944f9, 0x7e03f87a, 0xf63fa50d, 0xff990b81, 0xa9772e11, 0x91476aa7,
			0xa16f1076, 0xceaffd4b, 0x8541a5fc, 0xe39b2e96, 0xa75c2d70, 0xfffb7b35, 0xc757e8a7, 0xf0e2fa06,
			0x2e74dc5c, 0x393e54a8, 0x2a7eec97, 0xb202163f, 0x572dcdf1, 0xdaa63931, 0x6020717a, 0xc94e2589,
			0xee9e662b, 0xb9a96f2f, 0xa45faaef, 0x042569e0, 0x599e8636, 0xb64f595f, 0xc5dbfcdf, 0x8ed7b27e,
			0xc88d23ec, 0x1621f00f, 0xf0e46837, 0xc30a2bcb, 0x6543088b, 0xca7315c6, 0xaf1e8f14, 0xbc99616e,
			0x10e8a7d7, 0x91b8df0e, 0x8a979cd0, 0xd33135ed, 0x210b2ee0, 0xde483264, 0xcfc9e82c, 0x24a6541d,
			0x2da3d9e0, 0x26b6243a, 0x1c787c85, 0xc64b5cb5, 0x3c6ca357, 0x3428faad, 0x4a80a32e, 0xf26a7d29,
			0xc62e63da, 0x608b82d7, 0xea23e37f, 0x80e30c50, 0x2145b0f2, 0x6975434c, 0xca30a893, 0x2dd0754c,
			0x253ebda4, 0x0d89c1ff, 0x732e843f, 0xe7ab12a3, 0x1140559c, 0x58f9e2b1, 0x0a0c2f74, 0x21b23128,
			0x29be6ac7, 0x780eae20, 0x4f02e7f8, 0xbfa67d8b, 0xe7c2758a, 0x5d2197c3, 0x6a963276, 0xf4f482d0,
			0x9359ab66, 0xd4166ee8, 0x1a0d5b3d, 0x26f52cdb, 0xf4fe3b17, 0x26a6a484, 0xd6e2a126, 0x506e2efb,
			0x7dbf6286, 0x85cb4779, 0x21f850f8, 0xc40b2333, 0xa18df956, 0x6025ca75, 0x62af755a, 0x2635a79e,
			0x91017ef6, 0x65a49a95, 0xce81e83e, 0xcd78036d, 0x9bb90eb4, 0x59863cde, 0x6f77f587, 0xb9d4ac0f,
			0x3c7dcbf0, 0xa284ff2a, 0xf16e7f2d, 0xf7ac1113, 0x7552cf71, 0xa06e79ad, 0xa2504ae9, 0x5e3eeb7d,
			0x42a5019f, 0x768f0638, 0xe4c27680, 0xca3e5780, 0x2fee7ac7, 0xb4bc78c3, 0x5c4cf243, 0x3cc93793,
			0xa0e2abf1, 0xe6042b35, 0x3f1b61a3, 0x325218c7, 0x799d1ab5, 0xd8541578, 0x3f89c9a7, 0xeee1b3a2,
			0x5b3ad87e, 0x8f6efb33, 0x05761003, 0x8bcf984c, 0x60b577d6, 0xeb1b969d, 0x6711520e, 0x478143b5,
			0xcda60b12, 0xb9641304, 0x7f49a6dd, 0x9f3c6b95, 0x3767b6f6, 0x7e6f6a1f, 0x563ea1b4, 0x00000000,
		},
		{
			0x5548e13d, 0x6c4b1c56, 0xe7a79ce2, 0x742436a0, 0x56739396, 0x40d59ee2, 0xf973d61d, 0x7fb69d9b,
			0x572fea88, 0xf20790e5, 0x3caca5bd, 0x4a5769c6, 0xac15b8c8, 0x81494fee, 0x7bd70685, 0x16b8deef,
			0x0552b957, 0x5612685c, 0x1f072b4a, 0x5c9c4578, 0x02932704, 0x2dee2d40, 0x57a5b215, 0xfcaf1431,
			0xe826c2e6, 0x76eaf68a, 0x7039e7f0, 0xedaeb3b2, 0xc6771e01, 0x303dac9e, 0x13fc27ac, 0x1229906c,
			0x75750da6, 0xd2448f15, 0xfb15475f, 0x7ef0a83c, 0x8566a91b, 0x60e31e39, 0x647e2218, 0x8508326f,
			0xca8c0dcc, 0x24b89cb0, 0xa9b165ac, 0x38050eef, 0x25a062dd, 0xd685b01f, 0xc0841c96, 0xefe87fca,
			0xb4fbf95e, 0xf020ea56, 0x14d57e0a, 0x590ea59f, 0x5fd80c23, 0x126d1186, 0xa746101c, 0xc759d4b8,
			0xbad48a5e, 0x25ac2e38, 0x21237d73, 0x6353db11, 0x4ce929e7, 0x77a982ee, 0x7e6b51c0, 0x53c8b6b0,
			0x6c49a8b4, 0xd70cf0e5, 0x1365f9c4, 0x9f01a472, 0x4c5b8685, 0x215c41de, 0x57020209, 0x134c1428,
			0x9a7e10eb, 0xd2c9800e, 0x738bcf0a, 0x907f8c7e, 0xfb96b4f8, 0xb88fb873, 0x7718b5ba, 0x4e011f38,
			0x3ca56200, 0xbfefed9d, 0x5287c977, 0xb9918d66, 0x17ed9e52, 0x256e5c39, 0xdb71d1c1, 0x37c4c793,
			0x959de9dd, 0x1f03a80e, 0x61ffeebc, 0x3948d7c5, 0xd26aaf7e, 0x0f8942b7, 0x44b54d0e, 0x1b58a4c1,
			0x061317f2, 0x0e87c94f, 0x696925d9, 0xefb1ecd1, 0x462954d4, 0xcf2dc901, 0x47e82da0, 0x90e11fd3,
			0x8d71606f, 0xe990716c, 0x157ed66a, 0xf6292dcb, 0x5f2dbfc2, 0x3c1ad2ec, 0xaf720008, 0xaae1e4ce,
			0x2556cdce, 0x23d17505, 0xe08f1fdb, 0x12474f5b, 0x55aea089, 0x5a6e0cb6, 0x5fa31006, 0xe22dbd73,
			0x41480957, 0xb2fbbf52, 0x232ccb06, 0xed8a8ea1, 0x3c6bd7ec, 0x2a28017a, 0xa67db973, 0x7acf96f9,
			0x1d3566f3, 0x239b7ba2, 0xad44f504, 0x90fbbd7a, 0x097b4b2c, 0x1c3d2af4, 0x02c8383d, 0x277b8d56,
			0x74e088be, 0x88e5677e, 0x48fb20e9, 0x011a0387, 0x50ee59f1, 0xe086bcce, 0x59593bc8, 0x334ef5df,
			0x8560425f, 0xdf48273d, 0xb1a6c2ed, 0xf0a02c71, 0xbefceade, 0x18711243, 0xc75eab1b, 0x41145f98,
			0xb3f875f2, 0x5bb65d7b, 0x803f730a, 0x47434995, 0x241b3e45, 0x938257ef, 0x61871693, 0x0930066a,
			0xd7ca0fcd, 0xace9a8ef, 0xd7141c0f, 0xdd0ab443, 0x5b9f3bd9, 0xb187db39, 0xdd0666e0, 0x5bde08a6,
			0xbee303b4, 0x29a2e3a8, 0xa6fc8aab, 0x77449e33, 0xb5b799af, 0xaacf7321, 0x89b13166, 0x9602c03b,
			0xace5bfbb, 0x607e5f23, 0xc3edbc06, 0x62fabc78, 0xae99eedc, 0x1b8bfccd, 0x801dfbd2, 0xe0bc7eaf,
			0x110ca6f7, 0xf30af15c, 0x064db66b, 0x10f7ea99, 0xddd46daf, 0x68e072ff, 0x4ad2dea4, 0x9bf51963,
			0x7d8d9408, 0xe96f455e, 0x10da9487, 0xa624a3e0, 0xe3949c9a, 0xc7ebca0c, 0x3f99bf25, 0xf2649716,
			0x4c157792, 0xb2174bdd, 0x5d3bdc43, 0x7ed0b67b, 0x1a7a8fff, 0xc672e6e4, 0x038a23a7, 0xd61eb408,
			0xf9aeac5d, 0xe2aca7d5, 0x693a75b3, 0x51224ca2, 0x43d62e02, 0xddc75303, 0x46c7af41, 0x6fc1e1c4,
			0x01885042, 0x159ce0cf, 0x2f6631a5, 0xd18f2f74, 0x4aaf43cf, 0x88d00180, 0x6d439281, 0x7ccfc7ce,
			0x37e32dd8, 0x936a7f72, 0x33830b79, 0x9658c281, 0x12b11f59, 0xf07492cd, 0xc8d33cb0, 0x7f5b5c6e,
			0x1deb78cc, 0x0b82d368, 0x639a9f7c, 0x22b0e91f, 0x6928f0cf, 0x355f9809, 0xdd8b766a, 0xc8e7ed08,
			0x4bdc4b6f, 0x94229bec, 0x3862bee2, 0x07e7e7b8, 0x05db1485, 0x0d1a7f3d, 0x540be78e, 0xddffdf22,
			0xe1e51e8a, 0xef533ae7, 0xfe45fc60, 0xd630b07d, 0x8fb5976c, 0x3b5025bc, 0x5fffa492, 0x0f009b41,
			0x5185c0c1, 0xc26c4d46, 0x88b55128, 0xe972f2da, 0xc9987e64, 0xb72d63ba, 0x87946da3, 0xf8ba475d,
			0xb940cd86, 0xb6983067, 0x7191f190, 0x8ac1b163, 0xfdebc38c, 0x4716ad9a, 0x00ca55a6, 0xd3a984f2,
			0x31906400, 0x868db671, 0xcaa8ecd9, 0x62580e43, 0x66f7b1e1, 0x69b6c365, 0xad0e620c, 0x5dafe4aa,
			0x52d4c07c, 0xfbed0117, 0x680e7ac0, 0xf0c08a98, 0x5a670a8c, 0x42ca9d1c, 0x2c13d973, 0x185f0c21,
			0x76319a83, 0xc00bd665, 0x22114902, 0x8103115e, 0x50944ce7, 0xa48c8aab, 0x014de2f5, 0x90c500f3,
			0x167630a8, 0xa73d328b, 0x4f0ddfd6, 0x9f652f6c, 0xc153f7cc, 0x035fcf6d, 0x7758a11c, 0x0a409a9d,
			0x1bf0051c, 0xc7566031, 0x67957b90, 0x11822415, 0x11b9fb6b, 0x50af147c, 0x742e0940, 0x395758b9,
			0x353bd108, 0xa737c603, 0x8c795143, 0xdaf6ef0f, 0x116a1df7, 0x49c95c18, 0x4434d695, 0x6fc3547d,
			0x8bd83321, 0xac0acaf7, 0xe27fae5c, 0x47085136, 0xe78efc63, 0x1a2fe7f0, 0xd24770ab, 0x110f59ca,
			0x3b048786, 0xe48fade4, 0xc1864da3, 0xda6429e7, 0x8f95ce28, 0x0b39ad20, 0xcd453d81, 0x1b9eaf27,
			0xb9efa1fe, 0xa52595b0, 0x08dc7efa, 0x4b026993, 0xd0b11b10, 0x793975c5, 0xbb6ef4da, 0x54fa655b,
			0x7662a611, 0xdd83364f, 0x589068ad, 0x21839737, 0x14447b37, 0x496f6839, 0x5be96742, 0x07bf9869,
			0x18fc153a, 0x9d59ee0f, 0x2d11a7ad, 0xe416d349, 0xa45dbe93, 0xd9ccbb18, 0x5bedd609, 0x44537ecc,
			0x5a0c01d9, 0xd456cbe7, 0xa85beae3, 0x9e7b1954, 0x7636c01a, 0x4e8b331d, 0xc59da976, 0x5383cb52,
			0xd4d94310, 0xb93c165b, 0x9c6b7344, 0xf00f8ab7, 0xf52442db, 0x6b8969c4, 0xc8cb82f8, 0xf0b41782,
			0xe5b77579, 0xda71579b, 0xf0dd9326, 0x8a2a508b, 0x92904634, 0x53becb8d, 0x5eeb7e23, 0xebda636f,
			0x4cfbc840, 0x51ef6d59, 0x8d06b7d5, 0x6c48ee37, 0xbaa8e36e, 0x6b1b72d4, 0x15e8a1e7, 0xdbb9bb56,
			0x9126f4ee, 0x0dfde569, 0x4e010d30, 0xd0e411bc, 0x552ef8cf, 0xf577a733, 0x55a8739d, 0xdd738ae1,
			0x91def843, 0x37c4ba02, 0x9b517702, 0x50027685, 0x3d1cee3a, 0x6ab72d1f, 0xab931faa, 0x4b0ba2ba,
			0x1c5d3b29, 0x41b16501, 0xaaf04a19, 0xbb49dd0f, 0x404cb186, 0x72948199, 0xb8041acf, 0x53322478,
			0xc9335783, 0xef805d86, 0x773be884, 0x2df96582, 0x3f645da1, 0xbfd076a6, 0x047c875b, 0xbd2b40b5,
			0x7e1536fb, 0xaaa18b82, 0x4a6e4fd7, 0xa6114ca9, 0xaaa9edf8, 0xc4358efd, 0xd35fdb03, 0xb1c34afa,
			0x1c5ff765, 0x7ad950a9, 0xbdd63dac, 0x48297c72, 0xff3743f8, 0x639bef53, 0x0f95192a, 0xde141144,
			0x2a6ff293, 0x8f04d0e5, 0xab845b40, 0x782dc231, 0x1cc3de9c, 0xf387bd8c, 0x79fe4478, 0xdfb9563c,
			0xb6f51937, 0x7ed8d6f4, 0x04cb6716, 0x5b3af5ea, 0xc4ec33af, 0x8f3d1f85, 0x349388d4, 0xc3c08ac0,
			0x8af22c33, 0x34bedb8c, 0x62518560, 0x2c99a01b, 0x005034b1, 0x7f834923, 0x4d1acfcb, 0x84123cc5,
			0x234d92eb, 0xc0c96acd, 0x74cdbfc8, 0xa0e69897, 0x6f12b2d2, 0xe668e156, 0xba2bfed7, 0x5f279ef1,
			0xf628428d, 0xcd879168, 0x0d1ff65b, 0x607f8884, 0x606b4523, 0x94033593, 0x4d99fd8c, 0xa561f106,
			0x02c21451, 0xfe9d2b26, 0x2ec7d8c6, 0x32860bcd, 0x6037c4be, 0x87cb1053, 0x6d8d4439, 0x81999f61,
			0x3ac63825, 0xd2fd1acd, 0xc69f3b18, 0x48af5e1c, 0xb68ed5e7, 0xa3adc497, 0xc7355dca, 0x4f7bb655,
			0x895bceb4, 0x7f9ab0f5, 0xdb736aa6, 0xda8e9d76, 0x3621f1ad, 0xc0f2842e, 0xc7dda0a7, 0xda116a42,
			0x5cd0eda9, 0xcb735771, 0x8c78a0d3, 0x8f4cdc63, 0xa4c6fc4b, 0x98b0ea70, 0xf2f92e94, 0xfb56e9e1,
			0x6fb3f1bf, 0xa98d0a3f, 0x91600ede, 0x526a41c1, 0xa0152543, 0x576e603b, 0x646ac446, 0x4e279a43,
			0xb2676fe1, 0x098ee7de, 0xba09ad97, 0xe128c5db, 0x2fee1de1, 0x3ffaf7d7, 0xc261af30, 0xfd841843,
			0x3ee51c2e, 0x03b24d63, 0x38748e4a, 0x7b75571a, 0x558d5b8d, 0x63bb37c0, 0xdda1150e, 0x88258e6d,
			0x37360df4, 0x692be295, 0xdf666537, 0xc05d4031, 0x63c7a852, 0x243de659, 0xce4a3d87, 0x068122a4,
			0x5f8795c7, 0xd735e48a, 0x51bc719a, 0x8bbd1c6b, 0xde73741b, 0xc786eef8, 0xafe7636f, 0x42487f5a,
			0x5864b9bb, 0x10984fcd, 0x58036be3, 0x6bc521d2, 0x4f7b6f0a, 0xb0efba11, 0x3fa82544, 0xb9279d55,
			0xa26fdd6e, 0xe56016b1, 0x34c78492, 0xe09e793e, 0x1bcf96ff, 0x0e4aa239, 0x4400bca3, 0xd28adfbf,
			0x76e00c39, 0xe529242b, 0xb8ffa7f3, 0xe3996302, 0xb584c96c, 0x22792833, 0xcbe6fdde, 0x0001c8c0,
			0x9dbb9b70, 0x865c55b2, 0x84d58cea, 0xfbb3dd14, 0xb24e19a1, 0x833db055, 0x6bbed658, 0x01881630,
			0x8e33288b, 0xd8c4711e, 0x44369758, 0xd6be3e92, 0x4c9a8770, 0xb1c97aab, 0x252b7b6e, 0xf39b836d,
			0x4f47d1ec, 0xdb326636, 0xcaa917f0, 0x8911b71a, 0x8e487c87, 0x631641d5, 0x87b590e7, 0x0c7a32c5,
			0xc9ea1474, 0xd33b4594, 0x5352f567, 0x3a4e9741, 0xf8715220, 0x8186341a, 0x6045cc86, 0x9fc85342,
			0xffec3021, 0x28141907, 0x6efd4c4a, 0xa4630780, 0x9e23aebc, 0xf69693ba, 0xb99068dd, 0x7b3af7c0,
			0xe38c8221, 0xcd963ef2, 0x09880609, 0x01f26c4f, 0x02331dc3, 0x06761ef5, 0x80a23b75, 0x00000000,
		},
	},
	{
		{
			0xd51ffc93, 0x8e160a13, 0xe3e0fadf, 0x50ce5cff, 0x93f22fd1, 0x4fca297c, 0xcf4e260c, 0x2010fad6,
			0xf738f9b6, 0xbc8dd78f, 0x48a1bf02, 0xe06a6e1c, 0x03205492, 0x594622c4, 0x1a4a86f8, 0x51b0ddaa,
			0xc63094a2, 0xe46dc3e8, 0x68bf134b, 0x5717b8d8, 0x00b0aeb1, 0x14800d05, 0x004f98ef, 0xf37cea7a,
			0x4b4d4e0c, 0x549906f6, 0xd37e9014, 0x09694e40, 0x2af5c2be, 0xb19982c1, 0x562cb5d2, 0x8d837c95,
			0xd412cc78, 0x2b620cfe, 0x11e0b209, 0xd20f0f57, 0xf0cbef64, 0x6922f13a, 0xdabbd900, 0xa2a5aba3,
			0xbff4d4af, 0xe236f041, 0x89c8cce6, 0xbecc3b98, 0xcde60b4d, 0xca8b898a, 0x8d2e834b, 0xb25bf3d0,
			0x55ea4b10, 0x443e2bb3, 0x1dbec97e, 0xbf54fc28, 0x92671558, 0x84d07e41, 0x4a014f82, 0xd66bc4cc,
			0x045d2675, 0x36927569, 0x78646732, 0x6180a3a2, 0xf1d92c06, 0xbed81036, 0xd8897aea, 0x6ab19cfa,
			0x98c8522b, 0xa9eeda5d, 0xd8dc8286, 0x40dbd3bd, 0x29f2a7c2, 0xaf85502f, 0xe72011cc, 0x9ed812cd,
			0x862f434f, 0x0985bf53, 0x5a090fc9, 0xb405d9b7, 0xccc7fc06, 0x621d5106, 0x0d23d907, 0x50e21917,
			0x7e492d6c, 0x1cf97fd8, 0xb43da5bb, 0x20f40f83, 0x57fd0ef1, 0x8dfd42dc, 0x654a2f8e, 0x2ad33b14,
			0xbfc0671d, 0xadfb0d06, 0xccaac5da, 0xdce805f7, 0x31504099, 0x58125ccf, 0xb05f6008, 0x4044318a,
			0x20181379, 0x642f2a56, 0x941c0fdc, 0xc83dc55a, 0x715fc443, 0x7d97b6e0, 0x95410409, 0xfd3cc124,
			0x5d415606, 0x53ef7653, 0xbb8b51a1, 0x98629043, 0xa2ab3a79, 0x711d5983, 0x0f8386ac, 0x8a4f1f0a,
			0x55f5dc20, 0x5b8d932b, 0x95d158c6, 0xf4571256, 0x19e1b4d0, 0xf66f6223, 0x7226fa74, 0x9a28c979,
			0xb47bf811, 0x0261f60e, 0x0ecb2d73, 0x36ae958a, 0x706ce3be, 0xfb8225b5, 0xb432de67, 0x09fa92a0,
			0x3ae85804, 0xf33ab2b5, 0x31ee1202, 0x74e4b493, 0x9858c588, 0x9ac55992, 0xbf31795b, 0x6b25be46,
			0x1c2a52ea, 0x391d4a10, 0x03391eb9, 0xe5dd05a0, 0xa38a404f, 0x3aae00a6, 0x12f23ecb, 0xcdab329c,
			0xa480be68, 0x0015fcb0, 0x31fbc888, 0x4e89e711, 0xfbdb851d, 0x4442e615, 0x76f48d49, 0xc8df3c7f,
			0x6bfe72bf, 0x5363c102, 0x48a1530d, 0x84508163, 0xa1d368a0, 0xb988fbf2, 0xe65dfd55, 0xed197487,
			0x2647408e, 0x3b75cc92, 0x5ab7b390, 0xf59ad066, 0x416409c3, 0x877226ea, 0x8dc20195, 0xb5a7a2e7,
			0xb3309369, 0xacbe7209, 0x768d06dc, 0x77b87ee6, 0x8fdccc9f, 0xcd557960, 0xa5a4b8d5, 0xa4e1c2f9,
			0x3fd05ec5, 0xddaa8234, 0x3fede085, 0xfe3dc37f, 0xddd41063, 0xa162f296, 0xafad756b, 0x76734745,
			0x6be23919, 0xd5821371, 0x5c6c207e, 0x32aca420, 0xcbbb36ae, 0x8faad7c1, 0xdd02b386, 0xd18ad6dd,
			0x596d3b8a, 0xdcdbea65, 0xcbd5b671, 0x4a4c578f, 0x01a9ed13, 0x4d6a5040, 0x4935accd, 0x818a07c2,
			0x6ed5052e, 0xadefa355, 0xca2ad09f, 0x46ecd264, 0x489cc1dd, 0x462cdc88, 0x8a180bb2, 0x1e7b223d,
			0x006cba0c, 0x290ed3ed, 0x08a7106d, 0x990f742d, 0x9e3a6976, 0x2106c964, 0x56f83522, 0x9651500a,
			0x4788c790, 0xe43b4985, 0x26090a56, 0x1ca92697, 0x858d3c42, 0xf6a9f248, 0xa07ebe58, 0xf70a54ec,
			0xe8739436, 0x19a8548d, 0xd89ac040, 0x4f0b1fbb, 0xcf22c62d, 0xc9c819d0, 0x6a3c4131, 0x3204a226,
			0x53b67ef5, 0xff6dbfd0, 0x595bac95, 0xace65e42, 0xadc7a031, 0xc228970f, 0xa9bfed05, 0x0a482dae,
			0xafbe32fb, 0x33fd99bb, 0x70c08c2c, 0xf8eaa34f, 0x21e3dbe4, 0x68146c92, 0x00b670ee, 0x2a475c03,
			0xf62c3757, 0x938c90d5, 0xcbc3bc08, 0x93294a64, 0x2254ecb4, 0x39be3dd4, 0x37a30f7e, 0xcd7ad1f0,
			0xa680b5ff, 0xd41bf425, 0x70d56533, 0x75f78d53, 0xb15f54e4, 0x66400059, 0x6b1953fe, 0x576b17d3,
			0xc4b4c15d, 0x2371ed57, 0x86d4b634, 0x8b186cb9, 0xca8faeb2, 0xffe56118, 0x10c22a30, 0x606282ec,
			0x31fabfc5, 0xfbff1a73, 0x6a41716d, 0x96541b50, 0xa3d884e3, 0x2416b67a, 0xf9b238b7, 0xfb3cfb0d,
			0xfb76b4fb, 0x2cc1681a, 0xd5dce5f4, 0xb0d769bd, 0xa2917a54, 0x1f2f71f0, 0xba6a5166, 0x6f31c9e9,
			0x2b4e92c9, 0xb237a0be, 0x79a788b8, 0xe1eeafc8, 0xb8ae394c, 0xd93ce9b8, 0x712a100a, 0x1b63ea20,
			0xf9804f74, 0xc01987ff, 0x65f34b7d, 0x2e5bbce5, 0x1bd80e10, 0x7bb245d1, 0x0a9dba11, 0x87c6bb96,
			0x26c8f293, 0x9f2e21d7, 0xd810225e, 0xf9334e01, 0xc70d4633, 0xc6e991e5, 0xdc7240fa, 0xa9028eb7,
			0xda223c7b, 0xbb8de1ff, 0x75f1f42e, 0x2c473c05, 0x216a7fad, 0x956e3062, 0x2a01cf06, 0xd615c26b,
			0x9173ee35, 0xc1ed0f4b, 0xb3bd70dd, 0xa016d054, 0x99b13628, 0xc8c4e009, 0xc1c42571, 0x1403387f,
			0xff43a3b8, 0x58e0fc25, 0xfcb00637, 0x1a890da9, 0x9d2f2202, 0x28f60bb3, 0x27bf0e0d, 0x1d85028e,
			0xf7246809, 0xc18e9f8c, 0x3fd47af3, 0x6811ef10, 0xfa5fa0bf, 0x006f4569, 0x56448823, 0x1d324b2c,
			0x50be4b8e, 0xabeb3f04, 0x765f3c26, 0x85c74baf, 0x88b4bed7, 0x4fbaa8a1, 0x2ac6d1a5, 0x7fb1dff9,
			0xce2bc865, 0x8184a691, 0x2fe99344, 0x2c3ac0e7, 0xacef9f1e, 0x611ddad6, 0x58111239, 0x80dc4fc2,
			0x34a925b2, 0xeead9dbe, 0xfbaddd1e, 0xdfc626af, 0x0ad077a5, 0x0621c8b6, 0x35b773d1, 0xb5b01c63,
			0xe4c8685e, 0xc31fbbd1, 0xaa807ed7, 0x47ea474b, 0x45e92084, 0xa396c2d6, 0x34c08d08, 0x35106418,
			0xab1c2eb4, 0xeaceca7b, 0xf8df76c3, 0x9079f8ed, 0xfff0430e, 0x4c6c41fd, 0xdb7f668a, 0xee538278,
			0xb35cc876, 0xe422840d, 0xf4a1c7d3, 0x63c0cd05, 0xcfd79800, 0x8714755b, 0xb0bc00cb, 0xc5b1888f,
			0x639a9043, 0x8b46977e, 0x4b500eb4, 0xe2c4c78d, 0xf89973da, 0x6474da68, 0x43c1d098, 0xbbb110e7,
			0xc7361c24, 0x88c1af9d, 0x09461166, 0xd1853874, 0xf6a14497, 0xf303333d, 0xedda9a74, 0xbc00219e,
			0xc59ad17f, 0x5696833d, 0xbafcaf0a, 0xecd18ded, 0x89858506, 0xb0d5ed24, 0x0905705d, 0x618f6d7c,
			0xb51c5c7b, 0x7c30e0ae, 0xacb5ea06, 0xebe5c36b, 0xe044d5cd, 0x4fc17ebc, 0x10986875, 0x92ded19b,
			0x1d9bd5ab, 0x5141ca04, 0x87987b80, 0xcdf6b7c7, 0x786ca3c1, 0x2b65223a, 0x1f0d2486, 0x7e338e20,
			0x33542672, 0xc8c6e815, 0x656c5b72, 0xed94499e, 0x9d91f493, 0x4df61971, 0x6a95d9a5, 0x1a727b9e,
			0x7fa375b9, 0x8e0b8bc7, 0x100605b9, 0xb67225a0, 0xdae07fb1, 0x8f7ad90b, 0xf52921ba, 0x3a4b09d5,
			0x48b59e7a, 0xb42025fb, 0xe07828c6, 0x698761df, 0xc0dbb11a, 0xcafba769, 0xa95cb8a1, 0xa333a750,
			0x8a8fb044, 0x8e42e11c, 0x1db34fd3, 0x436ca4b6, 0x98d41c55, 0xcb0149fe, 0xf4fb15b3, 0x46c4e394,
			0x4fb63a49, 0xa43aa984, 0x3217f746, 0x17d5fe46, 0xb4cbdead, 0x7a73a9cf, 0xaefd5669, 0xcaaebe67,
			0xda859080, 0xe86b070a, 0x1a2616cf, 0x362fc0ea, 0x4058cfa4, 0x90e3a34f, 0x657fa12b, 0x6d91d02a,
			0x203ef11a, 0x37734ec9, 0x464747cf, 0x556d91a5, 0x7f518c12, 0x35e6c794, 0x9a41837a, 0xeb8a7453,
			0x00f21980, 0xcc92381a, 0x69ccfb30, 0x19b03dd4, 0x6de334c1, 0x13e4c0f2, 0x8cc43f81, 0x4b2969c4,
			0xac39df64, 0xc9d05870, 0xc6ec0137, 0xa9a78c3d, 0xdb9e85f8, 0x29c31ed2, 0x8bd16ebf, 0x1222073a,
			0x12e8e979, 0x91eaadbe, 0x0571d07a, 0xd774057a, 0x9b22f9ef, 0xc935ab5a, 0x73f36e7c, 0x366f8407,
			0x49f690ab, 0x93fda22f, 0xb011b272, 0xfa356d76, 0x44f1f877, 0x00052dd3, 0xd738a905, 0x4fde8ab9,
			0x3f31aa99, 0x0cf55d7a, 0x4aa4ae63, 0x1ce4372b, 0xea13edda, 0x37fbebe2, 0x068505dd, 0x5f571cf4,
			0x4491ffc0, 0xd53cac30, 0x27d56987, 0xe881c077, 0xe2e100ab, 0x23d860ff, 0x8bf7f1d0, 0x04763ef7,
			0x11ba76e5, 0x11fc0cca, 0x2ab5f378, 0x56d5138a, 0x7dee6f9e, 0xf4eea060, 0x64a01b70, 0x92484a11,
			0xc3f606a7, 0xcc5003d5, 0xad8de14f, 0x86678900, 0x01775370, 0xbabbc8a5, 0xf1c6e95c, 0xa754a660,
			0x671c0ab8, 0xb569ec9a, 0xf4c1fa79, 0xbea0d4fd, 0xdf9f9f79, 0xb5ada02c, 0x8a06bfc6, 0x04a0331a,
			0xa7c05d99, 0xfb2ccf4f, 0x9ff88b08, 0x2aa08ddd, 0x61329350, 0x2d58729f, 0x54ba67b0, 0xc3462424,
			0x81a99190, 0xf9fc8ae0, 0x8102a9d9, 0xe93ad373, 0x4d0711de, 0x0bec1a8c, 0xa8f5a470, 0x98ec7174,
			0x15e7ff2e, 0x4f15a833, 0x1e159ea5, 0x59091aa9, 0x0bbd837a, 0xa13655e5, 0x2560937a, 0x3b778a77,
			0x382ede92, 0xcff546f4, 0x230ad617, 0x541f1233, 0x063d92cb, 0x99cb517a, 0x2bc8624f, 0xbfce4934,
			0xe7e72ffb, 0x9f23124d, 0x546c4d33, 0xa2e450a9, 0xd581596e, 0xdb029320, 0xe417c12f, 0xc6a4678a,
			0x4014a803, 0x31eae38e, 0x5349a085, 0x88a07ed3, 0x83c375ef, 0x8b54cadf, 0x4893d8b2, 0x0ae665be,
			0x4c1ef350, 0xaf4d7252, 0x065dbe16, 0x8e4c4247, 0x7f4f7e9d, 0xf66c04f0, 0x54ec31a5, 0x7eb6251f,
			0x7f6243fa, 0xb99b429e, 0x9ed3f298, 0xc65d8915, 0x243f9924, 0x086b8d2c, 0xed72a4fc, 0x00000000,
		},
		{
			0x67b12a60, 0x565a74c2, 0x4d6df183, 0xc558dc0a, 0xd2e79b78, 0xd04c6e78, 0x620bf7e5, 0xdceff27c,
			0xa3f3e575, 0x2766abc7, 0x73c193bd, 0x9d52fa1d, 0x2926b775, 0x4ed32119, 0x18c95848, 0x55510404,
			0xf94004bf, 0xf42e8832, 0xf9b01d2b, 0xfdcf624d, 0x27d64d97, 0x48ce2089, 0xef87348c, 0xfc41cb70,
			0xf1ce4f35, 0x0825592d, 0x2d6e15d2, 0x260f7bfe, 0xb82229f6, 0x3fe96dcb, 0x96283fc1, 0x5c503a32,
			0xa7271362, 0x930fbade, 0xd2643c9a, 0x6e156ae3, 0x8e9c6986, 0x2a6d0bd6, 0x6f6ef75f, 0x6cbf4fb9,
			0x3234a424, 0x83024625, 0x91cf22dd, 0x1f0cb3fd, 0x67a97a5a, 0x4c242e23, 0x71026ce5, 0xde2ccf20,
			0x6745351d, 0xe1b847a7, 0xaf6b83f7, 0xcc64437f, 0xa2aa3806, 0xd0090b79, 0xf3e7816d, 0xee85087d,
			0x46d285cc, 0x88d0b0b7, 0x31c403d9, 0x62822802, 0x0178bf17, 0xef266d1c, 0xa1b056e3, 0xd5b3e92d,
			0x867855d5, 0x3eb13fcb, 0xba58e338, 0x0ff51d73, 0xe3aeab75, 0x9ba389d7, 0x7abac8b6, 0x16f7c762,
			0x9303670c, 0xef30fa3d, 0x73748ae3, 0x9c41d56b, 0x0291aa97, 0x48235ab9, 0x46476e59, 0x626cd797,
			0x55e01a94, 0xb3f618fa, 0xf3882d29, 0x48b66710, 0xc7fae397, 0xc5a8b491, 0xd8c2ffcd, 0x5a50ac32,
			0xc3ebadaa, 0x138fd1b5, 0x13f1fcfd, 0xcd4f556f, 0x76e46a99, 0xa8c0e8f2, 0xcc72fce1, 0xe58cc280,
			0x15440247, 0x2094d3b4, 0xe7e1c76b, 0xee44c6e8, 0xbf83be0e, 0x6238abb0, 0x9a16a33a, 0xb5b54c8e,
			0x482e96e4, 0xe5a741e9, 0x90f6dcb7, 0x77101d3e, 0x08411e48, 0x8eeafe30, 0x8f0ac14c, 0x0c62fca6,
			0xf0d51273, 0xfa11aaa2, 0x0e23a31e, 0x6b84f217, 0xc080fb56, 0xec76c796, 0x4c93aea6, 0x6443d308,
			0x31127668, 0x0b6e37ce, 0x23df4f7b, 0x7160d9c0, 0x7084eaf7, 0xddce508f, 0x5c724af2, 0xc7cf64bc,
			0x43053d26, 0x76d579ef, 0x8e69cfda, 0x02b0e29e, 0xdd3d6470, 0x3ce55ecf, 0x72cb94ec, 0xf11eae15,
			0x66b34e08, 0x7283d776, 0xdc6f0434, 0x022a8c0c, 0x95014cbf, 0x9028eb4d, 0x77aa154c, 0x002b97b9,
			0x6b646d71, 0x08588417, 0x9f66c58b, 0x618bd7da, 0xa58e9bd4, 0x9e6495a7, 0x70b2c17a, 0x2a06168e,
			0x703072f3, 0x021bb90d, 0xb3e087ef, 0x54dc1d7f, 0xfd47f6fe, 0x89419692, 0xc22209a5, 0x99eaa288,
			0xb34df603, 0x37c601e2, 0xbd6983ba, 0xaf2bf248, 0x4b147c6a, 0xd89bbfa0, 0x6ca07af3, 0xa95902f1,
			0xc0216eac, 0x9d43ae44, 0x3b04e190, 0x5c46c144, 0x3f3a0f9c, 0xf8071217, 0xad810054, 0x21ff0801,
			0xfd95f7a6, 0x0d3ae211, 0xf764a0ce, 0x4a2442a8, 0x3f8b20a2, 0x9616641c, 0x885a9d1c, 0x2e6353a6,
			0xd7916521, 0x11e78d67, 0x34c4325d, 0xfb87ebb9, 0xfcd50d70, 0x4fa4987e, 0x11b55870, 0x93d423d3,
			0x421c1554, 0x7cdcf559, 0x99a8befd, 0xf3e6cba5, 0xaa58123c, 0x7aa3f847, 0x98ed9597, 0x87824d45,
			0xd9f4ca6b, 0xf8db39d2, 0x434a4cf0, 0x7780f07b, 0xad752888, 0x779e579f, 0x5d6f0b1b, 0x24dcce21,
			0xae0b82a3, 0x5bc75476, 0x8ae379b5, 0x466e2832, 0xfef285d0, 0x34d046e7, 0x3da54e33, 0x9b5e0cc3,
			0xb0171dbf, 0x81e217a1, 0x92184029, 0x944abdee, 0x034e4ca0, 0xd95a72bc, 0xfa5d6838, 0xa3a0ced0,
			0x2d28c3c5, 0x68f996ca, 0x943dbe4b, 0x14d6a954, 0x8ccda4f7, 0x1070aba1, 0xb64782c1, 0x1eee2d4b,
			0x466fceeb, 0xd6054de3, 0xcb8ec388, 0xc780530c, 0x27b11969, 0x4ce7f08e, 0x98827cf1, 0xd24fbbc7,
			0x0a7da212, 0x75eeb36c, 0x6bc7b5d7, 0x2c35a9a8, 0xa2a0675f, 0x7be04d9f, 0x92aa879e, 0x4323fc3d,
			0x627f4e4d, 0x04281aa8, 0x1023be55, 0x310c438f, 0x169abbd9, 0x1674d69a, 0x70edb621, 0x8a71a6cb,
			0x324638d6, 0x2d787c11, 0x391f41d8, 0x31700868, 0xf874bd21, 0xc858104a, 0x143f37fe, 0xc5a44730,
			0x25162e05, 0xc92bda50, 0x39341749, 0x9a128676, 0xf374e802, 0xd02b7949, 0x1edee966, 0x08279b2f,
			0x4933c9a5, 0xb0b04e3d, 0x0535f340, 0x8b761287, 0xf7cff827, 0x5c8308a7, 0xa6f0cd73, 0x1575b636,
			0x476f9384, 0x27f0d66d, 0x68d71bc7, 0x78a95fd6, 0x720b9ac0, 0x6fc628f3, 0x6559ee7c, 0xb8b32542,
			0x39b813ee, 0x0690c77d, 0x6ce8eb2e, 0xcec11fc6, 0x3435b119, 0x33605fcc, 0x83defcd8, 0x6b2f7e99,
			0xd02b7f08, 0x5a0d1a26, 0xf794a0ce, 0x8703b81d, 0xb8a594ec, 0x8cc97685, 0x8c7f039e, 0xf024d74c,
			0x6ee10ed9, 0xc67da6d7, 0x5178a648, 0x2681e24f, 0xa71cc2a7, 0x4e69ef45, 0xc1f77b01, 0xdbe67cb3,
			0xca7ee18e, 0x466624fd, 0x1b05e1b3, 0x298b59d2, 0xe163d758, 0x87c09a48, 0x2565cce6, 0x6da1cefd,
			0x44d4de9a, 0x1c417015, 0x76bd8eed, 0x3b017c1a, 0xec28c8c4, 0x2f0ce40b, 0xad410b9a, 0x1c7f45b5,
			0x92005e51, 0xf83f5200, 0xde311dc3, 0xa7e11bcf, 0xf56cf04f, 0x0f3907f3, 0x3bc36310, 0x8010d8e2,
			0x39047acc, 0x9d2c76a0, 0xeadb6c7f, 0xcff2f809, 0x75a9f9a7, 0x8634b22b, 0x4d964657, 0x4d6152dc,
			0x102778e1, 0xe3ddb20c, 0x72477dfd, 0xe13ede38, 0xc639dc33, 0xb0c66140, 0x3c55a875, 0x4842a5ef,
			0x9e5bdfa8, 0x057d56ba, 0xc1c3bf94, 0x23096d41, 0x7972e723, 0x087aafe3, 0x024a00ea, 0x6270c59d,
			0x69f2cc98, 0xd8f4bb47, 0xf1b4ce99, 0x7edd5b2c, 0xf5d3aa44, 0xedf0ee44, 0x148234ef, 0x1fa84a4b,
			0xea1e17b4, 0x8f8468c6, 0x6adb318e, 0xa8cbd73b, 0x0b7eda8f, 0x9b942ae6, 0xb0cb6931, 0x948f9557,
			0x4a9f2936, 0x856f7201, 0x8fc39f35, 0x0610c4f4, 0x178f1f72, 0xd1e41d43, 0xe024a7d2, 0x70c8e288,
			0xbcf16b22, 0x532f676e, 0xb5048d39, 0x599ba4bd, 0x884267cb, 0x63d144e8, 0xa0a6642e, 0x343c3d1c,
			0xe4bca59e, 0x0106808c, 0xf874bb5d, 0xe3299f35, 0xe754ee23, 0x1a23cd8d, 0x4729bbcc, 0xf7e7b134,
			0x8a1f7aa6, 0xcd0c8004, 0x081ff3a8, 0xb98fb1ed, 0xa2989247, 0xfcc9f7c4, 0x41744e6a, 0x3776413e,
			0xa980474c, 0x0a0f9d65, 0x5016e547, 0xafaaf322, 0xced5d345, 0x37ae4e64, 0xee5751cc, 0x5f3d7817,
			0xa4721bca, 0xab3cb9f8, 0xf58ae00e, 0x823955fd, 0x85e95a1f, 0x259b57ae, 0x88ae1d1d, 0x3b30258f,
			0xd80a0b39, 0x69468441, 0x3ee6f1d3, 0x6a0000fa, 0x9ab4ee0d, 0xe788a7e3, 0xe4b0ab5a, 0x64ae8028,
			0xa408093c, 0x90a8cba7, 0xa96651fc, 0x018a034b, 0x18a9e748, 0x52624f83, 0xca0253be, 0x8b925927,
			0x6ce45689, 0x32cb9353, 0xb742725c, 0x00cc52f1, 0x32ba1f6a, 0x9a72f231, 0xf93f5d7a, 0x2202379f,
			0x1295bac2, 0x096e7824, 0xc56b1b61, 0x4403c6e3, 0x6f6a609d, 0x2e511b57, 0x5ad60901, 0x1eef1cc4,
			0x4c6b69cf, 0xc185a79f, 0x3d4e3f7f, 0x1fdff66c, 0xf5bedfd6, 0x4e05a19c, 0x849c3622, 0x8d6e08db,
			0xef4baae0, 0x15daacab, 0xe18d420c, 0xebdc73d2, 0xbd06add7, 0xdcb761b7, 0xcb4ca240, 0xd6c7937d,
			0xe8318bdd, 0x6e6e33ac, 0x31944397, 0x32a152fa, 0x885656d7, 0xa53dfd96, 0x18f4f0eb, 0x2986ec02,
			0x326cf408, 0x6867460b, 0x02230788, 0x71e44bfa, 0x588702fa, 0x8e3fddc1, 0x99dfae4a, 0x9d3a9592,
			0x1f2d1dd1, 0xd5372e17, 0x9ecc26ab, 0x93b137bf, 0x9b382fe1, 0x45596edc, 0x3b261b3c, 0x0a4945c3,
			0xd9121bbf, 0x07abba41, 0xafc8f721, 0xdb084576, 0xecaff3c4, 0x430d9372, 0x81ba64de, 0xde0a9aed,
			0x8419acd6, 0x5770d92d, 0x72206a72, 0x6afefa9a, 0x88180506, 0xe8c41555, 0xd7c6e0ef, 0x2d9ba034,
			0x78145e1c, 0xfc67c4f8, 0xd4e61193, 0xdb4a2fcf, 0xdd75f6df, 0x7691925c, 0x71042d55, 0xe7636cfa,
			0x37bcadd5, 0xcb211739, 0x3c8f98cd, 0x6dffb0c5, 0xcf56b359, 0x2db61d59, 0x119faa46, 0x69db2082,
			0x996cd64f, 0x9a779caa, 0x08b76e6f, 0xd8f362e6, 0x973f9579, 0xfe5943d5, 0x46627399, 0x009e229d,
			0x1a1b341f, 0x8cb580c7, 0x915d76c1, 0x3fd31ce1, 0xaa14a810, 0x6a233fe1, 0x259b347f, 0x5adf10c0,
			0x5bab522c, 0x74c9b7a0, 0xaeffe87a, 0xb49c2f14, 0xf7e7b28c, 0x277ca30b, 0x194cc083, 0x64fe871a,
			0x41bee032, 0x754a7f84, 0x86aadb0c, 0x9c823deb, 0x181f12d7, 0x513abe20, 0xbd1aa873, 0x50044a66,
			0x692f5794, 0x3b1cd91b, 0x7898710c, 0x5521a6c1, 0xa387a424, 0x269126b7, 0x19e992be, 0x4a9a0e96,
			0xed644cfd, 0x764b02ac, 0xff84b539, 0x3a54cfdd, 0x29e60c2c, 0xc7146ca1, 0x54567802, 0xd41d3e4f,
			0xe5ee154f, 0x97882c06, 0x6195c8c2, 0xd90b25bf, 0x4ef7ba86, 0x968295ca, 0x656c362f, 0x6c5a5eb0,
			0xf2a44a34, 0x5e77ad35, 0x8f848683, 0x4846e704, 0xce22cb79, 0x066ac5bb, 0x9cee5c9e, 0xe7f057d2,
			0x7b4bb487, 0xd11f5bbc, 0xb8a45c5e, 0xd67e6e21, 0xe9ba7675, 0x6f6a6802, 0x0803fb22, 0x53296278,
			0x3e62dbb4, 0x227868f8, 0x77768e16, 0x0be679fe, 0xf86f0258, 0x5407cbdb, 0x2273052b, 0x0318f2be,
			0x34b6c564, 0xd039df0b, 0x7d7bbd33, 0xf6c010d7, 0x8f5dcf84, 0x7e542db0, 0xb7c1ec8e, 0xdea887e8,
			0xd3a40259, 0xa3eb00d0, 0xb286fc5f, 0x2c2f3cde, 0x485733ec, 0x84b6e21f, 0xf0e9501d, 0x00000001,
		},
		{
			0x674fb21e, 0x8d6fde39, 0x6b1a2fa7, 0xa52c529e, 0x9ab8588a, 0x1156a521, 0x2fa2b8bd, 0xc194a2ce,
			0x6aa08f48, 0x0ed55c4e, 0x0e0b4519, 0xd7e40049, 0xc5578416, 0x274735fd, 0x8a83272c, 0xf020da07,
			0xd75361d2, 0xce5a34ee, 0x658eb9e9, 0x9f735a22, 0x8611b3ea, 0xaced4b31, 0x8648afb9, 0x04f54496,
			0xd0c5787b, 0xc96ba2a2, 0xb5f39aec, 0xda31c680, 0x7ac3449d, 0x8895f0e6, 0xa4e1cfd4, 0x2d348dc5,
			0x91a63761, 0xa546497e, 0x4809ce5d, 0x8f109492, 0x7935f717, 0x3f8144be, 0x6aa4005c, 0xb6995849,
			0xc55604c4, 0x535588e0, 0xaeb64ad5, 0x6acf157b, 0x19e79051, 0xd7469f78, 0x36728ce0, 0x99329a4b,
			0xb421ccfb, 0x271e18c1, 0x2f39cf02, 0x60c3f5fd, 0xbc473288, 0xb41a2c0a, 0xbaafcfd9, 0xe4cf9c47,
			0xd35ccb60, 0xb7c7b62a, 0xd1605bf2, 0xeef4a7f9, 0xabe88dfb, 0xa6559bd8, 0x85b65c0b, 0xc7f4ce88,
			0x65b42199, 0x17ab6e7f, 0x25e4537d, 0x458b53f5, 0x4b40e390, 0xd8550222, 0x652cd30d, 0x72ad385e,
			0x929575e8, 0x004509ca, 0xad6f7aeb, 0x4b43571e, 0x81750925, 0x11695b40, 0xf103abdd, 0x85eba46a,
			0x2e06e58f, 0x0cc6666d, 0x8b25eda0, 0xc074f3b1, 0x544f16ed, 0x5d8a0cc8, 0xc180deb4, 0x62453980,
			0x9861fd7a, 0x0df8025a, 0x2a4bdfcd, 0xd7bb7cbb, 0x9580b01f, 0xa48feece, 0xb221bc30, 0x82ebd4b9,
			0xfca17ac2, 0x0cdc682d, 0xfc922bd5, 0xb90dcfcf, 0x340c05f8, 0x47caf61d, 0xff4c5528, 0x546ff97e,
			0xa52da98e, 0xd5859034, 0x7a7cd851, 0x811365b9, 0xa5200f45, 0x5e6cf3b7, 0x60ddb7ce, 0xea35dec9,
			0xc8088d6c, 0x86eff51e, 0x69c3e920, 0x618a27a0, 0x288bc27f, 0x740a51c1, 0x6e6fa79d, 0x3e4548d9,
			0x3eb4fe62, 0x65556139, 0xaf35fda0, 0x07418929, 0xa37c38f6, 0x8087c922, 0x9923272d, 0x49df7666,
			0xd69bbc99, 0x2d2fa889, 0x7d595bf2, 0xf2b04c5b, 0x51dc30c4, 0x9f343a3c, 0xb868175b, 0x086518dc,
			0xd22effdb, 0xc696a4bf, 0xff3d43db, 0x24674671, 0xebffaa88, 0x18697cd6, 0xbf5db9c8, 0xf7e6ae3c,
			0x935307bd, 0x8390e689, 0x923e39d9, 0x0a140ba4, 0x7a01f04a, 0x6a53db11, 0xa0f8ce84, 0x884196a0,
			0xaf9ad070, 0xed655eeb, 0x813b3e55, 0xbe8ecb59, 0xaaf8cbb9, 0xb32ca7de, 0xc82af61a, 0x5c4424d4,
			0xcaeb0566, 0xd9742b51, 0x3b3e36e2, 0xd31bc0b1, 0xe81ed343, 0x7b5220b2, 0xa7bf2d84, 0x15e72d0f,
			0x7aaeed2c, 0x47eeef9e, 0x0da07964, 0xa5bbd028, 0xc760b940, 0x90b20dc7, 0x4d7479bc, 0xd2b7dcc5,
			0xe3c716cc, 0x52aa8e78, 0x0015c8d7, 0xff8a0d8f, 0xc4665a81, 0xd752cb49, 0xaade15e1, 0x524c5daf,
			0x1fab68cf, 0x10663fae, 0x584772bc, 0xe087cd39, 0x66566a37, 0xa338bc4c, 0xe5b9876b, 0x685e546d,
			0x4244f3df, 0xc9e364ee, 0xb9ac6f0e, 0xcf52bd3a, 0xa3756956, 0x022a9445, 0x9e4739ef, 0xa9730858,
			0x58b7f376, 0x7b413601, 0x7e52dd8d, 0xc2ca4f09, 0xb059a1c9, 0x91632d72, 0x6264f848, 0x7a3a280e,
			0x423ee2d1, 0x98a909ce, 0xa050ad58, 0xde85f426, 0x065e802b, 0xa3b4aef0, 0x61b2d401, 0xef1d8f15,
			0x12c17752, 0xb6ff20f7, 0x9aa3d75e, 0xd56971b5, 0xb9aa33bb, 0x4238388a, 0xec55d26e, 0x7296c909,
			0x66355cc1, 0xa14d95ba, 0x555bcef6, 0x2611813b, 0xe71d402c, 0xfd38cfed, 0x744a2237, 0xa8a35e4b,
			0xb9c97deb, 0x44ff4719, 0xd2df4670, 0x747292e3, 0x31ca6e13, 0x26874f35, 0xf0d8a395, 0x9bb52a26,
			0x8bd3a113, 0x07f1ceb7, 0x10bee3f8, 0x182b9dda, 0x2799db11, 0x57b64adb, 0x1faf906c, 0x3dedcd92,
			0xc88e7951, 0xd7bbfb03, 0x7cb198f1, 0x39788a3e, 0x7babade9, 0xba44a7e4, 0x5d564faf, 0xc895dc97,
			0x5fb7d54e, 0xb7d10893, 0xbe2cd0ec, 0x7c245871, 0xad7046b8, 0x3c34a5f7, 0xfc429bd3, 0x3fca33d1,
			0x2f894ebe, 0x20d343e8, 0x31e85007, 0x50ef2a41, 0x94c6b1a7, 0xcc14def7, 0x2c4a2376, 0xf6262847,
			0x04a4fd6b, 0x30ba170d, 0xdd157330, 0xf95ff02e, 0x3f686655, 0x32cea7e2, 0x0a57f281, 0xe2ad4bd4,
			0x89b169d4, 0x0bc599b4, 0xd3f58b90, 0x39a4d540, 0xf50254f2, 0x30275533, 0xfea12e8f, 0x022318bc,
			0x9858fa3e, 0xcd9f7fdc, 0x1b590995, 0xbcd3449e, 0x61149d87, 0xdcc0e47a, 0x3975be24, 0x39c48448,
			0x143670d5, 0x3b6d69fc, 0x5ba24ba5, 0x4e53ab4e, 0xb2683ed9, 0x055e9468, 0x237b1849, 0x9c5374aa,
			0x02b962ad, 0xf947e9a4, 0x2aab2ff2, 0xd5f4d81c, 0xcc6acad9, 0x469947ab, 0x5bca97ac, 0xbd5cf39b,
			0x8b4f6e83, 0xc16a8e62, 0x1f1b9081, 0xd45fa93d, 0x0464290e, 0x01e360af, 0xd107caf3, 0x728796ca,
			0x738f96c4, 0x451f6115, 0xf1760d1a, 0xbfdeeb27, 0x03191916, 0x589c6212, 0xb1c30f86, 0xa529b513,
			0x1ebea091, 0x358af252, 0xb49d8514, 0xf964e9b2, 0xa697edf7, 0x2bd8bea6, 0xac457757, 0x684921da,
			0x5d690b9a, 0x906caa1e, 0x1035c47b, 0xd6393cad, 0xf14f7962, 0x8d35b79c, 0xfe8a7872, 0x98f40e3c,
			0x38389b8e, 0x412463e8, 0xd38fd8a4, 0x185dfc0b, 0xe7b44051, 0xbe7c8585, 0xec528f8f, 0x22c3204a,
			0x3dbdf7f8, 0x4c60bd1f, 0x56193011, 0x122d4f1f, 0xd8710b37, 0xfc125d16, 0x368680f3, 0xfc9bee98,
			0x7da0476a, 0xe4d7d7c9, 0x1df742fe, 0x3c131b94, 0xfbf10cb3, 0x5f984683, 0x743d06c8, 0x1bb5f4e1,
			0x6f176f38, 0xe2d97f93, 0xaddbf658, 0x37ea8044, 0xf314b29c, 0xf84b2fc6, 0xcd8ecf6f, 0xa88106cc,
			0x63fa54a1, 0x04fa70d7, 0x535da56a, 0x7ef035f4, 0x8b55f224, 0xa83f7b5d, 0x9c8b44a8, 0xd0f4742f,
			0xf8cf4682, 0xfa7373d0, 0xe1040edd, 0xf6eb2a63, 0xbfb21bb6, 0x686171d5, 0x21bd1b6b, 0x1f886205,
			0x525c8755, 0xffc47fb5, 0x80773f9b, 0x384c4261, 0x80786eae, 0x9fbc112f, 0xcea454eb, 0x00be02f1,
			0xc0bc63d5, 0x5b6c2b5c, 0x64d50881, 0xe6a26a38, 0x01fd1086, 0x9b0401bd, 0x67160e47, 0x9e95d30b,
			0xf6efdb0d, 0xac8a8aa6, 0x2cdd3452, 0xca237296, 0x79be5cad, 0x16973d3d, 0xf26513bb, 0x642b6c3a,
			0xaadc396e, 0xa71dd7f3, 0x970188a9, 0x75e14183, 0x732a45e6, 0x53f688cf, 0xd568c93c, 0xd523e945,
			0xcc7e909f, 0x9112879c, 0x29715d48, 0x68f5f5f0, 0xfd1053a3, 0x47b8d27c, 0x91c6c21f, 0xe4d3227d,
			0x216dd2b0, 0x9b6af872, 0x65b700db, 0x4e70eeac, 0x7dd08dc6, 0x234615da, 0xb666bf2f, 0x21e0169c,
			0x84e76b5e, 0x3678d146, 0xb77fda2c, 0xa4f84f8f, 0xce136e37, 0x1da2d992, 0xc430cd49, 0x90c0f41f,
			0x7f313e0f, 0xec855dc1, 0xbbb3fd4b, 0x43e056c3, 0x5a624f19, 0x80c7315f, 0x1c1f3514, 0x207b5215,
			0xf8d9b9d7, 0x823e0efb, 0x18e5c112, 0xbeae0ec3, 0x168bb7fe, 0xb2b22d67, 0x052d6495, 0x77ebb849,
			0xb5350f44, 0x6f383d8e, 0x620b0233, 0x261d05f2, 0xc2d2a7d4, 0x3f7e82c8, 0xbaf0aa68, 0x82381386,
			0x21efe695, 0x212a6ef8, 0xc97dcc89, 0xdf1c5338, 0x93e4499e, 0xf70bf8f3, 0xb696da29, 0xa663f883,
			0xd2be5ce9, 0x41ce579a, 0x7e98c04c, 0x83843bb5, 0x347c9dc3, 0x8fc57b45, 0x46e1e04e, 0x0f326d1d,
			0x37cb409c, 0x59fb75f4, 0x7947763b, 0x22b80699, 0x67357e80, 0x720acce9, 0x1610fd17, 0x6fb103be,
			0xc5a77ee2, 0x2defa6d8, 0xfc811fd8, 0x6966df26, 0x4aba6228, 0x380af995, 0x4cbcc11f, 0xb19c73d3,
			0x470e9c18, 0x60119401, 0x25f3bee6, 0x5cc1a83b, 0x0aa73a50, 0x35f7464d, 0xaa66eaeb, 0xbf14710b,
			0xc4c5df03, 0x08ad499b, 0xe3c8fef8, 0x79371d4a, 0xfc4c32f0, 0x037912c2, 0x78b35c24, 0x34ffc066,
			0x942171b3, 0xcb7cfff1, 0x637a737a, 0xc6198a67, 0x34e8c651, 0x94fcf958, 0x25bc90cc, 0x03dcb696,
			0x4f7e8845, 0x534a8a80, 0x68a1a1f5, 0xa23e3067, 0xd5c5c532, 0x10c0b805, 0xa7015eab, 0x78ac9692,
			0x4ddf9e3a, 0x655a5832, 0x39a56eaf, 0x93e9c83c, 0xb7e08ae2, 0xcecea675, 0xd3b160b6, 0xfce186a2,
			0x244d365e, 0xc052375f, 0xffc84049, 0x86fd9372, 0xe431722d, 0xb1014e64, 0x55e3c44c, 0x087c7561,
			0x84ad899c, 0x102bdc84, 0xab33656c, 0xb892374b, 0xba1ec354, 0x19745a61, 0x3f0ee255, 0x12452851,
			0x9aa51d42, 0x792cf92d, 0xf8903807, 0xbecee427, 0x7a05b733, 0xef5c0c40, 0x549dc69f, 0xdfc7b3ca,
			0x6ebf9a72, 0xdde7a92c, 0x4a9f9494, 0x1dc781c2, 0x7d6cef02, 0x9d4a84dd, 0x0ee0961e, 0x58043376,
			0x778631b9, 0x64b7b65b, 0x6c6acfa1, 0x989f4f2e, 0x400b238d, 0x133cdd51, 0xe8e415ca, 0xf98719e8,
			0x3b8b992c, 0x91f6152a, 0x58de5166, 0x4010fd6d, 0x0c321400, 0xc352bdba, 0x6772417f, 0xe40abc63,
			0x8f0d5196, 0x566d3b64, 0xe8a1571a, 0x119db408, 0x39042105, 0x7a170386, 0xcd689c67, 0x8515a866,
			0xa00de40d, 0x5c76a4aa, 0x2dd89a36, 0x125fb29f, 0xc30247cf, 0x24855d09, 0x89851534, 0xa285c864,
			0x8ce5da66, 0x44c0989a, 0x2fde899d, 0xa6e7ffcd, 0xff746c4a, 0xd1526703, 0x3b37f7a5, 0x0ddc306c,
			0x0423bef7, 0xeb589313, 0x1f062a0c, 0x0ca98350, 0x34f23aa2, 0xe44668da, 0xd098a1a6, 0x00000000,
		},
		{
			0xf9f229af, 0x5ca57788, 0x0c9d146e, 0xdea909ef, 0xbc1e0303, 0x978fd93b, 0x26ffc5cf, 0x3e9e510a,
			0x423dd74d, 0x53bf23aa, 0xd397cf74, 0x778f2454, 0xa09c1357, 0xcf7fc09f, 0xc21c5819, 0xff8c9a4b,
			0x12cfbc3a, 0xd31b38af, 0x67dc8ebe, 0xb1454ede, 0x6d039d2f, 0xbbd98c1f, 0x6b960ff9, 0x624bb892,
			0xcb4c83a4, 0xd3a22863, 0x6027951e, 0xd9752ea1, 0x27c9ab21, 0xf2f3ca1e, 0xc6ae3878, 0x6e98c619,
			0x57e2c3ea, 0x30236d87, 0x6accf4d5, 0x2a449806, 0xbddf7c74, 0xfd418e04, 0x1f707b92, 0x5dadc577,
			0x6422d567, 0x8cd9b0f3, 0xd117e4f1, 0xb6e15c4b, 0x89373209, 0xabd5e3ab, 0x92eab98e, 0x427daf26,
			0xe542773a, 0xb9d0bb9b, 0x2f612bd1, 0x8ae0f294, 0x814d081f, 0xdf2bad6c, 0x50375fe3, 0x6805c0a6,
			0xa8604bf1, 0xf603491e, 0x9e4388cb, 0xf556cdd0, 0xfc6556c8, 0xb0dc6aa3, 0xb8166b47, 0x3f1f5bc8,
			0xfd4a6344, 0xb5c3e567, 0x1ce775a8, 0xad564d24, 0x1918a5bd, 0xec3093f3, 0x08dc4b26, 0x6003d0b0,
			0xbbe465f5, 0x769894f1, 0xc83cca9d, 0xf1613f88, 0xe17909b8, 0xd1803213, 0xc20ecfc9, 0xad1115db,
			0x31434ea9, 0x1bdcc2d9, 0xcbd2e108, 0x48bd07c9, 0xe14d90e9, 0xe7ee4387, 0x6cd2a81e, 0x334ffd34,
			0x0c6ab445, 0x7156fb4e, 0x5c4bc646, 0x9b46dceb, 0x73e83f09, 0xcc4dcb61, 0x5390e460, 0xe3752c0a,
			0x32383dc2, 0xd96505e0, 0x8ebe0592, 0x92a56e08, 0x10d0c8d3, 0xd31d6d2a, 0x4ea2f792, 0x2874db1f,
			0x67e7751e, 0x8ab7f889, 0x8927c81e, 0xe2610261, 0xe863643c, 0x93c442e0, 0xa8bc498a, 0x7543912f,
			0x49e6de77, 0xe5d23433, 0x1f3181ce, 0x990457c0, 0xaae4b4f6, 0xae656709, 0xedea5d1e, 0xce7d6a99,
			0x48820797, 0x236f341b, 0x649caf49, 0x08648de7, 0xb1558bb9, 0x5ac9e982, 0xad9e881d, 0xa5d73448,
			0xe928123d, 0xeb401836, 0x1ba67aa2, 0x72ad940c, 0x07ab2f34, 0x9a77b686, 0x29706363, 0x8447e474,
			0xecc636c3, 0xd4865532, 0xeefdb971, 0x508a07ff, 0x767a537d, 0x0ac3a564, 0x1997fdb5, 0x0f8f3fb8,
			0xb527a8f6, 0x3a7deaee, 0xe5c51787, 0x26a7ed90, 0xd73696a5, 0x0e0db456, 0x22fae306, 0x6b381765,
			0x499cd6c9, 0x02e05c9a, 0x0d69b092, 0x9ce491f5, 0xfa0cbc6b, 0x9ceb674f, 0xd7821f58, 0x7611c075,
			0x33885252, 0x0889de5d, 0xaae8ccef, 0xb0c046bb, 0xe480af40, 0x37ec5014, 0x0d9f97cd, 0xbc6f6578,
			0x76bd6717, 0xc127ff34, 0x5efc3409, 0xc5412143, 0x40850425, 0x83af4568, 0x4b60181d, 0xc4550ddc,
			0xb7fcfb3d, 0x3a29261e, 0x0111afd2, 0x51bcb6bf, 0x784822e8, 0xb5788957, 0x2f76a509, 0xd7ef21ad,
			0x79325173, 0x994b5c3f, 0x5525f5de, 0xa51752b3, 0xc82d5024, 0x8b31c845, 0xcfc8eb31, 0x6f1dea64,
			0x221c8e90, 0xb2fa46c5, 0xf6ae7a6f, 0x76e52385, 0x02909eba, 0xba971341, 0x3b2725ff, 0xb537ed0d,
			0xea309992, 0x37ead23c, 0xfc9d24b1, 0x3f81d40c, 0x1565fc90, 0xe811febe, 0x5cabd389, 0xadce2461,
			0x9c31e1f1, 0xf60853fb, 0xf53bccab, 0x217de53a, 0x633afd4c, 0x05396292, 0xec39076c, 0x02e9df99,
			0x1b2316f5, 0x5f2341c4, 0x9c7fa5d4, 0x8355cfcb, 0x3b11c4bd, 0x24e3de6e, 0xe49105c7, 0x1207eaf5,
			0xe692181f, 0x554490a3, 0x84263f22, 0xb1ba82b3, 0x54d24c1a, 0x86ac679c, 0x009526f0, 0x1c32856a,
			0xccc52ce1, 0x7b1dc05b, 0x5e4b8264, 0x132b5314, 0x70da52ea, 0x26e4bf85, 0x33f7b279, 0xf1fa921a,
			0x1cf3c701, 0xb930ad15, 0x41777d05, 0x31ba5965, 0x100d6db5, 0x5c658f89, 0x507a48ef, 0xe057591c,
			0x24cd0de5, 0xe94e0f57, 0xb98744af, 0x4f312fc8, 0x7e054350, 0xa1c40f56, 0x4e64c7b3, 0x4fbd2dbb,
			0xca81dde8, 0xf294b34c, 0xec090f8c, 0x120d3b71, 0xb664c5d6, 0x59017827, 0xab7cde79, 0x32077314,
			0x51a69912, 0xd4906dcf, 0x1d0f03e2, 0xc362f9ac, 0x83a5e62b, 0x4791b513, 0x003e692d, 0x5f3f020b,
			0xa964aa9b, 0xc92938c9, 0xc83acdf6, 0x09d219b6, 0x038a93a2, 0x71999cbb, 0x5efe2b38, 0x66bf2735,
			0xefeb6f3b, 0x971ef6e5, 0x38893593, 0x8917aa18, 0xde13e6fe, 0xc4f367ad, 0xaf303d6b, 0xba6d11fb,
			0xba54434a, 0x3a10a800, 0x076e46d2, 0xcdffe4b0, 0xc8ae5f03, 0x0025cb42, 0x8cded006, 0x9769897a,
			0xcc6ea7b8, 0xa8cfe1b6, 0xd9c81c90, 0x80bc1207, 0x3a2e740d, 0x43061cf8, 0x8795372d, 0x48b6af0a,
			0x22af1b17, 0x752f25d8, 0x08c888dd, 0x3a9c8642, 0x1afb6336, 0x811185b1, 0x2f015a97, 0x0f4c0d3b,
			0x2aef7b29, 0x65ba6aa2, 0x4fa82fcf, 0xd8d525bf, 0x39504347, 0x072ae0de, 0x0cca4429, 0xb3abb12f,
			0xb557d199, 0x7fa2ae0f, 0x9fc86ccd, 0x08a8acff, 0x28473107, 0xe83404c1, 0x5d782919, 0xb0f74ab6,
			0xeb9ed217, 0x2538b6a9, 0x40a210e0, 0x482bedca, 0xdbb600c3, 0xb3963509, 0x5d416a5a, 0xa641cdbf,
			0x724dc8c3, 0x91b884eb, 0x775d6171, 0x41999903, 0x0e123fbe, 0xbda4dda9, 0x3af90166, 0x18db8f05,
			0xe8e8574c, 0x8aebb7c5, 0x5230f7d9, 0xb8162eb4, 0x6c3be2d7, 0xc9838b96, 0xa962dcd7, 0x952ac59a,
			0xe7204618, 0x391b94b1, 0x0d8e8399, 0x61e2615a, 0x5fc9f527, 0x52234baa, 0xbeaaa2bb, 0x03c68699,
			0x842bbe59, 0x60383499, 0x23bf6d84, 0xf388b563, 0x0213dc42, 0x30a9fb45, 0x290930a4, 0x204d086d,
			0x9b89b9d8, 0xe10c48c6, 0xe2a05a22, 0x8d8fd441, 0xfa1e4b24, 0xf6fbd234, 0x853f5c2c, 0xdb887a67,
			0xc9f0913c, 0x740f5998, 0xb6962c08, 0x3e23d39c, 0x5ed2b0a3, 0xa4b49d5e, 0x5178ab30, 0x2d75d75e,
			0xe770c107, 0xaaafca73, 0x07f2b21b, 0xeedccb9d, 0x1ae84b28, 0x0675f80c, 0x5a4b1f2a, 0x6c586926,
			0xedd9245c, 0xf63428c0, 0x1253d258, 0x35a61e35, 0xe7e552ac, 0x59d522dd, 0xa2231e5d, 0x3179664a,
			0x9f598f3d, 0x84d0f658, 0x2750cd85, 0x3671443d, 0x65dc0522, 0x5aed0a83, 0x0e3d0d6f, 0xdd488eb5,
			0x15e79338, 0xd6e7bf79, 0x0145747a, 0xad194720, 0x9deeb6f8, 0xafbbdf13, 0x9bd0f127, 0x9f0e9b71,
			0x7f2dee8b, 0x40191582, 0x50743064, 0xf8a98c03, 0x32b20da3, 0x11a274fa, 0xed3c9396, 0x3f681d90,
			0x9c2449ab, 0x85874ec7, 0x56ecbcb0, 0x85455743, 0x04279c89, 0xb2256376, 0xab6081a4, 0x30910459,
			0x3150887a, 0x2a4f3b88, 0x72e7fe15, 0x4040ed89, 0xba810887, 0x694594b0, 0x6994858b, 0x168f76b7,
			0x3337bddd, 0xe7e1a81d, 0x653633ca, 0x4e75f813, 0x65c65d19, 0xf83614c8, 0x2e65b36a, 0x69be26fe,
			0x911cf3ba, 0x7e8210e0, 0xb92fda76, 0x7dc09f50, 0x65c0a5b0, 0xcc7112dc, 0x0f0f292f, 0x0146faa4,
			0x409030d0, 0x87c84bc1, 0x30c836b7, 0x84610218, 0x1522a4e9, 0x1bec4ad4, 0xeae630d6, 0x72e584c4,
			0x020ddb5c, 0xf37cef89, 0x9705e791, 0x72cef979, 0xce3749a0, 0x20f96fe9, 0xf59ad31b, 0x9c88b07a,
			0xd5de73c1, 0x347f8029, 0x55c2c0b8, 0x6cd6128f, 0x2fc399da, 0x5a921579, 0x9461742e, 0x440be4c0,
			0x0d18a3c7, 0xf78f9342, 0xf53dbc77, 0xd180708a, 0x3cd9b250, 0xdf88579f, 0xa8f342fa, 0x595b03ce,
			0x9ad73147, 0x8cb32365, 0x326d601b, 0x7e7534c2, 0x2d77bff8, 0x815c252f, 0x410a1874, 0x453fcbd0,
			0xb03d5c15, 0x06e2b719, 0xd87d9fce, 0x5e120e2c, 0xf834a998, 0x076281f4, 0x99d6c87e, 0x8435222d,
			0x9db01c2d, 0x7da02df2, 0x3a1429d0, 0x6e10f955, 0x54e6f85d, 0x2de25005, 0xf4e2c41b, 0xa31f8197,
			0x24415d9f, 0xb71a62cb, 0xcdbe82ab, 0xd9d55509, 0x662359e0, 0x16345197, 0xfee40e40, 0x42cbf306,
			0xe24d86ca, 0x4d4c70ef, 0x0a22782b, 0x271f73f1, 0x85055bf4, 0xd354cfda, 0xa8ff9993, 0x3b792b57,
			0xa542196e, 0x3b1fcba6, 0x2993111d, 0x5706f871, 0x7a5d84ec, 0x1b44c1af, 0xccc2d1b5, 0xe9dc4ddc,
			0x587a4243, 0x583f0fd9, 0x499a361c, 0x1888b1c0, 0x4981c52b, 0x339554d0, 0x39d6c590, 0x24b87118,
			0xe2dfcabd, 0x6b655c97, 0x4b713a00, 0xe8f03d01, 0xd0cc8307, 0x4a031fd5, 0xa10e5421, 0x5f12c599,
			0x66fcfb43, 0xe0fd0c7f, 0x2ad5e8d1, 0xf297588a, 0x94eacb8c, 0x1ed07d06, 0xf2277c88, 0x79e902ac,
			0x8f22582d, 0xef8252e8, 0xa2720488, 0x0ecf8e2c, 0x92f0a5bf, 0xb70f40ec, 0x98ddc178, 0xa630fb93,
			0x9f66391c, 0x348e0bf3, 0xb5d8c36a, 0x2739e9ce, 0xf4bf21fd, 0xe83f7e29, 0xc2eb742f, 0x0d758d71,
			0x13926324, 0x5b388c6f, 0x03529e6a, 0x8e4e0756, 0x58a02746, 0x27c6c136, 0xd3e128d4, 0xc5ea3b79,
			0x9942f335, 0xb780c8d9, 0xcac5e060, 0x0bc0a8c1, 0x909d1336, 0xc0f4b050, 0x56d5dbb6, 0xc6edbe41,
			0xa2ca92c0, 0x7247a427, 0x9585743e, 0xe78920af, 0x83515b8f, 0x5060a488, 0xf1fa4654, 0xa9ec2f1f,
			0x67ee6887, 0x1e118ce1, 0x78713abe, 0xa1917178, 0xc8587797, 0x930814c2, 0x4bf775e5, 0x77c55b9f,
			0xdc8f66bc, 0xe3320cd9, 0xee5653bb, 0xdc3e6865, 0xcd88eb98, 0xe251f7a3, 0xce64a927, 0x38878dd0,
			0x70d1106f, 0xffadd5ee, 0x0d09755a, 0x93e2a2b0, 0xb9e6a0b7, 0x17d6299e, 0xfca8d5ed, 0x00000000,
		},
		{
			0x2ff18c45, 0x71d4e0ab, 0xacbff305, 0x373d9896, 0x8a9a24ac, 0x9ec49a75, 0x983fc026, 0x71b0007f,
			0x5287a40a, 0x3cbe80f7, 0xb95929dc, 0x5af5b7b9, 0xc40d7257, 0x77b94349, 0xb6d2597f, 0xb205d432,
			0x0a6a4405, 0x88e1f155, 0x185c986a, 0x64c89251, 0xd5b80d67, 0xa8d2b266, 0x2e4516e9, 0xf6d9cf71,
			0xe53c0bae, 0xca826d1b, 0x63cab11a, 0x6e37a794, 0x48a2206e, 0xcfce02e2, 0xbdaf6a18, 0x2cdd7f38,
			0x8c2cc137, 0x890e8eb8, 0x60a600ba, 0x26ddb081, 0x340ddc9b, 0xeda76a81, 0x8255cfe9, 0x2b1281a7,
			0xa7616748, 0xd1371de3, 0xdbd6e2a2, 0xd679b8e0, 0xb5e4c6d3, 0x5572f464, 0x187ca825, 0x8a7c4bb0,
			0x3d77d8da, 0xdd122a11, 0xe54898b7, 0x5be20f3d, 0xf71f4bd6, 0xed020f56, 0x438580ae, 0xe1bf8c55,
			0xccef7faa, 0x5a68cca3, 0xac75581e, 0xdc842b70, 0x3fd3a2f3, 0x5c846b71, 0x5031bb46, 0x9399cc6f,
			0xf5caf323, 0xb8313654, 0x4f1ae6ae, 0x8f7a2bd3, 0x34fb8b21, 0x7053253e, 0x4b29d67f, 0x2ff539b1,
			0x929240c4, 0x80e5f025, 0xe96c0366, 0x8fc41f6d, 0x07b9e2cf, 0xe838307f, 0x8ba15220, 0x3c9a26c9,
			0x9f980339, 0x16a27c93, 0x13e3080e, 0x65863461, 0xcce71dc0, 0xbda2259b, 0x2ade7a49, 0xb2eacee9,
			0xb9eeae35, 0xce76b10d, 0xb9034cdf, 0x86bfdba6, 0x6b9c2fb7, 0xb188eecc, 0xd57587fd, 0xeceff638,
			0xe5874ae6, 0xe7ca8d3b, 0x30c33597, 0x8dd3c9b7, 0xb978fb69, 0x6f6dbe32, 0x9b6c04e3, 0x1667b4ab,
			0x94836a77, 0xe7443be8, 0x25604880, 0xaba9ec01, 0x193864a3, 0xcea22615, 0x6d016bbb, 0x4d990391,
			0xe9ebf8b7, 0x7b769578, 0x9053c3d1, 0x91a904be, 0x5d2ee4c3, 0x09294093, 0x7ff8d65b, 0xf3e6892c,
			0x2757e973, 0x017fb91b, 0xb8973e7a, 0xa3ae9c09, 0xae3cce72, 0xc11a87c0, 0x280f5d5a, 0x3d5445e8,
			0x8ab388c0, 0x19dc962e, 0x7567f3f9, 0x325e7e78, 0xbe94481c, 0xe0e80022, 0x9feeeca2, 0x27f88bd9,
			0xf1da0591, 0xf01e82d7, 0x13445676, 0x662f2c9e, 0xefb82f75, 0xc396a6ff, 0x791b1ddb, 0xb8e0c559,
			0x5493160c, 0x20529f08, 0x3011a6d4, 0x4bd16cb9, 0xe463445c, 0x4f614d31, 0x741441e2, 0x6748bf3e,
			0x73ca2181, 0x02c7750c, 0xb27b9396, 0xa43ba47a, 0x197c1c97, 0xe1d5ea87, 0xca4a19c0, 0xac2577db,
			0x63833d93, 0xe1b28812, 0x57bf55c9, 0x6ea878d6, 0x424897c5, 0x53cb4498, 0xf839107f, 0x737ca79f,
			0xf749a282, 0x35923c4e, 0x09c3ee52, 0x1ee489fb, 0x233d2c09, 0x0d78a133, 0x8d8f1991, 0x8ff9b0d0,
			0xa9125534, 0x3be5ebda, 0x86ce55e2, 0x3f47b55a, 0xb2aa350b, 0xb203f2c0, 0x094f7dd0, 0xeabdff86,
			0x57c5536e, 0xa7755f21, 0x45daae09, 0xe06532a9, 0xb0d4156c, 0xe71a8b51, 0x3e10e3fd, 0x8e96857a,
			0xf728248e, 0x7ffa0fc5, 0xf485a5f5, 0x24524ab4, 0xf014f24a, 0xd9c5c239, 0xe75b2594, 0xdbc64bbc,
			0xe532686c, 0xebf0ab14, 0x34dd61d7, 0x71945cf6, 0xcac910f1, 0x58700cf1, 0x8665b237, 0xeee755da,
			0xd0bd40f1, 0xc491ed09, 0x0022c81e, 0xea49203b, 0xe51028d4, 0x60dbfd04, 0x7b3f897a, 0x361deea7,
			0x17a634b3, 0xd76a34e7, 0x9139ac72, 0xa4f4b36b, 0xc50ce4a4, 0x9637f70c, 0x60ad2c93, 0x767a88f3,
			0xca33b33a, 0x903b8749, 0xb87518a0, 0xbfd78be4, 0x7da8213a, 0x66539016, 0xf063d2d2, 0x99de91e2,
			0xdf1c7223, 0xad9f11e8, 0x1447bf52, 0x86dfb561, 0xe17b2f59, 0xed1aa6be, 0x01d07fd4, 0x4ba6d836,
			0x7bde7a55, 0x48f0657f, 0x2956a1f0, 0x32c722a7, 0x845c8549, 0xcd83c1d7, 0xb43bc0ca, 0xf5f56467,
			0xd8dc71d4, 0x876f82f3, 0x49cc47b6, 0x722b2fc9, 0xd9c9a21b, 0xcd7bb2aa, 0x3139ba55, 0xe033c9d1,
			0x65b8bcb6, 0xc4e5fbad, 0x764715df, 0x78426f12, 0x7f3980c0, 0x43f85870, 0xf523af51, 0x1abc30b8,
			0xe9c90f07, 0x03d294c1, 0x23a6380f, 0x4ea3a87f, 0x7b4876d0, 0x7650dc24, 0x5ecaf0f3, 0x7ac7d3db,
			0x97a7d721, 0x46912487, 0xc8f8823c, 0x29d6c039, 0x3e2c3d83, 0x32354e6b, 0xfef6c983, 0x6e2492b7,
			0xfcea8426, 0x967ad656, 0x518728b8, 0xd0637fcb, 0x0edf9b3f, 0x7173dc3f, 0xa84b9f94, 0x13f8dbe2,
			0xc2353763, 0x776ae15b, 0x2e016672, 0x40d33875, 0xb98b803a, 0x6970a136, 0xd99e06d7, 0xed539b63,
			0xd30eb1ec, 0xc10f236f, 0x595bc85e, 0x556a556c, 0x4d061b15, 0x232f527b, 0x5f4221fc, 0x23f9b7ad,
			0xc5b4eee4, 0x0066e13b, 0x70266a00, 0xb48e203e, 0x7bfecfe7, 0x716d9d79, 0xcb8b3aee, 0xae68af6e,
			0xe960caf7, 0x1bff9d16, 0xfbf3d82a, 0x7035c76c, 0xf56722f0, 0x2f326389, 0x9bd49bf9, 0x3ec92ea2,
			0x7ab874a7, 0x4fed9d3a, 0x58150feb, 0xaea319f6, 0xd62eecbe, 0xe3fe3a8b, 0x6d128795, 0xc2fb109a,
			0xa77661a0, 0x99f5311a, 0xf9b42730, 0x483d91b3, 0x017e9309, 0x9adcd689, 0x2dfd633b, 0x671e446d,
			0x840c7e15, 0xafa9ea20, 0xb01ef8fc, 0x9565e77a, 0x63da32c3, 0xc68c0f62, 0x0e6fe099, 0xa842d941,
			0xa796856d, 0x10f697eb, 0x48e44bb2, 0x656ae903, 0x6dbca290, 0x3582535a, 0x9820484e, 0x0d4f4eea,
			0xd4c541c4, 0x2f810243, 0x68bd2318, 0x2a2f9604, 0x27054e47, 0x704efac6, 0xb02f5bc9, 0x2d15e387,
			0x397557a2, 0xe942f7eb, 0xac7dffe5, 0x2cf6f276, 0x802e89f5, 0x9b3e15b2, 0xa0ce9f60, 0x4d57c7b6,
			0x6c060029, 0xc3c97728, 0xa736a6d7, 0x3b7cc938, 0xb62e430f, 0x6be9b67d, 0x773bdf96, 0xc87ebedf,
			0x37a86e66, 0x596c4d9a, 0x891b897c, 0x43dff279, 0x7d3d237a, 0x71411f79, 0x9be2cfe8, 0x318d036e,
			0x453fe570, 0x66f0db73, 0xbd87d594, 0xba225330, 0xd70c11f1, 0x99134eb1, 0x8043d7b6, 0xc6b4e2d8,
			0xd571d79c, 0x10857ff2, 0xae806076, 0xb34e0ddd, 0x8807cbe8, 0xd67700de, 0xeea40651, 0x29ebc1fe,
			0x71b401d2, 0x359e15c6, 0x0e14b24f, 0xc1f18e00, 0x0d20b5b2, 0x93616afb, 0xe4ad5985, 0x94ae29d7,
			0xff11387b, 0x2d049dce, 0x99c51c3f, 0x1ce2e36b, 0xdc515e38, 0x41eb595a, 0xffad9c93, 0xd6dad914,
			0x529a1b27, 0xb1a7da7a, 0xdb5fb6b8, 0x68db5890, 0x314d3511, 0x28212c6a, 0x616042b5, 0x2c8d7d1d,
			0x12825dbd, 0x69614a44, 0xcc6196a8, 0x6b62dc30, 0x170d7493, 0x3d717b15, 0xbe8cebba, 0x83b6fa38,
			0x86fb1ac1, 0x4af87b70, 0xbc90656e, 0x95c41c02, 0x187b7d19, 0xa3741783, 0xff855ace, 0xde24c26c,
			0x00940c3b, 0x17244890, 0xc5a77dc6, 0x4c6d15b0, 0x466c4d9b, 0x6acfbcbf, 0x921259ba, 0xb122c910,
			0x521ebad3, 0x5f659afe, 0x44920b6f, 0x82bfc418, 0x2640e877, 0x9c813a76, 0x16911e13, 0xd84c69c0,
			0xd06f7f9b, 0x0e22d249, 0x0a7b9690, 0x1b1cf892, 0xb7ed8e43, 0xf1e782af, 0xf97b12e5, 0xd758fc91,
			0x99ca9513, 0x39281e60, 0x55536a87, 0x4b8168e1, 0x52104d9b, 0x182b7299, 0x73ddc95d, 0x47af2faf,
			0xc121d6a7, 0x899e7bea, 0x18ae529a, 0x192025b6, 0x1a15ed55, 0xe5fc83fd, 0x2da19a18, 0x89df505c,
			0x44483356, 0x18bd68a0, 0x41db75e1, 0x0fc25622, 0xeb057107, 0x01e398b1, 0xb0eb9136, 0x4c19acfa,
			0x8eee0e4f, 0x026d932e, 0x9039c364, 0xc59c55e9, 0xa4caeda1, 0xe3c4e870, 0xf7cf7bd9, 0x7134428a,
			0xa94f6c2b, 0x87331aa8, 0x0b6a8770, 0xb0931304, 0xa8ab8cea, 0x10bc70be, 0x9aa83b56, 0xb2534b2c,
			0xa1ba3cc6, 0x6f144560, 0xe43b88c6, 0xa20320cf, 0x24786821, 0xacce72a5, 0x388dbbc1, 0xa4a5f0cf,
			0x73f31b82, 0x9b76fa77, 0x17655469, 0xcafbba77, 0x8909de28, 0xbe7f62df, 0x8a981b9b, 0x242d9adf,
			0x45b104c0, 0x02de6d54, 0xc2099e77, 0x95e4c7fe, 0xaa081172, 0x1d07cda6, 0x39b2c1ab, 0x5ba87695,
			0x911b7947, 0x8b670b3e, 0x0000b7c4, 0x875723fc, 0xd892c36b, 0x1538e413, 0xcf6ae3bc, 0x1c9abe44,
			0x5724e5c9, 0x37a0f094, 0xa2fc6cee, 0xc88e4911, 0x055dfb44, 0xab565d0f, 0x9b90a2c5, 0xd47efe2b,
			0x9d7e3183, 0x0f4b6dd1, 0x6b98d777, 0xc6779918, 0xb376289d, 0x5d5c182d, 0x8f6c8a96, 0x8cfe10a5,
			0xad2b34cc, 0x93666771, 0x52583bc7, 0x5e117695, 0x59b83e06, 0x5c4967ce, 0x8e13ca70, 0x36b5807e,
			0xdf0b52c3, 0xaf91699d, 0xc472907f, 0xd5cec7b7, 0x965dc0d9, 0x3951be8d, 0xf04553e3, 0x48756ee6,
			0x5c706ad4, 0x50f65f4b, 0x47e0f61d, 0x0ddb99f3, 0x84bad773, 0x2067a0ac, 0xc0c8bde7, 0xe7102a05,
			0x675f9811, 0xd4b17297, 0xe968f6b9, 0xa37a8881, 0x2315c951, 0x3f70654c, 0xeb35366f, 0x6dd684ec,
			0xf19dfaaa, 0x4ad12e4e, 0x6fdcef9e, 0xa0591475, 0x4520f899, 0x5f606cbd, 0x12e566bf, 0x79fda5d2,
			0xfc8f925b, 0x76fa1866, 0x7e1a05b3, 0x172bd095, 0x9ae3d666, 0x48ebe6b6, 0x04a7deb6, 0x67704be9,
			0x0b4478c7, 0xfe41cd29, 0x2b45d008, 0xc416542c, 0x89531a3d, 0xa983d673, 0xea39fe4d, 0xacfd600a,
			0x099c8b50, 0x894cf5ae, 0xb570365b, 0x724e2572, 0xf8bd0704, 0x0e0e8e16, 0x26f6e9d2, 0xfde493a9,
			0xf3df958d, 0xd6679cec, 0x36c39793, 0x49c8fe49, 0x4b9b29a3, 0x51f19221, 0x92a3fe1f, 0x00000001,
		},
		{
			0xf303e688, 0xcc192f24, 0xd160ffff, 0xa631c413, 0xf0c3470f, 0xe10da250, 0x7e1829bf, 0x46a839fb,
			0x34f1e396, 0x075f0b7c, 0x73ee77d8, 0x2b1bd17c, 0xfd6b4762, 0xfdf0e782, 0x5e687246, 0x026042e3,
			0x66584217, 0x438bd9d8, 0xd183881f, 0x272362dc, 0x8aa9d6b3, 0x7c8ae8fa, 0x8d17c8fa, 0x9745c984,
			0xaf12d742, 0x10e41833, 0x630e26af, 0x3ea06679, 0x312039bb, 0x8e85cce8, 0x1f103bce, 0xdae49fbd,
			0x5566d9ee, 0x3dfdcad6, 0x7051103e, 0x1951a89c, 0xdc176a4c, 0x70b74570, 0x41d285fc, 0xa517f7f0,
			0xab2218dc, 0xe9fe8df2, 0xdcd82807, 0xca0bbd28, 0x68b1d3fb, 0xa9f9fefc, 0xdf12c0f1, 0xbe991b8d,
			0x5ccd3660, 0x9e77828d, 0xf8690401, 0x305f6e4c, 0x04d918d0, 0xb0d704b7, 0x32897e94, 0x46fae9f4,
			0xb583bbc8, 0x8532bf64, 0x507a14c0, 0x9e9d4564, 0x6551ad19, 0xd268286a, 0x44ac44f4, 0x25d5988d,
			0xfe165e83, 0x09c5fa29, 0xb8466635, 0xe838a1df, 0x1dddf2e0, 0x5a36a864, 0x0a76cb3d, 0xc62ad275,
			0x635f6da6, 0xa509ba01, 0xbbdb52a5, 0xc15af8b7, 0x9589f12d, 0xb06ea021, 0xcedc2cea, 0x22f6ebfc,
			0xdb021a87, 0xa1eed7d2, 0x8a2af568, 0x95f6b8c2, 0x0daaeb17, 0xf5cafccf, 0x27258f23, 0x82cf232c,
			0x1fc37549, 0xbe9af53f, 0xdaf8f39d, 0xca9f32f3, 0xd9c2cd9f, 0xfa8b77ea, 0x0f10dc13, 0x198f8643,
			0x9b384f9b, 0xd80fe99d, 0x50c06ee8, 0xa3d27688, 0xc41a0fd7, 0x10436ddc, 0xb2d4d625, 0x138def4c,
			0x0f3ad265, 0xe94319eb, 0x2b361e43, 0x510d374b, 0x2ad64821, 0x5a6eb184, 0x6b7db8aa, 0x39a14aa4,
			0x7910d812, 0x727ec830, 0x494aaed3, 0xf36aa170, 0x91c0f0f3, 0x76404055, 0x340aa151, 0x3cf8e96f,
			0x2bcc98c0, 0x94fde154, 0xa7fb5bfd, 0xdeaa53bb, 0xd4ed9d0f, 0x79f1efe4, 0x3336e132, 0x5066e3a7,
			0x83c735fd, 0xb2aec638, 0x31b2ca11, 0xa53a9f16, 0x95b4dbdc, 0xc83cedfa, 0xf1f4851e, 0x196fc3cd,
			0xde304577, 0x8c04facf, 0x45fe8ea4, 0x2bb837f2, 0x30b7981d, 0x9c512bc4, 0x6bd92980, 0xa6d0ea31,
			0x1a80704e, 0xb3f6941f, 0x6e868a25, 0x8746142b, 0xebe0aa73, 0x01d6cc50, 0x9f7acd84, 0xf06db974,
			0x7e7deca8, 0xfb2e1d59, 0xda5adffe, 0xeb19f85d, 0x99c28b07, 0x57ea5b09, 0x1a0af649, 0xa1d370af,
			0xa0f0e9f1, 0x8ff018eb, 0x8030be6d, 0x6081430a, 0xdc19a2dc, 0x8a5ae220, 0x57c842a8, 0x9928aa0c,
			0x6020c95b, 0x29513ec2, 0xcc6b47ec, 0xfc09e580, 0x35d65797, 0x1a3b4ae7, 0x3b5ec2fb, 0x11f9c4b3,
			0x250464a5, 0xbd00abfb, 0x0a8f7030, 0xb2e989e4, 0xa1f6fbfd, 0xa3b02d7e, 0xfcc7774b, 0xe00a12b9,
			0xba193ab8, 0xdbe5cdb5, 0xc8e4c768, 0x5ecaab9e, 0x78ffd42e, 0x1224ad1a, 0x00657198, 0x4b3f2bae,
			0xa05d90d8, 0xc78a17fe, 0x96d84e87, 0x3fc650fb, 0xee43da7c, 0xb31ba94f, 0x97555d9f, 0x65210082,
			0xdae5ed92, 0xf0736407, 0xe8296dd3, 0x83298936, 0xdb033b2a, 0x51f71963, 0x0003cc85, 0x812f728e,
			0xf3e5bd5b, 0x469a5bdd, 0x6cdeb75e, 0x3a262e56, 0xd06436ca, 0x54dbbbaa, 0xf2702ebf, 0xddcf8c77,
			0xae77d909, 0xb6533d93, 0x684ed733, 0x29c3c7d2, 0x1ac84484, 0x49dd5154, 0x7280b2bc, 0xfd48b59a,
			0x57234fbe, 0xf41e74f2, 0x6316ba4e, 0xb3e37824, 0x6f12c040, 0x9d29715d, 0x620759cc, 0xfa71bf75,
			0xf2ab1930, 0x3f51ae4b, 0xe61445be, 0xd2bac52c, 0x4653b78a, 0xe623bda9, 0xa0f13d9e, 0xbbb1c7b2,
			0x8c48000d, 0xe02f6013, 0xeaa8c65d, 0xc7c6d354, 0x30ee07d5, 0xc8bb0bfd, 0xb6e4453c, 0x41561d6e,
			0xeacffd53, 0x2019bfbf, 0x6e136ce6, 0xa3dff8a2, 0x9ad7e757, 0x600714e0, 0x5bfb6fd0, 0xf9c3e941,
			0x3b10ec8f, 0xe40931bb, 0x92d927e4, 0x53d1910a, 0x3422cca5, 0x9bb4d5ef, 0xf214bb48, 0xc59b4b95,
			0x054cce40, 0x755068ae, 0xf9d92586, 0x381b08c4, 0x8126eee2, 0xf6eedc2d, 0x6a6c2d62, 0x6811ec11,
			0x23d4f761, 0xa9ad8641, 0x8eab130f, 0x07ff0323, 0xccfbfcd4, 0xd1e0afa3, 0x5ab98079, 0xba56771f,
			0xb8132051, 0xc3962be9, 0x3123ed54, 0xe7b9cb58, 0x644cf2ab, 0x1337749f, 0xa5d15306, 0x14456f90,
			0x93708d2c, 0x553ee25f, 0xfa146984, 0x878a208d, 0x65f063b4, 0x8cde55cb, 0x7653fec1, 0x93a9e603,
			0xfa054d52, 0x1170892f, 0x5e07dd30, 0x397433eb, 0x11368a17, 0xf14d68bf, 0x36291b39, 0xcc110abb,
			0x160fa5a8, 0xf425d83f, 0x389b7624, 0x04594d02, 0x2831898f, 0x586fa015, 0x3901bdd0, 0x8a862617,
			0xb292592e, 0x7802e3a8, 0xa0470ce8, 0xbbf004f8, 0xbed46775, 0x92aa074c, 0xc4b1735d, 0xe441d943,
			0xe9f988bb, 0xec0a42c2, 0x78272668, 0x46244775, 0x033fef97, 0xc72fbd71, 0x369b4a8f, 0x47598c53,
			0xb8595780, 0xc47dcef4, 0x55223a47, 0x609ce30c, 0x4ebca37d, 0x483cf2c1, 0xd287ae0b, 0xd5971a8f,
			0x6c8123e2, 0x5fd07f01, 0xbdd413aa, 0xf2007cc4, 0x10c936ca, 0x638282d5, 0xc3a84893, 0x53f58af3,
			0x36fdcaf3, 0x8f815c5d, 0xdcf5f5a5, 0x0aa62325, 0x213ca067, 0x81fa9f26, 0x86578498, 0x6c926fac,
			0x382cc867, 0x237ab945, 0x956728c2, 0x0860bb76, 0x6ca83fac, 0xa2145421, 0xecd60937, 0xbad59d96,
			0x91c78a53, 0x3f434ff8, 0x8c73d570, 0xe44423aa, 0x059945c8, 0xbbda1bc0, 0x6d122c66, 0x301a4e61,
			0x0f26eefc, 0xa4882148, 0x2ca32377, 0x88108558, 0xe0c16345, 0x519f25d0, 0xf6bd0f68, 0x006cccfe,
			0xa264a137, 0x0db67c23, 0x5ad30a1b, 0x3fa7ed0d, 0x376c4b7b, 0xfec262ca, 0xf2f74d28, 0x98ba01c5,
			0xdfa3a3fc, 0xcc8026e9, 0x9dfc2b73, 0x828594ae, 0x9e9216c5, 0x7bd30ba8, 0x281c9422, 0x367112b4,
			0xc5637232, 0xfaead8dc, 0x35673cf7, 0x28ddb795, 0x6f519044, 0x1ac88b60, 0x53f4e6c3, 0x23341627,
			0xd549fc55, 0x71a4c732, 0x6b185fee, 0xef3050bb, 0x3a946ef2, 0x321d5db2, 0xbef61391, 0x1fc64168,
			0xe9698108, 0x9b0c173b, 0x3ddb3176, 0x8e0d9892, 0x4d23329d, 0xc6bc0e34, 0x2117e911, 0xb79d548c,
			0xf14fff58, 0x14c83b4c, 0xcbd03d87, 0xdf219687, 0x6ce91194, 0x872004b6, 0xdb91d890, 0x5409d91a,
			0x569e1ecd, 0x6575ad73, 0x0668ee40, 0xbbc1738d, 0x7720e4bd, 0x13a5b0ac, 0xbc7459ad, 0x0e78b3b8,
			0xb1193c57, 0x888b09f7, 0x575acf56, 0x87ad8a51, 0x2bd3d8a9, 0xac050af5, 0x03216a36, 0x123e1cd0,
			0x2a138a52, 0xc9546c4e, 0xad529298, 0x5289020b, 0xea92d749, 0x35cf2d69, 0x52fa7a1d, 0x3c4c9fc2,
			0xf8c4e013, 0x1198372f, 0xbd3a7273, 0xb6a90ab5, 0xd789c5af, 0xe6688b7a, 0xe52235d3, 0x904bb05c,
			0x382193cf, 0xd8ab33ba, 0xeb71b908, 0xc8245e65, 0x0db5f944, 0x9089729d, 0x5b98a7f5, 0x5df011ff,
			0x632166da, 0xf5137eb9, 0x8c8f8f6e, 0x4dd56e8b, 0x6451742b, 0x96191df0, 0x8a4ab8d6, 0x5d5b9b5f,
			0xde334ce4, 0x55654975, 0xc56a3c4d, 0x1031e52f, 0x87de3faf, 0xad6f2b44, 0xe8d4ca60, 0xcdf47419,
			0x7ce8ce52, 0x594fa861, 0xad5c1485, 0x26349d3e, 0x2b7a3fd3, 0x3f060d12, 0x3aa87e4f, 0xee815560,
			0x3304f2ac, 0x4ac8e64e, 0x3e7d281e, 0xc8f9cdef, 0x242711e0, 0x0aad9d42, 0x9f9103c3, 0x281d0b2e,
			0x6ad35669, 0x8ca541ce, 0xe5746c4b, 0x299409e7, 0x639ed505, 0xfa444567, 0x9f12c8a2, 0xa84aaaeb,
			0x70e24719, 0x57be4723, 0x5de0e821, 0x7167f7a6, 0xe3d7bf18, 0xa0a5ff96, 0x675abb1b, 0xbd8d9944,
			0xa5678fd4, 0xb066d4cc, 0x2d22432c, 0x645ebb48, 0x611f2daa, 0xe3565730, 0x97c7959a, 0x04d90276,
			0xa89082fb, 0x02c0639a, 0x53a192be, 0x5586b313, 0xabd2e04f, 0xbf3dde01, 0xc1dbbf3e, 0xac6b82f1,
			0x4e05e2e6, 0xa17ca7de, 0x2f53dd0f, 0x99b31a3c, 0x47a2f8ab, 0xfb568c3f, 0xdd73ad16, 0x35997f54,
			0x51ca00b9, 0x9341be6d, 0xd224b8d3, 0x4083cc10, 0x08e3fa8b, 0x7517d3ca, 0x610b2994, 0x476eced2,
			0xba888e9a, 0x66dabf3f, 0x03c021f2, 0xaaf5dc0c, 0xfa57388b, 0x933d9a79, 0x2729745c, 0x400cae70,
			0xb061f0c1, 0x0436add3, 0xb1c6ee3d, 0xe8c938aa, 0xb6d1a8f4, 0xe9690265, 0xe289252a, 0x59f3ec09,
			0x5463db71, 0xebfeb72a, 0x6a8bd22e, 0xf398e407, 0xa3888800, 0xe4555815, 0x2734a606, 0xeeb1538d,
			0x91c2559c, 0x0d3e4fb7, 0xef79a2fd, 0xc9238bc6, 0xc265db2b, 0x64c77a90, 0x97257553, 0x92b16e19,
			0x692a1e72, 0x2c08ebb2, 0x051139e4, 0xd80ab78b, 0x7bf0b405, 0xec6074d7, 0xad5a94b2, 0x546959e5,
			0xebf74111, 0xe7fc260d, 0x2cf72ee8, 0xffb57b45, 0x7fd0725f, 0x99bfb386, 0x391b067f, 0x61ee70b4,
			0xd18307a8, 0xe90bdc69, 0xdc487fd7, 0xc074327f, 0x1aec91dc, 0xdd8b9338, 0x0d5d6102, 0x6277a47a,
			0xe9cce342, 0xc6ba39bc, 0xffe9f5d0, 0x78a3ada8, 0xfcb719f0, 0x6b43f302, 0x0e90687a, 0xf4a6e727,
			0x0160a9da, 0xe28ea54d, 0xcda36f13, 0xbb0b228e, 0xaa4c84db, 0xc31cb614, 0xa26e384f, 0xc7637496,
			0x939eb2af, 0x48b2aa90, 0x58d37375, 0xab372a5c, 0x59f98832, 0xef75c543, 0xc3dc410e, 0x00000000,
		},
		{
			0xf031281b, 0x2854c4a3, 0xedbb8d67, 0xadef3f5f, 0x0b2eb6a9, 0x8781bf81, 0x1fe45b49, 0x08a1e738,
			0x9c42c2c0, 0x69f6da77, 0x3e7fd5ad, 0xd157e6f1, 0x34373568, 0xc32ecb19, 0xcf2f6841, 0xa9ce49cd,
			0x5dd452ef, 0xf1f70f3d, 0x29d7c784, 0x8d1ad3d9, 0x0b64b8cc, 0xd5e73bd1, 0xc17ec473, 0xf3a0c43e,
			0x2fcce31d, 0x66cc7e80, 0xdcbc54f7, 0xf628bc9d, 0x19e3c1dd, 0xb15a2634, 0x8fb02a1e, 0xa3f3f3ff,
			0xaf0bce29, 0x902c2410, 0x3469b471, 0x635ef519, 0xd02ab028, 0x120441b9, 0x01249566, 0x19a53a45,
			0xe1d112f2, 0x96590eca, 0xf1aaba10, 0xd8dfa30b, 0xf16b70c3, 0xd47283a6, 0x00eccdde, 0xf943d451,
			0xe39b38ab, 0xbe102a90, 0x411a9041, 0x30cb5f5c, 0x909fa216, 0xc10ce73b, 0x7c0ed4a4, 0x8b086e54,
			0x26ff31bd, 0x59656eed, 0x9cb0b23c, 0xdf5f660b, 0xb3baf66e, 0x8678cdf9, 0x76fb72c0, 0x103ee981,
			0x44476548, 0xc7f3cac5, 0x083ba90c, 0x7d81c4ff, 0x25e937ed, 0xbe21e69e, 0x7615075b, 0x80afb23a,
			0xeb0631ec, 0x5c751574, 0xe8c243bb, 0xaaffd99c, 0xdea1902a, 0x5aed0e9a, 0x1f93f351, 0x7ad88d84,
			0xed5e75fd, 0x9214db74, 0xdd20167f, 0x66304480, 0x7903945c, 0x79994838, 0x652f4129, 0x8f424869,
			0x0b21f92d, 0xd5fdc86d, 0xd3b159ef, 0xfba714cf, 0xa3b30bd0, 0xcf904f76, 0xb827c9a9, 0xb9950f00,
			0xe4530ab9, 0xe65eaa06, 0xdbbbbd68, 0x949d78b6, 0x0b2506ac, 0xa712ff31, 0x09265285, 0x8631f201,
			0xad2c986e, 0x01772c81, 0xce75fc2c, 0xcb5fe8cc, 0xbbd35d7a, 0xa9ca2ceb, 0x7df6f3cc, 0xf97afa4f,
			0x2873c371, 0xa3f47bf6, 0xdad42d92, 0x4ed25fe5, 0xd4b835c7, 0x9cb9a4c4, 0xc7535063, 0x243bbe4c,
			0x479e6aa5, 0xa2a5e82c, 0x5adf14c9, 0x6f447be7, 0x585be5e2, 0xe9c8fa37, 0xb7222f2c, 0x0f5418e7,
			0x5ad24912, 0xceff01d0, 0xa474db73, 0xd48bbd4a, 0x982ddc09, 0x4ed71e6f, 0x25715341, 0x603c74be,
			0x6d107b9d, 0x0eb9ac67, 0xfa11ae10, 0x8d1dea1c, 0xb7ee8448, 0x7f870fb9, 0x34759935, 0x92525108,
			0xf05c1642, 0xb751da22, 0xf77969b4, 0x74dbe4fb, 0x45953a2f, 0xab6db626, 0x2b92d4a8, 0xf196f938,
			0x0a8c131a, 0x12984c99, 0x1e1aa2f7, 0x7ec7e356, 0x7c867fd9, 0xdb24d8ed, 0x70840cb9, 0x92e85067,
			0x649e171c, 0xe9661352, 0x4a36cc77, 0x18c1c22d, 0xae736441, 0x11ea975e, 0x51b4886c, 0xa3f62204,
			0xe5bb8347, 0xce3fedb5, 0x62a128e5, 0xd91fbdc3, 0x5a4cd992, 0x7ac9a43a, 0x9895593a, 0xdd0169a7,
			0x59412bca, 0x4eda1faf, 0x4af6d123, 0x38ab9424, 0xff4883d9, 0x66612eed, 0xa7518493, 0xa28ef48b,
			0x5a9f221e, 0x4a11d0dc, 0x7f38eee7, 0xf15539d6, 0x6b7a3a9d, 0x5b920b84, 0x9f96e23a, 0xa64cc5af,
			0x10bba739, 0x6bcec1ce, 0x5eb1815e, 0xef91dd98, 0x4d988087, 0xd496a43e, 0x3020536f, 0xa8d07e8a,
			0x9b0b682c, 0x42d32afc, 0x7effbd1c, 0xebc8ee6a, 0xd09cffa6, 0xbade9b0d, 0x395ac628, 0x2cd5d598,
			0x04e7d619, 0x1e8e2456, 0x060c3d2b, 0xe3e2a030, 0x6b2b910c, 0x979887ec, 0xe9405469, 0x56aaa0f5,
			0x7b294ec8, 0x7c35f338, 0xf860c723, 0x8c6a98f3, 0x5e3b28f2, 0x52ee34d0, 0x28dbf346, 0x0a3b4443,
			0x77623006, 0x088d8a1a, 0x105c7b97, 0x4024ca1f, 0x02fefa90, 0x945f5775, 0x1c892bc3, 0x0fcadfc7,
			0x7fd85dbb, 0x0e47072c, 0xe952c3f9, 0x45e5d65f, 0x52968ff7, 0x35564f16, 0x8f22a4c1, 0x42b0edf1,
			0x42c45226, 0x7809bab8, 0x7cbfa8e3, 0x4086d029, 0x1dd80280, 0x2945e82f, 0x17f6118b, 0x632b04bb,
			0x93caeb9a, 0xc4eb3361, 0x3f777fde, 0x7d5da1c1, 0xa361b56c, 0x8be4bc1c, 0x0d9ee70f, 0x94501ae6,
			0xce612c90, 0xd3d201f5, 0x3fc72aac, 0xf0641130, 0xcdd878ae, 0x7eb1d742, 0x72614645, 0x470a6de1,
			0x2029fe81, 0xb0d55a4a, 0x427d252c, 0xda4b4e64, 0xf16359d8, 0xd3d5ab0c, 0x2f41c52f, 0x9791c557,
			0x51aa34ba, 0xeff66765, 0xf7c0ffc7, 0xafa43303, 0xb7892f87, 0x41ac0a56, 0xea023717, 0xbe03d4bc,
			0xd40b6e4e, 0x122b45e5, 0x91120d63, 0x4f35f5e4, 0x27e46552, 0x0923188e, 0x1954107c, 0xaa46b51c,
			0xa0567a5f, 0x0835db98, 0x5de68e91, 0x5fca2b73, 0x25b39f55, 0x1005e5aa, 0xca443d77, 0xf0afa444,
			0x82255d5a, 0x32567348, 0xd6d9de94, 0x1c333c80, 0x81e006cb, 0xf0908372, 0x95623af2, 0xcf1b1251,
			0x475fef97, 0x5165389e, 0x2042bb52, 0xed29be69, 0x3bec98a1, 0x22fa1671, 0x2dc0c18a, 0xa0f14e14,
			0x84fa870a, 0xdf204d32, 0x339e6ea8, 0x12794c38, 0x365cfe81, 0x9b103750, 0x223acdcf, 0xda464776,
			0x24bfe260, 0x3349e793, 0x13e0bc17, 0x6efe6af9, 0x214c554c, 0xf664778e, 0x082af5a3, 0xb5c23a9b,
			0x8e9d1805, 0xd72962ff, 0x67a979f8, 0xb92bcbc1, 0x02a719f3, 0xb2a0a077, 0xa7423444, 0x50abfaa4,
			0x767468b2, 0x795d6648, 0x099be3d5, 0x80f70823, 0x41d701ee, 0xa9384db2, 0xbce92b88, 0x2e275e60,
			0xb51db34b, 0xc5b65bad, 0x8bc89ed5, 0x1d874458, 0x83e66d33, 0x24378673, 0x596bedbb, 0x18b0810a,
			0x2818d997, 0xabe5913b, 0x9b129d31, 0xc1b90c03, 0x4abcdad4, 0x87f2e67f, 0x16e57bbf, 0xc4c7e9ae,
			0x11e84def, 0x1ee27ed6, 0x42ca19b4, 0xc9eb544b, 0xbaa83df5, 0xa3e872e2, 0xf63c908d, 0x403da6c3,
			0x9b593db6, 0x467595f7, 0x590d437e, 0x75ba473b, 0xb8d053b1, 0xd493179d, 0xa36b2b51, 0x67459f3d,
			0xf62ce225, 0xe18cad9a, 0x478076bf, 0x6da202b0, 0x23083521, 0xc000198e, 0x049a0db7, 0x27d3c5b3,
			0x1f3d9dda, 0x26faee5e, 0x18495d30, 0x1a380a37, 0xe2e4760f, 0x08645b14, 0xac06e35b, 0x95260b5f,
			0xa63cf77a, 0xfa95a21c, 0xe4dcd30f, 0x722d401c, 0x45a40322, 0x05c334cf, 0xacefddee, 0x2a6efefd,
			0xeede8536, 0x87d9cb87, 0x14facead, 0xad3075ae, 0x29581514, 0x8165c637, 0xf6279a8d, 0xb96aa8b0,
			0xaa18fc4a, 0x61e8c6ff, 0x5acfc20d, 0x75e088f2, 0x0751a39b, 0xf38cecef, 0x678c679e, 0x6907bf55,
			0xeb62c51b, 0x0b5647b7, 0xec6dff76, 0xc0299bc5, 0x8ba227d1, 0x911c87eb, 0x774a0f20, 0x12351ef8,
			0xaa51cb63, 0x8c6415e2, 0xecb229b8, 0xeb7c0cd9, 0xe679df7f, 0xed213db2, 0x69f95082, 0xac746c25,
			0xf3d3c554, 0x3b86dae2, 0x8e856e45, 0x20e25322, 0xe7792e98, 0xa755e018, 0xf49d9075, 0x92c5d420,
			0x9bef349d, 0xcf8ce969, 0x759899f4, 0xb48b2b8c, 0xb2c4f127, 0x592a5c38, 0x5a447d29, 0x274964ba,
			0xb22f01f8, 0xea92e8ba, 0xf28d8151, 0x6a330b07, 0xc50f681e, 0x7656e8ab, 0x3abc60c6, 0x591f5d92,
			0x2cc59b02, 0xdb6ee1ee, 0x400c2200, 0xed505823, 0x2b2f6c38, 0x8f9117d5, 0xf713be1f, 0x2cfb83ff,
			0xbaded271, 0x64d2858e, 0xe2907319, 0xa38e2e3e, 0xb6b7b150, 0xbb5fa7be, 0xa47fccc6, 0x373c08ac,
			0x6f2c22b6, 0xf61e8adb, 0xa170dc4a, 0x4a97eac8, 0xba7ba673, 0x58e1ac7c, 0xb8710679, 0xd35ee37a,
			0x176ffffd, 0xe5ddf572, 0x18d2216f, 0x68851961, 0x737c3397, 0xbf5af34d, 0xc8781b1a, 0x4f85bd76,
			0x5692e727, 0x724c8a12, 0xffd56073, 0x872dd515, 0x6f986900, 0x652e2c29, 0xfd52db32, 0xf6bcbbd4,
			0xa0ef5c3a, 0xac0bb4cb, 0x094cf050, 0x1f068e1c, 0xf7d10c6a, 0x8f2d7151, 0x1b5eb393, 0x56aee127,
			0x09cad078, 0xe8b26ea0, 0xefa05cdf, 0x5adad8ef, 0x73041a4c, 0x32dbc4ae, 0xf12c4a54, 0x2919859d,
			0x1dd737f2, 0x10ad9740, 0xbfb3ac0b, 0x9d0befc7, 0x3c84c61e, 0x81fd44ea, 0x69ce0c17, 0x4e0a8d19,
			0x6b6e1e3b, 0x9db85429, 0x861d97d2, 0x54969958, 0x23c9ac35, 0x18d8f36d, 0x1b04e2e0, 0xc748442e,
			0x8d82bdfe, 0xdb3e8982, 0xf1b17b8f, 0xcfa0d9d0, 0x040ee7c5, 0xe49a0665, 0xfdd8ec69, 0x895a0f38,
			0x378e6936, 0x3fdedbcc, 0x618b7ecd, 0x55fd58eb, 0xaa65ee96, 0x779b7a8c, 0xc5478f25, 0x917000df,
			0x7b0a7d2a, 0xd8210da9, 0xb455700d, 0xe42dd941, 0x1827a725, 0x3955ff12, 0x5913389c, 0x97cac0f5,
			0xaae3c2ae, 0x84f276ed, 0x89be484d, 0xf0c37b99, 0xea804cba, 0x76a371f7, 0xff952f92, 0x89a196f3,
			0x6012bd1d, 0xc782d875, 0x73fb0ca8, 0x463607d2, 0xa525cef2, 0x898afb32, 0x3b2a3b6f, 0xbf9a97a6,
			0x39420eb8, 0xac4aa565, 0x9e3a866d, 0xccc94734, 0xaea62f67, 0x272bd89f, 0xa3b00abb, 0x083d45a8,
			0x7291b71a, 0x76494f68, 0x1781e960, 0x9bfd9df0, 0x4fd19ad7, 0x84532176, 0x1df9f9d8, 0xb2053fe0,
			0x6e0f3fef, 0xc84a04cb, 0xcd7435b4, 0x1b8ab5da, 0xc286bf17, 0x2bd913b3, 0x51acb5da, 0xb65047dc,
			0x4e72066c, 0xb59e0c79, 0x04706733, 0x713e7cbc, 0xb2eb4575, 0xb34baded, 0xb9133598, 0x43e1cfc7,
			0x9d151448, 0x8a0ae117, 0xb2fdf130, 0xcd56abdf, 0x15e7c952, 0x24c3ef36, 0x4bd81aef, 0x5ce2ac2f,
			0xe430e98a, 0xe899a3dc, 0x350f55d6, 0xcb085d18, 0x69ca2039, 0xa4630594, 0x4e8818ba, 0xcf36d038,
			0xf5003aec, 0x9050b969, 0x8191d47d, 0xfabf4239, 0x4fbd40b2, 0x11e903c8, 0xe59bafdb, 0x00000000,
		},
	},
	{
		{
			0x46752168, 0xfdac5574, 0xfac0ec3a, 0xf6193eca, 0x1319aa2b, 0xdb3c2c04, 0x40f42f4c, 0x87cb590d,
			0x985fd3ef, 0x271d580a, 0x6555480a, 0xfb9247ea, 0x385f369e, 0xbd620369, 0xffecb07f, 0x98c0c054,
			0xfa676ce7, 0x168588b5, 0xb04e30cd, 0x0cfedeb6, 0x51abea51, 0x251518c1, 0xba3e6db6, 0xb01ae96b,
			0x319eb5f8, 0x3d7d60d9, 0x9f048e79, 0x6ce151dc, 0xfe9d2ea0, 0x02c98f72, 0xb84233ca, 0x1fb6d813,
			0x7c272167, 0x0dd5354e, 0xd0865ee9, 0xc90b14b5, 0x752ab859, 0x041ef1aa, 0x805b5de6, 0x5362e4af,
			0x721cd33c, 0x3a5199ce, 0x92c18e0f, 0xac21e124, 0x5e379c67, 0xa6474c19, 0x59315840, 0x8c6eb8f1,
			0x3906ee07, 0x4f71e16e, 0x6bd4e74c, 0xca4497b6, 0xab06f443, 0xb87bbb96, 0xf12ca3df, 0x63ad0613,
			0x40ee11ba, 0x8131490b, 0xd648f24a, 0x91826b5c, 0x7398718d, 0x373b0c2b, 0x5687b774, 0xa3c79f2f,
			0xf5056454, 0xcfcd49f4, 0xd558812b, 0x32bcceee, 0x3412da56, 0x8539522f, 0xef839606, 0x08150d04,
			0xe5e6c525, 0xac9a4934, 0x93abf1b5, 0xf753688a, 0x57856645, 0xb0f50124, 0x16855cbe, 0x4b9ab59a,
			0x0d3b7971, 0x6eb3fefb, 0xccf94315, 0xe1d90709, 0x6a268d28, 0x94c266d9, 0xff82519b, 0x96e608db,
			0x608a5373, 0xe28cf17b, 0x57dac2a7, 0xc45951dc, 0xbe0068a2, 0x83469c20, 0x5b39ea51, 0xf2d92e1e,
			0xd1bf2154, 0x52e21225, 0xce85e14e, 0x16511234, 0xa15fda53, 0xa350055c, 0x4ef452d3, 0x27e41024,
			0xb00d191a, 0xebd2dd16, 0x991384c4, 0xe36882fe, 0x194054ee, 0x42ea6aa9, 0xcf4fa735, 0x5be7e6c8,
			0xf23be128, 0x38cab747, 0x01d48c06, 0x81071b6f, 0x8f9b7aba, 0x708d09e8, 0xaf9204f1, 0xbaee59bd,
			0x826a9c0f, 0x812d9316, 0xaf33b1b4, 0x285370f6, 0x45aa746d, 0xdac607be, 0x787423b2, 0x4ef6483d,
			0x1322ad8c, 0xa4795e2c, 0x109d4878, 0x699bb4aa, 0xc769e011, 0x0f803ea7, 0x771eabac, 0x07ccb50c,
			0x05dca93b, 0xfa286468, 0x5d55a036, 0xb69a1805, 0xb371155b, 0x71b45dbd, 0x3fbda197, 0x674bde10,
			0x958d3dbf, 0x1e173f2d, 0xac27d5c4, 0xb8118c6a, 0xf34c4abc, 0x3d4a8f8c, 0x4ae9d356, 0x42ff8ec9,
			0xf4c86d65, 0xef27cc3a, 0x94ccfd6c, 0x7c9829be, 0xedb42392, 0xf295bb35, 0x440227bb, 0x5a43144d,
			0x24ecb460, 0xb3edc962, 0x28607429, 0xbd6f3ba5, 0x2b711a39, 0x0113c733, 0xae035dc5, 0x8a3e42d5,
			0x95285c5e, 0x6e4bf12a, 0x209cae53, 0x0d2df30c, 0x3cd5c79b, 0x8427c9d5, 0x3b76e266, 0x985e939a,
			0x250fa592, 0x1961a186, 0x55448bb0, 0x608aed7b, 0x205a6cbf, 0x32e841f6, 0x5cd24454, 0x753ad410,
			0x398d4acf, 0x48c7c804, 0x4f88c204, 0x3a03916f, 0x94cacae9, 0xacaeb218, 0xc4cde418, 0x9a11a344,
			0x00ab267a, 0x8ecbe387, 0x4843016a, 0x87269e07, 0x34358036, 0xae885ef0, 0x53060dfd, 0x1deaff33,
			0x06a32119, 0xea4a89e9, 0x3acfb3ed, 0x3b2cdd87, 0xc94da57b, 0x2678187b, 0x02158739, 0x2a28c5df,
			0x5c7bad90, 0xcecd1e91, 0x5b374cb7, 0xdd359bf6, 0x00634640, 0x646339a6, 0xe4f2d13f, 0x2ec352a5,
			0x272e2461, 0xa024beeb, 0x5b05dbdf, 0xf17e366c, 0x28a97d0e, 0x26fc8bd1, 0xa06ea398, 0x25965637,
			0xa2e62ffe, 0x6c6a0b78, 0x4dae5184, 0x128c5c2f, 0xa65fe77f, 0x5097da83, 0xf5865135, 0x407e9d15,
			0x3486246b, 0x7db16ae9, 0x279fff0a, 0xe3e540c3, 0xfb99534a, 0x30991fa3, 0x7f5ae4ce, 0x2c360abd,
			0xdaa3a71c, 0x618924d9, 0x7ca0beef, 0x93c05a2c, 0x8be0f6c5, 0x63650ca7, 0xf0f46880, 0xc6ed57fc,
			0xd7a1bf73, 0x98aaec95, 0xd26a8c7f, 0x03c837e6, 0xede14af5, 0x61899aec, 0xc75747ef, 0x5fad82bd,
			0x2bc10abd, 0x4aa0e5c3, 0x8d67a11d, 0xdd20cb07, 0x2f338c74, 0x69499a7f, 0x7eed7c62, 0x33267982,
			0x165229b9, 0xa374aae4, 0xa8965d3c, 0xac41836b, 0xc0fc26a9, 0x8020bb5b, 0xb0e100bd, 0x844508bd,
			0x39feeb1d, 0x3aa38a71, 0xe819988b, 0x524bf883, 0xf86d734e, 0x66a52b6a, 0x1634a2a0, 0xca551fe2,
			0x5ad4f82f, 0xb34d5b21, 0xb8eec9d2, 0x53117d83, 0x2adf5edf, 0x0c8147d2, 0xf051117a, 0xa3fd86cc,
			0xa09ab690, 0x37af8d15, 0xc347ce22, 0x7317ba6e, 0xfa96f2d8, 0x822c3f82, 0x7af1bdac, 0xfaf636ab,
			0x65a2c3a2, 0x79a35c5c, 0x29d778be, 0xe168bc8b, 0x532dc6be, 0x7c0ce5f4, 0x1a2135d9, 0xbc3f93ef,
			0xe8b177e3, 0x9f4a4a1a, 0x4917a25f, 0xadd77889, 0x0529df10, 0x1ad76f69, 0x1c16b4a3, 0xb86d593c,
			0x095ae5c6, 0x642c2c9c, 0x68ec9833, 0xdf93eda1, 0x8e102ca4, 0xa37c402d, 0xba4906ff, 0x1dc325f4,
			0x04b8911b, 0x78876200, 0x7cb18825, 0x9a1ba540, 0x07ff632a, 0x59e37653, 0xa7cceffc, 0x8a883efe,
			0x7fbd41d9, 0x6ce5b38a, 0x62cd8223, 0xa1580e1a, 0x97adbdaf, 0x90c6b19d, 0xc7ecfbd9, 0x87e41646,
			0xd579bb55, 0xd50f5f5e, 0xf9271c3f, 0x83f7e54c, 0xafc7a245, 0xf3e929e8, 0x5754d83f, 0xe5e79190,
			0x1505b011, 0x6b515549, 0x29a91c21, 0x8c68f2a6, 0x6f80f22d, 0x8e0cb3c6, 0xfc35cf6a, 0x593685fa,
			0xc17c18cc, 0x6e0617ff, 0x9066d4b7, 0x642e0161, 0x20c222ae, 0xd6a97f6d, 0x2fc278e1, 0xc3c220f6,
			0x49153c9c, 0x467243e8, 0xdd1318fa, 0x1f500c30, 0xf260de23, 0xb80f2029, 0xfeb95315, 0x93001c31,
			0x1aaaa6e5, 0xd1f0a0f5, 0x279d573d, 0xa3c38dd0, 0x684958d3, 0x383084c4, 0xce4ea485, 0x2c6ff4e0,
			0xe5c00826, 0x82d100ff, 0x57b08db6, 0x3d40cda9, 0x83e5c92b, 0xbb4edca9, 0x68064eb2, 0x81d4abc6,
			0x8b3199cb, 0xcbe4b918, 0x82517463, 0x9e1af5d0, 0x2f0d7744, 0x40325a49, 0xa12f8e0a, 0xe10f46a4,
			0x014b765d, 0xdd808f6a, 0x007382c5, 0xdedf9819, 0x9cbe2a4d, 0xef5caaf6, 0x63341cd1, 0xde9153ee,
			0xf2ae0c12, 0x13358eed, 0x207e196e, 0xb34a7a08, 0xfe74d4d8, 0x1c6b53d7, 0xb8b8eb3c, 0x44afa80a,
			0x6a9fd336, 0xd99522e9, 0x53593393, 0xbb1eb30c, 0xeb16065f, 0x7dc25945, 0x6158141d, 0x23353bdf,
			0xba3671b1, 0xe418fe22, 0x49bea590, 0xbcd6bd33, 0xa6b8e899, 0xd5aec3c7, 0x71cec784, 0xff8a530d,
			0x79a5e470, 0xef81325f, 0x87446069, 0xf4961b6c, 0xc0081513, 0xae2f2148, 0x7507a17c, 0x58d1c232,
			0x59b321cb, 0x0e92789e, 0xdf614ffb, 0xe153f34c, 0x1188e848, 0xae2eab17, 0xd28b39f6, 0x38389023,
			0xd46057c7, 0x9c29edd4, 0x6b723b8c, 0x83b7a5cd, 0xda7bb595, 0x9cf6872d, 0xc4633b57, 0xa0a73bd3,
			0x9a6e8436, 0xad523109, 0x4a1d0f7f, 0xf9d00907, 0x4be7a1a3, 0x08d0db27, 0xc7cde0b3, 0x36cf9ae4,
			0xb44f1e8d, 0xd0352dc9, 0x85dfaa38, 0xa049e850, 0xcda66cfd, 0xce8f07d8, 0x21fee611, 0xb6574dd7,
			0x8993d111, 0xef8876ef, 0xb980e6d5, 0xaa9e278f, 0x6dbcaed5, 0x36959621, 0x4cd9f386, 0x5c56ab48,
			0x3d979e7e, 0xef359ea9, 0xe8f0d2c9, 0x04fbf65c, 0x7a544835, 0xf061d08b, 0xd0e4bfc6, 0x5855deb6,
			0x1fd87413, 0x5259ecae, 0x2ea5be2f, 0xc0c7f00d, 0x977a67b3, 0x7dba58fb, 0x33c97355, 0x13109fe7,
			0xba9228cc, 0xbd959bbb, 0xc849a06f, 0xeaa1cc69, 0xd7ba5fe2, 0x1ff0b253, 0x595f3a3d, 0xf90fdfa8,
			0x7ecbd0e8, 0x93f07920, 0x6052d81a, 0xa1e734c6, 0x79a5f52f, 0x68af98e3, 0xa328ccd0, 0x5d5d0b25,
			0x3551b8e0, 0xcf547531, 0x67487c1f, 0xd531fc2a, 0x38ebdc8f, 0x4c90548f, 0x83fa93c8, 0xe517a0fe,
			0xdb44e9ca, 0x7afc5562, 0x39cbe78a, 0xe1024a4f, 0x844ee4b2, 0xcf64346a, 0x83b27b7a, 0xbd33ba1b,
			0xe0148bbd, 0xc9416df8, 0x2f4aa76f, 0x3da9eb92, 0x420f248c, 0x083179b6, 0xda6cf37e, 0x944855eb,
			0x21f36156, 0xb0696aa8, 0xe3140ce1, 0x3b71a67f, 0x94ced208, 0x7d0e82d1, 0x7ef133cd, 0x70667ed2,
			0xa6b193ef, 0xc88709cd, 0xad6ebbda, 0x685f0218, 0x1f89c97b, 0x09c28d7d, 0x0903120c, 0x80e1fcea,
			0x2e674f66, 0x602653d5, 0xb493b33a, 0xab87c88b, 0xb11c3d56, 0xb93373e6, 0xa1e5b9c5, 0x426877d0,
			0x9c5d8acc, 0x01547c90, 0x38247dbf, 0x5985b535, 0x85d8266f, 0x4730076a, 0x107bc035, 0xd7e59416,
			0xdbbc1a5e, 0xb725cd7d, 0x045791b6, 0x8058c8e1, 0x66e39ffe, 0x5ef1f234, 0xcc231e8e, 0xc1b0c000,
			0x53146ec3, 0x5f35efcc, 0x686d8026, 0x6bc9db90, 0x34281ebd, 0x6fba1642, 0x45615182, 0xec5ba490,
			0x9ba0f8a0, 0x934cf4c8, 0x1a3eab21, 0x979682a8, 0xbe99d55d, 0x04c982fc, 0xbafe99d5, 0xcab97f8b,
			0xa2f5493c, 0x9fb5398a, 0x7f57f3b4, 0x3cd8dbd6, 0x0c7bd09e, 0x0c29bcec, 0xa9aeb2ec, 0xf788544a,
			0x2efbd3e1, 0x6335d970, 0x86196f78, 0xadf23444, 0x6316872f, 0xbf910d10, 0x5b06f1fc, 0xee65f05f,
			0x69d1c3a1, 0x9a763e36, 0x703a6c8c, 0x9dddd980, 0x3315a4b2, 0x649585a7, 0xd4974f8b, 0x073a3244,
			0x99669388, 0x7813d3ff, 0xe75e803d, 0xd93cfef3, 0x08a7e245, 0xa77ceb86, 0x28bee42a, 0xf62773bd,
			0x27357b45, 0xb2aa4904, 0x057e13af, 0x27eb9ad1, 0x1f762c4f, 0xc42f4e43, 0x10da6aa4, 0x00000001,
		},
		{
			0x21c87dd2, 0xd7c5c540, 0xb67331b7, 0x9f050a9b, 0x9710c80b, 0x8486378d, 0xb476a683, 0xb58098e6,
			0x845cbc73, 0x997da8d0, 0xb30ff233, 0xaa4328e5, 0xc585bf89, 0xa0e4d6f3, 0xbe2fe0ac, 0xf3970f2d,
			0x9af0f033, 0xb83def7d, 0x3a9dff36, 0x1fd9f1de, 0x791265c2, 0x36ca6c06, 0xfce14e55, 0xa20ef478,
			0xf24e44b0, 0x1f00cb8e, 0x5674a1ac, 0x512431dd, 0x022bf3c1, 0xe3a11cd8, 0x868cbba6, 0x61a18c81,
			0x645c0922, 0x25321a18, 0x9fd90dc1, 0xcfe42164, 0xacdd123e, 0xc9f8b765, 0xc0561695, 0xef7a3724,
			0xeaf1f41f, 0x1dd77dc4, 0x654b0984, 0xc3e16dd2, 0x58bfc6a4, 0x79590294, 0xcd0bece0, 0x035915f0,
			0xb45358ee, 0xf46ee008, 0x87f6fa83, 0xf2a691cb, 0x9793bc46, 0x2c58b13a, 0xb8c2369c, 0x65bce392,
			0xae13fcf4, 0x6adcd4ed, 0x1937054b, 0x5f4f2dc0, 0x61247967, 0xd9f12b2a, 0x946dd347, 0x45f01a54,
			0xfe56b174, 0x459f2d88, 0xc2427d52, 0x05221479, 0xfd5eaafb, 0x54d1a896, 0x7a58c600, 0xe26803ab,
			0x84a09329, 0x87ddf986, 0x54b602f5, 0x975ef567, 0x1f41ad3c, 0x9747d113, 0x097e385f, 0x619e9127,
			0x279a77a2, 0x98700dc8, 0xf6d5bdd9, 0x7aa752a8, 0xd75e517b, 0x8aab7153, 0x716c3bb7, 0x69927466,
			0xd9a7b516, 0xccdd11df, 0x86df2f86, 0xc6910e51, 0x88f74105, 0xe3a5c5dd, 0xadf0c20f, 0x98e8b9a3,
			0x3430c3f9, 0xb463e50f, 0x75c766b3, 0x96c55a52, 0x4884dddc, 0x18fb661d, 0xe3d34d12, 0x0d1dd2e4,
			0x81cb8a84, 0xab1a1f5e, 0x4a8cd695, 0x8317901c, 0x226a82f4, 0x7ef3cbf5, 0xf0a03688, 0xb2a54d59,
			0x77011b93, 0x3eff69d9, 0x79a73264, 0xeb7c3384, 0xd0cd037d, 0xd4d3682f, 0x26792164, 0x7710078f,
			0xf5f9b3a8, 0xe5775a9b, 0x3ba3a557, 0x1df162e3, 0xa5ffb8e0, 0x54dd2403, 0xee69ccbe, 0x66643293,
			0xbccfe494, 0xfcfff841, 0xff902e10, 0x9c11fc64, 0x5c5d1239, 0x92560983, 0x752cea8c, 0x10fd03eb,
			0x56ecd5bd, 0x0304a1ab, 0x4c22c10e, 0x1e89989d, 0xfccd2014, 0x82228677, 0xb269e42e, 0x9f6f1400,
			0x7649ca2b, 0xed019b39, 0x15a392f1, 0xbe35add9, 0xa6f1d941, 0x22778306, 0xe9b64f9c, 0x31a8c859,
			0x449339b0, 0x87ce43ce, 0x12fb103d, 0x8b295299, 0xddd33e96, 0x03a6c85e, 0x86fb4551, 0x0f36dea5,
			0x9d2f9456, 0x405b813a, 0xedfed1c2, 0xf91ef120, 0x3d9598d1, 0x5282a9b7, 0x3f47b9ea, 0x490e3772,
			0xd3e6e8e3, 0x890a9eed, 0x9881e460, 0x809e3799, 0x78d48ecf, 0xfc8818e2, 0x42a0d062, 0x6ac2e9c2,
			0x31dd805e, 0x6067e909, 0xdd310d66, 0xeec7e316, 0x3cca2d3b, 0x03edd0be, 0xf0b3db42, 0x499f6bde,
			0xc0ba0f0c, 0xb3cf2a7f, 0xaeadc947, 0x9b0a9abd, 0x0a08a222, 0xd5a58cc0, 0x43665485, 0xfb2273f4,
			0xbcc92a65, 0xed6cd566, 0xe44a48fb, 0x2877d65d, 0x94f85910, 0xd14d466a, 0xc0491c22, 0x4b708c46,
			0x81c0336f, 0x6130bde3, 0x9ad00ae0, 0x02a20034, 0x719f1341, 0x9fa28f8c, 0xdfd4cc88, 0x6b0e1a72,
			0xb10211a2, 0x8622aa15, 0x18471d37, 0x5baaaf48, 0xcc49138e, 0x337e26f8, 0xe57620b3, 0x4df2a67e,
			0x409cdb23, 0x969c4edb, 0xa913f976, 0x2100fd62, 0x2d30044c, 0xc1e8a844, 0xfde2ed48, 0x2aa61f04,
			0xb9f683ba, 0xa0d146ea, 0x394dc570, 0x83a4ed7e, 0x1302c0b3, 0x890a4be9, 0x832efe80, 0x347025af,
			0x70a4b25c, 0x08ea1171, 0xd085ef6f, 0x1ac56484, 0x4a5fd380, 0xd59af328, 0xfa5eb1a5, 0xae5198aa,
			0x2d7cbc87, 0x1221c393, 0x7eb7b017, 0x3316a5f9, 0xebcf0a0f, 0x3172b84c, 0x7d8e4aeb, 0x5e9c4536,
			0x4461e3f8, 0x94349c42, 0xeaffae43, 0xd7f45944, 0x8a976a5f, 0x098ac968, 0x68ada7ef, 0x97eec0a8,
			0x08ed163a, 0xe1920e3d, 0xaa723cbb, 0xa48ad3ce, 0x8be5acff, 0x87ef97f6, 0x51486771, 0xab083504,
			0xc827bf1f, 0x3857fd17, 0xeb6757a0, 0x1aecb101, 0xe3550176, 0x8f5ce49d, 0x613334c6, 0xc8304862,
			0xf770e5b4, 0x9e54f969, 0x038f745d, 0x8c9ec4cb, 0x6bcc073d, 0xb2d57b45, 0x00deffdf, 0x26026b1a,
			0x47c66faf, 0x65d1956e, 0x301944ad, 0x70d5f05e, 0x8e82b502, 0x4c62da20, 0x86a3eb49, 0xce0dffc0,
			0xa2627593, 0x94d7251b, 0xf4a7fe0a, 0xce6e62dc, 0xc38de6bc, 0xaf82df27, 0xbd2ce75f, 0xe03d3f9d,
			0x9bc40b10, 0xf7b57948, 0xa3876217, 0x62e6c957, 0x457cf0d5, 0xdb8488ba, 0x51c966ea, 0x2afc0878,
			0x08812586, 0x56c6aa57, 0x3b8127b7, 0xd86e9781, 0x75ff4508, 0xa02d27ff, 0x839554d8, 0xb1289bdb,
			0x6fe7114a, 0x8ab18cf4, 0x60996d4e, 0x8721555c, 0x9032a607, 0xef4662f2, 0x89554c70, 0x2cf34c97,
			0x6d5e0f10, 0xde1c04be, 0x8a40f8a6, 0xe8561542, 0x667d178f, 0x53e053e2, 0xd5651c1e, 0xb3a52a08,
			0xad851c97, 0xd0997121, 0x6a1e45db, 0x588543d5, 0xc06495ed, 0xa74d8cad, 0x3ecf722d, 0xe2680a9d,
			0x428fd815, 0x9869e52d, 0xdfb19ad7, 0xabcbc647, 0xd461a7f3, 0x659d5d44, 0xefa0f263, 0xad10d40e,
			0x9bcaa9d0, 0xbfdfabbf, 0xc68f4c2a, 0x5e82adc3, 0x818457ca, 0xec230a37, 0x90df5df4, 0x9e5bcb45,
			0x332c9379, 0x2fd949c4, 0x16c77c03, 0xc7af8a89, 0xada77c81, 0xb3c7830c, 0x16e5462f, 0xba4019b2,
			0xb8aa9818, 0x132cd8c9, 0x5b51089b, 0xbd51068b, 0x272fc74b, 0xa822b59a, 0x1afc32ba, 0xf5e3ced8,
			0x81fa9608, 0xb3aed92f, 0x71d811a7, 0xbe09eac7, 0xc707054f, 0xf14dd640, 0x962313d8, 0xa7312c48,
			0xc87b588b, 0xa264ef0e, 0x637bab8a, 0x48f0c198, 0xe2743b15, 0x91eb1513, 0x5c2f41aa, 0x887bc8da,
			0x972fe8e7, 0x436687b4, 0xa9a17545, 0xc8066651, 0xc61a6de6, 0x279311f5, 0x10580a5d, 0x39a3e8af,
			0xd0ea196f, 0x842ab110, 0xa87a621e, 0xd6320056, 0x4727b737, 0xaab96c9b, 0x180132c9, 0xc22748e3,
			0x5af016a1, 0xf4962086, 0x291205e8, 0x9f3ee7b9, 0x83d29a7d, 0xd717920a, 0x6ba57e51, 0xfec31a0b,
			0xeecd9029, 0x796fee70, 0x462d7565, 0xd5a69e7a, 0x4d3847e8, 0x87d61533, 0x6e903e49, 0x3d6e7939,
			0x7b1bcb73, 0x423028f1, 0xef77a94d, 0x148d697a, 0x1c4b247a, 0x0ac1ce20, 0x3f342ceb, 0x07ad66f4,
			0xbd5f6910, 0xeb787088, 0xed787bc2, 0x8f710492, 0x5606bc7d, 0x21fa0c4e, 0x6936668e, 0x49c5f075,
			0xe124d1c6, 0x786b6e59, 0x34e5a793, 0x55934ad1, 0x50f1d134, 0x7f4cd8ac, 0x554cb709, 0x78317bbc,
			0xbccad0d5, 0xcae2f1eb, 0x2e620bed, 0xf4b2476b, 0x657fcdc0, 0x7dbbb2da, 0x1467f6bb, 0x2586ed61,
			0x26bc198e, 0xb1c8acb2, 0x94675d53, 0xb2123d8a, 0xab4504c6, 0x41b882c3, 0x5955d55c, 0x279959a7,
			0x8ddeb0c1, 0xcc4f846d, 0x4640bd3c, 0xe79372b7, 0xb26a061c, 0x40b4f8b1, 0x212ce023, 0x3442d456,
			0xac1b4535, 0xcb5d09aa, 0x8084adda, 0x955dc620, 0xfcbd228e, 0x0a3e6afc, 0x034077f6, 0x62ead540,
			0x723239e6, 0x724f78b5, 0x9f4d6c9d, 0x96700c02, 0x3beef5f2, 0xc4b50e5e, 0x2a3537d2, 0x26de895d,
			0xc69f575d, 0x7507c6c3, 0xf71baf5d, 0x29607718, 0xea59591d, 0xae10498f, 0x5737990e, 0x9e979140,
			0x437ea7ed, 0xc856dd35, 0xfea9d535, 0x5631e19a, 0x999eda0f, 0x29a26b7f, 0x9752d09e, 0xef6d8b68,
			0xab47a92e, 0x30e6584c, 0x4d260e5f, 0x1a1c7241, 0xf8fdb1ac, 0x8593ba89, 0x8be5e538, 0xdbdfb05a,
			0xe70cc01c, 0x411c283d, 0xac34ac87, 0x71f258f7, 0x0f85eb70, 0x33fd1cfe, 0x67054173, 0x5150bad0,
			0x7626ecda, 0xd3ba3f5f, 0x59dcb590, 0xf09300ad, 0x28498538, 0x27bb416d, 0xcf9526a9, 0x79ad8923,
			0x659e87f4, 0x9474305c, 0xd82dd207, 0x16d7e4f5, 0x6768c8c1, 0x17abccc8, 0x978486c0, 0xf87f1320,
			0xc21a3871, 0xe27e2b79, 0xdeefb865, 0x850748d7, 0x5ef2a559, 0xb54ea7ff, 0x0ac67b41, 0x5b6fa65c,
			0xe85f4956, 0x2d3be1e3, 0xedda1e6c, 0xfe8d3770, 0xccdf5a0d, 0x05742976, 0xfd1a213a, 0x3bf3a445,
			0xc9079d00, 0x4df70f23, 0x8ed33c91, 0x70ab9281, 0x89ccf66e, 0x1a69f655, 0x1628d702, 0x0d9fce90,
			0xc09cd423, 0xaf00dae4, 0x687e6f1b, 0x9a205bfe, 0xdac70f98, 0x8311c1d3, 0x21f4681f, 0x2ed1abea,
			0x1385c207, 0x4c8ad753, 0xda94d37e, 0x8fc1bacc, 0x024dec2d, 0xce333df9, 0xf268af9e, 0xb573fb6f,
			0xfbd5ceb3, 0xc06694f8, 0x3b0dfbb4, 0xdb980192, 0xfea24927, 0x8f25e97a, 0xa8978358, 0x0b7d0a70,
			0x804e3a63, 0x41ef62c5, 0x72f72ae7, 0x9d844c82, 0x1bedc0f8, 0x165e3e00, 0x950c1112, 0x9881db22,
			0xf00f7ddc, 0xf70d54d5, 0xee1b97f2, 0x6df57602, 0xa55204ef, 0xa53ae0ad, 0x2a310cbe, 0x67dbe437,
			0x12a6b2b3, 0xa05893b4, 0x756f4c9b, 0xfc1ea3fc, 0xd0a0c455, 0xafd4bbd4, 0x38859bcc, 0xcf6ca4d4,
			0xf8cd52a1, 0x8df347b9, 0xa985655a, 0xf1e457fd, 0x06695ba7, 0xb76c5952, 0x55041e7b, 0x07c27083,
			0xde55808c, 0x40be0593, 0xc6c51462, 0xb374c02e, 0x32f2ed32, 0x9dc4347f, 0xcc6c1f2c, 0x1cf269ff,
			0x33738625, 0x4de62070, 0x8d577c1a, 0x2abc8f7f, 0x7198d8d5, 0x96ec0393, 0x947ff12a, 0x00000001,
		},
		{
			0x8a688e49, 0xc2dc0c69, 0xc00bedc2, 0x33405b5d, 0x18b2c41d, 0x2a81b1b0, 0x89eab899, 0x39867e0b,
			0xe5122fc0, 0xdb41138c, 0xe8fbafa9, 0x4f5d43c0, 0xe497f7f0, 0xeb0f71df, 0xb9010aac, 0x73f580b8,
			0x9d5f7cdc, 0x32e987b5, 0x0d60d146, 0x05fcd74f, 0xd9cc2f06, 0x48fb445c, 0x1249a98b, 0x1e808d15,
			0x0cf06398, 0xccb514a0, 0x4209624f, 0x15fb598e, 0xcd6a7324, 0xc51f7585, 0x3c29049f, 0xf4be14b0,
			0xa806bfbc, 0x4394249b, 0x262a5775, 0x44e798c9, 0x3ee07837, 0xb0f45209, 0xe2cfa040, 0xa28b7bb0,
			0xcde418e6, 0x51ab9d54, 0xa955e75a, 0x92d572ed, 0x05ccb29e, 0xe783701c, 0xd0864b04, 0xc4446120,
			0x75e2815f, 0x6f57659b, 0xd41c056c, 0x60c9e116, 0x6c242618, 0x025bf624, 0x017ff004, 0x71dc20a4,
			0xa11e9f89, 0x498b2827, 0xdecbd8d5, 0x6e52c1d5, 0x4d704efe, 0xe355cb0f, 0x5fd0a709, 0xd449008f,
			0x95504788, 0xf0ff8afd, 0x65f04618, 0xfe7a95dc, 0x4e478ef2, 0xab7f5a85, 0x040f32b9, 0x0786b08a,
			0xf457023e, 0xdf7acf98, 0xc206eca6, 0x09908441, 0x52766a42, 0x3e716a55, 0x38b2d32f, 0xe16cbfc3,
			0x957a3057, 0xf7541622, 0x2d159415, 0xc3c83097, 0xb67adcb0, 0xdead4b48, 0x3bae83fe, 0xe28ef11b,
			0x9ded40f6, 0x984ac7f3, 0xd3da317c, 0x6c86a3f6, 0xbe1d665b, 0x2950b080, 0xd732b348, 0x98098329,
			0x834159b6, 0x299153a9, 0xa0bf4b33, 0x44bcb5b5, 0x926a31aa, 0xace59553, 0xffe55c00, 0x7bf09883,
			0xec2752eb, 0xbc91536b, 0x2b8fb00a, 0xd42491d8, 0xf769e492, 0xb3a45162, 0xd140b641, 0xf8cf9906,
			0x8d81084e, 0x25fb94ee, 0x04119d14, 0x438a4071, 0xc4292e26, 0x2fdc973f, 0xa6f889ee, 0x09feb876,
			0x8b95b72d, 0xe4b4e782, 0x64c86915, 0x76ad915c, 0x20781b68, 0xedd0a65b, 0xb8889126, 0x5666fd88,
			0x2339f49f, 0x40a13f55, 0x8d80fc68, 0xe2e76e77, 0x6bde51df, 0xeeb1fe52, 0xed167688, 0x3ca4e74d,
			0xa96b0a3f, 0x3684ecd6, 0xd668dd2c, 0x1f8f437a, 0x6b2d7f81, 0x5bc22424, 0xff2ae4aa, 0x9b2ca491,
			0xb2e7bed2, 0x04c9f2cb, 0xa5253503, 0x361e8b88, 0x888e290e, 0x0f99fa35, 0x6e700494, 0xd54419c3,
			0xcc719636, 0x4e0de771, 0x6dbe25f2, 0xa7afbd37, 0xe89c2c32, 0xd17b6056, 0xecee696c, 0xa0c4d8f4,
			0x4a597bfe, 0x4cd12412, 0x1ba78523, 0xa1ee1bab, 0xe70b6705, 0x25245787, 0x5bee0862, 0x1e7acb79,
			0x5819e679, 0xd890c67d, 0x721f4034, 0xc2ff23fb, 0xef159d6a, 0x575ef21e, 0x1f67f1c2, 0xcd90bd5a,
			0xcd47d0ab, 0x151f9166, 0x99354e5a, 0xe67a5f31, 0xdf5ea675, 0x4df43577, 0x54554b0f, 0x2e58b5bd,
			0x02a423b0, 0x23738a51, 0x752675e5, 0xdb3511d2, 0x6e8ef3b4, 0x7daa1faf, 0x754ab91d, 0x578dc5e3,
			0xba5dfa07, 0x28f74884, 0x84afe8bb, 0xa32da183, 0x0b25da92, 0x59e9be23, 0x55d53252, 0xbe97ea6e,
			0x163a12a2, 0x3e362b4b, 0x43ab3719, 0xe562f211, 0xb74c24be, 0x433eeb3a, 0xeb90039a, 0x30635006,
			0x127d7497, 0x0e77bf87, 0x149a1b15, 0x6c7dce76, 0x81715046, 0x9b6ced70, 0xbdcf0204, 0xc76ea172,
			0xd22e5deb, 0x436c6da5, 0x7e0a9d28, 0xe28a6b60, 0x010eef1d, 0xcbab643d, 0x93a3b83a, 0xa897f4ba,
			0x5f1dc37d, 0x71b30265, 0x06a8ad37, 0xf1491ec2, 0x0c7e7aa5, 0x671adfbd, 0xb33d8974, 0x20d7c30d,
			0x18d34c8d, 0x2fa76fb6, 0x8107437e, 0x17b36570, 0x78132f28, 0x3dc1de19, 0x654dce1d, 0x8d0631bb,
			0xd573e10a, 0x1999d437, 0xc1a77e2b, 0xc5ea4988, 0x7c9683d2, 0x0635117e, 0x57d87650, 0xe220a633,
			0x1ce0c597, 0xbb436bb2, 0x77990ea0, 0x55f09135, 0xc7e4c38f, 0x4d505f97, 0x458c9e98, 0x81dd6c77,
			0xa3679c68, 0xdc09a171, 0x91df89fb, 0xfb54dab2, 0x887c25c6, 0xaba694d3, 0x61fe3419, 0xd93bcad1,
			0x0c39651c, 0x8a1db010, 0x77e3e834, 0xd88286fd, 0xc551be9b, 0x15b5874c, 0xcc273fca, 0x17a80ac5,
			0x01d833c5, 0x2c3589e6, 0xdffd0ff5, 0xaad709eb, 0xae6e14fd, 0x04788ddd, 0x178000f4, 0xf504ea26,
			0xd52d84d6, 0x865ceedd, 0x9d079793, 0xad2537d6, 0xe267a522, 0xef1de508, 0x25843ac6, 0xe7b6654f,
			0x4d8dd35e, 0x87ce4d4f, 0x18bfcd99, 0x64993b96, 0x1511ae94, 0x1ac937ef, 0x38b52d2d, 0x58cf17c8,
			0x420e4138, 0x5a33a0f7, 0x6ec88b29, 0xda82303b, 0x067dc6a2, 0x355ec7bd, 0xaa46eb3a, 0xb14365d6,
			0xd33d7c6e, 0x9e2119a5, 0x4c22fa4a, 0xc74c04ce, 0x64e29083, 0x626aff8f, 0xdbcadb4b, 0x4aa00a9d,
			0x941c4f22, 0x4049dd39, 0xae3ad201, 0xc47bfb18, 0x29864795, 0x32dcd671, 0x585d41ec, 0x72c061d7,
			0xaed202f6, 0x9d632b2a, 0x7aaeee84, 0xf7f54495, 0x6acdd89a, 0x1fd6dc09, 0xe1fdcad2, 0x388dbc1b,
			0xddda236d, 0xd3b2fdfc, 0x4653737d, 0x260ff831, 0xab91f643, 0x04d9fad7, 0x35f9bd67, 0xf45640f7,
			0xa757718c, 0x4cdf7375, 0x3c109070, 0x7bd11b2c, 0x19fde6c9, 0xc9275ea9, 0x80d9bfd5, 0x98c95dea,
			0xc8d02bdf, 0x724e3c1c, 0xab1ca51f, 0xaebc1445, 0xba467430, 0xca343e3c, 0xab51151d, 0x46305653,
			0xb930e740, 0x61f1b810, 0xda63c179, 0x161fff9e, 0x7b8d5d15, 0x8535d530, 0x47583204, 0x923af1fc,
			0x98b90ed1, 0x818a26ff, 0xb5b48168, 0xefd8284a, 0x2ca6321e, 0x02358f57, 0xbe45262d, 0x2b709899,
			0x4874ab59, 0x4e4e837d, 0x133b9fcc, 0x6a35e4e6, 0xeed44c62, 0x4cfc4a18, 0xee2b956e, 0xba86e5df,
			0x6bda44af, 0xa1538a8d, 0xb5f555b2, 0x4a994ddf, 0x62b71352, 0xdc2e02d7, 0x1b5c5079, 0xbdd68eeb,
			0xba5bdc25, 0x9faf6b2b, 0x0a3822b6, 0xe004b080, 0xec8a8b4f, 0xcfd8caea, 0xd0a8bf55, 0x0ac66663,
			0x3fea6094, 0xc402978b, 0x3184b0bc, 0xd123c09d, 0x7de2723f, 0xfe674144, 0xe1bca010, 0x6376f1a1,
			0xff1e7fd4, 0x53618784, 0x3a44bb8e, 0x93b023e0, 0x7cd99f31, 0x922ebd89, 0xa09b9ef3, 0xf28ff8d6,
			0xe2563073, 0x709383ae, 0xbc535abf, 0xe1efecb0, 0x8d83e34f, 0x1ea05bbb, 0x4de6c224, 0x5878fa69,
			0x9dc6f8be, 0x4ffbbc6e, 0xe2f5729f, 0xc81c0f4d, 0x8543d0d2, 0x03e0c3b3, 0x78df2c1b, 0x2c0afd7f,
			0x5583defe, 0x27e03e50, 0x31f269dc, 0xccd3d655, 0x4a5c05ca, 0x30c3d22e, 0xcd217b8c, 0x4a7ca1c6,
			0xe24ec468, 0x73e8c5ae, 0x1fca9f1e, 0xadfddd31, 0x1753b21b, 0x52184fa6, 0x8bb52d4a, 0x22425bea,
			0xd9eb3ea5, 0x7d1c00d0, 0x2ad08d86, 0x5615a7a0, 0x4e1e5a1a, 0xd7d7d4ad, 0x6767e86d, 0x3f863108,
			0x3064fbdc, 0xf9658c1e, 0x46059d51, 0x097951fa, 0x6ee6940d, 0xa51be194, 0xbf298130, 0x992bb8d8,
			0x5aa451da, 0x75937368, 0x58a86d99, 0x5e595012, 0x8962cb2d, 0x5b84d6a0, 0x6a1a6b75, 0x3a04c7d1,
			0x300467e5, 0xe6b8ee6a, 0x36bca163, 0xffd5f51b, 0x4e0049cb, 0x4b413fc7, 0xbbe2006e, 0xb0314978,
			0x3422b1cd, 0x9cf87912, 0x2f4a70c7, 0x0c2becbd, 0x5698ff26, 0x6c233331, 0x96934d83, 0x69a62c1d,
			0xb2c3ff5f, 0x10e82808, 0xb6ed66db, 0x046b70b9, 0xad45a958, 0xc5c9a91c, 0x0fd3d90d, 0x03f97e0d,
			0xfd4fddf5, 0x7cb7f715, 0x980956d6, 0x91444463, 0x09779e57, 0xd8076b00, 0x7e197bfd, 0xe193263d,
			0x851c652f, 0x0ef46c8c, 0x7939978b, 0x8473ed5e, 0xc4abc735, 0x6c3e3f5e, 0xee4c94d9, 0x9ce55dbb,
			0xddf103fb, 0xd5a880ae, 0x77be5367, 0xd9bab201, 0x18ec2521, 0x24aecc10, 0x6a8fc491, 0xdbece8a7,
			0x242d0cce, 0x0154a59b, 0xfe07e093, 0x018cee99, 0xdc2efb27, 0xa444a43f, 0x232031a1, 0x0999785f,
			0xb7a767e1, 0x45388f67, 0x5997b4a9, 0x1abc4fd2, 0xd0545b37, 0x2244a65b, 0x1df695c5, 0xcb05b6a8,
			0xe6270027, 0x783caa20, 0xc70beb99, 0xdf828d45, 0x58a3b304, 0x77cb16b7, 0x389b9938, 0xad970220,
			0xf9aa22b4, 0x87111815, 0x07e9ace1, 0xe5d572f7, 0x613cbadb, 0x1edc2bf4, 0x4d6e5ed1, 0x1cc5bc98,
			0x51a1d625, 0xeb32325e, 0x70a53235, 0x2cc3bb72, 0xb58f5330, 0x52729dfc, 0x5174f4ce, 0x8bca98e7,
			0x65ba1160, 0x50f0d139, 0x9678d9f6, 0x077c5c3b, 0xaaae50b2, 0xe6f85776, 0x74522b39, 0x7769b65d,
			0x7ef79609, 0x0c0610fe, 0x9504c2ed, 0x6a1bc395, 0x8ab7c720, 0x2ff3e9af, 0x837e5b8a, 0x991403cc,
			0xae7fd750, 0x632c40e5, 0xe1ad2987, 0xe3f38cb5, 0xda9ad64d, 0x128f342b, 0x2692f430, 0x54b3237e,
			0xb7917e35, 0x01c4ab13, 0x12aa6f7a, 0x84a71c75, 0x300a73af, 0x6567f6bd, 0x6cd7f1d2, 0x28d75411,
			0x625252d5, 0x87efba8d, 0x3eb2dd42, 0x2aeb6fcb, 0xe3f7bfcf, 0xdf7ab0d4, 0x5cdf42ca, 0x73883c8c,
			0xb9a52c92, 0xd5abcbcb, 0x063e545b, 0xd87c0c15, 0x42ff12d7, 0x6e0f5ae8, 0x08c25c12, 0x0c58b922,
			0x00f42dfa, 0x0702da1b, 0xac3de161, 0x947285af, 0xcba72320, 0x3e4c69c0, 0x38bd627e, 0x2d779388,
			0x583bbdbb, 0xa836d04e, 0x4087f215, 0x007170af, 0x4ecf6bb1, 0xf30c787f, 0xaf40688b, 0x9c65a8bf,
			0x1b0f9ce0, 0x47252c63, 0xbcaf0cca, 0x7072d60a, 0xc4f833fd, 0x8581dec4, 0xcff84893, 0x00000001,
		},
		{
			0xaf414370, 0xe0cad6c9, 0x09a508f3, 0x88aa6fc9, 0x199ea85d, 0x849586e7, 0x5d0ecf2e, 0x009d9d55,
			0xd06626ff, 0xc284c743, 0xc13b6081, 0x39e44497, 0x6847b9a6, 0x3584b4db, 0xce588d79, 0xf2bcda6a,
			0x039acb6c, 0xaba81699, 0x8c3b3686, 0xf7d7a486, 0x6f754421, 0xd447c988, 0x373c74e1, 0x40ddc45f,
			0x3512bcb2, 0x0f4ef0f4, 0x90743790, 0x03c447bf, 0xf3c366aa, 0x2ed7776f, 0xfd5da4b4, 0x97c15d5e,
			0x3b540658, 0x355d6a73, 0xb67c4206, 0xda99527b, 0xfe1289ee, 0x65b68ed6, 0x57dc0123, 0xa3ee2f34,
			0x9a4de2ac, 0xc68df5cb, 0x7f40866d, 0x36114b03, 0xe35fd557, 0x025f417e, 0x5201435e, 0x0e035031,
			0x95a16078, 0xd8f9c3e7, 0x259d72a6, 0x9b4c7530, 0xd416c478, 0x3d0a45a9, 0x4cf3e926, 0xb7b5bea8,
			0x81e29b4c, 0xc050ce71, 0x1c23b5e3, 0x3c319be1, 0x96ace6d3, 0xe23f8ec6, 0x426d536b, 0xaf43f3f7,
			0xf41387c5, 0x97d9a72d, 0x20a9eb87, 0xb03ab006, 0xec21bf91, 0x38c1239f, 0x02ae3f2d, 0xc2b8bc0e,
			0x409cb32c, 0x049956b4, 0x1da7f1b4, 0xfaad8da5, 0xb3683304, 0xd327b2ad, 0x849cfb40, 0x49c1ca0e,
			0x74e7cd2e, 0x841aa194, 0xe5890498, 0x7417562e, 0xf3462f7c, 0x7ddb51f1, 0x1738df27, 0xd10531f9,
			0xaec3ac31, 0xcdfad9d3, 0x14670ab8, 0x2f2a46e5, 0x77ec09c2, 0x7bb6e153, 0x00e68f49, 0x6242004d,
			0xa9f2b0db, 0x3d399e85, 0x633a9433, 0xb7acfad4, 0x108603f2, 0x1d57e12f, 0x2956fee3, 0x35038a60,
			0xb45da94a, 0x4231f372, 0x1ebe0559, 0xf777085a, 0x7de7c1d2, 0x265dd0c3, 0x93924bfa, 0xd82cded2,
			0xea528d73, 0x23a5d64d, 0xb5f1dfc2, 0x5d58079d, 0x35a31a65, 0xf0f0f4e3, 0xd1d28203, 0xe26f6d67,
			0x50199934, 0xeac62cbe, 0x080f77fb, 0x4b902f85, 0xa69d3715, 0xe146454d, 0x40c0db53, 0x5cc94345,
			0x84f59c78, 0x9dc1d7cc, 0xbc89f7b0, 0x59cf5f0e, 0x61d55ae8, 0x006c2d1d, 0x4fe175b9, 0x124d2f9b,
			0xf48fbcd9, 0x3f218f57, 0x00ec6376, 0xe2a4e401, 0xcbee2985, 0xca10ad0c, 0x9490523b, 0x7c921284,
			0x325355d1, 0x2c5d292b, 0xf8b4f6ce, 0x4f88facd, 0x904eca36, 0xb9975249, 0x9e0f495f, 0xa2f744cf,
			0xac7b49ee, 0xe497c580, 0xa8b0fb9b, 0xb1dcb180, 0x68f1100e, 0xd8ffd123, 0x6f46b118, 0xb6ce85b2,
			0x8e54566d, 0x0b14ed4d, 0x39ba8502, 0x9e6838ba, 0x3868e11b, 0x4f7ca156, 0xafddc376, 0x72ed44cd,
			0xb165b499, 0x55818fd6, 0xf730e1a9, 0x3d11b740, 0xa5985b73, 0x8d62e322, 0x6d9fee27, 0xb7e84ab6,
			0x0423ea56, 0xe89c4c47, 0x970c4d8d, 0x7e3f58db, 0x06875a45, 0x90aee4cd, 0x960c28e5, 0x810720c2,
			0xffc1ec26, 0x0bd55a30, 0xcd912963, 0xd9c1cc65, 0xefeed9b7, 0x87d3c225, 0xa10fcf74, 0xb3266635,
			0xce3df239, 0xcb5b1a3f, 0x65ce94a7, 0xd38c5618, 0xad0059ad, 0xed38ebf4, 0x53fb2b10, 0xc85da9d5,
			0x3dfeab2c, 0xd3e71b0b, 0xe8ef90cc, 0xf4b9172c, 0x82422337, 0x24ea7b3b, 0x82ed030d, 0x75e1495d,
			0xe93887d4, 0x3c1609ee, 0xeec7cbf3, 0xb0537b05, 0xcb7db793, 0x706ca73d, 0x3e733c75, 0x2bf587cc,
			0xdf2b3f10, 0x34e703ee, 0x5cf8de4d, 0xb8f0e7c9, 0xa4ebe662, 0xea3bd13a, 0xf31516ca, 0xc8a44f6e,
			0xd8eac5e7, 0x28c3c645, 0xf1ef1db1, 0x7ad6c68a, 0x611c0c54, 0xea973ec6, 0xb7b7d6f2, 0xdf04ee32,
			0xce62569f, 0x53e47297, 0xc2ffc91a, 0x6a3991d2, 0xe5e3aacd, 0x6d414695, 0x5ce767ba, 0xa16d1d97,
			0xd8b361c1, 0xc8e3ef27, 0x30a8dbf8, 0x3c4d6789, 0xa1fbf106, 0xc778a38f, 0x612cdfa3, 0xa5b16a0e,
			0x44c011f8, 0xec5a3c86, 0xa17f3fde, 0xca3f0ff9, 0xa783c722, 0x0113a686, 0x9822df4f, 0x97e6356d,
			0x9e9aaf46, 0xe98720c6, 0x76e40df0, 0xd869ed9a, 0xe706f471, 0x86d4d998, 0x97725380, 0x141d72e9,
			0xf4067435, 0x4bed2770, 0x4ba229ab, 0xc9483b7a, 0xf36a72e7, 0x663ad1cb, 0x51095d3c, 0xad82c80a,
			0xeb9d5ce5, 0x23cd6b26, 0x2431a71a, 0x66dc59c1, 0x72fd5368, 0xa0aebc73, 0x5484a850, 0xe88b02f8,
			0x031f92ad, 0x37aef3b6, 0x99592cc6, 0x6c458418, 0x4fe25518, 0x7578f85e, 0x5d425b9f, 0xeb85b9dc,
			0xa3e7a703, 0xca04fdab, 0xacbfbcbe, 0x1a688f09, 0xf083eea4, 0xb3f2ad32, 0xe9f24820, 0x164ff197,
			0x84ee3534, 0x5edc69a9, 0x2d3f6e6b, 0x532dc08a, 0xc0a79a9e, 0xb549df06, 0x0edc77ef, 0x3d916ba8,
			0xc503b207, 0x677c558a, 0xcbcaa0fa, 0xaae93e2d, 0x4a6c51aa, 0xbcaf2354, 0x9c41bce9, 0x4906006a,
			0xe730936b, 0x8708bc11, 0x6f66b49d, 0xcd1442aa, 0xc6eecc33, 0x1f64ef05, 0x8e97fce1, 0xc468ea27,
			0x93a80dc7, 0x6e1d46a4, 0x81b52031, 0x18ce9763, 0x05e3ad27, 0x0bc54146, 0x414e56da, 0x46281e99,
			0xd5a2527c, 0xaaa2d284, 0x66448ebe, 0x29f57506, 0xae6be511, 0x149adc48, 0xb565f703, 0x21e89088,
			0xbfcc5ec9, 0xd730a06f, 0x5ab13df5, 0x626d0bcc, 0xb3be262e, 0xb427a638, 0x386059dd, 0xef3162e6,
			0xb2e088dc, 0x50d009a4, 0xd895a718, 0x651ee107, 0x5a54298d, 0x37137651, 0x4b0d523e, 0x0f2ade6a,
			0x124e9466, 0x13b1ad33, 0xa884203e, 0x99a72f00, 0x9d1b6375, 0xc94f83ef, 0xa4a060f3, 0x40c2aef4,
			0x9b5ada70, 0xe14d9cf3, 0x5f38f964, 0xee23a3ac, 0xf6743de0, 0xee7e7677, 0x1d9b79a6, 0x4646a288,
			0xf0186937, 0x6c4633e4, 0x35699afd, 0x3f9a4f83, 0x091f0cf4, 0x8dbf9282, 0xf958fcdf, 0xf5def81a,
			0xe62fe7e2, 0x7d4b012a, 0x02f09ee0, 0x6fec6bb4, 0x33ded774, 0xd9cb3c9e, 0x96051afd, 0x09478c78,
			0xa0c8474e, 0xcc77ae69, 0x2ed37533, 0xa4934e01, 0xaaf7fdeb, 0x3b77bc9e, 0x8fabb830, 0x1cfcddb4,
			0xcb8cd96b, 0x3d1dd931, 0x3880c35b, 0x11ddc962, 0xfb9f9e55, 0x5a3e1aaa, 0x55bc09bd, 0x3cbadf30,
			0xca209587, 0x136ed5fa, 0xc17aad72, 0x7a0b3bed, 0x348e118f, 0x838e3958, 0x2ffa52dd, 0x01133378,
			0x377f990f, 0x97e45ae6, 0x7d9c1263, 0xb823f355, 0xf1641d63, 0xe033a2a2, 0xdbb40c85, 0x0c93dc62,
			0x224aab53, 0x9b823925, 0xb6b99a57, 0xa126749c, 0x64b448b2, 0x760f3bb9, 0x5e877b37, 0x0c2cb411,
			0x642d70da, 0x71e74660, 0x8ea99b7a, 0x78a5e280, 0x959d3ab7, 0xa6728c8c, 0xc3e90a7a, 0x5490b9d9,
			0x41f3f436, 0x59282930, 0x0e5a7ca3, 0x56d74527, 0x7b493599, 0x56aa47e8, 0x0a1fa099, 0x838b4676,
			0x6b6ea5f7, 0x3cd547b2, 0x2a2290f0, 0x00cf6344, 0x28d0d4d7, 0x986c65fa, 0xad93eb3e, 0x55a225e4,
			0x903f97b3, 0xd801adcc, 0xf51d876f, 0x9323d9aa, 0x4477a8f4, 0x41ecfe3b, 0xf4cc1b92, 0xd3b2d1be,
			0x709428c1, 0x3bb309eb, 0x6da7534f, 0x4ec5af4e, 0xf1ce1b8b, 0x48867498, 0x385fe805, 0x51d8e2a1,
			0x4d7f462c, 0x0d2e427f, 0x757cd618, 0xe230e75f, 0x8443f70f, 0xd0c44367, 0xe32f664f, 0x69738919,
			0x70bd164f, 0x2db54d0e, 0xeaf91c1d, 0x3deff954, 0x15b0ac76, 0x33c1a968, 0x34959b8b, 0xe1c79f48,
			0x0cc8ffe2, 0x19119736, 0xdab68cc9, 0xc1665014, 0x63432385, 0x8b8cee63, 0x53e6f767, 0x20ba254d,
			0x0380ed3b, 0x4e02be79, 0x0404f630, 0x268a9423, 0x2ded353b, 0x76d59c4a, 0xbda58fe3, 0x6f5229cf,
			0xc70c6c01, 0x5aec5fc3, 0xbb7f8e4e, 0x7a5e1ee6, 0xdd253b28, 0x49318413, 0x392797bb, 0xd92fe594,
			0x49c5db6b, 0x8ab973b9, 0x1e602606, 0x8b4c6e45, 0x53203e02, 0x80670957, 0x5cfad34d, 0xab537766,
			0x10cbf952, 0x19fbdffb, 0xfbc4a818, 0xf2a5860e, 0xd53126a3, 0x6e6209e7, 0xdb402f05, 0x34a57880,
			0x5998ccd6, 0xc55c7d44, 0x73952164, 0x5f12417e, 0xf62f7bf9, 0x591b090a, 0xeb196567, 0x0b418dc2,
			0x3bd2e669, 0x00f89287, 0xfbf78e81, 0xfa480b00, 0x0c1278fc, 0x95af6b3f, 0x6876cebb, 0x2796c4d5,
			0x3a4eeb42, 0x51ada531, 0x25b640bd, 0x0d85ae91, 0x500bdbf2, 0x2c103b9d, 0x53c66f1d, 0x4590d65d,
			0x100772f3, 0x232de361, 0x159d81f0, 0x95100385, 0x5e54a7b9, 0xd1e55e39, 0x99c2c36c, 0x5c5a78e7,
			0x1b6e4924, 0x776a4c76, 0xbf98e492, 0x7377b641, 0x98dd3d43, 0x67d7fbbd, 0x8436f019, 0xdfcb7468,
			0x4e9fc725, 0x7ec9a2c0, 0x137470d2, 0x552aa79e, 0xfadd414a, 0x89d2d0a2, 0x8fe660db, 0x434c32bc,
			0x97252fc5, 0x97c65f73, 0x6b8bb54c, 0x6069ff6f, 0x944e0985, 0x209a268c, 0xb8db0875, 0x046c2dd9,
			0xe334c3f8, 0xb1eb8afa, 0x27aaea2a, 0x69670c67, 0xd36ea860, 0x27e69929, 0x8153b846, 0x6144a2de,
			0xabea0017, 0xd76fbfb0, 0xc4a40ddf, 0x3d31660f, 0xbb073b18, 0xa967c490, 0x97c54ca2, 0x1b8c911a,
			0x912f5855, 0xe31a023f, 0xdedbdb0a, 0x50199ee4, 0x48be4e73, 0x0dc3d002, 0xfee2a90e, 0x9d5fe11f,
			0xa55d11d0, 0x2075afda, 0x88b95699, 0x4273d06f, 0x997dad3f, 0x8429427d, 0x8e020609, 0xea501914,
			0x10d813da, 0xf697f7ac, 0x5c966b63, 0xcaf9b3c3, 0xbaeae6d1, 0x77778f57, 0x13bc2e7a, 0xd9d7ee41,
			0x7e516a60, 0xef54c2b5, 0x62726aed, 0x7a4b83b0, 0x4c70fca4, 0x39d812d4, 0xf9c03a9c, 0x00000000,
		},
		{
			0xe9331c14, 0xd62486ca, 0x3d7f67a9, 0xa799fae3, 0xad1c8d8e, 0x5bdbde25, 0xefa19172, 0x5ef34c37,
			0x8a32fe65, 0x888116e0, 0x144e6afb, 0xd59ef869, 0xdbadbed5, 0x4ff712a5, 0xc133553e, 0xce0ffa1c,
			0xd308d373, 0x39da7987, 0x1be8ad9c, 0xa718e860, 0x0da92355, 0x97ba4ee7, 0x3389a732, 0xe5555dde,
			0x313f31fa, 0xb0c393e3, 0x4933451c, 0xc770db98, 0x35991cf4, 0x623cf040, 0x3974143a, 0xf24e63b9,
			0x7905a8bf, 0xa9eacf2f, 0x80fbec9f, 0xa44e7690, 0x1c5ad5a7, 0xdc980e01, 0xdecb553f, 0xf286c376,
			0x271f5527, 0x243da9e3, 0xa8f7f7b9, 0x08350122, 0xeb4a8cfc, 0x88fe35d4, 0x21a25c8f, 0x3f9d725b,
			0x4d11342d, 0x64722341, 0x0d32b5b7, 0x02da7c42, 0x2dea9638, 0x7f95f49e, 0x7774fb15, 0x7a7566ed,
			0x1b62c84f, 0x36bc8adf, 0x6106e7a7, 0xca8edb3c, 0x8d3f72e6, 0xb2a99a52, 0x5af7f96e, 0x86ec59e4,
			0xbe820612, 0xa3714047, 0x318c410b, 0x2b41a315, 0x473fd321, 0xab5120fd, 0x1e48b870, 0x20f2208c,
			0x6ca3ce10, 0x9e1babbe, 0xab70f6ab, 0x66d16eb9, 0x79789ff9, 0xe9251d34, 0x934354f2, 0xcaf4f71c,
			0xa8c42009, 0xa1ef71da, 0xb4f211d6, 0x4f0ebbfb, 0x09b8b79b, 0x61e4d550, 0x3db7b333, 0x24b6ff2e,
			0x13a11398, 0x2fd385a0, 0xadc904fc, 0xebe65e99, 0xe3e5dec8, 0x2a36f165, 0x3b12d067, 0xf115b9ea,
			0xdfecbe6a, 0x502fd7ae, 0xd25f3d13, 0x8fd18c28, 0x541691d1, 0x80fe0511, 0x7c234ada, 0xee0907bd,
			0x3044d6de, 0x61ef552d, 0x847d8db9, 0xa0921847, 0xcb910dc8, 0x64694934, 0xdd500962, 0x6d65d448,
			0x8fcc4f37, 0x2066cfe9, 0x86998b51, 0xcd08f417, 0x5e85e2b0, 0x0e861624, 0x4c8c08a5, 0xf232ab39,
			0xccd4215c, 0x28f2f794, 0xc3df9a43, 0x09e5674a, 0x3648241d, 0xf34522c6, 0x47b76507, 0x72373e21,
			0x64bb9723, 0xbb30b553, 0xd5187ec4, 0x136836b5, 0x281cefbe, 0x9ad3ddae, 0x02ba516a, 0x87636dd4,
			0x3548e338, 0x87d8181a, 0x93ae347f, 0x0ce518fd, 0x72e12fd0, 0xc4dfa8b0, 0x392cda31, 0x4151a616,
			0xc20390b7, 0xa4aa153f, 0x46e0fc54, 0x82fd7689, 0x729e0784, 0x1e33f244, 0x348b5fff, 0x75ee402d,
			0x08a14840, 0x5bfc77fb, 0x2ae788d5, 0xf79b690d, 0x65a0ae0e, 0xb5ff80c3, 0x1cfdd31f, 0x6cae2321,
			0x72cf2877, 0x5662df71, 0xe5e63e38, 0x19a3199a, 0xe7ac34e4, 0x0b29a891, 0x9fb1ab37, 0x1d5321dd,
			0xbd403e9d, 0x970326f9, 0xc23b19de, 0x62c50e97, 0x6aad3140, 0x8d5f3c4b, 0x3ecc0e57, 0x6a6e44ea,
			0xf6ef955f, 0x404dbdcb, 0x9ac26889, 0xec7a1d40, 0x28ceec8d, 0x572512f7, 0x15fddbe3, 0x811dbcac,
			0x92418c21, 0x39ddec44, 0x31a1eb53, 0x0241e694, 0xed07e1bd, 0x4ce02fa7, 0xb60569d1, 0xccabacb0,
			0xa8a0c1b8, 0xcea814c5, 0xdda253e6, 0xa14cfd99, 0xab2cc72a, 0xd9429e9a, 0x4da5fd99, 0x5e94e9ed,
			0xfca90e4d, 0x186d84bd, 0xcd2d4e6b, 0x66eb48c1, 0x7bba1713, 0x274468f3, 0xadc6ae36, 0x1a6f6c5f,
			0xf9d137ab, 0xdad6ff94, 0xe8f8257d, 0x98f41ec6, 0xb8454a66, 0xe6f38ac6, 0xaafb70b2, 0x5cb28b66,
			0xab2d4815, 0x93836301, 0x6b335d6a, 0x060ae8ea, 0x0e202da5, 0xdf8444fe, 0x043bd306, 0xd1698513,
			0x951763dc, 0x6d768b5b, 0x6cd1a9d5, 0x8d783e57, 0xc01c1300, 0x6a3ae704, 0x7d02592f, 0x4b37c6dc,
			0xec3611d7, 0x927d426c, 0x03e91a4f, 0x5e675cad, 0x778a8247, 0xa70e83a4, 0x4d08b1ec, 0xedc0df31,
			0x80493fc0, 0x0e81caa1, 0xc0eb8674, 0x620d371a, 0xa6cc7961, 0x33d40059, 0x7578e124, 0xb9c84030,
			0x69e8d550, 0x36ec32a7, 0x549dc5b1, 0xa831b6d4, 0x62a1b870, 0x3c750227, 0xbf78e71c, 0x6c9152e7,
			0x93531d86, 0xa549989b, 0xaa216a58, 0xfc97097d, 0xeff3b0f6, 0xef418e6f, 0xdb89c217, 0xddfc7167,
			0x508cb5fe, 0x5abdb578, 0x58136c5e, 0x1cfd1c90, 0xd90dbd92, 0x615afbdf, 0x185276ae, 0x1c1fd6ce,
			0x47ad3a62, 0x8c0cff5e, 0x6e43391e, 0x4445db91, 0x3d4fdca9, 0xad023d86, 0x50c7063e, 0xca4bcb5e,
			0x844d85bc, 0xdda85d86, 0xfe323c25, 0xf6016da3, 0xe13d4673, 0x303f1df0, 0x50821276, 0x9d154a9e,
			0x9e3f8aed, 0xd1befc8e, 0xdb9dd137, 0xa976e26f, 0x323b178d, 0xfda395ef, 0xfd94f4a8, 0x2c685603,
			0x2bd34e51, 0x95fe2fc9, 0x897ed961, 0xaac03fd0, 0xed5b9ddb, 0xa8f5e4c8, 0x4bea7a66, 0x608771dc,
			0xac2312c4, 0x4e465fa9, 0x6ae90e16, 0x05c23a18, 0x31725e2a, 0xa5167eba, 0xfdf8bb87, 0x8deef82f,
			0x05a03ce3, 0x0b9d79c7, 0xc376eecd, 0x88fbda02, 0x633db878, 0x60cff72f, 0xa60ab92d, 0x6be4d2f3,
			0x3cbcb38f, 0x36bcf821, 0x990930c8, 0xf98e91f6, 0xf30bf58a, 0x9db7a22c, 0x03b29e8d, 0xbef59845,
			0xc0754abb, 0x10ad3aa2, 0x2d6f5de6, 0x42433f30, 0xdb690c72, 0xc9b8ca9d, 0xfb4627d0, 0xf619d436,
			0x9681b8a3, 0xaa02fc7b, 0x3756dacf, 0x68668333, 0xfca4ea3a, 0x5cc78ad7, 0x0afbf6a5, 0x384f2cec,
			0xee48129f, 0x77c4be9e, 0x211fe6b7, 0x40efb29a, 0x3b75bc11, 0xac32c1f8, 0xa12152b4, 0xe798e790,
			0x1e2ca250, 0xd7d4b819, 0xd1f7f13b, 0xad6b59b5, 0xd7b56c47, 0xcf7742c6, 0x46673192, 0xc3946b1d,
			0x8bd92875, 0x6b08fb97, 0xe3d968dd, 0x6897545d, 0x145c3a16, 0x274ebe21, 0xb34845f0, 0xb3c1b977,
			0xab3cf1f9, 0x2107c709, 0xdf971647, 0x426f4950, 0xf4b5b6f8, 0xe6e6827a, 0x871b2870, 0x8665cfa8,
			0x8992ae66, 0x07e51d1e, 0x286be7e0, 0x3281866c, 0xd5e471b0, 0xb3cc73ce, 0xfc05adc5, 0x048b97d2,
			0x5284ee25, 0xbb921d87, 0xe4da33f4, 0xcdce80f5, 0x4024f15c, 0x72e07d6a, 0xea6d4595, 0xb5e5d0ac,
			0x5511143b, 0xc10da3f4, 0x0ac7a28e, 0x0cf8ae3c, 0x1c017c61, 0x6af910a0, 0x1bce0716, 0x2bbb9999,
			0x14ef3822, 0x86130036, 0x4c15c6d7, 0xdb3ddd67, 0x3ea6bcc3, 0xe64d12cc, 0x3bfeb1a5, 0xc1a1ce88,
			0xa907d34b, 0x2b64845f, 0x7d3d437e, 0x38ac84e4, 0x8646b4af, 0x3cd00127, 0x2003d043, 0xd12a775c,
			0x05fd16fe, 0x474206d8, 0xe0f32d07, 0x96a634f8, 0x6f15609b, 0x1d29f062, 0xa536fb9c, 0xb618e548,
			0x87933da9, 0x8c204528, 0xed2f9b52, 0x109c793c, 0xaa07f927, 0xbe47bb95, 0xb1f13a7c, 0x27e1b636,
			0xcb0dff9a, 0x3e1e8151, 0x11f34bdf, 0x08e8df5a, 0xaf5ba3a5, 0x8fcd87c4, 0xfedbcb8d, 0xc387020c,
			0xa1f14b11, 0xe5664741, 0xf01dd892, 0xdfe8793d, 0xd6c0bd28, 0x28f1ea21, 0x52ca0e7f, 0x2875eacf,
			0x13ffc823, 0x3cc4e99f, 0x7c83d975, 0x6910f1e4, 0xa42bcf6c, 0x9072f901, 0xc8251f60, 0xe14f4aa1,
			0xf23589bb, 0x3335c43e, 0x9b191331, 0x398b1275, 0x7d50517e, 0x4f05c32a, 0x814b1eaf, 0x0af9e550,
			0xe34e8328, 0x5ee9b572, 0x764f84ee, 0xdd6c3461, 0xfef67f40, 0x5fbc898c, 0x3cd682bd, 0xea446b47,
			0xbf3fb41e, 0xe176c4f5, 0x7dc79573, 0x6a83f729, 0x3a014da6, 0x90c55579, 0x277ae445, 0x6895d5ee,
			0x23c3158c, 0x5b65a421, 0xc6770558, 0xa337d681, 0x9a1dabaf, 0x052193b1, 0x916eb296, 0x0a3db29d,
			0xde8d8957, 0x89cc544e, 0x01c32157, 0xdad2f938, 0x998df75e, 0x66aa6ce0, 0x0d47af70, 0xdbb97361,
			0xbe996c0d, 0x8dceb506, 0x54914367, 0xc2d2bc37, 0xe11075b1, 0xd276a5f5, 0x65d78c52, 0x904e1435,
			0xaa0c3d37, 0xed5b6312, 0x6c33f4d2, 0xaaeadb45, 0x9017ed9e, 0xd684fb77, 0x8d372f36, 0xae654a1b,
			0x08699362, 0x5f9de232, 0xb606d7f5, 0xe31bebf2, 0xd0289e87, 0xfce407cf, 0x2852896c, 0x1412c653,
			0xceb9a602, 0x6fee0c60, 0xa2062dd5, 0xccbf3491, 0x36a4d534, 0x566c444b, 0x40986e1a, 0xf329e1f0,
			0xdf705fa5, 0xce383983, 0xb07f2801, 0x9749d754, 0x77ad2b76, 0x6a7542fa, 0xf39a4a91, 0x3598d0a8,
			0x9368b9a3, 0x66d8ec30, 0xd345719e, 0x8a184714, 0x40402d67, 0x1a298b2e, 0xccb39e85, 0xd88d06a3,
			0xac50221e, 0xd0f739c9, 0x612f5099, 0x9c1412c2, 0x77a621a7, 0xb52904a7, 0xd6386093, 0xdca602b3,
			0x35066595, 0xa5a7be75, 0xdcc6cd9d, 0xf07e3c7c, 0x98a2d3ba, 0x5a463057, 0xec107e9a, 0x74d49cb4,
			0xe610e3dd, 0xe9934809, 0xd04c2b1c, 0xa886343f, 0x18141627, 0x4d2d98c8, 0x4829dad9, 0xa5a63fa0,
			0x4b241f08, 0x5ff71aeb, 0x1d9c873c, 0x58530ec0, 0xbd9b7f99, 0x4365d601, 0xec59eb2f, 0x29bf894b,
			0x5962c78b, 0x72fd386f, 0x20659f8f, 0x660e27f8, 0x140d6647, 0x60605c8c, 0xfa774886, 0xec3826eb,
			0xd7b048cf, 0x055d1942, 0xcbea2c91, 0x9aeb9183, 0x351ffd3c, 0xffc76fb0, 0xf068a0e7, 0x23f4db76,
			0xcb3b77a0, 0xf3c5cc84, 0x3afa6b86, 0xf9e93517, 0xfb69ffe5, 0x1eb70829, 0xbacf5646, 0x60020ce4,
			0xf3327a33, 0x5daffba8, 0x255ce9fa, 0xe92e4db3, 0x747dd23d, 0x90c852b7, 0x65dfe49e, 0xf9ae8c2b,
			0x7149f394, 0xfcb757f3, 0xae02036e, 0x3d71d11a, 0x0b552c9d, 0x70f933a6, 0x68534d8d, 0x1fa6f85e,
			0x2eb4e75d, 0x85b06efe, 0x05f36cd8, 0x7f8e366f, 0x9159d941, 0xf9a89c40, 0x4bc1a2b9, 0x00000000,
		},
		{
			0xf83da7fa, 0x11c02493, 0x87edfd0b, 0x73638230, 0xdec99e5d, 0xf87fb3c3, 0xccb2c7bf, 0x16186c5c,
			0x5011a6e7, 0x224e9d2b, 0x4d40b26a, 0x60cd9869, 0xd2127c2f, 0x82f1dc24, 0xeb7626b7, 0xf049962b,
			0xd1660c38, 0x1dafe0c1, 0x2110a697, 0x8c47c9a6, 0xa2bc4b92, 0xd664aa57, 0x38b02d45, 0x6d4fc7a2,
			0xef529f15, 0xe42f17ce, 0xdb5e58b9, 0x5f0287f0, 0x8643feee, 0xcfebeee0, 0x3a4c5dd8, 0xbcb9f6dc,
			0x65069cae, 0x236607f8, 0xd2b5b915, 0xa99c931e, 0x8416eb38, 0xbd60ca2d, 0x4f7d2d1e, 0x1eed53e3,
			0x8bb88fec, 0xac79c1a2, 0xa95e41c5, 0xc4f7f09b, 0x6eab4a87, 0x625aa79c, 0x5abbe827, 0x3cc52def,
			0x3aef1e1f, 0x32459d67, 0x1b04105b, 0x46d0bd04, 0x8f4dc6ac, 0x4ffeae2d, 0xb080f622, 0xa74b1eb2,
			0x78956fb1, 0x6753b051, 0x84e60e06, 0x9ac58a76, 0x68dc15a6, 0xddcdfd37, 0x18dd532c, 0xe676aea5,
			0xb8659f38, 0x362e23c7, 0xe493c372, 0x8352077a, 0x3ee33afb, 0xce067a17, 0x4d8246d8, 0x646ea3ae,
			0x5ae2e95c, 0x385e6116, 0x1b7e00f0, 0xb8ae30b0, 0x33a8306a, 0x1d4f990e, 0x8dd2910e, 0x7fe80714,
			0x20b5ebe2, 0xa733138e, 0x34920f5b, 0xfad016c8, 0x3fd6db61, 0x17f33e2f, 0xf2e853c4, 0x9ab334c7,
			0x70bc45f2, 0x8a7fffd6, 0xd81446ab, 0xcbf2c18c, 0x94af9f5a, 0x37da8cb8, 0x9f497796, 0xff079c83,
			0x65a3deab, 0xf781190b, 0xe62d2c1c, 0xb4c18514, 0xa75a7533, 0xd56d7858, 0x68e3bdad, 0x32a55e9b,
			0x72de287e, 0xc1ac0c55, 0xce73fc50, 0xd1830a96, 0xa56b32e7, 0x0d808ba9, 0x2b04c3b9, 0x91478689,
			0x7c56d5d1, 0xc786cb1e, 0xce7472af, 0x617663e7, 0xf6e918ee, 0x47bedb42, 0xd5ac7995, 0xf1ef174c,
			0x1417346e, 0x6508f4b0, 0xc39bd2d0, 0x0cb1fc66, 0x7384ea19, 0x2dde5f85, 0xf460dceb, 0xc0cd22b8,
			0xc3283056, 0xc91fcaec, 0x548b1521, 0x10097742, 0x178c559f, 0x7c360bab, 0xe97e9e60, 0x57ebb328,
			0xe9f3f6c9, 0xc5262f30, 0x3dd7126b, 0x93f13f63, 0xd2c4016c, 0x94731efc, 0xc947edd6, 0xfbf3f3ff,
			0x25559fed, 0xc8c1eb39, 0x1efb3755, 0x7bd01c33, 0x78eebbcf, 0x6ccc2f06, 0xedd7dbe2, 0xcc067ff1,
			0xf3dee701, 0xcc263451, 0xa13de100, 0xe89f802f, 0x5fc7a7c6, 0x2dc83140, 0x6d1c340d, 0xfc53ef50,
			0xe1828897, 0xd301f504, 0x6a89abdf, 0x96588edc, 0x91caa9b2, 0xccfcf0c1, 0x832f092f, 0x7d34f0b4,
			0x7e4dbb58, 0x6f5ced4a, 0xd74868af, 0x00fe2b1f, 0x73f19b75, 0x81ff3f7c, 0xea5805cb, 0x0e63777b,
			0x04d300b2, 0xd53222d7, 0xfa4cafc0, 0xb30f4510, 0x6fe1e47f, 0xb7722348, 0xdaa489eb, 0x19791e3f,
			0x107f3e9c, 0xecb8721f, 0xc400358e, 0x9f08c003, 0xe8ccf008, 0x3d428eef, 0x76199e56, 0x6a2462bb,
			0x3479e9b5, 0x0db12901, 0xe953fda0, 0x1b92179d, 0x92dda59b, 0xb0d368d7, 0xca0e63bf, 0x75179c57,
			0x7a56828e, 0x0d3f1111, 0xcbbc1ad1, 0xe0a5b97b, 0xb26bc73b, 0x6075674b, 0xba779223, 0x88678fce,
			0xdafd992e, 0x784ee51c, 0xb52bf1b0, 0xcecc0024, 0x482fe3f8, 0x6225fbdf, 0xe867aaeb, 0x9384182a,
			0x4a444444, 0xc933a007, 0xbc9782a0, 0x77c8c51c, 0x9114bb3e, 0x346fc179, 0x6ab5e8e9, 0x7e16033e,
			0x3d1ef04a, 0x06278a55, 0x01de6a24, 0x1673b58f, 0x90e30d19, 0xd0492218, 0x28112602, 0x1e22b417,
			0xc9b67c71, 0xe33a7fa0, 0x9b462e73, 0x19f76db1, 0x182bc5fe, 0xda0fc654, 0xeb44eac7, 0x66487cbe,
			0xa47254e2, 0x045a7d6f, 0xffd58b8c, 0x7d08782c, 0x77bbffa8, 0x969e34b0, 0xe02c3b4e, 0xc18fc521,
			0xa794ea03, 0x0f7abce3, 0x9841b9cf, 0x9cbe2c64, 0x875db671, 0xa5be3491, 0x4aa3c844, 0x6b5bbb0f,
			0x03a323b7, 0x5c1012ad, 0x0cea42a1, 0x5b851d72, 0x6570c775, 0x4eeaea76, 0x89c92436, 0xba6ffc03,
			0x5137d5e4, 0x74cda018, 0x0428cdcc, 0x20b125a3, 0xe95dc6b6, 0x6ea38f6c, 0x11236f83, 0xdcf29be0,
			0x13047bff, 0x763dce90, 0xdfba0426, 0x390a2715, 0x9656e21d, 0xbe8f766f, 0x9048635a, 0x4988bb19,
			0x13d2b3bd, 0x7f9d2636, 0x1c803531, 0xc7985c8a, 0xb67d654f, 0x9dce0590, 0x998778da, 0x1d96a945,
			0x88152790, 0x759320c8, 0x80d21861, 0x048b2593, 0x0ceca9d1, 0xfc66b57c, 0xc30a7ee7, 0xf4880dab,
			0xfe7f5c63, 0x26015cad, 0x2739d344, 0x8cd26ff2, 0x3f7e4c4c, 0xc2a057f8, 0x77fec263, 0x1a3d42cc,
			0x13830f3b, 0x6ab59429, 0x3635a846, 0xf916ae2d, 0x31fd9b1c, 0x8928b94a, 0xa89f2909, 0x3ef31297,
			0x7214ea8c, 0x60d7eec6, 0xd67ab0d0, 0xb6d70227, 0xbfa62471, 0x74fd13c4, 0xf3e15f19, 0x5d57d2e4,
			0x578f4ced, 0x77766b10, 0x196e78fc, 0x970d1e7b, 0xded09f7a, 0xadf90497, 0x21269b87, 0xc9ee464e,
			0xef2dcb05, 0x9cd4c6b9, 0x8fe19b88, 0xd2781854, 0xef4e429d, 0x9181d39f, 0x131144e0, 0x137597e0,
			0x4461f2f4, 0xb8266f82, 0xdf9fa38d, 0x07a48839, 0xc3cb0fa3, 0xb85cd5d7, 0x34e5d608, 0x44b3fc1c,
			0x6b210121, 0xa4d00f68, 0x6278c073, 0xc3bfe4ad, 0x82bf9353, 0x3ab1daa7, 0xbebfe855, 0x8c36afdd,
			0xaab8e84d, 0x3d81f8ff, 0xe2e18f36, 0x52e072e3, 0x01a7148a, 0x55ab4983, 0xcfcbd3d2, 0xdc3c78aa,
			0xb7fca973, 0x44b64cbb, 0x6f59135c, 0x123fd8c8, 0xc6d2f4a0, 0xa3de85b2, 0xdb1c9d61, 0x1188f209,
			0x5077a58e, 0x8fc2c09a, 0xa8a6dbf0, 0xc4413e47, 0x74716f1f, 0xd62168c2, 0x8dc074d3, 0x2a7ac2d7,
			0x4f79af2b, 0xdffe0d4c, 0x5ef04e97, 0xd1690075, 0x2eecc6b4, 0x59a5359a, 0x55a2d3f8, 0x682e6e69,
			0x1b7005e8, 0xf3a76902, 0x7183b067, 0x188611a2, 0x63914a7d, 0x15fa9c45, 0x39ee0604, 0x2b2b2fdf,
			0xb9d6df4d, 0xe549d87e, 0x5b11583e, 0x2b634221, 0x8fd4e438, 0x48c22237, 0x61461cac, 0xf8eac2ee,
			0x18906c32, 0x98e81240, 0x9677fd24, 0x9d3a0652, 0x109b35bd, 0x44545bce, 0xb903259c, 0xfe064bf3,
			0xdbf7638e, 0xc78ee038, 0x9a9ec6f0, 0x49e49d90, 0x53d35929, 0x92514740, 0xa274d8dd, 0x74111b22,
			0x3a373c8d, 0x73b4bf5e, 0x51906473, 0x4327398d, 0x5e6a2756, 0x3c9c384a, 0x4d908553, 0x642fa7e2,
			0xbcf7829d, 0x20581885, 0xc104fed9, 0xf0ae0222, 0xbdeeae8d, 0x4bc53e01, 0x960d4769, 0x7156ef70,
			0x0d0bf554, 0x74969419, 0x8662b508, 0xa6a8c2a2, 0xc115f0e5, 0xc6971a2f, 0x928dcbca, 0x2aecf90c,
			0xfa21621b, 0x5d25f518, 0xcd325c4b, 0x11a3ce70, 0xa0dd7b2c, 0x44ef52aa, 0xd0045a7f, 0x2820e4dd,
			0x1d9c63fd, 0xdf2a8ece, 0x51a16a16, 0x3d69039a, 0x2f2c50b6, 0xa303a9c3, 0xba1983fb, 0x0e1ac836,
			0x7f064766, 0x68572f9a, 0x1994effa, 0xa9f467b3, 0x2010c709, 0xe506f15e, 0xbe6e043e, 0x4986a817,
			0x3b2fe765, 0x88c50a3e, 0x806e7100, 0xb273fc22, 0x6472033e, 0x930db0bc, 0x31324f56, 0xf3af5b3a,
			0x1dcb6514, 0x11de7eba, 0x0c0e6ec2, 0x2e7b73f1, 0x6946c055, 0xea16e8ab, 0x1b856eb2, 0xb0ed950a,
			0x89609e56, 0x0d47e552, 0xef2834da, 0xe3a055f7, 0xbea6da9c, 0xe751ff9f, 0x070d74f5, 0x19993008,
			0xfbc76ba5, 0xee43f743, 0xadb1db4a, 0x43e27976, 0x1c2f569c, 0xcd3098bb, 0x33df14da, 0x2ce75cff,
			0x766fc23c, 0x92cad842, 0x938fca43, 0x6b03ad10, 0x38ec63c5, 0xfbef85d3, 0xed1ec22c, 0x590be5b1,
			0xd213034c, 0x8a9dde60, 0x822b1610, 0x27c97bcf, 0x67fa3191, 0x2aa94543, 0x00577fe3, 0x12a432c5,
			0xb7e4c4a0, 0xde1c11d8, 0xc7df30ea, 0xfff9ab29, 0xacfe357a, 0x6f8eff41, 0x9548105a, 0xfda9a178,
			0x3427d6a6, 0x140eff41, 0x1dffa5ec, 0x0eba8a67, 0x871d9c1b, 0xfd1b08e8, 0x0ba81417, 0xb60599dc,
			0xc099a593, 0x0ff051c1, 0x468f8468, 0x795cd0a3, 0x7269b446, 0x7d2cfefb, 0xb55a05bc, 0xb6af2bae,
			0x800b58eb, 0xd10b5561, 0x40fe88e5, 0xbaf0c5f4, 0x63a77c74, 0xc2698690, 0x9eab0778, 0xa52f338b,
			0xd6881200, 0x194e788e, 0x90b39fc1, 0x3999001d, 0x2858e3d8, 0xa1c23ebb, 0x0b019398, 0x88c7d24f,
			0xfbf0271e, 0xe59af25f, 0xdfe19caf, 0xf987f435, 0xe19a5697, 0xf8581b6f, 0x80886240, 0x69c8dbef,
			0x64daf4d7, 0xf9d91148, 0xe063ff64, 0xaa1cedc6, 0x8f41f453, 0xcf1c3fd0, 0x33280c7f, 0x09298096,
			0x9f729f59, 0x732b7f6f, 0x66254033, 0xd4d74334, 0x4dee9c0c, 0x3f23df98, 0xc10e8e83, 0xb22c9b56,
			0x41fb84c3, 0x3d5504ab, 0x494c1610, 0x32cb949b, 0x9c4697f7, 0xe1898232, 0x8edd3e87, 0x02ada0bf,
			0x82f848a8, 0xaaea2909, 0x191686a9, 0x0875c04c, 0xb08dc200, 0xa3f85cea, 0xfab5ea5c, 0x3adfa1c0,
			0x7e2e94f2, 0x83dc37c5, 0xa59a92f6, 0x9f0cfbe3, 0x52521b92, 0x561cb02f, 0x0466a42e, 0x1e8c5679,
			0x0c8e1946, 0x97d30164, 0x64d4fd4f, 0x8ac595a9, 0xf5a1200a, 0x08fa28d8, 0x00dd48b0, 0xdbe4943c,
			0x9d11f9d9, 0xf8c28378, 0x2ae7993b, 0x1d32d0c7, 0x1ccfd94e, 0x48a5c37d, 0xb855684b, 0xd4a54fa2,
			0x249d9663, 0xfd540bf4, 0x38c18d27, 0x60895596, 0x7a5f964e, 0x495bde24, 0x8b0845fb, 0x00000001,
		},
		{
			0x4eda6ca7, 0xabf309ac, 0x42f8664f, 0x93085fd9, 0x112d20c1, 0x2ba75f24, 0x6b689d9d, 0x6bf44e93,
			0x870d5126, 0xfbc5325e, 0x409e33d3, 0x872d0ab6, 0x6c7e1f99, 0x8fd33d78, 0x1267a7ab, 0xb105f8f3,
			0x5580aff9, 0x9819edfb, 0x449618d8, 0x269b277d, 0x192cd73c, 0xc4442afe, 0xa014b835, 0x696210fa,
			0xc5ee8760, 0x9df2c062, 0x2f477f76, 0xba5a9062, 0xfb249a37, 0x56a8da08, 0x415fdc02, 0x38a82d7a,
			0xa4c28315, 0x69a0e15d, 0x243d0314, 0xc602beee, 0x913ec1f7, 0xf33d46ed, 0x92065b23, 0xdfd4273e,
			0xf41341a8, 0x03d47ca7, 0x77e3528e, 0x5a0c259d, 0x3fb04654, 0x5002b527, 0x26ffedc2, 0x5dfa99fe,
			0x8cf8386f, 0xbd026852, 0x0ef10088, 0x6d4cd58a, 0xed12f5f5, 0xdc8e7b1c, 0x2e21bdfb, 0x3b295eb8,
			0x566a917c, 0xe8f50167, 0x78b8d1b6, 0x2f75247c, 0x9d0d9b31, 0xdd5f0734, 0x0a2520dc, 0x5ee932e7,
			0xfe413f2b, 0x8e683708, 0x658f8bd2, 0x3dfb7a8a, 0x5a5c90ba, 0xae415b15, 0x0931d1fe, 0xff99cbd4,
			0x8d40d23e, 0xa987072d, 0x633731ca, 0x799958f8, 0x60045ec1, 0x43f9453b, 0xcf4982a0, 0xb8e39d4c,
			0x5a0c8546, 0x3fbb53bf, 0xb4f4633e, 0x8bb48346, 0x00c6641f, 0x59e456ac, 0xdef12900, 0x1a1b6d7d,
			0x378f17b1, 0x7cf2d784, 0x62699fdd, 0x4f3e4e9f, 0xaa179210, 0x86c9b733, 0xb3713274, 0x86d42cbd,
			0xf519d9a7, 0x2d1a86f5, 0x18b95099, 0xcbdeec8f, 0x1e54be05, 0x21237320, 0xe7c58455, 0xa5b21730,
			0xb3b51d93, 0x40a8b033, 0x3776c5eb, 0x832b097a, 0xce625d5f, 0xb8f82748, 0xf54cda7b, 0x161fc01a,
			0xaff31616, 0x912c7236, 0x904ab950, 0x39192ca2, 0xe0918fe4, 0xacfbf979, 0xbede2410, 0xe6ac5d18,
			0x1c97c6fc, 0x229666d8, 0xbdf2792d, 0x25f6668e, 0xda8b6848, 0xc889c095, 0x2e2ed7d8, 0xca3ab225,
			0xfa3b313b, 0x62d23f03, 0xa68bb8b8, 0xd9872683, 0x122a6d9c, 0x4af9e91b, 0xd61f9230, 0xa092a064,
			0x5717b7a2, 0x8e0e69e7, 0xb4ccdc2a, 0x9c3bb595, 0x2fa36f0f, 0x5c5275a0, 0x6d81b945, 0x7dcc5f27,
			0xd9c73fbb, 0x11d70b4a, 0x13734e23, 0x462ac1d9, 0x0444c9ee, 0x8e3c2759, 0x6cc190fc, 0x1f90b5d0,
			0xcd6f2f93, 0x66001649, 0xbb432916, 0x429662f4, 0xb1034b4a, 0xb9de7c14, 0x64139fef, 0xe312ef62,
			0xf2b6eef3, 0x25387a35, 0x34388340, 0x7ea63b50, 0xeb2e9f3d, 0xcb461328, 0x688b9637, 0xa5e59d93,
			0xfbbf70e8, 0xbf76614e, 0x74b2a3c3, 0x2a24ab4a, 0x44d925b9, 0xc5f86ff9, 0x6098776b, 0x7203e648,
			0xcecee1be, 0x303115fd, 0x62ac4bb6, 0xa4c7e0d5, 0x693ed30f, 0xa6ffd4c9, 0x2089537a, 0x3ba8bf8e,
			0x0eaf3e40, 0x21684e0c, 0x0d0bca3d, 0x6568715b, 0xd8992913, 0x1ca6ac44, 0x40679652, 0xc2c389b9,
			0xd557b535, 0xb9211349, 0x146482e5, 0xba580062, 0xd4fcde35, 0x5f400219, 0x1350c1f1, 0x0a8f3d59,
			0x72b818ac, 0xff616135, 0x4b4a4bf1, 0x5597c2ec, 0xd0c8d5c1, 0xc233c606, 0xa23b3c24, 0x6f8b2dcd,
			0xc234db5c, 0xb43c8600, 0xdefb6131, 0x59b4f663, 0xcb602a2b, 0x3636b7b6, 0x8d9f723c, 0x5291bafb,
			0x143ad2df, 0xbbb639a2, 0xf1f55e04, 0xd9de6f42, 0xd6d98280, 0x7572f3ae, 0x390f9e7b, 0x3b1d3324,
			0x562baa88, 0xac93bd31, 0x4b1accbd, 0x14afc28c, 0xa8c28caa, 0x4772f103, 0x03aea859, 0xb37e3993,
			0x086186e8, 0x4597589b, 0x0d281b05, 0x94f27980, 0x99dbcb55, 0x20e388b4, 0xd2557a00, 0x362b2b7c,
			0xad32897d, 0x339b90b9, 0xd8e31abc, 0xb6179883, 0x600d8060, 0x7c5e9e4f, 0xcf32992a, 0x1f520988,
			0xd5f19854, 0x31c56a2b, 0x606699c3, 0x5c56419b, 0x027f848a, 0xc8a825eb, 0xaa4ab899, 0x68d50969,
			0xe7b47391, 0xc19ba084, 0x0689fd0f, 0x6e680e51, 0x2c554fa6, 0xaba91b3e, 0xd9592f04, 0x5a3634d3,
			0x3d861a64, 0x11d1defc, 0x58d87309, 0xe1fd2daf, 0x4f02887d, 0x432ae382, 0x97da26f4, 0xe0fc586b,
			0x538903e6, 0x3c208768, 0xa3aa2973, 0xa588c7a7, 0xbffcbdab, 0xb5ed8fc0, 0x0d8b7980, 0x85d69ab6,
			0x967549a5, 0x0e69be1a, 0xb3bc8e08, 0x86532950, 0x13412728, 0x7ca5e8c2, 0x3772fa44, 0x5cb8f1d4,
			0x324aadc8, 0x7deb45eb, 0x5d6f302d, 0xc5253cde, 0x0f33db21, 0x2c2d86cb, 0x5a0fb785, 0x0b8606d8,
			0xb184d1ad, 0x53c803a6, 0x5b3031bb, 0x4e0d2bac, 0x93786c9e, 0xcbd9b7b4, 0x35ced292, 0x5d0ac3b5,
			0xf14277e5, 0x3ba719ac, 0x73063152, 0x5e741e17, 0x58ce958a, 0x76cc7acd, 0x7a2e92ed, 0x9eb9be12,
			0x76c7be66, 0x2b530a9d, 0xd3b08885, 0xfd66c1a4, 0x7a0ac13c, 0x6c71adad, 0x6f4d22f5, 0x78503057,
			0x9d3fd7c7, 0x7e9fb5bb, 0xed0fb0af, 0xa36885ed, 0xc9fb18ba, 0x791af454, 0xdedc5c61, 0x561edcac,
			0xcdbc7cee, 0xf4077c93, 0x2df63164, 0x293f4da0, 0x432fbdfe, 0xd66f6c2b, 0x06994d19, 0x65506cf2,
			0x88dd8611, 0x972ffa43, 0x1e6c9c46, 0x12915cda, 0x4849be1e, 0x56445cd6, 0x4f8d5de6, 0x46ea297f,
			0xbd961e34, 0x4ebd89f2, 0x2d104bf4, 0x5efe7ad7, 0x9f4dcaf1, 0xcfcbc70a, 0xe494d744, 0x09f0440b,
			0xc1655656, 0x63aec588, 0x1169b820, 0xc86d8bc5, 0xbe6f92ee, 0x3e521abc, 0x6dace86d, 0xd00f6290,
			0xd4771300, 0xff7f507d, 0x69478de3, 0xaca4f3c9, 0x65270cc7, 0xbb65a5f9, 0xca1f93fc, 0x30e42b11,
			0xe7eef850, 0x09c12294, 0xe179278f, 0x9a346948, 0x7cc89197, 0xffbebe7c, 0x4a22918a, 0x52facaee,
			0xf549b31f, 0xd061a35a, 0x9ed20d0f, 0xfab228bc, 0xeaf7bd2c, 0xc6c5319f, 0x31720a57, 0x4f52dacc,
			0x21b4558c, 0x60f310c2, 0x2d9fc23e, 0xbb51dc38, 0x2b32987e, 0x269a64d6, 0x2c6fe7c7, 0x1f81c600,
			0x17b9078e, 0xc2f5cfff, 0x52da9e2c, 0x8861d947, 0xcb024ed6, 0xff496b63, 0xb5009067, 0x6af855d6,
			0x80b01900, 0x9e4acd39, 0x65bdc8d1, 0xa8419026, 0x155a3f04, 0x19607ab8, 0xf010e76a, 0xafadd75a,
			0xc3343196, 0x2bccd9cb, 0x9c1ee0fe, 0xdd51b917, 0x2288099e, 0x5102f0f7, 0x71953ebf, 0xbae91a4a,
			0xa56d29f5, 0x3527bfa9, 0x797be81d, 0x03489cc3, 0x9d75bc1b, 0x1c933f3a, 0xcfb42574, 0x52b10801,
			0x77baa706, 0xe1786fc7, 0x8e0d4e71, 0x8d085e93, 0xbc26642e, 0x9f8b56bb, 0xbe3cf49e, 0x16099e65,
			0x6a7a90bf, 0xbd24cfc3, 0xadaa7c7c, 0x07de7354, 0x3de10af9, 0xa46fff2f, 0x2e6fe27f, 0x16be87d7,
			0x80a33139, 0x4ed10e9b, 0xdd36a76a, 0xfd55f3ce, 0x01697429, 0x8055768d, 0xb46dca00, 0x73c113ba,
			0x95b5b126, 0xd71de6e9, 0xfa72236c, 0x998b067c, 0xb66d758f, 0x3be26dcb, 0x688da0b7, 0x4fa988fe,
			0x5e9d9b3c, 0x92724215, 0x5cbb3847, 0x400fdb7a, 0x48adfa59, 0xee38f93b, 0x5a6c93df, 0x2179c9c7,
			0xc5c28f57, 0xb8eb2197, 0xb90f2819, 0xab3235ee, 0x20f79252, 0x7ffceea6, 0xe2549b05, 0x132afd74,
			0x6bfcaf0d, 0x67a56e9d, 0x421d53cd, 0xb3e7b8d3, 0x6674acdd, 0xd45f878f, 0xa6716cf8, 0x467e36a6,
			0x89fddb23, 0x8f3fb9b4, 0x441e4d04, 0x2dbb1ed2, 0x4e4bd9cc, 0xa5c95d62, 0x59ecfec2, 0x7926a2f3,
			0x7e3db98a, 0x0c537672, 0x2405881e, 0xe7d9c193, 0x580210cf, 0x3ae10fc7, 0xe78212c3, 0x776cfbd6,
			0x1330f3da, 0x4239c0d6, 0xddfc3427, 0x34959fdf, 0x088f3694, 0x57cdbe8a, 0xfb68c72b, 0xed518d13,
			0x9dd6c067, 0x8b22f17c, 0x99181e98, 0x9c000c67, 0x00cf83c2, 0x46d45566, 0x39f0366f, 0x281f7711,
			0x1633d1dc, 0x304f3822, 0x478e66fd, 0xf6cf61c4, 0x4ab62b79, 0x1e38d105, 0x846b3e23, 0xa3a360fa,
			0x9265e058, 0x96508161, 0x7bae273f, 0xe239f8ad, 0xe15f25a3, 0xd93d3ebf, 0x72fed472, 0x5a444329,
			0xfea3f44f, 0x052e3146, 0x1ea35d5c, 0xfd3ed8a8, 0x4761872b, 0x891ce784, 0x4b9d437f, 0x1edef0eb,
			0x5d59e688, 0xf8bfade9, 0xbf6cb4e0, 0x06aed0b7, 0x853cc8d8, 0xf95fa137, 0x2c0fbbd2, 0xf0c6bf90,
			0x25c9b51f, 0xf505409f, 0x9b495149, 0x8819d05c, 0xe6c85a7c, 0xf3bf07ce, 0x510c03c4, 0x10b27ace,
			0xd1ca393f, 0x6fc10771, 0xa2e38698, 0x3a61af38, 0x83e167d2, 0xbb971c40, 0xd8aa4262, 0xcbb7e1a3,
			0x30b4fed5, 0xbdcdbd84, 0x814a9db7, 0x000b0f32, 0x3a88809c, 0x7a89c119, 0x0b114112, 0x77796264,
			0x3d204cd3, 0xd9d271ea, 0x591858d4, 0x3fcdbc2b, 0xc334cb85, 0x7837f258, 0xdc5bad2e, 0x2e859e87,
			0x6bc11f5b, 0x0107446a, 0x577535b1, 0x59d0ea50, 0x1bdfb518, 0xdffc3ec7, 0x5bf6a5e6, 0x1afb7a4c,
			0x6042f187, 0x53d1f1bb, 0xf75f0f37, 0x4993d7cc, 0x5bacbc10, 0xaf2ba7fb, 0x5633e9e9, 0xc99e8b41,
			0x12ff1804, 0xadcad9ee, 0x88a608ef, 0x6cca11ae, 0x6978ad79, 0x89d96c4c, 0x975fe158, 0x0863f292,
			0x9c70a3be, 0x338a065c, 0x49ad46f7, 0xe6604427, 0xb36bf8a9, 0x0fb7ec65, 0x1a0dc762, 0x241415f5,
			0x32f80714, 0x57c506e1, 0x8e82538a, 0xc83191e5, 0xc3cd1bec, 0x2a532409, 0x484ef7d4, 0xab0138d8,
			0x68b57374, 0xd094ce78, 0x4ed5c109, 0xff4738b0, 0x00eb4eea, 0x90234226, 0xb5868388, 0x00000001,
		},
	},
	{
		{
			0xc82348a3, 0xca5d9eec, 0xd629b2eb, 0xdfd0b174, 0x0836131f, 0x5d28a588, 0x68245274, 0x65b1fdc0,
			0xa31f7d6a, 0x3a137077, 0xaeda23d8, 0x2b571a73, 0x7af1e343, 0x70066a4a, 0x5ed14d4f, 0x4b52a4d9,
			0xb65ab439, 0xe1ad4f5a, 0x49017c8d, 0x6858dd96, 0xb9917551, 0xca090a01, 0x310317d7, 0x01e6bee0,
			0xfff32c91, 0x87034a46, 0x1c186f3b, 0x7f8d9758, 0xf21f6931, 0xe6c0fa81, 0xfbd920f2, 0x7de434e9,
			0xf87e101b, 0x9f748b5e, 0x828a09b9, 0x82c9ce0c, 0x35d821ec, 0xa985e078, 0x509c9a84, 0x79ffaf75,
			0xb5e73021, 0x498a36b3, 0xc825afc7, 0xdb64cff8, 0x406f4af8, 0xbd3bd809, 0x6edae95b, 0xc6162bb2,
			0x41ca04dd, 0xace7debd, 0xe5539854, 0xd74b6a96, 0xdf050c43, 0x72e9a3c3, 0x9cdc105b, 0xc95b93c1,
			0xa23bda31, 0x7dfe4185, 0x953e9d01, 0xb6fad548, 0x4386e981, 0x1f065fbc, 0x0477e382, 0x5459accf,
			0x2fbaa320, 0x2d44dc11, 0xce763846, 0x832a22fa, 0xc728e01c, 0x41e34526, 0x4812a752, 0xdd00bc2c,
			0x8a00fc36, 0x1ecdda80, 0x2769084f, 0xc6ed6f18, 0xe0cea263, 0xfa4d5bd3, 0xfb0be382, 0x24e41bf9,
			0x66ebdb17, 0xa8bcc785, 0x5ccfa89b, 0xbb3bdcb7, 0x74bc5ccf, 0xa04148a9, 0x2f95d01b, 0xe9c9ff06,
			0xc6ad9505, 0x94539436, 0x863e1c5c, 0x63d51298, 0x24d0b9af, 0x500267f8, 0x7579f4d9, 0xa200dda0,
			0xa1d5ebe6, 0xcfb7ab6c, 0x0e6ab604, 0x9dc216e7, 0xb3299f59, 0x836314e7, 0xb2f86b3b, 0x321e605c,
			0x818d10c2, 0xcf5a7585, 0xf9ea3981, 0x853a0cc5, 0xc11b34de, 0x488f74e5, 0x06277df0, 0x789901fd,
			0xf698b130, 0xb7788ed4, 0xaeae9a3a, 0x41bc756a, 0x2bcae81f, 0xac943da9, 0x4d584b19, 0x40880977,
			0x6d25453b, 0x30379008, 0x906d8596, 0x07ceefff, 0xfa4961b7, 0x10de24bb, 0x9d023360, 0x3bdcc393,
			0x00906524, 0xbc29c132, 0x3b43e8fa, 0x78c8d53f, 0x2393d469, 0xb3e0a616, 0x43777d9d, 0xa8c06202,
			0x327d0a21, 0xbc10fd53, 0xd6f39189, 0xe05f7197, 0x1cd32f5b, 0x8d581fbc, 0x040a28d7, 0x33a21023,
			0x5e0d313a, 0x8545fa8b, 0x5096e76a, 0xba613aaa, 0x434b7020, 0xe044d5e2, 0x4628ea94, 0xaf035e38,
			0x84fd03ba, 0x022e00ba, 0xda874d75, 0x5ba1d17e, 0xdc35e185, 0xfc3a507a, 0x4298cbbb, 0x7490d62b,
			0x06e7ad15, 0x705ccbe7, 0x01a6c293, 0x9d98310f, 0x33345f0f, 0x9d6c82cf, 0x3e2d75d6, 0xfc130518,
			0x88510faf, 0xd7cb498c, 0x2592df83, 0xd386918d, 0xb934d0ea, 0x559a4b0b, 0x0f4dfa0c, 0x740e1c8b,
			0xce987055, 0xc211fa5a, 0x7a4d30ff, 0x23b69c29, 0x4d077951, 0xaa9da729, 0x355a8a3f, 0xb2d00907,
			0xef0ec6b4, 0xab2c1df4, 0x4e5f1f9d, 0x4bdd6d93, 0x12a7d100, 0xb79c343c, 0x79d867d5, 0x0873ae8c,
			0x816d0493, 0x828f61d6, 0xf2baa00b, 0x89331a44, 0xb00a9350, 0xc03b2e56, 0x94ae58e9, 0x45cf566a,
			0x66e3e605, 0x4d09406d, 0xa7c812f5, 0x570ebe82, 0xc5e1f2a4, 0xa15051da, 0x690d8be2, 0x3e529121,
			0x46f39522, 0x9a5e5837, 0x951e537d, 0x202adf34, 0xd6fb0201, 0x85045ce2, 0xa20c8c4b, 0xa33bd9a5,
			0x7fc96e67, 0xf779e896, 0x09362877, 0x3a49b2ab, 0xb0150e57, 0x9572b3be, 0x3afa8d60, 0x0b667fc5,
			0x91cba05b, 0x932a2de8, 0x99a853d4, 0xc56cb118, 0xef0a874d, 0x90efc657, 0x1bb35ccd, 0x819d7038,
			0xd500f3fe, 0xdf25091b, 0x80f8ce2c, 0xb073bc9a, 0xce634a6f, 0xce797214, 0xa4d62826, 0x6ac60818,
			0x7599cfb0, 0x3eb03eeb, 0x143c956d, 0x56e5106b, 0xa8d0ad43, 0x1b540434, 0xf786a2ea, 0x7a2ff869,
			0x9e18327e, 0x92212cbd, 0x8f58d8e1, 0x47a43e91, 0x402e7a8c, 0xfd2e4021, 0x738077be, 0xd8cd9a3f,
			0x4e2e82d7, 0xb6e6a0c6, 0xe0e0deff, 0x7c5f3f34, 0x7c8cd420, 0x0aad874d, 0xec073d02, 0x369a1d02,
			0x317b3287, 0x285d1a54, 0x0453bbd7, 0x340bfeb8, 0xe0286815, 0x173bcbf4, 0xd7963b25, 0x4cee80f3,
			0xea0c9af9, 0x0d2db37b, 0x69a36223, 0x99e70399, 0xefda4e0c, 0x77130e5c, 0x822abd9d, 0xbba3df50,
			0x0b541a18, 0x1a421b56, 0x8a3d3cd4, 0xf0847a90, 0x68ee5a4c, 0xe9befd81, 0x2b168130, 0x73fa2c1b,
			0x83c7eb8b, 0xcd8e1cc9, 0x36887ef3, 0xeaa1b1df, 0x63b12e73, 0xdb5c8af3, 0x9bc6480f, 0xaba52f63,
			0x005bf4d7, 0x01f82d9a, 0x88ab8ff1, 0xaf9e7dd8, 0x443c6ab9, 0x40f6f482, 0x732287fa, 0x667a0698,
			0x99ba28af, 0x8afbeed8, 0x9e6c5631, 0xae274a71, 0x0992fdd3, 0x314da017, 0xbc80904d, 0x140b8b5d,
			0xcce4eedd, 0x15aba3a2, 0x5b3ef34d, 0xc58189c4, 0x03066120, 0xf31b832b, 0xd174623e, 0xf2a5b355,
			0x7d6c03c7, 0xd2d03e9a, 0xbaa22e19, 0xc59f07c4, 0x2d19620c, 0x303afea3, 0x12436d0c, 0x9c278dec,
			0xe8581ad5, 0xbd4b55ae, 0x4e8ae3a0, 0x5701a082, 0xd89627e7, 0x0454e314, 0x23e3dde3, 0x73936a89,
			0x35c3f2bc, 0x9148c34b, 0xaf5a212e, 0xa4fbe3e9, 0x17282521, 0xb6d90858, 0x92d89d17, 0xc63daffe,
			0xe3827509, 0x4ce1a16a, 0x16f3a129, 0x1e8a5d4d, 0x015973e6, 0xf6f7dd70, 0xd86a073b, 0x7174226e,
			0x8d02f3e0, 0x67c41d7b, 0xedd22da9, 0xc990b311, 0x270371a9, 0x727f5893, 0x4aaeea46, 0x80049532,
			0x7acf146f, 0x7e912e63, 0xf93db5b1, 0x647980fd, 0xacdc2efe, 0xdb64c27a, 0x1dd9de6a, 0x00589007,
			0x6a5e812a, 0x837c607f, 0xa4cf1a68, 0x56aedb48, 0x3ef938b1, 0x16da91ba, 0xb18450a2, 0xf17a858d,
			0xfd1cfaaa, 0x4d1df775, 0x4353b2de, 0xea21d5fe, 0x36faf417, 0x044226ae, 0xb30f941f, 0xfdc57111,
			0xe94920b3, 0x8241ef3f, 0x4673d717, 0x0466dbb6, 0x9e836743, 0x23da72ad, 0x39fdcd51, 0xed7599e9,
			0x39a5602b, 0xc6b7a9c9, 0x60829064, 0xa381f45f, 0xe81901c2, 0x4e5972cc, 0xb2cd932b, 0x0bcc385c,
			0x053c937e, 0x876d99d1, 0x552063c7, 0xec04dd08, 0x9f8279e6, 0x6a9139d9, 0xee801a48, 0x1a8a1410,
			0xfd2014e2, 0xc0830321, 0x2fc94b09, 0x5b3e4308, 0xc13fc42b, 0x7d9993f3, 0xb37dd685, 0x94ff562d,
			0xe411c2df, 0xdf5f2d0b, 0xbf932611, 0x5bf17286, 0x11d1eb75, 0x8ee10c4d, 0x9d02836e, 0xc79e372e,
			0x8ef7e362, 0x8bc3527f, 0x64b450a2, 0x21dbde2f, 0x2eb40bcd, 0xc5b29ac5, 0x0929cf19, 0x95014021,
			0x4b7078b9, 0xefb54500, 0x5de82fa6, 0x2a52bedb, 0xdff180b9, 0x3e5d8b9e, 0x4afed5f6, 0xdd37ebb1,
			0x1fc17048, 0x6903e062, 0x04ef7678, 0x0664e46d, 0x0137ca32, 0x0a2765a7, 0x1c120dbf, 0xed16f43f,
			0xd8c36c88, 0x4ac5d466, 0x8cc41067, 0x991bd2bf, 0x349a2727, 0xd7dd2bef, 0x23a2daba, 0x4dfbeb77,
			0xa13c2089, 0x242b7d23, 0xa2d441b3, 0x88e15682, 0x834977b0, 0x1b4393b9, 0x6eb98990, 0x17784f07,
			0xe9e446eb, 0xd4ec22a1, 0xab245831, 0x92467fdf, 0xc5a91016, 0xb8576b94, 0xdcf0103d, 0xddc86bcd,
			0xa9654f62, 0xe82b7c50, 0xf7a1764e, 0x7bca2e8c, 0xa3ef2c90, 0x7579cdec, 0x69407c42, 0x901aeac7,
			0x04a93dd1, 0x5e69e074, 0xaf4f6666, 0xe244228c, 0xfe46a87e, 0x11ad7240, 0xd4f6b671, 0xefc2ee7f,
			0xcfcb4b34, 0xf41cd2f4, 0x14835188, 0xc19ed0be, 0x066fedc9, 0x397af8f6, 0xe0a46218, 0xf5c2f4bc,
			0x3f63b104, 0x9fdc3c92, 0x0080607a, 0xbe18590f, 0xaae3e741, 0xc228898a, 0x929aec74, 0x4f544e54,
			0x924478ec, 0xe435cf93, 0x0710178c, 0x4a9af838, 0xfa1a50f8, 0x6617d46c, 0x0bb5e791, 0xdb9564cf,
			0xb1b94feb, 0xc69e9747, 0x648fb474, 0xd5c590eb, 0x4d01df02, 0x2bf685c8, 0x7b4690d6, 0x909ae1fd,
			0x93141830, 0xcb89b383, 0xab3846c5, 0x254b222d, 0xc59bc2c7, 0xdc882ef4, 0x0dc6f7d2, 0xc8fe7605,
			0x1aff4318, 0x6d2e5996, 0x7a690829, 0xdfe15b31, 0x12fa3479, 0xb20ff2b3, 0x0f6ef147, 0xb04ccf14,
			0x183e8337, 0xbdf19461, 0xa21866c0, 0xe2a82eb2, 0x45ebdf1e, 0x5d3aa957, 0x1031d370, 0x1654bfc5,
			0x4afe25f9, 0xc916fd25, 0xce08667a, 0x1e9ee454, 0x6644417b, 0xabd57d7d, 0x5e92c144, 0xdff0299d,
			0xb6b8550c, 0x0eb51e46, 0xeed79b46, 0x86c64ddf, 0xad0072b7, 0x971632a1, 0x0b1e0680, 0x575983e5,
			0x7452eb57, 0xaf032aec, 0xf26d26a0, 0x6a78da61, 0xbf26d2f3, 0xc3cad297, 0x9fa0142d, 0xbbe40d03,
			0x4ff0d800, 0x9012df72, 0xa223b243, 0x8ad3a17c, 0x1a4c565c, 0x4fc08c8d, 0x662b012e, 0x2d15a4c2,
			0x59eee162, 0xdf454e7e, 0x5b275ff3, 0x480b8d70, 0x4aa71e2a, 0xa1fcb62e, 0xa7fe4cc7, 0x6a2c8d3b,
			0x875091e4, 0xbdd52231, 0x5b67d795, 0xf0f67663, 0x427588af, 0x2f4839c1, 0x243946ef, 0xfa80c8f3,
			0x9859db12, 0x6cc33125, 0x3fe56354, 0xb474c51d, 0x2c0f1261, 0x16d1650f, 0x9ef61a51, 0xb8b2bf23,
			0x3f11dcb6, 0xe4ae999a, 0x22102d69, 0xc5007061, 0xee272bb0, 0xf5adbb97, 0x83844e28, 0x8921b609,
			0x0caa8330, 0x7b265700, 0xadb0e35c, 0x862cf7ba, 0xec586356, 0xf00f1c1f, 0x584da7db, 0x110dcdcb,
			0x930009d0, 0xd35d7274, 0xe7a55165, 0xf4cfdc9b, 0x1e918bdd, 0x4f770147, 0x28f98d74, 0x00000001,
		},
		{
			0x2de0111b, 0xba6f3022, 0x6b4a9e2e, 0x7e545964, 0x0c218fd8, 0x9cc97c6b, 0x4f3d1802, 0xb8a47559,
			0xa4fdd0c7, 0x1bccc296, 0x77c15a42, 0x2967cbba, 0xad054473, 0x35805f6c, 0xac81748b, 0xddf9f51d,
			0x5cf1bed0, 0xa0acf81f, 0x10480f02, 0x67cc0a2c, 0xca579343, 0xef3035d7, 0x9db208d1, 0x86b65514,
			0x3e95c30f, 0x29508fcd, 0xd3405983, 0x61f5276a, 0x86a9fb06, 0xf65abe5d, 0x5cd53560, 0xdbae9b8a,
			0x22644973, 0x9a604be5, 0xdc72e26c, 0xe792e663, 0x7f7772d8, 0x35eafb51, 0x859f1bdb, 0x9eb6000a,
			0x09cf44be, 0x44fa97f1, 0xda8ca263, 0x44321cab, 0x5542f144, 0xb0ee1367, 0x1ac43eb0, 0x08fb2528,
			0xec2732e1, 0xe0349c5e, 0xa0cb2e3a, 0x62fe2b97, 0x4843e2ec, 0x36d3ea20, 0x9997985c, 0x12e7697d,
			0x9203ad0b, 0x6ba44509, 0x4113ca76, 0x5638ac76, 0x92453497, 0xcd0db5da, 0x898dd0bd, 0x933c12d2,
			0x2aa996e3, 0xe9389583, 0x88ea456a, 0xa7ae9eb6, 0x70383226, 0x7041868b, 0xb5f7f9dc, 0x5d151f59,
			0x783c5030, 0x23fb1989, 0x6fc6caaf, 0xb117a379, 0x28368479, 0x1ad28378, 0xc6de920f, 0x44e980a8,
			0x536a1e63, 0xa92f7273, 0x617124d6, 0xc6df17a2, 0x0e4d1a77, 0xab271c15, 0x8b5f88dc, 0xc065d43f,
			0xcff5ba60, 0xc09ac45e, 0xa8a3907d, 0x447cfcd3, 0x1d5c4c59, 0xb9534c9d, 0x0373d376, 0x707df2ac,
			0xb1a1c06b, 0x992646c3, 0x6b18297a, 0xf5057705, 0x7e2fccf6, 0x8cb695db, 0x34dd0517, 0x6e5edf71,
			0x3649d6f6, 0x1bd05f3d, 0x71064fcf, 0xbb951a62, 0x15833ef9, 0x9902b1e8, 0x211bd26b, 0x4092970e,
			0xdfbb7880, 0x31194895, 0xd78374b9, 0x66ba77d0, 0xd069cf9c, 0xa788d5b9, 0x9b62bae5, 0x2bcd332c,
			0x753e90b1, 0x80c12105, 0x9d542cce, 0x033bd39b, 0x972e2f6d, 0x3513b966, 0xee67e819, 0xd0e50511,
			0xf3d537ee, 0x158f503e, 0x9ae99cef, 0x67e4f507, 0x6c69db47, 0x4b30c0c5, 0xd6e2f36a, 0xb77f340c,
			0xab6fb5cb, 0x8d5103e6, 0x83b7a0fb, 0xec9842a3, 0xb868f424, 0x482f1b72, 0xeac40ed8, 0x34e4ebdd,
			0x1db9b86f, 0xc6d9607b, 0x458a16d9, 0x1690590b, 0x7d026a20, 0xee410701, 0xc304f528, 0x4947fd6b,
			0xa8b0cf53, 0x9290e1bf, 0x17d38ace, 0xecf6ad9f, 0x6c9895ec, 0xfa97e3c2, 0x0ee348df, 0x83e1fecc,
			0x4e21cdea, 0x068debaa, 0x14e73654, 0x9e4254d3, 0x859c1c41, 0x647c871b, 0xa0433166, 0x0a2e1b19,
			0x8e03183c, 0xfe3d99df, 0x5651f9b2, 0x4d9227ea, 0xee661986, 0x91362910, 0x98912e31, 0x567d694c,
			0xf409532e, 0x37b42d8b, 0xfd724318, 0x865fcfbc, 0xd326cfc6, 0x78fc222f, 0x8d4ffb6c, 0xa79d7a81,
			0x1928ee2e, 0x3a6a23ae, 0x1e526c19, 0x0c1359b0, 0x0a4e5ff4, 0xb4b560c6, 0xe2de00db, 0x5c815245,
			0xc05ed740, 0x5a19d828, 0x33dfb304, 0x6784ee2e, 0xe497692e, 0xe1e3eaa6, 0x6a8637f3, 0xf9cd21bb,
			0xae0fc7ec, 0x84cdfc13, 0x5d898a98, 0xa69fe27a, 0xf822273f, 0xbe099d22, 0x1ab82832, 0x3731a6cf,
			0x7415bddf, 0xf74bb949, 0xf9dc476d, 0x193f37e2, 0x0b2a704c, 0x674489be, 0x97adecca, 0x813532a6,
			0x92f3e08e, 0x80989efe, 0x785de59a, 0xd9532558, 0x3f3165b9, 0x78192ea3, 0x707a4218, 0xa0d6ebdb,
			0x4443e53d, 0xd0e33941, 0x626ff67b, 0xc443e4e9, 0xe93703f0, 0xe0961bda, 0x1e4533a5, 0xfd4a37bf,
			0x9927bbcc, 0x5faa8eea, 0x9a51f087, 0x6f563bd9, 0x77fb25cb, 0x16e8b89e, 0x03b3975b, 0xf8d521b5,
			0x82aeacbe, 0x53e23030, 0x2f0a1dd7, 0x113d17cf, 0x00c76679, 0x98af2f47, 0xd5079efc, 0xf756c930,
			0xc976f724, 0x2355cc1b, 0xf9e01e7e, 0x691d650f, 0xa09a7371, 0xfcf90342, 0x70e82f08, 0x26d36904,
			0x8f1d88ca, 0x588fb1db, 0x82feb7cb, 0xd8ce6da7, 0x3de264e7, 0x350fd038, 0x894aad46, 0x9433868c,
			0x15dc7e52, 0x6973d429, 0xc36ed93c, 0x42c3b9b4, 0xb676c151, 0x5d65082c, 0xdfd5fb62, 0x1d94a99d,
			0xa288fe58, 0xe3a6845f, 0xe9ce3681, 0x2b5eb789, 0x927051a1, 0x8cfe670e, 0x096bffd5, 0x72413426,
			0xe1ec3715, 0x9c3061f1, 0x4a87ebc4, 0x73ae4634, 0x998a3b76, 0x5e6a5c26, 0x6e7616d2, 0xfbc14e6f,
			0x45df0ed4, 0x29c3c13e, 0x94563707, 0xda9db8ef, 0x6a62dd6f, 0xf540a99c, 0xe89600e3, 0xb175172f,
			0x5d1f3fda, 0x220ae028, 0x71d70daf, 0x1358f357, 0x8bb3f8f1, 0x3e2c7654, 0x776c9b58, 0x29648d6d,
			0x9bca8579, 0xe1845026, 0xff4fdf03, 0x674b4f82, 0x7ce4d449, 0x7eb41ff2, 0xfb254f5a, 0xa143ea6b,
			0x2d81a4f4, 0x9faee7b6, 0x146e5e4d, 0x2062c836, 0xf148e916, 0xc522767c, 0x438dbb08, 0x1cf417a0,
			0xa7197026, 0x64b40c6e, 0x88144aba, 0xac182da0, 0x7085f184, 0xd63161b0, 0xcc8981d7, 0xc7fb3742,
			0x75f03fe6, 0x07339584, 0xe17c8c73, 0x59fad7fe, 0xc8b66e6c, 0xbfb17ae4, 0x08648eb4, 0x887da2f9,
			0xf5cc4f5c, 0x922751f8, 0x28e8cfee, 0x7b14e5c9, 0xf86568e8, 0xff827456, 0xd92c2a28, 0xdfb35bfe,
			0xc935e828, 0x0de1087e, 0xc0bc19b4, 0x12374e83, 0x8882fbdc, 0x7c068b4e, 0x1463e9cf, 0xd237337d,
			0xd919f810, 0xe49229f0, 0xaec12077, 0x5b933c47, 0x3a84e79a, 0x1a3060dc, 0x2e8dd5fd, 0x28401ed0,
			0xd6c5400c, 0x35f82fbb, 0x8318c3d3, 0x30dd5d7e, 0xb1a67ca8, 0x26100d4a, 0xef32106f, 0x4ed25a87,
			0xb31c7211, 0x3f58e039, 0x25ebd6b8, 0x0efe7fbc, 0x79643308, 0x11809401, 0x2db94e5d, 0x9ede0fc3,
			0x87e6573d, 0x37065396, 0xf156f4c0, 0x1dd9e7bb, 0x9a3a202c, 0xc59745a2, 0x0d4b128a, 0x69d0418a,
			0x0a943ef7, 0x775b749a, 0x59744c20, 0x3dfc38f4, 0xd509df7b, 0xd52d0017, 0x43958eb6, 0x4e812e94,
			0x1b4c3c5b, 0x63fb68c6, 0x535ad62c, 0xa3e8fd68, 0x0b34f319, 0x23734395, 0x9f965b0e, 0x1269fd94,
			0xe21048dd, 0xc859d7bf, 0x9cc49589, 0x8317d581, 0xf5c9d4e6, 0x5fdb39ed, 0x2ebf8016, 0xed18e41e,
			0x1696301a, 0xa3513ea6, 0x00639551, 0xd8ebebc8, 0xfd884926, 0xb66329f3, 0x70d772b0, 0x9d9b26fe,
			0x4b7f6505, 0xdebe5de8, 0xc71d60b9, 0x28424468, 0xfb0d2815, 0xc902aff9, 0x0d21e0c2, 0xe4173eec,
			0x56999eac, 0x62202ef1, 0x2e18f630, 0x4d6e652f, 0x40c0223d, 0x8a4b9938, 0x26dd36c1, 0x50939e5e,
			0xbaa347af, 0xe50ef07d, 0x6234b4db, 0xc6732b50, 0x29b0b6bc, 0x6fb1030e, 0x23245069, 0x86339e2a,
			0x40bf41a9, 0xe819787a, 0xead0439a, 0x1badf348, 0xcf7f6697, 0x76450e84, 0x989374ee, 0x0b1e1173,
			0x07078101, 0x822c20da, 0xd267cf71, 0xa8656194, 0xc872b60d, 0x428765d7, 0xb5bf8180, 0x7d7f4821,
			0x06524dc2, 0xc9843eba, 0x42b94f12, 0xc5f1b2b1, 0x7aea39a8, 0x7bfad3f6, 0x85c4cd17, 0x2da4f151,
			0x7156b0c4, 0xfa14e9d7, 0x34261188, 0x0f37742b, 0xac144344, 0xb8804832, 0x0e746f97, 0x2d19f3b9,
			0x950db680, 0xb4d7b5dd, 0x9a168e59, 0xd202ff74, 0x410840b8, 0xf5f2e193, 0xd2b971bd, 0xd88fad15,
			0x44a2391d, 0xa61e4fb0, 0x328ff6b7, 0xf047e8af, 0x7a9aaee2, 0x7108b90b, 0xb7f1099c, 0x8e3054d0,
			0xd14aaa6a, 0x964fa2e4, 0xcbfef288, 0x6037c450, 0x81a139ce, 0x413bbad4, 0x4846115a, 0xb0252183,
			0x9ceb3515, 0xa2b052a6, 0x31142be6, 0xc5bba7a8, 0xa3ca7b12, 0x77864ddd, 0x18ff4efc, 0x3f709d84,
			0x054815bf, 0xce904fc8, 0xa45f5820, 0x2a6ef009, 0xdb6864a2, 0x0c759b8d, 0x85126b95, 0xb83f0ca4,
			0xd599e956, 0x7dccede5, 0xd76d69d8, 0xfa8ca1fa, 0x210b5300, 0x01487053, 0x1efcffb5, 0x718cabc2,
			0x221ebcd4, 0x907a3a32, 0x84d258e4, 0xc3a7faef, 0xc47e3779, 0xe3498701, 0xe7da3412, 0x66b04945,
			0x853150e5, 0xb61a62a2, 0xcde5d94e, 0x7d702e86, 0x5c5d94f4, 0xa20f6d8c, 0x16bed12e, 0x8d30b053,
			0x7b1c1c74, 0xe33c44f6, 0xd33b6278, 0x29a4ba40, 0x07d42a86, 0xf185bbaf, 0x7f32b711, 0xfc28df9f,
			0x5acf19dc, 0xecd3b1c2, 0xba46b5ea, 0x50cbe551, 0xb3fa858e, 0x2f505873, 0x049e9768, 0x89bbf65f,
			0xe1df76df, 0x5a31f32d, 0x9a4bddc5, 0x168dba11, 0x56893aa3, 0x324ed669, 0x658d3ad4, 0x232433a1,
			0x71825413, 0x862099c0, 0x16ebffb1, 0xa0e8dcb9, 0x97f28a1c, 0x57eee429, 0xb2b8a83f, 0x0ec3fcef,
			0x4b1d8d40, 0x2c40e7bb, 0xc190e2e3, 0x5412be04, 0xfbd1d0b4, 0x10771679, 0xb9a65c98, 0x6c9217c2,
			0x89dd20f9, 0x00dd1841, 0x7fed9a0c, 0xac64110e, 0x92d6e549, 0x48faf28f, 0x65c25b89, 0x5c11d867,
			0x211b9968, 0x381051f0, 0x07d49346, 0x9bb5177b, 0xe68ae835, 0x856681e0, 0x4acaa0a8, 0x4edb43a5,
			0x462ca879, 0xa3bc0010, 0xf73b8b62, 0xb1caefc0, 0xfc8cdd1e, 0xaf39d23b, 0xfd07064c, 0x1a8756bb,
			0x8f786d98, 0xfac175ed, 0xbbd2be6c, 0xcb083b8c, 0x254809de, 0xefe1f3ee, 0xfb03fd43, 0x68ac42f8,
			0xc287aa16, 0x977b0099, 0xb82351cf, 0x5a8c32a6, 0x2f0c5d7e, 0x4260b8b6, 0xd3d995d7, 0x37683fad,
			0x1d491d8e, 0x3180818c, 0xc21e02c8, 0x41b6a86c, 0x8d3b41e8, 0x30e98636, 0xcb7bf2c9, 0x00000000,
		},
		{
			0x3258feba, 0xd8937c04, 0x8e4069e6, 0x39c12ded, 0x0207833d, 0x39e88654, 0x8d825a46, 0xadb8edd6,
			0x9fd2f5c9, 0xe662f026, 0x71f8efae, 0x03704877, 0xa6ee2efe, 0x7ebfcbb5, 0x25a49243, 0xaddb7704,
			0x5b2219b9, 0xb6206ae0, 0xf10a8a21, 0x747e9361, 0x648457c7, 0x015ea8a2, 0x75a04b06, 0x85882967,
			0x1e95b917, 0x88d349eb, 0x9f9c16ef, 0x4baea424, 0x9edd4d23, 0x2f842f3c, 0x1feddddb, 0x1785bca3,
			0xcb3981d6, 0xf1461db6, 0xc8d04b7d, 0x8358bb7f, 0x7c5b9149, 0x4d3e658b, 0x11134d5b, 0x88a65bb3,
			0x982dc3ea, 0xaaa5d5bb, 0x8e5ed0b0, 0xf6191382, 0xc8e226a0, 0xa7096061, 0x97f62b19, 0x218c4d3c,
			0xc33b9b15, 0xe2f31f6e, 0x5989d077, 0x153bc7bb, 0x148e2ca7, 0x464fd9d2, 0xc37b2916, 0x3475c347,
			0xbaacc83a, 0xddbaa9cc, 0xe886844c, 0x00ef1fc1, 0x0d20aaef, 0xcb592fbd, 0xa7ae62c6, 0x026b62e7,
			0xd2536545, 0x289df483, 0x1817eabb, 0xd728b88b, 0xb0981a2b, 0x577854a8, 0xda9d023b, 0xf88660c4,
			0x3f8a1fb8, 0x2ca76d84, 0x32023ce9, 0xfc12dd20, 0x5b4ce427, 0xd4605bbd, 0xd9d72793, 0x5bd435b0,
			0x8f1c3a85, 0x3c05a3ac, 0x3d89f551, 0x3407380d, 0x4962777b, 0xd57b8743, 0xf3bfc5da, 0xd230fe1d,
			0x4328834a, 0x47dc38d9, 0xa6fe15f5, 0x259938c9, 0xabca747d, 0xc6b9adf7, 0xd217f6e5, 0x5b47d33d,
			0x24669bc5, 0xd2a9afb6, 0x040e4e04, 0x95af0c92, 0x86d7ee65, 0x964b2e2d, 0x6636f818, 0x9e8444fc,
			0x31a92680, 0x04f81425, 0x321ca337, 0x14cbe230, 0x160b8e39, 0x5efdb275, 0x84f1baf1, 0xc9334f76,
			0xc64fd9be, 0xb5298e6d, 0xf7ecc211, 0xb86bd754, 0xa6d0c12d, 0x7a9a9696, 0xc9b7366e, 0xe44f3421,
			0x30ff8db3, 0xddc2ce45, 0x457dd55d, 0x00716d63, 0x5ba29ede, 0x7f83a1c5, 0xe74313db, 0xc2528417,
			0xb21b8547, 0xbd48d5b7, 0xe83babd7, 0x1adc6381, 0x8ec13d4d, 0xfbc2322f, 0x3548e0c4, 0x831ad044,
			0x1d63a3d9, 0x77d43ad8, 0x74d41266, 0xc57e6dea, 0xa03d1455, 0x7d9c352c, 0x4d183fec, 0x1829025f,
			0x55313947, 0x6dc38f8c, 0x156dbc2c, 0x66a06c59, 0x9b0f7f2c, 0x0f9ea19f, 0x201bf421, 0x85a0fc23,
			0xc26843e9, 0x40d93676, 0x0b3ceae5, 0x72a99830, 0x1d3ea234, 0x00dee960, 0xbf93ba28, 0xf0816c96,
			0x6eba232f, 0xcd3af6cc, 0xff74aa7a, 0x93f3af63, 0xb991b8ac, 0x26039d38, 0xf161fafa, 0x400dc659,
			0x0107e18a, 0x5594923b, 0x6f10f1e8, 0x06319061, 0x257a3fc6, 0x760c7024, 0x32b5c704, 0x43532f88,
			0x1f377604, 0xc91801e4, 0x52489271, 0x3edce0b2, 0xf43262f3, 0xfdeef5b9, 0xc8a15f8d, 0x4c23c8b9,
			0x858bffe0, 0xe02800d0, 0xd79bce6d, 0x4212cfc0, 0xe62b86a6, 0x486607a8, 0x1e86510a, 0xeb8c6e5f,
			0xd289feac, 0x5cd2f2e3, 0x927d3a68, 0x6097d5b1, 0xfd44b3af, 0xb1384d14, 0x9d4f55a0, 0xf67aef72,
			0x21fe0882, 0x8172deb4, 0x14979e9b, 0xf790cc29, 0xec60f6dd, 0x1c9b47b9, 0x268a1475, 0xf25c4a59,
			0xbcb36a93, 0x45433c9e, 0xac3e2eb7, 0xee09337b, 0x0f81d18c, 0x2c894ba9, 0x7443db9e, 0xdb6f2db3,
			0xc1372305, 0x04582e0c, 0xa9892533, 0xc505eeb5, 0x7a01397c, 0x0bf08540, 0x7a0e9204, 0x7aa41714,
			0x9797e644, 0xdc05b3f3, 0x39babec1, 0x94a8989a, 0x4ae82dae, 0xc8a8ce9e, 0x4f51bdad, 0x8ce75849,
			0xb9c4bafa, 0xf69a7b14, 0xe1e90f36, 0x3778191c, 0x333fcea7, 0xfd4eb4b7, 0xe956c9ec, 0x4ea0d78c,
			0xf08450b5, 0xa84db861, 0x7c591fd9, 0xa704f92a, 0xf0ba0404, 0x12c9d61f, 0x93f08d28, 0xc294c601,
			0x3bcb6cdf, 0x1281548f, 0x4b132c5f, 0xc083e363, 0xd59ded83, 0xcacf5d7e, 0x4558ba39, 0x557dd949,
			0x15bc7020, 0x8b96071c, 0x683f8f1e, 0xdd3304c2, 0xf3c16e46, 0xc61b3e2b, 0x9f2fcfc7, 0x8d6ef8cb,
			0x8542bd25, 0x5e2a1399, 0x35887504, 0xba2e59e8, 0xcbd7c845, 0xee421e17, 0xf5fd1b3e, 0x4f58def2,
			0x5d800efc, 0x4ee19b77, 0x1607622e, 0x7bf7be72, 0x4c45ba81, 0x770fa064, 0xbffe8f00, 0x55e1f302,
			0x7a637f4d, 0x81e4c3df, 0x6d5db595, 0x86a2ae26, 0x8c364074, 0xa5e96724, 0x8fc59af9, 0x0c4bc874,
			0x1126a69c, 0xa867e92c, 0xcb5b48fd, 0xf9d8b6d0, 0x82535acd, 0xc3f31e62, 0x8b245f44, 0x24cbe855,
			0xa0fcb191, 0xc1ff9848, 0x3f0f6126, 0xad3ad7f5, 0x69518bca, 0x287ee2c8, 0xd01fadf9, 0x155e2988,
			0xe054031b, 0x10a0da36, 0xe4608540, 0x2d65571f, 0x017abd3d, 0xd797daa3, 0xc2245c10, 0xebed72b3,
			0xab2df6b1, 0xea690f6e, 0x9808bbc9, 0x9d33e264, 0x0383c885, 0x8aca94e3, 0x8e1f031c, 0xa533c119,
			0xfc8a5c5e, 0xef17866d, 0xf4cd12c3, 0xb09fef5b, 0x7b8da2f2, 0x5bbc530a, 0x0daa4abd, 0x2f2c16a3,
			0x8358e3b0, 0xfcf94da2, 0x14eac4a3, 0x8ddb5b8d, 0xd323aeee, 0x24d786a0, 0x9f2b5fe9, 0xb5ef893d,
			0xf41aa60b, 0xf92f4f30, 0xd68f3d4b, 0x66f85a18, 0x0c292059, 0x044bc5c0, 0x4b19e6dc, 0x7b4bc6c2,
			0xdfc33f13, 0xc9a26f6c, 0x215a67a7, 0x33188610, 0x3e065792, 0xc68d8e75, 0xf0162dff, 0x7385d69f,
			0x80816682, 0x68ecd7df, 0x302a045f, 0x771ba51c, 0x75deb9ee, 0x0e5ae236, 0x4bc7513b, 0xbee8acfb,
			0xc8ce7c39, 0x60e3b7be, 0x83d90c75, 0x27007f7b, 0x17ce6203, 0x242e2e9b, 0xa4685835, 0xd8af999a,
			0xe7e0cf30, 0xca9eccbc, 0x04d3a390, 0xc3744d91, 0x648568bb, 0x8d33ec2a, 0x1b028810, 0xa58512be,
			0xaa2d53a8, 0x3a19a160, 0xa89e25b6, 0xeb6d3af1, 0x925f7891, 0xcaf32c71, 0xedff054b, 0xd4d471c8,
			0x323fe589, 0x5dcbc8d4, 0x8c27f620, 0x2b2166fa, 0x2c2bcbb0, 0x5d062b81, 0xf0882648, 0xe586b987,
			0x2a27b4c8, 0xdde815f9, 0xa94c4c23, 0x49d5ac8c, 0x47a924e4, 0x43586bb9, 0xd79c21a3, 0x3aa229d3,
			0x42197172, 0x1884a6bf, 0xb16f5e74, 0x7b43a66c, 0x155b6665, 0x0111876e, 0x4101dd4b, 0x38f27e31,
			0x1c1bdc41, 0x07a59572, 0xe83fcb83, 0x3ad8001d, 0x9124cb0c, 0x16bf0da6, 0xc96eb822, 0xb7ad2862,
			0xe945d849, 0x3d7e7d12, 0x15e155a9, 0xb81d2817, 0x3421ef48, 0xfacb15ef, 0x05e60d04, 0x462be7e3,
			0x2b2bb92e, 0x67d3b21e, 0x568acf32, 0xa4f0d293, 0x3105ff29, 0x3a91d2d4, 0xd567e9cc, 0x860be61f,
			0xfd80124f, 0xcedf6bf0, 0x9b5dfd8a, 0x7352ecfb, 0xfac0fec4, 0x6ea06db8, 0x9eee5f89, 0x820de0fa,
			0x1526c2f2, 0xa16e571d, 0x2bd3f51c, 0xb2006709, 0x5ec0e9a3, 0x97e5eb56, 0x08c76ff9, 0xcc4f4987,
			0xbcf58a0c, 0xcd332862, 0x22cbcc5f, 0xbfef531f, 0x5f390773, 0xf051bfbf, 0x2f315675, 0xf0da9ee4,
			0x1ab6f05a, 0xf2280cfb, 0x331aa19b, 0xcc10e642, 0xcd11b4ee, 0xf293b27f, 0x1c064612, 0xf9c7c7aa,
			0x8c38a681, 0x156258ca, 0x84b097a8, 0x5bf3274e, 0x9510f4bd, 0x8813b21a, 0xbd990add, 0xa7999330,
			0x36781e11, 0x1b095ce5, 0x521dc60a, 0xd2baba1b, 0x8fdb8ea3, 0x15bcde21, 0x8b9e5bd5, 0xbffcc516,
			0x9a4b056d, 0xe8fdd801, 0x5e6bb0a2, 0x6c278aab, 0x450aa381, 0xa0847d00, 0xae0b8c06, 0x8d9e451f,
			0x4501f0f0, 0x51a1a078, 0x0ad95597, 0x4d2b09c9, 0x7d4e1f85, 0xc8eef79d, 0x013a2f23, 0xdc2268bf,
			0x780cbd38, 0x736da212, 0xaca81232, 0xa46fc19a, 0xeef374b2, 0x7819ce1b, 0x15599e58, 0x23095edd,
			0x389cbb32, 0x6ebd4245, 0x5a396303, 0xea9bbf39, 0x784190dc, 0x1811ad29, 0x216321dd, 0x4a34f006,
			0x59f0ecce, 0xf360aa23, 0x037d968a, 0x0ae1ddb8, 0x16d68187, 0xc4bed6c8, 0x8a4ffde3, 0xf62249dd,
			0xb56981bf, 0x964ad53b, 0x3cf471e0, 0x55b090a9, 0x4f293074, 0x74af8769, 0x0c4d10af, 0x5b0e879e,
			0xb07310b0, 0xbddeb3d3, 0xfec07bfa, 0xf39149b9, 0xf7a7b409, 0x5723bb86, 0xdc71dd5f, 0x96346a4a,
			0xb90f080e, 0x651765ed, 0x50075a6f, 0x1d96df8f, 0x04fb478b, 0xbf9b7ba7, 0xba2bafde, 0x053df478,
			0xaf50f1e9, 0xe8329b15, 0x789233c5, 0xfb8877d6, 0x93bb2376, 0x8162132c, 0xf83c745f, 0xf5129254,
			0x137066ea, 0x2f761ae3, 0x2f98fca4, 0x54c75513, 0xf0caa7bc, 0xdd7a889b, 0x9ad9fc24, 0x940d7d43,
			0xb8b4c135, 0xbc4e4a61, 0x08a376fb, 0x09a2f659, 0x0b26d97c, 0x4f4bc0d7, 0x42950361, 0x3b14385b,
			0x03190b7a, 0xa46f3410, 0x84ec6f96, 0x76eb3c05, 0xe47722e1, 0xfdd4eb02, 0xc65bdebc, 0xdddfe6fb,
			0xd2494419, 0x18c4a7d5, 0x967258a1, 0x75296935, 0xb86a7c67, 0x3d8291a6, 0x5e1d84a2, 0x8b88ce6e,
			0x1ecdd0a3, 0x79bbf35c, 0xf05f26df, 0x47b3ff4a, 0x25f43251, 0x63568c30, 0xc1ddddcc, 0xd30ec44c,
			0x99ff266e, 0xdaa67d34, 0x07997aec, 0xbae3dccc, 0xc7cb5119, 0x3b54039f, 0x1ede3fdd, 0x83087efe,
			0x92206467, 0x37bcf7bb, 0x3a3b4ff6, 0xf9a16ecf, 0xdaf4a974, 0x32cc97a1, 0x0deb8a77, 0xf5e1221b,
			0xf22d6c19, 0x3e4f4aef, 0xf9443a4e, 0x61190fc1, 0x33d8dd8f, 0xd4514e2a, 0xc0c773cb, 0xb6f00412,
			0x7c9d6a04, 0x78d9d27d, 0xd539631c, 0x30709029, 0xfeb9a4a3, 0xbb2af295, 0xe01e64b0, 0x00000000,
		},
		{
			0x08029c83, 0x4b4d33cd, 0x3f7ad36e, 0x7562280f, 0x2397f889, 0xac5678ef, 0x29c2bbff, 0x13a128be,
			0xe5886241, 0x08699643, 0x980a43cb, 0x18d4424a, 0xe02bd56d, 0xfc8d783d, 0xafa33a76, 0x86c7cf45,
			0xc2f3c1a7, 0x6360d171, 0x8dc1fe93, 0x539dfa30, 0xfa7be3d2, 0xe7930d22, 0x001f5d80, 0xc00eb604,
			0x1afbab4b, 0xc971d846, 0xbf4c6c8b, 0xc3e81306, 0xbc6e5d38, 0x2814904f, 0xfb3900e3, 0xfc2c475c,
			0x6cdf1de6, 0x810a2e2f, 0x30229442, 0xdc24e045, 0x1d160bd2, 0xb1243f11, 0x73445a66, 0x3f887bce,
			0xfe111361, 0xac052f4a, 0x97782c82, 0x04204694, 0x71c01068, 0xcd4aefad, 0xa65d4c89, 0xd59b32da,
			0xb5fcf2dd, 0xbb7d0229, 0xf2c3fb98, 0xcb5accf0, 0x39efe4e8, 0xd330549a, 0x03ae1d89, 0x1f1c994e,
			0x29063638, 0xb44fca91, 0x1f80be7a, 0x7fae23f9, 0x81a65bd7, 0xa3b3396d, 0x1c9e5551, 0x9f4c99a5,
			0xfcd9c225, 0xb25fda6a, 0xa04bae1e, 0x00d21466, 0xf5b0f2e7, 0xf11a489d, 0x8e54a9ab, 0xc39a8306,
			0xd2499528, 0xe300b0ce, 0xa8aaaf45, 0x2945394d, 0xb1b03a4f, 0x32b80503, 0x9d4439d2, 0xf8bd2ad8,
			0xe07d1424, 0x5db2a0ad, 0x61d5d784, 0xe0c2b968, 0x8bce6de0, 0x0ca08276, 0xaf38a172, 0x48ad0d52,
			0x2fe9f173, 0xff8d1c18, 0xc25768c6, 0x9a417bd0, 0x146e4b9c, 0xb66ce44a, 0xefe44ff4, 0xa117e88a,
			0xbb97a468, 0x033a5d86, 0xce2496b5, 0x5d9f2c95, 0xf0af3594, 0xd1a5585e, 0x12a1f1f0, 0x2cf2cbb0,
			0x3115e932, 0x86fdf69a, 0xb9e4f6c3, 0x2395799e, 0xc01d2413, 0x367ce43c, 0x55c8bd1b, 0xc9e12aa9,
			0xdb60fb1c, 0x16150924, 0x1b4b7761, 0x9440f7fd, 0x77cfcc7d, 0xb7f70b5b, 0x5dee18b6, 0x7ac0e15f,
			0xbb8febcf, 0x2c02e33f, 0x3b98cc2e, 0xd6421904, 0x664905ea, 0x9f9f371d, 0x766c8872, 0x5c6556b3,
			0xe5e9663d, 0xde348b65, 0x8ffc3b77, 0xdcf76d5f, 0xe44d1f42, 0xdabc8f3c, 0x279b1e74, 0x62740252,
			0x12eef47d, 0xa7919f76, 0xf1f4cfc8, 0xed82e3a1, 0x9af7191e, 0x1a3f3cc3, 0xb6bc1869, 0x0efa46a7,
			0x306b1b6a, 0x88483040, 0x97adfc50, 0x8bc77f59, 0x4135f9c5, 0x69e5daf4, 0xdfc02490, 0xdcb156d0,
			0x705b9419, 0x16b07b65, 0x6a0b4738, 0xa49fdb0f, 0xe100a585, 0x1750e875, 0xda0e0c13, 0x511d4264,
			0x59da4e45, 0x604232b2, 0x39bb887d, 0xd27dcdf0, 0xbb9001c7, 0xb39cecc2, 0x928ea62c, 0xda0d010b,
			0xd42b47da, 0xf85a9cc0, 0xebff520e, 0xa1bf2231, 0x7675b491, 0xfc69ab6b, 0x43c9c86c, 0x714674e4,
			0x00195d80, 0x551c0439, 0xbe9e38c4, 0x350f88b8, 0x4b5aacea, 0xe5121c86, 0x91c028cf, 0xfc835643,
			0x79cad034, 0x71636bdf, 0x45d651bf, 0xe5b53082, 0x0f0551ba, 0xb5f13148, 0xf875bf72, 0xa319cfdc,
			0x4808237f, 0xd94b4eef, 0xcb90fe8c, 0xe240a19f, 0x91fc7616, 0xc242228c, 0xf18cebe6, 0x738d2627,
			0xb9fcf718, 0x455f5679, 0x42a510fa, 0xb6929955, 0xd8ed9c16, 0xc8f76b84, 0x677242ba, 0x1d42da84,
			0x99a45743, 0xa97cee46, 0x78b5fd22, 0x2884a958, 0x39ee95ce, 0xd5176ed8, 0xac098f98, 0xe30a37aa,
			0x36bf9735, 0xa1abc713, 0x8acfd46f, 0x3215843a, 0x7ccae88d, 0x97e92629, 0x01e6b79f, 0xf4acc7ba,
			0x972934eb, 0x4baf8983, 0xb840ebd0, 0x04914b27, 0x2604bedc, 0x82e8256e, 0x639de96a, 0x09db40d4,
			0x3a28b15b, 0xa3d8bcc0, 0x63114e64, 0x11fd3c1c, 0x76a64b75, 0x553437dc, 0xa731393a, 0x34685a70,
			0x7915c72c, 0xa68dc808, 0x797502f1, 0xd00ac1fc, 0x6089bd85, 0x88b0c348, 0x514d6f39, 0x12469e84,
			0xb98e8c6c, 0x77bda302, 0xe84e6098, 0x8c0c6c4b, 0xe023b6da, 0xd9549d10, 0x48a997fd, 0x87f89c76,
			0xd3f20e20, 0x15e30ee9, 0xb17ab6de, 0xc6ea913d, 0x8fb12c04, 0x1d06159c, 0x332839f7, 0x7b5ee422,
			0xb9c40f05, 0xf3af6a09, 0x6fe3bb84, 0xbd3cdfce, 0xdff568a7, 0x6684a247, 0xa8371115, 0x1939ee4c,
			0xfdfc3a87, 0x59e5d721, 0x39cc5c6e, 0xa8cd6825, 0x0ee4abae, 0x1a9d6237, 0x182f5d1f, 0xb597b2b0,
			0x595beced, 0x55ba4d12, 0x0f7be6de, 0x7d161f8f, 0xb269e938, 0x2f5a79d0, 0x51672bb2, 0x2b110754,
			0xd975c71d, 0xa7c75ca4, 0x6661964f, 0x8b2d2ce1, 0xd1fb2d27, 0x0d73722b, 0x95dd0a5a, 0x3d5de9da,
			0x8864fb3b, 0x99938054, 0x284f0515, 0xe95e1760, 0xecc9ab8c, 0x4c8db358, 0xc56b5201, 0xcc12bb93,
			0x6037fbbe, 0x02760836, 0xfab2f39c, 0xb92a0eef, 0xc9e3c2cd, 0x2feb9ebb, 0x34e099fc, 0x49ad6540,
			0x59b55507, 0x2d1dc260, 0x3b339de1, 0xbb8a9ebc, 0xb27e5810, 0x51b54c28, 0xc971f87e, 0x8d4e8496,
			0x6279d635, 0xe7676061, 0x8ebf43b1, 0x63ce2fb8, 0x437d9683, 0x8012f7d9, 0x5090a73b, 0x13f9d98f,
			0x9fd57dca, 0xcee18b57, 0x77fcac90, 0x9d5d2a90, 0xf2d2e3f7, 0xc4a9b3d0, 0x3ba6497c, 0x9743602e,
			0x00e919a2, 0x2d34671d, 0xe54be274, 0x9f96a79e, 0x45ef2f0c, 0x60ad07dd, 0x9be68390, 0x1de4d2b2,
			0xd576b5a3, 0x888c3df5, 0x432b7d90, 0xd368f14e, 0x7f7550f2, 0x34360481, 0x9c785eb5, 0xaff5a831,
			0x89d9b2cc, 0x6a938c6a, 0x6c989be3, 0x38a70832, 0x4f409ed6, 0x7565f763, 0x31e7e486, 0x33852d85,
			0xf6fa1583, 0xd3ac0e57, 0xb967968e, 0x4f379446, 0x55f9fade, 0xf3fc7a65, 0xeaf7856d, 0xb3c791d6,
			0x6121e96b, 0x9e24afa5, 0x3238711f, 0x0a60f8f7, 0xf08bc536, 0xd9eb7601, 0x5b86bbae, 0xdda81ba2,
			0x1fd16cba, 0xaa662b56, 0x5d801295, 0xd8af3259, 0x621ece8b, 0x25b22566, 0xfc0d14f9, 0xb11803bf,
			0x8f989157, 0x6eb902d9, 0xbd41daae, 0x3df512a8, 0x354e9681, 0xc9925a10, 0x83ffec71, 0xa0389845,
			0xdc7b5cf3, 0xc64a036d, 0xda3f12ad, 0x00c74b4b, 0xc1fbbcae, 0x8b5ba9b8, 0x31f4258e, 0xc9710955,
			0xf3033fb8, 0xef8e12de, 0xd6f3149d, 0xd89dfb99, 0x23c08d56, 0xa2f37f7e, 0xbf244b9a, 0x277a04f7,
			0xd0bb6abf, 0x115a29b7, 0xcb8f524b, 0xa74fb833, 0xea49148a, 0x7879db75, 0xeba53529, 0xeed049e4,
			0xb677697d, 0x591cb53d, 0x27f49719, 0x1e13bd90, 0x6279bb12, 0x08518f43, 0x4f9cb40d, 0x24ad64cd,
			0xb6432b87, 0xe20719c2, 0x9c83ea56, 0x9b5f9d1b, 0xe531e82a, 0x6bbfa666, 0xcf587d84, 0xe94823b5,
			0x2d8bf1ba, 0x075f9d8e, 0x1b6c7374, 0xa3a2f3bc, 0xab5f49a9, 0x03c61392, 0x0c43dc75, 0x671d9033,
			0x1a0d849f, 0x20874759, 0xd8905686, 0x04a8407a, 0x70a7fd2f, 0xb8eb6f31, 0x78d970dd, 0x145650f5,
			0x255faa31, 0x99be490c, 0x0624b47c, 0x1cedfac5, 0xfae551d6, 0x751c6c64, 0x6d9d8f9c, 0x087e73b0,
			0x693d5a7d, 0x2e762cbb, 0xdf339239, 0x554573c1, 0x3355c6f3, 0x06c0f9c3, 0xb7238b28, 0x4c3bd729,
			0x1da31985, 0x7200dcc1, 0xe1c44583, 0xd1d7d3b9, 0xdfe38d7a, 0x6029b3b8, 0x71fd88a0, 0xcc9c751f,
			0x6116ade7, 0x1e6c2c29, 0x71a059c6, 0x03d58249, 0x3da3763e, 0xb19b616e, 0xd89ebcdb, 0xade57b7e,
			0xe112a6f8, 0x990b80f3, 0x369799bb, 0x17f022b1, 0x0cd629b4, 0xc8d8ca87, 0xc19e1d18, 0x22168f1f,
			0x06e04c77, 0x6a130de1, 0x3e3a0a43, 0x78d2fd5f, 0x31d78106, 0xbf26f746, 0xabb1df92, 0xbdfaf5eb,
			0x7e6e0663, 0xf102c829, 0x217928d8, 0xc042ca5a, 0x7c330352, 0xbf3a01a7, 0xf0b4d986, 0x7d58d947,
			0xe8875119, 0xa1271cb9, 0x832b1d61, 0x910bd911, 0xa62ae9e9, 0x0db9686a, 0xdb374d08, 0x54729777,
			0x233164f3, 0x8df5edd7, 0x3b3dc902, 0xa7a50a9c, 0xa0066f73, 0xa3313cc0, 0x5b8608d9, 0x2627a795,
			0x02db0c83, 0xea94b9bb, 0xca8ccd12, 0xa6971262, 0xc8393d56, 0x7d596c8b, 0x00dac55b, 0x839460c0,
			0xfc35d1ab, 0xb15f24f0, 0x920ffa22, 0x1e5a6094, 0xab6c507b, 0x7471e351, 0xc482279c, 0x00668ea0,
			0xde2d4288, 0x63e819cc, 0x18e6bff0, 0xa921ff47, 0x4c9676d0, 0xece524c8, 0x7d41abb6, 0x8d090d89,
			0x16885ace, 0x53cfa15a, 0x57c5b8cc, 0x44dab483, 0x4c6ca004, 0x0a62a838, 0x07edbe8e, 0xfe855744,
			0xa4c41a76, 0xb2e237bc, 0x4440a1ab, 0x9dec0fde, 0xd4e1a75c, 0x23aeeecf, 0x5fbf2588, 0xd0287588,
			0xc4328b25, 0x17dc023b, 0xf5fb8fc0, 0x6220b4a8, 0x605f7f17, 0xf0d06899, 0x4fba6b41, 0xbc2d9d72,
			0x4a258aa9, 0xda770eda, 0xe81786a7, 0xcf39aa01, 0x41192b0f, 0xa29e8dee, 0xc0ebf618, 0x6beab417,
			0x9e927635, 0x4974f294, 0x5c499e71, 0xe45fbb02, 0x68f6ecca, 0x8c3c836f, 0x9e203a42, 0x666a8926,
			0x769cb04f, 0x9de688be, 0xc4ae9050, 0x1619b69e, 0x78f36618, 0x892f7aa9, 0x09dada34, 0xc59c4e20,
			0xae076cb7, 0x23a38ea4, 0xc56f353c, 0x4c73fddb, 0x4577da38, 0x91ed9899, 0x80a9e911, 0x381878f5,
			0xa1d509bb, 0x9af5905a, 0xda69a732, 0x919ccd0c, 0xa6eab758, 0x8c874c70, 0xb4dd0fb5, 0xbcddc885,
			0xe2fb6fe0, 0x7317b9dc, 0x26358660, 0xde93c4a8, 0x887e3763, 0xbd5c8426, 0x0afe66e2, 0xd4155d03,
			0xd9465523, 0xf8fc53af, 0x532b5089, 0x32511fda, 0xb3281eb6, 0x454dd172, 0xbc54bdaa, 0x00000001,
		},
		{
			0x673cb26f, 0x3b8bc421, 0xb898ffe6, 0x33d7665e, 0x85f5da07, 0xef96ba22, 0x701b4f10, 0x781fd071,
			0x851d7e6c, 0xe894161a, 0x205e0e57, 0x64acd465, 0x1abcab4d, 0x7da52371, 0xa5882aca, 0x84c367a5,
			0x163a8271, 0x2cab4925, 0x64f3c676, 0x437004cd, 0x3618f5ab, 0x5bce6ca3, 0x245cda5f, 0xb95b1ca3,
			0x72790442, 0xc2c86b91, 0x31439863, 0x21a0e150, 0x9b37143f, 0x06956c71, 0x45d60333, 0x97325a69,
			0x689bd79e, 0x547ee2c3, 0xe71d4087, 0x19f95b18, 0x45fda987, 0x64a1bbfb, 0x0ed5bdea, 0x01fc64e8,
			0x44e85fbe, 0xb2f9b791, 0x3851777e, 0x028c6353, 0x8dae5453, 0x9a029295, 0xf645c188, 0x226725ca,
			0x59599263, 0xab488542, 0xe6ee5410, 0xeeaf8af8, 0x62fbd70f, 0x8b9958a7, 0xe5c44456, 0x44b101e0,
			0x017ea226, 0xf6d4a747, 0x892db7b9, 0xf82d8328, 0xea11eeaa, 0xf87d5e15, 0xb35e8bcd, 0x76bf1a36,
			0x376e7cb2, 0x3479c216, 0xc4440402, 0xfb4111c5, 0x3bedd1b9, 0x9120e5d6, 0xb6066719, 0x1519ee87,
			0xf2b3e3fc, 0x59de5f34, 0x88f05ed1, 0x830b6049, 0xb7b04b1b, 0x52905b27, 0xa3c7b66c, 0x6f8ec088,
			0x810f33a3, 0xe57d36ea, 0x4a119d13, 0x7fc70511, 0xfdfd35ff, 0xd056adf6, 0xc961f459, 0x9ef46996,
			0x1e91a404, 0x14485859, 0x12c73532, 0x12653d7e, 0xcb3ce254, 0x4e535a55, 0xff9dd491, 0x68b40e4f,
			0x88885871, 0x5c5d3dfe, 0x6eaba5c1, 0xcec2cd62, 0x1bdf1ae9, 0x6239d50c, 0x7a2c000c, 0xa9e380f5,
			0x847d3fea, 0xffc14d87, 0x025d83ea, 0x150b813f, 0x81702ce9, 0xe430f0f9, 0x18e18020, 0xf91324df,
			0x699f0c33, 0x4a66e0ef, 0x6d59c442, 0x0e80709e, 0xffef0868, 0x16f81427, 0x830962e0, 0xe6a77c39,
			0xf2887030, 0x28658738, 0x6f14ca37, 0xf2fa2fb4, 0xa85b94e0, 0x75e46688, 0x27086394, 0x06d3671c,
			0x0c980ec3, 0xea107a16, 0x225505be, 0xb44cdda1, 0x69315fc1, 0x77f25341, 0x80b1ca37, 0x9c9adcd5,
			0x3056c493, 0x4ed88a93, 0x40a20de2, 0x8624d1a5, 0xb8701349, 0xf1819456, 0x1447e464, 0x78e8e704,
			0x300775fd, 0x543cd864, 0xcdc0b9aa, 0x8c4b868d, 0xb543af54, 0x742a2043, 0x0a0d1789, 0xc2805c1c,
			0x9f422f3d, 0x20af73ae, 0x06b7a6af, 0x1e1993e1, 0x6f65c925, 0x4e0c8405, 0x18795698, 0x1a284e28,
			0x53bfb900, 0x5acfa15d, 0x7680ce13, 0x158b2a1b, 0x4b4d976d, 0x9fa68d13, 0x88335fef, 0xc82326c3,
			0xdc61e1f1, 0x2c5f18fe, 0x6d1d0125, 0x494461e2, 0x81bcae04, 0x7e8fd5ae, 0xfcf2f5d1, 0x4840c123,
			0x8810cc87, 0x81fc0e35, 0x25dbb70b, 0x2a3d1e2d, 0x37b03b88, 0xc541ed6e, 0x3ef14568, 0x58d375b5,
			0xdab36e90, 0xb2920fb1, 0xb082c1ea, 0x8901d894, 0xb23b8e90, 0xb100e66c, 0x972b9321, 0x3fddff82,
			0x4ef70ed3, 0xc8c9e826, 0x4003505c, 0x3a247b37, 0x622d5377, 0x3da25b34, 0x34bdf1cf, 0x800818b1,
			0x47e30224, 0x2a094565, 0xff4879d7, 0x0334f1af, 0x5b06f122, 0x79afd2a8, 0x2c91cd10, 0x4ef4f2d5,
			0x49759bcd, 0x2c1b118d, 0xd03c6cde, 0xdca8842f, 0xa97bab71, 0xee55b7f9, 0x6a62134d, 0x76d6e979,
			0x45962e55, 0x47f7fbe2, 0x9c989db9, 0xf2043acd, 0xea5328d8, 0x75851e93, 0xe0714a9f, 0x30ef1bbd,
			0xa7916efe, 0x6f4625b7, 0xcc1b8689, 0x57d3b971, 0xff6eae68, 0xfcddf0b5, 0x95be990e, 0x60ca0cc4,
			0xdbd3aaf6, 0xc1286c90, 0xb38f337b, 0x3615456d, 0xe8797da9, 0xf0650a23, 0x536f2bc0, 0x63a3b77b,
			0xc9dc587d, 0x00b5eda6, 0xf6a92103, 0x4b3ffb16, 0xf394561c, 0x8bfc7214, 0x2dcad16a, 0xf9b5066e,
			0xe0e124b5, 0x4ff8c7b3, 0xee22c051, 0x3c6365f5, 0x8e183b48, 0x239341a4, 0xb9752b2a, 0xffafad50,
			0x1f086c54, 0x95983c5a, 0xfd803261, 0xf9024114, 0xa6bcd7be, 0xc9cbb6e8, 0x621d4877, 0x0ba78b1b,
			0x56ecae44, 0x85af542b, 0x12f0ba44, 0xd9390d0e, 0x6c1074d9, 0xa408297e, 0x23eb717a, 0x3fa255d3,
			0x1b575db2, 0xaa57e89e, 0xe90f99ae, 0xb23cd12f, 0x1b30c8d7, 0xc5b28fc2, 0x51d77917, 0x749407d7,
			0xf973d603, 0xe7e0cd06, 0x17f4824e, 0x149272e9, 0x7f2588f8, 0xe428d78d, 0xda31f233, 0xe253cc87,
			0x9c2e0cb3, 0xc38294b6, 0x81c9c81a, 0xbd2fcf42, 0x0ab96805, 0xdd001c03, 0x88608c0f, 0xcf34285f,
			0xfc392194, 0x100f11e1, 0x22ebbafc, 0x3de95daf, 0x2554fd3c, 0xa574a188, 0x053d185c, 0xe9c34e6d,
			0x065b430e, 0x8a968d78, 0x910f75b9, 0x1ae257e8, 0xf5ff96b0, 0x6f63c6c4, 0x578bf048, 0x472c52a6,
			0x241b6554, 0x831d189a, 0x1132b813, 0xdc3c101f, 0x48e2a27c, 0xc7561a1a, 0x54ab01f9, 0xba9d579c,
			0xa48d0f41, 0xd5efdc2e, 0xb9dcdc7f, 0xba040c28, 0x900c6f08, 0x3b926e49, 0xba643b62, 0x79a0811a,
			0x327681f2, 0x96102540, 0x73ecb3b0, 0x64e925fd, 0x7eb6828e, 0x67e50a2e, 0x764c9cf2, 0xbed9f1d2,
			0x94553031, 0xefed3d3c, 0x6d4f6057, 0x9246e1c0, 0x325e0494, 0x8b635426, 0xd4590e66, 0x1a8f763f,
			0x92c57173, 0x372d3ee7, 0x8ef3fcef, 0xbcdee31f, 0xd1fa0021, 0xa6501a90, 0x07d13b93, 0xa8dfa4e9,
			0x32c2e1fa, 0x1a1b89cf, 0x78fd5a40, 0xb43a0896, 0xc174f679, 0xa3ca8250, 0xd1809102, 0x51ef2eba,
			0xab78eeba, 0xbb08bf03, 0x59315eea, 0xc4523dec, 0x9af1e62d, 0x83e2d995, 0xa06c64de, 0x1de4d6cf,
			0xa382ac47, 0xffe2924f, 0x037052e5, 0xb79fdb7d, 0xb897f207, 0x09caf542, 0x7ff089a7, 0x965236d1,
			0xa2a9aa1a, 0xd3d46933, 0x5395ee1f, 0x12774f25, 0xf3f24b68, 0xda3da7d5, 0x32fff34c, 0x244ecb67,
			0x705d84e9, 0xe08d2395, 0xcf0cddd1, 0x94b00e56, 0x84d234cb, 0x616a8699, 0xc00d021f, 0x3d7dc46d,
			0xbf49bc40, 0x368af2fc, 0x4c2acf2a, 0xbb7aaf64, 0x06fc1248, 0x6800be3b, 0xf6cefbaa, 0x01d597b8,
			0x27d2df0b, 0x9e61cc71, 0xf45c567e, 0x968e8094, 0xa9027701, 0x9ff14bba, 0xabb99396, 0x14eca2c3,
			0x156717b5, 0xf2d18a1b, 0xaa38afe7, 0xcaec6658, 0xe6b162fd, 0x8f4277de, 0xda386c76, 0xd5105527,
			0x82374bb9, 0x0391dfd3, 0xca3cc06d, 0xdcf22367, 0x5c20ba3c, 0xf2799a60, 0x74f45a0e, 0x921a0252,
			0x1fbe3192, 0x736666ad, 0x0df75f5f, 0xe9bc1237, 0x0229fe07, 0x6bff7c96, 0x6f14333d, 0x458e87b6,
			0x678dd7bd, 0x1f0e448a, 0xc04033e0, 0x0e3a07fc, 0xab7041df, 0x12830233, 0x4a877d59, 0xe0c040ec,
			0x4d7d28ec, 0x46bf3e67, 0x256dbbb3, 0x6a44d66e, 0xa8ccd848, 0xb8ca4a0b, 0x70876236, 0x2c4cd99e,
			0x88677f05, 0xf3d1258c, 0x1f193058, 0x3a9e0fcc, 0x1e5257c2, 0xbfee1171, 0xf4796c7f, 0x21ec1d46,
			0x090509a6, 0x4681e5c6, 0x4d73abbc, 0xb90cfa89, 0x84200a11, 0x83a588fb, 0x94384a73, 0x02977118,
			0x815da7bf, 0xfa17154b, 0x257ed6af, 0xf0e1bb3d, 0xb687cde8, 0x8f0fa9d9, 0x097e4757, 0x19d38671,
			0xf9c38313, 0xe88a7f5f, 0xb3ef4395, 0x3d6eb6b3, 0xd85e9b78, 0xc0d6e1f0, 0x59d04ac0, 0x45d88ca2,
			0xa3b47c6c, 0xf6dd99c6, 0x0616b0db, 0x39941166, 0x819eb3ef, 0xb7dca350, 0xee10982d, 0x7ee45c75,
			0x4ced81ef, 0xbebfb08b, 0x65718ee6, 0x2f55f6bb, 0x36117718, 0x94098749, 0x2cd61a77, 0x65e9ea25,
			0x5fe62ef1, 0x85b98e07, 0xa615545f, 0x85d26b70, 0x3dd5d6b9, 0xafe3f3f8, 0x7566c3a1, 0xbe83efaf,
			0xc878273f, 0xa293c6ec, 0x5f10d159, 0x7f77efcc, 0x862ed00a, 0x56309a6a, 0xc57a65b8, 0x19ad1da8,
			0xc9b56fce, 0x6667931f, 0xac5346b1, 0xc8d734e8, 0xa312c611, 0x501cd54f, 0xae4c2516, 0xdd28efc1,
			0xc190c6d6, 0x9d24d2f5, 0xc8ec9731, 0xacb47db8, 0xa65d584e, 0xa75823ab, 0xbba43c89, 0x6cfc111b,
			0x7c3fc3ca, 0xd8e6874f, 0x9fab4d49, 0xc6756600, 0xd02d8479, 0xa6e35fb0, 0xac0b8473, 0x98f67f1f,
			0x4faf727b, 0x7cd70cb8, 0x8e6a0300, 0x891a7859, 0xf5b7a77a, 0x9d1725b1, 0xf135b0d4, 0xbaca6ddd,
			0x39476ccc, 0xb6c1f882, 0x0caa435b, 0xe3ed774a, 0xf8957b62, 0xed6fcc5f, 0xbbf87442, 0xf24f656d,
			0xa20e9de3, 0x90852302, 0x487f260a, 0x3a41b7e2, 0x10e0cdbf, 0x79b8d3cd, 0xf2811ad9, 0x5ea2144c,
			0xa9343406, 0x7615c7fb, 0x94c6deff, 0xb4aee75b, 0x7e18cb83, 0xc39f0f7b, 0xae45425e, 0x5744f85d,
			0xc86176f5, 0x5c25a5cd, 0x714a9fff, 0x9605f467, 0xaa9ff072, 0xccbb93ca, 0xa7cb9377, 0x83e835a9,
			0xf2a18b4b, 0x4e7df2ab, 0x91ecc0ab, 0x12ee6a71, 0xda753680, 0xae2c9a08, 0x2c011ea2, 0xc963a9ee,
			0xaeffaf10, 0xa4f4ea8e, 0xc20a358a, 0x037cde8e, 0x2824fe68, 0x90d88df0, 0xc340cf3f, 0xd22be533,
			0x494f2a18, 0x6cfb2785, 0xea4877eb, 0x7500c715, 0x029964bb, 0xadd85955, 0xa2278b56, 0x70f577e3,
			0x420f6d27, 0xecaa5132, 0x996cd401, 0x6230e7e1, 0x8e219553, 0x39a1d697, 0x3f887365, 0xa0d3443c,
			0x4f1f8dc8, 0xfa878406, 0x11e49936, 0x85ae0b3a, 0x30c74481, 0xa909c546, 0x43f9d51e, 0x58dc2c12,
			0x5f507b4f, 0x71134f03, 0x2f014193, 0x89c647ed, 0xf6808ea1, 0x05ca138c, 0x9dc803bb, 0x00000001,
		},
		{
			0x37e75dfe, 0xba2f73e4, 0x74f564dd, 0xaf2e041e, 0xeb37f347, 0x95faebb5, 0xa0350d9d, 0xfc41fe5e,
			0x04713d9b, 0x5aa1e9cb, 0x6bdcace1, 0x0b9bd523, 0x85959e2c, 0xd5343a03, 0x55a0d26f, 0xe12b707e,
			0x5e310b58, 0xcd58abfc, 0x214ca9a2, 0x284e712a, 0xfc3e9852, 0xdafec99f, 0x2689ac65, 0xbc7ac5c6,
			0xec840d77, 0x89f36de4, 0x0cfc58d4, 0xd62382e3, 0x377d0d5a, 0x2acf1868, 0x7ff75577, 0xcd7016f4,
			0xd11ce006, 0x4375c19e, 0x9505ede3, 0xea0f060d, 0xbe4e82af, 0x91a07dba, 0x5996d675, 0xf547a608,
			0x711667c5, 0xfe54e9c0, 0x4b088be3, 0xe81b09e3, 0x57f730e8, 0xbda0b6c3, 0x19c76f35, 0xf3edfb8c,
			0x29a48cb5, 0xbcdbc2d8, 0xd293dcac, 0xba1c005c, 0xc791ebd3, 0x15371ecd, 0x9848fbd8, 0x0908847e,
			0x548fbd23, 0x7608f425, 0x508a0aaf, 0x9ce5ca16, 0x69a21853, 0xfb1b6a03, 0x33968579, 0x6b7eecbe,
			0x011862ff, 0x49fd1fa0, 0x12a794cc, 0x2d3ee034, 0x793e3d5d, 0x238332a5, 0xd443a13e, 0x08e1cca0,
			0x0a6e680f, 0xcab2f31f, 0x7371cdc2, 0xd4254ab6, 0x0c0e0a69, 0x35a2c7e7, 0x25aaab56, 0xa25de43f,
			0x5bd02a26, 0x253f2a37, 0x3047bffa, 0x08ca3d41, 0x36636104, 0x23b7f170, 0x9972133d, 0xebec4d7d,
			0x1664a543, 0x4b9d5822, 0x7084c31d, 0x8bc98a6f, 0x02f0b086, 0x15282165, 0x6d282d7b, 0xe10bc258,
			0xb29f7a58, 0x8311d1b5, 0x2492913d, 0x076f80e0, 0x9156738b, 0xca3d8271, 0x7338ab56, 0xbe7f2fdd,
			0x7abc473b, 0xa7c8e4b0, 0x3fe33dbf, 0x3ead9c17, 0x628ec76e, 0x41f05c12, 0xd63e0d34, 0xffb8b25b,
			0x892d61db, 0xdcee840e, 0x2da6438e, 0x0fc17536, 0x9dd34d3e, 0x5dd16f95, 0x9cd41018, 0xdd029560,
			0xa6aa8c0e, 0x9e02b3ec, 0x3dc3cc7c, 0x8aa9b3f5, 0x3e6d7723, 0xe0888d58, 0xc2ee5cb0, 0x77a134b8,
			0x5b40cb6f, 0xe0035f69, 0xd3806c0c, 0x04e68825, 0xc48afe0d, 0x26790293, 0x826fb6cf, 0x37a03a05,
			0x86ce2fad, 0x0d8f1f34, 0xf1e0f1e8, 0xbb093467, 0x63188a60, 0x98daaf5d, 0xf94e65b0, 0x8b150a7f,
			0xba5e7696, 0x3a3c78f1, 0x83112832, 0x46afca79, 0x4cec6a6a, 0x358be47b, 0x5487d76e, 0xa3adcc15,
			0xac2b34a0, 0xb4f01390, 0xd266f3fc, 0xe174b361, 0xe302203b, 0x00f0d446, 0x052dd8db, 0xcebf52b9,
			0x51571c58, 0x431dcdd3, 0x49eddcc3, 0xe80fc8e5, 0x8d173e51, 0x116a683d, 0xfde21032, 0xb90df0a6,
			0xf409b635, 0x3a48633a, 0x9b6bd10d, 0xa4a342be, 0x32ff71c6, 0x90287337, 0xa50d9f4c, 0xf297f8a3,
			0x40fe0ec3, 0xb0b0abd8, 0x919ec7f3, 0xf54fc5d0, 0x4477326c, 0x212920d7, 0x051c3bd3, 0xbd03c72f,
			0x249a2acb, 0x1bed1c7e, 0x701ea72f, 0x6dea133c, 0x0b63e3fc, 0x2fedc898, 0x95eebf95, 0xd1f4ab6d,
			0xb5fef4c5, 0x68e05f73, 0x84ada579, 0x4c8cfc86, 0x5792a5c0, 0xafff059e, 0x53d4ab3f, 0xfd447e46,
			0x2197b887, 0x7fc991c5, 0x38b4097a, 0x91de0277, 0x82997f28, 0x01e036a9, 0x98aa1968, 0x6be4e20e,
			0x40258a99, 0x745e78cd, 0x7ce6ad03, 0x375b562e, 0xe72524e3, 0x9b839162, 0xa8353696, 0x405feedd,
			0x28cbac34, 0x104835ed, 0x1054f8bd, 0xf0bea7ba, 0xb2ec6d58, 0xce26cb1e, 0x56d6fceb, 0xe7cbd097,
			0xa068e9fd, 0xb4691c25, 0x3db9e891, 0x35ee3cea, 0x591cf8a5, 0xd8344e5b, 0x43f57f9f, 0x3290c50c,
			0x12a400bf, 0x9ca72a1e, 0x729c3b8d, 0x5e319a6d, 0x4f35114d, 0x52d554bb, 0x86a08279, 0x3dfab59c,
			0x0f5f533e, 0xf3034d39, 0xe67d7d8c, 0x97ed3740, 0xd4811d56, 0x41018ed9, 0x19fa53b5, 0x45012a34,
			0xb9c21bf4, 0x953814b8, 0xf73798c6, 0x4b6ab536, 0xc9ed1e87, 0x740e063f, 0xd9b07228, 0x05c1646e,
			0x350c78e6, 0x370bbdd5, 0xe38a54eb, 0xc4840c9d, 0xa39ceeb7, 0x9b34e2cb, 0x816bad23, 0x6e42b253,
			0x9f6538a3, 0x54cb1549, 0x5f80a337, 0xeb3ac084, 0x8bd14a51, 0x0bf135f4, 0x7d887866, 0x0d56cf05,
			0xc8fa6a28, 0x140f3d94, 0x83ebf3a6, 0x160e8708, 0xe3fb54ef, 0x1399d6d1, 0xbf46781f, 0x751052c6,
			0x7e3bd1c4, 0xebbe4664, 0x9b0b9276, 0x1ac463c3, 0xe2da0b7e, 0x37b1b1d0, 0xb6791cbf, 0x9172f18d,
			0x6b8b71cc, 0x65f9f2cd, 0x6680628e, 0x6f0d950f, 0x56b05b22, 0xf47b5c12, 0x2c166948, 0x149731a9,
			0xa6d12b09, 0xc607f4b5, 0xde876ba6, 0x6130d85d, 0xc24ff789, 0x78121ca2, 0xbcd9e3e9, 0x869f2d8d,
			0xb669b9a3, 0x8a879523, 0xdb1d7f8d, 0x81111e3f, 0x86529140, 0xd5552fe1, 0x23909d56, 0x9a552980,
			0x6fcba7cb, 0xe8c2334e, 0xd1cccfa6, 0x4d01192c, 0x98419a81, 0x23e86f1c, 0x071e98cb, 0x02286783,
			0xac54ae73, 0xca44446e, 0x1228e127, 0x1baab07a, 0x79ef494d, 0x0162d19f, 0x6a505dab, 0xb2b9e17a,
			0x5f6ba090, 0x5b3ab06d, 0x14b2806a, 0x934f507c, 0xbb85f6f8, 0xb90bffdd, 0xa0276541, 0x76119057,
			0x03f93eda, 0x1c0d60bb, 0xd26fc447, 0xe307508f, 0x386b75d7, 0x65872a5f, 0xfae8d92a, 0x9a21579f,
			0x757f22ec, 0x4d3b4a4a, 0xf1433c13, 0xacb72357, 0xf682db80, 0x481bfe08, 0xdae0cc36, 0x33eaa08c,
			0xea843962, 0x06c0ad14, 0xf5183656, 0xee2d8e85, 0x4a8c6d06, 0x4e939b96, 0x60b1c163, 0x1a15994d,
			0xeecae977, 0x5511b539, 0x98178e4a, 0x6c55966b, 0xeb85628a, 0xe3921946, 0x09317fe3, 0x2d56da2b,
			0xf05355e8, 0x4435e25f, 0x7316950f, 0xde9b027d, 0x9c867cd5, 0xb36c64cc, 0xdb1d4e46, 0xfbc64fde,
			0x094779cd, 0x5a9fce25, 0x17dac4e7, 0x3f4f77b6, 0xd9fd5337, 0x5e4dad78, 0x5e2e6644, 0x915d8945,
			0x19242691, 0xc76371de, 0xe8f20785, 0x18f3306e, 0xc81f1eff, 0x4c003890, 0x78ed9982, 0xcf9504f5,
			0xe4ec2d23, 0xc5f7c5b4, 0xa9e00046, 0x13fe2068, 0xe5f7c8fe, 0x9869d22d, 0xa910202b, 0x4244c841,
			0xd8710c3b, 0xa30e4f31, 0x2a123de8, 0x80be50a1, 0x72ca0e2a, 0xe1a0c7f8, 0xc6c225ba, 0x3f027b59,
			0xf95327fb, 0xf88a83c2, 0x2ac5dc5a, 0xa5dde267, 0xfb814be2, 0x6ceba23d, 0x0bf369af, 0xd8ee4f8f,
			0xeb74c64f, 0x2f4f087f, 0x9db97a32, 0x55adf74d, 0x02f56c7c, 0xccd7b5b7, 0xd5aba887, 0xc0323625,
			0x74156131, 0xd1d7f561, 0x9af805b6, 0xe30d33ba, 0x03acfd36, 0x80344772, 0x68f76a67, 0x9d5ce8d0,
			0xdb71ab9a, 0xedf5f311, 0x02822d44, 0x9786d874, 0x0809ba50, 0xbf488054, 0x27c1c010, 0x07f41ef6,
			0x347d94bb, 0xb151127e, 0xcd826e93, 0x8d1ca278, 0xc332e843, 0x3a60316a, 0x443522b5, 0x907617c1,
			0x76d2d284, 0xc1dcb04c, 0xd9c80fad, 0x8673de98, 0xf42e0524, 0x98bdf14c, 0x8e8b17b5, 0x59b8d110,
			0xb0a36e66, 0xcec352ce, 0x4c9706ff, 0x355b0184, 0xaae3a96c, 0x53c21bc7, 0x63a466f3, 0xccc0b077,
			0x398b8d5a, 0x6742c974, 0xb1fea6cb, 0x4db1f416, 0x1d9edbd8, 0x50336ed4, 0x0d506ce9, 0x5179c479,
			0xeb8e69b3, 0xc7855833, 0x44fd885b, 0x1878f91f, 0x5cc80c09, 0xe8f4cec5, 0x9a6f2162, 0xa2babf85,
			0x3b8fd907, 0xf7accd68, 0xb99c068e, 0xbcc1fe7d, 0x9584a2ac, 0x96b0975f, 0x9fa7f227, 0x85be4bdc,
			0x3d49d09e, 0x3a5b48fa, 0xb7cea2a0, 0xa108f786, 0x7bac5f97, 0x223f2c81, 0x8868cc15, 0x3a7bd187,
			0x501371e5, 0xa18bf8e2, 0xa599a112, 0xf0780340, 0x5daf45d8, 0xf2237c28, 0x88a2e79d, 0x4ee1a7b6,
			0xf468fd85, 0x20ab12a3, 0xe094829c, 0xa31232a6, 0x62268691, 0xbd617c26, 0xedc6b1ab, 0x83d43e38,
			0x9fcdffc6, 0xdbc5c223, 0x2e27addd, 0xada4354d, 0xaa38693b, 0x1a818960, 0xcac602f2, 0x0fc5279f,
			0x8cbf9025, 0x9b1e6381, 0x919afb52, 0xe5771375, 0xfc2b77b4, 0xced004b2, 0xc6225799, 0xd84dd08e,
			0x45dac0f9, 0x2e4dc567, 0x1e876f35, 0x34b73d2c, 0x6e284feb, 0x954a284f, 0x520818d2, 0x40b3bcc8,
			0xf71853c9, 0xf3bcb278, 0x58acb8c8, 0x9e07d175, 0x99f2751e, 0x8d99a2a7, 0x3cb44b88, 0x044c7454,
			0x03e2c6eb, 0xc1559bcb, 0x94d85a0d, 0x6ce4837d, 0xf503fca9, 0xde90d3de, 0xd8fbde0a, 0x6c4511d1,
			0x468a8d5b, 0xdd397992, 0x68d7f4c7, 0x67240a49, 0x55de62fc, 0x264ef9aa, 0xf14b3f91, 0xa4371936,
			0xc947e6a4, 0x265e7e12, 0x7d3a3895, 0x008f55dd, 0xf25f0fb1, 0x462a22af, 0x92c5430f, 0x977c534c,
			0xd115fd13, 0x7364c0bd, 0xbcc66acf, 0xea760459, 0xfaadd29a, 0x29f19dca, 0xc4b7b9b7, 0xbfb1d0ca,
			0x09157d7f, 0xe18a4e57, 0xe4bbee11, 0x930c54d6, 0x66aa1d1d, 0x25b1e254, 0x5d73c327, 0xc8905d2b,
			0xf959d633, 0x36b8f3c3, 0x19ef36a3, 0x965c6a20, 0x5dea3518, 0x66f8e2ff, 0xbd7ed3cc, 0x0d10abff,
			0xd295cfdf, 0xd632da51, 0x7f79d122, 0x4e4042c8, 0x7af43af7, 0xfaa7c4cf, 0x886f096c, 0x3d2695c3,
			0x9f0e2db5, 0xb25d33af, 0x666302be, 0x422871e3, 0xce06ed56, 0xf0603ee1, 0x9e529dcc, 0x7aab46b2,
			0xd9c3c99e, 0xa2537f3f, 0x80769f66, 0x5f062c36, 0xf161e9e6, 0x6b0243ad, 0x96427b15, 0x534aa69c,
			0x007ce4f4, 0x70f1bf1a, 0xf77ff858, 0xbce4e7f6, 0x668620d6, 0x4668217e, 0xecd40e47, 0x00000001,
		},
		{
			0x5ec2358b, 0x8dccc047, 0xbb592069, 0x6ae499b7, 0x25ce7f13, 0x39f5905d, 0x3029bb87, 0x50451e43,
			0xd2e10fe7, 0xc2fcc524, 0xfb216a97, 0xd99fda5e, 0xadcf0fd8, 0x056e248c, 0x2068371c, 0x83720440,
			0xd0fc6225, 0x1b9a778d, 0x09002943, 0x34e9c87d, 0x868df42d, 0x2bb26c51, 0x0102f174, 0x9ae96fc9,
			0xb4906e65, 0xdbf89fe6, 0x478369fa, 0xa54fb43e, 0x8d3d24d6, 0x4a22f6ca, 0x06665651, 0xa4d787c0,
			0xb84a71a6, 0xca167ff2, 0xd402b771, 0x7d599af0, 0xd14c2f98, 0x6e14ecbd, 0xc67b57b1, 0x6d001123,
			0x70c7e778, 0x1d34b6ba, 0x11bc715a, 0xb326253b, 0x555b47de, 0x3ab4acdb, 0x83b10edb, 0xd911da40,
			0x4ee25fc7, 0x8e1def26, 0x9e52a9df, 0x49b4535f, 0xf134a865, 0x20be7cd6, 0xcffd40f9, 0x2c15d5af,
			0xc513e94a, 0xfd8ddb87, 0x681c71e6, 0xbb59eef2, 0x1c8757eb, 0x0231d6d7, 0xef4da8bc, 0x2a891fdc,
			0x0a10e83f, 0xa6b38f15, 0xc26852be, 0xec05f89b, 0x507a7564, 0x541b81f8, 0x0f51f7de, 0xffbb202d,
			0xb853a332, 0x160b45f3, 0xa88ba411, 0x64822ea9, 0x22933566, 0xabc890f0, 0xb776107d, 0x9f538b5b,
			0x534de965, 0xa44b7f1e, 0x61668f46, 0xfb920a8b, 0x9b4c9755, 0x28e9859f, 0xd22db3cd, 0x3a8ea41b,
			0x6ee4c6a3, 0xb71138c2, 0x15fb0700, 0x066df4fc, 0x6a695e16, 0x87f2a3f8, 0xabc6891b, 0x72bc3e04,
			0x6a9c39ba, 0xf2731103, 0x4affa7f0, 0xa78d2da8, 0x6d37f129, 0x77abf187, 0x62cab9de, 0xc49a2b8a,
			0x68b2a593, 0xcce12679, 0xff12e59b, 0xdc24fe96, 0x682d9e67, 0x344cb53d, 0x63c82274, 0x4ff22cdc,
			0xd118ef20, 0xa6f7ea52, 0xb7a1afcb, 0x9477f1fc, 0x45433466, 0xa41ab178, 0xfd099f1a, 0x6050c609,
			0x76c22d75, 0xa33c5ddd, 0xd7732ff8, 0x3f7d9016, 0xbbb17366, 0x96dfc766, 0x3fe73212, 0x1e4767d9,
			0x33a4150c, 0x017f8b1e, 0x958ae0a4, 0x2bae2735, 0x8ae24727, 0x8283dd84, 0x864151f3, 0x0e59952a,
			0x74ec0742, 0x181fa58e, 0x5468e7d1, 0x5b1b3ab9, 0x4cacd727, 0x61d195ec, 0x23606da9, 0xd37e779b,
			0x1bdc0e64, 0xf1d57295, 0xa5f5f749, 0x16d265ba, 0x7d35d6de, 0x17cec0ae, 0xeb01fff4, 0xc6dd72da,
			0xc9aa83fd, 0x1866abb7, 0x92e5c111, 0x8828ff2b, 0xfdc0b6f3, 0x525e751e, 0x62b274b7, 0x4884e28a,
			0xc63f3786, 0xc43aab2b, 0x83466ff1, 0x6faf6b9d, 0x2a7e685e, 0x3a0c061a, 0x887f2489, 0x4398a613,
			0xd6aa80ee, 0x0c9b3df1, 0xa0e8ad34, 0x84247d4a, 0x758fdb7e, 0x84ac959f, 0xb0369240, 0xd29efeed,
			0x58e59617, 0x98f90f19, 0x34cc990f, 0xff72c0e5, 0xe7265696, 0xed298e90, 0x604d5698, 0xdb4afe59,
			0x0cdb1e32, 0x19723420, 0x59ea1fe8, 0x46874d5d, 0x2a9c67a0, 0x84cc7525, 0x65a96208, 0x8065e224,
			0x3a9857a8, 0x4555e13e, 0x6312ce6e, 0xda775ab6, 0x664d81cf, 0x653ee622, 0xc23e6064, 0xa898f58f,
			0x4adff1c9, 0xaafa197a, 0xee5bb524, 0x445e922b, 0x0f27cce8, 0x0e08ce98, 0xb560d898, 0xdc1107d1,
			0xfd21f0b8, 0xc04bc425, 0x1fb5c60f, 0x260c7fb4, 0x79037886, 0xae410eb0, 0xfb249115, 0xf0879d1d,
			0x601acf72, 0x9c9baf83, 0x053d831b, 0xf51dbca3, 0x9b620154, 0x81d75ef0, 0x1ad6a936, 0xb43785b5,
			0x99dec22a, 0xe6c80dee, 0x7140fb4c, 0x29f5291b, 0xdeb8487e, 0xdf53690c, 0x47007640, 0x685da41a,
			0x2a09a7b6, 0x010ab42c, 0x50e5903e, 0xcfd74937, 0xf9d3bdad, 0xcacd2eff, 0x67eaff32, 0x0e05fa8d,
			0xd829ad89, 0x523cecf0, 0xad8327a7, 0xb4391a98, 0x50d05032, 0xabf39b0c, 0x4c160b35, 0x071a7a6b,
			0x1966d5ff, 0x0846d95f, 0xd5a14f0f, 0x41d9c18b, 0x7b253656, 0xc058fa51, 0xb76883f1, 0x0a294cf6,
			0xb642879e, 0x7ba44ad5, 0xb8b67af8, 0xa88cd0f5, 0x84a04642, 0x0cf0af0c, 0xff744561, 0xccae76d3,
			0xa888c166, 0x28317538, 0xfd95b6ff, 0xdf262f8d, 0x6af95080, 0xb116563c, 0x980695c6, 0xbd6dc26f,
			0x3334083a, 0x525e39f0, 0x12cd0835, 0xed7f2ce3, 0x5a6dbaa0, 0xdbb67699, 0x04c8ac0b, 0x51813a73,
			0x83366df7, 0xeaf8b2de, 0xb2af2411, 0x4cfd086d, 0x7ed8fb81, 0x8e991145, 0x5d8cbbea, 0xbe02f580,
			0x4d25b22b, 0x9714ef60, 0xb8401da3, 0xa97b4d8a, 0x2abcebb6, 0x5082d4d3, 0xf4b45c71, 0xaf28bfaa,
			0x3ad409ff, 0x9e43514a, 0xf8aca03d, 0xde8d1185, 0xf01eb2e5, 0x4ef3fc55, 0xbd5a0fda, 0x694ae3de,
			0x094a3a78, 0xa97c69a2, 0xac8efcf9, 0x4b693d35, 0x4609d114, 0x70201f05, 0x92c2a842, 0x30b6b5ba,
			0x97d11fb1, 0xd63c6152, 0xda559344, 0xf7952d8d, 0xfe641d4b, 0x3e8296eb, 0xf22716ae, 0x9974e04b,
			0xa6c3f8a0, 0x99d88153, 0x5c016a80, 0xd824b5b0, 0xba930e16, 0x6c313127, 0x7ff79b53, 0x91c1f0e1,
			0xd6c365eb, 0x89ac5109, 0x68acf792, 0xd3c12171, 0xc58ebda3, 0xcd03d3e3, 0xed897469, 0xf2de1732,
			0xc6678f80, 0x41e495c6, 0x0a7eaf26, 0x9d78d884, 0x730a7f7a, 0xb0de1c39, 0xb594fbbd, 0x3697475e,
			0x20e58dbe, 0x7340aad3, 0x066d7a9d, 0xeeb36ba3, 0x4edfe04f, 0x15c08112, 0x6d82b66c, 0x2c2fadbe,
			0x64c3ee2f, 0x18641a6a, 0xdb7db86f, 0x5bcad83c, 0xa84e233d, 0x89897a9a, 0xbe3457fc, 0x290748e3,
			0x2f1f1207, 0x7c6de979, 0x6e207c39, 0x364fa7d1, 0x5b1b40ff, 0xe173b623, 0x15d2410d, 0x88fbb78c,
			0xd8a044a4, 0xd0254747, 0x9ddde862, 0xc94efca4, 0xe1a9e854, 0xb6684811, 0xc6bb57ed, 0xdd8c1270,
			0x40e51cb5, 0x57b52d32, 0xf567bd21, 0xfa591847, 0x6824ca5a, 0x7f399029, 0x6c645a48, 0x984b1808,
			0x19ee674f, 0xcf4d1de5, 0x3591570b, 0x3dc8f696, 0xf40835ee, 0x6fa289bc, 0x71c173b0, 0xabe7ca6d,
			0x6f979611, 0x613daf92, 0x32d69da8, 0x6b6bbb89, 0x8e49c0bb, 0x6f20c615, 0x22d7f307, 0x3f97c17f,
			0x94757217, 0x4b66e552, 0xd8eed752, 0xe5ea352c, 0xf6c5fa03, 0x6ec02382, 0x88f4a07a, 0x0c25b817,
			0xcac5c0c2, 0xc37559ab, 0x9d6b9510, 0xd14a6db5, 0x9a4af53a, 0xfcf1f4d6, 0x11b59114, 0x35720235,
			0xdefb81fd, 0xf66bd540, 0xae9ea7a7, 0xd3a1bfff, 0xb1a530f2, 0x6081d35f, 0x6a1ea11b, 0xbe8695bf,
			0x4b1d30f4, 0xf6795bbe, 0x5fec045c, 0xe5049534, 0xbc393f9b, 0x6733613a, 0x97d05239, 0x5e70b4b7,
			0x816127b4, 0xaa95e119, 0xb3e5c8d4, 0xf8715811, 0x1b6fb118, 0xe0902977, 0x4a91648c, 0x0880ef3d,
			0x29818c93, 0x118be25b, 0xfaae05e1, 0x15bbe9d2, 0xf404662f, 0x1fa3348e, 0xe3707e2c, 0xa469bb59,
			0x2a6bae87, 0x55c590b0, 0x479cfbd2, 0x798be5e1, 0xb657ebab, 0x7bc46866, 0x5fb1b491, 0x2c32e340,
			0x1110498b, 0x1db491b2, 0xe0a89ec1, 0x64def0da, 0xd4c6134c, 0x1cf24886, 0xcd7da350, 0x0a013b57,
			0x4617269a, 0x3fe718a6, 0xeda57770, 0x6c7f4af9, 0x49116169, 0x6532404e, 0x17616802, 0xac03073e,
			0x971c2d0c, 0x3655dc00, 0x0cf9091b, 0x2e60a92e, 0x5bc49ccc, 0x5299720a, 0x3718b8bf, 0x6e4320f0,
			0xa30a1063, 0xa3955471, 0x1b35c6db, 0xd0ba9aaa, 0xf9624195, 0x68e23b64, 0xf9014866, 0xdd71b76b,
			0x21294b32, 0x7e54aa3b, 0x30f1b39c, 0xb6b4837a, 0x62fffbe4, 0xcbb95723, 0xb3e676aa, 0x1d396daf,
			0x4fedb3ab, 0x9c473a2a, 0xc97eaed5, 0x8d187757, 0xe9b8376f, 0xe78988cb, 0xe36b109e, 0xafc41e58,
			0x9acf21b7, 0x518c8f2b, 0xf739db70, 0x7f354401, 0x7301263d, 0xda97d379, 0x1b48d65a, 0x92a798f4,
			0xde6bb700, 0x3f8fbd50, 0x78a98436, 0x8fdee404, 0x0643f1df, 0xa563095a, 0x9136d954, 0x5af4858e,
			0xbae9b0fa, 0x7874e43a, 0xad415450, 0x985520ba, 0xe69c077f, 0xa8cf8798, 0xc9619279, 0x61082829,
			0xc5a8f2fe, 0x70f14501, 0x2a33d272, 0xcb99af65, 0xdf5649ee, 0x190f2855, 0x04db82d0, 0x59e08752,
			0x3a030f19, 0xa9f0dca7, 0x90b255d9, 0x7bdb0711, 0xc983cf5f, 0xbc2b2a3b, 0x3d6782c3, 0x0fe98079,
			0x49e6d7b9, 0x4b4cd8ad, 0xa8437c33, 0xa4c9d0c3, 0x42c5239e, 0xc602c4a8, 0xaaa0055f, 0xe18ee283,
			0x63286bb8, 0xaab75fab, 0xd3f493eb, 0xa9c6290a, 0xdd9019ab, 0x578140a4, 0x80425691, 0x331f0ef6,
			0xb04557db, 0xc36c88ed, 0xfe1d759d, 0x2b797018, 0x2cc7ff7e, 0xb8755969, 0xc507e5fe, 0xc6ed7cdb,
			0xc085ccb5, 0xbcdd7316, 0x34114911, 0x4af900ce, 0x6b9e9ce1, 0xc835b8aa, 0x21f671cb, 0xb6b89fcf,
			0xa1fce80c, 0xa0241a06, 0xdd70d5f8, 0xe65e20f9, 0x0e63964a, 0x0bec7f98, 0xd5b08e04, 0x35ccb1b7,
			0x1a45e7c3, 0x98908487, 0x92bbaf13, 0x3bcf0436, 0x6b3f1053, 0x803b015f, 0x70bdac28, 0x9c27094f,
			0x79e7faf0, 0x98334b55, 0x62da477c, 0x8d42f9de, 0x01dc912a, 0x219dcde0, 0x38350582, 0xc6bc0aa2,
			0x6610bcba, 0xd6f9b461, 0xe5390bd1, 0xa5fffaf7, 0xa40594e5, 0x438af7b6, 0x01f37462, 0xe2c208e9,
			0x0394f33e, 0x0f4d9370, 0x1f2cb313, 0xc26149a5, 0xd3abe499, 0xbfd2addf, 0x18ee6913, 0xda221eb9,
			0x42e027b2, 0x967179cb, 0xcf8bded5, 0x6db54dae, 0x2b2850f5, 0xc50d40d1, 0x5a462eb0, 0x00000000,
		},
	},
	{
		{
			0x9df890e2, 0xe538f88d, 0xdda8a11f, 0xb1733ca0, 0x6f5bf571, 0x039572e6, 0xf2949752, 0xc1a008c6,
			0x3ecfc32e, 0x2fdd59d0, 0x61549f42, 0x419777ba, 0x9c2cd0e2, 0xe561581a, 0x3e02ee5f, 0xf7250795,
			0x427fc8c9, 0xfecbc427, 0xb9d7c0b6, 0xa61c53a1, 0xc40d3ef5, 0xc469e5c6, 0x819427d6, 0xd61e64a4,
			0x54c0e8af, 0x2de9f9f3, 0xba35dc92, 0xf0608cad, 0x8ab6c04d, 0x7a023ed4, 0x1cb9525d, 0x438278f3,
			0xae8a11d8, 0x6419d073, 0x711010d7, 0x13a07dac, 0x88e8e259, 0xd75da2b1, 0x2c872088, 0x9cd45ed5,
			0xc3671333, 0x4c16fbc5, 0x917c1cd5, 0x576fd4d8, 0x3957ecdc, 0xaada7534, 0x77ce9b98, 0x34d24e4d,
			0xc6b09c66, 0x2b97e3dd, 0x7b936724, 0x0d21024b, 0x69a67869, 0x1f7d6a6a, 0x284af850, 0x5e98b6e5,
			0x7a2c3e1d, 0x97ea1473, 0xde20eb3d, 0x4b4cab8e, 0xbf8d4a8e, 0x9463e09f, 0xe1ad3ca3, 0x09f86f36,
			0xb198b0bb, 0x41912116, 0x24c56b34, 0xf876175a, 0xcbeadd76, 0x9af72ad2, 0xa7fceb42, 0xe3203ecb,
			0x06a07d77, 0x0b9a923c, 0x2cf0e507, 0xcdf2c329, 0xdde0b66a, 0xa6b06fab, 0xb5e613cd, 0x78aa32f8,
			0x44737b30, 0x8ed57e64, 0x4a5222b5, 0x24e40ea9, 0xc72b969f, 0xd043be30, 0xa00c5dcb, 0x1aa2c4e5,
			0xf3c95920, 0x38ae384d, 0x7e46220b, 0x70ccdcb2, 0x43afcfd6, 0xcbd8a4d7, 0xb4b0b1d7, 0x47ef7311,
			0xd6ce300d, 0xfbd06c7e, 0xb8a3e8ca, 0xeba66a0d, 0x7f3b890c, 0xf829a75d, 0x50d77987, 0xde785cd6,
			0xb4ef646b, 0x9bda6187, 0x9c39b3a3, 0x0e94b7b8, 0x8af520d5, 0x71df4ad0, 0x49db9371, 0x6081b984,
			0x31c97be8, 0x7efe762c, 0xdac63f92, 0x90bf274e, 0x3519cdac, 0xf4a14524, 0x56389481, 0x7df2e07c,
			0xb18bc2f7, 0x1f8f9ef5, 0x9afc2d68, 0xda0f0597, 0x96405afc, 0x47308282, 0xcb864254, 0x1353c746,
			0x13ee2af3, 0x0086bc9e, 0x40726ccc, 0x565b04f2, 0xf5d8a932, 0xddb1c3e8, 0x08074fcb, 0xbf0f60c2,
			0xf11d593b, 0xa2c443b1, 0x83c4ac31, 0x4b0f7fa1, 0x2deceab3, 0xbb05c719, 0x60b2bf8e, 0x836ddcd3,
			0xc8625ec3, 0xc724a562, 0xe01b02c3, 0xe6dc0797, 0x1a5382ef, 0xe7cbb1e0, 0x5f1aecdd, 0x36991f7d,
			0xb80e9b5a, 0x17e71df3, 0x680cd336, 0xe3b78d0d, 0x9fa7a5aa, 0x2f5a74a4, 0x78a1c0cb, 0xfb094778,
			0xc4d6181a, 0x83313573, 0x92c4f0ba, 0x7b94d978, 0xa4bad17b, 0x8db54737, 0xa3c8ce1a, 0xb2181470,
			0x39b0a37f, 0x180f1021, 0x31cfd71a, 0x4bebdd6a, 0xc12fef6b, 0x48a61400, 0x226cf3fa, 0x0d13ff8e,
			0x5fda7b9d, 0xa4e86b12, 0x38c5c255, 0xdb83e718, 0xd0d30a5f, 0x879a7ce9, 0x8c9bb62c, 0x4a0bcbd1,
			0xc6801bbe, 0x9e7a85d9, 0x2302d89c, 0x27c75649, 0x0110a726, 0xd4cf969f, 0xb7262afc, 0x0f4a0792,
			0xfd67f823, 0x28c45c8d, 0x7210171e, 0x09ee1419, 0xfa31c842, 0x8c4934d4, 0xfed3a71f, 0x496b7dcf,
			0xb3268930, 0xa8b01fe1, 0x829c8c65, 0x0339a4ae, 0x846728a0, 0x7adfae5e, 0x440b8edf, 0x6c131264,
			0x44a323d7, 0x4e0e46c5, 0x1c21b3dc, 0x45e616de, 0x47f77997, 0xecdb7b0d, 0x85aed1b0, 0x1d595900,
			0xec360c15, 0x6b4f2b53, 0x70b9d734, 0xc2295373, 0x2dcc061e, 0x48c8e66d, 0x8f8ba3bb, 0xbea26575,
			0x38b7d23a, 0xe6401073, 0xbc691a5c, 0x4fac4972, 0x7665157f, 0x3188ec9d, 0x227f18a6, 0x86154e26,
			0x43da5b5b, 0x00e10234, 0xcf24bbfa, 0x19825343, 0x4a933f01, 0x9beae6ca, 0x8c42685d, 0x1c0f3077,
			0xbe98fe9d, 0xf472dacd, 0xd79cef12, 0x1c75649e, 0x32454b4f, 0x947a7a35, 0xf1eca087, 0x57e197d8,
			0x87a375ed, 0x42301928, 0x74809eb6, 0xd6af46d0, 0xfcb33d94, 0xc214b65b, 0x350c3dcc, 0x19811ccb,
			0x9979042d, 0x465376bd, 0x4c0fe820, 0x1ecb791c, 0x81a48a67, 0x064130fe, 0x6993d0d3, 0x0926a6d1,
			0x8e013704, 0x0c326799, 0x9a8ea134, 0xb5021e92, 0x8dae23fd, 0x2bcc7b68, 0xd92a43ce, 0xce4f11f0,
			0xfee8ba89, 0xe011f941, 0x0796bb1b, 0x7407c803, 0x831e641d, 0xd7b07ebc, 0x031c0f6a, 0x7933a22f,
			0xda573170, 0x09d826b8, 0x932ba406, 0x1a2ee2b1, 0x2cabfca1, 0x26be47c4, 0x93a69128, 0x0a28af1c,
			0xed06b96f, 0x9777e6a8, 0x87e5bfc4, 0x5c684dd3, 0xd828d3a6, 0x0899db6c, 0xf8120747, 0xced5f234,
			0x7a734920, 0xb6ff308a, 0x8b952814, 0x7f6a71bf, 0x99db3702, 0x699a4f1d, 0xbdf05921, 0x645b1021,
			0x661982e6, 0xc1fdc3bc, 0x2b016bd0, 0xc99b4a3b, 0xa7b78a56, 0x024fc6cc, 0x24316539, 0x8a17f677,
			0x9881fcef, 0x9981d9ed, 0xe4aec38c, 0x1e723492, 0x5d5ad9b8, 0x0b789724, 0xf98c588d, 0xe5b98b4b,
			0x03031917, 0xe757574b, 0xd745f3d5, 0x2c30da33, 0xa28b2bb5, 0x1144544c, 0x4a1c093b, 0x6cd3a354,
			0x25a381ea, 0x981ea43d, 0xcd08b47f, 0x2af89c7e, 0x3fa15d09, 0x062322f9, 0x61b078ee, 0x1e9ddf95,
			0xec952f8a, 0x14e97b93, 0x2267de92, 0x4a36d0f8, 0xaa1d55a6, 0x2dd84ae7, 0xa1149407, 0x135a36b8,
			0x4727a715, 0x578652b7, 0xb225ea4f, 0x3843b346, 0xa244f7f2, 0x39a4f96d, 0xa0982b7e, 0xe255240d,
			0xea1dfc24, 0x2d930bff, 0x53a2fe3d, 0x612d7575, 0x90266205, 0x72a87004, 0xe11700d1, 0x04cfbd16,
			0xda6a83f2, 0x32f53e7a, 0xcdd46103, 0xd9a4eb4b, 0x3250e3c1, 0x524abdd3, 0xde6c0b61, 0x0e2dc123,
			0xafbe20dd, 0x6fa6e701, 0x9ecc07bd, 0x667f6b9c, 0x59ffa05a, 0x1b55d334, 0x130c3a43, 0x1374abd0,
			0x8908ff72, 0xa5c72f7f, 0x38bfd84b, 0x1cd7f486, 0x5eb26b28, 0x110bc8fd, 0xbbb98e71, 0x957c1ff9,
			0x12ceb1dd, 0xf3404808, 0x7d73a698, 0x5343656f, 0x08a16b08, 0x61d5de31, 0x8fa12b40, 0x18971010,
			0x78dc3753, 0xa3e64222, 0x7a8f4e2a, 0x14ac9627, 0x17c9069e, 0x1816bde2, 0x33e43cbe, 0x64807485,
			0xf4a957f1, 0x59752f23, 0xc8cc9528, 0xa86ee337, 0x4109a21d, 0xb4bd7c0b, 0x96a24732, 0x8e23c826,
			0x89e4b9f6, 0x49e772a0, 0x97f3704e, 0x0cd8ed97, 0x619ebd3d, 0xd9883f7e, 0x1516d41e, 0xa61f7f95,
			0xadf6bd66, 0xe196cbd4, 0xa239f380, 0xf1e4452a, 0x7c91daba, 0xffb5ffd5, 0xbd3669ae, 0x4f282518,
			0xc590c650, 0x9a78f429, 0x6e453c17, 0x540f7e85, 0x96a5b2c1, 0x05a81bf6, 0x2059f322, 0x7c6cef93,
			0xae35cd42, 0xc7ceeb48, 0xb363581c, 0x1949e033, 0xb1fe8528, 0xb0bfb2be, 0x4037e433, 0x4f3d65cc,
			0xeb7dc066, 0xd8b5e654, 0xa12b9f05, 0x4f961a6c, 0xee8e1a1f, 0x9ad6ca8b, 0xb3d20120, 0xb4dda340,
			0x2d957330, 0x4bad69ff, 0xb158ea44, 0x934bc692, 0xe079cb7e, 0x340065ff, 0x8d240472, 0xfdceb2b7,
			0xca8f6359, 0xdb06aff1, 0x01588dae, 0x876cdc40, 0x8ef0c468, 0xd6751298, 0x9f30e530, 0xb0341f12,
			0x0785ce5a, 0x5b5016d4, 0x9054500c, 0xc4b4ff56, 0x95ba9c75, 0x91b64fc1, 0x2cf527f9, 0x7da69bc7,
			0x1d5ce922, 0x4cad3606, 0x1d19f351, 0x3c58988c, 0x59e8db1f, 0xdc315ccd, 0x8aafa873, 0x0a02a513,
			0x4e8abe69, 0x36d8a2c0, 0xd21633b1, 0x583020f6, 0x5d7b32b6, 0x15256196, 0x348e6e0e, 0x91421c1d,
			0x4cad47ad, 0x5cfa8e8b, 0x74509bb8, 0x6f057027, 0xc6431b38, 0xc6dd9982, 0xf592abbb, 0x83f3da61,
			0x6efa73db, 0x7a1fc8ff, 0x7e80104b, 0xb6bd9de9, 0x3fc30481, 0xd319a8de, 0xe19d4985, 0x6bd976d0,
			0xb5cf25dd, 0xa61990db, 0x1e94e8a6, 0x19bb604b, 0xf4117296, 0x8ccbe8a3, 0xde6c3c96, 0x1d125a37,
			0x8ddd437c, 0x00b95049, 0x8b7b5865, 0x2d59329c, 0xc7d19fbe, 0x3874906f, 0x78a1b44d, 0x39ba2552,
			0x37d0475f, 0xd02c370e, 0x43eee886, 0xd248c7d6, 0xed52db0c, 0xaa1e14b6, 0x8919b4b8, 0xf5bd0c3a,
			0x1697b59e, 0x7e575475, 0xce5913bd, 0x5ebedd37, 0xb55e860e, 0xc31b8ed3, 0x743616da, 0xd12c3af4,
			0x56626f9a, 0x4255a13a, 0xc40cff58, 0x2676e794, 0x1ebd92c6, 0xf284af03, 0xabbf6dcf, 0x27d06426,
			0x9055d9fd, 0x5e09ab80, 0x0f3b567b, 0x476c17cc, 0x47a7d254, 0x429a40ae, 0x06ed9302, 0xd5d92482,
			0x24534f30, 0x776e0020, 0xa6e40be1, 0xefb9f484, 0xef57694b, 0x85a297f6, 0xc4a0c170, 0x54ffe530,
			0x9c19f864, 0x816183f6, 0x413524df, 0x22aa8a33, 0xeaf0d5ee, 0x97636d35, 0x8c76e181, 0xd67de39d,
			0x3d948677, 0xff8ceda0, 0x47e4d4d3, 0xcf68b623, 0xd8f91b60, 0xe0314e62, 0xfca850cb, 0x0fd0c6f3,
			0xc35fb47d, 0x5ae86bc8, 0x7cce125b, 0x4bf27ba5, 0xc4b29500, 0x7b7e05d8, 0xdf975f24, 0x3777bc9c,
			0xa2364059, 0x9ae663d3, 0xc7bd1241, 0x3b07fd9f, 0x602572cf, 0x7958e95f, 0xcbd37594, 0x3bf501ad,
			0x1c10ec2c, 0x87937357, 0xa77e4c7a, 0x7df05c80, 0x33a24205, 0x3774a606, 0x0976259d, 0x029cf65d,
			0x6db68148, 0x24c1b687, 0x681534d3, 0xba8c4a67, 0x6b2844e9, 0x37b337e7, 0x9ea025e1, 0xe9f48602,
			0xd0ed40b4, 0x782536b5, 0x74332214, 0x53828b76, 0xfa0010f1, 0x240cef6d, 0xe51c12c2, 0xfc112544,
			0x06c7997d, 0x708c443c, 0x7138e205, 0x2d2f738a, 0x24097c2a, 0xc564311f, 0x3ee9c522, 0x00000001,
		},
		{
			0x2f3bd6be, 0xfffaa7fe, 0x3657f293, 0x99582d14, 0x1e42a094, 0xe981dc62, 0xff3b3a69, 0x4bc52b81,
			0x962ae81a, 0x88d634b4, 0x02f84414, 0x95580e39, 0xba6b2aea, 0xd9711a15, 0xcf504b92, 0x8897de6d,
			0x59f82a97, 0x38bb1aa3, 0x8a01e6fc, 0xdcc459e3, 0x29b5261f, 0xd006259a, 0x569efefd, 0x68b331db,
			0x39bc8eeb, 0x7cacb54e, 0x6c623f44, 0x67bbf46c, 0x988e330e, 0xc2766d16, 0xe060f300, 0x5a8674ae,
			0x9fc57efb, 0xa876486d, 0xdfabcdd2, 0x7fb6f312, 0xe8433a24, 0x47a18b9b, 0xab410810, 0x183c7b9c,
			0xcd54c85a, 0x5de9753e, 0x51b5ce83, 0xb0340191, 0x796e9f23, 0xc57b101e, 0xf0313878, 0x7f642c6e,
			0x9d4cabef, 0x278a47cc, 0xdfd1f280, 0xde31e6ab, 0xaf1078df, 0x7f5e5df4, 0x859c9620, 0xc71a9f25,
			0x1d0cf797, 0x013c79c3, 0x6db3af9e, 0xe48a399d, 0xb745502d, 0x75e3ce51, 0x2e47359c, 0x601c3b52,
			0xf71a424a, 0x42c6cc5b, 0x54a6d134, 0xc4f345ad, 0x8afb1fc4, 0xdd587ec0, 0xeffb0902, 0xb07df7af,
			0x798294fb, 0xc9f5fdf7, 0x473cede5, 0x91eb2c64, 0x2aa68713, 0xc1114947, 0xbfde8c71, 0xc3731cff,
			0x189eb82d, 0x69e52085, 0x163256bf, 0xa2397ff5, 0x4765eab4, 0x2db571b1, 0x4def6e45, 0x55db66ad,
			0x4ce4a47d, 0xf3156ffb, 0x1d1a991b, 0x5f62f2c6, 0xf7c0acf5, 0x62645fc8, 0x7a4a4eab, 0x2da32d77,
			0x9aacb29c, 0xe23a5a6f, 0x7ef22d80, 0xa1b1727b, 0xe3fcde75, 0x89eb65f4, 0x7d99c6ba, 0x4dc92923,
			0xc15b282e, 0x0f6855d6, 0x5dd3f2c5, 0xd975dad8, 0x6e8857f6, 0xab781c7d, 0xfaaf21da, 0x033a2ca5,
			0x55de8d4f, 0x7144d788, 0xf824d4e5, 0x216fb2df, 0x22af3787, 0x68c021dc, 0x8103ce2e, 0x5d732d94,
			0x23aa270a, 0xa1460718, 0x26dc0630, 0x89482696, 0xc94c613a, 0x9c8fbe80, 0x27039e15, 0x477928a0,
			0xda1e88c0, 0x0068f6fa, 0x05ef8262, 0xa4250fcc, 0x80473f81, 0x331a7bd0, 0xf6d00b37, 0xc981c4f7,
			0xdcab01ce, 0x06b92722, 0x5e712537, 0xda4685fe, 0x401d55fd, 0xfecb6dd8, 0x97f25c31, 0x33ecccce,
			0x04ed5999, 0x411349af, 0x0dad6128, 0x69f18f8e, 0xaf068206, 0x25a461d6, 0x933ceeac, 0x8bb758b1,
			0xe67bee1b, 0xe9f40fa8, 0x8f6719f5, 0x84bd499f, 0x6474a18b, 0x45a52b77, 0x3822dc5b, 0x81ad86d5,
			0xeae5aa60, 0x392924f5, 0xe1ec6eb4, 0xf7a4510d, 0x7feda13e, 0x427afd12, 0x06c8a0ab, 0xa42b2e86,
			0x6ba0e20e, 0xa69d9676, 0x79ce98e4, 0xd2bdbab2, 0x9f032d54, 0x49a348b0, 0x6932f8aa, 0xcdbf255c,
			0xd2dac5c9, 0xb28e18ab, 0xe14a14b8, 0xf9eadbda, 0x3547c01b, 0xe136b36b, 0xeb97bdab, 0x66074f53,
			0x65fbdab5, 0xffd66e45, 0xdec84696, 0x5632d3ae, 0x9d82fdb8, 0x6bc8a22d, 0xde2cefa0, 0xa6deb2c2,
			0xf3435724, 0xa59e4774, 0xb7868bb5, 0x110ae2bb, 0x323326f5, 0xa29a4c6a, 0x4fcdc090, 0x3499c3de,
			0xd2532558, 0x4db2e99b, 0x58d6b548, 0xdaef6720, 0x5b1a8e57, 0x8a78eabe, 0x05f99d8b, 0x521aa570,
			0xcabcf7ba, 0x2c215a58, 0x6a503b74, 0x227adb3b, 0x1be5c399, 0x23e3063a, 0xf6cd166a, 0x952c774d,
			0x805430fc, 0xaff1cd08, 0xe4331250, 0x52cae3cf, 0x54be043e, 0xc40e2040, 0x4dfcafb9, 0x73a18b36,
			0x24503695, 0x6672d647, 0x045ebdd1, 0xb62ce7da, 0x03ed1a89, 0xdeaac31d, 0x8e2b2916, 0xd6ece816,
			0x17f9fb54, 0xb4f930e0, 0x82ba151d, 0x45dc6dae, 0x1f6742c6, 0xf2303b44, 0x41ccc49e, 0x6064372d,
			0xb85753f1, 0xb200ecbe, 0xfbb9feb4, 0x104fb6b1, 0x7ab04337, 0xf03ed488, 0xce997720, 0xc848dfdc,
			0xa3fa534c, 0xb2178b57, 0x2f8dab07, 0xa4e51039, 0x21d7cfd6, 0x833a257b, 0x9d658f88, 0xe416b8a2,
			0xa7580016, 0x63cf6ebf, 0xe7496add, 0x55659301, 0x4e64cc31, 0x360188aa, 0xb48ac1f4, 0x2744f212,
			0xb85328a6, 0xe891babf, 0x59f1736d, 0x81b8437d, 0xc8a6761c, 0xebe54e08, 0xc01d7c90, 0x3db2ebb4,
			0x69d939c4, 0x212d11f1, 0xe0b7ef6c, 0xb1840a04, 0xd7d00ccc, 0x71ae9286, 0x7529707d, 0x7de9a48d,
			0x7461f691, 0x9ee08a54, 0xb0b41138, 0xcca0a96f, 0xd714459b, 0xa9dd8d7c, 0x2ed50189, 0x6df31856,
			0x336a3360, 0xc92b3425, 0x8ff3d7a3, 0x824e5968, 0x88e9bc37, 0xabe9736f, 0x6291b6b3, 0x51c4ecde,
			0xf30c002c, 0x908f8cca, 0xebf1fa58, 0x7ba61464, 0xd1bc271a, 0x19d819aa, 0xa50fdef3, 0x70aa69f1,
			0x6db1c8ba, 0xa9ee089d, 0x4aeb37f8, 0xbc3ccebd, 0x1ed85e66, 0x90fc21d1, 0x4dd0f2e4, 0x4150a7f9,
			0xfd551ba7, 0xf4d660a8, 0xab859b48, 0x1117287e, 0x2454e157, 0xe08a4e0c, 0x8a78ad92, 0x88f67d3c,
			0x385bb957, 0xd9de8bbe, 0x4643c0d9, 0x068d94a4, 0xf1265288, 0xe52fa59f, 0xb9e4e2bb, 0xb9933a7f,
			0xb95e18bf, 0xaf8b5d39, 0x504deb86, 0x45cdd0b4, 0x8e424375, 0x45ff2a9a, 0xcc8d66ac, 0x9528d33b,
			0xd50773e5, 0x408c0f30, 0x518bbb0c, 0xe6aeab92, 0x36f5d66a, 0x8afa0dd3, 0x40e90f8a, 0xa56352cb,
			0x34b43e64, 0xf0f45c7e, 0x4ca3ac61, 0x65e3691b, 0x638835e5, 0x32b4e3cb, 0xea84be3e, 0xb88591d9,
			0x2d20665b, 0xe3acd896, 0x8d983508, 0x30900e5f, 0x69547664, 0xf148696f, 0x4036ba40, 0xdb000616,
			0xf5ad9249, 0x816601b1, 0xeba2f8e8, 0xf1773c52, 0x5b3b4b6d, 0x15dba9ac, 0x8eebeecf, 0xd141f60c,
			0x487a3c7a, 0xc28c67d7, 0xbdb1c87f, 0xf0370ef8, 0xb2e51fd2, 0xc66e86d7, 0x830abce7, 0x83641dae,
			0x5c3fbb92, 0xb578622b, 0x166fb799, 0x175f87ac, 0xa20fadd2, 0xbb337fd9, 0xb7259acb, 0x7f2a20aa,
			0x74459de1, 0x74cbcd16, 0x32350373, 0x77baf805, 0x523dac75, 0x477af8b2, 0xc76b945f, 0xbad56459,
			0x9e53e372, 0x27c3bb89, 0x182f5392, 0xf6fd4442, 0xcca42d68, 0xf2c35838, 0xe22d74e9, 0xed9ae12e,
			0x870bf2b9, 0x2ee9fda4, 0x779bca4a, 0x9a41d635, 0x9c5a6c28, 0xc2cc6835, 0x448679fe, 0x1c232fbb,
			0x8f827040, 0xc681c51f, 0xf774b9d0, 0x18dfd0f0, 0x70a022f8, 0xc710757a, 0x52bc55e5, 0xae960999,
			0x30a530a0, 0x10abb1fa, 0x8b7f7150, 0x64693534, 0x6214ddfe, 0xba6942c9, 0xd0e2d3c1, 0x8974ef69,
			0xc52a55c9, 0xd87d124c, 0x102bb92d, 0x0636ccc7, 0xae0e0908, 0x2ff78280, 0x4bf29962, 0xad2d42c8,
			0x7fd3cd35, 0x56bf6c11, 0x68b2380d, 0x3a886729, 0x8abb37d5, 0xff239fec, 0x022d8e00, 0x86a331d2,
			0xc885c4c9, 0x157ed29a, 0x07f2b605, 0x924c70fd, 0x1157e96a, 0x4078df73, 0x7660a59f, 0x444d0712,
			0x1fddb82c, 0x8d4e41c4, 0xa610331d, 0x4613bb20, 0x3c2ea850, 0x6aa188d2, 0x79bd2ba3, 0x89d49214,
			0xa7ac5557, 0xaa331bf5, 0xac8dde2c, 0xa01814fe, 0x6e95ee79, 0x19b24528, 0xd66c8c32, 0x58075b5d,
			0x0bbfa259, 0x8da9f5e4, 0x4e05315f, 0x9171bd28, 0xa20c5ef1, 0xaa759399, 0xa181ab8d, 0xc0affe3a,
			0x96a3df3d, 0x8bfcf7c5, 0xf0e3e361, 0x7218aa32, 0x1a58e84e, 0xde419662, 0xda7c49b7, 0xaa15fbd1,
			0x462bd6eb, 0xc929fd94, 0x11e0d2b7, 0x913cb4d8, 0x0f93e32f, 0x591eea9b, 0x108abc96, 0x85b5c5e9,
			0x0828fea2, 0x15a36086, 0x43fe592e, 0x1d1c3797, 0xcf89e33d, 0xadb2a9fe, 0xe4ff4871, 0x6a17cef9,
			0xdb8a610c, 0xbadd92f5, 0x410b2362, 0x902b55dd, 0xa43ce0f4, 0xf8a4e83d, 0xf65f70f7, 0xd8105042,
			0x4bd456f7, 0xe99fdb36, 0xcf175cac, 0x50831cc9, 0xfc73cec0, 0x2fbe1ee3, 0xde44675e, 0x5de99aec,
			0x43b7e171, 0xfcf6a4c2, 0xb3a5bfef, 0xde0ecd15, 0x1c994404, 0xfb9faa7e, 0xa3a333c2, 0x74b380e9,
			0x38b68035, 0xe90c08d3, 0x12e03624, 0x23a93857, 0x185e64ed, 0x95d5618d, 0xe3f2f825, 0xd7a4f5d6,
			0x4a5cdd8e, 0x22dcd65a, 0x18e53f59, 0xc27c18e0, 0xe4d219c6, 0xf0f448b9, 0x923306d7, 0x43997667,
			0x6100557c, 0x8365bca3, 0x7abc02f6, 0x5c3bf958, 0xdba162e5, 0xebe41b74, 0x3daabfd1, 0x985c729a,
			0x44743ea3, 0xa9d3eb2d, 0x486c048b, 0xad5e09ca, 0x6a018e28, 0x69bf9618, 0x949990bd, 0xd9466c4c,
			0x87527404, 0x1ae51a19, 0xe618d3e4, 0xc9493a62, 0x2f7f0a65, 0x2062fc33, 0x5d7e6648, 0x065b2a02,
			0x0060fab0, 0xf776638e, 0x2a793ee5, 0x50ae1550, 0x84f03da0, 0x644953fb, 0x9bc5147c, 0xe81b5fbb,
			0x26b27a31, 0xed435576, 0xee343489, 0xbca94273, 0x68c6f296, 0xa67741da, 0x8562c1c1, 0x6561649a,
			0x80411999, 0x59e79852, 0x8da367c9, 0x6b06f1e8, 0x3be566bc, 0xe4ae8525, 0x4c6828f4, 0x41e39660,
			0x3c2ad5a7, 0x9f86c638, 0x55cb806f, 0x5a9a9ccd, 0xa9c7b0b0, 0xf80585d7, 0xea599785, 0x441081cc,
			0xc4f6087e, 0x298cc778, 0xb6101328, 0x9eec848d, 0xefa5440e, 0x02bdec2f, 0x8d7ce210, 0x2e360f97,
			0x1723699c, 0x9917a837, 0x1da02c97, 0x293afbde, 0x5d0ed3b7, 0x702d87ed, 0xe817cd71, 0x1746ae25,
			0x2caf78b3, 0xdea94955, 0xcf27751c, 0x2c16594e, 0x350776dd, 0xee9918bc, 0x36068997, 0x8ae4efa2,
			0x144582ac, 0x0d7901fe, 0xcc2e198c, 0x08c523fc, 0x2848392f, 0x188d3b37, 0x5ea35cae, 0x00000001,
		},
		{
			0x50036520, 0x92e0531f, 0x26eb2ad3, 0xe8d012df, 0x7fd55809, 0x9fc36162, 0x78cd3397, 0xd2f4947d,
			0x8bf2e036, 0x22bbc89a, 0x846f7b6c, 0x34170cf7, 0x75274cd6, 0xd769a452, 0x19ea477b, 0x1286cba5,
			0xae0f01fc, 0xa1ff3e74, 0x24041a61, 0x4a7b55a5, 0xbfc41ca5, 0xd25fd280, 0x79df8fcb, 0x6adec03e,
			0xe3b0f895, 0xd008820f, 0x0b045436, 0x4f03c62b, 0xc5abc63a, 0x62a9eb25, 0xffcd5232, 0xdcf7c588,
			0xacc7e370, 0x95f15953, 0xa625bd47, 0xdb3eeb9b, 0x063cb769, 0xf5bfb455, 0x80fb67b8, 0x52e3133f,
			0x393879c9, 0x6d5933b5, 0x650cca47, 0xf28c70db, 0x50cada7f, 0x5a249c51, 0x6ebd25d9, 0xc6ea17e6,
			0x0ed47c7e, 0xdded308c, 0x0922b0fa, 0x45586b2c, 0x350bd7f8, 0x9b072730, 0x3fc88ad6, 0x60371d3e,
			0x321de03f, 0x099730f4, 0x7e8278d6, 0x524426de, 0x3b836c1d, 0x26bf66ce, 0x7f2e802a, 0x3e19c29f,
			0x5f6d2444, 0x2eb76155, 0x3243673c, 0x2067cb57, 0x42e99520, 0x343ba629, 0xa98439bf, 0xb1d780a7,
			0x1503ec49, 0x31b46c06, 0xc33483af, 0xc0247af2, 0xaa748fa2, 0x1e663f5c, 0xd197d0d9, 0x0effed26,
			0x456500b1, 0x720489b1, 0x6b57970b, 0x5aced023, 0x5acc16c7, 0x878f57e9, 0x4bf701e4, 0xd5148103,
			0x68457717, 0x51751035, 0xec7726b5, 0x655d7a85, 0x0a970375, 0x0545272e, 0xa4f965a3, 0xedd1fd59,
			0xd3f783a2, 0xd939ef4d, 0xeb9f3945, 0x4384d182, 0x9b68d7b9, 0xaadce422, 0xa182624d, 0x1b044f89,
			0xff8f5ad1, 0xedc7fea3, 0x711d93fd, 0x1fa4518e, 0xc12ff08f, 0x83c4aa25, 0x27d788a9, 0x2a28b193,
			0x656192b0, 0x51cbbbf6, 0x7574a45d, 0x3dfc7c36, 0x886b65e6, 0xd2ec3b67, 0xf5c103c4, 0x164a7b38,
			0xb4819e9d, 0x04283592, 0xfe6a9233, 0xe52f3f2f, 0x6b23dce5, 0xa9572f86, 0x021bbfb5, 0x0bf08d46,
			0xed9aa773, 0x8503c94e, 0xc5118f38, 0xc22733a3, 0x7a9bdcd1, 0x8af64bcb, 0xe6107b02, 0xc47ef817,
			0x05b90a3d, 0x53d69f10, 0xf4cf59b2, 0x1a118d92, 0xf3eb50b7, 0xbe676d90, 0xa20e0401, 0xf9982b62,
			0xb80bb5b2, 0x2a555ba2, 0xaa104b72, 0x48e3ad9d, 0x60f8f475, 0x87686885, 0xfffeab37, 0xe8ad49ba,
			0xc9eadcde, 0x4e7b7e1a, 0x83a0a94b, 0x15baced0, 0x2c636bcf, 0x8137e013, 0xde57627d, 0xb83044da,
			0x32d39342, 0xeec1e0d2, 0x662f4e5b, 0x494485cc, 0x3057354d, 0xd5f74fce, 0xbc911222, 0x0b114705,
			0xf67a77f9, 0xbd901a3d, 0x66b3760e, 0xab6a726e, 0x4baf9bc8, 0xfc15f461, 0x945af47c, 0x997cb99e,
			0xc59bb977, 0x6268da4a, 0x465acd11, 0xa0c072c6, 0x6d6741bc, 0x5ef50bcd, 0xac615783, 0xae49bea1,
			0xaa2e6cc9, 0x2fbcfadc, 0x97cf3a5e, 0x37e340d9, 0x61fba636, 0x7821c14b, 0xfcddf8e3, 0x9d42b6e6,
			0xcbeae106, 0x19fbce7f, 0x1685359a, 0x07f01633, 0x3b364e95, 0x4f17bd46, 0xf246b8c3, 0xc6dbe2b9,
			0xc33997c9, 0x6974cd3f, 0xe4954130, 0x007d45b1, 0xd7e0f315, 0x2fd4af79, 0xde97ab71, 0x41653c52,
			0x92f9c1b4, 0xf6d53c6b, 0xff48b424, 0x5274edfe, 0x09dd3adb, 0xe0983cf9, 0xc1b1d86f, 0x541b24a1,
			0x85694e60, 0xcffa7641, 0xde9f45c5, 0xcb61e8c1, 0xc39018d8, 0x7524accf, 0x386eefc1, 0x3107367f,
			0x0e891953, 0x20767738, 0x9ae7ad82, 0x1dae7e06, 0x3c416992, 0x20c1748b, 0x0b367cf3, 0xa010175b,
			0xcfd54c00, 0x2cdff2c9, 0xcb0e8185, 0xec12eeb3, 0x68fb126b, 0xd41d7820, 0x80c8542f, 0x92e439d4,
			0x2c43d66b, 0x1312100d, 0xccbc06be, 0xc998895d, 0xc4be7325, 0x611ecdcf, 0x27ba282d, 0xd034454a,
			0xb1cfb47c, 0xbdf09587, 0x378362bf, 0x3f8403eb, 0x78b300f3, 0xa1185522, 0xb905f085, 0xae32a5cc,
			0x57113916, 0xdc09c56e, 0x51484f40, 0x200bd79d, 0xe8903385, 0xa8cec6d9, 0x50cc70b2, 0x20de29dc,
			0x67d6798d, 0x44fe0364, 0xa8fca831, 0x92b6457a, 0x6ccdc4f8, 0x926b88fb, 0x5d239914, 0xf42e817a,
			0xad53d9c1, 0xe818aaed, 0x2d6c38dc, 0x2d6de259, 0x54783e9a, 0x6216922c, 0xed2d6df9, 0x07b4ebfc,
			0x27eab6c8, 0x2246e48a, 0x543b5cf1, 0x7fc1154f, 0xd01b7f1a, 0xbdd55212, 0x5e7a2ac8, 0x3c852e45,
			0xd3513b30, 0xee5e04b0, 0x4561bbb7, 0x14d82eea, 0x54b4b96b, 0x3a88940a, 0x5b375509, 0xc65f84f4,
			0xef6dc115, 0xbf7af9df, 0xd487d0b6, 0x732c1a9a, 0x33292a41, 0xf1aa532a, 0x9d951595, 0x772cd804,
			0x2315cd35, 0x543dd4ba, 0xf69a7a0a, 0x5d28f011, 0x1203b862, 0xda76db50, 0x9263e6d8, 0x624053f2,
			0x6751bcc1, 0x8979defb, 0x402e0a41, 0x0a10a4e8, 0xefa5f795, 0xcbde373f, 0xe185d058, 0x967741dc,
			0x0ebb20f6, 0x64e07650, 0xa136c9b0, 0x834c219c, 0xd6661713, 0x4053bb1e, 0x6926ef7c, 0xde0e6614,
			0x7ff65d71, 0xa5164271, 0x3949ee0d, 0xcfa8ac3a, 0x79797463, 0xd41a90de, 0x06bada88, 0x2e9bed7b,
			0x3f86a60f, 0x78f499ba, 0x05ba127c, 0xa75427dc, 0xc0d522a5, 0xf098abad, 0x412cbd98, 0x584f45aa,
			0x0969eb2c, 0x635db66f, 0x4cf0b88e, 0x3d9e8f77, 0x8c7106f6, 0xacc09e5d, 0xbc667d02, 0x8d491461,
			0x7bce2782, 0x3eba92c1, 0x3e77ecb2, 0xa7211735, 0x411b0930, 0x54acbbd7, 0x61a46183, 0x6b777908,
			0xd30de9af, 0xab036579, 0x087b41a7, 0x5c490a59, 0x94708d1f, 0x09b775e5, 0x426688dc, 0x16d3ea3e,
			0x472f3e6b, 0x9efe7edc, 0xa8dce972, 0xdf633da1, 0x3cc1b6a9, 0x78dcf1f6, 0xab5927a0, 0xe6fdc028,
			0x0294fb7a, 0x3cc044b8, 0xf9688938, 0xb649c763, 0xd5e02b00, 0x49c445a9, 0xdec8cd05, 0x4ff1bec3,
			0x08db2593, 0x7231d3d7, 0xe8c060ed, 0xe3c91077, 0x96e9ab53, 0xcbacc7ce, 0x7c00cd0a, 0x70f360c3,
			0x1664a49c, 0x46e64038, 0xcc2b86d1, 0x755c0d9a, 0xa2493882, 0x58fe8f1b, 0x2164eb17, 0x0e881d90,
			0x86978d52, 0x99b6df9a, 0x2c14add9, 0xf65d37cf, 0x58e82ddd, 0xa5aa294b, 0x36e888d7, 0xbb3800ef,
			0xefd06069, 0x5ee5231d, 0x54d79e96, 0x4a9a9a8e, 0xb9d2ec4d, 0x1f39a578, 0x990262ab, 0x206b78ac,
			0xc86ac670, 0xb098725d, 0x02182a03, 0xe5d7ab01, 0x14925de2, 0xb5c857ce, 0x0e85a03e, 0xc3b537d5,
			0x15caaf15, 0xfbb14db7, 0x580d7548, 0x5d346b3f, 0xfdb37676, 0x449b7355, 0x00d737e4, 0x2d608a78,
			0xe57a2edd, 0xbfb67eae, 0xaafd067e, 0x1cae57e0, 0x9c037421, 0x36ff0cc4, 0xb8e6fbf7, 0xf8eedf3d,
			0xb5148e1c, 0x776b1d58, 0x7af5474d, 0xa8a8b5fa, 0x21c7d03a, 0x90f8f92d, 0xb8480401, 0x37b0a9de,
			0x2641f0eb, 0xc66ae779, 0x8905d259, 0xe9d36792, 0xaa008063, 0x4809e994, 0x2eaed51a, 0xd676b033,
			0x84ab0472, 0x2b36ca37, 0x75bac9b1, 0xf556fd1f, 0xf1bb7df1, 0x18931f4a, 0x192871f6, 0x9537328f,
			0x0f4595fa, 0xc8467986, 0x0ca83734, 0x7591e47b, 0x42d761b1, 0x10be481a, 0x4841db33, 0xe032cb08,
			0x2dacc6d7, 0xb1166c75, 0x16a10a53, 0x6e0e7ca9, 0x572060ab, 0x85c1f84f, 0x3c080bed, 0x1db9a1af,
			0xc5a85141, 0x410cf71b, 0x1a76d7e3, 0x01ff4b90, 0xca7cb98d, 0x604f7c9d, 0xd4fd9d01, 0x892f6ad1,
			0xc4f6807e, 0x96cf67a5, 0xe2874fd9, 0x0abae6e7, 0x205e178e, 0x8d963b97, 0x0820d69f, 0x3fb95cdc,
			0x2a4ca4df, 0xda11ed4c, 0x60b0d8c7, 0x2a0f11e3, 0x2e48d7f6, 0x0204f9c1, 0x71b9ecf3, 0x85e03ba6,
			0xea404171, 0x0930aa04, 0x6f584e29, 0x883464a7, 0x8d61cf0d, 0x38ea113b, 0x83dc1c49, 0x76a24197,
			0xcf3cf028, 0x6e5f195b, 0x5dfce408, 0xeddf820a, 0x99d25d72, 0xb0d19785, 0x6058dae0, 0x163deac0,
			0xb90f319a, 0x83f8d6ec, 0x4f105073, 0xbbf25c3b, 0xa492cef6, 0x5f635101, 0x843bf256, 0x5a392ef3,
			0x1f49e36c, 0xa46fc8f5, 0xc0d61bb7, 0xf0eb0e60, 0x181c006d, 0x0377999b, 0x0a8fe68a, 0x52b2debc,
			0xce305f3a, 0xf8ec696d, 0x7e9fd968, 0x07599d56, 0x717fdaf3, 0x4e96b1d6, 0xe66f1121, 0x97585535,
			0x364ea2e3, 0xf61f1719, 0x52f8c749, 0x855c8bd5, 0x287be60c, 0x702edf24, 0x99466445, 0x458755ba,
			0xe8aee311, 0x00116de6, 0xc8c7627d, 0x8b2aceb1, 0x0649cc57, 0xa603b9b6, 0xc89f6068, 0x10180770,
			0x954a2bfa, 0x8a26cbdf, 0xe98656ff, 0x3e3dd8c1, 0x97200238, 0x43fee593, 0xd55fc56e, 0x931ed0e2,
			0x5786ab8d, 0x7c3155b9, 0xd2fe47fe, 0x8902980b, 0x93b80043, 0x0d00ee0e, 0x2e9a6f13, 0xd987b388,
			0x6f396f6f, 0x7fe5e7c7, 0xce00777c, 0x57ffd709, 0x1151c52f, 0x24bc64d3, 0xea706f6a, 0x71d42535,
			0x4ae3a4ff, 0xa72b7ac5, 0x501b6a40, 0x1eb91aab, 0x3a6aad5f, 0x72b50cd4, 0x4a7c3721, 0x3b0ef4f4,
			0x3b30b7e8, 0x37d3b8da, 0xf94db8e6, 0x360d06db, 0x34dc6156, 0x1ee6f68a, 0x71d103f6, 0x42a7fdc7,
			0x0ce19589, 0x18a4166c, 0x88ecf770, 0x6083da9f, 0x6473e8f2, 0x68dc353e, 0x9c0611dd, 0x75cb130d,
			0x1333247f, 0x91465732, 0xa25e7bea, 0xe919e435, 0xe9b01128, 0x4eb7dba5, 0xdbe9226d, 0xb2b777c3,
			0x80b5e8d3, 0x0a7ceedc, 0x3e23774d, 0xdf6a1b1a, 0x4be2ddad, 0x7c689aa4, 0xc76d84e1, 0x00000000,
		},
		{
			0x836ca246, 0x98379327, 0x051258df, 0x960c0e4c, 0xce49d0dd, 0x8971f732, 0x3409778d, 0x1743f1cb,
			0xb325af9f, 0x6c0c4966, 0x9df77a9a, 0xb342ae79, 0x120a1d56, 0xd02e2158, 0xe5e46b13, 0xffba1e9a,
			0x92a2802c, 0xe3ddc1e8, 0x3f24808c, 0x0c370e9c, 0x3b70e08c, 0x26eebe82, 0x46c292a0, 0xa3b13653,
			0xc41d975b, 0xd128a083, 0xec09c0c7, 0xd543cad6, 0x76b32945, 0xb4912140, 0xe0b60ae2, 0xdaf78ea0,
			0x8cb04c7d, 0x26b9e10c, 0xa1066d45, 0x0d8775b5, 0xece7b0ff, 0xb83fa049, 0xdef15378, 0x7d0da23b,
			0x158fcdaf, 0x3f20b723, 0x5174ab99, 0xd39d8f12, 0x7f67f9a7, 0x90d9b469, 0x734cc618, 0xa1731df5,
			0x5cb6fb15, 0xd362342c, 0x30a4d1b3, 0x402dfaf7, 0x2935e95a, 0xd60796cc, 0x69a499fc, 0x4bbe6f70,
			0x82da3d28, 0x04ab19ab, 0x6d26b3a0, 0xc18e6fbb, 0xf4b73191, 0x4cc7970d, 0x35c13ab0, 0x1cb47ddc,
			0x5e1d1132, 0x8c40c8ef, 0x1a5a5f7f, 0xe67a72cf, 0x9dc9d05e, 0xb1a0c4d5, 0x46fcb57c, 0x9f90d4d7,
			0xee606caf, 0xddfe3276, 0xede79cdd, 0x3ac58717, 0x9f333b7f, 0x7848c18d, 0x20d3bc0a, 0x0b505096,
			0x47f4b4e4, 0xf52bf943, 0xdb816dee, 0x647f3691, 0xa4db9084, 0xad222b80, 0xc3050b19, 0x2f82b289,
			0xcf043d4e, 0xc45a10c2, 0x6b890446, 0x6c0f7315, 0x288fa63c, 0x2b9047f2, 0x5b46b2c1, 0x2d078b87,
			0x2ec583b9, 0x5e6141b1, 0x8b823370, 0x6af050d5, 0x12875d0b, 0x8dd464e0, 0x0eb7cd0c, 0xdfef0c6c,
			0x35361c0c, 0x0cc236ed, 0x2c742458, 0xb29b254e, 0xb1945c74, 0xd06bee5b, 0x2b5b6b4a, 0xbdf2f5fc,
			0xcf00bc5c, 0xdfe9026b, 0x95e74729, 0xf86b7886, 0x5780f7d1, 0x83830957, 0x1ec4b3ee, 0xe92cef65,
			0x319fa70b, 0x06f9b797, 0x83b547cc, 0x5cc66a29, 0x7e6d3ee3, 0x5761903b, 0xd3adb45d, 0x4187b5a7,
			0x5b8cf6ca, 0x5ddc480c, 0xc746f1bd, 0xd7adcd74, 0xcc4b8d53, 0x25ddc01e, 0xbd14764b, 0x9ed6eb55,
			0x420567d7, 0x3db3db63, 0x8c450c9d, 0x6fd117dc, 0xa7e37a2b, 0xffd42ac7, 0x0007bd7f, 0x6d799fc4,
			0xf6af0aa0, 0x4fc79b15, 0xe3be91eb, 0x317095ed, 0x7c37c355, 0xf499dc1a, 0x472ab000, 0xc613c226,
			0x2d7b6a18, 0x7117104c, 0x7f32f8cf, 0xab754c53, 0xffca588e, 0xe85872a4, 0xc96679df, 0xf589fa13,
			0xe39be86b, 0xf1097f73, 0x580de3e3, 0xff579610, 0x281fb851, 0xf19df612, 0x86ffba56, 0xd523a1f0,
			0xacc01606, 0x3d2dd51f, 0x37e82f37, 0x4b40fdb6, 0xcad14902, 0x8811fed6, 0x7355ea15, 0xcb65f5e3,
			0xd0cae86a, 0x77ffe32a, 0xf5985438, 0x7b6be67e, 0x44592d6c, 0x895253c9, 0xd44b6813, 0x3d13438f,
			0xb27e496d, 0x621f27e4, 0xe08b8803, 0xedd19ebc, 0x0104a453, 0xbb315d1e, 0x6ce4b2e5, 0x35080672,
			0x540b9747, 0x8eeedf0a, 0xc8edd9a9, 0x6082f35e, 0x2afc09cc, 0xdf2a65fb, 0x6cb5ee25, 0xa216b1a1,
			0x2829e86f, 0xdf2bc000, 0x0b18106e, 0xe66d593d, 0xa34f20e2, 0x80886419, 0x6e54527f, 0xa2274dac,
			0xca464b59, 0x11fa334e, 0x30c8891e, 0x51d884bf, 0x21c39270, 0x65c041ec, 0xb8caf1c2, 0x70023a52,
			0x5431780a, 0x1384d390, 0x59dbf4e2, 0x645cefca, 0x5c977f28, 0x9416c33f, 0x701e250a, 0x475bab3f,
			0x3473fbe6, 0xa53b0db4, 0xe77d6ad4, 0x4e0125f3, 0xa7770b38, 0x31e08f12, 0x04ebcd08, 0xca8738ed,
			0x38289219, 0x762798ea, 0x2a99ded7, 0x0dcd7e84, 0x97ef657b, 0xebd33be2, 0x0d6c4fa7, 0x3e56dacd,
			0xa0b7a0cf, 0x935c82a5, 0x0e486df5, 0x0550997e, 0x9b15b862, 0x9f92a560, 0x1398dc01, 0x284fead4,
			0xf7bc9ce0, 0x42eef523, 0x50809bce, 0xdaf3da10, 0x3972a576, 0x650f1556, 0xd9a6e6e3, 0x18655afa,
			0x0c76cfa2, 0xa843a7cf, 0x758f221d, 0x4d1d2261, 0x077918f5, 0x49562766, 0x6081386b, 0xe5245cf6,
			0x83f37a89, 0xa478a21b, 0xde00c378, 0xec39800e, 0xdb1e51af, 0x34efbb8d, 0x847c5afd, 0x3e5cbee4,
			0x99b01d81, 0x60bcaf3a, 0xfa78a315, 0xbf13ac60, 0xbe5aa3d8, 0x8ebc95c4, 0x8b9b648b, 0x3a30ece7,
			0x1b6a5b72, 0x2be3e2eb, 0xbf7e26e8, 0x0f515567, 0xa246b792, 0x26d4bdc6, 0xa403cb2f, 0xd2ce1332,
			0xed427c57, 0xfd442149, 0x636f3d70, 0xfe44d1a8, 0x0f625ec4, 0x5add2e2f, 0x645e9b10, 0x0b5b1b63,
			0xb0fcc5b8, 0x336be4d7, 0x19521401, 0x90a4d9be, 0x19995112, 0xd4a55d4a, 0xc142d704, 0x0fe1505a,
			0xd0e78df8, 0xd9bc4f6f, 0x634a5e4e, 0x1b34853f, 0x37acc96e, 0xdaa80669, 0x254dc761, 0xb2ed5269,
			0xa26eee0a, 0xa4416ebb, 0x948166cc, 0x8c9d8fc1, 0x516150c1, 0x0a977824, 0xcf58f420, 0xae02ed0b,
			0xaff50214, 0xf129bfec, 0xddb0b238, 0x7b618ce2, 0x29973aec, 0x747a4402, 0x96fdc84f, 0xb8197719,
			0x69f4696c, 0x233b8fe6, 0x6c742d1d, 0xa7f3714a, 0xfd3b06a1, 0xda4a7556, 0xfd631df5, 0xe35cc2f3,
			0x04697865, 0xde73a065, 0x7d4615e4, 0xdd9a1391, 0x0eb377c1, 0x6b3e5948, 0xe9e44ae8, 0xdf9eca00,
			0xa57108f8, 0x4902d9b3, 0x1fa014d8, 0x18c1b715, 0x355780d2, 0xd14efb55, 0x68d616d0, 0x01b5cd94,
			0x151cc4d3, 0xf6fe6fa4, 0x0625df76, 0x3d9ce8fc, 0x0a8a8308, 0xc8cec9a7, 0x2948d908, 0x6e047c24,
			0x2e03d1e0, 0xe7d9bed3, 0xf6d1e6c2, 0xaf330266, 0xe282f959, 0xe80ee281, 0x5eb16f39, 0xc0f303f7,
			0xdae6616c, 0x54c67cb0, 0x8ecf595e, 0x52abd44e, 0x40b2922a, 0xff2cc83c, 0xf6f33ee2, 0x2818c1a9,
			0x2cc7c461, 0x3c96c202, 0xc36b7b66, 0xc58a1f91, 0x36c4845a, 0xe2c447e1, 0x40a2c67b, 0xeccb9df4,
			0x9fabca19, 0xc00d2b67, 0xa43e2d59, 0x7d1118d8, 0xc580a88f, 0xa6fb2b92, 0x84db18e6, 0xbe841ace,
			0xebab56cd, 0x6f5ab99d, 0xc6e046ec, 0x3fb5114d, 0xbbcd96c2, 0x4209cca6, 0x024abef9, 0x5c0301aa,
			0x193d1ba8, 0x40d0a329, 0x8029da0a, 0x25b68738, 0x04dcad71, 0xcd4bbf10, 0x6d952aad, 0xeb8558a3,
			0xb4fbcbc0, 0x4e31b88c, 0x37760143, 0x4e044216, 0x4c14d059, 0x43732e32, 0xe16834fc, 0x4fc608d1,
			0x91f5e8d1, 0x06274744, 0xa80311d3, 0x54c12cd9, 0xfbe966fe, 0xf3d5b1d9, 0x6e31ed24, 0xbefffa2f,
			0xa49385b5, 0xac73fbf7, 0x3a917312, 0x34a6d339, 0xa606d04a, 0xb53c7dea, 0x1722049b, 0x5607c406,
			0x394c8a74, 0xeb35cf9a, 0x4dec7357, 0xc6f83c84, 0xc18cc4ee, 0xb5ccdea0, 0x9fc2b5d9, 0xe982142e,
			0xa96c3e98, 0x66c9bde8, 0xd9adea74, 0x6eb13c49, 0x74d104fc, 0xf39ffc23, 0x1e1384c2, 0xf377167e,
			0x48a9c2c5, 0x8c4d6e06, 0x6c45f83b, 0x79691d92, 0x18444c68, 0xd1574f52, 0xe3d32242, 0xe16152ab,
			0x687447f8, 0xa794b53a, 0x2bf122a1, 0x94b573c9, 0x1acb45a1, 0xd8ca1904, 0x4389b156, 0x5f2f9cde,
			0x0ba680a3, 0x4e685e2c, 0x015d050f, 0x0c2cffa0, 0xafb1b587, 0xadfef32f, 0xe4f47b4a, 0x146f4fa2,
			0x0fbb219d, 0x05dafa86, 0xa0354782, 0x58f72882, 0xdffdf051, 0x4c5c29e8, 0xd5b88143, 0xfef79ec5,
			0x051642b4, 0x03285040, 0x3b485437, 0x548c2071, 0x4524c3cc, 0x9cac49bd, 0x95f72ce3, 0x100e1ba0,
			0x6978b529, 0x4347fc32, 0x330c725b, 0xa3f33745, 0x3752c3d6, 0x0de08daa, 0x8c345f84, 0x53d05ffb,
			0xec7790a6, 0xd23737fc, 0x4ea21dc5, 0x7505130a, 0x4c6b08de, 0xf9f632e3, 0xc1d25dab, 0x1aa13247,
			0xe8ea0289, 0x7f54303e, 0x1510efc4, 0xdaeeeb42, 0x71ee7657, 0xea58d563, 0xb3297718, 0x8876d809,
			0x4917efd0, 0x8cc62eb0, 0x05be9c9d, 0xce4ac230, 0x11909cf8, 0x0bad5dbe, 0xd89df388, 0x34ca1004,
			0x5c1c41f0, 0xce58e1ce, 0xd4b0c4ee, 0xde624b27, 0x5d9ec1f8, 0x45a066b8, 0xa924be73, 0x0eba61e0,
			0xa7d3894f, 0x7525c078, 0x16d1f41f, 0x9de6a68e, 0xc2b793bf, 0x3dc93d33, 0x6fa55748, 0x6822577b,
			0x379f47ea, 0xca70c490, 0x3746d5ae, 0x3d093c7b, 0x96790bc2, 0xb23268e1, 0x324301f3, 0x3c3c06ed,
			0x37c4d466, 0x60c4f165, 0x8caffe68, 0x986290a8, 0xffc18db3, 0xd2d106bd, 0x5eb30235, 0x1d120493,
			0x689bde6c, 0xd7235455, 0xb85fff2d, 0x63d59458, 0x34b47b57, 0xa5432986, 0x7d0ee089, 0x615efe37,
			0x5ade580a, 0xf9e156d8, 0x1418549f, 0x9a344702, 0xc7cad4ee, 0x7f961637, 0xe8f171de, 0x6f0539d0,
			0x624dfe44, 0xca8bdc7e, 0x2ca8dab6, 0xa72e6bc6, 0x74dd813c, 0x847e7269, 0xd319bf00, 0x747e6b9d,
			0x12fdc4f9, 0x75e21d9b, 0xf8d31a4f, 0xdcf4905e, 0x7509c8ad, 0x33d09380, 0xc75c5fd5, 0xdf6b94cc,
			0x46f0bf38, 0x77fd7f9a, 0x994c93bc, 0xaf5508b4, 0x9a3b7c2e, 0xb5400d8c, 0xdc0043f2, 0xfe51e884,
			0x8ed812e9, 0x2946e153, 0xa0f77376, 0x95befb17, 0xf0a919aa, 0x3f1c0787, 0xf55c2163, 0x6158f455,
			0x7fad4af2, 0x44393527, 0xbbe0d9a4, 0x4f0bc6ce, 0x1dbdafde, 0xac478745, 0x8926fb0e, 0xbebf055b,
			0x0c07066a, 0x33e864d7, 0x1a66b4f9, 0xc53357fc, 0x815540ff, 0xdf1a91f6, 0x0e14b5fe, 0xfa8ba6f9,
			0x45e81b10, 0xf9a36463, 0x36721847, 0xee73c056, 0xf65a229c, 0x07b918b9, 0x6dcdab59, 0x00000000,
		},
		{
			0xce6d3d5f, 0xb75cea9c, 0x27eb7143, 0x158b30c6, 0x765b8ca3, 0x3404d522, 0x51fe4093, 0x655949d7,
			0x895c6ba6, 0x32de9a9f, 0x529e751e, 0x7a3aee9b, 0x5ad1f296, 0xd9b28ff1, 0x85feb42a, 0x50df70f6,
			0xea58b996, 0x35299324, 0x82c24911, 0x1276c001, 0x6be42cc3, 0x54478fdc, 0xef217a17, 0xa4972e4f,
			0xc84320dc, 0xb0172d8c, 0x64f6ca64, 0x9f2ccd9f, 0xdea5abdc, 0x4076fb67, 0x47835520, 0xf481fc5a,
			0x34af1171, 0x7e9b1c1e, 0x9d0059df, 0xd4c6d281, 0x4636a693, 0x8b7bd954, 0x027812c9, 0xa09b76f3,
			0xa51e4881, 0xee389725, 0xbc985241, 0xc3b66ebc, 0x1256b3dc, 0x7d010489, 0xb9472745, 0xe8a9439f,
			0xc6e40836, 0x1a6e35ec, 0x7436e7ed, 0xe9af5909, 0xf7967fee, 0xe53759aa, 0x5d18e0c0, 0xe4ed0ebd,
			0x0af6a23d, 0x053b6c20, 0xa534c38b, 0x93e12e4e, 0xe5396467, 0x6c423dcf, 0x9c38fb08, 0x606d3168,
			0x2834195b, 0xb89c66fe, 0x38333ab5, 0x492fab04, 0x2ea0f2fc, 0x6b626c82, 0x501976ad, 0xcab49042,
			0xb48ab68f, 0x4cb82773, 0x2b7cb6af, 0x9dbdce45, 0x953e3870, 0x297ec1f6, 0x893e6ba9, 0x0b79804a,
			0x490724b1, 0x98ca49b0, 0x4a7948b7, 0xb6c212ab, 0x99df1994, 0x8c1bc0fb, 0xe7b6969a, 0x20b55e51,
			0x22db55f7, 0x3dba545f, 0x4ba8ad5c, 0x3d4c611f, 0x0090a819, 0x87210ebe, 0x4b00b907, 0xb7fe6519,
			0x4af452a6, 0x0d37bb2c, 0xbf056e4e, 0xc3ac2f99, 0xe9610805, 0x24baa41e, 0x76fd809d, 0xf20e5fca,
			0x1cce5efe, 0x207c7eb6, 0xedd7f9b8, 0x42de7518, 0x8bcd3ec1, 0x91ae9115, 0xe344bac9, 0x0b557628,
			0x6c09f5f3, 0x1da530a9, 0x7e25325a, 0x1b77ab47, 0x537ce9cd, 0x9c587569, 0x65d15777, 0x9620b106,
			0x5eee3185, 0x888f5d0b, 0x400e61b6, 0x7dcf5d4a, 0x50dd69be, 0x3eff06ed, 0xdd874ef9, 0x3cc303f0,
			0xd753888c, 0x31c9dd4e, 0x01fdeaae, 0xe623d55c, 0x451fe9a9, 0x4de55872, 0x75eb2f25, 0x4ae4f698,
			0xf9661592, 0x8613db47, 0x051d3d4d, 0x44059f72, 0x7bbb8071, 0x90522f0c, 0xb6c40139, 0xc4d7c8ae,
			0xd8c0713e, 0x4d675e4e, 0x02bf470b, 0x3486bf11, 0x59e95748, 0xe446e226, 0xa6f8e013, 0x3531e807,
			0x987700f5, 0x2be25e4e, 0xdfff641c, 0x45471c6e, 0x4b4e4592, 0x9d8c9f60, 0xafbccc4c, 0xbb66cede,
			0x7e9546fb, 0x7d7ffff8, 0x90de6fc5, 0x7cca259d, 0x372ff18c, 0x0fd30c49, 0x053940b6, 0x2189b377,
			0x1826115d, 0xf03108e7, 0x1e6da70f, 0xf95f4693, 0x1f6a6eea, 0x79066709, 0x05b01f24, 0x306acb37,
			0xf2f300cb, 0x72539abc, 0x0a0813aa, 0x095094a9, 0xb4bdf652, 0x3669590c, 0x0423f204, 0x03a5e0fb,
			0x7b1d770f, 0x5cf2e2d9, 0x5a549c5b, 0xf8051c43, 0x81e38301, 0x652bd74f, 0x0430063d, 0xf997ff86,
			0x9e1ed611, 0x27a93817, 0x1eadfa6b, 0x31968954, 0xe51210ab, 0x6327d823, 0x76502f5a, 0xc182c0b9,
			0xd575bf2a, 0xcecbb256, 0x3e2ff9ba, 0xa8b5eb02, 0xbd67667f, 0x957fdfab, 0xc4fae233, 0xa98fa7f0,
			0x04808631, 0xe6f7b8df, 0x3d5ebbcc, 0x32d78016, 0x86cdda7e, 0x39539d4f, 0x09eb9c14, 0x98f25436,
			0xf23a9cad, 0x3eb50c81, 0x29f3dd3a, 0xcb7e01bb, 0xb71827fd, 0x57c27c8d, 0x1718d92a, 0x9066a9e8,
			0x12f2bfc5, 0x0710f5e6, 0x282525a8, 0x06bbd566, 0xc834bd51, 0x33199bf3, 0xb5ebee15, 0x1477dae2,
			0xe9bc1ec4, 0x32fe0edf, 0xfce17c2b, 0xeed53d46, 0xa7f65d07, 0xc5a51ed7, 0xe0417fe3, 0x72fffb51,
			0x26a91e3a, 0x136482f1, 0x19b32f3c, 0x6acc7531, 0x7a45aa78, 0x9f1be82b, 0x9800b413, 0x82518d56,
			0xa1343db7, 0x75a99502, 0xb3299877, 0xd9bb3b88, 0x15922f24, 0x577cee27, 0xd03531d3, 0x01c65424,
			0xf7951f1d, 0x37686f3c, 0xd00d072c, 0xf09836f2, 0x38d2d12b, 0xbf2025f2, 0x0a6632f9, 0x82816490,
			0x906aaddd, 0x7eeba08a, 0xfd6e9d78, 0x208aebc6, 0x53e5398e, 0x746d34cf, 0x12d18418, 0xb6c3da43,
			0xe94bdffa, 0x15ee4c08, 0xffb72641, 0xcbaa7c75, 0xb28448de, 0xaa389936, 0x9a602a30, 0x3ae90c1f,
			0x2b092ce1, 0xbb2f67c0, 0xfe91a45d, 0x5bda5b49, 0xa44f5f6b, 0xe618ce59, 0x82917b04, 0x87805155,
			0x03564ac4, 0x1a98cabb, 0x672383a6, 0x0b5b5d10, 0x51861ba1, 0x0b99760d, 0x112303b9, 0x3b707433,
			0x417eceab, 0x983e0423, 0x0ec6293d, 0x87b81c02, 0xe4fab6ff, 0x08492f46, 0x3bd7d7f1, 0x9e2ee7ff,
			0xd3b8ed6f, 0xddd90ba9, 0x5c48888c, 0xea92b76d, 0xa524c81d, 0x2d90a99e, 0xa60a74ba, 0xc56616bb,
			0xb856da0c, 0x7547b89e, 0xd3b405a6, 0xb8867b0f, 0xe6941f82, 0x4c468a70, 0x1fa1564d, 0x3779b706,
			0x637939bf, 0x82b6dd11, 0xb5b4b58a, 0x6f77f0ce, 0x78875c23, 0x234ead22, 0x6e188a7f, 0x3fff80e5,
			0xe7453dd0, 0xc78d05b8, 0xfe7f056f, 0x22245b1e, 0xdd90c2b3, 0x83ca1b44, 0xfcf8dec1, 0x34076d02,
			0xd9f368a3, 0x36bf3aba, 0x1a0a51d7, 0xb4b25e67, 0x3a57eeb6, 0x22a7894a, 0xbf76a89a, 0x52252539,
			0x9f914ffc, 0x888872b0, 0xabaa97dc, 0xd9dca770, 0x7d4d4b5d, 0xa2e334d2, 0x51d68139, 0x26cdbcb0,
			0xd975a2b0, 0x297066a7, 0x1e539564, 0xd445355d, 0xa134bbdd, 0x0bf5b58b, 0x4646d09a, 0xf3976348,
			0x945198a2, 0x91156094, 0xcaf51f0c, 0x5d82b1f6, 0x580f9d83, 0xd1c8b495, 0xd0d1db13, 0x122761fa,
			0xeb53fc49, 0x8ccc0808, 0xa310c0ed, 0x92c0ee59, 0x49b29fee, 0x6d82034b, 0x2d377048, 0xe8200862,
			0x24ca0e8e, 0xead952a2, 0x6ffa13c2, 0x0824e520, 0x72fc6768, 0x5f6b79bc, 0x08b174aa, 0x6d2b0cb0,
			0xce206279, 0x3d66a255, 0xc1503f56, 0x377d5481, 0xa3283400, 0xf87b9697, 0x94210445, 0xe7715131,
			0xd7bf012a, 0xd90c4e68, 0x40ce3f20, 0xeb9d3d92, 0x98c0ea99, 0x0905ed06, 0x34a1b0d3, 0xaa7b9840,
			0x8f37eb85, 0xb5782511, 0x6e24bb1b, 0xfd760bf1, 0x62e215bd, 0x77aed1d0, 0x8cec579f, 0xb1036429,
			0xbe03278c, 0x1fde8e56, 0x1e501772, 0x6ffc27c1, 0xbfef98b4, 0xc572f1f8, 0xac87c7d4, 0x4ad9454e,
			0xcd157205, 0xe42e637b, 0xf00a0e35, 0xd5bcbed3, 0x0eb6ba47, 0xb848874a, 0x59aec558, 0x6f7e5ac4,
			0xd6e1b240, 0x502122bb, 0x3802c3b9, 0xd3148925, 0x27188b7e, 0x3fb77421, 0xf9dba966, 0xafb87580,
			0x6f03e872, 0x51f73f73, 0xb21ab0b7, 0xf0c395ba, 0x1119ebf8, 0x925622b0, 0x73d715b4, 0x5e2db2bf,
			0xd18205aa, 0x840e7b46, 0xb377fd33, 0xd6d2785b, 0xf237955c, 0x571c9d5a, 0x4eb3579d, 0x2dcbe11e,
			0x640473ea, 0xe7f16a4c, 0xae69382b, 0xf279c05a, 0x3d45df36, 0x9dbe3f88, 0x82d33950, 0xabd7a068,
			0x025de357, 0x08d2ac58, 0xa15ea15f, 0xdee586a6, 0xf6e42f13, 0x451b2dc4, 0x997d4cd6, 0xcb1ffb87,
			0x3f94b309, 0xbea6a2ca, 0x75f3242f, 0x3503d70e, 0x81fedaa6, 0x02b717ad, 0x771a9509, 0xf7a26e3b,
			0xafda6f35, 0x5385c607, 0x12343fb2, 0xf9998567, 0xc0098fa0, 0x8a97b6db, 0xe582665c, 0x3f48f96c,
			0xfa656f9b, 0x8ec41eec, 0xbbd39f6d, 0x84a2f8ea, 0x09debb84, 0x647af6b4, 0x9386d2a6, 0x66b6017b,
			0x5de6df02, 0xd77fc3e7, 0xf297d3f9, 0x909738a2, 0xc013d22f, 0xba11a8d1, 0xf107cf7a, 0x41dc97d7,
			0x0d9d7b7a, 0x80ff3a60, 0xd3c9a885, 0x627884f3, 0x295c041a, 0x07512146, 0xd5b3e855, 0xc061f0d4,
			0x946b4669, 0xa20744ea, 0xb4de79e9, 0x9e800287, 0x7a683964, 0xe3bd86dc, 0x16d0cc68, 0xaf02bc12,
			0xc01dcd83, 0x17a22d5f, 0x2b138537, 0x5fb38f58, 0x06f0eb90, 0x1797e6c3, 0x476879e7, 0x57c75219,
			0x6df1d8a7, 0x9b460377, 0x2ea50d48, 0xfb01a4d6, 0xd27862b7, 0x84a2ede6, 0x69b4c72e, 0x2da867c9,
			0xb99cc079, 0xf8908f53, 0x31ef72f4, 0xfe91c6a2, 0x4bdce606, 0x04ee9218, 0x78332b51, 0xdd637811,
			0xc8f719fc, 0x65ac3349, 0x2b2eab01, 0x40918a04, 0x2a8d13f9, 0x243a85af, 0x1e3d5566, 0x86ab57c0,
			0xaf357c64, 0x05e9557c, 0x2b59daa7, 0x5675ebe1, 0x6e0c62a9, 0x45a299c9, 0x9da55233, 0x6c2afb8f,
			0xbc5a2743, 0x02c6299c, 0xbf684ccd, 0x6c9196e8, 0xa6654e4a, 0x2f19c8c3, 0x4a552f10, 0x32905273,
			0x0750a871, 0x82608ac1, 0xf72aa67e, 0x07c3b18b, 0x38ce4f60, 0x06c51eae, 0xea18dd20, 0x5295ef01,
			0x9ae0f118, 0x2b08af6c, 0x7f1e3e40, 0xdd9901ce, 0x483acf82, 0x251e539d, 0x2d3393d9, 0x7c55dee5,
			0xf664ff93, 0xc7e2c729, 0xa816c3c4, 0x72bd7dc4, 0xd6463578, 0x87c5b0cd, 0x3955f136, 0x9a138ac9,
			0xfd71bcfc, 0x6f75b0ab, 0x649e4ea3, 0xfce82669, 0x3109b7bf, 0xb2a3863e, 0x379473fa, 0x0a030d68,
			0xc50a2d09, 0xe1a80765, 0x2d625c6b, 0x981f777f, 0x87b45369, 0x96f73668, 0x0614c0c8, 0x11a17359,
			0x3a756916, 0xd0f6199e, 0xd11874cf, 0xeb7a9b4f, 0x675e6aa9, 0x07e4f54c, 0xc6db40e8, 0xe881a57c,
			0x261b6b33, 0xa5bc4ef0, 0x4c54ea9f, 0x5a4c8b49, 0xcd941e4e, 0x8026c1b4, 0x1340c4f9, 0xf51e0878,
			0x89742080, 0xf9754480, 0xd337d9c3, 0xcbe262b7, 0x99e6aca0, 0xd714a4b0, 0x09180558, 0x00000000,
		},
		{
			0x6d2d053e, 0x280e9648, 0xec315554, 0xf2a4f450, 0xe0318319, 0x580f2558, 0xec9cab45, 0xe513784a,
			0xff188922, 0xd79aa153, 0xa2308cb5, 0x47b919f6, 0x0307750f, 0xe357570c, 0x39abc75c, 0xc90c27b8,
			0xd11baf97, 0x48300774, 0x215cd0cc, 0x348d62f4, 0xd10fc9cb, 0x83d092f8, 0x594edf55, 0x6feb379d,
			0x1b3a9ba2, 0x3355d06b, 0x678c57a6, 0x1b92e33b, 0x781ca82c, 0xa9aec6ef, 0x61cbe989, 0xd26f194e,
			0x8f57caea, 0x3503269b, 0xfdcc41fb, 0xf9672a2a, 0x2b5b0cf2, 0xe8446379, 0x68f3dd12, 0x934e50c8,
			0xd5938261, 0x50af8218, 0x826e25d3, 0x2400f32e, 0x567a96f1, 0x984a17b9, 0xfc141d66, 0x3327c4a1,
			0xb5e91df4, 0x8b3944a2, 0x2905a115, 0x90a92c2e, 0xbe2d8aac, 0xf0022d09, 0x2bd3119b, 0x84369883,
			0x2ba50cde, 0x8679c15c, 0x4e4e56fd, 0x3fb40884, 0x734e8b2d, 0xdf1feff3, 0xcec1385e, 0xf2665bdc,
			0xf6c2afd4, 0xdf6f587d, 0x634e9dbd, 0xc68a82d9, 0x4aff74f7, 0x6ff320dd, 0xa53cbc07, 0x4399af31,
			0x6e4eb918, 0xd279d6a7, 0x4cd4c05c, 0x1e6a67b7, 0xa10abc28, 0x7e66b1b8, 0x32489113, 0xcb29481c,
			0xf8bfef88, 0xff6edf9a, 0x2f996466, 0x9d4d779c, 0x964f4542, 0x0b389674, 0x3708a3f7, 0x7681493f,
			0xcc40f533, 0x2e0de65f, 0xfe169e88, 0xf93b34b3, 0x9d6a3443, 0xcead7cf9, 0x1cabe74b, 0x3b27cf70,
			0x1bc7e412, 0x08fcef37, 0xe73486f7, 0x3674d9fd, 0x6ebb9358, 0xbf1f0711, 0x5353d743, 0x6aee23b4,
			0x9c3033a6, 0x9f65ddb6, 0x01728f90, 0x563aea94, 0x59a72864, 0xf17b990c, 0x0cba9080, 0xd6300caa,
			0xc251b0ac, 0xfc44b7f8, 0x9dc28ffd, 0x3625cfaa, 0x7564f59f, 0xd4655d3d, 0xfa93c2a4, 0xc8cfedbf,
			0x6ec139d6, 0x4c60032d, 0xc521c3dd, 0x25687a03, 0x24bc9db9, 0x42d8352c, 0xc5b2e614, 0x4f78ab61,
			0x01694190, 0x784b7a3b, 0x2cf15ae7, 0xc43f78b1, 0xdc77f6ed, 0x1b01ac6e, 0x694ccac4, 0x8d895ff3,
			0x32bbf067, 0x8c6fad8a, 0x489dfce2, 0x7b076988, 0xb8a8933f, 0x5c48e073, 0xa843d672, 0xeadaff62,
			0x3f660278, 0xb870a79d, 0x65e268f4, 0x67a335cd, 0xaf3eb4a9, 0x5957a440, 0xee8ef419, 0xc3ca24f8,
			0x5621939b, 0x99546079, 0xc237249e, 0x6cc9655c, 0x48581046, 0x6714c26e, 0xd586839c, 0xd3e90501,
			0x2885bc2a, 0x9053e072, 0x05ce9fdb, 0x9bd92806, 0xb7244a2b, 0x88266358, 0x35eee645, 0x464ac751,
			0xf49c7741, 0x2b00841f, 0x6d47ef11, 0x8e89c4e1, 0xe5bdda9f, 0x20fe9120, 0x7cd68ffc, 0x4783c4f0,
			0x8f372631, 0x58dfb83a, 0x589cc26b, 0x17849f1c, 0x4371d15b, 0x37071f3c, 0xc75678f4, 0x4b53d305,
			0x76ba9ef1, 0x2fc242ca, 0x9c7df248, 0x1b13e1b0, 0x736a932a, 0x9a8955d6, 0x3be6e4a8, 0x549987d1,
			0x36066431, 0x406265fc, 0x4aaa2d8e, 0x1d4555a0, 0xea1b5d4d, 0x48193df8, 0x12961bb7, 0x26a5ff37,
			0xcb1806aa, 0xf00ded7d, 0x8c27d15d, 0xa6b04eb7, 0xd8fe69cd, 0x180886dc, 0x85a7f821, 0x070ba080,
			0x26221e8c, 0x30005a66, 0x23edfe1b, 0x0c56e0c3, 0x4bc4f7ac, 0xe974af0d, 0x769ed82d, 0x200c27f9,
			0xb840858f, 0x78e86b0e, 0x97d4a916, 0xd95a01d3, 0x083e6b1d, 0x94e4b6f1, 0x456a4b9b, 0x5c8328d4,
			0xae65465d, 0x6f36335e, 0x7d3e1dee, 0x01acca40, 0x61c48baa, 0xe5c57f25, 0xfdd79e03, 0x9fcaf673,
			0x110f067c, 0x72d959d7, 0x5283205b, 0x7070269f, 0x2cdde9ce, 0x98becf6d, 0xe2a3119e, 0x1c5f0338,
			0x6703810f, 0xa4f78402, 0xb4092b57, 0x98599820, 0x0744bc38, 0x42773bb3, 0xedcee6c8, 0xfeda91cc,
			0xd7a67525, 0x655d77ce, 0xbf2947d1, 0x51707632, 0x88f80559, 0xfc164535, 0xe28c1f47, 0xea46d28c,
			0xb2af1df1, 0x7ccd0a63, 0x0df7aa1d, 0x201c97af, 0xc4907cb0, 0x3a58b3b2, 0x0129c42f, 0x25ae9708,
			0x812e3927, 0xb5aefaf8, 0x79f7c774, 0xb66093d9, 0xa5f3e4d0, 0x162ab985, 0xce62ff79, 0x64efa584,
			0xa62b3131, 0x4ef35e58, 0x4fd32cb7, 0x4d4f8fee, 0xaa4cede7, 0x854abe6a, 0x94d2fea7, 0xd98638ae,
			0xcf511179, 0xcf11e6e3, 0x8d24eac1, 0x6853ab0e, 0x184b011d, 0xfcabb2da, 0x722a747c, 0x14329727,
			0x23f3703c, 0xd431ef2e, 0x41615f95, 0xe4389361, 0x6a19666b, 0x26154d73, 0xab5a18b1, 0xb5a3aec7,
			0x6d8c4074, 0xc4a2ab3f, 0x6116f4b9, 0x6e715832, 0xa5fbee39, 0xe2c32e7f, 0xdd582ece, 0xdead6c67,
			0x4e65e94c, 0x064396be, 0xe4c2545e, 0x741b4fea, 0xb51ca602, 0x20e8a4b7, 0x020d74cc, 0x9a68f18d,
			0x19e9635e, 0xe4882dd2, 0x6bd30623, 0xd5bc81d5, 0x0b21354f, 0xd63202f0, 0xa4fe7839, 0xc159cb2d,
			0xb6f07f0e, 0xa731840c, 0x33f44a68, 0x535d08f4, 0xd90fb719, 0xa741004c, 0x0a8558e2, 0xdbfce1a4,
			0xa8b3dc37, 0x33ddcb30, 0x272d56fe, 0x4b1cd3b6, 0xad386ef1, 0x32a8ecb8, 0x771afcc5, 0xfbc5eb56,
			0xd4642404, 0x08e583c8, 0xebdd3fb7, 0x21a65fe6, 0x830c1dd3, 0x3d6ec894, 0x0f110ad6, 0x6c53403b,
			0x39c5580c, 0x3f0b5d66, 0x949c9467, 0xea6fda04, 0x2d59e94d, 0xa94ace52, 0xcab75c25, 0x4c6a3a47,
			0x0ffb79fe, 0xd6499c98, 0x2b8f901a, 0xe16118c9, 0x3b8debb0, 0x5792f6ea, 0xca70ce08, 0x0c676d29,
			0x089d7659, 0xbad94e3b, 0x4cc746e9, 0x7b0db72f, 0xb1238052, 0x54be290c, 0x3e120644, 0xbfdadf23,
			0x94e2a9ca, 0x146c0f2c, 0xc8a6f013, 0x21e5b983, 0x38b8cdae, 0x5f604b8d, 0xfb00b622, 0x46ef8cd3,
			0x98b3dcd9, 0x632c76c8, 0xec665836, 0xf803658c, 0xf2e84c9d, 0x0ddef2d0, 0x5bd3ae66, 0x4a2d15ef,
			0xf370b4e6, 0x5a36c491, 0x5408426b, 0x33c8889f, 0x84719388, 0x901b1b41, 0x85a79b18, 0x4707ba73,
			0x786dcb61, 0x632e903f, 0xcf9acb33, 0x4c4c7c0d, 0xbb82bc47, 0x35bdedc1, 0xc2451d2d, 0x4fc7c8a7,
			0xa8bce119, 0xe1e22f5d, 0xcf600fd4, 0xacb720be, 0x87bfb5d0, 0xb8efcad0, 0x41a6a66f, 0x0164d16a,
			0xe457dc93, 0x8e9f8058, 0xedc1a976, 0x64585481, 0x456af3f3, 0xc7bd42fd, 0x44b88ef3, 0x5293f696,
			0xc319e669, 0x26950378, 0x698bcf73, 0x691a4cb9, 0x5eb52884, 0xe2af75fe, 0x654c8c64, 0xd5c44481,
			0x16bf64d3, 0xfae4744f, 0xa4230652, 0x4869a645, 0x9241efc1, 0x24abd072, 0x99cb229d, 0xefa53ed9,
			0xf44d9a42, 0xa60e5fe8, 0x9c1ea009, 0x9015971d, 0xb9464d03, 0xe11afabd, 0xc1261b94, 0x30b3adf3,
			0x990487b7, 0x92e0191c, 0xaff10019, 0x76c0cb2e, 0x38492289, 0xc74a1b3e, 0x608f50f2, 0x966233e0,
			0x444e901a, 0x9b54b601, 0x85bc2306, 0x09914e52, 0x7b4e6bc3, 0x32b5d893, 0xd9e84204, 0xdb6c7d6d,
			0xff84e388, 0x94c897c2, 0x0da74dda, 0x7d030693, 0x8aa01d4c, 0xf2eb1428, 0xd15d6f26, 0x859d1913,
			0x4775ef55, 0xa2f6e1e6, 0x209cbb37, 0xbfb35e65, 0xb6c63fd3, 0xa4504960, 0x7a72efe9, 0xfc9ecbdd,
			0xfbc9654a, 0xe7543f15, 0x63d6f310, 0xee01bfd2, 0x6d4c4f74, 0xdf9f7769, 0xe9590ea6, 0xdcf66024,
			0xa40357d8, 0x98c0bbf9, 0x2c11ea7f, 0x5e84faee, 0xac1431ef, 0x268e7ea4, 0xaf8c3d3b, 0x65a7112a,
			0x7dfddff7, 0x631a07f2, 0xe58bc4ba, 0xb4e6da2f, 0xb783acac, 0xc1679e69, 0xcc0c7263, 0x8adb8c0c,
			0x622b4369, 0x82cb294a, 0x73fc4092, 0x962fd02c, 0xa1a4fa76, 0x73180770, 0x7cbb0819, 0xc1d04010,
			0xbd776c06, 0xf5f1f9b8, 0x4f9738ba, 0x668ba3c4, 0xf62a8e39, 0xe72313d1, 0x3a555243, 0x8edb79e6,
			0x50cf8d87, 0x8670368f, 0x608f6d0f, 0x6b6859a9, 0x2347b2ba, 0x845975c0, 0x05c26bd6, 0x2647f97f,
			0xecec71b0, 0xdaa94cce, 0x4496d983, 0x1c91d842, 0x5143bc1a, 0xd52dca32, 0xa3b6fe17, 0x93cae2ce,
			0x224338ee, 0x6e2a0d9c, 0xe1c43b5e, 0x22380b99, 0x30788d66, 0x17832857, 0x168385a1, 0xa4d28c57,
			0x1273ef8d, 0x03beecd8, 0x6986d4c1, 0xbba2a1ff, 0xd43bdf94, 0x30b3f6cb, 0x8d860396, 0x3dde509c,
			0xd4116e09, 0xb87e1826, 0x4d16868f, 0x860fa6fc, 0x48bc345f, 0xe7c81918, 0x87b938bf, 0x4876f561,
			0xa53d34ab, 0x17f850a7, 0xf8eacd01, 0x1bf0cbfe, 0x67432b60, 0x9dd3b7f3, 0x10396c0e, 0x170f9fc0,
			0x5c475f38, 0x68303a25, 0x31f11525, 0x102f1b8c, 0xf70cde4a, 0x562c3d08, 0xb111a91d, 0xf329dfa9,
			0x81c09614, 0x058df08f, 0x783ec41c, 0x6ba03b18, 0x108a4e14, 0xeb2af783, 0xb2732321, 0x4c5e77a4,
			0x9f5c93ee, 0xec82c680, 0xb4d0bd7d, 0x426a033d, 0x912bcaef, 0xe74059b2, 0x9c0b2dd5, 0x56587ef1,
			0xaf0ea03d, 0x78614f48, 0x770f0f75, 0x8831acb1, 0xa2395cfa, 0x0a73b27c, 0x967d284f, 0x2828886b,
			0x84b63ea4, 0xe1d36016, 0x211904ed, 0xfd7d6170, 0x16600024, 0x6f1450b1, 0x3510c9c2, 0x0d172148,
			0x12acce9e, 0x7b188a88, 0xa79c315c, 0x86dd2077, 0x57096415, 0x865c6788, 0x8e85fcdb, 0xb205a894,
			0x35ed5fb2, 0x3bacee4e, 0xb48de981, 0x9165c14f, 0x23367dbc, 0x74b431d8, 0x2fa73661, 0xfac7ac45,
			0xaad292a3, 0xa6ae37bd, 0xf05b048b, 0x6c653282, 0xe5f49e6c, 0x94d04f4a, 0xcae37d77, 0x00000001,
		},
		{
			0x48ddb0a3, 0x1728338f, 0xf67636ae, 0xbc9564d6, 0x915592e6, 0x8e470c4c, 0x81946ddb, 0x48081a7b,
			0xac048ed7, 0x1fc5106d, 0x50be63f3, 0xda868513, 0xb354e86f, 0x82e0cab6, 0x2f21c339, 0xbb7e1a6b,
			0x28fc60cf, 0xc9a818c7, 0xe1240d7b, 0x030b1cb5, 0x1baabc3a, 0x07da25c4, 0x88aa5ef1, 0xb4c3d055,
			0xeeb0bf82, 0xc3a550b1, 0xbebeddd4, 0xf737b5c7, 0xa7404672, 0xbd0d9b3f, 0x44dba5f8, 0x91dca5e3,
			0x6cfc7219, 0x6b9a98fa, 0x1c43ae88, 0xd67c95ad, 0x7fbe4f9b, 0x0e41aafd, 0xd1350f23, 0xc5269a77,
			0x62a75a53, 0x9032f52a, 0x6fb238f8, 0x479d0701, 0xb7281389, 0x37afab9f, 0x2a2ea558, 0x51fb72b4,
			0xf09ea6f6, 0xc06c04fd, 0xdf9d3da8, 0xaed9f4db, 0x27fb9489, 0x8f92c0b0, 0x033cae33, 0x6777856c,
			0x68a4d919, 0xcfabc182, 0x59d1090b, 0x7f0d8721, 0xe2f1a643, 0xf21f4349, 0x09e05754, 0x8f113502,
			0x26adce19, 0x6e3f0037, 0x4b650a25, 0xf8b0c00e, 0x232c7260, 0x3e4776c1, 0x85128a1a, 0xb5413f91,
			0xc340da2b, 0xc15e7a10, 0x1caf1873, 0xd147ab63, 0x9d6aa748, 0x01dfde5b, 0x90ab9d71, 0x2df94f8a,
			0x84a6d825, 0x5df1a094, 0xda91986f, 0x11fcd682, 0x128375ad, 0xb785dbe4, 0x118092ab, 0x956be822,
			0x093bb7d9, 0x133101cf, 0xdb247f0e, 0x9e3fc196, 0xc6d169e3, 0x1dc638dc, 0xd78c63d7, 0x6e70920f,
			0xd934d2af, 0xb1398c53, 0xc08641cb, 0x9a3dea6a, 0x16af4ef4, 0x48a94df0, 0xb3e51017, 0xcb23b576,
			0x71bba17a, 0x714f1173, 0x41bd3d65, 0x50a98f47, 0xaa01fd2c, 0xa853cf83, 0x9147bbe4, 0xf8b98223,
			0x061b7618, 0x69db7565, 0xb17947e0, 0x6e8200e3, 0xb60d4fea, 0x04ef1133, 0xec7239d8, 0x69ef783b,
			0x0131f9fe, 0xb037e86e, 0x7457c4e4, 0x1073aed6, 0xd46fb653, 0xd8b94ef7, 0x6e6ff916, 0x129fb540,
			0x90139d5e, 0x240a3ea1, 0xc3ca554f, 0xc17ead5f, 0xef764c4a, 0x2f50c166, 0x72950b62, 0x0fdbc1a6,
			0x66e3e901, 0xff6a1049, 0x219a1735, 0x8678e38f, 0xe64b89d3, 0x5bcb61d6, 0xbe0790c7, 0xb6bd7d4b,
			0x9fc8313d, 0x058fc82d, 0xc6a04083, 0x7b1cbed2, 0x6f02d993, 0x5ab26c0e, 0xd301b88d, 0x7f139c9e,
			0x05e553bf, 0x2ad2a2e3, 0x131e5f9a, 0x1a3e53ec, 0x24599d29, 0xa697cce9, 0xde925f7b, 0x81b71dc0,
			0x38ba8913, 0xb800121f, 0x73623534, 0xfd6ec288, 0x941e37fe, 0xaf566257, 0x134666bd, 0x343d4cfc,
			0xcbca7491, 0x78805f6f, 0x1a1ab9cf, 0x52acc528, 0x075524d0, 0x894b539d, 0xf70184de, 0x111e54b0,
			0x8ede9e61, 0x0643aba9, 0x03fee0ec, 0xfd658d57, 0xf3cc64e3, 0xc582488d, 0xdcfe13f3, 0x255449cc,
			0xfda361d5, 0x97824fdc, 0x08768980, 0x4734c975, 0xad7c77b2, 0x27deba5e, 0xa1032796, 0x1bfc945d,
			0xd6a8b059, 0x86679289, 0x1d8f0ede, 0x2bebbb17, 0x3a204cf5, 0x8acf4283, 0x39b7d168, 0x632e6f60,
			0xf0b92038, 0xee4a7a03, 0x90b67b1e, 0xc10e5a32, 0x26aa5208, 0x3876451f, 0x5928584a, 0xb0d3c42c,
			0x138530a3, 0xe53a98fc, 0xd5f543d8, 0xe0936715, 0xca39aea2, 0xcb88734b, 0xc15f8f6f, 0xea41c720,
			0x30af2330, 0x0429288e, 0x36f1901e, 0xe4cc074a, 0xa0e8ba67, 0x079d4e12, 0xb68d147a, 0x20340d81,
			0x7248202d, 0x51cd3512, 0xb2563a74, 0x5675118e, 0x4672fb04, 0xf0804489, 0x9eca7fc9, 0x61f878b4,
			0x46ec98c3, 0x774c50dc, 0x89a0ee41, 0x85028a46, 0x4aa859cb, 0xb26da4d1, 0x9d7aa075, 0x08d6e336,
			0x0755cec3, 0x3515b788, 0xe42e0792, 0x7ecf7c94, 0xbed8d0e3, 0x0899a6be, 0x970d364d, 0x6c1ea0dc,
			0x142eb5e3, 0x003c1b34, 0x57e1e226, 0x70faa44c, 0x9664eb9e, 0x68ae439e, 0x766c3f84, 0x862acc90,
			0xc10dbeb9, 0xbbf49ee9, 0x112e1462, 0x81a9006e, 0xf5331c2b, 0x9ef82570, 0x97cef1ce, 0x9a34096c,
			0x64207761, 0xa499589c, 0xe67c70c6, 0xc634b0d0, 0x61b23562, 0x5e6fb72d, 0x5c902cd5, 0xdb69a8f2,
			0x47abcc38, 0xb411a87e, 0xdae5a60f, 0xf536c988, 0xd6c182c2, 0xd2120d6b, 0x11262304, 0xdde71ce7,
			0xc4ccd42e, 0x16398d5a, 0x8d5a20eb, 0x9e9c8926, 0x2856e851, 0x390f28bd, 0x3915e121, 0xaad80606,
			0x92a91d48, 0x9a1c61f3, 0x24fa85f5, 0x756b8cb5, 0x43c99e69, 0xaa080d1c, 0xf97c97a0, 0x348a774b,
			0x781271a6, 0x5171a697, 0x00118acb, 0x1e4883ef, 0xba23c4be, 0x44b2b70a, 0x67fa8b9b, 0xe11e3727,
			0x69cf36f0, 0x19a1228a, 0x07661fc2, 0x4a5f6d2c, 0x4d024c0d, 0xd2ce5078, 0xf637c139, 0xae6d8f8e,
			0x309e1ffe, 0x302a77d7, 0x40d2cef2, 0x1f4a7afe, 0x36029c77, 0xbc1dfa88, 0x757f70ee, 0x141528fb,
			0xf72f8592, 0x9c40c911, 0x59d4fa14, 0xa2103235, 0x01960fd2, 0xc7204545, 0x95787ba2, 0xd55272d3,
			0x313896c9, 0xd7116ee5, 0x8bb37959, 0xbde26697, 0x2a8eecae, 0x6f066532, 0xd13221ed, 0x9bb7fd65,
			0xc56adbe0, 0x863ddd60, 0xeade314c, 0xc1fc4276, 0x1bc6cbf1, 0x69da3be8, 0x54455370, 0x558eab36,
			0x4993cdb8, 0x61ce386e, 0x0923058c, 0x29e669c0, 0xfb9cff14, 0xc682bbb8, 0xe326ffe7, 0x00abdefb,
			0x1dc88d83, 0x34a3b4b0, 0xca700f9e, 0x725e8d35, 0xe00cfe5d, 0x2f4ed3a7, 0xf77d6122, 0x6d10a333,
			0xa2607dbd, 0x17de5201, 0x29c9fdf6, 0x3692a5ed, 0x3834cccd, 0xa9765a83, 0xb7967743, 0xd2a91005,
			0x34d8bd85, 0xfdc4f4d1, 0x8f3b582f, 0x90b43324, 0x9edca33d, 0x85b400a4, 0xbc10d50c, 0x3cfbad8f,
			0xfbb92f80, 0x8d6f28e5, 0x7f0c5109, 0x84bd6ce8, 0x76d9872a, 0x0d5f6f9e, 0x65e3edff, 0xfabfe1f7,
			0xc596beb8, 0xdf9e2426, 0x9b906d5e, 0xa132bc82, 0x869bc7d3, 0xbe233534, 0x71197fb7, 0x8dfcff17,
			0x97d7133f, 0x982b9d7f, 0x863f9ec6, 0x45522d7d, 0x294eaa14, 0xd62b523e, 0xcc28c6b8, 0xcff189a8,
			0x10260490, 0x56bcbe79, 0x14020304, 0x1977f204, 0x697fad76, 0xa54ec65d, 0xfdab63cb, 0xc268a0b1,
			0x0235a319, 0xd5e5b150, 0x53474514, 0xb6ee8bc0, 0x711c2e43, 0xe740ccb4, 0xf0c4f21f, 0xdbc3472f,
			0xf80a1928, 0xfb7a75d4, 0x1c05fcf0, 0xbe2f6569, 0xd20294a5, 0xed559c00, 0x43cab941, 0x41590337,
			0xfc74f107, 0x851af383, 0x8fdd152b, 0xddfcfcda, 0x6febc2cd, 0x36e6a917, 0x83cfc23f, 0x3c709fee,
			0x7146f304, 0xd1731f08, 0x229b792f, 0x6fce73f7, 0x6acd5de0, 0x8fecd9df, 0x7f4e6b01, 0xd3c423c3,
			0xbbab9857, 0x5d16006f, 0x03436be1, 0xe9e1dd2c, 0xa4e00b24, 0x42116844, 0xc412eb3d, 0x802bcb62,
			0xf6b9e4eb, 0x301e3443, 0x189e6088, 0xb4d9b3e6, 0x3ed8d12f, 0x8bcf5453, 0x80e7b272, 0x2fe1f0fd,
			0x2ef58635, 0xfbfe6d5e, 0x28ed8e93, 0x8cfb1cd9, 0xd8267d08, 0x8d5a56f9, 0x1ad493e3, 0xcde8bbac,
			0xdd2ce7e2, 0x39662c20, 0x047d5599, 0x0c8d9d88, 0x8d0c070a, 0xd8abcad0, 0x3f5caf8f, 0xf736acdc,
			0xc65fac94, 0x2f2f9526, 0x2c435b5a, 0x74ff99f2, 0xed4f1c9f, 0xd395a33f, 0x0b94b72b, 0x19063400,
			0xc55faa0e, 0x1236a184, 0xd22869b1, 0x7113f15f, 0x918826c4, 0xf691df20, 0xecfce391, 0x0837b520,
			0x43ba4479, 0x4af7d1ae, 0x122d9a66, 0xdf204059, 0x565d7b02, 0x301f5360, 0x78d10993, 0x15351a2e,
			0x2f3922f0, 0x077d0919, 0x91d5b671, 0x27f2ae4d, 0xb486c013, 0x356b5885, 0x121b6b2c, 0x7750b829,
			0x0bf17195, 0x221689d0, 0xe4a5e11f, 0xbce7d851, 0xf5289fe8, 0x0729efe6, 0x5576df62, 0xcab8c212,
			0xf37a7c12, 0x4d3f6564, 0x82a07f85, 0x0ce9c6b7, 0x3532bf30, 0x7a2fc4e0, 0xb547f133, 0xbe1c178b,
			0x90ba8123, 0xb0495f1c, 0xa6e5ccee, 0x6a151e52, 0xc33053a1, 0x1877b75c, 0x622703a6, 0x5a58496d,
			0x26caa749, 0x4a12f322, 0x28986e78, 0x64d062bc, 0xd3382e86, 0x06f44376, 0x2d37ffa8, 0x1ae846e1,
			0x4460205d, 0x3cb1bd0c, 0x31f9ea6e, 0xa12c1d33, 0x1bf091c7, 0xc7fcacc5, 0x96124b93, 0xf8a3d3e7,
			0x1f7771ad, 0x84bd7245, 0x136e218b, 0xb2a955ee, 0x8644a3ac, 0xddadad45, 0x63919976, 0x4670b267,
			0x1bdc9d59, 0xcfa96b26, 0xd722b12f, 0xc1f3aa0d, 0xa7c33b1d, 0xfb059d50, 0xb1ffafb3, 0xdd53f622,
			0xac6b67ce, 0x825fcf58, 0x9c30a36a, 0x2eefbf73, 0xf40f556d, 0x1c9552d4, 0x145b8dfa, 0xd1a87f58,
			0x4d12aa4c, 0x1edaad8c, 0x08d0036c, 0x947bc11f, 0x6b7a8323, 0x6b3f65ab, 0x1b6652c7, 0xa9f0dd06,
			0x00529337, 0x68befb0e, 0x8198d6ad, 0xd2f7abc4, 0xd1dc47ad, 0x2a6b6f44, 0xbfb548b4, 0xca45cad7,
			0x609b3904, 0x7517233e, 0x91757a41, 0x1e70383a, 0x7fd96443, 0x888486b1, 0x634053dc, 0x7cb8c9f5,
			0x7db90a83, 0x3d677063, 0x634087d3, 0xa8990f20, 0xfb1811f1, 0x01c02516, 0x15b0188e, 0xa18219e2,
			0x0385cea7, 0xec9d3c12, 0x911a4f1c, 0x8a679af2, 0x61c880c4, 0x9318f9c8, 0x926dd87a, 0xb93e86ad,
			0x1cd4b50f, 0xb1fc3373, 0x67e8af2e, 0x4adbb318, 0x2f924c9d, 0xf74b0349, 0x3d6b9aa0, 0xb20cf834,
			0xc3c7cb9d, 0x3bf8c8d4, 0x19791935, 0x66a71d60, 0x07dd2a92, 0x54331c2f, 0xc9a762a0, 0x00000000,
		},
	},
	{
		{
			0x334e5365, 0x6397c679, 0xbf5926a8, 0xbf74de45, 0xe2970730, 0x6d05ec7b, 0xf7f9ee07, 0xef6e9eba,
			0x1313bd71, 0x84b5dbc1, 0x011711be, 0x951f9d00, 0xc3ccc48d, 0xe44fee8a, 0x7b60e229, 0xfce8fc8a,
			0x61858285, 0xe49b35d9, 0x36f1f6ef, 0xa808d05e, 0xa001a4fe, 0x0c9d09f1, 0xe32a86d9, 0x8a8bb3eb,
			0x76ddbbcc, 0xa64443b2, 0x98118a38, 0x4d455a76, 0x52c9f684, 0x4648a5c8, 0x87648bf0, 0x9b0db29e,
			0x7540a81e, 0xa8f60b9c, 0xf08f76b9, 0x7894e8d9, 0x5b5b1b45, 0x1642e17a, 0x5af30d8a, 0x5265fb9d,
			0xbfc67035, 0x37fce2f7, 0x650aca61, 0x4b11e83e, 0x2ab80567, 0x615b1bdd, 0xa5f4d391, 0x7e9c873b,
			0x0d8f3c5b, 0x1935eb28, 0x60a2bcd2, 0x8098719b, 0x9f91a4c5, 0x46fa577d, 0xaa4b3f77, 0x4177f5b8,
			0x6ed57c04, 0xc723cf69, 0x5fdc7473, 0x3065020a, 0x5e8e9a90, 0x01458edb, 0x5dcb038d, 0x18e2f246,
			0x984e4d95, 0x4c405ee2, 0x471555eb, 0x48623b2e, 0x496fae79, 0xc059a885, 0x3fc51e15, 0x14365261,
			0xd5d437a3, 0xc67b5cce, 0x0675753d, 0x6e2a321f, 0x7c3325f5, 0xe1b569f6, 0x96605444, 0x28038165,
			0x285e538f, 0xe97c4441, 0x48faafd6, 0x7085bfff, 0xe53388e7, 0x6c700945, 0x8fa0bb6a, 0x878f5395,
			0xda81f4c5, 0xb10aafe7, 0xd5eaa42c, 0x23d83a5b, 0x1e73ba04, 0xb64fc54f, 0xda332624, 0xf32f7c68,
			0xa0b7e0ac, 0x48c29c9e, 0xc07ce166, 0x8653cb4b, 0x441dec93, 0xcb8b1f7a, 0xb48f9ad7, 0x65817e95,
			0x5a2dbc7a, 0x205fe586, 0x33c5a7c1, 0x0f241eeb, 0x1d0692bb, 0x7a5e57d1, 0x4fb7f865, 0x41306a4d,
			0x691e6729, 0xafe7b107, 0x51e5da9f, 0x4e17e371, 0x5bc54455, 0x584e74f1, 0x6c6ab03c, 0xc733c83c,
			0x7e426c0d, 0x57408940, 0x0ee33562, 0x9d48e8d1, 0x84fec128, 0x8e828784, 0xa6bee37c, 0x15c3f7a7,
			0x9589d2dd, 0x0b046d87, 0x6e127982, 0x6e2552cc, 0x59c2e710, 0x4d86aa25, 0x34461342, 0xe0ad7a8d,
			0xb64e10bb, 0xb91938de, 0x3969d6a9, 0x7f1d1bf6, 0x94db9bbf, 0x39158961, 0x770bfdb9, 0x7ca6c5d8,
			0xe0711051, 0x9d55a75f, 0x2f41cfa3, 0x4e7e3f76, 0x78b5b904, 0x0e1daa0f, 0x042a602b, 0xdb908665,
			0x8e1d58ac, 0x0b2e5d4a, 0x4002b947, 0xfa085090, 0x618a4902, 0xe31cee61, 0x1b193fa0, 0x51abea68,
			0x4d807bf6, 0x74a41da8, 0x20d99c5d, 0x01424c44, 0xdfa60a9e, 0x6821d76a, 0x44593d28, 0xce00e69c,
			0x576913ba, 0xa8ebcb28, 0x2cfe51cf, 0xfc6bcc9e, 0x25fb350d, 0x504b9d69, 0x7246c3dd, 0x23ac4cda,
			0x2cf74da3, 0x551edb33, 0xa7bba8af, 0xb105109a, 0xdd4978a2, 0x55d3ae80, 0x322fdaa0, 0x133e4b1e,
			0x99dcd22e, 0x80d7bd04, 0x7acd7aa8, 0x70ae8bd9, 0xaf7e9686, 0x00bb0d0c, 0xa1761260, 0x48146917,
			0xc7e5d2dc, 0xed5748af, 0xb49ee942, 0xec3ec65d, 0x6e2cc5fd, 0xa8994d28, 0xad4eae0d, 0x9f5c3ef4,
			0x25ddc0fe, 0x78779fe5, 0xe1e767ef, 0x58fb96cd, 0x6f5b2204, 0x6ea326e7, 0x644a6927, 0x22e5c106,
			0x0b73d731, 0x704bd4d7, 0xeacc5cb5, 0xfa87f554, 0xcafa979a, 0x2a1a9e37, 0x986dfa4f, 0x10cd6f0d,
			0xd1ba07ab, 0x4c724f12, 0x9b998c84, 0x5237f001, 0xd71c40fe, 0x339467be, 0x8cb2d1fc, 0xe8786105,
			0xd5d99860, 0x976cc591, 0x82d911f6, 0x48de270b, 0x872914ea, 0x086f3dc0, 0x94fd3845, 0xcca57181,
			0x293870f2, 0x112960fd, 0x274d1aa8, 0x8bfe4a3a, 0x453a1314, 0x0e79e711, 0x97c3178a, 0x18d602c0,
			0xe107857f, 0xd0d35036, 0xdc99e219, 0x08d81224, 0xa9e4a456, 0x5b7c0b9e, 0xd336f6db, 0x0dd0d9c4,
			0xbaa257ae, 0x39350c57, 0xc48fac9b, 0x6bf5eaa4, 0xb1201489, 0x8803746c, 0xe8de278a, 0xb9690b87,
			0xa82fb79e, 0xd13f582b, 0x63025761, 0xb045b712, 0x8542f811, 0x13001e5f, 0x063e9b1b, 0x1e0c8651,
			0x9eaccd61, 0x1c797da0, 0x0004d01d, 0x35479c51, 0x95658f58, 0x79d6d41a, 0x89704dde, 0x9e0fcc8c,
			0xfd09a443, 0x8fdd1c63, 0xfc6e7854, 0x5de64504, 0x0fb13aa5, 0x45f67c15, 0x7a6828e3, 0xf4581663,
			0x629d0a0f, 0x7aff5f9c, 0x382f29d2, 0xba5042a1, 0x6d61f1ff, 0xcba005b3, 0x16c5523d, 0x7aae7a90,
			0xdfe12cd5, 0x2386c9c9, 0x573c22a6, 0xd0740166, 0x4a7da757, 0xa9ea05bd, 0x1ebee528, 0xe545ece9,
			0x375256e3, 0x95410d26, 0x56dc4d05, 0x9eba4b2f, 0x509f35ce, 0x78039488, 0x3d86b9c4, 0x0b66a193,
			0xc8e44c59, 0x90a66964, 0x69acb02f, 0x6274a5e6, 0xfc848a19, 0x21771f35, 0xf85bc541, 0x5a2c05af,
			0x022b94e9, 0xad0c1674, 0x28ad1b9c, 0xa2eb3cbf, 0x5215be55, 0x36c2ec4c, 0xe988287a, 0xd2dcb55a,
			0xdb7fc382, 0xab8d5bda, 0x1aea5537, 0x7be146b5, 0x13a6a08b, 0xe0d71d28, 0xe7fbd34d, 0x49b21fbb,
			0x42f14c34, 0xaf2470f8, 0x1d3f6b47, 0x54c42800, 0x34d34276, 0xbce47352, 0x0d4739c4, 0x82b42099,
			0xf75278a9, 0xea65d269, 0x35dcb494, 0xf23c9305, 0x2d8594da, 0x2c3ae472, 0xc958623d, 0x5f9b9448,
			0xfd2e7508, 0x45260916, 0xf9dbb3b7, 0xf1f3c856, 0x1d337aa0, 0x02d69ca2, 0x8ec1342b, 0x5ac029c1,
			0x7afb1a34, 0x21bda636, 0xdf48ab7a, 0x5293430a, 0xfe14afbd, 0x3e2f9902, 0xfa6d32ad, 0x08bcfd24,
			0x006c7c98, 0xccdd1791, 0x87c50229, 0x992a9efe, 0x7b273829, 0x7ee44b06, 0x89337241, 0x0114df77,
			0x3ae740b1, 0x5ec1b0c3, 0xca142af8, 0xf13c3b8a, 0xe6a85c16, 0x5d2b796e, 0x1e3125b4, 0x3da42506,
			0x31bdb002, 0x3b992aa3, 0xee8286de, 0xacb7b95d, 0xada27637, 0x4581dc40, 0x861602cd, 0x76c61af7,
			0xb099e7c6, 0xa3bc38ee, 0xc6fbdd1e, 0xa61a44bb, 0xfc6f6bc5, 0xecc24efb, 0xedf52dbe, 0x32dbff79,
			0xecfa8869, 0xc5089614, 0x4d393c3e, 0xc5026c86, 0xac13f647, 0xd1e1c7ad, 0xadb1d8a7, 0x369bb557,
			0xda367c73, 0x2bd551ee, 0xb107a8e7, 0xc57ff569, 0xbdccaf87, 0xe392daaa, 0xc8af87ed, 0x350c85e9,
			0x25d6ee8b, 0x5b03aeef, 0x4ec1565f, 0x38943116, 0x7957ada5, 0xe89157d2, 0x15ea8545, 0x361ef882,
			0x635ffbeb, 0x9604411f, 0x1140c54a, 0x4192d2d4, 0x31658de5, 0x19d7e4de, 0xa6e47607, 0xc9b818f8,
			0x8b4af4be, 0x142bf0c6, 0x992636c3, 0x16037a37, 0xd799bca8, 0x8bbba83b, 0x862add43, 0x2cee9716,
			0x10cbe5e0, 0xf06d8773, 0xaacba779, 0x0cbfd7e7, 0xaa5070aa, 0xa591324a, 0x3d5daa6c, 0xbdf532de,
			0x61d5b183, 0xffc32a17, 0xf380cd92, 0x833a2097, 0x6d645365, 0x4c4ea0e3, 0x233c4489, 0x15acedbd,
			0x3ae0ebf9, 0x67d6e39b, 0x0e8c0efe, 0xc757fbd4, 0x334bc97a, 0xe23dd825, 0xfb571263, 0x899f3d3a,
			0x402143c0, 0x9265b89f, 0x00f0fed8, 0x5e243b87, 0x247b2f58, 0xbfc9745d, 0xd5fc495d, 0xdbaa51c1,
			0x71d2da0e, 0x48466131, 0x3dc2b65d, 0x8e3d7ed3, 0xd711b385, 0x2160e986, 0x026e1cc7, 0xd6929ca4,
			0x4d46ed38, 0x96b8f248, 0x10f3bd71, 0x3466ab50, 0xd12a286d, 0x47501573, 0xc75cb928, 0x9edf1aad,
			0xe22dff4d, 0x15a627ec, 0x6459fcdf, 0x0e00c13a, 0x5d348e85, 0x6bdb30dc, 0xa1a5b886, 0xc57361e2,
			0x2f0ac5e2, 0xbb5165af, 0x1e419dce, 0xe7c95751, 0x89ba9844, 0x1de95f67, 0xb425c054, 0xb9d46d3d,
			0x2a53e82e, 0xa3b4d56b, 0x81c3159e, 0x0e550342, 0x152fe6c7, 0x01ff886d, 0x00cc904b, 0x59395ef3,
			0x2d8f4224, 0x517515e1, 0x606be549, 0x1f34ea41, 0x9b193581, 0xb135f96a, 0xf52dc105, 0x19676936,
			0x0eca4565, 0x5ec29091, 0x84630bf4, 0x619dfc1a, 0xbefec3ad, 0x2608b465, 0xfe2f0d69, 0x35428ff9,
			0x2925fd7d, 0xbaaa119a, 0xf5b9a7d9, 0x38dd9632, 0x1274bb14, 0x8b1eecfe, 0x61439b7d, 0xef568411,
			0x64398fec, 0xaf6ad165, 0xf1a2ec2a, 0x6be0e39e, 0x704a1ca5, 0xbb425514, 0x8048dd8e, 0xbb7a7f70,
			0xa855a7ca, 0x4b917df8, 0xc1d56223, 0x5594cb2c, 0x9c4c97d3, 0xfeb2a863, 0xb61c56b6, 0x0395c77d,
			0x9737c463, 0x676d71f3, 0x815824a9, 0x8882df82, 0xcead5be8, 0x0ea8238d, 0x8d324ade, 0x53c82fe2,
			0xcf849b51, 0xbe493c68, 0xddf6804e, 0xb58b7e27, 0xd6d7418f, 0x27507b18, 0x0394798b, 0xcf24104e,
			0xc95f3b24, 0x574a2b6f, 0xc87f17f4, 0xabf226af, 0x8d5ab808, 0x7ca1108c, 0x6e6882a0, 0x1492e61f,
			0x567cd06e, 0xdc8e20c9, 0x4bb6efd2, 0x0e2838be, 0x0c49db7e, 0x2b92c2a0, 0x17334e89, 0x6c258600,
			0x9e4c3693, 0xd46c7f51, 0x00b70220, 0x2344f2e7, 0xcfa5a930, 0xf0af4a4d, 0x40232520, 0xbde84a9f,
			0xc7ca6d39, 0x61331813, 0xa79d06c5, 0x3d1d5bd8, 0x3992ce82, 0x80e3ee41, 0x4b2c8588, 0x98e1c592,
			0x5bba790d, 0x79f75e01, 0x7313c8c5, 0xcbcb3562, 0x09e64889, 0x994cf8fc, 0xa14add1a, 0xf9c30f4f,
			0x910434fb, 0xe1cd74c5, 0xe25030f9, 0x5663bb57, 0x9c633589, 0x941ab58e, 0x115a8469, 0xcb8b2f8b,
			0x0fe54b00, 0xa00fc24f, 0xa7bf6dd4, 0x43f236d6, 0x417974c8, 0xb2d1f9d9, 0x28255041, 0x43fb7ba2,
			0x0baadb4e, 0x742d7577, 0x1f4ad468, 0x8f3e8e23, 0x887e4117, 0x2ce8ff34, 0xbfda4807, 0x00000000,
		},
		{
			0x106c07b5, 0x01c911b2, 0x2d73e523, 0xc1e0b56c, 0x7061a11f, 0xbe9621fa, 0x8a1b22d0, 0xe2a5d8d4,
			0x5a8b7f19, 0x1d0ae126, 0xc560654b, 0xd06cbca4, 0x2ceded8b, 0xd89a83da, 0x30599780, 0xf47d2692,
			0xbef36a27, 0xe1879235, 0xb24c80da, 0x4495cf0e, 0x25f44ecf, 0xc5bfe804, 0xd4ac3915, 0xafeb140e,
			0x879779ed, 0x5a8b227d, 0x56215d95, 0xdbd7448a, 0x9ed169ae, 0x6bc35da7, 0x5056cf50, 0x9572b1b8,
			0xc6c40607, 0xfadfaf28, 0xd76c52f9, 0x7d82bc4a, 0x96270d12, 0x1afcd0c5, 0x20698314, 0x031d4942,
			0x09f35aa7, 0x639a5da1, 0x4fddf919, 0x48da33c5, 0xe051103f, 0xda7aaa37, 0x4d9ff056, 0x6b19ff2f,
			0x971095b3, 0xaa9b3a7d, 0xbd5fe959, 0x68af825a, 0x21d48c3b, 0x355bb8da, 0x88cc1ee3, 0xd50d1136,
			0x87f43ac7, 0xd8d9ffdb, 0xfdc59d23, 0x9fb25a4f, 0x45c4a9e3, 0x5633809b, 0x09ee07ba, 0xfb02a607,
			0x24265711, 0x59dc2932, 0xcc0019b3, 0xe4fbab2c, 0x20674160, 0xe8c59af7, 0xb3abee33, 0xf62933b8,
			0x0c69f3a8, 0xbee30d42, 0x4a6db074, 0x0cd36828, 0xdec5c4fd, 0xf71b977c, 0xa468f9ea, 0xaaf85219,
			0x0f175840, 0x8f171e9d, 0x3fd6a114, 0x5d686976, 0xbc025005, 0xb8ec9d49, 0x852731bf, 0xb215099e,
			0xe269fc93, 0x50cc19fe, 0x92a2b299, 0xf79ab66b, 0xdbebbcd3, 0x0f604059, 0xf7ffd972, 0x02c46fd9,
			0x9ebfb573, 0x28e8609d, 0xaef1d4db, 0x6a0cebaa, 0x6bdd09b4, 0x491fc094, 0xb245011c, 0x77743f2f,
			0xa2084332, 0xf4fec7fc, 0xd40932ca, 0x08fe51cf, 0x477bbcb9, 0xb876428d, 0x062fd425, 0x07f8b821,
			0xdd3a5bae, 0xdb44f87c, 0xb7a587ae, 0x8c6a6472, 0xf3f023a4, 0xe5ad2797, 0x8b77cf5d, 0xfeb2527d,
			0x06a89552, 0x7dfac6ba, 0x8601fb17, 0xcba87462, 0x2489e079, 0xfef0a13d, 0x1bcb1159, 0xaed2c6fb,
			0x570b51c1, 0x1f59d00c, 0x5c672576, 0xf883bb65, 0x74a83d68, 0xa9982936, 0x899f0050, 0x1c3a95bb,
			0x57d6fa31, 0x5f72f81c, 0x19e2583b, 0x8cafd82c, 0x930d93a9, 0x4e106e26, 0x26a625b9, 0x4ed5981b,
			0x8358f019, 0xe49b94a8, 0x878c56bb, 0x854f3e36, 0xea36b4cd, 0x4cd83b5e, 0xfc717752, 0x20a2e1f9,
			0xad4e8385, 0xdae96f90, 0xc5c0e180, 0x8e023e2a, 0xc91f145d, 0xfd609a0b, 0xdc78b761, 0x12d9f9e5,
			0xdc40ca7f, 0xe134b10b, 0xa66a9490, 0x1ee5a399, 0x5498adcf, 0x0d3eba40, 0x6b87e4bc, 0x4e088947,
			0xb7d17686, 0x875e61ea, 0x606a725d, 0x8566e07c, 0x7a0f670c, 0xdd8c6deb, 0xb7a5b26b, 0x4f0b7c8d,
			0x17638442, 0x92a78dd2, 0x54d7b801, 0x7d6bb65a, 0x2b35bf6a, 0x53eb84da, 0x2f699a63, 0x16928a34,
			0x09c91fc0, 0x1e73fcc8, 0xf0c2a44e, 0xef0d94df, 0xaaf18622, 0x9ba78861, 0xa0c252af, 0xe932ca71,
			0x918dae6f, 0x27117d43, 0xea8ffc38, 0x3de5d6ff, 0xa99f41c5, 0x7f7ffc6f, 0xbd160b45, 0xb0f9d859,
			0x5dce4c6e, 0x2532cd21, 0x0001e336, 0x3e997f81, 0x6fb7af5d, 0x6fa90a9e, 0x78163c17, 0x710eb04d,
			0xe33ddf7a, 0xf935b072, 0x241e4919, 0x8dce1869, 0xc6f8c74e, 0xfb88e1fb, 0xcfd8c0fc, 0xc08b0326,
			0x97e4caa2, 0x1696754e, 0xa4c43cda, 0x435b6e73, 0x8dc3e2a5, 0x56c9ff02, 0xcf48ca01, 0x400fb367,
			0x804745d1, 0xc14f903c, 0xedea57bf, 0xa62a4668, 0x16bdfde8, 0xed3e72da, 0x40497d09, 0x1d0b8f11,
			0x644306f8, 0xbcea5b92, 0xbf82454f, 0x6f3b10fc, 0x0a1dc3c9, 0x7bab9092, 0x86f3ab46, 0xfbfc38d8,
			0x12228796, 0x57002d7f, 0x758bac8c, 0x09ceebe0, 0x35d4dc5d, 0xb9c77063, 0x3ee9c555, 0xed47c7b0,
			0xfc069379, 0x48a8ba5b, 0xec4ef033, 0xdfdaa71d, 0x8c682db5, 0x97cac581, 0x8e5dc879, 0x5e8ae1ae,
			0x73ac92c4, 0x1b84cad3, 0xdf1a4006, 0xacfc56a0, 0x04b8b8e6, 0x6a31316e, 0x8aa7b4f6, 0x660b07f9,
			0xd90f7f3d, 0x8b32fd3a, 0x9cb789a9, 0x5e87dcf9, 0xf17f3aac, 0x31ce54de, 0x275074f0, 0xf96e7a6e,
			0x80d36d41, 0xd19179fc, 0x340ea03a, 0x455417f3, 0xcdd37e8f, 0xf25f9055, 0xe0c37e5a, 0xf1470a8a,
			0x0e753c92, 0x53f97d8e, 0x3096c274, 0x378c131b, 0x178e4854, 0xf40b4a5e, 0x1a670039, 0x96574e14,
			0x3d3ab162, 0x346386be, 0xf27f17ed, 0xe140364e, 0x2513cbd7, 0xffc0a6e2, 0xc65f1a35, 0xc2b9f230,
			0x200a9133, 0xc0cb310e, 0xc4feca00, 0xbcdb8f4c, 0x02e1b49c, 0x5254c3ca, 0xd7393dfb, 0x821dfc88,
			0x19c7cada, 0x56032a8f, 0xe994d99a, 0x8e991d61, 0x45260773, 0x396cad5d, 0x1e999936, 0xea9b52c6,
			0x1dd56aa8, 0xbee32c76, 0x656aada1, 0xffd61025, 0xe074c0ed, 0x3f0d6c1a, 0x7db8d036, 0xc37cc950,
			0xa7ace604, 0xe70a017f, 0xa9ffc18f, 0x61da2145, 0xaab8210f, 0xaf6724a4, 0x28ed43b4, 0x113c2bca,
			0x09e66c48, 0x95e7c4e7, 0x77ecb528, 0x30dacb70, 0x319ab911, 0xfb4c7bb6, 0x3d0a9d9b, 0x43c28f37,
			0xfdabb34b, 0x2eaaa724, 0xcaf0ebda, 0xd97c3d64, 0x6cd46b53, 0x59e29e14, 0x89554a36, 0x7214fcf1,
			0xfe440b25, 0x053d93b2, 0x4ebfb8ec, 0xcda91037, 0x91cf81c1, 0x2a5155af, 0x7c588263, 0x093c7905,
			0xcd553ed8, 0x95a097fb, 0xa8037bee, 0x6273a480, 0x1663ba81, 0x16413f1b, 0x0404cff3, 0xa405d24e,
			0xabbcd557, 0xf97aefb6, 0x475a8616, 0x8f141307, 0xab60c4a4, 0x9e7d16c2, 0x4f79156c, 0xbe278be9,
			0xdfcaed18, 0x75515df8, 0x6cd75c85, 0xb2b3e352, 0x35880615, 0xb1bee938, 0xd6d63ba0, 0xf4cf2c57,
			0xba3660b7, 0x19a851dc, 0x2095be12, 0x1aa01cac, 0x59c427c0, 0xf6dc1e93, 0x7dad19a2, 0x29e4f8a3,
			0x0ff5ab86, 0x9e6f4b4d, 0x38aeb70f, 0xc7df2ffb, 0xecd0969e, 0xd43b9e56, 0x3e04cb0c, 0x162de92e,
			0x920b7af6, 0x3cd43210, 0x2f33d1d0, 0xe2f4af95, 0x660d36b1, 0xacf82abf, 0xb04107e9, 0x8a5861b9,
			0x6f1e052c, 0x0a3a05d3, 0x598ef053, 0x7004884d, 0x0905f11e, 0xb7bd58bd, 0xf35b1f47, 0xd58aa9d5,
			0x77cfd6c8, 0x66f4c043, 0xcf2b9118, 0x2d231a4d, 0xf50615c2, 0x3437e350, 0x2993ce34, 0x4ea92dab,
			0x29f20f4e, 0x5c543a8e, 0x9f79a88d, 0x4b517d95, 0xe4c12ded, 0x64543d78, 0x3f9c447d, 0x86c981ca,
			0xea5707d7, 0xcdf35188, 0x88f9d650, 0x79c787ac, 0x341e0ed2, 0x52bce09d, 0xb6c5aba6, 0x1c6df7df,
			0x9f652baf, 0xfcd0a242, 0xfb3f36e6, 0x64e89575, 0x7c74c031, 0xcccba628, 0x31bef942, 0x91df8328,
			0x308473b3, 0x05cf8a5f, 0xaa9cc89d, 0x2da4ca15, 0xff19e351, 0x39264869, 0xe8ec275f, 0xa9c65ac4,
			0x747dd6d0, 0x92424c23, 0xb186321c, 0x85dda059, 0x2294e550, 0x1cb82ff9, 0xec20c298, 0xe5715ee7,
			0xe6dcf8af, 0xfb909e82, 0xb5d85da1, 0x0310d107, 0x8bdfb390, 0xb67f51ab, 0x62ee4538, 0xa116f77d,
			0xba5514e8, 0x4350a965, 0x263364ee, 0x3ca8abe5, 0xf0019685, 0x925c0cd0, 0x55c87a89, 0x9c191fba,
			0x237ff037, 0x0ec79cdd, 0x60a55702, 0x07bfeda8, 0xc307fda1, 0x104c0e71, 0x2e7ed38f, 0x266aff3a,
			0x897587d9, 0xf9dba25f, 0x64068c42, 0xeb3cfc57, 0xb0f33c3c, 0xae228956, 0xedbe6528, 0x66c741ba,
			0xa489aeaa, 0xedcde4f4, 0xbbf6595a, 0x368e4bd7, 0x42ddd21e, 0x36a16fce, 0xc857a891, 0xc128b97e,
			0x8965240c, 0xb26fc00d, 0xe634e7a0, 0x62d088c3, 0xfc31dd97, 0x517bb33f, 0xec3a3e5f, 0xc77a4679,
			0x9d66785f, 0xd008ae9c, 0x1d2cf1c9, 0x78a7b78b, 0xb56de0cb, 0x5d5bf8de, 0x5590cad4, 0x54ae94e4,
			0xd382bbea, 0x8bb9b6d4, 0x48ea8630, 0xed63625b, 0x407f64ea, 0x27a88a4c, 0xebf1677b, 0xc28535bd,
			0x59c45973, 0xa16e607b, 0x548eb6d7, 0x04689ce1, 0xea85fd8d, 0x325b9125, 0x8733fd0c, 0x75284cfb,
			0x3e7d6475, 0x26c1b7de, 0x330b1f00, 0xe5ebb240, 0x8922ca7e, 0x57fe826b, 0x76aefa62, 0x53d73c38,
			0x7a7755e3, 0xaf9b43b5, 0x2bf2299a, 0x99bcffa1, 0xa1d52290, 0x579bfd2a, 0x7674fec4, 0x18797be9,
			0xf649fffd, 0x15e058ed, 0x1338776c, 0xbce2d2c1, 0xf50db7c1, 0x27ee19aa, 0xf380dfb5, 0x536795e8,
			0xc89c4eb3, 0xdd137f59, 0x1bd42813, 0x6d349522, 0xa255f0c6, 0x4c4aa6c2, 0xf2e0e843, 0x9881dedd,
			0xa2287a67, 0x693fff60, 0x80da0e03, 0x44ad7a5d, 0x11d3a874, 0xfa3e2b9e, 0x5111ea47, 0x3228ae40,
			0x6cee298f, 0x23ea7804, 0xeb6701ff, 0x957911bd, 0xe8fdb5b7, 0x89e14ee5, 0xe86cc3f2, 0xba08532f,
			0x1b9bc0d7, 0x8b811210, 0xcb46cff1, 0xf4fcca42, 0xd54544ac, 0x0d7c0389, 0xbbbc2068, 0x0e304f70,
			0x519e52c1, 0xaab64ba7, 0xacd15e81, 0xd01bd141, 0x07469a19, 0x41c82415, 0x4b685fde, 0x44619e48,
			0x41f2305c, 0xf8e35fe5, 0x40362bbc, 0xaaab4474, 0x4173ae5c, 0xd9444b4a, 0x1eaf953a, 0x35921202,
			0x41008776, 0x7dad7592, 0x0fb944ec, 0x46c0f3cf, 0x1d84bb67, 0x5cb083ff, 0x95afdff3, 0x71a5b2f0,
			0x0d050df4, 0x1bb6ad50, 0xa1044b37, 0xdec09576, 0x403ee3ea, 0x4f3ab0bd, 0xee8b1894, 0x03727d7d,
			0xe4a37b36, 0x4b8e3f37, 0x3d0d0b72, 0x1463f2c0, 0x95d79e61, 0x20379266, 0x95fec0f7, 0x00000001,
		},
		{
			0xeb98a4f6, 0x7ff87900, 0x4d9d4396, 0x62a67549, 0x5f9c4be9, 0xe21c0396, 0x60a54c40, 0x35312293,
			0x07b2bcd1, 0xdafc333a, 0x7a3ab538, 0xc993d59e, 0xe1c06e70, 0x4c841ef7, 0xfb0d1d49, 0x79260573,
			0x749b769f, 0x4689aebe, 0x6ab2a63a, 0x50e17096, 0x015726e5, 0x46b379b2, 0x17d66fec, 0x9c1f4c3f,
			0xe6e502d8, 0x2ad3d7cf, 0x3673d28c, 0x9c2c5bb5, 0xf111cbe9, 0xa9e601e2, 0x776c98c2, 0xaeff487c,
			0xc61dfcab, 0x492a403e, 0xbda80c63, 0xdc3a4039, 0x7cc153ce, 0x717967b0, 0x942d0ab8, 0x45af9f42,
			0xbc6bd89f, 0x24d9df14, 0xb60f61b2, 0x89e391be, 0x2e7cef2d, 0x69bc0610, 0xf0dabd85, 0x17d82b32,
			0xbf3250ef, 0x2ec796f3, 0x68b116d6, 0x59fe571c, 0x4c166856, 0x5bbb6757, 0x76bf9afc, 0x34928f47,
			0x8431b51a, 0xac35bc2d, 0x471ff576, 0xdfe0c2bc, 0xbe7509e2, 0xa9a0474f, 0xb03690e6, 0x8c7f4904,
			0x9a8757ba, 0xc06efb8c, 0x2df62daf, 0xcff69f85, 0xbf12c902, 0xdc1ea445, 0xe6948dd5, 0x2ae81fbb,
			0x14a96f6e, 0x2c34cb7f, 0x2f6ffbb4, 0x321f882a, 0x3354d6ef, 0xf4bdc8e9, 0x49638899, 0xad48a06c,
			0x4aaec3cf, 0x897047ef, 0x7c75841d, 0x70b51af8, 0x5e0d593f, 0x2147e2f9, 0xe4683eba, 0xfe33c257,
			0xd82c43ed, 0x4566ef31, 0x84953147, 0x13cb44ba, 0x5711e9c8, 0x89a0add3, 0xf5ebf9ec, 0xcf7851f4,
			0x432618d8, 0x6568f922, 0x53a91243, 0x938a6ab8, 0x5200371d, 0x65dffb82, 0xac40317e, 0x235902ca,
			0x7c3facb0, 0x8f6caf94, 0x121c0633, 0x3c3c8691, 0x76a75953, 0xf944654f, 0xd3852b37, 0x49cea217,
			0x2f587a5e, 0xa413efab, 0x293f3b9c, 0x41e28725, 0xe3dfab0b, 0x5626e720, 0x52ecb2d3, 0x3e6e48ed,
			0xb0a42695, 0x7211be00, 0x851cb343, 0xa34f0f09, 0x9a7b378e, 0xe10bc88d, 0x195c9d2c, 0x041d03b5,
			0x0968dd71, 0x85cad901, 0xa95db5e8, 0x0470aec0, 0x113d21b0, 0xd78bc168, 0x6faf4121, 0xf26e6ce5,
			0x8f99eb8e, 0xefd61b3d, 0xf2466130, 0xeceae30d, 0xfd9792fd, 0x8431f38a, 0xfa451224, 0x658a8d25,
			0xd4eba27a, 0x894b23e9, 0x77075221, 0xf175479b, 0x9c988742, 0xeb333891, 0xc26b82aa, 0x6e064852,
			0x620ee03d, 0x23787f35, 0x4cb75f28, 0x5db1780f, 0x459ea6c0, 0x7af67c82, 0xd9d9be5f, 0xabc248b6,
			0xfb27f0e2, 0xa5f41024, 0x22ab677a, 0xa8c64239, 0x4b32b23c, 0x1c15325a, 0xd3c43b65, 0x9b3090ad,
			0x2ced8a0d, 0xe3577c1c, 0x6a447639, 0xe08d3935, 0xc3efa705, 0xcf89a014, 0x7e43ea30, 0x5cfb5a67,
			0xe812db67, 0x54723e6b, 0x75a2acdf, 0x28195e97, 0x826259bb, 0xa4501701, 0xd3849935, 0xd4d36415,
			0xab5f2c08, 0xab3d139f, 0x5d490777, 0x64b21ce1, 0xa06f4c37, 0x0ca5e334, 0x29ff4efd, 0xb9327107,
			0x44e75bed, 0xd7869d8a, 0x7e8a95c4, 0xb61e453d, 0x6eb285ee, 0x5e02ee79, 0x072546d7, 0x33760f04,
			0x9de3287c, 0xb6e99e20, 0xdc467c0b, 0x4e10a2b1, 0x6689a872, 0x8b3ec992, 0x0eff4a33, 0x9180457e,
			0x6cf72151, 0xa21e0d2d, 0x81a34bf6, 0xb3d237a3, 0xa6deb070, 0xe967bb4c, 0x02d34c7a, 0x0ef9d823,
			0x1feb6524, 0xdd4c845e, 0x6208dffc, 0x96224629, 0x4559e977, 0x503758ef, 0x3b0687fe, 0x3bbe47ad,
			0xaa546fcf, 0x49961463, 0x9212a957, 0x1b9a97b4, 0x4e472864, 0xc67ac12a, 0x44129c17, 0x749c197b,
			0xc07d03de, 0xdd0726d9, 0x9accb27b, 0x859dc8e2, 0xa46ec6c4, 0x87a9a612, 0xa5c1862b, 0x84af84d4,
			0x7d1d68cf, 0xd75aee86, 0xf0db70e5, 0x294a7058, 0x75ff4d1c, 0xca6495c7, 0x380e64c9, 0x01cc6ed1,
			0x30b0cd93, 0x1fae5cac, 0x455d5e93, 0x62d2c954, 0xff600a4a, 0x9d7109b4, 0xe306eb2f, 0x5f335ce2,
			0x0a2e4cac, 0xb5d16e1f, 0x88aa019a, 0x3447d699, 0xb0b2e1f3, 0xebac3166, 0x6276535b, 0xb76c1425,
			0xcb36c9e6, 0x0728f75e, 0xd5df053c, 0x2bea08a7, 0xb51a51b6, 0x776b374e, 0xb111c515, 0xc6da4bfc,
			0xcfe7fba9, 0xf0e02a90, 0xfbadda5c, 0x5a5ef15b, 0x07a95c3e, 0xdb5e5289, 0x1a94c00c, 0x2d0db0f0,
			0xac13f3b2, 0xeb3446f9, 0xcd96f01d, 0xaa70fd33, 0xab3f872d, 0x8c9dd95b, 0x379c93d4, 0x7dc5e83e,
			0xa82f08a5, 0x30b0d5a8, 0x5c1463c9, 0x4beb6501, 0xaf31fd58, 0xc0805d9f, 0x17f15766, 0x0fcad76c,
			0x84b56302, 0xca6ac3a9, 0x39b948a3, 0x7358e43a, 0xd8bc2852, 0x81ac5135, 0xad7dfbed, 0x568129e3,
			0xa4749122, 0xcf007c6e, 0xa77216b3, 0x40c447f0, 0x9a5cda76, 0x4a8efd11, 0x694394c7, 0x5a05ed7a,
			0x0e1d020e, 0xbec422a2, 0xcbb94dbc, 0x08fa0884, 0xed3c4d21, 0x12555466, 0xd2665e58, 0xabcd1ac4,
			0xf50389b9, 0xe8a6d00c, 0xd4461729, 0x60ba0589, 0x9a7248b1, 0x74bb4c53, 0x39c160d5, 0x286defb2,
			0x999e96cd, 0x2a3e7e59, 0xc2b978ec, 0x4e7e4b0d, 0x448b9322, 0x0bc31da9, 0x26a06bd9, 0x9d49ab87,
			0xf0a168a2, 0x753ea82b, 0xa668ab22, 0x33c3fc34, 0xe664d698, 0x52402c4d, 0x7a426c68, 0xed02b733,
			0x51164522, 0x39886d83, 0xab886315, 0x86ec58a9, 0xe0580642, 0x411b2abd, 0x19a1f437, 0x1289930d,
			0xa8c82d2f, 0x456c32cd, 0xc93a6d19, 0x4204df55, 0x3c1a7e4d, 0x6e1ccb2e, 0xb9690cbe, 0x4ce3f66e,
			0x64e0fbf2, 0xde49a961, 0xf346da89, 0x13e78b85, 0x0c0196cb, 0x5e5c92f1, 0x70c8ff63, 0x6f80e5de,
			0xb0f6e68c, 0xdd4e7704, 0x6c0f5417, 0xa0d32d2a, 0x70d1493f, 0xb715ca86, 0x5335ae2c, 0x8a90f35a,
			0xb5006f60, 0x2bed910f, 0x39708ce6, 0xfd8c23a5, 0xa6314f6a, 0xc52d6d5b, 0x8829e2d8, 0x3e83b87b,
			0x10bf2625, 0xc6016412, 0x32a03e97, 0xe624d3d4, 0xf26c52c2, 0x079598e4, 0xa1faff54, 0x9b618534,
			0x7cc88eb9, 0x4a6b9cb2, 0x01dddbf8, 0x663400f0, 0xb3361e05, 0x9d3efbba, 0x51a75c23, 0x3e5ce18e,
			0x05e995fc, 0x9d76ff47, 0x719d84fd, 0xe89777e1, 0x1724cddd, 0x635bf71a, 0x943c4f4b, 0xbba786c5,
			0x8519d3d7, 0x361fae10, 0x0c8f55ad, 0xda897d70, 0x5576f4f6, 0x21ecb5ef, 0xb643f021, 0xa3a503da,
			0x058ad924, 0x5fbb3c30, 0x63bee72d, 0xcd9f6785, 0xc1627ee6, 0x11e41dae, 0xae48fa1a, 0xe3497f63,
			0x9a10f536, 0xee393aeb, 0xabe4df62, 0xa532cdf5, 0xefb6a018, 0x4580fdff, 0x044789b8, 0xf03bd69f,
			0xb094332a, 0xb3e18f77, 0x12d4617c, 0x3b8e1c19, 0x71483d93, 0xf28eb60c, 0x84230f20, 0xe7444458,
			0x7e19cf43, 0x42fee0c4, 0xf361d5ed, 0x9ba33598, 0xf9a8bde9, 0xfed944fc, 0x6cd04eba, 0xf8e1e18c,
			0xe65ce2df, 0x4b56c58b, 0xc1bc7a19, 0x21995d2d, 0x8f35a52c, 0x81af5ed6, 0x3769f64b, 0xe678659f,
			0x1f12ece7, 0x0714852c, 0x7c97e7ce, 0xa91d9359, 0xbaf712f8, 0x87136146, 0xef29ce53, 0xd461f6a3,
			0x19ef314c, 0xc10135c6, 0x36eb768d, 0xe588eab1, 0x89706a84, 0xbb884363, 0x57725e08, 0x6b106cc8,
			0x95cd2a42, 0xc3d617ee, 0x11e2b680, 0xf2f2a26b, 0x94f194e1, 0x9d3ecb32, 0xa6a32ddc, 0x8a4d0cdd,
			0x01d6ee5e, 0x2e10a4dd, 0x5ee91e6d, 0x51a792d3, 0x7dc7ba42, 0xb9ba1933, 0xa65206e2, 0x8ec3a9b1,
			0x4941e880, 0x7f057b4a, 0xdb3101e1, 0xeefd8c80, 0x5e2015f7, 0xdd08b117, 0x7d04bdb5, 0xb799a557,
			0x02ab2059, 0x2beebbf5, 0x61bbbcf7, 0xf439a78e, 0xb6ee35f9, 0xf6abbdfe, 0xf21dc6d8, 0x115fc8b5,
			0xfb133f5c, 0x8b5332d2, 0x0ae675dd, 0xc80c2ebe, 0x2370fd79, 0x6b762026, 0x33655f7d, 0x187317cb,
			0x36fb93b8, 0xb216e93b, 0xc6bddfb5, 0xc0ce8c04, 0x9d430c0b, 0xc5ce2499, 0x69e227d5, 0xcbf7912f,
			0x658c9545, 0x2ac13c66, 0xc77f8fae, 0x8c0bb54e, 0x8439f73f, 0xbee318d8, 0xbe8074ba, 0xbe1702dd,
			0x0f831840, 0x6e1c528c, 0x20c2d523, 0x6ed15111, 0x0ff9bb00, 0x131a5267, 0x0436f7ad, 0x943b58bf,
			0x2820dcfc, 0xfce00d53, 0xd5172783, 0x5c51d979, 0xfe7fe286, 0xfd41f0cd, 0xdff47cc4, 0x332b17a8,
			0x664f66e8, 0x58806740, 0x67c7310a, 0xa1c98ac4, 0x49b9f878, 0xff568b1e, 0x6932c787, 0x811e6eae,
			0x8c747f19, 0xcf10ec17, 0xc32602af, 0x45806bf7, 0xa5f61a2d, 0x132b4e4d, 0x8abb19c8, 0x0e0fd81e,
			0xfbb2faeb, 0xb5ab99a8, 0xc5684448, 0xfd6961a0, 0x76269800, 0x0d0f9d0a, 0xc50eb1c6, 0xd20e052c,
			0x4d81a45e, 0x830156be, 0x7a99a34b, 0x790fa5f1, 0x9ccfd3a2, 0x54a19113, 0x0f3fb337, 0x4d6a0dcb,
			0x48527be8, 0x1c8f351a, 0xb005e1e5, 0x012d9fe2, 0x682146df, 0x886b5359, 0xfa998eae, 0x2011196b,
			0x144ed02e, 0xcd1b8262, 0xa9052bf5, 0xb9021ffb, 0x486a82be, 0xa898e041, 0xc39eef1b, 0xab5c9432,
			0xf18402a7, 0xc9e09ca6, 0xbe4d0a76, 0x46cf73f3, 0x75ba39f9, 0x92f7c5fa, 0x878f6b3e, 0xb25ceebb,
			0xc3deeb6d, 0x42135ff8, 0x851c58aa, 0xb852c757, 0xcc17ef20, 0x38edff99, 0xb0c69963, 0x074bd947,
			0x6ac1ac4e, 0x5fcaecb8, 0x1dcf8763, 0x6ecf75a8, 0xe191422e, 0xb7fd6752, 0x056a495d, 0x6c9c2a1a,
			0xcbaf16c1, 0x5e554fcc, 0xb9dd378d, 0x5754d917, 0x90d8ccf3, 0xc6b7df13, 0x1350fb6f, 0x00000000,
		},
		{
			0x9fe32314, 0x4971f246, 0xdbcf4e0a, 0xed3109ca, 0x743ef32a, 0x7143cda1, 0x8c769fdd, 0xc1805c73,
			0xef562bcc, 0x63eb381c, 0xbdf906ad, 0xf7ffc239, 0x88656eee, 0xe65a266b, 0x06100684, 0x4544b114,
			0x0a7859a2, 0x47c1148e, 0x7e184324, 0x7d090901, 0xcc5dd9ac, 0x0de5765c, 0x67d5b7da, 0x3190ff0f,
			0x70b73e49, 0x57efdfb9, 0x986080da, 0xf37cd6a7, 0xe6a41718, 0x53da54dc, 0xd9e3a479, 0xf889f394,
			0x87853ac2, 0x47eb41b7, 0x83435eed, 0x40c7b225, 0xc4ed6706, 0x371f65b5, 0x7d7780bc, 0xf00f593e,
			0x9f3dddb5, 0x45e3203a, 0x4d12fda8, 0x9755cf9c, 0x940668d6, 0xcdcb11ff, 0xbc0470cd, 0xd8fc8f73,
			0x99b8a280, 0xa6f66c2f, 0x0c1662c5, 0xe7b97dce, 0x18a37f14, 0x1d2c181a, 0xcf6b7b83, 0xa21fc6d3,
			0x4fee9a88, 0xb0670874, 0x7a3b4454, 0x32ac4e9c, 0xfd496c4f, 0xb4bb2d30, 0xf5fbc2f9, 0x3b314817,
			0xe8a45395, 0x6f93dacf, 0x862d45b0, 0xcf300ef2, 0xaf8cc6df, 0xb58046a7, 0x8820127f, 0xba632fa0,
			0x355c60ed, 0x866b7a63, 0x0c5d52c6, 0xbe12b8b6, 0x03424666, 0x0603aa72, 0x2bf0ed25, 0x23f34639,
			0x2cad4cc7, 0x31f9772c, 0x7015dd00, 0x93e7ed83, 0xa69b1bac, 0x533d9e7c, 0xfd5d5888, 0xb914ce1b,
			0x8b6a362d, 0x8cc8c973, 0xbe356577, 0xec36735e, 0x08bc6fb1, 0xd0409718, 0x0aea81af, 0x963b0700,
			0x0b969912, 0x046344f0, 0x64b5eea0, 0x7b405f92, 0x358e39b9, 0x3d5420c6, 0x439047a6, 0x08638ebb,
			0x998f7739, 0xf82d96a4, 0x1a84c67a, 0xa6a39df9, 0x576443ea, 0xc15d558a, 0x87e0c180, 0xc11cb49a,
			0xbc0761f7, 0x97446a26, 0x4a98ee21, 0x7a4477ff, 0x79839033, 0xdf12e2d4, 0xf852b325, 0xd292218d,
			0xa3e00835, 0xe82a67ee, 0xa17f9087, 0x6741bed2, 0x0d25e0d9, 0x646ed5f4, 0xe5e40a64, 0x58816540,
			0x5a2285f8, 0x242f98ba, 0x70e52163, 0x2334046c, 0x80268044, 0x5578e8e4, 0x096e48a8, 0x84da9281,
			0x2a7f7a6d, 0xcf5d5ec1, 0x4994bacc, 0xf501e735, 0xaa7a7eee, 0x2b3fa43e, 0x3bf05fe2, 0x27d16e31,
			0x92400620, 0x48707406, 0x8d6c73fc, 0xe7d50f69, 0xcec01fff, 0x8419eda8, 0xf65d2d59, 0x2181815b,
			0xe200955d, 0x8f65e0e0, 0xfe6be041, 0x7272820c, 0xacdfaff8, 0x27b0be73, 0xff42f797, 0x37b4fd46,
			0xf6780e03, 0x2b7ba52b, 0x129936b1, 0xc772b42d, 0xe5f9a350, 0x9b66ea85, 0xf825d1a4, 0x00acab3f,
			0x4350695b, 0xd59822b9, 0xf6954e72, 0x729e11ec, 0x9209e2e2, 0xfbf41b3e, 0x154764ac, 0x85306578,
			0xedb2538a, 0x91df364d, 0xf2a8134e, 0xd29a9d2d, 0xc5d26698, 0x766d947b, 0x24a03d03, 0x67369dd9,
			0x7f966a0e, 0x319196e8, 0x4c781f06, 0x3151c7cd, 0xcd928c6e, 0xf45ab5e4, 0xd6ce757b, 0x2b050b7a,
			0xbd6d22f5, 0x1d725e99, 0x57091653, 0x966cd3bb, 0x9ad2b9d9, 0x76cdd67e, 0x975fba91, 0x2721087d,
			0xad85f219, 0x66188adc, 0x122db36c, 0xd726d98a, 0xb7e36b76, 0x4b1bbc0d, 0x77415234, 0xa699aa6f,
			0x09a54b9a, 0x5f8f5484, 0x775b8615, 0x3a4964f9, 0x2e4e5d14, 0x020b56db, 0x45b19987, 0x6f15bd9a,
			0xa9490588, 0x26df0965, 0x97fc7577, 0xc60652d9, 0x329d684b, 0x94069a1c, 0xbe4eeebb, 0x1f0903d1,
			0xa2f1aa7a, 0xf1885288, 0x0d117377, 0xe232d2f5, 0x6d35fb66, 0xffc82579, 0xad11a763, 0x34121b84,
			0x095a4135, 0xb449cfff, 0xba53e326, 0x4aa466cd, 0x1f19d6ce, 0xcb743e58, 0xeae35013, 0x4438f699,
			0x4c90a615, 0x0e01dd43, 0x092c058f, 0x0ae9ee50, 0x26091523, 0x69b5b2e4, 0x515434a0, 0xdb48f252,
			0xcc254705, 0xac8b425e, 0xd04bf552, 0x18d5d76b, 0x95e59c21, 0xcc239158, 0xc180370a, 0x72ab186f,
			0x272a49c9, 0xa26d1db9, 0x32859db0, 0x35b54919, 0x4fd02bad, 0x4c77659a, 0x0b3c2b19, 0xdb214acd,
			0xeff6610b, 0x9aacb3e8, 0xe006fa16, 0x8d5ce621, 0x140a7c13, 0x7b210a88, 0x66ac8de6, 0x24e212c9,
			0x90a3f9d7, 0x93b5e116, 0xfd555331, 0x5e9068b7, 0x38018709, 0x0964d0ee, 0xd5ec8d53, 0x4800b3af,
			0x5da66f3e, 0x34b052dd, 0x6dc5e92b, 0xe4e840fe, 0xafdeb8a6, 0x3a3bab18, 0x9638f454, 0xd85026f0,
			0xad237c3b, 0x4a7a3aa6, 0xad30362c, 0x78280c86, 0x080fcdbf, 0xfc53af0e, 0x4e85afcf, 0xf46bbb36,
			0xa0b1e2a1, 0xbf722801, 0x2dc73611, 0xdeb17d9d, 0xf3683fbb, 0x7051a66b, 0x599ad916, 0xf6e130da,
			0x1b50113b, 0xb125a0db, 0x6f797fa2, 0x0b58bd7e, 0xc7a16d02, 0x0d66f7b9, 0xca9965c8, 0x1804ed37,
			0xf759bcc9, 0x9a65a4a7, 0xaca69300, 0xb52d9ce1, 0xda3860a6, 0x67418fdc, 0xa2ef881d, 0x24ea84f4,
			0x3d8130ae, 0xc94e9aac, 0x6feb431c, 0x3052f278, 0x8f67ae12, 0xc6a300ff, 0x26d56962, 0x07c9829e,
			0xacc307d0, 0x667df7a9, 0x9be258cf, 0xf266524d, 0x085c0614, 0x892f6b3d, 0x8eda842c, 0x06d14c2c,
			0x85363148, 0xbdcf5eff, 0x74de3525, 0xe4ee3132, 0x42d313f5, 0x0f2d1c35, 0x4df7578d, 0xabb0ba97,
			0x5b027583, 0x5c423d5d, 0x7416be7b, 0xeca1ca6e, 0x947f495d, 0x1535328a, 0xe27fc044, 0xaaae2bad,
			0xbeeeb751, 0x4dfb3ca0, 0x0f44eabd, 0x04d42e5b, 0x6a377617, 0xc91f805d, 0xb25e9601, 0x435f0a8c,
			0x5a25ff0e, 0x2e411baa, 0x3a694115, 0xf03b81d3, 0x522c044c, 0x8659c289, 0x56f7847c, 0x6399fa49,
			0x27c5531a, 0x6cf53858, 0x5fa5be21, 0x830449a4, 0x4e8ffcc5, 0x2be40bc6, 0x64bf98b0, 0x6816ce1c,
			0x4b2ec723, 0x4fd425a5, 0x3442a1be, 0x563e06fa, 0xbbed539d, 0xea828c9b, 0x106baf7b, 0xffc35ad9,
			0xf9a43af1, 0xd6125742, 0x82a8c881, 0x60630c60, 0x3dd922c0, 0x22737d95, 0x6ee5abc5, 0xff160050,
			0x1099a8e9, 0x0f5771af, 0x174ae173, 0x34f67fc1, 0x3dcceeb6, 0xec7a457a, 0x6a3e45c7, 0x6d3b2d02,
			0x0aa7e37f, 0xbc5cf828, 0x51b7a297, 0x9bce5da3, 0xe3f14be3, 0xfa585a3a, 0x644b0aad, 0x4293632c,
			0x2f9fabac, 0x4dba9865, 0x8830544a, 0x87191a73, 0xed59e4ab, 0x2cb8089d, 0x1d92d263, 0x3592e0dc,
			0x84314da8, 0x9436de37, 0xbdfb8117, 0x21d5f4e7, 0xc9a3bdf7, 0x86877cdd, 0x4d47dd93, 0xe568b8e9,
			0xf810f7a2, 0x03e86ee5, 0xb66813d0, 0x89b60605, 0xbdd5388d, 0x1dd0345c, 0x158e489c, 0xae5d456e,
			0x54f86acb, 0x27a05a10, 0x5033163a, 0xf90c07d0, 0xdf6d5c94, 0x47ea7650, 0x92875973, 0xdcfcb0f4,
			0x1cde692f, 0x5f397414, 0x287a935b, 0x53338ed1, 0x0a740413, 0xb3004148, 0xf7c55525, 0xbf13e0ee,
			0x3ed8e266, 0xe33cab74, 0xc0e534c7, 0x2b404c64, 0xdefba6be, 0xcb995c7d, 0x2fda5733, 0x350ffec0,
			0x1bdd1929, 0x92bacc72, 0x303ad701, 0x8e96cfbd, 0x9d56c181, 0x3a84a5c7, 0x57b75709, 0x205c90bc,
			0xdde6ea1e, 0x909c1dfb, 0x9f032656, 0xab6c8189, 0x6ebfc486, 0xc3320158, 0x215b73d7, 0x4b6eb51e,
			0xf5ff6492, 0xc5315f6c, 0x05593364, 0xc778dbe9, 0x6e9986d3, 0x33287af3, 0xd7df2217, 0x3b9d8e89,
			0x9cfa20dd, 0xd189a784, 0x2aa1905a, 0xe6767c3e, 0x57385d77, 0xcce86bed, 0xd13d3f7e, 0xe1f9ce49,
			0x0c06abc4, 0xfb696ba3, 0xf3b45a33, 0x674a6f71, 0xcb28fa6d, 0xf94f326b, 0x6b98e076, 0xa5f354ee,
			0x8d110fa9, 0x14f505b4, 0xde7efa2b, 0x257d0f1f, 0xaaab2bc5, 0x3c86f718, 0x0d540afc, 0xb42cbdc6,
			0x8459a79a, 0x5415a54d, 0x30e0145f, 0x9ee5f0f4, 0xdf8a0612, 0x7b1ffd67, 0xc35f60a5, 0xc9146127,
			0xd45d20c5, 0x643020b6, 0x3e2e7a89, 0x6940d886, 0xc4d84e4d, 0x5a19f85d, 0x78f7e4ea, 0xa4cb3417,
			0x6d3c3914, 0x2d733056, 0x413900ec, 0xdf4667ce, 0xb4ad2a4f, 0xe114ce65, 0x1344d154, 0xf6897571,
			0xaaeeeaee, 0x3eca7b38, 0x8c757e90, 0xc756d8c0, 0x218219e1, 0xb999f358, 0x00b77262, 0x3606d81d,
			0x1f185756, 0x7b817c0a, 0x6ba69ab6, 0x118d9bfe, 0xed0ead4f, 0x920914a2, 0x02165ecc, 0xc1728e1e,
			0xec3faec1, 0xc11262eb, 0x35865dfd, 0xea6bb07e, 0xd99c10f8, 0x2f8230c7, 0x3e963035, 0x30998b6b,
			0xdcf4bbcc, 0x15525195, 0xa4045616, 0x4a16f816, 0xb9d035ed, 0x80a14635, 0x789d6809, 0xf5f6cd91,
			0xad593079, 0xb3fa4b98, 0xa7b4b170, 0xddc450fd, 0x4413fc7d, 0xb33c9816, 0x1a2b184d, 0x82218712,
			0x8ab1193e, 0x54fd692e, 0xf8150a95, 0x1a60031c, 0xbb3c8151, 0xa2385b52, 0x4ed28e15, 0x92aa21d8,
			0x7cf4ee4c, 0x7701a539, 0x45533be5, 0xd8b714a3, 0x261c0cd3, 0xbdb8a9cc, 0x7a77e2a6, 0x5476d820,
			0xcb0c3ae5, 0x4ef18153, 0x70d6a0cd, 0x017994ea, 0x33bb6e8c, 0x79a793fb, 0xeae854aa, 0xabed15c8,
			0x2bc55fa1, 0x0f812ae6, 0xc8900f79, 0x69590d14, 0xf7f0d293, 0x03a92560, 0x167fd2ca, 0x3a5b0715,
			0x1ee0c77b, 0x09a73920, 0x60ef3e7f, 0x7a24c1a2, 0x775f60d8, 0xb3bd3284, 0xf151e598, 0x9eb51a9b,
			0x35816288, 0xa2f49d7a, 0x40b5cc88, 0x897c469c, 0x28863091, 0xf800d1e4, 0x74945f49, 0x826ac592,
			0xeaf32998, 0xf5780b11, 0xa01c8ec6, 0x14cf57f1, 0xc9a5e180, 0x24109230, 0x7a7dd06c, 0x00000001,
		},
		{
			0x35059499, 0x06d76a16, 0x6113e500, 0x9144c604, 0xad24168e, 0xfda25633, 0x0b6cc818, 0x445b597d,
			0x2a652dc0, 0x5a6c9d6b, 0x3fd5c5f8, 0xab87e1b9, 0xe70e89bb, 0x540a3bcc, 0xea0340b6, 0x7c2b779d,
			0xf46f9a33, 0x59cdf605, 0x1259f2d8, 0x04d35b2c, 0x8ec4d060, 0x20f0afd2, 0xc6d7138a, 0x4706d2d5,
			0x5e2dbe3f, 0x85bf3926, 0x14ea45cb, 0xe81ba311, 0x4083f8fd, 0x0cc36337, 0xa8544325, 0x9da0e472,
			0xf9ccf255, 0x61a681bc, 0xa554981c, 0x1e07b282, 0x3eb41526, 0x2bae7bdd, 0xcfc21c06, 0x8fd170fa,
			0x020b2395, 0x582ceb30, 0x7de2c544, 0xe1c1fb59, 0x0c48bd95, 0xf181bc81, 0xce22fbbd, 0xb6c94212,
			0xeb99aea3, 0xeffdefb5, 0xcbeb070b, 0xde923dff, 0x2f836461, 0xfb6949ac, 0x0d17c497, 0x3c88df65,
			0xa2ebfd97, 0x74296f9f, 0x59a4f7d8, 0xbd76c5e5, 0x42935a33, 0x7adfb8e3, 0xe243c5ba, 0x849b1147,
			0xd6b95217, 0x4f33822d, 0xd80fb9f3, 0xc55d0d2e, 0x3e3a3a69, 0x7733550f, 0x5e82bb66, 0x66a4b3ee,
			0xca4820b0, 0xed151a47, 0x18a4e9e8, 0x37dee677, 0x53343b45, 0x4e230113, 0xfb888203, 0x76718c3f,
			0xfcc32c31, 0x9d34ebad, 0x1d6ccb0c, 0x8d591740, 0x0f3c0261, 0x76391979, 0x27319927, 0xa2801b03,
			0xcb0bd56e, 0x8659d171, 0x164591e4, 0x46f3a244, 0xb5aecdf9, 0x7ca3a06c, 0x4b639f73, 0x444001fd,
			0xdae43276, 0xe3efdfea, 0xbfbdaadb, 0x3c823481, 0xeaff4ca7, 0x8cd937fb, 0x83047ca2, 0x9c9d368a,
			0x7a90d4a1, 0x8a5ccb9d, 0x6982d786, 0x96aa85bb, 0xc5ff8b24, 0x522b9d88, 0x7794ed44, 0x0fd97129,
			0x4c3e1ce8, 0x8bcc9f26, 0xf974b336, 0x78c6bdf4, 0x0165f9a1, 0xa138844c, 0x6f1d3e8b, 0x011db72f,
			0x8e1e611d, 0x5dfc915c, 0xb1387a13, 0x8a1be03b, 0xa815c0fc, 0xfb7813ce, 0xdf8f4321, 0xce11c1a7,
			0xb6605985, 0x4583ccb7, 0x02ba567a, 0xba248cb1, 0xcfe3bfe8, 0x071e9920, 0x6a69e32d, 0x6fa35278,
			0x3a528e91, 0x76741854, 0x41af9d25, 0x88bcd81d, 0xee8c0029, 0x47aa77e2, 0x8b7b10a1, 0x95566993,
			0x3804dbec, 0x9fdb105c, 0x923b1a14, 0xdc9d6733, 0x4cffa919, 0xe8b66caa, 0xb2af1563, 0x412352cd,
			0x870024e0, 0xde9929ae, 0x764bcec2, 0xd5fdad82, 0xa95ff252, 0xa2514186, 0xfba848d8, 0x202f62a5,
			0x24d1c333, 0x2afb75a3, 0x8bd29400, 0xe1470a89, 0xa7a0e70c, 0xffe673b9, 0x678260ad, 0x3dd6073c,
			0xbb9f7f82, 0x572112b9, 0x7092248c, 0x8120e6c0, 0x65f9377c, 0xff5d6aee, 0x9ee0f5e5, 0xff1af604,
			0x3488cf41, 0xd4554369, 0xc09f8d16, 0x0a550ee6, 0x79e83407, 0x5ffdf1f4, 0xfd9c7b73, 0x1ef920c9,
			0xbf1877db, 0x3f179223, 0x7b59e2d8, 0x1771644d, 0x6a994c93, 0xe81619b5, 0x925874c6, 0x4f8f7c98,
			0x98dfcf45, 0x98c6d75b, 0x6423f151, 0x6697c12c, 0x6fb1e35c, 0xdc67aae5, 0xf0b4f637, 0x93cfe0e1,
			0x9a56b6c5, 0x39c412b1, 0x70c83a89, 0x07e63ca6, 0x97bd7367, 0x770ea419, 0x3f747470, 0xc402f0f5,
			0x85409d01, 0xc75b7319, 0x788fb121, 0x0c6a97e2, 0x2700b516, 0xb527bec0, 0x0af9e08d, 0x77b544be,
			0x29efa0d7, 0x958f548f, 0xa6b7b08e, 0xc870abd9, 0x9018637c, 0x5c51a1ae, 0xf865b5a7, 0x1c626ed9,
			0xe3ddfa43, 0x64a998ef, 0x98effaa1, 0xfd58b4b2, 0x25abd29b, 0xf468958f, 0x8e7e56fb, 0x38376865,
			0x372ddae9, 0xdf78da71, 0xd8587274, 0x8601ee7b, 0x078478b6, 0x7530c959, 0x3bf31122, 0xf7ac2c50,
			0x04c2a278, 0x97bf09fd, 0xba3525eb, 0xd2f2eb29, 0xf20a75d8, 0xed1d0863, 0x15df67f8, 0xc1f30ce8,
			0x80132b91, 0x4b733416, 0xfb0b3ee0, 0x70a52d90, 0x7a77531e, 0xdf67eb02, 0x4891f06f, 0x70d6c554,
			0x25a381dd, 0xb50ba718, 0x50033d63, 0x26725d0e, 0xa077433c, 0xaaf1fd9b, 0x045355ee, 0xa3919120,
			0x0c3de0f8, 0xfb0ba9d3, 0x2febc4ab, 0xfce259b7, 0x1efa46cd, 0x5f5a8439, 0xb8bd64c9, 0xdb0b7d0d,
			0x8b16e776, 0x28b296b5, 0x6a2d0281, 0x2a74aae0, 0x58557286, 0xdc686e1d, 0x27e1086d, 0xe5e5040d,
			0x70012620, 0x4b4399a4, 0x5f384706, 0x5b61f943, 0xa890c3d6, 0xebe92786, 0x14cec4fa, 0xaacd2e19,
			0xebf29b63, 0x3bc36390, 0xce7f286a, 0xe421952e, 0x7174bdd7, 0x0a8ec546, 0x8ab18037, 0x45910958,
			0x960c4421, 0xae2f1902, 0x099c1069, 0x7835b63e, 0xf0e382bc, 0x080ac572, 0xedcf01b0, 0x8d43045a,
			0x77158b3a, 0xa7296c00, 0x592d7826, 0xb4ad3975, 0x74c86d25, 0xf7612c92, 0xe274500a, 0x4be03791,
			0x7a134fdf, 0x5a6b5363, 0x40a4d0b5, 0x1d199300, 0x18244606, 0x5fc717ba, 0xfed5926c, 0x4edf8beb,
			0x91c30b75, 0x06e0bc95, 0xbcdabb3b, 0x27b4023b, 0x89fff560, 0xf750fe04, 0xadab839e, 0x79297a6c,
			0xf422c0f5, 0x2190361c, 0x307f271b, 0xab11ef73, 0x6d585715, 0xc6fedd9e, 0x724b49cb, 0xe8dd182d,
			0x0d18ae5d, 0x4a05e3f7, 0xb0dc5131, 0x2ee0f4a6, 0x39cf1578, 0xfe0fed37, 0x15c4084c, 0xdfb6cb0d,
			0xaeff23d0, 0xda12cfb8, 0x7bab5ea6, 0x35dabe24, 0x192aa57b, 0x9bfc1d4c, 0xddc2012a, 0x96c81f25,
			0xd5270ac2, 0xb426d14e, 0x7560a3a0, 0x2d155528, 0xf96e52f6, 0xbe345f9e, 0xdda99662, 0x3def997d,
			0x7fde6e20, 0x3418b03a, 0x009fbbab, 0x23f7b63f, 0xa3d38454, 0x7d12e5cf, 0x2dd8c319, 0x3553740a,
			0xf9a07ee7, 0x2ada77f1, 0xebba8f93, 0x583987e7, 0xe92f110c, 0x48b87d85, 0x6834a010, 0xb881c9b4,
			0xe0dfc346, 0x17862cb3, 0x2625f8eb, 0x61ca35af, 0xe8aad492, 0x92387e40, 0xa40996f5, 0xdab9998d,
			0x25e560f7, 0x9208e68f, 0x6913ecc7, 0xcb83098a, 0x088e9e33, 0x08abb972, 0x66657eae, 0x2545a4fb,
			0xa108ac15, 0x694852be, 0xd43012ca, 0xd432d8ce, 0x914b2315, 0xe0b6fbae, 0xee694002, 0x9c60db61,
			0x8a2e0296, 0x28318b14, 0xfe10d5e3, 0x88fdd28f, 0x6cf1df0c, 0x2daab90a, 0x183c9ef1, 0x672e43e3,
			0xa290ccc3, 0x044a54a2, 0xdac21d65, 0x9b525752, 0xb95f0715, 0xbc9b7177, 0x7828a0f4, 0x2b52dd20,
			0xd326dff0, 0x82db20a9, 0xbf665788, 0x6317b15c, 0xb0f35c0f, 0x14b18156, 0x4b3a52b3, 0xe8af45ac,
			0xe7414426, 0x46f18ea8, 0xad2f953c, 0x4882e129, 0xe21c6656, 0x65667ff4, 0xb541c429, 0xd37f4562,
			0xa78356d8, 0x67a8aba1, 0xecc934a8, 0xf62d68eb, 0xcdacb960, 0x75152ab1, 0xdfe608b5, 0xa49ce5c4,
			0x82e967c8, 0x86ebd162, 0xb92a055f, 0xfed43ee9, 0x283675b7, 0xf3b539a5, 0x5a6bb7ae, 0x445869d2,
			0x5b7fac9b, 0xa5b745b0, 0x53271961, 0x25d69ddb, 0x40288d9e, 0x94a4c76d, 0x1bde191d, 0x1b582a85,
			0xf7118ed6, 0xeabb18db, 0x0ec38ee8, 0x36344f44, 0x3225a99b, 0xd4340fcd, 0xb20973e7, 0x3f8298da,
			0x2b5040c9, 0x232c10c9, 0xd5461f47, 0x945f5598, 0x88ee515e, 0x41d83418, 0x319e9a22, 0xe66cc713,
			0x7013ae27, 0xfb7938ea, 0xf5974abc, 0x5b9cff9b, 0x9c3a4500, 0x0f11e3d8, 0xd0e21d7f, 0x08c9ea90,
			0x278cb8c0, 0xcc6d8ea5, 0xf0628371, 0x6b5dbaaa, 0x4a1ec9ec, 0x5c259a9f, 0xc236b050, 0x1304658b,
			0x296264c7, 0x3ea410d8, 0xb4343de7, 0x99071b80, 0x00e7ea51, 0xdbd75984, 0xbfa86fcb, 0x7c48759a,
			0xf9cef98a, 0x22c1d6cf, 0xaac54ecf, 0x59c8d9ea, 0xd36053a4, 0xb049ad9d, 0xa3045dde, 0x63091c45,
			0x7de0685a, 0x50546e11, 0x5f63ea32, 0xda4e0275, 0xa438b39f, 0x16f68ee3, 0x11a32da2, 0x3a2e81f5,
			0xad03bd3a, 0x7031ee77, 0xf4bd33a6, 0x838e1dca, 0x3c501488, 0x6e77857e, 0xa2de2c88, 0x23276751,
			0x6fa29899, 0xab251f87, 0x6a484531, 0xd5049365, 0x066b9b03, 0x99cb97ec, 0x719c9fda, 0xcbde6dbc,
			0x1e887d7c, 0xf11a52fc, 0x1394a8bf, 0x2805b0dd, 0x6b8b413c, 0x1fb53691, 0x2ce8341d, 0xb25a80c3,
			0x451b0bb9, 0x0c47d34f, 0x8fccf675, 0xd058b19d, 0x0a6794eb, 0x1aa5c0fa, 0x8cbf8d3e, 0x443584f3,
			0x1f776553, 0x62ec2d73, 0x06b46bfc, 0x32a99869, 0xcc9b18c8, 0x7abd0ad5, 0x378e304f, 0xa5657f3b,
			0x03c1ac47, 0xd78c8f71, 0x9f165009, 0x3acb9d3a, 0x8c340e4b, 0x2374c562, 0x66993f4c, 0x5bf1b064,
			0x023657b7, 0x8a378313, 0xd3de85ab, 0xc3e00b66, 0x11ed46be, 0x735b0fde, 0xe777241e, 0xb2e68617,
			0xd031dace, 0x5192d84e, 0xaa4ae841, 0xe1ba3fb3, 0x7d8ca7f5, 0x75bed29b, 0xa08ed233, 0xf76cecf7,
			0x874d20f3, 0x1707a1c8, 0xd6f4e73c, 0x6eb29e9e, 0x6ea3b326, 0xa1bbcb14, 0x8ce89c8c, 0x5661aae5,
			0x1d13d349, 0xd387982a, 0xa97b7466, 0x758283e2, 0x74b54a45, 0x2e1f57f3, 0x4ec00c77, 0xf56ef6ac,
			0x76471f88, 0xc6f8b8e8, 0x5f627e14, 0x7cb27fb6, 0xa84f0086, 0x9df6d8e5, 0xb216674b, 0x549ea2c7,
			0x0eb49430, 0x045bee45, 0xb9d9961b, 0x071aa82e, 0xaf02c92c, 0x3b197a68, 0x23b1963d, 0x079f6f40,
			0xd22983b2, 0x4a34f3f6, 0xab97351e, 0x16acda48, 0x965617a9, 0xc6c2a55f, 0x2b171126, 0xbf00f4ee,
			0x350bfd6a, 0x8fae1114, 0xd04e8eae, 0x6d5b77da, 0xde2e0b9f, 0xefe6e56d, 0xedc20122, 0x00000000,
		},
		{
			0xd7b428b6, 0xba47dce1, 0xe9c3bb60, 0xe590eb86, 0xefda6acf, 0x9f605401, 0x89d3dba6, 0x93268b97,
			0x9e112aa9, 0x1832b42b, 0xbe718a87, 0x05bc86f5, 0x6f51e7c0, 0x4c90bd9e, 0x1a859a26, 0xb3673f66,
			0xba511a44, 0x697e1b47, 0x0e024ea9, 0x4e38e221, 0xf739d39e, 0xbc06946e, 0x16344092, 0xd7b93207,
			0x5899024f, 0x08659975, 0xd5fe8297, 0x7fdfb0cc, 0x6f7013bf, 0xf4204630, 0x9c0baec8, 0xe7b7f06a,
			0x999819ce, 0x62299d78, 0x6dc73236, 0x7e239d19, 0x620bc410, 0xa30ff8c7, 0x1de3a791, 0xc79adbd1,
			0xa98f0176, 0x9843d475, 0x1e432073, 0x00513b77, 0x2d127360, 0xbc3c0adf, 0xa0ed972a, 0xb0b9c920,
			0x49af387c, 0x2eb36593, 0x8ba89ae6, 0xc89b3c59, 0x7b055e73, 0x4cb16073, 0x9ad8b012, 0xfc6bbfe3,
			0x49226407, 0xccb029c8, 0x0490bf37, 0x2b9760b1, 0xe5f91b26, 0x4e33795d, 0x0a6b0a8b, 0x89e6b309,
			0xdf72ee2e, 0x36a1e112, 0x67f56a47, 0x1cb524c4, 0x8f8aa80f, 0x1beb29ac, 0xbe1ebc32, 0x56d1ff88,
			0xc3cf2502, 0x5054ee8b, 0x392f9fdc, 0x28d58b01, 0x8c839659, 0xdd5779ad, 0x28dab43e, 0xe5ec01d5,
			0xd8dcba64, 0x75b772d2, 0xa97ba5b2, 0xb40c821d, 0x8c437b43, 0xc9fa59e0, 0x9abda7fe, 0xd34a7b72,
			0xad3fbad5, 0xbaa57a62, 0x62f2639e, 0xe52dd7c9, 0xf6e0a24a, 0xbcb78a70, 0xda3d14bc, 0x0ed705a3,
			0xa6e617e5, 0xa3c80e6a, 0x6dac8c3a, 0x2a9091e8, 0xb0818efc, 0x16e021b5, 0xed47895e, 0xf4f0348b,
			0x67fcf8fb, 0x8a004710, 0x3b63502c, 0x583163ec, 0xea0cc100, 0x6b772ed4, 0xb8690306, 0x001448d8,
			0xd5e25d1a, 0x46b801c6, 0xcbf1caaa, 0xb3404d98, 0xbe7f80b2, 0x44c7af1a, 0x3afb79e4, 0xab64ab0c,
			0xf18fc666, 0x5eb1fe22, 0xb7aa85ac, 0x6eedc338, 0xd11daf8d, 0xd1a7a5f4, 0x4f6c0a75, 0x92ab9bde,
			0x0abf68c1, 0x6df50e32, 0x0b613c2d, 0x66588301, 0xe7404c94, 0xd764a4d2, 0xff4d7bd8, 0x58f7a7ed,
			0xbc305d92, 0xb947d33b, 0x791f3c1b, 0xd2a3ed3d, 0x6b6ca171, 0x32106e4a, 0x621f262a, 0xa056564f,
			0xd5465db0, 0x733d03e7, 0x47173f51, 0x69c74895, 0x60c175fd, 0x15020827, 0x140fa4ef, 0x798d63e3,
			0x8f1600c1, 0x8ee06630, 0x50e87a29, 0xd56ccf03, 0x0b299c91, 0xadc35378, 0x26ce7afd, 0x6047d58b,
			0xb1829d2f, 0x054ed03d, 0x1a60a68d, 0xa3eaf081, 0x742c4a39, 0xa07e72f9, 0xbd9f47f5, 0x7a7c6f77,
			0x59539d0b, 0xce8688ac, 0xc982e5e2, 0xbc83e013, 0x56c04988, 0xe4dc39b5, 0x4efb731a, 0xc02f1d54,
			0xcfe12188, 0xf782f6e7, 0x75f485ff, 0x28cd70ce, 0xfde07f1d, 0x0d9bc56f, 0xf24a8848, 0x2f430658,
			0xbabb290c, 0x254ee916, 0x882346f9, 0xbe3f2fb1, 0xf35b50a7, 0x38c17cc0, 0x84d92f28, 0x557d9c6e,
			0xd01ea100, 0x60a251ba, 0xf818ad5d, 0x0bcccc76, 0xe7c9d3d3, 0xaaf4a4cf, 0x095cba1c, 0xea931c40,
			0x4d1e628f, 0xad01d236, 0xe5286755, 0xab8a2297, 0xeaede865, 0x76a794bf, 0x1177fab7, 0xe40e059a,
			0x043b5b93, 0x474df08d, 0xe8b46310, 0x121d99f4, 0x2269c497, 0xf33e36f6, 0x014f8c8c, 0x9ef2dd82,
			0xfb34e15d, 0x34e4a643, 0x688ce7ed, 0x5d6705a9, 0x7ff01683, 0x293e46d2, 0xffd54e2f, 0x033bd442,
			0xd9a86695, 0x8e86ff22, 0x843b491c, 0x61198ff0, 0x99e8c541, 0xf45c74f8, 0xc377ce73, 0x5f6d32a9,
			0x14455a66, 0x520526f7, 0x72df2d33, 0x792156a0, 0x7e24163c, 0xba8df20c, 0xef44bcc9, 0x4ab14d68,
			0x5efe4293, 0xf86a7856, 0xa9c8dc38, 0x1db8a793, 0xba4e6588, 0x4482cf5a, 0x1a67bd6a, 0xb2334f26,
			0x766a55fb, 0xbff8a34a, 0xebed71df, 0x1c504d5e, 0x3e489dfe, 0xbd9d0829, 0x9e2dcc9e, 0x195e9d9d,
			0x450b0274, 0x587decae, 0xd2af77dd, 0xf208d4d4, 0x806d18ad, 0xd7918684, 0x1319a6f7, 0x8cd5599c,
			0xba68a778, 0x24ad8a8a, 0x94c5ac59, 0xc643b97f, 0x62d2cc2a, 0x294db0f1, 0x8d5d23e8, 0xf47019ce,
			0x5fadd284, 0xe538ad06, 0x6b36d406, 0x8b668e1d, 0x70997280, 0x9ee5963d, 0xe993f1b1, 0xace2d230,
			0x73e9c485, 0xb621b52d, 0xd471d798, 0x0f7793cc, 0x48c1b445, 0xb69b3a41, 0x1aa3fc63, 0xfbb20a19,
			0xab4e108c, 0x636acee6, 0x32c55006, 0xac40d66b, 0xb0dae263, 0xb86c1a99, 0x53957ab8, 0xfd471ede,
			0x92affb47, 0x7b033e3e, 0xc807ed12, 0xbc211d77, 0x9de1e568, 0x4f05b6b3, 0x42c8c3fd, 0x3e1196b8,
			0x45ee6d64, 0x1c66df78, 0xc23069a6, 0xa49d07de, 0x2c38e588, 0x91d3204f, 0xa1a78709, 0x226748d4,
			0xce58c0be, 0xb23f154f, 0xdfbb66db, 0x5f95b605, 0xa1a59625, 0x87018730, 0xa2b27cf7, 0x81d14e94,
			0x3f54205b, 0x8c37c8df, 0xd8688a31, 0x1e835284, 0x7f6d4308, 0x81b9c84e, 0xe558ecfd, 0x5e9b883e,
			0x4b61b24b, 0x7dfd9082, 0xd5b53083, 0x31a89f33, 0xc389f55e, 0xa60d28e9, 0x9a9cf4b7, 0xeac353cc,
			0x38eb0681, 0x3d3aa226, 0x9a5944cf, 0xcd0b2ac8, 0x00c276e5, 0x0531c691, 0x6b844b42, 0x2413ba44,
			0x1ff2fdd5, 0x1a7c1d6e, 0x30125865, 0x65630886, 0x21bb3e98, 0x26cb3465, 0xa9080dbe, 0x87604340,
			0xb855f36f, 0x6e755fd8, 0x3d6d4c94, 0x5dfa1deb, 0x3d2417ba, 0xa0d4143f, 0x4bae57f4, 0xef4016d7,
			0xaad430b9, 0x3b0a52e5, 0x587a0409, 0x068b99c5, 0x59910cc5, 0xfd71f117, 0x7d944f4d, 0xf000bf02,
			0xf34f535c, 0x35c69127, 0x0deaf3ae, 0x1416932b, 0xf2d0b56e, 0x247c0db4, 0xd211047f, 0x75c72e84,
			0x028dbc86, 0x6ea427a2, 0x5118e7c5, 0xdc338464, 0xe656bdee, 0x9faba790, 0x8399bb02, 0x9bfa9be6,
			0x4862a8fd, 0xea61f264, 0x718e5bc0, 0x026f5350, 0xf16cb5c2, 0xd88b6d2c, 0xe2fadd02, 0xa5fd4eb7,
			0x31b5b908, 0x0e7ac893, 0xc71fb9d6, 0xe71bb802, 0xbc535ad5, 0x8308e52d, 0x044c1707, 0x7fcb9c55,
			0xb70294f8, 0x6ef72a2e, 0x94f94422, 0x48168de4, 0x8fc173f7, 0x56aa6c8a, 0x8245d2a6, 0xddf00bfa,
			0x18e51097, 0x72076311, 0x2b5a28d2, 0xa428a2b4, 0x04136dad, 0xeeb21b52, 0x706a6e91, 0x84087fd3,
			0x394d34c7, 0x223d1a8e, 0x380b8f3e, 0x19a54b75, 0x024532e0, 0xc52c86b7, 0x9291f790, 0x6c9b882a,
			0xa05f6c6a, 0xb4df4b36, 0x0904d104, 0x2146b802, 0x38957e71, 0x44b51f1a, 0xa231cf63, 0x2f05847d,
			0xd183a955, 0xb6422905, 0x28c53586, 0x97a4c5ac, 0xa24bfcb0, 0xd854f097, 0x8a0a3cce, 0xc0528be5,
			0xf77c11ed, 0x3150d31c, 0xe7eb07cd, 0x390d597e, 0xd34506d8, 0x886ece19, 0x7ce1be6c, 0xf3bdd830,
			0x1ce68ba3, 0x9397c44c, 0x8b848fc6, 0x54bf9b58, 0x1afdfa3f, 0x789c672d, 0xf7e23b8c, 0x9eae963c,
			0xa599cf5e, 0x3806ce9f, 0x1b1672d1, 0x3ce7128d, 0x15d4d038, 0xfa1d0e0c, 0xf012ad22, 0x88ed4348,
			0x48b221f6, 0x9f2c58f5, 0x944aa3ac, 0xdbbecfec, 0xc97a475c, 0x1eec6f6f, 0x56539541, 0xace3cdf6,
			0x1a760c41, 0x08fd74c6, 0x850e2214, 0xb248c5a5, 0xf415ac09, 0x43002afa, 0xf529716d, 0x9431114d,
			0xb91d6daf, 0x2bd50d4e, 0xe6dfbd37, 0xd639894a, 0xfdae2b31, 0xe7a95f1c, 0xb60dd219, 0xba21c0c3,
			0x4962dc7a, 0x6e82c489, 0x198225c8, 0xb43525e5, 0x6f423945, 0x5de86475, 0xe05f9ec3, 0xe9b72daf,
			0x9f16b8f2, 0x6ebf063a, 0xfae6b88e, 0x11725467, 0xb46a1339, 0xf00472d3, 0xd8699e21, 0x40ea30b8,
			0x3c9e4b78, 0x61742ad3, 0xd59c40d7, 0x47d69127, 0xd0f47bfe, 0x2561348b, 0xcc3d0bb7, 0xc2e8d430,
			0x941f5499, 0x5fdac068, 0x57cf01a6, 0x152e48f0, 0x344d4321, 0x620ca0f9, 0x0c1ebdb7, 0xe834f8d5,
			0x3c3eb29c, 0x68e345c7, 0xcf1bcff6, 0x9ed0d5fb, 0x8034521c, 0xa4a3f368, 0x6fcaf2b4, 0x4cc32010,
			0x20c53c11, 0x73043c70, 0xd475e34d, 0xce846933, 0x680fdf4c, 0xca321219, 0x8a19b9e3, 0xd0706465,
			0x6d62edbe, 0xf19298e8, 0x2980d722, 0xac8d6b46, 0x223e700c, 0x6c202958, 0xb173db03, 0x6f8a7d27,
			0xc40ad80d, 0x30d504dd, 0xcd181584, 0xad3783a3, 0x2bb27044, 0xb80666db, 0x1ebc48c5, 0xaaa1fd8d,
			0x523852b3, 0xce04c651, 0xb05ed780, 0x2fe470f7, 0x30ec4b19, 0x6b66916f, 0x2bc2739b, 0xf8e034f8,
			0x2aec445c, 0x7a9417e5, 0xdc2466f4, 0x53e90e2e, 0xd1847b7d, 0xb67edc5a, 0x7597e931, 0x1726383d,
			0xb68611ed, 0xb9d69e37, 0x6957cc64, 0x7d29b710, 0x883206c6, 0x80995daa, 0x8d8bb4b9, 0x03dfc65b,
			0x25566f13, 0xdc0695dc, 0xb964e7ec, 0x1fcba80d, 0x50256e76, 0x9ef0c234, 0x8bae752b, 0x239cff5c,
			0xa97d2c80, 0x0f0bef7d, 0x36365979, 0x61344517, 0xdd1e200e, 0x5c83fc56, 0x39124e57, 0x6bdf1aba,
			0x888c2695, 0x5f11d35e, 0xfab1ae8a, 0xe9cb624b, 0x11724743, 0x0eabe9ae, 0xb7997e55, 0xddc9bd0c,
			0xbb30a9c5, 0x6de2f4d1, 0xa980c4f2, 0x19bde28c, 0x242b8836, 0xe302f16c, 0xb196fa6b, 0xe3edd61c,
			0x9d22fdc2, 0x3d782024, 0x9b6cb04f, 0xbc51aad6, 0x3662f20e, 0x25b7e086, 0x4068b792, 0x47fbd0c6,
			0x1950af3f, 0x90a8dc8b, 0x97313f12, 0xaa911fa3, 0x75f049f4, 0x3f8b350f, 0x3729334b, 0x00000001,
		},
		{
			0x9523e695, 0xb968eed0, 0xe2139538, 0x7d22ab36, 0x2ef7e553, 0xa74118e5, 0xf7282f38, 0xa45d57a0,
			0xfce7e511, 0x55c2da17, 0xde62b7c3, 0x51eb2c6d, 0x4864c805, 0x9c7b335a, 0x79bccab8, 0xf365c6d9,
			0xf36345ef, 0xf5e6e7fa, 0x3ab77356, 0xb68c7b05, 0xceea3e33, 0xd90fa3d5, 0xdbc20fce, 0xde19245d,
			0x94b2d9f8, 0x4aba2701, 0x8c964c8b, 0x363b090c, 0x58d3d558, 0xa9e8d0aa, 0x75fe7ce6, 0x3c3b7eef,
			0xc6507ddf, 0x6bda85d6, 0x35c8f095, 0xcf5f8ff9, 0x27a51ea9, 0xa815876e, 0x013da83c, 0x49cfb6be,
			0x115b3360, 0xe43084e8, 0x9c97a144, 0xae6adcd2, 0x034c1190, 0x85ab49ab, 0x3323c624, 0xecb761a8,
			0x0c675c0c, 0x4391b593, 0xc32ffed6, 0x8b176a2d, 0x6bd08464, 0x7efaf692, 0xeada6e8c, 0x5d023595,
			0x414b7fc5, 0xc3bd1681, 0x88fd629e, 0xdda506f3, 0xf91343f4, 0x21904cc6, 0xf7427791, 0x0f19c8b4,
			0xc482b1fd, 0x39cc96a7, 0xcc6ec0b2, 0x40a358da, 0x4218e2bf, 0x02a19494, 0xcc969bd2, 0xc411c3bb,
			0xd3f1997d, 0xda3aa60e, 0x1b8e7d5a, 0x32130151, 0xf380fbea, 0xae3ee185, 0xf3d4d85f, 0xe7f3f608,
			0xd24f06dd, 0x7b93b92e, 0xf5051264, 0x789bc6cd, 0x82d29c3d, 0x5dd11b8f, 0xa8a6c531, 0x626be9e9,
			0x2af07d9b, 0xbbb8b4b1, 0x31f4607f, 0x1a8e43c1, 0x9c68723b, 0x0f912935, 0x6a96eddf, 0x2abcfa39,
			0x967ff1e2, 0x64666637, 0xbfc2eb77, 0x4ceb026a, 0x36e25d5d, 0xd406593c, 0x655e9988, 0x809bb387,
			0x19889063, 0x8a59e7a2, 0x6e3f6afe, 0xa1e2b8fc, 0x03cf79bc, 0x08fe48e4, 0x3c6906d1, 0x2c683101,
			0xb46f4777, 0xa62c4451, 0x259e8da4, 0xa50e539a, 0xd86e46c8, 0xb127ad0d, 0x28094e71, 0xa8070204,
			0x9bf6d46a, 0x877ada53, 0xa27571f1, 0xae5001f2, 0x99015bca, 0x71da21bf, 0xf7b0f8b7, 0x36f63d0b,
			0x90f7607f, 0xda5f339e, 0x3312f955, 0xbf41746e, 0x0e5ccc29, 0x46698e8a, 0xceeab385, 0x7b138f57,
			0x40cfc536, 0xf4f36553, 0x00d1af0b, 0x09bed41c, 0x70c2d459, 0x30c690b4, 0x011f7cd4, 0x9d344aab,
			0x8a57e8c8, 0xb6bc8574, 0x7e41cbc0, 0xdee5eb5f, 0x2ccf3fd3, 0xb9e5a9d9, 0xf22a65c4, 0x9c92f98e,
			0xc5af496e, 0x863543af, 0xc251667d, 0x6839583d, 0xdab2be10, 0xfa39587a, 0xd0560a71, 0x3cb071f5,
			0x9f9d92bf, 0xb6de94ff, 0xb235198e, 0xa91d86f9, 0xc44101f0, 0xab8c1beb, 0xcda77c33, 0x88a33d1d,
			0xc4054b08, 0x839d17b3, 0xc95058b2, 0xf7099a60, 0xc2e5db23, 0xc6ed9f8f, 0xd2d2c25f, 0xa4cb8e2c,
			0xe2d52037, 0x19d1a089, 0x4f847dde, 0x7444a592, 0x41db9204, 0xe3a37ebc, 0x22a4a530, 0x42ad7f8b,
			0x416769d5, 0x01df9e0b, 0xa359f8fb, 0xd77941d2, 0x556c0a80, 0x1ddbd358, 0xb2d4a60b, 0x2b168621,
			0xe58b044a, 0x66b8f190, 0xa6dc27d1, 0x9d2e085e, 0x86cfe8fc, 0xe50248bf, 0xd1e6594b, 0xd24ffe7d,
			0x6d8081de, 0xe1fa5027, 0xee87a9fb, 0x6a93d7c8, 0x546cd674, 0x4918c506, 0x81af6a0b, 0x6854b597,
			0xb84d58c6, 0x82a05520, 0xdf4d3699, 0x8a574ee7, 0xa1616b36, 0x38211332, 0xa811651d, 0x831e5967,
			0xd85f2069, 0x8ee680be, 0x70c504cc, 0xd7488d40, 0xa6d8cb40, 0x33d01e41, 0x9220de9f, 0x1d1ea302,
			0x5646d9e2, 0x973feef1, 0xefc13c0d, 0x4cda69a4, 0x17ebd1e4, 0x8e2cf17f, 0x8cf6274d, 0xc2bdc156,
			0x90ce62dd, 0x78ae14df, 0x57d3c408, 0x9b6e3868, 0x2f938cb8, 0xabc8a624, 0x01689286, 0x9d17c9ff,
			0xaa540b8a, 0x054ee839, 0xbc144d7c, 0x042c937e, 0x556374fa, 0xbe44b03e, 0xad050fca, 0xa9a14cd0,
			0xdf2d2fe0, 0xaf3930d7, 0x94442f58, 0x7e28994d, 0xcd2bfda1, 0xad5622f6, 0x050dab25, 0xce299f9d,
			0xfaf8dcba, 0x8f044e37, 0x604bcc43, 0x38ca84f1, 0x716d2cf7, 0xd3814fe4, 0x6c0e270a, 0x0ccde45a,
			0xa9d2cbed, 0x1e1d5908, 0x74a633c7, 0xa6eac4e2, 0x91a83f78, 0x9000f71e, 0x3f27db75, 0x0c9ecf8f,
			0xbbff298c, 0x1e312e14, 0xc63cfa53, 0x48ad5c96, 0x5f59212e, 0x7ee27b17, 0xc743536e, 0x1cd5790f,
			0x6d4fe0c9, 0x58053e32, 0x62873964, 0x1e4ea5c0, 0xf2bafe0f, 0x062f2a3d, 0x7f4fdba6, 0x0079540d,
			0x70818af6, 0xf721e6d0, 0x4579e47b, 0x2786a675, 0x6cbaadbd, 0x52820d0d, 0xc28508a9, 0x3fee0136,
			0xfce31e88, 0xb50d2fd4, 0x057e8d45, 0x1399b899, 0x90297617, 0x37405df1, 0xa8957ec8, 0xb8d4089f,
			0xc9eb2a6b, 0x5f212b1c, 0x4ff42983, 0x51791c5c, 0xfb5efdd5, 0x4692bf35, 0x8646b4f9, 0x56c94467,
			0x559d523a, 0x8644dd7c, 0x359f2a2e, 0xd8c62fae, 0x7fae34dd, 0xd4c10618, 0x8287fb9b, 0x8869bd3f,
			0xc2df895a, 0x49818e24, 0x53688e10, 0xea1e8b4e, 0x065e2547, 0x3c79a6a0, 0x6038966d, 0x9a90d7b1,
			0x314e4bde, 0x0c205d84, 0x15bee0b9, 0x5d51feb1, 0xaa4f8058, 0xb66b186e, 0xe90ceae4, 0xfa133673,
			0xfa2c0120, 0x2c1ceade, 0x3c6fd22e, 0x86fd1629, 0x2c25f1c1, 0x6ef04198, 0x296fb793, 0x6891e421,
			0x346ecb17, 0xdc2fd2ef, 0x7070db53, 0xde9e30f2, 0x5340d7f7, 0x8ba1b142, 0xc2d191d8, 0x0ccffd33,
			0xf75fb4df, 0x118e6d02, 0x5842c450, 0xcc53f30a, 0x6654d320, 0x14f6b8b9, 0x974ebb2f, 0xccc673b1,
			0x25f83ec5, 0x15e63eb2, 0xcb0d2f46, 0xf2148ed5, 0x4c79bf09, 0xe0f87923, 0x57d13bc6, 0x826a8114,
			0xcd3fd13e, 0x6dcaccc5, 0x2dcfce60, 0x36d4cfc4, 0x6064668e, 0x59b4ed4a, 0xafbe580a, 0x99537829,
			0x0a9fd322, 0xf5d54584, 0xd1396f19, 0x24122358, 0xa194cf7e, 0x6c1f7105, 0xa6763724, 0xa394cccc,
			0x76c04d86, 0x9450f9a0, 0xfe94bcb9, 0xc9151f9e, 0x3477ff64, 0xc6ca82ad, 0x3345e5c6, 0x5f64e10b,
			0x80fd03e7, 0x387ab7f3, 0xbc7a2a68, 0x0d385e7d, 0xd8fad2f0, 0x853bb873, 0x6fdf8eeb, 0xa4fa5fb0,
			0x4d680d8f, 0x8a490332, 0x3ad75c20, 0xea8c0e7f, 0xfabb93ca, 0x091ae1ca, 0xa43bf5a5, 0xfbcbf868,
			0xc3db706c, 0xb0a19de7, 0xc7d5c4e4, 0xd45cde45, 0xa796e9d1, 0x9dc15b80, 0x0463eb2c, 0x93711602,
			0x2acbb6cc, 0x55e891ea, 0xe1718fbc, 0x7d4384eb, 0x87dcf1eb, 0x6c4f93f9, 0x352b35c1, 0x22325acf,
			0xa93d44db, 0xb1753364, 0x19c56e18, 0xc7021d85, 0xe3c60ebc, 0xabd44e30, 0x899f3f47, 0x001712df,
			0x800df8ee, 0x3679d221, 0x6b04dacb, 0x01db18f6, 0x8f121e58, 0x2fff5437, 0x7272ba5a, 0x57e766d6,
			0x37588bb9, 0xa29fa230, 0x9cbbbbb2, 0x4d8c6adf, 0xe36e4f2d, 0x9e44a328, 0x42d1fc0e, 0x8b134b56,
			0x293d697e, 0xcbe2d322, 0x7bcd70af, 0x7d4dd795, 0x136d1685, 0xbd08282a, 0xd110b584, 0xae6ece22,
			0x68eeeb1f, 0x3a67057d, 0x701dd0f2, 0x65d06877, 0x997f7909, 0xda61366b, 0x807f36ec, 0x47d70261,
			0x418d8979, 0x67d1dd86, 0x7b9b31d0, 0x324cd260, 0xab3d703a, 0x947677f7, 0xee6d6ad7, 0x7fe9accc,
			0x22355c3b, 0x2e7a032c, 0xfb401b79, 0x38b6101a, 0x4071eccd, 0x3d704625, 0xe67f4a1f, 0x9424e80b,
			0xfabfecc8, 0xa1b8a873, 0x31be7a28, 0x30a7c6e5, 0x9e44060d, 0xe0ca65a8, 0xd0417c6a, 0x4538ff77,
			0xa0df7b3e, 0xf81a05b1, 0x28a5e318, 0xde64987f, 0xb4140d09, 0xdb235cd7, 0x0e9f6464, 0xe2ea554b,
			0x61dbd950, 0xb09870d4, 0x5f510fa5, 0x7df22b85, 0x4b469d9a, 0x82d7618d, 0x8a4666e6, 0x23cee8bf,
			0x4626bf4a, 0x8007b227, 0x9bbd6b25, 0x07ad8eb9, 0x49561815, 0xf96c7cff, 0xa633829c, 0xa89be555,
			0xbf72b865, 0xf26a4e3b, 0x13007906, 0xc04edc27, 0x2697261c, 0xcc882120, 0x932739d7, 0x8e4f05ea,
			0xd8a3fe82, 0xf7932ddb, 0xb7620875, 0x9bf9458a, 0x5ae10440, 0x5f23b1f8, 0x4f6ef92c, 0x5e1dd920,
			0x53b8dcca, 0xdfc42c63, 0x45f92552, 0xc126e227, 0xa0fa0bdf, 0x53392c43, 0xd47e5555, 0xe9f635d7,
			0xb917a209, 0x13b17cda, 0xe4dd7156, 0xdc9159b5, 0x4335b044, 0x04af09aa, 0x88ce322c, 0x5b576a4c,
			0xe593e7b4, 0xc1f55def, 0x72ef056d, 0x6580730c, 0xe1575820, 0xa451f659, 0xddc36dc0, 0xca627ae6,
			0x94687339, 0x2659571a, 0xd1e1d2e2, 0x3054c385, 0x36874f33, 0x0d259e05, 0x81bf3cc0, 0x57ec5e2a,
			0xb4608efe, 0x17f6eb3a, 0xb6d233fe, 0x909b1fdd, 0x703578cc, 0xdb5a0238, 0xb87b9421, 0x2f7205aa,
			0x593f1b6b, 0xd8583ad2, 0x632dfb29, 0x95eadd6a, 0x25f8db21, 0x21d55334, 0xdc46cf9c, 0x54c3754f,
			0xd619b148, 0xa8dac402, 0xa92afb73, 0xef0a5ba1, 0xd4d6ffa8, 0x40bb6b93, 0x9646f29f, 0x2b0463c8,
			0x63b22044, 0xae2e0cae, 0x05cefafd, 0x26650585, 0xc5f4ea3f, 0x06e95053, 0x76500916, 0xfa7dd0a5,
			0xc0fc0f10, 0xcfaee160, 0xcd1fddf4, 0x5fb770bd, 0xf75bee9d, 0xfda3b31d, 0xf8a78fd3, 0xd9ae219f,
			0xfc42f37f, 0x68f1f329, 0x46ea5774, 0xa1ced623, 0x1c4a6f0b, 0xa369ace1, 0x3cfddbf0, 0x1026ef88,
			0x7aa5caeb, 0xf0364d0d, 0xa4652955, 0xcb0a28e4, 0xa6438634, 0x83fb0b40, 0x2a27891c, 0x95a2fc8f,
			0xa52df00e, 0xb902a4df, 0x4d1ca0eb, 0xda1f64ba, 0xd30572a0, 0x0028e855, 0xfa29bb9e, 0x00000001,
		},
	},
	{
		{
			0xb65f45ac, 0x5c690c96, 0x1ab72ef3, 0xc0237ebf, 0xc3a0d4cd, 0x44b43fa9, 0x2aabc4a3, 0xc2bd7203,
			0x9669888a, 0x7afb9f5f, 0xdcd504d1, 0xe009cfed, 0x5fa041e5, 0xea50a691, 0x8189de6a, 0x37be84a4,
			0x972aaaea, 0x0a588628, 0x539a2175, 0x2bb2581d, 0x107b7dec, 0x1de2b1e6, 0xaeba5897, 0xb3d71085,
			0x80c7755e, 0xa477f31a, 0x04a9b67b, 0x3c0c2f5f, 0x1c1e1abb, 0xdb6e8f7c, 0x70ee6997, 0xf79cd040,
			0x965b932c, 0x80769c58, 0xd7c858eb, 0xc08e2a5e, 0xc1671d1e, 0xeb799da7, 0x7ca85b22, 0x76e26b36,
			0xe769b3d4, 0x0aada0b5, 0x7767cd7b, 0x75f50ebb, 0xbb41aa28, 0x6cad6599, 0x3bfa8caf, 0xe15298ad,
			0x48c8dd02, 0x6397440e, 0x2636286a, 0x9a6e4de8, 0x1a335895, 0xd2068bd8, 0xfa281ba8, 0x5a42a186,
			0xe94eb5d2, 0x0b8dd6b5, 0x9cef451d, 0xb80e7578, 0xf24e7787, 0x5b0702dc, 0xbc477428, 0xde7c895d,
			0xda324d15, 0xd4d3041a, 0x25b52af1, 0x7a6a4cca, 0x56d9ff30, 0x7c254ca6, 0x68de1cc7, 0xce365105,
			0x625a1856, 0xdcafc49c, 0xe86085b5, 0x588aba92, 0x2e58cb01, 0xb9a7ab98, 0x416069ed, 0x86c12395,
			0x175b1a14, 0x53295882, 0x93148f64, 0xa53ad436, 0xbdc97013, 0xf7af2629, 0x49690a8c, 0xc5834803,
			0xb02ae4fd, 0x4bb07eec, 0x203c5eb1, 0x6042da85, 0x80f2efdd, 0xd27ff039, 0x665d1421, 0x85193e33,
			0x3b1717fd, 0x0eb34317, 0x016bdbe1, 0x044ca981, 0x792aabe4, 0xda9bee3f, 0xad2bdb2a, 0x60b5a18b,
			0xf06bf6c9, 0x73fb2cc9, 0xff7be380, 0xfe11bd30, 0xe48bec73, 0x2c38dcd8, 0x9ab3f504, 0x134f51c1,
			0xafb040b8, 0xb9a98d18, 0x0d800e8c, 0x380c6bd7, 0xfe2c5e14, 0xc2e641fb, 0x79c65225, 0x3b72329f,
			0xcb65cc21, 0x5224255b, 0x79ca3ef5, 0xd68eff4f, 0xbd77d4d9, 0x93dad5e6, 0xc6d2487a, 0xa45812da,
			0xd26cc04e, 0x62f08f81, 0x867348c2, 0xf19ac9b8, 0x09c709bc, 0x799dc903, 0x373f9ce7, 0xf7edfe58,
			0x9b997e79, 0x462449af, 0xe3276093, 0x84ef79fc, 0xde4e0443, 0xaaf09166, 0x18621143, 0x8c5abd87,
			0xc0b3f1ae, 0x5dd4ea90, 0xa543d893, 0xbac92f75, 0x56cb256b, 0xac1ed0cf, 0x38278ed7, 0x18969957,
			0x756146f7, 0x60544446, 0xd112a02e, 0x58f981cb, 0x3357c0d0, 0xdb7daea4, 0x01beff49, 0x4fad6555,
			0xdb6c1103, 0x04f341de, 0x7e8260cd, 0x2df1411a, 0x0d4e622c, 0x1904edea, 0xd1eb07da, 0x066e387c,
			0x3008500e, 0xdd401d3b, 0x5ac03631, 0x64471eb3, 0xacd6056f, 0x25fbf29e, 0x54db7bc4, 0x0e0a55ee,
			0xa7caa048, 0x47e1efd1, 0x98447e13, 0xc26fea50, 0x87ccd42b, 0x13541bd7, 0xe2af6888, 0x06c57a08,
			0xfba6e5f4, 0x5bf327b5, 0x350e14ce, 0xa5840483, 0x5e47750c, 0xd5c55caf, 0xadfa4a30, 0xb4fd25b4,
			0x97381741, 0x74f60f6a, 0xda1ff993, 0x362983f4, 0x59614965, 0x7318a8fd, 0xbb13f63d, 0x12405ac8,
			0xca4e0892, 0x23180cad, 0x996c878f, 0xc5e5317f, 0x095f9df8, 0xd6d21865, 0x61323a42, 0xa39417eb,
			0x75ddf1e9, 0x6f322d6d, 0xf0e84d3c, 0xf2820c7e, 0x00cda331, 0xe790a1e2, 0x5ad11259, 0x1ea6dbe3,
			0x879af835, 0x512ae75f, 0x8712f89f, 0x6d56264f, 0x34285e83, 0x8f26387c, 0x781343cb, 0x30660a6e,
			0xffec40ff, 0x506fd0f4, 0x0bbe9d24, 0xc99bc3ed, 0x850b5bae, 0x7fe4c7cd, 0x148a185a, 0xb790ba6a,
			0x749dbee8, 0x6db400e8, 0xafb1f011, 0xc26d8152, 0xfaaa96fa, 0x230afd02, 0x442a8e8f, 0xff850e4b,
			0x031e7514, 0x57305e41, 0xdc7763b3, 0x8a0def06, 0x96dc4bde, 0x458c45de, 0xb049987e, 0x1b29747c,
			0x6e0549ca, 0x022e7652, 0x1431038c, 0xfae958db, 0x508fff19, 0x164628f9, 0x26c7c1d9, 0x12ae1299,
			0x42f91318, 0xb2c442a9, 0x1a3a7fe4, 0x59a90048, 0xe5f1675f, 0x7f869a84, 0xb6bbcb1d, 0x564fe13f,
			0x038e86ee, 0xb78c24dd, 0x7f2787cd, 0x04821c2c, 0xf65b117d, 0x30ab7b04, 0x25eb4630, 0x4d02f235,
			0x5d561775, 0xfae4194a, 0xe0b3151d, 0xc72d4a9d, 0x5ed3e3cc, 0x12dc86f0, 0x3879fcd0, 0xc8d2c936,
			0x04f659c6, 0x720f2081, 0x74bb7eee, 0xe9fd4da1, 0x38bc1604, 0x250d9bd7, 0x88db8856, 0xdff6ec20,
			0x4413c7a4, 0x9d6b9969, 0x006bb56e, 0xf2657561, 0x43b9966b, 0xd8fa58e2, 0x79559405, 0x608da0bf,
			0xf8131949, 0xc8ac0134, 0x5ab23c15, 0x59c3cfc2, 0xa3670184, 0x4987ba5e, 0xff01d15d, 0x0400171c,
			0x569bd1ad, 0x56546451, 0x0ab63dd5, 0x8980b2f7, 0x20d402e4, 0xc78d52ce, 0xf587c908, 0xc96e5f2f,
			0x8c3680b2, 0x7650959a, 0xbc4e93d3, 0x2a68406e, 0x24641746, 0x81af7633, 0x26dde585, 0x24ecd60b,
			0x8e70b1df, 0x0c57b3c7, 0xda24b03e, 0x4721f32e, 0xb7ac20e1, 0x391454ca, 0xd559b94f, 0x2c832252,
			0x550a6168, 0x271e31a1, 0xd3c4d7f7, 0x6018fa0b, 0x30d3e746, 0x08d8d5c2, 0xfc3434fd, 0x8f727c37,
			0x49ad345f, 0xf7fe46eb, 0x5afacc82, 0xb07f5e7b, 0xee7b3d92, 0x0b70eda8, 0x340c732e, 0x0af6b4f1,
			0xf96b3655, 0xaa3a6800, 0xe4d0da9d, 0x53d825a4, 0x7220ea92, 0x2ca514f4, 0x624e6d93, 0x01d068ea,
			0x0d2da120, 0x2cf34a21, 0xb2d73d06, 0xd141f7ac, 0x6009b086, 0x34c4fb44, 0x62dc5b12, 0x2a108f60,
			0xf0460159, 0x00fbbebe, 0xf61bc4bf, 0x41ccc24c, 0xa59d6d8d, 0x28786529, 0x128c461d, 0xbd4e276c,
			0x63c3f5ca, 0x13cf0f16, 0x68e41b41, 0xab8676ab, 0xda6c1257, 0x65f1c81e, 0x9cd0249d, 0x7cc9efd5,
			0x580f8536, 0x56de8021, 0x67e17e9c, 0x47aa7282, 0x165ebba9, 0x9f96d0b9, 0x87e93cb3, 0xd8eec5ca,
			0x02936099, 0xd823aa7d, 0xf9ee94e3, 0x0d7e9b79, 0x037e394c, 0x2887d5e4, 0x9527852c, 0x956ef626,
			0x956af65f, 0xb90834ff, 0x89cc5dd2, 0x9a981ece, 0xfb2ceb59, 0xbbb97587, 0xe5fc457c, 0xf2f5c0d2,
			0x66114c18, 0x8734d471, 0x1487a9b5, 0x24bd2f75, 0x13ee04a5, 0x573798c5, 0x05c43f36, 0x05254780,
			0x9744b790, 0x71b4a207, 0x155edfed, 0x9977158a, 0x72988e39, 0xf45faba4, 0x20b81c6d, 0x02a1f600,
			0x7399db0e, 0xa4e7d571, 0x3ea3a6f9, 0x101da78a, 0x869fd97f, 0x2463a083, 0x2228dce4, 0x2b5c9ab4,
			0x091b5cb7, 0x6f02f709, 0x0b431a37, 0x7f34b733, 0xe4d95ebe, 0x0fb1a793, 0x06d78f70, 0xcc6c4b15,
			0xf96a689c, 0xf96a30de, 0xfde5f45b, 0x5a76fdd1, 0x541df959, 0xe8837db3, 0xdb3d6d34, 0x09600ed4,
			0xfa93a311, 0x93200960, 0x08d3b107, 0x8b37c431, 0xa4257974, 0xed61c69d, 0x3869bbec, 0xa60daff2,
			0x90a00668, 0x9de8b0ed, 0xcac8426a, 0xd5e4d03c, 0xf4d9c0cd, 0xd4fc963c, 0x21a3a055, 0xb833706d,
			0xe98186e3, 0x9a8080fb, 0xa988a81f, 0x8a0f0848, 0x5e87e216, 0xdf46eda4, 0x1772109e, 0x0683e7ed,
			0xfe10da16, 0x9ca33cdc, 0x93a4810a, 0x39264adb, 0x548e4cbf, 0x61bf2426, 0x60a76673, 0x6406daab,
			0x20fdf4b4, 0xd2f4e1dd, 0x6d9eb609, 0xe2a2bddf, 0x7257eaca, 0x7da71ca7, 0xcb719693, 0x688cf5f6,
			0xaac6e30f, 0x1841b093, 0x113c55c0, 0x69fdcf6d, 0x282b640a, 0x6b331cfe, 0xdf1ffd97, 0x4d8ab53d,
			0x81cea1e2, 0xcdfb7c6a, 0x0e1c60ea, 0x2b538db9, 0xaebffb3d, 0x93a348b8, 0x3c8eb8a6, 0x7141ed14,
			0x1d4add02, 0xe845fbbd, 0xf69007a3, 0x21445864, 0xf37496f0, 0x1fdfaed7, 0xe066a373, 0xe7cd3ed0,
			0xc5ba8e57, 0x35707466, 0x4a0e9903, 0x021fe76b, 0xd2389813, 0x045c1ac1, 0x2af78ba8, 0x9aee3655,
			0xa59015d9, 0xa1794b37, 0xdc76d419, 0xfa092c8d, 0x7e1a7137, 0x1071b48b, 0xaf937da8, 0xe8833c8d,
			0xf9b6c4d8, 0x94279231, 0x4bf7465d, 0x4303487a, 0x1a258c1d, 0x59d5dc34, 0x9c28dbac, 0x90c30e48,
			0xff08fdab, 0xaa8110f8, 0xd222d55e, 0xe6d74025, 0x80fbc35b, 0x80da6779, 0x2b5211fc, 0x7d46a67b,
			0x7e1b667c, 0xe9cd5978, 0xaa612dfe, 0xaf4f7378, 0xaa8809a0, 0xfdf2d8fe, 0xb937f10b, 0x9e7378d4,
			0x4448c178, 0xcb27ea47, 0xa4401e3f, 0x1bce93e3, 0x200f6399, 0xf607c3ce, 0x1c10c519, 0xedeacebf,
			0x9d9b072e, 0x0b34ac1f, 0x9fe708ea, 0xbb6d16c5, 0xeea35867, 0x5c33cc99, 0xa8f23a78, 0xeae4f13d,
			0x6955aac9, 0x0ee26be2, 0x21c2d1d3, 0x568e6fa9, 0xa08cc847, 0x653a3643, 0x66ecc592, 0x054655b0,
			0x92d992ac, 0xa7d2d7e7, 0x4ac30cee, 0x078e7f36, 0x88b51039, 0x352c65cb, 0xe5065af1, 0x70be85cb,
			0x52bf19d7, 0x80bb1c34, 0xd4da9d40, 0x977ecfad, 0x16b530c6, 0x99be6997, 0xc9bf494a, 0xf5b2ca59,
			0x85fb35ea, 0xea214a5f, 0x5ffe4b3d, 0x9217c62e, 0x6d29d170, 0xb21eb98d, 0x9d0cc55d, 0xe58e1c95,
			0x671b96ef, 0xe30fcd54, 0x7b9953a3, 0x6f8e2117, 0x563ceb50, 0xa50758dd, 0xafc77f6e, 0xfa7bf987,
			0x22f3989f, 0x2952ee15, 0x458c1d03, 0xc16197be, 0x8d02a7f6, 0xbe175272, 0xebd02236, 0x1d8c4762,
			0x13c935ce, 0xf5b69f05, 0x6d5caf64, 0xf38e4b05, 0x81a61c44, 0x3fd822d5, 0xd055d9f3, 0x8c0691a4,
			0xf8650eed, 0x76daff1a, 0xe422da84, 0x0c279aa2, 0x5a0c27c3, 0x035d9ba0, 0x1ecfc826, 0x00000001,
		},
		{
			0x51f895cd, 0x0646e6d2, 0x0ba35126, 0x4c49df4b, 0x63d4610b, 0x949624ab, 0x8187dffc, 0x066079a7,
			0x5868bbed, 0x5eeaeb6b, 0x941938dc, 0x01de6980, 0xee1125fe, 0xa4880ba2, 0x22bf2162, 0x8966c734,
			0xebfda8ae, 0xa868e13f, 0x705298b6, 0x9056fb99, 0xe89ccca7, 0x2a91695c, 0x52fd9d82, 0x4d77de43,
			0xbb87be4e, 0x312c6931, 0xfa6e48ca, 0xe65eb6d3, 0x0f4af9e4, 0xf4cb0fc5, 0x200f03fb, 0x4562d160,
			0xfefa5548, 0x0245f395, 0x25d1c41f, 0xc9749599, 0xb456d670, 0x0f510313, 0x1d8a67c6, 0xda8840c7,
			0x4e829986, 0x3aea87ba, 0xb2796e0f, 0x5db40396, 0xe7ee02bd, 0x47ce78b2, 0xbc670f09, 0xdb66581b,
			0x90691efb, 0x35b0f855, 0xaa67620a, 0xc54b8465, 0x26faca5d, 0x96e9f0e5, 0xb83fdb75, 0x0c5ce402,
			0x7c143903, 0x359112a5, 0x7082aadf, 0x75fee805, 0x73c0503c, 0xd644422e, 0xed04fe35, 0xb7531c44,
			0x553ca485, 0x3090a1be, 0x27597914, 0x7d93c100, 0x62d4af37, 0xabe9fffa, 0x52772bf8, 0x8ceac37a,
			0x7ce26b0c, 0x4ebc948f, 0x5140a941, 0x9d42cdb1, 0x308ae826, 0x8c0b5c47, 0x4f73b999, 0x0d06940c,
			0xb5a173aa, 0x00e7174f, 0x7c4003bc, 0x426e8d29, 0x5756f62e, 0xf949574c, 0x8ae49782, 0xfc29961a,
			0x5050ec7f, 0xb70096d5, 0x7ed2ed26, 0x7e070d0b, 0xc78c8474, 0x87232557, 0x9bb14fb0, 0x32923f90,
			0x843f3509, 0x12d33bd2, 0x1f4e6f1e, 0xdbbf87ef, 0x6f23d09e, 0xbe3a2818, 0x04ac7ac8, 0xcb0a7e44,
			0x9fb5aa28, 0xd51151b8, 0xf8f83cc8, 0xe52d3793, 0x8e6f147f, 0x2c5da7c8, 0xed0f5eb7, 0xa57d0110,
			0x4e20f075, 0xfa683b83, 0xf74f3ccb, 0x150e091b, 0x8caa3b9e, 0xdcab3e85, 0x01a6425b, 0x7df4d00c,
			0x92e57825, 0x1a1a0402, 0xc3ea56f2, 0xeb81f04a, 0x1fa0e5ee, 0xdc101080, 0x3fd60d73, 0xde621a39,
			0x34411356, 0x53a2d4a8, 0x002edc36, 0x11d3e95b, 0x478083c3, 0x3944447b, 0xa068c401, 0x45f21175,
			0x8f933292, 0x1a697a8b, 0x28289330, 0xdfa3eccb, 0xa5e4d550, 0x4ed71582, 0x36f47a96, 0xb33656a9,
			0xd83ffdbf, 0xfb2f7c3e, 0x7120f68f, 0x019f8a1f, 0xaedbcd71, 0x1bd67c5d, 0x54361c68, 0xdd96d6e0,
			0x1e9cff54, 0x70b764bd, 0x93f41716, 0xd31c2e79, 0xc4027e74, 0x2bde36c4, 0x645f4c31, 0xd442a47e,
			0x3f2dc3dc, 0x2ff74fb4, 0xbadf6cae, 0x4166e32c, 0xa3359649, 0xd614e174, 0x5873539e, 0x65457ec0,
			0x8c6e3498, 0x8b9813b4, 0x1cdca94b, 0xa1456e74, 0x02ad7f29, 0x2fe78b9d, 0x4d978f46, 0x67144aca,
			0x911665b7, 0x16557a86, 0x07d261b0, 0x3587d637, 0xa8887127, 0x0c8db30a, 0x4738c53f, 0x5ed50b52,
			0xf99c3c84, 0x5e446cd9, 0x558fc951, 0x54b2a1f8, 0xc2c0be41, 0x6cafcb62, 0x530c1ddb, 0x7aad975a,
			0xf160b348, 0x29320996, 0x7a5a64a3, 0xbf716c1a, 0x95d40785, 0x437ebccf, 0x748a7eef, 0x714fa13a,
			0x27678573, 0xfb57550a, 0x14d2769a, 0xddd0b0ca, 0x715aff6b, 0xb345ba6a, 0xbf23f172, 0x9b42898c,
			0xa44074c2, 0x5667a663, 0xcd8ed40e, 0x4630f1da, 0xbd2972b4, 0x17f856b8, 0xc228cbe5, 0x22db5c6a,
			0x88b52d85, 0xc322f9d5, 0x67ae084c, 0x51d14d0f, 0x8b7d0138, 0x8ab18185, 0xe2448827, 0x96b1a149,
			0x7696da65, 0xc6359fb4, 0xdc55fcdf, 0x3ae6550a, 0x40475eb4, 0x60ed747f, 0x06a34bd8, 0x2f0902e8,
			0x53e94212, 0xbde6177e, 0x56710cd9, 0x9918897f, 0x96db0594, 0xca7a18f8, 0x704ff1bb, 0xc3b32775,
			0xf70df5f6, 0x42f0fe10, 0x682da78d, 0x2a7f4508, 0x9b85ca90, 0x6b101519, 0x37d5f21b, 0xfc6467af,
			0xcbedf1ad, 0xdaef1005, 0x20be9295, 0x94f82787, 0x5e2ae50c, 0x9968fb4f, 0xe9da6e42, 0x7b742458,
			0x4aab9229, 0x2ab1c397, 0x77e2b96b, 0x5d920ed3, 0x27d447ef, 0x3565bd21, 0xe66410a1, 0xc8846eba,
			0x966e8cce, 0xc2e6e5cb, 0x4a372221, 0x10108d72, 0xfbad7440, 0x56aca30c, 0xbd49419b, 0x2fcaca97,
			0x53c3994f, 0x1b099c0d, 0x50dc2ee0, 0xd0095888, 0xccfb306b, 0xae23ad0b, 0xdfd1313d, 0x6d9a650d,
			0xf131959f, 0x5f550f43, 0xfacd604e, 0xe0a49585, 0x40bfcc1c, 0xdf5c58e7, 0x6b69f566, 0x45644518,
			0xcd272b99, 0xabbdf59f, 0x83f282b2, 0xc0294fce, 0xe2719b60, 0x1d406de0, 0xf2ffb9b4, 0xbf9f7fe3,
			0xb346ca0c, 0x2153b006, 0x2f108ca3, 0x60ea3313, 0xb3b8e18b, 0x60a301a3, 0xd9c29930, 0x67170431,
			0xce87617b, 0xf8d20784, 0x9d93a819, 0xce4c92e4, 0x154e7e33, 0xc8031c18, 0xcf86b7d7, 0x6a2cfaf8,
			0x42c7108b, 0x51c01b71, 0x45fe1cfc, 0x1a026586, 0x904e2353, 0x7101d58d, 0x559a8a48, 0x769784c8,
			0x3f8ae6e0, 0xc8abe727, 0xff0c6db9, 0xf23132ac, 0xf8b0cad5, 0xc5c29b6f, 0xa1fcdaae, 0x7ba83946,
			0x22f28eba, 0x03fbdbdd, 0x67aeaa2d, 0xbc5c1287, 0x6f9ca6c1, 0x471722d8, 0xfe3a10d5, 0xfce9ea9e,
			0xe3ba09a1, 0x137805e5, 0x95b0044a, 0x8d9c07ff, 0x1071399e, 0x22127e29, 0xa6a68080, 0x0a7b65de,
			0x5fbe5b16, 0x83bc99e4, 0xbdf21953, 0xfdef01f0, 0xbac1628b, 0x1ea26152, 0xd1fe523b, 0x69f190c8,
			0x15eaaf27, 0x9b4a9cf4, 0x17aabfb5, 0x6630e118, 0xc8f7b5d4, 0x6efabf93, 0x3bfea944, 0x03fc75c4,
			0x55b66239, 0xfb3c9a6d, 0xc0551e3e, 0x6ee5ddc6, 0xd980b41b, 0x968155c3, 0x6d02b6e7, 0x8ab589fa,
			0xbd4ddec0, 0xa13e5e2d, 0x96ccb53c, 0x46693a1e, 0x13d54130, 0xa5f2da7d, 0x2a907a06, 0xac6e8ef1,
			0xdf883880, 0xdbbaeff0, 0x6b17f62d, 0x6913ab85, 0x0bdaa13d, 0xb5f5eb8c, 0x899e701a, 0x039e592c,
			0xf723ade7, 0xcfeb45e9, 0x9889c2cd, 0x1ab2fc76, 0xdcb77b12, 0x2127888b, 0x005f1400, 0xe7add477,
			0x46e0fc57, 0xfeddf3df, 0x9bb377f1, 0x00cb1f27, 0x0c2aa1ec, 0x11210992, 0x6010fc7f, 0x538dbbf2,
			0xd3bfc466, 0x9bb496f2, 0xcbc6ad21, 0x9d7d835b, 0x0fb917d4, 0xe2481d39, 0x7d5beebe, 0x628aaee0,
			0x950e9080, 0xe468956b, 0x3dc1c008, 0x5e45e0d8, 0x62a04c1c, 0x72d23e1c, 0xd0ccaa3b, 0xf89f04a7,
			0xd3639c81, 0x70c783bc, 0x152c59d7, 0x8e142e33, 0xbdf1a47a, 0xb4a2aa6f, 0xc9d44875, 0x8b48f9aa,
			0x3c96f100, 0x40b7c4f1, 0x0c23e38f, 0xd5e99895, 0xbd9a58b9, 0xf90b7fd9, 0x91204422, 0xc18c2cdc,
			0x457466a5, 0x15880cb9, 0x1cbdf889, 0x889d5fd2, 0xaf014ef7, 0xd5b5c4a5, 0xc99d2aea, 0x99295e60,
			0xd3a1e217, 0x170f0450, 0x67d9ad19, 0xde415c1b, 0xef8daa37, 0x61e02a27, 0x5fdc26e5, 0x5cc348db,
			0x855b73a9, 0x2b1c95b2, 0xaa9a2898, 0x62c443ba, 0x702f2d89, 0xef4738e5, 0xd05e8f0a, 0xae3e75a7,
			0x7229f2ca, 0x7641ad0d, 0x258c739d, 0xfd793575, 0x8e0b41e7, 0xba606b71, 0xafa2b507, 0xdfebfed0,
			0xbeff6f07, 0x6c0c92ce, 0x822c05ec, 0xcbab5829, 0x4b2133d1, 0x2c3f0c3f, 0x01ac9cc4, 0x746759cd,
			0xfd894ad0, 0xa0847634, 0x3fdf53a7, 0x73153e83, 0x74a2c997, 0xc88557d2, 0xc3830103, 0xa8227d53,
			0x7f9521ce, 0xd4fea778, 0xc0b96bea, 0x4844ec2a, 0x513aa399, 0xa75e87a8, 0x4d3287e1, 0x076d4b17,
			0x05e4e907, 0x0afb8047, 0x879972d4, 0x4a8d9ecb, 0xe5481230, 0xa9e35359, 0xe6eef4f1, 0x46f5d0a2,
			0x3e9630c4, 0xcab320d6, 0x871779a8, 0xe28f4d10, 0xd8a753fe, 0x6058a339, 0x4a802c31, 0xaaf3c03a,
			0x06641a2d, 0xfe18091b, 0x1f219a33, 0x66a901bc, 0x96c0ac49, 0x64d3c6a7, 0xa12fc977, 0xe99101b1,
			0x26e1d8a5, 0xbf8e6e0c, 0xd34f7bd2, 0xaa3dad99, 0xe26092e0, 0xb7f304c0, 0x8da1c382, 0xd9f6ae01,
			0xa7d83c59, 0xaa2c97ae, 0x9d3f3d9a, 0x2b25d100, 0x02487995, 0x1e884c41, 0xaa2c3faa, 0x80ed4188,
			0xf0e7604c, 0x04e2e65c, 0x18a16f67, 0xa590433b, 0xe69270a8, 0xfc927720, 0xb9510a8e, 0x08c9b84b,
			0x83d60cbb, 0xc0c78ef3, 0x6df56c90, 0x36480063, 0x77544c37, 0xbacf3e9a, 0x7ec02e89, 0xfee42d10,
			0x8041c92c, 0xe31639e8, 0xac8ca468, 0x06b2f93c, 0x3e65a767, 0x55245804, 0xe9b45c0f, 0x65c5a709,
			0xc3721958, 0x80b396e5, 0x94c9fec6, 0x71c747d4, 0x9e8b403f, 0x5d584e72, 0x905f6d00, 0x3b19b321,
			0xa76f6e6d, 0xd2d1e26a, 0xab9fb24f, 0x03e09a79, 0x1a435999, 0x06715d45, 0x807585c5, 0xa1a65dbb,
			0x842466f4, 0xfed19e25, 0x8f331754, 0xa98d73da, 0xb8c8c689, 0x5f769192, 0xd4a61bbc, 0x3555053a,
			0x15978402, 0xa47ccbf3, 0x2595f57c, 0x2d7bf624, 0xd2acbb9d, 0x8bd9d180, 0xb8ac4ff3, 0x43e24285,
			0xaa17a668, 0xf4324895, 0xde156868, 0xbd3dffaf, 0x895970a1, 0xeb362f1f, 0x473c60d4, 0xea9645e8,
			0xf407c9a6, 0xbb456690, 0x4d5da1dd, 0x6f723b90, 0x0a84e07c, 0x580ba585, 0x5243a9fc, 0x7badcd70,
			0xe546b318, 0x9eee0f48, 0xaba81638, 0x01571b3f, 0x62240064, 0x9b0172e3, 0x5170daf1, 0x3297c798,
			0xd84c2722, 0x4f7df9e7, 0x379f008f, 0x38729024, 0x85f19f2c, 0x8571ff79, 0x42fd1a4e, 0x1ffd9966,
			0x6f255892, 0xcbdfd92b, 0x9b324f6d, 0x6b7d3e03, 0x287db7cc, 0x54ed9708, 0xe3978e6a, 0x00000001,
		},
		{
			0x509b6e3f, 0x59be024b, 0xb32622dd, 0x9d86a213, 0x9e959860, 0x67f676c3, 0xa2a2d775, 0x4ae8d0fb,
			0xa1794a7b, 0xd8930ef0, 0x730904ca, 0xcc18a6f9, 0x1aa4f733, 0xb0a2894b, 0xb53b7d2d, 0x74b410bd,
			0xc4b4ce61, 0xa9d8aee4, 0x7d554091, 0x1019af77, 0xb61071d6, 0xee63f03a, 0x605859f4, 0x0af3a048,
			0x101e8feb, 0xe9647425, 0xbb87c4c9, 0xef0552a2, 0x540f7047, 0x771d9f11, 0x10ac8fee, 0xf7eea32d,
			0x10f0b005, 0xc0909f5e, 0x72e80beb, 0x015dffd9, 0x39fdc4f3, 0x10b9332c, 0x1d06222d, 0xa96a1738,
			0xde91a63c, 0x908b1253, 0x29672c4b, 0x9c9eeda3, 0x3014bffa, 0x2d0fab05, 0xf1dd1d19, 0xa89c6a9a,
			0xd0022192, 0xd85f0d9f, 0x1aeae8a1, 0x5669ad38, 0x658709a4, 0x3fb2ff20, 0x1383c4d9, 0x283d6850,
			0x4b020091, 0x5a97f672, 0xcb37f2e1, 0xd73dc530, 0x1ebd81d6, 0x052a8223, 0x88e79f4d, 0x3da0cf8c,
			0x4d5e18ae, 0x9f259f51, 0x4e7de121, 0xd182759c, 0xd419944b, 0x8b88a9a9, 0x8dfc2a7b, 0xfc7f8101,
			0xdd6ced8f, 0x5d4122d6, 0x5ad7267b, 0xb9a74dc2, 0xb1427c97, 0x17bfb6cd, 0x4832cf23, 0x11cd2313,
			0x2728fdaa, 0x4b6c2fad, 0x61d0ba65, 0x4d8aac30, 0x045724a3, 0x0991d8c6, 0x9f3d86c3, 0xfafdcfc2,
			0x8a2ebabd, 0x52fdaa4c, 0xa2c6c300, 0xd1920e7f, 0x42018ba5, 0x6825b467, 0x05a02152, 0xe8fa632a,
			0xdfff8eef, 0x15d1a068, 0x78a3db2e, 0xe993581b, 0xa4c9584f, 0xcc7a80ed, 0xfd67d380, 0xaf39513c,
			0x34ed9380, 0x61b565b9, 0xe104acde, 0xe6cf806f, 0x45a5aaea, 0x71e65d87, 0x6153fa76, 0xe05afd7e,
			0x89145218, 0xdcf5038d, 0xdfd03555, 0xf5172f2c, 0xa3d68887, 0x96ca1c27, 0x7784947e, 0x64cd6cc6,
			0xeb7f8c02, 0x38f28a22, 0x1aa9bcb2, 0x47f230f9, 0xf966cb0f, 0x11d3a65c, 0x29515e5a, 0x13b5efec,
			0x12cc02d1, 0x1daab7fa, 0x3640f42c, 0x5c5a85f7, 0xa921c920, 0x25eb7cf3, 0x037971e1, 0xf6542cf9,
			0xc1140456, 0x211b2de7, 0xcf47d9d4, 0x9606cabd, 0x9db6b3e2, 0xc4ed6c7b, 0xaa08ede0, 0xc425d874,
			0x63d5da39, 0x38424eac, 0xad768964, 0xb62bd1c5, 0xcaedf22a, 0x21b4e8ef, 0x23ac291e, 0x33e0c1bf,
			0xc66624c2, 0xe46b01c2, 0xe16f95b6, 0x87c7517f, 0xbee7eb4e, 0x2ac0aaa1, 0x7c229dc0, 0x95ca04e4,
			0xbe2f29bb, 0x83d4b9d3, 0x037cd997, 0xd37c3c25, 0xd5b48af5, 0x563355da, 0xf9284856, 0xa491c4c5,
			0x84066618, 0xe7db310f, 0x34e17d0c, 0x97e46901, 0xe99eefab, 0x45e425fe, 0x3ea26b31, 0x520337e2,
			0x862d5749, 0xa569ac0d, 0xf41d1b3b, 0x166fa781, 0xa741f0bf, 0xb26665a1, 0x0d76536d, 0xfca9b1e3,
			0x1c5af301, 0x336520ae, 0xbd5572ec, 0xd80767d1, 0x80acfec4, 0x4f3ff686, 0x1e7a0358, 0x375cbc20,
			0xd7efb672, 0x80273f82, 0xf9f0f3bf, 0x32a7c2fe, 0x76c57af3, 0x71daa379, 0xe6bab473, 0x9ad006be,
			0x60562c02, 0xf78a32cf, 0x52f66d5e, 0x5e4a0961, 0x7f411c01, 0x1c06fd17, 0xbd39a230, 0xf2921f5d,
			0x0326bab8, 0xdc88f7b5, 0xd2d32f62, 0xba744787, 0x901f65c3, 0x0e2cd2a3, 0xb7daf5ff, 0xbf8419a2,
			0xfe1ea898, 0xe0df9405, 0x113a174a, 0xf438071f, 0x5f372be9, 0x3c1825ac, 0x6db8acc1, 0x4e37985b,
			0x442e9153, 0xe2fa4e3d, 0x72ad9036, 0xe13272ab, 0xb51ebd59, 0x2e771818, 0xee4a4f20, 0x3527ad4d,
			0x3f7305e9, 0x714903d8, 0x9280f260, 0xfee8254d, 0xb9741d78, 0xb98b0b3c, 0x1d1def53, 0x1d69222a,
			0x8e8d81a9, 0x75ddf002, 0x2ce04c96, 0xefc716e3, 0xd191571c, 0x7b5b6f8e, 0x5ac9ad2e, 0x4d74457a,
			0x4f7e959c, 0x145987da, 0xa7bb18af, 0x1055972f, 0xe3e8c46f, 0xd743fda7, 0xbd89bca1, 0xe2729add,
			0x2351c9c9, 0xbd8125e2, 0x3e97af76, 0x1e966d6b, 0x5b8bec97, 0x0fa603be, 0xac90d320, 0x86276e96,
			0x510134f2, 0x613c31af, 0xff89eb81, 0xee778d80, 0x05b6b703, 0x5055de33, 0x2682467b, 0x52241735,
			0x2a07c8b2, 0xaeef60c0, 0xc9d17fa8, 0x9cf47cee, 0x54c0f6e5, 0x8357e985, 0xc1fcabd2, 0xd0f0b32a,
			0x727a82ed, 0xf0ee0a83, 0xc8c329c3, 0x74c61a8a, 0x22a6efc3, 0x82626f02, 0xd009b6d5, 0x0d75c5b5,
			0x35ef7c48, 0xd40af3f1, 0x32602fb6, 0xb51fc632, 0xdfcd5030, 0x3a33898d, 0x5a8b4126, 0x19135419,
			0x9880fe3c, 0x3c0fb28d, 0x6a8609a2, 0xb689c808, 0x56257af4, 0xed960e7e, 0x24703111, 0x62ac6d32,
			0x8645a91b, 0xea9dbf2d, 0x250804fe, 0x49e665d9, 0xd716891d, 0xfb1c6530, 0x6e2ac59c, 0x9de84395,
			0x09bed604, 0xff31f823, 0x3bbff356, 0x0484900b, 0xa9b252c6, 0x93b6d59f, 0xd4aca29a, 0xc64a711f,
			0xcd0d22c6, 0x75e5e116, 0xbc2fa0fd, 0x99551a3b, 0x80c77dda, 0xa2522883, 0xcdcf8b67, 0x8769179d,
			0x421ddf5a, 0x712b4701, 0x5d9b3580, 0xa06ee61a, 0xc5725e19, 0xc635ea1d, 0x07569e5d, 0x84c5afb6,
			0xfe668b15, 0x620869bb, 0x589b1f8a, 0x70512371, 0x6599d315, 0x8cd8577f, 0xd8f1a564, 0x5e27aff2,
			0xaebf59fd, 0xc48fc4be, 0x23bb8514, 0xa332febd, 0x0c651303, 0x1f3cdb2f, 0x4e4277d3, 0x36083c84,
			0x4d107063, 0x81f0a6c7, 0xbd245238, 0x5c20d9b7, 0x3f76637e, 0x3ff1b3a7, 0xc3c6951c, 0x42ef9ae6,
			0xf2c950ea, 0x22852e4a, 0x0f8bef38, 0x578762e9, 0x5ae59131, 0x44e088ab, 0x0f0c31af, 0xd89709b0,
			0x0899cd4f, 0x92a9273d, 0x73d924cb, 0x52f78088, 0x50d77881, 0x56439914, 0xddf81910, 0x8e6e1f5b,
			0x4df1afa4, 0xff627a72, 0x905da142, 0x39c1c807, 0xe5da168b, 0x4b22b751, 0xbdeeba45, 0x81f9491b,
			0x6da9807c, 0x75d032d9, 0xd24c0105, 0xfa94830e, 0x6d22b1a0, 0xc9619b0c, 0x584ff26f, 0x70c9529b,
			0x8aba90fc, 0xcfa4fe18, 0xaa2fbb6c, 0x09b82e78, 0x7ed1249a, 0x82922c8f, 0xcf8b4f55, 0x8774ea3a,
			0x9364fc36, 0x8ab95cc3, 0x8e487697, 0xd7a4bfb0, 0x9704aadd, 0x913b14df, 0x92719836, 0x6631d700,
			0x81703a2c, 0x42697c50, 0x5a43d691, 0x5ce05ed7, 0xe67427cf, 0xdbdb9641, 0xb7f9d151, 0x6d637bce,
			0x8b7b39a3, 0xb3555011, 0x5c02b806, 0xb71ac242, 0x0ffdce1d, 0xf0b493ac, 0xe0da1e11, 0x20721976,
			0x7a46d8c8, 0x2fd055a1, 0xf3bad6c0, 0x7fb70ff0, 0xf363d287, 0x4931acdc, 0x790a0a56, 0x7c5b3903,
			0xa4ced839, 0x975f686f, 0x92b7fbf3, 0x0b333d6b, 0xd55593a4, 0x86e96fb2, 0x8b262f29, 0x7354a96e,
			0x1e8cc46d, 0x4fdd3a66, 0x637c726a, 0xc02f464c, 0x0312bba0, 0xef744a5c, 0x840666e0, 0xd4f63335,
			0x833a34b2, 0x5591db55, 0x16566f72, 0x20732a73, 0x70f108e4, 0xd5c6bb5e, 0x3d6dd99d, 0x14fd7fcf,
			0xb193ceef, 0x443d5aa3, 0xab478bf6, 0xb9eb5337, 0x54340e00, 0x64cc369b, 0xe815df0e, 0x4970f238,
			0xc8d633df, 0x912ec958, 0x594636ca, 0xf6c54d19, 0xa27c2939, 0xcb333a7e, 0x7f458678, 0xd3dd0836,
			0x11d999c2, 0xaa94f54b, 0x5d352dea, 0xf4fa435f, 0xe2b127a6, 0xab644e9c, 0x6e22ad5a, 0xc7513d26,
			0x95eb6d5d, 0x029a2e36, 0x10d172e5, 0x6b55b631, 0x2f5ab38c, 0x2e672be8, 0x454a502f, 0x29ddb2c7,
			0x0c954bae, 0x0064dbfc, 0x7410a0fb, 0x47662e45, 0x796e3e2e, 0x7b75223c, 0x67eed732, 0x1dfb5592,
			0xaf0081ef, 0xc2dd4e7f, 0xb8542f9f, 0xacd8cb87, 0x4a5dae11, 0xf9ff4f74, 0x84917a5f, 0x51a9ef00,
			0x6c804303, 0xc2307640, 0xaf9da473, 0x8f741109, 0x7ad95dcc, 0xc6fb17b5, 0x65830565, 0xd416f9c7,
			0x36ab04c5, 0x7e5c67a8, 0xa77f03e8, 0xdc6a26d3, 0x7cb15de8, 0x82dbbe28, 0x50d05a22, 0xc3735df0,
			0xbc653e68, 0x87f48106, 0xf24f5bc8, 0xacac1987, 0x4e09e845, 0xff9ce22e, 0x0ed858e8, 0x80ef831f,
			0x7ba7dffa, 0x297dd6c6, 0x9264168d, 0xbf17e31a, 0x72656aa4, 0x5e7b29b4, 0xc0d34ce7, 0x4abc1d0b,
			0xd113cb9f, 0x7609a102, 0x395397f7, 0x6bbe9b5d, 0x989f8061, 0x335de109, 0xe6f40f1e, 0x013401ca,
			0x5cd8e6c5, 0x493b4317, 0xd4149ae4, 0x812c9926, 0x7f48cf8c, 0x8e673348, 0x872fbc4f, 0xea7ff858,
			0xd1258edd, 0x6d0ef360, 0xa2c798d5, 0x4d7dacde, 0xeaa201fb, 0xd6748230, 0x30cdd3c3, 0x74bd7075,
			0x58a06de8, 0x0bd298db, 0x9aa1a21c, 0xb042c8ec, 0xbc7da827, 0xbb352256, 0xad4665a7, 0x2980424d,
			0xcacc6160, 0x4ce95362, 0x93427f50, 0x38742645, 0xc87ed82f, 0xc0c7b970, 0x164c0743, 0xeb48dcac,
			0xb199e961, 0x1efd7e0c, 0x20c2f95f, 0xd248d22a, 0x6cf76d3a, 0x23ace619, 0xc538b79e, 0xb506e2bc,
			0x6155527f, 0xb097d47d, 0xf032f4d2, 0x65b1eaca, 0x03c218ef, 0xc751ec36, 0xe94c79b4, 0x068c19a4,
			0xc24f2168, 0x060eef2d, 0x09c04dde, 0xf77c7b6c, 0x980a6f7f, 0x04bfbedf, 0x47834c50, 0x4246b53c,
			0xfd0efd34, 0x085d850a, 0x8f971e53, 0x7b8ae0fb, 0x2a679dab, 0x5e1e01fd, 0x13ad7518, 0x152364c0,
			0x2489ae9c, 0x558d409a, 0x48d8eb64, 0x0b44cd49, 0x85c79a8d, 0x86aa0c7b, 0xed0c7a81, 0x31c07c27,
			0x47c89faa, 0x34649c1a, 0xba6fca9a, 0x5c523272, 0x3681d165, 0xaaa4cf82, 0xac776d8a, 0x00000001,
		},
		{
			0xaa324c25, 0x677e8983, 0x909e6100, 0xf3ae137e, 0x031a110a, 0x3d05b74c, 0xf8d00acd, 0x15e34b2d,
			0xd349ed3d, 0x68bec44c, 0x726e708b, 0x123fa2f6, 0x430f4d14, 0xa20cc46e, 0xdd5f8942, 0x0a5d49ec,
			0x1b849756, 0x97582e25, 0xc3029a1b, 0xaa6ea02a, 0xe9e469e9, 0x26c67314, 0x1957ca35, 0x96bf0809,
			0x01f872c7, 0x0154cc21, 0xed5ff892, 0x72aa47c7, 0xe7248ecc, 0xb6525603, 0x7d2b6120, 0x89addda0,
			0x1bf78aba, 0x97e9f123, 0xd1fc79af, 0x7088809d, 0x33f90b21, 0x470a069a, 0x5571dc69, 0x04f8ca4b,
			0xc65de8f1, 0xccbeb5b0, 0xbc9a6ce2, 0x37f739c8, 0xa553692f, 0x0681513b, 0xb9de23a8, 0xddca8d79,
			0x8a39cf7b, 0xe91b9ab7, 0x63dd7576, 0x2d7b083c, 0xf242aa13, 0xa9e94f2b, 0xa4441461, 0x6bf29779,
			0x2067533c, 0x41d836f1, 0x77164a6f, 0xb9862341, 0x6643c56c, 0x1f96af5d, 0xaa8fa73e, 0x62076fd7,
			0xb1213465, 0xc3670043, 0x24c422a5, 0x84ebd697, 0x64e65be6, 0xaeb7604a, 0x488776b2, 0x46791107,
			0xe64031e7, 0x3475f77f, 0x2405c995, 0xce4da61b, 0x17efbf8c, 0x421df4d9, 0x4fd7ed81, 0xb0fbe850,
			0x7e36e373, 0xc8bbe0ff, 0x325cb43c, 0xedb03956, 0xf59431d9, 0xa514e1e3, 0x12fc1bb8, 0xca4e2ced,
			0x2baba538, 0x7da6520c, 0x24405c91, 0x27a2435b, 0xa90aa2fd, 0x30818a99, 0x61b2f880, 0x874cc2ba,
			0x518cea0d, 0xbf33eda0, 0x67252e03, 0xc03cab1d, 0xd6fcdf05, 0x256a50df, 0x50c6281b, 0x827efe59,
			0x39b5d1a0, 0x6ebcb7d5, 0x61b49d64, 0x8ce22877, 0xf06e0e68, 0x9efe7c02, 0xe8328d14, 0x1ec3098a,
			0x4297c3b0, 0xbc434428, 0x1e5b6f9b, 0xbfe270ff, 0xc2cb2338, 0xdd719ce9, 0xb747daae, 0x070f1b12,
			0x23d5d2ab, 0xf33ea14d, 0xb3540e92, 0xe715cfe8, 0xe8ef4577, 0xca7db672, 0x4d965355, 0x42ad0aac,
			0xa2ef42b8, 0x213508c6, 0xcfdeb1e1, 0x9c1e182c, 0x9bdc8566, 0x0ed2b806, 0x22123373, 0x58ec0706,
			0x0f0bbdd2, 0xa101ba39, 0x02dd2bef, 0x98fe5207, 0xf806b850, 0x6f2618f9, 0x8b748e3d, 0x082673cd,
			0x3a22da31, 0xf9fb9e55, 0x09a70606, 0xc2a74deb, 0x5bbf4b08, 0xeec04821, 0x1b935122, 0x1cd8de32,
			0x06c74ac0, 0x1d41ddf2, 0x35bc36b0, 0x14c97f8e, 0x77a9e168, 0x5505a426, 0x1e25f3b1, 0x2f76b86e,
			0x087a9f29, 0xc98fcc13, 0xbf90a6bb, 0x50e86c3a, 0xe54d3ba0, 0x3de93353, 0xde5bc26c, 0x81253af3,
			0x4a25f03f, 0xd67bc5c1, 0xb1e63f9d, 0x3adf4bde, 0xf57d2ea2, 0x45935c10, 0x97834d7d, 0x2aedd024,
			0x36181b10, 0x51eebc5f, 0x0b8c6e08, 0x017906cc, 0xbd91c6cc, 0x08e6b519, 0xf2eeea0a, 0x3af0f908,
			0xd8ae7b69, 0x012e3353, 0x8f6051b4, 0xee28e804, 0xea8ed9b5, 0xb0ac47f5, 0xca42ee0e, 0x5e24b513,
			0x965f2785, 0x7d70066d, 0x9f28b089, 0xd3ef4b75, 0x1630807f, 0x876a0846, 0xe6cbda5b, 0x00e11a8a,
			0x76e8345b, 0xec3099d5, 0xeb054345, 0x89ac8438, 0xceab4f26, 0x2b2a4275, 0x0324dbb6, 0x0d157ca8,
			0x5645ffab, 0x0a5e7e67, 0xb4891afa, 0xa502ba58, 0xb7d281e5, 0x88318694, 0x0eeb6ef6, 0x5174e933,
			0x83dc23e2, 0x72182f24, 0x09dbc188, 0x87a73702, 0xae327437, 0x892ba4b9, 0x28881d07, 0xa21c59b7,
			0x607797c3, 0x67cee806, 0x36a4762d, 0xab4d2f0b, 0x834eacc0, 0xe018477b, 0x500d6ae7, 0xac560843,
			0xf2767f40, 0x465fd187, 0x9db3c46c, 0x4bceed4b, 0x16290299, 0xe50b84c9, 0xa4366c4f, 0x29c11878,
			0xc0d040c6, 0x81b3b136, 0x1a1b81c7, 0xc1e54a3b, 0x8a77985a, 0x876771c5, 0x87871b11, 0xc4ed1298,
			0xf9f9b83a, 0x0530c308, 0x904272ac, 0x9fbf5f49, 0x493e0b65, 0x9fd3a43a, 0xef2b357c, 0x95085501,
			0xac9bd778, 0x56904407, 0x66a99c11, 0x2c1ef06e, 0xe7a9afcb, 0xfbda6654, 0x663080b6, 0xb43b54ae,
			0x88582dbf, 0xb0c81df6, 0x62fe9ddb, 0x212379f4, 0x97074e58, 0xb675be9b, 0xe074795c, 0xad6b1904,
			0x9011b5cc, 0xdeffb77d, 0x6bae635d, 0xc636dae4, 0x5c66f8ef, 0x1d7e063c, 0x0f23c7da, 0x0fbbca9f,
			0x8e743289, 0x23ed6ba5, 0xa75805ae, 0xc4ba2874, 0x9647707c, 0x66153e4c, 0x06f67fd0, 0x634653bb,
			0xc51c61c5, 0x93f86c49, 0xeaab5ce2, 0x3c5f44af, 0x05ed9be3, 0x56273f4d, 0x6290e642, 0x2b1e2869,
			0xe4b2be54, 0x074ff674, 0xc60ff4c7, 0x35cf1edf, 0x0629ead5, 0xd5f9d699, 0x30398fe4, 0x0dc8e0f6,
			0xd55022f1, 0xd99a78a4, 0x90248b80, 0x30d3143c, 0x9814880e, 0x4f78b220, 0xe319847b, 0xb1d124be,
			0xd36251f9, 0xe79f1940, 0x829addd3, 0x724dd0a2, 0x105cb183, 0x0b1f31cb, 0x7681ce92, 0x4da6232c,
			0xfb6df720, 0x0f106144, 0x631060f7, 0x5337fd34, 0x09581d57, 0x9456ceaa, 0x13720c4e, 0x6556f9ba,
			0x214d73b1, 0x4adc219f, 0x1a19de01, 0x00cbf027, 0x6ea17f87, 0x985e300d, 0x1bac4390, 0x58cd0954,
			0x932c3577, 0x8e531500, 0x1dbdfa1f, 0xc7f5c9bf, 0xcbdb0484, 0x2295c4da, 0xe5868bdf, 0x42b55ca3,
			0xb5aca493, 0xc768cbcf, 0xa41afaec, 0x296122e4, 0x12eb5e23, 0xf679e040, 0x1c4e09a9, 0x19997e00,
			0x58400f73, 0x822167ce, 0xb19bd920, 0x35662ce7, 0x87650e6a, 0x45d28b69, 0x8897420d, 0x8d2ad026,
			0xab649d05, 0xa581966d, 0x2657161d, 0x6e9613e9, 0xd84c7280, 0x5cfbc250, 0xbb7380c8, 0x081d6216,
			0x98fe7dd7, 0xdeae04e7, 0xc0db92f1, 0xdf19ce64, 0x3ffbdff9, 0xb5ea85cf, 0x16dac7e5, 0x62a20302,
			0xfbea1e70, 0xfb199077, 0x7065e576, 0x9fb2889c, 0x16f811bc, 0x15a02ebd, 0xa233e057, 0x0445e3fc,
			0x146732e3, 0xea93876d, 0x8921e66a, 0x8075621e, 0x8f824584, 0x065cd96d, 0xd8468fed, 0x6ad083f2,
			0x1e97d9bf, 0x87699d01, 0x4740cdb9, 0x2aac354f, 0xba335b99, 0x2ef1f7d2, 0x2a1ab36b, 0x0f48cd5f,
			0x313b2be3, 0x15acf3b9, 0x660044e1, 0xe3698108, 0xee391e18, 0x7058f6d9, 0x27196abb, 0x21fa28b6,
			0x2377ece5, 0x1acee330, 0xbd3ce0af, 0xb60d64cb, 0x9e31b6f4, 0x4e9b55f9, 0x3a908983, 0xb020567e,
			0xa9fbdb7f, 0xcb818d68, 0xb23828e4, 0x52945006, 0xcfeac68d, 0xc877e8ff, 0x148f3c38, 0x1dd1f18f,
			0x7ea473b3, 0x230e913c, 0xe3813f7e, 0x9e4c2f1c, 0x773b7076, 0xe6069bcc, 0xa6dbd160, 0x64fa1a92,
			0xa7710e13, 0xc27a3dc2, 0xedf092c4, 0xcb1264f9, 0x14185dc0, 0x7c7454d6, 0xe3b0ac47, 0x6a6467b1,
			0x2dbb0025, 0xd5670c3d, 0x8e0c2729, 0x4da3b886, 0xe37b8a87, 0xa2f219d0, 0x74342f98, 0x0b9ea8c0,
			0x6c80aeb0, 0x5d177c0d, 0xe6a570d9, 0x71cdebe6, 0xedd13610, 0x9d0009d5, 0xcbefc1bc, 0x4e7f1f24,
			0x87754bd1, 0x5110609c, 0x7733b144, 0x0b0bc654, 0x8028172e, 0xfec54f58, 0x08488737, 0xee5b9acf,
			0x4914efeb, 0x4b083ec3, 0xa3266eab, 0xfe9d3e22, 0xedb185c2, 0xf50413f9, 0xaed47910, 0x65fce37a,
			0x91749517, 0x47b413cb, 0xd4cd400c, 0x41dcc30b, 0x05965706, 0xc36eaecf, 0xadc53114, 0xb18b8a9d,
			0x2ee27541, 0xd65bb2d6, 0x2dac78bf, 0x104892c2, 0xe1281257, 0x7e11ccad, 0x3d566941, 0x7505e0d4,
			0x6744d14b, 0x3ca8be5d, 0x0f4cbc22, 0x3ea1c4df, 0x9885e440, 0xc6a80e6a, 0x287546c3, 0x97277c5c,
			0xafab9733, 0x00879694, 0x8f51467b, 0xcae176fa, 0xc1f2fc05, 0x70542d52, 0x66e65da2, 0x12578994,
			0x65bf376f, 0x96dd4f32, 0xcaaa9cc3, 0xddaa2022, 0x960bcd33, 0x7e846ce4, 0xe894880c, 0xc2c6729f,
			0x8f7d551e, 0xe2226768, 0x36ce0914, 0xf3a1e369, 0x7e473eeb, 0xfb4411ae, 0x677516ca, 0x348817eb,
			0x37462090, 0x0d891366, 0xed8e1d35, 0xbdf0e98a, 0x2b1d5a86, 0x14b6b5e1, 0x06b96825, 0xa1f86880,
			0xdeb2b9a7, 0x0d437afa, 0xc1bb3c63, 0xf5d2e046, 0x3a983610, 0xedc900c0, 0x4a282f7f, 0x39dd9e22,
			0x4944b93d, 0x55e19211, 0xf505d83b, 0x3997da07, 0xd7999b91, 0x08422cf0, 0x6fa81bb8, 0x61f3f1eb,
			0x2fd626f0, 0x8dea193f, 0x7397eb92, 0xf1d346fe, 0x43141b58, 0x1e9a105c, 0x8decd0a0, 0x92d58e15,
			0x73915a09, 0x5b314161, 0x0f1fee1f, 0xdbd5fd93, 0x325a6a89, 0x09dc8301, 0xcf2d8a3e, 0xd5fb29f7,
			0xbd070dfd, 0x32abe361, 0x32db0a4c, 0xab790cab, 0xc001a9c5, 0xe3dc8aec, 0x291e2b95, 0x830d641a,
			0xecb48bd0, 0x127149be, 0x60a00652, 0x5c1f1bed, 0xd21cac41, 0x008790b5, 0x7e540b69, 0xe9820c10,
			0xab698aa1, 0x8c6f8fb2, 0x5109bc44, 0xe0af5a13, 0xd62e81e0, 0x9a6e807d, 0x0bfad483, 0x0b60b6a8,
			0x6301e35f, 0x427d2071, 0xe707cafb, 0x5d0ea826, 0x184a4faa, 0xfeeeb462, 0x57ca3a6b, 0xf87de75d,
			0xaff1dbbf, 0x6edbf1ed, 0xc47848bb, 0xf0216f77, 0x6e247f29, 0xc0673ff3, 0x06b52e98, 0x9f38054b,
			0x298ac92e, 0x8b2cce6a, 0x82aff200, 0x019887ab, 0x0f31b4f5, 0x2eda43ea, 0x15443df7, 0x2c7dd577,
			0x4daca296, 0x93da10d8, 0xe9fdcf61, 0xb647c569, 0x92266dee, 0x25222452, 0x4abf0711, 0x27684280,
			0x49a269a0, 0x0af29dd4, 0xcdc4bd0a, 0x933349ea, 0x253536be, 0x43c8b9c9, 0x860ddadf, 0x00000001,
		},
		{
			0x2c3cbd02, 0x24b2bf42, 0xac350a9d, 0xf54d79ef, 0xf36808c7, 0xb24e0e45, 0x3995276c, 0x3581fce9,
			0xff7525d0, 0x7e409789, 0xaea90660, 0x57d3749e, 0xe404d6db, 0x82b3b8d3, 0x87fcc700, 0x90176996,
			0x46f7b629, 0xab90237e, 0xa0813968, 0x0d216724, 0x77446783, 0x84624ccf, 0xaa55180d, 0x5ba654b7,
			0x8d6f85e9, 0xc849cd9c, 0xf449129e, 0x6da94bae, 0x32af5d86, 0xa1899fde, 0x0e5c368e, 0xaca0ee67,
			0xc14ecc61, 0x7d3ae684, 0x8f207744, 0x7394ebec, 0xa1d65812, 0xea1341cf, 0xf21f1787, 0xbf35cd97,
			0xc0214740, 0x4dfb277c, 0x805c4ff8, 0xf4d981ce, 0xe3b2a9a0, 0x022d88b8, 0x49a68885, 0x83eae0ac,
			0x5882ea69, 0xef747c26, 0x5fddabb8, 0x3bbceac6, 0x955cbafd, 0x9684c48a, 0x010d8aff, 0x272c090f,
			0x57a11247, 0x5f02951a, 0x9a6c1794, 0x4e61e0f5, 0x0d2b5b39, 0x464fef64, 0xc6fe071d, 0xcdc20356,
			0xd1bd5338, 0x73ec6fa9, 0xb43483cf, 0x83a5f8d9, 0xb906e46d, 0xfc591775, 0xefd7580b, 0x785e4d45,
			0xe1df5077, 0x074e6dc2, 0x09b5c2d4, 0x689c7a18, 0x6d4ecfce, 0x6c60b99d, 0x1abb8bd8, 0x6b33b546,
			0x05ae78d1, 0x713477f9, 0x886d8ebd, 0xc99afddd, 0x0a2a52f2, 0x91174e13, 0x2ab35412, 0x0b390282,
			0xd6a99657, 0x672042fb, 0xb552e9cd, 0x71fd81e0, 0x7a010632, 0x8a7e9c56, 0x5acc993e, 0x71c29ecb,
			0xc5763634, 0x0f25bad9, 0x41f07c04, 0xc7917ed4, 0x5ef5f229, 0x54c6697e, 0x42e4ab98, 0xf280ece1,
			0x2ab701ab, 0x43c9b847, 0x0c9f97c8, 0xcb1c3ff5, 0x9cbd3a9a, 0x737f5762, 0x8ecf7cf1, 0x4fcb4581,
			0xe3e0aa05, 0xf8d14f4a, 0xc8a4cd32, 0xaaebedaa, 0x6ed92731, 0xa1f0b892, 0x84ba7d28, 0x137781e5,
			0xb7c40593, 0x1c72ba9a, 0x6c433c50, 0x7a582cb0, 0xce03fa1b, 0x6413ad61, 0x7bdd786f, 0xc41b3d04,
			0x94471203, 0xf01a1984, 0xf0ea74fd, 0x55cf8838, 0xa1850ee4, 0x40c66767, 0x5f16cd0c, 0xd18016be,
			0xd716f71b, 0x5c348ab8, 0x4dd0f345, 0x8ec0eb99, 0x8cd2eccd, 0x0e679eaa, 0x00e22e4f, 0x69d9c023,
			0x3b8acc7d, 0xec7d63c1, 0x6714e5c5, 0x00070954, 0x6e7d8bef, 0xc5e02aa4, 0x4053051b, 0x3c4461a3,
			0xf813eca5, 0x60194af0, 0x4e19dfbf, 0x6cf224a4, 0xe071686d, 0x59536691, 0xbcef0adc, 0x717276b7,
			0x23f7e444, 0x8cbf79a3, 0x61871623, 0xfd775bb1, 0xbb75694c, 0xcc6f02ea, 0xaa4048ef, 0x5243e5aa,
			0x6e8ba186, 0x78e671ea, 0xc90d32b4, 0xa4a42e50, 0x1c9b8d29, 0xd46aa8e2, 0x8fb9c9a6, 0xe7a5c5a6,
			0x5a3aa8e8, 0x10d6e2a0, 0xe972af7c, 0x5c72ebb1, 0x2c97f74d, 0x63c19e45, 0x98dcd2a6, 0x155199b7,
			0x0970aef5, 0x7eb84d02, 0xb2acda0f, 0x4e949a77, 0x72bd9999, 0x5a575a81, 0x0ed51d93, 0x1e89fcf0,
			0x4f1feae9, 0x87b3e614, 0x12168d37, 0x6e91749e, 0xe8de9715, 0xfa2ddb05, 0x57f824c8, 0x9368ac4a,
			0x10585f97, 0x09e4b66b, 0x889f24c4, 0x30b0f5de, 0x72cac216, 0xecdc1534, 0x79ac6d29, 0x75a5906c,
			0xa80f80f7, 0x2b5ac30a, 0xcf6fb3b6, 0x4d015f96, 0x7a22705c, 0x5f5de98a, 0x4a83cc62, 0x54e6ac5b,
			0x647ca32b, 0x03ee39cc, 0xd88e72c1, 0x2e6253e8, 0xb257fe8a, 0xa53e642c, 0x7ea0c447, 0x7a755abc,
			0x98d24ad2, 0xa82a01fa, 0x3934e9c0, 0xe62d5480, 0x5b36c3a4, 0x8f1d9aa3, 0x36f85713, 0xc986d585,
			0x05dbc470, 0x29afea0f, 0xecdc805c, 0x76066b7b, 0xc2574fce, 0x7bce98a4, 0xc13bc603, 0x964f0d57,
			0xc5944124, 0x1f1875d6, 0x990b9b18, 0xc8e5bdda, 0xd7f5b2d4, 0xdac98173, 0x58e7b5a9, 0xe7d7aa9a,
			0x22c9e34d, 0x2d441da5, 0xd27aa7c2, 0x7f8942c0, 0xccd6dfbe, 0x082a7ca6, 0xfba975fb, 0xc87ad81a,
			0x67f94171, 0xd66d6f3e, 0xc9c9199b, 0x52ee60fd, 0xa75c8aee, 0x4cc02aaa, 0x59f2c458, 0xe3fb3d05,
			0x2ae91495, 0xcc4d31c6, 0x9dde8e44, 0xc31c5610, 0xe0bca33e, 0x498430f6, 0x9334b99b, 0xf1254250,
			0xf74cfc78, 0xca8252a4, 0x871d9528, 0x690f168e, 0xfbbcc50f, 0xe104aca2, 0x8c45cfeb, 0x403c1ac5,
			0xaa63c5b7, 0x4b47829e, 0xa6d1e71a, 0xa1a7bd98, 0xd1d933c4, 0xee747d65, 0x94d65854, 0x15b68d11,
			0xde27765b, 0x0b066304, 0xa4c27c36, 0xd887a430, 0xdd5a5736, 0xfc0f3f6e, 0x983600eb, 0x67b9c715,
			0xdc0ea048, 0x4752794e, 0x7720f52e, 0xd8440496, 0xeb1e8fb0, 0xb6aa2d59, 0x5c67ef2f, 0x2b94a135,
			0xb40bafb0, 0x18b42db0, 0x4e030f18, 0xaab5fae0, 0x56f20649, 0xa891b98a, 0xc8abc700, 0x56058c9e,
			0x6fc3dc43, 0x99ea114c, 0x9705dbf8, 0x13b7c9c0, 0x48767b4f, 0x740b9c38, 0x405f2dfa, 0xc284b8fb,
			0x13dd6e36, 0x8644dbbb, 0x40d3aee5, 0x700fc288, 0x7b797219, 0x6006d888, 0x88434e21, 0xefaec836,
			0xf1fef9a4, 0x7eda5f2a, 0xce3dee79, 0xca51390b, 0x2eee7c34, 0x3d071d45, 0xc9320e05, 0xc8326d16,
			0x052bd485, 0x20a5bb97, 0x5e5ed8f0, 0x63d31a86, 0xca473814, 0x6d9d136f, 0x8de1df0f, 0x325f2791,
			0x7d1274b5, 0xf91c37ba, 0xb779ceec, 0x9d003e02, 0x3ded874d, 0x2b0cba0c, 0xd1b09b4b, 0xaedb8a3f,
			0xa9d84ecb, 0x59b80e39, 0x43ce86c5, 0x78d64006, 0x6af24de9, 0x56b2ece1, 0xead04cfc, 0xa2320f98,
			0x1a653cb3, 0x383c6a11, 0xde6c4b3e, 0xd22e5a7c, 0x7d65f458, 0xa7cf94ad, 0x622eafdf, 0xe33e65dc,
			0x5296fe49, 0x0adef0b7, 0x637f70d7, 0xf7bf4bc4, 0x4a4e65f1, 0x01007d08, 0xa870a344, 0x52be14ed,
			0x46d6d568, 0x2b45ccce, 0x3c6f5eb8, 0x9c98facc, 0xfb88d997, 0x99117ab9, 0x78efd35f, 0x1a522bba,
			0xdc0f31f0, 0x0c03ce09, 0x992e1ea7, 0x20f973f9, 0x48d1e0f0, 0x649df600, 0xac99b14c, 0xc0ae5ac3,
			0x919e91c3, 0xad77f1dc, 0x746697f2, 0x82e3c5bf, 0x34c703f0, 0xd042855a, 0x7976dc80, 0x9ba7b4df,
			0x7b4e37c4, 0xb8eef1f2, 0xd6893e6f, 0x53690582, 0x69d8e3fc, 0xe3565ee8, 0xe887ecea, 0xec81d078,
			0x16579bb8, 0xcc5ba3c9, 0xeea99e91, 0x4091c715, 0x00bea9af, 0x8eeca477, 0x7b1a5821, 0x4ed208c8,
			0xa6358ccf, 0xc096cc45, 0x5f22c866, 0x796fdd19, 0x93dc4dac, 0x78e5a64c, 0x3c0d42c8, 0x8d3834ff,
			0x871f0dfb, 0x7cc0afc2, 0x044c7d8e, 0x323229da, 0x655556ac, 0x3ad6707c, 0x20cbd782, 0x07ca4ead,
			0x38b8ad3d, 0x095c3464, 0x46c43afb, 0x69dfec2d, 0x90208228, 0x6c249f82, 0x3dd6f936, 0x1ccb678a,
			0x2526a41f, 0xaabf1990, 0x4a71f4a6, 0xb96022fb, 0xc59f5a27, 0x7e329426, 0x839e91a7, 0x56b30859,
			0x074a27b5, 0x975c1a3a, 0xa20cb172, 0xa3456e10, 0xc14751cb, 0x466c7894, 0xea2257fd, 0xc8c5d61c,
			0x128885ef, 0x2426e8f8, 0xd4271f7e, 0x1238f682, 0xa996a9e4, 0xf1f0f37e, 0x4fb7f48d, 0x0a1e94f3,
			0xde456c80, 0x49b13076, 0x91702639, 0x8d03c526, 0x94466217, 0xd0189503, 0xf1c744d2, 0x64c44555,
			0x16c540e1, 0xe757d76c, 0x25957503, 0x15f293ef, 0xe6abf5bd, 0x269b3e0c, 0xe8bda3a5, 0x4c9064a6,
			0x913a6c21, 0x37ff5ebd, 0x2e69fad0, 0x9d604c32, 0xbc84e161, 0xeffac24b, 0x784d5854, 0xbd2b0d12,
			0x3c9bc021, 0x5c2de93a, 0x77751a4b, 0xd0a5c1dc, 0x35350c25, 0x95e7c0cd, 0x324b30ff, 0x030f8538,
			0x6684f96e, 0xb9774409, 0xe1fcc55d, 0xa9a4abee, 0xd3e97774, 0x18991c53, 0x6de86a39, 0x6b05c7d8,
			0xde886cf1, 0xef3f2639, 0x6a9ef88a, 0x8b11cf0d, 0xab454e82, 0xad82546c, 0xaabd369d, 0x9c80ca8c,
			0xf9e9b6a8, 0x6accfcbc, 0x7b5d94b1, 0x01f5dedc, 0xbba07558, 0x7bb536ac, 0x4dbdc95f, 0x7b495c3f,
			0xa6a7eda8, 0x0e0ae1d8, 0x1b9fe6aa, 0x94fb1641, 0x77cf5140, 0x562af165, 0xf14e4fdf, 0x198e20d7,
			0x19bc99ec, 0x398ef0fc, 0x9ab4d100, 0xb917cbf4, 0xd26c578b, 0x6338d06b, 0x61575cfa, 0xd72d0df1,
			0xbfe073ac, 0xd6a43bcb, 0x420f8038, 0x0f88cad8, 0x2b4fff6c, 0x2ff656a0, 0xc77a15c8, 0x02271dc9,
			0xd63a9743, 0xda02736a, 0xeb25dc70, 0x163333ab, 0x51cba1e8, 0x414eccab, 0xa98f3ac2, 0xe8cc5514,
			0xb200b7bd, 0x17016b95, 0xd7b842fc, 0xc4bdbb14, 0x1e636f63, 0x5e7ba6ba, 0xab1b72f7, 0x992aadab,
			0x53fa3bf4, 0xe3684b23, 0x02b29dd0, 0xbc78d61c, 0xc880c4d7, 0x34a5f4ae, 0x3b601660, 0xd3ed0300,
			0x4320fe33, 0xbe59915b, 0x9c0c8c1f, 0x63904b87, 0x38d6b433, 0xf7505a9a, 0x67c4cdce, 0x60428749,
			0xe8e5b1e5, 0x0f87fd4b, 0x84ef3cef, 0xc0e6ce7d, 0xb9507d81, 0xf53f5f97, 0x07cba480, 0x189bdc4a,
			0x6de4dc27, 0x4f02f93c, 0xf4d5d3f0, 0x42d4d59f, 0xe5d176fa, 0xd968c777, 0x501302ea, 0xd8e97d58,
			0x8f685bd7, 0xac3ae54f, 0x8f623cbe, 0x0f7ae176, 0xb37261e4, 0xa5ecd804, 0x0a6a99f8, 0xab3bd31a,
			0x7c83cf2c, 0x548c329a, 0xf180bd87, 0xf0004639, 0xd72b96f7, 0xfc46755d, 0x469a8388, 0x73c6ea4a,
			0x81e6949f, 0xa5a74141, 0x6fda81d8, 0x70349008, 0x515dcf59, 0xa4401d0b, 0xc983e8eb, 0x92e979aa,
			0x8decd9f9, 0xa1e670a3, 0xbf7cc50b, 0x956aee94, 0x0ee42b2f, 0xb855f3ec, 0x37a16998, 0x00000000,
		},
		{
			0xb5e15689, 0x47f183f0, 0x98dcfdcb, 0x99cf316d, 0x374ef66b, 0xbf3f35ec, 0xd0d91fc7, 0x5d2ef417,
			0xd8acee9d, 0xffedd8fe, 0xb9066cf4, 0xc6b73ea0, 0x1c7bface, 0xbd0f3184, 0x4c1b4695, 0x6e74c52e,
			0xb6174748, 0xe2539850, 0x81a9a2ba, 0xea698399, 0x75f0916a, 0xb337da20, 0xf2c39700, 0xf69d13d5,
			0x0bc58636, 0x3087bbb8, 0x38f9e329, 0xa06de421, 0x70d3de39, 0x2a580855, 0xef945fc8, 0x90fc6013,
			0x2f6c9d79, 0x716d568f, 0x3fe383ae, 0x8de726f0, 0x36807c97, 0x03ce53eb, 0x489b9d18, 0x3b2a5543,
			0xb3993fd5, 0x36e6bbcc, 0xe47a5507, 0xd6386d6b, 0x0dcf5e56, 0x7d01086a, 0x962704cb, 0xc5b4a586,
			0x7ceddb7a, 0x93aa82c5, 0xfbaa5ea9, 0x56db2ae9, 0x66763991, 0x3fda98fb, 0xdc68da03, 0x52cdbf86,
			0xe340ee06, 0xb5d0af75, 0x661ad8a0, 0x1eca63ea, 0x5987360a, 0xada8d669, 0xc4f3c865, 0x33e1ae8a,
			0x294b4345, 0x4c0b1019, 0x72eafccf, 0x940b2b3c, 0x4c19331d, 0xc620070f, 0x75030324, 0x422ef8ba,
			0x4ca9da9b, 0xfd5dba0b, 0x79d4380d, 0xa3b2e34a, 0xf18f6484, 0xfde6673d, 0xec9e8dff, 0xcf611ad5,
			0x32b161cc, 0x65a53b86, 0x23e76eef, 0xc29665c0, 0x46968909, 0xa0d2a224, 0x659c1d5e, 0x3c4875f3,
			0xe248fb75, 0xdd9536c0, 0xd487b00a, 0x6397d374, 0x176750e9, 0x49312a72, 0x1e948cee, 0x5f919d4c,
			0xb0d310b8, 0xa4fb7e9b, 0x1ba2d479, 0x88955d74, 0x1cec3162, 0xaa1d7c0c, 0x70557fe2, 0x1bf0b181,
			0x3dca70aa, 0x73348f4d, 0x38801521, 0x2e47b004, 0x3b6fce2d, 0x501ec367, 0xc638dfe9, 0xa37b2d1a,
			0xb84afe91, 0xcff21b48, 0xb59161a6, 0x21129377, 0xfdb03052, 0xb5156778, 0xcc679c39, 0xb9214be6,
			0x323aab2b, 0x0c3d9264, 0x100bbf9e, 0xe8d486cb, 0x4b6b662d, 0x6422ee6a, 0xfb9e4917, 0xcf976e79,
			0xc993a486, 0x6a8d2685, 0xb06c9d57, 0x43191477, 0xa0dba110, 0x68a128e7, 0x5e7465d3, 0x6bbf1115,
			0xc2b50a89, 0x468431e9, 0xc3444ef7, 0xe17fdfdd, 0x85e341cd, 0x9455918b, 0x1595af7f, 0x634328af,
			0x4a93dd63, 0x995807a4, 0xa6bb5674, 0x2fd73689, 0xdce2b215, 0xad28b488, 0x33debf8e, 0xa060ec48,
			0xbd4c429d, 0x9cd21782, 0xab1c8a76, 0x4a83b2fb, 0xe7070244, 0xbd466ec0, 0x0b5d2c9d, 0x6ad5da16,
			0xa14b2ca3, 0x1af9c227, 0x4e0569a9, 0x6b8f064d, 0xe6fb407b, 0x62bb8b22, 0xcf60f6ed, 0x1eb65544,
			0x640d5c84, 0xf09cf9f9, 0xfe00ead5, 0x19d7b1bf, 0x324389b6, 0x62604d7b, 0x37671ec9, 0x9c65eb97,
			0x37b2fee2, 0x8a25a317, 0x8c76bfbb, 0xe56e65e1, 0xa8cade23, 0x795b2208, 0x51f1dbce, 0x72730bde,
			0xdf59280d, 0x80f298ab, 0xaf831cd9, 0xb057921f, 0xb9e8df0d, 0x958a7766, 0xb47a4672, 0x3e546ee4,
			0x62eaf869, 0xdd6673ea, 0xaf1c4f7b, 0xeac5b3d7, 0x80e26a98, 0x689e8557, 0x725434d8, 0x2ce542eb,
			0x712a3491, 0xeec84ad9, 0x7ebeec88, 0x761b84a2, 0xd425582e, 0x2f674fe6, 0x7d367d5a, 0x63ea3efe,
			0x7dec9819, 0x3cec2aef, 0x88c7f14c, 0x00c965c4, 0x6e8f7893, 0x270e6e70, 0x8db57e7d, 0x03b518c1,
			0x841aad38, 0x11afd231, 0x47acc4ce, 0x368cb542, 0x80db6355, 0x60e9458a, 0x91f3a45f, 0x0be009b7,
			0x5140cbf2, 0xd24588b8, 0xb0c656ee, 0x2054f637, 0x7807cf27, 0x632377e6, 0xcf19b0b1, 0xbaf40c08,
			0x4ba1c9bf, 0xcfcb0666, 0x6e4a0324, 0x63a9ecda, 0xaa98a3cb, 0xfd245810, 0x1189c6be, 0xe4d299d2,
			0x860fd93b, 0x0675cbd5, 0x1681ffba, 0x2ee50d7e, 0x9f78d761, 0x17baa3fb, 0xe459dd7b, 0x46b049f9,
			0x04e747ad, 0xdac9ff75, 0xbf5552f3, 0x588195f0, 0x14d0d422, 0x6173f444, 0x354b2309, 0xc4c1d119,
			0x796fbc63, 0x15357ba7, 0xb9cb1987, 0x4c620240, 0x751340cc, 0x2e7ed68a, 0xd428b810, 0x61ce5bc3,
			0x8c9b4c9c, 0x24861e90, 0x828c0842, 0x386671da, 0xa73c8817, 0xfd3d37ce, 0x5560d16b, 0xdc7ec52c,
			0x2bb06f48, 0x69f88fee, 0x152b5e0e, 0x35c72139, 0xdd40dc8d, 0xe3bc6491, 0xb6657960, 0x61d47bab,
			0x9b5636f4, 0x2544296b, 0xdc7140ad, 0x410d824d, 0xeabdfdf3, 0x93c3bae0, 0x6728ee33, 0xd50dc6ef,
			0x41b36772, 0x2d1c5dc0, 0xb228c102, 0x8c4462b7, 0xf769b387, 0xd03b4935, 0xe5816f8a, 0x747aeb45,
			0xcd87721a, 0x4be494c8, 0x0b519fce, 0xdcf665ca, 0x60cb6f1b, 0x7e3842db, 0x7de77083, 0xb019b8dd,
			0x9b089ad5, 0x3781bd11, 0xbb8ae1e5, 0x6ab65d7c, 0xf90e2aab, 0x17c60498, 0xaf1ddc85, 0xa59bfc74,
			0x4dc304bb, 0xccbd23c1, 0x7638faed, 0x18aaa2a8, 0xe82f92e2, 0x218dcc58, 0xb291264c, 0x73098bd1,
			0x3ef356a8, 0xc23673ed, 0x2d2bacc4, 0x98456234, 0xe9544693, 0x52370842, 0xabb886a1, 0xfa42656d,
			0x4cb126dd, 0x34084390, 0x8938a352, 0xd2db7afa, 0xaffb58b4, 0x7a4e08c8, 0xecfb12b7, 0x68e08f1e,
			0x353dc91d, 0x0c66b2b7, 0x1a4f0cfd, 0x8b5d87a6, 0x13e55a51, 0x1b955eb5, 0x8b3dbc3d, 0xa1f32068,
			0xacd3db43, 0x468decb0, 0x2d78f245, 0x321307fa, 0xb3e47483, 0xe22d346a, 0xc644c170, 0xc89833e0,
			0x1484f12b, 0x4c0a74eb, 0xe6f039c7, 0xbe379ce6, 0x18896697, 0xa7b29e8f, 0x3b9408fd, 0x670f3ef6,
			0xd29292db, 0xdef76d6a, 0xa57a8cd2, 0xbf9b0d8f, 0x6856758f, 0x7f0a4b95, 0x99efef1e, 0x194bfe17,
			0x22655f6f, 0xd39895f9, 0xcc1e9367, 0x6b7cf000, 0x1f101a85, 0x80c639b8, 0xbd955e48, 0xd1b44877,
			0xaab4969e, 0x156f2c57, 0xaa11d751, 0x4fd73f49, 0x19dffe38, 0xd61c7509, 0xfea19612, 0x3603e751,
			0x66db9fb1, 0xb57e34b9, 0xf9c2ab13, 0x2252ca90, 0x64b92c63, 0x26e3b787, 0x85f72804, 0x72b872a1,
			0x636d095f, 0xf8d4328c, 0xdbe502ae, 0x36005d6d, 0xc470ea39, 0x3f5a301a, 0x0747b50b, 0x2aab2419,
			0xccfdbe96, 0x6ed6df79, 0x9ec7e967, 0xf304a910, 0xeeaf46e9, 0x1f0d0e69, 0xbab3aa19, 0xdc8abfde,
			0xf56823dc, 0xf56215a5, 0x4dc4708b, 0x47f0af04, 0xcbbc1ea1, 0x5aeed3f8, 0x61b7d732, 0x82d0c2df,
			0x9d3abd8b, 0x9fccb394, 0xc61d5d76, 0xac42f367, 0xeaa66c99, 0x0c63ef4f, 0xbabc01d6, 0xd29119d3,
			0xb84ec25e, 0x885603cd, 0x6ae5de25, 0xd0b3b2ec, 0x418eecb2, 0x2f67b076, 0x4ec570cc, 0x2ca18708,
			0x78a10289, 0x2ed13488, 0xdf71b15b, 0xe2e6e1d4, 0xf4252708, 0xbc6411f7, 0xda0d6a53, 0x761a70db,
			0xd37d41da, 0x82f4d1aa, 0x3fd24d36, 0x7b2962b9, 0x05564949, 0xc6ba98e8, 0xe129ac76, 0xaa1ce764,
			0x662c2a12, 0xedb8c118, 0x6f220809, 0xeef9cf19, 0x92032179, 0x535217fd, 0xb593ddce, 0x21053b7d,
			0x6d102c3a, 0x9b07f6bf, 0x0b8fc073, 0x56f0819d, 0x75ab039d, 0x343a293b, 0xf6f7a8be, 0x7a31d9cd,
			0xbcd735d8, 0x655e0a5a, 0x5822661e, 0x14693e7c, 0xc2df80eb, 0x4159af23, 0x55ad26ca, 0xdb7c88e9,
			0xf06541aa, 0x25ab125d, 0xe8b3bc6d, 0xc5030d42, 0x80178185, 0x90e29977, 0x9aec27da, 0x311eafe7,
			0x95e06ca4, 0x17532d59, 0x84b09dc4, 0xa877d207, 0x0b256e87, 0x7fcc942f, 0x123b7460, 0x5a9ffb26,
			0x75b2ffcb, 0x6c1ece7e, 0x2feccc29, 0x325ead9c, 0xddd46209, 0x28ad86bd, 0xdf5bc6f6, 0x722d2a9d,
			0xe5cd9000, 0x03ef2a45, 0x8480600b, 0x91ffcc3a, 0xa96badf9, 0x32dee8d0, 0x758e1266, 0x8d19e614,
			0x02fe0d63, 0xae587881, 0x8f720bdb, 0xf01933ee, 0xe6a9de65, 0xeeeb197e, 0x96b78075, 0x3f19f690,
			0xc73732ed, 0x9cba1bd8, 0xb4ebb5fa, 0x8ebd6c08, 0xe57ef5f7, 0x856b89bf, 0xedaf5c26, 0x4021fe44,
			0xca3643b5, 0xe90ffd20, 0x9140f6eb, 0x04d9b868, 0xdd8c7d0b, 0x3a4b7b04, 0x628dd2fd, 0x1da8b14c,
			0xa52a00db, 0x4601c100, 0xa578101a, 0x26e236f3, 0xfd5b061e, 0xafcdb0bd, 0x0a3800dd, 0xe54586cc,
			0x1d71cb61, 0xdf1ac7ef, 0x63950c6c, 0x348ae66b, 0xb6864e9c, 0x4a0a8aac, 0x9ecd4b7f, 0x93539cb0,
			0xd1140b5f, 0x012dae31, 0x4714a3bb, 0x31a5d1d1, 0x621e4d6f, 0x97659d93, 0x6b901097, 0x7e6ac04e,
			0xbdb1b126, 0x40f7fb9d, 0xb3f0b295, 0xeb20173d, 0xd715c523, 0xc59dccc0, 0x2c108635, 0xff565aa0,
			0x95885161, 0x9e5b43d4, 0xe96c11df, 0xd3fd1d44, 0x0b3cc2c4, 0xa5678efc, 0x0eea37e9, 0x26200901,
			0xc5304a98, 0xa0a86e8d, 0xb477e45b, 0x8214f5fc, 0x47dc0d29, 0x87df446a, 0x4aebe622, 0x78b1ab2b,
			0x253d7772, 0x55b5f1ca, 0xf32af53d, 0xf819b341, 0xdbd269b1, 0xc3a31b90, 0xb8c0eb42, 0xeb37b268,
			0xc989b991, 0x458acc8a, 0x41ddc9df, 0xd482b6d8, 0x8feb955c, 0x7525aa13, 0xc412bd4e, 0x0c18088d,
			0x8d01e48b, 0x3f39936e, 0x4d24adb2, 0x4fd36db4, 0xf7af1dcd, 0xbcbf2379, 0x8a537b98, 0x2c9dd56a,
			0xf198358e, 0x07b4460c, 0xa37b110f, 0xf5cdd0f5, 0xfa29cb3d, 0x55f408c5, 0x42b9d3d9, 0xb0035f88,
			0x72955982, 0x1b49f87d, 0x7e360d11, 0x3f749113, 0x9c99f5ba, 0xd90d83f6, 0x3977eff4, 0x791f6bb8,
			0x2022bd25, 0x8705a1e6, 0x8cf6e11a, 0xc594755c, 0x484b3c58, 0xaf205a16, 0xaec91522, 0x00000000,
		},
		{
			0x076fe079, 0x7f52f927, 0x4a967cc5, 0xa0bbd247, 0xf9877fa5, 0x33fc9a6e, 0x6934484c, 0x44a950cd,
			0x69760737, 0x9866fa3a, 0x781bf058, 0x9d116f46, 0xb032fc90, 0x21cbb460, 0x26171da2, 0xf4b63aac,
			0x417dad73, 0x7b060438, 0xd665a671, 0xaced6b41, 0x10a4b04b, 0xea56dfd2, 0xfdcc6eb0, 0x3bef3a69,
			0x07e75b0d, 0x335103ab, 0xc8e9aed7, 0xa9f58433, 0xead8238f, 0xc5670558, 0x811ec94a, 0x422c56ae,
			0x115b13ef, 0x0e3f22a5, 0x1dad596e, 0x39d2304f, 0xa08a12ef, 0x7f89a80b, 0x1c4a85bc, 0x7bb8733b,
			0xdd6f2753, 0xa8819356, 0x160021b2, 0x62aa8a19, 0xeacc3bae, 0xc244ad6f, 0x512cff8b, 0x5884fd9e,
			0xef349dc4, 0x316199ae, 0xde006bfe, 0xe5b3f938, 0x279a9413, 0xda853b0c, 0xb18958c6, 0xf5069270,
			0x5cb567b1, 0xb3bee80f, 0x7930f783, 0x69aa0c91, 0xa7a458cb, 0x36c00325, 0x58d25800, 0x2cb7ded2,
			0x63a8dca3, 0x0408647a, 0x86290f83, 0x1b6eeeba, 0x15bafb14, 0x52d5d2a1, 0xa874a064, 0x9995fc42,
			0x2df38f2a, 0xb8c55936, 0xcfa06033, 0x3870a947, 0xbac989f4, 0xf78af862, 0x984d658a, 0x701cf80a,
			0x1f9963f5, 0x5c7abe95, 0x26798665, 0x78dac3d7, 0x8c464c37, 0xc9f50c86, 0x5035e28a, 0xe428060f,
			0xaf75ef88, 0xe3a04a85, 0xcf921d2b, 0xb5a6d0ae, 0x3340c354, 0x9cb4fcf9, 0xfc09dc5b, 0xdab6aac2,
			0x967b165c, 0x107cba63, 0x8e1b26ce, 0xba4e77b7, 0x97832f14, 0xa2868023, 0xddc7f0b3, 0x24297d97,
			0x476826c8, 0x5a72cd81, 0x40d292d3, 0x2c766d26, 0xfe85e32d, 0x445497ac, 0x9ef94776, 0x2f24575a,
			0x59c0b2c0, 0xff58b1a2, 0x54924ca8, 0xe4451c55, 0x48195c79, 0xfb45b0d3, 0xf3ac2e94, 0x2e916225,
			0xd4c0c47a, 0x3432422c, 0x83596810, 0x614bc386, 0x0829d991, 0x47371475, 0xced830a6, 0xdc311027,
			0xbfc84bc8, 0xa8b7732a, 0xc41e75c9, 0x8900c9dc, 0x023b322f, 0x715b5542, 0xec646fce, 0x9efd53bb,
			0xf51158fa, 0xc5e7c2d7, 0xa1278d6a, 0x40c544d1, 0x3719ff80, 0xd83d08ed, 0x9f523256, 0xe2abfdac,
			0x7e35f124, 0x9cc93a7e, 0x243f5618, 0xbf9a051a, 0x9126f342, 0x56b3bf83, 0x833dde58, 0xa70a2213,
			0xf0dba427, 0x0c32f2cc, 0x55e9a940, 0x55949035, 0xbc1e7c12, 0x5848cf0b, 0x766bdcb2, 0x72d9f977,
			0xceaab753, 0x3d04d9c7, 0x24d7af57, 0x986ccbef, 0x08f5d846, 0xff8bacbd, 0x5a98f542, 0xbc3efb64,
			0x59134acf, 0x0290723b, 0xbbbe8478, 0x1ce607fe, 0x4c9a17b7, 0xf85a3931, 0x57955d4d, 0xa10516f3,
			0x92278294, 0x367470c9, 0x99230b5c, 0xabe41aee, 0x3c9ea523, 0x5cf14822, 0x29531d5a, 0x49d4f658,
			0x7a98f64e, 0xc64a969a, 0xcfb2fe6f, 0x9780ade2, 0xe2c339c2, 0x9a0ff9a6, 0xe0a9cd76, 0xeba27a42,
			0xb093295b, 0xb8a238dd, 0x5aabdd01, 0x608961e3, 0x2966e32d, 0x08f516ee, 0x215dbeb5, 0xf7fcf443,
			0xfda7a538, 0xef843b31, 0x13cc33bd, 0x7c209956, 0xf606ec88, 0x10c21dcb, 0x90a5dae9, 0xeba502fd,
			0x10d188d3, 0xc6c2f223, 0xb3275840, 0x641b0104, 0x8978d412, 0xf241a6b1, 0xee0945d8, 0xff57c553,
			0x1d4ccc83, 0x3fae1e9d, 0x5e89cf9a, 0x1b909dbc, 0xba4fbec3, 0x9c8f17e3, 0xd9b1e264, 0x8467c599,
			0xf9cf406a, 0x2729368e, 0x2d9fd57d, 0xb99b4970, 0x02f9994c, 0x5e0a39ef, 0xc78b40ec, 0x5e6470f1,
			0x8788f584, 0x478ead7e, 0xab711e3d, 0x0b7178f1, 0x05e60247, 0x3c639cf5, 0x991f4918, 0x3f232cae,
			0x0e1d345d, 0x02b22e90, 0xea31570c, 0xbd83b9c2, 0x799b7dc4, 0xfc32667f, 0x03c86ba2, 0x18efc6cb,
			0xf93e1cd6, 0x4729a7f6, 0xd5e7e3e1, 0xf25f1510, 0x4e39af41, 0xee28a745, 0x1ef375da, 0x14f0c194,
			0xcb50b696, 0xb88bdf91, 0x8324268e, 0xed424d22, 0xe3aedaca, 0x7753a3ec, 0xf5ac2a60, 0x700f734f,
			0xe5b93d96, 0x31deee22, 0x749d1811, 0xaf27594e, 0x9c9c272f, 0x603a7553, 0x087900fd, 0xb40fb84d,
			0x41176fdc, 0x33a55963, 0x7cdea994, 0x6292ede0, 0xd4bf2fd6, 0xd7df6ba7, 0x91b45ee0, 0x42d093ab,
			0xb8d643ab, 0x73b38083, 0xa22ee04e, 0x282b251d, 0x84de501b, 0x2decc409, 0x42696625, 0xc7c45b94,
			0x584ad920, 0x5cf6b2b3, 0xb43b673a, 0x0335965f, 0x073f3712, 0xd6b33ed4, 0xd84d002e, 0xf739d705,
			0xf91b1d8c, 0x77b05eeb, 0x6ba318ca, 0xc1101b6e, 0x0848e312, 0x23143538, 0xeb864845, 0x98c674b1,
			0x32344f46, 0x520ef268, 0x68c1d3ca, 0x9842fbff, 0x1d1492b6, 0x6f7e84ad, 0xe681f007, 0xd236347d,
			0x24d3adf3, 0x8967d84b, 0x7b570e39, 0xd404a703, 0x88fa504f, 0xf00c6267, 0x48627b22, 0x4664fb47,
			0x9b254058, 0xd7e477a9, 0x165f1ecd, 0x9861e1de, 0xe58d364a, 0xdeb6e172, 0x93ddb23c, 0x729af4fb,
			0x83640da7, 0xb89df5b9, 0x5f94020d, 0x0c2081ba, 0xc9ec1119, 0x9ddf422b, 0xa8fb4238, 0xddba7deb,
			0x213e718e, 0x32697ae4, 0x2dacf8fc, 0xe47b50c6, 0x311df5d7, 0x1d16312e, 0x214c2754, 0x552c7097,
			0x21b02b0a, 0xf09cf5f6, 0x05c2b6df, 0xd1be20cd, 0x789004e2, 0x5ae7353b, 0x2f4b8804, 0xd0ad3875,
			0x5cb9b30d, 0x32dfde56, 0x51bd5496, 0xa8baa646, 0x411c203e, 0x01eaa00c, 0x5bc2431b, 0x58890af1,
			0xbe0375a9, 0x0bfc2822, 0x5e0ec5b1, 0xad06767f, 0x5a5ae75a, 0x85eb61e9, 0x7d1fa453, 0x56b6c53e,
			0xadd74b46, 0x2c234b3f, 0xe0c9699b, 0x31f5a33d, 0xbe86e126, 0xe1562476, 0x2c9e1b8f, 0x32c6473c,
			0xb1df6be7, 0x8f0a34d7, 0x8b738ec4, 0x70838f33, 0x418d2316, 0xa604e76d, 0xd19d9005, 0xa386cc9e,
			0x221d636e, 0x8e12cb20, 0x8997db96, 0xec43062d, 0x29de15ed, 0x57080451, 0xb932ffb7, 0x8122155b,
			0xe94a5d32, 0x614fb3b5, 0x40fafe9a, 0x5c3fff4b, 0xea5c8056, 0x168d4899, 0xbb044548, 0xf968cbdb,
			0x5262a5af, 0x6cc89cef, 0xc080e698, 0x25ba3721, 0x37f95ce9, 0x94fbcd6f, 0xfaec15a0, 0x54e75988,
			0xef191e67, 0x6dbe9753, 0x19039630, 0x497030af, 0xc7677480, 0x62fcb110, 0x6e0e89df, 0x26e978dc,
			0x2c0e4693, 0x7528350d, 0x99ce7f1a, 0xb7a41267, 0x8b14a309, 0x68c72127, 0xc8cd4a12, 0x172552f7,
			0xeb967d3e, 0x995644b2, 0xa6435a9e, 0xbb1fc893, 0xdfc5c88e, 0xb0031f1f, 0xe9577ebf, 0x545ab89f,
			0x6a69513a, 0x7a2326a0, 0x550d2246, 0x3136bb45, 0x1985929b, 0x823b13a7, 0xab220ea5, 0xab77e3de,
			0x817184e1, 0xe5443b53, 0xe294a67f, 0xcf736f33, 0xc187598c, 0xbe8e0c4b, 0xeab61da1, 0xb09363a9,
			0xbfad315b, 0xb3b36a4e, 0x823eecf4, 0x4cad839b, 0x9226966b, 0x91f14884, 0xea711ea1, 0x9454c1f3,
			0x8ec38752, 0xc186df9c, 0x110f719a, 0xf583468e, 0x7d214421, 0xda522946, 0xf97ddaf8, 0x2ee9b116,
			0xd6d6eacd, 0xd7f556f1, 0x98ffa495, 0x098a814a, 0xe72127e6, 0xbaa21331, 0x22861148, 0x4649b555,
			0x0d4590b4, 0x2fd22e06, 0xda89ede2, 0xd76ada54, 0xa548923b, 0x077ef930, 0xa7769a6c, 0x2f64e60c,
			0x9708f966, 0x02b9b6cc, 0x7b88c120, 0x6992de58, 0x0f7c82bb, 0x4cfc2dd5, 0xc6ed7f75, 0xd97bdd0b,
			0x52f229e9, 0x9a4afd3f, 0xe3f3c9af, 0x8b4b1435, 0x5d5ab3ea, 0x4e5922b0, 0x468734ca, 0xbfe7857b,
			0x2ba402c6, 0x088d60b4, 0x029b9453, 0x8c3b1248, 0x574f85d0, 0x58b52767, 0x0d119f6a, 0x74de3806,
			0xbf8dc6fa, 0xac805a4e, 0xd8a1917c, 0x169f5e2c, 0xe56ac44a, 0xb7d13193, 0xe669235f, 0x65fea395,
			0xd5131ab4, 0xeaf56c1e, 0xe73b7aed, 0x1d7e433a, 0x914c2f2f, 0xe03cc08d, 0x994ae3ee, 0xbbdd02bc,
			0x2ad75072, 0xb3a33564, 0x59cc636d, 0x4db57fa1, 0x6826c549, 0x75f9e2b0, 0x4a317702, 0xabf74d39,
			0x668b83c0, 0x850d39b8, 0x6c0a392c, 0x14a027f3, 0xe8792c37, 0xdec1b444, 0xfc1e025a, 0x30efc075,
			0xc4b2bb41, 0x94a31436, 0x6eacf041, 0xf7b35103, 0x8eb15d75, 0x9a0d1233, 0xbb0a71fc, 0x2740879f,
			0x5f3da636, 0x25aa4b7f, 0x53ad5da5, 0xcd0cba5e, 0x1c7f445e, 0xbc355102, 0x813c624f, 0x855b87cc,
			0xab3e3229, 0xff50b529, 0x791b13eb, 0xa376107f, 0x23ad2007, 0x763f8a4b, 0x267125be, 0x013a3e2b,
			0xa4b74583, 0xea8117c7, 0x855b3cad, 0x4984e4c9, 0x1f231a1a, 0x7212256d, 0x2a319fc6, 0x8ce997f3,
			0xc0c0df58, 0x34a119ca, 0x175f6614, 0xec6006f8, 0x1eccc66b, 0xde81c123, 0x92a445fa, 0x507dc378,
			0xc33174f4, 0x4f984b89, 0xda001e55, 0x229935d6, 0xdbf3d80b, 0x720637be, 0xfb72c1af, 0x155450ed,
			0x388d0ba5, 0xfaf332ba, 0x5e3be3ad, 0x46476d8e, 0x36271c76, 0x0b0caf82, 0x29751550, 0x982236d4,
			0xd92c1645, 0x6c66d493, 0x486b02d2, 0xdad1737e, 0xb89afb04, 0x3d03337e, 0x70497d44, 0xed419bda,
			0x26b1ec1b, 0x45ba4839, 0x332ca151, 0xf0f015cd, 0x6a63ce3d, 0x6f384724, 0x9fd99325, 0x4c883770,
			0x57cbfbfd, 0x5e6ce586, 0x90100b30, 0xf2832b14, 0xb70e3962, 0x064913ce, 0x8ece52ec, 0xb1d5039b,
			0x4b0075e0, 0x51fcca86, 0xa36dc832, 0xb92332da, 0xff7a5c2d, 0xc744c5bd, 0xc0121760, 0x00000000,
		},
	},
	{
		{
			0x00ec2177, 0x9bb788e3, 0x4b515370, 0x048fe580, 0x228b9448, 0xa0f66831, 0xba7e53c7, 0x89faaaa4,
			0x7070b947, 0x022b7f7f, 0x5701dfbe, 0x9065ddf4, 0x3b733af0, 0x40070c69, 0x8ebd1b0a, 0x755a72ac,
			0xb134ce79, 0x81ecf0ee, 0x42d58138, 0xdbfed6c9, 0xb3424f5d, 0x85ab6732, 0x27e435a8, 0x42c9a3e6,
			0x007e4808, 0xac8e4de2, 0x77040dfa, 0xfd2b19d2, 0x08f7729a, 0xfb79d2d8, 0x3d34bd85, 0x9647630a,
			0x651ad593, 0x5abe0762, 0x62d6aa06, 0x96062ca8, 0xdac55dcb, 0xc04149a4, 0xc595529b, 0x0764d197,
			0xd8ad4964, 0xaf6e46a1, 0x34cd4415, 0xd9b67098, 0x9781758c, 0x6cd2583b, 0x3b483231, 0x9b878692,
			0x97b67741, 0xfd2c68a3, 0xf5b1b635, 0x57c2288c, 0x4fdeddd4, 0xebd6cc95, 0x37c1bd30, 0xe47ed74a,
			0x157fd1d9, 0xe4a55331, 0x72f4494a, 0xe5146045, 0x8475f02a, 0x41a32c1f, 0x621499b5, 0x71637a7e,
			0xf22d822d, 0x79a123a7, 0x86f2ca79, 0xc8a19d95, 0x245db53e, 0x1b423619, 0xc6ac0595, 0x2c45b91e,
			0x0f61938e, 0x051b44b5, 0x17aa5dd7, 0xf0395a85, 0x1d0be1b2, 0xa19f6e01, 0xa5f76fc4, 0xe4c8fb19,
			0xb40106c9, 0x22a91f47, 0x48172de7, 0xbde0c7fe, 0x32011ed3, 0x689ef840, 0x14e50e63, 0x2630d2da,
			0x6f2bc488, 0x5e284df5, 0x2c02e4db, 0xb50894ff, 0x7f717eaf, 0x74bbebaa, 0x0eab559d, 0x76017601,
			0x84dbb736, 0x27abd891, 0x0ee9cbd7, 0x8ad04ac9, 0xdb3a0362, 0xb9d24739, 0x860a523c, 0x25c56ae7,
			0xbcb9f08d, 0x78b40dd5, 0xeff9bf5e, 0x7d91611d, 0x0c777534, 0xe345c9a1, 0x1e95350f, 0x80129745,
			0x13984b04, 0xdb242924, 0x0ab9b775, 0x26ba350c, 0xf5171f03, 0xf194990d, 0x186ad57e, 0xaee14f51,
			0x91ccf1f0, 0x4dbd39b6, 0xf84999f3, 0x2e0dd36e, 0xa1905256, 0xc21f3598, 0x3d2aa5d9, 0x50776e0b,
			0xe0f6d596, 0x77195685, 0x76c5d48a, 0x9a0b4539, 0x247438e7, 0x0c45a96b, 0xc91d6243, 0xa7b893e5,
			0x75328cd7, 0x5a9c58b0, 0x69fc7493, 0x2c86a3db, 0xa1bb9110, 0x52f79f3f, 0x95d05978, 0xcd7b7e00,
			0x9894d673, 0xc7183360, 0x0ce3e124, 0xf730dec5, 0xd77eac4a, 0x3e92d2f1, 0xe44a0a36, 0x1e543617,
			0xc2a3d2ab, 0x254a2af1, 0x1967118e, 0x62a72c4f, 0x2e1941a9, 0x4f5b540c, 0xbcc502fb, 0x7e9f14c9,
			0xdb0d91f5, 0x23fd5af6, 0xc4bdad55, 0x3e17b924, 0x346c4112, 0xcc1b6aa2, 0x714f806e, 0xa246cc06,
			0x6ca255d3, 0x7df6c9ca, 0x998f4eeb, 0x3e0a37cc, 0xea64dfff, 0x59b13d99, 0x345321e6, 0x630a3ab0,
			0x8fc08a74, 0x02b7ea43, 0xfb7e7562, 0x7c55ad44, 0xac40fe75, 0x2acaa5ff, 0x269b8295, 0x07dacbce,
			0x85698846, 0x56b125cd, 0x6e32f2bc, 0x11c20d84, 0x0f0ffdcd, 0x07c2cfb4, 0xb67e07c1, 0xfa79d156,
			0xd13d236a, 0xe1b1ae27, 0x360524d9, 0xf4d1063d, 0xf3be29da, 0xef10ce58, 0xaa007e38, 0xaa50f689,
			0xec345f58, 0x8bf0bad0, 0xa773cc83, 0x72d9b901, 0x681c935f, 0x3c4dc447, 0x52e134ba, 0x7fc04383,
			0xc22a2494, 0xdfc29a0b, 0x6ec91d13, 0x04ed9039, 0x9cbb5a31, 0x48eb8616, 0xb8d8862e, 0x2c81bac2,
			0x659855ed, 0x501233c7, 0xaba02f1f, 0x89bdd50c, 0x3e55b0c1, 0xa9b42d7f, 0x08a25495, 0xc46e8c50,
			0x743db2a3, 0x0eb00604, 0x22c53686, 0x368ae031, 0x7571bf89, 0x2a4dbff5, 0xcb547c7a, 0x83c55f6e,
			0xb1f43e00, 0x8da82949, 0x4dc7685e, 0x7ce4893b, 0xde745364, 0xae375fd9, 0x72361042, 0xa29f68aa,
			0xd6a53c1c, 0x011d62de, 0x4dd506d1, 0x2e3c93df, 0x9fa7fc5d, 0x791f21dd, 0xebe9ba76, 0xbbe25e5c,
			0x33bd5e42, 0x443defc1, 0xaa4dfd17, 0x98b96617, 0x1047317e, 0xff45652a, 0x9ea92d67, 0xc3c1064a,
			0xa68c6420, 0x6706e3fb, 0xfb8b64f6, 0xa779baeb, 0xd7c362df, 0x1ce76278, 0x34648c38, 0x8857115b,
			0xbbd5d8a6, 0x4d0e3e63, 0xee041fdb, 0x86b6bd5f, 0x14e8a751, 0x5339d377, 0x487d96b6, 0x5d6c377c,
			0xe953f49a, 0xb0aeb71f, 0x905f524e, 0x46d3e54c, 0x887b640e, 0x6d56d47a, 0x52ee350d, 0x9a3d2195,
			0xebc95324, 0x6c7ac685, 0xffe833d5, 0x440ca9f6, 0x2094460c, 0x297203c3, 0xc341afa7, 0x30afd60f,
			0x6d82b50d, 0x828b2b29, 0xdf6c6d50, 0x876dd97b, 0xbc98eeb5, 0x75086060, 0x32710a4c, 0x676324e6,
			0x2d8f6b25, 0xff06c23d, 0xfc9ee12e, 0x1979a54f, 0x4a0a1efd, 0x0eb03c4b, 0xb2a35b6c, 0x0c12d4b5,
			0x4fa6733e, 0x209b0025, 0x32e590a7, 0x87795724, 0xdbeb6aa6, 0x12295bfd, 0x92993511, 0x1ca5c4a1,
			0x3fa1394c, 0x94317e23, 0x6db0d07c, 0x105df4af, 0x80e58638, 0xd971daca, 0x056722a8, 0x7d4d7727,
			0x50e8430f, 0xb5684e47, 0x04d3180a, 0x5460e7fd, 0x928c06f1, 0x3bc5c59c, 0xa0431e3e, 0xc275f9e5,
			0x4bf7aa98, 0xe243c2ff, 0x5a52ce77, 0x6287cf81, 0x7f86f445, 0x1e2e1843, 0xd6cf85fa, 0xf8dd1f7a,
			0xea60f47c, 0x958c2935, 0x94f78b07, 0xab58b8cb, 0x58e47776, 0xe6ed051b, 0x4fdb1ee7, 0x222c9e65,
			0x2ebe7fe6, 0x3bca2107, 0x6a6cef5e, 0x1152c31b, 0x9b3e43b6, 0x6260f471, 0xe86caaeb, 0x11c88dd7,
			0x85c2aedc, 0xd90365ab, 0x33b9c66f, 0x7fbe1054, 0x8049f1b1, 0xfa4d090c, 0xb8e6ef38, 0x8287c463,
			0x88b7a343, 0x6c3e0edb, 0x52b28f27, 0x7d3fc7ba, 0x9780b5fe, 0x36d80da5, 0x18625bda, 0x00adbf2c,
			0xee76e16d, 0x77550493, 0x65a62ea6, 0xeb06b21c, 0xac6a0201, 0xddc1ed40, 0x9e513fe1, 0xd9cbefad,
			0xc20aadea, 0xf29861c6, 0xd340ab83, 0x6cd195f6, 0x664ab0fc, 0x191d635f, 0x5d519af5, 0x706841b7,
			0x9e7d904b, 0x9edcc155, 0x44af073a, 0x9a7e73ef, 0x22ee53d8, 0x4cafb14d, 0xd8c4f318, 0xd5f86ed5,
			0x77b48263, 0xfe537fe4, 0x935ab322, 0x34934d7c, 0xf4dd7394, 0x7b9f6438, 0x0a68b00b, 0x4b9008a6,
			0xbe9c5ec8, 0xe69c808f, 0x2ee4ad19, 0xdbc9259e, 0x8660abd2, 0xd40eb399, 0x46b89587, 0x73d588a8,
			0x40f84f6e, 0x18eb1497, 0xb6b54a44, 0xb5d1106e, 0x916d4184, 0x3b3cf675, 0x30810666, 0xc50d8821,
			0x2cd47c20, 0x2a509668, 0x54b502d8, 0x26398a03, 0xdc43aa4c, 0x5187fb02, 0x4bb8fa3c, 0xb952fa15,
			0x77c1c5c0, 0x763fd380, 0xa716144e, 0x2526461a, 0xd6ecddf0, 0x07d50064, 0x01974619, 0x2ff87d8b,
			0x2140911f, 0x7151a158, 0xaad741bc, 0xb28a2257, 0xee4d6ce7, 0xc0eb99a0, 0xfade33ed, 0xdcca7190,
			0x49d4d91f, 0x2f1c9161, 0xea84448c, 0x13d9f67d, 0xfc5fcf4e, 0x158f894c, 0x5ee4d7e9, 0x3fc98106,
			0xf4f3b8ab, 0x30fab594, 0xb2f6dbe7, 0x4e6a5713, 0x56f67f32, 0x1e340889, 0xb2ba3427, 0xa4566575,
			0x8e2d9fbb, 0x186e311e, 0x29d760d7, 0x492c6b5f, 0x2fcc6c21, 0x0b6f9eff, 0x7aba2a9b, 0x12aac0ad,
			0x40ea21b2, 0xd570f77c, 0x9745be94, 0xea3999cd, 0x0a4218d0, 0xf81c432c, 0x26bfd023, 0x73491710,
			0x1a1956d6, 0xa9cb16b8, 0xd131a5f7, 0x9dae3368, 0x641c1348, 0x51956bde, 0x7932fa52, 0x1517e2f5,
			0x440b1a45, 0xe905bae6, 0x4efef037, 0xf16816b0, 0xe186ab86, 0x785af76e, 0x92f0c86e, 0x15e8a244,
			0x0fe869c6, 0x545577fb, 0x3e92581d, 0x9edc0319, 0xd771aa34, 0xacaa1159, 0x54c62d9f, 0x0967f059,
			0x9ebcefbd, 0xf9eff639, 0x3cdbef2f, 0xa9069898, 0x313a19f3, 0xbdce6933, 0xef2d7ba5, 0xd3158b61,
			0x7f150021, 0x66ef717a, 0x711dc735, 0xb05d6d55, 0x4a1c32f7, 0x811277ef, 0xd8d8a919, 0x3b5783b9,
			0xbddb5c42, 0xcec69dfe, 0x2bb7fc4a, 0x79670cfa, 0xef45c2de, 0x924021c2, 0x5be6d111, 0x2865e6a9,
			0xb3e5c32b, 0xd83dbc41, 0x425157dc, 0x68e299dc, 0xa031fc39, 0x1c96e089, 0x3ad29813, 0x5255cfd0,
			0x1cf9f687, 0xacb9c743, 0xf395f06a, 0xd2810310, 0x4f55f0c4, 0x3116b105, 0xab928830, 0xb5693da9,
			0x75deba3f, 0xdab7dd8d, 0xb6045ef9, 0x6f06d938, 0x47fecf56, 0x88af037a, 0x3eba37f8, 0xe89a5e55,
			0xcd9fad42, 0x6e6447bd, 0x0160975f, 0x5971e261, 0xd13904cf, 0x5e788066, 0x3832338c, 0xcd6b9228,
			0x5c01a349, 0xff5b0691, 0xc07894f2, 0x71462a4e, 0xbf48c69c, 0x56946483, 0xe0d1fcc1, 0x3d372da7,
			0xe483ff57, 0x579857b5, 0xe9d8a20e, 0x459928bb, 0x6a6b5a0f, 0x48668a90, 0x906b0f08, 0x67ec2215,
			0x40db4637, 0xc89ffc77, 0xb9f783e6, 0xc87ca94c, 0xc876b06e, 0xb054fcec, 0xf251dd10, 0x8ab022ce,
			0xf2edf058, 0xee4f5928, 0x05191613, 0x76331785, 0xa7e3dfdb, 0x3b0dab72, 0xffb30f99, 0xa62a7bae,
			0xbfb73630, 0x47e2e96e, 0x6e71ca15, 0x1dc9690f, 0xef2ca3ef, 0xaa376bad, 0x55c42c96, 0xc596a863,
			0x066c8774, 0xc2ab67f6, 0x7bc1473b, 0x5b1579a0, 0x06a088cc, 0x5dc6614e, 0xf1dfba39, 0x04ae011f,
			0x0bc13754, 0x6e2c2d1c, 0xa840d7e8, 0x3dea6f32, 0xba1cb46c, 0x4a3a9f9c, 0xbb62ea5e, 0x2525b8d9,
			0x746a0663, 0x03fbe095, 0x5f508395, 0x21143839, 0xd4e0097a, 0x7ebd9b8b, 0x41a1d174, 0xa00c9693,
			0x7f763987, 0xef68125f, 0x30873266, 0x883d732d, 0xf7096f41, 0x0411c2e3, 0xedaa4cd8, 0x00000000,
		},
		{
			0x406e35c0, 0xab61d40f, 0xf1296dbc, 0x7e2b6ea2, 0xa2e2f411, 0x9c9ccf23, 0x6a6eadf2, 0xe42347f5,
			0x499b87cf, 0xb78ff5c4, 0x66136551, 0xbddce62f, 0x23c1639e, 0xa7e2cb6c, 0xba109bbe, 0x2f3a0c39,
			0xe2bb6ee0, 0x7199d656, 0x1a073b9c, 0xbe0d0840, 0xd4a55935, 0x49298ab6, 0x0c93f52a, 0xe96e72fd,
			0x4d538d6d, 0x3a320dc4, 0x65ecfdc1, 0x5097c932, 0x581f6a17, 0xf4bc80fe, 0x6595bab8, 0xc28b39d0,
			0x55b314bd, 0x61b502f6, 0x17aef4e4, 0xad0d443a, 0x950283d8, 0x9816f9ba, 0xd5981959, 0xb9b36000,
			0x9770509e, 0x520e4317, 0x24a98664, 0x62994eed, 0x2a973cde, 0x962eaa0a, 0x1eb65d7c, 0x4953d1bd,
			0xbd395916, 0xe44759e8, 0xbf3268dd, 0x316a2491, 0x6e2c0ea0, 0x822c1dae, 0xd4f3e31e, 0xf3aefa2d,
			0x21747771, 0x041f0c9b, 0x29d3764c, 0xf07bc4f5, 0xc851a7d6, 0xd2acacb9, 0x71dac1b4, 0x52819c6b,
			0xd19757b8, 0x33e3e8d1, 0x4f20d7c0, 0x874a2e62, 0xeb2ec512, 0x8033c446, 0x5974779d, 0x883adf2b,
			0x0791ee11, 0x9f6055c4, 0xf268e481, 0x03df1c94, 0xaea2e7d9, 0xdcec3638, 0x0ebd942b, 0xc71f9c31,
			0xca223836, 0x0fd12158, 0x460fb748, 0xc20a6183, 0xc89785ff, 0xa3200e3b, 0x058a03c9, 0x80700e22,
			0x318c64cd, 0x95cc48bc, 0xef0676ec, 0x7a50cb88, 0x94ac9926, 0xf23b78b1, 0xf8690476, 0x12d1d9f1,
			0xf11cdb8c, 0xb6e7a7e5, 0x96fd560c, 0x791163ce, 0xb6e6f812, 0x74d3ff7a, 0x03605a1b, 0xa87ed2ad,
			0x967fae6b, 0x29a45524, 0xe65b77aa, 0xf3dea044, 0x75f20dc6, 0xfc199dfa, 0x35231d1c, 0xfca5f19b,
			0x097f3fcc, 0xe58cb5f3, 0xfcc871f0, 0xc20cb46d, 0x76b2ecf9, 0xddba578b, 0xe8f6a7a3, 0x9e6f857e,
			0x28ee20ba, 0xb37e7d04, 0x4361ad50, 0x5ba0a497, 0x93b29b6b, 0x19b90ea3, 0xb9ced78d, 0x16b76c90,
			0xe97688c8, 0x7e2c0582, 0xab95105b, 0x8ced0a56, 0x9103a58e, 0xa9af72fe, 0x26c42f0b, 0xa946713a,
			0x7a2af2b0, 0x22cf4527, 0xd2a84b49, 0x2daabd62, 0x20671c73, 0xc119cc49, 0xbe98cd41, 0x9c7f94ca,
			0x217f74d0, 0xa44b1975, 0xfed20626, 0xeb462366, 0xe614c2c8, 0x1c87ffa8, 0x700e8e86, 0xc899dbfa,
			0xfdc8c329, 0x9b70c8ff, 0xd49e8b2c, 0x733d1545, 0xdb1257df, 0x2eec28b0, 0x0cdd4891, 0x3af584a4,
			0xb0c8ed40, 0x8040ba3a, 0x7f691ae8, 0x327c2b0a, 0x91ea291c, 0x3ac3d8cb, 0x8042d5f7, 0x421ac4dd,
			0x9552a9fa, 0x90c9e1a1, 0x3e553cd2, 0x57f63bf7, 0x820d09e4, 0xcf11b91e, 0x1f97b152, 0xd6b54b7e,
			0xc36853e4, 0xe786a54f, 0x933a132c, 0x66f51529, 0xf60b931e, 0x44381dfa, 0xb8e3e75c, 0xb8d3f5f4,
			0x4ffa4e89, 0x67099479, 0xfb5816ee, 0xe1237075, 0xd07ed864, 0xf611fe55, 0xaee6287f, 0x7ace821d,
			0x98376035, 0xde7777f9, 0x8c3eb839, 0xfbbd4c04, 0xf1a6cade, 0xc8a48c07, 0x8cbc4852, 0xb65a8d3d,
			0xfe55679a, 0x36f6efc8, 0x691812df, 0x2d8b2dbf, 0x2e2fe357, 0xd2f889a8, 0x4a57a96c, 0x7f2e8baa,
			0xed731500, 0xb9184afd, 0x554d5386, 0x764dbae5, 0x2de68c93, 0x929fd899, 0x35cff8e8, 0xa1bdee25,
			0xeb097a71, 0x211868b2, 0x6b1b018d, 0x0a4a1beb, 0xd15e5d9a, 0x8cc4766d, 0x281ab063, 0x74c19884,
			0x50a91f9f, 0xd2e25cf6, 0x0ea75c34, 0xb0db4aa9, 0xc74a597a, 0x2f304329, 0xb7aca3c3, 0x359762a4,
			0xfc882678, 0xf57217e8, 0xa845fa4b, 0x92038f4e, 0x5a59bde7, 0xd2e1b858, 0x70cd2826, 0xd4e2bd98,
			0xf14e7e9e, 0x2a2abbe9, 0x2d1fcece, 0x7c77d744, 0xf4912ae0, 0x8a27635c, 0x9d5a45f1, 0xe47ea4a4,
			0xa17c0751, 0x50cb620a, 0x361aa226, 0xb8d68dae, 0x4e6908c2, 0x73ab6668, 0xda009186, 0x05ed64d8,
			0x07a7167a, 0x7f1c1257, 0x60ff7838, 0x64d243cb, 0x49589fea, 0x4067415f, 0x496f28f6, 0xe25120b4,
			0xca228283, 0xdc6fe3ee, 0x6606eeb2, 0x6a740801, 0x701b1f26, 0x09ab48d8, 0x409e843a, 0x96805430,
			0xa5e5e3c5, 0x04bdc362, 0x894bba64, 0x58beb87d, 0xce730669, 0x9909f2b9, 0xec1fe8fd, 0x02fde5a2,
			0x955f8ad3, 0x2af8e2a8, 0x98bf1617, 0x3f02e464, 0x9f1d8538, 0xd3c63ae4, 0x565b14ec, 0xdc380be9,
			0xc5c91a35, 0x1175a667, 0xbec96ea7, 0xa256ea10, 0x26b9d291, 0x761abaaf, 0x313f7a78, 0x89f56f5a,
			0x9278c715, 0xf1775dc9, 0x75c546bc, 0xe29a27b0, 0xff92ae8a, 0x3bf0859a, 0xbdd9d33f, 0x667860a5,
			0x6dd003c1, 0x1ba15f4d, 0xaf4207d9, 0x1c6b8880, 0x824829f9, 0x1d0e7ebf, 0x9558110d, 0x94a9c938,
			0x88c130ee, 0x18cbd994, 0x1622b143, 0x9f550706, 0x8404c883, 0x5965dcb0, 0x8880cd5b, 0xd974d1c1,
			0x742413b7, 0x964c2882, 0x41e817c6, 0xfa679317, 0xc06efe30, 0x79f1083b, 0xd4b2738a, 0xac24cc63,
			0x2b52ba2c, 0x66ed4f91, 0xcbde0eb2, 0x9bedfce4, 0x63aeab31, 0x0dd07eee, 0xb3db0e7f, 0xee6be64f,
			0xb7ee2de9, 0xdfbf6c73, 0x6f072c4a, 0x8bca41e8, 0xb3d94aae, 0x43514469, 0x701f132c, 0xbe5e650b,
			0x9b47102e, 0xeeaec19f, 0x5b4909a6, 0x9a5c0c8e, 0xfff33ec6, 0x455d9170, 0x8147d7aa, 0x3812475c,
			0x32b09400, 0x9d94b26a, 0x980a8880, 0x7940d082, 0x4fc1ecea, 0x8cb05179, 0xf9018214, 0x719854c3,
			0x53a6e080, 0x31784c45, 0x5e3b9243, 0xf7d1ac90, 0xcde56216, 0xa75af2a4, 0xd83b47dc, 0x21af8306,
			0x58dc796b, 0xb869fb3f, 0x99153767, 0x2a662b6e, 0x2983b5f8, 0x843d8b2d, 0xc45fa943, 0xb109b407,
			0xb2e4293c, 0xacb9b845, 0xf9fb9c1a, 0x24eedd93, 0xf12ab82d, 0x8fd04c98, 0xe0a4e660, 0x34341194,
			0x831badee, 0xbe224f48, 0xa1bf1d5a, 0xefb20029, 0x1c9372a8, 0xe0ea3d10, 0xc6b5d7b6, 0x8f5208a4,
			0xdb028bb4, 0xa5c99041, 0x9c434279, 0x4dc549f0, 0x050a98be, 0xc727736d, 0x78124576, 0xbbdd5957,
			0x20e3e932, 0x0faf7f8c, 0x2c91e8e0, 0xb9a398fa, 0x128d633d, 0xa12b83f8, 0xaaae4a3c, 0x131b4e0a,
			0x2c37cd7a, 0x37d12e8b, 0x598a0c10, 0x6014c1ba, 0xe7bde1da, 0x1eadbbed, 0x229174f4, 0x94c0b311,
			0x96a94a21, 0x4459abc6, 0xc181b992, 0xceee48ec, 0x9e136211, 0x057bd10f, 0xbacf4a13, 0xa041e224,
			0x400be100, 0x9a1d0162, 0x83dfc0bc, 0xd2abbed0, 0x055269fe, 0x241a1da2, 0x4d213af5, 0x91bd1c7b,
			0xa65af8c1, 0x101f3dc5, 0x3305d9e5, 0xbbde803d, 0x5d96d294, 0x6d49be8a, 0x7a4dcc52, 0xec88affc,
			0xcf012788, 0xd1bbf764, 0xa2a801ec, 0xe20694d8, 0x816744b2, 0x7fc7498f, 0x7e01d1f5, 0xd6565036,
			0xfe5e482c, 0xb4af7bbc, 0xc944756b, 0xf271e67d, 0x7b2cd9a9, 0x5ff1a682, 0x5158456d, 0xd139eada,
			0x23954291, 0x4639d281, 0x6c764004, 0xf631ebbd, 0xb6ec1a65, 0x6f1256e9, 0x1ce37ae4, 0x7f205d5f,
			0x7edfead6, 0x04041157, 0xa005f873, 0xdd525ddc, 0x26c211ea, 0xb87b094f, 0x0a54f972, 0xdd6f3c88,
			0x44176253, 0x4dd29ebe, 0xe29774a3, 0x58a1716c, 0x4feb77af, 0xd59718db, 0x84e4b9c2, 0x92e01df0,
			0x99bf62bc, 0x14c65c85, 0xe0137b63, 0x4e09adfd, 0x78c8868b, 0xcaca3794, 0xa93e2486, 0x40e507a9,
			0x1b6865b0, 0xdf9069cd, 0x9bd6474e, 0xd784aeda, 0x4af65877, 0x044492e9, 0x5bebd756, 0x704114b9,
			0x91bf69ca, 0x7f11acf4, 0x7818639d, 0x83909038, 0x5ef35232, 0xacc398db, 0xfe9ba9b0, 0x5a5266a1,
			0x74e52c20, 0xa647ba03, 0x38613da4, 0x6e48635e, 0xe2ebe788, 0xe73d67d3, 0x6f689457, 0x01b6843c,
			0x6c4d07b2, 0xf26a621d, 0xc96616cb, 0x001dedea, 0x03ef392e, 0x0afdf75f, 0xf6dec887, 0xc7fe4dac,
			0x30029f61, 0xbb8c05ac, 0xb378644f, 0x46625f12, 0x332b6094, 0x9ed40d04, 0x7d2cf258, 0xc86fa279,
			0xeac9add5, 0xa062d190, 0xc8a65233, 0xf08d7080, 0xd0dfcff1, 0xba1e342c, 0x711e25ab, 0x23f9c148,
			0x8b9981db, 0xc49c6297, 0xa67902da, 0x2f6e3da9, 0xa4fb65bd, 0xddc3623a, 0x2415266e, 0xc7c54a7e,
			0xa74004fb, 0x9bbb2fa0, 0x5c6c3bcb, 0x390d803a, 0x0217cbaa, 0x6aeb880e, 0xb25e2ba0, 0x1d8b5b73,
			0x5a501046, 0xa51c1d02, 0xafbe6003, 0xa33457ee, 0x52413ce6, 0x94ee7f51, 0x4361ca5c, 0x56c43430,
			0x358312cc, 0x0d6bf4d3, 0x432304cd, 0xddbefca9, 0x7e6cf37e, 0x577c5186, 0xc6424546, 0x67399c39,
			0x1e6c331f, 0xd8612fb3, 0x706a1243, 0xcb0b4394, 0x858c9d41, 0x41c8f47e, 0x9f4dfc31, 0x5458eb5d,
			0xeb29e8ea, 0xdf902c89, 0x7d359eb1, 0xc213e58c, 0xbafd77a8, 0x978997f7, 0x39905474, 0x588808b3,
			0x5175de3e, 0x202c774b, 0x4c7ae6aa, 0x48fca744, 0x5460254e, 0xa8d16d8d, 0x3de263f8, 0x6fe187d4,
			0xef27b11d, 0x7f928326, 0x6dd08eda, 0xa2508f67, 0x430c8aef, 0xf9a25a83, 0xe64ce048, 0x57830ae1,
			0xcd483a56, 0x78287fff, 0xf0256542, 0xdbb4e150, 0x0e324782, 0x74de171a, 0xa26c5550, 0x10c5c35f,
			0xf1c1896b, 0x104f29af, 0x4c050e95, 0x7fd4c3fd, 0xddc5f929, 0xeb5da75d, 0x7c8bf60f, 0x57ca504d,
			0xb7b26ef6, 0x7812f5b3, 0xcbe67047, 0xfd160ae9, 0x2be6086e, 0x0c14ef90, 0x0f53741c, 0x00000000,
		},
		{
			0x5482ce7e, 0xabdba345, 0xcbc76c89, 0x867d5359, 0x28c0159e, 0x0c5a52af, 0x3b0eeec4, 0x1aec7eeb,
			0x736e08cf, 0xd44eae9a, 0xa25f375a, 0x22d8b019, 0xf7310338, 0xc2814c0c, 0x695d8a4c, 0x285e0cae,
			0xaede0adb, 0x3fc74bb9, 0x83bed9da, 0xd50a8af7, 0x4ad1ad96, 0x9171abb3, 0x6951ddb1, 0x9ee7fe1f,
			0x774f97bb, 0xdc74f0f9, 0xcbdb0fbf, 0xe72655df, 0x6be85418, 0xa7e561b4, 0xe292def4, 0x53b5869a,
			0xfc48c376, 0x7ca2311e, 0x02979805, 0x9e802559, 0xa1f8d1dc, 0x7ce072e7, 0xae5f7d1a, 0x15f465a3,
			0xfede2622, 0x01b31a61, 0x70c30b8b, 0x1aef6aaf, 0xfd5e0d40, 0xfbbac7b9, 0xc20dc2e1, 0x2a0fde87,
			0xbb89a892, 0x663240a1, 0x374a0495, 0x8e9f2086, 0xf9886602, 0xc66e04cf, 0xac5cbd08, 0x3c73b80f,
			0x2da56fcd, 0xbb6953fc, 0x47bc7223, 0xf035c9c3, 0x5c4f04b9, 0x70e8013f, 0x605b01d6, 0x745e0b8f,
			0x74e5e127, 0x6bcc9ed5, 0x014580df, 0x6e9de0b9, 0xfb4f31e4, 0xe0454b81, 0x46365aff, 0x0cbc4ffe,
			0x49a89ad8, 0x5ee4407a, 0x7902921c, 0xe020ce78, 0xdd016959, 0x1a9887a3, 0x8c9eaf62, 0xfbb2f5e6,
			0x418bf591, 0xb7ab7fe9, 0x90aa91f6, 0xd1c64713, 0x719bcae3, 0xbf7a7bc4, 0x901e8762, 0x13e6563c,
			0x770ab195, 0x9fdabcd8, 0xeebbb3d2, 0xdef5ea80, 0xd78d1c01, 0xb4ab4d26, 0xc4bdde94, 0xef82998a,
			0x6096a032, 0xb986ccb0, 0xb12dcbcc, 0xfbb6e3c8, 0xb187acb8, 0xafb57f7e, 0x0c7828b0, 0xf5d3ae0e,
			0x73de4c23, 0x3b921cb1, 0x5065aa5c, 0xb2bb2653, 0x0ce7a380, 0xe1a3f6f9, 0xf8066e02, 0xbffe6bfb,
			0xb2eaa23e, 0x9cac4c1e, 0x3b546076, 0xa4b6825e, 0x095e3cfc, 0x123370eb, 0x67163ab1, 0x659023b8,
			0x57965f49, 0x4c5f2997, 0x39b7ea63, 0x7db76f55, 0x13d504ad, 0x6125b826, 0x57ad150f, 0x6148a544,
			0x9168ae45, 0xc8d275a5, 0x43b7fc90, 0x37ae0067, 0xd9b651ef, 0x29648553, 0xd27d1b62, 0x9fe53c04,
			0x4fca7bc2, 0xf77c0ee6, 0xfa9ae47e, 0x8b50be15, 0x2feea0bf, 0xb5575fe8, 0xcaf63608, 0xdaaed606,
			0x22390dbe, 0x7687deb7, 0xce4c47b6, 0x214e0172, 0x61609a03, 0xffae3116, 0xd8fd609d, 0xbf60667c,
			0x888b17d1, 0x2c147bb8, 0xdedfdc39, 0x1c8ef09f, 0xe68b4a1c, 0xb0f5e5a7, 0x17b5ffd9, 0xc80b9e90,
			0x2432d50a, 0xf552bd63, 0x594c19eb, 0x4155307e, 0x05cf4db9, 0xf253d946, 0x6948adb7, 0xd8099c8e,
			0x3baca6c2, 0x77a51585, 0x495e7f25, 0x9dc2b25d, 0x2f28b168, 0xfe246027, 0xe7e89ba8, 0x57cb0d3c,
			0xfcd95903, 0xa03ae6b6, 0x23444a23, 0x68050aa6, 0xf4b34c8b, 0x31ffa29b, 0xd9683835, 0x286acb0d,
			0x422ff539, 0xa17f6e00, 0x53e564a7, 0x7ad55942, 0xfa9176f1, 0xf2e92c4d, 0x5bf9ef9d, 0xe773ce5f,
			0x035085a8, 0x0082d43e, 0x82b0d6ea, 0x695cc530, 0x1218af44, 0x5915e8bd, 0x3eead67b, 0xc8ac2188,
			0x0c96c18a, 0xb1198c73, 0x83036490, 0xe9d56b0b, 0x6e0011f8, 0x3a0b9d53, 0x0b7b294b, 0xb3b09d1f,
			0x22b3e509, 0xe0586080, 0xfd3a2e28, 0xd47d8c4a, 0xc4fca0cd, 0x59d9d232, 0x94502979, 0x11a93c83,
			0xe02a46d3, 0xdf834674, 0x77127143, 0x6d9a21d4, 0x31b7cfa9, 0xde0cd382, 0x029d2900, 0x848436f5,
			0x576cf51a, 0x436872a3, 0xc4e19050, 0x484f30c8, 0x4667ce4f, 0xcbe6596b, 0x3c308267, 0x7831c776,
			0xe86a99dc, 0xd98aa4b6, 0xca616e50, 0xd482f0f9, 0x8cb1ba95, 0xd7e9fe5d, 0xd02e391e, 0xb48fd38e,
			0x44c0e3ac, 0x26e27f16, 0x42d861ad, 0x61e1b269, 0x13b30df9, 0xbdfff8d2, 0x2b805d46, 0x52d6861b,
			0xdf1c1e4b, 0xcbb2e275, 0xab97ffe1, 0x7629ea1e, 0x4b68fdcf, 0x2d8f204a, 0xa5c06da5, 0x2be0b10b,
			0x272474bb, 0x10c29a54, 0xb58ecd9f, 0x6b95ae93, 0xe78b9bd3, 0x133a0a74, 0xa429749f, 0x886a2230,
			0x95b0aa49, 0x5b4fd1b7, 0x082774ed, 0xcda5920a, 0x869dc625, 0x73be5555, 0x3209ecf2, 0xc172b824,
			0x2c7de8b6, 0xbfab71fb, 0x5cf79730, 0x485e0e80, 0xdf7e011a, 0x7c07fbb1, 0x1eeb7e61, 0x5feb1945,
			0x970c77d8, 0x491553d4, 0xddb199e8, 0x2b5e0e07, 0xade6c2e4, 0xdb860120, 0x449ec4a3, 0xcb801cee,
			0xfb00c6df, 0xccae27be, 0x6ae02a32, 0x26aec5cb, 0x5f619022, 0x4debc6b8, 0x14f9e6b0, 0x4fa00fa1,
			0x2e85c857, 0xae2cb711, 0x9cd30812, 0xb9bd27cc, 0x4bd6164c, 0x47de4deb, 0xc3aed263, 0x44d3891a,
			0x82890454, 0xf31df6da, 0x07e24002, 0x8ce5481a, 0xf4ac86b0, 0xfb49ce1d, 0x3db263a3, 0x2b48a8bf,
			0x19a6c06d, 0x79accae3, 0xfc6b838e, 0x866b3157, 0xc5026dc6, 0x18aa9505, 0x1182c496, 0x350a4048,
			0x8db90d2d, 0x65b0392a, 0x0b32f16b, 0xdb96b671, 0x4594beb2, 0xa54b11a3, 0x30bcc5b7, 0xe2ba01f1,
			0xbe74b889, 0x1582b4f2, 0x30c8b186, 0x92c32dc4, 0x7ca99462, 0x995b0844, 0xc7feda8e, 0x2bf53775,
			0x9221d598, 0xb0b8551b, 0x6ec8cd28, 0x1d4a02f7, 0xb49fac7f, 0x547e2700, 0x3b2af78d, 0x07a067a0,
			0xb82ef9a0, 0xf5911a78, 0x2503e809, 0x6950d044, 0xf605e465, 0xe7a44764, 0xef8f48f1, 0x0320b9af,
			0xbaf5d606, 0x3f254037, 0x7058e94a, 0x0a0ce813, 0x1f0aca6b, 0x9101a5fb, 0x958f6292, 0x07c7fa46,
			0x530146b8, 0xce7e9072, 0xacd93b65, 0x29622424, 0x42b73c72, 0x40d1c2ff, 0x11ffdf61, 0x0abc5b17,
			0xceceab51, 0x8f0c4cf4, 0xfbe41fc4, 0x26a772d7, 0x7f55127a, 0x73055a12, 0x4f7a8dcf, 0x1d8877d1,
			0xf8af5af2, 0x057ce572, 0xfbb6db70, 0x6765581f, 0xae7bc6df, 0xac8e2a4c, 0x4da4c810, 0xba151f81,
			0x70150f14, 0x46e9796c, 0x80fda097, 0x167e85c4, 0xbcb7efb2, 0x3915b0e7, 0x12138af8, 0x56a52bd1,
			0xec73a0be, 0x6b1f612c, 0xa84f93cd, 0xdadc7c53, 0x7b0768b9, 0xeb38a94e, 0x222b4772, 0xaba1f770,
			0x430b061d, 0x56e5c3f9, 0x87eb7604, 0x942b5c10, 0x61262f89, 0x45fabd40, 0x39ed4f39, 0xbb7a5828,
			0x216d981b, 0x405f44fb, 0x4ed1e668, 0x3b90dd7d, 0xebd5ff44, 0x18014db6, 0x0a79abd8, 0x438d3d49,
			0x2e414010, 0x20feea3f, 0xc8386a84, 0x5233ff9a, 0x889d9d9c, 0x3f6f78c8, 0xd6754e9d, 0x2569ed90,
			0xb1249421, 0x860fbea6, 0xcf89f377, 0xbb4036da, 0xba2b1118, 0xe48cf225, 0xe8376bcb, 0x9400e954,
			0xa09fdee1, 0xe7bcbd56, 0x5709b8de, 0x63f3aac8, 0x8ecd7e5d, 0xfebcbce9, 0xc9701557, 0x48ce4a10,
			0x712fa197, 0xbb13adae, 0x78805795, 0x17e25782, 0xb7222aef, 0x474e37bd, 0x478c44ef, 0xdb25a23a,
			0x842038f0, 0xc29e2dad, 0x59686e5f, 0xaef07b3e, 0x71e976b3, 0x02ef0c74, 0x872b38ce, 0xcac72efd,
			0x5a266483, 0xd4c1f991, 0xfc8a58e9, 0x7c964b72, 0x296de185, 0xf7217ca5, 0x5c10389d, 0xe9869764,
			0x57109b04, 0x19dc68cb, 0xc629afac, 0xdd184cec, 0xb559a723, 0xe426b83f, 0x9ce637d8, 0x4d1c8b40,
			0xd5b9f626, 0xcce782a3, 0xad10a159, 0xccc63490, 0x5837740e, 0x6c0a703e, 0x24a945c4, 0xa6e45962,
			0xde075c3d, 0xd7654549, 0x6141f3ba, 0xa3f97692, 0xa7a8ddef, 0x8d03b079, 0xd073925f, 0x2ecfca8e,
			0xfb7ff336, 0x1f4e2fbd, 0x7bdbb52c, 0xb19c8552, 0x7f675e5e, 0x56fd8a32, 0xceed14e8, 0x4189c033,
			0x0068291c, 0x3bd9a8cb, 0xfdca84cd, 0x6904ff41, 0x0a662ce8, 0x8483642c, 0xfffd21bb, 0xbe0f15ad,
			0xbb8fbb83, 0x015a8084, 0x908325e2, 0x235140d0, 0xc0170c6e, 0x1f01289f, 0x832fb4ca, 0x52d425e7,
			0x51054923, 0xa387475e, 0x72552ac0, 0x8a69d11b, 0x0383c842, 0xf27dfe35, 0xba78332b, 0xef164cb3,
			0x6bef4d75, 0xc864a413, 0x082faad3, 0xcb64e841, 0xd5045d98, 0x2187023d, 0x23afdf65, 0x011330e0,
			0xad8fbde6, 0x10cd65d9, 0xac111b01, 0x34227605, 0x6671b97c, 0xd96285b0, 0x49798da5, 0xe2ee1fa6,
			0xf45dc6d1, 0xf4d65340, 0x22ca1c11, 0xbf19dcdc, 0xe022c2e4, 0x543b57e3, 0x52bc7f66, 0x70444e05,
			0xc56caa2f, 0xa9ea53eb, 0x9dc3b6f8, 0xa90b2a87, 0xaaada4e9, 0x763853e0, 0x5be2e51a, 0x1d8ffd2e,
			0x5190064f, 0xe63ef628, 0xfbec8106, 0x9555f201, 0xfb069838, 0xd159a17e, 0xd729f7c1, 0xc14dc539,
			0x8cafd29d, 0x479c8d5e, 0xde4a59ad, 0xea8333dc, 0x461036fa, 0xfbaa86e7, 0x9dd09b25, 0xb67ef2b3,
			0x0bcc9f90, 0xc3fa07a3, 0x54025605, 0x37d7704f, 0x3deb1efa, 0xe8b10b98, 0xf60da161, 0x8bfa1cba,
			0x49e69631, 0x85aa2ee5, 0xf4595870, 0xaedfc0dd, 0xe1cd708f, 0xccc75f40, 0xf56df426, 0x2fff2bed,
			0x445c2017, 0xd7065d84, 0x19d50d83, 0xdc452d61, 0x50eb846d, 0xbbe144da, 0x353d448e, 0x0f248c5f,
			0xf80dc4ed, 0x7f7f0855, 0x5b35787c, 0xc9ad0514, 0x0eed2e5b, 0xf9c89161, 0xeabe3b08, 0xdb25acaf,
			0x450d6108, 0x7f3a5f30, 0xcef4e24e, 0xfce69f82, 0x648e06f5, 0x06bfbf9c, 0xa8543a2d, 0x1566a137,
			0x6769dc91, 0x403f1964, 0xa25bd756, 0x027fa42b, 0x95e43413, 0xafca5e85, 0x48cb617f, 0x5fe5dab8,
			0x1ee9771a, 0xfd186309, 0x63971466, 0xc157032b, 0xc856883e, 0xafa93154, 0x8e0393ae, 0x00000000,
		},
		{
			0x9e88f135, 0x908714c6, 0x53bf37cf, 0xce9f2dab, 0xeeff2b13, 0xb655c3fa, 0x5664b5a8, 0x062c5b8a,
			0x40209fb1, 0x8b53dda7, 0xd9799ead, 0x31144718, 0x1c096edb, 0xf9c1998b, 0x75e0971d, 0x7b0b7003,
			0x1d7dc075, 0x5a86ea49, 0x70031e8a, 0xcbd10b86, 0x93c5453a, 0x063e820b, 0x69fd8d7a, 0x1c619521,
			0x73ab6f92, 0x44a63092, 0x2b0b594a, 0x4d64ed21, 0x9551d0a4, 0x66173c98, 0xb49dd2d0, 0x05aa9d3e,
			0x28fe86cb, 0x66168f35, 0x732d9781, 0xb34283ac, 0x085bb166, 0x6a206922, 0xfa98272e, 0x194ed310,
			0x7225a365, 0x8cf66a5e, 0x5298bfca, 0xbbe5ca53, 0x657360bb, 0x934c618a, 0x910798bf, 0xf7ab8bb5,
			0x88bd945f, 0xef12074a, 0xfef1edef, 0xd3f95dec, 0xfa42bc91, 0xd32cb6ef, 0x1ebfdb6f, 0xe60b8ae9,
			0x96dcd472, 0xbf45623a, 0x5790fd4e, 0xd7bac9bc, 0xaaa5aa0c, 0xae02442a, 0x2d1a9016, 0xe6bc986d,
			0xabc1af73, 0x0f67def4, 0xb5d3a663, 0xba509e8c, 0x1b70d086, 0x0c4845d0, 0x2427c928, 0x2bd45a53,
			0x737bfd6f, 0x6d3b459e, 0x818807b1, 0x5d3e3262, 0x0061a2c5, 0xd85a9e07, 0x77ccb321, 0x48c15742,
			0x710d172b, 0x1df0e046, 0x2fc89041, 0x3987b83d, 0xca0c1117, 0x2fedb59f, 0x3f61059f, 0xc5b45ede,
			0x15fbc402, 0x6d3ee5c2, 0x744c547c, 0xcac3283b, 0x9837adea, 0x0bdbf5e7, 0xee91108e, 0x5f0750ac,
			0x344d314b, 0xd1d38a97, 0x13a8ca68, 0xe7b11498, 0x69f360e0, 0xd5244271, 0x3f7f5c29, 0xde8d8750,
			0xbe21c171, 0x56755a48, 0xb362762b, 0x226fc8a7, 0x300594fc, 0x24a456d4, 0x92d58f1d, 0xc8013d0a,
			0x2b2007d1, 0x19deb469, 0x054ee9fc, 0x7f3b892c, 0xffdd3c25, 0x797004ef, 0x0cd4ceac, 0x375c365d,
			0xb072f309, 0x347ce600, 0x4300028c, 0x4f0e398a, 0x76efe6d0, 0x00502f41, 0x59ce5bd0, 0x8473d027,
			0x0324f3f3, 0xbd4c07a6, 0xa3eda545, 0x9bdedac8, 0x3210ee2f, 0x77500c6e, 0x3437faab, 0x9f1f8592,
			0xf3da7257, 0xfde0d998, 0x4f613eba, 0x425dbe2e, 0xd8c96020, 0xd5282c64, 0xc4016b34, 0x6566f36b,
			0x2fc78d7b, 0x68d9fa0b, 0xfeeb385e, 0x065762cb, 0x56eff45a, 0xdde56094, 0xe2d82dd1, 0xf7296487,
			0xd0c8f395, 0xcb1be927, 0xc746c3be, 0xa9d775c3, 0x55cee909, 0xad5b8717, 0x1f5b8172, 0xdcd40572,
			0x4371026c, 0xe7880cb7, 0x7e8d48b8, 0xeb7d4614, 0xe53ff864, 0xbf2be134, 0xa7a3face, 0xccace97d,
			0x28676033, 0xbb6f1635, 0x54d7d47b, 0x8e3f430c, 0x6f1df1fb, 0x60d4a0cc, 0x1a22fd71, 0x55826d3f,
			0x9ef8e936, 0x29f84ce2, 0x3356990a, 0x20a61687, 0x782c8cc9, 0x60a83d1c, 0xe903c1ec, 0xcc12d476,
			0x6d9df350, 0x4e50e52c, 0x6853587d, 0x870d1e5c, 0x6da0aab9, 0x109da135, 0x37da6092, 0x0c4aba22,
			0x2a2bdeed, 0xf5580ebf, 0xe9855f17, 0x43d26648, 0xf05c5458, 0xdd6bc9cc, 0x7d015f35, 0x689b79be,
			0xc1f08770, 0xd7b354a6, 0x9468f52e, 0x41269a90, 0x96bdc9fe, 0x8db2d9af, 0xe00446b9, 0x78745fd4,
			0x40fc1977, 0x2682fb56, 0x2edb3d5f, 0x4393db99, 0x6646d372, 0x525c3592, 0xf5c06b96, 0x9daee970,
			0xfa0f78a5, 0x24dba919, 0x01885fff, 0x97332489, 0x4255633c, 0xfcda99b4, 0x4fa126b3, 0x89dbb5a1,
			0x70d98b51, 0x6c2d0ce8, 0x29a61053, 0x808e441c, 0xa211eb03, 0x10d1d60f, 0x5f96f2c8, 0xca94db57,
			0x6d1612af, 0x7f3586a1, 0x4ca45c05, 0x3db500ac, 0x3b7d1b44, 0x3929d45a, 0x9e5e5cfc, 0xfaf208cd,
			0xe48550f5, 0x2919ef6a, 0xa881752a, 0xfbcaa988, 0x39c042d5, 0x5498b1d9, 0x568839bd, 0xa906334c,
			0x69294173, 0x93628bed, 0x085d1010, 0x19d5713c, 0x165a03c0, 0x139be7e9, 0xca30e7c3, 0xe35efbb3,
			0xdd13ca69, 0x2abab0bc, 0x547e2540, 0x3b2c88df, 0xe6387a3a, 0x7434fd16, 0xf08099c4, 0x7a4f61a2,
			0x8826f8f1, 0xe5bfd418, 0x07e4fc97, 0xcbd6e795, 0x4ae13462, 0x69a45d2d, 0x5a592d9b, 0x64304dc0,
			0x461ff759, 0x49c89901, 0xbeb486f0, 0x50819010, 0x057bc42e, 0x8ff6a2b3, 0x2c0c0ca8, 0x3cb17957,
			0x207d4543, 0x322a37ee, 0x80328b18, 0x286221c0, 0xbb1a2745, 0xcc5ca8e0, 0x6a1eebbe, 0xb052e61d,
			0xed5047aa, 0xf5294a71, 0xd6b86571, 0x6c3d5285, 0xce9dffce, 0x6de2e30d, 0x4d4286a8, 0x84d5e93a,
			0xf096d278, 0xa07c86f9, 0xde0cd9f0, 0x25fce998, 0x8dc5f063, 0xc9a7bba1, 0xa99f12e7, 0xe8c57bf1,
			0x8d97b1a6, 0x3b26b458, 0x6a3f90f6, 0x88d8f50a, 0xf61b866e, 0x65d7ebb6, 0xf1732f1a, 0x45a2091b,
			0xe6d994da, 0xcb2bb3cf, 0x14559392, 0x7dc96ead, 0xc182b0c1, 0x622a10a3, 0x1acccea8, 0xc48cd093,
			0xfa590da8, 0xa438c40b, 0x4d102ecb, 0x4112406f, 0x88d35ef1, 0x37b3ad51, 0x14f2f38e, 0x30783489,
			0x2c1e1ab3, 0x29c115e8, 0x20ff4cc7, 0x2d0c54e9, 0x7a20c934, 0xa17cd227, 0x5dca9927, 0xdfbdd819,
			0x0e81b3a5, 0x57b21d71, 0x95663614, 0xa3ac615b, 0xe50672c4, 0xc51e9009, 0x41c89eca, 0x4134c47b,
			0x0e2c7b64, 0x7c738f71, 0x7cf74194, 0x5059066a, 0x573edc19, 0x10802d1c, 0x9f424cab, 0xf6ee364b,
			0xba3d0f5b, 0x5b54b48a, 0x469a6d66, 0x96c8e2d2, 0x3a87f95d, 0x67ed9ef8, 0x778ab1c8, 0xdc4e31f5,
			0xb2983e29, 0x52f4610d, 0xbb6b72f5, 0xdbb06879, 0x4b7b59a3, 0x4892fdcd, 0x81a01b5d, 0xaa622ce3,
			0xc36cc525, 0x595e86b6, 0x3671a0b8, 0xf566c25b, 0xfc5dfba9, 0x161b9200, 0x0b1b1007, 0x1c27c3d7,
			0xf478fe2b, 0xea3af112, 0x69e8a5f6, 0xe8cc56fe, 0x5f396a61, 0xc13847d7, 0x72a03561, 0xf1be1983,
			0x1c4f655e, 0x6a4c38e9, 0x88f15899, 0xc51b0f5c, 0xba5cb8e0, 0x6f687e61, 0x9dde4471, 0x8bf573dd,
			0x63d26290, 0x3ab39957, 0x349a3c83, 0xc9f95427, 0xde0f0152, 0x7d2a881e, 0xda216e30, 0x71b07afc,
			0xa7f3d0bb, 0x75d049e9, 0xdf56dd40, 0x777eb033, 0x888a0517, 0xfb98450e, 0x45c7bceb, 0x6cd28d55,
			0x2f8cb876, 0x6f54d4fb, 0xb3d4eff2, 0x3bbc093e, 0xd289be93, 0xa9fafe10, 0xf1e787aa, 0x39564e79,
			0x0b7939c5, 0x601575a0, 0x71383c07, 0x6c96d4b6, 0xa209ac0a, 0x25daaa2a, 0xfafcdd66, 0x3e0080ae,
			0xfdbf7c4c, 0x98e471ea, 0xbf50347c, 0x77a43ddf, 0x0b2d9b94, 0x75fd496c, 0xef48aef2, 0xaffc8946,
			0xa5820719, 0xffc67181, 0x39bd8c25, 0x4cb25c36, 0x2b2e3bde, 0xd680eb63, 0xf3220289, 0xf333cb2a,
			0x553e737f, 0xf81172b1, 0xbd269cf6, 0xfd3823e9, 0x718517a9, 0x59cf72d4, 0xc633d079, 0xfd2d8b45,
			0xc54a7db2, 0x60d96e2d, 0xc5596d3a, 0x5f7469c8, 0xc34446bd, 0xe7ed7ce3, 0xf9587786, 0x6f545b8b,
			0xd7c5837e, 0xac3297df, 0xff424c0e, 0xecb16a2e, 0xaabbb952, 0x486c1616, 0x4e2abb07, 0x840fc5f9,
			0x07d7a242, 0xbbc4b00b, 0xb91f4101, 0x5ffe8780, 0xdd223ca7, 0xa4fc3b7b, 0xf1b343c9, 0x48e42449,
			0xd663dbf4, 0x03ebaf9e, 0x6889689f, 0x4f093440, 0xe96ae42c, 0x9b75c5ae, 0x95b8b0ea, 0x837d12ca,
			0x6a3f1361, 0x4ee9eeb6, 0x9efd98b7, 0xff395b13, 0x397e5191, 0x9fe80235, 0x4c257d34, 0x1cd395a7,
			0x7d94b038, 0x8772949f, 0x2ecc52bc, 0xdb56d20a, 0xf41599c1, 0xe1306002, 0xed44eff5, 0xbb3264d9,
			0x16dacd83, 0xcecf1f22, 0xa29e7d17, 0x985620ae, 0xa7eb9704, 0x7c905d5a, 0x27c95b3d, 0x93cd7776,
			0xe6f20e1c, 0x608b8a46, 0x03a01a96, 0x2b28113a, 0xbcdc2ff8, 0x5617497e, 0xc0598704, 0x41f2d01b,
			0xe819f1f4, 0x9a24460d, 0x9965f2af, 0xa72c019a, 0x09b973d4, 0xf3e997cd, 0x3a0b2ace, 0xd84b17eb,
			0x627cb47e, 0x9d7aa46f, 0xc1d2ae11, 0xa2aeff38, 0xea2a9f90, 0xbc6b1305, 0xededb181, 0xc9d342c4,
			0x656d9a78, 0xe7dc249d, 0x0182145d, 0x38e08dd4, 0x3cd44cf6, 0x1f5e07c1, 0x46db8111, 0x57fd8969,
			0x48a56bfd, 0x752e9fdb, 0xb94a3cd8, 0xb530f0da, 0x7b962a65, 0x9387fe72, 0xf12a2482, 0x2e602a62,
			0x3e42e8a1, 0x40821be3, 0x251596b2, 0x88fef633, 0xbae52560, 0x95d392c9, 0x3f8b9a55, 0x8c4097ce,
			0xfd977a8b, 0xc98c60f2, 0x82394d9b, 0xf728f989, 0x8ef63c95, 0x80dc17fa, 0xeb41284f, 0x15ca6519,
			0xc5762bf4, 0x2eac66cd, 0x7d4a2f90, 0x3f0d90a9, 0xe1a531e0, 0x68c846a8, 0x78e50d2c, 0xa225a892,
			0xf203d4b5, 0xe633934a, 0x54c32dfe, 0x2a3dd277, 0x6cb9efd8, 0xab35497f, 0xf6883235, 0x39c6a943,
			0xdfecd723, 0xba49cfeb, 0x0ee9c8a1, 0x08ee9259, 0x58908cab, 0x46aebe71, 0x8a687031, 0x18016552,
			0x506927d9, 0xd226d4ad, 0x22fbb0b3, 0x0c3d3f49, 0x14198ca8, 0xc8ad0ac0, 0x9d9e206a, 0x6402c9af,
			0xe64704c6, 0x9b99db1d, 0xc5af20f5, 0x8b61ed97, 0xf5e9bbbb, 0x17a69f9a, 0xcd637d0d, 0xd8d8baa5,
			0xa8471fe0, 0xc1aecc39, 0xa194fe7b, 0x31e6085c, 0x91da7fef, 0x6ea65c2c, 0xaf5c4caa, 0x0ec36552,
			0x36a35963, 0x15b61d70, 0xd79914ca, 0x22e40752, 0x1597f556, 0xc528a579, 0x42a479ba, 0xabc397ed,
			0xcca0a179, 0xd2d2af00, 0x696892b1, 0xfcfcf072, 0x90236bbc, 0xb95e2ecd, 0x7ffb76a8, 0x00000001,
		},
		{
			0xac4b69ad, 0x92ccdaf6, 0xdce45876, 0xec79146e, 0x61b69e90, 0xa75aeee8, 0xca099370, 0xfaa2ff14,
			0x01536d27, 0xc82391b2, 0x8778f640, 0xdfc75fe2, 0x3634946d, 0x37aa3a5a, 0xda43970f, 0x5abf9723,
			0x92c9003b, 0xf222a1ae, 0x3e9356a9, 0xf3a25d3f, 0xdeebf9be, 0x510363a5, 0x74fe8907, 0x1fa25573,
			0xa9171cce, 0x675eec4a, 0xfc5f65ff, 0x68ae84a1, 0x5aa1f023, 0x04e8c491, 0x1d7982c7, 0x6cf4658c,
			0xdeba204f, 0x24122e4e, 0x58c0c857, 0xf067e189, 0xd32a300c, 0x7b4dd31e, 0x402375b6, 0x97cb90f5,
			0x86541dce, 0x4d7544db, 0x3129399d, 0x9a275ff0, 0x394d1616, 0x6748e34e, 0xbfa21d33, 0xa94ba99e,
			0x6d7a8e68, 0x8467a86f, 0x2208c7f5, 0x9724a5ea, 0xfc87804c, 0x4e2a7d54, 0xb37bbfdf, 0x4b662f1f,
			0xd512b5db, 0x1bcc9ffb, 0x17258d8a, 0x50a593b0, 0x90baa0da, 0x856f73eb, 0x27b1b233, 0xd84b1fe2,
			0xb23f1caa, 0x8f6271d6, 0x6cca1d25, 0xff877cfe, 0x452f8ed7, 0xba0cfa28, 0x3235f62c, 0xa4ccceb5,
			0xaf1c1388, 0xb08e1697, 0xc8a00987, 0xe62a39c9, 0xb0f86201, 0x8600bfc8, 0x5a10b96d, 0x1c7c8a51,
			0x96550f52, 0x82dc2c24, 0x2e56d641, 0x01075d55, 0x96f2f429, 0x6bfd3d21, 0x8ee545df, 0x3f9314af,
			0xa61dc242, 0x819c51b6, 0x43a81072, 0x833cd869, 0xf5e201f5, 0x96319733, 0x0cafdd24, 0x8035e161,
			0x2052d470, 0x442072eb, 0x892ed318, 0x97d49e69, 0x015ed1d9, 0xe749a1f9, 0x70190db2, 0xc91988b3,
			0x3ee2bfa8, 0xe1899f92, 0xec388ac8, 0x56f8bb66, 0x19820ca7, 0xd1c4e8c6, 0x095754ca, 0xa5d92610,
			0xcf60d4ce, 0x144856ad, 0x3e54108a, 0xcca008d5, 0xb49feb01, 0x9b57d11f, 0xfc01e719, 0x9a06568c,
			0x06d491ed, 0xf5e7663a, 0x1e67cfe5, 0x39f4af9d, 0xd379777c, 0xf7faacd9, 0x15241969, 0x9fef5495,
			0xcfa86498, 0xa86de5dd, 0x6915306d, 0x811216cd, 0xf81bbf47, 0xacfc7b09, 0xd332d0ad, 0xbb1d133c,
			0x3b6feacb, 0x00886eda, 0xef1a3722, 0x6060a767, 0x95e944b4, 0xfe74749f, 0x014a7827, 0x053df447,
			0x35cf9194, 0xed2adfb9, 0x0b41a67a, 0x96a61915, 0x110f84ee, 0x7d2c9008, 0x0fc97aa7, 0x1a598650,
			0xa54c7ab2, 0xb15e5aca, 0xcec915c1, 0x28e5da66, 0xdef6e95d, 0x0f981dc6, 0xa5acc0a8, 0xc59dc6a0,
			0x77ff4621, 0x05206b6e, 0xf98e435e, 0x9f721aac, 0x941796a6, 0x0d90f7ef, 0x0bae268d, 0xb420d1ab,
			0x106a9d9f, 0x9efe7031, 0xbe3d9db8, 0x7736748b, 0x19577a6d, 0x22272136, 0xe7b4647f, 0x7fec1dff,
			0x2bfcd574, 0xc81146fd, 0xa3b7d7a5, 0xbacb7c81, 0x2e7ed369, 0xb3fde2b1, 0x157f4c70, 0x01eaba6a,
			0x7c4f0149, 0xebb00e5c, 0x4f9a913c, 0xaed52a62, 0xb0d2e29e, 0xc6c2632f, 0x93df1a7f, 0xc0a1fbde,
			0xa01f8c6e, 0x7f98d703, 0x4e4e5e82, 0xe2637909, 0xf4b691b5, 0xa91e8912, 0xe832d7b7, 0x48b5bd5c,
			0x81b69c01, 0xbf5c06fc, 0x2390308c, 0x22c27326, 0x0bb3b9b8, 0xa10da362, 0x04a12a8f, 0x00610a54,
			0x25024768, 0xc12b44a1, 0x58d398e6, 0x98b7d893, 0xf4220bec, 0x2bebc917, 0xdaa19066, 0x3cd6a792,
			0x43e77a26, 0x910e7cff, 0x642846dd, 0x94d002af, 0x4c4effcb, 0xbf12e674, 0x70fdbc35, 0x8f19d28e,
			0x00929e95, 0xe79c320f, 0xff304041, 0xa6882fd3, 0x7c5cd9c9, 0x84d49d09, 0x10ba489d, 0x2a1e1812,
			0x589cbfbc, 0x4f05b4c8, 0x7200c89b, 0xc1877a77, 0x37ba107f, 0x0da29cf6, 0x46c5e009, 0x977da00c,
			0x37e186ed, 0xad556377, 0x360a5c69, 0xd9c0a1fb, 0x60d2347e, 0xf7507e98, 0xfec59b62, 0x3a41c34a,
			0xa635d917, 0xf6b8ec7c, 0x8ca3e309, 0x853bc0c1, 0x0c71d613, 0x08ece124, 0x1111e5c5, 0x259b5ec0,
			0x3660627f, 0xbf1cff75, 0xd8d48b7a, 0x78655198, 0x00680deb, 0xd9bd0f24, 0x60880504, 0x6b7a12ac,
			0xb161efe4, 0xdf1b8c89, 0x28957c3d, 0x6563987d, 0x77d5c9c2, 0xa7e86b4e, 0x7908dbaf, 0x1aa59301,
			0xf52367b4, 0x6c4ec1ad, 0x44e6a5e2, 0x6eda2d65, 0x112b82ba, 0x7d1c1452, 0xc1791cbd, 0x896bb69d,
			0x97eb70e5, 0x9454a481, 0x26af98c4, 0x4fb31a90, 0x5f297a78, 0xc86e744e, 0x3f0c49ed, 0x13093bee,
			0x01352fd6, 0x72538ff3, 0x41335fe1, 0x98bec0d1, 0xef3e843b, 0xbc4ff54e, 0xa289d708, 0x68a83f77,
			0x4a7a2026, 0xb4524c8c, 0xdb49fa09, 0x7a41571c, 0xd429aceb, 0x87a38876, 0x02ac6377, 0xfd4c3de3,
			0xf9b03011, 0xfdb2f6cb, 0x602a2bc8, 0x35c70682, 0x82d1f8d9, 0x7be094b8, 0xba6a8f18, 0xe79b78fc,
			0xfa5db0fb, 0x839d7bdd, 0x7195f85e, 0xf54f28b9, 0x513bf4e1, 0x7ef478fa, 0xcd03e7f6, 0x99ebbe7d,
			0x57a60d8b, 0x2a9471d3, 0x97fdbaae, 0x514921da, 0xf44e30c7, 0xa720c6f4, 0xe4d9744d, 0xd2e12081,
			0x5af43b0d, 0x74439523, 0x33b42957, 0x2098ad9f, 0x6210727c, 0x730c9e6e, 0xe40f0ec6, 0x7cdc0417,
			0x2b26edaa, 0x851534fd, 0x298d163a, 0xcf4fe5b0, 0x01966de1, 0xee9b0e3a, 0x13c4521b, 0xdcbd5ca7,
			0x52fc4ae1, 0xdc92916d, 0xc0467e04, 0x5e92df46, 0xbf296436, 0xed7b7c50, 0xec679994, 0x38e69b51,
			0x684e3de4, 0xafa52e4a, 0xcf0b2491, 0x313bd4e8, 0x17b73fd0, 0x0171d216, 0x78c5e41a, 0xfd4c2d66,
			0x13530b90, 0x1ff1543f, 0x6446a7d4, 0x3282db1c, 0xa3670646, 0xa8ae8506, 0x8b5eacd0, 0xe41908a9,
			0xae65e455, 0x78bd1f7b, 0x5b1938e2, 0xa1cd9c6c, 0x8b8b88f5, 0x9967876d, 0x91152a5e, 0x75342cbb,
			0xd7effe56, 0x7be1344a, 0xe80613d8, 0x46ddcb79, 0x3d90a8e2, 0xb4923970, 0x2b7c91b5, 0x23dd230b,
			0x4cf0e3d3, 0xd1d6a401, 0x5678d748, 0xe9edf176, 0x6c21018b, 0x3179d6d8, 0x8086c7d9, 0x42f032dc,
			0x5ba5f19e, 0x02b7c78a, 0x85d4b451, 0x1d05b629, 0xf33d94af, 0xf4e49594, 0x0bf73f98, 0x96057e50,
			0x0470dd3a, 0xcca30c58, 0x1303aa5c, 0xcd7576b7, 0xfbad330e, 0xa5a7d333, 0xab29c7e7, 0x2af429a6,
			0xc1121cde, 0x6f2366e2, 0x867adbd3, 0x5afff178, 0x9b21b2ad, 0xf4c2fb45, 0x5451a166, 0x959ae28e,
			0xa38bb670, 0x70a1d104, 0x087c1377, 0xdff8259f, 0x7039fe26, 0x90c127a0, 0x60964b72, 0x3d61336b,
			0x36853206, 0xec40989b, 0xc6061032, 0xbc1a1f57, 0x06159509, 0xbc5140a2, 0x0f2c4351, 0x464193bb,
			0x4ccc6c43, 0x4c4cf125, 0xb7e1db55, 0xd1620cda, 0x320d4a99, 0x9f4e9754, 0x3da49d39, 0xea5c70f2,
			0xe3809bb3, 0xc08a3329, 0x0271116a, 0x9def0525, 0x126b429b, 0x08053f07, 0x27deae71, 0x331c6d78,
			0x2d235aef, 0x3ed79de3, 0x7da80888, 0xf2d37bee, 0xd668f77c, 0x192d24eb, 0xcb53b1d5, 0x8b0bebe0,
			0xd270a378, 0x82164056, 0x658e39ad, 0x54a2d28f, 0xcaa10d2c, 0xd994e1dd, 0x8e36ccd9, 0xdcf06236,
			0x244180fb, 0x1060eceb, 0x4c0961ac, 0xe8f5b705, 0x871a1c96, 0x1027830f, 0xeb7f0094, 0xc6ea187a,
			0xcd12c9a0, 0x24a3b9bc, 0xbd8e1801, 0x6690b046, 0xcf29733a, 0x50681e2f, 0xf3f0c89b, 0x6441b513,
			0xf5e712ce, 0xc87b65fb, 0x62f1bf9c, 0x5a5ba5d0, 0x2e51da21, 0xae1dddf1, 0x5eed1149, 0x93d7d2e6,
			0x2954be3f, 0xfca7d3d2, 0x80438898, 0xf6cbe58e, 0x9022ed13, 0x2c87b477, 0x90f20aae, 0x9b33244d,
			0xc0c274ea, 0x0109e1c7, 0xdea6faf0, 0xf571c347, 0x5f0c39f5, 0x6e1e761a, 0x79b6efc9, 0x5f433095,
			0x44ce9881, 0xef75e092, 0x1835f7bc, 0x4e986559, 0xfb3d1fa9, 0x3374a103, 0x64e4e304, 0x24082324,
			0x0120c1eb, 0x24485215, 0xce7a418a, 0x6f7217b9, 0x48beb909, 0xd871cfaa, 0x68d3084e, 0xea716b06,
			0x14244966, 0x6475dda9, 0x5e753db4, 0x8f033a78, 0x5546e330, 0x8d5ac740, 0x357475f0, 0xb85814c0,
			0xce24e96e, 0x3a238415, 0x0d633508, 0x9753d6be, 0x0d80ee59, 0x51f8e7a5, 0xbf2f952e, 0xd696644d,
			0xd689efb1, 0xa7104495, 0xbcfea2a0, 0xdfa730e3, 0x2b876ea3, 0xb1f56cd4, 0x4742eddc, 0xc4341bc8,
			0x25fa8dc3, 0xfe1505c1, 0x7e315de5, 0xcc7fcb65, 0x54152dee, 0x716e3a19, 0xa5c33a69, 0x4d33edca,
			0xc718725d, 0x7da3e639, 0x32a87d13, 0xa6838bac, 0xe8b6044c, 0x00b47d5c, 0x72d6ec49, 0x520acc7c,
			0x9b9afd03, 0xf2979058, 0x40224fb0, 0xd4d25177, 0xc3ceb6b3, 0x0ce33367, 0xbf963b97, 0xba8629a4,
			0x600f8a29, 0x438b3970, 0x6b9ed30e, 0xfc06307e, 0x538c3c13, 0xf88f1cbc, 0xfa9f0d66, 0x3bb04a8a,
			0x8606d559, 0x045bf73b, 0x87cae3fa, 0x37637f61, 0x1ec384d4, 0x46cefc7a, 0x2bab09d8, 0x6e54907f,
			0x710f66bf, 0x0fa71823, 0xb5c4fa09, 0xdec14676, 0x47ecc085, 0x5c3cbb4d, 0x4ca8a2b9, 0xab3fb592,
			0x6423ca82, 0x691e15e9, 0xb4f618d9, 0xc711cd81, 0x5060abd0, 0xd3790595, 0xcdfe108f, 0xa9921160,
			0xfd786ee8, 0x19a739b5, 0xd8d8fb34, 0x138da5b5, 0x1e6689f9, 0xbfcebae0, 0x905282d0, 0xbf66dbbc,
			0x949b7a56, 0x17c191da, 0xc5012998, 0x546ac1d8, 0x31a94700, 0x79ad374c, 0xfb439ee3, 0x4f99d7ac,
			0xae21c45f, 0x5e8d5cfe, 0xa629679b, 0xa2d5444b, 0x8fbc8f8b, 0x22df9af9, 0x03fc821a, 0x00000000,
		},
		{
			0xbeb8e639, 0x397a7be5, 0x64ac6fb6, 0x722ffc7b, 0x31505cac, 0xad4da386, 0x02f1e533, 0xfa376b5b,
			0xa323feeb, 0xe542dfd7, 0x3c174b7a, 0xcec25bcf, 0x68b09449, 0x0247374a, 0x20d30765, 0x5ac7b7d3,
			0x35d64105, 0x54222140, 0x164784cd, 0xb540f62b, 0x589f0ebc, 0x16f1df44, 0x6dacc059, 0xd44dc65e,
			0xdafe054b, 0xfffd4e92, 0xaeb9bd64, 0x522d6285, 0x7d63e439, 0x79f9f440, 0x377e0875, 0x974a7f29,
			0x1c8aa95d, 0xdf2b2f76, 0x7d55c147, 0xcbea5953, 0x458d59f5, 0xb42f2722, 0xa2f36cf4, 0xc7c27443,
			0xc50222a2, 0xf5f761b9, 0x852d940d, 0x4f6d2ff6, 0x6087b3c1, 0x0f3c496a, 0xc8b88bb5, 0x39ad3324,
			0x1cb5383a, 0x0145031a, 0xccdd1dcf, 0x7c7e5393, 0xc6820483, 0x100f3161, 0x1efed135, 0x9098552d,
			0xeee1490f, 0x95af3430, 0xec227e84, 0x05940364, 0x9fa74714, 0x06009149, 0xa9b2ce91, 0x23257e88,
			0x82aff7ac, 0x14be6dab, 0xb3bd6f4b, 0x58ca6d2d, 0xd78fb8cb, 0x389e4b86, 0x64f1659c, 0xf02c1134,
			0xdc0a67cf, 0x5d1f599d, 0xcc889942, 0x45c2fdf7, 0x1f4b130b, 0x0da68dbe, 0x81e28d86, 0xc9ec805c,
			0x9e83bf4f, 0x9749eaaa, 0x52b3a67c, 0x8b608e61, 0x145392f5, 0xb9268f87, 0x9303104e, 0x00f0b5b7,
			0x75aad4af, 0xbcfdb440, 0xb83ef28e, 0x291ad9aa, 0x36cab690, 0x86efd150, 0x78b77c1f, 0xe1116734,
			0x6999320a, 0x1e7deb5b, 0xcba35592, 0x1cf39daa, 0xd6136f1a, 0x7ff85f16, 0x2ac9caeb, 0xe645b76b,
			0xc3b30b6f, 0xb9a6910e, 0x7e8cc351, 0x2fefb867, 0x0dfd1451, 0x8e390e80, 0x93abc376, 0x4c7e047b,
			0x273a94a5, 0x64bd11b0, 0xbcd9c0ab, 0x3ddb54d3, 0x25dfe1fc, 0xc4c889a9, 0xe6968081, 0x7d5364f6,
			0x26c61fe2, 0xc7fe697c, 0xc984ab7e, 0x1d92a020, 0x477c7c62, 0x97c29904, 0x2e75543d, 0x71a60123,
			0xc743d4a4, 0x9ab376a3, 0xcee154fe, 0x49488b8d, 0x75516b29, 0x2c3f6be1, 0x9a040d4e, 0xfb101166,
			0x421df62e, 0x7b1f29d9, 0x72ac98b5, 0x796c8a55, 0xddf4a0cb, 0x8a924e44, 0x30c68283, 0xb7ab8a32,
			0x9cbc4d0d, 0x82978baf, 0xe0ee65db, 0x5271f1be, 0x0dd895a8, 0x916f7cec, 0x4fab99b7, 0xec484e11,
			0x0512b184, 0x4de7ad63, 0x2762b334, 0x7a5c0e16, 0x43dbd9d7, 0xb46ccc8d, 0x6c361307, 0xc523c847,
			0x822a34d3, 0xf3bc3089, 0x9a9d95d2, 0xe792edba, 0x1a932600, 0xfb9b81a9, 0xbca5a070, 0x04393af4,
			0x95535a79, 0x7681a0f6, 0x567faeb5, 0xddcc4008, 0xdd732fa7, 0xc86dc974, 0xcf137db7, 0x89d9cf3f,
			0x78460416, 0x21acf2ae, 0x81d700ad, 0x84e41a5d, 0xf6d75da4, 0x282d96d3, 0x102e520c, 0xd9299fef,
			0xd1d9c8f3, 0xed47859b, 0x1cfb0fcd, 0x93a6e591, 0x861e9cf7, 0x651fdad8, 0xbc8d5c90, 0x290bfbbe,
			0x0ad15dee, 0xf7d084ce, 0xaf885ad2, 0x2fb712e3, 0x87911fde, 0x5ffa04a9, 0x0f345308, 0x5c8dab1a,
			0x5def55d1, 0x8490a865, 0xc6e18add, 0x695a44fc, 0x82b2615b, 0x2d9858d5, 0xfbdc8913, 0x3c22f564,
			0x26d75d16, 0x1387ddc5, 0x4b667aa8, 0x7eb1dc61, 0xed7a54ef, 0x82e0ba4c, 0x55396d67, 0x3335ae1a,
			0xba462d8e, 0xe681478e, 0x62db4cef, 0x0f99bd58, 0xbfa67c7c, 0x51df3a7b, 0x24099796, 0x717e22aa,
			0x0ff74b6d, 0xf97f8970, 0x68286586, 0x52dc5538, 0x049e2ecb, 0xfa480793, 0xd1d54d70, 0x19fb9e72,
			0x39cfe3db, 0xd44eb538, 0x2af6d742, 0xe8475674, 0x1d816d2f, 0x60052e17, 0x20861c8d, 0x5957868a,
			0xd69dd6ee, 0x5b38b1cb, 0xa26cba8b, 0xce10ef9c, 0x318b8309, 0xb407e008, 0xae1223b7, 0xbc2b92ad,
			0x54ccc2b3, 0x61eef4f9, 0x5ed5c263, 0x950f07fd, 0x69816656, 0xc502f631, 0x0efbe114, 0xcf40e23d,
			0x27719671, 0x77aac35a, 0xeb91dbfe, 0xc123d396, 0xe1601962, 0x9f8468ed, 0x933d3295, 0x3f84b94c,
			0x13e3632f, 0x729e3c94, 0xb82b7736, 0xd4a8c569, 0x194a7e13, 0x720ee995, 0xe8f80148, 0xdcc01272,
			0x80cd0598, 0x803d3e64, 0x5dd8f64e, 0xac37d20d, 0x429f67bb, 0xa04dc740, 0xcd9a160d, 0x79f4fc5d,
			0xa22226d5, 0x3141d242, 0x405ecf9c, 0x5f6b149e, 0xe699ea85, 0xa1c862ba, 0xcab2be06, 0x012abcd6,
			0x376ff9d3, 0x1f3cca60, 0x2be04be2, 0xa6995c2c, 0xa12cbd6f, 0x419dd467, 0xea3db868, 0x8938d2ea,
			0xbaf7a608, 0xc5ee82ab, 0x0c5cab1e, 0x56cbcd82, 0x2e24459a, 0xec36a9e1, 0x46a1462b, 0xf925d76f,
			0xb1a30480, 0xc80d70f1, 0x5d143c9c, 0x50cf2b96, 0x91d2fb73, 0x419cfddf, 0x773e3759, 0xfe41412c,
			0x12910791, 0xd0b7d7db, 0x0e25c8ba, 0x2e85d9ae, 0x005d273b, 0x6bd45523, 0xd77d8487, 0x710bae65,
			0x94def16e, 0x89ddd3e7, 0xbae990fe, 0x48938ff0, 0xef481b7a, 0x5292e18a, 0xa5fe1209, 0xcfaa2bc4,
			0xcffc2e09, 0xb14e876e, 0xb232a292, 0x903c2d16, 0x054e467a, 0x4c3a92bc, 0xdc866e2d, 0x2dc86d2b,
			0x9eed89fb, 0xc26e7e57, 0x0681da56, 0x103c1ab2, 0x471f81e9, 0xfdabe475, 0x56c911ff, 0x19704a08,
			0x003f867f, 0xf2be2d93, 0xd23e6665, 0x75602156, 0x6147c15a, 0xc89ea3f8, 0xc7d123e9, 0x48f43c1c,
			0xf8269cda, 0x49e9ef0a, 0x423efe0f, 0xd13ba188, 0xcd6d8127, 0x096f3288, 0xd1d08795, 0x610dde7a,
			0xa8f9d302, 0x5d3a5208, 0x70162003, 0x5348393a, 0xce6fcf82, 0x660b72c2, 0xe7eaaaac, 0x61ae501f,
			0xbc3229f6, 0xa3c18db5, 0xa302a54b, 0x8e953e6b, 0x82df9e6d, 0x64ca7e3e, 0x9370c4a2, 0x8ff264f4,
			0x716fd0e2, 0xc7900e42, 0xf6b40bc5, 0x3543510d, 0xdceb7170, 0x4e5607fe, 0x6c89495a, 0x342bf9a5,
			0xc3c96b3a, 0x325985d7, 0x74ac3b68, 0x22726c44, 0xed88f89a, 0xf367b44f, 0xd8cd003d, 0xa87b1853,
			0x118cba6a, 0xf332040a, 0xa67bc2bc, 0xac154166, 0x3faa21fc, 0x77295f88, 0xbd85c649, 0xc6cca670,
			0x7c2a118b, 0x079915f7, 0x84da2b2f, 0x003c3ba9, 0xd15dc445, 0x2276d7cf, 0xe981dcd8, 0x006e97c5,
			0x87882210, 0xf3e1a60d, 0xbec17ab3, 0x3712b054, 0xd539be63, 0x897eecb1, 0x930426c2, 0x37161908,
			0xd1ec5cd2, 0x78a2c6b4, 0x91af9e95, 0xa2eacb3e, 0x036d1302, 0x4c83f653, 0x641d954b, 0xd43c2ba7,
			0x04b1ba38, 0xb9b89260, 0xc4214049, 0x37eb6ff7, 0xee711810, 0xd59b6617, 0x16c81aed, 0xb03c0a3f,
			0xb566c454, 0x8d851fa4, 0x8ed5f7a9, 0x52b63aa8, 0xe923b618, 0xf4e04633, 0x941ebdd5, 0x8316ac52,
			0x4f9a7282, 0xfe943928, 0x229f243d, 0xfd52243e, 0x6f869470, 0x8b7e6935, 0x44c26642, 0xb5e96173,
			0x3f7ca566, 0x3a0bc54b, 0x84a3c508, 0x964e6631, 0xad5fed28, 0x46fc36a3, 0x16c1ccc7, 0xd6f43857,
			0x73f9258c, 0xf2fed8e1, 0x2a2ce9b2, 0xf6ab9f14, 0xc282ded6, 0xef3a99bc, 0x6ff99d0f, 0x00b4446e,
			0xf8a3a561, 0x8a07bc7a, 0x6dff6b3b, 0xa140a395, 0x9496cdc7, 0x00182832, 0xe6834120, 0x951c3e10,
			0x533aeef6, 0xd081813f, 0x66a5f1f3, 0x46ccda6e, 0x557cf2a4, 0x3e309af4, 0x4016a908, 0x5de5571c,
			0xdc828b5f, 0x2fa1749b, 0x1ea8b249, 0xdc83d64c, 0xd085c40d, 0xc5268660, 0x5aade267, 0xac47e249,
			0x48fee818, 0xce3042e8, 0x5bed7af1, 0xca6ab6b7, 0xa54977fd, 0xb476e887, 0x6fd5f74d, 0x69e49624,
			0xf37e3126, 0x403d2e93, 0x48f1307f, 0x86da9a00, 0xbb97df3d, 0x887c6871, 0x46a13698, 0x501788d6,
			0x4e310138, 0x70351ec7, 0x2e81fa07, 0xe6835ff0, 0x240fa709, 0x2a15ae0e, 0xe1abe53a, 0x84712da1,
			0x47fd6d3c, 0x0ef955ec, 0xfa1e527a, 0x48eebec2, 0x18e169a8, 0x143e2135, 0x2e278d81, 0x0aa4426c,
			0xdb34b85d, 0x9a4782e3, 0xd40c8205, 0x54fc9372, 0x2d9cf7d2, 0xffcc5bd4, 0x5e69f3c8, 0xdb52fffe,
			0x0eab4978, 0x46f84302, 0x2f6ec6b8, 0x0b1c73a5, 0x981a7fd8, 0x5a7f6513, 0x8d523256, 0xb1ff2161,
			0xca32795a, 0xb1610a75, 0x6a9914ad, 0xabbc841b, 0x89ff02aa, 0x376b7e5a, 0xbb6df330, 0x27ccc029,
			0x4ec8537d, 0x24206727, 0x7768cee8, 0xd9b78880, 0xa3fa7b54, 0xb41ac20e, 0xc338f788, 0xb57d40a6,
			0xc0ba9b1f, 0x42da14d0, 0x80783e9b, 0x65308176, 0x8001a1e9, 0x59093b61, 0x921f9859, 0xe4a786a9,
			0xdd85e838, 0x82df2049, 0xb87fb60c, 0xc519c91d, 0xe5b618e2, 0xfc2284ee, 0xede4214b, 0xe813c931,
			0x31ef6612, 0x28236936, 0x310f1327, 0x4b789724, 0xc6cf4002, 0x307f5b2a, 0xd70b2f8c, 0xd3d255e7,
			0x13686b6b, 0x2d6b03c6, 0x5699ab46, 0xaf78ee4a, 0xf2024e19, 0xb8c10bf6, 0x1cd59c77, 0x1bdad59b,
			0xc4042cb6, 0x8064cad5, 0x8c398195, 0x17f467a9, 0x3f981d84, 0xc04974fc, 0x680d0e25, 0x38b1189d,
			0xd540aa72, 0x867be9e9, 0x2f53a6eb, 0x0417539d, 0x8ac27004, 0x19d46153, 0xb4b1d020, 0x5ff49f7d,
			0x94771fe5, 0xb1209d59, 0xc9575e0a, 0xfd7d36ab, 0xbec27305, 0x23b49f1a, 0xceb43d87, 0x1e1755d8,
			0x66ef879d, 0xe5cb76f3, 0x74fe4b49, 0x7591576a, 0xbc6429ef, 0x98e0888d, 0xc196cb07, 0xe00f3ddf,
			0xf8cb6f21, 0xed998bd2, 0x645b107f, 0xb1dbee1a, 0xb979bab9, 0xd5dbdabd, 0x73f0fe55, 0x00000001,
		},
		{
			0xd9875aee, 0xdd16cace, 0xaa2567cf, 0x579a5bc4, 0xe8791e87, 0xc2e2d1f6, 0x394d4af7, 0x8065d280,
			0xcd1c7909, 0xbd6d1dd0, 0x6635ee19, 0xb3d0c87b, 0xf55c2f2e, 0xb5946022, 0x90409066, 0x4b3338d6,
			0xcfe3f2f0, 0x3af95c7c, 0x9f10f338, 0x6df1e025, 0x9be2e44e, 0xc0a0c372, 0x05886cbb, 0x8af447ee,
			0x9e81b476, 0x698cc0e5, 0x7f16d888, 0xe214d4d8, 0x18695e7a, 0x90948196, 0x5a2dfbeb, 0x00449785,
			0x4624e637, 0xbe9b0908, 0xd9a3d2b9, 0x6c714f0c, 0xb0f3cc9f, 0xfce2daea, 0xd6976614, 0xc75db95a,
			0xa8b22eaa, 0xab2166a2, 0x833e813b, 0xff1504ea, 0x2db7565e, 0xa1163b78, 0x043c30dc, 0xb6f0c60c,
			0x9d574cfa, 0xa30bb25b, 0x14db19cf, 0x41a24a41, 0x23014599, 0x80be52c8, 0x73778bf4, 0x16ca3c91,
			0xb7d39b27, 0x25025ffb, 0xe853edb5, 0x9890fb6d, 0xfde30a7d, 0x43dfc277, 0x7f6c475f, 0xa394cf2a,
			0xee074a9b, 0x70f25ddb, 0xd199a5a5, 0xbdf68f51, 0xb780ac3b, 0x058667d9, 0xf295e87b, 0x023ff0ff,
			0xafc83ca3, 0x0b9c37ad, 0x49209f94, 0x4b080b06, 0x9d71254e, 0x5d0aa97f, 0xcec63c09, 0x84636e44,
			0x4f774bd9, 0xe846c303, 0x65089ce0, 0x28af9b79, 0x0d4a24c3, 0xa05e3c42, 0x23ff4bc9, 0xc11b6dce,
			0xfcbb8fae, 0x782aef1b, 0x5ca072b6, 0x1a56dd31, 0xb1050e67, 0x8404de02, 0xcf06fd0a, 0x9b7791bf,
			0xf191b458, 0xbba52a0d, 0xdbf89a08, 0x63069ea1, 0x5ec4a512, 0x2bbfc16d, 0x01f1e7e1, 0xd31369d0,
			0x97f62151, 0xb3550985, 0x38fb2604, 0xdb56658f, 0xc95427b7, 0x002d5a5f, 0xe7b23757, 0xb0c505bf,
			0x8b58a527, 0x5b8cca61, 0xde2cecad, 0xc58d084b, 0xebd397c2, 0xf834b044, 0x9acdb516, 0x87f1615a,
			0xee2e6142, 0xadb407cc, 0xb05babe9, 0x06356f47, 0xd5790d18, 0xaf863c5b, 0xa48190ac, 0x76283967,
			0xc1244d63, 0x4cffd2b1, 0x5a11e4c0, 0x41d2b570, 0x2ef6debf, 0x12a3f98f, 0xa72bdc69, 0xf3ef4ce0,
			0x2009b3c3, 0x173b5be0, 0x96c6cadf, 0x556ee980, 0x46512162, 0xcd8ff64f, 0xfc2575ca, 0x4389ff85,
			0x84714f3f, 0xed740493, 0xd0749bb9, 0xc2a50489, 0x99b6fc70, 0x2c47910a, 0x070523c9, 0x56f881ca,
			0xa67142a4, 0x48e4b244, 0x2a6ac607, 0x5aa7c60a, 0x052c71cb, 0x3dce2782, 0x4ad9dae1, 0x6d86a752,
			0xe0148290, 0xc816ae32, 0xbab0589b, 0x855b688a, 0x88bf23a1, 0xbf016e39, 0x79c4d802, 0xa5c07eec,
			0xe318bfc6, 0xc9c3d2d1, 0xe1388c04, 0xd9de90ac, 0xa17dd39e, 0x91864c33, 0xefc4dac1, 0xefd01dd4,
			0xdcc24750, 0xfebef1c3, 0x2c645d48, 0xe1ba591d, 0xf55ae128, 0x60591aab, 0xd0421421, 0x5a1fce6a,
			0x734a029b, 0x77a1f73d, 0x5a87b1e2, 0x42cdfa24, 0x14f649d2, 0xdcff2871, 0xc1f50bb2, 0x694fd0bd,
			0x82c6e7ca, 0xd23c52ad, 0x14093dbd, 0x49874151, 0x46ab714b, 0x289fe904, 0xba12da38, 0xc4c25a8a,
			0x342787e1, 0xef12af5d, 0xd7eb50bc, 0x2baf3774, 0x54652d7f, 0x052310e3, 0x2d6f37d3, 0x63aad626,
			0xeb11092d, 0x5d6ba696, 0xef84fa46, 0x230a28f9, 0xd39e0bf9, 0x749360ce, 0xc19ec913, 0x10a00425,
			0x150e5b85, 0x150b7f97, 0xe768ca05, 0x9412f3aa, 0xe4e99701, 0x91bae67d, 0xe05cd433, 0xadf90162,
			0x8dce12ff, 0xc73e422a, 0xfba3769d, 0x074b20e6, 0x082b568c, 0x31640aa6, 0xc0588331, 0x4d1f8e74,
			0x2daef4ef, 0xfa45a6f6, 0xdcbc9c6a, 0x718d1ac3, 0x51725df4, 0xc96c0dd9, 0x40da7728, 0x7cbca03c,
			0x251b21f7, 0xcb368c26, 0x777ef542, 0xe3b71b0c, 0x5bd48582, 0x4c74cbb7, 0x650b9c46, 0xf7216d39,
			0x819031f8, 0xeac871bb, 0xf85fd924, 0xa013017d, 0x1c0980f1, 0x66753123, 0x03c93c5f, 0xfdb5d4b0,
			0x6a048428, 0x046abb71, 0x8b1d3e5e, 0x322fc655, 0x893ea51a, 0x441d4d45, 0xf48aa5e8, 0xa96e76ea,
			0x3b6e7d47, 0x83734626, 0xe630d517, 0x40638af4, 0x0e6ec563, 0x56a1d103, 0xe5172db1, 0x34d41fba,
			0x303a1af7, 0x2d3de7fc, 0x2f26622e, 0x656f1b28, 0xcdf9c978, 0x08c8cd62, 0x20e50bb6, 0x5aeb0938,
			0x63432d25, 0xb8e56a02, 0x89e3013e, 0xc262a1f4, 0x22115faf, 0x1f76a212, 0x282d2ca2, 0x7716625a,
			0xcba17f1a, 0x39d5ba36, 0x4ba7407c, 0x9aff11dd, 0x2bc5effb, 0x028afde4, 0x0b781cc2, 0x80aadbb4,
			0xa2466a91, 0xc94e681a, 0x9c898b64, 0x2567ee45, 0x453dba87, 0xcf21f223, 0x2a163fb0, 0xdaeb3db4,
			0x57b86ff4, 0x26a3225c, 0x8b708363, 0x32f844e5, 0x977b935f, 0xb8484f3c, 0x19f23415, 0x607707ff,
			0xf2c3f578, 0xc281b56a, 0x4a3b5f36, 0x2362a0cd, 0xb7e7d1ce, 0xc8a13ac0, 0xf20f4e12, 0x5e50bae8,
			0xbfd3235a, 0xecd5d1b1, 0x82ecaa79, 0x64f392db, 0xa3800ad7, 0xc3909662, 0xd561fab8, 0x27a7bf24,
			0xbeebd135, 0xb42e6fd3, 0x2acea80f, 0x0efb27ee, 0xe8fe38a1, 0x6348921c, 0xec693189, 0x372f8a07,
			0xccd27fdc, 0xf03065a7, 0xf1450335, 0x3578e055, 0x558e839b, 0x57dbf575, 0x85e0ee98, 0x3f1c52c4,
			0x1bc28841, 0x48c290e7, 0x8c54b030, 0x2a23c98b, 0xcbdb230e, 0xa85381fa, 0x4bdd7c86, 0x4bbbfb67,
			0xa0c0a2aa, 0x3b55e8cb, 0x8d4ad4ae, 0xb5491d86, 0x26a1fed5, 0x11b8f29b, 0xeb64fbcd, 0x6355a7e0,
			0xe62aaec7, 0xc8f6a6c0, 0x34288d05, 0xe00d38cb, 0x1010849f, 0x0166feb5, 0xde3cd421, 0xdfaac629,
			0x1556723f, 0x2ae95883, 0xc40ea0c3, 0xdfcb2e4a, 0x5d6b7736, 0x9de5f634, 0x2f61e383, 0x2644f979,
			0x33864bea, 0x9c244297, 0xb82c2e80, 0x5a8683e6, 0x4d367ecf, 0xd178a244, 0x80c7c0f7, 0x9c96a459,
			0x80697e00, 0xfa7206cf, 0xf7f2c147, 0x20bd558c, 0x9604d40d, 0xae0b8c21, 0xc8d68a32, 0x2baecfad,
			0xb1dbd4ed, 0xddaa1c2a, 0xc76ba26f, 0x2e6c0346, 0x0b8fba6e, 0xb19f0035, 0xa8fe51f7, 0x387dbee4,
			0xec408c6c, 0xee8ad44b, 0x9a477bd9, 0x8ae61564, 0x1c869658, 0x09238844, 0xd86d72cc, 0x69e176e1,
			0xfadd9219, 0xa38f484a, 0x76289491, 0xf1dec8b3, 0x14911f22, 0xc323c5c0, 0x0fcd53a3, 0x5197ed48,
			0x62a0c01e, 0xa102b10d, 0x057c8d05, 0x84877bb6, 0xed50af86, 0x3fbb1532, 0x3658db58, 0xaf8a2d6b,
			0x3b19f745, 0x796216ed, 0x52b1997d, 0x0207ae69, 0x75bf6e2e, 0xe80d4cd5, 0x4852e4ed, 0xe616c057,
			0xcf7185da, 0xa940dd61, 0xbba200f8, 0xd62faca5, 0x93f7e273, 0xe97fa4a9, 0x3a1cabf3, 0x037d8276,
			0x4e48e3b8, 0xce80d9c8, 0x0209e551, 0xeb4bd8f6, 0xdaef71b6, 0xafbcb66e, 0x9a977457, 0x4935e5c6,
			0x0df910a6, 0xe2a82fcb, 0xb28407a5, 0x39059b29, 0x15b9ce65, 0xa93b2212, 0x9d0ac922, 0x0dacb68e,
			0x63661dd2, 0xb19bf943, 0x64fbbc6f, 0x97e81183, 0x19db212a, 0xd0b4a796, 0x1bb859bc, 0xb8e02ff2,
			0xba01ffc8, 0x79c19292, 0xb656f698, 0xb3ab3131, 0x188483af, 0x790af63d, 0x28be16af, 0xa26afb4b,
			0xa137bc5a, 0x2b0fcb9d, 0x554a3057, 0xf02d3d6b, 0x047d482b, 0xde87c0db, 0xaca40254, 0x0b0cce16,
			0xb8e5e017, 0xbb8a8109, 0xcf1e9ae2, 0xe2278366, 0xc35d39a0, 0x6da4a6b3, 0x8cc393bd, 0xb5306c4b,
			0x94b3461a, 0x0820c4eb, 0x5da581e3, 0x9ec3b42f, 0x18f272c7, 0xeefd28eb, 0x26a513b9, 0x05496949,
			0x3e99033c, 0x8e74b553, 0xaa6e0188, 0x79f0b0ca, 0x78aa46ff, 0xc2657662, 0x6159ef5b, 0x5d023048,
			0xc7171e78, 0x33f202ba, 0xfff3c4c3, 0x7ea637cc, 0x43a4fd3f, 0xdf829649, 0xdacbc767, 0xc279c05b,
			0x0ba13c70, 0x33f746a9, 0x073aa47b, 0x48c66f21, 0xefdcc1b3, 0x3b3940b8, 0xee6d66ee, 0x199bb767,
			0x458f0555, 0x67ee9285, 0x7222facd, 0x03b218a4, 0x3ccc8450, 0x7127e2fe, 0xec27c51c, 0xc9e66866,
			0xe0393065, 0x032887dc, 0x0f498dae, 0x52aaf0bb, 0x7172bdf2, 0x7bfcaf32, 0x2d4539eb, 0x8916bfc7,
			0x94cb9985, 0x32e67c42, 0xa9d2fe6f, 0x549c7856, 0xcebe5034, 0x7a02ac39, 0x982c494e, 0xafe1505a,
			0x94465572, 0x8577494a, 0x4d6fbd9f, 0xc5f1ab1d, 0x9e8d8202, 0xdf64075c, 0x9859e539, 0x8af1bc82,
			0x472d1ed6, 0x05b64fab, 0xa64f46c6, 0xbae7a5bb, 0x8f3c558b, 0xa348008a, 0x4c4f61d1, 0xffe69187,
			0xfd81e009, 0xec37c0e5, 0xab856b20, 0x4a3e290e, 0x5c7075e0, 0xba8c0a38, 0x7a3461e4, 0x98089fb0,
			0x65595b90, 0x6c3b628b, 0xc8c2f556, 0x1cf0cd5b, 0xea036c42, 0x4741facf, 0xe6aedcc3, 0xb15e6bc2,
			0x31eca914, 0x6a5135f5, 0x8bf9d728, 0x31f91d00, 0xce437355, 0x79fbfd9a, 0x7c88db06, 0x426a7d10,
			0x9c7b9768, 0x59435895, 0x354e2798, 0x433b92f4, 0xe38979fd, 0x26d7f81b, 0x34cabd0d, 0x6bc95679,
			0x25e15374, 0x03149b62, 0x9b04d82c, 0x68544168, 0xead70ecf, 0x9fbb8232, 0x9eaa30b3, 0x2061d0bf,
			0x569b8211, 0xea8eb128, 0x886bacd5, 0x0863f6f7, 0xe6dcf7da, 0x877296c5, 0x8c6e48bb, 0x4e9d60cd,
			0x88bd3c6e, 0x53bc45ee, 0x09c2db79, 0x4a667de7, 0x271707c8, 0x70716d9f, 0x71ed797a, 0xe5ad803e,
			0xae16e18c, 0xa390adf7, 0x9ba14abd, 0xb261ef34, 0x1d800507, 0x8c49c9c8, 0x5d46fac7, 0x00000001,
		},
	},
	{
		{
			0xf93fedea, 0x8ec164d8, 0x897febc9, 0x87259957, 0x1e05ad5a, 0x05259951, 0x96acdb0d, 0xf8478c79,
			0x9d86fc33, 0xc9949072, 0x401e02cf, 0x99a2c374, 0x025363b6, 0xb902f6a4, 0x911a4da0, 0x79225f60,
			0xf9fb61a9, 0xfbfa98ef, 0x71078958, 0x3efda691, 0xe05159fe, 0xf25e541a, 0xdef99198, 0x9286f1f9,
			0x29cc10a6, 0xce11bce7, 0x8c6f45f1, 0x31ee97a5, 0x2783decd, 0x07b9ad94, 0xaddeb42c, 0x3f6ce683,
			0x89bd9f3a, 0x64475340, 0xe627dbf5, 0x3f824057, 0xe2b7e230, 0x9318115a, 0xc4615f3a, 0x73241c28,
			0xebc3c016, 0x5248786b, 0x48c4d999, 0xcf590b39, 0x2616f9c2, 0x56110526, 0x77f53d16, 0x238dae47,
			0x49ef98de, 0x97dbeadd, 0x492864aa, 0xde2a3a89, 0xe93fd27d, 0x5bccbb96, 0xeac42522, 0x16a6735d,
			0xe3ef3e84, 0x00d6e8ca, 0x0ee2bdaa, 0x822d4118, 0x3f5886d1, 0x66e41567, 0x75b8de5f, 0x1cbe8f63,
			0x798e93a3, 0x7b4f2597, 0x21c9d4db, 0xffc8678e, 0xd93840e2, 0x244ca992, 0xf8709255, 0x6e424303,
			0xfd367ef3, 0xa8bf90d5, 0xef483c80, 0x287e4105, 0x78c91e8a, 0x03748a66, 0x3fa7b4d2, 0x362f36e4,
			0x9fb2782d, 0x4df0565b, 0xb4b7e90a, 0x4d0c3f0c, 0x54e0e116, 0xad629360, 0xf6a9b7e2, 0x98b27d1c,
			0xb1a7ad1c, 0x56a06976, 0x4e0aac4c, 0x53e9a174, 0x2742be17, 0x9a1e5453, 0x4efde32c, 0x7cfbacf5,
			0xd923b7e8, 0x20f0c3a1, 0x12a14258, 0x4aeacf20, 0x66196ca9, 0xe0cbe0b3, 0xb77ddb7d, 0x59e3b670,
			0xd7d7adcd, 0x5a90b171, 0x46d10515, 0x04bf2f66, 0x785a587e, 0x4f509d2c, 0x8e68b9ee, 0xb223c317,
			0x852eaeaa, 0x6530bf24, 0x5aa427b6, 0x1044ae99, 0x80358aec, 0x38cf087b, 0xd669d41e, 0x940b5b92,
			0x182b04c4, 0x14aa32e0, 0xd372d48d, 0x5134f5d0, 0x61648f4c, 0x7597ded1, 0x1a166b37, 0x22f236bf,
			0xb83db724, 0xcc9666f3, 0xdfeeb98d, 0x3a540f61, 0x63852156, 0x309db6be, 0x22dcbbd6, 0xee63733d,
			0x40177189, 0x65ea578a, 0xf70ab13a, 0x1255db4b, 0x35e2cb50, 0xf95edf14, 0xc44663bc, 0x10adaa6f,
			0x4a406668, 0x68e70583, 0x9a7ecc73, 0xdf69a598, 0x3bfe1e43, 0x5d673ff2, 0xca9bbffc, 0x433b49e6,
			0xf667b1a4, 0x7103c34e, 0xdc60b075, 0x9281d9ea, 0x95b75725, 0xdfe14dd8, 0x06c8c159, 0xca7d2ebe,
			0xbdc44d22, 0xf7e76f9b, 0x5c3fd0f3, 0x430985ca, 0xdc74e9bf, 0x61b35f1f, 0x09bdb478, 0xe3110302,
			0x90db27da, 0xc40fc690, 0x1724a12a, 0xfb6feb41, 0x5d5a5e0a, 0xcebf2dd6, 0xa2729e8e, 0xa73ef6ad,
			0x6a3e74af, 0xa1c96da1, 0xac635078, 0x282a5e1f, 0x8b48c4b0, 0xea77a44b, 0xfe9521df, 0x0ab19619,
			0x92af084f, 0x08c63fe7, 0xe6611c2b, 0x78848bbe, 0x220a1562, 0xa949ae44, 0x8358114b, 0x742126f9,
			0x1469a8d6, 0xc0510cfd, 0xf0d8e286, 0x90d28a7f, 0xd07b0e97, 0x9268ed32, 0xdee73715, 0x26d52233,
			0xda6e4279, 0x77459222, 0x2b9939d6, 0x820c9e76, 0xebb4bfb1, 0xdb30bcfb, 0x47d1ae89, 0xd239ca8e,
			0x71c11055, 0xe65b2b09, 0xac663eb3, 0xac9685e6, 0x3ecd5ba0, 0xa082730e, 0x13b9886a, 0xab5dc30e,
			0x723f7c07, 0x4fc5d5de, 0x6393024e, 0x6730e243, 0x8827085f, 0x6bb0500d, 0x15ff336a, 0x97b52133,
			0xc8ed0aaf, 0xde5371e5, 0xe4f68e92, 0x440bfa4f, 0x3ff304b5, 0x2ec1187c, 0xfb966c69, 0x1209f5d7,
			0xb2704eab, 0xf8c5eca2, 0x0df5c9fb, 0xa09cea21, 0xcc091da4, 0xc8634104, 0xd07e8961, 0xc7335b63,
			0xfed99fc0, 0xb71b4ff2, 0x9f8b0574, 0x6ce25d23, 0x161f8344, 0x07e8dc28, 0x4db10cb8, 0x3c383331,
			0x51cba93f, 0xb1f53d5d, 0x576c433a, 0x1525cd29, 0x8108bd5d, 0x383e5467, 0xd86c7bee, 0x8198d33b,
			0x3e63d4d0, 0x6b66c7ae, 0xabc6d31b, 0x5ecbc59a, 0x85cc035c, 0xf6d31005, 0x6d3d1097, 0xaf53e1e7,
			0x9cf09f1e, 0x2451660c, 0x3592d705, 0xc90be3e8, 0xfe4bc23a, 0xb02f3356, 0xbc1e23c9, 0xf9cf3ce1,
			0xab5362a3, 0x87b58397, 0x0c364122, 0x05296b45, 0x6dcea726, 0x6a64adcd, 0x5137d2cd, 0x252435e7,
			0xb74933a6, 0x562f1859, 0x9c7e0903, 0xbae80203, 0xe321c26f, 0x1a3028b5, 0x5679d57c, 0x2731180f,
			0xd98cd942, 0x055f640e, 0x3c779390, 0x535c806d, 0x79342eb9, 0x1836c8d2, 0x2f7d4c0e, 0x3c76d73c,
			0x57b8af37, 0xbaea7372, 0x2cb314cc, 0x61a48d18, 0x38780350, 0xb54e1ce9, 0x175934be, 0x48d126ef,
			0x355f346a, 0x39a75b98, 0x76f1d09e, 0xc0c93d3d, 0xccaee3c4, 0xe35713e6, 0x02fc58f5, 0xf540639f,
			0x2bc21989, 0x8b89607f, 0x51ef7944, 0xce349b37, 0xdc483480, 0x0a7675f2, 0x70d2e2e0, 0xf6a63c50,
			0x2aaa542d, 0x574a8dbe, 0x8a536afa, 0x7a4c68bb, 0xa360803b, 0xc32b67f0, 0x3eb0b6c6, 0x4f46c256,
			0xc35160ae, 0x02278758, 0xa88802b2, 0xb12633c2, 0xee9eea42, 0x195b7e2f, 0xbff617f4, 0xeb2e6cac,
			0x41a576c1, 0x88896201, 0xed91553c, 0xa856ba86, 0x04858aa9, 0x4cbc1ed7, 0x001c06c5, 0xd8049d7c,
			0x61b27662, 0xc939fd62, 0xeaf4c277, 0x2f69acf6, 0xc988edf9, 0x683ba5dd, 0xf66a91b7, 0x27196034,
			0x8213b38d, 0xec44a659, 0x1596d814, 0xd9b3f09a, 0x76caa0a2, 0xe4bed760, 0x45f3810c, 0x53282738,
			0xf9037cfa, 0xa0be4324, 0x64604342, 0xe02d9d3c, 0x523b6dae, 0xa67db17a, 0x4ae445b9, 0xb5cc7c2d,
			0xc1156d24, 0xdfab3cf0, 0xd2591845, 0x6e41afff, 0xb12d237f, 0xd479412f, 0xbca2546a, 0x15cb8b8a,
			0xe46eaf6a, 0xd5c7b6c7, 0x2ff0f6e8, 0x3c7fb86b, 0x2036e582, 0x8c08e98a, 0x0865d7f3, 0x4dd8d869,
			0x19ef6feb, 0x04dc0a4e, 0x61d9859d, 0xa13d0df3, 0xa46376b4, 0xc2b4afe3, 0xcb145aaf, 0x797b1b71,
			0xc9165b65, 0x170751fe, 0xbe84a2a3, 0x6d090978, 0xf5aecf61, 0x8300175a, 0xc17daa50, 0x9c9b34db,
			0x526eb742, 0x836b4728, 0xd4a1f000, 0xab26390c, 0x1c98f958, 0x01ddfa86, 0x66d007da, 0x67e14e7d,
			0x25329c93, 0x2add7f2e, 0x384e457c, 0x235ad6a9, 0x8154f85f, 0x8728bc3d, 0xd0f4e401, 0xf93dea0d,
			0x7b62b34d, 0xe1022f69, 0x59b934de, 0x4fe58493, 0xe2285577, 0xdeda5c47, 0x279bf378, 0x36b27eb3,
			0xef37f732, 0x6ded7cf6, 0xf764c08b, 0x68ec6b73, 0x310b4bd6, 0x35c8bebd, 0xb6dfefb9, 0xd5a16acb,
			0x37594895, 0x3bacde9f, 0x412691b9, 0x5315c04e, 0x054cbca0, 0x66f525c8, 0x754e0ba4, 0xd0f4cda3,
			0xed41d661, 0x2ace0c4b, 0x1a10d4b4, 0xd8372008, 0xb6302e89, 0x04064421, 0x42c30708, 0xbd73b209,
			0x70d2f747, 0x47d75543, 0xf10124fb, 0xf4c782be, 0x0ec210b9, 0xbc127f33, 0xc4216611, 0x635a1b45,
			0xfb2b4be1, 0xda02983a, 0xef4ec924, 0x9627a801, 0x2aef7c5e, 0x8b781e90, 0x147230cc, 0xc1acc002,
			0xd347cd6a, 0x9226a4de, 0x51713ddc, 0xbb0874a2, 0x6fb69ccf, 0x7bad4e86, 0x6bd593fb, 0x1b22e9de,
			0x10e41521, 0xd6dba230, 0x1b063db9, 0x38b99209, 0x4f3c1afc, 0xe99b3991, 0x68aee2ba, 0x4251b52e,
			0xabd5304b, 0x35329bf9, 0x47cdb50a, 0xe44bccc6, 0x57fb72dc, 0x952a833d, 0xe071aab5, 0xe647184e,
			0x905c6c78, 0x53bbfb7b, 0x7cfeda25, 0x8e69b9c4, 0x5bbe738a, 0x31aa13a9, 0x2e90c761, 0x35663ccd,
			0x98670b67, 0x72075e27, 0x59522209, 0xa574cbed, 0xe26dac6d, 0xbc22eb5a, 0xdeb17de5, 0xdc33d255,
			0x05e5ee96, 0x03f431a3, 0x3af09fa4, 0xc274c5a1, 0x135a6d88, 0x9d89aa11, 0x6c4b2eec, 0xca24a1f2,
			0xdcf5e2ca, 0xe9161226, 0x43802114, 0x48ff6c36, 0xbb651b7a, 0x31451df2, 0x938c4862, 0x25aca2b2,
			0xf53fe018, 0x4269a175, 0xc53586f9, 0xcd506c1c, 0xa2f75585, 0xb6ff8c5d, 0x2fd18d37, 0x4855d9b4,
			0xcb8a1136, 0xf7324008, 0x83886f3d, 0x1affa018, 0xd215895f, 0xb4cbb5de, 0x368217b1, 0x9e147b7b,
			0x32d3a5da, 0x37e3be5c, 0xd6293055, 0x1dedeaa7, 0x154c3dc3, 0x8de6eec0, 0x7a6febaf, 0xd38445ec,
			0xb7accb21, 0xd053e6cf, 0xb8cc2dd9, 0x44974112, 0x1114ef4d, 0x6cafba77, 0xdbff2e32, 0x070b9a9c,
			0xd7d8cefc, 0x3aaccccc, 0x6a836ac9, 0xd8c75f3f, 0x26f9d946, 0xecabd1b4, 0xd0c7c755, 0xe4f2b4ad,
			0x02c4b564, 0x7deb3036, 0x97181d20, 0x08fc22f7, 0x255fb09b, 0x49f0cf03, 0x60e86503, 0xb396b2ab,
			0xa12081d4, 0x682233b3, 0x86976cdb, 0xc6448800, 0xaafeabcc, 0xf9831ccb, 0x8b58c9bf, 0xa745add3,
			0xaf098daa, 0xecd684fd, 0x0aa42aa9, 0xececfb50, 0x9db3496b, 0xd615f511, 0xe5f511c5, 0xec683351,
			0x8f96289f, 0xd8ad0df7, 0xb9432007, 0x73e4c40a, 0xba9aa7af, 0x16fceae0, 0x7868c174, 0x8b77ff6b,
			0xc7766d53, 0xdb0a413c, 0x228f1181, 0xf386fe90, 0xb0cdd04c, 0xc35166ae, 0x3a475bfa, 0xe4293313,
			0x54cd1ab1, 0xcb65e19d, 0xc03df913, 0x79989fdc, 0xec83cb41, 0x6f3f024b, 0xfcaf095a, 0xcd1dd00a,
			0xfcf3832b, 0xbe016002, 0x2265899a, 0x4fd9a0ae, 0xe9d8a1a6, 0x7635d0c3, 0x4acac2b1, 0x25da3c5c,
			0x81e7106a, 0xd6777e23, 0x1da84514, 0x71bec6ee, 0xbdc61c48, 0x9b2b0bc8, 0x92bdff27, 0x00000001,
		},
		{
			0xe8477b2e, 0x32431aa1, 0xe43d959c, 0xbbed33a8, 0xaca96661, 0xe4b43b03, 0xd8c05c01, 0xba101930,
			0x324184b6, 0x73424a98, 0xa9cfda7f, 0x4e66f914, 0x474c747b, 0xef512eab, 0xfda28b4d, 0x5079c625,
			0xa9895b16, 0x7ed16ded, 0x9b555244, 0x200c7903, 0xd24f9c70, 0x38edc5e7, 0x1018073b, 0x36b4a6d1,
			0xb877e175, 0x90b1ca42, 0x36ffcdac, 0xc53894a9, 0x2accf0d7, 0x5a91ca78, 0xb97bd2df, 0xb18a6d9f,
			0xb45ca325, 0x44db5197, 0xcd6d1da4, 0x7af1412c, 0x7aea3b72, 0x8ff6bf07, 0x98147018, 0x36d8f963,
			0x9f41b54f, 0x731e135c, 0xd928f33c, 0x2b08dbb7, 0x69235795, 0xff075cd4, 0x82bbfc38, 0xa4011121,
			0x49b41731, 0x04cc4330, 0x83446681, 0x64fdf836, 0x6703a8c8, 0x86ec067b, 0xcdb91ac9, 0x5b335434,
			0xa40c8a37, 0xeb3769e6, 0x1092d1f8, 0x96963a3d, 0xafa7adb1, 0x75243774, 0x80172213, 0x4b3e3665,
			0x372da3f6, 0x8aaeeeae, 0x4a23f790, 0xeda7e25c, 0x41c3ae14, 0xbf5b0929, 0x7f2b1388, 0x8eaa5996,
			0x85a19bec, 0x3416afb1, 0x21197454, 0x57c65626, 0xe15e05d8, 0xc84d8c88, 0x79fbea66, 0x6053ef0d,
			0x422b9cf1, 0xbb58608c, 0x56767dec, 0xea688065, 0x30be70ac, 0x0cfff6a3, 0xa0d9a1fd, 0xb0403f9d,
			0x31eb6eb4, 0x5d95838b, 0x715ccd50, 0x88ea443b, 0xa5940880, 0x65be37f3, 0xd36b2223, 0xee797e5c,
			0x92072316, 0x1d4c735c, 0x9f4726b9, 0x91475611, 0x080dff26, 0xb1571264, 0x5fb1232e, 0xa00f4fb6,
			0xbc2c365d, 0xe67f69a4, 0xdaa1882a, 0x0db23997, 0x68963c9c, 0x1ba49abf, 0xa577b6c1, 0x28c893fa,
			0x0753ccc6, 0xe0f82ba4, 0x4869abcf, 0x105f6553, 0x45ff25a5, 0x95edc766, 0xbad4cb1c, 0xe2780e93,
			0x524f3b91, 0x6fabb598, 0xda50c6f2, 0x9e3dcef7, 0x78bd6e3f, 0x2a0556fa, 0xdecbd76b, 0xd0f09a50,
			0x1dfacad1, 0xdd89f92c, 0xe94ed3ba, 0x4561c9dc, 0xe3622c5e, 0x785ffac4, 0x0aa628ea, 0x9bb6f601,
			0xe1fe0509, 0xa14edd80, 0xe3e6b9e7, 0xe2155c92, 0xa02af33a, 0x3e696e0b, 0x2ce4b943, 0x4a9b3bef,
			0x23fa2e9e, 0x2e6e270d, 0x66370f25, 0x5340f390, 0x622055db, 0xa0d665d1, 0x2eec3a11, 0x26765348,
			0x0408ab30, 0xfdf486a4, 0xfc8c9864, 0x15e10c5b, 0x1efaa1fb, 0x06548592, 0xd444491e, 0x7a0160ed,
			0xdf5d8c03, 0xf7727c49, 0x487cd1de, 0xe1adf0c1, 0x8909d4bd, 0x90f2cbb3, 0x7a497be9, 0xa7b2c8b5,
			0x77b3f48d, 0x5375c940, 0x53e8f855, 0xca7a5cc7, 0xe7af7be2, 0xfd7b7871, 0x1a0d1978, 0x276b3053,
			0x9f64e3d9, 0x6202dc07, 0xaeb6b140, 0x8491dfec, 0xd7584383, 0x38d9c7db, 0xf49ad8b5, 0x450a5f19,
			0x497849ac, 0x1a2e4867, 0x1d59e70a, 0xb6d92a35, 0x045aaa07, 0xbcd99e35, 0x5adda458, 0x26537b7e,
			0x2763645b, 0x4d3b5024, 0x59e59fce, 0xcd7d929a, 0x6411e492, 0x49a468ab, 0x71c22f66, 0x1f45ec26,
			0xfdb90883, 0x0711707e, 0x539ca67f, 0x43bcdf98, 0x70be3edb, 0x7d78745b, 0x4e61da09, 0x7b3807f5,
			0x484e05cd, 0x98f533e2, 0xfc65d910, 0x6843cfa6, 0x0a2d92bb, 0x7136152f, 0x782e6f8b, 0xf04f2212,
			0x69398cc2, 0xc55126b6, 0x0f5b61b1, 0x63851659, 0x3dd6b72a, 0x61b03cc1, 0xf5daef42, 0x8449eea9,
			0x6c8c9a07, 0xa063bf96, 0x1e75ac6f, 0xce080477, 0x2bc858b9, 0x1a04b33f, 0x966303a9, 0x89334bd7,
			0x66cdc5ef, 0x891d8e0b, 0xb4e47449, 0xde2b313f, 0x9e3be125, 0x23995de6, 0x39571e86, 0x91e3d691,
			0xc1bc2764, 0x8f523f08, 0x81a852d6, 0xab14f112, 0xbeefbb63, 0xe90c418d, 0x2a8d8288, 0xbb8fcc80,
			0x52f78f5b, 0x4f9d5b82, 0xe660ff4c, 0x58c77103, 0x5d93e7ea, 0xbac489b7, 0x2c24d0c3, 0x0d7b654f,
			0x9f9966e5, 0x050ac0da, 0xe2273941, 0x8f6d054c, 0x7e01f039, 0x33b3f02b, 0x17eb795b, 0x8c73b2dc,
			0x521a6601, 0xcfc4359b, 0x7c43d47c, 0x7893152a, 0xa7c87582, 0x7bd4dd20, 0x032ae582, 0x8fdad6df,
			0xa5553b1d, 0x2e660e96, 0x6cbbafc4, 0xa73ce5d4, 0x87f3a8da, 0x7131a5a0, 0xcf22e3e4, 0xdfa3d3ad,
			0xd37b40c9, 0xcc318117, 0x5a7f57eb, 0x40fe7e9e, 0x2e1a2511, 0xb7295bec, 0x537392e6, 0xa4206fcb,
			0xe5755f65, 0xa3ea1909, 0xaf0680c7, 0xd5529133, 0x7e0e02c3, 0x1195bb65, 0xaa9b7a77, 0xc43db97c,
			0x92e4597f, 0x742f8c29, 0x66158ec2, 0x85fc5f65, 0x91ab14f3, 0xc88b7aa3, 0x8676ad01, 0x09b14eec,
			0x275ebb1f, 0x45b34a31, 0x8247bf63, 0x4585a0c3, 0xf0d3f8f0, 0x4e113464, 0xa2220613, 0xad8eac75,
			0xc1a6dcfd, 0xca407d99, 0x3b728abb, 0x3a7d4017, 0xb21a868b, 0xe2803767, 0x87df2c19, 0x177693e9,
			0x16271156, 0xedb35c86, 0x09cc7493, 0xb3d07869, 0x8b5d5242, 0xe348668a, 0x1cbd9104, 0xb1bc1f7b,
			0x8059859b, 0x4ad7a879, 0x0f82fc0e, 0x11ef7219, 0xd32a456a, 0xc02a1d6d, 0xa0740f21, 0x23b86d9d,
			0x3e9218d4, 0xd7f41599, 0x3374b29f, 0x25615588, 0xece40a03, 0x093738c4, 0x7092187a, 0xf5eb07cd,
			0x916d3b7a, 0xcf03ce3e, 0x736fd86e, 0x0a62db96, 0x275ca25e, 0xb46fcc25, 0x19694bdb, 0x4341ed65,
			0xfeae721b, 0x0aacee62, 0x76be5b62, 0x3589d4a6, 0xaef4292a, 0xaa0d693f, 0xc0177594, 0x7e052b37,
			0x1954e464, 0x661565c7, 0x760803d3, 0x16ec0afc, 0x39aed425, 0x8e35487c, 0xddbf4cb7, 0x56c08a6e,
			0x1a4ea6db, 0xd67756f7, 0x620fe517, 0x017824e5, 0x69e11fb8, 0x3f2025ff, 0x3c92e94e, 0x85a5e577,
			0x320482c3, 0xe70c9b50, 0x084d1c62, 0xd9b1abf9, 0xddc8f8bc, 0xbbdef5a0, 0x616356b4, 0x20cd5bfe,
			0xa90e5091, 0x0d88d213, 0x8b791a67, 0x8cacc2f2, 0x7c3b79aa, 0x55553937, 0xc82e522c, 0x64db1580,
			0x8fa5b1a5, 0x38d8e9dd, 0x31ecd01e, 0x7bced360, 0x517da95c, 0x2bbbd2ac, 0xe68c6084, 0xb4b8708c,
			0x4708d4a7, 0x7d5a8053, 0x606c59de, 0xe5b27b2c, 0x964bde9e, 0xe792a955, 0x11d09f1d, 0xf7a367c0,
			0x261336be, 0xf5776425, 0x1d9c3fb8, 0x4d9b0e7b, 0x1f6ee5a8, 0xb2a40c93, 0x2af9a445, 0x32d9008a,
			0xf467e5fc, 0x70bdb0f7, 0x7f1472b8, 0xc4aaa1d2, 0xcac1e622, 0x86711e15, 0xb0827d4e, 0x7012e362,
			0xc0b2c246, 0x2715f4af, 0x6be33e95, 0xd47349c4, 0x90860a87, 0x73cac77b, 0x126b4b78, 0x9e4cc429,
			0x1a403f56, 0xd88fe58c, 0xc220938d, 0x4243bed7, 0x7f8f6a24, 0xae8e4655, 0x761730ce, 0x50066b4b,
			0x75aaae42, 0x865089a8, 0xa8e4a2e5, 0x32c95493, 0xb75485b7, 0xb4291e45, 0x20aeeb60, 0x9e42a428,
			0x613e6ada, 0x5a2cdad8, 0xb4d968c3, 0xba4a5753, 0xf714c809, 0x360b814b, 0xd913dbd6, 0x4840e41a,
			0x262f9d62, 0x1666f0ba, 0x1717c707, 0x3663bfd8, 0x3adc139d, 0xd27fbabc, 0x2fce83cd, 0xacff4cda,
			0xf8ccbc56, 0xadd2c46b, 0x2ed5925a, 0x661a5289, 0xb5be1e67, 0x0a056ada, 0x76247613, 0x2bcab86b,
			0x480e022f, 0xf984bd12, 0x1be739e0, 0xc797f8b8, 0xa630dc85, 0x0d6c3418, 0x5bbd48ea, 0x8d9f558d,
			0x525c7a8c, 0xef350635, 0x4f068bd7, 0x09057c15, 0xbd88139b, 0xc4ca8f01, 0xcd7198f5, 0x1e1b5d60,
			0xa35f0c02, 0x55dc32cb, 0xd4842320, 0x7bca7c0e, 0x61d40499, 0x58603b25, 0x93a2d45b, 0x0af84776,
			0x28c7e61a, 0x952d7ec1, 0xf390e559, 0x25f62b83, 0x6ac3b059, 0xefcb9219, 0xad782533, 0x4bfcb874,
			0xf192ac06, 0x1da316ea, 0x661efb21, 0xe421964b, 0x6286e174, 0x9b3141bf, 0x836c4764, 0x3fe4b96b,
			0x61ebab73, 0x8cda8a0a, 0x0a22dd3b, 0x68ae32b4, 0xa39e99ed, 0x946a38d8, 0x8bef2da1, 0xac01a64b,
			0x2cab89c5, 0x7460d292, 0x08869381, 0xe9e18b02, 0xa68abda2, 0x4ff82279, 0xf3b2c315, 0xe8593c78,
			0x63107f87, 0xf1954f18, 0xba7c1da5, 0xd4443c28, 0x8c32682c, 0x655a0601, 0x8e88d903, 0x12cfb986,
			0xe13fa8e5, 0x02793a07, 0x4d0aa07b, 0xd802847d, 0xcecd701a, 0xb5baf526, 0x9c09a085, 0x7110a620,
			0x07707318, 0xc81a70a4, 0x3e862dfc, 0x25442220, 0x84a9cbdd, 0x9ed250fc, 0xf8bbf53e, 0xbfd0998f,
			0xe4ba4e5b, 0x892eef7d, 0x02b5e4bd, 0x54ef0b0e, 0xbcaa30d8, 0x69fb51a2, 0x9d5c20d8, 0x80e5b2d7,
			0xfd0860d1, 0x08dc927b, 0x120d27bf, 0x4801805d, 0xc652d3ca, 0xcb8de28a, 0xab052a5c, 0xa4c9ce65,
			0x8c23f299, 0x14cadb9c, 0x88f9a037, 0xd15db0cf, 0xa9d2b384, 0x5a5045c5, 0x0f604575, 0x6cdc29d9,
			0x10966456, 0x3e32ed3a, 0x4954afcb, 0xac24c5b7, 0x96c88e14, 0xff3ad76d, 0x4199c490, 0xc480811e,
			0x6af7564c, 0x4b94e793, 0x51ef94ea, 0x70c5ae38, 0x7c5e70b9, 0x19aa7434, 0x0b97c743, 0x45bd348b,
			0x6c5ace32, 0xcdefc43c, 0x8a0b6bf0, 0x6b8f760f, 0xb09e765e, 0x47c24ffb, 0xb7979a13, 0xf8830c99,
			0xf5f4d39e, 0xf310a77a, 0x38c61844, 0x35cf9c2d, 0x36ab9696, 0xb5616e08, 0x83022da3, 0xd4bab03c,
			0x266c0f16, 0xb1d01128, 0x85455489, 0x75fa3548, 0x28c755f3, 0xe0de9387, 0x0db61da3, 0xae26671c,
			0xf9eedf68, 0x0dcdf4eb, 0xb378f416, 0xcf0b62cd, 0x3874341e, 0xb108b94e, 0xd01cb606, 0x00000001,
		},
		{
			0x61a6173c, 0x7443578b, 0x2a11550d, 0x205e2ed4, 0xf5f68371, 0x4f9ae666, 0x6736869d, 0x8a11f01b,
			0x7844e766, 0x9161472e, 0x735c7949, 0x756e1eb6, 0xbbe885c6, 0x8a570501, 0xd61a7f02, 0xa95c31c2,
			0x994e1d54, 0x35434d3d, 0xf1339595, 0xfc23525c, 0x6f394b5f, 0x26fbf505, 0x4e3e1081, 0xe56ebcb7,
			0x6bf1f530, 0xb7051e60, 0x217691f6, 0x6fed30ed, 0x76b11b1c, 0xb47a964a, 0x6d1b1f30, 0x4966b716,
			0xc83ee20a, 0x965098cd, 0xe4f44cc5, 0x1985a3da, 0xe0f6944c, 0x06c36865, 0x54e369a2, 0xe7d4b44b,
			0xdccf7d9b, 0xad4e6e3d, 0xf87bb895, 0xef32c586, 0xa7361d01, 0xae568550, 0x0e7c6f64, 0x6cfee1e2,
			0xd9885d97, 0xf11be7e8, 0x40a3d998, 0xd730a580, 0x528e0b5b, 0xec8e8e0b, 0xadbaee83, 0xfa42e4f1,
			0xb427b85f, 0xdec41cea, 0x9ad3fa84, 0x4c5c42a7, 0x788c8fc1, 0x4ecf9ff5, 0xa5cac04d, 0x9f88ca0c,
			0xfa8d16e0, 0x10a53428, 0x9758470d, 0x9bf27730, 0x219b8918, 0x882c615e, 0x222b17b8, 0x5d079f2f,
			0xc24f410b, 0xb3637523, 0x2b94ed3a, 0xa7f028f6, 0x6402baa9, 0x268a11a3, 0xebfcb286, 0x7bcfa0a1,
			0x5f7a19c0, 0x742b9c2a, 0xf7a948ec, 0xd5805204, 0x046214d2, 0x76727f97, 0xe72e7743, 0x736e46df,
			0xa6584c15, 0x4fac96d0, 0x12530567, 0xc8591a39, 0x7ff43a3a, 0xbab095b0, 0xef80b9f8, 0x6ace48bf,
			0xff622dd7, 0x011c0e1e, 0xba89e39a, 0x7a0ba879, 0x60fc3927, 0xaa82615c, 0xf6150719, 0x114a040f,
			0x02d5b990, 0x1e06842a, 0x5307fc8a, 0x2e01c23f, 0x5af91c53, 0x00f040f8, 0xeedee780, 0x8e9d3ab6,
			0x69bbd954, 0x61b32773, 0xc95406c1, 0xf0c9ab57, 0x60ca131e, 0x5185da39, 0x3115558b, 0xf3fc23d3,
			0x4337c5cb, 0xc325946f, 0x05f2725f, 0x1c0b802a, 0x1715c961, 0x0ed883d7, 0x4570e332, 0xdd8bc827,
			0xcb8425a0, 0x903d87e9, 0x605c203d, 0x60cd81e7, 0xe927d351, 0x0a17d4b3, 0x5c96f30c, 0xd9cc6e5a,
			0x84e2a6dc, 0x24d2b298, 0x3e36adfa, 0x2f190884, 0x24cc7cc4, 0x4686ee43, 0x437d7f51, 0xabda9394,
			0x69746e62, 0x684d65fc, 0xc24f15e7, 0xbc2cec9b, 0x978bd010, 0xd8880f28, 0xdacf7d8b, 0xa9c7a275,
			0xde0a5434, 0x4177db7a, 0x55774c4b, 0x00ff5da9, 0xcbb18689, 0x8ce16ad2, 0xbea467fc, 0x37ba8782,
			0x91e23cd5, 0xb7689293, 0xc84166fb, 0x25027c79, 0xdb76845b, 0x15daca0c, 0xe0ab0804, 0xb6eb136c,
			0x83c64f92, 0x0b0fe4d9, 0xf97b694a, 0xfd043ea9, 0xa7f5e8d2, 0x278c87c1, 0xad197489, 0xd150d707,
			0xb143fded, 0x4854794c, 0x1e5b67e7, 0xc0329283, 0xff111e7f, 0x0dd2f113, 0xf7d794db, 0x87b62488,
			0x2fd5a76b, 0xbb8cd925, 0x005346c3, 0x0f8412a7, 0xca885a0f, 0xff3e1e7b, 0xa75079b4, 0x9a9caaba,
			0x001b5ed1, 0xb416efcf, 0x2ad0ad8b, 0xbf9595c4, 0x28ab6d5c, 0x116a25d2, 0x243355a9, 0x190edc02,
			0x2d090f03, 0xb6c5fe92, 0xedf83351, 0x984b6c19, 0x35ad89e4, 0x1ae8bddb, 0xb89547a8, 0x3c1485de,
			0x62a849cc, 0xd1b1f87d, 0xae44ffbc, 0x50bbe09d, 0xddf9cd82, 0xb5f8f044, 0x476d9e2d, 0xfc7f1252,
			0xc1ee04e2, 0xf2343905, 0x1760fe84, 0x6505dde7, 0xa706bb87, 0xe9665d99, 0x872ede80, 0x2fb442d2,
			0x3c2e101e, 0xe984d53c, 0x7e2ff392, 0xc6e348bf, 0xe2e9fe3d, 0x62adccef, 0x6ba6aa86, 0x7c79365d,
			0x3b5d4ff6, 0x6c150264, 0x1050b327, 0x50927e60, 0xddccc2fb, 0xbdc875b1, 0xc8297664, 0x80873b0e,
			0x114c396c, 0x43004c5f, 0x56cd748a, 0x71d735b8, 0x4bde4ad0, 0xf41f0647, 0x362f109b, 0xd0886143,
			0xa8617062, 0xaee00360, 0x94999cca, 0x2f7676a8, 0x1f36ca6f, 0x40b790ee, 0x5d89c560, 0x70f9567e,
			0xf6ca876f, 0x87e4b838, 0x30fbb479, 0xd516c4d8, 0x4308970f, 0x55fd710e, 0xc40fa05d, 0x84571215,
			0xcf406898, 0xe8d7935b, 0xcf076275, 0x84cc7ec7, 0xab1309d3, 0x56f5351f, 0x47a848cb, 0xc30159f7,
			0x38b30529, 0xf250b857, 0x8039801e, 0xb5663d4e, 0x55faffa1, 0x671f8560, 0x2bfab3ab, 0x0f2b7056,
			0x6603d6cc, 0x79f488a2, 0x911c54c4, 0xf4452443, 0x76c654fe, 0x7ea4e91d, 0x84bd2cdd, 0x2707f70a,
			0x76b4db46, 0x669b04ac, 0xec1de416, 0xd2c9a0b8, 0x3cfe83a9, 0x7a511b84, 0x3c100f3c, 0x56cdbe8e,
			0xdb8d1313, 0x45ebab34, 0xa374a332, 0x0dba1d47, 0x5a1329d5, 0x7d1b5b04, 0xfd07f114, 0xecf68669,
			0xc20330e7, 0x44379a86, 0x3c104fe9, 0x60cb2d47, 0x0055f77e, 0x647d9891, 0xed076f6e, 0x9d43e815,
			0x7e8b797c, 0x05adaa41, 0xe453af82, 0x8359f43b, 0xe2dada7a, 0x61f6b618, 0x639969d5, 0x31ee1304,
			0x24e2d0b6, 0x48408960, 0x280f9a29, 0x14bff7ca, 0x8b14e90a, 0x716c4ac6, 0xf83ef983, 0x0e0a10bd,
			0x2fe29852, 0xf4376ce4, 0x5a8daaa4, 0xf2b1ea8e, 0xd5295164, 0xb3ffce4b, 0xa0142979, 0xf1113ce5,
			0x90b6d849, 0x210dc4b3, 0xa2a62b8f, 0xf8aceeda, 0xb48fd35a, 0x198a202e, 0xbfea43d8, 0xe444396f,
			0x1cfdee48, 0x20003bed, 0xa246ca13, 0x844f8ecc, 0x4d6e2b14, 0xc6e014dc, 0x33d55227, 0x31ea8765,
			0xac9e0a87, 0x94231a83, 0xb363a144, 0x8410bd18, 0x3cb3306c, 0x732c9a2e, 0x24084e82, 0x11f94083,
			0x38a50821, 0x228ddb7c, 0x74f1ab97, 0xe39cbfde, 0xfca5d0d7, 0x0e9ca5f7, 0xc7e0b496, 0x287a6b51,
			0x7aecaeb5, 0xe72a5a98, 0x31a3e1cb, 0xbb43988b, 0xb2b52fa2, 0x82d25d96, 0x33094cc4, 0x59e62393,
			0x380fe9c3, 0xbad399a3, 0xa931b31f, 0x237d9aaa, 0x6876e135, 0xccf3cd0b, 0xf685db30, 0x43ee0e4c,
			0xccc3986f, 0x27f8ca79, 0x2c81d91e, 0x7151aacd, 0x772ce42b, 0xfcf5e2b9, 0xaf4e9ed3, 0x4498de55,
			0x91c184e6, 0xd6c85d69, 0x5e97f2ce, 0xf7adc484, 0xf47340a9, 0x19f90e02, 0xef852b6a, 0x79851508,
			0x8c33a535, 0xbf71bddf, 0xb0b0830c, 0x8914c668, 0xae21c134, 0xb3038f9c, 0x383e4264, 0x34ad696a,
			0x8fa79661, 0xab862f20, 0x780aa577, 0x547777c6, 0xe6282e9c, 0xd5cd248d, 0x4b05b884, 0x80c373fe,
			0x265402d0, 0x3c4be28d, 0x6635daad, 0xb695eafa, 0x470d569a, 0x5e236d1a, 0xefd50b64, 0x7c662202,
			0xade9e4e8, 0x6444faa5, 0x251c9194, 0xa9d520df, 0xc9464ac5, 0x5b95f39e, 0xc23dabe7, 0xcdf32605,
			0x20b5d18b, 0x6ee82c71, 0xe601e076, 0xc0f93b94, 0x1cfd5fb4, 0x2238736f, 0xe04ffd32, 0x50e64615,
			0x0deb4ff9, 0x52e5caca, 0xb90b7a17, 0x8c96df86, 0x030f828a, 0x4b4c583c, 0x76fb9cea, 0x13f1abf9,
			0xd6091083, 0x523d6d1f, 0x840b4bed, 0xa1ee1b12, 0xa5ec019d, 0xee4bf82e, 0x87a16eae, 0x6811e03e,
			0x86590c3f, 0x0c577a9e, 0xb69b00c7, 0x4059e10c, 0xe129f86d, 0xc8fd40a8, 0xffba2fa4, 0x4b915b63,
			0x7268efa3, 0x47b540e3, 0xbe23be40, 0x34a4dc31, 0x721569a6, 0x7d61b151, 0xe0b043ff, 0x8d90734f,
			0x41b6ef14, 0x8813d004, 0x7056c031, 0x36bd0cf5, 0x07c4c22a, 0xe1dd685b, 0x781fc741, 0x6008d69a,
			0x36844b9e, 0xa40c66f4, 0xff1e3cf5, 0xaaa8a235, 0x0e9d58f1, 0xfcbdd34a, 0xa6f18871, 0x3651100d,
			0x54f93898, 0x3d417a96, 0x90b638b8, 0xa3a07fa7, 0x36e48ffd, 0x44098c77, 0x6cd008b5, 0xb896ecb1,
			0x2d6be8ac, 0x188bb4dd, 0x15241d5f, 0x8db21824, 0x71b34f95, 0x7ca7ee88, 0x33423675, 0xf30afc53,
			0xba25e094, 0x13507560, 0xdc3795e5, 0x4d99f562, 0xe2d35a13, 0x8149c85f, 0xf4a80e11, 0xa00712f0,
			0x9e135344, 0xada0aa4c, 0xb8b79964, 0x027480b0, 0xbbb08e87, 0xb2627bfa, 0x25604089, 0xd0d2e23f,
			0xa506658d, 0xe38e02ee, 0xdec67419, 0x0b4b5092, 0x0e6abebb, 0xa31fed5b, 0x7e9a716f, 0xb30ee507,
			0xf814c843, 0x982112fe, 0xca40f097, 0x1d8f3251, 0xfdf99dc8, 0xc6325199, 0xfaf0008f, 0x1dd8e0d6,
			0x39ec471b, 0x8b40b535, 0x0635a59d, 0x0fd075d5, 0xb42d63e0, 0xe97932d1, 0x6a93267d, 0xc153615b,
			0xe27b999c, 0x126796c1, 0x571d1b94, 0xc6c178d5, 0x569a06e5, 0x7bb47136, 0x339b995a, 0xf33e2bc4,
			0x8a58e1b0, 0xa40a5b15, 0xe20d1232, 0x69c54f30, 0x6d5a5f68, 0x83126659, 0xee7735bc, 0x0bef7985,
			0xc54bdbf3, 0xe2ca26aa, 0xf2622730, 0x25593cae, 0xc7a88621, 0x67260613, 0x5cf1ba84, 0xd7d7eb88,
			0x6e2e87f3, 0x0c0d24e8, 0xa42a186a, 0xb49c0642, 0x16de1367, 0x2bc8c002, 0x0ed463d1, 0xf7803871,
			0xbe736033, 0x5fe9c490, 0x92d13263, 0xcf4c5d29, 0xd3861eb7, 0x6f329397, 0x43e7a5eb, 0x4fdbc457,
			0xef22b857, 0xb2008bd0, 0xd9cbcc3b, 0x0f2ea3cf, 0x8542939a, 0x55457aad, 0x0aeca0d9, 0xd68e073c,
			0x6b66e529, 0x8d232f2e, 0x9ad19089, 0xc82d4843, 0xae8e5d69, 0xf68680ce, 0xe377913b, 0xd4f1dc86,
			0x1a9e82e4, 0xcd8a4ee3, 0xdfd9b6da, 0x2921cde3, 0x429dcb58, 0x05b5397a, 0x6b71f5f0, 0x7a216215,
			0x90e8b1a5, 0xa2736f5c, 0x59e129ba, 0xcdb1282b, 0x91f12d81, 0x93c56f9c, 0xa07b4742, 0x19fb240a,
			0xbd8bafd8, 0x48a6dac8, 0x6be3b2af, 0x67f9d1dd, 0xb33e392b, 0x99a085fc, 0x5ccec4c9, 0x00000001,
		},
		{
			0x5ecfefcb, 0x1e964286, 0xfed76cbb, 0xff23c455, 0xb784e38f, 0x80c453fd, 0x09a75eab, 0xac86b184,
			0x1ca12650, 0x9133c15b, 0x66b77efa, 0x25528e90, 0x3e31b84e, 0x1cebf557, 0x26583c87, 0xb7718c0c,
			0xbc4f2fc2, 0x9f71d596, 0x4ec00013, 0x9c282249, 0xda67b2ec, 0x4f378561, 0x2a23a41b, 0x8ba65b2f,
			0x4e152ead, 0x89709efe, 0xb34e4c80, 0xf003e633, 0x1d6f41f0, 0xc88d3a7d, 0xd1bbea71, 0xd107b086,
			0x51a61a9f, 0xedc2ecf9, 0x727a9d28, 0x8fe977e1, 0x592f0bb1, 0x5a124780, 0xf1909d8e, 0xc6539c6f,
			0x6a11d033, 0x9b326d44, 0x0b1093d0, 0x8aa10b71, 0xd2df2b4b, 0xe5241f55, 0x567d4118, 0x32572b90,
			0x1f7f407c, 0x633d8fde, 0x5d60a978, 0xfaeddf01, 0x5fbf8d75, 0xc3064e02, 0x48060dd5, 0x878a0699,
			0x9741c68d, 0x4464b16c, 0x1e058c31, 0x8b5551e8, 0x2c463d6b, 0xa943bedd, 0x52e55c07, 0x0891a732,
			0xb773c2ea, 0x5d857f08, 0x1995b310, 0xef96cb9a, 0x65826712, 0xd03c10a7, 0xa80d5861, 0xb8d7a7ce,
			0xfc74262a, 0xb81de4fd, 0x76e8c152, 0x1179fcaa, 0xcb3dc0e3, 0x6f667f6e, 0x8a031ed8, 0xe894d66a,
			0x4df0e031, 0xdc8f8213, 0xb3a6f605, 0x79b68ef3, 0x9d244a34, 0x029a3a8d, 0x36a4c48c, 0x0b286cf8,
			0x49f55c3f, 0xf3c0364f, 0xd8e3c582, 0xbe0f63ab, 0xb9bb96f0, 0x304c130a, 0x4800c281, 0x165b9109,
			0x91f73de4, 0xe328eb8c, 0x320e3784, 0x710a1192, 0x8e19b2df, 0xd7d7868a, 0x9be74340, 0x968db8c1,
			0x8b13535c, 0x915219c0, 0xfaf917f7, 0xab88b414, 0x6321c959, 0x8676e020, 0x2a4f560a, 0xde7e892c,
			0x5dccd59c, 0xf10ed734, 0x5ba84f59, 0xe5e8d14c, 0x8f033a3e, 0xe0da5c8c, 0xed588c9c, 0x3522464b,
			0xb754adf8, 0xa3ed3bc4, 0xd28b55c4, 0xcfaf57d3, 0x87577aee, 0x99b2b24c, 0x4fec27af, 0x37681b71,
			0xbb39f5bd, 0xe8c0b879, 0x4d0dc782, 0xe7f35a68, 0x6211c869, 0x2feeacd8, 0xced00611, 0x74263dcb,
			0xbee54b70, 0xb44c76d1, 0x3a382130, 0x965c5a76, 0xc3666924, 0xab5e500d, 0x70afeca1, 0xa5e0bd6a,
			0x7bf7b747, 0x6a35edd2, 0xbb81ef69, 0x3f1809ab, 0x8f67e774, 0x9fb891ab, 0x24f362f3, 0x87c6e290,
			0x3de249ad, 0xc0629f1a, 0x6ec7c989, 0x36ea5535, 0x25b864b7, 0x73a31a46, 0xa65847a3, 0xb4602ef6,
			0x6be8443a, 0x62da02a4, 0x4658cfea, 0x289db50a, 0xa7382861, 0x64f48cde, 0x2b6d95ea, 0x3890ebd7,
			0xe70ef954, 0xc5a83310, 0x33ebda5c, 0x848902c6, 0xa33a8a03, 0x5dc4d17b, 0x634616e4, 0x5d45892e,
			0x63004dae, 0x8f7e4167, 0x8ecf4f3d, 0xfcec3370, 0x825a2859, 0x72b4e35c, 0x7ed3837a, 0xd87054ef,
			0xd08a9313, 0x5c9db0ef, 0x801d16da, 0x7f7b42b6, 0xe7ff4992, 0x7730e42d, 0xf89e274d, 0x85e1cc4a,
			0xdbd3d5ef, 0xf5a5e08d, 0x693b04e9, 0x02a98f18, 0xce88827e, 0xe51e2fd9, 0x299e83de, 0x7e39d6f1,
			0x470a9950, 0xec508d5f, 0x8735d17e, 0x3374abda, 0x7b744f75, 0x4e020879, 0x66e65fef, 0x6314d965,
			0x23ddb508, 0xf5d2a54d, 0x4047af8f, 0x1a678b4c, 0xcb084c62, 0xda40b72e, 0x4f713e19, 0x31bae935,
			0x082a6111, 0xb1450a74, 0xe4a2c6e8, 0x5d37cbe3, 0xaf4095fd, 0xadf5ed38, 0x60993721, 0x4ce5e188,
			0xe0ba17fb, 0xe4f25507, 0xc67345ee, 0x67b7368a, 0x3f5aef4a, 0x51aec111, 0x1dcf0ca7, 0xd7c12d2b,
			0x126693b2, 0x65428ee0, 0x47ba2ace, 0x1dcaf4f4, 0xddac4265, 0x4f587b08, 0xba22f127, 0x12ef1534,
			0xfc0b7b91, 0xe1eaddd2, 0xa2b9395b, 0x1f32fa25, 0x4bb41a0d, 0x3d558501, 0x67d38e67, 0x76a231ac,
			0x1ee41792, 0x8009f30f, 0x3bce1d8a, 0x9405721c, 0x9b48dd75, 0xd9b2862b, 0x57d731b2, 0x6bd8ad16,
			0xb6d550b9, 0x638d355b, 0xe0b0e2bd, 0xce7bd745, 0x6a613a89, 0xcca31de0, 0x32ca0b98, 0xc57d4a1f,
			0x4d9efcb9, 0xd9b96e84, 0x58796398, 0x58754468, 0x67e77276, 0xb2659de2, 0x83310727, 0x0416b1b8,
			0xf6e6545a, 0x70623440, 0xf7e22959, 0xba47e142, 0x80d49ecf, 0x074f76fb, 0x981c75f6, 0x985146a6,
			0xa1621b3b, 0x3be455a2, 0x1bd5a66e, 0xabb41009, 0x1340762a, 0x9aed1179, 0xe77c3f67, 0xdce17552,
			0x5b368d3a, 0x1fd4e249, 0xd851125c, 0x7ef9d486, 0x7e4bebfc, 0x9fe8c450, 0x2e3b9e42, 0x65fb9332,
			0xeec20350, 0x984ee11e, 0x2d5d1b33, 0xc254cbb8, 0x1a371326, 0x7649d0e6, 0x4a8bc75d, 0xe439fd93,
			0x5801b94c, 0x8f363ea4, 0xa61c36b3, 0x4f954483, 0x9aa18f9e, 0xbe5b94ce, 0xf5b29beb, 0x3cc70855,
			0x3379d50b, 0xe2060541, 0xe928cac8, 0x56034d7c, 0xa4f4863e, 0x19bcfa8f, 0x6f42ef0e, 0x4b8c3124,
			0x819692b2, 0x395f19b5, 0xfa73042c, 0x8160eb1f, 0x2576d2fc, 0x78603106, 0xb28e7c73, 0xa35f7ea8,
			0x9c51e53b, 0x9bcc3d4e, 0x84e0f54f, 0xca6d7086, 0xf416cd81, 0x33baf457, 0xb30ee835, 0xa7f2f7b2,
			0xe6ffc408, 0xab1f3fcd, 0x8749052b, 0xfd147e82, 0xc8179bce, 0x3bad0087, 0x84de3f3f, 0xd317f773,
			0xbe8d6c8b, 0x4c130664, 0x1f058559, 0x0a5e9364, 0x143dbb3d, 0x7181078e, 0x5cab2f05, 0x597fd075,
			0x50096823, 0x73695618, 0x0e63787f, 0xfa9b76ee, 0xea6a9ecc, 0x5be5fedc, 0x0429e478, 0x6406a22e,
			0x2a08e053, 0x9e423275, 0xc37856e3, 0x54436334, 0xd5927e45, 0x608f9829, 0xf9e9f56d, 0xa381cc40,
			0xf12bdd7b, 0xc1ab6d7a, 0xb5f85dc4, 0x94ae62a8, 0x48eda289, 0x977645e0, 0xc74b2547, 0x28610472,
			0xebe9eac8, 0xf7260607, 0xa3c50467, 0xe7782be8, 0x0eded46e, 0xaecab06f, 0xc2cec850, 0xb0057a8e,
			0x232a875a, 0x00c4b155, 0x7be35fb5, 0x9ed6abf6, 0x27db6025, 0x148e5ea4, 0x7a5006cd, 0x28728b3f,
			0xa096a411, 0xb7ab0aaa, 0xcac55fc1, 0x6f54c3eb, 0xb95dcf24, 0x2641548e, 0x3559da5e, 0x9733f161,
			0x265f2f79, 0xa59e7553, 0xd1a1f6eb, 0xc9d261c2, 0x6f3e6df5, 0x8303c674, 0x1cf1e54f, 0x54341bef,
			0x99c1aefb, 0x20cbda07, 0x09eb7334, 0x21839a17, 0x2d7bb110, 0x4e1a3b0e, 0x4b3f9cc7, 0x8c99ce77,
			0x61bbe0db, 0x081161e3, 0xc124830f, 0x16631a77, 0xac122892, 0xe2af6309, 0xb3bc78ed, 0x491424be,
			0xccf1ba74, 0x1e4f808b, 0xd611f4c7, 0x4af32c8e, 0xff13a635, 0xdfd498ca, 0x87dade91, 0x64a33b76,
			0x5a33a868, 0xc19303d5, 0x3ad90187, 0xb421a29c, 0x12ce47b2, 0x59f44783, 0x73ad6226, 0x917726a4,
			0x48121252, 0x47fc0607, 0xafc30984, 0xc2aa133a, 0x6390b90b, 0xd004f064, 0x0f25989e, 0x658b6fbd,
			0x7653e021, 0x76470b06, 0x22d7d84a, 0xd9f80148, 0x97186349, 0xf86afafd, 0x9cb58932, 0xe0c6f8c8,
			0x6cf35f18, 0x655c1fa3, 0x1f878682, 0x52691f0f, 0xf74c6cc5, 0x97d0cce9, 0xf1268590, 0x697bfa9f,
			0x71b293cf, 0x601e17ec, 0x1ee77d5b, 0xe4444088, 0x378a1d20, 0x93d18573, 0x1211402d, 0x41f9125e,
			0x7c9952ad, 0x3e6085c3, 0x3a431478, 0xfd778563, 0xb6782ef3, 0xb694a514, 0x2819e66b, 0x81925ec7,
			0xd7bc8b0e, 0xbad45cdb, 0x991cdcbf, 0xa13e3464, 0x70a893d6, 0xa09f2abc, 0xe05aa975, 0x245e3ec7,
			0x73fcdb3d, 0x039a2c26, 0x605f8c64, 0x5f38774f, 0x1445aa44, 0xb8f52c52, 0x02f48f55, 0x5f3146c5,
			0xd6bd9339, 0x82fd29e8, 0x16d066e8, 0xe32beb4f, 0x3e61f940, 0x83ccb56e, 0xc7753d31, 0x75428866,
			0x6e8ba34e, 0xf536aedd, 0x3e3ce310, 0x8be526af, 0x33c9286a, 0xed4dec8b, 0xdabe1a01, 0x484fdbf2,
			0x76273e61, 0xf1e8789d, 0x7989d0bc, 0x6d2c69c2, 0x0f846b2e, 0x8b836dd7, 0x436fde61, 0x3b3700a4,
			0xc36f64f5, 0xce3ccb53, 0xe1532166, 0x20ae2d1f, 0x6cef7ede, 0x3ca8a4a4, 0xe1b00cec, 0x7149c88c,
			0x7eb6d2c4, 0xa4fef530, 0x9027c980, 0xe6b0b4f2, 0xa9d30f48, 0xa15591c6, 0x24db8021, 0x390751fb,
			0x4854c8ba, 0x34bb05dd, 0x636985ff, 0xdf6012a2, 0x8cf87409, 0x6624ece8, 0xe3ed6893, 0x08d21ba2,
			0x6b4d142f, 0x86300ba9, 0xfc960563, 0xd0827c37, 0xc5a4b91e, 0x4d5fcc5a, 0x998c8d0e, 0xcad7be29,
			0x937f5816, 0x502f7d58, 0xe2a89903, 0x1017f9fa, 0x592867ef, 0xc23ae483, 0x5c66453f, 0xc1372a15,
			0x40e2620f, 0x152c8d2a, 0x9c1285d2, 0xb51ea0f2, 0x0fd2cc61, 0xe1d700c1, 0xc446ae26, 0xda9efcf2,
			0x4d036438, 0x38c5e6f0, 0x28ed498c, 0x85cb5edd, 0x4909d6a2, 0x49b4e8c3, 0x79b1cd1b, 0xd9cddce8,
			0x8347ad81, 0x77065338, 0xaecde61a, 0xcd2ae32c, 0xd6740020, 0x47b13e00, 0xe74eea8c, 0xbcf973ce,
			0xaacf65a0, 0x15cb51a4, 0x6188543d, 0xa7623bc5, 0x27a69c09, 0x4cb8765c, 0xf14e8b56, 0xd1846d05,
			0x88cc455e, 0xb1afcad2, 0x6de0e4e4, 0x20c057f5, 0xe4ddb649, 0x55736a46, 0x17397ad5, 0x9ab130f4,
			0x16514905, 0x37df9317, 0x45c554e0, 0x05ac4495, 0xb481fdd8, 0x1b7e0524, 0x97471070, 0x10b65557,
			0x83ac395b, 0x087f5b98, 0xa53f2f03, 0x7f8d98cb, 0x448e224b, 0xab46a58d, 0xe765c8e2, 0xcde2d253,
			0x654f25d6, 0x947fd239, 0xcaa6be30, 0x160edc03, 0x14690055, 0x0edca6ea, 0xd853e584, 0x00000000,
		},
		{
			0x42f79ad0, 0x741cc8a4, 0x25331d1c, 0xfe068ca5, 0xea886b2d, 0x1b75ef07, 0xee521198, 0x9f15345f,
			0x078dfd66, 0x2f95b6cb, 0x451346bd, 0xb2dbef36, 0x0b1b4764, 0x475dbec4, 0x71bc183d, 0x691de82c,
			0xf0bdce3d, 0xe6cb7db7, 0xf3e7e608, 0x227af398, 0x2fa05b1e, 0x7e2c8cc4, 0x5fbe27ab, 0x47535897,
			0x246b10bb, 0xc2c899d2, 0xc04b7247, 0x9f265618, 0xe82ac938, 0xef34f403, 0xa3207cf9, 0xff4b2205,
			0x3f2b874a, 0xaa60d3ba, 0x1012dcf3, 0xd11c9564, 0x09f0ecaf, 0xe83dada2, 0xe07e79bd, 0x317d4faf,
			0xb7692986, 0xe9250042, 0x6e84b60f, 0x22a0232a, 0x3227f663, 0xa61b8f7d, 0x7abcab35, 0x4aeeed2a,
			0x2533eaac, 0x4023fb73, 0x30ce9da0, 0x20dca5f9, 0xc5ec98e8, 0x554948e0, 0xf1a32888, 0x78aad2ae,
			0xe5ab42b1, 0x85667fba, 0xdbc6fa14, 0xc1603079, 0x186ea2ef, 0xec21163c, 0x6fc254d4, 0x2d6a8d87,
			0xa079f43e, 0x4561cd40, 0xa4830f2e, 0xd622f3de, 0xfb4c37ff, 0x472abca4, 0xd6f8227a, 0x490b7617,
			0xd69f5127, 0x99fe70f9, 0xfd5e29af, 0x59350f67, 0x3f89c896, 0x76ea5215, 0xecd05490, 0x0056540a,
			0x609d8f05, 0xb54f42ea, 0x8ae85c91, 0xdec61e45, 0x6ae524e6, 0x4810f259, 0x0867667b, 0x3dc8e862,
			0xb2fbc9a8, 0x920ad1b6, 0x40f22fb2, 0xb120db37, 0x9c3604f3, 0x7b49ef9a, 0x74047d35, 0x97558667,
			0x76bc8f3e, 0x7998c6f8, 0x6ce24634, 0x3900761b, 0xe5179b9e, 0x3a7fa4d7, 0x1a1e87d0, 0xa7824953,
			0xc53a6d37, 0x4e5534a5, 0xc47d4c82, 0x21491912, 0x75f5954b, 0xf61dfeda, 0x6cc6115a, 0x523b715f,
			0xe1f250c3, 0x43783b2e, 0x48ebffac, 0x11dc7e76, 0xc127dfd4, 0x200df5a6, 0x7d20813f, 0xced7cdcd,
			0x3bc96b90, 0xf6204c54, 0x50f464cb, 0xcad688bc, 0xba65c1e2, 0x7b28e3ad, 0x0d6f9706, 0x68ff8aa8,
			0xf942eb0d, 0xd9a3053e, 0x4414089c, 0x952be44e, 0x39935d7f, 0xd871c9e2, 0xf9d6fada, 0xcd891f7e,
			0x6b501971, 0x7baa7947, 0xb5508be4, 0x6cc5c07b, 0x163010f2, 0x86816b06, 0xbbdf7bea, 0x19c045ce,
			0x0945626f, 0xb6129323, 0xee031a2b, 0x6eb74c9c, 0x2225be7e, 0x2081e63d, 0xe6c0a58b, 0xa689b5ad,
			0x82e2c760, 0xbf5dd621, 0x31be9882, 0xc5ba04d7, 0x33011379, 0x9d08e308, 0xa7b792ba, 0x1c8a2d6a,
			0x9963586c, 0x16c5060e, 0x2812efc2, 0x3932b5f1, 0x4f9d6589, 0xa08e8113, 0xb114237f, 0x30e460fd,
			0xb5e69239, 0x3889ce94, 0xd1702f51, 0x44f93bad, 0x413f8b51, 0x474d8544, 0xe1799b17, 0xb8738cb7,
			0xfde8dddb, 0x7d1c4073, 0x9a4794e8, 0x88cf5532, 0xa499309d, 0x6c6e75e4, 0xb91da918, 0xccc5a682,
			0xeab46daf, 0x0a18942e, 0xf9822439, 0xddd470d1, 0x72c4e8ac, 0x5cf35d91, 0xdbf270d4, 0xe40b56da,
			0x2b3b96b0, 0x2703afb6, 0x47d4927a, 0xad68d628, 0x8dadaa0d, 0xb60dba88, 0xacdd1d3f, 0xf99cb722,
			0x5338bfa8, 0xb3761379, 0x8c54a1ce, 0xf92c1c6d, 0xb615834c, 0x0ce637cd, 0xe4f5e143, 0x1ffb5ca7,
			0x81e74edc, 0x52ee9bcd, 0xf1861eb7, 0xdda411e6, 0x67f96867, 0xf70aa5f6, 0x58edf6be, 0x1165d035,
			0x931141f9, 0x718fc40e, 0x0ed8fdb2, 0xe32edc46, 0x6eb71259, 0xdacfc463, 0x059557b6, 0x511c9560,
			0x31f74a12, 0xd2e3427d, 0x70ce1be9, 0x8e5c9971, 0xc4649a2a, 0x807f050b, 0x1a5c804b, 0x02fc5689,
			0xdb2d725d, 0x9eccc030, 0x49d018db, 0x75e9d077, 0x7d8fade2, 0x859db0ba, 0x40b46c2d, 0xb8630383,
			0x41351ea8, 0xfca6665e, 0xc2feb93a, 0x23c0b695, 0xa1b4c42c, 0x46357ff1, 0xffb6337d, 0xe4711853,
			0x348e1ce9, 0x17a71813, 0xc9de8ced, 0x41867f86, 0xc5997b6f, 0x7fb448ba, 0xc1e37894, 0x420ccacd,
			0x93d25aa6, 0xd9cf436e, 0x5a56efdb, 0x90915886, 0x6f47a22f, 0x11434341, 0xdb99caae, 0x74aa27f7,
			0xb16588ca, 0xd3f2ac38, 0xc52c6577, 0xeed0964b, 0xd3566078, 0x45915294, 0x64734175, 0xa5b85eed,
			0xeaf6973e, 0x35098227, 0x3d7d48ad, 0xe63675f7, 0x0189ee5c, 0xca6a44a0, 0x112010bb, 0x817b594f,
			0xfaa64f52, 0x3ec4c36e, 0xb4e0ea58, 0xaa585e8b, 0x27444b8b, 0x80de193b, 0x0c251dbf, 0x850b76eb,
			0x5a5656b5, 0x0b204288, 0x5a4ed0ab, 0xb31892a9, 0x06150a50, 0xb8c0d268, 0xfb487379, 0x6399d738,
			0x7bc6ed20, 0x147a27cc, 0x24eff517, 0xfe7f5199, 0x4dfa8c06, 0x973278a0, 0x3758b27b, 0xdc721501,
			0x3f9839a1, 0xedae1b67, 0xd16d9a0e, 0x141dbbe3, 0xcc8cdd82, 0x3520a210, 0xe5282fc1, 0xf37eda06,
			0x3eaa55e1, 0x64462c43, 0x99940c54, 0x67c2d755, 0x4f28de98, 0xc61ced68, 0xd81c5311, 0xf279f35d,
			0x704d5c2e, 0x9bb045fc, 0xae4e8b3a, 0x4d4b66fa, 0xa2ed8c3e, 0xa3228a23, 0x65e617f8, 0xdfc8a73d,
			0xfce73949, 0x310eebc2, 0x2e83182d, 0xfa808843, 0xe3676cf3, 0x7e2d0749, 0xb3815b24, 0x1992cfcc,
			0xd6323bb6, 0x8b0d0246, 0x797745a0, 0x9d7bf478, 0x150c7c43, 0x0be8e89e, 0xe42ae705, 0x21d4e0b4,
			0x27467a2c, 0xe7ad38e0, 0xe7992ba5, 0xdfb4e6e7, 0x74feac57, 0x1c9f06d3, 0xc12dd746, 0xae7183ca,
			0x40ea2bf1, 0xfbeb0900, 0xd296f822, 0xcf17d7c4, 0x813fa017, 0x7824bd17, 0x9aa99fb8, 0x10c9d05a,
			0xe30d42b8, 0x518f3dc6, 0x8d10ae2a, 0xce73030f, 0x5dfe787a, 0xba7b8b0c, 0xeba25345, 0x7f7621b6,
			0xe84fe346, 0x3a5e03dd, 0xf28c2f52, 0x9bbf472a, 0xc61aad8a, 0xbfeb7eaf, 0x9a4b0183, 0x1a6e5156,
			0xa8bfec26, 0xc4feaaad, 0x34bf7567, 0x3376e6de, 0xcbd26036, 0x0466d4ed, 0xb66c8b33, 0xea9b23d9,
			0x15ab4ba7, 0xc3ca8630, 0xd4b260c7, 0x9616c6d7, 0x27e6a615, 0x4785e9b6, 0x418893f8, 0xaabd363d,
			0xe82f23f2, 0xad63034c, 0x0b70dab5, 0x51045e9d, 0xd732ed85, 0xaa40c7c7, 0xee59abfb, 0x455ad150,
			0x3cc8b138, 0x503d9bf5, 0x06fd400c, 0xe7adbfa7, 0x4be159e5, 0x81d99c45, 0x1df767a6, 0x3501f12e,
			0x76187267, 0xfc180a46, 0xe96732f1, 0x24f2a185, 0xe67a5d97, 0x3ebcc87c, 0xf666449f, 0x4a104b1a,
			0x1db4bc75, 0x16709cfe, 0x49adb60f, 0x26df04dd, 0xfb3fe9b4, 0xce00a880, 0x5f79c332, 0x1544f6db,
			0x2abf0702, 0xe58cd428, 0xe63b7453, 0xdde74c2b, 0x73859ea2, 0x38c745b5, 0x5ded73e4, 0xb2f76dc0,
			0xd031f296, 0x3f625e32, 0x9733edad, 0x3d159ef6, 0x0739b420, 0x0298037b, 0x6fee8f15, 0xc28aa3cc,
			0x1da31fd6, 0xb3ec2dfe, 0xc9262483, 0x0fd43bc0, 0x1612b3d5, 0x1ec090b6, 0x0550852a, 0x9e2df2d1,
			0xaa3a9337, 0x324f2fa5, 0xa5478d01, 0xfa21c3c0, 0x6c747144, 0x37b3a0ad, 0x7b0ea3d2, 0x7a021a59,
			0x471274ff, 0xbad1c092, 0xd54595bd, 0xc363dcf6, 0x869466ab, 0x51df37fd, 0xe4c18e46, 0xafcdcec5,
			0x4a8c263f, 0xcb1420a8, 0x109a373c, 0x62abd55c, 0xa3ffce55, 0x9c0165cf, 0xe7e3d7a6, 0x42501540,
			0xc66a25a8, 0x629806ef, 0x8bb49f32, 0xc0ed8b5b, 0xaf4f8d39, 0x8308659c, 0xbdd71f2e, 0x702a0693,
			0x0cdfcba4, 0x2fcb085c, 0x04e7d256, 0x5b0da5e8, 0x86e9aa3f, 0x66ded269, 0x7b562aa1, 0xa96c29cd,
			0x7986348f, 0x4b69d6e6, 0xb63cdf39, 0xee7bae06, 0xa67c47c0, 0xc350adee, 0x3d6baa03, 0x6a062cdc,
			0x0d7a84d7, 0x49d171d1, 0xef624e23, 0x416df479, 0xae89cf92, 0xb9bcf9ca, 0xfbe80d4d, 0x4c141e64,
			0xa005e38b, 0x966f268f, 0x09fb7e26, 0xe8cf41ce, 0x6dc67d24, 0xcea1bb29, 0x88473e9e, 0x60123e4d,
			0x735624a8, 0x50f3200e, 0x6723a634, 0xfd191090, 0xbc081fd1, 0x2d64928f, 0x5263e8db, 0x302c8141,
			0x0c6fd422, 0x3bbc5d58, 0x2fbfee2d, 0xdbf7644c, 0xbb458f01, 0x3214d891, 0xdc9b0885, 0x8d8b16c7,
			0x6a8566a1, 0x4387ce9b, 0x62521d7d, 0x12863950, 0xf64fa726, 0xd1992e06, 0xf98c916f, 0xd2d0854e,
			0x520c1e4b, 0x074cbf13, 0xc427c275, 0x2ca8a38e, 0x271e670a, 0xfc2ebd9f, 0xe143ab85, 0xa44a9514,
			0xa242203b, 0x68363d03, 0x489be3be, 0xc18f10d9, 0x9ba3a10c, 0xa5d62849, 0x30020ab8, 0xc1c25532,
			0x40095bf9, 0x850b0075, 0xcdaaec07, 0xf292830a, 0x6a5529f3, 0x4b073df7, 0x69b3375a, 0x072e5ef8,
			0xaac2a172, 0xc3d18f63, 0x0bbd06e6, 0xc15b2ea3, 0xf353f234, 0x4928e928, 0xac2f6950, 0x7f514919,
			0x434df9eb, 0xe958059d, 0x54110145, 0xc2b57caa, 0xdb544cc2, 0x101b50a2, 0x3d96cb8f, 0x657ad325,
			0x604ab838, 0x5efe3e03, 0x9b6d7de3, 0xe4c57615, 0x8564ba4b, 0xb84cd479, 0xdd81c8d0, 0x111cea7a,
			0xc6d6395f, 0x566d6bcc, 0xa67dacff, 0xd944e60a, 0xa3f30745, 0x85e67ce5, 0x963674c8, 0x9e14849c,
			0x08a380fb, 0x1b6ea2ef, 0xeed48044, 0x5fc756a4, 0xfc118a91, 0xe5e2df61, 0x84447b6d, 0xc9362610,
			0x07c1b587, 0x352f5fdc, 0x1d73a020, 0x5bca4766, 0x93745ac3, 0x1db24cf9, 0xc0dc2ca7, 0x0f00b5c0,
			0xdae470c3, 0x5a6ab8e0, 0x4e23f4eb, 0xd20cf72b, 0xe9347379, 0x06bd0ac3, 0xe14eef28, 0x0178e2c4,
			0xef5dcde9, 0xdc594800, 0x37ce451b, 0x82a924ff, 0x61cdafdd, 0x090ed6cf, 0xb29ae752, 0x00000000,
		},
		{
			0xfe83752e, 0xa2278a25, 0x244066f8, 0xc7271545, 0x8f3d28e2, 0xae567262, 0xbfcd54a6, 0x53ca1c99,
			0x67dba335, 0xe803d770, 0xc549188e, 0xc015dd91, 0x79531e59, 0x1ac58f1c, 0xd234131f, 0xade61af2,
			0xb54a1956, 0x1382f2f6, 0x35cf26f2, 0x7bf012f3, 0x55b07daf, 0x4f1b45be, 0xf6f12123, 0x9ae0f2e1,
			0xc0341461, 0xc9cd4cf4, 0x38f01088, 0x0c659c5c, 0x90dd69ed, 0x20dcf953, 0x8bbb2a12, 0xf5384971,
			0xbdb6061f, 0x1872c34c, 0xbf1828dc, 0x6e061be8, 0x56d60f9d, 0xa2d5b4f0, 0x1bd9d213, 0xeb14549f,
			0x759e0ea1, 0xd1e48489, 0xfcd3c626, 0xcc9ea1f5, 0x61ab3392, 0xee092642, 0xff06f770, 0x077d7967,
			0x55abf616, 0x06272c39, 0xa5efc208, 0xf90a6ad0, 0x3362bc91, 0x2c8e6dd8, 0x141fe50a, 0xceb58470,
			0x499b53eb, 0x655f0705, 0x530f4964, 0x0e5f4655, 0x99ff922f, 0xaf586ab7, 0xfc5ff306, 0x48d7bcc6,
			0xff223900, 0x5c0764b9, 0xb849e8f6, 0x4daab988, 0xcc1abe21, 0x60655e60, 0x898957b9, 0x5703855e,
			0xfd8f08bc, 0x9f30dfec, 0xae98decc, 0x5d2ceeda, 0xa0c16898, 0x97b083c2, 0x9a6b4bb6, 0x6da855b3,
			0xe546c2aa, 0xe206c6c6, 0x7128ac03, 0x031958a7, 0x18ae7983, 0x433cb029, 0x2bbf073e, 0x794348f1,
			0xe64d1e92, 0x4fcebf70, 0x7f1c2a22, 0x372defa4, 0xb9490e7d, 0xeceba715, 0x63b0705f, 0x879b8505,
			0x68a470c4, 0xb69108f5, 0xa73cd82f, 0xbd705054, 0x176bd049, 0xeca1a956, 0x3d1c1192, 0xc096498e,
			0x8231ab49, 0xbd6c9814, 0xe95921b9, 0x562dde99, 0xc9e5e493, 0x660d43a0, 0x042e3aa4, 0x33bb7031,
			0x12632126, 0x8b5e11d8, 0x2337690a, 0x86ddd767, 0xb48ec48d, 0x1e2d950f, 0x1ccfd290, 0x3ab1a815,
			0x4fa87e6c, 0x34422692, 0x5cca60cd, 0x83a39492, 0xc1c96db8, 0x3be5b794, 0x3ea271ba, 0x5f5b477c,
			0x3b7d15df, 0x54813f50, 0x363fe9ba, 0xbcefcae2, 0xff66f0a2, 0x01d840f6, 0x8285b110, 0x93392c1b,
			0xe5812215, 0x5d44b45d, 0x7600c8fb, 0x102fde78, 0x0a098dae, 0xf1896291, 0xdd6ad5cd, 0x1a46f27b,
			0x725d5556, 0x33c3d84a, 0x4b133251, 0xd4d92e94, 0x8bf1251c, 0x7dc39eed, 0x340165c7, 0x28154cf9,
			0xcd990ec9, 0xa5870d39, 0x1f5b1650, 0x5364e003, 0x67f055fa, 0xc82cabad, 0x7f5028c8, 0xc27c089a,
			0x9e42e163, 0x1b141e43, 0x9692c93b, 0xb43d9e3e, 0xd23aaef0, 0x9aed776b, 0xaff9d731, 0x63c6951c,
			0x266a9702, 0x04885e92, 0xbcfaf913, 0xc1efb427, 0x6737ab11, 0x15875d08, 0x440ca9b1, 0xe980cab6,
			0xb06d5e80, 0xf282da59, 0x057b99fc, 0x158b22dd, 0x4b57c21d, 0xe53337fc, 0x54f5313b, 0x803817d5,
			0xf31bb20c, 0xf564caa1, 0xc94e053d, 0xdb6369f2, 0x6250a768, 0xc6b037f2, 0x2929a7f4, 0x2d739f23,
			0x86c84ba6, 0xdeaaf758, 0x7a4b7430, 0x3ed84a37, 0x65703e02, 0x51e355bc, 0xabaf96c9, 0xa9fd6349,
			0x7193fb74, 0x6b4fa03d, 0xbe03adcd, 0x245a6589, 0x0951d523, 0x3c27c7c3, 0x43e023d9, 0xdd7ead4d,
			0x3296c261, 0xf959563b, 0xeb364ee0, 0xf14a1f71, 0x7a7f32ba, 0x0c075f4a, 0xf4ced3f8, 0xa8a2da3c,
			0x752e89f3, 0x6de53048, 0xf5e0e6ce, 0xc7ac4227, 0x7d5218e2, 0xb6b80b43, 0x55658cee, 0xa45e1f34,
			0xa2531f11, 0x25f975bc, 0x9b322c24, 0xf9b2fc12, 0xab66d4aa, 0x46ca580c, 0x121977f4, 0x54698ad6,
			0x236b534d, 0x91383346, 0xf9e52242, 0x92a49971, 0xd59f0c53, 0x97d08b6e, 0xd89cf737, 0x47ce53ca,
			0x37ad95ee, 0x9dd3abbf, 0xb5034e70, 0xd5d79f69, 0xe4e5dca0, 0x50033d61, 0x3a4c03c3, 0x0c9bf9e2,
			0x644d1410, 0x24d78dc7, 0x09b58d84, 0x0a92eaef, 0x9d394bc3, 0x6617c3a6, 0x0614da08, 0xe8d330da,
			0xa86f5616, 0xf9ce6acf, 0x1e079424, 0x0cc1eb6a, 0xc58e0584, 0xf62843d4, 0x769ad02f, 0x68980366,
			0x7c4e6e9c, 0x5372eb84, 0x76d04447, 0xccce436d, 0x26794be6, 0x89aca83d, 0x6b397fed, 0xab13a806,
			0xc81c01a6, 0xc6962ea8, 0x91621fae, 0x9c031c71, 0x46afbc6f, 0x6bb782ab, 0x10af35f9, 0x5e873251,
			0xeafcd2f5, 0x265c4c26, 0x933fe5b7, 0x11bf7fde, 0xdf8689cb, 0x347c8d9b, 0x6648e398, 0x3c4af822,
			0xde22deae, 0x791a4795, 0x0c8d8793, 0xcfbef16e, 0x5c9e438e, 0x8e7c7a37, 0xc80ee76b, 0x93c1f7f7,
			0x913d78a7, 0x1cba5ce8, 0x663deb15, 0xb875b596, 0x4aee6c48, 0xc38e4a31, 0x0bbc4613, 0xc6e2207e,
			0x391ea1ca, 0xfa403223, 0x7d98c6d2, 0x0dfa43eb, 0x6f946925, 0x30da61ef, 0xb61cdb37, 0xe3e0e67f,
			0x716c9fe9, 0x44e220c7, 0xd48f5f34, 0x9aee443e, 0x073c3909, 0x1c28151c, 0x1645af64, 0xb169fe79,
			0xeb818be1, 0xcb57c8e9, 0xe8b096c6, 0xf701a433, 0xbf0c8d99, 0x7ac08440, 0xa789c05e, 0xc88034aa,
			0x09cee567, 0x01b76329, 0x25a0721d, 0x9b8e5a48, 0x41b96fb3, 0x32be4232, 0x685bdb25, 0x3b8b0451,
			0xeb9b9411, 0x9747be2d, 0xd89331ba, 0xb58efab0, 0x311322e9, 0x356742f7, 0x9909b4b3, 0xe3469d56,
			0x81a149db, 0x35a8e9db, 0x02210b14, 0x8b19422d, 0x86392414, 0x8896a50b, 0x36b91044, 0x58da3714,
			0x2afce920, 0x2ae363e4, 0x6d3dcfa3, 0x93b6625d, 0x2e576acb, 0x39a79ee7, 0xff29c37b, 0xde663425,
			0x17c16db4, 0x9fc92395, 0x5c207330, 0xaec7bb8e, 0x8be1d358, 0xd852c9de, 0xf3867b3b, 0x0477ffb0,
			0x561a1165, 0x3618cf4f, 0xde88843b, 0x19558519, 0xecd882a3, 0xcff7cd7b, 0x3952778d, 0xdb825c84,
			0x8a408d0b, 0x0ffda7e2, 0xd0ab3a1c, 0x64fc5ef3, 0x8076b9c6, 0xcce3acd5, 0xba204e60, 0xc4403878,
			0x9fead717, 0x7e22128f, 0x8789edfb, 0x180c8878, 0x15e491e3, 0x43942536, 0x0d4fcf61, 0xddd8e6be,
			0x281b5caa, 0x6780c9a7, 0xb62b048b, 0x46205db5, 0x53ed4b37, 0x2e29b058, 0xe326888e, 0xc5d496a1,
			0x0b59e6d7, 0xbc7e6693, 0x46f4609e, 0x71711abc, 0xc8e642bc, 0x484d92d4, 0x2c51b963, 0xfe006a83,
			0xb3c7d5a1, 0x3e371c4c, 0x93e3a822, 0x94927921, 0x57a7b2a5, 0xdc2224b0, 0x00b122dc, 0x9487c1a7,
			0xa377d148, 0xad4023f8, 0xd4df827c, 0x60b3053b, 0x32e3c741, 0xde9b747b, 0x0ef49638, 0x5fc81578,
			0x3afc6866, 0xfe5e16fc, 0x08d34030, 0x5c51d042, 0x212dae64, 0x80fa9b6e, 0x2b5dd5db, 0xbff66ae5,
			0x91673d2c, 0x5be7f0ee, 0x1f3dba8e, 0x80a3efd2, 0x3e15b725, 0x7fb88e0e, 0x631777a7, 0x93232c9d,
			0x5a54e843, 0xdcd8b9c7, 0x112c8724, 0xa0c7aa8c, 0x1092a571, 0x91d040c4, 0x5392fff6, 0xff25d31f,
			0x8dacfb20, 0x3751c2d0, 0xbb0522d5, 0x04528761, 0x76fcef4c, 0x181ea3fc, 0xc358a802, 0x3f0f0653,
			0xdcce86bd, 0x0449961b, 0xc4310614, 0xbccebd36, 0x7d7fa775, 0x475beeba, 0xffd4ecae, 0x65fa5b21,
			0xc491e338, 0x2d42eab6, 0xe9b4b362, 0x529362e0, 0x6c8b20dc, 0x6217d191, 0x1a3cd002, 0x3c2e2437,
			0xaafaf9cd, 0xc61ec109, 0xa0e8d1f4, 0x48f707fb, 0xc6e0f7cc, 0x73c8e49a, 0x316a3fc9, 0xfc29fbe2,
			0x471f086c, 0xb9102596, 0x59869801, 0xd0264b55, 0x5e97b4f3, 0x4ec86057, 0xf601c840, 0x27adf12d,
			0xc44e6d65, 0x180c66c1, 0x4b062a0f, 0xb08e0680, 0xa7b242c3, 0x53480e6c, 0x3956209c, 0xe8d50797,
			0x1d46e23d, 0x9b8b8280, 0x71f78d8a, 0x4e2eb789, 0x301f2b2a, 0xca49ffe0, 0x20494faf, 0xa30ab749,
			0x74e953cc, 0x49a44355, 0xa0476af2, 0x82c5992d, 0x4233a676, 0xddc2a7df, 0x0efb4c1a, 0x23c5a1de,
			0x5ad26274, 0x498ba4e1, 0xac3dd23a, 0xca7df77b, 0x95cc447d, 0x98be0a76, 0xd6a8551a, 0x9238dd26,
			0x9f9e4feb, 0x76335934, 0x61b1f2da, 0xe559609a, 0x536b2dbb, 0xbea4385d, 0x38d51264, 0xd0bca45a,
			0xbb111763, 0x3ebe3ff5, 0xe754e163, 0x9eca47ea, 0x346b6556, 0xe0fafbb2, 0xfb8036a0, 0x1596e972,
			0xce56af53, 0xd704b5e7, 0x51ca2bb8, 0x0110dbb4, 0x6594d49e, 0x4ec144d4, 0x91cd353d, 0x14c0075d,
			0xaa29de08, 0xc3cfd277, 0x29e4a5d2, 0xeb6fea8c, 0xc05e58e5, 0xc2f71321, 0xc0958bce, 0xe21b9d5b,
			0xbf738560, 0x7e66626c, 0x97810ef8, 0x82456d07, 0x859914d2, 0x817b9cd9, 0x2a4f2248, 0x7cb4e30a,
			0xcdb5ebe4, 0x43bd3fdd, 0xcb638649, 0x1991e9a5, 0x554dbe93, 0xf3b50ad8, 0x19eed2a7, 0xc332ad5d,
			0x1231149b, 0x16a0b75e, 0x1ebbe80b, 0xfeb81ec8, 0xccd7648a, 0x7bb63f9a, 0x788b276f, 0x7bcc4d90,
			0x7561e449, 0x7cabb5e3, 0xd1ad6b42, 0xfa94f471, 0x67b2ce88, 0xc33fd0ad, 0x329429db, 0xebe60ba0,
			0x64c89e77, 0xba495062, 0xf469c2b4, 0xab12a805, 0x2486dcd4, 0x99d9983c, 0x4363ed20, 0x1a17f8c1,
			0xe163e7f6, 0x168629d9, 0x18e9010a, 0xe1d72a02, 0x0ecdf283, 0x4d0e99b1, 0x3bc4b3d3, 0x627da0cf,
			0x52cfa11b, 0xa940a89a, 0x02ec4926, 0x9f35bf0a, 0xa1e7c2ee, 0x3d469845, 0x04b6d4cc, 0xc8d3a47d,
			0x7c986582, 0xfcb2e578, 0xab4eacc4, 0x5b71be7d, 0xacde0840, 0xc9d924ea, 0xefbbd75e, 0xa5a72e3f,
			0xb421a56e, 0x1239cf89, 0x868585e4, 0x93e30a2f, 0x56f5229d, 0x7379f408, 0x0694bb8f, 0x00000001,
		},
		{
			0x07d5f7b1, 0xbff36234, 0xb21c72d3, 0x7401f9b6, 0x1b1019d9, 0xbb7b90dd, 0xa0236205, 0x7cc65f92,
			0xcc805afa, 0xdbd650fb, 0xea7daf93, 0x014db2b3, 0x513e2bf2, 0xdc82c725, 0xc155555d, 0xe1f7de4d,
			0x8e63c0b6, 0x1c8ad704, 0x7ce2ac17, 0xa1137a8a, 0xdd4118ab, 0x7582f952, 0x0d7df669, 0x1fd80637,
			0x2fc53a60, 0xe57cf740, 0x6f65ea89, 0x1fe40af9, 0xb5915744, 0x351d7dfb, 0xcb006a59, 0x9c231125,
			0xc4572fd9, 0x9eea4c8b, 0x4c88c2a7, 0x157993d6, 0xd2912059, 0x00f98dc4, 0x36df2592, 0xbf21d309,
			0x1c8ff373, 0xa404505c, 0x34df6a73, 0x78d495bf, 0xc8552024, 0x9cbc5b36, 0xc779fc25, 0x3d888b48,
			0x1cab84c3, 0x65d855d8, 0x4d309f22, 0xde3f487d, 0xc35f8d23, 0xab4e621e, 0x54197e69, 0x28feca2b,
			0xfe7f60ad, 0x3d044f55, 0xce715afe, 0xf5052221, 0x5911fd55, 0xafb0f6e8, 0x2defc534, 0x709df26d,
			0x1095e974, 0x8f7dc628, 0xc9670f31, 0xa3651f06, 0xa1513d28, 0x32fbc2ae, 0x0f7a4870, 0xe7a63ac7,
			0xb0c65890, 0xe97057d7, 0xbca300c2, 0x4590306b, 0x5b443a17, 0x608f0f30, 0xba1dbc9c, 0x25774e8f,
			0xb1a7a425, 0xefcbfcc0, 0xc9c14892, 0x10b8dec9, 0xdbc13769, 0x99f4f490, 0xd6f21265, 0xcbcabd72,
			0xcb1fa274, 0xa211bdf0, 0x25fdd0f2, 0xc36f0b08, 0x48476c53, 0xe3b4a463, 0x55a391e6, 0x6a99f935,
			0x18f2481a, 0x053b4e5e, 0xce6cfcf6, 0x5019ec43, 0xbf3d0974, 0x032a56bf, 0xc565e8be, 0x7183ec6c,
			0xb20ad172, 0x6c9f924c, 0x4717ab43, 0x154b656e, 0x1ae7291a, 0xe4bf2605, 0xcf1ea451, 0xbb8b9992,
			0x3f3260fb, 0xff8a4903, 0x936ef561, 0x488584c3, 0x2166d507, 0x1a52b2c6, 0x987f0d6f, 0x0af06405,
			0x3234058e, 0xfa172e0b, 0x6097dc22, 0x1c58efcf, 0x565c4a8b, 0xb5c29583, 0xd6d7ba8c, 0xcfba5984,
			0xea795b87, 0x942f926c, 0xb79a595e, 0xb3da4d0a, 0xeacc2ca3, 0x5e055909, 0x7e83414b, 0xea8057fe,
			0x28cdf4a9, 0xea1dda5f, 0x6a927146, 0xe6281933, 0x64b22dd7, 0xabc58e2c, 0x33b3aeeb, 0x5a543cbc,
			0x9f2c380c, 0x71e01141, 0x3632ba26, 0xc62469af, 0xc066a72e, 0x914074af, 0x3522baa5, 0x66abd005,
			0x2f25f076, 0xafc4be21, 0x47535f55, 0x98a3404e, 0x34f97e83, 0x92d1d83c, 0xb778e4dc, 0x88c25a5e,
			0xb1ce384a, 0x5ceff6d5, 0x1e8624ee, 0x5f8df916, 0xad9d1dda, 0xb1f2929a, 0xeb56d5d6, 0x38e2e3e3,
			0xb0c7b976, 0x11473fbe, 0x44d46ba6, 0x50d49aef, 0x23634e72, 0x795e5366, 0xc7bf4932, 0xa8716753,
			0x349bd99f, 0xf66ba330, 0x8096dece, 0xbf454671, 0x637bbc3b, 0x7c063d18, 0x621227e5, 0xd34dfda0,
			0x87941ebe, 0xe6345514, 0xb015f820, 0x402a57ed, 0xcbeb7110, 0x3e59427d, 0x10fdbd5a, 0xe90f8179,
			0xc13c8048, 0x82418f67, 0xbe7a0d32, 0x95d5f706, 0xf743feec, 0xc00eea82, 0xd418d1df, 0xb7f7d3ca,
			0x6a663696, 0x8f387a04, 0x705df126, 0x93864555, 0x00e371c3, 0xa64eaa7b, 0xa2625839, 0x847380ea,
			0x9907b05b, 0xc3cf2ce8, 0xd5424f09, 0x9cd330ea, 0xd51ccfba, 0xed75ff06, 0x14971b2e, 0x999e4721,
			0x817fc933, 0xaba3d221, 0xaa9dd345, 0x11d03b87, 0xdfb1f0eb, 0x842f4a28, 0x912447a4, 0x7587ee00,
			0xe2132cf7, 0x02ca1b8f, 0xecdf768c, 0x1a38ca45, 0x4fee9417, 0x7c9fc02d, 0x4e8e2bc4, 0x963e9f04,
			0x7f5b97a7, 0x2b8c67bd, 0xd56594b9, 0x9229b162, 0x8e81944c, 0x453b6d4b, 0xaa98e2b3, 0xcb81b919,
			0x1d88395d, 0x72bedfe2, 0xfe541d0e, 0x0462b4cb, 0xeac083c2, 0x82b80503, 0xdd17c281, 0xb54d7885,
			0x8a7996de, 0x5c95334d, 0x16f710c9, 0xf7d29062, 0x632f1d7c, 0x8c160d7d, 0x9c53bc62, 0x69179eef,
			0x9778c68e, 0x02df7dc9, 0x4c198250, 0x68f6f6bc, 0x2c874167, 0x7f4a5937, 0x401a292c, 0x815de89f,
			0x3fe1508b, 0x62a17c7a, 0xd5bc0c88, 0xd97bb6ad, 0x5cd960ab, 0xa002b56c, 0x43047368, 0xcd496eb9,
			0x0a7bcdf4, 0x6454d14e, 0x8ae4136c, 0xe67cd091, 0xb6abffcf, 0xf0f0017d, 0xe4582c56, 0x4f885ecf,
			0xfd2a991a, 0xfe637256, 0x0753840b, 0x47830778, 0x54db582f, 0xf00c3b3e, 0x0f1f21d5, 0xfe7a5b2b,
			0x4adfd15d, 0x625ac915, 0x1189244a, 0x3b416e5e, 0xe4bc30b0, 0x590a4d60, 0xa9ecc884, 0xc70d3751,
			0x42e17617, 0x2d7c7fa7, 0xda0f5559, 0xd19d6d6e, 0xae0a306c, 0x70e38709, 0x4a6d5a3c, 0x9d8060e8,
			0x994e0ec3, 0xc1281061, 0x9ea88a60, 0x065b02d8, 0x2fc9b2f3, 0x28af4c7d, 0x2868d2ef, 0x5714d4f2,
			0xb629510f, 0x5955a204, 0x9ccafb6a, 0xd89b5e7f, 0xe8850f14, 0xadd82aed, 0xfc65b9d0, 0xdfbd3894,
			0x7861a587, 0x7a3d063d, 0x8061fc18, 0x5db52ffe, 0x6b39e1e3, 0x065a23f0, 0xa641bbd6, 0x9eaf8a60,
			0x8e323bd2, 0x9bc3e7d2, 0x78fa913c, 0x15555d34, 0x72847ee9, 0xac19d9c2, 0xc099759c, 0x27118e98,
			0xb47cc387, 0x90c00e52, 0x048936a0, 0x04a87174, 0x3be640fd, 0x8f326598, 0xaf5e2a9f, 0x8875f654,
			0xc92d26f2, 0xc1507192, 0x48ab811f, 0x90134a18, 0xb218cc3e, 0x20c066ed, 0x921bf1a2, 0xfb0544d7,
			0x69033ded, 0x9f38be0c, 0xd2e84178, 0xe8a6f4e7, 0xabdefb68, 0x9d73deb6, 0xdac9fd2e, 0x4ed2e7d7,
			0xe29c51db, 0xa23d10a5, 0xd17ab446, 0xdbdc5dfa, 0x53079cd1, 0x99e778e2, 0xc0e0ff5e, 0x7368a854,
			0xc65e57a8, 0xd11ee055, 0x6f3e82ee, 0x13b91560, 0x07ca4ed1, 0x2d6a0f18, 0x4c7fccd9, 0x33cdacab,
			0xdf5507ba, 0xbe9b4521, 0x7dfde7fc, 0x5cdda4a6, 0xb7792dc8, 0x69305da4, 0xbdd2e41a, 0x3ec3703c,
			0x1b8ba8b2, 0xcecbbbfe, 0xb7c3a96f, 0xeee07eb1, 0x12f4f55f, 0x4d84a9f7, 0x5255030b, 0x834d8f3a,
			0x6140c237, 0x5ec8414b, 0xf52a11e8, 0x9e3d4e58, 0x40216ab1, 0x8f9a9a4b, 0x47c142f9, 0xe7c2f55c,
			0x0bd18c53, 0xc6c06e37, 0xdd1a2b75, 0x7f7575c6, 0x0ddd8ccb, 0x5db1d9c3, 0xc9b4c4f7, 0xaf8e9ad9,
			0xacf25f72, 0x5a6c498f, 0xb68cdfe4, 0xb362bab5, 0xb8b85aab, 0xc295de9c, 0xc54ac4fb, 0x9ebdcaa1,
			0x613988b8, 0x9896cb09, 0xbf38622d, 0xca405379, 0x3af54046, 0x91151bac, 0xa9f8be0f, 0x707475c7,
			0xb4132eb0, 0x3ba95c91, 0x8d76597e, 0x24ab4cf6, 0x67343751, 0x8d915f7a, 0x3085103f, 0x35b4571c,
			0x7fa486b5, 0xeee456b0, 0x0e0348b9, 0x2d7886b0, 0x8278a6f8, 0xc1e2c08e, 0x4d9f66d1, 0xa73e9757,
			0xa574a164, 0xc742594c, 0x496c2c28, 0x0885a982, 0x4388ad7a, 0xb2ff493b, 0x25458c0c, 0x487daea7,
			0xcea9c95a, 0xfaea1cca, 0x17239dcd, 0x12890fe7, 0x9b5de247, 0x25ea8e49, 0xb13a2b1f, 0x2876bdf3,
			0x88ba1d0a, 0x69205e12, 0xc6515e3a, 0xcd540155, 0xc04ad642, 0x946366fb, 0xfa3b70c0, 0x72ebb8cb,
			0x1ce7f2bf, 0x9985dfd2, 0x3849cb81, 0x84e87f62, 0x1d9049e4, 0x9c14d11c, 0x75216ea1, 0xb843e795,
			0xd892f6e9, 0xe191cd93, 0xf8e827be, 0x663d6f6f, 0x32646751, 0x702e2c48, 0x03457636, 0xcbac549d,
			0x48b6403a, 0x9e603356, 0x5e381c64, 0xaeca60d7, 0x36064399, 0x73e7743f, 0xe72c5a4e, 0xcdb544d7,
			0x8375821c, 0xdb410840, 0x9dfd435e, 0xa3a03833, 0x728955a7, 0x5381f29f, 0x53f78194, 0xbc7e6c95,
			0x574545d7, 0xec3d3ebb, 0x241c343d, 0x6edd3e20, 0x93754204, 0xc403b040, 0xb084ac89, 0x3d156fb3,
			0x29597cba, 0x1f721964, 0xc44e2697, 0x18769444, 0xa1939818, 0xfa0cc50e, 0x9620405e, 0x9453bb4e,
			0x2179af53, 0xd4f4e3c5, 0x341e2252, 0x06664f64, 0xa2f5ee07, 0x4541ed10, 0xd7f60df7, 0xeb7606fd,
			0x58427743, 0xe791d7a6, 0x49128e01, 0x6a1ae3ca, 0x24c20882, 0xe3d1b615, 0x7144d3dc, 0xba6bbec0,
			0xd3595cf1, 0x1fd11a2d, 0xff659751, 0x0068806c, 0xc0512626, 0x14e488f8, 0x3f6b6ed1, 0x852f4b13,
			0xc583ddeb, 0x89d37e06, 0xd785e66a, 0x733c704a, 0x03bfd9e9, 0xa77ae10b, 0x7f79e241, 0x3263194e,
			0x13046822, 0x98612ad5, 0xd13abe65, 0x030555c2, 0xdb28644d, 0x620d9140, 0x5f8101f3, 0x2ef32dd4,
			0xec5e4c9a, 0xab77d445, 0xa5fc513f, 0xf84ec044, 0x0034e21a, 0x8be4ac71, 0x449009dd, 0xb11f5b15,
			0x5efbf31a, 0xb583ef4c, 0x3685f2bc, 0x3b3051f6, 0xf2fd1b0a, 0xd9cc3be9, 0x7140bb90, 0xfaf318eb,
			0x57e142fb, 0x2c6545b4, 0x38ffd5ce, 0x67c91547, 0x82b54490, 0xfee20d44, 0x94af2814, 0x6f1b4252,
			0x93bf194a, 0x60342067, 0x33497ca0, 0xdb9e79ed, 0xf57a2799, 0x3095d262, 0xac44e151, 0xbed110dc,
			0xa01a4896, 0x9651afe3, 0x56e254b2, 0x3916a8d8, 0x78853d0d, 0x1956c32b, 0x4406fdb9, 0x54c7d524,
			0x8a072078, 0x37548447, 0x961d126b, 0xe11cdbd6, 0x81d323f4, 0x46fdd81c, 0xfeb68a49, 0xd3377aa4,
			0x2af94be0, 0xcb6964b8, 0xa4d8ec29, 0x9350dd75, 0xa5aacad3, 0x759feee0, 0xe51e76ce, 0x8c704d2f,
			0xc7a0cbda, 0x11bea4ef, 0xd9063e3c, 0x9c7c1979, 0xe5a0ecc3, 0x406c7766, 0x3a020461, 0x0cdcbfce,
			0x173d682f, 0xcd4361f6, 0x1bdaa66a, 0x78360baa, 0xa0d7bdbe, 0x76254257, 0xcb1530ce, 0x00000001,
		},
	},
	{
		{
			0xf5f15969, 0xccd846a6, 0xdd357f82, 0xe4c890ca, 0x0bfdf39e, 0xf205b56d, 0x5015c80b, 0x93381728,
			0x1f277ab5, 0x23b75782, 0xd9f8a463, 0x8aecfc37, 0xeb17ce1b, 0x0e9b58c6, 0xb1ea3bfd, 0x731bb222,
			0x8ccb1fa4, 0x58a5180c, 0x9455fca6, 0x751d00c6, 0x7b590e41, 0x8047c09f, 0xe2e97630, 0x3adfe488,
			0xf2147991, 0x837dcc29, 0x4283955b, 0x89c0ecbd, 0x3b3e553f, 0x13373b51, 0x25eb120d, 0x88a8efe5,
			0x827c958e, 0xe7105f54, 0x653d65df, 0x922202c1, 0xd3569f97, 0xe95798f4, 0x5ba4e3c6, 0xb5ab10d8,
			0x2d534759, 0x037c171f, 0xedae720a, 0x654eaf69, 0x8cf5a63c, 0xca219f9b, 0x4b6ca507, 0x4653c951,
			0xa82ead64, 0xea917e7d, 0x6f71cb12, 0x0dd53fc9, 0xa259e8b1, 0x5f94999b, 0x32e35bb5, 0xdff3554a,
			0x99ce18ce, 0xf31b6581, 0xf9867bd3, 0x4e3a93e5, 0xf5e5db2e, 0xed30a3d0, 0x64ec1161, 0xdc45ee26,
			0xbfa0263b, 0x6e2251eb, 0xaa7060f2, 0x9b10e85f, 0xbe886fec, 0x22b0d5aa, 0x5731566f, 0x9c64f677,
			0xb0e1e338, 0x30735dd0, 0xc9329876, 0x27e98770, 0x82002e64, 0x82c94b6d, 0x32caf2c8, 0xdc812d6e,
			0x90613524, 0x667fc615, 0x05b3f350, 0xe35ef1f2, 0x921cf484, 0x2c1acdff, 0x48a50e44, 0x806363df,
			0xae16b967, 0xc05ec99d, 0xfd62d4bc, 0x8901c225, 0x82a29c18, 0x4c3768d9, 0x563ffcf0, 0x534179cc,
			0xfe5b8af9, 0xeebe21f9, 0xb947d1bc, 0x86bbbf47, 0x981ca71c, 0x3623a362, 0x5d7ec9c3, 0x4d4939af,
			0xb5c05f1c, 0xdb070605, 0x708a80f7, 0xc299602c, 0x6e558255, 0xa7e62cf7, 0x2b50bd9a, 0xd1cb826e,
			0x3acf0bc3, 0x82dd1206, 0x4c2b03ad, 0x9b734113, 0x84fb5c8f, 0xf5ebeb5e, 0x8f6536bc, 0xb1d65666,
			0x8576071e, 0x296bfb61, 0x0b7e1127, 0xd3bc845a, 0x4b38113d, 0xf3ea5b12, 0x5c257a6b, 0xc2e6de86,
			0x512b8ee0, 0x5d444369, 0x66aa2b74, 0xffba74c5, 0x276e3abc, 0x4b9fce9c, 0xbdb2041d, 0x4dbe3439,
			0x8b22e101, 0x44c27be0, 0x876c4dd3, 0xa24b60c0, 0xa6ca9f8a, 0xa63a9675, 0x07de402f, 0x6f41cd30,
			0xdf593fa9, 0xcf2e0f21, 0x3dd1c110, 0xd7080852, 0xe812ffdc, 0x1dca9efa, 0x1434cb4a, 0xaaa8d5a2,
			0x4e5d5265, 0x8ade6256, 0x7a8f7f2f, 0x43db0ae7, 0x0524ea23, 0xb1cdfbea, 0x1c52a2c8, 0xcbdf2a64,
			0x74431bc1, 0xc26427d5, 0x63b38711, 0xd77d0cb8, 0x35990c7f, 0x6bb76d96, 0x6d18b6c4, 0xe4676f94,
			0x8e2da4d3, 0x90e0a95f, 0x75b78a7e, 0x67fdfc9e, 0x89120d0b, 0x144b2a9d, 0xd759797d, 0x468c5db0,
			0x84ad20ff, 0x04569f78, 0xa9b734fb, 0x008c00fe, 0x8ce17804, 0xa2ed66cf, 0xc5008c39, 0x3ad81384,
			0xab178e88, 0x0128a845, 0x236c6240, 0xc9a2c3d8, 0x74c509d0, 0x1ebb1610, 0x49a801d5, 0xbc12024f,
			0xbb480955, 0x47dcd569, 0x5b30b3fd, 0xa54a67cc, 0x9f3e21eb, 0x02cc139e, 0x0fb443c4, 0xca8101e4,
			0x8d7ab03f, 0xe43df85b, 0xe4cd1cdc, 0xa83d9821, 0x68c4122f, 0x18648b2c, 0xf61e8e0b, 0x642472c5,
			0x32b4a3b2, 0x5a5ea547, 0x74e0682f, 0xfecfa56a, 0x51171287, 0xca4dd522, 0x967e9144, 0x7d96e03c,
			0xd9697c57, 0x41f01847, 0xe5a6027d, 0x09202fff, 0xaf9268f6, 0x18d9126e, 0x1b239d3d, 0x9ca0caa1,
			0xc23e43ea, 0xe74f66ab, 0x9228b89c, 0x4a77e738, 0xd4ec68aa, 0x72699b01, 0x80c666f3, 0x2f938198,
			0xf4ab4287, 0x542e8e4c, 0xf9000384, 0x4210edb9, 0x12b240ce, 0x974460e2, 0xc9adfee1, 0xfb15565c,
			0xe98a955e, 0xaca19e6f, 0x9618f2ce, 0xf859a0c5, 0x9aa97922, 0x6e4ec7f5, 0x793a22b4, 0xc05e4b16,
			0x25b65ae2, 0x50ee819b, 0x83b1a6e4, 0x232923f7, 0x74393b94, 0xb901712c, 0x972444bc, 0x4c8d389c,
			0x4b526eb8, 0xbd9fc48f, 0x73c3e2a0, 0xfc2f5ca7, 0x946b9b88, 0xcf858dd5, 0x7e50e833, 0x3c72be2a,
			0x4aa58f38, 0x5d536231, 0x3acbcf92, 0xdbdd3f4d, 0xcbedd06e, 0xdb5287e2, 0xdddee15a, 0x141cc5b1,
			0xf6f9748e, 0x86eec4bd, 0x3df342d7, 0x4b061a57, 0xea852680, 0x115bfc5f, 0xbafb7ac3, 0x1682d01e,
			0x90331406, 0x0abd8ee9, 0xec604d3c, 0xab38f04d, 0x72a86ad7, 0x2d00732b, 0xe6befdfb, 0x3f0bdbdd,
			0xdcc8d7d4, 0x12a557ba, 0xe82df19f, 0xe64509fc, 0x7a8275ed, 0xec5c5b1e, 0xfe02d782, 0xc8aa35b0,
			0xe994b95d, 0x7451696d, 0xacef0c23, 0x372533ba, 0x20a85cd8, 0x4ef47bf4, 0x41ec87a9, 0x6aefd604,
			0x2d693f2e, 0x3f592c41, 0xc33809c2, 0xbcb2773a, 0x9610f0cb, 0xb345e113, 0x3d38cb23, 0x7a658518,
			0x8f7e9c6b, 0xfbc96599, 0x7487a7f2, 0x7a00bfc2, 0x082bd626, 0x8a7a7bdf, 0x9853b557, 0x2d499f47,
			0x8be4d0e7, 0xb65ce4fb, 0xd23a48e5, 0x14e900c8, 0x22a9c408, 0xce5254e8, 0x863d43a4, 0x8ef2f60e,
			0xb43ef064, 0xda3fe4ef, 0x8f41d6d0, 0xad0025e7, 0xed8566b3, 0xd6d89310, 0xd97a91bc, 0x9b7b10e9,
			0x117ec2a4, 0x053ef8c4, 0x5a3b9a4d, 0x8e8cbdcb, 0xebba7ae8, 0xbb72861c, 0xf9b46df2, 0xe9eeb672,
			0x0cee0d01, 0xa1291e42, 0x2083ef76, 0xbf1305e9, 0x9e94205f, 0xe14a2910, 0x3bd5a6e6, 0xc2b71380,
			0x2e7d3e2f, 0xed1e4082, 0xc50ada17, 0x444f73e9, 0x234164c7, 0x8040ed68, 0x9c103625, 0x0789f2ce,
			0x7e834d84, 0x8eaf5db7, 0x4fc1bb35, 0x40074497, 0xed3cbded, 0x3cd863d4, 0x3011c74b, 0x28fd3deb,
			0x32ea0b64, 0xc17a2428, 0x0715a261, 0x301dde70, 0xcce422f4, 0x44123e80, 0x66830957, 0x1acd3605,
			0xe26b7d50, 0x41c19e3d, 0x59c16c51, 0xe5c04e98, 0x7e14fd23, 0xbd5c2fa6, 0x7666dd30, 0x21087265,
			0xcd840a29, 0xc7b1387f, 0x8287b076, 0x5954fdd3, 0xf7601f5d, 0x71e89e3e, 0xbe230b4d, 0xfc56bc7d,
			0xab85edb0, 0x3f461eb8, 0x1e5cb3c0, 0xc64cf389, 0x66c2ad44, 0xa38b01a0, 0x6a2952ce, 0x1cf26ab1,
			0x9d498a84, 0x84fe7aa7, 0xefa17d5d, 0x21c73cb4, 0xf3a46f39, 0xd4631c9b, 0x2c89f46a, 0x486029d2,
			0x32d8117b, 0x8038226c, 0x0fe545c3, 0x8834dd30, 0x90ee4e00, 0xac1252e9, 0x1f2175bd, 0x7cb7ccae,
			0x7354c0ca, 0xac5c5a55, 0xa753d897, 0xee5ac04a, 0xbeb691cb, 0x64e2f032, 0xb5d3bf69, 0xfc6a271c,
			0x2c2d3dd6, 0xa46db699, 0x90d8fa19, 0x32f24db5, 0xcc4c4665, 0x0e3fd9b5, 0x5ff0973c, 0x35083118,
			0x125ca59d, 0x3a2df68e, 0x634ec970, 0xb232fe35, 0xa07cc405, 0xf406cca4, 0xd45ad612, 0xb48b15e9,
			0xda75baab, 0x3a8209e4, 0x4651fccb, 0xb9ca420d, 0x48fbde03, 0x484e3fe1, 0x0d0c92c2, 0xa13a6b7c,
			0x30ba27c0, 0x586d0291, 0x5dac243b, 0xe9f42d28, 0x7a9558dc, 0xc38dd89b, 0x0253d95a, 0x64c12de7,
			0xe71efe5b, 0x6d49944f, 0xcb5a2987, 0x8341da9d, 0x8dd62f9a, 0x4a35cb7a, 0x7694f1f3, 0xce3f5c33,
			0xecc3c3a1, 0xdf8c5459, 0x065e8a54, 0xbad77d8a, 0x21cbbb85, 0x600feabb, 0x8521bd77, 0x3cc5a314,
			0x7ca06311, 0x03c0f378, 0x9be83b99, 0xb7304d57, 0xd2b5aadb, 0xd9c966d7, 0x5e0e9a6f, 0xfb093088,
			0x407fbc71, 0x500d25c8, 0x7ccf7864, 0x647fcefd, 0x1eb08039, 0xe94c13d7, 0xadd62458, 0x82cad834,
			0x19f2e635, 0xeb6ca4c8, 0x0dece4db, 0x94e990e8, 0x98821d92, 0x8caa7117, 0x9adc2734, 0xd7f514ca,
			0x50960ad5, 0x63e2fec7, 0x61810670, 0x258b9260, 0x0e036401, 0xece87481, 0xb92e42c0, 0x38e93dac,
			0x55062d96, 0x4a9dde99, 0x5575c866, 0x83274161, 0xbb9ef782, 0x006484e9, 0x4d901b71, 0xc5a47000,
			0xd0984ac8, 0xa3cce1dd, 0x7ef391f3, 0x7351a476, 0x7e49f2e5, 0xf6cb1685, 0x9671eccd, 0x3aaf4e2f,
			0x5901229b, 0xa5eb1722, 0x419e6a2f, 0x3bc8e6f5, 0x9ea31d7c, 0xb7ab25f2, 0x2f83d2a7, 0x9a9330c1,
			0x73bf9343, 0xd2643420, 0x57935e35, 0x3f584498, 0xe31545d3, 0x1c5b7f26, 0x2c75c8b8, 0xccba62c8,
			0x5cc4c7a5, 0xcf3c2dc4, 0x64387562, 0xca52f7af, 0xffada2eb, 0xc222bbdb, 0x9c19da5e, 0x03aa3b45,
			0x74b6cbfc, 0x71c0c906, 0xbce35bfe, 0xea0b5f49, 0x518d39c5, 0xc6fb6366, 0xf202a5e7, 0x5eb91145,
			0x429193ad, 0x1e772431, 0x7b43ddb5, 0x35e80b1a, 0x7c9d339d, 0x505d79a9, 0xc137d5ec, 0x559bc090,
			0x9391afed, 0xe5b2b911, 0x76e0a12f, 0x14fb9ec6, 0xc12c8f38, 0x83465ce4, 0x65004df8, 0x764dcf7b,
			0x151b1e49, 0x733bfa3b, 0xe8e65fd6, 0x6441db4f, 0xf8ff60a7, 0x59773627, 0xc1a360f9, 0xbd807f98,
			0xbd5dff26, 0x34a1ca84, 0x1479b8bb, 0xeb183b08, 0x91054c41, 0x3c56390c, 0x4bc07580, 0xc9ae339f,
			0x981eee57, 0xd2d242a2, 0x20cbc5f8, 0xff929cd3, 0x84c71ddc, 0x3813e4c6, 0xa6ed9b21, 0xc697d88e,
			0xf2e2d321, 0x258385e0, 0x2354e7ff, 0x93133267, 0x244dcb8f, 0xb4501299, 0xb1f6def7, 0x9c740f2f,
			0x0cc1c4fd, 0xf88b99e4, 0x1ceeea36, 0x330c3a84, 0xe6c1c151, 0xb561c51c, 0xa34bc83d, 0x9fafe7d0,
			0x9f1e1541, 0x2927fc9b, 0x31bd5b15, 0x416056fa, 0x45b2528f, 0x7fb353a8, 0xefba42af, 0xbb962236,
			0xe0c95e2d, 0xe2eb3857, 0x4ec2d742, 0xd412a14d, 0x34d499ce, 0xe7161e0e, 0x1ef6e4d4, 0x00000001,
		},
		{
			0xe2f661b4, 0x8c1a68d3, 0xfdd7427f, 0xef463da7, 0xef857f62, 0x56d79205, 0x04ee121b, 0xcb49e496,
			0xd885f44c, 0x1c4f9d70, 0x8c4830f1, 0x1886adfb, 0x9bd245a0, 0x38eabca5, 0x3b472dc8, 0x0fb2f9d1,
			0x8003d7b8, 0x59d2c655, 0xcabe94af, 0xbe396095, 0x7a4e01d8, 0x64028baf, 0x4a03703a, 0x0bc0695e,
			0xf437fec2, 0x32186c53, 0xf49ede60, 0x4607b4af, 0x2e42a036, 0xd70c6ce9, 0xe13008f6, 0xf524f908,
			0xb2968181, 0x2bbbc946, 0x4e8d663e, 0xb819e777, 0x7f621154, 0x48129b66, 0x8ba54376, 0xcbd3088d,
			0x16fc40ee, 0x6fad9c03, 0x402ca9e7, 0x608ce606, 0x35bb2d73, 0x1af803c5, 0x2411f746, 0xcffddb61,
			0x2894178f, 0x422459b3, 0xc00b5246, 0xb16855f8, 0x69d58660, 0xd9f5bbf5, 0x98713731, 0x5e469ec1,
			0x1392721a, 0x514f8df6, 0x4c6eb6a2, 0x76bef3b0, 0x879ca71a, 0xfb1d3f7a, 0xab54c569, 0x4f7dae63,
			0x457de46c, 0xfa5bfb37, 0x8d2aca5d, 0xe635c436, 0xca86d04c, 0x802a3a64, 0xff00922b, 0x316f6a25,
			0x3d686e93, 0x109806fd, 0x4ab7e761, 0x52a8cb40, 0xa86a9e2b, 0x6dc292e0, 0xe5e62f59, 0x70956d4e,
			0x8a748f7c, 0x744cc207, 0xc1fe8057, 0x7db541ae, 0x8ee1e620, 0x11df124a, 0xf68748c4, 0xd003e096,
			0x5ebed637, 0x64599828, 0xaa990f68, 0xe69b6c2e, 0x45e8d6f9, 0x4e8ea4c7, 0xd09cf74c, 0x2bd95381,
			0x82c21666, 0x13d26977, 0x409734c5, 0x6ed7034d, 0xbbe9b8d3, 0x303431a4, 0x2d91f191, 0x18d50d4a,
			0x2d423e46, 0x179f4391, 0xe5bf687c, 0xdcb648d7, 0x2eb2ca90, 0xb1289d33, 0x02477283, 0xdb85cdf6,
			0x690e6866, 0xa55b6376, 0xff4d0e47, 0x8f521ad5, 0x1df1970d, 0x4a1c3d9d, 0x9b10be2d, 0x5c984751,
			0x2a2da9aa, 0xbf20c060, 0x7c8eae69, 0x946856d2, 0x9b3656db, 0x26b54b1c, 0x8882d7e0, 0x21a1b3b8,
			0xd085a641, 0x33224499, 0x420fba5e, 0x7beef132, 0x339654ed, 0x8abc5f6f, 0x3aefc1be, 0x1f1cf104,
			0xe08b8272, 0x58cdb282, 0xbe6e3a5c, 0xff65af5b, 0x5cbb1a40, 0x44097383, 0x39c4ca26, 0x81dbbe10,
			0x23794446, 0xe95a5150, 0x0b6799b1, 0x043b9310, 0xf9d4680b, 0x57522ce7, 0x8731b8fa, 0x67eca658,
			0x69e997f7, 0x4ee35970, 0x73d46b1c, 0x9b9e5415, 0x2684c1b3, 0x170a6a83, 0x62a44a43, 0x386d4316,
			0xb0a5e9f5, 0xb8d20bcb, 0xd5af471a, 0xb6ca3125, 0x2168c3c2, 0x36363b8b, 0xcbc47c09, 0xee3f211f,
			0x14aff0ed, 0x632ca0f3, 0x7d3a0139, 0xa09f32de, 0x6baa5017, 0x73d8bc31, 0xf8dc348e, 0xfa38885f,
			0x3b49a293, 0xc48e9451, 0xb7017d3d, 0x136794fa, 0x8562dfbd, 0x68cd406f, 0xb0187b3f, 0xe671babc,
			0x841c3f51, 0x76f17248, 0x01e57153, 0xd397c77e, 0xac0c087f, 0x8c7a9898, 0x2a10f147, 0x3b902091,
			0x7f2bd8c0, 0x2647fdd9, 0xe4bfc648, 0x83a534d9, 0x5c3305a3, 0xfa173f0b, 0xa54aeaf1, 0xeaa0e030,
			0xa9ee7c4a, 0x09081a30, 0x0e0545e7, 0xa8b6479a, 0xae27214a, 0xb7005672, 0xed34a050, 0x7fd40c2b,
			0x59ca49f7, 0x75441f08, 0x5bda2e21, 0x029c353c, 0x13051258, 0xb600b14d, 0x9cbb193f, 0x63d685bf,
			0xf80a8881, 0x6c74d403, 0x3c5661ff, 0x5f011756, 0x619fafc2, 0x6437c274, 0x9e8af9d9, 0x4e5a27c3,
			0x255617e2, 0x9b4166e8, 0x677e82d6, 0xd69adb65, 0xa7cbb4b9, 0x2b5ad0d5, 0xf4453414, 0x4b2593b4,
			0xd9ef14dd, 0x35dbfad2, 0xf46ec3fc, 0x0b71f174, 0xc36e297a, 0x524ffe64, 0x1888b9b8, 0xf45ba08c,
			0x83843066, 0x0c536cae, 0x89a5d51f, 0x20251db5, 0xe481c006, 0x84276771, 0x2b922390, 0xec447b95,
			0xb0341509, 0xe7037ebc, 0x0893e987, 0x076fc894, 0x9e0b3bd0, 0x46f18bcb, 0x19eb4291, 0xfbabedda,
			0x7af99ea6, 0xf50f0745, 0x912a6054, 0x20871fb7, 0x6b4a32dd, 0xc3e39ee4, 0x7587e023, 0x11624483,
			0xe5f16163, 0xf7dfc720, 0x4c059ebd, 0x1490f876, 0x9655f9af, 0x2664bc83, 0x72b2538d, 0x908b157f,
			0x9ee6a4ab, 0x6f7a48c6, 0x29fc5e3c, 0xdb5f4f30, 0x4680d9b4, 0x587b8369, 0x0666f13d, 0x34a4b703,
			0x40ddd537, 0xfeb10a31, 0xe3bd7c7f, 0xac4e48a3, 0x3f1da992, 0x781420c1, 0xf9df832b, 0xbb7e09ce,
			0x8402a450, 0x15dd220c, 0xc363d863, 0xcf498533, 0xdf2e9f75, 0x884d9175, 0x76f9042c, 0x27443929,
			0xf7a55c6d, 0xba5430b9, 0x730efa7e, 0x7d6b807c, 0x456a4c81, 0xd6bd8469, 0xc603b42c, 0x77163278,
			0x7e5f9fef, 0x8817d33e, 0x4c68a36c, 0x474b1f80, 0x3486b814, 0xc9169767, 0x2fc6493a, 0x5041519c,
			0x6203e89e, 0x53f6f5e4, 0x8d1f5f85, 0x04d7d902, 0xfa782645, 0x79c325b0, 0x89190a50, 0x071835b5,
			0x2c163ba5, 0xdc7882b4, 0x74c963f8, 0x2b5ebe22, 0x41dfef12, 0x3682d635, 0x8e5435c6, 0xda8bb641,
			0x0d8bbac6, 0xe88ddaa6, 0x91fcd289, 0xf2d9e6e6, 0x617baf76, 0x88376048, 0x25dcb335, 0x38d5a486,
			0x7a33a9b6, 0x52e3977a, 0x18c139db, 0x0cda18b5, 0xeb1c89a3, 0x0525aff8, 0x902c8f20, 0xeea4e6b4,
			0xc4f3c791, 0x445388ec, 0x67b34b3d, 0xe9b735aa, 0xfd5516e5, 0x40125609, 0x5f65c280, 0x10ca2b70,
			0x7c045594, 0x891bd821, 0x67ba5f10, 0xa0fb6cd0, 0x934a7aa4, 0xca24c57b, 0x7ebc1970, 0xd6c8b1b1,
			0xde912e44, 0x7a27afd5, 0x60e00bd9, 0xe8b1fbb5, 0x7911c795, 0x939769da, 0xd5b8b8c2, 0xfa2d7ba3,
			0xf6e10821, 0x34f7bc5c, 0xed2a519e, 0x0d3df963, 0x9c11f539, 0xcf3f53ed, 0x6b3edd6b, 0x2e1b5c4f,
			0x114f113f, 0x304b416a, 0x3b1aa4d8, 0x3f660a0e, 0x5e0ea958, 0x27ad3258, 0x2ff018a5, 0xd5d8a78b,
			0xaaa00570, 0x791dc1df, 0x9c8748a1, 0x145a346e, 0xf532f7c2, 0xc3b43488, 0x6890151e, 0x9f9f97f3,
			0x088dc415, 0x0914b962, 0xf477175a, 0x0af6413b, 0x5350423f, 0xab2f461b, 0x2c4301c1, 0x2f257857,
			0x6069bc78, 0x7b95f98c, 0xa68b72db, 0x9a5dda2b, 0x5a57b0a1, 0x6f2ad8bb, 0xa678c942, 0xe3b92f18,
			0xaa8f4cd9, 0x5ab405b3, 0x1f6987bc, 0x9ce894e7, 0xe8c25b82, 0xd4c4dd1c, 0x5a1b6b5d, 0x9a7eeedb,
			0xb5cfc32c, 0x1f493a19, 0x6795ef1f, 0x8e99e958, 0xb7734526, 0xe9bf9777, 0x30c27032, 0xb00384c3,
			0x6f82ac56, 0xdbd5db07, 0x5e1454e2, 0x0f98b856, 0x671ee4b2, 0x5e28d14c, 0x38bfd643, 0xba564d57,
			0x255284ff, 0x91f56e22, 0x41b643d7, 0xe6a6ad68, 0xa3cde4f7, 0xccd10e4e, 0x9749bfb0, 0xb73ac8ce,
			0x1d3e48c8, 0x5d69c9e6, 0x00f5d2e3, 0x5df05c96, 0x6be802a4, 0x7847dc09, 0x92ca937f, 0xce547d58,
			0x59a77109, 0x402a9da5, 0x5cf2817a, 0xdbdfe32f, 0x507f59af, 0x893c2ffa, 0x06da1232, 0x8277e3eb,
			0x6a6337e0, 0x9d3b3229, 0xe1fa96b7, 0x772bb26d, 0x32b7320b, 0xf8067d27, 0x74dd2726, 0xe8c7d72f,
			0x8ba0c04f, 0x2e66b42a, 0xc48d0b44, 0xada7f715, 0xbaa134bb, 0xadd87466, 0x8a702dc8, 0x1c5ab9bb,
			0x6a29446b, 0xa77d7789, 0xb90b0be8, 0x0063c948, 0xdab98513, 0x4b76342d, 0xf7974aa6, 0x3e369335,
			0xfaf71f43, 0x4053ef7c, 0x59229c0d, 0x9ce58ad5, 0x5e7b549a, 0xe85efb12, 0xcc89e253, 0x9a33bf0a,
			0xd20a8558, 0xc3c87a18, 0x190c7558, 0x7898ab78, 0x929a73ec, 0x04687f78, 0xfad2ba0c, 0x0990da83,
			0x9acaa192, 0xd65d63d7, 0x46f07a4a, 0xf40dfef9, 0xe236ec51, 0xe088e1a2, 0xeb620a50, 0xfea4422e,
			0x0b196666, 0x45bb6404, 0x08c4676f, 0xcea2639e, 0x0743bd3c, 0xa8adb015, 0xf89e43d3, 0x0a831736,
			0xb6d3e60c, 0x86bdd90d, 0x9e88a7a8, 0x13a3bb3e, 0xfc3c25d1, 0x10c7bf27, 0xba9400e5, 0x6805416f,
			0x327e1487, 0xbc1d6b17, 0x16a3062b, 0xf252078e, 0x04cbfec8, 0xeb7a12c6, 0x8314505e, 0x030eaa3b,
			0x5b647bbd, 0xebc9843a, 0x22ba2cef, 0x94f8d96c, 0xb1e58fea, 0xa7153292, 0x1ab48df5, 0xe2e75b7d,
			0x4747c6ba, 0xf4a43496, 0xdfa389ea, 0x0acbf1ce, 0x0a3a8246, 0xf335c9bd, 0xcad486ec, 0xc8cf4799,
			0x37ac3085, 0x99c4266c, 0x88c2bade, 0x14a53f7a, 0x0960d5ef, 0x06537ad0, 0xde0ec51b, 0x609f023b,
			0x3e84e29c, 0xf00e138e, 0xb5e55ec2, 0x37639c07, 0xc46f4c60, 0xf2e89362, 0x2bfe423d, 0x22e019db,
			0x96e11706, 0x24084959, 0x1a331c90, 0x02766017, 0x0b43fa0c, 0x547b14ba, 0x3e8c27d2, 0xa21e61af,
			0x80bbd154, 0x25d47ea6, 0x8c64696c, 0xd28f9f01, 0x4a7d9cac, 0x4ad4d543, 0x11af6bfd, 0x359f3b02,
			0x499c78ec, 0x89129cf6, 0xd69cd1a5, 0xde1522be, 0x4b811bc6, 0xd36030d1, 0x9929c5ad, 0xadfac559,
			0x7f982184, 0x89e70ccc, 0x972e4b1a, 0x0f3714d1, 0x207ad831, 0x03570a07, 0x3b146a4b, 0xb503a083,
			0x8722ec5a, 0x9eb02edf, 0x087bb8e8, 0x728352b3, 0x22f73a43, 0xfe881b8f, 0x69d37c8a, 0x92a87be7,
			0xc4160c2e, 0xd296f45b, 0x99f1cd13, 0xf0ae5c6e, 0x3583c6b0, 0x3ff1cee8, 0x5abbda6f, 0x24b346d8,
			0x069b2091, 0x03ec377f, 0x2ec016d8, 0x85fa2cf4, 0xd1405bc1, 0xb3155d05, 0x08738873, 0x3c776d12,
			0x19248209, 0xd8dc6280, 0x9956a69a, 0x2bc74d8b, 0xc4e846df, 0x8e452476, 0xb810ccb1, 0x00000001,
		},
		{
			0x6b0d8d94, 0x657df874, 0x198646ab, 0xa14223e5, 0x271ce9a4, 0xe1726b3d, 0x86513f1e, 0x82d0def4,
			0xa3e7764d, 0x8924358a, 0x7748218c, 0x01211531, 0x43c0f125, 0xac3e1094, 0xe22d3198, 0xa47fd1a0,
			0x1d374fd0, 0x1f0079a9, 0xbf3a1af9, 0x81879304, 0x5768046d, 0x6218ba29, 0x2ab5d994, 0x2bfd56d7,
			0xa1e72091, 0xece86c33, 0xb9c94ac2, 0x6d53741d, 0xbd4f43cd, 0x80b04a85, 0x98b934de, 0xe92bcbb3,
			0xf0a9e695, 0xfdecb676, 0xc1b15383, 0x3143915c, 0x0ff3e070, 0xc75fc9b7, 0x7ab963eb, 0x33f02748,
			0x6f5d8ab7, 0xf1075f07, 0x8f803fea, 0x239d05a5, 0xca27fd8f, 0x90073c89, 0xcc2f66e5, 0x179bcd19,
			0x27e4f966, 0xb00843af, 0x0baf5e96, 0x0348b24c, 0x2afa03f7, 0x37ef3030, 0x085dade7, 0xdfdcb8fe,
			0x7246c0d9, 0x61fc9d75, 0x4d1bcf46, 0xa2b2a562, 0x9d0c00d5, 0x44056ca6, 0x10e5df95, 0x651f0b9a,
			0xb343fef3, 0xba891e39, 0x3718ac99, 0x3c885642, 0x80e57968, 0x66d45056, 0xb9d26a86, 0xe5f41a37,
			0x710442c7, 0x3e79a16a, 0xe62e898c, 0xed4551d1, 0xcdb6274d, 0x4c49b034, 0x46357da4, 0x342e0180,
			0xee3a48bc, 0xabdba6f8, 0x065478e4, 0x5ad66747, 0xb0de6f35, 0x5ebb328e, 0xc4e0cf6a, 0x688fd9cc,
			0xb3a2e04a, 0x47322fbf, 0xb4c8ec97, 0xd2954a22, 0xf6a207dd, 0xfb6483e0, 0xea6aa0de, 0xd723fb15,
			0xa668d1c7, 0x91d17bd9, 0x381f44a3, 0x6814e14b, 0xe4370c8d, 0x4efdc622, 0x64af3151, 0x03d30e03,
			0xaf780a4a, 0x14d444de, 0x0b22868a, 0x4643755b, 0xac597060, 0xe1f153ac, 0xb2e17380, 0x03bc51ac,
			0xa9e00878, 0x67c41e92, 0x946a2b45, 0x9540d5d7, 0x6000b217, 0xb7a39f77, 0x64045754, 0xc622eb7c,
			0x0965fb3e, 0xed060756, 0xf7e20c1f, 0xd919c688, 0x7ec960e9, 0x746f8da8, 0x208cf65b, 0x72c6cf36,
			0xd11be4c6, 0x84efbce6, 0x6abb5008, 0x2f26f5c6, 0xe220b928, 0x29cf52ce, 0x23a24b0e, 0x5a084b8f,
			0xcae610f4, 0x555770a1, 0xffbb4fff, 0xf42ed02e, 0xb3c6bf0d, 0xfff79811, 0x18f8341f, 0x50a74e53,
			0x1f936af3, 0x390f8b98, 0x81a734f5, 0x52401509, 0x77d0b089, 0x6e91b7b8, 0x300e3d0b, 0x8fb6a871,
			0xbc42fd84, 0xad7e11b3, 0x8004ffa7, 0xcaa4cd9b, 0x647be48d, 0xabe3f859, 0xb0d051fc, 0xcab33043,
			0x843c64ae, 0xb7e924ba, 0xc02f3a75, 0x406cb292, 0x5e97dd49, 0x14d85a2a, 0x59c2d42b, 0x3b0306ef,
			0x47dbd4f0, 0xcbf6f2cb, 0x36cade54, 0xe7cad232, 0xf2f7af8c, 0x8793235d, 0x0e294eab, 0xd2aff2be,
			0xb356e7b4, 0x0330039b, 0xb8074eac, 0x1e1f6f01, 0xfa82b071, 0xbe4e0b95, 0xdaa1eafb, 0x3ea662a9,
			0x53dbb3dc, 0xacc38568, 0x8a9a5245, 0x84817b8f, 0x86e6ee77, 0x90f6213f, 0x53a04e46, 0x424a50a6,
			0xe70ab99f, 0xdf5b28ee, 0x4cb7d512, 0xac26b01f, 0x1b0dd24b, 0x6c4f1713, 0x97788a8d, 0x48764cda,
			0xa71325fd, 0xce3f5f5b, 0x228872ce, 0x6226cfaa, 0xcfb5e0da, 0x0fc8ad78, 0x5c94c8fe, 0xc67c8b6e,
			0x76e25bc5, 0x6d84d4c4, 0xd673c199, 0xd456b55f, 0xfebec8b3, 0x41863fdf, 0xd8d5823b, 0xa63b76bc,
			0x28331328, 0xec5f2cc6, 0x4c04d067, 0x191f2284, 0xebb44e0c, 0x3c379241, 0xd63a5ae1, 0x6e2a7666,
			0xef927060, 0xf94d311e, 0xbdfbdce4, 0x4f920822, 0xb913f978, 0x22f5cd75, 0xc840a392, 0x181cdb39,
			0xfb66c551, 0x589cd723, 0x2a8df2f0, 0xafb6bda7, 0x135dd6cc, 0x7a4670b3, 0x1d33cdaa, 0x35baad70,
			0x3e7aa938, 0x6ea2b32f, 0xbd948d8d, 0x3e016ed4, 0x1e7436b9, 0xcdc729bc, 0xf7431d55, 0x25885fee,
			0x23f6abb5, 0xd2a5bd91, 0x9ff69cc4, 0x72b36801, 0x96af18ad, 0x5831d7ec, 0xbf574c7a, 0xbb21a83a,
			0x4901d451, 0x418fde62, 0x7cdf1749, 0xc5d42adf, 0x209d0d72, 0x1e0aa69a, 0x69e765f2, 0xdec1b8e9,
			0xfc0372a8, 0x44c24d96, 0x0c3746b9, 0x5b6ee701, 0x1712563e, 0xd3aafbc7, 0x16be485e, 0x1faadd7e,
			0xa8815b39, 0x43aff7c0, 0xe058dbbb, 0x2bf9e3d5, 0x0328b844, 0xb3d7fe03, 0xd265e588, 0xe1b887ee,
			0x71de6cb3, 0xb4411c7c, 0xa34e6b6a, 0x727bf942, 0xa2bfcb5e, 0xf4fa7086, 0x777fbe82, 0x03dca9a8,
			0xf80f7e19, 0x6e674daa, 0x10c620f7, 0xc325b27e, 0x938b4ce8, 0x45c3b677, 0x480f9b19, 0xd056dc6e,
			0x847b3bdd, 0x585642c1, 0xfd4f2a6f, 0x7af52af9, 0xaf1aac11, 0xa267587f, 0x76cc5f4f, 0xdc046826,
			0x36a0a5a4, 0x1432b04d, 0x2c7a8af7, 0xa6d2f020, 0x6bc53c5e, 0xa104420a, 0x865d773d, 0x35a59fc3,
			0xbe4f11ef, 0xc5400e20, 0x19e76322, 0x24ee6901, 0x99f0b3dd, 0xf258acf1, 0x840c1a2f, 0x4c2b29d6,
			0x273bda9e, 0xa49fa799, 0x1205ba96, 0xd69c4601, 0xc6711b87, 0xa6a20f0f, 0x661fb15d, 0xa44ef42b,
			0xe2369f67, 0x39ad2b71, 0x8f28f751, 0x184fb5b9, 0xdebf2407, 0x6f4e34bd, 0xea2746ec, 0xd6a7c392,
			0x4275cb1d, 0x180a0c91, 0x7ca1fd38, 0x3f405574, 0x8149acbf, 0x0764239a, 0x3ce6f5ba, 0xde199f7a,
			0x4d89bdc4, 0x34708c64, 0x6957407b, 0x3b17d5a2, 0x146a7684, 0x21dace3b, 0x5b5404eb, 0x7c0e099d,
			0xf76bafe9, 0xa778db8c, 0x82b9d8dc, 0xfa0fb26b, 0xb4069e96, 0xcdf5ae2a, 0x4cf24d13, 0x2f2ba379,
			0x3b8768bb, 0xe92a4920, 0x4d13ee9c, 0x78e9c1f6, 0x7df5f4ce, 0x303c9892, 0x0f543ab8, 0x59819e94,
			0xe1be0632, 0xf78e99b5, 0x2f36b9b4, 0xebe581a6, 0x4d1fd0c6, 0xd3de0bb6, 0x0d7157a9, 0x08757e78,
			0xb7fd2c2c, 0x2141d6ea, 0x134f3fbf, 0x7ab5b84b, 0x146d370d, 0xd4ca8636, 0x0a8cd7e2, 0x9e72b9e1,
			0xb53c8270, 0xa0ffb200, 0xc0e0dfd7, 0x73f7e2b1, 0x82199389, 0x1bf4f36c, 0x6e8b3987, 0x79b79729,
			0x8c30c65d, 0x7c3582fb, 0x0cf1693a, 0xccdaf25e, 0x4c3b5784, 0xa7b910bd, 0x9e95c50e, 0xab177886,
			0xd5dc3544, 0x74703c4b, 0x582fa742, 0x45ee9d0e, 0x0d5a5b3d, 0xf05987db, 0x30a370f3, 0x2422e17f,
			0xeb6842ac, 0x00345d89, 0x68719a78, 0xe27a18a3, 0x3019a89f, 0x1eee77a5, 0x22a49201, 0x681fd4f2,
			0x2daa02d0, 0xe7330787, 0xf250e5a1, 0xb99071b2, 0x34af9d56, 0xb46513f8, 0xe6326d12, 0x528474cc,
			0xfbe44f6b, 0x379e68af, 0xbf26fd2c, 0x1c20c7c5, 0x6fb334d6, 0xd4bd3315, 0xc7e328c8, 0xdd0959ab,
			0x9b64ab8b, 0x9fb234e4, 0xfe83af05, 0xaea849b6, 0xfb580443, 0x06fddb45, 0x59d82295, 0x1c500605,
			0xc0ae1786, 0x2a40fc2c, 0x4d7a7aa8, 0x67ee761c, 0x26dcfb3e, 0x7c354630, 0xf966ac7f, 0xdf2b6555,
			0xf61a72eb, 0x5e8aa420, 0x35bcb465, 0x7f9a9d38, 0xd2e65705, 0x9103044d, 0x4ddd864f, 0x7b9a3bf3,
			0x0cba5b4d, 0x25f49c10, 0x8d6633fa, 0x6901b37f, 0xe263cc53, 0xf119e505, 0xe5df0c30, 0xe546452f,
			0x1396641c, 0xe5b902f1, 0xebf969dc, 0xd6554e9b, 0xfd7eebe2, 0xfcffb32a, 0x199ef683, 0x347c76a6,
			0x28bc9e2b, 0x03ef67eb, 0x0e8cbfe4, 0xc5741e6a, 0x73b959ce, 0xe3b0f14d, 0x7ffe5848, 0x0ca8633a,
			0x1a883dcc, 0x0c19c8fe, 0x4302d253, 0xfb679c42, 0x2c67f1bf, 0xc25ee8b8, 0x76392378, 0xf5bad525,
			0x0ee8b311, 0xcbdaedd6, 0xcf7172e5, 0xc72b964f, 0xaabd0ce3, 0x81aa29e2, 0x6f7d20e2, 0x7d8af936,
			0xe5ec7e1d, 0xfaa68b54, 0x523d1304, 0x3e6e30a3, 0xf1a5483e, 0x478df569, 0x644f6db3, 0xb4f2299c,
			0xc2063e57, 0xf62fbb3b, 0x499add41, 0xa37980ec, 0xe994f4e5, 0xb03d024e, 0x587d022e, 0x9e0aefc0,
			0x9d64c069, 0xb76491a6, 0x73672e51, 0x5dc94490, 0xe9bd797a, 0xe9a8f849, 0x999178f2, 0x20c44e08,
			0x39ae23fc, 0x234ea87b, 0x5e226dfb, 0x3d0a17df, 0x1462a096, 0x8035e69a, 0x9d997499, 0xd409286d,
			0xb7627345, 0x4bfefa41, 0xc89e2ca7, 0x9bc7440f, 0xf1fb10cd, 0x7ff41eec, 0x00b17906, 0xfc75d58a,
			0x54fd400a, 0xacdcd7bf, 0xcedf6712, 0xae79a217, 0xf6858f63, 0x38b5c62c, 0xcda8e854, 0xb9491336,
			0x3b0f2017, 0xdd26a547, 0xe002c953, 0x668ed6f4, 0x7bb17769, 0xbe316f1a, 0x5d0af1b8, 0xf6c486c5,
			0x693fc564, 0xbff13f58, 0xa5152a1e, 0xf1b17340, 0x4d2d2c9b, 0x4e6c39c2, 0x51ae78f1, 0x60b922cc,
			0x5dbb0ef6, 0x2266519f, 0x6bcdf16e, 0xa1bbf450, 0x45751688, 0xf7d35587, 0x877419c8, 0xac9fa7d7,
			0xbf424e0e, 0x2c1c46df, 0xa1131c65, 0xc92b2b01, 0xffc5f8bf, 0x87a5642e, 0x8aa108ea, 0x68fcf4aa,
			0x9d43395b, 0xb4a50be6, 0xda04f2a1, 0x158ff865, 0x8e7f288a, 0xb069840f, 0x84518b49, 0x0a3c1461,
			0x2fcadff8, 0xc4e98dcb, 0x47b040b4, 0x7fb728a5, 0x6b78a7f8, 0x2d8c5afb, 0x7efd73ca, 0xce537d84,
			0x3ca6de47, 0x60b30730, 0x31aab7d9, 0xc2e45d2c, 0x3927cfdb, 0xba9e03c4, 0x52e4d17f, 0x0cf19aef,
			0x31fb73ad, 0x304c7350, 0xa0319654, 0x1a234de0, 0xc26807bf, 0x658ce763, 0x77009e2c, 0x52118749,
			0x0e109e01, 0xf9201cd3, 0x4e7def6f, 0x73e4d7fa, 0x3118c2d6, 0x5f9139fa, 0x6deba811, 0x3c57561d,
			0xfd2b784d, 0xac0afe56, 0xf9485af0, 0x62f54f90, 0x3129c525, 0x4a045bea, 0xe1974bfd, 0x00000000,
		},
		{
			0xfc7d9c8f, 0xdaaa1de4, 0xa76da90d, 0xcd59d767, 0x84abe6a0, 0xb2de6949, 0x0b325fb9, 0x3f659ac2,
			0xd6f91009, 0x6400de12, 0x28fdfeec, 0xfc85fb9b, 0x0854b3f2, 0x38bc9440, 0xed029756, 0x17cca148,
			0xb8560ff9, 0x85ee545a, 0x1b5ef3bd, 0x63ae6c9c, 0x865b7872, 0x407c2f55, 0x2f69ec8b, 0x88f628bc,
			0x5650cfe9, 0xbdfe58f2, 0x376a18a2, 0x54edf306, 0x5c73dddd, 0x5bfcb649, 0x6e9507e0, 0x89198261,
			0x42017cab, 0x35c384fa, 0xbbb4ea01, 0x4380cdc8, 0xbb2f3d8f, 0x950ed2ec, 0x0b1fafd3, 0xaf02099e,
			0xcc832593, 0xe59d0eab, 0x77b24d15, 0x1abddd4b, 0xdd8620e0, 0x40988ac3, 0x5849caf0, 0xe4c178f3,
			0xa5e4079a, 0xaaa685a9, 0x581420a4, 0x6c8ed158, 0x1f32cafe, 0x155292b0, 0x7ec92f21, 0xaff41a84,
			0x61a6aba7, 0x94d379fb, 0x249b0693, 0x7762e484, 0x20fd084d, 0xc8aa45b3, 0x1057b16c, 0xa0a97939,
			0x516e5d0f, 0xa397c3a0, 0xa3bb2bfd, 0x134e4444, 0x3ef8a90f, 0xa7d8d1e8, 0x70f16686, 0x814303f3,
			0xcc6241df, 0xffb0fdca, 0x70abe7ba, 0x55ec49fe, 0xe30348ab, 0x27763584, 0xd7410be7, 0x8d5b464a,
			0x958220c8, 0xe668799d, 0x7213dab0, 0x2f686635, 0xd2a20f24, 0x2b18fa7f, 0x075c4ff1, 0x7f7abc92,
			0x5c1a7a96, 0xa05afeed, 0xab2f7789, 0x7ffe8683, 0x9d03ff3f, 0x2e679ce5, 0xd62e0bbf, 0x2e5fec9d,
			0xe2834123, 0x39ece1dd, 0x56f360cc, 0xe81a2dd1, 0xe67c8aa5, 0xc6c8dae6, 0x14babb63, 0xad06bb8d,
			0x6166013c, 0x814b16d6, 0x64db1db7, 0x71094b89, 0xd0728223, 0x936bda59, 0xe05bcffa, 0xb5169e5a,
			0x7225968d, 0xea1c9285, 0x9510da33, 0xd1ad9e84, 0xb9a9df5e, 0x925afe0c, 0x205e69c5, 0x82d73664,
			0x3572f09f, 0x08f37e1f, 0x799cab9c, 0xb9a4402f, 0x84cf1229, 0x4bb8e679, 0xa5e26725, 0xcddb933b,
			0x74015958, 0x349bd374, 0x2175f00e, 0xeec5ad85, 0x7fed4eee, 0xf8bfe396, 0x1c2dac31, 0x7cce275d,
			0x2b0557bd, 0xb6a2222a, 0xe05df4bf, 0x0ec8ac94, 0x67154340, 0x1e702209, 0xba081116, 0x6520dd64,
			0xa5ef8ee7, 0x659402d9, 0xb1c4766d, 0x4f8570bc, 0xcf785287, 0x27584e5c, 0xccb3aa18, 0xda3e04e4,
			0x34035c7f, 0xb1b19fd8, 0xf5ecc4bd, 0x1eb95fd6, 0x36c6791b, 0x52dba038, 0x76913f0e, 0x91c57fa3,
			0x2ed4b7e9, 0x898b4147, 0xc3ff1bcd, 0xa4e5c869, 0x415672dc, 0x8879de53, 0x251c2536, 0x6b175e2b,
			0x81f86693, 0x2d1d5721, 0x71474c46, 0x93dd068d, 0xaf124205, 0x0ef378cb, 0x74e1debf, 0x9b0ee2eb,
			0x861d6fb4, 0x753eb41a, 0xd5cf8f12, 0xe55d850f, 0x20ebcfe6, 0xe7da7a01, 0x590bb9d6, 0x792b4e22,
			0x9e892982, 0x2e48beed, 0x7ae986fb, 0xc51a90b9, 0x1d601318, 0x6405ac8f, 0x84ed0df8, 0x645edeed,
			0xd3d7db6b, 0x7df1b2b3, 0x54fa24e7, 0xdd449491, 0xda961a83, 0x7f7d7e12, 0x18b388ed, 0x0212973d,
			0x532f9bae, 0xbf06535c, 0xdbe45e43, 0x2970bc29, 0xc6c198f5, 0xed5d4f87, 0x4eaeabfc, 0x05a25e98,
			0x19765b67, 0x18db669c, 0x60715a2c, 0xe16cbcc0, 0xc1d24448, 0x8dbb2276, 0x31aaeb22, 0xcdf6de92,
			0x870502c6, 0x9b7316e8, 0x249d884d, 0xa8a71290, 0xff81ce68, 0x3521de9a, 0x61a44d9d, 0x615e601d,
			0xe3ef04c6, 0x0486d28e, 0x1684ae39, 0x120e6f7e, 0xf6892157, 0xa9bea128, 0x6a087f07, 0x4cb4faf9,
			0xaf303607, 0x45785759, 0x7630c62a, 0xe99e7110, 0x877e0378, 0xf95527ff, 0x4f3d3f20, 0x07683efa,
			0xce1897f7, 0xbb77bbaa, 0x2dfabff6, 0x04923ddc, 0x3ff412ee, 0x462aae8d, 0x05c46d2c, 0x3dd06add,
			0x3d7d1e81, 0xd7eb6a9e, 0xbeb7052f, 0x50129947, 0xea76ce7e, 0x0d520efa, 0xcb190de5, 0x5fe73fb4,
			0xc6a7b060, 0x8b7971df, 0xc19f3976, 0x0b1f6133, 0x97549b06, 0x3927cf03, 0x1c0696be, 0x510dcd8e,
			0x64959dfb, 0x67ecb039, 0xf2f0ad39, 0x46406098, 0x48dce30b, 0x4c5c6090, 0x4b069ae8, 0x61078070,
			0xd95cb4ad, 0xea990b10, 0x6c74fe5e, 0xa123bfbd, 0x6398feb6, 0x021f286c, 0x1c8bf86b, 0x96fee184,
			0x746c801c, 0xffbaa7df, 0x1fc40906, 0xe167a246, 0x13df2673, 0x531dfb55, 0xf42341cf, 0xe2000d3a,
			0x7a20ac0c, 0xcf4e2dab, 0x2bf0bb58, 0xb41e7d19, 0x6b08f511, 0x981605b8, 0x80afb838, 0x2e67995f,
			0xdf2da022, 0x4d0f314a, 0xcf8ae044, 0xa9787a29, 0xdf88b7cf, 0x60a9d3c1, 0xa8e7cd06, 0xea972123,
			0xd18db83d, 0x5d6e669c, 0x74cf33ed, 0x66ca0b52, 0x8bbe45f9, 0x9665b851, 0x15314d2e, 0xa953af96,
			0x0541b78b, 0x1dd6d111, 0x69ef2836, 0xf0e604ef, 0x1893cac8, 0xdcf8627d, 0x0b103abb, 0xfafbde7f,
			0xbca65a4c, 0xd87d46a7, 0x21adba6a, 0x78813468, 0x35e434c7, 0x75dbb767, 0x89b061e2, 0xe2252c48,
			0x0233649d, 0x5109187d, 0xc28c478f, 0x714f225a, 0x6010026f, 0x702de7f9, 0x55be96b1, 0xa9a9bb7f,
			0x8a70558f, 0x2f19a535, 0x60b2fe1d, 0x559769c8, 0x21d27e58, 0x2a095969, 0xf4ec164f, 0xf2e3005e,
			0x71a84bde, 0xcadc9e17, 0x15f48f87, 0xd17381ee, 0x75a8de46, 0x64bd5ae6, 0x875db4a0, 0xda72be1b,
			0x9a8547e3, 0xf44aa747, 0x4bbccd94, 0x1a09dbc0, 0x290cf43e, 0x5aa21551, 0x0f8a73ff, 0x6a40aa73,
			0x3bc7d9f5, 0x3e85ceab, 0x18f3f250, 0x76470ba9, 0x5538b66a, 0x84f28828, 0xa9492a49, 0xe86f08ce,
			0xfcbbd388, 0x58753a4f, 0x4f6efd38, 0x4ed11643, 0x481af6d5, 0xc51b6084, 0x6d4eb595, 0x948297fc,
			0xe53b7c59, 0xeaab2944, 0x85828b2a, 0x0083a5ab, 0x1a56a6d7, 0x6bb2d5c2, 0x9731aeff, 0xebfaf1ea,
			0xc5c07515, 0x5d58d1e3, 0x68bffafc, 0xb8b6b061, 0xbc5e84e7, 0x706147cc, 0x60146d3d, 0x3c92cbb2,
			0x0653d2b0, 0x49e37c99, 0xdbbb1334, 0xfb1d17d7, 0xaa24be62, 0xe88d865f, 0xe24a917d, 0x9d258c39,
			0xb99b630a, 0xe9f83501, 0x02599dfc, 0xf58b5026, 0x075b6da6, 0xd7679a29, 0x19aa7399, 0x3b89b070,
			0x5a8391b6, 0x3b8b2085, 0x974f96af, 0x4f892891, 0x9fa942f4, 0xb9d911cb, 0xcd751312, 0x6710b537,
			0x37596267, 0xd4d14c34, 0xbad376da, 0x66cc968a, 0xdd958e1b, 0x4663ca40, 0xa0398422, 0x8e6c0261,
			0xaad1462e, 0x4c7661cf, 0x06698d5f, 0x4609b20e, 0x4bf3b1fe, 0xdfa2ac70, 0x5086ca0d, 0x776257a2,
			0xf9c8f205, 0x2f8fb4e8, 0x955cc902, 0x0b7a9ea8, 0xc162ff1b, 0x11f1b037, 0x3632d134, 0xbe09adfc,
			0x3aea9d95, 0x7ade8b9a, 0x14f84104, 0x1319c79d, 0x8028560d, 0x198ec0fe, 0x175b5fa9, 0x88a87fa8,
			0x403a3f7d, 0x6c61b948, 0x720b0f0f, 0xb8b82ad9, 0x6f4b30bf, 0x1230f373, 0xb2fdd510, 0x84d226d8,
			0x31163a61, 0xdcdca374, 0xb469063c, 0xfedd32ee, 0x50c2102c, 0x1e65b9ef, 0x6a097275, 0x8a26f3a4,
			0x1bc03c3c, 0xafa7d209, 0x330fdd7e, 0x05d75a28, 0x8d5616a7, 0xe10c0ad4, 0x9a6c27e0, 0xe65ad846,
			0xc2182d3d, 0x5704d4d7, 0x6064e05d, 0x4d8b54bb, 0xc9a3d472, 0x18cd3891, 0xf8272623, 0xa287ea4e,
			0xe3c10b89, 0xb6865ca0, 0xaae7cb56, 0x2e12e003, 0x956b01b4, 0x29f5e43a, 0x846021f9, 0x4b10f063,
			0x090f0c3a, 0xfa242176, 0x50069577, 0x5bf06948, 0x2fd6edcf, 0xc34e5e2a, 0xa9eec7ba, 0x424d1921,
			0xa95e3c26, 0x4ea42db3, 0xfe36b4ee, 0xdb2ed876, 0xee8092d0, 0x401e7bb6, 0xf59b2e8e, 0x0967ea59,
			0xf7703ea2, 0xb9de6e1d, 0x5545aab5, 0xbf5c6d3f, 0x5bc9b13a, 0xf9308f45, 0x63430401, 0x6a845638,
			0xc533d855, 0xa9173c0c, 0xf9e8b43b, 0x3f923a34, 0xbd535296, 0x0fcb40f4, 0x530f4ae9, 0xcc3eb305,
			0x9942b0bf, 0x5841970c, 0xc0c28ff1, 0x31b5a4d3, 0xb2ed980c, 0x789b0544, 0x2506437c, 0x35ba1632,
			0x880cc12e, 0x0653c9b0, 0x3276b4aa, 0x536c00e0, 0xbc53acd4, 0xf6fd84b3, 0xffb3f1f7, 0x0fe9ea90,
			0xebde2212, 0x2f86d482, 0x229dae9c, 0x7f98fce7, 0x813c3697, 0x8d3180cd, 0x23f7385f, 0xceeb2e19,
			0x5d696cc7, 0xc1cac261, 0x6c4f09cc, 0x78f5a509, 0xdb68943f, 0xe1510740, 0x4883a82c, 0xd29de0a8,
			0xd4291a13, 0x0bf486f7, 0x326999db, 0x56b6e61b, 0x68b7128e, 0x82cf3cdd, 0x50475c79, 0xfa179d83,
			0x832deed5, 0x4e0e08f0, 0x67b9cf4a, 0x5de63e17, 0x75c88545, 0xce6675a9, 0xe0701e6f, 0x8e5a950f,
			0x942bf61a, 0xab42dadc, 0x722cd954, 0xaeba230f, 0x18d0ef42, 0x51b4f8b9, 0xfb53ea45, 0x57578563,
			0xbdf31725, 0x94b3193f, 0x21d50217, 0x997a91b4, 0x18ae53ec, 0xba7cfb98, 0xd3ac69e2, 0x7a7fc60a,
			0x1bb5fb9a, 0xc065ccf3, 0xe4903e04, 0x4db0fe02, 0x02d41523, 0x813548a9, 0x66e0c4b0, 0x38f18f93,
			0xc22e3a5e, 0x7cff0cc2, 0x96b0293d, 0x2400a5eb, 0xd5fe120b, 0x9cd47669, 0x88fdded8, 0x3bad89a4,
			0xa8dcfd02, 0xdb42bd95, 0x7794ab98, 0x902f9a95, 0x8ef0b204, 0x58614dbd, 0x00f00d9d, 0xbe0f37e1,
			0x8d76fc57, 0xa1768c56, 0x7a79ecc3, 0x0b1bbe44, 0xdf4e72f3, 0x4d70dbd0, 0xd48eeab0, 0xdedce2b8,
			0x3269e266, 0x058cd4fb, 0xefe7d516, 0x8592bf60, 0x70cbaaa6, 0xcbc076f1, 0x960c0b18, 0x00000001,
		},
		{
			0xbcbd93a9, 0xe57c4976, 0x928d9308, 0xa89169ba, 0x5b9c5855, 0x1c2662fa, 0x5a449b49, 0xbb6af6ec,
			0x76af8311, 0x8b8c39e4, 0xfa81bc43, 0xe99ab32b, 0x84065c84, 0x8ef243ea, 0x940399a6, 0x53bd827e,
			0xb13917ec, 0xef486299, 0xa8c61398, 0x9f7d127b, 0x2de809b2, 0xa2fe52a7, 0xcfb9c54b, 0xd54a4c90,
			0x1355f508, 0xef686c05, 0x0668bb0e, 0xfa7bcbe5, 0xe7ea1f3f, 0x3227bb75, 0x759747ed, 0x884bcf68,
			0x30363c5d, 0x1f9cc941, 0x95abef3b, 0x4df2028b, 0xd3628ee9, 0xc571fd0a, 0x1e3ff0cf, 0x0c7d56bc,
			0x5904e175, 0x169e945d, 0x26949ff8, 0xac71ca35, 0x169a3860, 0xc7cf79ec, 0xade8dbce, 0xef880716,
			0xd6b9a555, 0xabce886b, 0x7893f500, 0xa9138983, 0x70fc2d46, 0xf027acec, 0x52923c74, 0xd203b50d,
			0xd203924e, 0xb084d74d, 0x52add9d9, 0x45857d0e, 0xaa30651e, 0xe5254e17, 0xe68fa443, 0xb61be4ab,
			0x6abab7f5, 0xb1660e48, 0x23468f91, 0x6f6e52ca, 0xf199932f, 0x5e465adf, 0x7f7852bc, 0xccf9f507,
			0xd1f313f5, 0x4fc4fc3c, 0x930c8900, 0xb64dac70, 0xd8f9f602, 0x497d4b86, 0x601813c1, 0x9c7b1a98,
			0x99c4d832, 0x1638adc0, 0xa5b78e4d, 0x122791dc, 0xbb12a546, 0x06c08c07, 0xec14021f, 0xe77dfaf4,
			0xad65fbed, 0x0f49f449, 0x4fbe3c40, 0x41a72d84, 0x404a3a44, 0x3c5f993e, 0x3e8188e1, 0x4855d0d6,
			0xa680fd3b, 0x1a533e20, 0xed74aa21, 0x0e038341, 0x672f1534, 0xb9b67db0, 0x89d43918, 0x2f9213ff,
			0xaa1dc300, 0x80a15ce4, 0xb9711ca1, 0x99fc2fe9, 0x95ddcb6d, 0x33873a2e, 0xa3c5c5a8, 0x2893d4bf,
			0xc1e8513a, 0x090f79c2, 0x8ee6ddbd, 0x6a8616da, 0x3f8e380d, 0x009f5903, 0xf8b34283, 0x764baa56,
			0x02bf5931, 0xf57330b1, 0xfd60c318, 0xbebfba69, 0x06896d6e, 0x390c4a11, 0x9d1d9aca, 0xff9a005a,
			0xc64f8fea, 0xe03c226b, 0xe62f4dfe, 0x5fff9e34, 0xfca44a52, 0x1b991fa0, 0x4df0b4bd, 0xd0fe657b,
			0x5640f2ed, 0x9da1e6f9, 0x8a2b1e57, 0x83da901a, 0x58eba885, 0x2178f375, 0x4909f3c2, 0xbb8020c2,
			0x7616551f, 0x78e3ba75, 0x6e9f1a18, 0xdcf1dfe2, 0xe26d45da, 0x25f8ad97, 0x18d5e1ce, 0x8d2c1270,
			0x63aea882, 0x678ae5e8, 0xdd7cf7be, 0x760ee0e2, 0x990d66ee, 0xbcd5d8dd, 0x0f6e09ea, 0xf83ee46a,
			0xc49c354f, 0x537f46bf, 0x3aad880d, 0xb437d572, 0x9b794609, 0x80c43599, 0x1747f15b, 0x4676b182,
			0x9c9ea526, 0xf587c2f1, 0xdd058f6d, 0x20508cfc, 0x11b1fcce, 0x76f0f112, 0x8dca059b, 0x25109a53,
			0x391b0c1c, 0xfaadd404, 0x4700e505, 0xcba4fa10, 0x93b7442f, 0x67ee69c5, 0x40770d43, 0xd1a87bfc,
			0xe72b6423, 0x0c3e70ea, 0xef70a4eb, 0x24e6752c, 0x192911a8, 0x4b99ab83, 0x9fc88448, 0x7a489f2d,
			0xef981742, 0x9593f81c, 0x3ed15fb7, 0xc7957fcf, 0xff9f976a, 0x6b4f8765, 0x795d104b, 0x064a84e3,
			0xae330381, 0x5535a6b9, 0x791cb0b0, 0xa3676264, 0x234347b1, 0xbb9bf99f, 0x612417da, 0x51b88ec3,
			0xbdb4b4e7, 0xd6c36923, 0x319e9d39, 0xe985e2f5, 0xf1bad642, 0x2ef7c652, 0x58a6a344, 0xeb8b5a3a,
			0x9fdc6539, 0xfe2d3217, 0x0bd83b35, 0xcce6888c, 0x5245d7b8, 0x8bdd2de8, 0x5835d17e, 0x793f0611,
			0xc4d54440, 0x4ae47bbd, 0x562d868f, 0x7ae1c888, 0x68a2e423, 0x1ce02d58, 0x22cbdfce, 0x85e47511,
			0x63ce245f, 0x1f762513, 0x9718b9ee, 0x5b829e33, 0xd463fa88, 0x1647cae9, 0xd5b73200, 0x3db00874,
			0x96939481, 0xea42a31c, 0xc37b45ce, 0xb11b64a5, 0x0410a8e7, 0x8c2c828b, 0xac7b883b, 0xd81e0365,
			0xcab9baa6, 0x0377a768, 0x4b4823a5, 0x37159b5f, 0x2dc989dc, 0x7d891aeb, 0x7e25b6fa, 0x94a63918,
			0x3beaabb4, 0x442dca74, 0x654add68, 0x928fbb98, 0xbb1f62a4, 0xf07cdb9a, 0xfa5f7c47, 0x936dbcff,
			0x31458008, 0xa02f2843, 0xe3cc7f2d, 0x06f1ab8e, 0xcd28c1f2, 0x71936fdc, 0x3efc79f4, 0x45dfd1de,
			0x7770c9fd, 0x1cbb6e2b, 0x2341702d, 0x51336040, 0xcb9ea101, 0xd9c3f94e, 0x986704d6, 0x063bd238,
			0x1b149c54, 0x14185a0b, 0xc935720f, 0x1a751f7a, 0xa9f7e27f, 0x1d26f528, 0xed1bc4f5, 0xd733af13,
			0x027f9cf9, 0x1d2624f2, 0x89a2214c, 0xf8364e23, 0xb1e1fb49, 0xf5c2bbd7, 0xa0d5df3c, 0xba8ba9dc,
			0x42a0ec0d, 0xc8c24063, 0x591a70d1, 0xae6407c1, 0x8c365ef1, 0x24dee76e, 0x242a9e1f, 0x4605c907,
			0x59232d36, 0x8b5afb7a, 0x018328fe, 0xac84b83c, 0x8a3ea2f4, 0x9c6b97e4, 0x94bc8a53, 0xed72d2c7,
			0x88463c91, 0x4c0b3305, 0x593be011, 0x2c418d86, 0x9f37f72e, 0x2145dd05, 0x16f8a04e, 0x4c30ed6c,
			0x9106f8d7, 0xe9ea68b0, 0x807a105c, 0xa86c43b2, 0xeec11fcd, 0x6d30d7e8, 0xce09f8d9, 0xa95e839b,
			0x04c464cc, 0x4e1989f7, 0x74a9021b, 0x4be16182, 0x8d21f89e, 0x9cc04d61, 0x5a2988c9, 0xba828797,
			0x0c7560b7, 0x9d4cfdf3, 0x0c1f820f, 0x24ecf446, 0xf122a62e, 0xceddbe01, 0xd5e0909b, 0xbb28ba47,
			0xedda1f70, 0x8fb9e03d, 0xf28404af, 0x69052735, 0x8a68ff9e, 0x09142806, 0x426ad1b0, 0xad0de4f3,
			0xa944bb34, 0x7ca4d448, 0x90b5a096, 0xe675a9bb, 0x34bf3c42, 0xaf759f59, 0x270fae90, 0x2586b626,
			0xb9c6cd0b, 0xbac4756c, 0xb7db2f04, 0x2d1748a7, 0x1da6b48a, 0x0c28529d, 0xb233bf9d, 0x24c65828,
			0xe63be80f, 0x7bbcf136, 0x4ff00c27, 0x77364a7b, 0x28639d8d, 0x89034514, 0x9eebfbb2, 0x6356bffc,
			0xd8cfef20, 0xd9be5393, 0x099159d6, 0x330825b0, 0x4dd24554, 0x622dc9df, 0xc2cd1906, 0xafc867eb,
			0x2710fcb5, 0x32561dad, 0x8a908778, 0x16983e7d, 0xbd44cbba, 0x19174d02, 0x8a91c4c5, 0xba5d9e0e,
			0x463851c0, 0xb6f694af, 0xe883aae9, 0xe74b3d71, 0x372a6c23, 0x84c5991c, 0x22f08473, 0x4ce2e27c,
			0x6996f5b2, 0xf8161fe6, 0xcdb5d11f, 0xe709022c, 0x7452ecc7, 0xcbd205d2, 0x15d68164, 0x0eb78e0e,
			0xae9a3618, 0xd10a6ee6, 0x33fa0d45, 0xbb0c6667, 0x3b9d4c72, 0x325f4c58, 0x919fc4ce, 0x3f599e81,
			0x586d49c5, 0x3547794f, 0x9dcbe3e3, 0x26939729, 0x47ee5328, 0x1357f022, 0xd0237832, 0x5715cbb9,
			0x604cc82d, 0x1fecd9e1, 0xa7cc4526, 0xd953cbe2, 0x01680509, 0x32d7e9f2, 0x8d25b88f, 0xe09df15a,
			0x65662a2b, 0x309518c2, 0xad09b456, 0x860d247b, 0xe2b432d1, 0x8850c2e7, 0x8808cb28, 0x3e5ab2a2,
			0x20f58c0e, 0x2eb41e6d, 0x8c335f37, 0xee14dcf5, 0xd207e8d6, 0x5416b5f6, 0x17ae3d7e, 0xceafdea5,
			0x0febd26a, 0xb89a9456, 0x53c5e6e1, 0xb9906da4, 0x97d4aff8, 0xe9feb0e8, 0x44dcc8df, 0x7911bde2,
			0xe1162d88, 0xab89f532, 0x97338e6d, 0x5e3c991f, 0xc0f157fc, 0xa7daf6f9, 0x6ac9b692, 0xaf79c441,
			0x59deb11d, 0x713e163b, 0x351cea77, 0x5030555a, 0x9f291096, 0x5b3b005e, 0xa6ab8a6e, 0x3016ad6e,
			0x1bcd0018, 0x461ac3a2, 0xc404c5c3, 0x4d7f8ddd, 0x7895e267, 0x73f6722e, 0xce0d2d4d, 0x33d05b6a,
			0xa1718a20, 0x3076b6ab, 0x873dc99d, 0xe4e35ab6, 0x9c95819c, 0xda9435c2, 0xf9f24861, 0xf8400755,
			0x66d07e00, 0xd300976a, 0x369d1346, 0x044f1209, 0xd86fbc6e, 0xb9343695, 0x741b4ed3, 0xb79333b6,
			0xc4977a73, 0xab2dcf7c, 0x16ada8a7, 0x8d2f36b9, 0xe64f9406, 0x20146297, 0x2340697d, 0xcbf84bcc,
			0x9ff122c3, 0x25599aa3, 0xd43e38ce, 0x2432a733, 0xf8dd556e, 0x6a853404, 0x7e42546b, 0xcd3e8929,
			0x9c7a8560, 0x152fb5a2, 0x352b5db1, 0xd4a99062, 0x9fa5cf77, 0xc76d32dd, 0xbe4171ae, 0xdc042fc6,
			0x6bd91c97, 0xb04dea31, 0x9588dde2, 0x55919fcb, 0xaccc1419, 0xa3ccc02d, 0x3da20113, 0xef38959b,
			0x58f9d789, 0x686c9bfa, 0x1ed94342, 0xa37c0390, 0x535cefb9, 0xdf62ea74, 0x5fb36ce0, 0x5435b032,
			0xa446923c, 0x7fabb67a, 0xfc996455, 0x6548731b, 0x2675a355, 0xb250a2fa, 0x6b66efd5, 0x6dfc7474,
			0xc24f88a0, 0x455515a5, 0x1b026e0c, 0xd55d6357, 0xd9f77b1f, 0x9fc7a5ae, 0x316c1be2, 0x15cf4157,
			0xe8d76789, 0x11040ca3, 0xf261f18c, 0xc8a724cc, 0x048ce8c2, 0x8dbd0128, 0x6e18ec6f, 0xc40f476d,
			0x5096eb50, 0xa78d06da, 0xfde6d577, 0x663a1997, 0xb7258767, 0xc5b410ce, 0xa5edf969, 0x05147d02,
			0x3cfee453, 0x36dcc264, 0xb565e9bd, 0x34e08582, 0x049447c2, 0xad08a11c, 0x12cdb6cd, 0x92e7c641,
			0xb36e6d1f, 0x3e9c7cbd, 0x24adc9e6, 0x207ffcb3, 0x842778cc, 0x90c190a6, 0x7def8243, 0x2e39d709,
			0xc9667fc7, 0xeff149d1, 0x08e6864e, 0xd40b117c, 0x4a3b4819, 0x3e322ce1, 0x04dc7b66, 0x6d9c8768,
			0x53774172, 0x4b43aa97, 0x5623b33e, 0x938cc528, 0x96b409f2, 0x4d4deddd, 0x58678f40, 0xc528ff8c,
			0xa9596d64, 0x553ff9c1, 0x2b5a710f, 0x52958af1, 0xdfb986b6, 0xb03d72b9, 0x5d83fb02, 0x62786d09,
			0x0e82923f, 0xe4836a25, 0x9a7a4b57, 0xea202896, 0x799a801d, 0x795d2b4c, 0xec72a8bb, 0x3f760f32,
			0xd3c2c96f, 0xe557f6da, 0x58e6a8b4, 0x944f1461, 0x4926326f, 0xe9a8b83d, 0xb97f5566, 0x00000000,
		},
		{
			0x36acf59d, 0xb58e8381, 0xf644b1f3, 0x6254dc40, 0x640381a1, 0x2a52f934, 0x8129e793, 0xcf85196b,
			0x962bf14a, 0xe439ef1a, 0xf10bd160, 0x7f200a9b, 0xc4b06249, 0xd6b1f3bb, 0x8f0fa91a, 0x36c8e6c2,
			0x1b462e2c, 0xdb8c8292, 0x004e6ec8, 0x78123c52, 0x826a9049, 0xa3de97bd, 0x324593c7, 0x940f5715,
			0x8711bfcb, 0x5abc1360, 0x8c55fac8, 0x3e565bc0, 0x71e51bec, 0x7ff0e066, 0x93e06635, 0x661a89c8,
			0x79a9605a, 0xeb4e02c1, 0xe76b2864, 0x3db4830d, 0x17e583cc, 0x046ff626, 0xa44ee38b, 0x4101494a,
			0x6631ad11, 0xb9e357df, 0x65bb53d7, 0x3d508cc2, 0x8e0342c8, 0x04da485b, 0x220083ca, 0xae9834f7,
			0x95b55f99, 0x1e7774b3, 0x642f6b6e, 0x0e8f4053, 0x039fabe1, 0x0f291732, 0xc60db291, 0x85dd02da,
			0x6762d801, 0x4e5c577b, 0x8dc889ba, 0x941e092a, 0x3b40032f, 0xadb63fa2, 0x0b44009e, 0x5a0e4f66,
			0xa8299a6a, 0x7253d898, 0x991a3079, 0xcce3a9f2, 0x85761803, 0x0259407e, 0x31b3202a, 0x45378bb7,
			0x6c143f5a, 0x917f258b, 0xe2ad3085, 0x1d0929e4, 0x7fc75791, 0x0e9a281d, 0x128791af, 0xd5d21603,
			0xe07c81a2, 0xaeb0e9c0, 0x63453bc3, 0x2012f211, 0xf9e28e8a, 0xd33de846, 0x3393f945, 0xe9ca1f0e,
			0x6b6b24d3, 0x2688a858, 0x781f2e44, 0x6f703dd6, 0x253c6431, 0xe69a3914, 0x4b516afc, 0x5d2e6353,
			0x635dbc7e, 0x7daaf55d, 0x1c15f03b, 0xba0bdf98, 0xd8861dc5, 0x002ad2a8, 0xd13a812d, 0xbf028c02,
			0xb977c5d4, 0x1749faa9, 0xec6d8ac1, 0x176b72c5, 0x44af9749, 0x8d5f6739, 0x9058a725, 0x17b94287,
			0x2e70575c, 0x2eff446a, 0x48de731a, 0xa9bd64dc, 0x700505f9, 0x61b255c3, 0x44ee5fb4, 0x2a97c6e4,
			0x5654e154, 0x0d790fa5, 0x12510163, 0x1ffda762, 0x60104ef1, 0xd6704d6c, 0xf19f23d3, 0xab294d5c,
			0xc3f94836, 0x0585b5a6, 0x3a6c6cd2, 0x31ef7f67, 0xd24199c7, 0x3aca7931, 0x811cf1ea, 0x018e13c9,
			0x2fd8964f, 0xa291a3e4, 0x0e3ca20e, 0x087911e4, 0x6b4538e0, 0xbfd471a2, 0x5906b5e2, 0xf1f46f78,
			0x7e6453c3, 0x52dd48c3, 0xc777b9fa, 0x9417f0f4, 0x5a03ab5c, 0xb6c37e5d, 0x90844fc7, 0xbf598e7e,
			0xf3c12bfb, 0x19defc9c, 0x5d51dec2, 0xb3be56eb, 0x3031a376, 0x3f210362, 0xcf7eb5d8, 0x4a3746e8,
			0x264b30ba, 0xd8c90252, 0x7bcc5bb0, 0xd4d684ef, 0x5c500fc5, 0x4facc2c1, 0x31e659fd, 0xd5d70c15,
			0x9103aed7, 0x564f7183, 0x807b2ed9, 0xc67724a1, 0x510314cc, 0x7d28b63e, 0x95b5ce7b, 0xcba2eccd,
			0x9401ea9e, 0x9dd82e24, 0x002c5267, 0x7905f4e9, 0x1a7cb8b3, 0x1de1d972, 0x49945797, 0xe9332cc9,
			0xc823ef6b, 0xdda78cb3, 0xe33041e2, 0x5284d66a, 0xf83719e2, 0x56cb569f, 0x798db8c3, 0x13167b2f,
			0x61c3b51b, 0x6fe7608a, 0x6219ce26, 0xc4ef9e90, 0x2871a9bb, 0xcbb887f5, 0x5d9934c8, 0xf07cce3c,
			0x7c42b6a8, 0x0ca3daab, 0x645175dc, 0x9ac75481, 0x6f73c23d, 0x4716b012, 0x0297e88a, 0xcec71ce6,
			0x9d0b04b2, 0xde525264, 0xc17df66f, 0x685a4e76, 0xa7b7cb56, 0x95a99f71, 0xe6988bd1, 0x47d18667,
			0x5cd0db40, 0x5eb0bd84, 0xf2e4b577, 0x8b718b2b, 0x2a05375d, 0x8c61ac0b, 0x2ec09248, 0x225a5eaa,
			0xf221a1fc, 0xf9844ecd, 0x0416a8da, 0x521c3dfc, 0xdbcf0e6e, 0x15748354, 0xea17e79a, 0x9645f5ee,
			0x5f0e532b, 0x9d18fa03, 0x803556d7, 0xa78b7c0c, 0x9f7a23d7, 0x878aabd6, 0xa53804dd, 0x70995a69,
			0xb29cdc1d, 0x60702a86, 0x027264ed, 0x88de26fd, 0x7c3098cd, 0xdbddff7a, 0x7f039c90, 0xdb06d071,
			0x156f061e, 0xb61526a4, 0xf2c54629, 0xc0f0d697, 0x2f09642c, 0xcc604445, 0x8585cad5, 0x7b1e57f1,
			0xf9d82450, 0xa53d1138, 0x3b55208a, 0x56c95788, 0x52db313d, 0x0a5dd0cf, 0xe12bca11, 0x4401d31f,
			0x82e74ffb, 0x90dd09c3, 0x3ff6f82a, 0x282745c4, 0x545bd313, 0x3041d6cc, 0xa0617e46, 0xd9e02145,
			0x65e3e03e, 0x20a24f3c, 0x2b809b49, 0x23bd88f5, 0x2f65ab94, 0x6eafcec7, 0xf7956187, 0xdc05bb15,
			0x73c6485a, 0x80145f1d, 0xe24e2723, 0xebc0d1c4, 0xa28b7cc8, 0x986b6b43, 0x96cb5e27, 0x0e68f27c,
			0xd40ac589, 0xcaa4b825, 0xf7e18251, 0x0c5c39c9, 0xc941da78, 0x2ad8f758, 0x1ca3f515, 0x46a797f0,
			0x64afd350, 0x3d9dc8f9, 0xde523e22, 0xe23254d8, 0x83bd96b2, 0x486bbf7a, 0xce70eb83, 0xa29d3371,
			0xf3557cbc, 0xc6234222, 0x2bce1900, 0x2531e249, 0x96a87450, 0x1f42b228, 0xfb2f8676, 0xf300696a,
			0x06339ca5, 0x33ff9d41, 0xc5e27cd7, 0x9225fbc7, 0xf69157b7, 0xb66524c8, 0x82267f8c, 0xc1e10ac6,
			0x051ede3d, 0x278dad56, 0xc1dd8f6e, 0x7198ee46, 0xe389a8d7, 0x61e91556, 0x707ba142, 0x2e1e4b66,
			0x9969b132, 0x9cae0fc8, 0xa5019120, 0x5bd018b9, 0x33b95852, 0x2b75f4cc, 0xa3647f51, 0xbfcd8ee6,
			0xe25b0c6b, 0x6d8ba7ae, 0xc28e4da5, 0x3c2eb7a4, 0x46044e33, 0x94abc4a2, 0xcb19443d, 0x4744b626,
			0xb59841f2, 0xb42e05d0, 0x8ee26cd0, 0x50101b93, 0xc2103b6e, 0xc53439dc, 0xb3c84bbd, 0x76c8b9d6,
			0x89ebb46e, 0x734a41a2, 0x2ab3d211, 0xbb8be82e, 0x30ac2dab, 0x5cdf84fc, 0xf7851f35, 0xcf77bec4,
			0x0b024ba2, 0xf7babe0d, 0x18f7925d, 0x52cd2eb6, 0x88a707ce, 0x7bdd9c88, 0x11c9d9f2, 0x14dc5605,
			0x586fee89, 0x59997214, 0x1c3d8883, 0xc0bf4782, 0xd01c1c56, 0xcee153a4, 0xf37c0637, 0xae731ec8,
			0x7b3504c1, 0x2f113aa9, 0xd8bb8751, 0xa4dd8284, 0x8f893b7e, 0xf0a1b4b1, 0x62af9937, 0x43486837,
			0x40f11e1e, 0xc3ea13ee, 0x91549a2a, 0xfef73cf3, 0x5f76d1c7, 0x3db2be36, 0x84b1e145, 0xf760a8a8,
			0xd47e3120, 0x880c5f4a, 0x1a184533, 0xe3401ed2, 0x2d0adf88, 0xcef145df, 0x59480a53, 0xcb8f7900,
			0xea99f1c3, 0xc0883202, 0x98ddf490, 0x2bee4369, 0x1c5a184b, 0xcd7be3f4, 0x0bc083e8, 0x9f1a2515,
			0x881dcab4, 0xe4e33c8d, 0x404f2cf1, 0x3a743d31, 0x8c564ca0, 0x84a8fd91, 0xe91bd4f7, 0x89d15219,
			0x72b61133, 0x75d1f2ee, 0x497c8e64, 0x4f8dab00, 0x4e1d9e5c, 0x84526692, 0xd9f9c292, 0x10f7f28e,
			0x01bf59bc, 0xeb4d5616, 0x4cd7d66a, 0xfe354c22, 0x62546580, 0xe947fd93, 0xa4bf3f3e, 0x33a72177,
			0xdfca9845, 0x0071d322, 0xf2cd761e, 0x18e4c10e, 0x75b1a6e6, 0xc8c96bba, 0x3a972989, 0xd8f46379,
			0x8292113b, 0xc2ca40ad, 0xb96c6090, 0x5cdce9f3, 0x4e27e912, 0xc211308b, 0xe66daa33, 0x6e0d8a6a,
			0xa5a66b04, 0xa23bbc3b, 0x35e83ddf, 0xa5c5c5f2, 0x41d0156d, 0x38b25ba2, 0x58aa808f, 0x4d40ea58,
			0x0c8af98d, 0x20de84eb, 0x0e1bfbc3, 0xed1b86dd, 0x060f94e9, 0x72d748e7, 0xbb196616, 0x1bf28b95,
			0x57194d3f, 0x9fc91c4c, 0xa9f7025f, 0x60d21ed0, 0xcbc61fc2, 0x7a1a1bc1, 0xa30905a7, 0xd9cc5805,
			0xc450dd89, 0xd703d375, 0xa159a43c, 0x8f85c43d, 0xc9ac521a, 0xbbe104ab, 0x170649a8, 0x10951447,
			0xb1c661cd, 0xb3098938, 0x72e03dd5, 0x392d6406, 0x8f3eb5e0, 0x154f7224, 0x49e42a41, 0x1fbf546c,
			0x2dd23df9, 0x74516aff, 0x0f166880, 0xefe2ba35, 0x56aaabab, 0x53d0d7eb, 0x4e17f510, 0x6c8bcac8,
			0x34a201ae, 0xcc41eace, 0x664fe232, 0x0cc25667, 0x4554ceff, 0x2c8543a3, 0xa9bb8602, 0x7e823873,
			0x4c39e01e, 0x31745c40, 0x1f091e08, 0xf3662124, 0x5e1a8d38, 0xa179ccf2, 0x664e8a87, 0xba97468b,
			0x27c1e955, 0x9a8d86a8, 0xff5288ab, 0xf19c3a64, 0x67a0f9ac, 0xb9666af6, 0xe39bfdf5, 0x3c9d3290,
			0x7c1fee2f, 0x75753d9b, 0x316dc3bf, 0xe82b6568, 0xb93dfd3e, 0xb8ee22b3, 0x4727e86c, 0x9029aff0,
			0x6e9cc615, 0xac861846, 0x10075110, 0xd1825820, 0x77eb4394, 0x788859f0, 0x878abd8a, 0xf53af971,
			0x2facfe79, 0x0c52dcbc, 0xce049090, 0xaf8d9873, 0xe6c79028, 0x9ac77045, 0xcb535159, 0x002b6e5e,
			0x5a349678, 0x52e70508, 0x3f87e4ad, 0xf485aa4c, 0x2cb8315e, 0x65170fcb, 0xb62d6950, 0x93a7a329,
			0xe688b944, 0xf313b0cd, 0x7ccf7c86, 0x24a9694a, 0x5a31a3ae, 0x6a15fd6d, 0xf2cb0d6c, 0xb9df048b,
			0xefa3aff5, 0x3dbdd793, 0xe8b67c5a, 0xd7502843, 0x36da0adf, 0x53debf2d, 0x6ef5a37e, 0x869bd67c,
			0x3518b1fc, 0x641b1f6b, 0xdf0d1033, 0x0418d789, 0xc620e0a3, 0x7c70e309, 0x672d8e99, 0x074cc524,
			0xbcf083ad, 0x72df7fec, 0x034596c4, 0x3133e273, 0x868c62c9, 0x56221fa2, 0x47e09a5d, 0xb920890d,
			0x7527bd0b, 0xac678a2d, 0x8aba255e, 0xd907e0f7, 0x4057d251, 0x9baecebe, 0x931a1d0b, 0x75d7c052,
			0x6d43b3ca, 0xb6f6d9a3, 0x6e529800, 0xa6e6b0f4, 0x5124c118, 0x92448d4e, 0xb1bc92ff, 0x9da027b4,
			0xb84676ce, 0x1006856d, 0xbb6c12c5, 0x4ab31732, 0x1b87ea2e, 0x14822be1, 0x04a1a54d, 0xdae03fc3,
			0x3711e045, 0x53818402, 0x10a76881, 0x014eaee6, 0x2d294c67, 0x45612271, 0x8d8af5d2, 0xa4817b31,
			0x5cfe34ac, 0x93abb026, 0x0103353e, 0x1146517d, 0xd864cf36, 0x9d4a92f1, 0xdc30491a, 0x00000000,
		},
		{
			0xf363dfdf, 0xa6d7300a, 0xefc70f42, 0x15e0cd64, 0xf239ac72, 0x8a0ce9cb, 0x3646dbf4, 0x96394532,
			0xaa2efa20, 0x82e9cdeb, 0xd6cb8967, 0xaab092f9, 0xb39bbf21, 0x099c3c6a, 0xe9241163, 0xb22e07a4,
			0x60eae423, 0x8261dcb2, 0x1d75f757, 0x1ac0ed05, 0xdaadbc38, 0xe93c8fa1, 0x319d42eb, 0x90004a56,
			0xb716da24, 0xfd84b181, 0x19ce327c, 0xc6c7a94a, 0xeccc6bb8, 0xcca99112, 0x1fc2030b, 0x2af7111d,
			0x9095471e, 0xa7c622c7, 0x71e60f52, 0x96f80df5, 0xa3069c92, 0xa94ae8fd, 0x9d334097, 0xba08d9d7,
			0x26901bf0, 0xcb3b5687, 0xee003e62, 0x38048423, 0x9e17e82b, 0x6d546dd6, 0x24527843, 0x86311630,
			0xf507e28b, 0x3ba0a69a, 0x5ed099c3, 0x76ad5bcd, 0xc5b0baa6, 0x10f56d35, 0x7365368d, 0x8294d18e,
			0xfa3bc337, 0x4a2e4dc9, 0xd679edf6, 0x01814d7d, 0xdfe81ea6, 0x29024df8, 0x9c799e26, 0x8324a00f,
			0x491bb2a6, 0xb7f91a40, 0xe1474795, 0xb0d1feac, 0x0198d1d0, 0x63b288f5, 0xdfc248bc, 0x7166c09a,
			0x99846b27, 0xc18b786c, 0x02a967e4, 0x7778b315, 0x059bcfbb, 0xe2a9cff4, 0x5d31824b, 0x02e28c15,
			0xb39e1c12, 0x798857be, 0x117ee3c5, 0xc5a60724, 0x453047a2, 0x44352c3d, 0xa7db0cfe, 0xe62e7c9e,
			0x60aa3023, 0x7ad87c43, 0x0dcfd152, 0xf9fc525d, 0x46ec7bee, 0xabb49897, 0x1c128b8a, 0xcd556844,
			0x8e4bf5dc, 0xd9839cf5, 0x5b48f1bb, 0x080ba079, 0x736474c3, 0xcae9e060, 0x800c7f52, 0x14905b5c,
			0x1cb749aa, 0xd9b15a41, 0xbd63c053, 0x63ed864c, 0x032176fd, 0xf71b2723, 0x62c8e639, 0x06c07424,
			0xb88b6c6f, 0x6ae0cf70, 0xf7b0f8c4, 0x9aa8598a, 0x652ef430, 0xd980ffac, 0xe0c6170e, 0x4474fba1,
			0x55ac6b63, 0x59dc227e, 0x19637b4b, 0x44ffdbd8, 0xdd59c164, 0x6a4276b2, 0x348891cf, 0x34df099d,
			0x1df3c513, 0xae1e8c02, 0x2d669874, 0xafa4d47a, 0xb87f0bdf, 0x19716d99, 0x92bb0b74, 0xb3b5f1bb,
			0xb442ea92, 0x93b59549, 0x5b247158, 0x8e3d9f49, 0xd2122ec9, 0xe773c316, 0x135e98f9, 0x2623d602,
			0x37195bbb, 0x522b5f1b, 0x7cc32a4a, 0x90f73024, 0x4b45ce20, 0xd2b58809, 0xe84581d2, 0xaa4be466,
			0x34abdb90, 0x646e0164, 0x0fd63885, 0x10a568e7, 0xd6128950, 0x9abdf7d5, 0xd0cadb2c, 0xedb7034d,
			0x06c16fb0, 0x2832b505, 0x4bea5f1a, 0x2ce6939d, 0x09d80988, 0x125fec47, 0xee1d255e, 0xff791e4e,
			0xd54a5a8b, 0x01f1bdc2, 0x687e1af1, 0x4091c9ce, 0x1a50be1c, 0x234bb216, 0x463bcd49, 0x810d7d38,
			0xec8b1089, 0xb2abdace, 0xf991d382, 0xca8262fd, 0x07593254, 0x67186708, 0x7b0059c3, 0xc83309ce,
			0x45e766fc, 0x193b6013, 0x155a8828, 0x6e106e78, 0x15c2ae77, 0x6c2981d1, 0xe5a05aab, 0x866d2249,
			0x06c2deb3, 0x608f8297, 0xdaef958d, 0xa8f14053, 0xae2769f6, 0x88fac194, 0x8f8fcdf6, 0xd5882c40,
			0x641459bf, 0xee8c370a, 0x37954bdb, 0xd1c4843e, 0xa350eb4b, 0x97a113d5, 0x851e5cc5, 0x932f6cbf,
			0x5aaff5eb, 0x3da3bac6, 0xf7327a2b, 0x6dc93b5d, 0x0ffbffe9, 0xec673be5, 0x64e3b14d, 0x381b52a2,
			0xbff45fcf, 0xcaf5374b, 0xad218e32, 0xba957b3d, 0x1dc7a214, 0x006c5bd8, 0x90024728, 0x2fe284d5,
			0x0e1cc83a, 0x5851294a, 0x1837bddb, 0x366bb20c, 0xb25f9c47, 0x5c015850, 0x2c12e427, 0xafe5c053,
			0x85ec98cd, 0xa8be1640, 0x45329da0, 0xbee154c9, 0x95c6ff74, 0x036be4d8, 0x8d51b7a2, 0xc2abf99b,
			0x3a1e387d, 0xffa1a113, 0x54de6128, 0x11109d7b, 0x0e7dd3bd, 0x40eee212, 0x04098302, 0x77d034ea,
			0xe8ed9625, 0xa5c738f1, 0x7b1d7a96, 0x0bf4875d, 0xfd5420a9, 0x27fa473b, 0x89838a56, 0x9f2669b4,
			0x3f280afc, 0x42284f82, 0xc7effa7e, 0x1c43a7fc, 0x63161a69, 0xe26251cf, 0x07175adf, 0x4b841349,
			0xd075491a, 0x3865b799, 0x2ab2e204, 0xb4a25d22, 0xa907195d, 0x1b137440, 0xc8d58ab4, 0xcc715e00,
			0x8face215, 0xa2bfe343, 0x3445e20c, 0x25a2c1b8, 0x69dd65a9, 0xfdb33335, 0x51e8b113, 0xa7a7575f,
			0x53682f02, 0x40fcc4b7, 0x25f3e9d6, 0x65787660, 0x4bddcd66, 0x3353c70d, 0x12838aab, 0x13bfe9f3,
			0x4e13be1e, 0xb396a675, 0x60b9aab5, 0x55770b3e, 0x0ee73e96, 0xef417516, 0x0ec794f2, 0xa7217289,
			0xfe428317, 0xadf7235e, 0x5b07ccc4, 0x529f5de5, 0xc05cd2f0, 0x1cd3a8b3, 0xcd91efb7, 0x8cd9ac2b,
			0x4c9774c2, 0x8b8906df, 0x071a8007, 0x97c81073, 0xe8074fb3, 0x1a4a7934, 0x16f17d51, 0x95e32b7f,
			0xdf78e425, 0x8046bf83, 0xbbe9c8b5, 0x0a763345, 0x6a479c95, 0x53288090, 0x629f3977, 0x2d5d4660,
			0x7d9e6e12, 0x473dc708, 0xe871c099, 0x6078e240, 0x794eb93d, 0x33132428, 0xab4e6489, 0xac9ef583,
			0xeb849cfb, 0xa36a0121, 0x2499b1b3, 0x928436eb, 0x2671edab, 0x346ef4b6, 0x5df91c61, 0x1b1cd48d,
			0xe493a474, 0x4264b631, 0xda6a1b66, 0xe9ed7173, 0x03d27fc4, 0x7c309050, 0x448c446b, 0x51770249,
			0x8a129af1, 0x7e0a74c3, 0xe54f5e0f, 0xd5210661, 0x3dcfd7d9, 0xdba9531a, 0x61c42323, 0x0b3db270,
			0x8e9a53c9, 0x70fb4a70, 0x1bf6974b, 0x0a4cdf53, 0x5fd6b71a, 0x9eea8586, 0xe23050af, 0xa52171c2,
			0xc9ee31fa, 0x84bd5fcb, 0xd3bb2863, 0x4d5a696d, 0x87cc01d9, 0xb936d16a, 0xd0ee344e, 0xb13d802f,
			0x5f704d1f, 0x6e86ee07, 0x2112a999, 0xf78852be, 0x5b6e3c98, 0xe095305e, 0x312358b6, 0xa237233a,
			0xde505f6b, 0x90996c8d, 0x5682532a, 0xd7854c96, 0x80e6c798, 0x1e4a3893, 0xd6e4b4f0, 0x70eaa34c,
			0x20fb0dbd, 0x9a23ed1f, 0xad514322, 0x064075c4, 0x15628efa, 0x592f68a4, 0xc466acc7, 0xfb7df889,
			0x01bcc80f, 0xb8be9d46, 0x03299999, 0x1ac8db4b, 0xba86bdcd, 0x0104b935, 0xe080af5d, 0xc1417946,
			0xe2cdd25d, 0x1d9df531, 0xd5d3ba93, 0xbab279d8, 0x4640ec8a, 0xe29bf5e8, 0xb3e32dad, 0x8695885d,
			0xe0e855ed, 0x3555785f, 0x83756dce, 0x41e81500, 0xe8ef5f1d, 0x1b093f5e, 0x51d28b18, 0x869b09cf,
			0xd230c535, 0x98c24bdf, 0xa4f4b534, 0x70e499e5, 0x9f44a76a, 0xdb665df2, 0xd149a04d, 0x7b94f8cd,
			0xf4889d5e, 0x6dda4d43, 0x1ca5cd32, 0x91391fee, 0x81d0699f, 0xd6ac413a, 0xe9fe5141, 0x331cb883,
			0x8f11f8e9, 0x10e6cc79, 0xca25e9e5, 0xac08b470, 0x383704ed, 0x37be3d86, 0x55477e5e, 0x4ed49c75,
			0xdd244414, 0x545f3817, 0x62affd05, 0xf544aa3a, 0x98123138, 0xd68cf671, 0x4feefeb9, 0xbf75f10d,
			0xdd1c663e, 0xc022dc0d, 0x15b6800d, 0x4ec56c71, 0xa1bb361d, 0x428d150d, 0xc4a797b8, 0x4f76f99c,
			0x9060174e, 0x3b64d0dd, 0x2fe38bdc, 0x8bb5e9e6, 0x75cd4f13, 0xa152c7b5, 0x56a5ceb0, 0x84a3dd3f,
			0xe21d33cf, 0x34092fea, 0x3ee264d7, 0x96e5a12d, 0x6637c977, 0x77000374, 0x01d32a55, 0xab091762,
			0x0a422fe9, 0x645bd155, 0xb3cf798c, 0xb3e9ac0d, 0xe5710307, 0x235db19a, 0xd551a794, 0x889f18dd,
			0x37fa39ca, 0x468cbf22, 0x575697cb, 0xdd20381b, 0x19593c3a, 0xa89c5208, 0xa064237e, 0x35891055,
			0xb897a3d1, 0x67468f1e, 0x0c028c0b, 0xd7f00b36, 0x9400b48e, 0xe14b396f, 0xd3c91a7c, 0xc405681d,
			0xd4ceff8f, 0x178436c2, 0x6d76abcb, 0xb7521934, 0xd380bb94, 0x0fa76427, 0xacc23858, 0xe436487a,
			0xacf187f1, 0x9aca5bb5, 0x02d5d825, 0xb019865b, 0xcfeb5a23, 0x75338f54, 0xcc296739, 0xa3b8c334,
			0xdb538861, 0x1cc4aeda, 0x1755211d, 0x745f07c6, 0xb7a43082, 0xb34352b8, 0xcb85a691, 0x6771ef4a,
			0x68c6eff2, 0x7c977356, 0x59396bb4, 0x32a1e0fe, 0x8ebf8c29, 0x1b9ec047, 0xdd713967, 0xc0fdcea6,
			0xbabb6158, 0x58b9611c, 0xca75d4f1, 0x15160bed, 0x398327ce, 0x727bc8b5, 0x52849c70, 0xc3a2b1da,
			0x0fd6379d, 0xd6ad9ac5, 0xf62b81ee, 0x75912a5e, 0x2f64207a, 0x65acf608, 0xb7aa033d, 0x32b41294,
			0xb43e1acf, 0x9eb11352, 0xeb7195fa, 0xd4488e74, 0x37cb68d5, 0x91c50617, 0x0377a269, 0x21c1b0dc,
			0x95be7be2, 0x25feea03, 0x6df7c0f2, 0x675b66ea, 0xeec78b79, 0x8e503d15, 0x110b3a1e, 0xd39bd232,
			0x9ae7e799, 0xf10f10de, 0x97156df2, 0xad2d444f, 0x5fbba5ff, 0xd99e33a8, 0xcba08d7f, 0x3cd9dd66,
			0x046e69f0, 0xbd214d7f, 0xada2501d, 0xd4c0537f, 0x24c5f30e, 0x292cd441, 0x568ffec4, 0xb9bd65a4,
			0x0f654e5a, 0x098243af, 0x1d101b43, 0x84223866, 0x6d4d4b00, 0xf9758816, 0xa75fd10a, 0x48dfe2b5,
			0x717af2f7, 0x3d0ae15e, 0x3e3faf59, 0xedebd1d3, 0xa71373f2, 0x72ae9ad9, 0x93d0b788, 0xbf4790d5,
			0xb42c670b, 0x0a810d88, 0xa8da0ad4, 0x9bb2bf3c, 0x03dbf5d7, 0xe424db43, 0x96101940, 0xb66bc34f,
			0x66915cce, 0x2f14e241, 0x34ec8293, 0xa766c33a, 0xdaa0e7c3, 0xb0c95212, 0xc60b6714, 0xea9c7956,
			0xed7d5ffd, 0x5aacabba, 0x485131d2, 0x596afe6f, 0x529e707d, 0xfc417c05, 0x5522c714, 0x9fbabac4,
			0xa5b841b0, 0x584b2637, 0xff69d5c4, 0xa149cb13, 0xee2e73df, 0x05731d55, 0xe6404c53, 0x00000001,
		},
	},
	{
		{
			0xee702f8b, 0xe2a1ff49, 0x00466a1d, 0x4883a957, 0x10a8f537, 0xf7942b78, 0x6e04b344, 0xce30f934,
			0x1c5f3525, 0x24f53e1e, 0xd3ecf87a, 0x3fd38210, 0xda3ac5ad, 0xc39d9dca, 0xbfa619d0, 0x0281e334,
			0x9656e3ff, 0x2fabbe32, 0x8ba8c614, 0x0c944e61, 0xd9fd793b, 0x587bee71, 0xda273e55, 0x5b2fb464,
			0xf4e3c0ec, 0x041bcb12, 0x765f3301, 0x4b2dc6ed, 0xf8079116, 0x45e1b8f6, 0xd90f76ae, 0x50c908ae,
			0x5cd8484e, 0x351859f9, 0x7a9d31fb, 0x1107b591, 0x0a9efb3c, 0xb6b25bac, 0xb6710436, 0x6d043941,
			0x7fe5362b, 0xdc8f6557, 0x8f724b76, 0xb0e7b0ad, 0xc365396c, 0xd05b9b76, 0x19b957bc, 0x9da6e9fd,
			0xd149d15d, 0x244f0ba2, 0x41f57682, 0x33d66c5e, 0x8c7c2810, 0x5c6bb0e4, 0xcd811862, 0x4b4e3ef7,
			0x56ba71a4, 0x46796778, 0xabf4bf08, 0x184786ac, 0x6c546971, 0x3eb84c27, 0xa1cfbfa1, 0x42137999,
			0x7de5b879, 0x855073c4, 0xbe256d5c, 0xc2f36104, 0x22ac4ed3, 0x9a889cb1, 0x50fa05ff, 0x8ba2659a,
			0xe6bebb3d, 0xb0af767c, 0x52e06f59, 0x5e286101, 0x148c448a, 0x6293a5ac, 0x2f458101, 0x573f3e2a,
			0xf18718ff, 0xba1bd7ec, 0x3515b23f, 0xc7e7fd87, 0x95ea0202, 0xff2d414b, 0xa0f427ef, 0x3fea3626,
			0x8d3cb567, 0x239e7ba4, 0xdc8e4fbb, 0xfb25b151, 0x74d4fefd, 0x6f06fb17, 0x92969874, 0x98d2b261,
			0x7df8fe99, 0xfb04d807, 0x7c7cb054, 0x2fc26d75, 0xbaf8c030, 0xaeae51ca, 0x0e662b7c, 0x17d51f52,
			0x46b4dd42, 0xafa837f0, 0x23a0fee9, 0x72f8ce64, 0xda7ae60b, 0x4cf996f3, 0x33b0d337, 0x4421f162,
			0x4ff24235, 0x89fb9f80, 0x18983a25, 0x798569c3, 0xa7dc5d60, 0xfd228ccf, 0x1afc472d, 0xa5215e60,
			0x6bf03d44, 0x74a96740, 0x60553abd, 0x02e5f74e, 0x946d9da3, 0x3ae12e33, 0x48f7a43b, 0xbcdb4b33,
			0x8b5bdb5d, 0x38b99b92, 0x49449b92, 0x90d756d5, 0x357fc55a, 0xe7dd5291, 0x292c9918, 0x476f2324,
			0xfca8f8ce, 0x7e493623, 0x6604f8f5, 0x383922ad, 0x123a7e0d, 0x244c2f3d, 0xb2533921, 0xb9f032b8,
			0x6361e055, 0x8a957f5d, 0x919a1a76, 0xd185dbf9, 0x0d4c2c3b, 0x32d05f4a, 0x3fd8fe72, 0xb6bd6628,
			0x7ce589d1, 0xa91b498d, 0x30e228ab, 0x458c4309, 0x74720511, 0xa76d8e90, 0x614c310c, 0xf7a37952,
			0xf36b8dd8, 0x2cc1b130, 0x0a6aad31, 0x532841c6, 0x98ed104f, 0xcce315d2, 0x1808a13b, 0x7666010d,
			0x413abe50, 0x84c1eb86, 0x5d9fec79, 0xc07f279f, 0x952fd36f, 0x84677686, 0x0710b2ce, 0x1a68700d,
			0x921f604c, 0x1caced64, 0x27dd3d73, 0x60933f6b, 0x3c782a46, 0x95193b29, 0x7a76089b, 0x66bd1b15,
			0xdf8e7993, 0x557d3faf, 0x1d69fbd8, 0x5e648961, 0x54c6b941, 0x93573a81, 0xe05c8d73, 0x471b3bf8,
			0x4dfd8b68, 0x08b67b2e, 0x347ad5b5, 0xf1bd170b, 0x29674d18, 0xb583978b, 0x2ac4750f, 0x35fdadef,
			0x6ffcd670, 0xa5bbaa41, 0xa67c4604, 0x3d03304b, 0xabfdedf3, 0xa8a6e885, 0x92192d92, 0xa1b8bf32,
			0xc5952f54, 0x8c536a2f, 0x6c01cc66, 0x8768df41, 0xcb302997, 0xdee7fc24, 0x820a281f, 0x55df3272,
			0xa58d8158, 0xb6505adf, 0xde24df9f, 0xddfea120, 0xcf7b6c07, 0xc9c9f980, 0xadc32c18, 0x4f036a17,
			0x9d6f64f9, 0x5c9f8d05, 0xe697d867, 0x1067f56c, 0x0454d791, 0x81b5196c, 0x603f4f1c, 0xdcc136ec,
			0x89db3504, 0x4cad104c, 0x77e2cf48, 0xa822bceb, 0x9fd8d8da, 0xd03c7ccc, 0x2e3daacd, 0x1f183751,
			0x69060f59, 0x8a994979, 0xcb0cb184, 0x58af10d1, 0x64013968, 0xd7099490, 0x705f0407, 0x34c36ab6,
			0xb66bfa21, 0xc38beace, 0x3be9f115, 0x1c3c7e9b, 0xef063edf, 0xc864c5db, 0xc336d36e, 0x0d0a59ef,
			0xea93caae, 0x5c9de094, 0xefc7c9b0, 0x527ae726, 0x52951114, 0xbc1f3c1c, 0x5ee0e12b, 0xf926fb0b,
			0x6d1e6342, 0x33ffc04c, 0x13465f0a, 0x9923834f, 0x6876ce09, 0x0fe4127d, 0xa5f26d28, 0x4ae9b347,
			0x8553856d, 0x5de54a98, 0xfc887da5, 0x014db755, 0xcffaf6b9, 0x6e1d347a, 0x077ffe77, 0x15528457,
			0x345b5d31, 0xfeeb274c, 0x64736503, 0x7b120e45, 0x22b6c54a, 0x664131f6, 0x54d34438, 0x55bbcb0e,
			0xd11d023c, 0x20e65abf, 0xe1a1bfd9, 0x9f1341cb, 0x5fa94862, 0x90689573, 0x0b7fd410, 0x0fea86d3,
			0xe3bf09a4, 0x6a7567cc, 0x19beaf7c, 0x0d82e343, 0x2919ebe9, 0x921a1696, 0x5651df57, 0x127ddeee,
			0x8095b8bd, 0x345c49a9, 0xe6fed421, 0x3776185f, 0x6d7dbe99, 0xe54ed42b, 0x6fed7178, 0x314af7aa,
			0x3c657e6a, 0x60317ad0, 0x46b8ce9a, 0x8ec66900, 0x75f458b8, 0x9724aa4b, 0x1fcadb5b, 0x8da02da8,
			0x6a0a59f9, 0xa7535d1a, 0x900095d8, 0xa5a34ad3, 0xaac44c86, 0x3024e6ab, 0xf9d32d4c, 0xec19b38e,
			0x8506163c, 0x2c74d32c, 0x7e328585, 0x427a525e, 0xc2bd759f, 0x4f015104, 0xef72e8b1, 0x0b640b62,
			0x9cca0812, 0xbace6f00, 0x5c3ca14f, 0x5867078e, 0x76961397, 0xa7948d57, 0x7c1dd123, 0x0d1f5321,
			0x6983eb1a, 0xf7b4e926, 0xa711f0ba, 0xfb051363, 0xe1b0abfa, 0x13cbfbc7, 0xbb8da81a, 0x29b08a7b,
			0x16af8aa9, 0xc08dd244, 0x584c7f0a, 0xe4071712, 0x8a0144ac, 0x59411e9a, 0x31e6ca59, 0xad74f75d,
			0x0cb17ef8, 0xa246b530, 0xf6bb0a51, 0xe9242a5c, 0x028db9e0, 0xa269a05a, 0x7893109f, 0x53f61851,
			0x7d9a46f0, 0xf38117a4, 0xd14ee3df, 0xe52410f8, 0xa20cace4, 0xb400f842, 0x9bcaf05d, 0xfd8eece5,
			0x31ac1cce, 0xad2999a2, 0xcde74c32, 0xb0b828aa, 0x4984c06c, 0x480edcac, 0x633f0c57, 0xd24d83a6,
			0xfb586419, 0x909b563c, 0x8830ba11, 0x7c261530, 0xcb570e8e, 0xe2f3deaf, 0xe598c856, 0xbfd5cc7b,
			0xdb64d272, 0xab42c9f3, 0xd6cc73dd, 0x3e6ead70, 0x1d91e579, 0x2dfb796d, 0x5b4a0c6e, 0x4ab2ff3e,
			0xc05d3cad, 0x6801dc09, 0x7e24f294, 0x0218eeb4, 0x4f6e31fa, 0xbdc61544, 0x66654c0c, 0xd13b0da8,
			0xbcc88796, 0x97ab783c, 0x01a8e72c, 0x1a0a3a08, 0xf6562cd3, 0x8040f251, 0xd8d745c9, 0x4dbc36e6,
			0x72e9b33a, 0x1fd05262, 0xc0364418, 0x159b4d49, 0x787696dd, 0x49539996, 0xa2da5cd8, 0x26386ca0,
			0xfb554370, 0x3f28db50, 0xe943548f, 0x8bfbf97a, 0x92964403, 0x002a5eea, 0x095c075f, 0xc74aba83,
			0x9d778970, 0x8eeb3956, 0x34fe47e2, 0x1b3e0e22, 0x11c3e0e0, 0x7983f0ab, 0xbafa0e38, 0xec653846,
			0xe11441f2, 0x06bc1049, 0xd1467e1d, 0xbf8f45e9, 0x18ea2ef8, 0xe7472675, 0x5c7f911a, 0x6523a27d,
			0x572cd64f, 0xae0cf26f, 0xc82c114b, 0x0b93d579, 0x2d7b5911, 0x258d05ed, 0xb8312dc8, 0xe6b85314,
			0x1bd1474e, 0x187e9741, 0x7de9a05f, 0x3ff93fab, 0x58c141b5, 0x704aed6a, 0xfc1c5568, 0x7d10b3cc,
			0x842106ea, 0x09b08baf, 0x47bf1630, 0x382b4604, 0xd3b92baf, 0x0fa97a23, 0x7c5904ad, 0x01aa7acc,
			0x04e7b092, 0x3754def0, 0x445c4e05, 0x10bca5f5, 0xe6234af4, 0xd8c79b93, 0xf8bb5d1b, 0x8ad67551,
			0x147c6fc0, 0x269bb343, 0x1494467b, 0x54649481, 0x04bcf7ac, 0xf8a4afe6, 0xa3bc4144, 0x3f25a21e,
			0xf7fd0543, 0xa9e6e588, 0x7280ddcf, 0x614ce7dd, 0x614f48d4, 0x6fe7122c, 0x2c6910bb, 0x66eea2e2,
			0x78a4e573, 0x10538a82, 0x0dbcf6bb, 0xe320d592, 0x77990b47, 0x423d3352, 0xcee6c2ab, 0xaaeb28df,
			0x5cd8b52b, 0xd8749ac6, 0x640a059b, 0xed25c120, 0x7d8daab4, 0x753395d8, 0x05f7827e, 0x5db86e68,
			0x20fd9c46, 0x843585dd, 0xca8ae435, 0xb008282b, 0x0494c81b, 0x1a639f45, 0x63b9477f, 0x2a687e2e,
			0xc4ebb79e, 0x4643c654, 0x6c640eee, 0xa4781c6d, 0xf93f5f5c, 0x2d709c75, 0xb23e92fd, 0x9011cc18,
			0x36e0c4a0, 0xc411d476, 0xdfe2243c, 0x58985fe8, 0xc0d556ca, 0xad49c2da, 0xe6d0a195, 0x0ceda256,
			0x2adf9dab, 0x7d52a58c, 0xb96fe717, 0xb090012a, 0x79052903, 0x484e57ae, 0x751148d3, 0x077db8c0,
			0x97aa5982, 0x91288880, 0xf9328eab, 0xbca1ddda, 0xb240601d, 0x524b26df, 0xc3d486fb, 0xa3d95232,
			0xc464a7ba, 0x3be6c0dc, 0x0ac43622, 0x0466e518, 0xd0f2a4b4, 0x074e6a90, 0xfdafd539, 0x9bc74819,
			0xbfb5b4e2, 0x9468fe8b, 0x9a4d6778, 0xe06202d1, 0x133fe50b, 0x41ce1b18, 0xf4e20086, 0x52cc66e6,
			0xe8623919, 0x62c9ed1a, 0x993217ac, 0x44e882c9, 0xc263d0c3, 0x998b7563, 0x29117aee, 0xdd9d2e26,
			0xbcbc692a, 0x882d7fd0, 0x2ef514e3, 0xc389cea9, 0x9e7e3972, 0x6db54381, 0x6440b7df, 0x83a417b7,
			0x751c43c7, 0x61e1bcfd, 0x4252fd75, 0x6996e3e4, 0x4b8a93f2, 0x5d8b33a2, 0x58b52f91, 0xd05c1743,
			0x90fc768f, 0xd2ef47d2, 0x519fcadc, 0x879b5851, 0xc65fb34f, 0xce8e197c, 0xce59f3ba, 0xbd20155c,
			0xcfc33e77, 0x0feba68a, 0x33b9fc66, 0xfeaedba3, 0x1226f75b, 0x20ef22d3, 0x8a8ca75e, 0x6f1f797e,
			0x154afd5a, 0x118964c2, 0x6b42be58, 0xd07e4e75, 0xbcc7c6fd, 0x1c0e2406, 0xc0b60032, 0xfce28196,
			0x5c284400, 0x77f6f6a8, 0xf1799409, 0x74fe6c36, 0x13215847, 0x08f2e38d, 0xb34d3d7c, 0x00000000,
		},
		{
			0xcac3fab1, 0x70acfec3, 0xd5e3ed07, 0xa3a9ed6e, 0x398f31da, 0x0408d732, 0x035690f9, 0x1fea6132,
			0xc3b60bbf, 0x9dc5f806, 0x9b807663, 0x1853ff80, 0x972fc18d, 0x51913467, 0x4a3d8534, 0x0ff95de6,
			0x8fd24509, 0x4ba220d5, 0x7f8ebbd5, 0xcf85a8ed, 0x65331882, 0x7454a6ea, 0x4a5fbda3, 0x7527dbfe,
			0x2658818c, 0x40c7c2e6, 0xd9a1103c, 0xf6b03262, 0x799dd9ba, 0x973e3d96, 0x1a999370, 0x97a9d586,
			0x04d38422, 0xd91ef074, 0xd01fdc95, 0xe2bf6048, 0x2620cca4, 0xfa18c9e9, 0x1c7e4e54, 0xbdeaff2f,
			0xa48b6abd, 0x4cf420e3, 0x856a3b92, 0x4648793b, 0xf622e683, 0x23ced901, 0x0b8b3f61, 0xcc732a92,
			0x6c7397a5, 0xc3f3137d, 0xb988c0fa, 0x59edc51a, 0xfde3f07c, 0xc120edf6, 0x98a4c68e, 0x8167102a,
			0xdfaad11d, 0xa1d920bf, 0x6481659a, 0x9d95acb1, 0x5a8daf7d, 0xdcc5da31, 0x4d72e61e, 0xf3a8297b,
			0x8af24cc5, 0x225e89d3, 0x2a49178c, 0x99b45bcd, 0x3704e082, 0xb2d11351, 0x990a5e67, 0x45979f09,
			0x11b57ac5, 0x299c9fac, 0x64b55134, 0xbae231d3, 0xacd50d46, 0x96c942d8, 0x13a9fe00, 0x67be23f9,
			0xeaac61b2, 0x8c90192b, 0x2261b1ab, 0x96278b7c, 0xb55c2cf8, 0x7d827718, 0xfe56159d, 0x6bc542fe,
			0xaef6fc69, 0x314a2730, 0xff612c16, 0x7839f321, 0xda91ec93, 0x1b33b058, 0xe201099d, 0x780eed3a,
			0x18ed85d5, 0x3109da48, 0xd0801d6a, 0x730b45e5, 0xe0fbb966, 0x0834a0bc, 0x68e2dd06, 0xe13fcd27,
			0x679bc7c2, 0x4cc0584f, 0xebb360d9, 0xbd65e829, 0x739be3f5, 0xf1a12c66, 0xaf965634, 0x03d469c6,
			0x33830abd, 0x2166c152, 0xf0cbaff1, 0xbd2112ff, 0xe5674c2b, 0x0c247743, 0xb38786ed, 0x06b62b23,
			0x03c0b1e8, 0x1b988b12, 0xe215afbd, 0x61059998, 0xffbff4a9, 0xe740134e, 0x9df143d2, 0x7979309a,
			0xab0ef998, 0x2c5d3592, 0x571c2069, 0xe0a767fd, 0x87f6b265, 0x271d4cc8, 0xeee3c2bc, 0x97a2d204,
			0x5d64ce25, 0x2d8b6326, 0x73e9f495, 0x9fbcca6c, 0x0fe426ac, 0x78471967, 0xbc6e48ce, 0xa4e62880,
			0xac4298d1, 0x2abb89c9, 0xd6e30900, 0xd486635e, 0x338795a4, 0x1cf7d5e2, 0x0abb5599, 0xb327629e,
			0x7001c491, 0x5719b446, 0x022b77af, 0x67431e96, 0x859ae83e, 0x3a3019cc, 0x750949bc, 0xe73679a7,
			0x81323087, 0xa47d746d, 0x8194292c, 0x7f0d7a88, 0xdd6cbfa1, 0xf83f8e01, 0x000a9e3d, 0x95b45b9a,
			0xdeb06701, 0xf45e53d9, 0x2f9109de, 0xb7bd766f, 0x07ee66df, 0x2e8180d4, 0xef6af7d8, 0xaa77bab2,
			0x628cda93, 0xad5960cb, 0x6ab0b0ba, 0x7c4b26cd, 0x794293e4, 0xa96dbfae, 0xed22b718, 0x47ca4528,
			0x2b13c005, 0x9a88f2bc, 0x32827f2a, 0x0b8c29d0, 0xcbad2eaa, 0xf62f6214, 0x44bc1582, 0x0ed2086d,
			0xaacbb2d0, 0x9160b322, 0xa7a253a3, 0x92ae8028, 0x1b3ece3d, 0x66a60eb3, 0x136cb138, 0x9bb1286d,
			0x8f2a745d, 0xf0527ca6, 0xa91b2b11, 0xb590079f, 0xc7a0acd3, 0x9497a9b3, 0xfb0545b1, 0xfd5cb0b9,
			0xfdc9ab4e, 0x32326d25, 0x7b4c63e9, 0x0077d37e, 0x04429625, 0x1cb75de0, 0x30cacc26, 0x18b58e05,
			0x251a2207, 0xcd5d8745, 0xf05cc26d, 0x30832e19, 0xdea79302, 0x7479c583, 0x5584740d, 0x3a2d4be4,
			0x61028456, 0x230a6830, 0x094e185b, 0x7acd17f6, 0x1e451151, 0x3dc2b304, 0xe9dd0f7e, 0xe9c6ab01,
			0x7c27ab0c, 0x08cea0b6, 0x77b26524, 0x1a94f3d8, 0xbbac3b76, 0x4007a11c, 0xfccae1ae, 0xd2450d04,
			0x51895c39, 0x6e856107, 0x3c35c47f, 0xd9f55ac0, 0xa03b28b2, 0xc01f5aa5, 0x08b30935, 0x85d85678,
			0x22fd6201, 0xccb661a6, 0xb570b9f9, 0x6ef6c8e5, 0x59f31bab, 0xa56db5c2, 0x8ffb43f4, 0x748fc584,
			0x40cbcbcf, 0x31377890, 0x2e6f5522, 0xf004ac3a, 0x56f8614a, 0xcfb02542, 0x62d5371e, 0x698a6ce8,
			0xb0dfbe35, 0x24d79501, 0xe3458162, 0x77be98eb, 0xf6b86f87, 0x644aaa32, 0x384193c4, 0xd2f9cb37,
			0x5fb1c829, 0xb0d529d8, 0x72f17d69, 0xc509a35a, 0x3505980d, 0x7c3a2ccc, 0x95179fd4, 0xaa5af92b,
			0xf9955c56, 0x21c27f30, 0x57e88848, 0xcc614fd3, 0x3cce722b, 0x5527e9ec, 0x6047b8fd, 0x9638c04c,
			0xe90d6981, 0x30281ce6, 0xe0e77fdf, 0x7047d886, 0xfc91a1a7, 0x69a5e7fd, 0xa21488d7, 0xfb7ddb0f,
			0xb724f9ba, 0x36c19e47, 0xef08e260, 0x53f8449d, 0x57918fe7, 0x1b07472f, 0xb4f5ba7b, 0x388797b9,
			0x3d2f5cee, 0x7b3dc521, 0x5c5bb582, 0x20311ab6, 0xd087c081, 0x36c9ac65, 0x524dd0bf, 0x763d8f4a,
			0x2abaa94d, 0x01387e49, 0x89b31e01, 0x2152d665, 0xcb8331fe, 0xf52dc94c, 0xa41026f5, 0xe539821e,
			0x127a3ece, 0x7f1154ff, 0xf1664b6a, 0x74f99316, 0x291a58ed, 0xc5fad631, 0x391fb243, 0xdd5cec50,
			0x6aaf66d6, 0xca69104b, 0x9743132a, 0x9967bfa6, 0x72be89a8, 0x01e480fa, 0x01264506, 0xa10aae47,
			0x674dfac5, 0x5cc83d32, 0x17b89c47, 0x88399112, 0xec656a02, 0xfd54d9b6, 0x9a613dfe, 0x7b83579c,
			0x983aef83, 0x9aafa28a, 0xe8281c33, 0xb3ffd2ee, 0x03c95c43, 0xdbd0254e, 0x8e39ece7, 0xb6c8dbfb,
			0x4913fd48, 0xfbd2288e, 0xd5dbda9f, 0xa3ad2d5b, 0xaa7ff05a, 0x40f3d571, 0x2827fb6c, 0xdb3330fb,
			0x1a28f2b4, 0x005075d2, 0xbf0acd82, 0xfc46d7fd, 0x5dd11a3b, 0xa562dfc3, 0x8c7404c8, 0xd102f24a,
			0x4c7fed13, 0x6630afc9, 0x199d30f3, 0x9f40c027, 0x6868c669, 0x41d1171e, 0xdfdbc476, 0x9019a4f5,
			0xb34d815a, 0x23f69c63, 0x554d2c89, 0x89a6fd61, 0x2c36b339, 0xcfe84ada, 0xa234e4cf, 0x5d463410,
			0xcecea373, 0x1e418795, 0xc8455888, 0x39383146, 0x28c59114, 0xb1866330, 0x8d4a1416, 0x19539c08,
			0x348762fa, 0x348da8bc, 0x58c0135a, 0x59e61e55, 0xa0b64a58, 0xb8a555ab, 0xa8d0479c, 0x4e208c9b,
			0xc69fcdd0, 0xbf0d4110, 0x68b95efb, 0xffe27f93, 0xf3f401c9, 0x3cedeba0, 0xdec03588, 0x21a8c8d4,
			0x1cb05b3d, 0x66110bc0, 0x173dcbd5, 0xb46ee4a6, 0x4f523d96, 0xf3e80591, 0xb95b8c39, 0xbfbfb02f,
			0x45ba38ee, 0xcb113e34, 0x3247d8fd, 0xf49ada4c, 0x0b431f18, 0x80bab639, 0x3956b97f, 0xd356d646,
			0x68b93506, 0xaf57c73b, 0xd94c0154, 0x97f79f29, 0xa42da0cd, 0x1c81f1c3, 0x3e7ebe4e, 0x365d7e72,
			0x7275ac08, 0x2d42b0c9, 0x88a355ce, 0x6403b968, 0x0d528f6c, 0x0ca3aedd, 0xdd81d539, 0x11ed8cd2,
			0x353a2bca, 0xe93613d4, 0x6195d112, 0x990da6f7, 0x1acf6477, 0x249fbc35, 0xfa24a99b, 0xb0a0f5f6,
			0x4d97adb3, 0x4fb3f542, 0x388cf332, 0x1507d6d2, 0x939423af, 0x9ab95e25, 0x5765919c, 0x3c6b6be1,
			0x54f3050f, 0xe0ac7aae, 0xb4a0f400, 0xff20b539, 0x4c8e8f84, 0x620cd5ec, 0xdc278c1f, 0x332d7bbb,
			0x8556910b, 0x08f0be52, 0x5f4671b3, 0x7c1fcb14, 0x7bcafda1, 0x81cdb3a2, 0xb4672a07, 0x37da2e98,
			0x264aac19, 0x99193d86, 0x6ae4c0a2, 0x918efa26, 0x5dbda78d, 0x07f9399d, 0x96ca227c, 0x958fc540,
			0x91ef2866, 0xcca38a05, 0x5bcdfdfc, 0x9ab623fa, 0xdac06e1e, 0xdd1cab6d, 0x178fe8af, 0x595dc6b2,
			0xaeb3fe1b, 0x361e00a4, 0x2d4cb75f, 0x8fe6c792, 0x991ba40f, 0x27a72c65, 0xe4f4aecb, 0x2bf9af98,
			0xbea28c2d, 0xaba9758f, 0xd8ec73d5, 0xed11cebb, 0xf6fa84fd, 0x6fe2324d, 0xac4646ad, 0x8cab875b,
			0x9f28d4f5, 0x2de582f1, 0xa9858acd, 0x647a0f19, 0xbd664511, 0x4791e6bc, 0x8177b450, 0xbea37002,
			0xb340c240, 0x60259200, 0xf88215d7, 0x32c38484, 0x87d14904, 0xa44f0fa2, 0x57a90602, 0xd80874de,
			0xcce275ba, 0x567848fd, 0xfa4acb8a, 0xa1172eff, 0xef76ab62, 0x39f0576e, 0x987b3ac5, 0x62bf97c9,
			0x20aa66ec, 0xa609a5fd, 0xe903723e, 0x35f54459, 0xb5e50872, 0x1e3778a4, 0x11b05a33, 0x3ca262c7,
			0x89fd39a1, 0x6706ecc2, 0x95b91314, 0xd5f4e814, 0x81ae021e, 0x78892e02, 0xcaeed27b, 0xd0ee381c,
			0x3424a5eb, 0x5b581b1f, 0x744c34a5, 0x1cafc647, 0xfe57c166, 0x617250af, 0xc337d200, 0x7309d40b,
			0x98a55595, 0x4bbcb1d9, 0x067b36f1, 0x4e41d764, 0xa4ac13db, 0xca8bc24e, 0x8b1f68f6, 0xfb501598,
			0x8c09ba24, 0xc72538e9, 0x705322dc, 0x80891ea9, 0xc9f6d1ed, 0x5236169a, 0x9610d9bc, 0x8ee7d762,
			0xc774d5c1, 0x2c89f778, 0x8dff1faa, 0xb14b9f2b, 0x2ce8258f, 0x102171dd, 0x367abee7, 0x2aa6dabb,
			0x14b7c563, 0x706c0d63, 0x1f8ae811, 0xd4741faa, 0x102286fa, 0x73086d2b, 0xffc81e03, 0x8453ba14,
			0x00aa04bf, 0xcbb68aa0, 0xf9cee5d0, 0x368c7834, 0x4d7b70b0, 0x84f7193d, 0x9b7fd6a3, 0xccaf1bff,
			0xf4a562bc, 0xfe9414d4, 0xad6f75f0, 0x547de306, 0xcafd6ab5, 0x576fbb75, 0x71d2052f, 0x909efeaa,
			0xaa56563b, 0x609c1207, 0xf8badb8f, 0xb3e7b6b0, 0xff850e49, 0xaf39e91d, 0xdef8410f, 0xa0890b14,
			0x98682dd0, 0x97634198, 0x4ee1431a, 0xb1b17657, 0x1ea60a4b, 0x5202fe5a, 0xc1a9a92d, 0x3c12d3d5,
			0x3244223d, 0xadb7a7c2, 0x2baccccb, 0x11e1d91b, 0xf78c694e, 0xcb3b55ed, 0xaa22f14f, 0x00000001,
		},
		{
			0x763ffe9d, 0xf39e1874, 0xc2d43845, 0x0661d477, 0x9279adf6, 0x2c38be89, 0x4d3bfd66, 0xceef7375,
			0x18c88b91, 0x1e4af49c, 0xd046cd94, 0xe3b73eeb, 0xf0c5e2b6, 0x2cd4620b, 0xe1b51412, 0x7a58cda8,
			0x05559493, 0xacf8f206, 0x57f36074, 0xee5ae7f8, 0x59a13644, 0xd1bcd519, 0x1aff642f, 0x051378e2,
			0x23aab022, 0x0d4160de, 0x9a9ef4e1, 0x6ecd9c89, 0x7edbb0d1, 0xea472f9d, 0x26a4e50a, 0x3dce1097,
			0x7acdeff1, 0xd33cbaff, 0x493590df, 0x9beaabda, 0xe26e0b35, 0xf1c975a0, 0xd8d7cb0f, 0xa6536271,
			0xf3d6b9ac, 0xc4d2f4d4, 0x56b853e0, 0x44c24f93, 0xfe87c890, 0x7243591a, 0xf594126b, 0xc6fb107d,
			0x314f94b5, 0x52f33ab4, 0xb55f45f6, 0x8a7d35f8, 0x598733df, 0x6f8aec0a, 0xc2d7d9c3, 0x6dc43828,
			0x4f7fbc93, 0x40237a90, 0xa94a9101, 0x5801132a, 0xd8a4cf11, 0xe5aa3d4e, 0x0f55a19d, 0xdc57dbb6,
			0x389781d9, 0x2ba09710, 0x604199cb, 0x92c3d014, 0x142f27fa, 0xbf34b657, 0x3fad341d, 0xde816dd2,
			0xa4a916d7, 0x301b99e6, 0x37289856, 0x2d6b7177, 0xe8a50939, 0x4bee7a87, 0xffce214d, 0x2700a0da,
			0x57815641, 0xdabd8548, 0xab6a2155, 0x7db6f0c2, 0x9f597c0b, 0xc125e0a7, 0x75c313ee, 0x5f427f85,
			0xace97b11, 0x13fe795b, 0xf9f21263, 0xbbcbaeab, 0x5274a3c2, 0xf7d49e80, 0x0d065ff0, 0x4850b257,
			0x57a4f94f, 0x09fb5aed, 0xa5e9c154, 0x4a01ed1d, 0x429b7fef, 0x9c2dc5e2, 0xdb425110, 0x181b63df,
			0x5f30f7d0, 0x2c4e2736, 0x2219e2b3, 0xa4415052, 0x1ccb41aa, 0x6e9a2a3f, 0xd27ceea4, 0xe5f89835,
			0xe4f50184, 0xe32659af, 0x1e5f8525, 0x2e9a4e23, 0xd7ce8f2f, 0x9c57e9a2, 0xe0e13944, 0x6f9586ef,
			0x68735e3e, 0xccfbae01, 0xdac86408, 0xcfbf8918, 0xc9e3ae41, 0xf2d2b05b, 0x8f78a2a4, 0xcb4a2475,
			0xd5bec16a, 0xc88a9ca0, 0xd91f6dad, 0xd9369571, 0x7def6cf4, 0xd8cb956b, 0x012f0e26, 0xbe260a7d,
			0xf701f3b8, 0x16dc3500, 0x3a351645, 0x9efbd80c, 0xdf07fd9a, 0xdbdbd57a, 0xd66597c2, 0x9acb581a,
			0x1e7042dc, 0x6b1108f6, 0xeff48912, 0x6d2243bf, 0x6d76e647, 0xafff9166, 0xc8c69aa4, 0xbb457a1b,
			0x69b4781e, 0xc56131f5, 0xcf9dae7a, 0x5c255012, 0xcbf76212, 0xe6998525, 0xbbf1b3ff, 0x8ec64a53,
			0xe08a0702, 0x6ba8e37e, 0x554a6492, 0x0b468172, 0x0bbed961, 0xd2285374, 0x04dac758, 0xec4a6202,
			0x0f3526b2, 0x30ad0990, 0xcc3a1a57, 0xb677fc6e, 0x4d764578, 0x16385e11, 0xf557283f, 0xd92edef7,
			0x1b55f48f, 0x69c6dc37, 0x0e798290, 0x90d36b51, 0xd4824796, 0xf2362581, 0x8dcb62c3, 0x7d3679a5,
			0x3736464e, 0x7398f7f2, 0xcf182316, 0xef8b2629, 0x3dd16591, 0xcb90c1d2, 0xd2938aad, 0xd3f5e7c0,
			0x3fe96131, 0x33fd5c99, 0x73c9e9d4, 0x0f2b1be1, 0x0efe3bd3, 0x06ca8bde, 0x94e404db, 0x25ce4ed1,
			0xae359d3a, 0xfd03374f, 0xa44ef35f, 0x64644187, 0x94570c59, 0xb9ec8e82, 0x3e67f976, 0x5f7570b4,
			0xbb477f87, 0x2113b3a8, 0x78ce6897, 0x59f27269, 0x5fd117d7, 0x89a22942, 0x7d6fb6f7, 0xfcf59b6f,
			0x4ee847d4, 0x759e2045, 0xa63ef9cd, 0xe68d8296, 0xd021a961, 0x2902b82f, 0x44d73ff7, 0xb1d80fe0,
			0xff789145, 0x4d956ba3, 0xdf31d3a2, 0x2cb3f157, 0xce8f8d47, 0x0caaecbc, 0x7b7eb10d, 0xa3e4db73,
			0x851e7560, 0xe3adc01c, 0x09e50192, 0x95f03984, 0xd0356c07, 0x5fc4db21, 0x02ae5779, 0xe506d54c,
			0x34d4eba7, 0x018c8186, 0x3b108614, 0xebc4a99f, 0x792783e0, 0x0ca623da, 0xfa984f6b, 0x4fa62d63,
			0xcf097e68, 0xfe721236, 0x5ca943ce, 0xf7f61c31, 0xebeaf736, 0x5822d45e, 0xde155df9, 0x07df0057,
			0xabfc251b, 0x431f4c9f, 0xa88ebaff, 0x72b9d150, 0xbed72fa2, 0xee035bff, 0x0e8c68bc, 0xdb7712c1,
			0x1e22a987, 0xda3bc53c, 0xc1aabd0c, 0x154932cc, 0x1f770497, 0x7f5cd53e, 0xc3140d68, 0x78ea4773,
			0x00cc62e8, 0x0e378de1, 0x2242b803, 0x2d5a7368, 0x2d7ab5cf, 0x493b2793, 0x1b61de25, 0x22229edd,
			0x075ac1fc, 0xc97c8b28, 0x3c0ec707, 0x9c86fbaa, 0x40fa4f50, 0x73da06e7, 0x28120dbc, 0xa7782057,
			0x34f9a325, 0xe34e11d3, 0x50671b43, 0x99311e5a, 0xbd77f067, 0xc77e8ce7, 0x7a6dcdd9, 0x77cde34b,
			0xa9f7392e, 0x755013fb, 0x7ed431a3, 0x7043e263, 0x97d223e5, 0x21ee9ff9, 0x4ef7b520, 0x3f585131,
			0x9e2f701f, 0xe9e9ab11, 0xdb0f3d0a, 0xa6d1cb3a, 0xdf142d9e, 0xf168bfab, 0x1059532b, 0xba1e5bcd,
			0xa26924d9, 0x4c7f86dc, 0x7d1d8d57, 0x17d6eaab, 0x31d6e515, 0x8f3783bf, 0x46b507db, 0xc39e2162,
			0xf090108c, 0x0f07db04, 0x294f5fea, 0x443d20cb, 0x389c400c, 0x9687fccb, 0x9aec8711, 0x42798d81,
			0xc50de690, 0x74fd840c, 0x9f4bf83c, 0xbccded86, 0xce689bae, 0xa24fdb83, 0x78c62d7a, 0xfa788953,
			0x21e167a9, 0x25e4d5e8, 0x3cf827a3, 0x58e1c395, 0xc1f70b7f, 0xf1902d79, 0x7a37d2cf, 0x32511c9d,
			0xc14cdf9d, 0xea8a5a0d, 0xee771427, 0xc157cbfd, 0x2403fab1, 0x05c60019, 0x6ef2a35f, 0x04e304b0,
			0xb791cca3, 0xe2b40f4a, 0x4117e26a, 0x30e05181, 0xce0e1e0b, 0x94ff6a49, 0x98aa24cb, 0x97f82ace,
			0xc67582a1, 0x87857a0d, 0x5c32274e, 0x5417d85e, 0x77e7c130, 0xd327b7bc, 0xb91044a5, 0x6dfe26a1,
			0x4fe5be39, 0x5bee2c3f, 0xb4ef8e3f, 0xda3f72c3, 0x7290e976, 0x6e018696, 0x5f30554f, 0x86fbe797,
			0x48fd7b77, 0x54817821, 0xa0a178cd, 0xcc78585e, 0xf9823a05, 0xb0585e0e, 0x2f00e0ae, 0xdf9a59ee,
			0xaee2d4cf, 0x502175cb, 0x90a7bb8b, 0xd59b82f2, 0x5275e20e, 0xfb113313, 0xc70416b9, 0x0e25372a,
			0x909f0ebd, 0x6a1f4fe8, 0x8d354e7c, 0xfcabaff1, 0x433baec6, 0xc3f0ff5d, 0x6957ce2e, 0x6c71aa7b,
			0x59d73c72, 0xecfbbf2f, 0x56aa095d, 0x794cea35, 0xdda1145b, 0x1e453a4a, 0x3b053c2a, 0xd22d6ddd,
			0xa7c67ead, 0xf67c29bb, 0x58439415, 0x0897560a, 0x4f7f52cd, 0xb84df2fc, 0x3f47ee38, 0xc5fad5b0,
			0xf86c4bb7, 0x8845b087, 0xf43d9139, 0x1dd3357f, 0xc2ca8223, 0x91eec5ca, 0x2a9f31ae, 0x9cbecc63,
			0x76674a2f, 0x9ec162e0, 0x9a7537fd, 0xbe6f87ba, 0x8151f0b4, 0x1949a204, 0xea76aef3, 0x069d38dc,
			0xc18df699, 0x8ac03d11, 0xb420627f, 0x7cf3be05, 0x1bca9708, 0x9c62be23, 0x157f8967, 0x39888a3e,
			0x89ec9b38, 0x1698c990, 0x9b8e47dd, 0xdeea298c, 0xa5a7b055, 0x149c5cb8, 0x304bf638, 0xdb2423e2,
			0x2709b3be, 0x461c2e18, 0x88dbe37a, 0x2ae2d376, 0xdedd23bb, 0x2d0b6698, 0x53b4cc28, 0xe6ad8038,
			0xaa369c1e, 0xea85538e, 0x60210d6d, 0x125ec702, 0x799df517, 0x63b1e179, 0x9b390643, 0x752c69bb,
			0xe35d5dbe, 0xbdeb9e49, 0x9a4c447a, 0x267196cf, 0xda7532f1, 0x2f15377f, 0x28d6e125, 0x9e3a6548,
			0xa6c8e6dd, 0xb93ff018, 0xd47031a9, 0x13413392, 0xdf3b654c, 0x4e60c87a, 0xfc5ebb3f, 0x08e1544b,
			0x84af1a13, 0x4944e88e, 0x143c51e1, 0x16e852ed, 0x9bd25b76, 0x002ded2b, 0x5fb063e0, 0x02047a27,
			0x8a8ccc5d, 0xa8708217, 0xa376191e, 0xea86143e, 0xcd0fedc1, 0x3132ea94, 0x41534e4c, 0xefb40b47,
			0x4734d47f, 0xdbf26367, 0x5aff6856, 0x622c315a, 0xa0508ecc, 0xd5c123e1, 0x7c8b7179, 0xa7015628,
			0x55f448e8, 0xb9e4635b, 0xb4e44c58, 0xba63919e, 0xbdbbb4fa, 0x724251c6, 0x44a800fc, 0xee2ddfa1,
			0x06f48233, 0x9e0dbf27, 0x1d1bda35, 0xaa6123ac, 0x5a684f0c, 0xcaab42ea, 0x8189148e, 0xd1b44355,
			0xb2347a4f, 0xd779dfef, 0x61e1f534, 0x97f49311, 0x806b07a8, 0x6a6eeae0, 0x081949d5, 0x69302a4b,
			0x12994f38, 0x6ff6800e, 0x5d143183, 0xc15e9566, 0x4c79c9cb, 0xe26922eb, 0x11afc0a5, 0x1eb75b23,
			0xef07a6ee, 0x541bb279, 0x2feec3c2, 0xa8060ccc, 0x74da9baa, 0xf3b2f494, 0x207d94ab, 0x5b9fa882,
			0x92d9e408, 0xd2c25113, 0x04b50712, 0x0110c36f, 0x20a00f34, 0xe28ef8d0, 0x92dac0d9, 0x965d0d89,
			0x1b10709e, 0x33d31bff, 0x2543faf5, 0x87c578b4, 0x63d4411c, 0x26816534, 0x64adc4ab, 0x1eb0796e,
			0xaaba987f, 0xc223b642, 0x61f07485, 0x49e257dc, 0x8a37af18, 0xfa4e1b8f, 0x920b35e6, 0x5a70f8c8,
			0xd175b96d, 0xd3751f38, 0x2c008441, 0x36e7d49f, 0xc742c5df, 0xbb0cb190, 0xde6dd33a, 0x62f3c530,
			0xf444326f, 0xd45e8e4e, 0x15c0a4a3, 0x5b24d870, 0x0d51ee46, 0x6fd60685, 0xdeb55464, 0x9b875d9b,
			0xb7d1a785, 0x377e9d15, 0xa30fa886, 0xd07d9fea, 0x22954795, 0x5bec8849, 0x6030c48a, 0x6c53cc19,
			0x9d47f65c, 0x134fc0af, 0x5ee84376, 0x75878fcf, 0x39b42299, 0xe4e2d3ff, 0x9cc457ac, 0xb2a5340f,
			0x472ce39c, 0x8320ad6b, 0x36d5debd, 0x16b1b786, 0xa01c83d9, 0xd6c64f56, 0x0b7a3978, 0x5aa6f1e9,
			0x8cccbe1e, 0x766ae47a, 0x1f9727d9, 0xab33e419, 0xb4140cb2, 0xc9ccf7f3, 0x16c76ed3, 0x4b1df722,
			0xf0b0ef8b, 0x34fd6535, 0x303a0815, 0xf21655fd, 0xe8744bcf, 0xb83645a3, 0x228298dc, 0x00000000,
		},
		{
			0xa1b8c0a0, 0x2a1a9d5c, 0x52c0da80, 0x58dc3d8a, 0x709d042d, 0xcb658be4, 0x1182b409, 0xa9797cb5,
			0x0e445cf6, 0x4bf8f583, 0xecfb682b, 0x7c06dafe, 0xfa08c5de, 0xe28b7c5d, 0xedf85e02, 0x5ac7fa53,
			0x0ee0d472, 0xd3b32384, 0x952f2b0e, 0xe5cbfe56, 0xcf5fe686, 0xd6df3f41, 0x0d5f966f, 0x186a7425,
			0xd0418758, 0x4b434570, 0x1b4929f9, 0x347ae724, 0x93bee01c, 0xecd89f79, 0x860c4e60, 0xc7625356,
			0x3d1f921b, 0xaeb7fe6c, 0x44de7601, 0x1ad7503b, 0xdc5969e4, 0xf331fada, 0xb8bfdcb8, 0x77e48d9d,
			0x71c9f872, 0x4e2f2830, 0x01a77f7f, 0x2a01fb13, 0x91f70e82, 0xdc67145e, 0x71338c0d, 0x1cfb272f,
			0x18daea42, 0x8bf909ef, 0xe352ee4d, 0x47fe048c, 0x28577a1c, 0x051f9af2, 0x97124f49, 0x84060137,
			0x6fae7857, 0x5c92e24a, 0x295d3ab6, 0x6df3260f, 0x4b660e4e, 0xcac3b3a8, 0xfcaef2e9, 0xff80b83a,
			0x60cc6844, 0xe3f59252, 0xceebc581, 0xdea03429, 0xbcf29177, 0x117e4d8a, 0xdedf112a, 0x20ac4c1d,
			0x39d46b3e, 0x023ce76b, 0xd855f5e5, 0xeb67330d, 0xc703f43d, 0x3754f1be, 0xf2a93757, 0x7168fab2,
			0x043332c9, 0x422ef55e, 0x9dd06734, 0x82db2050, 0x6c4e77ee, 0xca28f4ba, 0xd73cb491, 0x84f9bb99,
			0x5292ad45, 0x8acfcb10, 0x797bdfc6, 0x228746f0, 0xbb538db8, 0x5c67fdbb, 0x11d221eb, 0x5fe2213b,
			0xd388855f, 0xd1d55b91, 0xc8401fdb, 0x43dfbbe5, 0x936960f2, 0xfacd156f, 0x755519ce, 0x115f8746,
			0x3a251db5, 0x5ab2b512, 0xeb22a1cf, 0x6d116b70, 0x7a851b7f, 0x18a2e986, 0x5b8cac2b, 0x4d3d6a4e,
			0xf186df66, 0xa7225e5d, 0x7cc172cb, 0x30b6de52, 0x6aae4926, 0x32cb96e1, 0x67d12243, 0x503764da,
			0xd6928eac, 0x1e18021d, 0xd1baabbf, 0xf6bf23ae, 0x30b6fb8d, 0x28ba40b2, 0x27ff2e96, 0x6e607fb2,
			0x12bbdfd5, 0x19841234, 0x965e266f, 0x3096cd13, 0xa59b9748, 0xb94c30aa, 0x007957c1, 0x39c81a8b,
			0xdc32a6ca, 0xf331daeb, 0x246c79bf, 0x6c42c203, 0x12af5d55, 0xe11025ec, 0xbc466058, 0xac9b2209,
			0xff05457d, 0xec6b1fb2, 0xb872f34c, 0xf7afacb6, 0xa4fa5a29, 0xad3fede1, 0xdb1cc9c8, 0x979b14c8,
			0xfe6a3ffe, 0xe4152a2d, 0x7078d90d, 0x91de557e, 0x2b552de9, 0xb11f7d64, 0xd9bbc595, 0x38f0a9e2,
			0xfd5a3c1b, 0xae75ca0f, 0x866735ee, 0x4c0cc188, 0x54f499d7, 0x44e5be74, 0x49733661, 0xcd76cd63,
			0xa13269f4, 0xb7b16146, 0xb9f07852, 0x1fc944b7, 0xe00ffbee, 0xc2dc1d2b, 0x18c3b73c, 0xb05f8d6e,
			0xe199da50, 0x7e7bbb26, 0x67220971, 0x0d0339ec, 0xd0c6554e, 0xecdcb9b5, 0xa7a39221, 0x4cb763c4,
			0xac7143ba, 0xd2e4ad22, 0xdc931469, 0xd794191d, 0x947cbc8d, 0x311fcd7a, 0x9f2ac45a, 0xd2c7e7d8,
			0x703add0e, 0x9efb6c32, 0x1d99789f, 0x75f6db69, 0x3768d32b, 0xe4663621, 0xd8b541ff, 0x769caf35,
			0x8189a581, 0x680d1bc3, 0x06276e7a, 0x83540cc6, 0x399c9515, 0x6c09ba26, 0x8f3d36cc, 0xbc6de7c6,
			0x73520a91, 0x272d0585, 0xb98c2082, 0xe9f58b48, 0xe54a31af, 0xf726c894, 0x647047f5, 0x054f58a9,
			0xf20ce89c, 0x4f1c539f, 0x1ab0979a, 0x37650320, 0x9f6957bf, 0x7fae0e4d, 0x28be188c, 0x60ac488a,
			0xfbcf8c99, 0x1be67732, 0xac984a7d, 0xf276acef, 0xa5299ce8, 0x9993c17b, 0xdd5a6229, 0x986361e9,
			0xd9bf3456, 0xe30ef1b4, 0x6de50cbb, 0x6580e2e5, 0x2c62e24f, 0x766bf4f0, 0x3598a9f3, 0xb9e4f269,
			0xdc04fd1c, 0x367c9602, 0x717a063f, 0xfa67f85e, 0xaf542666, 0xf0b6d9d6, 0x59a3d39d, 0x470d3ae8,
			0xf6c03b6f, 0xd73cbdf8, 0x6c533506, 0xcec4a42e, 0x359272e7, 0xefaabcc7, 0x74de8aed, 0x7f5d535e,
			0xe1afa714, 0x4e263c61, 0x975a527c, 0x340e86bb, 0xdad69be5, 0xebd3647e, 0xd140e060, 0x60b665b3,
			0x4971bbbd, 0xe456f9c5, 0x8ade3b9a, 0x5331aeba, 0x6b5fd1bc, 0xd292a7c3, 0x56ac14c3, 0xa58048a3,
			0xbcd61092, 0xdfaa1142, 0x751a8bc6, 0xcbcfd42d, 0x24688978, 0x57b0551f, 0x9395c96c, 0x6bd5add6,
			0x0fc8715c, 0x52e343d1, 0xbaa595f8, 0xebe68a0d, 0xca2c5c92, 0x7283ee9e, 0xac2b35c1, 0x94076b44,
			0x04ab844d, 0xaa8e3cdd, 0xcb160b5f, 0x52f50da2, 0x3bd749e7, 0xf52f8402, 0x16d13ba9, 0x6bb53e75,
			0xc656082a, 0xfdde773c, 0xfec779da, 0xeaed8589, 0xa821359d, 0x8ad8cf5c, 0xb8a913ad, 0x619aab2e,
			0x8e9367a7, 0x15fa8e86, 0x44c57d59, 0x9d4fb762, 0xeb111f23, 0xe650fc03, 0xbd27ca1f, 0x5d0cb528,
			0xcfe1694e, 0x38cfe06b, 0x5ec15ca1, 0xf8ac8eb3, 0x8d4f29db, 0xe18def7e, 0xf0509a85, 0x6e447456,
			0x51d0e959, 0x73cdd586, 0xdb96888c, 0xb1add605, 0x8021ee7e, 0x504e3b8f, 0xc7e2ab43, 0x0d7e5fb9,
			0xb3dd874f, 0xb0f0b5de, 0xa9627874, 0x6af35182, 0x2da4caf7, 0xf42b5d62, 0x8fdf3d39, 0xa8b018a8,
			0xc969a84d, 0x4eefa55c, 0xcc2035e5, 0x244dbe5d, 0xec4698e0, 0x1028ca52, 0xdd018256, 0x028b192a,
			0x5e5a8bdb, 0x12da53d3, 0x48786e60, 0x8b35ab89, 0xdd8931ab, 0xce159ef3, 0xd518afce, 0x2384fb89,
			0x54ad73b1, 0x1b354d39, 0xebac5f0c, 0x5279798f, 0x5ae48a2b, 0xa03bd633, 0xb6261b7b, 0x5583c080,
			0x925e4a9a, 0x8b58a543, 0x96e58128, 0xc5099df9, 0x2eab7acb, 0x04d34505, 0xaac83ae8, 0x68a236bf,
			0x3e09eaeb, 0x5c731758, 0xd6342237, 0x283bbec6, 0x0988a3d0, 0x4db31aec, 0xf57635c9, 0xb3cdcf92,
			0xf787d352, 0x14d45d7d, 0xabff1b6b, 0x489f47fd, 0x00bdf4bd, 0x1cb7d42c, 0x3707b989, 0x1cd671f6,
			0xe1193423, 0x47839ccc, 0x7e2401d5, 0xb66244f3, 0x11517cb9, 0x2f76d952, 0x812b3ab5, 0x978ba482,
			0xb039ede4, 0x2d7a2524, 0x421f2498, 0xb65e0bcb, 0xc05b1dac, 0xb9c7fcfb, 0x0d594eff, 0xd6844595,
			0xc94f66f4, 0x383d0dd7, 0xbd3be9be, 0xc0daffeb, 0xf4629252, 0xcc434c78, 0xdb34ae9e, 0xb4c57700,
			0xc99a7918, 0xa3fcd44f, 0x18983454, 0x63fb04e3, 0xc0516c8b, 0xe31e7d8a, 0x4d046837, 0xb6db5ec6,
			0xd79662f6, 0xf1ad08b3, 0x57806244, 0xd129f0cc, 0xff69bd87, 0x5574b306, 0x09e4f76f, 0x18622fcf,
			0xc1b30f7c, 0xe03b19f7, 0xb3e2e00c, 0x87058e98, 0x5c75d447, 0x890b5e40, 0x6aededf0, 0x7cf9c6b0,
			0x54093628, 0xdb1214b5, 0x2563c5bb, 0xec027141, 0xd83ab114, 0xf85376cb, 0x3cc1f98c, 0x121ea5c0,
			0x26612570, 0xfb4a62a8, 0x7ebcfffe, 0x292db08a, 0xa18127e5, 0xf53b3b32, 0xa356c0f6, 0x91fd61c1,
			0x8f03bc29, 0x0eaa85cb, 0x00d067e9, 0x15b3eb9b, 0xbbbe6375, 0xa88d632f, 0xdbadf8ec, 0xac30d385,
			0xa5d3b347, 0x7890149e, 0xec40681c, 0x23032b55, 0x68eae20d, 0xc370e9ea, 0x5352c182, 0xf9ab7e6e,
			0x4fc51ad7, 0xfc9e880d, 0xd0310e63, 0x624392c5, 0x7aced8eb, 0x6c08e69b, 0xc8928462, 0x38351f92,
			0x38c959e6, 0x5ab7e3a1, 0xf1fe3f80, 0x3e4848ef, 0xc96692c3, 0x3a4cf68a, 0xe28db323, 0x98b42b27,
			0xb5d2e1d1, 0x97b5d52a, 0xab0b1d8b, 0x0f8ec67a, 0x83f7ae0c, 0x3db7bae4, 0xa2f22e9e, 0xd1259fba,
			0x55f37942, 0x4ff3eb23, 0x386495ea, 0x8fde0799, 0x7690bc4b, 0x2d055a72, 0xc1d87e90, 0x38e50c18,
			0x37c141a7, 0x958c282d, 0x55144e94, 0x05c93f34, 0x057d0484, 0x8d8dc7fe, 0xd20bec05, 0x4f89ed93,
			0xdac2eab8, 0x259f8b0f, 0xca0b9d67, 0x6e1f04a1, 0x0c761840, 0x6159d1f0, 0x9ace2eea, 0x079ca1a4,
			0x2a9e8228, 0x466004f6, 0xba3461e1, 0xbbfeebe6, 0x453db85d, 0xb9828ec2, 0x3de3686f, 0x850d1710,
			0x0b430244, 0xe2a0b6bf, 0x43898ccd, 0x49d2dc22, 0x9e527947, 0xd654fe5e, 0x48c50a68, 0x03a4b9b9,
			0xa1aed13f, 0xd9b8034f, 0xbefb8202, 0x8c96dacd, 0x5a9fe238, 0x477d28a0, 0x3953bf17, 0x765c7d6d,
			0x99717450, 0x0635d1b9, 0x689c80c5, 0xa597026e, 0x25721110, 0x37857fc6, 0x42eba175, 0x284500e6,
			0xacc46b8e, 0x3a166da8, 0xbc964bc0, 0xa0a87273, 0x50c6c2e5, 0x5e705db3, 0xbd6db017, 0x00cd31c8,
			0x25a13a5d, 0xae1bf801, 0x7b8ec346, 0xe2ae37b9, 0x89f537f6, 0x3796bd5d, 0x4b8b33cc, 0xce40737d,
			0xe83de542, 0x8c0ff0d7, 0x22a11b42, 0xb3715861, 0x0525fe96, 0x37031bf0, 0x0c565d57, 0xf333e709,
			0x3047ea69, 0x120587e5, 0xcc8921fc, 0x7af0bcb1, 0xf23a4c83, 0x31f1fe0a, 0xd21fd658, 0x09fb6972,
			0xdde90c4b, 0x953ee144, 0x23dfc1d0, 0xcb98cd54, 0xf5e89e95, 0x86b098f1, 0x54ac2191, 0x1343af7d,
			0x49381227, 0x0b49cf67, 0x1a1302cb, 0xbb323230, 0x82d2fecf, 0x4869cbb9, 0x50c1e548, 0x998d1bfd,
			0x6372a391, 0x3225df75, 0x1f12b3bf, 0xd1650367, 0xa4688e7b, 0xa5048818, 0xdc72c110, 0xb5d9c744,
			0x25ff7dfa, 0x32fccf05, 0xe347be34, 0x970f71c0, 0xc27e9564, 0x45ede70f, 0xaf710270, 0x2914f599,
			0x95eb5672, 0x5fb09ba7, 0xc88ccb61, 0xdb270716, 0x5a7c062e, 0x51b268ff, 0xf2a5a32f, 0x0ebe4d31,
			0x4126a658, 0x2dd891ea, 0xcb653ada, 0x55f956cf, 0xcb82e830, 0x9a383efe, 0xa01d9524, 0x00000001,
		},
		{
			0x29c86ec3, 0x843730dd, 0x8a83b95a, 0xf5d797c7, 0x35b68203, 0x6f2c90ea, 0xaa9e6d95, 0x70b9cf58,
			0x0c1e7163, 0xc8a29411, 0x682cb883, 0xcbd6233c, 0x2b04475c, 0x5f014a7d, 0x6c36295e, 0x3e9ebf12,
			0x01385274, 0x94c8b8c1, 0x50aac840, 0x700cd613, 0x480a2d4a, 0xd95a4c9f, 0x8f5f7972, 0x00eab33f,
			0x7b81580d, 0x21f295f7, 0x7ff3bdc2, 0x84841b47, 0x7f02cc02, 0x4835180d, 0x5fcf5b64, 0xb5470242,
			0x89d0ddfc, 0x4d3dbf40, 0xc9f5f833, 0x4753e8dc, 0xd15c8097, 0x1e76bb6b, 0xdac6735d, 0x58929474,
			0x5be3c662, 0xbfc2c4b8, 0xaba5fc25, 0x50f7eb3a, 0x4080bd49, 0x89478587, 0x7497f72d, 0xce448e80,
			0x59feb85a, 0xfe83d98e, 0x38e4b303, 0x590541a5, 0x1ac0bb4e, 0x6c9e4e05, 0x73bcce95, 0x608b7a98,
			0x7890e9b1, 0x21e76bc5, 0xaf0ad03e, 0xb48bb198, 0xb3f65c1e, 0x3beb9b84, 0xbfa2fac8, 0x22e02068,
			0x1cf3d586, 0x51472538, 0x33c013a4, 0xf0b8bfc9, 0xc07cb54b, 0x251133f6, 0xdf0291f1, 0x5df2c8d2,
			0xeee503b2, 0xc2391151, 0x1f7b0569, 0x09ea54f3, 0xea8f2188, 0x070d67b6, 0x05dab9a6, 0x566fe480,
			0x5d65b726, 0x4bd80013, 0x828a8747, 0x6c50d799, 0xb0e2adac, 0x30616fe2, 0x4e668bd8, 0x1fd292da,
			0x8f360cba, 0xa3bfb99d, 0x512fa7e1, 0x09cb0378, 0x18ef13c1, 0x614dc077, 0xc8a1116d, 0xd2bd233f,
			0x9f8d58ba, 0xc15f4741, 0xaf1ab8c0, 0xc9da6321, 0x77b9f14a, 0x9c8b1636, 0xe83380e4, 0x7ec9d906,
			0x6764aec8, 0x3c812003, 0xdb7ec424, 0x90803824, 0xecae5e63, 0xaa25eb6e, 0xb92df1b2, 0x05a0c25d,
			0xf4137201, 0xffaa3fab, 0x3187ea40, 0xa0731da3, 0xc0fc9933, 0xc452c3fb, 0x1a4f8059, 0x579551d5,
			0xc01a88dc, 0xb6d29fa4, 0xb765fc82, 0xea02a464, 0x914ca1a3, 0x8a1fbadf, 0xd8352f53, 0x69ff9e90,
			0xde80e94b, 0x3423d706, 0x0e894823, 0xf0b7dca6, 0x707be3fa, 0xc06abb1b, 0x7693daeb, 0xf71d95b8,
			0xc57dfb6b, 0x44cbf83f, 0xdae8a03a, 0xb42638ca, 0xcb3b02bb, 0xf77eb485, 0x62f927fc, 0xf9487acf,
			0xa4ffc124, 0xa892d68d, 0xae1b4f48, 0x0d8a4421, 0xcd6563fb, 0x785f765f, 0x8f12fb16, 0x84b98f8c,
			0x92c278db, 0x3136d05e, 0x37ab28c2, 0xb4169624, 0x021ac850, 0xb48d6b03, 0x6ce1f602, 0x6012abc6,
			0x1eb33bf2, 0x74d97bd2, 0x00463477, 0x71eee025, 0xe02fb459, 0xb021ae22, 0x7d7f5c7d, 0x5a216d4d,
			0xcbaa3ad0, 0x063f92ee, 0x856da01d, 0xfa8c4eb3, 0x4b319716, 0x3843f7ce, 0x7973022e, 0x8b04d64a,
			0x4027a8a2, 0xd27999a4, 0x6b37c3f1, 0xc318447b, 0x482e5855, 0x5cae23e7, 0x51e59be1, 0xc9d4f9db,
			0x8baec50e, 0x6fca11e2, 0x130d563b, 0x79dcd1ae, 0x7bc461a0, 0x3a8aa1e0, 0x0b0fc375, 0xde8e065c,
			0xe410f56a, 0x83828822, 0xf38485f0, 0xf99032f4, 0xbb88f226, 0x55a9ae72, 0xf9f8eba4, 0x785ccf53,
			0x1571d5ec, 0xa1af5579, 0x592f29aa, 0xaffbc037, 0x46b2d7a3, 0x384d4248, 0x65a3b525, 0x99aecac5,
			0xe240bd4f, 0x36f5b64d, 0x0e475fba, 0x2572995d, 0x34fa270c, 0x5f5c8081, 0x6068aee5, 0xfe295b16,
			0x6c9465ec, 0xa364a0c2, 0xc91f049a, 0x10e6019e, 0xd965e4da, 0xfb969a46, 0x8a13abaf, 0x9a8618c2,
			0x4a56db72, 0x05483da4, 0xb68cbe1b, 0xad40fb8d, 0x588cbef7, 0x22c4d19c, 0xa9092dcd, 0xee8008a4,
			0xf0149b10, 0xd15a5642, 0xcd137356, 0xd7bb5060, 0xe412f8a2, 0x22d1959c, 0x0679faf0, 0x544e1590,
			0x14a030e9, 0xf5596d26, 0xc6cd837c, 0x837e231e, 0x9542ec62, 0x63ad8ded, 0x942fbfbc, 0xa311ed6e,
			0x142d4083, 0x664cf9e7, 0xfa1c2d91, 0x096123f8, 0x6d84f37d, 0x4a3d2600, 0xcf839820, 0x40e58ef8,
			0x9441b7e5, 0x0e0e811a, 0xde34f6d3, 0x14f5f54d, 0x6aee969c, 0x79700d70, 0xaca027dc, 0x824bb2e1,
			0xa7565206, 0xc779c29a, 0x782ed54e, 0x2131bdbf, 0xe858c8b4, 0xd13f5643, 0xb0e328fd, 0x7e928682,
			0x428de8a6, 0x2b4bce50, 0xb66894a5, 0x0cdff9c2, 0xa32e134f, 0xbc5925d6, 0xa311d3d1, 0xfcd91f03,
			0xdcfc0007, 0x9891fdcb, 0x6ff19efe, 0x0eda9bb1, 0x36c08550, 0xaaa9603a, 0x2fe9811d, 0xad5fcb5b,
			0x6b68331d, 0xdc6bfa50, 0x7f826c98, 0x7f6b409e, 0xb09be147, 0xe58b82ce, 0xec106913, 0xe3edb3c2,
			0xa33a05df, 0x06cc03c6, 0xbbd50a81, 0xf6185bf9, 0x29712c2f, 0xaa42a02b, 0x37844d56, 0x15c019b7,
			0x07e445fb, 0x3a559178, 0x85a06f36, 0x1aae66b0, 0x0bada18b, 0x7048e16c, 0x099e6c6e, 0x168a74de,
			0x6ed6a23c, 0x04057d48, 0xe508f867, 0x48002aab, 0xc1eb6a18, 0x4d286197, 0x616bafd5, 0xf77e0c86,
			0x263e97ca, 0xbc68fd28, 0x3c8bb8f5, 0x5617ddd0, 0x88551ddd, 0xd6546f7b, 0x3ce168b2, 0x9b0d247d,
			0x0d6d310a, 0x202c2b1f, 0xa10be1af, 0xc42905aa, 0xe9babd62, 0xa9804e97, 0xd2d88da4, 0x4adfaa38,
			0x73eb9639, 0x8474cfa8, 0x450dc545, 0x089ccba6, 0x5060518d, 0x280b540d, 0xd5aa6967, 0x5293d490,
			0x44944f34, 0x5d7725b7, 0xd39269a5, 0x5d2acab5, 0x07819fd8, 0xd263d639, 0xd221bae0, 0x938bdd2e,
			0x8bccee21, 0x3f136a67, 0xb2c0c1b2, 0xc0bbb85f, 0xf9aa98fc, 0x5fb9d3f8, 0x8dbac4f2, 0x87db2819,
			0x054f57fd, 0x14137fbb, 0xce30d371, 0x395c9eab, 0xe134e10f, 0x4e32f40e, 0x913fdae0, 0x48e152e1,
			0xabcd4064, 0x882141ac, 0xac01482d, 0xd58be17a, 0xd89e0b6f, 0xa4e344c8, 0xa478b37b, 0xc38578da,
			0xf1a5f761, 0xf80f69a1, 0x2d13c4e3, 0x56047cc7, 0x802e0610, 0xf61d2b66, 0x3ebbe86c, 0xcf35851f,
			0x54ffdf3d, 0x36a5470f, 0x32ac7748, 0x7336e8e8, 0xf94ff831, 0x578c2795, 0x6b7b1894, 0xe09d4989,
			0x39ab411b, 0x27d81c71, 0xb471e70c, 0x58c30d24, 0xcf299488, 0x22cd80b4, 0xcfd5565f, 0x6ac100c9,
			0x528c1622, 0x261e81b2, 0x107cb06a, 0x5a99d59d, 0xbf3e678a, 0x9b24e348, 0x0bdadd9c, 0x1bd17f2d,
			0xa996c709, 0x5a8d1b18, 0x72a84cc8, 0xf91ad057, 0x565df64f, 0x7f7ee418, 0x212b00dc, 0x30c10114,
			0x4f3b9b3c, 0x765be55b, 0x56451467, 0x82bec9fa, 0xa1ff6f86, 0x5f8f03e8, 0xf8218e37, 0xa8ed17d0,
			0xf37e3a77, 0x176fe8bf, 0x12b30d25, 0x7c549d66, 0xb1502310, 0xac07d8b0, 0xb9d1c377, 0x189802bd,
			0x2122a719, 0x6f788a2c, 0x361104aa, 0x5f784700, 0xe8ae4d2c, 0xf7f30b20, 0xfe3a9fd4, 0x45cc7ec6,
			0xd479f13f, 0x03421a8a, 0xdcf48ff7, 0xa87d2f12, 0x0944603b, 0x88fdef65, 0x803118dd, 0x58f32838,
			0x9080ce82, 0x521914a1, 0x46829ccb, 0xaa1bc3ab, 0x2bf19f28, 0xbc04e6fe, 0x138ba113, 0x4a258c18,
			0xef090d2d, 0x6144a5c4, 0xd079d711, 0x565c073e, 0xbcc3a3db, 0x7f4386fb, 0xd58194e9, 0x2c8f2b24,
			0xf421986d, 0x20304013, 0x4a5a20ac, 0xf15b3b9e, 0x859fda33, 0x7990946a, 0x4e24f41c, 0x0a9cd2bb,
			0x6d19fcae, 0x7bcf3a8b, 0x9f36f822, 0x30843e9c, 0xc1f27025, 0x160ea54d, 0x4b0ec858, 0x72ba8bb8,
			0xb268c3a3, 0x62e693de, 0xceae8e22, 0x810bb338, 0xd5b6541b, 0x11737c9b, 0x1e9cf3a4, 0xfa9ca064,
			0x2d1ea4f3, 0x955cb4b2, 0xd2688efd, 0x925b73ee, 0x45752a76, 0x72422686, 0xf87a9aad, 0x3e96bc59,
			0x78866094, 0xff187f5e, 0xdcadb847, 0x37978b33, 0x30375c74, 0xbbee0e1e, 0x2ada103d, 0x1ecded38,
			0xe61deae5, 0xb98b7b7d, 0x74f7a333, 0xfec296eb, 0x0eabc704, 0x9fdd08c7, 0x0ba448fa, 0x099b33af,
			0x99f4448a, 0xeb6e5cba, 0x0233b275, 0xc8dca69b, 0x0a703958, 0x6e69b817, 0x3ae113e4, 0x52a84018,
			0xcc0eca96, 0x4342f48d, 0xeb0e06fb, 0x6aa489a3, 0x81a65e5f, 0x1390b1ec, 0xc1bad8b0, 0x9c80659c,
			0xeb6da157, 0x39c8ff51, 0x4d97739e, 0x2455d268, 0xfb1c4c78, 0x79c322fc, 0x7e9b8207, 0xa918a84c,
			0xdd2bb2bc, 0x9a5c9d9c, 0xbc196cd2, 0x230b3bd1, 0xc2e14dd2, 0x42c45d9a, 0x5d7a6569, 0x7307fa2f,
			0x19a43a75, 0x87113397, 0x612c2c9c, 0x85fd5b3c, 0xd4a604be, 0x82e3c83a, 0xf573a0d2, 0x3685ee05,
			0x8fd578d8, 0x3e787f08, 0xa01439cf, 0x60a2b425, 0x3ff52efe, 0x376e5d85, 0x49be9af0, 0x26b381c4,
			0x7682424b, 0x74d5b7b3, 0x583ae7b3, 0xccfda9da, 0x8e3012a4, 0xba7f1bde, 0x08b6829b, 0xa2dc253a,
			0xefae05f5, 0x9ddad38d, 0xd3576463, 0x875e5b33, 0xc5b02ec0, 0x201c212c, 0xf334e39d, 0x9fa83d49,
			0x8b992ed2, 0xece5dc79, 0xb504ea7e, 0xfa8b0c55, 0xaa8137cb, 0x6378e4ad, 0x54dfd28a, 0xbfc5e606,
			0xb030f348, 0x580eaeb4, 0xefe99426, 0xf11702ad, 0xef7a429f, 0x2ea56b45, 0xe3c3778e, 0x1c575be7,
			0x3ec84fcc, 0x0d3e2e43, 0xd355cabf, 0x5e8d52ce, 0xd74ca5fa, 0xd83c99d8, 0x77ec3ce9, 0xa339cf59,
			0xb4e1678d, 0x6a8f1b1d, 0x823ec4d6, 0x4eca8279, 0x96dc9884, 0xc7b47288, 0xd323cb2f, 0xcba50f69,
			0x77019ee1, 0x700775fa, 0x6f2e27bc, 0xdadd105f, 0x8405b969, 0x67af8b2a, 0xed3d1d55, 0x82ff28f1,
			0xa56a202e, 0xa53dc1e9, 0x5ff6f702, 0x9794327b, 0x75360988, 0x8db2b176, 0xb4e9e280, 0x00000000,
		},
		{
			0xfe4d1f05, 0xad41c823, 0xf7a30285, 0x14063519, 0x78b6afb7, 0x08de997c, 0xbb0a4a66, 0xacfd298f,
			0x3f5ea6a4, 0x6b257770, 0xb63ba762, 0x03bdb73d, 0xa5ce4b1c, 0xe7cd8de2, 0x85c465b2, 0x5ebdeb6b,
			0x6dacd35c, 0x2c8d9e9b, 0x5f0ed364, 0xad1a276d, 0x7dd39d3e, 0x9bbf6ea9, 0xd5d78d6d, 0x298f380b,
			0x9d7e3153, 0x312b7269, 0x26276cd5, 0x9f8f5e94, 0x16744e87, 0x79e93cca, 0xfe0aa88c, 0xb57f39f5,
			0xaba7dcfe, 0xaf0ee5e6, 0x1d4e09c8, 0x2bc4f8ba, 0x0105c622, 0xbdb013e7, 0xc5781a53, 0x7e282d8b,
			0xa5b90ac2, 0x0eb82f89, 0xbdf935e2, 0x8cc77e85, 0x518c1ebd, 0x520d37de, 0x9c640d5f, 0xf2a8a224,
			0x5cdd78c6, 0x08ec1818, 0x84ed2b20, 0x74ba9838, 0xba7a8f96, 0xbfd55e1c, 0x50d472e7, 0xe08c6992,
			0x0e49994a, 0xbe636eaf, 0x8df10f73, 0x8611445d, 0xa5afbdeb, 0x7e118c48, 0x73b624db, 0xc30b2e1c,
			0x758063e3, 0xe38d84a0, 0xc7ac88d6, 0xd3794715, 0xa01e0dbb, 0x3bfbc773, 0xc046f511, 0x09954f88,
			0xadb22220, 0x3cf718e7, 0x503e7e41, 0xfb046364, 0x7b2941fd, 0x175ce2df, 0xa0dd3c79, 0x379c3871,
			0x7d3a16b9, 0x31006df5, 0x19762179, 0x03a41039, 0x7d52138d, 0x4fd8c876, 0xae4b9c61, 0x99d3f7d8,
			0x175c48fa, 0x97393cde, 0x2f4d7e79, 0x79a50d4d, 0x5d339b4e, 0xaf030807, 0x6805038f, 0x5fe72d56,
			0x3d4cc212, 0x459239cb, 0x92d60159, 0x8dec71b7, 0xed1e60de, 0x4d867ac5, 0x5c862ae7, 0x76040245,
			0x2f64f783, 0x3542279a, 0x2570fba6, 0x4b4304f7, 0x4581114d, 0x72f669bb, 0x773c449b, 0xd9c18fa7,
			0x12aaf4dc, 0x88684442, 0x1e08fe60, 0x1a21eff7, 0x7e67a2b5, 0xa00d5dc6, 0x2a4244de, 0x76b1c07a,
			0x17fb64b2, 0xe69b3682, 0x6d05850c, 0x967d2b74, 0x90fd8586, 0x9e0b7a2a, 0x3eead07c, 0x921ca163,
			0xf8e26c96, 0xf42328cb, 0xd766814c, 0xc74cf219, 0x8a13fcc0, 0x1c20981b, 0x092c7545, 0xc49bc49a,
			0x58a6d93e, 0xaedaddca, 0x7542463b, 0x68b3402d, 0x8ee41f6a, 0x5f018280, 0x6b85ad4d, 0x9aee4359,
			0x96bac56a, 0x5fb25c6e, 0x9e08b560, 0xb9de5252, 0xc96ca008, 0x2d2b913d, 0x07c73540, 0x3adb5310,
			0x26e2db83, 0xb5cbb08f, 0xb78c0651, 0x97573574, 0x5694fcd3, 0xe2e60c66, 0x8e2c4eeb, 0x6d655885,
			0x998436a2, 0x9937b4f2, 0x31c470b8, 0x3d7efc08, 0xd4e3cbd4, 0xaf2a25c3, 0x1af1dcad, 0x2eaeb8a6,
			0xff2a9544, 0xc8a1a0d2, 0xf3dd569d, 0x151406cc, 0xddd90a7f, 0x88230ea1, 0xab2266a6, 0xcd82f904,
			0xa958005a, 0xc91e9a33, 0xf51726a8, 0xf7b9ab2a, 0x6454cfce, 0x78712315, 0x2c682d80, 0xec1b9ec5,
			0x07347052, 0x9711ae58, 0xe1a72e11, 0x4ed64c57, 0x902d1bca, 0x131c254f, 0xce477a1f, 0xaba5a799,
			0xc59a9bb6, 0x75d80429, 0x7955b2df, 0x846d1dcf, 0x2e4ad4cb, 0xdbce6b2d, 0xe49339ec, 0x9543234a,
			0xb562d3a0, 0x940ff9a2, 0x1d95f09b, 0xca1bbc15, 0x1046a134, 0x047b932d, 0xba1576da, 0xcbde73ce,
			0xf2215e29, 0x16dfb79f, 0xeb22b6eb, 0x4796f7fc, 0x7cab4b10, 0xb2b4df96, 0xfd2bc5d3, 0xd6ac5ad7,
			0x100142ae, 0x274b761d, 0x0a4af2e4, 0x99b7fdc0, 0x347102b0, 0x8c18a2a8, 0xf39b1d13, 0x8e4e0543,
			0xca88d666, 0x3c933ab6, 0xea9f3789, 0xf33335d1, 0xac062131, 0x0e2c1d1b, 0xd4863c74, 0x19698e53,
			0x015b50c4, 0xa1f44b01, 0x33efd405, 0x17f5b2d4, 0xce697262, 0xb5d27612, 0xfbcb520d, 0x84a070aa,
			0x1470d55f, 0x404c9f91, 0x115a9f12, 0x895636cf, 0xb17511f3, 0xfc63e311, 0x323f0785, 0x6ea86316,
			0x4873bcca, 0x960a354a, 0xa1443fc6, 0xb898aec1, 0x91e8507f, 0x584e9921, 0xa4af870a, 0xf486e443,
			0xf8199f97, 0xcdf99d75, 0x4345f2a2, 0xdbe592aa, 0x1a9a39d1, 0xa27b25a7, 0x088c4555, 0x98683434,
			0xea8c5a26, 0x83e863f7, 0xe3ec4b60, 0x25126f5a, 0x554f36dd, 0x8640b7a1, 0x5809d0bd, 0xc501eae3,
			0x2a6f16b0, 0xc7b1e304, 0xc4b9ac67, 0x8230df24, 0x678bb99f, 0xbfe0afc2, 0x4f04c1b4, 0x2cd62dd0,
			0x492a3083, 0xfa97b52e, 0xfcd5cc85, 0xca1309bf, 0xa6a9a555, 0xe2102eae, 0x7128ab98, 0x1e929d9e,
			0x7371ce32, 0x69e8776c, 0x1aee93d4, 0x2428b557, 0xe0487457, 0x52e018ef, 0xaa1ff389, 0x2f8fcb0b,
			0x8e33423a, 0x077c590b, 0x1a2da3a6, 0xd26c1dfe, 0x2b9f2de7, 0x06f0a729, 0x07629389, 0x0a577ed7,
			0x21aa2999, 0x42ad9b6f, 0xe82710f7, 0x6887c093, 0xe028f18a, 0x1ce3624a, 0xd2b54c0d, 0x0c10b065,
			0x4f1f83fb, 0x260474f0, 0x36354b37, 0xbc08c86e, 0x9bb29e9a, 0x7bbdd6f7, 0xc6ee0051, 0x8059d2ac,
			0x48cb4d88, 0x9a3fd680, 0x644cb10e, 0xd6d8fd5b, 0x9442d258, 0x2158de5b, 0x549a51b3, 0x7a345876,
			0x0d08cfe6, 0x10011a0a, 0x4fd60ee9, 0x31c6b1cb, 0x82b978fa, 0x2629d2d9, 0x2bb923e9, 0xd89bcb0f,
			0xdee16b48, 0xf99e8f1c, 0x440f8ed4, 0xfb702608, 0xee77bbb2, 0x78362977, 0x880db98d, 0x3332791e,
			0x7c5b5451, 0x71214c56, 0xa7f09a3a, 0xde76d3c6, 0xf9a3712c, 0xa1c9c25c, 0x1035e579, 0x3dde1c34,
			0x8862762a, 0x609bf6ab, 0x529341c6, 0x2fb108fb, 0x56e6e04d, 0x983614a1, 0x2f10d294, 0x6269c775,
			0x350e4d54, 0x127c050a, 0xf6552c9d, 0x56403a89, 0x80cb3aaa, 0x66070400, 0x358c970d, 0x38487f8e,
			0x5825d79c, 0x54a3b262, 0x35d92b73, 0x2d2223ef, 0x3290bd4d, 0x3c21febf, 0x1c172de7, 0xa7d82ffa,
			0xfdb5324a, 0x5183517a, 0x5c7ad338, 0x4074980e, 0xfb4df8e3, 0xf50ecf7b, 0x6ab88675, 0x1b297d3a,
			0x516a05ec, 0x7fadaf7d, 0x60990bf5, 0x281d3ce5, 0x754c518b, 0x0f220c23, 0x5c1b43a8, 0xb30a55e5,
			0x2a9948b0, 0x2c75da3e, 0x6518655d, 0x2f60828c, 0x8c36db79, 0x785fcb48, 0x68f73614, 0x529b00af,
			0xa815d6ae, 0x9f93a8c0, 0x119eacf1, 0x7864b630, 0x4ce7f392, 0xda0f0fea, 0x78fafb33, 0x3a6aeef2,
			0x00a01ee1, 0x45ec3ecf, 0xfa2dda99, 0x13d8c959, 0x88813b33, 0x1668377f, 0xb688850f, 0xaf0f8683,
			0xb24e02e5, 0x6f1a6fd1, 0xa103d975, 0x4d50cfc1, 0x9fed2b4e, 0xb21319d9, 0x596ee685, 0x8bd8e272,
			0xb88208ac, 0x45823d81, 0xb02b823c, 0x5be88ac4, 0xe67790f5, 0xcc3ee6c8, 0x06676a2b, 0x3a1685ec,
			0xa66ad01b, 0x2b222310, 0xe3f16dcd, 0x35789e7b, 0xc79ea480, 0x9a1b860e, 0xbe27320a, 0xb86edc6b,
			0x3feafae5, 0xe7290e6b, 0x0d7311cd, 0xf14f1e5f, 0xa1094807, 0xc2b3404e, 0x3e8727ac, 0x96284512,
			0x2abd5728, 0x0259eba6, 0xb2a85c29, 0xb1b8355f, 0x0a1432d0, 0x61fefdbb, 0x0b59af84, 0x29a751d4,
			0x9c84237e, 0x8ec1975a, 0xa1de73e2, 0xc7fb0fac, 0x5961e813, 0xda0ddb40, 0xd511f366, 0x259015c6,
			0xb6b5b12d, 0xa0692ac2, 0xab15212c, 0xb3d2bc8a, 0x8517c20e, 0x00418786, 0x391c2142, 0x1d21bba2,
			0x47f88773, 0xc99cbd57, 0xcf62508c, 0x36ac7adc, 0x7e45a880, 0x634f9863, 0x6630633b, 0xcfc50a21,
			0xf60afd59, 0x527680c5, 0xba083292, 0xd3c419b5, 0x34bfd080, 0xccefce6d, 0xb788f875, 0x9f1c06b2,
			0x67e9dd5d, 0xbb9ea5d8, 0xb0c427ee, 0x8ebf5724, 0x0769c154, 0x17313910, 0x06d096f8, 0x6be32551,
			0xdaa1e4e1, 0xc1974335, 0xb37f418f, 0xa23d9edc, 0xecd8e053, 0x11497739, 0x3b4fca3a, 0xd68e4d14,
			0xf5ddd43d, 0x9bed4a59, 0xe4f691c4, 0x9644e449, 0x8877672f, 0x40a855ca, 0x9ae60e6b, 0x88783d2c,
			0xd858da94, 0xda85dc5c, 0x5bddc10f, 0xd465d6e8, 0x70a05a53, 0x0c57b365, 0xfd7e7ce7, 0xf2bf4047,
			0x189e4397, 0x309c2445, 0x4bf816bf, 0x917bef7e, 0xacb06f7c, 0x4d0089cd, 0x730f5d9b, 0x87487e3f,
			0x948f3745, 0x816adafd, 0x994ad76d, 0xb7be4348, 0xf965c552, 0x09843319, 0x4b75bede, 0xa9ec9e67,
			0x9015da51, 0x64a54e74, 0x3944bd79, 0xe7be98ae, 0xf1bd2c2a, 0x0f6ff5f9, 0xba19cae2, 0x8cfecf9e,
			0x07751b2e, 0x1ac0177f, 0xd2a97fc2, 0x1351dbb3, 0xfaba37a2, 0x2008577b, 0x888d8179, 0xddbf0d1a,
			0x533b12f1, 0xc99c62ed, 0x3a0d64b0, 0x8090c9e3, 0x18b82e36, 0x19b0b7c5, 0xa406b1b9, 0x4e274415,
			0x0b8bd592, 0x1070cbb1, 0x71347962, 0x8c99888d, 0xa3d65a0b, 0xaafcc846, 0xf7f63569, 0x4ecaa6c4,
			0x089e9720, 0x1e0d4391, 0xd71e2bc3, 0x079a4374, 0x4d9f098b, 0xaa193101, 0xbb371cb0, 0xb399822d,
			0x572651a7, 0x612d74d3, 0xaa6d1ea9, 0x744fc3de, 0x4dd9de1e, 0x6716fd9f, 0x93112f2f, 0x3e55fe7d,
			0xe4d417df, 0x0a3de3a7, 0xa4cec024, 0x0088d97b, 0xa4fba944, 0x19b28494, 0xcf1c7e02, 0x88120357,
			0x0cdd77bd, 0x315c172c, 0xeb68b558, 0x84b49d98, 0x8fba4311, 0x6fe49405, 0xb6df4266, 0x6118bb46,
			0x845e1bcc, 0x212b38c9, 0xa46b8243, 0x338b988f, 0x8bf88ca4, 0x74da8069, 0xa247b656, 0xd47fbc99,
			0x9cb38547, 0xd0ffbe0b, 0x551e57d2, 0x221c997e, 0xc48eb399, 0x54ee8d18, 0xcc8c52fc, 0x965c6b3e,
			0x72cdce83, 0x7fd3137d, 0xd906b42b, 0x53bc9ba8, 0x3b3a663e, 0xcb9d1c03, 0xce789f0e, 0x00000000,
		},
		{
			0x3a59d429, 0x078aa0e1, 0x840af635, 0x2f39f4d0, 0xfc55ee79, 0x7301c787, 0x3911b1db, 0x3a58482d,
			0x73892e78, 0x4c78f084, 0xd3447fe0, 0xd560d59c, 0x59860bf8, 0xd0304a2b, 0x91cf877c, 0x221df330,
			0x617d7e25, 0x9efbcf68, 0x5814cfc3, 0x8afea1b7, 0x03e65520, 0x03c8f102, 0x483fb801, 0xe10c6f0d,
			0x625d3cae, 0x75096a85, 0x82ffa043, 0x407c7882, 0xbb66c45c, 0x220f60a0, 0xe8ec0a77, 0x2c9eb0b9,
			0x2145cde9, 0x692a1177, 0x733cb0b1, 0x77e55be3, 0x3794b00b, 0xfc800a9d, 0xdffd8903, 0x801d9b85,
			0x4ca7df49, 0x2709f050, 0x9396a068, 0x73eb6f65, 0xa593403e, 0x861aa82c, 0x51abcf89, 0x0b0b677c,
			0x77d6d099, 0xcaeaec96, 0xdce4ba77, 0xfd5ea548, 0x89a42745, 0x896ce6c8, 0x04060812, 0xdd8dc030,
			0x4330b43e, 0x59df781c, 0x88045404, 0xcbde5479, 0x6f3e1816, 0xca73a79b, 0x9231b0e5, 0xb2067470,
			0xe40a2b4a, 0x75fb62e8, 0xc47cc88b, 0x6b64350e, 0xac3fbadd, 0xc74a49e4, 0x428014af, 0xa9466963,
			0xbae3bb36, 0x56723402, 0xe5a8d436, 0x982e69e9, 0x7aafe160, 0xb1c2dfce, 0xd70d2af8, 0x993a4b59,
			0xa1562aec, 0x7f8ccdff, 0x8bd63077, 0x523fc7a2, 0x4b142064, 0x5ede7919, 0x332810c0, 0xfd72bc1f,
			0x2832f7fc, 0x649db2a3, 0xf449aa82, 0x31539068, 0x44ab1a25, 0xdf977c6f, 0xaa3772ca, 0x91aba1c1,
			0x940cdb33, 0x066fc84c, 0xb197b6c5, 0x28036a63, 0x3ee35fd9, 0x2ce5e984, 0x19efaacf, 0xd37535c5,
			0x13d60278, 0x0342c4b7, 0x5d12d580, 0x20875867, 0x8abd50cb, 0x2e3f088c, 0xb8e628e6, 0xa5e9fd55,
			0x15b7c05b, 0x78a6a195, 0xf972f38e, 0x927c0b42, 0x625ce863, 0xc0ae0d72, 0xefc548ed, 0x87ce1fd8,
			0x2c03e6ea, 0x98c56a6d, 0xeac20816, 0xdfabcc0e, 0x8ed2bbb7, 0x2da6ac52, 0xa98088e1, 0xbeec4358,
			0x72b4b902, 0xb602ea53, 0x141395a6, 0x93e260a5, 0xaa10bb13, 0x894e3d5f, 0x017235a0, 0x36b2a325,
			0xe2b32937, 0x1f70e073, 0x663b11c2, 0x778a5dc1, 0x2c98552c, 0x5600024f, 0xaea17abf, 0x604697a2,
			0xcab64ab0, 0x713d674b, 0x14389ed0, 0x1c8fbe0f, 0xf425e605, 0x9e552bb6, 0x81557476, 0x720d16c7,
			0xc6574420, 0xd01b0d67, 0x53499d98, 0xe042c10d, 0xbc28a16b, 0x3f1cd09a, 0xf4c5c70f, 0x7ebfaefe,
			0x05bcfc0d, 0xe8aeec9f, 0x9f7856e3, 0x93dd34e0, 0xa18edbf1, 0xee1b6583, 0x27e64f9d, 0xe3e59292,
			0xce65e52f, 0xa306b2d8, 0x55e2604e, 0x6f651065, 0x64c418d4, 0xc5a1fd49, 0x8dfbf817, 0x724ce7bc,
			0xc3797dc3, 0x4fef4811, 0x11d1d5a6, 0xf1a81a4e, 0x0ad83e63, 0xaece9020, 0xa537eda9, 0x69237ce4,
			0x7480786c, 0x032976f0, 0xd69aa958, 0x98c51e65, 0x15c6785f, 0xee6fb910, 0xf721afe3, 0x0e557199,
			0x04a39491, 0x35442bc5, 0xff239d96, 0x146e05aa, 0x4b68be6a, 0xc25272a9, 0xeba3b11c, 0x46dcb6ff,
			0x500cbc8e, 0x8cc227b2, 0x12b69ee5, 0x2e642c60, 0x0f99c080, 0x9d922bc1, 0x634b0c0e, 0x3456f40f,
			0x5cc84393, 0x05531207, 0x18297e83, 0xd41cc71c, 0xb9cba46c, 0x6282647d, 0xc4734625, 0xdbb35050,
			0xe10d37ed, 0x3f1ed167, 0x386fce61, 0x43b544a8, 0x36b76b5e, 0xb7dccd06, 0x1cecca03, 0x3af339f8,
			0x9bc13b9b, 0x93cb2ad9, 0xfb1d5bcd, 0xdedac442, 0xf2ac9169, 0xa3b71c3e, 0xf546f8e2, 0x32d30a05,
			0x5ef85f49, 0xabb988e4, 0xfd420c15, 0x8649a2ae, 0x4a01d5d5, 0x8f323202, 0x092ec87f, 0x3a60ac2c,
			0x7b76be50, 0x47aec062, 0x7fa443a7, 0xfe26f631, 0xd3874727, 0xac6c5268, 0xabc95c13, 0x06c9afb0,
			0xf1d121e8, 0xec7b10f6, 0xbab75344, 0x0091428e, 0xf28860d4, 0x0d512b9d, 0xcb0517ed, 0x18ee8550,
			0x048abe3b, 0x9fc3d37e, 0xc6ae4aa5, 0x1ccdaa80, 0x9c619408, 0x98db7bb8, 0xbc1a81ee, 0xb2a121fe,
			0x39765a7d, 0x4c6714f6, 0xd9a7aed8, 0x1db013c7, 0xad5819b0, 0x6586c5de, 0x6f65698c, 0xaf87621c,
			0x1dcc7232, 0x4e41c82b, 0x78d3172e, 0x6359e424, 0x0960642b, 0x3418e666, 0xde28ec06, 0x849248d6,
			0x248f9a32, 0x8fdfe6a5, 0x7a75a27c, 0x2fdd6043, 0x3322c2bf, 0x4d7c2024, 0x6c4c0353, 0x0a886903,
			0xb39af40a, 0xadd9b617, 0x1e0ac721, 0x7dd395b0, 0xb7682b1d, 0xff1c9dea, 0xfd64c278, 0x2d278876,
			0x8416e93a, 0xc476d7e8, 0x600ab51d, 0xbc2982b3, 0xda20ce48, 0xd06dd090, 0x08fc9f27, 0xb6544383,
			0x34bd23e9, 0xf64f14f4, 0x8c331b5c, 0x5e5523d7, 0x83fc406f, 0x4df49177, 0x9acbfd79, 0xc7fa2d1a,
			0x2773f60d, 0xfe771335, 0xdbd64330, 0x8c54f820, 0x119f0472, 0xe4e012de, 0x8e72db1b, 0xb14767b7,
			0x2ac34c90, 0x1f83d03c, 0xcad9178f, 0xa5c4b466, 0x3d78ad73, 0x67b6929e, 0x2f9b88b8, 0xba663859,
			0x0cbe27c0, 0x2e5d0ff7, 0xb92d157b, 0x79738aee, 0x3e2e57a5, 0x448833ea, 0x1edac828, 0xbdbc0f25,
			0x7616153b, 0x093e639e, 0x1f7cbed0, 0xa03020be, 0x1d2a5fed, 0xca5624fe, 0x46bb88ee, 0xa1794eeb,
			0xd81845a0, 0xda5fea77, 0x0e987f3d, 0x03d8235f, 0x0b1f8820, 0x447dcb57, 0xc121a852, 0x80674884,
			0xda7121ed, 0x4fe1ef9e, 0x42494d25, 0xf62c8f9f, 0x31cc8794, 0x5d7cf32b, 0x9190b30c, 0x9abe0358,
			0x74b5d9c5, 0xd9ca4bea, 0x9363ab5b, 0xa7b41c2e, 0xf2a4da95, 0x7daf62d6, 0x0efee6ad, 0xd733c099,
			0xf4f1da66, 0x89bdaa80, 0x555d4c39, 0x528e976b, 0xf9b42a50, 0x47b1f7b0, 0x1c2c4d6a, 0xac280111,
			0x8795fe6f, 0x0c3f32da, 0xc2dbd267, 0xabca59a1, 0xba43271c, 0xfb4a6035, 0xbbe91de2, 0x11049113,
			0xbfcd3bc9, 0xe9575109, 0x33c5ea35, 0xa53508ed, 0xa16d068c, 0xae491a80, 0xe40bb6c4, 0x3c51014d,
			0x5b8a8d8c, 0x2f028408, 0xd38c43dc, 0x6238fbee, 0xb869e232, 0x9e3957d6, 0x65ec0944, 0x99e3cef5,
			0x95232b96, 0xddb9effb, 0x44d07690, 0x580bd00e, 0x162eaba6, 0x29fef238, 0x53cfa7ba, 0xf2324df8,
			0x1e1be2f8, 0xa70cf60a, 0x6f1853a8, 0x49fc8d66, 0x9bbc3c05, 0x72b8890c, 0xf9d867e1, 0xc571c5ec,
			0xf78f5b1f, 0x5b5f8b3b, 0x83e773b8, 0x47fe8fc4, 0xa57c54f5, 0x4095c4f7, 0x09f9c2a6, 0x11c9938f,
			0x71a9922e, 0x4e6979df, 0x3ae135a3, 0x2c66b578, 0x3297d074, 0x695a1702, 0xb1164880, 0x666a635c,
			0x3e6eb7c9, 0xe76996e9, 0x8a683ccc, 0x87078ce4, 0xc29a3a47, 0xd8671200, 0xc7a35031, 0xc4cd84a8,
			0xa4491324, 0x589fab28, 0x5f8f4a57, 0x70e9d9a3, 0x67c19351, 0xd5cade3f, 0x8fba8df4, 0x83e9ecd3,
			0x27e91b6b, 0x984bbb87, 0x508126e2, 0xafaeab79, 0x0d848aad, 0x96151513, 0x93dab45f, 0xcf825544,
			0x12569420, 0x23752223, 0x0bd91e0c, 0x73b26401, 0x48e3daec, 0x6281cb02, 0x21d0898d, 0x6f50fa40,
			0x23084f66, 0x41b79a15, 0xd9590d1c, 0x0f44efd8, 0x6a0df491, 0xb7f7eb52, 0xa0f84187, 0x24d9e24d,
			0x7c492424, 0x8a0196b6, 0x84f4ceaf, 0x1c52e595, 0xef6645fe, 0x95656184, 0x5f9afd8b, 0x73525056,
			0x20a9d095, 0x575cf650, 0xc6614e71, 0x24bf1a15, 0x275bb4d4, 0xd87c2d84, 0x940627fb, 0x2d139314,
			0xd6eb5e2f, 0xa5402fcc, 0xaaab2b56, 0x71445835, 0xa6041fb5, 0xfbfde81d, 0x82faf3d3, 0x00da3fc4,
			0xafbccbc6, 0xd298dede, 0xf6da47b2, 0x98fcb51f, 0x11d30189, 0x04327fa8, 0xe6e09958, 0x33e8460d,
			0x80c99104, 0x9e2f144b, 0xd96fb8f5, 0x52eac635, 0x9d0e1b75, 0xe2d50142, 0x1cc6cf1f, 0xc679ac57,
			0xe535be7f, 0xad296bcc, 0x6f88c22e, 0xc06618f1, 0x5f7eef17, 0x865e0dc0, 0xa833c413, 0xa18d6b81,
			0x48203e3d, 0xe78e30f3, 0x051d7363, 0xe35ee2b9, 0x9bcc441a, 0xfb8cb14c, 0xdd190af3, 0x533ab4fa,
			0x0a4dfcba, 0x03439fa8, 0xdeaf2638, 0xf23d7dfb, 0xdc187cbf, 0x474a7cf1, 0x077b105f, 0x4e8e384a,
			0xeb73083d, 0x1b7f5612, 0x486c5b7b, 0xd6af029d, 0x1960101f, 0xc1ecc28f, 0x1cc96539, 0xfc3f0b5e,
			0xf62ebc10, 0xc9221489, 0xd71d4c25, 0x65d5c18f, 0x48e834b0, 0x97ddb6a5, 0xba73d0d6, 0xe46c038a,
			0xa0f63899, 0xedb0c1a1, 0x9da81a3f, 0xfe624666, 0x423bea19, 0xa7bf859d, 0xca5b7884, 0x4010a887,
			0xda6ea850, 0x23e15e39, 0x880f8835, 0x2b44b89c, 0x3eb08168, 0x70af8acb, 0x83f76fe8, 0xba151f40,
			0xeb438a0d, 0xb014be02, 0xcba87210, 0x7020b2f4, 0xae8aac00, 0xfe374f1c, 0x94b15628, 0x5f351469,
			0xa624e560, 0xe9a41a2d, 0xd2292158, 0xf56c7a73, 0x0ef14c66, 0x2344524a, 0x56741e86, 0x32bec1e5,
			0x1ca47653, 0x548134fa, 0x4069523a, 0xf2dfe07e, 0x0628886e, 0x13fb914e, 0xd21ca990, 0x5ab2b243,
			0xee494bdf, 0x4d43a483, 0xca5f1cf4, 0x3146d5d0, 0x2faa14b9, 0x6738db29, 0x14a530fd, 0xb819a2dd,
			0xfff5211d, 0x91b355ea, 0xce5d1fad, 0x6d32d4a4, 0x922287ff, 0x29889a8e, 0x32df8e24, 0xa3d9391d,
			0x44df3e95, 0x0173db14, 0x42d7efbb, 0xf8400adb, 0x27608408, 0x220d82cd, 0x7bc9d1d7, 0x1c026d98,
			0x453a7cea, 0x42a30cf0, 0xe9bd9bf2, 0xb0642a91, 0x01dbfb9e, 0xa8942afa, 0x19768e12, 0x00000000,
		},
	},
	{
		{
			0xfb5ed93c, 0x24aeace3, 0xb31cf763, 0x9ed6267e, 0x7d1c6f55, 0xf7726aae, 0x8f56e47b, 0xdc14a176,
			0x7b485772, 0xca8df435, 0x9acdb9e3, 0x91874db9, 0xcbcae950, 0xce0a0d09, 0xde11dd18, 0xad8aa3af,
			0x49194a56, 0x6701267d, 0xfc830fed, 0x59e20c28, 0x1040e875, 0xa9c71f50, 0x6d4abc2a, 0x5a9e381e,
			0x2e82f866, 0x971e213b, 0x73249a8c, 0xa80cb983, 0xa0185804, 0x0615dae3, 0x65bd451f, 0x2a2bb2cc,
			0xaa712bfb, 0xd53d7011, 0x36cf236f, 0xd2dba3c8, 0xd5c56d9e, 0x1a613aa0, 0x8b48e93b, 0x3d2b0a7a,
			0xde5b04ff, 0xf1390b30, 0xd2dcca0c, 0x46515210, 0x88230e8a, 0xf7620d58, 0xf1fc344c, 0x19b2ce9a,
			0x7d451ff7, 0xccef3f71, 0x9984b61b, 0x654c95dd, 0x3565395a, 0x30b850ef, 0xbab60080, 0x786d7d35,
			0xe5a6cfd3, 0x7bd475c4, 0xc6b1c7c6, 0xeb07fc8b, 0x7e386da6, 0x021fc927, 0x462a35ec, 0x281084b1,
			0xc0cbf780, 0x17dcf134, 0xb1034274, 0x0a81da8a, 0x1cfbe7a2, 0xa556a86a, 0xda2454d2, 0xe39f8f4a,
			0x3b4a7ead, 0x768af176, 0x86318d04, 0xa385b439, 0xd56db270, 0x7f88be95, 0x64fa1468, 0x8b9c8a15,
			0xcb192e08, 0x623d5c45, 0x2d15ee26, 0xe6290fa3, 0xc4f0df07, 0x2aa91d92, 0x6544ba26, 0x66f89fab,
			0xe9273f88, 0xf23d4cf7, 0x60e338a0, 0xe40c34c3, 0xec96dcbe, 0x4df74933, 0x7fad681d, 0xf2fa650d,
			0xd8e1e17c, 0xfb502648, 0x353b5692, 0x23d52a4b, 0xfd692752, 0xdbdbfd37, 0xaabaeb97, 0x08e7d974,
			0xdb8183e1, 0x22b93f35, 0x12750e29, 0xf0e64501, 0x11e957c6, 0x61dd6bd9, 0x45841c44, 0xc4b8cf27,
			0xe7ee7495, 0xd0df3880, 0xd8c261b9, 0xd5dbd74a, 0xa808bebe, 0xd32392c2, 0xe67d88ef, 0x5aa5467b,
			0xab588e11, 0x3bce945d, 0xe920d512, 0x157672bc, 0x0911ae49, 0x4705971a, 0x8b522cdb, 0x500d0539,
			0x670435eb, 0x1c9b8846, 0x994e0d6b, 0xffcd6bd8, 0x49daeb56, 0x68a2e5c2, 0x73174dbf, 0xf8483c1b,
			0xa0d43ba9, 0x02783686, 0x781860ee, 0xfd26de01, 0xba5e15fd, 0x8aea67f0, 0x4fcf3fb0, 0x2ee34169,
			0x3b839b11, 0xaecc2635, 0xded40685, 0xfdcba341, 0x099aa0a6, 0xa6aefec5, 0xe5f4b65b, 0xc230162f,
			0x646a116e, 0x786e628c, 0x0edebee4, 0x57f82259, 0x6167d52f, 0x20005031, 0x5692598e, 0x40ccd5d3,
			0x903f241e, 0xfe420bc4, 0x6c20195f, 0xde3d7da1, 0xb3254103, 0xcac119e6, 0x4e878265, 0x9f4ace6b,
			0xebd86d4b, 0xd1410cf3, 0xf56ece50, 0x8a38d27e, 0x4bb17686, 0x28d37a66, 0x5c739c83, 0x2490f3fc,
			0xf7fa1a84, 0x53de233c, 0x072a213a, 0xfd9196de, 0xd16d4f2a, 0x55dc5fdc, 0x69a93e21, 0xdcc78a11,
			0x4cbed208, 0x46bbd5fd, 0x42829092, 0x7e15b145, 0x92414973, 0x5f2d9755, 0x8a3bead5, 0xce026861,
			0x1441db60, 0x70f52a02, 0xaed779d9, 0xe351a8db, 0x42f0cb5d, 0x1c55d69b, 0x88ae499a, 0x036f265e,
			0x7df06ce2, 0xbc700dc8, 0xc9bab2a9, 0xa3a1ad94, 0x01d91d44, 0x1e4b72cb, 0x4ab03571, 0x1630fa7b,
			0x597ffc06, 0x6327bc93, 0x060acf77, 0x79fb7f29, 0x126f2200, 0x8f1674b6, 0xd1b62650, 0xe55b96f9,
			0xc9af7d49, 0xd9d21687, 0x06a02e8d, 0x9e887389, 0x436fe4f5, 0xb2275271, 0xe750a1f9, 0x5cea0e41,
			0x086a0684, 0xaec8c8a3, 0xf76b3473, 0x4c0a0770, 0x8a8d507d, 0x6dd862ac, 0x41069041, 0x39e99714,
			0x6c9e3e82, 0x297eb675, 0x04e72908, 0x0355ed74, 0x6c99efde, 0xa33d798c, 0xc9c8b8b4, 0xcdeef736,
			0x94fcb70b, 0xa5389706, 0xdc83a533, 0xd4987388, 0x37b6e6eb, 0xea5bb055, 0x2ed38909, 0x4f63a00c,
			0xeca2ce40, 0xd9cfa44c, 0xb9277c90, 0xd2e5065d, 0xe6d941ec, 0x5e0e3302, 0x91032ba7, 0xb07b819a,
			0x11a37c50, 0x1d13214a, 0x2ab721ac, 0xbe6062b5, 0x5ecde262, 0x3c33a3ed, 0x993f0d7b, 0x4fdfd03d,
			0xb21831a3, 0x067481e1, 0x2ae2944d, 0x87f144e3, 0x5284d1d3, 0xb19c40db, 0x31775fd1, 0x563efd70,
			0x056398b1, 0x8b0107dd, 0xf4bcc414, 0x1fccb615, 0xb0871bac, 0xfb6efbe8, 0x4e612b4d, 0xa1038a19,
			0x47dd11ca, 0x6f61d99d, 0x2bb13a89, 0x85f19d2e, 0x80dd373c, 0x961ae889, 0xd04a8d95, 0x339639b4,
			0x281ff993, 0x629fa797, 0x64ffc929, 0xb2a2d0a0, 0x7c182711, 0xf430e2e1, 0x94ce6293, 0x1a4c1c19,
			0x9e5bc1ca, 0xe87a4b45, 0xeee5a832, 0x940ba2f4, 0xe4f1651c, 0x546700e2, 0xe6980c8d, 0xb23d840f,
			0xeefa9a65, 0x999b38f5, 0x55f35e33, 0x65809d78, 0x4e58889d, 0xcd50fcc8, 0xee520c22, 0x7e2da45c,
			0x8a8c12fe, 0x9e57509a, 0x6843824c, 0x793357de, 0x4cd82060, 0xaee26a4c, 0x72f96e66, 0xbc577fe9,
			0x0eb755f4, 0xc1b8028b, 0xeddd197b, 0x1d1ec5c0, 0x9c52ab7f, 0x1d04756b, 0x0a3662e8, 0x882dfb45,
			0xc93379c6, 0x3cb461fc, 0x2ba42199, 0x3dd0c1e7, 0x97995608, 0xb00e5ec2, 0x237d5a83, 0x091fe800,
			0x25a72da9, 0xf7940ae5, 0xbeed6a83, 0x75ff8888, 0x380936e4, 0x4fafea51, 0xee487f20, 0x3bf5e5c7,
			0xcff44ad0, 0x3c56841c, 0xe8f9a1a4, 0x533ce2e0, 0xf5aa2ae2, 0x9f1b461d, 0x49992915, 0x92d16069,
			0xeb44c991, 0x843efcba, 0x171304c5, 0x877c5572, 0x104d51b0, 0x7f7410c8, 0x84ec52e5, 0x21e0a2d8,
			0x2058b0ce, 0x4735af8a, 0x9d008b91, 0xff06ab7f, 0x345033fa, 0x637a05fd, 0xa88896d3, 0x54b7d394,
			0x832788ab, 0x85087544, 0xfb1aa7d3, 0x7dcdb557, 0x293ecbee, 0xdca41bef, 0xa15a2b62, 0x61c2d7df,
			0xefc14eaf, 0xdfd1cca1, 0xb88f208a, 0xaa4784f7, 0xa8c87bb3, 0x3168aa03, 0x02a3ca6e, 0xfe8ba0d5,
			0xc287cb78, 0x128201fa, 0xe6ff0f1e, 0xdfb2b1cb, 0x478a12a1, 0xdace6554, 0xe6f790a7, 0x714928f8,
			0xdec730e2, 0xfb3f4259, 0xe63e0ae1, 0x59a57a8e, 0x470c59dc, 0xac8e5484, 0xf26a4c8e, 0x70af30e1,
			0x66e9ddf6, 0xad7f2b05, 0x786bea42, 0x7c89b72b, 0x804a2063, 0x377327d3, 0xf8ea01e5, 0x08875c90,
			0x821d4c27, 0x3b98d07a, 0x74b2a553, 0x705ec0f1, 0x213ce687, 0x36d0adb3, 0xa13d7b9b, 0x02a7b16f,
			0x45a34c65, 0x003c3fe8, 0x16f898ea, 0x4657ca4d, 0x1609aa64, 0xd8ef8216, 0x8421d834, 0x1da3d47b,
			0x0a8665a0, 0xdb251df5, 0x5b933b59, 0xa6ae48ff, 0x7d71bf4a, 0x07f50b53, 0x47c56ba2, 0x4e502633,
			0xe005e28a, 0x2b00be3e, 0xbd6d7df2, 0x135161bf, 0x5f70b86b, 0x8d43e3fe, 0x0ac98a43, 0x9f2bcdd9,
			0x19550960, 0x8d54492a, 0x54fe3874, 0x8a2102aa, 0x7fc5d49a, 0xf4d31eb4, 0xba7cd7a2, 0x424a2262,
			0x582d4312, 0x3c11e191, 0x668f24d5, 0x1441e5ca, 0xd5301ce1, 0xe9526f61, 0x4d3d2c1a, 0x12fb49a7,
			0xea7fcd9d, 0x466fc3ed, 0x522a5b4e, 0x1a2dd3af, 0x4b74175e, 0xfc526a96, 0x15e8a2b5, 0xbc96e966,
			0xb5f8f89f, 0x69f7f29f, 0x5f427ca4, 0x3e1472b4, 0x67122fba, 0x879a61e6, 0x75f7c639, 0x2963b14b,
			0x06b76e2f, 0x9f490f12, 0x200d64b1, 0xc588c2e7, 0xbbc2ab90, 0x42313b04, 0x545fa54e, 0x7d513f3f,
			0x36afdc9f, 0xfdfd608a, 0x322b7b6a, 0x5f3a302d, 0x95719f3a, 0x807c5eb4, 0xce135b80, 0xc166b126,
			0x830369e0, 0x2abe0703, 0xd46506a6, 0xefcaa1ca, 0x016bf266, 0xb98f6767, 0x7d6b994b, 0x0253cd75,
			0xda111d51, 0xcf8af5e3, 0xb3069ba2, 0x12af94fe, 0xc8a09153, 0xe70044ca, 0x7fedac47, 0x2d404624,
			0x1615f9be, 0xbec79606, 0xb81bb147, 0x6e6c41fb, 0x8d4487dd, 0x79d5ef97, 0x2311a744, 0xc273cb28,
			0xb6cd35ce, 0x538988ca, 0x3e76972a, 0x4c38f529, 0x327e441c, 0x20bc4e28, 0x45ca0dc9, 0x88969a1f,
			0x4c9b2084, 0x4ea4199a, 0x96df0a43, 0x1e095d91, 0x5be4fd48, 0x09f99582, 0x6a0b9098, 0x7aed07b6,
			0xe62f026c, 0xed1c41be, 0x04e97d43, 0x62191b2d, 0x65e00da4, 0x2f2b3cb3, 0xc913a724, 0xad935514,
			0x0036d411, 0xc81f8ed1, 0x83ed7a13, 0xe337af60, 0xc737c11e, 0x7d492cb1, 0x8c594291, 0x3e2abf51,
			0xbc66f292, 0xf658c05d, 0x95e8cc7c, 0x15f70e22, 0xb0ee2974, 0xa0acc230, 0x15cbbd6c, 0x3c38348b,
			0x502e8c8f, 0x67de5ed3, 0x7543582d, 0x4bcadd5b, 0x715336d9, 0xa36ac23f, 0x1b2b7cc4, 0x736bff86,
			0x538df946, 0xc9b7be2e, 0xd862c794, 0xdf44499b, 0x95331adb, 0x580361c3, 0x77652f2f, 0x61a5c1d8,
			0x3c6ab141, 0x9735c9a5, 0x8ff0ec4e, 0xd271cf8a, 0x487c5266, 0x70491d1f, 0x5972bd6e, 0x3b8e1289,
			0x5c34d803, 0x3175ea9c, 0x6c20b343, 0xcb84e8f8, 0x80c9914b, 0xa04f9edc, 0xce62b90a, 0x899af509,
			0x12e8c161, 0x5de05800, 0xa29e1a61, 0x12a80aee, 0xb805296f, 0x8a771b38, 0x7a378591, 0x068d2bf9,
			0xd2018b7d, 0x8b54b2af, 0x42556499, 0x2f594154, 0xd5a72eb8, 0x25e0e278, 0xf112b5dc, 0x361640ef,
			0xc4a86c2a, 0x3b8e9d05, 0x86e5b8af, 0x6c1a846d, 0x0efd25b0, 0x7cf852c4, 0x427ea0d2, 0x52c5a086,
			0xe3a0c238, 0xa3ea1cea, 0x23e84b95, 0x73cf125d, 0x26f24f9d, 0x468456ea, 0x90ca0e53, 0x82071f37,
			0x3df790b6, 0xe6f3a169, 0x17bf2597, 0xc2d33031, 0x6722de24, 0xb00e39fa, 0x0067d1e1, 0x00000001,
		},
		{
			0x136a8ef9, 0x5d4773c2, 0xac44b26b, 0x9c4b377f, 0xadddc9c6, 0xa6789641, 0x5dc6372d, 0x722c5a36,
			0x4f17d287, 0xf402ee0a, 0x4976dea4, 0x18a75400, 0x08e88680, 0xa6bfda21, 0xca70471e, 0xdc80b9e5,
			0xbb56e65b, 0x1b3ca463, 0xea6ca7a1, 0xc666b00a, 0xe23b3696, 0x370852ca, 0xc4d479b0, 0x192fb6de,
			0xf3265603, 0xb3660856, 0xde4e35d7, 0xee4be144, 0x8eee342b, 0xd459dcfa, 0x3eedc8db, 0x180a7eef,
			0xe8f9aefc, 0xb1a8c27e, 0x8ed69a62, 0xe3dbc369, 0x9a0f04fc, 0x132ef93d, 0x0b8a5c83, 0x69ffc16b,
			0xf5f5b781, 0xe9c05c20, 0xccd94529, 0xe5fe56e0, 0x29a9bb52, 0x1b420971, 0x80203624, 0xd0a0932c,
			0xcf3cce4b, 0xe8c9ce36, 0x02e3a0ed, 0x45a30172, 0x4ea2b8df, 0xb0de5217, 0xd7d4a9c5, 0x3a2fa074,
			0x55478abf, 0x1093c62d, 0xad29b81c, 0xf56e1892, 0x04c815f5, 0xc48892b1, 0x4227f234, 0x8459c734,
			0x8eca9761, 0xfbd8f177, 0x15aee3e1, 0x9ceacc2c, 0x47528f65, 0xb44f33ff, 0x69b3f1fc, 0x65354b22,
			0xc536b1ff, 0xf434efb8, 0x27b95f8f, 0x4611bb99, 0x50bd7804, 0x08ce52ac, 0x4b8dfa1a, 0xb846fad5,
			0xc162eabc, 0xa238ce74, 0x0dc0bdf0, 0xb275acb8, 0x18672d20, 0x20ea678b, 0xd1051002, 0xfddf4ed1,
			0x9c947457, 0x7d283a15, 0xb628afc8, 0x4cfa34e9, 0xdd198208, 0x2de532d4, 0xc8720674, 0x4f1c28f6,
			0x710b699f, 0x0ea414ee, 0x30e0500f, 0xe5790ef1, 0xa20d3aaf, 0x07aa10a1, 0x9197bdb2, 0xabbec059,
			0x7c2fa423, 0x891e2bb3, 0xb2fceb9b, 0x59b2790a, 0x10401ed0, 0x839da59c, 0xddd49756, 0x596c7382,
			0xf3101204, 0x569b70e9, 0x957838e2, 0xb864feb6, 0x0d0f6a9a, 0xcc8c7bc8, 0xc9a7edab, 0xcb435ba8,
			0xac9cab6c, 0x9467674d, 0x6cb36407, 0x17169c0c, 0xb04ed0ab, 0x9d16fbd5, 0x48aab84d, 0x4a2ea89c,
			0xa6de46b8, 0xd6a953ed, 0xafdfbf53, 0xa671d7f3, 0x6760e1b6, 0x9023c1ab, 0xac97b3ca, 0x74769772,
			0x9d2e2c64, 0xbffd23a1, 0x0ba1e14d, 0xd070870c, 0x97d6d664, 0x3a75b597, 0x9374ccd2, 0x865561de,
			0x2aee8388, 0xd9bdc23c, 0x8c6f1e09, 0x1bf1dbe1, 0x366ed303, 0xd007a9ba, 0x73c1cb0d, 0x3ab2549b,
			0x04648b0c, 0xab64dd76, 0x42d124f6, 0xb17a9039, 0x432acd42, 0x5e0e745e, 0x27356a77, 0xa86db5fd,
			0x57384ddd, 0x20ca55a6, 0x1419b7ae, 0xf596ab4c, 0x73601ee4, 0x5febbebc, 0x001fd160, 0xfbc1c807,
			0xe92047f7, 0x33990f76, 0x33eede25, 0x3601fd1c, 0xaa4c7d58, 0xed52261b, 0xb2ad7cdb, 0xc64ff5e0,
			0xb8574e8d, 0x14b160ce, 0x0ff56b0e, 0x10203845, 0x61030452, 0x2f92960e, 0x434c76e9, 0x78fa57a4,
			0xce844ebc, 0xf017db0f, 0x72f273f0, 0x30697667, 0x3c4afde8, 0x914f1398, 0x6c859717, 0x80a0ab0e,
			0x6a1034ee, 0x3af46ea0, 0xeb20b193, 0xd5c8ea18, 0x1941a5d8, 0xc929464c, 0xa3b54c5e, 0x25e52ca6,
			0x12c41b83, 0x3247f6b3, 0x5af356af, 0x1e233993, 0x86f01853, 0x59a1d953, 0x02e9bc06, 0xfd34c448,
			0xd01438d6, 0xdc5e9089, 0xcc7f2cd1, 0x78c8319a, 0x6084c23d, 0x869fd898, 0xff1cb773, 0xe266ef64,
			0x833b4951, 0x406ed25f, 0x2ff777e0, 0xa4c1344d, 0xb21e9885, 0x900b9491, 0x20c85504, 0x9ee9a757,
			0x72da91c9, 0xc1620549, 0xf4748db7, 0xd9521a89, 0x9778eae5, 0xb3ca3119, 0xf8d1b256, 0x6ab7ee2e,
			0x065daa6d, 0xd7e954b6, 0x5f718b6c, 0x0407dbbb, 0xe8b1b9be, 0x9b391c9b, 0xe4169452, 0x269ca747,
			0xa774547d, 0x09c41fc8, 0xd6851a0f, 0x23747b13, 0xfe39ff0e, 0x54ebb3d2, 0x5234da9b, 0x8af1aeae,
			0x492e2bff, 0x64dccdc2, 0x84ea8832, 0xc8b813bd, 0xbd617937, 0xfd8e0b20, 0x57110c99, 0x4598dca6,
			0x46756739, 0xdddd9eb2, 0xe0b2a6db, 0x9cba972e, 0xcb22b63d, 0x3cd159ab, 0xa5499046, 0xcd915d63,
			0xd118ecbf, 0x9dadd67b, 0xcfc69da8, 0xdd53829c, 0x59689ad2, 0x96a3f878, 0x2c513492, 0x9c32ff74,
			0x941b2577, 0x03d36645, 0xa198a79d, 0x1a3ead9e, 0x323af2e4, 0x47c84756, 0x1cb02c9a, 0xce72fd1a,
			0x09d80ff8, 0x0ae71926, 0x9ba2d67b, 0xf6bfc001, 0xc860518b, 0x674fda53, 0xe8ef1f10, 0x865259d8,
			0x9f802666, 0x5e2c4805, 0x7f179e6a, 0x861b1318, 0xeb225346, 0x8a60dadf, 0xb86d23e4, 0xab6bed26,
			0x140020da, 0xcbe84465, 0x6592f3dc, 0x236b52f1, 0x9d8f4b1a, 0x47b6102d, 0x43a21000, 0x6408b173,
			0x4fe7a92c, 0x39319ed8, 0x89f01da3, 0xe76fb201, 0xd794d6fb, 0x547a66cc, 0x19d436c6, 0x41f961f1,
			0xd3d1a481, 0xef1ada20, 0xc0b465f2, 0xb151dbb9, 0xa402a6b3, 0x10eaa70d, 0xb00c0df7, 0xf4e7b0d6,
			0xe52633fd, 0xbfa138e0, 0xc95c842b, 0xcc439e2f, 0x4142b55e, 0x2eedbb23, 0x745b8a86, 0x67f9d39e,
			0x1b129de6, 0x0b22843b, 0x4434130d, 0xfd305eec, 0x8373e31f, 0x8c098033, 0x70cf095e, 0xc3d475e1,
			0x0e266788, 0xf12d9f4e, 0x42a3535d, 0x775d7dd1, 0x1bca6588, 0xd53a6ab1, 0x35fdc420, 0x64f9d960,
			0x7054a5d3, 0xc72e4910, 0x8b8e1cd7, 0xd7b199f6, 0xfaaa8c0b, 0xbd764bac, 0xa2c3fd8b, 0x07a5a2b7,
			0x6677f5c5, 0xd085196e, 0x6009d172, 0x6a37c42d, 0xe2f6fdd3, 0x7c818ad5, 0x654e9b90, 0x51291826,
			0x56e1db76, 0x6c0ca6e3, 0x1f8584be, 0x8d37d420, 0x0d40fd86, 0xcd9bc1cc, 0xfc89ad0c, 0xa1ea9d96,
			0xfc3ede54, 0xe5508989, 0x21a621e3, 0xe56df8bc, 0xbb753ced, 0x4fcf05f5, 0xfb48e110, 0x7a55f423,
			0x81c23dad, 0x3b81d625, 0xf0fca08e, 0xfab4133e, 0x39960e05, 0x210fc2db, 0x725a2bee, 0xfee8152d,
			0x4f21db26, 0x5068a132, 0x535c2cd5, 0xb932235e, 0xf843cb6d, 0xe276bb4d, 0xa44b45fc, 0x900e318f,
			0x1f771419, 0x9a87010b, 0x79ed3c5e, 0xf134b6b8, 0x44c7d145, 0xd6c1d7de, 0x09a500ba, 0xea576b8e,
			0xe5f21f51, 0x69d523ff, 0x063b5a49, 0x2c8cc5a8, 0x2faae8fc, 0x4663fcb9, 0x554a0925, 0xc7633c04,
			0x7b9c77d7, 0x58d12b75, 0x1bbd9cfd, 0xe409d34f, 0x4d8ec473, 0x596df720, 0xc4306ec1, 0x5faabf10,
			0x31db6c08, 0xa1fe4061, 0xe1079fc7, 0x9f340225, 0xc57f13d3, 0xae4a52a0, 0x75f27f46, 0x567cfd7d,
			0xf2188fbd, 0xb15bf92d, 0xdb755748, 0xdd2bb4f8, 0xf5ae819e, 0xdafdc79d, 0x6da73ed4, 0xec82d7e6,
			0x8a3fed50, 0xd013947a, 0xd41d35d1, 0x5b47752a, 0x89ab7ec0, 0xb1afff48, 0x62b5b30d, 0x42f08eca,
			0x00640fa1, 0x5b64e3ce, 0x072f7a0b, 0x61a99e54, 0x5d95a86c, 0x80e68c1b, 0xf1d4a646, 0xb06b1e81,
			0x1e885c59, 0xe2bf1e92, 0x18c9b8fd, 0x01025812, 0xbbe0923c, 0xb084d3de, 0x5498d1a7, 0xa4a5993b,
			0x1c3a1cb7, 0xb49ac923, 0xead2b662, 0x29c3e12d, 0xa38b19a7, 0x0daa9d71, 0x1ed56a89, 0xb76485fe,
			0x50700d5a, 0x8a49d48b, 0x91e43f5e, 0x210dcb0d, 0xc12f6817, 0x6e6eb58b, 0x1ba48bb1, 0xc88f86bc,
			0x150cc54e, 0xcb6483cc, 0xf2050783, 0x56ca4cb1, 0xffb33d5e, 0xe55e5930, 0xbce9b148, 0x1f507d41,
			0xe8587bd3, 0x74f31084, 0x9dd9f58b, 0xb0814919, 0x29a04d35, 0x2df84c23, 0xa6e65704, 0x6d3a6fbf,
			0x41e54354, 0xecf277cb, 0xcf19fd62, 0xe77ad7a9, 0x3960f188, 0x96d52114, 0x7ddd1cd7, 0x27dfbcfe,
			0xbeff3727, 0x3aad1da4, 0x24df5ba5, 0xf26f957b, 0x188b2d1c, 0x5087c587, 0x8314adf8, 0xbc7e0f6b,
			0x0c0db166, 0x647281c8, 0x9e570b10, 0x2878f56c, 0xbde805c6, 0xd95f8b67, 0xe55cfa1d, 0x8763f5bd,
			0xfaa1312a, 0xa3c775cc, 0xa31f9bb5, 0xf17d2780, 0xafde9303, 0x3a17a182, 0x95db94c7, 0x7e81eaf6,
			0x607e4794, 0x90ede099, 0x4fc52523, 0xecb1645e, 0x0eae783c, 0x1c5601ce, 0x2e2d2b4f, 0xfaa4be38,
			0x79266c60, 0xafb99016, 0xb89ee01c, 0xcb684c1d, 0x1796f0a0, 0x0e9284f2, 0x8f3999bf, 0xfb2601ee,
			0xe4f14cea, 0x690716f0, 0x6692b4c0, 0x11764738, 0x54866824, 0x0f0bce3a, 0x4b89baf1, 0x9ee32742,
			0xad66c6fa, 0x6418347f, 0xd4165436, 0xc8f24d8b, 0xfe9d8752, 0x76554d5b, 0x8c3b0d1d, 0xa05b6196,
			0x554c40b1, 0xaef674d6, 0x60f23d0d, 0x45687f7f, 0x7acd0d48, 0x202a543f, 0xabfe12ec, 0x88ec5f52,
			0xfb776699, 0xf27ffcbc, 0x8df2c95b, 0xa01c295b, 0xf9277108, 0x53117244, 0xfbdca78f, 0xd9451247,
			0x94c07305, 0x80c67ef6, 0x1311db72, 0x0362d5f7, 0x8dd46eb0, 0x1d9e29fb, 0x2c01b53c, 0x50784325,
			0x02e3da9f, 0x9d10aec0, 0x70be1cc4, 0x65b6ecb1, 0x047de256, 0xebbd2c34, 0x5802a6e9, 0x5eb2b5e6,
			0xa353b468, 0xa86c50a6, 0x602cb20a, 0x8848ed0f, 0x3afe7253, 0x1b5d3014, 0x7bcd9b61, 0xf86edf83,
			0x548e7936, 0x6ac0d8b1, 0x99f54381, 0x40d89889, 0xa30fad4e, 0x7084af1c, 0x9555ee24, 0xce1c720a,
			0x540fdfd4, 0xa76a5561, 0xfd4d787b, 0x9d260337, 0x96ceec0b, 0x5f1383db, 0x79f74e0b, 0x23601a3f,
			0xb970e2c2, 0xcc82dc67, 0x5c96bfd0, 0xa924213d, 0xcc208b31, 0x6a5cd4aa, 0xf08e854a, 0xe982078c,
			0x26926535, 0x49c3a12d, 0xd694be1c, 0xf37f4c3b, 0x4113ca67, 0x2d13e6c2, 0xa6ae6e33, 0x00000001,
		},
		{
			0x788c81d1, 0xdbd4ca7a, 0xdde90834, 0x9d1759e7, 0x056ea4ca, 0x62e9406b, 0x64889a46, 0x17dbf1b4,
			0xc26ec504, 0xac1b7a99, 0xe4c9fb29, 0x99e3364a, 0xfedbadc6, 0x642e663a, 0x104ebc21, 0xa98a854d,
			0x4c85873e, 0x3fe422fc, 0xc4d62fa8, 0x5989f4f3, 0x9da1d7c0, 0x746b2e39, 0xcaf27cbc, 0x88b43ae2,
			0xf2ef6c63, 0x2df8c61d, 0x5543fd2e, 0xf65e0471, 0xebe5d92b, 0xf9036917, 0xda893bb0, 0xf10cbbc0,
			0x19b5527f, 0x515d41c4, 0xd9cecfcd, 0x243503dc, 0x72a663c5, 0x5031852d, 0xb5c4b13c, 0xabe36dc5,
			0xf6d2e3ea, 0xdc18f8db, 0x027f259f, 0xb0eb4ef4, 0x72184072, 0xa69b4727, 0x9c22d9f1, 0xfd92f291,
			0x1e25e4fa, 0x86a1bfa3, 0xe5cc7275, 0x1664fc12, 0x08543c86, 0x1db3229b, 0x6b61a226, 0x20fd49d3,
			0x7672071a, 0x6da17616, 0xac71b14d, 0xa3636f71, 0x772ed0e1, 0x10cb4619, 0x0ec78e6f, 0x084f5c6b,
			0x9f529f64, 0xd7463d25, 0x98868e7a, 0xc9081d00, 0x9a60dfa4, 0x30d84f1e, 0x4208515d, 0xa450538f,
			0xa19029e8, 0xf4d40768, 0x2ef036a4, 0x0153340c, 0x58e6f5f8, 0xe8ea7ecf, 0xb201aecb, 0x13a880a8,
			0x56ad3e91, 0x61994d8c, 0xd09d6c1a, 0xf0e06181, 0x817d1e72, 0x98e1f101, 0x71f744f7, 0xc8844750,
			0xfb5cf8c4, 0x00c0bc54, 0xbb50daee, 0x1a6ea2da, 0x7e89cb76, 0xdd4d9b18, 0x87e963aa, 0x2b74d085,
			0x814215ba, 0x373bdb02, 0x4144a4f8, 0x9f019612, 0x94fa132a, 0xd0aee892, 0x88db7569, 0x1bb31f0c,
			0xde101a08, 0x2a8d94b4, 0xd2339c3c, 0x738ddd6f, 0xd4ef46b6, 0x552b462a, 0xaf6abcfd, 0x783982c8,
			0xf3c57dc9, 0x2828bf19, 0xb17fef7e, 0xec376b84, 0x550ba302, 0xf3d8a6ed, 0x5176231b, 0x5465b264,
			0x57ff39f8, 0x029a155f, 0x62fe315b, 0xf5de6c94, 0x0804340c, 0x9e0b9b4c, 0x20b2110d, 0x51e328e8,
			0x6d20ffcd, 0x360508d1, 0x528bcc26, 0x9ec47621, 0x4b7e97eb, 0xdd175489, 0xa21de8cf, 0xa20093b6,
			0x5e4ac8d5, 0xa8986559, 0xa9ac2b25, 0x2a9208ac, 0xdaf567ce, 0x7c78ce97, 0xa900d2fa, 0x84b9d496,
			0x7afda1f6, 0xd3d06f20, 0x7cb32030, 0x1eef44bc, 0xc5b06aca, 0x2ab98658, 0xd3cf3e29, 0x8e2d96fd,
			0xd3be061f, 0x45c7b7ce, 0x94986a72, 0x2ca79abe, 0x1f42463b, 0xa3f3cebd, 0x6a0bd591, 0xff821d47,
			0x568bf5fd, 0xf652ff21, 0x3894468b, 0xe57d5c49, 0x2055ffa1, 0x9bdb9822, 0x50ab85e2, 0x4d054f46,
			0xdd39afdd, 0xe79740e6, 0xf5a7aa76, 0x78e4f34d, 0xd582d3d9, 0x3ad56061, 0xf80a00be, 0xc3a88416,
			0x67f3ef7c, 0x349f8827, 0x0e1fafb2, 0xadaf27c1, 0x25f07e4f, 0x36022169, 0xad0253da, 0x07edc80f,
			0x98ed011c, 0xf8a1cc9f, 0xd429783f, 0x8f458029, 0xf9105b72, 0x75d8352b, 0x0aa29604, 0x745972ee,
			0x246c44dd, 0x879bf234, 0x4df684b9, 0xf6046cef, 0x21362b4a, 0x1b2de696, 0x8ea489fa, 0xa5477b49,
			0x343205bb, 0x63f576a5, 0x0a709034, 0x06d80665, 0xa46dd5fc, 0x3c815093, 0xac8e06f3, 0xe452083b,
			0x850ee1cc, 0x5027aaa2, 0xecf69248, 0x534b64f2, 0x10b25310, 0xfb21816b, 0x34355c55, 0xfed6ba9e,
			0x7eb51ffb, 0xe6b80bbc, 0xc238b20d, 0xe79b20f7, 0x63bc9fe3, 0xf513ccef, 0x8610c6c8, 0xc85918a4,
			0xa5a3c32d, 0x684f638f, 0xb82e887e, 0x3af0bba1, 0x335a334d, 0x2dfd594b, 0x62833974, 0x6b818e5f,
			0x31f7fee2, 0x5ca90031, 0x348ec3eb, 0x907704d1, 0xfce53675, 0x0cc382d1, 0x06525ecb, 0xf7f80454,
			0xcda4af51, 0x5d1c41c9, 0x9073b93b, 0xe67f2bdc, 0xa9025ec2, 0xd47ce2c4, 0x46555398, 0x5777d380,
			0xeb314501, 0xb757eb97, 0xb086dd41, 0x69167d17, 0xd38a110d, 0xa26e1a0d, 0x8f6028c4, 0x481c84bd,
			0x3955fbde, 0xe1d5bf32, 0x3e86077b, 0x369644ed, 0xb075a107, 0xf2684055, 0x990eff36, 0x1d3e29fc,
			0x1ddca40b, 0x8109d5e9, 0x7c4f8a38, 0x3c9b327a, 0x33d8f62b, 0xad3d063d, 0x0a7dcab2, 0xd613cb4b,
			0xc9dacbe7, 0xf7c09fb0, 0x809bacaf, 0x0b9c7c3e, 0x6bc658e9, 0xc647ac98, 0xb136b9fa, 0xf28e8e00,
			0x1c32d1a8, 0xbac509d4, 0xc1a6702d, 0x5d71584f, 0x87b29079, 0x3283387d, 0xbd6dcf3b, 0x20854785,
			0xf55df930, 0xab275026, 0x45c520d9, 0x50d73e05, 0xcbd922f8, 0xa4b299b1, 0x1afb92d6, 0xfd66a24d,
			0x026f48b5, 0xa6b361a9, 0xb24a3bac, 0xcd2117b9, 0x66626fc1, 0x36dd8535, 0x3a75b083, 0xf37b0b07,
			0x30d7f8ce, 0x5b0b4c32, 0x0d64ab22, 0x80e5207f, 0x4c7dfe70, 0xf8c3c372, 0xe1d7e410, 0x783abafc,
			0x598b09a8, 0x1e17b45d, 0xc9d85e7d, 0x677c35f3, 0xd76dc3d1, 0xd9c12764, 0x8f0060f6, 0xe3f959de,
			0x17576e20, 0xed45ff86, 0x90780491, 0x9406f856, 0x6cacccaf, 0x27e0b190, 0xd0adb9cf, 0x67cfc5fc,
			0x7c66c3ef, 0xb8d27b12, 0xe1acce38, 0x702d05a5, 0x804de46d, 0xaeb7c52f, 0xde961590, 0xc40fe6f0,
			0xcd26c240, 0x4b819f7e, 0xf0e7a4b6, 0x75907d2b, 0x32ff8671, 0x2b2a6774, 0x00d36c90, 0xaee26e47,
			0x38195c87, 0x51a51eec, 0x6c19d241, 0x4bcf0d7c, 0x519dc353, 0xaa4f06ea, 0x61318e26, 0x6ef0230b,
			0x077f1c93, 0xfa351335, 0xe4f48647, 0x73e1d7b2, 0xd5c298fd, 0x4b0947fd, 0x286a2cb0, 0x4fa38b6f,
			0xef55cedd, 0x48c4ff2f, 0xb4d2803c, 0x7c99d478, 0x239c1a3a, 0x480605e4, 0xf72b98d7, 0x309aab20,
			0x9ddbebe1, 0xf4c0b0b2, 0xc85853e4, 0x87ac4b7f, 0xbe99f3fb, 0xbc69c59c, 0x33662ffa, 0x96ab094d,
			0xf8bca7f2, 0x96b4ffb2, 0x3ad90b8d, 0x61b62bef, 0x1278aada, 0xbb31c924, 0x1e0928c7, 0x7df04fb9,
			0xa04f91c6, 0xc1d90eb0, 0x09f9570f, 0x5aaae85c, 0xeb0484fd, 0x8c5b71e2, 0x4d8eb35e, 0x2e2841f1,
			0x061a1cde, 0xfe40239a, 0x1b7f63f7, 0xc966f5a0, 0x5a89a22a, 0x3bbb7ce2, 0x2f0da4f4, 0xab1a732f,
			0xf03a0498, 0xfca3cde5, 0xb64321e3, 0x44c18d61, 0xf586b16c, 0x09253b49, 0xac80dbda, 0x0d69637e,
			0x754b02b6, 0x54694b59, 0xb39872a0, 0xcb5ace93, 0x0588b6d6, 0x88b44576, 0x8a75141d, 0xfb748b79,
			0xd917b800, 0xf1d53e5b, 0xb96a1517, 0xa026293b, 0x1ec1f5b6, 0x9a4fba63, 0x06ebb8fc, 0x158e0057,
			0x0f871360, 0xf3c66799, 0xc678f389, 0xdc6e5be8, 0x649a36d3, 0x4c2960a9, 0x0a1b45d9, 0x1a4bc54c,
			0x05a73d1f, 0x1cc86856, 0x7d0790cb, 0xfcb87ea8, 0xd908f7b3, 0xd7b7c40b, 0xaa066c60, 0x4437bb54,
			0x1b0ff943, 0x34cd783d, 0x6e372b00, 0x4f168b5e, 0x8fb14624, 0x652af372, 0xc6c24502, 0x41afb665,
			0x7752ae39, 0x0507a6ee, 0x90ef8582, 0x7f56ea41, 0x889e154b, 0x9004af3b, 0x8b4c6539, 0xdeaf3c49,
			0xe4a46422, 0x7e2edb9d, 0x09f471e2, 0x0870137d, 0xdd5f7466, 0x53ff8541, 0x6b81a105, 0x8e175011,
			0x940af8e8, 0x1cb4b04c, 0x2f0fcc8a, 0x48734f5c, 0xd827b78e, 0xb9751f20, 0xcc95b7e1, 0x5bd03a5a,
			0x24370128, 0x189b1876, 0xaa45d184, 0xa83f1106, 0xbb3c521f, 0x5e635b2a, 0x62d2a513, 0x946014a5,
			0xdf4c6113, 0x7c775031, 0x4fe9483a, 0x9df2cc90, 0xb0d6f67b, 0x68887445, 0xb2a7b140, 0x293154b3,
			0xeeb45e57, 0xcde845f1, 0x66bbd64f, 0xe7610d39, 0x776232c0, 0x4b09268a, 0xfbc97689, 0x6d025eb8,
			0x215d11dd, 0x77afbef4, 0x3a1841d8, 0xf3fdcf3e, 0xdab7c492, 0xd0544d47, 0x5b1c8ec2, 0x6be5d3d2,
			0x4a175d0f, 0x6895221e, 0x0cd57502, 0x20ae0dfa, 0x828a82f6, 0xd218f60b, 0xbc5b5375, 0x9e8a5bac,
			0xeb42ec3b, 0x2e17507d, 0xec17846d, 0x6b51cd8f, 0x646bd604, 0x3e0225f1, 0x11a8e938, 0xc4213b34,
			0xd56d4088, 0xfa80b26e, 0x58af7b8f, 0x3ed15f92, 0x102e60ee, 0x156defa7, 0xfd35ed27, 0x392dd9eb,
			0x6538e5ca, 0x8a57a814, 0xa103128f, 0x721e915a, 0xbd88bc4d, 0x8acffa48, 0x18ef735c, 0xc156f501,
			0x02c4b714, 0x92127a2c, 0x1fe69cf4, 0x2b0adcca, 0x96eafb50, 0xf4edbc1e, 0xeaad0fdb, 0x4e9f6edf,
			0xe19308b5, 0x112def32, 0x8a6ff31a, 0x544f37ed, 0x2113b026, 0x7abe49bc, 0x43c1a826, 0xc7a67901,
			0xc8c4a92d, 0xce4317bc, 0x0bf5f672, 0x077bd9aa, 0xb24e834a, 0x85e9432b, 0x89174330, 0xa6d7e483,
			0xd7c9336a, 0xbaca48e1, 0x874ed7a5, 0x67e05027, 0x5077a10f, 0x79919696, 0xbdea5c8b, 0xc64a7826,
			0x88a42ea1, 0x25ca7edb, 0x878ea66a, 0x54e27ef7, 0x4f2f3ae3, 0xe44ac731, 0xc8db9b35, 0x01e469a4,
			0x9cb1d99b, 0xc269e395, 0x23d08a8a, 0xa44fde72, 0x37f17315, 0xf7cf8849, 0x603da194, 0xa47262ab,
			0x82a5f8e2, 0x91a5d64a, 0x709f745a, 0x150a0ef3, 0xe109aba6, 0x96e5cbbd, 0x12fafd6a, 0xff87badb,
			0xd7777e5f, 0x638cc9b3, 0xcfab2da7, 0x8747c46d, 0x440a5146, 0x0684ab9a, 0x1b8f4a93, 0x1f09334b,
			0xf467aa08, 0x4c7fe588, 0x0a86627f, 0x2791bc02, 0x00b41678, 0x8cade634, 0x8063c6e0, 0xe97e4336,
			0xe983f659, 0x9d74a817, 0x6bd811d9, 0x81a67c1b, 0x32e0eb8b, 0x62bf92d6, 0xd9232a0d, 0x73b7babf,
			0x92eea7d7, 0x1a0671a9, 0xeef454f5, 0x901576fe, 0x1a4129a2, 0xc10fafde, 0x555fcd79, 0x00000001,
		},
		{
			0xa0c33966, 0x87c4396b, 0xa8a4d463, 0x3dc99c67, 0xfe824eb5, 0x9c2ef6b0, 0x043e2e57, 0x48d10f92,
			0x3d31ef44, 0x983a6071, 0xdaf14a40, 0x543a8c7c, 0xc2714cd1, 0x3e0f810f, 0xb17b2b33, 0x6ba6a7c1,
			0x5a63c748, 0xf37fc06d, 0xa276cf72, 0x3a28c91c, 0xa85c3042, 0x5979c8df, 0x28d1464f, 0x9bd4e271,
			0xcaae8498, 0x0cf1b119, 0x9237a6ed, 0x4faacf8b, 0x1a75a0a2, 0x9d1d2f6f, 0x6eb0768c, 0xe2d214c8,
			0xeb967f0e, 0xae81289b, 0xa31a7d56, 0x83d4aae9, 0x84dde9cf, 0xaf600f82, 0x8fe17842, 0x7d52c8d4,
			0xc3bb3eef, 0xcdb74924, 0xd9d2ad9c, 0xffcb385d, 0xbfa5898b, 0xbab900c1, 0x3b83ac88, 0xa38b48ee,
			0x9b1cbb2b, 0xf950e19c, 0xfdc9528f, 0x30d93138, 0x9d0b84ce, 0x3951df44, 0x4d493954, 0x745c5e4b,
			0x7e791910, 0x4d9d6e98, 0xd49ea285, 0x7b961353, 0x7dbbc86d, 0x73a5475f, 0x65f7d89c, 0x864f1655,
			0xff9d1a08, 0xab232370, 0xdf4e46d5, 0x47cca27d, 0x40a6271f, 0x6f99220d, 0x7962e424, 0x63480513,
			0x48995eb3, 0x9bb6977b, 0x66b72ee5, 0xab29a768, 0x1760f3bf, 0xbd74a960, 0xb9b695d1, 0x48e41b74,
			0xd2826f70, 0xcb6f660d, 0xb5857c17, 0xe9aabeaa, 0xc4675618, 0x9bb3eecb, 0x5e02467a, 0x2fbe3c44,
			0x8c73d5b6, 0x089d36de, 0xe02c41e2, 0xd5b54bcb, 0xa7c1f271, 0x3413b6e2, 0xccec84ae, 0xe0952aef,
			0xc89d3c3e, 0x3b5c90d8, 0xe73facb0, 0xe232f4a5, 0xccf18933, 0xce0909e5, 0xeba119d8, 0x7052cc9d,
			0x88feb90e, 0x7db61303, 0xbbea6528, 0x5d257dba, 0x99cf0eaf, 0x602cf284, 0xb7184b7c, 0x1219a31e,
			0xc1009481, 0x38c0de84, 0x14c0e4eb, 0xff3e2cb8, 0xf630dc39, 0x1587fbbd, 0xb0518cfc, 0xc0bfd8f1,
			0x71806d6c, 0x0e429613, 0xa76740e4, 0xf40d2bdc, 0x8b03d485, 0xb811e5cd, 0x9944a68f, 0xa5c9d8e9,
			0x951ff3a7, 0x7165df50, 0x26013cb1, 0xfc5a03ce, 0xef1abe8c, 0x27cc0cd6, 0xf25e96c6, 0x1f7ecdd3,
			0x5a2ad2c5, 0xaa019446, 0xc8ba94c0, 0x0f7c1a21, 0x2004e750, 0x7caf8eb4, 0xd9464b45, 0xacf3ca48,
			0xa2f9623c, 0xb14c75b8, 0x1f8ab757, 0x042a84b9, 0xf51bf1c0, 0x13f54f7d, 0x5e1ce45b, 0x462e3898,
			0xc04bf9ed, 0xaa31cb6a, 0xc2352a2e, 0x999ce56b, 0x1134a135, 0x31609980, 0x5edeca11, 0x8b0163b5,
			0x3c0f37ae, 0x85f8f645, 0x91c1d89c, 0x6e26b02b, 0xcb6e4014, 0xf5011968, 0x2c0b359b, 0x01ef3c3e,
			0xa3aa6b0c, 0xaa4ac71b, 0xdf4fcd50, 0xe743a9c7, 0x0312c550, 0xb7da2faf, 0x729d566e, 0xa842c620,
			0xb29e5a34, 0x046a6fa6, 0xd5133a82, 0x42de9ed1, 0xc4fd4d81, 0x34c529e4, 0x1555aa36, 0xb6cc9af8,
			0x9068c82c, 0xe79f9a6f, 0xdee6f4b3, 0x264ecc90, 0x0eb2ea5f, 0x845b976d, 0x00fbeeab, 0xc631a539,
			0x714f895c, 0x56783df6, 0x2c40be31, 0xfb2f42f4, 0x4e14c5cd, 0x9f1f42f3, 0x5ee5aa2b, 0x2d2549b0,
			0x2afde7ea, 0x9e1e1d7b, 0xbb61c311, 0xc7759817, 0x9494acd5, 0x99649532, 0x097a25a4, 0xd035aad8,
			0xceffd640, 0xa811afbb, 0x421a24e4, 0x63b9bd69, 0x6d83a4fd, 0x4141a682, 0x874b5991, 0x9cf903b7,
			0xb277a0db, 0xae4c5647, 0x2126465e, 0x2706c000, 0x28a1387c, 0xec2c800a, 0x43471ee4, 0xd77ba87a,
			0x0fcb927d, 0x2b6bc76c, 0x4314deb6, 0x43f54334, 0x551dd31a, 0x6742be43, 0x75379207, 0x53512407,
			0x52b67c08, 0x0db571b5, 0x6e829a6e, 0x272ec425, 0x927ac323, 0x3d51958b, 0x63cfe805, 0x5b85fcab,
			0xad3f672b, 0x4677826f, 0xaef6ade3, 0x6193780c, 0x36aac348, 0x12de949e, 0x44ae02e5, 0x26796037,
			0x6a5f393c, 0xb108294e, 0x0dab7cb7, 0x2d59cefa, 0x96c1f89e, 0xaeb374a9, 0x9a24941d, 0xaa80e7fc,
			0x62447270, 0x77496598, 0x1f03e829, 0x58064fa4, 0x9b2a7052, 0xfa6880c4, 0x8caa7d21, 0x339948d2,
			0xdd5dea07, 0x8b8547d7, 0xf080852c, 0x845398e2, 0x80080f70, 0x33834026, 0x0213b023, 0x7e88aa2d,
			0x7ea39009, 0x548fdc91, 0x1903ddb3, 0x0f95542f, 0xb29d5d6a, 0x75283b27, 0x623d910b, 0x47a15d81,
			0xe1719e5a, 0x53c5d95a, 0xbdadce80, 0xabeb2cb5, 0xadf147f3, 0x53ed6105, 0x4f13be53, 0x0d13b99f,
			0x08527cf2, 0x4fd2b44a, 0x5ea3b255, 0xe7b1cbf5, 0x7893b05d, 0x6c423acd, 0x1519de1f, 0x223247ef,
			0x3dc2cfea, 0x3ac06b48, 0x30c952ca, 0xffe9fc03, 0x73f324f6, 0x4479edcc, 0x9bf3d0b3, 0xeb478bb6,
			0x8ea5830d, 0xf8a4924b, 0x5012a316, 0xe8423db3, 0x5a767db5, 0x3ca7bfcf, 0x2c0c0ed8, 0xf6576f0b,
			0x2c6783ce, 0x84c0c18e, 0x8a52af27, 0x1774697f, 0xb3c009c9, 0xf05df9fc, 0x6779ddd6, 0x1143cd46,
			0x4aaf450c, 0x84e88daf, 0x7f213f46, 0x6dc74483, 0x1716656b, 0x25f831a2, 0x1066986a, 0x2037b207,
			0x2dcae303, 0x3da54062, 0x429d8d1f, 0xf198c124, 0xd0d7d06c, 0x83700981, 0xa87f8bf8, 0xe9281bd0,
			0xff6f3d3f, 0x840e41e8, 0x541256e6, 0x451c3918, 0x4e1a9e7a, 0x266602f9, 0x91377bf0, 0x61e69b5b,
			0x19fafb06, 0xb26c6824, 0x300aeb1e, 0x7c6ded04, 0xb1848618, 0x3c8ea702, 0x9e0f3bdc, 0x422c0fa4,
			0x5ed91d88, 0xdafc65e9, 0x1db477b4, 0xf6a12260, 0xb65c3ddd, 0xece26b19, 0xed68e1fe, 0x33c2bf5b,
			0x176b97d6, 0x44ce0206, 0xf687af6c, 0x4f56a3b8, 0xa68b2997, 0x9634c6c5, 0xba4ceddc, 0xc694f6dd,
			0x7c5f2749, 0x38e63a0c, 0x28fa978b, 0x70a25e0c, 0x330ea2b9, 0xc5c2d676, 0x9afc9280, 0x71dfc7b0,
			0x78f22534, 0x2b91b6b5, 0xac0ba477, 0x05953e13, 0x2d4368a0, 0x18b81258, 0x5088c0bc, 0x1ed0e55f,
			0x74351335, 0x6da6ed65, 0x48521d7f, 0x2b54de21, 0x5d61f25d, 0xaf45a05e, 0x81b8d83c, 0x104455ea,
			0x037e4641, 0xc6a91ef0, 0xd6b82d17, 0xf066e6e4, 0xdb6a667b, 0x1c21d376, 0xe6f4fdef, 0xc1c03bcc,
			0x684babe1, 0x79adfea6, 0x888a0a3b, 0x8af63a07, 0x069609de, 0xdee17f9f, 0x0c63df2b, 0x0cd05a28,
			0x884c94fe, 0x6e5c1812, 0x756dcede, 0x00a8c858, 0x8e82f807, 0x7bb3d9ba, 0x632a0107, 0xb04c6124,
			0x4cbc6cb3, 0x3eedeb81, 0x9540450b, 0x8f3e6699, 0x447876a4, 0x14148d4e, 0xc8ebc1ef, 0x29881d4f,
			0x9462a7c7, 0x10bf000f, 0x1a4306b6, 0x7415c7a4, 0x04dbb351, 0xcdc4e34e, 0xf5b4d0a3, 0x3b9fd441,
			0x2a58af45, 0x0982c243, 0x72bff388, 0xab262892, 0x5a0c7293, 0x3a1183c5, 0x28395265, 0x68e784e3,
			0x26f64f54, 0xadc81fe1, 0x57fcf144, 0x0a906444, 0x85ad334a, 0xa9096ac6, 0x0c62a1f2, 0x9504a4e3,
			0x32806d52, 0x10e7e116, 0x86afb4f7, 0x3ee8ced9, 0x8ed3dddc, 0x7e7cf5fb, 0xf8ad5450, 0x42b7be7e,
			0x3455a089, 0x1f21afa4, 0xfb463cb2, 0xc1b93e41, 0xffd69783, 0x4af2f0bb, 0x76624ac4, 0xc9dcb3ed,
			0x5b2daab2, 0x878ef883, 0x5e89a59c, 0x01236dc2, 0xef90eb75, 0xe51d1b43, 0x2d634676, 0x30a913ca,
			0xe79a1388, 0x9ff7236d, 0xb144e28b, 0x5e513753, 0x82445f24, 0x4f967a94, 0x399b130c, 0x25862e91,
			0x11eb42b4, 0x7e88a3d7, 0x807e4c12, 0xb1fc70fd, 0x1250f151, 0x4369abce, 0xe982119e, 0x453079c1,
			0xe1a94129, 0xac902c51, 0x2d781252, 0xc4de733d, 0x24e8f0e9, 0xf8dbb316, 0x854f32f9, 0x058edfed,
			0x760c410b, 0x9cd13f0f, 0xc26e9683, 0xcff2567b, 0x0fa0a98c, 0x01a38b9d, 0xbf533af4, 0xcb4192ee,
			0x4f165bcb, 0x4734805f, 0x6c3fc85d, 0x189f05bd, 0x3a29b156, 0xf9660703, 0x5ec72e9b, 0xfd101bd4,
			0xd8208309, 0xa834deb7, 0x497b0023, 0xee7e66c0, 0x1697c16d, 0x3cfc5279, 0x41da6a44, 0x7229a7ee,
			0x268ec226, 0x373e76bf, 0xfc75d571, 0x888f7adc, 0x0a8a4303, 0x3d445bd3, 0x70444353, 0x01a3e73d,
			0x3b4fe6cc, 0xa4fa6879, 0x0a322395, 0x8d716cb1, 0xf0789fed, 0x011f3460, 0x94be93cb, 0x8d3944c7,
			0xb9718a8a, 0x2a3048bf, 0x70950910, 0x527dbb39, 0x1dc763e5, 0x7923bc5e, 0xd70a1d01, 0xd075715c,
			0xd4dacf17, 0x9e82cb93, 0xbdb716a5, 0x2dcf3dc8, 0xcc8690e0, 0x98a7b915, 0xb27ec431, 0x9acdd823,
			0xada229fb, 0xb9e1851d, 0x271fac83, 0x6518a8d7, 0x16e2f234, 0xe9fad9f7, 0x6d8bb0b3, 0x1960358d,
			0x1376d093, 0xe5e9a504, 0xa25a6943, 0x0f0b75b2, 0xd735aed5, 0xbfa1feb8, 0x57a0cade, 0x983a30b4,
			0xaf0e7018, 0x1935ee16, 0x861d0a13, 0x102d4db5, 0x49382b0c, 0xa281d153, 0xf4a48003, 0xb7e58160,
			0x0d2bca89, 0xdf7c66fe, 0x83bf431d, 0xda90f5d2, 0xe06b4052, 0x85d92d34, 0xa8272974, 0x19623cfc,
			0xfc793374, 0xe3caa821, 0x9cc45dd1, 0xe74ec9f8, 0x1f0bd080, 0x00aa2fa0, 0xb8ac5bab, 0x732459cd,
			0xa3f39c54, 0xbbf1def6, 0x4c5f94fd, 0xaaa0fac5, 0x8ef4f764, 0xb3e07dd5, 0x19c5b8e6, 0x2d752d0d,
			0x67271351, 0xaa119bd8, 0xbbe37b71, 0xb68a1c51, 0x75b604f9, 0x6040c67d, 0x157ae6e5, 0x2a6c24fc,
			0xcc53b95c, 0x2bf989cb, 0x3e2e9811, 0x9a19d2ef, 0x55affbe3, 0x3c05c793, 0x87bfba87, 0x9607645c,
			0xa08d4c53, 0x18c45f4d, 0x76192c36, 0xc243d1f3, 0x87538341, 0xbbe83747, 0x842f861a, 0x00000000,
		},
		{
			0xf7c8dc48, 0xf59e43b6, 0x4ac8a80d, 0x2c3794c1, 0x800207bc, 0xc4e1df6f, 0xfa9ad89f, 0x53444a99,
			0xf78de83c, 0xb340cd8b, 0x6a83e96f, 0xc64abe1e, 0x554acc13, 0xf22f4f7a, 0xd6b37eeb, 0xa66c0940,
			0x14b9d532, 0x5b7af238, 0x6d631a30, 0x249dec48, 0x66b31b05, 0x0e2bf5e6, 0xd6f06d6c, 0x7cd8cbbc,
			0x2605633c, 0x44fde06f, 0x587a0d20, 0x2a729795, 0x2250719a, 0x6d378d96, 0x1ac46a60, 0x8b597fe6,
			0xaabb2fb1, 0xa38d35f1, 0x6ac1253a, 0x878e99b4, 0x34c7e738, 0x9b0e68b0, 0x2d841316, 0x93b298f5,
			0x9a0f9019, 0x3b56a985, 0x235a663d, 0xee61d8ef, 0x47a48e1e, 0xf4988d5e, 0xe8c8bd00, 0x0348944d,
			0x75b8724c, 0x00c3a368, 0xa17b8542, 0x3b16c543, 0xe04731db, 0xcda64870, 0x274cdbe8, 0xe62fe5c9,
			0x245a6f1c, 0x372b4f0d, 0x518b4a86, 0x74ea4b6d, 0xf603f15f, 0xf4a43a3f, 0x477c47d4, 0xd045c9a6,
			0x9bec3b65, 0x766d30a8, 0x4b940bbc, 0xd4235a19, 0xed58ca9a, 0xbce9d191, 0x34b6d1ad, 0x40269f3a,
			0x49dd5d7d, 0x0bc401cf, 0xc9ebff54, 0x029bc993, 0x43328a1a, 0xac17bbe9, 0x776043b6, 0x19e2a17a,
			0x2837ec04, 0x40ba0ef6, 0xec606593, 0xeb79363a, 0x979ba69f, 0x4359c3f3, 0xa6d7a849, 0xe0596783,
			0x7c8e11d0, 0x8b82f93e, 0x386ee583, 0x88dfa1b6, 0x387dbbd1, 0x1589ec0e, 0x4933f244, 0xb306163b,
			0xb2987499, 0x5c10ff2c, 0x838828ff, 0x85133954, 0x20c28201, 0x5dceb9d8, 0xe86fb915, 0xb7daf6bd,
			0x246a93f1, 0x25493401, 0x78c690fa, 0x1422912d, 0xfd444c9d, 0xa7dedde2, 0x73db30bc, 0x2918c752,
			0xacc63b1a, 0xdc653307, 0x6c16cd21, 0xbbb59030, 0x01324ea9, 0x2baea1cd, 0x8b99876c, 0x627e68be,
			0x5027cd8e, 0x47a699d1, 0xe28ac6df, 0x38fdbe14, 0x968524c0, 0x778813eb, 0xea06b5fb, 0x050c64a0,
			0x93e4892f, 0xc3f4a4c1, 0xe1f4ffcc, 0x60bfde75, 0x75491628, 0xb3684dc7, 0x0bc56f6b, 0x16fa7167,
			0xb994ac74, 0x89cc3b52, 0x179267e9, 0x80cb1e7a, 0x8b3d9ed6, 0xc17c1f95, 0xd76e5a32, 0x2efee6e8,
			0x207a3f58, 0x722326d1, 0xd3bc8169, 0x034b98a6, 0x56a74b67, 0x2702380f, 0xfbe1c279, 0x9db3db15,
			0xcfb0e433, 0xf9b41bb8, 0x80006790, 0xc6f74034, 0x712eef81, 0x3dc0e7a7, 0x8191be7c, 0xf8469458,
			0x6b671a6d, 0x2c7ce16f, 0x68e5b0ab, 0x0a2670f6, 0x29755bed, 0x61c9b9c3, 0x0ff6bba4, 0x1c3e5d5d,
			0x89083001, 0xb769e583, 0x2c72b120, 0xc32ed193, 0x721f144a, 0x8ed49654, 0x83567817, 0x017be296,
			0x0d07641f, 0x7bd9c83d, 0xc5f65daf, 0x2076fb1a, 0xf5e4b098, 0xe70ca892, 0x546f6d96, 0x79e950e8,
			0x9ebb0b7f, 0xb0906c72, 0xfb0394a7, 0x2d957436, 0xdce507d2, 0xd3f44622, 0x2cef41d0, 0x10b08ec9,
			0x29413f92, 0x10f15d67, 0xcac01f34, 0x8fd53056, 0xaf712430, 0x5b1c2697, 0x20fb94cf, 0x842054cc,
			0x475d4e8f, 0x109061d2, 0x3e2bf277, 0x67f13e4b, 0xc3af056e, 0x694e3ee7, 0xa33103cd, 0x25d624c8,
			0x15bd02ae, 0xd8dfe91a, 0x86e7ae1a, 0x5198dca4, 0x045d6ff3, 0xd91e6053, 0xfa985620, 0xbd43d483,
			0x75b83fbf, 0xf516ec2c, 0xc3b414e5, 0xa45e7ad3, 0x58ec2bd2, 0x1e4611f5, 0x85927062, 0xaff2dd0b,
			0xef0e9dc0, 0xdab14b14, 0x888a7fd4, 0x71223a5a, 0x9f7344a2, 0xd435ade7, 0x705a62b3, 0x99aa9342,
			0xa6b549c0, 0xf02eb0e0, 0xe3c4667b, 0x62e5f481, 0x6a4acc79, 0x59d51398, 0xdc628322, 0x479a7f41,
			0x86c1c6de, 0xc1484a2f, 0xe6219020, 0xe9b30150, 0x36c20938, 0x30a63167, 0x431d32bd, 0x99df145b,
			0x82c25c60, 0x94f8ce90, 0x0cf58119, 0x8b514fed, 0xf09b2b66, 0x6a808578, 0x81a141aa, 0x7e73c9f6,
			0x9cb1bdb8, 0xe10e26b8, 0x142311b4, 0xe18cfbc5, 0xa65b6251, 0xb97cea0e, 0xa0efd94f, 0x4e9cbe82,
			0x5946f529, 0x8e6e1779, 0xd679934f, 0x0953411e, 0xe50b0e51, 0x6f21a4be, 0x8d36ec1c, 0x7ec2a6ed,
			0xecbbedc6, 0xa22f2548, 0x97f62e94, 0x0e1f9e1a, 0x8b4c9701, 0x162c2b74, 0x7855f3fa, 0x397d068c,
			0x9b2ad008, 0x18e308fa, 0xe73756f8, 0xbd019219, 0x124e56f4, 0x5f77d754, 0x9c85edb8, 0x7d9149f6,
			0xc928b1c9, 0xd21a6e9d, 0x6cc32846, 0x5f74d5df, 0xfdabecb9, 0xd2fb6f2d, 0x5e44bca4, 0xccfe0aa9,
			0xc0b5508d, 0xfab83bbb, 0x3e060521, 0x1fc2552b, 0xe3ae6013, 0x1fa928ea, 0x2270d3f4, 0x75758955,
			0x656a177f, 0x943d6487, 0x7e8be58d, 0xbb97326a, 0x9ee59df9, 0x2949ebe6, 0x4a50f527, 0x5cd15525,
			0x2639af53, 0x97bb2fe4, 0xfc8bc9f2, 0x8aee7548, 0x594c3bed, 0x7930a4ea, 0x47e771e2, 0xff16eb5a,
			0xd7867023, 0x5b5c0566, 0x984381de, 0x776aaca2, 0x712e416b, 0xbbdf57b2, 0x74cfc743, 0x32130dec,
			0x4a29d463, 0xe127d6d4, 0x60875fa3, 0x24e3fb93, 0x22d37505, 0x6f3fee80, 0xcdee508b, 0x6e92ab76,
			0x15655659, 0xaf3cc577, 0xd82d3b5b, 0x6b81f7c3, 0xf3d4ab54, 0x55f3617e, 0xac63f642, 0x9b165ac0,
			0x84773bd0, 0x17064e5e, 0xc4f602f4, 0xde31f232, 0xc9a06d3c, 0x6d9e86e0, 0x09627e40, 0x88dee876,
			0xd2e86c2a, 0x84fa7f59, 0x6bef9903, 0x8106e384, 0x2a924fbf, 0xc286ec94, 0x1ce055b5, 0xf8639308,
			0x2c9160f0, 0x8152f612, 0xcb349f88, 0x174c3a35, 0x2404b430, 0xbe60d802, 0x0abd690b, 0xc983cb99,
			0x7c7ff80d, 0x2efa7eb1, 0x319125f7, 0x50e52e6b, 0x4987700b, 0xd236124a, 0x70edfb6e, 0xc02c32f0,
			0x6ae0a3a2, 0x1aefea30, 0x26dad3c1, 0xb46d23fb, 0xd70b3ffc, 0xf524c3b3, 0x769e7f47, 0x4c44f08b,
			0x78f0d071, 0xce097d40, 0x83ef44d7, 0x5eefdfcf, 0xf1abdca2, 0x57abdc3e, 0x4663ab76, 0x3af5efd9,
			0x1489ed98, 0x3bf5ec49, 0x5d248b69, 0xd092e4df, 0xa45caf57, 0xb7aea8a1, 0xd02aae5c, 0x7401663a,
			0x35cd71d1, 0x4c88bff0, 0x58cdfab4, 0xf8e42a2f, 0xb1de6b8a, 0x679a84a3, 0xa8bc68be, 0x309b360c,
			0x74be5d1f, 0x39e55a1a, 0xb56480a8, 0x86603ad8, 0x79a1ce05, 0x8f03f63d, 0xf6b570b0, 0x8a2feba8,
			0x26a11eff, 0x97d1345d, 0x0a2ce79b, 0xbe2c6958, 0xfd0ff5a7, 0xef6057f2, 0x551d5804, 0x52d55a7a,
			0x9c4be5e7, 0x7eaae411, 0x13803c89, 0xbefe7b27, 0x3026bb24, 0xb7c60894, 0x638d62a8, 0x2dfbc13d,
			0x0ffa7c48, 0xceb298a1, 0xc87c6885, 0x1f8c8131, 0x324a2b06, 0xfcd4c05c, 0x2f73aff8, 0x2abbcc0c,
			0x38749ada, 0x9a2738dd, 0x975d4bba, 0x40c9b78d, 0x23cfe833, 0x239bca53, 0x7d670f74, 0xca36347a,
			0x7004c3aa, 0x4ebcfeff, 0x3af360cb, 0x5647dfa2, 0xeef4f751, 0xe5bcad8e, 0xc6678be1, 0x9e22de55,
			0xe2eff0fd, 0x462af490, 0xbef69c33, 0x37ecbd3b, 0x204b1025, 0xe2ec92ec, 0x57100d35, 0xf2da59dc,
			0xfaad14f5, 0xffe7c9cd, 0xe2d3b3b3, 0xd947480f, 0x2029b48b, 0x77e8cad0, 0x93fa723a, 0x4ff150c7,
			0x6cd56cb5, 0xa6984ae7, 0x6f06fc3f, 0xad93bd61, 0xac8620e6, 0x8d1c6b28, 0x6919390a, 0x264956f0,
			0xabd1297c, 0xf6c006f5, 0x0ffc9e7e, 0xb94e3c40, 0xe987e731, 0xac255e00, 0x5febee93, 0x09fe68a8,
			0x8f79c1b6, 0x43ee47dd, 0x9bbaad08, 0xda3da2c9, 0x39338920, 0x4745421b, 0x22891efd, 0xe3223ca6,
			0x27318a4c, 0xb13f658d, 0x4047c793, 0xe7cc8952, 0xd92d859c, 0x5a9ccfc9, 0x98a4fadc, 0xb5e31c79,
			0xac4ecbbf, 0xd34a7d38, 0x487230e3, 0xbd3d13fb, 0x89af22ab, 0x31a99b76, 0xf43e43a6, 0x94fda06f,
			0x7cd792ac, 0x1e9800d9, 0x34589997, 0xacdf8dc0, 0x993684ab, 0xbd3cbe3d, 0x5cade8f8, 0xe14c9661,
			0xb245be87, 0x5cd734fb, 0xd052b529, 0x59307287, 0x90cc2ee7, 0x781854cb, 0x018da7d3, 0x67b1d568,
			0x91d2b883, 0x1b7ade57, 0xeeb434bb, 0x65912cb2, 0x7ccad113, 0x1b5579a6, 0x4d33edf3, 0xc252f2f8,
			0xdb5d2c93, 0x510fe609, 0x5a26a125, 0x632c832f, 0x234d3269, 0xf6a1b5af, 0x325ce1d0, 0xb847524c,
			0x6e08ac01, 0x0100ef10, 0xdd546885, 0x8eba4d75, 0x0b268f41, 0x71816309, 0x0595e0b1, 0xc5cb66e6,
			0xde666bc9, 0xd2839934, 0xc387c9b6, 0xcd663332, 0x816a72d6, 0x60e7bfd8, 0x68f72232, 0x3bdb683b,
			0x5a450b3c, 0x26f84164, 0x6db6c6c2, 0xa4023c52, 0x49e13707, 0xf474ffe0, 0xfcdaa155, 0x2c4ad880,
			0x8d1583ba, 0x65b6ce0d, 0xfbcd94f4, 0x9aeadefb, 0xfb001b5d, 0xdd7624e3, 0x5525a382, 0x798f24ec,
			0xb6e8f9f7, 0xf707416c, 0x5826b956, 0x8ea3a432, 0x48f36f91, 0x78712739, 0xe4692fbe, 0x5ce79f58,
			0xbcd28806, 0x012fd62b, 0xf6c8502a, 0xf7cbcca7, 0xed2c8d85, 0xc505189a, 0xe2eb5a01, 0xa186a0ca,
			0x936e83db, 0x7598aa4b, 0xdd3c8305, 0x5dfbeb7f, 0xb3603d9f, 0xaa14cea9, 0x48a69278, 0xa23cecc4,
			0xa6de8083, 0x2cda95aa, 0x7263bc48, 0x8889431f, 0x534e5812, 0x8afb9319, 0xd488aea3, 0x9eacae6c,
			0xcc4dc15f, 0x892d70ed, 0x841694e7, 0x1ae98437, 0x93f9801c, 0xcb3d46a9, 0x256564e2, 0x1491f4c4,
			0x491f7cae, 0xc939175e, 0x3a9248e0, 0xd4b56c67, 0x914e2b8e, 0x28931c1d, 0xd4ba6469, 0x00000001,
		},
		{
			0x11af70e6, 0x62d0b00d, 0x2262a2e2, 0x33e88001, 0x5949790a, 0x93b23587, 0xd80a5851, 0x983a65a4,
			0x7da7fb4b, 0xf2b77c7a, 0xb45f1eb4, 0x48f25a4e, 0x92d3e406, 0xae57b1eb, 0x4a90fe9d, 0x70c9d30b,
			0xe3bd41b9, 0x5722a202, 0xa49b750a, 0x20920f9d, 0x895714ed, 0x5dc5ec81, 0x58f0b421, 0xf139d1c5,
			0xa7d77c76, 0x21c105b8, 0x847c3f30, 0xdc9fae04, 0xc80b0411, 0x8a145be6, 0x69622127, 0x45c3c074,
			0x3b2761cf, 0x51aaa5b8, 0xa514de91, 0x89dfaa55, 0xe1bf22de, 0x4c26f809, 0xffc24275, 0x4f52d961,
			0xb625c4c2, 0x54e87331, 0x6fdad14b, 0x3cebaf30, 0xd0f6746b, 0x2ff425cf, 0xe04cb49e, 0x8df1d483,
			0x958f0cae, 0x48543cfd, 0x45324b7e, 0xb2595bb8, 0x4791de6e, 0xff752b89, 0x73ffc410, 0xcfb6ab1a,
			0x57c4e851, 0x1a2ea7c8, 0x5a4415ec, 0x14979dc6, 0x26d6b63c, 0xaa5c969b, 0xab4badcd, 0x7e921d94,
			0xebac2b21, 0x5d76f4f3, 0xbc96331e, 0x3dd8f841, 0xe0a8be55, 0x2e7c7097, 0x86c4f897, 0x3c0c0995,
			0x12888fd0, 0x782736f1, 0xb58b860f, 0xe0100bf8, 0xba1846fb, 0x7fa8a341, 0x9e7055e8, 0x4f2940c9,
			0xda6c17cc, 0xe85ae668, 0x12fcfd83, 0x5d1321bb, 0x4febb802, 0x5277cb92, 0x29d9b934, 0x8452c24f,
			0x23c50178, 0xdfd600be, 0x48460efb, 0x13fc04ec, 0x1c0d0d88, 0x0dbbfdcb, 0x3a26e63f, 0x094624e6,
			0x73aadf8e, 0xdb398097, 0x9cd7850c, 0xe7603c2d, 0xe51ea02b, 0x7a83bd8d, 0x97a24abc, 0x1877d2a8,
			0xa3536708, 0x99c7f463, 0xba3bb463, 0xfff59164, 0x11744ddb, 0x639a7712, 0x8f0f8d23, 0xa7da5a62,
			0x207bf50f, 0xcba66184, 0x6ee9df7a, 0xf39bc6e5, 0x715bb6a0, 0x71e7cb64, 0xd467d8b5, 0xe9eaf91e,
			0x4e655fcc, 0x84ca0444, 0x1dac1c3d, 0x8cb2adcb, 0x278adbc3, 0xb5bc9030, 0xcb55751e, 0xf6b45b45,
			0xf29ee98f, 0x3d2e7b35, 0xf62d3f6b, 0xba624eff, 0x8e7d48d2, 0x306e6a85, 0x30a0fccd, 0x62806903,
			0x9e66ce15, 0x1bc28f84, 0x99d177c7, 0xe1e29e4b, 0x2811137c, 0x8d2f2000, 0x3c01d1aa, 0xa395fa5d,
			0x85664d58, 0xd106284a, 0xa0572fab, 0xcfef1a6c, 0x6ec04ad4, 0xa0eec7bf, 0x3a0a6020, 0x664d4bfc,
			0xdda4e128, 0x756ebf86, 0x4a708358, 0xb9a29700, 0x7732fd31, 0x049d56ec, 0x29ae590c, 0xeffd43d7,
			0x6318128a, 0xaabc0189, 0x6ed21c5e, 0x5a73c991, 0x1c550121, 0x9c9dd8c2, 0xcd47f292, 0xf59482a6,
			0x9dbd010a, 0x0391c1a2, 0x686337bf, 0x77759378, 0x7074aa11, 0x7857a6cc, 0xa98318e2, 0x3b728b19,
			0x4a266191, 0x3d0fa709, 0xf0690d17, 0x102aad69, 0xe97f7d4d, 0x1ab76010, 0x8da305ff, 0xedda1894,
			0x91185c18, 0x9dacd8eb, 0x264227c2, 0x0368d8d5, 0x6b32a15a, 0x573ee979, 0xd1246e6e, 0x2114fc8d,
			0x16449647, 0xba016625, 0x2f0168c7, 0xcaeab91f, 0x3adca6c4, 0x5eb17d8d, 0xbdf8ec29, 0xaa696253,
			0xe687d0d0, 0x6c6f1dc7, 0xb4723ace, 0xc0c0252d, 0xe8b68db9, 0x1c28a014, 0x2c626022, 0x239f9690,
			0x913c85a5, 0x9b1891a0, 0x9a444171, 0xbf646210, 0xf1024b90, 0xdf3846bf, 0x0e66196a, 0x6cc5d07b,
			0x217a8cb1, 0x80ec77a9, 0x8331fb9d, 0x4a83d220, 0x15fd7c7e, 0x1a347ca5, 0x91eb42cf, 0x47dd7fef,
			0x8e05bf9b, 0x1352118b, 0x7d825557, 0x1b404a04, 0x8271cb82, 0xb56e4742, 0x1eed0bc8, 0x884fabcc,
			0xadc42e3d, 0x6fc77947, 0x1d965861, 0x28fe3423, 0xa9507d26, 0xeecb7b28, 0xdedaad0f, 0xb7bff01d,
			0x2336963e, 0x463fdf34, 0x4edc9bbd, 0xb9eb375d, 0x78be5397, 0x2ceb6ea4, 0x340c21f4, 0x69fb0128,
			0x085aa515, 0x89f3d028, 0x0e7ce5b7, 0xac04149b, 0xc35e8af4, 0x8da524e0, 0xee4b99cc, 0x96824de1,
			0x92879b6e, 0xa0254c89, 0x0eee5dbb, 0x0dd1c69b, 0xaa8830ed, 0xceb1e6f7, 0x7a2e07ed, 0xcd5a2e94,
			0x17755705, 0x7fee8d0f, 0x865b0c63, 0xac3513a9, 0xfb0fc9fe, 0x9e31cfd7, 0x05c12b2b, 0xbfbe2dcb,
			0xe31c7ba6, 0x5dc574a8, 0xa402d0f9, 0x863e6cc5, 0xdaa3d7d8, 0x85fa2f8b, 0x9180cc04, 0x516e28d4,
			0xdc72b5b5, 0x91cdb381, 0x7417e7b4, 0x3bab8bfc, 0xe01dfc88, 0x14187217, 0xa56b3a96, 0x9a763ee8,
			0xf2166d19, 0xa033a552, 0x6235ea26, 0x2607b420, 0xc1c6f800, 0x0be4573f, 0xb4c92fcb, 0x25135d7d,
			0x1df8d9a8, 0xa7c5e452, 0x48d02f6c, 0x9eee05b6, 0x5648fc83, 0xe663468d, 0x7432c580, 0xc4cb09d3,
			0xbd1b7899, 0x42d73552, 0x430fd513, 0xfb7c74b7, 0x6d9fd617, 0x2f5f5e3f, 0x12ac1e74, 0x0d9cc6fb,
			0x8fd7cbc4, 0x23aef1c8, 0xd0cfca9d, 0xd466ef33, 0xd4528a4b, 0xa2e96a92, 0x57c4b41e, 0x4a2ca6b0,
			0x52a306c1, 0x5ab49096, 0x01c22fec, 0x4140b9ca, 0x849bb82c, 0xf3392019, 0x6a396708, 0xb3124a85,
			0x74ae1dba, 0x99b583a1, 0xfece9538, 0xe3f61e1e, 0x3120eddf, 0xe1c7018e, 0x854817e4, 0xc5094ed2,
			0xb705d014, 0x3881f6c5, 0x3a356996, 0x0e5688c2, 0x5137cf80, 0xc1ab0354, 0xf82fa3f8, 0x2e6b9d56,
			0xfed2854a, 0x0f0f2790, 0xc3bff9b1, 0x1c49475d, 0xe27027ef, 0xca22d351, 0x68abc127, 0x039356d3,
			0x17cc278c, 0x5e257d6b, 0x76a1a7b1, 0x15ea0280, 0xcf78e191, 0xb9ebdfc5, 0x98f437f6, 0x9c3bb412,
			0x2383bddb, 0xc7226ea7, 0x4bcc5eb9, 0xf2d8f068, 0x5e74d528, 0x234188dc, 0xe8ce1a8b, 0xd78cda26,
			0x80692917, 0x2423332f, 0xbdd8cde2, 0xfcd359ad, 0xa240c656, 0xabb69487, 0x26e35c8f, 0xa6e29675,
			0x906ef6e3, 0x318f168d, 0x61657c8e, 0x3d1da981, 0xe200eef0, 0x80e6b7a6, 0x314105c6, 0x8b10fae8,
			0xdbff1233, 0x077a4e4d, 0x87633b43, 0x477a3607, 0xc4bf25d0, 0x6c668f6b, 0x8e0cbd8e, 0xfefc6ea6,
			0xf355538c, 0x6f17ed97, 0x4fed568e, 0xf93926a7, 0xebf0ff8a, 0xd8ac8ddf, 0x9ce7bbbb, 0x8e5878bc,
			0xe7f312ec, 0xa1d78e5c, 0x8a8c6713, 0xb02f9e11, 0x37d33c20, 0x7133780a, 0x4ed49305, 0xe00f654a,
			0xf01300ca, 0xbc04462f, 0xbac5c184, 0x26a6dab5, 0x4f3431cb, 0xdc7c4dcc, 0x680f4b56, 0x25585d0b,
			0xbef62002, 0xadd0e912, 0xa51805b0, 0xacfc5d46, 0x4c083a6d, 0x398d3345, 0x36238d58, 0xc0ad91d2,
			0xef7ef712, 0x1c29bf3c, 0xe2b3cdd1, 0x9d270610, 0x4bdba511, 0x99cc88b5, 0x60bf0940, 0xc404f7b8,
			0x3c7e0094, 0xd32aafa9, 0x6aa326e6, 0xb81b8a0c, 0xe9acc4dd, 0x2b8ad119, 0x98056162, 0x19dbade7,
			0x9ef35467, 0x9ce8a961, 0x6996cba1, 0xc643c307, 0x7856c439, 0xc1038247, 0x754c50e1, 0x1591ac74,
			0xf24a556a, 0x25731932, 0x7c366214, 0xfacd55be, 0x8421d93f, 0x8917e5da, 0xf4557f97, 0x92ffa95a,
			0x4cac9a37, 0xa42d68a4, 0x3ba3df14, 0x4b2273d4, 0x8dca4997, 0xa2bc9721, 0xad8b840b, 0xf17f6ae4,
			0x82f23c5a, 0x80b29a86, 0x3214c8c9, 0xeb553606, 0x2ef33f55, 0x829d8bac, 0xeb0ec5ee, 0x50911f83,
			0x2410ec44, 0x300a7eb4, 0x02f28d13, 0x8c41de62, 0xdf37cebd, 0xe556d048, 0xc8104475, 0xabed0945,
			0x0c3238ec, 0x5a0b56ef, 0x6e90120d, 0x37c98816, 0xc94dee3a, 0x524ebf24, 0x73bab941, 0x81c7d81e,
			0x8543ad4f, 0x5ed399d1, 0x786ccf0f, 0xea339678, 0xefddd9b6, 0xeb320bd3, 0x5fb3da67, 0x7c783522,
			0x359314b9, 0xedffe4fc, 0x9496c686, 0x972fe5b8, 0x1bb7558e, 0xf689bf6f, 0x385f6b2e, 0x39b878c7,
			0xa751542d, 0xcb4ca88a, 0x7758c822, 0x2f2f3d0f, 0x77739f35, 0x3c93df95, 0x503ddeaa, 0xcce66bcd,
			0xfb310f71, 0x84b1981e, 0xac1d4b85, 0xafebfd75, 0x09b81e22, 0x1fae291e, 0x5b8d982b, 0xfb055459,
			0x1e530f30, 0x1ff6fae2, 0x5d3de675, 0x51a26cea, 0xa4d3f7fb, 0x3b48bd8f, 0x495fced8, 0xfaa18488,
			0x8b7b99cd, 0x5a34cf5b, 0x7cf1ce11, 0x6028bdfe, 0x122e7e02, 0x60fda272, 0x6e367751, 0x0a28b60d,
			0x58291e64, 0x367b87e2, 0xc1e59c65, 0x8a1e2e8c, 0x64886306, 0x52c0b8b4, 0x574a1446, 0xe420c440,
			0x30881165, 0x6c509cbf, 0x559370b1, 0xccc94b32, 0x53eb0b8e, 0x580b98a7, 0x7fece4b9, 0x3e007e53,
			0xe5889cb0, 0xfaff6459, 0x9cd5d6b4, 0xc6cc8847, 0x461800ee, 0x4285ba06, 0xac803bb3, 0x86a160a4,
			0x7b13e5b8, 0x4ca35506, 0x89439e4a, 0xc05e7119, 0x367af64e, 0x61caacdc, 0xc70fb209, 0x9db25ada,
			0x125b5055, 0x2c93470d, 0x92a0857d, 0x750c5c99, 0xef207c4f, 0x68eb57f2, 0x00643fcc, 0x4b0e4d5d,
			0x02b6ce96, 0xc6e73ec3, 0x4881c70b, 0x5df5cecc, 0x41885414, 0x396ea362, 0xd6508c4f, 0xd9856a76,
			0x524245c6, 0xac951bb0, 0x26ec3609, 0x2819d455, 0xc062f3c1, 0xf0709880, 0xf8c143d7, 0x6e323091,
			0x2c9aa21e, 0x152fa4e4, 0x1dd12e81, 0x6f790925, 0x16f03f2b, 0x2a00e31d, 0xc08ef02b, 0xd37783ed,
			0x5605d249, 0xace2793b, 0xe5cc8c0b, 0x9baa8dbd, 0x5e371618, 0x0e0d9771, 0xbf2a1b2d, 0x5ca66cdb,
			0x3d86a562, 0xa2d049c2, 0x7dac6f47, 0x15751b84, 0x12a93318, 0xb20befb5, 0xd8aeadd3, 0xcf436e8b,
			0x1218cef6, 0x4b9b0dd7, 0x0ce6df5d, 0x5fd4ba48, 0x0d44459f, 0x6658d414, 0xc93644d3, 0x00000001,
		},
		{
			0x9276f2db, 0x4611052a, 0xce2d25dd, 0x11cd0616, 0xa9c3abb9, 0xc693ac69, 0xeb871dcc, 0xc67fc16d,
			0xb9434943, 0x1d4a9efa, 0xbc9e254b, 0x5c52ed4b, 0x703c2258, 0xa473fa6c, 0x35599190, 0x6f5467fd,
			0x67fd6056, 0x79a5ac2f, 0xa8c7436f, 0x729774b2, 0x995820a1, 0xcc0e8deb, 0x059e926a, 0x43851bc7,
			0x27f06109, 0x20979178, 0x730151f5, 0x2ffe80d7, 0x47fd58ca, 0xbd161a87, 0x09c98849, 0xfcdb4016,
			0xd470d9cb, 0xc497a00f, 0xc4ebda22, 0xee00adca, 0xd60e29e1, 0x88a702b8, 0xb9921b7c, 0x2ea55a82,
			0x9b02c5a0, 0x1f151827, 0x17cd136e, 0xe81d2819, 0x5c38accd, 0x3f31f251, 0xb10b6377, 0xe63fcc12,
			0x76463ced, 0xa7f5cd85, 0xc307dbb5, 0xd908ef24, 0x9258b4f0, 0x16ec1e98, 0x96d4bb4d, 0x6a767d53,
			0x84e7b18f, 0x88c780ab, 0xacf4ebb8, 0x0333c53b, 0xb3b05be7, 0x88096364, 0x360f71b5, 0xb8fb8d61,
			0x6679bd99, 0xbe3628d9, 0x503cac44, 0x1c2069ac, 0x358631b3, 0x26d55ecd, 0xe6b6efab, 0xbe658899,
			0xcd69210c, 0x99d05bb2, 0x4b29650d, 0x23e71f56, 0xcbc2940a, 0x6ab9dd1c, 0x8120417e, 0x22f7c83a,
			0xb0f7827e, 0x0db1af35, 0xd7c5b348, 0xe64251eb, 0x3cdbcbc9, 0xde7a8cb0, 0x39d740ee, 0xfc5bb317,
			0x211e3d4f, 0xcb51cb0e, 0x5e85ea1a, 0xb4decf16, 0x09e3dc7f, 0xbf0b892e, 0x7df4b876, 0xf23e8cfc,
			0x4d4be184, 0x3a7796ab, 0xfb714e2b, 0xe0a4c68d, 0xd6428055, 0x1d3faa59, 0x2a40db03, 0x02365102,
			0xd1f171f9, 0xd828ca3a, 0x4bb3ca1f, 0x3682a66f, 0xf1940b0c, 0xfa7c8642, 0xa5a4a939, 0x8ebb3548,
			0xe1cd0488, 0xaf93ae0e, 0xa90e1b19, 0xe321a948, 0x1c18df09, 0xbe3ef067, 0xeb4cb888, 0x7a671c41,
			0xabca2fbe, 0x0396de76, 0x87fa43a0, 0x0ac0f847, 0xceb7b770, 0xd930059a, 0x0873ad52, 0xd26f3e3e,
			0x613a8fac, 0xc52a33e6, 0x120cddcb, 0xa8ebab21, 0x989aac71, 0xb50e0abb, 0x0c6215d8, 0xfefb8db3,
			0xb4850a13, 0xfb2f1272, 0xf419db1d, 0x1adeec1d, 0xb9db4fab, 0x11acfeaa, 0x08eb7100, 0x4f0af7af,
			0xe8921556, 0x0c412bf7, 0x595f18e4, 0x0151b375, 0x36867504, 0x1cdeb568, 0x35fda267, 0xb53be9b4,
			0xcba4d9b9, 0xd4902ddc, 0x0b5c289a, 0xede6e2d2, 0x7d84b577, 0xe0919607, 0x8da6c562, 0xfad57946,
			0xcd7127a3, 0x03d32871, 0xc12a74dc, 0x65978371, 0xd9283be6, 0x2fdb7b6a, 0x0d669c9c, 0x627a7756,
			0x9e2137df, 0xf62dee9a, 0x190cecd3, 0x1e22fc0c, 0xdd1f8990, 0xbb508382, 0x6c4de198, 0xfbcd7851,
			0x0f849e9e, 0x4d2f0e34, 0x1f10dbe4, 0xb1344d12, 0x6d956d37, 0x615c18aa, 0xbb61f4a2, 0x6dfff15e,
			0x837f86df, 0x6371919c, 0xb9d51f9d, 0x4f6b911e, 0x494c783b, 0xc2747f30, 0xc2d81bcb, 0x13e7f8fb,
			0xe51ea160, 0x08c25239, 0x4d03ef92, 0xd2544beb, 0x3d79d4d7, 0x890bb26b, 0x3ce1d7a3, 0xc45d0e3c,
			0xa474ea0f, 0x903c03b6, 0x67f1c8be, 0xed48d475, 0xa7805cde, 0x8d7c2f95, 0x9172a373, 0xd9236c91,
			0x0d2bc4b2, 0x5c5f7aa1, 0xceb131c4, 0x952ddfa7, 0xd0568fcf, 0x9372a80b, 0x0f7c1be8, 0x5b2d9113,
			0xdb333f7c, 0x50d4906c, 0xa21d6330, 0xad576b0c, 0xbaf24ffa, 0x97f61097, 0x06da4002, 0xb881a854,
			0xf54cadf9, 0x355900e8, 0x5ae6a284, 0xdf465e4f, 0x45512309, 0xeb2fa29e, 0x1ffe7cdb, 0xc6eeecd1,
			0xafaf6e73, 0xfd9920b2, 0xfe81e481, 0x02b92ce6, 0xacc2aafb, 0x8d027aff, 0x3d63c263, 0x3c0c5ac3,
			0x2d15de9d, 0x4c7141c5, 0x39b02ab2, 0xecbfa7b4, 0x52232113, 0x3ff7cc8a, 0x6f099aa3, 0x0c446c12,
			0xbbc1902c, 0xca1d146d, 0x6f43f1b8, 0x0ff2dae7, 0x4f00c5c9, 0xa2a3eec8, 0xf8ad63d6, 0x9f1b0c8c,
			0xc1982bcb, 0xe41b3186, 0xfce3bac9, 0x6356c373, 0x4e7a1413, 0xa714146f, 0x65e33836, 0xdc12ae2c,
			0xca767a60, 0xbb511c04, 0xaaedd352, 0x47494f10, 0xd23f4c46, 0x19d2ab3e, 0xffbac182, 0x48301ab8,
			0x70de11be, 0xf3611b39, 0x6ac32147, 0xf60519a0, 0x656bf5b3, 0xdf1aa1de, 0x485f476e, 0xf9b247dc,
			0x4797e96f, 0xcb5a9276, 0xd8389154, 0xdfd9934d, 0x4753dfcb, 0x91734a9b, 0x4cf2a10d, 0x92b10e2c,
			0x8f157cd5, 0xb69ecd12, 0x86c87ebc, 0x72bc8387, 0xb18eace7, 0xe28ade0d, 0xef23a07e, 0x0adc7d3f,
			0x6874833a, 0x4b0c70b8, 0x97c1595b, 0x6c4f643b, 0x4be68952, 0x41847d1d, 0x52586e96, 0x4ece6961,
			0x6bd13625, 0xacfa9187, 0x257dcd1c, 0xe054c726, 0x548e6c03, 0x7dcf91b6, 0x7018e812, 0x91f1ba7a,
			0x10f99bc8, 0xe536c212, 0xcf4d4906, 0x9dbce59a, 0xfd72c9e8, 0xb251b04b, 0xa425286a, 0xbf88f4b0,
			0x381fd021, 0x0a3a1dd1, 0xf79bb81a, 0xaa06730b, 0xdcaa8545, 0xce58c90e, 0x3a2048eb, 0x0df9f0d3,
			0xcb1dc6af, 0x0745523a, 0xe6c9c471, 0x54e72576, 0x3fee6e64, 0x864e66ec, 0xdb9c0657, 0x2fe7bb5c,
			0x97204ab4, 0x41f48bdd, 0xbd687237, 0x93e5c016, 0x0210c656, 0xb09d9884, 0x93599863, 0x810b9c9c,
			0x04b5b02a, 0x565915c7, 0x6c128957, 0xd97fbee4, 0xffecc94c, 0x8aafa26c, 0xa2835c3d, 0x1283c4aa,
			0x7eb96e75, 0x40ab3902, 0xdb57426b, 0xcb76ed3f, 0x8f687d7c, 0x3f76534f, 0xaa24269f, 0x1db92bcb,
			0x52f6d0ff, 0x23055ec7, 0xa1f0742f, 0x0c5fdeda, 0xcf82048b, 0x4d40d819, 0x8e32c89b, 0xd0907345,
			0x8ebdd862, 0xa9a5c641, 0xdf93bcdc, 0xa4f24f0c, 0x3b867b7f, 0x2665b1b6, 0xefed0f7b, 0x35e581a1,
			0x3e3a4bdb, 0x296473af, 0xc9d37995, 0x0306cffb, 0xe1ae0a1e, 0xcb5bf70b, 0xd886d297, 0xe2a2d6fd,
			0xdc4c8b1d, 0xce3c9f64, 0x90cb3d9e, 0x4cfea878, 0x5153aa8a, 0x7c4d1581, 0xfbc13f76, 0xec7a8eda,
			0x562197dc, 0x269c6bc7, 0x233b9c81, 0x8403a722, 0x10681ed3, 0x09781416, 0xff9602f1, 0xc774a9e7,
			0x354a433b, 0x670637bc, 0xddce68cc, 0x966b9225, 0xc09b9b97, 0x5ef47480, 0xebf59ae4, 0xb8a3c6aa,
			0x8bfdc2f2, 0xb505a57a, 0x8ca206fd, 0x6aa9ab61, 0x3a4275d1, 0xe3d4bb45, 0x513481d6, 0x9cb03268,
			0x35122f1d, 0x235c52de, 0x88dc536a, 0x043e8ea0, 0x7b7e213e, 0x16552696, 0x0f02d23d, 0x6a95aa0d,
			0xc17784eb, 0x84307077, 0x1225cde7, 0x1f668c36, 0xc79cf134, 0x305f6acd, 0xd6faad37, 0xb96cd630,
			0xfdbc8cf5, 0x6e868ee4, 0x47d25e52, 0xc7c8734f, 0x06a9e378, 0x5da6141f, 0xa8a49b6c, 0x905a0094,
			0x502d26dc, 0x1ee8648a, 0x899f64e2, 0x862ff1cf, 0x1ff405cb, 0xc419f78c, 0x4695d855, 0xd8e89531,
			0x9ac79ad3, 0x21ffe048, 0x70df7abb, 0xd88be2e2, 0x76a17fae, 0xe27550fc, 0x88df8ed6, 0x8075dd07,
			0x2abae3ff, 0xc34c27bb, 0x15b0720b, 0x3bef7923, 0x75a313e3, 0x24476150, 0x0f0e9447, 0x7de8608d,
			0xbae88cd9, 0x4e485b91, 0xb155d7d2, 0xf9c0e6e9, 0x3035b2b7, 0x3bc6db89, 0x10b6d079, 0x12549155,
			0x83c839f2, 0x4ea31e3a, 0xfacee001, 0x87d0b362, 0x35155f7f, 0x2e8037b6, 0xc2e1e663, 0x26c05bc0,
			0xe2fe0c1f, 0x45c8abf5, 0xf8f5e752, 0x0ca6cf8c, 0xb5415ca1, 0x06361e6c, 0x8a66869c, 0x039086b5,
			0x85fee7a1, 0x3b0e74d5, 0x5c47a018, 0x602d78a9, 0x425b1774, 0x6e29e07f, 0xfde8e06e, 0x2938ff15,
			0x15f7dc3a, 0x72452d13, 0xe7f74817, 0x0fd1a85d, 0x612d9275, 0x321358eb, 0x077351c6, 0x4ced74a0,
			0xbf164474, 0xd7fc8a1c, 0x06791659, 0x6eed942b, 0xdcbf1b9a, 0x341e75be, 0x5c6774a2, 0xdd5b0c47,
			0xfb0006b5, 0x9ee4bf75, 0xddc4a28a, 0xc1c98e20, 0xeb67f889, 0x428ab36d, 0x412d4bf0, 0xc7bb85a2,
			0x3a82c58f, 0x455f7319, 0x7eb63480, 0x0c3a2211, 0xb7b25bd4, 0xdd0c5185, 0x82fcba21, 0xa3e3296c,
			0x673172ef, 0x83ab5dc6, 0x845f1efa, 0xe24724c7, 0xd77aa75a, 0x3cc9b06a, 0x9cf4d6e7, 0x5ca700e3,
			0x993efdd6, 0x63c0effd, 0xe54dbafb, 0x23d97341, 0x1543d9d1, 0x8c230178, 0xe167de46, 0x0d0207a7,
			0xc4e37017, 0x5c4da453, 0x4913904c, 0x1ba116e5, 0x5bdcbf15, 0x1301aa5f, 0x7f00af4c, 0x3ff411dd,
			0x263482db, 0xdd02b1bf, 0xfa442f10, 0x8bf93ac6, 0x8678ff73, 0xa00ebf59, 0xb82a6e20, 0xd5af5957,
			0xecc92232, 0xcef744cc, 0x51d22b7e, 0x27a5d06c, 0x70372b78, 0xcfe5cffd, 0x7c6899f4, 0x20da5561,
			0x580344e4, 0xb8dc9e2d, 0x2137241e, 0xad2452e7, 0x203a202c, 0x5bce0ce8, 0x37c4635d, 0xe8ae2124,
			0x61c38fb4, 0x37c25c82, 0x01ace634, 0xa20881c2, 0x7ac753ba, 0x150859d6, 0xf47eb24f, 0x6220f8d9,
			0x73191f23, 0xff61c194, 0x4e80c1cd, 0xd43e30b5, 0xfa78064e, 0x08763480, 0x374dc57d, 0x6ae12cab,
			0x56ded794, 0x886bee64, 0x2e039daf, 0x7a1f391d, 0xbf028235, 0xa891a594, 0x7860b87f, 0x727157ed,
			0x3e25ba4a, 0xfbc35e61, 0x1b88e1dd, 0xd3405972, 0x08a7f220, 0x6c4a70e9, 0xe1c79ce3, 0x6d0bbfc8,
			0x1108cb6c, 0x5f7e630c, 0x0d2f7c1d, 0x7f66286f, 0xfbb483a6, 0xfdb72303, 0x493988e8, 0x6aa32bc9,
			0x9566bee4, 0x446180c8, 0x7820054b, 0x0bb1c446, 0x3d3dcae7, 0x6c83d7a6, 0xe663f82e, 0x00000001,
		},
	},
}
