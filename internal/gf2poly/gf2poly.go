// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf2poly provides carry-less polynomial multiplication over GF(2).
//
// Polynomials are ordered sequences of little-endian 32-bit words; bit k of
// a polynomial is the coefficient of t^k, stored in word k/32 at position
// k%32. Addition over GF(2) is XOR, so products are accumulated with XOR
// and no carries propagate between words.
package gf2poly

// MulWord is the word-level carry-less multiply primitive mapping a pair of
// 32-bit operands to their 64-bit GF(2) product. It is a package variable
// so targets with a carry-less multiply instruction can install a faster
// implementation.
var MulWord func(a, b uint32) uint64 = mulWordGeneric

var mulMask = [2]uint64{0, 0xFFFFFFFFFFFFFFFF}

func mulWordGeneric(a, b uint32) uint64 {
	var r uint64
	w := uint64(b)
	for i := uint(0); i < 32; i++ {
		r ^= (w << i) & mulMask[(a>>i)&1]
	}
	return r
}

// xorAt XORs the 64-bit GF(2) product p into dst at word offset i.
func xorAt(dst []uint32, i int, p uint64) {
	dst[i] ^= uint32(p)
	dst[i+1] ^= uint32(p >> 32)
}

// mul1 writes a[0]*b[0] to dst[0:2].
func mul1(dst, a, b []uint32) {
	p := MulWord(a[0], b[0])
	dst[0] = uint32(p)
	dst[1] = uint32(p >> 32)
}

// mul2 is the 2-word Karatsuba kernel: three word products in place of four.
func mul2(dst, a, b []uint32) {
	lo := MulWord(a[0], b[0])
	hi := MulWord(a[1], b[1])
	mid := MulWord(a[0]^a[1], b[0]^b[1]) ^ lo ^ hi
	dst[0] = uint32(lo)
	dst[1] = uint32(lo>>32) ^ uint32(mid)
	dst[2] = uint32(hi) ^ uint32(mid>>32)
	dst[3] = uint32(hi >> 32)
}

// mul3 is the 3-word 3-way Karatsuba kernel: six word products.
func mul3(dst, a, b []uint32) {
	p0 := MulWord(a[0], b[0])
	p1 := MulWord(a[1], b[1])
	p2 := MulWord(a[2], b[2])
	q01 := MulWord(a[0]^a[1], b[0]^b[1]) ^ p0 ^ p1
	q02 := MulWord(a[0]^a[2], b[0]^b[2]) ^ p0 ^ p2
	q12 := MulWord(a[1]^a[2], b[1]^b[2]) ^ p1 ^ p2
	for i := range dst[:6] {
		dst[i] = 0
	}
	xorAt(dst, 0, p0)
	xorAt(dst, 1, q01)
	xorAt(dst, 2, p1^q02)
	xorAt(dst, 3, q12)
	xorAt(dst, 4, p2)
}

// mul46 handles sizes 4 and 6 by a 2-way split over the halved kernels.
func mul46(dst, a, b []uint32, n int) {
	h := n / 2
	var lo, hi, mid [8]uint32
	var sa, sb [3]uint32
	half := func(d, x, y []uint32) {
		if h == 2 {
			mul2(d, x, y)
		} else {
			mul3(d, x, y)
		}
	}
	half(lo[:], a[:h], b[:h])
	half(hi[:], a[h:n], b[h:n])
	for i := 0; i < h; i++ {
		sa[i] = a[i] ^ a[h+i]
		sb[i] = b[i] ^ b[h+i]
	}
	half(mid[:], sa[:h], sb[:h])
	for i := 0; i < 2*h; i++ {
		mid[i] ^= lo[i] ^ hi[i]
	}
	for i := 0; i < n; i++ {
		dst[i] = lo[i]
		dst[n+i] = hi[i]
	}
	for i := 0; i < 2*h; i++ {
		dst[h+i] ^= mid[i]
	}
}

// mul5 is the 5-word 3-way kernel over parts of sizes 2, 2 and 1.
func mul5(dst, a, b []uint32) {
	var p0, p1 [4]uint32
	mul2(p0[:], a[0:2], b[0:2])
	mul2(p1[:], a[2:4], b[2:4])
	p2 := MulWord(a[4], b[4])

	var sa, sb [2]uint32
	var q01, q02, q12 [4]uint32
	sa[0], sa[1] = a[0]^a[2], a[1]^a[3]
	sb[0], sb[1] = b[0]^b[2], b[1]^b[3]
	mul2(q01[:], sa[:], sb[:])
	sa[0], sa[1] = a[0]^a[4], a[1]
	sb[0], sb[1] = b[0]^b[4], b[1]
	mul2(q02[:], sa[:], sb[:])
	sa[0], sa[1] = a[2]^a[4], a[3]
	sb[0], sb[1] = b[2]^b[4], b[3]
	mul2(q12[:], sa[:], sb[:])

	for i := range dst[:10] {
		dst[i] = 0
	}
	for i := 0; i < 4; i++ {
		dst[i] ^= p0[i]
		dst[2+i] ^= q01[i] ^ p0[i] ^ p1[i]
		dst[4+i] ^= p1[i] ^ q02[i] ^ p0[i]
		dst[6+i] ^= q12[i] ^ p1[i]
	}
	xorAt(dst, 4, p2)
	xorAt(dst, 6, p2)
	xorAt(dst, 8, p2)
}

// Mul computes the product of the n-word polynomials a and b into dst,
// which must hold 2n words. a and b must not alias dst.
//
// Sizes one through six use unrolled kernels; larger sizes recurse by
// Karatsuba with an uneven split when n is odd, so that the high parts are
// one word shorter than the low parts.
func Mul(dst, a, b []uint32) {
	n := len(a)
	switch n {
	case 0:
		return
	case 1:
		mul1(dst, a, b)
		return
	case 2:
		mul2(dst, a, b)
		return
	case 3:
		mul3(dst, a, b)
		return
	case 4, 6:
		mul46(dst, a, b, n)
		return
	case 5:
		mul5(dst, a, b)
		return
	}

	n1 := (n + 1) / 2 // low part
	n2 := n - n1      // high part, n2 == n1 or n1-1

	lo := make([]uint32, 2*n1)
	hi := make([]uint32, 2*n1)
	mid := make([]uint32, 2*n1)
	sa := make([]uint32, n1)
	sb := make([]uint32, n1)

	Mul(lo, a[:n1], b[:n1])
	if n2 == n1 {
		Mul(hi, a[n1:], b[n1:])
	} else {
		// Pad the short high halves by one zero word.
		pa := make([]uint32, n1)
		pb := make([]uint32, n1)
		copy(pa, a[n1:])
		copy(pb, b[n1:])
		Mul(hi, pa, pb)
	}
	copy(sa, a[:n1])
	copy(sb, b[:n1])
	for i := 0; i < n2; i++ {
		sa[i] ^= a[n1+i]
		sb[i] ^= b[n1+i]
	}
	Mul(mid, sa, sb)
	for i := range mid {
		mid[i] ^= lo[i] ^ hi[i]
	}

	for i := range dst[:2*n] {
		dst[i] = 0
	}
	copy(dst[:2*n1], lo)
	for i := 0; i < 2*n2; i++ {
		dst[2*n1+i] ^= hi[i]
	}
	for i := range mid {
		dst[n1+i] ^= mid[i]
	}
}

// MulUnbalanced computes the product of the 2n-word polynomial long and the
// n-word polynomial short into dst, which must hold 3n words. The long
// operand is split into two n-word halves multiplied separately, with the
// overlapping middle n words combined by XOR.
func MulUnbalanced(dst, long, short []uint32) {
	n := len(short)
	lo := make([]uint32, 2*n)
	hi := make([]uint32, 2*n)
	Mul(lo, long[:n], short)
	Mul(hi, long[n:2*n], short)
	copy(dst[:2*n], lo)
	for i := n; i < 3*n; i++ {
		dst[i] = hi[i-n]
	}
	for i := 0; i < n; i++ {
		dst[n+i] = lo[n+i] ^ hi[i]
	}
}
