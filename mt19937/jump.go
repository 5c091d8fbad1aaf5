// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mt19937

import "github.com/phetdam/prand/internal/gf2poly"

const (
	// kDeg is the degree of φ, the dimension of the generator's state
	// space over GF(2).
	kDeg = 19937
	// polyWords is the word length of a reduced polynomial.
	polyWords = n
)

// Advance is a precomputed jump operator: the polynomial
// g(t) = t^step mod φ(t) stored as 624 little-endian 32-bit words. An
// Advance may be applied to any number of sources.
type Advance struct {
	poly [polyWords]uint32
}

// NewAdvance returns the jump operator advancing a source by step
// positions. The octal digits of step select precomputed polynomials
// t^(d·8^i) mod φ which are multiplied together, reducing after every
// product. A zero step yields the identity operator. The tables cover
// steps up to 8²¹−1; NewAdvance panics beyond that.
func NewAdvance(step uint64) *Advance {
	var a Advance
	a.poly[0] = 1
	first := true
	var prod [2 * polyWords]uint32
	for i := 0; step != 0; i++ {
		d := step & 7
		step >>= 3
		if d == 0 {
			continue
		}
		if first {
			a.poly = jumpPoly[i][d-1]
			first = false
			continue
		}
		gf2poly.Mul(prod[:], a.poly[:], jumpPoly[i][d-1][:])
		reduceByPhi(prod[:])
		copy(a.poly[:], prod[:polyWords])
	}
	return &a
}

// Jump advances the generator by step positions without producing the
// intervening outputs.
func (src *Source) Jump(step uint64) {
	if step == 0 {
		return
	}
	src.Apply(NewAdvance(step))
}

// Apply advances the generator by the operator's step count using the
// Horner-style state reconstruction of Haramoto et al.: the low bits of the
// next 2·19937 state words are collected into a polynomial, multiplied by
// g(t), and the valid window of the product is the low-bit sequence of the
// jumped stream, from which the full 624-word state is rebuilt.
func (src *Source) Apply(a *Advance) {
	// Collect the low bits of the next 2K raw words, high coefficient
	// first, so that the product below forms the needed correlation with
	// g rather than its convolution.
	cp := *src
	var pm [2 * polyWords]uint32
	for j := 0; j < 2*kDeg; j++ {
		pos := uint(2*kDeg - 1 - j)
		pm[pos>>5] |= (cp.stepWord() & 1) << (pos & 31)
	}

	var ph [3 * polyWords]uint32
	gf2poly.MulUnbalanced(ph[:], pm[:], a.poly[:])

	// Bit q of c is the low bit of the q-th word the jumped generator
	// will produce. The product supplies the first K; the remaining N are
	// extended with the φ recurrence so the backward walk below has
	// enough span to flush its zero-initialized scratch words.
	var c [(kDeg + n + 31) / 32]uint32
	for q := 0; q < kDeg; q++ {
		pos := uint(2*kDeg - 1 - q)
		bit := ph[pos>>5] >> (pos & 31) & 1
		c[uint(q)>>5] |= bit << (uint(q) & 31)
	}
	for q := kDeg; q < kDeg+n; q++ {
		var acc uint32
		for _, t := range &phiBitPos {
			u := uint(q - kDeg + int(t))
			acc ^= c[u>>5] >> (u & 31)
		}
		c[uint(q)>>5] |= (acc & 1) << (uint(q) & 31)
	}

	// Backward reconstruction: walk the twist recurrence from the top of
	// the extended bit sequence down, resolving one word per iteration.
	// Each level shifts residual start-up garbage left one bit, so the
	// final pass over the ring writes fully determined words.
	var mt [n]uint32
	var y0, y1 uint32
	for i := kDeg + 2*n - 2; i >= n-1; i-- {
		y1 = mt[i%n] ^ mt[(i+m)%n]
		u := uint(i - n + 1)
		if c[u>>5]>>(u&31)&1 != 0 {
			y1 = ((y1 ^ matrixA) << 1) | 1
		} else {
			y1 <<= 1
		}
		mt[(i+1)%n] = (y0 & upperMask) | (y1 & lowerMask)
		y0 = y1
	}
	src.mt = mt
	src.mti = 0
}

// reduceByPhi reduces p, a polynomial of up to 1248 words, modulo φ in
// place. Blocks of high bits are folded from the top down; each block is
// no longer than 19937−19314 = 623 bits, the gap between the two highest
// terms of φ, so folding a whole block at once cannot feed back into the
// block itself.
func reduceByPhi(p []uint32) {
	var seg [20]uint32
	for i := 0; i < len(phiBlockPos)-1; i++ {
		lo := int(phiBlockPos[i+1])
		nbits := int(phiBlockPos[i]) - lo
		if !extract(p, lo, nbits, seg[:]) {
			continue
		}
		for _, t := range &phiBitPos {
			xorShifted(p, seg[:], nbits, int(t)+lo-kDeg)
		}
		// Clear the block itself, accounting for the leading term.
		xorShifted(p, seg[:], nbits, lo)
	}
}

// extract copies bits [lo, lo+nbits) of p into seg, reporting whether any
// bit is set. Bits beyond the end of p read as zero.
func extract(p []uint32, lo, nbits int, seg []uint32) bool {
	w := lo >> 5
	s := uint(lo & 31)
	nw := (nbits + 31) / 32
	var nz uint32
	for i := 0; i < nw; i++ {
		var v uint32
		if w+i < len(p) {
			v = p[w+i] >> s
			if s != 0 && w+i+1 < len(p) {
				v |= p[w+i+1] << (32 - s)
			}
		}
		seg[i] = v
	}
	if rem := uint(nbits) & 31; rem != 0 {
		seg[nw-1] &= 1<<rem - 1
	}
	for i := 0; i < nw; i++ {
		nz |= seg[i]
	}
	return nz != 0
}

// xorShifted XORs the nbits-bit segment seg into p starting at bit off.
func xorShifted(p, seg []uint32, nbits, off int) {
	w := off >> 5
	s := uint(off & 31)
	nw := (nbits + 31) / 32
	if s == 0 {
		for i := 0; i < nw; i++ {
			p[w+i] ^= seg[i]
		}
		return
	}
	var carry uint32
	for i := 0; i < nw; i++ {
		v := seg[i]
		p[w+i] ^= v<<s | carry
		carry = v >> (32 - s)
	}
	if carry != 0 {
		p[w+nw] ^= carry
	}
}
