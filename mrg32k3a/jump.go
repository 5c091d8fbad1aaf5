// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrg32k3a

// Advance is a precomputed jump operator: one power of the companion
// matrix per component. An Advance may be applied to any number of
// sources.
type Advance struct {
	t1 [3][3]uint64
	t2 [3][3]uint64
}

// NewAdvance returns the jump operator advancing a source by step
// positions. The octal digits of step select precomputed matrix powers
// A^(d·8^i) mod mₖ which are multiplied together. A zero step yields the
// identity operator. The tables cover steps up to 8²¹−1; NewAdvance
// panics beyond that.
func NewAdvance(step uint64) *Advance {
	a := Advance{
		t1: [3][3]uint64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		t2: [3][3]uint64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	}
	first := true
	for i := 0; step != 0; i++ {
		d := step & 7
		step >>= 3
		if d == 0 {
			continue
		}
		if first {
			a.t1 = jumpMat1[i][d-1]
			a.t2 = jumpMat2[i][d-1]
			first = false
			continue
		}
		a.t1 = matMul(&jumpMat1[i][d-1], &a.t1, m1)
		a.t2 = matMul(&jumpMat2[i][d-1], &a.t2, m2)
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

// Apply advances the generator by the operator's step count.
func (src *Source) Apply(a *Advance) {
	src.s1 = matVec(&a.t1, &src.s1, m1)
	src.s2 = matVec(&a.t2, &src.s2, m2)
}

// matMul returns a·b mod m. Each scalar product is reduced before summing
// so no intermediate exceeds 64 bits.
func matMul(a, b *[3][3]uint64, m uint64) [3][3]uint64 {
	var r [3][3]uint64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = (a[i][0]*b[0][j]%m + a[i][1]*b[1][j]%m + a[i][2]*b[2][j]%m) % m
		}
	}
	return r
}

// matVec returns a·v mod m.
func matVec(a *[3][3]uint64, v *[3]uint64, m uint64) [3]uint64 {
	var r [3]uint64
	for i := 0; i < 3; i++ {
		r[i] = (a[i][0]*v[0]%m + a[i][1]*v[1]%m + a[i][2]*v[2]%m) % m
	}
	return r
}
