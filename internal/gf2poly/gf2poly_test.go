// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf2poly

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mulWordNaive is the bit-at-a-time reference for the word kernel.
func mulWordNaive(a, b uint32) uint64 {
	var r uint64
	for i := uint(0); i < 32; i++ {
		if a>>i&1 != 0 {
			r ^= uint64(b) << i
		}
	}
	return r
}

// mulNaive is the schoolbook reference for Mul.
func mulNaive(a, b []uint32) []uint32 {
	dst := make([]uint32, 2*len(a))
	for i := range a {
		for j := range b {
			p := mulWordNaive(a[i], b[j])
			dst[i+j] ^= uint32(p)
			dst[i+j+1] ^= uint32(p >> 32)
		}
	}
	return dst
}

// words returns deterministic pseudo-random test words from a splitmix64
// stream.
func words(n int, seed uint64) []uint32 {
	w := make([]uint32, n)
	s := seed
	for i := range w {
		s += 0x9e3779b97f4a7c15
		z := s
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		w[i] = uint32(z ^ (z >> 31))
	}
	return w
}

func TestMulWord(t *testing.T) {
	t.Parallel()
	cases := [][2]uint32{
		{0, 0}, {1, 1}, {0xffffffff, 0xffffffff}, {0x80000000, 0x80000000},
		{0x9908b0df, 0x9d2c5680}, {3, 0xefc60000}, {0x12345678, 0x9abcdef0},
	}
	for _, c := range cases {
		got := MulWord(c[0], c[1])
		want := mulWordNaive(c[0], c[1])
		if got != want {
			t.Errorf("unexpected product for %#x×%#x: got:%#x want:%#x", c[0], c[1], got, want)
		}
	}
}

func TestMul(t *testing.T) {
	t.Parallel()
	// Every size through 64 exercises all the unrolled kernels and both
	// parities of the recursive split; the larger sizes cover the
	// operand lengths used by the MT19937 jump.
	sizes := []int{1, 2, 3, 4, 5, 6}
	for n := 7; n <= 64; n++ {
		sizes = append(sizes, n)
	}
	sizes = append(sizes, 311, 312, 623, 624)
	for _, n := range sizes {
		a := words(n, uint64(n)*2654435761)
		b := words(n, uint64(n)*40503+1)
		got := make([]uint32, 2*n)
		Mul(got, a, b)
		want := mulNaive(a, b)
		if !cmp.Equal(got, want) {
			t.Errorf("unexpected product for size %d:\n%s", n, cmp.Diff(got, want))
		}
	}
}

func TestMulSparse(t *testing.T) {
	t.Parallel()
	// Operands with single set bits make misplaced partial products easy
	// to localize.
	for n := 7; n <= 13; n++ {
		for _, bit := range []int{0, 31, 32, 32*n - 1} {
			a := make([]uint32, n)
			b := make([]uint32, n)
			a[bit>>5] = 1 << (bit & 31)
			b[0] = 1
			got := make([]uint32, 2*n)
			Mul(got, a, b)
			want := mulNaive(a, b)
			if !cmp.Equal(got, want) {
				t.Errorf("unexpected product for size %d bit %d:\n%s", n, bit, cmp.Diff(got, want))
			}
		}
	}
}

func TestMulUnbalanced(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 5, 16, 33, 624} {
		long := words(2*n, uint64(n)*7919)
		short := words(n, uint64(n)*104729)
		got := make([]uint32, 3*n)
		MulUnbalanced(got, long, short)

		// Reference: schoolbook over the padded operands, truncated to
		// the 3n words the product can occupy.
		pad := make([]uint32, 2*n)
		copy(pad, short)
		want := mulNaive(long, pad)[:3*n]
		if !cmp.Equal(got, want) {
			t.Errorf("unexpected product for size 2×%d by %d:\n%s", n, n, cmp.Diff(got, want))
		}
	}
}
