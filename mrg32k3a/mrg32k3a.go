// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mrg32k3a implements L'Ecuyer's MRG32k3a combined multiple
// recursive PRNG with matrix jump-ahead.
//
// The generator combines two order-3 linear recurrences over the prime
// moduli m₁ = 2³²−209 and m₂ = 2³²−22853. Advancing a component by s steps
// multiplies its state vector by the s-th power of the recurrence's
// companion matrix, so arbitrary jumps reduce to modular 3×3 matrix
// products composed from precomputed powers.
package mrg32k3a

import (
	"encoding/binary"
	"io"
)

const (
	m1 = 4294967087 // 2³²−209
	m2 = 4294944443 // 2³²−22853

	a12  = 1403580
	a13n = 810728 // −a₁₃
	a21  = 527612
	a23n = 1370589 // −a₂₃

	// Additive compensations keeping the recurrence intermediates
	// nonnegative in unsigned arithmetic.
	add1 = m1 * a13n
	add2 = m2 * a23n
)

// Source is an MRG32k3a PRNG. A Source is only valid if returned by New or
// if Seed has been called on it.
type Source struct {
	s1 [3]uint64
	s2 [3]uint64
}

// New returns a new MRG32k3a source seeded with the given value.
func New(seed uint64) *Source {
	var src Source
	src.Seed(seed)
	return &src
}

// Seed uses the provided seed value to initialize the generator to a
// deterministic state. Only the lower 32 bits of seed are used: six
// iterations of the LCG x ← 69069·x+1 (mod 2³²) populate the two state
// vectors, reduced by the component moduli.
func (src *Source) Seed(seed uint64) {
	x := uint32(seed)
	for i := 0; i < 3; i++ {
		x = 69069*x + 1
		src.s1[i] = uint64(x) % m1
	}
	for i := 0; i < 3; i++ {
		x = 69069*x + 1
		src.s2[i] = uint64(x) % m2
	}
}

// Next returns the next output of the generator. Outputs lie in
// [1, m₁]; m₁ itself is returned only when the two component values are
// equal.
func (src *Source) Next() uint64 {
	p1 := (a12*src.s1[1] + add1 - a13n*src.s1[0]) % m1
	src.s1[0], src.s1[1], src.s1[2] = src.s1[1], src.s1[2], p1

	p2 := (a21*src.s2[2] + add2 - a23n*src.s2[0]) % m2
	src.s2[0], src.s2[1], src.s2[2] = src.s2[1], src.s2[2], p2

	if p1 <= p2 {
		return p1 - p2 + m1
	}
	return p1 - p2
}

// MarshalBinary returns the binary representation of the current state of the generator.
func (src *Source) MarshalBinary() ([]byte, error) {
	var buf [48]byte
	for i, v := range src.s1 {
		binary.BigEndian.PutUint64(buf[i*8:], v)
	}
	for i, v := range src.s2 {
		binary.BigEndian.PutUint64(buf[24+i*8:], v)
	}
	return buf[:], nil
}

// UnmarshalBinary sets the state of the generator to the state represented in data.
func (src *Source) UnmarshalBinary(data []byte) error {
	if len(data) < 48 {
		return io.ErrUnexpectedEOF
	}
	for i := range src.s1 {
		src.s1[i] = binary.BigEndian.Uint64(data[i*8:])
	}
	for i := range src.s2 {
		src.s2[i] = binary.BigEndian.Uint64(data[24+i*8:])
	}
	return nil
}
