// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Original C program copyright Takuji Nishimura and Makoto Matsumoto 2002.
// http://www.math.sci.hiroshima-u.ac.jp/~m-mat/MT/MT2002/CODES/mt19937ar.c

// Package mt19937 implements the 32 bit Mersenne Twister PRNG with
// polynomial jump-ahead over GF(2).
//
// The generator state is 624 words refreshed in bulk by the twist
// transition; outputs pass through the standard tempering transform.
// Jump-ahead follows Haramoto, Matsumoto, Nishimura, Panneton and L'Ecuyer,
// "Efficient Jump Ahead for F2-Linear Random Number Generators" (2008):
// advancing by s steps multiplies the state by t^s mod φ(t), where φ is the
// degree-19937 characteristic polynomial of the recurrence.
package mt19937

import (
	"encoding/binary"
	"io"
)

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// Source is a 32 bit Mersenne Twister PRNG. A Source is only valid if
// returned by New or if Seed has been called on it.
type Source struct {
	mt  [n]uint32
	mti uint32
}

// New returns a new MT19937 source seeded with the given value.
func New(seed uint64) *Source {
	var src Source
	src.Seed(seed)
	return &src
}

// Seed uses the provided seed value to initialize the generator to a
// deterministic state. Only the lower 32 bits of seed are used. The twist
// cursor is left at the end of the state array so the first draw performs a
// full twist.
func (src *Source) Seed(seed uint64) {
	src.mt[0] = uint32(seed)
	for i := uint32(1); i < n; i++ {
		src.mt[i] = 1812433253*(src.mt[i-1]^(src.mt[i-1]>>30)) + i
	}
	src.mti = n
}

// SeedFromKeys uses the provided seed key value to initialize the
// generator to a deterministic state. It is provided for compatibility
// with C implementations.
func (src *Source) SeedFromKeys(keys []uint32) {
	src.Seed(19650218)
	i := uint32(1)
	j := uint32(0)
	k := uint32(n)
	if k <= uint32(len(keys)) {
		k = uint32(len(keys))
	}
	for ; k != 0; k-- {
		src.mt[i] = (src.mt[i] ^ ((src.mt[i-1] ^ (src.mt[i-1] >> 30)) * 1664525)) + keys[j] + j // Non linear.
		i++
		j++
		if i >= n {
			src.mt[0] = src.mt[n-1]
			i = 1
		}
		if j >= uint32(len(keys)) {
			j = 0
		}
	}
	for k = n - 1; k != 0; k-- {
		src.mt[i] = (src.mt[i] ^ ((src.mt[i-1] ^ (src.mt[i-1] >> 30)) * 1566083941)) - i // Non linear.
		i++
		if i >= n {
			src.mt[0] = src.mt[n-1]
			i = 1
		}
	}
	src.mt[0] = 0x80000000 // MSB is 1; assuring non-zero initial array.
}

// twist refreshes all 624 state words and rewinds the cursor.
func (src *Source) twist() {
	mag01 := [2]uint32{0, matrixA}

	var y uint32
	var kk int
	for ; kk < n-m; kk++ {
		y = (src.mt[kk] & upperMask) | (src.mt[kk+1] & lowerMask)
		src.mt[kk] = src.mt[kk+m] ^ (y >> 1) ^ mag01[y&0x1]
	}
	for ; kk < n-1; kk++ {
		y = (src.mt[kk] & upperMask) | (src.mt[kk+1] & lowerMask)
		src.mt[kk] = src.mt[kk+(m-n)] ^ (y >> 1) ^ mag01[y&0x1]
	}
	y = (src.mt[n-1] & upperMask) | (src.mt[0] & lowerMask)
	src.mt[n-1] = src.mt[m-1] ^ (y >> 1) ^ mag01[y&0x1]

	src.mti = 0
}

// stepWord advances the generator by one position and returns the raw,
// untempered state word.
func (src *Source) stepWord() uint32 {
	if src.mti >= n {
		src.twist()
	}
	y := src.mt[src.mti]
	src.mti++
	return y
}

// Uint32 returns a pseudo-random 32-bit unsigned integer as a uint32.
func (src *Source) Uint32() uint32 {
	y := src.stepWord()

	// Tempering.
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}

// Uint64 returns a pseudo-random 64-bit unsigned integer as a uint64.
// It makes use of two calls to Uint32 placing the first result in the
// upper bits and the second result in the lower bits of the returned
// value.
func (src *Source) Uint64() uint64 {
	h := uint64(src.Uint32())
	l := uint64(src.Uint32())
	return h<<32 | l
}

// Next returns the next output of the generator widened to a uint64.
// Outputs cover [0, 2³²−1].
func (src *Source) Next() uint64 {
	return uint64(src.Uint32())
}

// MarshalBinary returns the binary representation of the current state of the generator.
func (src *Source) MarshalBinary() ([]byte, error) {
	var buf [(n + 1) * 4]byte
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(buf[i*4:(i+1)*4], src.mt[i])
	}
	binary.BigEndian.PutUint32(buf[n*4:], src.mti)
	return buf[:], nil
}

// UnmarshalBinary sets the state of the generator to the state represented in data.
func (src *Source) UnmarshalBinary(data []byte) error {
	if len(data) < (n+1)*4 {
		return io.ErrUnexpectedEOF
	}
	for i := 0; i < n; i++ {
		src.mt[i] = binary.BigEndian.Uint32(data[i*4 : (i+1)*4])
	}
	src.mti = binary.BigEndian.Uint32(data[n*4:])
	return nil
}
