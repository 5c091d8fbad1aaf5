// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prand provides pseudo-random number sequences in multiple
// parallel streams drawn from the same underlying sequence as a
// single-stream generator.
//
// A Generator owns N stream states of one backend, MRG32k3a or MT19937.
// Stream 0 is seeded directly; stream i starts where stream i−1 would be
// after step further draws, via the backend's jump-ahead. Concatenating the
// first step outputs of streams 0…N−1 therefore reproduces the first
// N·step outputs of a single-stream generator with the same seed, so
// massively parallel Monte-Carlo runs are bit-for-bit reproducible
// regardless of how work is divided among streams.
//
// Jump-ahead is O(polylog step): matrix exponentiation modulo two primes
// for MRG32k3a, and polynomial arithmetic over GF(2) modulo the generator's
// degree-19937 characteristic polynomial for MT19937. Both compose
// precomputed operators selected by the octal digits of the step count.
//
// The package schedules no goroutines and never blocks. Distinct streams of
// one Generator may be used from distinct goroutines concurrently provided
// no JumpAll or ResetAll is in flight; operations on a single stream
// require external synchronization.
package prand // import "github.com/phetdam/prand"
