// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prand

import (
	"fmt"

	"github.com/phetdam/prand/mrg32k3a"
	"github.com/phetdam/prand/mt19937"
)

// Backend identifies a generator implementation.
type Backend int

const (
	// MRG32k3a is L'Ecuyer's combined multiple recursive generator.
	MRG32k3a Backend = iota
	// MT19937 is the 32 bit Mersenne Twister.
	MT19937
)

func (b Backend) String() string {
	switch b {
	case MRG32k3a:
		return "MRG32k3a"
	case MT19937:
		return "MT19937"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

const (
	// MaxStep is the largest single jump supported by the precomputed
	// tables, 8²¹−1. It coincides with the largest value representable
	// in 63 bits, so the bound is kept explicit for clarity.
	MaxStep uint64 = 1<<63 - 1

	// DefaultSeed replaces a zero seed.
	DefaultSeed uint64 = 1
)

// mrgMax is the documented largest MRG32k3a output, m₁−1.
const mrgMax = 4294967086

// Positive-double scale factors per backend.
const (
	mrgPosScale = 1.0 / 4294967089.0 // 1/(m₁+2)
	mtPosScale  = 1.0 / 4294967297.0 // 1/(2³²+1)
)

// Generator owns a set of parallel streams of one backend. Stream states
// are created at initialization and stream indices are stable for the
// Generator's lifetime. Methods that take a stream index panic if it is
// out of range.
type Generator struct {
	backend  Backend
	mrg      []*mrg32k3a.Source // populated when backend == MRG32k3a
	mt       []*mt19937.Source  // populated when backend == MT19937
	posScale float64
}

// New returns a Generator with max(nstreams, 1) streams of the given
// backend. Stream 0 is seeded from seed; stream i is stream i−1 advanced
// by step positions, with the jump operator computed once and reused. A
// zero seed is replaced by DefaultSeed and recorded in st as the
// WarnSeedDefaulted warning.
//
// New returns nil if st already holds an error, if step exceeds MaxStep,
// or if backend is unknown.
func New(backend Backend, seed uint64, nstreams int, step uint64, st *Status) *Generator {
	if st.shortCircuit() {
		return nil
	}
	if step > MaxStep {
		st.record(ErrStepTooLarge)
		return nil
	}
	outcome := OK
	if seed == 0 {
		seed = DefaultSeed
		outcome = WarnSeedDefaulted
	}
	if nstreams < 1 {
		nstreams = 1
	}

	g := &Generator{backend: backend}
	switch backend {
	case MRG32k3a:
		g.posScale = mrgPosScale
		g.mrg = make([]*mrg32k3a.Source, nstreams)
		g.mrg[0] = mrg32k3a.New(seed)
		if nstreams > 1 {
			adv := mrg32k3a.NewAdvance(step)
			for i := 1; i < nstreams; i++ {
				next := *g.mrg[i-1]
				next.Apply(adv)
				g.mrg[i] = &next
			}
		}
	case MT19937:
		g.posScale = mtPosScale
		g.mt = make([]*mt19937.Source, nstreams)
		g.mt[0] = mt19937.New(seed)
		if nstreams > 1 {
			adv := mt19937.NewAdvance(step)
			for i := 1; i < nstreams; i++ {
				next := *g.mt[i-1]
				next.Apply(adv)
				g.mt[i] = &next
			}
		}
	default:
		st.record(ErrUndefinedBackend)
		return nil
	}
	st.record(outcome)
	return g
}

// Backend returns the generator's backend identity.
func (g *Generator) Backend() Backend { return g.backend }

// Streams returns the number of streams.
func (g *Generator) Streams() int {
	if g.backend == MT19937 {
		return len(g.mt)
	}
	return len(g.mrg)
}

// Min returns the smallest integer output of the backend.
func (g *Generator) Min() uint64 { return 0 }

// Max returns the nominal largest integer output of the backend: 2³²−1
// for MT19937 and m₁−1 for MRG32k3a. MRG32k3a returns m₁ in the case where
// its two component values are equal.
func (g *Generator) Max() uint64 {
	if g.backend == MT19937 {
		return 1<<32 - 1
	}
	return mrgMax
}

func (g *Generator) check(i int) {
	if i < 0 || i >= g.Streams() {
		panic(fmt.Sprintf("prand: stream index %d out of range [0, %d)", i, g.Streams()))
	}
}

// Next returns the next integer output of stream i.
func (g *Generator) Next(i int) uint64 {
	g.check(i)
	if g.backend == MT19937 {
		return g.mt[i].Next()
	}
	return g.mrg[i].Next()
}

// Float64 returns the next output of stream i as a double in [0, 1),
// computed as Next(i)·2⁻³².
func (g *Generator) Float64(i int) float64 {
	return float64(g.Next(i)) * 0x1p-32
}

// Float64Pos returns the next output of stream i as a double in (0, 1),
// computed as (Next(i)+1)/(m₁+2) for MRG32k3a and (Next(i)+1)/(2³²+1)
// for MT19937.
func (g *Generator) Float64Pos(i int) float64 {
	return float64(g.Next(i)+1) * g.posScale
}

// Jump advances stream i by step positions. A zero step is a no-op; a
// step above MaxStep records ErrStepTooLarge and leaves the stream
// unchanged.
func (g *Generator) Jump(i int, step uint64, st *Status) {
	g.check(i)
	if st.shortCircuit() {
		return
	}
	if step > MaxStep {
		st.record(ErrStepTooLarge)
		return
	}
	if step != 0 {
		if g.backend == MT19937 {
			g.mt[i].Jump(step)
		} else {
			g.mrg[i].Jump(step)
		}
	}
	st.record(OK)
}

// JumpAll advances every stream by step positions. The jump operator is
// computed once and applied to each stream.
func (g *Generator) JumpAll(step uint64, st *Status) {
	if st.shortCircuit() {
		return
	}
	if step > MaxStep {
		st.record(ErrStepTooLarge)
		return
	}
	if step != 0 {
		if g.backend == MT19937 {
			adv := mt19937.NewAdvance(step)
			for _, src := range g.mt {
				src.Apply(adv)
			}
		} else {
			adv := mrg32k3a.NewAdvance(step)
			for _, src := range g.mrg {
				src.Apply(adv)
			}
		}
	}
	st.record(OK)
}

// Reset re-seeds stream i and advances it by step positions from the
// freshly seeded state. A zero seed is replaced by DefaultSeed with the
// WarnSeedDefaulted warning.
func (g *Generator) Reset(i int, seed, step uint64, st *Status) {
	g.check(i)
	if st.shortCircuit() {
		return
	}
	if step > MaxStep {
		st.record(ErrStepTooLarge)
		return
	}
	outcome := OK
	if seed == 0 {
		seed = DefaultSeed
		outcome = WarnSeedDefaulted
	}
	if g.backend == MT19937 {
		g.mt[i].Seed(seed)
		g.mt[i].Jump(step)
	} else {
		g.mrg[i].Seed(seed)
		g.mrg[i].Jump(step)
	}
	st.record(outcome)
}

// ResetAll re-seeds stream 0 and rebuilds streams 1…N−1 as at
// initialization, each advanced from its predecessor by step positions.
// The stream count and backend do not change. A zero seed is replaced by
// DefaultSeed with the WarnSeedDefaulted warning.
func (g *Generator) ResetAll(seed, step uint64, st *Status) {
	if st.shortCircuit() {
		return
	}
	if step > MaxStep {
		st.record(ErrStepTooLarge)
		return
	}
	outcome := OK
	if seed == 0 {
		seed = DefaultSeed
		outcome = WarnSeedDefaulted
	}
	if g.backend == MT19937 {
		g.mt[0].Seed(seed)
		if len(g.mt) > 1 {
			adv := mt19937.NewAdvance(step)
			for i := 1; i < len(g.mt); i++ {
				*g.mt[i] = *g.mt[i-1]
				g.mt[i].Apply(adv)
			}
		}
	} else {
		g.mrg[0].Seed(seed)
		if len(g.mrg) > 1 {
			adv := mrg32k3a.NewAdvance(step)
			for i := 1; i < len(g.mrg); i++ {
				*g.mrg[i] = *g.mrg[i-1]
				g.mrg[i].Apply(adv)
			}
		}
	}
	st.record(outcome)
}
