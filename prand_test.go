// Copyright ©2026 The Prand Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prand_test

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/phetdam/prand"
)

var backends = []prand.Backend{prand.MRG32k3a, prand.MT19937}

func TestMultiStreamConcordance(t *testing.T) {
	t.Parallel()
	for _, backend := range backends {
		for _, seed := range []uint64{1, 42, 0xFFFFFFFF} {
			for _, nstreams := range []int{1, 4, 5} {
				for _, step := range []uint64{1, 97, 1000} {
					multi := prand.New(backend, seed, nstreams, step, nil)
					single := prand.New(backend, seed, 1, 0, nil)
					for i := 0; i < nstreams; i++ {
						for j := uint64(0); j < step; j++ {
							got := multi.Next(i)
							want := single.Next(0)
							if got != want {
								t.Errorf("%v seed=%d n=%d step=%d: stream %d output %d: got:%d want:%d",
									backend, seed, nstreams, step, i, j, got, want)
								return
							}
						}
					}
				}
			}
		}
	}
}

func TestStreamStartPositions(t *testing.T) {
	t.Parallel()
	// First output of stream i with step 100000 equals the single-stream
	// output at position i·100000. Values cross-checked against an
	// independent implementation.
	tests := []struct {
		backend prand.Backend
		want    []uint64
	}{
		{prand.MT19937, []uint64{1791095845, 1910230832, 1367780519, 2518945271, 2669937295}},
		{prand.MRG32k3a, []uint64{4002669113, 699827751, 2916834981, 3553049080, 744852110}},
	}
	for _, test := range tests {
		g := prand.New(test.backend, 1, len(test.want), 100000, nil)
		for i, want := range test.want {
			if got := g.Next(i); got != want {
				t.Errorf("%v: unexpected first output of stream %d: got:%d want:%d", test.backend, i, got, want)
			}
		}
	}
}

func TestFirstDouble(t *testing.T) {
	t.Parallel()
	g := prand.New(prand.MT19937, 1, 1, 0, nil)
	got := g.Float64(0)
	want := 1791095845 * 0x1p-32
	if !scalar.EqualWithinAbs(got, want, 1e-15) {
		t.Errorf("unexpected first double: got:%.17g want:%.17g", got, want)
	}
}

func TestOutputRanges(t *testing.T) {
	t.Parallel()
	for _, backend := range backends {
		g := prand.New(backend, 12345, 2, 10, nil)
		if g.Min() != 0 {
			t.Errorf("%v: unexpected Min: got:%d want:0", backend, g.Min())
		}
		r := prand.New(backend, 12345, 2, 10, nil)
		for i := 0; i < 2000; i++ {
			if v := g.Next(0); v > g.Max() {
				t.Fatalf("%v: integer output %d above Max %d", backend, v, g.Max())
			}
			if f := r.Float64(0); f < 0 || f >= 1 {
				t.Fatalf("%v: Float64 output %g outside [0, 1)", backend, f)
			}
			if f := r.Float64Pos(1); f <= 0 || f >= 1 {
				t.Fatalf("%v: Float64Pos output %g outside (0, 1)", backend, f)
			}
		}
	}
}

func TestSeedZeroDefaults(t *testing.T) {
	t.Parallel()
	for _, backend := range backends {
		var st prand.Status
		zero := prand.New(backend, 0, 2, 10, &st)
		if got := st.Code(); got != prand.WarnSeedDefaulted {
			t.Errorf("%v: unexpected status for zero seed: got:%v want:%v", backend, got, prand.WarnSeedDefaulted)
		}
		if zero == nil {
			t.Fatalf("%v: seed-zero warning must leave the handle valid", backend)
		}
		if err := st.Err(); err != nil {
			t.Errorf("%v: warning reported as error: %v", backend, err)
		}
		one := prand.New(backend, 1, 2, 10, nil)
		for i := 0; i < 2; i++ {
			for j := 0; j < 100; j++ {
				got, want := zero.Next(i), one.Next(i)
				if got != want {
					t.Errorf("%v: zero-seed sequence diverges from seed 1 at stream %d output %d", backend, i, j)
				}
			}
		}
	}
}

func TestStepTooLarge(t *testing.T) {
	t.Parallel()
	for _, backend := range backends {
		var st prand.Status
		if g := prand.New(backend, 1, 2, prand.MaxStep+1, &st); g != nil {
			t.Errorf("%v: oversized init step must yield a nil handle", backend)
		}
		if got := st.Code(); got != prand.ErrStepTooLarge {
			t.Errorf("%v: unexpected status: got:%v want:%v", backend, got, prand.ErrStepTooLarge)
		}

		st.Clear()
		g := prand.New(backend, 1, 1, 0, &st)
		ref := prand.New(backend, 1, 1, 0, nil)
		g.Jump(0, prand.MaxStep+1, &st)
		if got := st.Code(); got != prand.ErrStepTooLarge {
			t.Errorf("%v: unexpected status after oversized jump: got:%v want:%v", backend, got, prand.ErrStepTooLarge)
		}
		st.Clear()
		for j := 0; j < 100; j++ {
			got, want := g.Next(0), ref.Next(0)
			if got != want {
				t.Fatalf("%v: oversized jump altered the stream state", backend)
			}
		}
	}
}

func TestStatusShortCircuit(t *testing.T) {
	t.Parallel()
	var st prand.Status
	if g := prand.New(prand.Backend(99), 1, 1, 0, &st); g != nil {
		t.Fatal("undefined backend must yield a nil handle")
	}
	if got := st.Code(); got != prand.ErrUndefinedBackend {
		t.Fatalf("unexpected status: got:%v want:%v", st.Code(), prand.ErrUndefinedBackend)
	}

	// Any fallible call through an error-holding slot is a no-op.
	if g := prand.New(prand.MT19937, 1, 1, 0, &st); g != nil {
		t.Error("init through an error-holding status must not proceed")
	}
	g := prand.New(prand.MT19937, 1, 1, 0, nil)
	ref := prand.New(prand.MT19937, 1, 1, 0, nil)
	g.Jump(0, 10, &st)
	g.JumpAll(10, &st)
	g.Reset(0, 9, 9, &st)
	g.ResetAll(9, 9, &st)
	if got := st.Code(); got != prand.ErrUndefinedBackend {
		t.Errorf("status rewritten by short-circuited calls: got:%v", st.Code())
	}
	for j := 0; j < 100; j++ {
		if g.Next(0) != ref.Next(0) {
			t.Fatal("short-circuited calls altered the stream state")
		}
	}

	st.Clear()
	if got := st.Code(); got != prand.OK {
		t.Errorf("unexpected status after Clear: got:%v want:%v", st.Code(), prand.OK)
	}
	g.Jump(0, 10, &st)
	ref.Jump(0, 10, nil)
	if g.Next(0) != ref.Next(0) {
		t.Error("cleared status must let calls proceed")
	}
}

func TestJumpAll(t *testing.T) {
	t.Parallel()
	for _, backend := range backends {
		all := prand.New(backend, 3, 4, 1000, nil)
		each := prand.New(backend, 3, 4, 1000, nil)
		all.JumpAll(777, nil)
		for i := 0; i < 4; i++ {
			each.Jump(i, 777, nil)
		}
		for i := 0; i < 4; i++ {
			for j := 0; j < 50; j++ {
				if all.Next(i) != each.Next(i) {
					t.Errorf("%v: JumpAll diverges from per-stream jumps at stream %d", backend, i)
					break
				}
			}
		}
	}
}

func TestReset(t *testing.T) {
	t.Parallel()
	for _, backend := range backends {
		g := prand.New(backend, 3, 2, 50, nil)
		g.Next(1)
		g.Reset(1, 77, 123, nil)

		want := prand.New(backend, 77, 1, 0, nil)
		want.Jump(0, 123, nil)
		for j := 0; j < 100; j++ {
			got := g.Next(1)
			if got != want.Next(0) {
				t.Errorf("%v: reset stream diverges from fresh seeded-and-jumped stream at output %d", backend, j)
				break
			}
		}
	}
}

func TestResetAll(t *testing.T) {
	t.Parallel()
	for _, backend := range backends {
		g := prand.New(backend, 3, 3, 50, nil)
		for i := 0; i < 3; i++ {
			g.Next(i)
		}
		g.ResetAll(9, 60, nil)

		want := prand.New(backend, 9, 3, 60, nil)
		if g.Streams() != want.Streams() {
			t.Fatalf("%v: ResetAll changed the stream count", backend)
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 60; j++ {
				if g.Next(i) != want.Next(i) {
					t.Errorf("%v: reset generator diverges from fresh generator at stream %d output %d", backend, i, j)
					return
				}
			}
		}
	}
}

func TestRecreateIsIdentical(t *testing.T) {
	t.Parallel()
	for _, backend := range backends {
		a := prand.New(backend, 5, 3, 200, nil)
		b := prand.New(backend, 5, 3, 200, nil)
		for i := 0; i < 3; i++ {
			for j := 0; j < 200; j++ {
				if a.Next(i) != b.Next(i) {
					t.Errorf("%v: recreated generator diverges at stream %d output %d", backend, i, j)
					return
				}
			}
		}
	}
}

func TestGeneratorProperties(t *testing.T) {
	t.Parallel()
	tests := []struct {
		backend prand.Backend
		max     uint64
	}{
		{prand.MRG32k3a, 4294967086},
		{prand.MT19937, 1<<32 - 1},
	}
	for _, test := range tests {
		g := prand.New(test.backend, 1, 0, 0, nil)
		if got := g.Backend(); got != test.backend {
			t.Errorf("unexpected backend identity: got:%v want:%v", got, test.backend)
		}
		if got := g.Streams(); got != 1 {
			t.Errorf("%v: zero requested streams must allocate one, got %d", test.backend, got)
		}
		if got := g.Max(); got != test.max {
			t.Errorf("%v: unexpected Max: got:%d want:%d", test.backend, got, test.max)
		}
	}
}

func TestBackendString(t *testing.T) {
	t.Parallel()
	if got := fmt.Sprint(prand.MRG32k3a, " ", prand.MT19937); got != "MRG32k3a MT19937" {
		t.Errorf("unexpected backend names: %q", got)
	}
}

func TestCodePredicates(t *testing.T) {
	t.Parallel()
	for _, c := range []prand.Code{prand.ErrMemory, prand.ErrMemoryJump, prand.ErrStepTooLarge, prand.ErrUndefinedBackend} {
		if !c.IsError() || c.IsWarning() {
			t.Errorf("code %v must be an error", c)
		}
		if c.Error() == "" {
			t.Errorf("code %v has no message", c)
		}
	}
	if !prand.WarnSeedDefaulted.IsWarning() || prand.WarnSeedDefaulted.IsError() {
		t.Error("seed-defaulted code must be a warning")
	}
	if prand.OK.IsError() || prand.OK.IsWarning() {
		t.Error("zero code must be neither error nor warning")
	}
}
