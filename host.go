// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

// Host owns the Mode its operations run under. Types offering one API
// for both modes embed a *Host and implement each operation as a single
// method that returns [Host.Run].
//
// A Host holds no per-call state, but its operations are not meant to be
// invoked concurrently from independent goroutines.
type Host struct {
	mode Mode
}

// NewHost returns a Host fixed to mode.
// It fails with a [*ConfigurationError] unless mode is Blocking or Suspending.
func NewHost(mode Mode) (*Host, error) {
	if !mode.Valid() {
		return nil, &ConfigurationError{Mode: mode}
	}
	return &Host{mode: mode}, nil
}

// Mode returns the Mode fixed at construction.
func (h *Host) Mode() Mode {
	if h == nil {
		return 0
	}
	return h.mode
}

// Run compiles specs with [NewPlan] and executes the plan under the
// Host's Mode. Under Blocking the returned Call is already settled;
// under Suspending it has not started.
//
// A malformed spec yields a Call settled with a [*StepSpecError] in
// either Mode, and no step runs.
func (h *Host) Run(specs ...any) *Call {
	p, err := NewPlan(specs...)
	if err != nil {
		return failedCall(h.Mode(), err)
	}
	return h.Exec(p)
}

// Exec executes a compiled plan under the Host's Mode.
func (h *Host) Exec(p Plan) *Call {
	mode := h.Mode()
	if !mode.Valid() {
		return failedCall(mode, &ConfigurationError{Mode: mode})
	}
	c := newCall(mode, p)
	if mode == Blocking {
		execBlocking(c)
	}
	return c
}

// Embed returns a Dual step whose halves both invoke op.
// The blocking half waits for the Call op returns; the suspending half
// hands that Call to the driver as its Future. op already behaves
// correctly for its own Host's Mode, so it composes unmodified.
func (h *Host) Embed(op Operation) Step {
	return Embed(op)
}

// Embed is [Host.Embed] without a receiver.
// A nil op yields the zero Step, which NewPlan rejects.
func Embed(op Operation) Step {
	if op == nil {
		return Step{}
	}
	block := func(in Args) (any, error) {
		c := op(in)
		if c == nil {
			return nil, ErrNilFuture
		}
		return c.Wait()
	}
	suspend := func(in Args) Future {
		// A nil *Call must become a nil Future, not a typed nil.
		if c := op(in); c != nil {
			return c
		}
		return nil
	}
	return Dual(block, suspend)
}
