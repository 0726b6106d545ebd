// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

import (
	"code.hybscloud.com/kont"
)

// Func is a routine called on the calling goroutine.
// It receives the previous step's Args, or empty Args when the previous
// step returned anything else.
type Func func(in Args) (any, error)

// Task is the suspending half of a Dual step. It starts the work and
// returns a Future that the driver polls until completion.
type Task func(in Args) Future

// Operation is a host method usable under either Mode, such as one
// that returns the result of [Host.Run].
type Operation func(in Args) *Call

// StepKind tags a Step.
type StepKind uint8

const (
	// StepUniform steps call one routine under both modes and never suspend.
	StepUniform StepKind = iota + 1
	// StepDual steps call their blocking routine under Blocking and their
	// suspending routine under Suspending.
	StepDual
)

// Step is one unit of work in a Plan.
// The zero Step is malformed and rejected by NewPlan.
type Step struct {
	kind    StepKind
	block   Func
	suspend Task
}

// Uniform returns a step calling fn identically under both modes.
func Uniform(fn Func) Step {
	return Step{kind: StepUniform, block: fn}
}

// Dual returns a step calling block under Blocking and suspend under
// Suspending. The two must accept the same Args and produce the same result.
func Dual(block Func, suspend Task) Step {
	return Step{kind: StepDual, block: block, suspend: suspend}
}

// Kind returns the step tag.
func (s Step) Kind() StepKind { return s.kind }

func (s Step) check() string {
	switch s.kind {
	case StepUniform:
		if s.block == nil {
			return "nil routine"
		}
	case StepDual:
		if s.block == nil {
			return "nil blocking routine"
		}
		if s.suspend == nil {
			return "nil suspending routine"
		}
	default:
		return "zero Step"
	}
	return ""
}

// Plan is an immutable, ordered sequence of steps.
type Plan struct {
	steps []Step
}

// NewPlan compiles step specs into a Plan. Each spec is one of:
//
//   - a [Step]
//   - a [Func] or func(Args) (any, error), run as a Uniform step
//   - a []Func or []any of one element holding a blocking routine
//   - a []any of two elements: a blocking routine then a [Task] or
//     func(Args) Future
//
// Any other shape fails with a [*StepSpecError] before any step runs.
func NewPlan(specs ...any) (Plan, error) {
	steps := make([]Step, 0, len(specs))
	for i, spec := range specs {
		s, reason := stepOf(spec)
		if reason == "" {
			reason = s.check()
		}
		if reason != "" {
			return Plan{}, &StepSpecError{Index: i, Reason: reason}
		}
		steps = append(steps, s)
	}
	return Plan{steps: steps}, nil
}

func stepOf(spec any) (Step, string) {
	switch v := spec.(type) {
	case Step:
		return v, ""
	case Func:
		return Uniform(v), ""
	case func(Args) (any, error):
		return Uniform(v), ""
	case []Func:
		if len(v) != 1 {
			return Step{}, "blocking routine sequence must have one element"
		}
		return Uniform(v[0]), ""
	case []any:
		switch len(v) {
		case 1:
			block, ok := funcOf(v[0])
			if !ok {
				return Step{}, "element 0 is not a blocking routine"
			}
			return Uniform(block), ""
		case 2:
			block, ok := funcOf(v[0])
			if !ok {
				return Step{}, "element 0 is not a blocking routine"
			}
			suspend, ok := taskOf(v[1])
			if !ok {
				return Step{}, "element 1 is not a suspending routine"
			}
			return Dual(block, suspend), ""
		}
		return Step{}, "sequence must have one or two elements"
	case nil:
		return Step{}, "nil spec"
	}
	return Step{}, "not a routine or routine sequence"
}

func funcOf(v any) (Func, bool) {
	switch fn := v.(type) {
	case Func:
		return fn, fn != nil
	case func(Args) (any, error):
		return fn, fn != nil
	}
	return nil, false
}

func taskOf(v any) (Task, bool) {
	switch fn := v.(type) {
	case Task:
		return fn, fn != nil
	case func(Args) Future:
		return fn, fn != nil
	}
	return nil, false
}

// Len returns the number of steps.
func (p Plan) Len() int { return len(p.steps) }

// Step returns the i-th step.
func (p Plan) Step(i int) Step { return p.steps[i] }

// protocol encodes the plan as one effect per step, threading the
// accumulator through Bind. Nothing runs until a handler or a stepping
// driver dispatches the first effect.
func (p Plan) protocol() kont.Eff[outcome] {
	return kont.Map[kont.Resumed, Accum, outcome](p.from(0, Accum{}), complete)
}

func (p Plan) from(i int, acc Accum) kont.Eff[Accum] {
	if i == len(p.steps) {
		return kont.Pure(acc)
	}
	op := invoke{step: p.steps[i], index: i, in: acc.input()}
	return kont.Bind(kont.Perform(op), func(next Accum) kont.Eff[Accum] {
		return p.from(i+1, next)
	})
}
