// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

import (
	"code.hybscloud.com/kont"
)

// invoke is the effect operation for running one plan step.
// Perform(invoke{...}) resumes with the step's result as an Accum.
type invoke struct {
	kont.Phantom[Accum]
	step  Step
	index int
	in    Args
}

// call runs the step's blocking-applicable routine: the only routine of
// a Uniform step, or the blocking half of a Dual step.
func (op invoke) call() (Accum, error) {
	v, err := op.step.block(op.in)
	if err != nil {
		return Accum{}, err
	}
	return accumOf(v), nil
}

// start runs the suspending half of a Dual step and returns its Future.
func (op invoke) start() (Future, error) {
	f := op.step.suspend(op.in)
	if f == nil {
		return nil, ErrNilFuture
	}
	return f, nil
}
