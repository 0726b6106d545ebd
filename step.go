// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// poll evaluates the Call until it settles or a Dual step's Future
// reports iox.ErrWouldBlock. It reports whether any progress was made.
func (c *Call) poll() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.start()
		c.advance()
		return true
	}
	return c.advance()
}

// start evaluates the plan up to its first step effect.
// An empty plan completes here without suspending.
func (c *Call) start() {
	c.started = true
	result, susp := kont.StepExpr(kont.Reify(c.plan.protocol()))
	if susp == nil {
		c.settle(result)
		return
	}
	c.susp = susp
}

// advance dispatches pending step effects in order. Uniform steps run
// inline; a Dual step starts its Future once and keeps the suspension
// unconsumed while that Future is pending.
//
// On a step error the suspension is discarded and the remaining
// steps never run.
func (c *Call) advance() bool {
	progressed := false
	for c.susp != nil {
		op, ok := c.susp.Op().(invoke)
		if !ok {
			panic("ambi: unhandled effect in Call.Poll")
		}
		acc, pending, err := c.dispatch(op)
		if pending {
			return progressed
		}
		progressed = true
		if err != nil {
			c.susp.Discard()
			c.susp = nil
			c.settle(abort(err))
			return true
		}
		c.steps++
		result, next := c.susp.Resume(acc)
		c.susp = next
		if next == nil {
			c.settle(result)
		}
	}
	return progressed
}

// dispatch resolves one step under Suspending.
func (c *Call) dispatch(op invoke) (acc Accum, pending bool, err error) {
	if op.step.kind == StepUniform {
		acc, err = op.call()
		return acc, false, err
	}
	if c.inflight == nil {
		f, err := op.start()
		if err != nil {
			return Accum{}, false, err
		}
		c.inflight = f
	}
	v, err := c.inflight.Poll()
	if iox.IsWouldBlock(err) && !settled(c.inflight) {
		return Accum{}, true, nil
	}
	c.inflight = nil
	if err != nil {
		return Accum{}, false, err
	}
	return accumOf(v), false, nil
}

// settled reports whether f can tell that it has finished. An embedded
// Call that failed with iox.ErrWouldBlock is settled, not pending.
func settled(f Future) bool {
	d, ok := f.(interface{ Done() bool })
	return ok && d.Done()
}
