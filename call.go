// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Serial identifies a Call. Serials follow Call creation order within
// the process, including Calls settled by a construction error.
type Serial = uint32

var lastSerial atomix.Uint32

// Call is one invocation of a plan.
//
// Under Blocking the Call is settled before [Host.Run] returns. Under
// Suspending it is a deferred handle: nothing runs until Poll, Wait,
// [Drive] or a [Loop] advances it, and it advances one step at a time,
// yielding whenever a Dual step's Future is still pending.
//
// A Call implements [Future], so a Call returned by one operation can be
// awaited by a Dual step of another. Calls are not safe for concurrent use.
type Call struct {
	serial  Serial
	mode    Mode
	plan    Plan
	started bool
	done    bool
	steps   int

	// susp is the pending step effect; inflight is the Future of the
	// Dual step it belongs to, once started.
	susp     *kont.Suspension[outcome]
	inflight Future

	value any
	err   error
}

func newCall(mode Mode, plan Plan) *Call {
	return &Call{serial: lastSerial.Add(1), mode: mode, plan: plan}
}

// failedCall returns a Call already settled with err. No step runs.
func failedCall(mode Mode, err error) *Call {
	return &Call{serial: lastSerial.Add(1), mode: mode, started: true, done: true, err: err}
}

// Serial returns the identifier assigned to this Call.
func (c *Call) Serial() Serial { return c.serial }

// Mode returns the Mode of the Host that created this Call.
func (c *Call) Mode() Mode { return c.mode }

// Done reports whether the Call has completed or failed.
func (c *Call) Done() bool { return c.done }

// Steps returns the number of steps that have completed.
func (c *Call) Steps() int { return c.steps }

// Result returns the final value and error of a settled Call.
// It returns iox.ErrWouldBlock while the Call is pending and never
// advances it.
func (c *Call) Result() (any, error) {
	if !c.done {
		return nil, iox.ErrWouldBlock
	}
	return c.value, c.err
}

// Poll advances the Call as far as it can without blocking.
// It returns iox.ErrWouldBlock while a Dual step's Future is pending.
// Once settled, Poll returns the final value, or the first step error
// unchanged.
func (c *Call) Poll() (any, error) {
	c.poll()
	return c.Result()
}

// Wait drives the Call to completion on the calling goroutine,
// backing off with iox.Backoff while its Future is pending.
func (c *Call) Wait() (any, error) {
	var bo iox.Backoff
	for !c.done {
		if c.poll() {
			bo.Reset()
		} else {
			bo.Wait()
		}
	}
	return c.value, c.err
}

func (c *Call) settle(r outcome) {
	c.done = true
	if err, ok := r.GetLeft(); ok {
		c.err = err
		return
	}
	c.value, _ = r.GetRight()
}
