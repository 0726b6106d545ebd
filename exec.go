// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

import (
	"code.hybscloud.com/kont"
)

// blockingHandler implements kont.Handler for step effects under Blocking.
// Every step resolves to its blocking routine and runs to completion before
// the handler resumes. A step error short-circuits with Left.
// Value type: passed to the trampoline on the stack.
type blockingHandler[R any] struct {
	steps *int
}

// Dispatch implements kont.Handler via structural assertion on invoke.
func (h blockingHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	inv, ok := op.(invoke)
	if !ok {
		panic("ambi: unhandled effect in blockingHandler")
	}
	acc, err := inv.call()
	if err != nil {
		return abort(err), false
	}
	*h.steps++
	return acc, true
}

// execBlocking runs c's plan on the calling goroutine and settles c.
// It neither spawns goroutines nor waits on any Future.
func execBlocking(c *Call) {
	c.started = true
	h := blockingHandler[outcome]{steps: &c.steps}
	c.settle(kont.Handle(c.plan.protocol(), h))
}
