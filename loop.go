// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// loopCapacity is the bounded capacity of a Loop inbox.
// 64 covers a burst of submissions between two ticks without
// growing the ring past a few cache lines.
const loopCapacity = 64

// Loop is a cooperative runner for suspending Calls.
//
// Calls enter through a bounded lock-free SPSC inbox from lfq: one
// goroutine may Submit while another runs Tick or Drain. Every Tick
// polls each active Call once, so at most one step per Call is in
// flight and Calls interleave only at their suspension points.
type Loop struct {
	inbox  lfq.SPSC[*Call]
	slot   *Call
	active []*Call
}

// NewLoop returns a Loop with an inbox of loopCapacity Calls.
func NewLoop() *Loop {
	l := &Loop{}
	l.inbox.Init(loopCapacity)
	return l
}

// Submit hands c to the Loop. Non-blocking: returns iox.ErrWouldBlock
// when the inbox is full. Must be called from a single producer goroutine.
func (l *Loop) Submit(c *Call) error {
	l.slot = c
	return l.inbox.Enqueue(&l.slot)
}

// Tick admits submitted Calls and polls every active Call once.
// It returns the number of Calls still pending.
func (l *Loop) Tick() int {
	n, _ := l.tick()
	return n
}

func (l *Loop) tick() (pending int, progress bool) {
	for {
		c, err := l.inbox.Dequeue()
		if err != nil {
			break
		}
		if c != nil && !c.done {
			l.active = append(l.active, c)
			progress = true
		}
	}
	kept := l.active[:0]
	for _, c := range l.active {
		if c.poll() {
			progress = true
		}
		if !c.done {
			kept = append(kept, c)
		}
	}
	clear(l.active[len(kept):])
	l.active = kept
	return len(kept), progress
}

// Drain ticks until no Call is pending and the inbox is empty,
// backing off with iox.Backoff while no Call makes progress.
func (l *Loop) Drain() {
	var bo iox.Backoff
	for {
		pending, progress := l.tick()
		if pending == 0 {
			return
		}
		if progress {
			bo.Reset()
		} else {
			bo.Wait()
		}
	}
}
