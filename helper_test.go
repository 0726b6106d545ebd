// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi_test

import (
	"testing"

	"code.hybscloud.com/ambi"
	"code.hybscloud.com/iox"
)

// newHost builds a Host for mode or fails the test.
func newHost(tb testing.TB, mode ambi.Mode) *ambi.Host {
	tb.Helper()
	h, err := ambi.NewHost(mode)
	if err != nil {
		tb.Fatalf("NewHost(%v): %v", mode, err)
	}
	return h
}

// counted wraps fn so that every call increments *n.
func counted(n *int, fn ambi.Func) ambi.Func {
	return func(in ambi.Args) (any, error) {
		*n++
		return fn(in)
	}
}

// pendingFuture is a fake suspending context: it reports
// iox.ErrWouldBlock for the first `pending` polls, then completes.
type pendingFuture struct {
	pending int
	polls   int
	value   any
	err     error
}

func (f *pendingFuture) Poll() (any, error) {
	f.polls++
	if f.polls <= f.pending {
		return nil, iox.ErrWouldBlock
	}
	return f.value, f.err
}

// deferred returns a Task that computes fn(in) when started and
// releases the result after n pending polls.
func deferred(n int, fn ambi.Func) ambi.Task {
	return func(in ambi.Args) ambi.Future {
		v, err := fn(in)
		return &pendingFuture{pending: n, value: v, err: err}
	}
}

// pollN polls c n times and reports whether it settled.
func pollN(c *ambi.Call, n int) bool {
	for range n {
		if _, err := c.Poll(); !iox.IsWouldBlock(err) {
			return c.Done()
		}
	}
	return c.Done()
}

// drive polls c until it settles, retrying on iox.ErrWouldBlock.
// Used by property tests to exercise the non-blocking path without backoff.
func drive(c *ambi.Call) (any, error) {
	for !c.Done() {
		c.Poll()
	}
	return c.Result()
}
