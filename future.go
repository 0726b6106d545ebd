// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Future is the pending result of a suspending routine.
//
// Poll is non-blocking: it returns iox.ErrWouldBlock while the work is
// still in flight, and the final (value, error) once it has completed.
// After completion Poll must keep returning the same result.
//
// A Future that can fail with iox.ErrWouldBlock should also provide
// Done() bool, as [Call] does, so that failure is not read as pending.
type Future interface {
	Poll() (any, error)
}

// FutureFunc adapts a polling function to [Future].
type FutureFunc func() (any, error)

// Poll calls f.
func (f FutureFunc) Poll() (any, error) { return f() }

type readyFuture struct {
	value any
	err   error
}

func (f readyFuture) Poll() (any, error) { return f.value, f.err }

// Ready returns a Future already completed with v.
func Ready(v any) Future { return readyFuture{value: v} }

// Failed returns a Future already completed with err.
func Failed(err error) Future { return readyFuture{err: err} }

// goFuture publishes a goroutine's result through an atomic flag.
// value and err are written before done is set and read only after.
type goFuture struct {
	done  atomix.Uint32
	value any
	err   error
}

func (f *goFuture) Poll() (any, error) {
	if f.done.Load() == 0 {
		return nil, iox.ErrWouldBlock
	}
	return f.value, f.err
}

// Go runs fn(in) on a new goroutine and returns a Future for its result.
// It turns a blocking routine into a suspending one; the interpreter
// itself never starts goroutines.
func Go(fn Func, in Args) Future {
	f := &goFuture{}
	go func() {
		f.value, f.err = fn(in)
		f.done.Store(1)
	}()
	return f
}
