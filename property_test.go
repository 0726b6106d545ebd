// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi_test

import (
	"fmt"
	"testing"
	"testing/quick"

	"code.hybscloud.com/ambi"
)

// TestPropertyModeEquivalence proves that for arbitrary inputs and
// arbitrary Future latencies, a plan yields the same result under
// Blocking and Suspending.
func TestPropertyModeEquivalence(t *testing.T) {
	blocking := newHost(t, ambi.Blocking)
	suspending := newHost(t, ambi.Suspending)

	property := func(a, b int, latency uint8, named string) bool {
		opaque := func(ambi.Args) (any, error) { return a * b, nil }
		seed := func(in ambi.Args) (any, error) {
			return ambi.NewArgs([]any{a, in.Len()}, map[string]any{"tag": named}), nil
		}
		add := func(in ambi.Args) (any, error) {
			x, _ := ambi.Arg[int](in, 0)
			tag, _ := ambi.Named[string](in, "tag")
			return ambi.Bundle(x+b, in.At(1), tag), nil
		}
		render := func(in ambi.Args) (any, error) {
			return fmt.Sprint(in.At(0), in.At(1), in.At(2)), nil
		}
		plan, err := ambi.NewPlan(
			ambi.Dual(opaque, deferred(int(latency%3), opaque)),
			seed,
			ambi.Dual(add, deferred(int(latency%8), add)),
			ambi.Dual(render, deferred(int(latency%5), render)),
		)
		if err != nil {
			return false
		}

		bv, berr := blocking.Exec(plan).Result()
		sv, serr := drive(suspending.Exec(plan))
		return berr == nil && serr == nil && bv == sv
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyErrorShortCircuit proves that an error raised at any step
// aborts the plan there, in both modes, and no later step runs.
func TestPropertyErrorShortCircuit(t *testing.T) {
	property := func(failAt uint8, suspending bool) bool {
		const size = 6
		n := int(failAt % size)
		errStop := fmt.Errorf("stop at %d", n)

		ran := make([]int, size)
		specs := make([]any, size)
		for i := range size {
			fn := func(ambi.Args) (any, error) {
				ran[i]++
				if i == n {
					return nil, errStop
				}
				return ambi.Bundle(i), nil
			}
			if i%2 == 0 {
				specs[i] = fn
			} else {
				specs[i] = ambi.Dual(fn, deferred(i, fn))
			}
		}

		mode := ambi.Blocking
		if suspending {
			mode = ambi.Suspending
		}
		h, _ := ambi.NewHost(mode)
		_, err := drive(h.Run(specs...))
		if err != errStop {
			return false
		}
		for i, count := range ran {
			if i <= n && count != 1 {
				return false
			}
			if i > n && count != 0 {
				return false
			}
		}
		return true
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
