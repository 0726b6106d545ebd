// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ambi lets one operation body serve both a blocking and a
// suspending API, using algebraic effects on [code.hybscloud.com/kont].
//
// An operation is written as a linear plan of steps. The [Host] that owns
// the operation fixes a [Mode] at construction, and every plan it runs is
// interpreted under that Mode.
//
// # Architecture
//
//   - Steps: [Uniform] steps call one routine under both Modes. [Dual] steps pair a blocking [Func]
//     with a suspending [Task] that must be behaviorally equivalent.
//   - Threading: a step returning [Args] feeds them to the next step. Any other intermediate value
//     is dropped; the last step's value is the result as returned.
//   - Blocking: the plan runs to completion on the calling goroutine inside a kont handler.
//   - Suspending: the plan is stepped one effect at a time. A Dual step yields while its [Future]
//     reports [code.hybscloud.com/iox.ErrWouldBlock].
//   - Errors: the first step error aborts the plan and is returned unchanged.
//
// # API Topologies
//
//   - Model: [Bundle], [NewArgs], [Uniform], [Dual], [NewPlan].
//   - Host: [NewHost], [Host.Run], [Host.Exec], [Host.Embed].
//   - Handle: [Call] with [Call.Poll], [Call.Wait], [Call.Result]. A Call is a [Future].
//   - Futures: [Ready], [Failed], [FutureFunc], [Go].
//   - Drivers: [Drive] interleaves Calls on one goroutine; [Loop] accepts Calls through a
//     lock-free SPSC inbox from [code.hybscloud.com/lfq].
//
// The interpreter never spawns goroutines and never runs two steps of one
// plan at once. It provides no cancellation, timeouts, retries, or locking.
//
// # Example
//
//	type Store struct{ *ambi.Host }
//
//	func (s Store) Load(key string) *ambi.Call {
//		get := func(ambi.Args) (any, error) {
//			v, err := db.Get(key)
//			return ambi.Bundle(v), err
//		}
//		getAsync := func(in ambi.Args) ambi.Future { return ambi.Go(get, in) }
//		decode := func(in ambi.Args) (any, error) { return parse(in.At(0)) }
//		return s.Run(
//			ambi.Dual(get, getAsync),
//			ambi.Uniform(decode),
//		)
//	}
//
//	h, _ := ambi.NewHost(ambi.Blocking)
//	v, err := Store{h}.Load("k").Result() // settled on return
//
//	h, _ = ambi.NewHost(ambi.Suspending)
//	v, err = Store{h}.Load("k").Wait() // or Poll from an event loop
package ambi
