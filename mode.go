// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

import "strconv"

// Mode selects how a [Host] interprets its plans.
// The zero Mode is not valid; [NewHost] rejects it.
type Mode uint8

const (
	// Blocking runs every step on the calling goroutine before Run returns.
	Blocking Mode = iota + 1
	// Suspending returns an unstarted [Call] that advances only when polled,
	// yielding at each Dual step until its [Future] completes.
	Suspending
)

// Valid reports whether m is Blocking or Suspending.
func (m Mode) Valid() bool {
	return m == Blocking || m == Suspending
}

func (m Mode) String() string {
	switch m {
	case Blocking:
		return "Blocking"
	case Suspending:
		return "Suspending"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}
