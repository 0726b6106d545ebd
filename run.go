// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

import (
	"code.hybscloud.com/iox"
)

// Drive runs the given Calls to completion, interleaving them on the
// calling goroutine. Each pass polls every pending Call once; when no
// Call makes progress Drive waits with adaptive backoff (iox.Backoff).
// Does not spawn goroutines. Nil and settled Calls are skipped.
func Drive(calls ...*Call) {
	var bo iox.Backoff
	for {
		pending := 0
		progress := false
		for _, c := range calls {
			if c == nil || c.done {
				continue
			}
			if c.poll() {
				progress = true
			}
			if !c.done {
				pending++
			}
		}
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
