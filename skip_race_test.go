// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ambi_test

import "testing"

// skipRace skips tests that publish results across goroutines through
// atomix or lfq. The race detector tracks per-variable happens-before
// and cannot see their cross-variable memory ordering (store-release
// on the flag or index, load-acquire on the reader), producing false
// positives.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: atomix/lfq use cross-variable memory ordering")
}
