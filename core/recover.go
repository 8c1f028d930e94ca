// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"runtime/debug"
)

// timesCrashed counts panics recovered at the event/paint boundary,
// mirroring the teacher's timesCrashed guard against runaway crash loops.
var timesCrashed int

// handleRecover is called from guard's deferred recover(), which App.RunFrame
// places around input pumping and painting. A non-nil r is logged with its stack and
// counted; it never re-panics, so the window that triggered it keeps
// running and rebuilds without the poisoned subtree next frame.
func handleRecover(boundary string, r any) {
	if r == nil {
		return
	}
	timesCrashed++
	slog.Error("recovered panic", slog.String("boundary", boundary),
		slog.Any("panic", r), slog.Int("times_crashed", timesCrashed),
		slog.String("stack", string(debug.Stack())))
}

// guard runs f, recovering any panic at the named boundary and reporting
// whether f completed without panicking.
func guard(boundary string, f func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			handleRecover(boundary, r)
			ok = false
		}
	}()
	f()
	return true
}
