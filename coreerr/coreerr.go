// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coreerr defines the sentinel errors produced by the reactive
// core, the GPU compositor, and keymap parsing, plus the Log/Must
// logging helpers used throughout the runtime.
package coreerr

import (
	"errors"
	"fmt"

	baseerrors "github.com/reactivecore/core/base/errors"
)

// Sentinel errors returned by the reactive core and its collaborators.
// Use errors.Is to test for them, since they are frequently wrapped with
// entity IDs, paths, or other context via fmt.Errorf's %w.
var (
	// EntityDropped is returned when a context reads or updates an entity
	// whose state has already been destroyed.
	EntityDropped = errors.New("entity dropped")

	// ReentrantMutation is returned when a context attempts to mutate an
	// entity that already has a live mutable borrow on the call stack.
	ReentrantMutation = errors.New("reentrant mutation")

	// MissingGlobal is returned by Global when no value has
	// been registered for the requested type.
	MissingGlobal = errors.New("missing global")

	// BadPath is returned by PathBuilder.Build when the path has fewer
	// than two distinct points, or contains a non-finite coordinate.
	BadPath = errors.New("bad path")

	// GpuLost is returned by the renderer when the GPU device is lost or
	// the surface has to be recreated mid-frame.
	GpuLost = errors.New("gpu device lost")

	// KeymapParse is returned when a keymap source file fails to parse,
	// either as JSON or as a context-predicate expression.
	KeymapParse = errors.New("keymap parse error")
)

// Log logs err, with caller info, if it is non-nil, and returns it
// unchanged. The intended usage is:
//
//	return coreerr.Log(doSomething())
func Log(err error) error {
	return baseerrors.Log(err)
}

// Must panics if err is non-nil. The intended usage is:
//
//	coreerr.Must(doSomething())
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Wrap wraps err with the given sentinel using %w, so that
// errors.Is(result, sentinel) holds, and attaches the given context to
// the message.
func Wrap(sentinel error, context string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(context, args...), sentinel)
}
