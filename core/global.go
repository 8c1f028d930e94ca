// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"reflect"
	"sync"

	"github.com/reactivecore/core/coreerr"
)

// globalStore is a type-keyed registry of app-wide services, the
// registration point for external collaborators (filesystem, HTTP
// client, language registry, telemetry, keymap), grounded on the
// teacher's TheApp singleton idiom generalized to a type-keyed map
// instead of one fixed struct.
type globalStore struct {
	mu       sync.RWMutex
	values   map[reflect.Type]any
	onRemove map[reflect.Type]func(any)
}

func newGlobalStore() *globalStore {
	return &globalStore{
		values:   map[reflect.Type]any{},
		onRemove: map[reflect.Type]func(any){},
	}
}

// setGlobal installs v as the registered value for type T, replacing
// and releasing any prior value of that type.
func setGlobal[T any](s *globalStore, v T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.values[t]; ok {
		if fn, ok := s.onRemove[t]; ok {
			fn(old)
		}
	}
	s.values[t] = v
}

// global returns the registered value for type T, or coreerr.MissingGlobal
// if none has been set.
func global[T any](s *globalStore) (T, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero T
	v, ok := s.values[t]
	if !ok {
		return zero, coreerr.Wrap(coreerr.MissingGlobal, "global %s", t)
	}
	return v.(T), nil
}

// hasGlobal reports whether a value of type T is currently registered.
func hasGlobal[T any](s *globalStore) bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[t]
	return ok
}

// onGlobalRemove registers fn to run when type T's global is replaced,
// the global equivalent of an entity's release hook.
func onGlobalRemove[T any](s *globalStore, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRemove[t] = func(a any) { fn(a.(T)) }
}
