// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/reactivecore/core/coreerr"
	"github.com/reactivecore/core/keymap"
)

// AppContext is the entry point for creating entities, reading and
// writing globals, and scheduling tasks. It is the root of the
// single-threaded capability hierarchy (AppContext -> ModelContext ->
// WindowContext/ViewContext); nested contexts borrow from it rather than
// extending it by inheritance, per the "stack of borrowed records" note
// in the design notes.
type AppContext struct {
	entities *EntityStore
	obs      *observationGraph
	globals  *globalStore
	fg       *foregroundExecutor
	bg       *backgroundExecutor
	Keymap   *keymap.Keymap

	mu         sync.Mutex
	borrowing  map[EntityId]bool
	windows    map[uint64]*Window
	nextWindow uint64
}

// NewAppContext creates an empty AppContext with a foreground queue of
// the given capacity and a background pool sized to numCPU (0 means
// runtime.NumCPU()).
func NewAppContext(fgCapacity, numCPU int) *AppContext {
	return &AppContext{
		entities:  newEntityStore(),
		obs:       newObservationGraph(),
		globals:   newGlobalStore(),
		fg:        newForegroundExecutor(fgCapacity),
		bg:        newBackgroundExecutor(numCPU),
		Keymap:    keymap.New(),
		borrowing: map[EntityId]bool{},
		windows:   map[uint64]*Window{},
	}
}

// beginBorrow marks id as having a live mutable borrow, failing with
// coreerr.ReentrantMutation if one is already outstanding. endBorrow
// releases the mark. Every Update call on a ModelContext brackets its
// body between these two.
func (a *AppContext) beginBorrow(id EntityId) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.borrowing[id] {
		return coreerr.Wrap(coreerr.ReentrantMutation, "entity %s", id)
	}
	a.borrowing[id] = true
	return nil
}

func (a *AppContext) endBorrow(id EntityId) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.borrowing, id)
}

// NewModel creates an entity of type T, running build with a
// ModelContext scoped to the new entity's id so it can register
// observers on itself during construction.
func NewModel[T any](a *AppContext, build func(cx *ModelContext[T]) T) Entity[T] {
	id := a.entities.reserve(typeNameOf[T]())
	cx := &ModelContext[T]{AppContext: a, id: id}
	state := build(cx)
	a.entities.commit(id, &state)
	return Entity[T]{id: id, store: a.entities}
}

func typeNameOf[T any]() string {
	var z T
	return fmt.Sprintf("%T", z)
}

// Global returns the registered global of type T.
func Global[T any](a *AppContext) (T, error) { return global[T](a.globals) }

// SetGlobal installs v as the registered global of type T.
func SetGlobal[T any](a *AppContext, v T) { setGlobal(a.globals, v) }

// HasGlobal reports whether a global of type T is registered.
func HasGlobal[T any](a *AppContext) bool { return hasGlobal[T](a.globals) }

// OnGlobalRemove registers fn to run when type T's global is replaced.
func OnGlobalRemove[T any](a *AppContext, fn func(T)) { onGlobalRemove(a.globals, fn) }

// SpawnBackground runs f on the background pool.
func SpawnBackground[T any](a *AppContext, ctx context.Context, f func(context.Context) (T, error)) *Task[T] {
	return spawnBackground(a.bg, ctx, f)
}

// DispatchOnMain enqueues f to run on the main thread at the next drain.
func (a *AppContext) DispatchOnMain(f func()) { a.fg.Post(f) }

// RunOnMain enqueues f and blocks until it has run on the main thread.
func (a *AppContext) RunOnMain(f func()) { a.fg.RunOnMain(f) }

// NumCPUs reports the background pool's worker count.
func (a *AppContext) NumCPUs() int { return a.bg.NumCPUs() }

// DrainForeground runs every continuation currently queued on the
// foreground executor; called once per frame by App.RunFrame.
func (a *AppContext) DrainForeground() { a.fg.Drain() }

// ModelContext is an AppContext plus the identity of the owning entity.
// It adds notify/emit/observe/subscribe/on_release/spawn, all scoped to
// that entity.
type ModelContext[T any] struct {
	*AppContext
	id EntityId
}

// Id returns the id of the entity this context is scoped to.
func (c *ModelContext[T]) Id() EntityId { return c.id }

// Update runs f with exclusive mutable access to the entity's state,
// failing with coreerr.ReentrantMutation if a mutation is already in
// progress for this entity further up the call stack.
func (c *ModelContext[T]) Update(f func(state *T, cx *ModelContext[T])) error {
	if err := c.beginBorrow(c.id); err != nil {
		return coreerr.Log(err)
	}
	defer c.endBorrow(c.id)
	v, ok := c.entities.get(c.id)
	if !ok {
		return coreerr.Log(coreerr.Wrap(coreerr.EntityDropped, "entity %s", c.id))
	}
	f(v.(*T), c)
	return nil
}

// Notify queues this entity's Notify observers to fire at the next notify
// drain (App.RunFrame drains once per frame), deduplicated so multiple
// calls before that drain still fire observers exactly once.
func (c *ModelContext[T]) Notify() { c.obs.queueNotify(c.id) }

// Observe registers fn to run whenever this entity notifies.
func (c *ModelContext[T]) Observe(fn func()) Subscription { return c.obs.observe(c.id, fn) }

// ObserveOther registers fn to run whenever other notifies.
func ObserveOther[T any](c *ModelContext[T], other EntityId, fn func()) Subscription {
	return c.obs.observe(other, fn)
}

// Emit synchronously delivers event to this entity's Event observers.
func Emit[T any, E any](c *ModelContext[T], event E) { emit(c.obs, c.id, event) }

// Subscribe registers fn to run whenever other emits an event of type E.
func Subscribe[T any, E any](c *ModelContext[T], other EntityId, fn func(E)) Subscription {
	return subscribe(c.obs, other, fn)
}

// OnRelease registers fn to run once, when this entity's last strong
// handle drops.
func (c *ModelContext[T]) OnRelease(fn func()) Subscription { return c.obs.onRelease(c.id, fn) }

// SpawnSelf runs f on the background pool, giving it a WeakEntity back to
// this entity; f typically finishes by re-entering with Update, which
// fails with coreerr.EntityDropped if the entity died in the meantime.
func SpawnSelf[T any](c *ModelContext[T], ctx context.Context, f func(context.Context, WeakEntity[T])) {
	weak := Entity[T]{id: c.id, store: c.entities}.Downgrade()
	spawnBackground(c.bg, ctx, func(ctx context.Context) (struct{}, error) {
		f(ctx, weak)
		return struct{}{}, nil
	})
}

// WindowContext is a ModelContext plus the identity of a window, adding
// focus, layout, paint, input binding, actions, keymap dispatch, and
// overlays, all scoped to that window.
type WindowContext struct {
	*ModelContext[WindowState]
	Window *Window

	// State is a direct pointer to the window's entity state for the
	// duration of one frame, set by the frame driver before walking the
	// element tree. The frame driver owns exclusive access to one
	// window's state for its whole turn, so reads/writes through State
	// skip the Update reentrancy bracket that guards cross-entity and
	// cross-goroutine mutation instead.
	State *WindowState
}

// ViewContext is a WindowContext further scoped to one entity being
// rendered as a view in that window.
type ViewContext[V any] struct {
	*WindowContext
	ViewId EntityId
}
