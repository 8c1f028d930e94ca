// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core implements the reactive runtime: the entity store and
// context hierarchy, the observation graph, the cooperative task
// executor, globals, actions and keymap dispatch, the per-frame element
// tree with flex layout, the focus tree, scrolling, anchored/modal
// overlays, and the window/app frame pipeline.
package core

import (
	"fmt"
	"sync"

	"github.com/reactivecore/core/base/atomiccounter"
	"github.com/reactivecore/core/coreerr"
)

// EntityId identifies a slot in the entity store: a stable index plus
// the generation the slot was at when the id was minted. Upgrading a
// WeakEntity compares generations to detect a destroyed entity.
type EntityId struct {
	Index      uint32
	Generation uint32
}

// String renders the id as "index#generation", e.g. for log output.
func (id EntityId) String() string {
	return fmt.Sprintf("%d#%d", id.Index, id.Generation)
}

// slot is one entry in the entity store's slab. state is nil when the
// slot is free. strong/weak are refcounts; dropping strong to zero
// releases state and advances generation, invalidating every WeakEntity
// that captured the prior generation.
type slot struct {
	generation uint32
	state      any
	strong     uint32
	weak       uint32
	typeName   string
}

// EntityStore is the slot map backing every Entity[T] in one App. Slots
// are reused via a free list; the generation counter in the reused slot
// always advances, so a stale EntityId can never alias a new occupant.
type EntityStore struct {
	mu    sync.Mutex
	slots []slot
	free  []uint32
	minted atomiccounter.Counter
}

func newEntityStore() *EntityStore {
	return &EntityStore{}
}

// insert allocates a slot for state and returns its id with strong=1.
func (s *EntityStore) insert(state any, typeName string) EntityId {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.minted.Inc()
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		sl := &s.slots[idx]
		sl.state = state
		sl.strong = 1
		sl.weak = 0
		sl.typeName = typeName
		return EntityId{Index: idx, Generation: sl.generation}
	}
	idx := uint32(len(s.slots))
	s.slots = append(s.slots, slot{generation: 1, state: state, strong: 1, typeName: typeName})
	return EntityId{Index: idx, Generation: 1}
}

// reserve allocates a slot with no state yet (strong=1) so a builder
// closure can be given the entity's id before its state exists, then
// commit installs the built state.
func (s *EntityStore) reserve(typeName string) EntityId {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.minted.Inc()
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		sl := &s.slots[idx]
		sl.state = nil
		sl.strong = 1
		sl.weak = 0
		sl.typeName = typeName
		return EntityId{Index: idx, Generation: sl.generation}
	}
	idx := uint32(len(s.slots))
	s.slots = append(s.slots, slot{generation: 1, state: nil, strong: 1, typeName: typeName})
	return EntityId{Index: idx, Generation: 1}
}

// commit installs state into the slot reserved for id.
func (s *EntityStore) commit(id EntityId, state any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(id.Index) < len(s.slots) && s.slots[id.Index].generation == id.Generation {
		s.slots[id.Index].state = state
	}
}

// retain increments the strong count for id, used when an Entity[T] is cloned.
func (s *EntityStore) retain(id EntityId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl := s.live(id); sl != nil {
		sl.strong++
	}
}

// release decrements the strong count for id; at zero, the slot's state
// is cleared and its generation advances, and releaseFns registered via
// onRelease (see observe.go) are the caller's responsibility to invoke
// before calling release, since this method holds the store lock.
func (s *EntityStore) release(id EntityId) (destroyed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := s.live(id)
	if sl == nil {
		return false
	}
	sl.strong--
	if sl.strong > 0 {
		return false
	}
	sl.state = nil
	sl.generation++
	sl.typeName = ""
	if sl.weak == 0 {
		s.free = append(s.free, id.Index)
	}
	return true
}

// retainWeak/releaseWeak track weak refcounts only for bookkeeping of
// when a slot with no strong holders and no weak holders can be recycled.
func (s *EntityStore) retainWeak(id EntityId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(id.Index) < len(s.slots) && s.slots[id.Index].generation == id.Generation {
		s.slots[id.Index].weak++
	}
}

func (s *EntityStore) releaseWeak(id EntityId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(id.Index) >= len(s.slots) {
		return
	}
	sl := &s.slots[id.Index]
	if sl.generation != id.Generation {
		return
	}
	if sl.weak > 0 {
		sl.weak--
	}
	if sl.weak == 0 && sl.state == nil {
		s.free = append(s.free, id.Index)
	}
}

// live returns the slot for id if its generation still matches and it is
// not free, or nil otherwise. Caller must hold s.mu.
func (s *EntityStore) live(id EntityId) *slot {
	if int(id.Index) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[id.Index]
	if sl.generation != id.Generation || sl.state == nil {
		return nil
	}
	return sl
}

// get returns the state stored at id, or ok=false if the entity no
// longer exists at that generation.
func (s *EntityStore) get(id EntityId) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := s.live(id)
	if sl == nil {
		return nil, false
	}
	return sl.state, true
}

// liveCount reports the number of slots currently holding state, used by
// tests asserting invariant 1 (sum of strong handles == sum of live slots
// is checked at the call site using this plus per-entity strong counts).
func (s *EntityStore) liveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.slots {
		if s.slots[i].state != nil {
			n++
		}
	}
	return n
}

// strongOf returns the current strong count for id (0 if not live).
func (s *EntityStore) strongOf(id EntityId) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl := s.live(id); sl != nil {
		return sl.strong
	}
	return 0
}

// Entity is an owning handle to heap-resident state of type T. Cloning
// increments the store's strong refcount; the caller is responsible for
// calling Release when a clone is no longer needed (Go has no
// destructors, so this is explicit where the source's Drop was implicit).
type Entity[T any] struct {
	id    EntityId
	store *EntityStore
}

// Id returns the entity's stable identifier.
func (e Entity[T]) Id() EntityId { return e.id }

// Clone increments the strong refcount and returns a new handle to the
// same entity.
func (e Entity[T]) Clone() Entity[T] {
	e.store.retain(e.id)
	return e
}

// Release decrements the strong refcount, destroying the entity's state
// when it reaches zero.
func (e Entity[T]) Release() {
	e.store.release(e.id)
}

// Downgrade returns a non-owning WeakEntity to the same entity.
func (e Entity[T]) Downgrade() WeakEntity[T] {
	e.store.retainWeak(e.id)
	return WeakEntity[T]{id: e.id, store: e.store}
}

// read returns the entity's current state, failing with coreerr.EntityDropped
// if it has been destroyed.
func (e Entity[T]) read() (*T, error) {
	v, ok := e.store.get(e.id)
	if !ok {
		return nil, coreerr.Wrap(coreerr.EntityDropped, "entity %s", e.id)
	}
	return v.(*T), nil
}

// WeakEntity is a non-owning reference to an Entity[T]'s state. Upgrade
// succeeds only while the generation captured at Downgrade time still
// matches the slot's current generation.
type WeakEntity[T any] struct {
	id    EntityId
	store *EntityStore
}

// Id returns the identifier the weak handle was minted for.
func (w WeakEntity[T]) Id() EntityId { return w.id }

// Upgrade returns a strong Entity[T] and true if the entity is still
// live, or the zero Entity and false if it has been destroyed.
func (w WeakEntity[T]) Upgrade() (Entity[T], bool) {
	if w.store.strongOf(w.id) == 0 {
		return Entity[T]{}, false
	}
	w.store.retain(w.id)
	return Entity[T]{id: w.id, store: w.store}, true
}

// Release gives up the weak handle's claim on its slot, letting the slot
// be recycled once no strong holders remain either.
func (w WeakEntity[T]) Release() {
	w.store.releaseWeak(w.id)
}
