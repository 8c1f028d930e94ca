// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"reflect"
)

// DefaultMaxNotifyDepth bounds how many recursive notify-drain passes one
// call to drainNotify will run before logging a warning and dropping the
// rest of the pending queue for that pass, per the decision recorded in
// DESIGN.md. It is the default of the observation graph's maxDepth field,
// which tests can override.
const DefaultMaxNotifyDepth = 256

// Subscription is the token returned by Observe/Subscribe/OnRelease;
// calling Release removes exactly the one edge it represents. Go has no
// destructors, so callers that relied on RAII drop semantics in the
// source language must call Release explicitly (often via `defer`).
type Subscription struct {
	remove func()
}

// Release removes the observer edge this subscription represents. Safe
// to call more than once or on the zero Subscription.
func (s Subscription) Release() {
	if s.remove != nil {
		s.remove()
	}
}

type notifyObserver struct {
	active bool
	fn     func()
}

type eventObserver struct {
	active    bool
	eventType reflect.Type
	fn        func(any)
}

type releaseObserver struct {
	active bool
	fn     func()
}

// observationGraph is the per-App bookkeeping for notify/event/release
// edges plus the pending-notify queue described by the reactive core's
// observation graph (source EntityId -> edges of kind Notify, Event, or
// Release).
type observationGraph struct {
	notify  map[EntityId][]*notifyObserver
	event   map[EntityId][]*eventObserver
	release map[EntityId][]*releaseObserver

	pending    []EntityId
	pendingSet map[EntityId]bool

	maxDepth int
}

func newObservationGraph() *observationGraph {
	return &observationGraph{
		notify:     map[EntityId][]*notifyObserver{},
		event:      map[EntityId][]*eventObserver{},
		release:    map[EntityId][]*releaseObserver{},
		pendingSet: map[EntityId]bool{},
		maxDepth:   DefaultMaxNotifyDepth,
	}
}

// observe registers fn to run whenever source calls notify().
func (g *observationGraph) observe(source EntityId, fn func()) Subscription {
	obs := &notifyObserver{active: true, fn: fn}
	g.notify[source] = append(g.notify[source], obs)
	return Subscription{remove: func() { obs.active = false }}
}

// subscribe registers fn to run whenever source emits an event of type T.
func subscribe[E any](g *observationGraph, source EntityId, fn func(E)) Subscription {
	t := reflect.TypeOf((*E)(nil)).Elem()
	obs := &eventObserver{active: true, eventType: t, fn: func(a any) { fn(a.(E)) }}
	g.event[source] = append(g.event[source], obs)
	return Subscription{remove: func() { obs.active = false }}
}

// onRelease registers fn to run once, when source's last strong handle drops.
func (g *observationGraph) onRelease(source EntityId, fn func()) Subscription {
	obs := &releaseObserver{active: true, fn: fn}
	g.release[source] = append(g.release[source], obs)
	return Subscription{remove: func() { obs.active = false }}
}

// queueNotify enqueues source for the next notify-drain pass, deduping
// within the currently pending batch so each source's observers fire at
// most once per pass even if notify() was called on it multiple times.
func (g *observationGraph) queueNotify(source EntityId) {
	if g.pendingSet[source] {
		return
	}
	g.pendingSet[source] = true
	g.pending = append(g.pending, source)
}

// drainNotify runs every queued source's Notify observers, re-draining
// any further sources enqueued by those observers (up to maxDepth
// recursive passes), then returns. Ordering between distinct sources
// follows enqueue order within a pass.
func (g *observationGraph) drainNotify() {
	depth := 0
	for len(g.pending) > 0 {
		if depth >= g.maxDepth {
			slog.Warn("core: notify recursion depth exceeded, dropping pending notifications", "depth", depth, "pending", len(g.pending))
			g.pending = nil
			g.pendingSet = map[EntityId]bool{}
			return
		}
		depth++
		batch := g.pending
		g.pending = nil
		g.pendingSet = map[EntityId]bool{}
		for _, id := range batch {
			for _, obs := range g.notify[id] {
				if obs.active {
					obs.fn()
				}
			}
		}
	}
}

// emit synchronously delivers event to every active Event observer of
// source whose registered type matches, in registration order.
func emit[E any](g *observationGraph, source EntityId, event E) {
	t := reflect.TypeOf((*E)(nil)).Elem()
	for _, obs := range g.event[source] {
		if obs.active && obs.eventType == t {
			obs.fn(event)
		}
	}
}

// fireRelease runs and deactivates every release observer for source.
func (g *observationGraph) fireRelease(source EntityId) {
	for _, obs := range g.release[source] {
		if obs.active {
			obs.active = false
			obs.fn()
		}
	}
	delete(g.release, source)
	delete(g.notify, source)
	delete(g.event, source)
}
