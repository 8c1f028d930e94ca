// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/reactivecore/core/base/stack"
	"github.com/reactivecore/core/coreerr"
	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/gpu"
	"github.com/reactivecore/core/keymap"
	"github.com/reactivecore/core/system"
)

// overlay is one entry of a window's modal/overlay stack: an anchored
// element that paints above ordinary content and captures focus until
// dismissed.
type overlay struct {
	id       FocusId
	dismiss  func()
	modal    bool
}

// WindowState is the entity state backing one open window: its platform
// handle, focus tree, action dispatcher, layout/scene for the current
// frame, and the overlay/modal stack.
type WindowState struct {
	Platform system.Window
	Focus    *FocusTree
	Dispatch *Dispatcher
	Actions  *ActionRegistry

	root     LayoutID
	layout   *LayoutTree
	scene    *gpu.Scene
	overlays stack.Stack[overlay]
	hits     []hitTarget

	dirty bool
}

// hitTarget pairs a painted interactive element's bounds with itself, in
// the order it was prepainted, so HitTest can walk the list in reverse
// (topmost/last-painted first) per the "last paint order wins" rule.
type hitTarget struct {
	bounds geom.Bounds[geom.Pixels]
	target *InteractiveElement
}

// RegisterHitTarget records target as occupying bounds for this frame's
// hit testing.
func (s *WindowState) RegisterHitTarget(bounds geom.Bounds[geom.Pixels], target *InteractiveElement) {
	s.hits = append(s.hits, hitTarget{bounds: bounds, target: target})
}

// HitTest returns the topmost interactive element containing pos, or nil
// if none does, walking registrations in reverse paint order so an
// element painted over another wins ties.
func (s *WindowState) HitTest(pos geom.Point[geom.Pixels]) *InteractiveElement {
	for i := len(s.hits) - 1; i >= 0; i-- {
		h := s.hits[i]
		if h.bounds.Contains(pos) {
			return h.target
		}
	}
	return nil
}

// Window is the app-visible handle to an open window: its id, backing
// entity, and the platform window it was created from.
type Window struct {
	Id       uint64
	Entity   Entity[WindowState]
	Platform system.Window
}

// NewWindow opens a platform window via plat and registers a WindowState
// entity for it, wiring a fresh FocusTree/Dispatcher/ActionRegistry the
// way the teacher's Stage/RenderWindow pairing wires one window state
// per platform window.
func NewWindow(a *AppContext, plat system.Platform, opts system.WindowOptions, registry *ActionRegistry) (*Window, error) {
	pw, err := plat.NewWindow(opts)
	if err != nil {
		return nil, err
	}
	focus := NewFocusTree()
	km := a.Keymap
	dispatch := NewDispatcher(focus, km, registry)

	entity := NewModel(a, func(cx *ModelContext[WindowState]) WindowState {
		return WindowState{
			Platform: pw,
			Focus:    focus,
			Dispatch: dispatch,
			Actions:  registry,
			scene:    gpu.NewScene(),
			dirty:    true,
		}
	})

	a.mu.Lock()
	a.nextWindow++
	id := a.nextWindow
	w := &Window{Id: id, Entity: entity, Platform: pw}
	a.windows[id] = w
	a.mu.Unlock()

	return w, nil
}

// SetKeymap replaces the window's live Dispatcher keymap, letting an
// already-open window pick up an externally reloaded keymap.json
// without being recreated.
func (w *Window) SetKeymap(a *AppContext, km *keymap.Keymap) {
	cx := &ModelContext[WindowState]{AppContext: a, id: w.Entity.Id()}
	coreerr.Log(cx.Update(func(s *WindowState, cx *ModelContext[WindowState]) {
		s.Dispatch.Keymap = km
	}))
}

// Invalidate marks the window dirty, requesting a repaint at the next
// frame tick.
func (w *Window) Invalidate(a *AppContext) {
	cx := &ModelContext[WindowState]{AppContext: a, id: w.Entity.Id()}
	coreerr.Log(cx.Update(func(s *WindowState, cx *ModelContext[WindowState]) {
		s.dirty = true
	}))
	w.Platform.RequestFrame()
}

// PushOverlay adds an anchored overlay (menu, tooltip, modal dialog) to
// the window's overlay stack. A modal overlay captures focus and blocks
// dispatch from reaching content beneath it until dismissed.
func (s *WindowState) PushOverlay(id FocusId, modal bool, dismiss func()) {
	s.overlays.Push(overlay{id: id, modal: modal, dismiss: dismiss})
	if modal {
		s.Focus.Focus(id)
	}
}

// PopOverlay dismisses the topmost overlay, if any, calling its dismiss
// callback. If the overlay left on top is modal, focus moves to it;
// otherwise focus stays wherever the dismiss callback left it. PopOverlay
// does not record or restore the focus held before a modal was pushed.
func (s *WindowState) PopOverlay() {
	if len(s.overlays) == 0 {
		return
	}
	top := s.overlays.Pop()
	if top.dismiss != nil {
		top.dismiss()
	}
	if len(s.overlays) > 0 {
		if next := s.overlays.Peek(); next.modal {
			s.Focus.Focus(next.id)
		}
	}
}

// HasModal reports whether a modal overlay is currently on top of the
// stack, meaning input outside it should not reach ordinary content.
func (s *WindowState) HasModal() bool {
	return len(s.overlays) > 0 && s.overlays.Peek().modal
}

// BeginFrame starts a new layout/paint cycle sized to the window's
// current bounds, replacing the prior frame's LayoutTree and Scene.
func (s *WindowState) BeginFrame() {
	s.layout = NewLayoutTree(s.Platform.RemSize())
	s.scene = gpu.NewScene()
	s.hits = s.hits[:0]
}

// Layout returns the frame's in-progress LayoutTree, valid between
// BeginFrame and the frame's Present.
func (s *WindowState) Layout() *LayoutTree { return s.layout }

// Scene returns the frame's in-progress Scene.
func (s *WindowState) Scene() *gpu.Scene { return s.scene }

// SetRoot records id as the frame's root layout node and solves the
// layout tree against the window's current bounds, so Prepaint can look
// up any node's bounds immediately afterward.
func (s *WindowState) SetRoot(id LayoutID) {
	s.root = id
	b := s.Platform.Bounds()
	s.layout.Solve(id, geom.Bounds[geom.Pixels]{Size: b.Size})
}

// Present submits the frame's painted scene to the platform window,
// clearing the dirty flag on success.
func (s *WindowState) Present() error {
	if err := s.Platform.Present(s.scene); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Dirty reports whether the window needs another frame drawn.
func (s *WindowState) Dirty() bool { return s.dirty }
