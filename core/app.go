// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"github.com/reactivecore/core/coreerr"
	"github.com/reactivecore/core/keymap"
	"github.com/reactivecore/core/system"
)

// App drives the run loop: pumping each open window's input events,
// draining the reactive notify queue, and running the
// build/layout/prepaint/paint/present pipeline once per dirty frame
// tick, grounded on the teacher's driver/desktop window loop
// (runQueue select, render-on-dirty) generalized from one platform
// window to the whole AppContext's window set.
type App struct {
	Context  *AppContext
	Platform system.Platform

	roots map[uint64]func(cx *WindowContext) Element
}

// NewApp returns an App wired to plat, with a fresh AppContext.
func NewApp(plat system.Platform, fgCapacity, numCPU int) *App {
	return &App{
		Context:  NewAppContext(fgCapacity, numCPU),
		Platform: plat,
		roots:    map[uint64]func(cx *WindowContext) Element{},
	}
}

// SetRoot registers build as w's element tree builder, called fresh
// every time w is rebuilt.
func (app *App) SetRoot(w *Window, build func(cx *WindowContext) Element) {
	app.roots[w.Id] = build
}

// RunFrame pumps one window's pending input and, if it ends up dirty,
// rebuilds and paints a single frame. Input pumping and painting each run
// behind the panic-boundary guard so one broken frame doesn't take the app
// down; the foreground and notify drains between them are not guarded.
func (app *App) RunFrame(w *Window) {
	boundary := fmt.Sprintf("window:%d", w.Id)
	guard(boundary, func() {
		app.pumpInput(w)
	})

	app.Context.DrainForeground()
	app.Context.obs.drainNotify()

	state, err := w.Entity.read()
	if err != nil {
		return
	}
	if !state.dirty {
		return
	}
	build := app.roots[w.Id]
	if build == nil {
		return
	}

	guard(boundary, func() {
		app.paintFrame(w, state, build)
	})
}

func (app *App) paintFrame(w *Window, state *WindowState, build func(cx *WindowContext) Element) {
	cx := &WindowContext{
		ModelContext: &ModelContext[WindowState]{AppContext: app.Context, id: w.Entity.Id()},
		Window:       w,
		State:        state,
	}

	state.BeginFrame()
	root := NewAnyElement(build(cx))
	rootID := root.RequestLayout(cx)
	state.SetRoot(rootID)
	root.Prepaint(cx)
	root.Paint(cx)
	coreerr.Log(state.Present())
}

// pumpInput drains every InputEvent currently buffered for w, dispatching
// key events through the window's action Dispatcher/Keymap and routing
// pointer events to the hit-tested InteractiveElement from the last
// painted frame.
func (app *App) pumpInput(w *Window) {
	state, err := w.Entity.read()
	if err != nil {
		return
	}
	for {
		select {
		case ev, ok := <-state.Platform.Events():
			if !ok {
				return
			}
			app.handleEvent(state, ev)
		default:
			return
		}
	}
}

func (app *App) handleEvent(state *WindowState, ev system.InputEvent) {
	switch e := ev.(type) {
	case system.KeyDown:
		var rn rune
		if runes := []rune(e.Key); len(runes) == 1 {
			rn = runes[0]
		}
		chord := keymap.NewChord(rn, e.Key, e.Modifiers)
		state.Dispatch.Dispatch(chord)
		state.dirty = true
	case system.MouseDown:
		if t := state.HitTest(e.Pos); t != nil {
			t.HandlePointer(e.Pos, true)
		}
		state.dirty = true
	case system.MouseUp:
		if t := state.HitTest(e.Pos); t != nil {
			t.HandlePointer(e.Pos, false)
		}
		state.dirty = true
	case system.MouseMove:
		if t := state.HitTest(e.Pos); t != nil {
			t.hovered = true
		}
		state.dirty = true
	case system.ScrollWheel:
		state.dirty = true
	}
}

// WindowSnapshot is one open window's introspectable state, the
// read-only view an external inspector (package devtools) polls.
type WindowSnapshot struct {
	ID     uint64 `json:"id"`
	Dirty  bool   `json:"dirty"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Snapshot is a point-in-time summary of the app's entity store and
// open windows, grounded on the teacher's Inspector showing a live view
// of a Scene's tree/state.
type Snapshot struct {
	LiveEntities int              `json:"live_entities"`
	Windows      []WindowSnapshot `json:"windows"`
}

// Snapshot returns a Snapshot of app's current state.
func (app *App) Snapshot() Snapshot {
	app.Context.mu.Lock()
	windows := make([]*Window, 0, len(app.Context.windows))
	for _, w := range app.Context.windows {
		windows = append(windows, w)
	}
	app.Context.mu.Unlock()

	snap := Snapshot{
		LiveEntities: app.Context.entities.liveCount(),
		Windows:      make([]WindowSnapshot, 0, len(windows)),
	}
	for _, w := range windows {
		state, err := w.Entity.read()
		if err != nil {
			continue
		}
		b := state.Platform.Bounds()
		snap.Windows = append(snap.Windows, WindowSnapshot{
			ID:     w.Id,
			Dirty:  state.dirty,
			Width:  float32(b.Size.Width),
			Height: float32(b.Size.Height),
		})
	}
	return snap
}

// Run blocks pumping every registered window's frames until the
// platform's run loop returns (i.e. Quit was called), driving one
// RunFrame per window on every platform Frames tick.
func (app *App) Run(windows []*Window) {
	for _, w := range windows {
		w := w
		go func() {
			for range w.Platform.Frames() {
				app.RunFrame(w)
			}
		}()
	}
	app.Platform.Run()
}
