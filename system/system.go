// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system is the platform abstraction: window creation, display
// enumeration, clipboard, main-thread/background scheduling, and the
// common InputEvent stream every backend translates native input into.
// The desktop backend (package system/desktop) is GLFW-backed; the
// offscreen backend (package system/offscreen) backs headless tests.
package system

import (
	"time"

	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/gpu"
	"github.com/reactivecore/core/keymap"
)

// WindowKind selects a window's role, affecting default decorations and
// stacking behavior.
type WindowKind int

const (
	Normal WindowKind = iota
	Popup
)

// WindowOptions configures a window at creation time.
type WindowOptions struct {
	Bounds      geom.Bounds[geom.Pixels]
	Maximized   bool
	Fullscreen  bool
	Title       string
	Kind        WindowKind
	Focus       bool
	Decorations bool
	DisplayID   int
}

// Display describes one connected monitor/screen.
type Display struct {
	ID          int
	Bounds      geom.Bounds[geom.Pixels]
	ScaleFactor float32
}

// InputEvent is the common event type every backend normalizes native
// input into. Concrete variants are the structs below; isInputEvent is
// unexported so the set is closed to this package.
type InputEvent interface {
	isInputEvent()
}

type KeyDown struct {
	Key       string
	Modifiers keymap.Modifiers
	IsRepeat  bool
}

type KeyUp struct {
	Key       string
	Modifiers keymap.Modifiers
}

type ModifiersChanged struct {
	State keymap.Modifiers
}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

type MouseDown struct {
	Pos        geom.Point[geom.Pixels]
	Button     MouseButton
	ClickCount int
	Modifiers  keymap.Modifiers
}

type MouseUp struct {
	Pos       geom.Point[geom.Pixels]
	Button    MouseButton
	Modifiers keymap.Modifiers
}

type MouseMove struct {
	Pos             geom.Point[geom.Pixels]
	PressedButtons  []MouseButton
	Modifiers       keymap.Modifiers
}

type ScrollPhase int

const (
	ScrollStarted ScrollPhase = iota
	ScrollMoved
	ScrollEnded
)

type ScrollWheel struct {
	Pos     geom.Point[geom.Pixels]
	Delta   geom.Point[geom.Pixels]
	Phase   ScrollPhase
	Precise bool
}

type FileDropPhase int

const (
	FileDropEntered FileDropPhase = iota
	FileDropUpdated
	FileDropSubmitted
	FileDropExited
)

type FileDrop struct {
	Paths []string
	Pos   geom.Point[geom.Pixels]
	Phase FileDropPhase
}

type IMEEvent struct {
	ComposedText string
	Cursor       int
}

func (KeyDown) isInputEvent()          {}
func (KeyUp) isInputEvent()            {}
func (ModifiersChanged) isInputEvent() {}
func (MouseDown) isInputEvent()        {}
func (MouseUp) isInputEvent()          {}
func (MouseMove) isInputEvent()        {}
func (ScrollWheel) isInputEvent()      {}
func (FileDrop) isInputEvent()         {}
func (IMEEvent) isInputEvent()         {}

// Clipboard reads and writes the system clipboard's plain-text contents.
type Clipboard interface {
	Read() (string, error)
	Write(s string) error
}

// Window is a platform window: its geometry, a stream of input events,
// and the present/request-frame hooks the window/app frame pipeline
// drives once per dirty turn.
type Window interface {
	Bounds() geom.Bounds[geom.Pixels]
	ScaleFactor() float32
	RemSize() geom.Pixels
	SetTitle(title string)
	SetRemSize(rems geom.Pixels)
	// RequestFrame marks the window for a repaint at the next vsync tick,
	// without otherwise disturbing the input/dirty queue.
	RequestFrame()
	// Present submits a fully painted Scene for display.
	Present(scene *gpu.Scene) error
	// Events returns the channel of normalized input events; closed when
	// the window is closed.
	Events() <-chan InputEvent
	// Frames returns a channel that receives a value once per vsync tick
	// a frame was requested for.
	Frames() <-chan struct{}
	Close()
	IsClosed() bool
}

// Platform is the capability set a window/app frame pipeline needs from
// the host OS: window creation, display enumeration, clipboard, and
// main-thread/background scheduling (the Dispatcher contract).
type Platform interface {
	NewWindow(opts WindowOptions) (Window, error)
	Displays() []Display
	Clipboard() Clipboard

	// DispatchOnMain runs f on the platform's main thread the next time
	// its run loop drains its queue.
	DispatchOnMain(f func())
	// DispatchAfter runs f on the main thread after at least d has
	// elapsed.
	DispatchAfter(d time.Duration, f func())
	NumCPUs() int

	OpenURL(url string) error

	// Run blocks the calling goroutine pumping the platform event loop
	// until Quit is called.
	Run()
	Quit()
}
