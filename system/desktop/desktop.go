// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop backs system.Platform/system.Window with GLFW and
// webgpu, grounded on the teacher's driver/desktop package: one
// runQueue channel per window draining on that window's own select
// loop (window.go's winLoop), and a main-thread dispatch queue the
// whole app drains on the goroutine that called glfw.Init (app.go's
// RunOnMain), generalized from the teacher's Vulkan/vgpu backend to
// github.com/cogentcore/webgpu.
package desktop

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/gpu"
	"github.com/reactivecore/core/keymap"
	"github.com/reactivecore/core/system"
)

// funcRun is one closure queued onto a window or app's run loop, with
// an optional completion signal for callers that need to block until
// it has run — the teacher's window.go funcRun shape.
type funcRun struct {
	f    func()
	done chan struct{}
}

// Platform is the GLFW-backed system.Platform implementation: a single
// OS-thread-bound main loop draining a main-thread dispatch queue and
// pumping GLFW's event queue once per tick.
type Platform struct {
	mu      sync.Mutex
	windows []*Window
	mainQ   chan funcRun
	quit    chan struct{}
}

// NewPlatform initializes GLFW on the calling goroutine, which must be
// locked to its OS thread (runtime.LockOSThread) for the lifetime of
// the returned Platform, matching GLFW's single-thread requirement.
func NewPlatform() (*Platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("desktop: glfw init: %w", err)
	}
	return &Platform{
		mainQ: make(chan funcRun, 64),
		quit:  make(chan struct{}),
	}, nil
}

func (p *Platform) NewWindow(opts system.WindowOptions) (system.Window, error) {
	var w *Window
	var err error
	done := make(chan struct{})
	p.mainQ <- funcRun{f: func() {
		w, err = newWindow(p, opts)
	}, done: done}
	p.drainOnce()
	<-done
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.windows = append(p.windows, w)
	p.mu.Unlock()
	return w, nil
}

func (p *Platform) Displays() []system.Display {
	monitors := glfw.GetMonitors()
	out := make([]system.Display, len(monitors))
	for i, m := range monitors {
		x, y := m.GetPos()
		mode := m.GetVideoMode()
		sx, _ := m.GetContentScale()
		out[i] = system.Display{
			ID: i,
			Bounds: geom.Bounds[geom.Pixels]{
				Origin: geom.Pt(geom.Pixels(x), geom.Pixels(y)),
				Size:   geom.Sz(geom.Pixels(mode.Width), geom.Pixels(mode.Height)),
			},
			ScaleFactor: sx,
		}
	}
	return out
}

func (p *Platform) Clipboard() system.Clipboard { return clipboard{} }

func (p *Platform) DispatchOnMain(f func()) {
	done := make(chan struct{})
	p.mainQ <- funcRun{f: f, done: done}
	<-done
}

func (p *Platform) DispatchAfter(d time.Duration, f func()) {
	go func() {
		time.Sleep(d)
		p.mainQ <- funcRun{f: f}
	}()
}

func (p *Platform) NumCPUs() int { return 0 }

func (p *Platform) OpenURL(url string) error {
	return fmt.Errorf("desktop: OpenURL not implemented on this platform")
}

// Run drains mainQ and polls GLFW events until Quit is called.
func (p *Platform) Run() {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for {
		select {
		case <-p.quit:
			return
		case run := <-p.mainQ:
			run.f()
			if run.done != nil {
				close(run.done)
			}
		case <-ticker.C:
			glfw.PollEvents()
		}
	}
}

func (p *Platform) Quit() {
	close(p.quit)
	glfw.Terminate()
}

// drainOnce services exactly one queued main-thread closure, used right
// after NewWindow enqueues its own work so Run need not be started yet
// for the first window to come up.
func (p *Platform) drainOnce() {
	select {
	case run := <-p.mainQ:
		run.f()
		if run.done != nil {
			close(run.done)
		}
	default:
	}
}

type clipboard struct{}

func (clipboard) Read() (string, error) { return glfw.GetClipboardString(), nil }
func (clipboard) Write(s string) error  { glfw.SetClipboardString(s); return nil }

// Window is the GLFW-backed system.Window: a native *glfw.Window plus
// the webgpu Device/Renderer targeting its surface, and the normalized
// InputEvent/frame-tick channels the window/app frame pipeline reads.
type Window struct {
	plat *Platform
	glw  *glfw.Window

	device   *gpu.Device
	renderer *gpu.Renderer

	mu     sync.Mutex
	title  string
	remSz  geom.Pixels
	scale  float32
	closed bool

	events chan system.InputEvent
	frames chan struct{}
	mods   keymap.Modifiers
}

func newWindow(plat *Platform, opts system.WindowOptions) (*Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, boolHint(opts.Decorations))

	w, h := int(opts.Bounds.Size.Width), int(opts.Bounds.Size.Height)
	if w <= 0 {
		w = 1024
	}
	if h <= 0 {
		h = 768
	}
	glw, err := glfw.CreateWindow(w, h, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("desktop: create window: %w", err)
	}

	device, err := gpu.NewDevice(nil)
	if err != nil {
		glw.Destroy()
		return nil, fmt.Errorf("desktop: gpu device: %w", err)
	}
	renderer, err := gpu.NewRenderer(device, 0)
	if err != nil {
		device.Release()
		glw.Destroy()
		return nil, fmt.Errorf("desktop: gpu renderer: %w", err)
	}

	win := &Window{
		plat:     plat,
		glw:      glw,
		device:   device,
		renderer: renderer,
		title:    opts.Title,
		remSz:    16,
		scale:    1,
		events:   make(chan system.InputEvent, 256),
		frames:   make(chan struct{}, 4),
	}

	glw.SetKeyCallback(win.onKey)
	glw.SetMouseButtonCallback(win.onMouseButton)
	glw.SetCursorPosCallback(win.onCursorPos)
	glw.SetScrollCallback(win.onScroll)
	glw.SetRefreshCallback(func(_ *glfw.Window) { win.RequestFrame() })
	glw.Show()

	return win, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (w *Window) Bounds() geom.Bounds[geom.Pixels] {
	var width, height int
	w.plat.DispatchOnMain(func() { width, height = w.glw.GetSize() })
	return geom.Bounds[geom.Pixels]{Size: geom.Sz(geom.Pixels(width), geom.Pixels(height))}
}

func (w *Window) ScaleFactor() float32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

func (w *Window) RemSize() geom.Pixels {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.remSz
}

func (w *Window) SetRemSize(rems geom.Pixels) {
	w.mu.Lock()
	w.remSz = rems
	w.mu.Unlock()
}

func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()
	w.plat.DispatchOnMain(func() { w.glw.SetTitle(title) })
}

func (w *Window) RequestFrame() {
	select {
	case w.frames <- struct{}{}:
	default:
	}
}

func (w *Window) Present(scene *gpu.Scene) error {
	width, height := w.glw.GetFramebufferSize()
	viewport := geom.Sz(geom.DevicePixels(width), geom.DevicePixels(height))
	return w.renderer.Draw(scene, nil, viewport, w.ScaleFactor())
}

func (w *Window) Events() <-chan system.InputEvent { return w.events }
func (w *Window) Frames() <-chan struct{}          { return w.frames }

func (w *Window) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()
	close(w.events)
	w.plat.DispatchOnMain(func() {
		w.renderer = nil
		w.device.Release()
		w.glw.Destroy()
	})
}

func (w *Window) IsClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *Window) send(ev system.InputEvent) {
	select {
	case w.events <- ev:
	default:
	}
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	name := keyName(key)
	m := toModifiers(mods)
	w.mu.Lock()
	w.mods = m
	w.mu.Unlock()
	switch action {
	case glfw.Press, glfw.Repeat:
		w.send(system.KeyDown{Key: name, Modifiers: m, IsRepeat: action == glfw.Repeat})
	case glfw.Release:
		w.send(system.KeyUp{Key: name, Modifiers: m})
	}
}

func (w *Window) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	x, y := w.glw.GetCursorPos()
	pos := geom.Pt(geom.Pixels(x), geom.Pixels(y))
	btn := toMouseButton(button)
	m := toModifiers(mods)
	switch action {
	case glfw.Press:
		w.send(system.MouseDown{Pos: pos, Button: btn, ClickCount: 1, Modifiers: m})
	case glfw.Release:
		w.send(system.MouseUp{Pos: pos, Button: btn, Modifiers: m})
	}
}

func (w *Window) onCursorPos(_ *glfw.Window, x, y float64) {
	w.mu.Lock()
	m := w.mods
	w.mu.Unlock()
	w.send(system.MouseMove{Pos: geom.Pt(geom.Pixels(x), geom.Pixels(y)), Modifiers: m})
}

func (w *Window) onScroll(_ *glfw.Window, xoff, yoff float64) {
	w.send(system.ScrollWheel{
		Delta:   geom.Pt(geom.Pixels(xoff), geom.Pixels(yoff)),
		Phase:   system.ScrollMoved,
		Precise: true,
	})
}

func keyName(key glfw.Key) string {
	if name := glfw.GetKeyName(key, 0); name != "" {
		return name
	}
	return fmt.Sprintf("key(%d)", int(key))
}

func toMouseButton(b glfw.MouseButton) system.MouseButton {
	switch b {
	case glfw.MouseButtonRight:
		return system.MouseRight
	case glfw.MouseButtonMiddle:
		return system.MouseMiddle
	default:
		return system.MouseLeft
	}
}

func toModifiers(mods glfw.ModifierKey) keymap.Modifiers {
	var m keymap.Modifiers
	if mods&glfw.ModControl != 0 {
		m = m.With(keymap.Control)
	}
	if mods&glfw.ModShift != 0 {
		m = m.With(keymap.Shift)
	}
	if mods&glfw.ModAlt != 0 {
		m = m.With(keymap.Alt)
	}
	if mods&glfw.ModSuper != 0 {
		m = m.With(keymap.Meta)
	}
	return m
}
