// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen backs system.Platform/system.Window with a headless
// implementation suitable for tests and CI: no native window, no
// display, a synchronous dispatch queue instead of a locked OS thread,
// and a recorded Scene per Present call a test can assert against. This
// mirrors the teacher's driver/offscreen package's role (goosi.Window
// without a real backing surface) generalized to this runtime's
// Platform/Window contract so every SPEC_FULL.md end-to-end scenario
// can run without a GPU or display attached.
package offscreen

import (
	"sync"
	"time"

	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/gpu"
	"github.com/reactivecore/core/system"
)

// Platform is the headless system.Platform: DispatchOnMain runs f
// synchronously on the calling goroutine rather than queuing it for a
// separate OS thread, since there is no native event loop to serialize
// against.
type Platform struct {
	mu      sync.Mutex
	windows []*Window
	display system.Display
	quit    chan struct{}
}

// NewPlatform returns a headless Platform with a single synthetic
// display of the given logical size.
func NewPlatform(displayWidth, displayHeight geom.Pixels) *Platform {
	return &Platform{
		display: system.Display{
			ID:          0,
			Bounds:      geom.Bounds[geom.Pixels]{Size: geom.Sz(displayWidth, displayHeight)},
			ScaleFactor: 1,
		},
		quit: make(chan struct{}),
	}
}

func (p *Platform) NewWindow(opts system.WindowOptions) (system.Window, error) {
	device, err := gpu.NewHeadlessDevice()
	if err != nil {
		return nil, err
	}
	renderer, err := gpu.NewRenderer(device, 0)
	if err != nil {
		device.Release()
		return nil, err
	}

	w := opts.Bounds.Size.Width
	h := opts.Bounds.Size.Height
	if w <= 0 {
		w = 1024
	}
	if h <= 0 {
		h = 768
	}

	win := &Window{
		plat:     p,
		device:   device,
		renderer: renderer,
		bounds:   geom.Bounds[geom.Pixels]{Size: geom.Sz(w, h)},
		scale:    1,
		remSz:    16,
		events:   make(chan system.InputEvent, 256),
		frames:   make(chan struct{}, 4),
	}
	p.mu.Lock()
	p.windows = append(p.windows, win)
	p.mu.Unlock()
	return win, nil
}

func (p *Platform) Displays() []system.Display { return []system.Display{p.display} }

func (p *Platform) Clipboard() system.Clipboard { return &memClipboard{} }

func (p *Platform) DispatchOnMain(f func()) { f() }

func (p *Platform) DispatchAfter(d time.Duration, f func()) {
	go func() {
		time.Sleep(d)
		f()
	}()
}

func (p *Platform) NumCPUs() int { return 0 }

func (p *Platform) OpenURL(url string) error { return nil }

// Run blocks until Quit is called; nothing polls here since there is no
// native event source, matching the teacher's offscreen app loop which
// only exists to satisfy the interface.
func (p *Platform) Run() {
	<-p.quit
}

func (p *Platform) Quit() {
	select {
	case <-p.quit:
	default:
		close(p.quit)
	}
}

type memClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *memClipboard) Read() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *memClipboard) Write(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = s
	return nil
}

// Window is the headless system.Window: no native handle, a buffered
// InputEvent channel a test injects into via Inject, and the last
// Present'd Scene retained for assertions.
type Window struct {
	plat     *Platform
	device   *gpu.Device
	renderer *gpu.Renderer

	mu      sync.Mutex
	bounds  geom.Bounds[geom.Pixels]
	scale   float32
	remSz   geom.Pixels
	title   string
	closed  bool
	lastScene *gpu.Scene

	events chan system.InputEvent
	frames chan struct{}
}

func (w *Window) Bounds() geom.Bounds[geom.Pixels] {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bounds
}

// Resize changes the window's logical bounds, as a test simulating a
// live resize would; it does not itself request a frame.
func (w *Window) Resize(size geom.Size[geom.Pixels]) {
	w.mu.Lock()
	w.bounds.Size = size
	w.mu.Unlock()
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
}

func (w *Window) RequestFrame() {
	select {
	case w.frames <- struct{}{}:
	default:
	}
}

// Present hands scene to the headless renderer (exercising tessellation
// and atlas bookkeeping the same as a real backend would) and retains
// it so LastScene can assert on what a frame actually painted.
func (w *Window) Present(scene *gpu.Scene) error {
	viewport := geom.Sz(geom.DevicePixels(w.Bounds().Size.Width), geom.DevicePixels(w.Bounds().Size.Height))
	if err := w.renderer.Draw(scene, nil, viewport, w.ScaleFactor()); err != nil {
		return err
	}
	w.mu.Lock()
	w.lastScene = scene
	w.mu.Unlock()
	return nil
}

// LastScene returns the most recently Present'd Scene, or nil if no
// frame has been painted yet.
func (w *Window) LastScene() *gpu.Scene {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastScene
}

func (w *Window) Events() <-chan system.InputEvent { return w.events }
func (w *Window) Frames() <-chan struct{}          { return w.frames }

// Inject delivers ev to the window's event stream as if a backend had
// produced it, the hook tests use to drive key/mouse/scroll scenarios
// without a real display.
func (w *Window) Inject(ev system.InputEvent) {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}
	select {
	case w.events <- ev:
	default:
	}
}

func (w *Window) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()
	close(w.events)
	if w.device != nil {
		w.device.Release()
	}
}

func (w *Window) IsClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}
