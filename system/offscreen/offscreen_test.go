// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/system"
)

// newTestWindow builds a Window bypassing NewWindow (and therefore the
// real GPU device/renderer it creates), exercising only the
// dispatch/bookkeeping behavior a test double needs.
func newTestWindow(bounds geom.Bounds[geom.Pixels]) *Window {
	return &Window{
		bounds: bounds,
		scale:  1,
		remSz:  16,
		events: make(chan system.InputEvent, 16),
		frames: make(chan struct{}, 4),
	}
}

func TestPlatformDisplaysAndClipboard(t *testing.T) {
	p := NewPlatform(1920, 1080)
	displays := p.Displays()
	require.Len(t, displays, 1)
	assert.Equal(t, geom.Pixels(1920), displays[0].Bounds.Size.Width)
	assert.Equal(t, geom.Pixels(1080), displays[0].Bounds.Size.Height)

	cb := p.Clipboard()
	require.NoError(t, cb.Write("hello"))
	got, err := cb.Read()
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestWindowInjectAndEvents(t *testing.T) {
	w := newTestWindow(geom.Bounds[geom.Pixels]{Size: geom.Sz[geom.Pixels](800, 600)})

	ev := system.KeyDown{Key: "a"}
	w.Inject(ev)

	select {
	case got := <-w.Events():
		assert.Equal(t, ev, got)
	default:
		t.Fatal("expected an injected event to be readable")
	}

	w.Close()
	assert.True(t, w.IsClosed())

	// Injecting into a closed window must be a silent no-op, not a panic
	// from sending on a closed channel.
	assert.NotPanics(t, func() { w.Inject(ev) })
}

func TestWindowResizeAndRemSize(t *testing.T) {
	w := newTestWindow(geom.Bounds[geom.Pixels]{Size: geom.Sz[geom.Pixels](800, 600)})

	w.Resize(geom.Sz[geom.Pixels](1024, 768))
	b := w.Bounds()
	assert.Equal(t, geom.Pixels(1024), b.Size.Width)
	assert.Equal(t, geom.Pixels(768), b.Size.Height)

	w.SetRemSize(20)
	assert.Equal(t, geom.Pixels(20), w.RemSize())
}

func TestPlatformQuitIdempotent(t *testing.T) {
	p := NewPlatform(1024, 768)
	assert.NotPanics(t, func() {
		p.Quit()
		p.Quit()
	})
}
