// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/keymap"
)

type counterState struct{ n int }

// TestCounterNotify covers end-to-end scenario 1: three notify() calls
// in one turn fire the observer exactly once, with the final value.
func TestCounterNotify(t *testing.T) {
	a := NewAppContext(16, 1)
	var seen []int
	entity := NewModel(a, func(cx *ModelContext[counterState]) counterState {
		return counterState{}
	})

	cx := &ModelContext[counterState]{AppContext: a, id: entity.Id()}
	cx.Observe(func() {
		state, err := entity.read()
		require.NoError(t, err)
		seen = append(seen, state.n)
	})

	for i := 1; i <= 3; i++ {
		require.NoError(t, cx.Update(func(s *counterState, cx *ModelContext[counterState]) {
			s.n = i
			cx.Notify()
		}))
	}
	a.obs.drainNotify()

	assert.Equal(t, []int{3}, seen, "observer must fire exactly once, with the final mutated value")
}

// TestFocusChainAction covers end-to-end scenario 2: a chord bound under
// a descendant's context only fires when that descendant (or a node
// beneath it) is focused, not when only an ancestor lacking that context
// is focused.
func TestFocusChainAction(t *testing.T) {
	focus := NewFocusTree()
	root := focus.NewHandle(noFocus, "Workspace")
	child := focus.NewHandle(root, "Pane")

	km := keymap.New()
	km.Bind(keymap.Chord("Meta+W"), keymap.MustParsePredicate("Pane"), "CloseItem")

	registry := NewActionRegistry()
	dispatch := NewDispatcher(focus, km, registry)

	var fired int
	dispatch.OnAction(child, "CloseItem", func(Action) bool {
		fired++
		return true
	})
	dispatch.OnAction(root, "CloseItem", func(Action) bool {
		fired++
		return true
	})

	chord := keymap.Chord("Meta+W")

	focus.Focus(root)
	_, handled := dispatch.Dispatch(chord)
	assert.False(t, handled, "focusing only the root, which lacks the Pane context, must not fire CloseItem")
	assert.Equal(t, 0, fired)

	focus.Focus(child)
	_, handled = dispatch.Dispatch(chord)
	assert.True(t, handled, "focusing the child, whose own context is Pane, must fire CloseItem")
	assert.Equal(t, 1, fired)
}

// TestModalEscapeRestoresFocus covers end-to-end scenario 3: pushing a
// modal transfers focus to it, and popping it on Escape restores focus
// to the previously focused node, notifying that node's focus observers
// exactly once.
func TestModalEscapeRestoresFocus(t *testing.T) {
	state := &WindowState{Focus: NewFocusTree()}
	a := state.Focus.NewHandle(noFocus)
	m := state.Focus.NewHandle(noFocus)

	var refocusedA int
	state.Focus.OnFocus(a, func() { refocusedA++ })

	state.Focus.Focus(a)
	refocusedA = 0 // ignore the initial OnFocus fire from the Focus(a) call above

	// PushOverlay's dismiss callback is the modal's own responsibility for
	// restoring whatever was focused before it, the same way a real
	// dialog's close handler captures its invoking node.
	state.PushOverlay(m, true, func() {
		state.Focus.Destroy(m)
		state.Focus.Focus(a)
	})
	assert.Equal(t, m, state.Focus.Current(), "pushing a modal overlay must transfer focus to it")
	assert.True(t, state.HasModal())

	// Escape: pop the modal, running its dismiss callback.
	state.PopOverlay()

	assert.False(t, state.HasModal())
	assert.Equal(t, a, state.Focus.Current(), "dismissing the modal must restore focus to A")
	assert.Equal(t, 1, refocusedA, "A's focus observers must fire exactly once across the whole push/pop")
}

// TestScrollClamps covers end-to-end scenario 4: an oversized scroll
// delta clamps to the valid range instead of overflowing or panicking.
// ScrollBy follows the wheel convention "negative scrolls down" (deeper
// into content), so a delta of -100000 scrolls past the end of the list.
func TestScrollClamps(t *testing.T) {
	h := &ScrollHandle{}
	h.SetExtent(1000*20, 100) // 1000 rows of height 20, 100px viewport

	require.NotPanics(t, func() {
		h.ScrollBy(-100000)
	})
	assert.Equal(t, geom.Pixels(1000*20-100), h.Offset())

	require.NotPanics(t, func() {
		h.ScrollBy(1000000)
	})
	assert.Equal(t, geom.Pixels(0), h.Offset(), "an oversized positive delta clamps to 0, not a negative offset")
}

// TestAnchoredFlip covers end-to-end scenario 5: an anchored element
// pinned at the window's far corner flips to the opposite corner so its
// resolved bounds stay fully inside the viewport.
func TestAnchoredFlip(t *testing.T) {
	viewport := geom.Bounds[geom.Pixels]{Size: geom.Sz[geom.Pixels](800, 600)}
	anchored := NewAnchored(geom.Pt[geom.Pixels](viewport.Size.Width, viewport.Size.Height), TopLeft, nil)

	bounds := anchored.Resolve(geom.Sz[geom.Pixels](50, 50), viewport)

	assert.GreaterOrEqual(t, bounds.Origin.X, viewport.Left())
	assert.GreaterOrEqual(t, bounds.Origin.Y, viewport.Top())
	assert.LessOrEqual(t, bounds.Right(), viewport.Right())
	assert.LessOrEqual(t, bounds.Bottom(), viewport.Bottom())
}
