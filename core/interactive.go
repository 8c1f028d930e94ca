// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/jinzhu/copier"

	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/styles"
)

// StateStyle holds a base style refinement plus the refinements layered
// on top of it while hovered, pressed ("active"), or focused, the same
// style-by-interaction-state shape the teacher's Styler/OnWidgetAdder
// hooks produce by running style funcs conditionally.
type StateStyle struct {
	Base   styles.StyleRefinement
	Hover  *styles.StyleRefinement
	Active *styles.StyleRefinement
	Focus  *styles.StyleRefinement
}

// Resolve layers the refinements that currently apply, in
// hover-then-focus-then-active priority order, over a deep copy of
// Base, so repeated calls each get an independent refinement to hand to
// Style.Apply rather than aliasing the declaration shared across
// frames. Only fields actually set (non-nil pointers) in a higher
// priority refinement override a lower one's, via copier's IgnoreEmpty
// merge semantics.
func (s StateStyle) Resolve(hovered, focused, active bool) styles.StyleRefinement {
	var out styles.StyleRefinement
	copier.CopyWithOption(&out, &s.Base, copier.Option{DeepCopy: true})
	if hovered {
		mergeRefinement(&out, s.Hover)
	}
	if focused {
		mergeRefinement(&out, s.Focus)
	}
	if active {
		mergeRefinement(&out, s.Active)
	}
	return out
}

func mergeRefinement(dst *styles.StyleRefinement, src *styles.StyleRefinement) {
	if src == nil {
		return
	}
	copier.CopyWithOption(dst, src, copier.Option{IgnoreEmpty: true, DeepCopy: true})
}

// InteractiveElement wraps another Element to add hover/active/focus
// styling and click/hit-test participation, the element tree's
// InteractiveElement/on_click/on_hover capability.
type InteractiveElement struct {
	Inner  Element
	States StateStyle
	Focus  FocusId

	OnClick func()

	hovered bool
	active  bool
	bounds  geom.Bounds[geom.Pixels]
}

// NewInteractive wraps inner with state-dependent styling. The wrapper
// does not restyle inner itself; it tracks hover/active/focus state, and
// the refinement for the current state is available from ResolvedStyle.
func NewInteractive(inner Element, states StateStyle, focus FocusId) *InteractiveElement {
	return &InteractiveElement{Inner: inner, States: states, Focus: focus}
}

func (e *InteractiveElement) RequestLayout(cx *WindowContext) LayoutID {
	return e.Inner.RequestLayout(cx)
}

func (e *InteractiveElement) Prepaint(cx *WindowContext, bounds geom.Bounds[geom.Pixels]) {
	e.bounds = bounds
	cx.State.RegisterHitTarget(bounds, e)
	e.Inner.Prepaint(cx, bounds)
}

func (e *InteractiveElement) Paint(cx *WindowContext, bounds geom.Bounds[geom.Pixels]) {
	e.Inner.Paint(cx, bounds)
}

// ResolvedStyle returns the style refinement that applies given this
// element's current hovered/active state and whether Focus is the
// window's currently focused node.
func (e *InteractiveElement) ResolvedStyle(cx *WindowContext) styles.StyleRefinement {
	focused := cx.State.Focus.Current() == e.Focus && e.Focus != noFocus
	return e.States.Resolve(e.hovered, focused, e.active)
}

// HandlePointer updates hover/active tracking from a mouse position and
// button state, firing OnClick on a press-then-release within the
// element's last-painted bounds. The window/app frame pipeline calls
// this from its input dispatch step before Paint, so the next frame's
// ResolvedStyle already reflects it.
func (e *InteractiveElement) HandlePointer(pos geom.Point[geom.Pixels], pressed bool) {
	inside := e.bounds.Contains(pos)
	e.hovered = inside
	if pressed && inside {
		e.active = true
		return
	}
	if !pressed && e.active {
		e.active = false
		if inside && e.OnClick != nil {
			e.OnClick()
		}
	}
}
