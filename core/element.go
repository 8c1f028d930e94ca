// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/gpu"
	"github.com/reactivecore/core/styles"
)

// Element is the per-frame, three-phase building block of the element
// tree. RequestLayout registers this element's layout node (and its
// children's), returning the id Solve will assign bounds to. Prepaint
// runs, depth first, after layout is solved but before painting: it is
// where hit targets are registered and children's own Prepaint is
// invoked. Paint emits this element's primitives into the window's
// Scene, again depth first.
//
// Transient by design: a fresh Element tree is built every frame from
// the current reactive state, the same "elements are built new each
// paint and thrown away" contract the per-frame render tree names.
type Element interface {
	RequestLayout(cx *WindowContext) LayoutID
	Prepaint(cx *WindowContext, bounds geom.Bounds[geom.Pixels])
	Paint(cx *WindowContext, bounds geom.Bounds[geom.Pixels])
}

// AnyElement type-erases a concrete Element plus the bounds layout
// assigned it, mirroring the teacher's AnyWidget/AsWidget() erasure
// idiom with a plain Go interface value instead of an embedded base
// type.
type AnyElement struct {
	elem   Element
	id     LayoutID
	bounds geom.Bounds[geom.Pixels]
}

// NewAnyElement wraps e for inclusion as a child of another element.
func NewAnyElement(e Element) *AnyElement { return &AnyElement{elem: e} }

// RequestLayout delegates to the wrapped element and records its id.
func (a *AnyElement) RequestLayout(cx *WindowContext) LayoutID {
	a.id = a.elem.RequestLayout(cx)
	return a.id
}

// Prepaint looks up the solved bounds for this element's layout node and
// runs the wrapped element's Prepaint with them.
func (a *AnyElement) Prepaint(cx *WindowContext) {
	a.bounds = cx.State.layout.Bounds(a.id)
	a.elem.Prepaint(cx, a.bounds)
}

// Paint runs the wrapped element's Paint with its solved bounds.
func (a *AnyElement) Paint(cx *WindowContext) {
	a.elem.Paint(cx, a.bounds)
}

// Bounds returns the bounds computed for this element at the last Prepaint.
func (a *AnyElement) Bounds() geom.Bounds[geom.Pixels] { return a.bounds }

// Div is a styled box that lays out and paints a list of children,
// the workhorse container element (grounded on the teacher's Frame).
type Div struct {
	Style    styles.Style
	Children []*AnyElement
}

// NewDiv returns an empty Div with the given style.
func NewDiv(style styles.Style) *Div { return &Div{Style: style} }

// Child appends e as a child and returns d, for chained construction.
func (d *Div) Child(e Element) *Div {
	d.Children = append(d.Children, NewAnyElement(e))
	return d
}

func (d *Div) RequestLayout(cx *WindowContext) LayoutID {
	ids := make([]LayoutID, len(d.Children))
	for i, c := range d.Children {
		ids[i] = c.RequestLayout(cx)
	}
	return cx.State.layout.AddNode(d.Style, ids, nil)
}

func (d *Div) Prepaint(cx *WindowContext, bounds geom.Bounds[geom.Pixels]) {
	for _, c := range d.Children {
		c.Prepaint(cx)
	}
}

func (d *Div) Paint(cx *WindowContext, bounds geom.Bounds[geom.Pixels]) {
	if d.Style.Background != nil || d.Style.BorderColor != nil {
		cx.State.scene.PaintQuad(gpu.Quad{
			Bounds:       bounds,
			Background:   gpu.SolidPaint(d.Style.Background),
			BorderColor:  d.Style.BorderColor,
			BorderWidths: d.Style.BorderWidths,
			CornerRadii:  d.Style.CornerRadii,
		})
	}
	for _, c := range d.Children {
		c.Paint(cx)
	}
}

// Leaf is an element with no children whose intrinsic size comes from a
// Measurer and whose paint is a caller-supplied callback; package text
// builds shaped glyph runs on top of this.
type Leaf struct {
	Style   styles.Style
	Measure Measurer
	PaintFn func(cx *WindowContext, bounds geom.Bounds[geom.Pixels])
}

func (l *Leaf) RequestLayout(cx *WindowContext) LayoutID {
	return cx.State.layout.AddNode(l.Style, nil, l.Measure)
}

func (l *Leaf) Prepaint(cx *WindowContext, bounds geom.Bounds[geom.Pixels]) {}

func (l *Leaf) Paint(cx *WindowContext, bounds geom.Bounds[geom.Pixels]) {
	if l.PaintFn != nil {
		l.PaintFn(cx, bounds)
	}
}
