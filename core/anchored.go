// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/styles"
)

// Corner selects which corner of Anchored's content is pinned to its
// anchor point before flip-then-snap repositioning is applied.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Anchored positions a content element at a point relative to its
// parent, flipping to the opposite corner on each axis if the content
// would otherwise overflow the window, then snapping fully inside the
// window if it still doesn't fit either way — the menu/tooltip/context
// menu positioning algorithm.
type Anchored struct {
	Anchor  geom.Point[geom.Pixels]
	Corner  Corner
	Content Element

	content  *AnyElement
	resolved geom.Bounds[geom.Pixels]
}

// NewAnchored returns an Anchored element pinning content's corner to
// anchor.
func NewAnchored(anchor geom.Point[geom.Pixels], corner Corner, content Element) *Anchored {
	return &Anchored{Anchor: anchor, Corner: corner, Content: content}
}

func (a *Anchored) RequestLayout(cx *WindowContext) LayoutID {
	style := styles.Default()
	style.Position = styles.PositionAbsolute
	a.content = NewAnyElement(a.Content)
	return cx.State.layout.AddNode(style, []LayoutID{a.content.RequestLayout(cx)}, nil)
}

// Resolve computes the final on-screen bounds for content of the given
// size against the window's bounds, applying flip-then-snap on both
// axes independently.
func (a *Anchored) Resolve(contentSize geom.Size[geom.Pixels], window geom.Bounds[geom.Pixels]) geom.Bounds[geom.Pixels] {
	left, top := a.Anchor.X, a.Anchor.Y

	x := left
	if a.Corner == TopRight || a.Corner == BottomRight {
		x = geom.FlipAcrossAnchor(left, contentSize.Width)
	}
	if x+contentSize.Width > window.Right() || x < window.Left() {
		flipped := geom.FlipAcrossAnchor(left, contentSize.Width)
		if a.Corner == TopRight || a.Corner == BottomRight {
			flipped = left
		}
		if flipped+contentSize.Width <= window.Right() && flipped >= window.Left() {
			x = flipped
		}
	}
	x, w := geom.FitInWindow(x, contentSize.Width, window.Left(), window.Right())

	y := top
	if a.Corner == BottomLeft || a.Corner == BottomRight {
		y = geom.FlipAcrossAnchor(top, contentSize.Height)
	}
	if y+contentSize.Height > window.Bottom() || y < window.Top() {
		flipped := geom.FlipAcrossAnchor(top, contentSize.Height)
		if a.Corner == BottomLeft || a.Corner == BottomRight {
			flipped = top
		}
		if flipped+contentSize.Height <= window.Bottom() && flipped >= window.Top() {
			y = flipped
		}
	}
	y, h := geom.FitInWindow(y, contentSize.Height, window.Top(), window.Bottom())

	a.resolved = geom.Bounds[geom.Pixels]{Origin: geom.Pt(x, y), Size: geom.Sz(w, h)}
	return a.resolved
}

func (a *Anchored) Prepaint(cx *WindowContext, bounds geom.Bounds[geom.Pixels]) {
	a.Resolve(bounds.Size, geom.Bounds[geom.Pixels]{Size: cx.Window.Platform.Bounds().Size})
	a.content.Prepaint(cx)
}

func (a *Anchored) Paint(cx *WindowContext, bounds geom.Bounds[geom.Pixels]) {
	cx.State.scene.WithLayer(1000, func() {
		a.content.Paint(cx)
	})
}
