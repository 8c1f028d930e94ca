// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/styles"
)

// ScrollHandle tracks one scrollable region's offset and content extent,
// grounded on the uniform list's ScrollHandle: a shared, externally
// readable/writable cursor into a region taller than its viewport.
type ScrollHandle struct {
	offset   geom.Pixels
	content  geom.Pixels
	viewport geom.Pixels
}

// Offset returns the current scroll offset (0 at the top).
func (h *ScrollHandle) Offset() geom.Pixels { return h.offset }

// SetExtent records the region's content height and viewport height,
// clamping the current offset to the new valid range. Called once per
// frame by UniformList before painting.
func (h *ScrollHandle) SetExtent(content, viewport geom.Pixels) {
	h.content, h.viewport = content, viewport
	h.clamp()
}

// ScrollBy shifts the offset by a wheel delta (negative scrolls down,
// further into content), clamped to [0, content-viewport].
func (h *ScrollHandle) ScrollBy(delta geom.Pixels) {
	h.offset -= delta
	h.clamp()
}

// ScrollTo sets the offset directly, clamped to the valid range.
func (h *ScrollHandle) ScrollTo(offset geom.Pixels) {
	h.offset = offset
	h.clamp()
}

func (h *ScrollHandle) clamp() {
	max := h.content - h.viewport
	if max < 0 {
		max = 0
	}
	if h.offset < 0 {
		h.offset = 0
	}
	if h.offset > max {
		h.offset = max
	}
}

// UniformList virtualizes a long list of same-height rows, building and
// laying out only the rows that intersect the current viewport, the
// teacher's uniform_list pattern for scrolling a collection too large to
// build an Element per row for every frame.
type UniformList struct {
	Style     styles.Style
	ItemCount int
	RowHeight geom.Pixels
	Handle    *ScrollHandle
	Build     func(index int) Element

	visible []*AnyElement
	firstIx int
}

// NewUniformList returns a UniformList of count rows of height rowHeight,
// each built on demand by build, scrolled via handle.
func NewUniformList(style styles.Style, count int, rowHeight geom.Pixels, handle *ScrollHandle, build func(index int) Element) *UniformList {
	return &UniformList{Style: style, ItemCount: count, RowHeight: rowHeight, Handle: handle, Build: build}
}

func (u *UniformList) RequestLayout(cx *WindowContext) LayoutID {
	// The viewport height used to pick visible rows is only known once
	// the container's own size is resolved, which for a typical
	// Size.Height: 100% element equals the parent's allotted cross size;
	// approximate it here with the scroll handle's last-frame viewport,
	// which converges to the correct value within one frame of a resize.
	viewport := u.Handle.viewport
	if viewport <= 0 {
		viewport = u.RowHeight * 10
	}
	content := u.RowHeight * geom.Pixels(u.ItemCount)
	u.Handle.SetExtent(content, viewport)

	first := int(u.Handle.Offset() / u.RowHeight)
	if first < 0 {
		first = 0
	}
	visibleCount := int(viewport/u.RowHeight) + 2
	last := first + visibleCount
	if last > u.ItemCount {
		last = u.ItemCount
	}

	u.firstIx = first
	u.visible = u.visible[:0]
	ids := make([]LayoutID, 0, last-first)
	for i := first; i < last; i++ {
		el := NewAnyElement(u.Build(i))
		u.visible = append(u.visible, el)
		ids = append(ids, el.RequestLayout(cx))
	}
	return cx.State.layout.AddNode(u.Style, ids, nil)
}

func (u *UniformList) Prepaint(cx *WindowContext, bounds geom.Bounds[geom.Pixels]) {
	u.Handle.SetExtent(u.Handle.content, bounds.Size.Height)
	for _, el := range u.visible {
		el.Prepaint(cx)
	}
}

func (u *UniformList) Paint(cx *WindowContext, bounds geom.Bounds[geom.Pixels]) {
	cx.State.scene.WithContentMask(bounds, func() {
		for _, el := range u.visible {
			el.Paint(cx)
		}
	})
}
