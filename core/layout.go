// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/styles"
)

// LayoutID identifies one node in a frame's flex layout tree, built
// during RequestLayout and consumed by Prepaint/Paint for that same frame.
type LayoutID uint64

// Measurer computes a leaf's intrinsic content size given the space
// available to it, e.g. a text element asking the TextSystem to shape
// and measure its run. Non-leaf elements pass a nil Measurer and are
// sized purely from their children and Style.
type Measurer func(available geom.Size[geom.Pixels]) geom.Size[geom.Pixels]

type layoutNode struct {
	style    styles.Style
	children []LayoutID
	measure  Measurer

	// minContent is the bottom-up minimum size from sizeUp, alloc the
	// space allotted by the parent, and bounds the final solved box.
	minContent geom.Size[geom.Pixels]
	alloc      geom.Size[geom.Pixels]
	bounds     geom.Bounds[geom.Pixels]
}

// LayoutTree accumulates nodes for one frame via RequestLayout, then
// solves the whole tree in three passes the way the teacher's
// LayoutPasses{SizeUpPass,SizeDownPass,SizeFinalPass} does: SizeUp
// computes each node's bottom-up minimum content size; SizeDown resolves
// definite sizes top-down against the parent's allocated space; SizeFinal
// distributes remaining flex space and assigns final Bounds.
type LayoutTree struct {
	nodes  []layoutNode
	remSize geom.Pixels
}

// NewLayoutTree returns an empty LayoutTree resolving rem lengths
// against remSize.
func NewLayoutTree(remSize geom.Pixels) *LayoutTree {
	if remSize == 0 {
		remSize = 16
	}
	return &LayoutTree{remSize: remSize}
}

// AddNode registers a node with the given style, children, and optional
// leaf measurer, returning its LayoutID.
func (t *LayoutTree) AddNode(style styles.Style, children []LayoutID, measure Measurer) LayoutID {
	t.nodes = append(t.nodes, layoutNode{style: style, children: children, measure: measure})
	return LayoutID(len(t.nodes) - 1)
}

func (t *LayoutTree) node(id LayoutID) *layoutNode { return &t.nodes[id] }

// Solve runs all three passes for the subtree rooted at root, assigning
// it the given outer bounds. The solved bounds of each node are stored on
// the tree and read back with Bounds.
func (t *LayoutTree) Solve(root LayoutID, outer geom.Bounds[geom.Pixels]) {
	t.sizeUp(root)
	t.sizeFinal(root, outer)
}

// sizeUp computes minContent bottom-up: for a leaf, its Measurer result
// (zero-size if absent); for a container, the sum (main axis) / max
// (cross axis) of its children's minContent plus its own gap/padding.
func (t *LayoutTree) sizeUp(id LayoutID) geom.Size[geom.Pixels] {
	n := t.node(id)
	if n.measure != nil {
		n.minContent = n.measure(geom.Size[geom.Pixels]{})
		return n.minContent
	}
	axis := n.style.FlexDirection.Axis()
	var main, cross geom.Pixels
	for i, c := range n.children {
		cs := t.sizeUp(c)
		if t.node(c).style.Position == styles.PositionAbsolute {
			continue
		}
		if i > 0 {
			main += n.style.Gap
		}
		main += cs.Along(axis)
		if cc := cs.Along(axis.Cross()); cc > cross {
			cross = cc
		}
	}
	padEdges := n.style.Padding.Resolved(t.remSize, 0, 0)
	pad := padEdges.Along(axis) + n.style.BorderWidths.Along(axis)
	padCross := padEdges.Along(axis.Cross()) + n.style.BorderWidths.Along(axis.Cross())
	n.minContent = geom.Size[geom.Pixels]{}.SetAlong(axis, main+pad).SetAlong(axis.Cross(), cross+padCross)
	return n.minContent
}

// sizeFinal resolves the node's own size against outer (SizeDown),
// positions and sizes its children along the main axis distributing flex
// grow/shrink space, and assigns n.bounds (SizeFinal), recursing into
// each child with its own solved bounds.
func (t *LayoutTree) sizeFinal(id LayoutID, outer geom.Bounds[geom.Pixels]) {
	n := t.node(id)
	resolved := t.resolveOwnSize(n, outer.Size)
	n.bounds = geom.Bnds(outer.Origin, resolved)
	if n.style.Display == styles.None || len(n.children) == 0 {
		return
	}

	axis := n.style.FlexDirection.Axis()
	content := t.contentBox(n, resolved)
	t.layoutChildren(n, axis, content)
}

// resolveOwnSize resolves Style.Size against the parent's extent,
// falling back to the bottom-up minContent for Auto dimensions, clamped
// to MinSize/MaxSize.
func (t *LayoutTree) resolveOwnSize(n *layoutNode, parent geom.Size[geom.Pixels]) geom.Size[geom.Pixels] {
	w := t.resolveLen(n.style.Size.Width, parent.Width, n.minContent.Width)
	h := t.resolveLen(n.style.Size.Height, parent.Height, n.minContent.Height)
	if minW, ok := n.style.MinSize.Width.Resolve(t.remSize, parent.Width); ok && w < minW {
		w = minW
	}
	if maxW, ok := n.style.MaxSize.Width.Resolve(t.remSize, parent.Width); ok && w > maxW {
		w = maxW
	}
	if minH, ok := n.style.MinSize.Height.Resolve(t.remSize, parent.Height); ok && h < minH {
		h = minH
	}
	if maxH, ok := n.style.MaxSize.Height.Resolve(t.remSize, parent.Height); ok && h > maxH {
		h = maxH
	}
	return geom.Sz(w, h)
}

func (t *LayoutTree) resolveLen(l geom.Length, parentExtent, fallback geom.Pixels) geom.Pixels {
	if v, ok := l.Resolve(t.remSize, parentExtent); ok {
		return v
	}
	return fallback
}

func (t *LayoutTree) contentBox(n *layoutNode, size geom.Size[geom.Pixels]) geom.Bounds[geom.Pixels] {
	p := n.style.Padding.Resolved(t.remSize, size.Width, size.Height)
	pad := geom.Edges[geom.Pixels]{
		Top:    p.Top + n.style.BorderWidths.Top,
		Right:  p.Right + n.style.BorderWidths.Right,
		Bottom: p.Bottom + n.style.BorderWidths.Bottom,
		Left:   p.Left + n.style.BorderWidths.Left,
	}
	origin := geom.Pt(n.bounds.Origin.X+pad.Left, n.bounds.Origin.Y+pad.Top)
	inner := geom.Sz(size.Width-pad.Left-pad.Right, size.Height-pad.Top-pad.Bottom)
	return geom.Bnds(origin, inner)
}

// layoutChildren distributes content (the parent's content box) among
// the flow children along axis using flex grow/shrink, then recurses
// SizeFinal into each child (and independently positions any
// Position:Absolute children via Inset).
func (t *LayoutTree) layoutChildren(n *layoutNode, axis geom.Axis, content geom.Bounds[geom.Pixels]) {
	flow := make([]LayoutID, 0, len(n.children))
	for _, c := range n.children {
		if t.node(c).style.Position == styles.PositionAbsolute {
			t.layoutAbsolute(c, content)
			continue
		}
		flow = append(flow, c)
	}
	if len(flow) == 0 {
		return
	}

	total := content.Size.Along(axis)
	gapTotal := n.style.Gap * geom.Pixels(len(flow)-1)
	basisSum := gapTotal
	var totalGrow, totalShrink float32
	basis := make([]geom.Pixels, len(flow))
	for i, c := range flow {
		cn := t.node(c)
		b := t.resolveLen(cn.style.FlexBasis, total, cn.minContent.Along(axis))
		basis[i] = b
		basisSum += b
		totalGrow += cn.style.FlexGrow
		totalShrink += cn.style.FlexShrink
	}
	free := total - basisSum
	for i, c := range flow {
		cn := t.node(c)
		size := basis[i]
		if free > 0 && totalGrow > 0 {
			size += geom.Pixels(float32(free) * (cn.style.FlexGrow / totalGrow))
		} else if free < 0 && totalShrink > 0 {
			size += geom.Pixels(float32(free) * (cn.style.FlexShrink / totalShrink))
		}
		if size < 0 {
			size = 0
		}
		basis[i] = size
	}

	used := gapTotal
	for _, b := range basis {
		used += b
	}
	extra := total - used
	pos, step := mainAxisStart(n.style.Justify, extra, len(flow))

	cursor := content.Origin.Along(axis) + pos
	for i, c := range flow {
		cn := t.node(c)
		cross := t.crossSize(n, cn, content.Size.Along(axis.Cross()))
		crossPos := t.crossPosition(n, cn, content, axis, cross)
		origin := axisPoint(axis, cursor, crossPos)
		size := geom.Size[geom.Pixels]{}.SetAlong(axis, basis[i]).SetAlong(axis.Cross(), cross)
		t.sizeFinal(c, geom.Bnds(origin, size))
		cursor += basis[i] + n.style.Gap + step
	}
}

func (t *LayoutTree) layoutAbsolute(id LayoutID, content geom.Bounds[geom.Pixels]) {
	n := t.node(id)
	left := t.resolveLen(n.style.Inset.Left, content.Size.Width, 0)
	top := t.resolveLen(n.style.Inset.Top, content.Size.Height, 0)
	origin := geom.Pt(content.Origin.X+left, content.Origin.Y+top)
	size := t.resolveOwnSize(n, content.Size)
	t.sizeFinal(id, geom.Bnds(origin, size))
}

func (t *LayoutTree) crossSize(parent *layoutNode, child *layoutNode, crossAvail geom.Pixels) geom.Pixels {
	axis := parent.style.FlexDirection.Axis().Cross()
	if v, ok := t.sizeAlong(child.style, axis).Resolve(t.remSize, crossAvail); ok {
		return v
	}
	align := child.style.AlignSelf
	if align == styles.AlignStart && parent.style.AlignItems != styles.AlignStart {
		align = parent.style.AlignItems
	}
	if align == styles.AlignStretch {
		return crossAvail
	}
	return child.minContent.Along(axis)
}

func (t *LayoutTree) sizeAlong(s styles.Style, axis geom.Axis) geom.Length {
	if axis == geom.AxisHorizontal {
		return s.Size.Width
	}
	return s.Size.Height
}

func (t *LayoutTree) crossPosition(parent *layoutNode, child *layoutNode, content geom.Bounds[geom.Pixels], axis geom.Axis, childCross geom.Pixels) geom.Pixels {
	avail := content.Size.Along(axis.Cross())
	align := child.style.AlignSelf
	if align == styles.AlignStart && parent.style.AlignItems != styles.AlignStart {
		align = parent.style.AlignItems
	}
	base := content.Origin.Along(axis.Cross())
	switch align {
	case styles.AlignEnd:
		return base + avail - childCross
	case styles.AlignCenter:
		return base + (avail-childCross)/2
	default:
		return base
	}
}

// mainAxisStart returns the starting offset and per-gap extra spacing
// for the given justification, given the leftover space and item count.
func mainAxisStart(j styles.Justify, extra geom.Pixels, n int) (start, step geom.Pixels) {
	if extra < 0 {
		extra = 0
	}
	switch j {
	case styles.JustifyEnd:
		return extra, 0
	case styles.JustifyCenter:
		return extra / 2, 0
	case styles.JustifySpaceBetween:
		if n > 1 {
			return 0, extra / geom.Pixels(n-1)
		}
		return 0, 0
	case styles.JustifySpaceAround:
		if n > 0 {
			step := extra / geom.Pixels(n)
			return step / 2, step
		}
		return 0, 0
	case styles.JustifySpaceEvenly:
		step := extra / geom.Pixels(n+1)
		return step, step
	default:
		return 0, 0
	}
}

func axisPoint(axis geom.Axis, main, cross geom.Pixels) geom.Point[geom.Pixels] {
	if axis == geom.AxisHorizontal {
		return geom.Pt(main, cross)
	}
	return geom.Pt(cross, main)
}

// Bounds returns the solved bounds for id after Solve has run.
func (t *LayoutTree) Bounds(id LayoutID) geom.Bounds[geom.Pixels] {
	return t.node(id).bounds
}
