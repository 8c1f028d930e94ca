// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/reactivecore/core/coreerr"
	"github.com/reactivecore/core/geom"
)

// FillRule selects how overlapping sub-paths combine when filling.
type FillRule int

const (
	// NonZero fills using the non-zero winding rule, the only rule
	// Path fills use (per the scene's "fills use non-zero winding" rule).
	NonZero FillRule = iota
)

// Path is an immutable, built path: either a fill or a stroke of some
// width, over a flattened point sequence grouped into sub-paths by
// subPathEnds.
type Path struct {
	Points      []geom.Point[geom.Pixels]
	subPathEnds []int
	Stroke      bool
	StrokeWidth geom.Pixels
	Fill        Paint
	FillRule    FillRule
}

// PathBuilder incrementally constructs a Path via MoveTo/LineTo/curve/
// arc calls, grounded on the fill()/stroke(width) constructor pair and
// move_to/line_to/quadratic_bezier_to/cubic_bezier_to/arc_to/close verbs.
type PathBuilder struct {
	points      []geom.Point[geom.Pixels]
	subPathEnds []int
	cur         geom.Point[geom.Pixels]
	started     bool
	stroke      bool
	strokeWidth geom.Pixels
	fill        Paint
}

// NewFillPath returns a PathBuilder that will build a filled Path.
func NewFillPath(fill Paint) *PathBuilder {
	return &PathBuilder{fill: fill}
}

// NewStrokePath returns a PathBuilder that will build a stroked Path of
// the given width.
func NewStrokePath(width geom.Pixels, stroke Paint) *PathBuilder {
	return &PathBuilder{stroke: true, strokeWidth: width, fill: stroke}
}

// MoveTo starts a new sub-path at p.
func (b *PathBuilder) MoveTo(p geom.Point[geom.Pixels]) *PathBuilder {
	b.closeSubPath()
	b.points = append(b.points, p)
	b.cur = p
	b.started = true
	return b
}

// LineTo appends a straight segment from the current point to p.
func (b *PathBuilder) LineTo(p geom.Point[geom.Pixels]) *PathBuilder {
	b.points = append(b.points, p)
	b.cur = p
	return b
}

// QuadraticBezierTo flattens a quadratic curve through ctrl to end into
// line segments.
func (b *PathBuilder) QuadraticBezierTo(ctrl, end geom.Point[geom.Pixels]) *PathBuilder {
	const segments = 16
	start := b.cur
	for i := 1; i <= segments; i++ {
		t := float32(i) / float32(segments)
		b.points = append(b.points, quadAt(start, ctrl, end, t))
	}
	b.cur = end
	return b
}

// CubicBezierTo flattens a cubic curve through ctrl1/ctrl2 to end into
// line segments.
func (b *PathBuilder) CubicBezierTo(ctrl1, ctrl2, end geom.Point[geom.Pixels]) *PathBuilder {
	const segments = 24
	start := b.cur
	for i := 1; i <= segments; i++ {
		t := float32(i) / float32(segments)
		b.points = append(b.points, cubicAt(start, ctrl1, ctrl2, end, t))
	}
	b.cur = end
	return b
}

// ArcTo flattens a circular arc of the given radius from the current
// point to end, sweeping clockwise when sweepPositive is true.
func (b *PathBuilder) ArcTo(radius geom.Pixels, end geom.Point[geom.Pixels], sweepPositive bool) *PathBuilder {
	const segments = 24
	start := b.cur
	center, startAngle, endAngle := arcCenter(start, end, float32(radius), sweepPositive)
	for i := 1; i <= segments; i++ {
		t := float32(i) / float32(segments)
		a := startAngle + (endAngle-startAngle)*t
		b.points = append(b.points, geom.Pt(
			center.X+geom.Pixels(float32(radius)*cosf(a)),
			center.Y+geom.Pixels(float32(radius)*sinf(a)),
		))
	}
	b.cur = end
	return b
}

// Close connects the current sub-path's end back to its start.
func (b *PathBuilder) Close() *PathBuilder {
	if n := len(b.points); n > 0 {
		start := b.subPathStart()
		if b.points[n-1] != start {
			b.points = append(b.points, start)
		}
	}
	return b
}

func (b *PathBuilder) subPathStart() geom.Point[geom.Pixels] {
	start := 0
	if n := len(b.subPathEnds); n > 0 {
		start = b.subPathEnds[n-1]
	}
	if start < len(b.points) {
		return b.points[start]
	}
	return geom.Point[geom.Pixels]{}
}

func (b *PathBuilder) closeSubPath() {
	if b.started {
		b.subPathEnds = append(b.subPathEnds, len(b.points))
	}
}

// Build validates and returns the constructed Path, failing with
// coreerr.BadPath if fewer than two distinct, finite points were added.
func (b *PathBuilder) Build() (Path, error) {
	b.closeSubPath()
	distinct := 0
	var last geom.Point[geom.Pixels]
	seen := false
	for _, p := range b.points {
		if !p.X.IsFinite() || !p.Y.IsFinite() {
			return Path{}, coreerr.Wrap(coreerr.BadPath, "non-finite point %v", p)
		}
		if !seen || p != last {
			distinct++
			last = p
			seen = true
		}
	}
	if distinct < 2 {
		return Path{}, coreerr.Wrap(coreerr.BadPath, "fewer than two distinct points (%d)", distinct)
	}
	return Path{
		Points:      b.points,
		subPathEnds: b.subPathEnds,
		Stroke:      b.stroke,
		StrokeWidth: b.strokeWidth,
		Fill:        b.fill,
		FillRule:    NonZero,
	}, nil
}

func quadAt(p0, p1, p2 geom.Point[geom.Pixels], t float32) geom.Point[geom.Pixels] {
	u := 1 - t
	x := u*u*float32(p0.X) + 2*u*t*float32(p1.X) + t*t*float32(p2.X)
	y := u*u*float32(p0.Y) + 2*u*t*float32(p1.Y) + t*t*float32(p2.Y)
	return geom.Pt(geom.Pixels(x), geom.Pixels(y))
}

func cubicAt(p0, p1, p2, p3 geom.Point[geom.Pixels], t float32) geom.Point[geom.Pixels] {
	u := 1 - t
	x := u*u*u*float32(p0.X) + 3*u*u*t*float32(p1.X) + 3*u*t*t*float32(p2.X) + t*t*t*float32(p3.X)
	y := u*u*u*float32(p0.Y) + 3*u*u*t*float32(p1.Y) + 3*u*t*t*float32(p2.Y) + t*t*t*float32(p3.Y)
	return geom.Pt(geom.Pixels(x), geom.Pixels(y))
}
