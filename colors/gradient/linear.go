// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/srwiley/rasterx:
// Copyright 2018 by the rasterx Authors. All rights reserved.
// Created 2018 by S.R.Wiley

package gradient

import (
	"image/color"
	"math"

	"github.com/reactivecore/core/geom"
)

// Linear represents a linear gradient. It implements [image.Image].
type Linear struct {
	Base

	// Start is the starting point of the gradient.
	Start geom.Point[float32]

	// End is the ending point of the gradient.
	End geom.Point[float32]

	// rStart and rEnd are the rendering-space start/end, recomputed by Update.
	rStart geom.Point[float32]
	rEnd   geom.Point[float32]
}

var _ Gradient = &Linear{}

// NewLinear returns a new left-to-right [Linear] gradient.
func NewLinear() *Linear {
	return &Linear{
		Base: NewBase(),
		End:  geom.Pt[float32](1, 0),
	}
}

// NewLinearAngle returns a new [Linear] gradient whose start and end
// points are placed about the center of the unit square at the given
// angle, measured in degrees clockwise from straight up (the CSS
// linear-gradient convention). See [Linear.SetAngle].
func NewLinearAngle(angleDeg float32) *Linear {
	l := NewLinear()
	l.SetAngle(angleDeg)
	return l
}

// SetAngle sets the gradient's Start and End on opposite sides of the
// center of the unit square along the given angle, in degrees clockwise
// from straight up. Each point lies half a diagonal from the center, so
// they fall on opposite corners at diagonal angles and outside the square
// at other angles.
func (l *Linear) SetAngle(angleDeg float32) *Linear {
	rad := float64(angleDeg) * math.Pi / 180
	dx := float32(math.Sin(rad))
	dy := float32(-math.Cos(rad))
	center := geom.Pt[float32](0.5, 0.5)
	dir := geom.Pt(dx, dy).Scale(0.70710678) // half-diagonal of the unit square
	l.Start = center.Sub(dir)
	l.End = center.Add(dir)
	return l
}

// AddStop adds a new stop with the given color and position to the
// linear gradient.
func (l *Linear) AddStop(color color.RGBA, pos float32) *Linear {
	l.Base.AddStop(color, pos)
	return l
}

// Update recomputes the gradient's rendering-space Start/End, using the
// given opacity and object bounding box. This must be called before
// rendering, and only then.
func (l *Linear) Update(opacity float32, box geom.Bounds[float32]) {
	l.Box = box
	l.Opacity = opacity

	if l.Units == ObjectBoundingBox {
		sz := l.Box.Size
		l.rStart = l.Box.Origin.Add(geom.Pt(sz.Width*l.Start.X, sz.Height*l.Start.Y))
		l.rEnd = l.Box.Origin.Add(geom.Pt(sz.Width*l.End.X, sz.Height*l.End.Y))
	} else {
		l.rStart = l.Start
		l.rEnd = l.End
	}
}

// At returns the color of the linear gradient at the given point.
func (l *Linear) At(x, y int) color.Color {
	switch len(l.Stops) {
	case 0:
		return color.RGBA{}
	case 1:
		return l.Stops[0].OpacityColor(l.Opacity)
	}

	d := l.rEnd.Sub(l.rStart)
	dd := d.Dot(d) // self inner product

	pt := geom.Pt(float32(x)+0.5, float32(y)+0.5)
	df := pt.Sub(l.rStart)
	pos := d.Dot(df) / dd
	return l.GetColor(pos)
}
