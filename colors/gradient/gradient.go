// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/srwiley/rasterx:
// Copyright 2018 by the rasterx Authors. All rights reserved.
// Created 2018 by S.R.Wiley

// Package gradient provides the linear color gradients used by the scene
// compositor's Quad and Path fills.
package gradient

import (
	"image"
	"image/color"

	"github.com/reactivecore/core/colors"
	"github.com/reactivecore/core/geom"
)

// Gradient is the interface that all gradient types satisfy.
type Gradient interface {
	image.Image

	// AsBase returns the [Base] of the gradient.
	AsBase() *Base

	// Update recomputes the gradient's rendering-space fields from the
	// given object opacity and bounding box. It must be called before
	// rendering and only then.
	Update(opacity float32, box geom.Bounds[float32])
}

// Base contains the data and logic common to all gradient types.
type Base struct {
	// Stops are the stops for the gradient; use AddStop to add stops.
	Stops []Stop

	// Spread is the spread method used if the gradient stops before
	// filling the object.
	Spread Spreads

	// ColorSpace is the color space used to interpolate between stops.
	ColorSpace colors.ColorSpace

	// Units are the units used for the gradient's coordinate values.
	Units Units

	// Box is the bounding box of the object the gradient is painted
	// into; only used when Units is ObjectBoundingBox.
	Box geom.Bounds[float32]

	// Opacity is an overall multiplier applied in conjunction with the
	// stop-level opacity.
	Opacity float32
}

// Stop represents a single stop in a gradient.
type Stop struct {
	// Color is the stop's color. These should be fully opaque colors,
	// with opacity specified separately for best blending results.
	Color color.Color

	// Opacity is the 0-1 opacity level for this stop.
	Opacity float32

	// Pos is the position of the stop, between 0 and 1.
	Pos float32
}

// OpacityColor returns the stop color with its opacity applied, along
// with a global opacity multiplier.
func (st *Stop) OpacityColor(opacity float32) color.Color {
	return colors.ApplyOpacity(st.Color, st.Opacity*opacity)
}

// Spreads are the spread methods used when a gradient reaches its end
// but the object is not yet fully filled.
type Spreads int32 //enums:enum -transform lower

const (
	// Pad fills the object beyond the end of the gradient with the
	// gradient's final color.
	Pad Spreads = iota
	// Reflect repeats the gradient in reverse order (1 to 0, 0 to 1, ...)
	// to fully fill the object.
	Reflect
	// Repeat continues the gradient in its original order (jumping back
	// from 1 to 0) to fully fill the object.
	Repeat
)

// Units are the types of units used for gradient coordinate values.
type Units int32 //enums:enum -transform camel-lower

const (
	// ObjectBoundingBox scales coordinate values relative to the size of
	// the object, in the normalized range 0 to 1.
	ObjectBoundingBox Units = iota
	// UserSpaceOnUse specifies coordinate values directly in the scene's
	// coordinate system.
	UserSpaceOnUse
)

// AddStop adds a new stop with the given color and position to the gradient.
func (b *Base) AddStop(color color.RGBA, pos float32, opacity ...float32) {
	op := float32(1)
	if len(opacity) > 0 {
		op = opacity[0]
	}
	b.Stops = append(b.Stops, Stop{color, op, pos})
}

// AsBase returns the [Base] of the gradient.
func (b *Base) AsBase() *Base {
	return b
}

// NewBase returns a new [Base] with default values. It should only be
// used in the New functions of gradient types.
func NewBase() Base {
	return Base{
		ColorSpace: colors.Oklab,
		Box:        geom.Bnds(geom.Pt[float32](0, 0), geom.Sz[float32](100, 100)),
		Opacity:    1,
	}
}

// ColorModel returns the color model used by the gradient image, which
// is [color.RGBAModel].
func (b *Base) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds returns the bounds of the gradient image, which are infinite.
func (b *Base) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

// CopyFrom copies from the given gradient (cp) onto this gradient (g),
// making new copies of the stops instead of re-using pointers.
func CopyFrom(g, cp Gradient) {
	switch g := g.(type) {
	case *Linear:
		*g = *cp.(*Linear)
	}
	g.AsBase().CopyStopsFrom(cp.AsBase())
}

// CopyOf returns a copy of the given gradient, making copies of the
// stops instead of re-using pointers.
func CopyOf(g Gradient) Gradient {
	var res Gradient
	switch g.(type) {
	case *Linear:
		res = &Linear{}
		CopyFrom(res, g)
	}
	return res
}

// CopyStopsFrom copies the base gradient stops from the given base gradient.
func (b *Base) CopyStopsFrom(cp *Base) {
	b.Stops = make([]Stop, len(cp.Stops))
	copy(b.Stops, cp.Stops)
}

// GetColor returns the color at the given normalized position along the
// gradient's stops, using its spread method and color space.
func (b *Base) GetColor(pos float32) color.Color {
	d := len(b.Stops)

	if b.Spread == Pad {
		if pos >= 1 {
			return b.Stops[d-1].OpacityColor(b.Opacity)
		}
		if pos <= 0 {
			return b.Stops[0].OpacityColor(b.Opacity)
		}
	}

	modRange := float32(1)
	if b.Spread == Reflect {
		modRange = 2
	}
	mod := pos - modRange*float32(int(pos/modRange))
	if mod < 0 {
		mod += modRange
	}

	place := 0
	for place != len(b.Stops) && mod > b.Stops[place].Pos {
		place++
	}
	switch b.Spread {
	case Repeat:
		var s1, s2 Stop
		switch place {
		case 0, d:
			s1, s2 = b.Stops[d-1], b.Stops[0]
		default:
			s1, s2 = b.Stops[place-1], b.Stops[place]
		}
		return b.BlendStops(mod, s1, s2, false)
	case Reflect:
		switch place {
		case 0:
			return b.Stops[0].OpacityColor(b.Opacity)
		case d:
			for place != d*2 && mod-1 > (1-b.Stops[d*2-place-1].Pos) {
				place++
			}
			switch place {
			case d:
				return b.Stops[d-1].OpacityColor(b.Opacity)
			case d * 2:
				return b.Stops[0].OpacityColor(b.Opacity)
			default:
				return b.BlendStops(mod-1, b.Stops[d*2-place], b.Stops[d*2-place-1], true)
			}
		default:
			return b.BlendStops(mod, b.Stops[place-1], b.Stops[place], false)
		}
	default: // Pad
		switch place {
		case 0:
			return b.Stops[0].OpacityColor(b.Opacity)
		case d:
			return b.Stops[d-1].OpacityColor(b.Opacity)
		default:
			return b.BlendStops(mod, b.Stops[place-1], b.Stops[place], false)
		}
	}
}

// BlendStops blends the given two gradient stops together based on the
// given position, using the gradient's color space. If flip is true, it
// flips the given position.
func (b *Base) BlendStops(pos float32, s1, s2 Stop, flip bool) color.Color {
	s1off := s1.Pos
	if s1.Pos > s2.Pos && !flip { // happens in repeat spread mode
		s1off--
		if pos > 1 {
			pos--
		}
	}
	if s2.Pos == s1off {
		return s2.OpacityColor(b.Opacity)
	}
	if flip {
		pos = 1 - pos
	}
	tp := (pos - s1off) / (s2.Pos - s1off)

	opacity := (s1.Opacity*(1-tp) + s2.Opacity*tp) * b.Opacity
	return colors.ApplyOpacity(colors.Blend(b.ColorSpace, tp, s1.Color, s2.Color), opacity)
}
