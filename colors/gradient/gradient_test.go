// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image/color"
	"testing"

	"github.com/reactivecore/core/colors"
	"github.com/reactivecore/core/geom"
	"github.com/stretchr/testify/assert"
)

func ExampleLinear() {
	NewLinear().AddStop(color.RGBA{255, 255, 255, 255}, 0).AddStop(color.RGBA{0, 0, 0, 255}, 1)
}

func TestLinearEndpoints(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	g := NewLinear().AddStop(white, 0).AddStop(black, 1)
	gb := g.AsBase()
	gb.Units = UserSpaceOnUse
	g.Start = geom.Pt[float32](0, 0)
	g.End = geom.Pt[float32](100, 0)
	g.Update(1, gb.Box)

	assert.Equal(t, white, g.At(-5, 0))
	assert.Equal(t, black, g.At(105, 0))
}

func TestLinearObjectBoundingBox(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	g := NewLinear().AddStop(red, 0).AddStop(blue, 1)
	box := geom.Bnds(geom.Pt[float32](0, 0), geom.Sz[float32](100, 100))
	g.Update(1, box)

	assert.Equal(t, red, g.At(-5, 50))
	assert.Equal(t, blue, g.At(105, 50))
}

func TestLinearAngle(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	box := geom.Bnds(geom.Pt[float32](0, 0), geom.Sz[float32](100, 100))

	up := NewLinearAngle(0).AddStop(red, 0).AddStop(blue, 1)
	up.Update(1, box)
	assert.NotEqual(t, up.At(50, 0), up.At(50, 100))
}

func TestSpreadModes(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	for _, spread := range []Spreads{Pad, Reflect, Repeat} {
		g := NewLinear().AddStop(red, 0).AddStop(blue, 1)
		g.Spread = spread
		g.Opacity = 1
		assert.Equal(t, red, g.GetColor(0), "spread %v start", spread)
	}
}

func TestCopyOf(t *testing.T) {
	g := NewLinear().AddStop(color.RGBA{1, 2, 3, 255}, 0).AddStop(color.RGBA{4, 5, 6, 255}, 1)
	cp := CopyOf(g).(*Linear)
	cp.Stops[0].Color = color.RGBA{9, 9, 9, 255}
	assert.NotEqual(t, g.Stops[0].Color, cp.Stops[0].Color)
}

func TestApplyOpacity(t *testing.T) {
	g := NewLinear().AddStop(color.RGBA{255, 0, 0, 255}, 0)
	out := ApplyOpacity(g, 0.5)
	cp := out.(Gradient).AsBase()
	assert.InDelta(t, 0.5, cp.Stops[0].Opacity, 1e-6)
}

func TestColorSpaceAffectsGetColor(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	box := geom.Bnds(geom.Pt[float32](0, 0), geom.Sz[float32](100, 100))

	srgb := NewLinear().AddStop(red, 0).AddStop(blue, 1)
	srgb.ColorSpace = colors.Srgb
	srgb.Update(1, box)

	oklab := NewLinear().AddStop(red, 0).AddStop(blue, 1)
	oklab.ColorSpace = colors.Oklab
	oklab.Update(1, box)

	assert.NotEqual(t, srgb.At(50, 50), oklab.At(50, 50))
}
