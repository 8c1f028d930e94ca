// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlendUniform(t *testing.T) {
	red := color.RGBA{R: 200, G: 20, B: 20, A: 255}
	for _, cs := range []ColorSpace{Srgb, Oklab} {
		for _, p := range []float32{0, 0.25, 0.5, 0.75, 1} {
			got := Blend(cs, p, red, red)
			assert.Equal(t, red, got, "blending identical colors in %v at p=%v must be uniform", cs, p)
		}
	}
}

func TestBlendEndpoints(t *testing.T) {
	red := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for _, cs := range []ColorSpace{Srgb, Oklab} {
		assert.Equal(t, red, Blend(cs, 0, red, blue))
		assert.Equal(t, blue, Blend(cs, 1, red, blue))
	}
}

func TestBlendColorSpacesDiffer(t *testing.T) {
	red := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	srgbMid := Blend(Srgb, 0.5, red, blue)
	oklabMid := Blend(Oklab, 0.5, red, blue)
	assert.NotEqual(t, srgbMid, oklabMid, "sRGB and Oklab midpoints of a high-contrast gradient should differ")

	// each color space's output is reproducible
	assert.Equal(t, srgbMid, Blend(Srgb, 0.5, red, blue))
	assert.Equal(t, oklabMid, Blend(Oklab, 0.5, red, blue))
}

func TestAlphaBlend(t *testing.T) {
	dst := color.RGBA{R: 10, G: 20, B: 200, A: 255}
	src := WithA(color.RGBA{R: 0, G: 0, B: 0, A: 255}, 128)
	got := AlphaBlend(dst, src)
	assert.InDelta(t, 5, int(got.R), 2)
}
