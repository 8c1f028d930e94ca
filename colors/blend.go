// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"math"
)

// ColorSpace selects the space in which gradient stops are interpolated.
type ColorSpace int32 //enums:enum

const (
	// Srgb blends component-wise after decoding from sRGB gamma, which is
	// cheap but desaturates the midpoint of high-contrast gradients.
	Srgb ColorSpace = iota

	// Oklab blends in the Oklab perceptual space, producing a midpoint
	// that looks uniform in lightness and chroma instead of muddy.
	Oklab
)

func (c ColorSpace) String() string {
	if c == Oklab {
		return "Oklab"
	}
	return "Srgb"
}

// Blend returns a color that is the given proportion between the first
// and second color in the given color space. p=0 yields x, p=1 yields y.
func Blend(cs ColorSpace, p float32, x, y color.Color) color.RGBA {
	switch cs {
	case Oklab:
		return blendOklab(p, x, y)
	default:
		return BlendRGB(p, x, y)
	}
}

// BlendRGB returns a color that is the given proportion between the first
// and second color, interpolating the (non-premultiplied) color components
// after decoding them from sRGB gamma and re-encoding the result.
func BlendRGB(p float32, x, y color.Color) color.RGBA {
	fx := NRGBAF32Model.Convert(x).(NRGBAF32)
	fy := NRGBAF32Model.Convert(y).(NRGBAF32)
	p = clamp01(p)
	q := 1 - p
	lerp := func(a, b float32) float32 {
		return linearToSRGB(q*srgbToLinear(a) + p*srgbToLinear(b))
	}
	return AsRGBA(NRGBAF32{
		R: lerp(fx.R, fy.R),
		G: lerp(fx.G, fy.G),
		B: lerp(fx.B, fy.B),
		A: q*fx.A + p*fy.A,
	})
}

// blendOklab blends x and y in the Oklab perceptual color space.
func blendOklab(p float32, x, y color.Color) color.RGBA {
	fx := NRGBAF32Model.Convert(x).(NRGBAF32)
	fy := NRGBAF32Model.Convert(y).(NRGBAF32)
	lx, ax, bx := srgbToOklab(fx.R, fx.G, fx.B)
	ly, ay, by := srgbToOklab(fy.R, fy.G, fy.B)
	p = clamp01(p)
	q := 1 - p
	l := q*lx + p*ly
	a := q*ax + p*ay
	b := q*bx + p*by
	alpha := q*fx.A + p*fy.A
	r, g, bl := oklabToSRGB(l, a, b)
	return AsRGBA(NRGBAF32{R: r, G: g, B: bl, A: alpha})
}

// srgbToLinear undoes the sRGB transfer function on a single 0-1 component.
func srgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow(float64((c+0.055)/1.055), 2.4))
}

// linearToSRGB applies the sRGB transfer function to a single 0-1 component.
func linearToSRGB(c float32) float32 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return float32(1.055*math.Pow(float64(c), 1/2.4) - 0.055)
}

// srgbToOklab converts non-linear sRGB components (0-1) to Oklab L,a,b,
// using Björn Ottosson's public conversion matrices.
func srgbToOklab(r, g, b float32) (l, a, bb float32) {
	lr, lg, lb := srgbToLinear(r), srgbToLinear(g), srgbToLinear(b)

	lc := 0.4122214708*float64(lr) + 0.5363325363*float64(lg) + 0.0514459929*float64(lb)
	mc := 0.2119034982*float64(lr) + 0.6806995451*float64(lg) + 0.1073969566*float64(lb)
	sc := 0.0883024619*float64(lr) + 0.2817188376*float64(lg) + 0.6299787005*float64(lb)

	lc2 := math.Cbrt(lc)
	mc2 := math.Cbrt(mc)
	sc2 := math.Cbrt(sc)

	l = float32(0.2104542553*lc2 + 0.7936177850*mc2 - 0.0040720468*sc2)
	a = float32(1.9779984951*lc2 - 2.4285922050*mc2 + 0.4505937099*sc2)
	bb = float32(0.0259040371*lc2 + 0.7827717662*mc2 - 0.8086757660*sc2)
	return l, a, bb
}

// oklabToSRGB converts Oklab L,a,b back to non-linear sRGB components (0-1).
func oklabToSRGB(l, a, b float32) (r, g, bl float32) {
	lc2 := float64(l) + 0.3963377774*float64(a) + 0.2158037573*float64(b)
	mc2 := float64(l) - 0.1055613458*float64(a) - 0.0638541728*float64(b)
	sc2 := float64(l) - 0.0894841775*float64(a) - 1.2914855480*float64(b)

	lc := lc2 * lc2 * lc2
	mc := mc2 * mc2 * mc2
	sc := sc2 * sc2 * sc2

	lr := 4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	lg := -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	lb := -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc

	r = linearToSRGB(clamp01(float32(lr)))
	g = linearToSRGB(clamp01(float32(lg)))
	bl = linearToSRGB(clamp01(float32(lb)))
	return r, g, bl
}

// AlphaBlend blends the two colors, handling alpha blending correctly.
// The source color is figuratively placed "on top of" the destination color.
func AlphaBlend(dst, src color.Color) color.RGBA {
	const m = 1<<16 - 1
	dr, dg, db, da := dst.RGBA()
	sr, sg, sb, sa := src.RGBA()
	a := m - sa
	return color.RGBA{
		R: uint8((uint32(dr)*a/m + sr) >> 8),
		G: uint8((uint32(dg)*a/m + sg) >> 8),
		B: uint8((uint32(db)*a/m + sb) >> 8),
		A: uint8((uint32(da)*a/m + sa) >> 8),
	}
}
