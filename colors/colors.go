// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color conversion, named-color lookup, and the
// sRGB/Oklab blending primitives used by the scene compositor's gradients.
package colors

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
)

// NRGBAF32 is a non-alpha-premultiplied color with 0-1 normalized
// float32 components. It is the working representation used for
// gradient and blend math, where 8-bit precision would introduce
// visible banding.
type NRGBAF32 struct {
	R, G, B, A float32
}

// RGBA implements [color.Color].
func (c NRGBAF32) RGBA() (r, g, b, a uint32) {
	n := color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
	return n.RGBA()
}

// NRGBAF32Model converts colors to [NRGBAF32].
var NRGBAF32Model = color.ModelFunc(nrgbaF32Model)

func nrgbaF32Model(c color.Color) color.Color {
	if n, ok := c.(NRGBAF32); ok {
		return n
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NRGBAF32{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IsNil returns whether the color is the nil initial default color
func IsNil(c color.Color) bool {
	return AsRGBA(c) == color.RGBA{}
}

// FromRGB makes a new RGBA color from the given
// RGB uint8 values, using 255 for A.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// FromNRGBA makes a new RGBA color from the given
// non-alpha-premultiplied RGBA uint8 values.
func FromNRGBA(r, g, b, a uint8) color.RGBA {
	return AsRGBA(color.NRGBA{R: r, G: g, B: b, A: a})
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromFloat32 makes a new RGBA color from the given 0-1
// normalized floating point numbers (alpha-premultiplied)
func FromFloat32(r, g, b, a float32) color.RGBA {
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: uint8(a * 255)}
}

// ToFloat32 returns 0-1 normalized floating point numbers from given color
// (non-alpha-premultiplied)
func ToFloat32(c color.Color) (r, g, b, a float32) {
	f := NRGBAF32Model.Convert(c).(NRGBAF32)
	return f.R, f.G, f.B, f.A
}

// AsString returns the given color as a string,
// using its String method if it exists, and formatting
// it as rgba(r, g, b, a) otherwise.
func AsString(c color.Color) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	r := AsRGBA(c)
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r.R, r.G, r.B, r.A)
}

// FromName returns the color value specified by the given standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := Map[name]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromString returns a color value from the given string: a standard
// color name, a hex value, or an rgb()/rgba() function call. Perceptual
// color-space transformations (lighten, spin, blend, and similar CSS-like
// modifiers) are a concrete-view concern outside the runtime core and are
// not parsed here.
func FromString(str string) (color.RGBA, error) {
	if len(str) == 0 {
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(str)
	case strings.HasPrefix(lstr, "rgb("), strings.HasPrefix(lstr, "rgba("):
		val := lstr[strings.Index(lstr, "(")+1:]
		val = strings.TrimRight(val, ")")
		val = strings.Trim(val, "%")
		var r, g, b, a int
		a = 255
		if strings.Count(val, ",") == 3 {
			fmt.Sscanf(val, "%d,%d,%d,%d", &r, &g, &b, &a)
		} else {
			fmt.Sscanf(val, "%d,%d,%d", &r, &g, &b)
		}
		return FromNRGBA(uint8(r), uint8(g), uint8(b), uint8(a)), nil
	case lstr == "none" || lstr == "off" || lstr == "transparent":
		return color.RGBA{}, nil
	default:
		return FromName(lstr)
	}
}

// FromAny returns a color from the given value of any type.
// It handles values of types string, [color.Color], and [image.Image].
func FromAny(val any) (color.RGBA, error) {
	switch vv := val.(type) {
	case string:
		return FromString(vv)
	case color.Color:
		return AsRGBA(vv), nil
	case image.Image:
		return ToUniform(vv), nil
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromAny: could not get color from value %v of type %T", val, val)
	}
}

// FromHex parses the given non-alpha-premultiplied hex color string
// and returns the resulting alpha-premultiplied color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	switch len(hex) {
	case 3:
		fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q", hex)
	}
	return AsRGBA(color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}), nil
}

// AsHex returns the color as a standard hex color string.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := color.NRGBAModel.Convert(c).(color.NRGBA)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// WithA returns the given color with the transparency (A) set to the
// given value, with the color premultiplication updated.
func WithA(c color.Color, a uint8) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return AsRGBA(n)
}

// ApplyOpacity applies the given opacity (0-1) to the given color,
// multiplying it into the existing alpha rather than overriding it.
func ApplyOpacity(c color.Color, opacity float32) color.RGBA {
	r := AsRGBA(c)
	if opacity >= 1 {
		return r
	}
	return WithA(c, uint8(float32(r.A)*clamp01(opacity)))
}

// Inverse returns the inverse of the given color (255 - each component).
// It does not change the alpha channel.
func Inverse(c color.Color) color.RGBA {
	r := AsRGBA(c)
	return color.RGBA{R: 255 - r.R, G: 255 - r.G, B: 255 - r.B, A: r.A}
}
