// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the Style and StyleRefinement records used by
// the element tree's flex layout and paint passes, plus the TextStyle
// that cascades through descendants independently of layout.
package styles

import (
	"image/color"

	"github.com/reactivecore/core/geom"
)

// Display selects how an element and its children participate in layout.
type Display int32 //enums:enum

const (
	// Block stacks children top to bottom, ignoring flex properties.
	Block Display = iota
	// Flex lays children out along FlexDirection using the flexbox algorithm.
	Flex
	// None removes the element from layout entirely; it is not painted.
	None
)

// FlexDirection selects the main axis of a Flex container.
type FlexDirection int32 //enums:enum

const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

// Axis returns the geom.Axis the main axis runs along.
func (f FlexDirection) Axis() geom.Axis {
	if f == Row || f == RowReverse {
		return geom.AxisHorizontal
	}
	return geom.AxisVertical
}

// Reversed reports whether children should be laid out back to front.
func (f FlexDirection) Reversed() bool {
	return f == RowReverse || f == ColumnReverse
}

// FlexWrap selects whether overflowing flex items wrap onto new lines.
type FlexWrap int32 //enums:enum

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Justify selects how free space is distributed along the main axis.
type Justify int32 //enums:enum

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align selects how items are positioned along the cross axis.
type Align int32 //enums:enum

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignStretch
	AlignBaseline
)

// Overflow selects how content exceeding an element's bounds is handled,
// independently per axis.
type Overflow int32 //enums:enum

const (
	Visible Overflow = iota
	Hidden
	Scroll
)

// Position selects whether an element participates in flex flow or is
// taken out of flow and placed via Inset.
type Position int32 //enums:enum

const (
	PositionRelative Position = iota
	PositionAbsolute
)

// TextStyle is a refineable record carried separately from Style so it
// can cascade through descendants without being reset by layout changes.
type TextStyle struct {
	Color     color.Color
	Family    string
	Size      geom.Rems
	Weight    int
	Italic    bool
	Underline bool
}

// TextStyleRefinement has the same fields as TextStyle, each optional;
// applying it overwrites only the fields that are present.
type TextStyleRefinement struct {
	Color     *color.Color
	Family    *string
	Size      *geom.Rems
	Weight    *int
	Italic    *bool
	Underline *bool
}

// Apply overwrites the fields of t that are present in r.
func (t TextStyle) Apply(r TextStyleRefinement) TextStyle {
	if r.Color != nil {
		t.Color = *r.Color
	}
	if r.Family != nil {
		t.Family = *r.Family
	}
	if r.Size != nil {
		t.Size = *r.Size
	}
	if r.Weight != nil {
		t.Weight = *r.Weight
	}
	if r.Italic != nil {
		t.Italic = *r.Italic
	}
	if r.Underline != nil {
		t.Underline = *r.Underline
	}
	return t
}

// LengthEdges holds a per-edge Length, used for Margin, Padding, and
// Inset. Unlike geom.Edges it is not generic over geom.Scalar, since
// Length (Auto-or-DefiniteLength) has no arithmetic of its own; Resolved
// converts it to a concrete geom.Edges[geom.Pixels] against a rem size
// and the parent's extent on each axis.
type LengthEdges struct {
	Top, Right, Bottom, Left geom.Length
}

// UniformLength returns LengthEdges with all four sides set to l.
func UniformLength(l geom.Length) LengthEdges {
	return LengthEdges{l, l, l, l}
}

// Resolved converts e to pixels, resolving Top/Bottom against parentH and
// Left/Right against parentW; Auto edges resolve to 0.
func (e LengthEdges) Resolved(remSize, parentW, parentH geom.Pixels) geom.Edges[geom.Pixels] {
	resolve := func(l geom.Length, extent geom.Pixels) geom.Pixels {
		if v, ok := l.Resolve(remSize, extent); ok {
			return v
		}
		return 0
	}
	return geom.Edges[geom.Pixels]{
		Top:    resolve(e.Top, parentH),
		Right:  resolve(e.Right, parentW),
		Bottom: resolve(e.Bottom, parentH),
		Left:   resolve(e.Left, parentW),
	}
}

// Style is the full, non-optional layout and paint record carried by
// every element. Resolution to concrete pixel geometry happens during
// the flex layout pass, against the window's rem size and the parent
// container's extent along each axis.
type Style struct {
	Display       Display
	Position      Position
	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexGrow      float32
	FlexShrink    float32
	FlexBasis     geom.Length
	Justify       Justify
	AlignItems    Align
	AlignSelf     Align
	AlignContent  Align
	Gap           geom.Pixels

	Size    geom.Size[geom.Length]
	MinSize geom.Size[geom.Length]
	MaxSize geom.Size[geom.Length]
	Inset   LengthEdges

	Margin       LengthEdges
	Padding      LengthEdges
	BorderWidths geom.Edges[geom.Pixels]
	BorderColor  color.Color

	Background   color.Color
	CornerRadii  geom.Corners[geom.Pixels]
	OverflowX    Overflow
	OverflowY    Overflow
	AspectRatio  float32 // 0 means unset

	Text TextStyle
}

// Default returns the zero-value Style used as the base of a new
// element's style resolution, with the fields that must not be zero set
// to their sensible defaults.
func Default() Style {
	return Style{
		Display:    Flex,
		FlexGrow:   0,
		FlexShrink: 1,
		FlexBasis:  geom.Auto,
		Size: geom.Size[geom.Length]{
			Width:  geom.Auto,
			Height: geom.Auto,
		},
	}
}

// StyleRefinement has the same fields as Style, each optional; applying
// a refinement overwrites only present fields. Generated by hand from
// Style's field list to keep the two in lockstep, the way the teacher
// keeps a struct and its "Set" partner aligned by convention.
type StyleRefinement struct {
	Display       *Display
	Position      *Position
	FlexDirection *FlexDirection
	FlexWrap      *FlexWrap
	FlexGrow      *float32
	FlexShrink    *float32
	FlexBasis     *geom.Length
	Justify       *Justify
	AlignItems    *Align
	AlignSelf     *Align
	AlignContent  *Align
	Gap           *geom.Pixels

	Size    *geom.Size[geom.Length]
	MinSize *geom.Size[geom.Length]
	MaxSize *geom.Size[geom.Length]
	Inset   *LengthEdges

	Margin       *LengthEdges
	Padding      *LengthEdges
	BorderWidths *geom.Edges[geom.Pixels]
	BorderColor  *color.Color

	Background  *color.Color
	CornerRadii *geom.Corners[geom.Pixels]
	OverflowX   *Overflow
	OverflowY   *Overflow
	AspectRatio *float32

	Text TextStyleRefinement
}

// Apply overwrites the fields of s that are present in r, and returns
// the result. Style values are otherwise immutable from the caller's
// point of view: Apply never mutates s in place.
func (s Style) Apply(r StyleRefinement) Style {
	if r.Display != nil {
		s.Display = *r.Display
	}
	if r.Position != nil {
		s.Position = *r.Position
	}
	if r.FlexDirection != nil {
		s.FlexDirection = *r.FlexDirection
	}
	if r.FlexWrap != nil {
		s.FlexWrap = *r.FlexWrap
	}
	if r.FlexGrow != nil {
		s.FlexGrow = *r.FlexGrow
	}
	if r.FlexShrink != nil {
		s.FlexShrink = *r.FlexShrink
	}
	if r.FlexBasis != nil {
		s.FlexBasis = *r.FlexBasis
	}
	if r.Justify != nil {
		s.Justify = *r.Justify
	}
	if r.AlignItems != nil {
		s.AlignItems = *r.AlignItems
	}
	if r.AlignSelf != nil {
		s.AlignSelf = *r.AlignSelf
	}
	if r.AlignContent != nil {
		s.AlignContent = *r.AlignContent
	}
	if r.Gap != nil {
		s.Gap = *r.Gap
	}
	if r.Size != nil {
		s.Size = *r.Size
	}
	if r.MinSize != nil {
		s.MinSize = *r.MinSize
	}
	if r.MaxSize != nil {
		s.MaxSize = *r.MaxSize
	}
	if r.Inset != nil {
		s.Inset = *r.Inset
	}
	if r.Margin != nil {
		s.Margin = *r.Margin
	}
	if r.Padding != nil {
		s.Padding = *r.Padding
	}
	if r.BorderWidths != nil {
		s.BorderWidths = *r.BorderWidths
	}
	if r.BorderColor != nil {
		s.BorderColor = *r.BorderColor
	}
	if r.Background != nil {
		s.Background = *r.Background
	}
	if r.CornerRadii != nil {
		s.CornerRadii = *r.CornerRadii
	}
	if r.OverflowX != nil {
		s.OverflowX = *r.OverflowX
	}
	if r.OverflowY != nil {
		s.OverflowY = *r.OverflowY
	}
	if r.AspectRatio != nil {
		s.AspectRatio = *r.AspectRatio
	}
	s.Text = s.Text.Apply(r.Text)
	return s
}
