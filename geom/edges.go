// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Edges holds a per-edge value, used for margin, padding, and border widths.
type Edges[T Scalar] struct {
	Top, Right, Bottom, Left T
}

// Uniform returns Edges with all four sides set to v.
func Uniform[T Scalar](v T) Edges[T] {
	return Edges[T]{v, v, v, v}
}

// Along returns the sum of the two edges perpendicular to axis (the
// space consumed along that axis).
func (e Edges[T]) Along(axis Axis) T {
	if axis == AxisHorizontal {
		return e.Left + e.Right
	}
	return e.Top + e.Bottom
}

// Corners holds a per-corner value, used for corner radii.
type Corners[T Scalar] struct {
	TopLeft, TopRight, BottomRight, BottomLeft T
}

// UniformCorners returns Corners with all four corners set to v.
func UniformCorners[T Scalar](v T) Corners[T] {
	return Corners[T]{v, v, v, v}
}
