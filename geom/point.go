// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Point is a generic 2-D coordinate in units of T.
type Point[T Scalar] struct {
	X, Y T
}

// Pt returns a new Point.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns p+o.
func (p Point[T]) Add(o Point[T]) Point[T] {
	return Point[T]{p.X + o.X, p.Y + o.Y}
}

// Sub returns p-o.
func (p Point[T]) Sub(o Point[T]) Point[T] {
	return Point[T]{p.X - o.X, p.Y - o.Y}
}

// Scale returns p scaled by s.
func (p Point[T]) Scale(s T) Point[T] {
	return Point[T]{p.X * s, p.Y * s}
}

// Negate returns -p.
func (p Point[T]) Negate() Point[T] {
	return Point[T]{-p.X, -p.Y}
}

// Dot returns the dot product of p and o.
func (p Point[T]) Dot(o Point[T]) T {
	return p.X*o.X + p.Y*o.Y
}
