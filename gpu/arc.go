// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"math"

	"github.com/reactivecore/core/geom"
)

func cosf(a float32) float32 { return float32(math.Cos(float64(a))) }
func sinf(a float32) float32 { return float32(math.Sin(float64(a))) }

// arcCenter finds a circle of the given radius passing through start and
// end, picking the center on one side of the chord or the other
// according to sweepPositive, and returns the start/end angles swept
// continuously in the sweep direction (so linear interpolation between
// them traces the shorter matching arc).
func arcCenter(start, end geom.Point[geom.Pixels], radius float32, sweepPositive bool) (center geom.Point[geom.Pixels], startAngle, endAngle float32) {
	dx := float64(end.X - start.X)
	dy := float64(end.Y - start.Y)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return start, 0, 0
	}
	midX := (float64(start.X) + float64(end.X)) / 2
	midY := (float64(start.Y) + float64(end.Y)) / 2
	half := dist / 2
	r := math.Abs(float64(radius))
	h := 0.0
	if r > half {
		h = math.Sqrt(r*r - half*half)
	}
	// Unit perpendicular to the chord.
	ux, uy := -dy/dist, dx/dist
	if !sweepPositive {
		ux, uy = -ux, -uy
	}
	cx := midX + ux*h
	cy := midY + uy*h
	center = geom.Pt(geom.Pixels(cx), geom.Pixels(cy))

	startAngle = float32(math.Atan2(float64(start.Y)-cy, float64(start.X)-cx))
	endAngle = float32(math.Atan2(float64(end.Y)-cy, float64(end.X)-cx))
	if sweepPositive {
		for endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	} else {
		for endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	}
	return center, startAngle, endAngle
}
