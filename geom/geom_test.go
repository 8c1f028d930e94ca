// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsContains(t *testing.T) {
	b := Bnds(Pt[Pixels](10, 10), Sz[Pixels](20, 20))
	assert.True(t, b.Contains(Pt[Pixels](10, 10)))
	assert.True(t, b.Contains(Pt[Pixels](29, 29)))
	assert.False(t, b.Contains(Pt[Pixels](30, 30)))
	assert.False(t, b.Contains(Pt[Pixels](9, 15)))
}

func TestBoundsIntersection(t *testing.T) {
	a := Bnds(Pt[Pixels](0, 0), Sz[Pixels](10, 10))
	b := Bnds(Pt[Pixels](5, 5), Sz[Pixels](10, 10))
	i := a.Intersection(b)
	assert.Equal(t, Pixels(5), i.Origin.X)
	assert.Equal(t, Pixels(5), i.Size.Width)

	c := Bnds(Pt[Pixels](20, 20), Sz[Pixels](5, 5))
	assert.False(t, a.Intersects(c))
}

func TestLengthResolve(t *testing.T) {
	l := Definite(DefRems(2))
	px, ok := l.Resolve(16, 100)
	assert.True(t, ok)
	assert.Equal(t, Pixels(32), px)

	frac := Definite(DefFraction(0.5))
	px, ok = frac.Resolve(16, 200)
	assert.True(t, ok)
	assert.Equal(t, Pixels(100), px)

	_, ok = Auto.Resolve(16, 200)
	assert.False(t, ok)
}

func TestFitInWindow(t *testing.T) {
	// fits as-is
	p, s := FitInWindow(10, 50, 0, 200)
	assert.Equal(t, Pixels(10), p)
	assert.Equal(t, Pixels(50), s)

	// overflows right edge, snaps back
	p, s = FitInWindow(180, 50, 0, 200)
	assert.Equal(t, Pixels(150), p)
	assert.Equal(t, Pixels(50), s)

	// larger than the window entirely: clamp size too
	p, s = FitInWindow(0, 500, 0, 200)
	assert.Equal(t, Pixels(0), p)
	assert.Equal(t, Pixels(200), s)
}

func TestPixelsDeviceConversion(t *testing.T) {
	p := Pixels(10)
	d := p.ToDevice(2)
	assert.Equal(t, DevicePixels(20), d)
	assert.Equal(t, Pixels(10), d.ToPixels(2))
}
