// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// FitInWindow clamps a 1-dimensional interval [pos, pos+size) into the
// window range [winMin, winMax]: the size is cut to the window's extent
// if it is larger, then the interval is moved fully inside the window.
// It does not flip the interval; callers try a flip with
// FlipAcrossAnchor first.
func FitInWindow(pos, size, winMin, winMax Pixels) (p, s Pixels) {
	s = size
	if s > winMax-winMin {
		s = winMax - winMin
	}
	p = pos
	if p+s > winMax {
		p = winMax - s
	}
	if p < winMin {
		p = winMin
	}
	return p, s
}

// FlipAcrossAnchor returns the start of an interval of size s that ends
// at anchor, used to try the opposite corner before falling back to
// FitInWindow's snap behavior.
func FlipAcrossAnchor(anchor, s Pixels) Pixels {
	return anchor - s
}
