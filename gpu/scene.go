// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu holds the scene compositor's primitive types (Quad, Path,
// Sprite, Surface), the PathBuilder that constructs Paths, the glyph/
// sprite atlas, and the Renderer that submits a Scene to the GPU via
// github.com/cogentcore/webgpu.
package gpu

import (
	"image"
	"image/color"

	"github.com/reactivecore/core/colors/gradient"
	"github.com/reactivecore/core/geom"
)

// Paint is either a flat color or a gradient; Gradient takes precedence
// when both are set. It is deliberately a small struct rather than an
// interface so Quad/Path literals stay simple to construct.
type Paint struct {
	Color    color.Color
	Gradient gradient.Gradient
}

// SolidPaint returns a Paint filling with a flat color.
func SolidPaint(c color.Color) Paint { return Paint{Color: c} }

// GradientPaint returns a Paint filling with g.
func GradientPaint(g gradient.Gradient) Paint { return Paint{Gradient: g} }

func (p Paint) isSet() bool { return p.Color != nil || p.Gradient != nil }

// Primitive is any scene draw primitive: Quad, Path, Sprite, or Surface.
type Primitive interface {
	isPrimitive()
}

// Quad is an axis-aligned, optionally rounded and bordered rectangle.
type Quad struct {
	Bounds       geom.Bounds[geom.Pixels]
	Background   Paint
	BorderColor  color.Color
	BorderWidths geom.Edges[geom.Pixels]
	CornerRadii  geom.Corners[geom.Pixels]
}

// Sprite draws a cached glyph or image sprite from the atlas, tinted by
// Tint (used for glyph coloring; an image sprite typically leaves Tint nil).
type Sprite struct {
	Bounds geom.Bounds[geom.Pixels]
	Key    AtlasKey
	Tint   color.Color
}

// Surface draws an already-decoded raster image (e.g. a video frame or a
// dropped-file preview), not itself a subject of shaping or atlasing.
type Surface struct {
	Bounds geom.Bounds[geom.Pixels]
	Image  image.Image
}

func (Quad) isPrimitive()    {}
func (Path) isPrimitive()    {}
func (Sprite) isPrimitive()  {}
func (Surface) isPrimitive() {}

// layer is one z-ordered, content-masked group of primitives. Layers
// paint lowest z first; within a layer, primitives paint in emission
// order (the painter's algorithm the ordering guarantee names).
type layer struct {
	z    int
	mask geom.Bounds[geom.Pixels]
	prims []Primitive
}

// noMask is a layer with no content mask: everything paints.
var noMask = geom.Bounds[geom.Pixels]{Size: geom.Sz[geom.Pixels](1<<20, 1<<20)}

// Scene is the ordered list of layered draw primitives describing one
// frame, built by Paint phases and submitted to a Renderer.
type Scene struct {
	layers []layer
}

// NewScene returns an empty Scene with a single base layer (z=0, no mask).
func NewScene() *Scene {
	return &Scene{layers: []layer{{z: 0, mask: noMask}}}
}

func (s *Scene) top() *layer { return &s.layers[len(s.layers)-1] }

// PaintQuad appends q to the current layer.
func (s *Scene) PaintQuad(q Quad) { s.append(q) }

// PaintPath appends p to the current layer.
func (s *Scene) PaintPath(p Path) { s.append(p) }

// PaintSprite appends sp to the current layer.
func (s *Scene) PaintSprite(sp Sprite) { s.append(sp) }

// PaintSurface appends su to the current layer.
func (s *Scene) PaintSurface(su Surface) { s.append(su) }

func (s *Scene) append(p Primitive) {
	t := s.top()
	t.prims = append(t.prims, p)
}

// WithLayer pushes a new layer at the given z order for the duration of
// f, restoring the prior layer afterward. Overlays (tooltips, modals)
// use a z high enough to paint above window content.
func (s *Scene) WithLayer(z int, f func()) {
	pz, pm := s.top().z, s.top().mask
	s.layers = append(s.layers, layer{z: z, mask: pm})
	f()
	s.layers = append(s.layers, layer{z: pz, mask: pm})
}

// WithContentMask intersects the current layer's clip with bounds for
// the duration of f, used by scrollable regions to clip their children.
func (s *Scene) WithContentMask(bounds geom.Bounds[geom.Pixels], f func()) {
	pz, pm := s.top().z, s.top().mask
	s.layers = append(s.layers, layer{z: pz, mask: pm.Intersection(bounds)})
	f()
	s.layers = append(s.layers, layer{z: pz, mask: pm})
}

// sortLayers stable-sorts layers by z, so layers of equal z keep their
// emission order. Primitives calls it before walking the layers.
func (s *Scene) sortLayers() {
	for i := 1; i < len(s.layers); i++ {
		for j := i; j > 0 && s.layers[j].z < s.layers[j-1].z; j-- {
			s.layers[j], s.layers[j-1] = s.layers[j-1], s.layers[j]
		}
	}
}

// Primitives returns every primitive across every layer, lowest z first,
// each paired with the content mask in effect when it was painted. This
// is the scene's "format": an in-process, deterministic primitive list,
// not a wire protocol.
func (s *Scene) Primitives() []ScenePrimitive {
	s.sortLayers()
	out := make([]ScenePrimitive, 0, s.count())
	for _, l := range s.layers {
		for _, p := range l.prims {
			out = append(out, ScenePrimitive{Primitive: p, Mask: l.mask, Z: l.z})
		}
	}
	return out
}

func (s *Scene) count() int {
	n := 0
	for _, l := range s.layers {
		n += len(l.prims)
	}
	return n
}

// ScenePrimitive pairs a primitive with the content mask and z order it
// was painted under, the form the renderer walks.
type ScenePrimitive struct {
	Primitive Primitive
	Mask      geom.Bounds[geom.Pixels]
	Z         int
}
