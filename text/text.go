// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text shapes runs of text into positioned glyphs via
// github.com/go-text/typesetting, and bridges the result into
// core.Measurer intrinsic-size queries and a gpu.Atlas-backed sprite
// sequence the scene compositor can paint. It follows the teacher's
// own text/shaped package shape (one Shaper, one cache keyed by
// font+size+string). Runs are shaped as a single line: nothing here
// breaks or wraps text, and Measure ignores the available width.
package text

import (
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/reactivecore/core/geom"
	"github.com/reactivecore/core/gpu"
)

// fixed26_6 converts a logical pixel length to the fixed.Int26_6 unit
// go-text/typesetting's shaping API measures font size and glyph
// metrics in.
func fixed26_6(p geom.Pixels) fixed.Int26_6 {
	return fixed.I(int(p))
}

// fromFixed converts a fixed.Int26_6 shaping result back to a logical
// pixel length.
func fromFixed(v fixed.Int26_6) geom.Pixels {
	return geom.Pixels(float32(v) / 64)
}

// Face wraps a parsed font file, the unit every Run shapes against.
type Face struct {
	Name string
	face *font.Face
}

// ParseFace parses an OpenType/TrueType font file's bytes into a Face
// usable by a Shaper.
func ParseFace(name string, data []byte) (Face, error) {
	f, err := font.ParseTTF(bytesReader(data))
	if err != nil {
		return Face{}, fmt.Errorf("text: parsing font %q: %w", name, err)
	}
	return Face{Name: name, face: font.NewFace(f)}, nil
}

// bytesReader adapts a []byte to the io.ReaderAt font.ParseTTF wants
// without pulling in bytes.Reader's extra surface.
type bytesReader []byte

func (b bytesReader) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(b)) {
		return 0, fmt.Errorf("text: read past end of font data")
	}
	n := copy(p, b[off:])
	return n, nil
}

// Glyph is one shaped, positioned glyph ready for atlasing, in the
// layout-pixel space a Run was shaped at.
type Glyph struct {
	GlyphID  uint32
	X, Y     geom.Pixels
	Advance  geom.Pixels
	ClusterAt int
}

// Run is one shaped, unidirectional span of text: its source string,
// face and size, and the glyphs HarfBuzz (via go-text/typesetting)
// produced for it.
type Run struct {
	Text   string
	Face   Face
	Size   geom.Pixels
	Glyphs []Glyph

	Advance geom.Pixels
	Ascent  geom.Pixels
	Descent geom.Pixels
}

// cacheKey identifies one memoized shaping result.
type cacheKey struct {
	face string
	size geom.Pixels
	text string
}

// Shaper shapes and caches text runs, one per window/renderer the way
// the teacher keeps a single shaped-text cache behind its text system
// rather than reshaping on every paint.
type Shaper struct {
	mu    sync.Mutex
	cache map[cacheKey]Run
	lang  language.Language
	script language.Script
}

// NewShaper returns a Shaper defaulting to Latin script and English,
// the common case for an editor UI; SetLocale overrides both.
func NewShaper() *Shaper {
	return &Shaper{
		cache:  map[cacheKey]Run{},
		lang:   language.NewLanguage("en"),
		script: language.Latin,
	}
}

// SetLocale changes the BCP-47 language tag and script used for runs
// shaped after the call; it does not invalidate the existing cache,
// matching the teacher's "locale rarely changes mid-session" assumption.
func (s *Shaper) SetLocale(bcp47 string, script language.Script) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = language.NewLanguage(language.Language(bcp47))
	s.script = script
}

// Shape shapes text at face/size, reusing a cached Run when the exact
// (face, size, text) tuple was shaped before.
func (s *Shaper) Shape(face Face, size geom.Pixels, text string) Run {
	key := cacheKey{face: face.Name, size: size, text: text}

	s.mu.Lock()
	if r, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return r
	}
	s.mu.Unlock()

	run := s.shape(face, size, text)

	s.mu.Lock()
	s.cache[key] = run
	s.mu.Unlock()
	return run
}

func (s *Shaper) shape(face Face, size geom.Pixels, text string) Run {
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face.face,
		Size:      fixed26_6(size),
		Script:    s.script,
		Language:  s.lang,
	}

	shaper := shaping.HarfbuzzShaper{}
	out := shaper.Shape(input)

	run := Run{
		Text:    text,
		Face:    face,
		Size:    size,
		Glyphs:  make([]Glyph, len(out.Glyphs)),
		Advance: fromFixed(out.Advance),
		Ascent:  fromFixed(out.LineBounds.Ascent),
		Descent: fromFixed(-out.LineBounds.Descent),
	}
	var pen geom.Pixels
	for i, g := range out.Glyphs {
		run.Glyphs[i] = Glyph{
			GlyphID:   uint32(g.GlyphID),
			X:         pen + fromFixed(g.XOffset),
			Y:         fromFixed(g.YOffset),
			Advance:   fromFixed(g.XAdvance),
			ClusterAt: g.ClusterIndex,
		}
		pen += fromFixed(g.XAdvance)
	}
	return run
}

// Measure returns the run's intrinsic size, the core.Measurer shape:
// a single line's width is its total advance, bounded by available
// width only in that a caller wrapping at available.Width should
// re-shape a truncated substring, which this package leaves to the
// caller (Run itself never wraps).
func (r Run) Measure(available geom.Size[geom.Pixels]) geom.Size[geom.Pixels] {
	return geom.Size[geom.Pixels]{
		Width:  r.Advance,
		Height: r.Ascent + r.Descent,
	}
}

// Sprites resolves every glyph in r against atlas, inserting any glyph
// not yet cached as a placeholder-sized region (actual rasterization
// happens in gpu.Renderer, which owns the backing texture), and
// returns one gpu.Sprite per glyph positioned at origin plus the
// glyph's shaped offset.
func (r Run) Sprites(atlas *gpu.Atlas, origin geom.Point[geom.Pixels]) []gpu.Sprite {
	sprites := make([]gpu.Sprite, 0, len(r.Glyphs))
	for _, g := range r.Glyphs {
		key := gpu.AtlasKey{
			FontID:  fontID(r.Face.Name),
			Size:    float32(r.Size),
			GlyphID: g.GlyphID,
		}
		region, ok := atlas.Lookup(key)
		if !ok {
			w := uint32(r.Size) + 1
			h := uint32(r.Ascent+r.Descent) + 1
			region = atlas.Insert(key, w, h)
		}
		sprites = append(sprites, gpu.Sprite{
			Bounds: geom.Bounds[geom.Pixels]{
				Origin: geom.Pt(origin.X+g.X, origin.Y+g.Y),
				Size:   geom.Sz(geom.Pixels(region.W), geom.Pixels(region.H)),
			},
			Key: key,
		})
	}
	return sprites
}

// fontID hashes a face name into the small integer gpu.AtlasKey wants,
// stable for the process lifetime (two Faces with the same name always
// collide in the atlas, which is correct: they're the same font).
func fontID(name string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(name); i++ {
		h ^= uint32(name[i])
		h *= 16777619
	}
	return h
}
