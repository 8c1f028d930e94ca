// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "container/list"

// AtlasKey identifies one cached glyph or sprite: a font run plus glyph
// id plus subpixel positioning variant, or a plain image key for
// non-glyph sprites (FontID left zero).
type AtlasKey struct {
	FontID           uint32
	Size             float32
	GlyphID          uint32
	SubpixelVariant  uint8
	ImageKey         string
}

// AtlasRegion is the packed location of one cached entry within the
// backing texture.
type AtlasRegion struct {
	X, Y, W, H uint32
}

// Atlas is an LRU-evicted cache from AtlasKey to a packed texture
// region, shared by every window's Renderer. Eviction policy: when full,
// the least recently used entry is evicted to make room, same as a
// standard glyph-cache design (no corpus library models this, so the
// eviction list is a plain container/list ring, the textbook LRU shape).
type Atlas struct {
	width, height uint32
	nextX, nextY  uint32
	rowHeight     uint32

	order   *list.List
	entries map[AtlasKey]*list.Element
	regions map[AtlasKey]AtlasRegion
}

type atlasEntry struct {
	key AtlasKey
}

// NewAtlas returns an empty Atlas backed by a width x height texture.
func NewAtlas(width, height uint32) *Atlas {
	return &Atlas{
		width:   width,
		height:  height,
		order:   list.New(),
		entries: map[AtlasKey]*list.Element{},
		regions: map[AtlasKey]AtlasRegion{},
	}
}

// Lookup returns the region for key, marking it most-recently-used, or
// ok=false if not cached.
func (a *Atlas) Lookup(key AtlasKey) (AtlasRegion, bool) {
	el, ok := a.entries[key]
	if !ok {
		return AtlasRegion{}, false
	}
	a.order.MoveToFront(el)
	return a.regions[key], true
}

// Insert packs a w x h rasterized glyph/sprite into the atlas and
// returns its region, evicting least-recently-used entries as needed.
// It never fails: if w/h exceeds the atlas entirely the atlas is reset
// and the shelf-pack restarts, matching a glyph cache's "blow away and
// repack" fallback rather than returning an error for a case the caller
// cannot usefully recover from.
func (a *Atlas) Insert(key AtlasKey, w, h uint32) AtlasRegion {
	if w > a.width || h > a.height {
		a.reset()
	}
	for {
		if a.nextX+w > a.width {
			a.nextX = 0
			a.nextY += a.rowHeight
			a.rowHeight = 0
		}
		if a.nextY+h > a.height {
			if a.order.Len() == 0 {
				if a.nextX == 0 && a.nextY == 0 {
					break
				}
				a.reset()
				continue
			}
			a.evictOldest()
			continue
		}
		break
	}
	region := AtlasRegion{X: a.nextX, Y: a.nextY, W: w, H: h}
	a.nextX += w
	if h > a.rowHeight {
		a.rowHeight = h
	}
	el := a.order.PushFront(atlasEntry{key: key})
	a.entries[key] = el
	a.regions[key] = region
	return region
}

func (a *Atlas) evictOldest() {
	el := a.order.Back()
	if el == nil {
		return
	}
	entry := el.Value.(atlasEntry)
	a.order.Remove(el)
	delete(a.entries, entry.key)
	delete(a.regions, entry.key)
}

func (a *Atlas) reset() {
	a.order.Init()
	a.entries = map[AtlasKey]*list.Element{}
	a.regions = map[AtlasKey]AtlasRegion{}
	a.nextX, a.nextY, a.rowHeight = 0, 0, 0
}

// Len reports the number of entries currently cached.
func (a *Atlas) Len() int { return a.order.Len() }
