// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keymap

import (
	"strings"
	"unicode"
)

// Chord is the string representation of a key combination, e.g.
// "Control+Shift+P" or "a". It is the left-hand side of a keymap binding.
type Chord string

// NewChord builds a Chord from a printable rune (or 0 if the key has no
// printable rune), a non-printable key name, and the modifiers held.
func NewChord(rn rune, keyName string, mods Modifiers) Chord {
	modstr := mods.String()
	if rn != 0 && unicode.IsPrint(rn) {
		if modstr != "" {
			return Chord(modstr + string(unicode.ToUpper(rn)))
		}
		return Chord(string(rn))
	}
	return Chord(modstr + keyName)
}

// IsMulti reports whether ch represents a space-separated multi-key
// sequence such as "Control+K Control+S".
func (ch Chord) IsMulti() bool {
	return strings.Contains(string(ch), " ")
}

// Chords splits a multi-key sequence into its individual chords.
func (ch Chord) Chords() []Chord {
	parts := strings.Fields(string(ch))
	if len(parts) <= 1 {
		return []Chord{ch}
	}
	out := make([]Chord, len(parts))
	for i, p := range parts {
		out[i] = Chord(p)
	}
	return out
}

// Decode splits ch into its modifiers and the remaining key name or rune.
func (ch Chord) Decode() (mods Modifiers, key string) {
	mods, key = modifiersFromString(string(ch))
	return
}

// Label renders ch for display, translating Control to "Ctrl" the way
// the runtime's command palette and menu labels do.
func (ch Chord) Label() string {
	return strings.ReplaceAll(string(ch), "Control+", "Ctrl+")
}
