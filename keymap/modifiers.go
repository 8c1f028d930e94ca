// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keymap provides key chords, modifier bit flags, a
// context-predicate expression parser, and the Keymap that maps
// (chord, context predicate) pairs to action names for the focus-chain
// action dispatch described by the runtime's window layer.
package keymap

import "strings"

// Modifiers are used as bit flags representing a set of modifier keys
// held down alongside a key press.
type Modifiers int64 //enums:bitflag

const (
	// Control is the "Control" (Ctrl) key.
	Control Modifiers = iota
	// Meta is the system meta key (Command on macOS, the Windows key on Windows).
	Meta
	// Alt is the "Alt" ("Option" on macOS) key.
	Alt
	// Shift is the "Shift" key.
	Shift
)

var modifierNames = map[Modifiers]string{
	Control: "Control",
	Meta:    "Meta",
	Alt:     "Alt",
	Shift:   "Shift",
}

var modifierOrder = []Modifiers{Control, Meta, Alt, Shift}

// Has reports whether m has the given modifier bit set.
func (m Modifiers) Has(bit Modifiers) bool {
	return int64(m)&(1<<uint(bit)) != 0
}

// With returns m with the given modifier bit set.
func (m Modifiers) With(bit Modifiers) Modifiers {
	return m | Modifiers(int64(1)<<uint(bit))
}

// String returns the "+"-joined name of every modifier bit set in m, in
// Control, Meta, Alt, Shift order, each followed by a trailing "+".
func (m Modifiers) String() string {
	var b strings.Builder
	for _, bit := range modifierOrder {
		if m.Has(bit) {
			b.WriteString(modifierNames[bit])
			b.WriteByte('+')
		}
	}
	return b.String()
}

// modifiersFromString consumes leading modifier names (each followed by
// "+") from s and returns the parsed Modifiers and what remains of s.
func modifiersFromString(s string) (Modifiers, string) {
	var mods Modifiers
	for _, bit := range modifierOrder {
		prefix := modifierNames[bit] + "+"
		if strings.HasPrefix(s, prefix) {
			mods |= 1 << Modifiers(bit)
			s = strings.TrimPrefix(s, prefix)
		}
	}
	return mods, s
}
