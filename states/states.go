// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states provides the States bit flag type used to track an
// element's current interactivity state (hover, focus, press, and so
// on) across frames, for style selector matching and event routing.
package states

import (
	"fmt"
	"strings"

	"github.com/reactivecore/core/enums"
)

// States represents the current interactivity state of an element:
// whether it is being hovered over, focused, pressed, and so on. A
// single element can have any combination of these set at once.
type States int64 //enums:bitflag

const (
	// Hovered means a mouse pointer is positioned over the element.
	Hovered States = iota

	// Focused means the element has keyboard focus.
	Focused

	// FocusedWithin means the element does not itself have focus, but
	// one of its descendants in the element tree does.
	FocusedWithin

	// Active means the element is in the process of being interacted
	// with, such as a mouse button being held down over it, or a key
	// being held down while it has focus.
	Active

	// Dragging means the element is being dragged as part of a
	// drag-and-drop gesture.
	Dragging

	// Selected means the element is marked as selected, e.g. a list
	// item or a tab.
	Selected

	// Disabled means the element does not respond to input and is
	// excluded from focus and hit testing.
	Disabled

	// ReadOnly means the element's value can be seen but not changed.
	ReadOnly

	// Checked means the element (typically a checkbox or radio button)
	// is in the checked state.
	Checked

	// Indeterminate means the element's checked state cannot be
	// determined as wholly on or off, e.g. a checkbox representing a
	// mixed selection.
	Indeterminate

	// Invalid means the element's current value fails validation.
	Invalid
)

// Is returns whether the given state flag is set.
func (s States) Is(flag enums.BitFlag) bool {
	return s.HasFlag(flag)
}

// IsInteractive returns whether the element currently accepts input,
// i.e. it is not Disabled.
func (s States) IsInteractive() bool {
	return !s.hasBit(Disabled)
}

// hasBit reports whether the bit at the given index is set. Unlike
// HasFlag, it takes a concrete States bit index rather than a boxed
// enums.BitFlag, so it can be used internally without requiring States
// itself to satisfy enums.BitFlag by value.
func (s States) hasBit(bit States) bool {
	return int64(s)&(1<<uint(bit)) != 0
}

// setBit sets or clears the bit at the given index in place.
func (s *States) setBit(on bool, bit States) {
	mask := int64(1) << uint(bit)
	if on {
		*s |= States(mask)
	} else {
		*s &^= States(mask)
	}
}

// HasFlag implements [enums.BitFlag].
func (s States) HasFlag(f enums.BitFlag) bool {
	return int64(s)&(1<<uint(f.Int64())) != 0
}

// SetFlag implements [enums.BitFlag].
func (s *States) SetFlag(on bool, f ...enums.BitFlag) {
	for _, ie := range f {
		s.setBit(on, States(ie.Int64()))
	}
}

// Int64 implements [enums.Enum].
func (s States) Int64() int64 { return int64(s) }

// SetInt64 implements [enums.Enum].
func (s *States) SetInt64(i int64) { *s = States(i) }

// IsValid returns whether the value is valid, i.e. within the range of
// defined flag bits.
func (s States) IsValid() bool {
	return s >= 0 && s <= 1<<uint(Invalid)
}

var statesValues = []States{Hovered, Focused, FocusedWithin, Active, Dragging, Selected, Disabled, ReadOnly, Checked, Indeterminate, Invalid}

var statesNames = map[States]string{
	Hovered:       "Hovered",
	Focused:       "Focused",
	FocusedWithin: "FocusedWithin",
	Active:        "Active",
	Dragging:      "Dragging",
	Selected:      "Selected",
	Disabled:      "Disabled",
	ReadOnly:      "ReadOnly",
	Checked:       "Checked",
	Indeterminate: "Indeterminate",
	Invalid:       "Invalid",
}

var statesValuesByName = map[string]States{
	"Hovered":       Hovered,
	"Focused":       Focused,
	"FocusedWithin": FocusedWithin,
	"Active":        Active,
	"Dragging":      Dragging,
	"Selected":      Selected,
	"Disabled":      Disabled,
	"ReadOnly":      ReadOnly,
	"Checked":       Checked,
	"Indeterminate": Indeterminate,
	"Invalid":       Invalid,
}

// BitIndexString returns the name of this single bit index, ignoring
// any other bits that may be set.
func (s States) BitIndexString() string {
	if nm, ok := statesNames[s]; ok {
		return nm
	}
	return ""
}

// String returns the string representation of all flags set in s,
// joined by "|".
func (s States) String() string {
	str := ""
	for _, v := range statesValues {
		if s.hasBit(v) {
			if str != "" {
				str += "|"
			}
			str += v.BitIndexString()
		}
	}
	return str
}

// SetString sets the state from its "|"-joined string representation,
// clearing any previously set flags.
func (s *States) SetString(str string) error {
	*s = 0
	return s.SetStringOr(str)
}

// SetStringOr sets flags from their "|"-joined string representation,
// preserving any flags already set.
func (s *States) SetStringOr(str string) error {
	if str == "" {
		return nil
	}
	for _, part := range strings.Split(str, "|") {
		v, ok := statesValuesByName[part]
		if !ok {
			return fmt.Errorf("%q is not a valid value for type States", part)
		}
		s.setBit(true, v)
	}
	return nil
}

// Desc returns the description of the flags set in s; States has no
// per-value descriptions beyond its names.
func (s States) Desc() string {
	return s.String()
}

// Values returns all possible States values.
func (s States) Values() []enums.Enum {
	es := make([]enums.Enum, len(statesValues))
	for i, v := range statesValues {
		v := v
		es[i] = &v
	}
	return es
}

// Strings returns the names of all possible States values.
func (s States) Strings() []string {
	strs := make([]string, len(statesValues))
	for i, v := range statesValues {
		strs[i] = v.BitIndexString()
	}
	return strs
}

// Descs returns the descriptions of all possible States values.
func (s States) Descs() []string {
	return s.Strings()
}

var _ enums.BitFlag = (*States)(nil)
