// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keymap

// Binding maps one Chord, qualified by a context Predicate, to an
// action name.
type Binding struct {
	Chord     Chord
	Predicate Predicate
	Action    string
}

// Keymap is an ordered set of bindings, as loaded from a keymap source
// file. Bindings for the same chord are tried in registration order;
// the focus-chain walk (owned by the window/core layer) picks the first
// whose predicate matches a given node's context.
type Keymap struct {
	bindings map[Chord][]Binding
	order    []Chord
}

// New returns an empty Keymap.
func New() *Keymap {
	return &Keymap{bindings: map[Chord][]Binding{}}
}

// Bind registers a binding, appending to any existing bindings for the
// same chord.
func (k *Keymap) Bind(chord Chord, pred Predicate, action string) {
	if _, ok := k.bindings[chord]; !ok {
		k.order = append(k.order, chord)
	}
	k.bindings[chord] = append(k.bindings[chord], Binding{chord, pred, action})
}

// Bindings returns the bindings registered for chord, in registration order.
func (k *Keymap) Bindings(chord Chord) []Binding {
	return k.bindings[chord]
}

// Resolve returns the first binding for chord whose predicate matches,
// given the evaluating node's own context keys and the union of its
// ancestors' context keys, and whether one was found.
func (k *Keymap) Resolve(chord Chord, own, ancestors map[string]bool) (Binding, bool) {
	for _, b := range k.bindings[chord] {
		if b.Predicate == nil || b.Predicate.Eval(own, ancestors) {
			return b, true
		}
	}
	return Binding{}, false
}
