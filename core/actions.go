// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"encoding/json"

	"github.com/mattn/go-shellwords"

	"github.com/reactivecore/core/keymap"
)

// Action is a typed, zero-or-small payload dispatched by name through
// the keymap/focus-chain mechanism or the command palette.
type Action interface {
	ActionName() string
}

// ActionFactory deserializes an Action's JSON payload, the "deserialize
// from JSON" capability named in the reactive core's Actions design.
type ActionFactory func(data json.RawMessage) (Action, error)

// ActionRegistry is the string-name-to-deserializer map named in the
// external interfaces contract (`register_action::<A>()`).
type ActionRegistry struct {
	factories map[string]ActionFactory
}

// NewActionRegistry returns an empty ActionRegistry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{factories: map[string]ActionFactory{}}
}

// Register installs factory under name, overwriting any prior registration.
func (r *ActionRegistry) Register(name string, factory ActionFactory) {
	r.factories[name] = factory
}

// Build deserializes data as the action registered under name.
func (r *ActionRegistry) Build(name string, data json.RawMessage) (Action, error) {
	f, ok := r.factories[name]
	if !ok {
		return simpleAction(name), nil
	}
	return f(data)
}

// simpleAction is used for actions with no payload and no registered factory.
type simpleAction string

func (s simpleAction) ActionName() string { return string(s) }

// ActionHandler returns true if it consumed the action (stop_propagation)
// or false to let dispatch continue walking up the focus chain
// (propagate).
type ActionHandler func(Action) bool

// Dispatcher resolves a key chord to an action via the keymap and the
// currently focused node's accumulated context, then walks the focus
// chain looking for a registered handler of that action's name,
// invoking the first one found. A handler may stop or propagate.
type Dispatcher struct {
	Focus    *FocusTree
	Keymap   *keymap.Keymap
	Registry *ActionRegistry

	handlers map[FocusId]map[string][]ActionHandler
}

// NewDispatcher returns a Dispatcher wired to the given focus tree, keymap,
// and action registry.
func NewDispatcher(focus *FocusTree, km *keymap.Keymap, registry *ActionRegistry) *Dispatcher {
	return &Dispatcher{
		Focus:    focus,
		Keymap:   km,
		Registry: registry,
		handlers: map[FocusId]map[string][]ActionHandler{},
	}
}

// OnAction registers fn as a handler for named actions reaching node,
// grounded on the element tree's on_action::<A>(handler) capability.
func (d *Dispatcher) OnAction(node FocusId, actionName string, fn ActionHandler) {
	m, ok := d.handlers[node]
	if !ok {
		m = map[string][]ActionHandler{}
		d.handlers[node] = m
	}
	m[actionName] = append(m[actionName], fn)
}

// Dispatch resolves chord starting from the currently focused node and,
// on a match, invokes handlers walking from the matched node up to the
// root until one stops propagation. Returns the action that fired and
// whether anything handled it.
func (d *Dispatcher) Dispatch(chord keymap.Chord) (Action, bool) {
	chain := d.Focus.Chain(d.Focus.Current())
	for i, node := range chain {
		own := d.Focus.OwnKeys(node)
		ancestors := d.Focus.AncestorKeys(node)
		binding, ok := d.Keymap.Resolve(chord, own, ancestors)
		if !ok {
			continue
		}
		action, err := d.Registry.Build(binding.Action, nil)
		if err != nil {
			return nil, false
		}
		for _, n := range chain[i:] {
			for _, h := range d.handlers[n][binding.Action] {
				if h(action) {
					return action, true
				}
			}
		}
		return action, false
	}
	return nil, false
}

// ParseInvocation tokenizes a command-palette input string into an
// action name and its string arguments, using shell-style quoting rules.
func ParseInvocation(s string) (name string, args []string, err error) {
	toks, err := shellwords.Parse(s)
	if err != nil || len(toks) == 0 {
		return "", nil, err
	}
	return toks[0], toks[1:], nil
}
