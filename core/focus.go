// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// FocusId identifies one node in a window's focus tree.
type FocusId uint64

const noFocus FocusId = 0

type focusNode struct {
	parent      FocusId // noFocus means root
	contextKeys map[string]bool
}

// FocusTree is the parent-pointed tree of focus handles used to resolve
// key context for action dispatch. Nodes are created on demand by views
// and live as long as any holder retains them. The currently focused
// node is a single optional FocusId per window; changing it runs the blur
// handlers of the old node and then the focus handlers of the new node
// synchronously inside Focus. The notifications are not deferred to a
// later point in the frame.
type FocusTree struct {
	nodes   map[FocusId]*focusNode
	next    uint64
	current FocusId

	blurFns  map[FocusId][]func()
	focusFns map[FocusId][]func()
}

// NewFocusTree returns an empty FocusTree.
func NewFocusTree() *FocusTree {
	return &FocusTree{
		nodes:    map[FocusId]*focusNode{},
		blurFns:  map[FocusId][]func(){},
		focusFns: map[FocusId][]func(){},
	}
}

// NewHandle creates a focus node with the given parent (noFocus for a
// root node) and context keys, returning its id.
func (t *FocusTree) NewHandle(parent FocusId, contextKeys ...string) FocusId {
	t.next++
	id := FocusId(t.next)
	keys := map[string]bool{}
	for _, k := range contextKeys {
		keys[k] = true
	}
	t.nodes[id] = &focusNode{parent: parent, contextKeys: keys}
	return id
}

// Destroy removes a focus node. If it was the focused node, focus moves
// to its parent (or to no node, if it had none).
func (t *FocusTree) Destroy(id FocusId) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	if t.current == id {
		if ok {
			t.Focus(n.parent)
		} else {
			t.Focus(noFocus)
		}
	}
	delete(t.nodes, id)
	delete(t.blurFns, id)
	delete(t.focusFns, id)
}

// Current returns the currently focused node, or noFocus if nothing is focused.
func (t *FocusTree) Current() FocusId { return t.current }

// Focus changes the focused node, invoking blur handlers for the
// previous node and focus handlers for the new one if the node actually
// changed.
func (t *FocusTree) Focus(id FocusId) {
	if id == t.current {
		return
	}
	old := t.current
	t.current = id
	for _, fn := range t.blurFns[old] {
		fn()
	}
	for _, fn := range t.focusFns[id] {
		fn()
	}
}

// OnBlur registers fn to run when id stops being the focused node.
func (t *FocusTree) OnBlur(id FocusId, fn func()) {
	t.blurFns[id] = append(t.blurFns[id], fn)
}

// OnFocus registers fn to run when id becomes the focused node.
func (t *FocusTree) OnFocus(id FocusId, fn func()) {
	t.focusFns[id] = append(t.focusFns[id], fn)
}

// OwnKeys returns the context keys registered directly on id.
func (t *FocusTree) OwnKeys(id FocusId) map[string]bool {
	if n, ok := t.nodes[id]; ok {
		return n.contextKeys
	}
	return nil
}

// AncestorKeys returns the union of context keys over every ancestor of
// id (not including id's own keys).
func (t *FocusTree) AncestorKeys(id FocusId) map[string]bool {
	out := map[string]bool{}
	n, ok := t.nodes[id]
	if !ok {
		return out
	}
	cur := n.parent
	for cur != noFocus {
		pn, ok := t.nodes[cur]
		if !ok {
			break
		}
		for k := range pn.contextKeys {
			out[k] = true
		}
		cur = pn.parent
	}
	return out
}

// Chain returns id and every ancestor of id, innermost first, used by
// action dispatch to walk from the focused node up to the root.
func (t *FocusTree) Chain(id FocusId) []FocusId {
	var chain []FocusId
	cur := id
	for cur != noFocus {
		chain = append(chain, cur)
		n, ok := t.nodes[cur]
		if !ok {
			break
		}
		cur = n.parent
	}
	return chain
}
