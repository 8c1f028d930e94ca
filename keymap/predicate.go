// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keymap

import (
	"fmt"
	"strings"

	"github.com/reactivecore/core/coreerr"
)

// Predicate is a boolean expression over a node's accumulated context
// keys: `key`, `!key`, `a && b`, `a || b`, and the parent-aware atom
// `a > b` (child b whose ancestor has a). Evaluation is given the set of
// context keys present at the node being tested (Own) and the set
// present anywhere in its ancestor chain (Ancestors).
type Predicate interface {
	Eval(own, ancestors map[string]bool) bool
	String() string
}

type keyPred struct{ key string }

func (p keyPred) Eval(own, _ map[string]bool) bool { return own[p.key] }
func (p keyPred) String() string                    { return p.key }

type notPred struct{ p Predicate }

func (p notPred) Eval(own, anc map[string]bool) bool { return !p.p.Eval(own, anc) }
func (p notPred) String() string                     { return "!" + p.p.String() }

type andPred struct{ a, b Predicate }

func (p andPred) Eval(own, anc map[string]bool) bool { return p.a.Eval(own, anc) && p.b.Eval(own, anc) }
func (p andPred) String() string                     { return p.a.String() + " && " + p.b.String() }

type orPred struct{ a, b Predicate }

func (p orPred) Eval(own, anc map[string]bool) bool { return p.a.Eval(own, anc) || p.b.Eval(own, anc) }
func (p orPred) String() string                     { return p.a.String() + " || " + p.b.String() }

// ancestorPred is the `a > b` atom: true when the evaluated node itself
// has context key b and some ancestor has context key a.
type ancestorPred struct{ ancestor, child string }

func (p ancestorPred) Eval(own, anc map[string]bool) bool {
	return own[p.child] && anc[p.ancestor]
}
func (p ancestorPred) String() string { return p.ancestor + " > " + p.child }

// ParsePredicate parses a context predicate expression. Supported
// grammar, in increasing precedence: `||`, `&&`, unary `!`, the binary
// `>` ancestor atom, and bare/parenthesized identifiers. Returns
// coreerr.KeymapParse wrapping the offending text on a malformed
// expression.
func ParsePredicate(s string) (Predicate, error) {
	p := &predParser{toks: tokenize(s), src: s}
	pred, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, coreerr.Wrap(coreerr.KeymapParse, "unexpected trailing input in %q", s)
	}
	return pred, nil
}

func tokenize(s string) []string {
	s = strings.ReplaceAll(s, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")
	s = strings.ReplaceAll(s, "&&", " && ")
	s = strings.ReplaceAll(s, "||", " || ")
	s = strings.ReplaceAll(s, "!", " ! ")
	s = strings.ReplaceAll(s, ">", " > ")
	return strings.Fields(s)
}

type predParser struct {
	toks []string
	pos  int
	src  string
}

func (p *predParser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *predParser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *predParser) parseOr() (Predicate, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek() == "||" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orPred{left, right}
	}
	return left, nil
}

func (p *predParser) parseAnd() (Predicate, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.peek() == "&&" {
		p.next()
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = andPred{left, right}
	}
	return left, nil
}

func (p *predParser) parseAtom() (Predicate, error) {
	tok := p.peek()
	switch {
	case tok == "":
		return nil, coreerr.Wrap(coreerr.KeymapParse, "unexpected end of predicate in %q", p.src)
	case tok == "!":
		p.next()
		inner, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return notPred{inner}, nil
	case tok == "(":
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, coreerr.Wrap(coreerr.KeymapParse, "missing ) in %q", p.src)
		}
		p.next()
		return p.maybeAncestor(inner)
	default:
		p.next()
		return p.maybeAncestor(keyPred{tok})
	}
}

// maybeAncestor checks for a trailing `> key` after an atom, building the
// ancestorPred atom `a > b`. left must itself be a bare key atom for this
// to be meaningful; composite predicates on the left of `>` are rejected.
func (p *predParser) maybeAncestor(left Predicate) (Predicate, error) {
	if p.peek() != ">" {
		return left, nil
	}
	kp, ok := left.(keyPred)
	if !ok {
		return nil, coreerr.Wrap(coreerr.KeymapParse, "> must follow a bare key in %q", p.src)
	}
	p.next()
	childTok := p.next()
	if childTok == "" {
		return nil, coreerr.Wrap(coreerr.KeymapParse, "missing child key after > in %q", p.src)
	}
	return ancestorPred{ancestor: kp.key, child: childTok}, nil
}

// MustParsePredicate is ParsePredicate for compile-time-known keymap
// source; it panics on a malformed expression, used when registering
// built-in bindings where a parse failure is a programmer error.
func MustParsePredicate(s string) Predicate {
	p, err := ParsePredicate(s)
	if err != nil {
		panic(fmt.Sprintf("keymap: %v", err))
	}
	return p
}
