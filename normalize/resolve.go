/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalize

import "regexp"

var singleVarRefPattern = regexp.MustCompile(`^var\(\s*(--[a-zA-Z0-9_-]+)\s*(?:,[^)]+)?\)$`)

// Lookup gives access to token values by name.
// token.Map satisfies it.
type Lookup interface {
	Value(name string) (string, bool)
}

// SingleVarRef returns the referenced name when the whole value is
// var(--name) or var(--name, fallback).
func SingleVarRef(value string) (string, bool) {
	m := singleVarRefPattern.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Resolve follows var() references from name to a terminal value.
// It returns false when name is missing from tokens or was already visited.
// A reference that cannot be followed falls back to the referencing
// token's own value.
func Resolve(name string, tokens Lookup) (string, bool) {
	return resolve(name, tokens, make(map[string]struct{}))
}

func resolve(name string, tokens Lookup, seen map[string]struct{}) (string, bool) {
	if _, ok := seen[name]; ok {
		return "", false
	}
	seen[name] = struct{}{}

	value, ok := tokens.Value(name)
	if !ok {
		return "", false
	}
	ref, ok := SingleVarRef(value)
	if !ok {
		return value, true
	}
	if resolved, ok := resolve(ref, tokens, seen); ok {
		return resolved, true
	}
	return value, true
}

// Equivalence classifies two values.
type Equivalence struct {
	Equivalent bool

	// DifferentForm is true when equality needed a reference resolved.
	DifferentForm bool
}

// Equivalent compares two values by normalized form, then by resolving a
// single var() reference on either side against its own token set.
func Equivalent(left, right string, leftTokens, rightTokens Lookup) Equivalence {
	leftNorm := Normalize(left)
	rightNorm := Normalize(right)
	if leftNorm == rightNorm {
		return Equivalence{Equivalent: true}
	}

	if ref, ok := SingleVarRef(left); ok {
		if resolved, ok := Resolve(ref, leftTokens); ok && resolved != "" && Normalize(resolved) == rightNorm {
			return Equivalence{Equivalent: true, DifferentForm: true}
		}
	}
	if ref, ok := SingleVarRef(right); ok {
		if resolved, ok := Resolve(ref, rightTokens); ok && resolved != "" && Normalize(resolved) == leftNorm {
			return Equivalence{Equivalent: true, DifferentForm: true}
		}
	}
	return Equivalence{}
}
