/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "sort"

// Map is a name-indexed set of tokens. The first token added under a name
// wins; later duplicates are discarded. Insertion order is retained so that
// callers iterating Names see a deterministic sequence.
type Map struct {
	names  []string
	byName map[string]*Token
}

// NewMap creates an empty token map.
func NewMap() *Map {
	return &Map{byName: make(map[string]*Token)}
}

// Add inserts tok unless a token with the same name already exists.
// It reports whether tok was inserted.
func (m *Map) Add(tok *Token) bool {
	if _, exists := m.byName[tok.Name]; exists {
		return false
	}
	m.byName[tok.Name] = tok
	m.names = append(m.names, tok.Name)
	return true
}

// Get returns the token with the given name.
func (m *Map) Get(name string) (*Token, bool) {
	tok, ok := m.byName[name]
	return tok, ok
}

// Has reports whether a token with the given name exists.
func (m *Map) Has(name string) bool {
	_, ok := m.byName[name]
	return ok
}

// Value returns the value of the named token.
func (m *Map) Value(name string) (string, bool) {
	tok, ok := m.byName[name]
	if !ok {
		return "", false
	}
	return tok.Value, true
}

// Len returns the number of tokens.
func (m *Map) Len() int {
	return len(m.names)
}

// Names returns token names in insertion order.
func (m *Map) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// SortedNames returns token names in lexical order.
func (m *Map) SortedNames() []string {
	out := m.Names()
	sort.Strings(out)
	return out
}

// NameSet returns the token names as a set.
func (m *Map) NameSet() map[string]bool {
	set := make(map[string]bool, len(m.names))
	for _, name := range m.names {
		set[name] = true
	}
	return set
}
