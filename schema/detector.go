/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

// Entry is one named collection of the export, in document order.
type Entry struct {
	Name string
	Body map[string]any
}

// DetectShape reports which collection naming scheme the entries use.
// Priority order:
// 1. both _Primitives and a numbered tier key -> Mixed
// 2. _Primitives or any other legacy key -> Legacy
// 3. any numbered tier key -> Current
func DetectShape(entries []Entry) Shape {
	var legacy, numbered, primitives bool
	for _, e := range entries {
		if e.Name == LegacyPrimitives {
			primitives = true
		}
		if IsLegacyKey(e.Name) {
			legacy = true
			continue
		}
		if _, ok := Lookup(e.Name); ok {
			numbered = true
		}
	}
	switch {
	case primitives && numbered:
		return Mixed
	case legacy && numbered:
		return Mixed
	case legacy:
		return Legacy
	case numbered:
		return Current
	default:
		return Unknown
	}
}
