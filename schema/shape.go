/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema describes the collection layouts of the design-tool export
// and normalizes legacy layouts into the numbered-tier layout.
package schema

import "fmt"

// Shape identifies which collection naming scheme an export uses.
type Shape int

const (
	// Unknown represents an undetected or unrecognized shape.
	Unknown Shape = iota

	// Current is the numbered-tier shape (1.0_Primitive_Colours, 2.0_Alias_Colours, ...).
	Current

	// Legacy is the shape using _Primitives, _Alias and descriptive collection names.
	Legacy

	// Mixed carries both legacy and numbered-tier collection keys.
	Mixed
)

// String returns the string representation of the shape.
func (s Shape) String() string {
	switch s {
	case Current:
		return "current"
	case Legacy:
		return "legacy"
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// FromString returns the shape from a string representation.
func FromString(s string) (Shape, error) {
	switch s {
	case "current", "numbered":
		return Current, nil
	case "legacy":
		return Legacy, nil
	case "mixed":
		return Mixed, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownShape, s)
	}
}
