/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the CSS custom-property token types shared by the
// build and compare pipelines.
package token

import "strings"

// Tier classifies a token's role in the reference chain.
type Tier int

const (
	// TierNone matches no tier. Resolving towards TierNone always yields a literal.
	TierNone Tier = iota

	// TierPrimitive holds literal palette, dimension and type values.
	TierPrimitive

	// TierAlias holds references into primitives.
	TierAlias

	// TierSemantic holds role-named references into aliases.
	TierSemantic
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierPrimitive:
		return "primitive"
	case TierAlias:
		return "alias"
	case TierSemantic:
		return "semantic"
	default:
		return "none"
	}
}

// TierOf returns the tier implied by a custom property's name prefix.
// Unprefixed names are semantic.
func TierOf(name string) Tier {
	name = strings.TrimPrefix(name, "--")
	switch {
	case strings.HasPrefix(name, "primitive-"):
		return TierPrimitive
	case strings.HasPrefix(name, "alias-"):
		return TierAlias
	default:
		return TierSemantic
	}
}

// Token is a single CSS custom property declaration.
type Token struct {
	// Name is the custom property name including the leading "--".
	Name string `json:"name"`

	// Value is the declared value, trimmed.
	Value string `json:"value"`

	// SourceFile is the file the declaration was read from.
	SourceFile string `json:"file,omitempty"`
}

// CSSDeclaration renders the token as a declaration without indentation.
func (t *Token) CSSDeclaration() string {
	return t.Name + ": " + t.Value + ";"
}
