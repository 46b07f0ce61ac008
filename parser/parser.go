/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser loads a design-tool token export into a token graph.
package parser

import (
	"bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/schema"
	"bennypowers.dev/stratum/token"
)

// DefaultExcludePalettes are the palette words dropped from every build.
var DefaultExcludePalettes = []string{"gray"}

// Options configures export parsing.
type Options struct {
	// ExcludePalettes drops every token whose path names one of these
	// palettes. References into a dropped token are inlined as literals.
	ExcludePalettes []string
}

// Role is the typographic sub-property a leaf carries.
type Role int

const (
	// RoleNone is a plain token.
	RoleNone Role = iota
	RoleSize
	RoleLineHeight
	RoleLetterSpacing
	RoleWeight
	RoleFamily
)

// Suffix returns the companion suffix of the role, e.g. "--line-height".
func (r Role) Suffix() string {
	switch r {
	case RoleLineHeight:
		return "--line-height"
	case RoleLetterSpacing:
		return "--letter-spacing"
	case RoleWeight:
		return "--font-weight"
	default:
		return ""
	}
}

// Companions are the sub-property roles every base text token carries.
var Companions = []Role{RoleLineHeight, RoleLetterSpacing, RoleWeight}

// Ref is a reference to another leaf of the export.
type Ref struct {
	// Path is the dotted path of the target within its mode tree.
	Path string

	// Collection restricts lookup to one numbered collection when set.
	Collection string

	// Tier restricts lookup to one tier when set.
	Tier token.Tier
}

// String returns the reference in curly-brace form.
func (r Ref) String() string {
	return "{" + r.Path + "}"
}

// Value is a leaf's value in one mode: either a literal or a reference.
type Value struct {
	Literal string
	Ref     *Ref
}

// IsRef reports whether the value points at another leaf.
func (v Value) IsRef() bool {
	return v.Ref != nil
}

// Node is one token leaf of the normalized export.
type Node struct {
	// Name is the emitted custom property name.
	Name string

	// Namespace is the emitted namespace, without dashes.
	Namespace string

	// Base is the base text token name for typography companions.
	Base string

	Role       Role
	Type       string
	Tier       token.Tier
	Collection schema.CollectionSpec

	// Path is the raw path within the mode tree, category included.
	Path []string

	Default Value
	Dark    Value
	HasDark bool

	// Excluded nodes are never emitted.
	Excluded bool
}

// ValueFor returns the node's value in the dark or default mode.
func (n *Node) ValueFor(dark bool) Value {
	if dark && n.HasDark {
		return n.Dark
	}
	return n.Default
}

// Parser parses design-tool token exports.
type Parser interface {
	// Parse parses export data and returns the token graph.
	Parse(data []byte, opts Options) (*Graph, error)

	// ParseFile parses an export file and returns the token graph.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) (*Graph, error)
}
