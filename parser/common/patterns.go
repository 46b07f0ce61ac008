/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common provides shared utilities for token parsing.
package common

import (
	"regexp"
	"strings"
)

// Shared regex patterns for compiled CSS.

// CustomPropertyPattern matches a custom property declaration: --name: value;
// Text that does not match is ignored by every consumer.
var CustomPropertyPattern = regexp.MustCompile(`(--[a-zA-Z0-9_-]+)\s*:\s*([^;]+);`)

// Declaration is a single custom property matched by CustomPropertyPattern.
type Declaration struct {
	Name  string
	Value string
}

// ParseCustomProperties returns every custom property declared in cssText,
// in source order. Values are trimmed.
func ParseCustomProperties(cssText string) []Declaration {
	matches := CustomPropertyPattern.FindAllStringSubmatch(cssText, -1)
	decls := make([]Declaration, 0, len(matches))
	for _, m := range matches {
		decls = append(decls, Declaration{Name: m[1], Value: strings.TrimSpace(m[2])})
	}
	return decls
}
