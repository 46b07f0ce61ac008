/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

var (
	// curlyBracePattern matches a whole-value {token.path} reference.
	curlyBracePattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

	// varRefPattern matches var(--name) and var(--name, fallback) anywhere in a value.
	varRefPattern = regexp.MustCompile(`var\(\s*(--[a-zA-Z0-9_-]+)\s*(?:,[^)]+)?\)`)
)

// ParseCurlyBraceRef extracts the token path from a whole-value curly brace reference.
// Returns the path and true if valid, empty string and false otherwise.
func ParseCurlyBraceRef(value string) (string, bool) {
	matches := curlyBracePattern.FindStringSubmatch(strings.TrimSpace(value))
	if len(matches) != 2 {
		return "", false
	}
	return strings.TrimSpace(matches[1]), true
}

// ExtractVarRefs returns every custom property name referenced through var()
// in value, in order of appearance.
func ExtractVarRefs(value string) []string {
	matches := varRefPattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, m[1])
		}
	}
	return refs
}

// VarRef renders a var() reference to the named custom property.
func VarRef(name string) string {
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}
	return "var(" + name + ")"
}
