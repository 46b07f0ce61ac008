/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalize canonicalizes custom-property values for comparison and
// resolves var() references between tokens.
package normalize

import (
	"regexp"
	"strings"
)

var (
	oklchPattern      = regexp.MustCompile(`(?i)oklch\(([^)]+)\)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	zeroPxPattern     = regexp.MustCompile(`\b0px\b`)
)

// Normalize returns the canonical form of a raw value: OKLCH components
// rounded to two decimals, whitespace collapsed and 0px written as 0.
func Normalize(value string) string {
	out := oklchPattern.ReplaceAllStringFunc(value, func(match string) string {
		inner := oklchPattern.FindStringSubmatch(match)[1]
		return CanonicalOKLCH(inner)
	})
	out = whitespacePattern.ReplaceAllString(out, " ")
	out = zeroPxPattern.ReplaceAllString(out, "0")
	return strings.TrimSpace(out)
}
