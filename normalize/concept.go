/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalize

import (
	"regexp"
	"strings"
)

var tierPrefixPattern = regexp.MustCompile(`^(primitive|alias|semantic)-`)

// Categories recognized when deriving concept keys.
var Categories = []string{
	"color", "font", "text", "spacing", "radius", "width", "container", "breakpoint",
}

// ConceptKey derives the taxonomy-independent key of a custom property name.
// The tier prefix is dropped and a category is moved to the front when a
// taxonomy names it last, so --semantic-color-border and --border-color
// share the key "color-border".
func ConceptKey(name string) string {
	key := strings.TrimPrefix(name, "--")
	key = tierPrefixPattern.ReplaceAllString(key, "")

	for _, category := range Categories {
		if strings.HasPrefix(key, category+"-") {
			return key
		}
	}
	for _, category := range Categories {
		if rest, ok := strings.CutSuffix(key, "-"+category); ok && rest != "" {
			return category + "-" + rest
		}
	}
	return key
}
