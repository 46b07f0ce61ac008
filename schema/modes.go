/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// Modes returns the collection's mode trees keyed by mode name.
// A body without a modes object yields nil.
func Modes(body map[string]any) map[string]map[string]any {
	raw, ok := body["modes"].(map[string]any)
	if !ok {
		return nil
	}
	modes := make(map[string]map[string]any, len(raw))
	for name, tree := range raw {
		if m, ok := tree.(map[string]any); ok {
			modes[name] = m
		}
	}
	return modes
}

// IsDarkMode reports whether a mode name designates the dark theme.
func IsDarkMode(name string) bool {
	return strings.Contains(strings.ToLower(name), "dark")
}

// ModeNames returns the mode names in natural order.
func ModeNames(modes map[string]map[string]any) []string {
	names := make([]string, 0, len(modes))
	for name := range modes {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case natural.Less(a, b):
			return -1
		default:
			return 1
		}
	})
	return names
}

// DefaultMode returns the first non-dark mode in natural order, falling back
// to the first mode when every mode is dark.
func DefaultMode(modes map[string]map[string]any) (string, bool) {
	names := ModeNames(modes)
	for _, name := range names {
		if !IsDarkMode(name) {
			return name, true
		}
	}
	if len(names) > 0 {
		return names[0], true
	}
	return "", false
}

// DarkMode returns the first dark mode in natural order.
func DarkMode(modes map[string]map[string]any) (string, bool) {
	for _, name := range ModeNames(modes) {
		if IsDarkMode(name) {
			return name, true
		}
	}
	return "", false
}
