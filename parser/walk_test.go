/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"slices"
	"testing"

	"bennypowers.dev/stratum/token"
)

func TestWalkerRef_LongestPrefixWins(t *testing.T) {
	prefixes := map[string]Ref{
		"Colors":       {Collection: "short"},
		"Colors.Brand": {Collection: "long"},
		"Palette":      {Tier: token.TierPrimitive},
	}
	w := &walker{prefixes: prefixes, order: prefixOrder(prefixes)}

	if want := []string{"Colors.Brand", "Palette", "Colors"}; !slices.Equal(w.order, want) {
		t.Fatalf("prefixOrder() = %v, want %v", w.order, want)
	}

	tests := []struct {
		path string
		want Ref
	}{
		{"Colors.Brand.Primary", Ref{Collection: "long", Path: "Primary"}},
		{"Colors/Brand/Primary", Ref{Collection: "long", Path: "Primary"}},
		{"Colors.Blue.500", Ref{Collection: "short", Path: "Blue.500"}},
		{"Palette.Red", Ref{Tier: token.TierPrimitive, Path: "Red"}},
		{"Spacing.4", Ref{Path: "Spacing.4"}},
	}
	for _, tt := range tests {
		// map iteration order must not leak into the result
		for range 20 {
			if got := w.ref(tt.path); got != tt.want {
				t.Fatalf("ref(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		}
	}
}
