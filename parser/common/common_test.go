/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common_test

import (
	"testing"

	"bennypowers.dev/stratum/parser/common"
)

func TestParseCustomProperties(t *testing.T) {
	css := `:root {
  --color-primary: var(--alias-color-brand-primary);
  --spacing-4 :  16px ;
  color: red;
  /* --not: a comment without semicolon */
}`
	got := common.ParseCustomProperties(css)
	want := []common.Declaration{
		{Name: "--color-primary", Value: "var(--alias-color-brand-primary)"},
		{Name: "--spacing-4", Value: "16px"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d declarations, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("declaration %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStructuredColorToCSS(t *testing.T) {
	half := 0.5
	hex := "#336699"
	tests := []struct {
		name  string
		color common.StructuredColor
		want  string
	}{
		{
			name:  "srgb to hex",
			color: common.StructuredColor{ColorSpace: "srgb", Components: []any{1.0, 0.0, 0.0}},
			want:  "#FF0000",
		},
		{
			name:  "hex wins when opaque",
			color: common.StructuredColor{ColorSpace: "display-p3", Components: []any{0.2, 0.4, 0.6}, Hex: &hex},
			want:  "#336699",
		},
		{
			name:  "oklch lightness as percent",
			color: common.StructuredColor{ColorSpace: "oklch", Components: []any{0.623, 0.214, 259.8}},
			want:  "oklch(62.3% 0.214 259.8)",
		},
		{
			name:  "alpha",
			color: common.StructuredColor{ColorSpace: "hsl", Components: []any{120.0, 50.0, 50.0}, Alpha: &half},
			want:  "hsl(120 50 50 / 0.5)",
		},
		{
			name:  "none keyword",
			color: common.StructuredColor{ColorSpace: "display-p3", Components: []any{"none", 0.5, 1.0}},
			want:  "color(display-p3 none 0.5 1)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.ToCSS(); got != tt.want {
				t.Errorf("ToCSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStructuredColor(t *testing.T) {
	if !common.IsStructuredColor(map[string]any{"colorSpace": "srgb", "components": []any{}}) {
		t.Error("expected structured color")
	}
	if _, err := common.ParseStructuredColor(map[string]any{"colorSpace": "cmyk", "components": []any{}}); err == nil {
		t.Error("expected unsupported color space error")
	}
	if _, err := common.ParseStructuredColor(map[string]any{"colorSpace": "srgb", "components": []any{"red"}}); err == nil {
		t.Error("expected invalid component error")
	}
}

func TestRGBAToCSS(t *testing.T) {
	opaque := map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0}
	if !common.IsRGBAColor(opaque) {
		t.Fatal("expected rgba color")
	}
	if got := common.RGBAToCSS(opaque); got != "#ff0000" {
		t.Errorf("RGBAToCSS() = %q, want #ff0000", got)
	}
	translucent := map[string]any{"r": 0.0, "g": 0.0, "b": 1.0, "a": 0.25}
	if got := common.RGBAToCSS(translucent); got != "rgb(0 0 255 / 0.25)" {
		t.Errorf("RGBAToCSS() = %q", got)
	}
	if common.IsRGBAColor(map[string]any{"r": 1.0}) {
		t.Error("partial channels are not a color")
	}
}
