/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema_test

import (
	"errors"
	"testing"

	"bennypowers.dev/stratum/schema"
	"bennypowers.dev/stratum/token"
)

func body(modes map[string]any) map[string]any {
	return map[string]any{"modes": modes}
}

func TestDetectShape(t *testing.T) {
	tests := []struct {
		name    string
		entries []schema.Entry
		want    schema.Shape
	}{
		{
			name:    "numbered tiers",
			entries: []schema.Entry{{Name: schema.PrimitiveColours}, {Name: schema.AliasColours}},
			want:    schema.Current,
		},
		{
			name:    "legacy names",
			entries: []schema.Entry{{Name: schema.LegacyPrimitives}, {Name: schema.LegacyColorModes}},
			want:    schema.Legacy,
		},
		{
			name:    "primitives with numbered tiers",
			entries: []schema.Entry{{Name: schema.LegacyPrimitives}, {Name: schema.AliasColours}},
			want:    schema.Mixed,
		},
		{
			name:    "numbered prefix with different suffix",
			entries: []schema.Entry{{Name: "3.0_Semantic_Colors"}},
			want:    schema.Current,
		},
		{
			name:    "nothing recognizable",
			entries: []schema.Entry{{Name: "Brand"}, {Name: "Effects"}},
			want:    schema.Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schema.DetectShape(tt.entries); got != tt.want {
				t.Errorf("DetectShape() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShapeString(t *testing.T) {
	for _, s := range []schema.Shape{schema.Current, schema.Legacy, schema.Mixed} {
		got, err := schema.FromString(s.String())
		if err != nil {
			t.Fatalf("FromString(%q) error: %v", s.String(), err)
		}
		if got != s {
			t.Errorf("FromString(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if _, err := schema.FromString("nope"); !errors.Is(err, schema.ErrUnknownShape) {
		t.Errorf("expected ErrUnknownShape, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	spec, ok := schema.Lookup("3.2_Semantic_Spacing")
	if !ok {
		t.Fatal("expected exact key to be found")
	}
	if spec.Namespace != schema.NamespaceSpacing || spec.Tier != token.TierSemantic {
		t.Errorf("unexpected spec %+v", spec)
	}

	spec, ok = schema.Lookup("1.0_Primitive_Colors")
	if !ok || spec.Key != schema.PrimitiveColours {
		t.Errorf("expected prefix match to 1.0, got %+v (ok=%v)", spec, ok)
	}

	if _, ok := schema.Lookup("9.9_Nothing"); ok {
		t.Error("expected unknown tier to miss")
	}
	if _, ok := schema.Lookup(schema.LegacySpacing); ok {
		t.Error("legacy key must not resolve as numbered")
	}
}

func TestNormalize_NoCollections(t *testing.T) {
	_, err := schema.Normalize([]schema.Entry{{Name: "Brand", Body: body(nil)}})
	if !errors.Is(err, schema.ErrNoCollections) {
		t.Fatalf("expected ErrNoCollections, got %v", err)
	}
}

func TestNormalize_Legacy(t *testing.T) {
	entries := []schema.Entry{
		{Name: schema.LegacyPrimitives, Body: body(map[string]any{
			"Core": map[string]any{
				"Colors":     map[string]any{"Blue": map[string]any{}},
				"Dimensions": map[string]any{"4": map[string]any{}},
				"Typography": map[string]any{"Size": map[string]any{}},
			},
		})},
		{Name: schema.LegacyAlias, Body: body(map[string]any{
			"Style": map[string]any{"Colors": map[string]any{}},
		})},
		{Name: schema.LegacyColorModes, Body: body(map[string]any{
			"Light mode": map[string]any{},
			"Dark mode":  map[string]any{},
		})},
		{Name: schema.LegacyWidths, Body: body(map[string]any{"Mode 1": map[string]any{}})},
	}

	export, err := schema.Normalize(entries)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if export.Shape != schema.Legacy {
		t.Errorf("Shape = %v, want legacy", export.Shape)
	}
	if len(export.Collections) != len(schema.Collections) {
		t.Fatalf("got %d collections, want %d", len(export.Collections), len(schema.Collections))
	}

	for _, key := range []string{
		schema.PrimitiveColours, schema.PrimitiveDimensions, schema.PrimitiveType,
		schema.AliasColours, schema.SemanticColours, schema.SemanticWidth,
	} {
		c, ok := export.Get(key)
		if !ok {
			t.Fatalf("missing collection %s", key)
		}
		if c.Placeholder {
			t.Errorf("collection %s should come from the export", key)
		}
	}

	c, _ := export.Get(schema.PrimitiveDimensions)
	core := schema.Modes(c.Body)["Core"]
	if _, ok := core["Dimensions"]; !ok {
		t.Errorf("dimensions not split into 1.1: %v", core)
	}

	for _, key := range []string{schema.AliasType, schema.SemanticSpacing, schema.ComponentColours, schema.Utility} {
		c, _ := export.Get(key)
		if !c.Placeholder {
			t.Errorf("collection %s should be a placeholder", key)
		}
		if len(schema.Modes(c.Body)) == 0 {
			t.Errorf("placeholder %s has no modes", key)
		}
	}

	semantic, _ := export.Get(schema.ComponentColours)
	modes := schema.Modes(semantic.Body)
	if _, ok := modes["Light mode"]; !ok {
		t.Error("component placeholder missing Light mode")
	}
	if _, ok := modes["Dark mode"]; !ok {
		t.Error("component placeholder missing Dark mode")
	}
}

func TestNormalize_NumberedWins(t *testing.T) {
	numbered := body(map[string]any{"Core": map[string]any{"Colors": map[string]any{"Red": map[string]any{}}}})
	entries := []schema.Entry{
		{Name: schema.LegacyPrimitives, Body: body(map[string]any{
			"Core": map[string]any{"Colors": map[string]any{"Blue": map[string]any{}}},
		})},
		{Name: schema.PrimitiveColours, Body: numbered},
	}

	export, err := schema.Normalize(entries)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if export.Shape != schema.Mixed {
		t.Errorf("Shape = %v, want mixed", export.Shape)
	}
	c, _ := export.Get(schema.PrimitiveColours)
	colors := schema.Modes(c.Body)["Core"]["Colors"].(map[string]any)
	if _, ok := colors["Red"]; !ok {
		t.Errorf("numbered collection should win, got %v", colors)
	}
}

func TestToLegacyMixed(t *testing.T) {
	entries := []schema.Entry{
		{Name: schema.PrimitiveColours, Body: body(nil)},
		{Name: schema.AliasColours, Body: body(nil)},
	}
	got := schema.ToLegacyMixed(entries)
	if got[0].Name != schema.LegacyPrimitives || got[1].Name != schema.AliasColours {
		t.Errorf("unexpected names %q, %q", got[0].Name, got[1].Name)
	}
	if entries[0].Name != schema.PrimitiveColours {
		t.Error("input entries must not be modified")
	}

	legacy := []schema.Entry{
		{Name: schema.LegacyPrimitives, Body: body(map[string]any{
			"Core": map[string]any{"Colors": map[string]any{"Blue": map[string]any{}}},
		})},
	}
	regrouped := schema.ToLegacyMixed(legacy)
	if len(regrouped) != len(schema.Collections) {
		t.Fatalf("got %d entries, want %d", len(regrouped), len(schema.Collections))
	}
	if schema.DetectShape(regrouped) != schema.Mixed {
		t.Errorf("regrouped shape = %v, want mixed", schema.DetectShape(regrouped))
	}
}

func TestModes(t *testing.T) {
	modes := map[string]map[string]any{
		"Dark mode":  {},
		"Light mode": {},
	}
	if got, _ := schema.DefaultMode(modes); got != "Light mode" {
		t.Errorf("DefaultMode() = %q, want Light mode", got)
	}
	if got, _ := schema.DarkMode(modes); got != "Dark mode" {
		t.Errorf("DarkMode() = %q, want Dark mode", got)
	}

	numbered := map[string]map[string]any{"Mode 10": {}, "Mode 2": {}}
	if got, _ := schema.DefaultMode(numbered); got != "Mode 2" {
		t.Errorf("DefaultMode() = %q, want natural order Mode 2", got)
	}
	if _, ok := schema.DarkMode(numbered); ok {
		t.Error("expected no dark mode")
	}
}
