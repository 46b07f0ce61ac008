/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Collection is a numbered-tier collection ready for traversal.
type Collection struct {
	Spec CollectionSpec
	Body map[string]any

	// Placeholder is true when the collection was backfilled.
	Placeholder bool
}

// Export is an export normalized into the numbered-tier shape.
type Export struct {
	// Shape is the shape detected before normalization.
	Shape Shape

	// Collections holds every recognized collection in emission order.
	Collections []Collection
}

// Get returns the collection with the given numbered-tier key.
func (e *Export) Get(key string) (Collection, bool) {
	for _, c := range e.Collections {
		if c.Spec.Key == key {
			return c, true
		}
	}
	return Collection{}, false
}

type split struct {
	categories []string
	key        string
}

var primitiveSplits = []split{
	{colorCategories, PrimitiveColours},
	{[]string{"dimensions", "dimension"}, PrimitiveDimensions},
	{typeCategories, PrimitiveType},
}

var aliasSplits = []split{
	{colorCategories, AliasColours},
	{typeCategories, AliasType},
}

// Normalize rewrites the entries into the numbered-tier shape.
// Numbered collections already present take precedence over legacy ones,
// and every recognized collection missing from the export is backfilled
// with an empty placeholder so no downstream stage sees an absent mode.
func Normalize(entries []Entry) (*Export, error) {
	shape := DetectShape(entries)
	if shape == Unknown {
		return nil, ErrNoCollections
	}

	found := make(map[string]map[string]any)
	put := func(key string, body map[string]any) {
		if _, exists := found[key]; !exists {
			found[key] = body
		}
	}

	for _, e := range entries {
		if IsLegacyKey(e.Name) {
			continue
		}
		if spec, ok := Lookup(e.Name); ok {
			put(spec.Key, e.Body)
		}
	}

	for _, e := range entries {
		switch e.Name {
		case LegacyPrimitives:
			if err := splitLegacy(e, primitiveSplits, PrimitiveColours, put); err != nil {
				return nil, err
			}
		case LegacyAlias:
			if err := splitLegacy(e, aliasSplits, AliasColours, put); err != nil {
				return nil, err
			}
		default:
			if key, ok := LegacyRenames[e.Name]; ok {
				put(key, e.Body)
			}
		}
	}

	export := &Export{Shape: shape}
	for _, spec := range Collections {
		if body, ok := found[spec.Key]; ok {
			export.Collections = append(export.Collections, Collection{Spec: spec, Body: body})
			continue
		}
		export.Collections = append(export.Collections, Collection{
			Spec:        spec,
			Body:        Placeholder(spec),
			Placeholder: true,
		})
	}
	return export, nil
}

// Placeholder returns an empty-but-valid body for the collection.
func Placeholder(spec CollectionSpec) map[string]any {
	modes := make(map[string]any, len(spec.PlaceholderModes))
	for _, m := range spec.PlaceholderModes {
		modes[m] = map[string]any{}
	}
	return map[string]any{"modes": modes}
}

// splitLegacy moves the category trees of a legacy collection's default mode
// into their numbered collections. A body with none of the known categories
// is taken whole as the fallback collection.
func splitLegacy(e Entry, splits []split, fallback string, put func(string, map[string]any)) error {
	modes := Modes(e.Body)
	if modes == nil {
		return fmt.Errorf("%w: collection %q has no modes", ErrInvalidExport, e.Name)
	}
	mode, ok := DefaultMode(modes)
	if !ok {
		put(fallback, e.Body)
		return nil
	}
	tree := modes[mode]

	matched := false
	for _, s := range splits {
		category, sub, ok := findCategory(tree, s.categories)
		if !ok {
			continue
		}
		matched = true
		put(s.key, map[string]any{
			"modes": map[string]any{
				mode: map[string]any{category: sub},
			},
		})
	}
	if !matched {
		put(fallback, e.Body)
	}
	return nil
}

func findCategory(tree map[string]any, categories []string) (string, any, bool) {
	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, want := range categories {
		for _, name := range names {
			if strings.EqualFold(name, want) {
				return name, tree[name], true
			}
		}
	}
	return "", nil, false
}
