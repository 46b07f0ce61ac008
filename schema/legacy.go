/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

// ToLegacyMixed rewrites an export into the mixed legacy shape used to
// exercise shape fallback. A numbered export only has its primitive colour
// collection renamed to _Primitives; a legacy export is regrouped into the
// numbered layout with _Primitives kept for the colour primitives.
// Exports in neither shape are returned unchanged.
func ToLegacyMixed(entries []Entry) []Entry {
	byName := make(map[string]map[string]any, len(entries))
	for _, e := range entries {
		if _, ok := byName[e.Name]; !ok {
			byName[e.Name] = e.Body
		}
	}

	if _, ok := byName[PrimitiveColours]; ok {
		out := make([]Entry, len(entries))
		for i, e := range entries {
			if e.Name == PrimitiveColours {
				e.Name = LegacyPrimitives
			}
			out[i] = e
		}
		return out
	}

	primitives, ok := byName[LegacyPrimitives]
	if !ok {
		return entries
	}
	alias := byName[LegacyAlias]

	pick := func(body map[string]any, mode, category string) map[string]any {
		tree := map[string]any{}
		if modes := Modes(body); modes != nil {
			if m, ok := modes[mode]; ok {
				if sub, ok := m[category].(map[string]any); ok {
					tree = sub
				}
			}
		}
		return map[string]any{"modes": map[string]any{mode: map[string]any{category: tree}}}
	}
	orPlaceholder := func(legacy, key string) map[string]any {
		if body, ok := byName[legacy]; ok {
			return body
		}
		spec, _ := Lookup(key)
		return Placeholder(spec)
	}
	placeholder := func(key string) map[string]any {
		spec, _ := Lookup(key)
		return Placeholder(spec)
	}

	return []Entry{
		{LegacyPrimitives, pick(primitives, "Core", "Colors")},
		{PrimitiveDimensions, pick(primitives, "Core", "Dimensions")},
		{PrimitiveType, pick(primitives, "Core", "Typography")},
		{AliasColours, pick(alias, "Style", "Colors")},
		{AliasType, pick(alias, "Style", "Typography")},
		{SemanticColours, orPlaceholder(LegacyColorModes, SemanticColours)},
		{SemanticType, orPlaceholder(LegacyTypography, SemanticType)},
		{SemanticSpacing, orPlaceholder(LegacySpacing, SemanticSpacing)},
		{SemanticWidth, orPlaceholder(LegacyWidths, SemanticWidth)},
		{SemanticContainers, orPlaceholder(LegacyContainers, SemanticContainers)},
		{SemanticRadius, orPlaceholder(LegacyRadius, SemanticRadius)},
		{ComponentColours, placeholder(ComponentColours)},
		{Effects, placeholder(Effects)},
		{Utility, placeholder(Utility)},
	}
}
