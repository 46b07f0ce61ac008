/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"strings"

	"bennypowers.dev/stratum/token"
)

// Collection keys of the numbered-tier shape.
const (
	PrimitiveColours    = "1.0_Primitive_Colours"
	PrimitiveDimensions = "1.1_Primitive_Dimensions"
	PrimitiveType       = "1.2_Primitive_Type"
	AliasColours        = "2.0_Alias_Colours"
	AliasType           = "2.1_Alias_Type"
	SemanticColours     = "3.0_Semantic_Colours"
	SemanticType        = "3.1_Semantic_Type"
	SemanticSpacing     = "3.2_Semantic_Spacing"
	SemanticWidth       = "3.3_Semantic_Width"
	SemanticContainers  = "3.4_Semantic_Containers"
	SemanticRadius      = "3.5_Semantic_Radius"
	ComponentColours    = "4.0_Component_Colours"
	Effects             = "5.0_Effects"
	Utility             = "6.0_Utility"
)

// Collection keys of the legacy shape.
const (
	LegacyPrimitives = "_Primitives"
	LegacyAlias      = "_Alias"
	LegacyColorModes = "1. Color modes"
	LegacyRadius     = "2. Radius"
	LegacySpacing    = "3. Spacing"
	LegacyWidths     = "4. Widths"
	LegacyContainers = "5. Containers"
	LegacyTypography = "6. Typography"
)

// Namespaces of emitted custom properties, without the leading dashes.
const (
	NamespacePrimitiveColor     = "primitive-color"
	NamespacePrimitiveDimension = "primitive-dimension"
	NamespacePrimitiveFont      = "primitive-font"
	NamespaceAliasColor         = "alias-color"
	NamespaceAliasFont          = "alias-font"
	NamespaceColor              = "color"
	NamespaceText               = "text"
	NamespaceSpacing            = "spacing"
	NamespaceWidth              = "width"
	NamespaceContainer          = "container"
	NamespaceRadius             = "radius"
	NamespaceComponent          = "component"
	NamespaceEffect             = "effect"
	NamespaceUtility            = "utility"
)

// CollectionSpec describes how one numbered-tier collection is emitted.
type CollectionSpec struct {
	// Key is the collection name in the numbered-tier shape.
	Key string

	// Tier is the reference tier of every token in the collection.
	Tier token.Tier

	// Namespace prefixes every emitted name.
	Namespace string

	// Categories are leading path segments (lower case) that name the
	// collection's category and are not repeated in emitted names.
	Categories []string

	// Themed collections carry light and dark modes.
	Themed bool

	// Typography collections emit composite text styles.
	Typography bool

	// PlaceholderModes are the modes of the empty stand-in used when the
	// collection is missing from the export.
	PlaceholderModes []string
}

var (
	colorCategories = []string{"colors", "colours", "color", "colour"}
	typeCategories  = []string{"typography", "type", "fonts", "font"}
	valueMode       = []string{"Value"}
	singleMode      = []string{"Mode 1"}
	themedModes     = []string{"Light mode", "Dark mode"}
)

// Collections lists every recognized collection in emission order.
var Collections = []CollectionSpec{
	{Key: PrimitiveColours, Tier: token.TierPrimitive, Namespace: NamespacePrimitiveColor, Categories: colorCategories, PlaceholderModes: []string{"Core"}},
	{Key: PrimitiveDimensions, Tier: token.TierPrimitive, Namespace: NamespacePrimitiveDimension, Categories: []string{"dimensions", "dimension"}, PlaceholderModes: []string{"Core"}},
	{Key: PrimitiveType, Tier: token.TierPrimitive, Namespace: NamespacePrimitiveFont, Categories: typeCategories, PlaceholderModes: []string{"Core"}},
	{Key: AliasColours, Tier: token.TierAlias, Namespace: NamespaceAliasColor, Categories: colorCategories, PlaceholderModes: []string{"Style"}},
	{Key: AliasType, Tier: token.TierAlias, Namespace: NamespaceAliasFont, Categories: typeCategories, PlaceholderModes: []string{"Style"}},
	{Key: SemanticColours, Tier: token.TierSemantic, Namespace: NamespaceColor, Categories: colorCategories, Themed: true, PlaceholderModes: themedModes},
	{Key: SemanticType, Tier: token.TierSemantic, Namespace: NamespaceText, Categories: []string{"typography", "type", "text"}, Typography: true, PlaceholderModes: valueMode},
	{Key: SemanticSpacing, Tier: token.TierSemantic, Namespace: NamespaceSpacing, Categories: []string{"spacing", "space"}, PlaceholderModes: singleMode},
	{Key: SemanticWidth, Tier: token.TierSemantic, Namespace: NamespaceWidth, Categories: []string{"widths", "width"}, PlaceholderModes: singleMode},
	{Key: SemanticContainers, Tier: token.TierSemantic, Namespace: NamespaceContainer, Categories: []string{"containers", "container"}, PlaceholderModes: valueMode},
	{Key: SemanticRadius, Tier: token.TierSemantic, Namespace: NamespaceRadius, Categories: []string{"radius", "radii", "border-radius"}, PlaceholderModes: singleMode},
	{Key: ComponentColours, Tier: token.TierSemantic, Namespace: NamespaceComponent, Categories: append([]string{"components", "component"}, colorCategories...), Themed: true, PlaceholderModes: themedModes},
	{Key: Effects, Tier: token.TierSemantic, Namespace: NamespaceEffect, Categories: []string{"effects", "effect"}, PlaceholderModes: valueMode},
	{Key: Utility, Tier: token.TierSemantic, Namespace: NamespaceUtility, Categories: []string{"utility", "utilities"}, PlaceholderModes: valueMode},
}

// LegacyRenames maps legacy collections that move wholesale to a numbered key.
var LegacyRenames = map[string]string{
	LegacyColorModes: SemanticColours,
	LegacyTypography: SemanticType,
	LegacySpacing:    SemanticSpacing,
	LegacyWidths:     SemanticWidth,
	LegacyContainers: SemanticContainers,
	LegacyRadius:     SemanticRadius,
}

// Lookup returns the CollectionSpec for a numbered-tier collection key. Keys are
// matched exactly first, then by their numeric tier prefix ("3.2_...").
func Lookup(key string) (CollectionSpec, bool) {
	for _, spec := range Collections {
		if spec.Key == key {
			return spec, true
		}
	}
	prefix, _, found := strings.Cut(key, "_")
	if !found || !isTierNumber(prefix) {
		return CollectionSpec{}, false
	}
	for _, spec := range Collections {
		if strings.HasPrefix(spec.Key, prefix+"_") {
			return spec, true
		}
	}
	return CollectionSpec{}, false
}

// IsLegacyKey reports whether key names a legacy-shape collection.
func IsLegacyKey(key string) bool {
	if key == LegacyPrimitives || key == LegacyAlias {
		return true
	}
	_, ok := LegacyRenames[key]
	return ok
}

func isTierNumber(s string) bool {
	major, minor, found := strings.Cut(s, ".")
	if !found || major == "" || minor == "" {
		return false
	}
	for _, r := range major + minor {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
