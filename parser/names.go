/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/stratum/schema"
)

var nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lower-cases s and joins its alphanumeric runs with hyphens.
func Slug(s string) string {
	lower := cases.Lower(language.Und).String(s)
	return strings.Trim(nonSlugPattern.ReplaceAllString(lower, "-"), "-")
}

// slugPath slugs each segment and joins the non-empty results.
func slugPath(segments []string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if slug := Slug(s); slug != "" {
			parts = append(parts, slug)
		}
	}
	return strings.Join(parts, "-")
}

// stripCategories removes leading category words so names do not repeat
// their namespace. The last word is always kept.
func stripCategories(slug string, categories []string) string {
	for {
		stripped := false
		for _, c := range categories {
			if rest, ok := strings.CutPrefix(slug, c+"-"); ok && rest != "" {
				slug = rest
				stripped = true
				break
			}
		}
		if !stripped {
			return slug
		}
	}
}

var rehomed = []struct {
	prefixes  []string
	namespace string
}{
	{[]string{"widths", "width"}, schema.NamespaceWidth},
	{[]string{"containers", "container"}, schema.NamespaceContainer},
}

// rehome moves width and container groups out of the spacing namespace.
func rehome(namespace, slug string) (string, string) {
	if namespace != schema.NamespaceSpacing {
		return namespace, slug
	}
	for _, r := range rehomed {
		for _, p := range r.prefixes {
			if slug == p {
				return r.namespace, ""
			}
			if rest, ok := strings.CutPrefix(slug, p+"-"); ok {
				return r.namespace, rest
			}
		}
	}
	return namespace, slug
}

func join(namespace, slug string) string {
	if slug == "" {
		return "--" + namespace
	}
	return "--" + namespace + "-" + slug
}

var roleWords = map[string]Role{
	"font-size":      RoleSize,
	"size":           RoleSize,
	"fontsize":       RoleSize,
	"line-height":    RoleLineHeight,
	"lineheight":     RoleLineHeight,
	"leading":        RoleLineHeight,
	"letter-spacing": RoleLetterSpacing,
	"letterspacing":  RoleLetterSpacing,
	"tracking":       RoleLetterSpacing,
	"font-weight":    RoleWeight,
	"fontweight":     RoleWeight,
	"weight":         RoleWeight,
	"font-family":    RoleFamily,
	"fontfamily":     RoleFamily,
	"family":         RoleFamily,
}

// roleOf returns the typographic role named by a path segment.
func roleOf(segment string) Role {
	return roleWords[Slug(segment)]
}

// naming is the emitted identity of a leaf.
type naming struct {
	name      string
	namespace string
	base      string
	role      Role
}

// nameFor derives the emitted name of a leaf at path in collection spec.
func nameFor(spec schema.CollectionSpec, path []string) naming {
	if spec.Typography && len(path) > 1 {
		if role := roleOf(path[len(path)-1]); role != RoleNone {
			base := stripCategories(slugPath(path[:len(path)-1]), spec.Categories)
			if base != "" {
				return typographyNaming(spec.Namespace, base, role)
			}
		}
	}

	slug := stripCategories(slugPath(path), spec.Categories)
	namespace, slug := rehome(spec.Namespace, slug)
	if namespace != spec.Namespace {
		slug = stripCategories(slug, []string{namespace})
	}
	n := naming{name: join(namespace, slug), namespace: namespace}
	if spec.Typography {
		n.role = RoleSize
		n.base = n.name
	}
	return n
}

func typographyNaming(namespace, base string, role Role) naming {
	baseName := join(namespace, base)
	switch role {
	case RoleFamily:
		return naming{name: join("font", base), namespace: namespace, base: baseName, role: role}
	case RoleSize:
		return naming{name: baseName, namespace: namespace, base: baseName, role: role}
	default:
		return naming{name: baseName + role.Suffix(), namespace: namespace, base: baseName, role: role}
	}
}

// excluded reports whether any word of the path names an excluded palette.
func excluded(path []string, palettes []string) bool {
	if len(palettes) == 0 {
		return false
	}
	for _, segment := range path {
		for word := range strings.SplitSeq(Slug(segment), "-") {
			if slices.Contains(palettes, word) {
				return true
			}
		}
	}
	return false
}
