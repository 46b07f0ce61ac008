/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"bennypowers.dev/stratum/parser/common"
	"bennypowers.dev/stratum/schema"
	"bennypowers.dev/stratum/token"
)

// leaf is a token found in one mode tree.
type leaf struct {
	path  []string
	typ   string
	value Value
}

type walker struct {
	log      *zap.Logger
	palettes []string

	// prefixes maps collection names that may lead a reference path
	// to the lookup restriction they imply.
	prefixes map[string]Ref
	// order lists the prefixes longest first.
	order []string
}

func newWalker(log *zap.Logger, entries []schema.Entry, opts Options) *walker {
	w := &walker{log: log, prefixes: make(map[string]Ref)}
	for _, p := range opts.ExcludePalettes {
		w.palettes = append(w.palettes, Slug(p))
	}
	for _, spec := range schema.Collections {
		w.prefixes[spec.Key] = Ref{Collection: spec.Key}
	}
	for legacy, key := range schema.LegacyRenames {
		w.prefixes[legacy] = Ref{Collection: key}
	}
	w.prefixes[schema.LegacyPrimitives] = Ref{Tier: token.TierPrimitive}
	w.prefixes[schema.LegacyAlias] = Ref{Tier: token.TierAlias}
	for _, e := range entries {
		if spec, ok := schema.Lookup(e.Name); ok && !schema.IsLegacyKey(e.Name) {
			w.prefixes[e.Name] = Ref{Collection: spec.Key}
		}
	}
	w.order = prefixOrder(w.prefixes)
	return w
}

// prefixOrder sorts prefix names longest first, then lexically, so a
// reference matching two names always takes the more specific one.
func prefixOrder(prefixes map[string]Ref) []string {
	names := slices.Collect(maps.Keys(prefixes))
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), strings.Compare(a, b))
	})
	return names
}

// collection adds every leaf of one normalized collection to the graph.
func (w *walker) collection(g *Graph, c schema.Collection) error {
	modes := schema.Modes(c.Body)
	if modes == nil {
		return fmt.Errorf("%w: collection %q has no modes", schema.ErrInvalidExport, c.Spec.Key)
	}
	defaultMode, ok := schema.DefaultMode(modes)
	if !ok {
		return nil
	}
	darkMode, hasDark := schema.DarkMode(modes)
	hasDark = hasDark && darkMode != defaultMode

	for _, name := range schema.ModeNames(modes) {
		if name != defaultMode && (!hasDark || name != darkMode) {
			w.log.Debug("ignoring mode", zap.String("collection", c.Spec.Key), zap.String("mode", name))
		}
	}

	var defaults []leaf
	w.collect(modes[defaultMode], nil, "", &defaults)

	darkByPath := make(map[string]leaf)
	var darkOrder []string
	if hasDark {
		var darks []leaf
		w.collect(modes[darkMode], nil, "", &darks)
		for _, l := range darks {
			key := strings.Join(l.path, ".")
			if _, exists := darkByPath[key]; !exists {
				darkByPath[key] = l
				darkOrder = append(darkOrder, key)
			}
		}
	}

	seen := make(map[string]bool, len(defaults))
	for _, l := range defaults {
		key := strings.Join(l.path, ".")
		if seen[key] {
			continue
		}
		seen[key] = true
		n := w.node(c.Spec, l)
		if d, ok := darkByPath[key]; ok {
			n.Dark, n.HasDark = d.value, true
		}
		g.add(n, w.aliasKey(c.Spec, l.path))
	}
	for _, key := range darkOrder {
		if seen[key] {
			continue
		}
		l := darkByPath[key]
		n := w.node(c.Spec, l)
		n.Dark, n.HasDark = l.value, true
		g.add(n, w.aliasKey(c.Spec, l.path))
	}
	return nil
}

func (w *walker) node(spec schema.CollectionSpec, l leaf) *Node {
	nm := nameFor(spec, l.path)
	return &Node{
		Name:       nm.name,
		Namespace:  nm.namespace,
		Base:       nm.base,
		Role:       nm.role,
		Type:       l.typ,
		Tier:       spec.Tier,
		Collection: spec,
		Path:       l.path,
		Default:    l.value,
		Excluded:   excluded(l.path, w.palettes),
	}
}

// aliasKey is the leaf path without its leading category segments, so
// references may omit the category.
func (w *walker) aliasKey(spec schema.CollectionSpec, path []string) string {
	p := path
	for len(p) > 1 && slices.Contains(spec.Categories, Slug(p[0])) {
		p = p[1:]
	}
	if len(p) == len(path) {
		return ""
	}
	return strings.Join(p, ".")
}

// collect walks a mode tree in natural key order. Group $type values are
// inherited by their descendants.
func (w *walker) collect(tree map[string]any, path []string, inheritedType string, out *[]leaf) {
	currentType := inheritedType
	if t, ok := typeOf(tree); ok {
		currentType = t
	}

	keys := make([]string, 0, len(tree))
	for k := range tree {
		if strings.HasPrefix(k, "$") {
			continue
		}
		keys = append(keys, k)
	}
	slices.SortFunc(keys, naturalCompare)

	for _, key := range keys {
		child, ok := tree[key].(map[string]any)
		if !ok {
			continue
		}
		childPath := slices.Clip(append(path, key))

		raw, isToken := tokenValue(child)
		if !isToken {
			w.collect(child, childPath, currentType, out)
			continue
		}

		typ := currentType
		if t, ok := typeOf(child); ok {
			typ = t
		}
		w.leaves(raw, typ, childPath, out)
	}
}

// leaves converts one token value into leaves. Composite typography
// values expand into one leaf per sub-property.
func (w *walker) leaves(raw any, typ string, path []string, out *[]leaf) {
	if obj, ok := raw.(map[string]any); ok && isCompositeTypography(typ, obj) {
		for _, sub := range compositeKeys {
			v, ok := obj[sub.key]
			if !ok {
				continue
			}
			w.leaves(v, sub.typ, slices.Clip(append(path, sub.segment)), out)
		}
		return
	}

	value, ok := w.value(raw, typ, path)
	if !ok {
		w.log.Debug("skipping unsupported value",
			zap.String("path", strings.Join(path, ".")),
			zap.String("type", fmt.Sprintf("%T", raw)))
		return
	}
	*out = append(*out, leaf{path: path, typ: typ, value: value})
}

func (w *walker) value(raw any, typ string, path []string) (Value, bool) {
	switch v := raw.(type) {
	case string:
		if ref, ok := token.ParseCurlyBraceRef(v); ok {
			r := w.ref(ref)
			return Value{Ref: &r}, true
		}
		return Value{Literal: strings.TrimSpace(v)}, true
	case float64:
		return Value{Literal: formatNumber(v, typ, path)}, true
	case map[string]any:
		if common.IsStructuredColor(v) {
			c, err := common.ParseStructuredColor(v)
			if err != nil {
				w.log.Warn("invalid color", zap.String("path", strings.Join(path, ".")), zap.Error(err))
				return Value{}, false
			}
			return Value{Literal: c.ToCSS()}, true
		}
		if common.IsRGBAColor(v) {
			return Value{Literal: common.RGBAToCSS(v)}, true
		}
		if css, ok := dimensionObject(v); ok {
			return Value{Literal: css}, true
		}
	}
	return Value{}, false
}

// ref splits an optional leading collection name off a reference path.
func (w *walker) ref(path string) Ref {
	path = strings.ReplaceAll(path, "/", ".")
	for _, name := range w.order {
		if rest, ok := strings.CutPrefix(path, name+"."); ok {
			restriction := w.prefixes[name]
			restriction.Path = rest
			return restriction
		}
	}
	return Ref{Path: path}
}

func tokenValue(obj map[string]any) (any, bool) {
	if v, ok := obj["$value"]; ok {
		return v, true
	}
	if v, ok := obj["value"]; ok {
		if _, typed := obj["type"]; typed {
			return v, true
		}
	}
	return nil, false
}

func typeOf(obj map[string]any) (string, bool) {
	if t, ok := obj["$type"].(string); ok {
		return t, true
	}
	if _, isToken := obj["value"]; isToken {
		if t, ok := obj["type"].(string); ok {
			return t, true
		}
	}
	return "", false
}

var compositeKeys = []struct {
	key, segment, typ string
}{
	{"fontFamily", "font-family", "fontFamily"},
	{"fontSize", "font-size", "dimension"},
	{"lineHeight", "line-height", "number"},
	{"letterSpacing", "letter-spacing", "dimension"},
	{"fontWeight", "font-weight", "fontWeight"},
}

func isCompositeTypography(typ string, obj map[string]any) bool {
	if strings.EqualFold(typ, "typography") {
		return true
	}
	_, hasSize := obj["fontSize"]
	return hasSize
}

// formatNumber renders a number as CSS. Dimensions get px; weights,
// opacities, ratios, z-indices, scales and line heights up to 4 stay unitless.
func formatNumber(v float64, typ string, path []string) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if unitless(typ, path, v) {
		return s
	}
	return s + "px"
}

func unitless(typ string, path []string, v float64) bool {
	if Slug(typ) == "scale" || (len(path) > 0 && Slug(path[len(path)-1]) == "scale") {
		return true
	}
	words := strings.Split(Slug(typ+" "+strings.Join(path, " ")), "-")
	for i, w := range words {
		next := ""
		if i+1 < len(words) {
			next = words[i+1]
		}
		switch {
		case strings.HasSuffix(w, "weight"), w == "opacity", w == "ratio", w == "aspectratio", w == "zindex":
			return true
		case w == "z" && next == "index":
			return true
		case (w == "lineheight" || w == "leading" || (w == "line" && next == "height")) && v <= 4:
			return true
		}
	}
	return false
}

var figmaUnits = map[string]string{
	"px":      "px",
	"pixels":  "px",
	"rem":     "rem",
	"em":      "em",
	"%":       "%",
	"percent": "%",
}

// dimensionObject renders {value, unit} objects.
func dimensionObject(obj map[string]any) (string, bool) {
	unit, ok := obj["unit"].(string)
	if !ok {
		return "", false
	}
	if strings.EqualFold(unit, "auto") {
		return "normal", true
	}
	v, ok := obj["value"].(float64)
	if !ok {
		return "", false
	}
	suffix, ok := figmaUnits[strings.ToLower(unit)]
	if !ok {
		return "", false
	}
	if v == 0 {
		return "0", true
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + suffix, true
}

func naturalCompare(a, b string) int {
	switch {
	case a == b:
		return 0
	case natural.Less(a, b):
		return -1
	default:
		return 1
	}
}
