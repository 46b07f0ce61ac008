/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package emit renders a token graph into layered CSS custom-property files.
package emit

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"bennypowers.dev/stratum/parser"
	"bennypowers.dev/stratum/resolver"
	"bennypowers.dev/stratum/schema"
	"bennypowers.dev/stratum/token"
)

// Emitted file names, in emission order.
const (
	PrimitivesFile     = "primitives.css"
	AliasesFile        = "aliases.css"
	SemanticFile       = "semantic.css"
	SemanticInlineFile = "semantic-inline.css"
)

// Files lists every emitted file in emission order.
var Files = []string{PrimitivesFile, AliasesFile, SemanticFile, SemanticInlineFile}

// Selectors used in emitted files.
const (
	RootSelector = ":root"
	DarkSelector = `[data-theme="dark"]`
)

// DefaultTypographyValue fills typographic companions missing from the export.
const DefaultTypographyValue = "normal"

// Namespace order within each file.
var (
	primitiveOrder = []string{
		schema.NamespacePrimitiveColor,
		schema.NamespacePrimitiveDimension,
		schema.NamespacePrimitiveFont,
	}
	aliasOrder = []string{
		schema.NamespaceAliasColor,
		schema.NamespaceAliasFont,
	}
	semanticOrder = []string{
		schema.NamespaceColor,
		schema.NamespaceText,
		schema.NamespaceSpacing,
		schema.NamespaceWidth,
		schema.NamespaceContainer,
		schema.NamespaceRadius,
		schema.NamespaceComponent,
		schema.NamespaceEffect,
		schema.NamespaceUtility,
	}
)

// Options configures rendering.
type Options struct {
	// ColorFormat converts literal colors; the zero value keeps them as authored.
	ColorFormat ColorFormat
}

// Output holds rendered file contents keyed by file name.
type Output struct {
	files  map[string][]byte
	counts map[string]int
}

// File returns the rendered content of one file.
func (o *Output) File(name string) []byte {
	return o.files[name]
}

// Count returns the number of declarations rendered into one file.
func (o *Output) Count(name string) int {
	return o.counts[name]
}

// Strings returns every file's content as text, keyed by file name.
func (o *Output) Strings() map[string]string {
	out := make(map[string]string, len(o.files))
	for name, data := range o.files {
		out[name] = string(data)
	}
	return out
}

// decl is one rendered custom property.
type decl struct {
	name      string
	namespace string
	value     string
}

// Renderer renders token graphs.
type Renderer struct {
	log *zap.Logger
}

// NewRenderer creates a renderer.
func NewRenderer(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{log: log.Named("emit")}
}

// Render renders g into the four layered files. Every resolution failure
// is collected; when any occurs no output is returned.
func (r *Renderer) Render(g *parser.Graph, opts Options) (*Output, error) {
	if cycle := resolver.BuildDependencyGraph(g).FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %s", schema.ErrCircularReference, strings.Join(cycle, " -> "))
	}

	res := resolver.New(g)
	var errs error
	seen := make(map[string]bool, len(g.Nodes))

	var primitives, aliases, light, dark, inlineLight, inlineDark []decl
	for _, n := range g.Nodes {
		if n.Excluded {
			continue
		}
		if seen[n.Name] {
			r.log.Warn("duplicate token name, keeping first", zap.String("name", n.Name), zap.Strings("path", n.Path))
			continue
		}
		seen[n.Name] = true

		value, err := res.Disciplined(n, false)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		d := decl{name: n.Name, namespace: n.Namespace, value: value}

		switch n.Tier {
		case token.TierPrimitive:
			d.value = r.formatColor(n, d.value, opts.ColorFormat)
			primitives = append(primitives, d)
			continue
		case token.TierAlias:
			d.value = r.formatColor(n, d.value, opts.ColorFormat)
			aliases = append(aliases, d)
			continue
		}

		light = append(light, d)
		if n.HasDark {
			darkValue, err := res.Disciplined(n, true)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			dark = append(dark, decl{name: n.Name, namespace: n.Namespace, value: darkValue})
		}

		if n.Collection.Themed || n.HasDark {
			lightLiteral, errL := res.Literal(n, false)
			darkLiteral, errD := res.Literal(n, true)
			if err := multierr.Combine(errL, errD); err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			inlineLight = append(inlineLight, decl{name: n.Name, namespace: n.Namespace, value: r.formatColor(n, lightLiteral, opts.ColorFormat)})
			inlineDark = append(inlineDark, decl{name: n.Name, namespace: n.Namespace, value: r.formatColor(n, darkLiteral, opts.ColorFormat)})
		}
	}
	if errs != nil {
		return nil, errs
	}

	light = completeTypography(g, light)

	out := &Output{files: make(map[string][]byte, len(Files)), counts: make(map[string]int, len(Files))}
	out.put(PrimitivesFile, len(primitives), block(RootSelector, order(primitives, primitiveOrder)))
	out.put(AliasesFile, len(aliases), block(RootSelector, order(aliases, aliasOrder)))

	semantic := block(RootSelector, order(light, semanticOrder))
	if len(dark) > 0 {
		semantic += "\n" + block(DarkSelector, order(dark, semanticOrder))
	}
	out.put(SemanticFile, len(light)+len(dark), semantic)
	out.put(SemanticInlineFile, len(inlineLight)+len(inlineDark),
		block(RootSelector, order(inlineLight, semanticOrder))+"\n"+block(DarkSelector, order(inlineDark, semanticOrder)))

	for _, name := range Files {
		r.log.Debug("rendered", zap.String("file", name), zap.Int("declarations", out.counts[name]))
	}
	return out, nil
}

func (o *Output) put(name string, count int, content string) {
	o.files[name] = []byte(content)
	o.counts[name] = count
}

// completeTypography adds a "normal" companion for every base text token
// missing one.
func completeTypography(g *parser.Graph, light []decl) []decl {
	names := make(map[string]bool, len(light))
	for _, d := range light {
		names[d.name] = true
	}
	for _, n := range g.Nodes {
		if n.Excluded || !n.Collection.Typography || n.Role != parser.RoleSize || n.Name != n.Base {
			continue
		}
		for _, role := range parser.Companions {
			name := n.Base + role.Suffix()
			if names[name] {
				continue
			}
			names[name] = true
			light = append(light, decl{name: name, namespace: n.Namespace, value: DefaultTypographyValue})
		}
	}
	return light
}

// order groups declarations by namespace in the given order, naturally
// sorted within each namespace. Unknown namespaces follow, by name.
func order(decls []decl, namespaces []string) []decl {
	rank := func(ns string) int {
		if i := slices.Index(namespaces, ns); i >= 0 {
			return i
		}
		return len(namespaces)
	}
	sorted := slices.Clone(decls)
	slices.SortStableFunc(sorted, func(a, b decl) int {
		if ra, rb := rank(a.namespace), rank(b.namespace); ra != rb {
			return ra - rb
		}
		if a.namespace != b.namespace {
			return strings.Compare(a.namespace, b.namespace)
		}
		return naturalCompare(a.name, b.name)
	})
	return sorted
}

func block(selector string, decls []decl) string {
	var sb strings.Builder
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, d := range decls {
		sb.WriteString("  ")
		sb.WriteString(d.name)
		sb.WriteString(": ")
		sb.WriteString(d.value)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
