/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/stratum/parser"
	"bennypowers.dev/stratum/schema"
	"bennypowers.dev/stratum/testutil"
)

func parseFixture(t *testing.T, dir string) *parser.Graph {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, dir, "/test")
	p := parser.NewExportParser(nil)
	graph, err := p.ParseFile(mfs, "/test/tokens.json", parser.Options{
		ExcludePalettes: parser.DefaultExcludePalettes,
	})
	require.NoError(t, err)
	return graph
}

func byName(g *parser.Graph) map[string]*parser.Node {
	nodes := make(map[string]*parser.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, exists := nodes[n.Name]; !exists {
			nodes[n.Name] = n
		}
	}
	return nodes
}

func TestParseFile_Current(t *testing.T) {
	graph := parseFixture(t, "fixtures/export/current")
	assert.Equal(t, schema.Current, graph.Shape)

	nodes := byName(graph)
	literals := map[string]string{
		"--primitive-color-blue-500":            "oklch(62.3% 0.214 259.815)",
		"--primitive-color-black":               "#000000",
		"--primitive-color-red-500":             "#ff0000",
		"--primitive-dimension-0":               "0",
		"--primitive-dimension-16":              "16px",
		"--primitive-font-family-sans":          "Inter",
		"--primitive-font-line-height-150":      "1.5",
		"--primitive-font-weight-bold":          "700",
		"--primitive-font-letter-spacing-tight": "-0.5px",
	}
	for name, want := range literals {
		n, ok := nodes[name]
		require.True(t, ok, "missing %s", name)
		assert.False(t, n.Default.IsRef(), name)
		assert.Equal(t, want, n.Default.Literal, name)
	}

	gray := nodes["--primitive-color-gray-100"]
	require.NotNil(t, gray)
	assert.True(t, gray.Excluded)

	primary := nodes["--alias-color-brand-primary"]
	require.NotNil(t, primary)
	require.True(t, primary.Default.IsRef())
	assert.Equal(t, "Colors.Blue.500", primary.Default.Ref.Path)

	target, ok := graph.Lookup(primary, *primary.Default.Ref)
	require.True(t, ok)
	assert.Equal(t, "--primitive-color-blue-500", target.Name)

	bg := nodes["--color-background-default"]
	require.NotNil(t, bg)
	assert.True(t, bg.HasDark)
	assert.Equal(t, "Colors.Neutral.Ink", bg.Dark.Ref.Path)
	assert.False(t, nodes["--color-danger"].HasDark)
}

func TestParseFile_Typography(t *testing.T) {
	nodes := byName(parseFixture(t, "fixtures/export/current"))

	tests := []struct {
		name string
		role parser.Role
		base string
	}{
		{"--text-body", parser.RoleSize, "--text-body"},
		{"--text-body--line-height", parser.RoleLineHeight, "--text-body"},
		{"--text-body--font-weight", parser.RoleWeight, "--text-body"},
		{"--text-heading--letter-spacing", parser.RoleLetterSpacing, "--text-heading"},
		{"--font-body", parser.RoleFamily, "--text-body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := nodes[tt.name]
			require.True(t, ok)
			assert.Equal(t, tt.role, n.Role)
			assert.Equal(t, tt.base, n.Base)
		})
	}
}

func TestParseFile_Namespaces(t *testing.T) {
	nodes := byName(parseFixture(t, "fixtures/export/current"))

	assert.Contains(t, nodes, "--width-narrow")
	assert.Contains(t, nodes, "--width-page")
	assert.Contains(t, nodes, "--container-prose")
	assert.Contains(t, nodes, "--spacing-small")
	assert.Contains(t, nodes, "--radius-small")
	assert.NotContains(t, nodes, "--spacing-width-narrow")
	assert.Equal(t, schema.NamespaceWidth, nodes["--width-narrow"].Namespace)
}

func TestParseFile_LegacyMatchesCurrent(t *testing.T) {
	current := parseFixture(t, "fixtures/export/current")
	legacy := parseFixture(t, "fixtures/export/legacy")
	assert.Equal(t, schema.Legacy, legacy.Shape)

	names := func(g *parser.Graph) []string {
		var out []string
		for _, n := range g.Nodes {
			out = append(out, n.Name)
		}
		slices.Sort(out)
		return out
	}
	assert.Equal(t, names(current), names(legacy))
}

func TestParse_Errors(t *testing.T) {
	p := parser.NewExportParser(nil)

	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", `{{`, schema.ErrInvalidExport},
		{"object root", `{"1.0_Primitive_Colours": {}}`, schema.ErrInvalidExport},
		{"collection not object", `[{"1.0_Primitive_Colours": 3}]`, schema.ErrInvalidExport},
		{"no known collection", `[{"Brand": {"modes": {}}}]`, schema.ErrNoCollections},
		{"missing modes", `[{"1.0_Primitive_Colours": {}}]`, schema.ErrInvalidExport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse([]byte(tt.data), parser.Options{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParse_CommentsAndCollectionPrefix(t *testing.T) {
	data := `[
  // primitives
  {"1.0_Primitive_Colours": {"modes": {"Core": {"Colors": {
    "Blue": {"$type": "color", "$value": "#0000ff"},
  }}}}},
  {"2.0_Alias_Colours": {"modes": {"Style": {"Colors": {
    "Link": {"$value": "{1.0_Primitive_Colours.Colors.Blue}"},
    "Visited": {"$value": "{Blue}"}
  }}}}}
]`
	graph, err := parser.NewExportParser(nil).Parse([]byte(data), parser.Options{})
	require.NoError(t, err)

	nodes := byName(graph)
	link := nodes["--alias-color-link"]
	require.NotNil(t, link)
	assert.Equal(t, schema.PrimitiveColours, link.Default.Ref.Collection)

	for _, name := range []string{"--alias-color-link", "--alias-color-visited"} {
		n := nodes[name]
		target, ok := graph.Lookup(n, *n.Default.Ref)
		require.True(t, ok, name)
		assert.Equal(t, "--primitive-color-blue", target.Name)
	}
}

func TestEncodeEntries_RoundTrip(t *testing.T) {
	entries := []schema.Entry{
		{Name: schema.PrimitiveColours, Body: map[string]any{"modes": map[string]any{"Core": map[string]any{}}}},
		{Name: schema.AliasColours, Body: map[string]any{"modes": map[string]any{"Style": map[string]any{}}}},
	}
	data, err := parser.EncodeEntries(entries)
	require.NoError(t, err)

	decoded, err := parser.DecodeEntries(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, schema.PrimitiveColours, decoded[0].Name)
	assert.Equal(t, schema.AliasColours, decoded[1].Name)
}
