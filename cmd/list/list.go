/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for stratum.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/stratum/config"
	"bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/internal/logger"
	"bennypowers.dev/stratum/parser"
	"bennypowers.dev/stratum/resolver"
	"bennypowers.dev/stratum/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List tokens from a design-tool export",
	Long: `List every token of a design-tool JSON export with its emitted name,
tier and authored value, optionally filtered and resolved to literals.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("input", "i", "", "JSON token export (default from config)")
	Cmd.Flags().String("tier", "", "Filter by tier: primitive, alias, semantic")
	Cmd.Flags().String("namespace", "", "Filter by namespace, e.g. color, spacing, alias-font")
	Cmd.Flags().Bool("dark", false, "Show dark-mode values")
	Cmd.Flags().Bool("resolved", false, "Show resolved literal values")
	Cmd.Flags().String("format", "table", "Output format: table, json, css")
}

// entry is one listed token.
type entry struct {
	Name      string `json:"name"`
	Tier      string `json:"tier"`
	Namespace string `json:"namespace"`
	Type      string `json:"type,omitempty"`
	Value     string `json:"value"`

	DependsOn  []string `json:"dependsOn,omitempty"`
	Dependents []string `json:"dependents,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	tier, _ := cmd.Flags().GetString("tier")
	namespace, _ := cmd.Flags().GetString("namespace")
	dark, _ := cmd.Flags().GetBool("dark")
	resolved, _ := cmd.Flags().GetBool("resolved")
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")
	if input == "" {
		input = cfg.Build.Input
	}

	graph, err := parser.NewExportParser(logger.L()).ParseFile(filesystem, input, parser.Options{
		ExcludePalettes: cfg.Build.ExcludePalettes,
	})
	if err != nil {
		return err
	}

	nodes := filterNodes(graph.Nodes, tier, namespace)
	entries, err := listEntries(graph, nodes, dark, resolved)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return outputJSON(out, entries)
	case "css":
		return outputCSS(out, entries)
	default:
		return outputTable(out, entries)
	}
}

// filterNodes drops excluded nodes and those outside the tier or namespace.
func filterNodes(nodes []*parser.Node, tier, namespace string) []*parser.Node {
	filtered := make([]*parser.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Excluded {
			continue
		}
		if tier != "" && !strings.EqualFold(n.Tier.String(), tier) {
			continue
		}
		if namespace != "" && n.Namespace != namespace {
			continue
		}
		filtered = append(filtered, n)
	}
	return filtered
}

func listEntries(g *parser.Graph, nodes []*parser.Node, dark, resolved bool) ([]entry, error) {
	r := resolver.New(g)
	deps := resolver.BuildDependencyGraph(g)
	entries := make([]entry, 0, len(nodes))
	for _, n := range nodes {
		value := displayValue(n.ValueFor(dark))
		if resolved {
			literal, err := r.Literal(n, dark)
			if err != nil {
				return nil, err
			}
			value = literal
		}
		entries = append(entries, entry{
			Name:      n.Name,
			Tier:      n.Tier.String(),
			Namespace: n.Namespace,
			Type:      n.Type,
			Value:     value,

			DependsOn:  deps.Dependencies(n.Name),
			Dependents: deps.Dependents(n.Name),
		})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries, nil
}

func displayValue(v parser.Value) string {
	if v.IsRef() {
		return "{" + v.Ref.String() + "}"
	}
	return v.Literal
}

func outputTable(w io.Writer, entries []entry) error {
	for _, e := range entries {
		typeStr := e.Type
		if typeStr == "" {
			typeStr = "-"
		}
		if _, err := fmt.Fprintf(w, "%-40s %-10s %-12s %s\n", e.Name, e.Tier, typeStr, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, entries []entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func outputCSS(w io.Writer, entries []entry) error {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, e := range entries {
		if strings.HasPrefix(e.Value, "{") {
			continue
		}
		sb.WriteString("  " + (&token.Token{Name: e.Name, Value: e.Value}).CSSDeclaration() + "\n")
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
