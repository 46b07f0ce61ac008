/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides token reference resolution.
package resolver

import (
	"fmt"
	"slices"

	"bennypowers.dev/stratum/parser"
)

// DependencyGraph represents a directed graph of token dependencies.
// Edges from both the default and the dark mode are included.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        []string
}

// BuildDependencyGraph builds a dependency graph from a token graph.
// References that cannot be looked up contribute no edge.
func BuildDependencyGraph(g *parser.Graph) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
	}

	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if !seen[n.Name] {
			seen[n.Name] = true
			graph.nodes = append(graph.nodes, n.Name)
		}
	}

	for _, n := range g.Nodes {
		for _, v := range modeValues(n) {
			if !v.IsRef() {
				continue
			}
			target, ok := g.Lookup(n, *v.Ref)
			if !ok || slices.Contains(graph.dependencies[n.Name], target.Name) {
				continue
			}
			graph.dependencies[n.Name] = append(graph.dependencies[n.Name], target.Name)
			graph.dependents[target.Name] = append(graph.dependents[target.Name], n.Name)
		}
	}

	return graph
}

func modeValues(n *parser.Node) []parser.Value {
	if n.HasDark {
		return []parser.Value{n.Default, n.Dark}
	}
	return []parser.Value{n.Default}
}

// Dependencies returns the list of tokens that the given token depends on.
func (g *DependencyGraph) Dependencies(tokenName string) []string {
	if deps, ok := g.dependencies[tokenName]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the list of tokens that depend on the given token.
func (g *DependencyGraph) Dependents(tokenName string) []string {
	if deps, ok := g.dependents[tokenName]; ok {
		return deps
	}
	return []string{}
}

// FindCycle returns the first cycle path in token order, or nil if no cycle.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	path := []string{}

	for _, node := range g.nodes {
		if cycle := g.findCycleDFS(node, visited, recStack, path); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(slices.Clone(path[cycleStart:]), node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}
