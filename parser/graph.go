/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"bennypowers.dev/stratum/schema"
	"bennypowers.dev/stratum/token"
)

// Graph is the token graph of one export.
type Graph struct {
	// Shape is the collection shape detected in the export.
	Shape schema.Shape

	// Nodes holds every leaf in collection order.
	Nodes []*Node

	index map[string]*pathIndex
}

type pathIndex struct {
	exact map[string]*Node
	fold  map[string]*Node
}

func newGraph(shape schema.Shape) *Graph {
	return &Graph{Shape: shape, index: make(map[string]*pathIndex)}
}

func (g *Graph) add(n *Node, aliases ...string) {
	g.Nodes = append(g.Nodes, n)
	idx, ok := g.index[n.Collection.Key]
	if !ok {
		idx = &pathIndex{exact: make(map[string]*Node), fold: make(map[string]*Node)}
		g.index[n.Collection.Key] = idx
	}
	for _, key := range append([]string{strings.Join(n.Path, ".")}, aliases...) {
		if key == "" {
			continue
		}
		if _, exists := idx.exact[key]; !exists {
			idx.exact[key] = n
		}
		lower := strings.ToLower(key)
		if _, exists := idx.fold[lower]; !exists {
			idx.fold[lower] = n
		}
	}
}

// Lookup finds the target of ref as seen from node from. Without an explicit
// collection, lower tiers are searched nearest first, then the node's own
// collection, then its tier siblings, then higher tiers.
func (g *Graph) Lookup(from *Node, ref Ref) (*Node, bool) {
	for _, key := range g.searchOrder(from, ref) {
		idx, ok := g.index[key]
		if !ok {
			continue
		}
		if n, ok := idx.exact[ref.Path]; ok {
			return n, true
		}
		if n, ok := idx.fold[strings.ToLower(ref.Path)]; ok {
			return n, true
		}
	}
	return nil, false
}

func (g *Graph) searchOrder(from *Node, ref Ref) []string {
	if ref.Collection != "" {
		return []string{ref.Collection}
	}
	if ref.Tier != token.TierNone {
		return keysOfTier(ref.Tier)
	}

	var order []string
	for tier := from.Tier - 1; tier > token.TierNone; tier-- {
		order = append(order, keysOfTier(tier)...)
	}
	order = append(order, from.Collection.Key)
	for _, key := range keysOfTier(from.Tier) {
		if key != from.Collection.Key {
			order = append(order, key)
		}
	}
	for tier := from.Tier + 1; tier <= token.TierSemantic; tier++ {
		order = append(order, keysOfTier(tier)...)
	}
	return order
}

func keysOfTier(tier token.Tier) []string {
	var keys []string
	for _, spec := range schema.Collections {
		if spec.Tier == tier {
			keys = append(keys, spec.Key)
		}
	}
	return keys
}
