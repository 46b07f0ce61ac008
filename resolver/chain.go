/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strings"

	"bennypowers.dev/stratum/parser"
	"bennypowers.dev/stratum/schema"
	"bennypowers.dev/stratum/token"
)

// Allowed returns the tier a token of tier t may reference.
// Primitives reference nothing and always resolve to literals.
func Allowed(t token.Tier) token.Tier {
	switch t {
	case token.TierAlias:
		return token.TierPrimitive
	case token.TierSemantic:
		return token.TierAlias
	default:
		return token.TierNone
	}
}

// Resolver resolves node values against one token graph.
type Resolver struct {
	graph *parser.Graph
}

// New creates a resolver for g.
func New(g *parser.Graph) *Resolver {
	return &Resolver{graph: g}
}

// Disciplined returns the CSS value of n in the given mode. A reference
// chain is followed until it reaches an emitted token of the tier n may
// reference, which is written as var(); a literal reached first is inlined.
func (r *Resolver) Disciplined(n *parser.Node, dark bool) (string, error) {
	return r.follow(n, dark, Allowed(n.Tier))
}

// Literal returns the fully resolved literal value of n in the given mode.
func (r *Resolver) Literal(n *parser.Node, dark bool) (string, error) {
	return r.follow(n, dark, token.TierNone)
}

func (r *Resolver) follow(n *parser.Node, dark bool, allowed token.Tier) (string, error) {
	seen := map[*parser.Node]bool{n: true}
	chain := []string{n.Name}
	cur := n
	for {
		v := cur.ValueFor(dark)
		if !v.IsRef() {
			return v.Literal, nil
		}

		target, ok := r.graph.Lookup(cur, *v.Ref)
		if !ok {
			return "", fmt.Errorf("%w: %s -> %s", schema.ErrUnresolvedReference, cur.Name, v.Ref)
		}
		chain = append(chain, target.Name)
		if seen[target] {
			return "", fmt.Errorf("%w: %s", schema.ErrCircularReference, strings.Join(chain, " -> "))
		}
		seen[target] = true

		if target.Tier > n.Tier {
			return "", fmt.Errorf("%w: %s (%s) -> %s (%s)",
				schema.ErrTierViolation, n.Name, n.Tier, target.Name, target.Tier)
		}
		if allowed != token.TierNone && target.Tier == allowed && !target.Excluded {
			return token.VarRef(target.Name), nil
		}
		cur = target
	}
}
