// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: SetEdge/Weight/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) ascending.
// AI-HINT (file):
//   - SetEdge(s,t,0) deletes the edge but never the endpoints.
//   - SetEdge with a negative weight panics (contract violation, not an error value).

package core

import (
	"fmt"
	"sort"
)

// SetEdge sets the weight of the directed edge source→target and returns the
// previous weight (0 if the edge did not exist).
//
// Steps:
//  1. weight < 0 ⇒ panic wrapping ErrNegativeWeight.
//  2. weight == 0 ⇒ delete the edge from both indices if present; vertices stay.
//  3. weight > 0 ⇒ add missing endpoints, then create or overwrite the edge.
//
// Complexity: O(1) amortized.
func (g *Digraph) SetEdge(source, target string, weight int64) int64 {
	if weight < 0 {
		panic(fmt.Errorf("%w: SetEdge(%q, %q, %d)", ErrNegativeWeight, source, target, weight))
	}

	prev := g.out[source][target] // nil inner map reads as 0

	if weight == 0 {
		if prev != 0 {
			delete(g.out[source], target)
			delete(g.in[target], source)
			g.edgeCount--
		}
		checkRep(g)

		return prev
	}

	ensureVertex(g, source)
	ensureVertex(g, target)
	if prev == 0 {
		g.edgeCount++
	}
	g.out[source][target] = weight
	g.in[target][source] = weight
	checkRep(g)

	return prev
}

// Weight returns the weight of source→target, or 0 when there is no such edge.
// Complexity: O(1).
func (g *Digraph) Weight(source, target string) int64 {
	return g.out[source][target]
}

// HasEdge reports whether source→target exists.
// Complexity: O(1).
func (g *Digraph) HasEdge(source, target string) bool {
	return g.out[source][target] > 0
}

// Edges returns a snapshot of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Digraph) Edges() []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for from, targets := range g.out {
		for to, w := range targets {
			edges = append(edges, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// EdgeCount returns the number of edges.
func (g *Digraph) EdgeCount() int { return g.edgeCount }
