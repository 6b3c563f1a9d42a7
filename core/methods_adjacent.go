// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (InNeighbors, OutNeighbors, degrees).
// Determinism:
//   - Returned maps have no defined iteration order (Go map rule); sort keys if needed.
// AI-HINT (file):
//   - Missing vertices are not errors: the result is an empty, non-nil map.
//   - Every returned map is freshly allocated; mutating it never affects the graph.

package core

// OutNeighbors maps every target of an edge leaving source to that edge's weight.
//
// Implementation:
//   - Stage 1: Look up the forward bucket of source.
//   - Stage 2: Copy it into a new map.
//
// Returns:
//   - map[string]int64: fresh copy; empty if source has no outgoing edges or is absent.
//
// Complexity:
//   - Time O(outdeg), Space O(outdeg).
func (g *Digraph) OutNeighbors(source string) map[string]int64 {
	return copyWeights(g.out[source])
}

// InNeighbors maps every source of an edge entering target to that edge's weight.
//
// Implementation:
//   - Stage 1: Look up the reverse bucket of target.
//   - Stage 2: Copy it into a new map.
//
// Returns:
//   - map[string]int64: fresh copy; empty if target has no incoming edges or is absent.
//
// Complexity:
//   - Time O(indeg), Space O(indeg).
func (g *Digraph) InNeighbors(target string) map[string]int64 {
	return copyWeights(g.in[target])
}

// OutDegree returns the number of edges leaving label (0 if absent).
func (g *Digraph) OutDegree(label string) int { return len(g.out[label]) }

// InDegree returns the number of edges entering label (0 if absent).
func (g *Digraph) InDegree(label string) int { return len(g.in[label]) }

// copyWeights returns an independent copy of src; nil src yields an empty map.
func copyWeights(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, w := range src {
		dst[k] = w
	}

	return dst
}
