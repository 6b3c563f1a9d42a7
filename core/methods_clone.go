// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing digraph instances.
// AI-HINT (file):
//   - Clone() is a deep copy; the clone and the source never share buckets.
//   - Clear() keeps the capacity hint but drops every vertex and edge.

package core

// Clone returns a deep copy of g: vertices, edges, and both indices.
//
// Complexity: O(V + E)
func (g *Digraph) Clone() *Digraph {
	clone := NewDigraph(WithCapacity(len(g.out)))
	for label, targets := range g.out {
		clone.out[label] = copyWeights(targets)
	}
	for label, sources := range g.in {
		clone.in[label] = copyWeights(sources)
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear resets g to an empty graph.
//
// Complexity: O(1) for map reallocation; no iteration over existing entries.
func (g *Digraph) Clear() {
	g.out = make(map[string]map[string]int64, g.capacity)
	g.in = make(map[string]map[string]int64, g.capacity)
	g.edgeCount = 0
}
