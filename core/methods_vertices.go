// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns labels sorted lexicographically ascending.
//
// AI-Hints (file):
//   - AddVertex reports whether the label was new; it never touches edges.
//   - RemoveVertex cascades to every incident edge, both directions.
package core

import "sort"

// AddVertex inserts label if it is not already present.
//
// Implementation:
//   - Stage 1: Check membership in the forward table.
//   - Stage 2: If missing, allocate empty forward and reverse buckets.
//
// Behavior highlights:
//   - Idempotent: adding an existing label is a no-op and returns false.
//   - Any string is a valid label, including "".
//
// Returns:
//   - bool: true iff label was newly inserted.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Digraph) AddVertex(label string) bool {
	if _, ok := g.out[label]; ok {
		return false
	}
	ensureVertex(g, label)
	checkRep(g)

	return true
}

// HasVertex reports whether label is a vertex of g.
// Complexity: O(1).
func (g *Digraph) HasVertex(label string) bool {
	_, ok := g.out[label]

	return ok
}

// RemoveVertex deletes label and every edge that starts or ends at it.
//
// Implementation:
//   - Stage 1: Verify presence; absent labels return false.
//   - Stage 2: For each out-neighbor t, drop in[t][label].
//   - Stage 3: For each in-neighbor s, drop out[s][label].
//   - Stage 4: Delete both buckets of label.
//
// Behavior highlights:
//   - A self-loop on label is counted and removed exactly once.
//   - Leaves no dangling reverse-index entries.
//
// Returns:
//   - bool: true iff a vertex was removed.
//
// Complexity:
//   - Time O(indeg + outdeg), Space O(1).
func (g *Digraph) RemoveVertex(label string) bool {
	outs, ok := g.out[label]
	if !ok {
		return false
	}

	var other string
	for other = range outs {
		delete(g.in[other], label)
		g.edgeCount--
	}
	for other = range g.in[label] {
		if other == label {
			// self-loop already counted via outs
			continue
		}
		delete(g.out[other], label)
		g.edgeCount--
	}

	delete(g.out, label)
	delete(g.in, label)
	checkRep(g)

	return true
}

// Vertices returns all vertex labels in lexicographic ascending order.
// The slice is freshly allocated.
//
// Complexity: Time O(V log V), Space O(V).
func (g *Digraph) Vertices() []string {
	labels := make([]string, 0, len(g.out))
	for label := range g.out {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}

// VertexSet returns a fresh set of all vertex labels.
// Complexity: Time O(V), Space O(V).
func (g *Digraph) VertexSet() map[string]struct{} {
	set := make(map[string]struct{}, len(g.out))
	for label := range g.out {
		set[label] = struct{}{}
	}

	return set
}

// VertexCount returns the number of vertices.
func (g *Digraph) VertexCount() int { return len(g.out) }

// ensureVertex allocates the forward and reverse buckets of label if missing.
func ensureVertex(g *Digraph, label string) {
	if _, ok := g.out[label]; !ok {
		g.out[label] = make(map[string]int64)
	}
	if _, ok := g.in[label]; !ok {
		g.in[label] = make(map[string]int64)
	}
}
