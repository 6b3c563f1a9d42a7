// SPDX-License-Identifier: MIT
// Package core provides Digraph, a mutable in-memory weighted directed graph
// with unique string labels and strictly positive int64 edge weights.
//
// The Digraph G = (V,E) follows a small contract:
//
//   - Vertices form a set; AddVertex reports whether a label was new.
//   - At most one edge per ordered (source, target) pair; self-loops allowed.
//   - Weight 0 means "no edge": SetEdge(s,t,0) deletes, never stores, a zero.
//   - Negative weights are a programming error: SetEdge panics (ErrNegativeWeight).
//   - RemoveVertex cascades to every incident edge in both directions.
//   - Queries return fresh copies; no internal map is ever shared.
//   - Missing vertices are not errors for queries: empty maps / false.
//
// Representation:
//
//	out[source][target] = weight   // forward adjacency table
//	in[target][source]  = weight   // reverse index, O(indeg) InNeighbors
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(label string) bool          // O(1)
//	HasVertex(label string) bool          // O(1)
//	RemoveVertex(label string) bool       // O(indeg+outdeg)
//
//	// Edge lifecycle
//	SetEdge(s, t string, w int64) int64   // O(1), returns previous weight
//	Weight(s, t string) int64             // O(1)
//	HasEdge(s, t string) bool             // O(1)
//
//	// Query
//	Vertices() []string                   // O(V·log V), sorted
//	VertexSet() map[string]struct{}       // O(V)
//	OutNeighbors(s string) map[string]int64
//	InNeighbors(t string) map[string]int64
//	Edges() []Edge                        // O(E·log E), sorted by (From, To)
//
//	// Diagnostics
//	Validate() error                      // rep invariants, ErrRepInvariant
//	Render() string                       // "vertices:" then "edges:" listing
//	WriteDOT(w io.Writer, DOTOptions) error
//
// Digraph does no locking. Share one across goroutines through
// NewSynchronized, which guards the whole graph with a single RWMutex.
//
// Building with -tags digraphdebug runs Validate after every mutation and
// panics on the first violation; release builds skip the check entirely.
package core
