// SPDX-License-Identifier: MIT
// Package core defines the central Digraph and Edge types: a mutable,
// string-labeled, weighted directed graph with positive integer weights.
//
// This file declares Edge, Digraph, DigraphOption, sentinel errors,
// and the NewDigraph constructor.
//
// Errors:
//
//	ErrNegativeWeight - SetEdge received weight < 0 (contract violation, panics).
//	ErrRepInvariant   - Validate found a broken representation invariant.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core digraph operations.
var (
	// ErrNegativeWeight indicates SetEdge was called with a weight below zero.
	// It is never returned: SetEdge panics with an error wrapping it.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrRepInvariant indicates the internal representation is inconsistent.
	ErrRepInvariant = errors.New("core: representation invariant violated")
)

// Edge is a value snapshot of one directed, weighted connection.
//
// Edges are never handed out by reference; mutating an Edge has no effect
// on the Digraph it was read from.
type Edge struct {
	// From is the source vertex label.
	From string

	// To is the target vertex label.
	To string

	// Weight is strictly positive for every edge a Digraph reports.
	Weight int64
}

// DigraphOption configures a Digraph before first use.
type DigraphOption func(g *Digraph)

// WithCapacity pre-sizes the vertex tables for about n vertices.
// Panics on negative n.
func WithCapacity(n int) DigraphOption {
	if n < 0 {
		panic(fmt.Sprintf("core: WithCapacity(%d)", n))
	}
	return func(g *Digraph) { g.capacity = n }
}

// Digraph is a mutable weighted directed graph keyed by string labels.
//
// Representation:
//   - out[source][target] = weight, one bucket per vertex (possibly empty).
//   - in[target][source] = weight, the reverse index mirroring out.
//   - The vertex set is the key set of out (and, equally, of in).
//
// A weight of zero means "no edge" and is never stored. At most one edge
// exists per ordered (source, target) pair; self-loops are allowed.
//
// Digraph performs no internal locking. Wrap it with NewSynchronized when
// several goroutines share one instance.
type Digraph struct {
	capacity int

	out map[string]map[string]int64 // source → target → weight
	in  map[string]map[string]int64 // target → source → weight

	edgeCount int
}

// NewDigraph creates an empty Digraph.
// Complexity: O(1) plus any capacity hint.
func NewDigraph(opts ...DigraphOption) *Digraph {
	g := &Digraph{}
	for _, opt := range opts {
		opt(g)
	}
	g.out = make(map[string]map[string]int64, g.capacity)
	g.in = make(map[string]map[string]int64, g.capacity)

	return g
}
