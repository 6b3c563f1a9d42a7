// SPDX-License-Identifier: MIT
// File: validate.go
// Role: Representation-invariant checking.
// Determinism:
//   - Vertices are scanned in sorted order, so the first violation reported is stable.
// AI-HINT (file):
//   - Tests call Validate() after mutations; production code never has to.
//   - Build with -tags digraphdebug to run it after every mutation (see repcheck_debug.go).

package core

import (
	"fmt"
	"sort"
)

// Validate checks the representation invariants of g:
//
//   - out and in have the same key set (the vertex set).
//   - Every stored weight is strictly positive.
//   - Every edge endpoint is a vertex.
//   - out[s][t] == in[t][s] for every edge, in both directions.
//   - The cached edge count equals the number of stored edges.
//
// At most one edge per (source, target) pair holds by construction: the
// forward table is keyed by that pair.
//
// Returns nil, or an error wrapping ErrRepInvariant that names the first violation.
//
// Complexity: O(V log V + E).
func (g *Digraph) Validate() error {
	if len(g.out) != len(g.in) {
		return fmt.Errorf("%w: %d forward buckets, %d reverse buckets", ErrRepInvariant, len(g.out), len(g.in))
	}

	labels := make([]string, 0, len(g.out))
	for label := range g.out {
		if _, ok := g.in[label]; !ok {
			return fmt.Errorf("%w: vertex %q missing from reverse index", ErrRepInvariant, label)
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)

	count := 0
	for _, s := range labels {
		for t, w := range g.out[s] {
			if w <= 0 {
				return fmt.Errorf("%w: edge %q -> %q has weight %d", ErrRepInvariant, s, t, w)
			}
			if _, ok := g.out[t]; !ok {
				return fmt.Errorf("%w: edge %q -> %q targets a missing vertex", ErrRepInvariant, s, t)
			}
			if g.in[t][s] != w {
				return fmt.Errorf("%w: edge %q -> %q weight %d, reverse index has %d", ErrRepInvariant, s, t, w, g.in[t][s])
			}
			count++
		}
	}

	for _, t := range labels {
		for s, w := range g.in[t] {
			if g.out[s][t] != w {
				return fmt.Errorf("%w: reverse entry %q <- %q weight %d, forward table has %d", ErrRepInvariant, t, s, w, g.out[s][t])
			}
		}
	}

	if count != g.edgeCount {
		return fmt.Errorf("%w: edge count %d, stored edges %d", ErrRepInvariant, g.edgeCount, count)
	}

	return nil
}
