// SPDX-License-Identifier: MIT
// File: render.go
// Role: Deterministic textual dump for diagnostics and tests.
// Determinism:
//   - Vertices sorted ascending; edges sorted by (From, To).
// AI-HINT (file):
//   - "vertices: (none)" and "edges: (none)" keep an empty graph distinguishable
//     from a graph whose vertices carry no edges.

package core

import (
	"strconv"
	"strings"
)

// Render returns a stable, human-readable listing of vertices then edges:
//
//	vertices:
//	  a
//	  b
//	edges:
//	  a -> b : 2
//
// An empty section is written as "vertices: (none)" or "edges: (none)".
//
// Complexity: O(V log V + E log E).
func (g *Digraph) Render() string {
	var sb strings.Builder

	labels := g.Vertices()
	if len(labels) == 0 {
		sb.WriteString("vertices: (none)\n")
	} else {
		sb.WriteString("vertices:\n")
		for _, label := range labels {
			sb.WriteString("  ")
			sb.WriteString(label)
			sb.WriteByte('\n')
		}
	}

	edges := g.Edges()
	if len(edges) == 0 {
		sb.WriteString("edges: (none)\n")
		return sb.String()
	}
	sb.WriteString("edges:\n")
	for _, e := range edges {
		sb.WriteString("  ")
		sb.WriteString(e.From)
		sb.WriteString(" -> ")
		sb.WriteString(e.To)
		sb.WriteString(" : ")
		sb.WriteString(strconv.FormatInt(e.Weight, 10))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String implements fmt.Stringer via Render.
func (g *Digraph) String() string { return g.Render() }
