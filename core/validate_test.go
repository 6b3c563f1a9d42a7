// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saad1551/sclab9/core"
)

// TestValidate_RandomOperations drives a seeded random stream of mutations and
// checks, after every step, that the invariants hold and that the graph agrees
// with a naive edge-list model.
func TestValidate_RandomOperations(t *testing.T) {
	type pair struct{ s, t string }

	rng := rand.New(rand.NewSource(42))
	labels := []string{"a", "b", "c", "d", "e", ""}
	pick := func() string { return labels[rng.Intn(len(labels))] }

	g := core.NewDigraph()
	vertices := map[string]bool{}
	edges := map[pair]int64{}

	for step := 0; step < 2000; step++ {
		op := fmt.Sprintf("step %d", step)
		switch rng.Intn(4) {
		case 0:
			v := pick()
			require.Equal(t, !vertices[v], g.AddVertex(v), op)
			vertices[v] = true
		case 1, 2:
			s, d := pick(), pick()
			w := int64(rng.Intn(4)) // zero a quarter of the time
			prev := edges[pair{s, d}]
			require.Equal(t, prev, g.SetEdge(s, d, w), op)
			if w == 0 {
				delete(edges, pair{s, d})
			} else {
				edges[pair{s, d}] = w
				vertices[s], vertices[d] = true, true
			}
		case 3:
			v := pick()
			require.Equal(t, vertices[v], g.RemoveVertex(v), op)
			delete(vertices, v)
			for p := range edges {
				if p.s == v || p.t == v {
					delete(edges, p)
				}
			}
		}

		MustValid(t, g, op)
		require.Equal(t, len(vertices), g.VertexCount(), op)
		require.Equal(t, len(edges), g.EdgeCount(), op)
	}

	for p, w := range edges {
		require.Equal(t, w, g.OutNeighbors(p.s)[p.t])
		require.Equal(t, w, g.InNeighbors(p.t)[p.s])
	}
}

// TestValidate_EmptyGraph VERIFIES the trivial graph is valid.
func TestValidate_EmptyGraph(t *testing.T) {
	require.NoError(t, core.NewDigraph().Validate())
}
