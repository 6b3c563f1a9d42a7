// SPDX-License-Identifier: MIT
package core

import (
	"errors"
	"testing"
)

// TestValidate_DetectsCorruption breaks the representation by hand and
// expects Validate to name each violation class.
func TestValidate_DetectsCorruption(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(g *Digraph)
	}{
		{"zero weight stored", func(g *Digraph) {
			g.out["a"]["b"] = 0
			g.in["b"]["a"] = 0
		}},
		{"negative weight stored", func(g *Digraph) {
			g.out["a"]["b"] = -3
			g.in["b"]["a"] = -3
		}},
		{"dangling target", func(g *Digraph) {
			delete(g.out, "b")
			delete(g.in, "b")
		}},
		{"reverse index out of sync", func(g *Digraph) {
			g.in["b"]["a"] = 9
		}},
		{"reverse-only entry", func(g *Digraph) {
			g.in["a"]["b"] = 1
		}},
		{"missing reverse bucket", func(g *Digraph) {
			delete(g.in, "a")
			g.in["zz"] = map[string]int64{}
		}},
		{"bucket count mismatch", func(g *Digraph) {
			g.in["zz"] = map[string]int64{}
		}},
		{"edge count drift", func(g *Digraph) {
			g.edgeCount = 7
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewDigraph()
			g.SetEdge("a", "b", 1)
			if err := g.Validate(); err != nil {
				t.Fatalf("fixture invalid: %v", err)
			}

			tc.corrupt(g)

			err := g.Validate()
			if !errors.Is(err, ErrRepInvariant) {
				t.Fatalf("want ErrRepInvariant, got %v", err)
			}
		})
	}
}
