// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for sclab9/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Digraph.
//   - Keep every mutation test paired with a Validate() check.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/saad1551/sclab9/core"
)

// Common vertex labels used across core tests.
const (
	VertexEmpty = ""

	VertexA = "a"
	VertexB = "b"
	VertexC = "c"
	VertexD = "d"

	VertexX = "x"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 int64 = 0
	Weight1 int64 = 1
	Weight2 int64 = 2
	Weight3 int64 = 3
	Weight5 int64 = 5
)

// Common concurrency sizes used across core tests.
const (
	NWriters = 50
	NReaders = 50
	NRounds  = 100
)

// NewTriangle RETURNS a fixture graph:
//
//	a -> b : 1
//	a -> c : 2
//	b -> c : 3
//
// plus the isolated vertex d.
func NewTriangle(t *testing.T) *core.Digraph {
	t.Helper()

	g := core.NewDigraph()
	g.SetEdge(VertexA, VertexB, Weight1)
	g.SetEdge(VertexA, VertexC, Weight2)
	g.SetEdge(VertexB, VertexC, Weight3)
	g.AddVertex(VertexD)
	MustValid(t, g, "NewTriangle")

	return g
}

// MustValid FAILS the test if g.Validate() reports a broken invariant.
//
// Notes:
//   - Call after every mutation block; this is the test-side rep check.
func MustValid(t *testing.T, g *core.Digraph, op string) {
	t.Helper()

	if err := g.Validate(); err != nil {
		t.Fatalf("%s: invariant broken: %v", op, err)
	}
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustPanicIs FAILS the test unless fn panics with an error wrapping target.
func MustPanicIs(t *testing.T, fn func(), target error, op string) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic", op)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("%s: panic value %T is not an error: %v", op, r, r)
		}
		MustErrorIs(t, err, target, op)
	}()

	fn()
}

// MustEqualWeights FAILS if got and want differ as label→weight maps.
func MustEqualWeights(t *testing.T, got, want map[string]int64, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got=%v want=%v", op, got, want)
	}
	for k, w := range want {
		if gw, ok := got[k]; !ok || gw != w {
			t.Fatalf("%s: got=%v want=%v", op, got, want)
		}
	}
}

// MustSortedStrings FAILS if ids are not sorted ascending.
func MustSortedStrings(t *testing.T, ids []string, op string) {
	t.Helper()

	if sort.StringsAreSorted(ids) {
		return
	}

	t.Fatalf("%s: not sorted: %v", op, ids)
}
