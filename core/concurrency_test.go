// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Synchronized under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saad1551/sclab9/core"
)

// TestSynchronized_ConcurrentIncrements ensures Update makes read-modify-write
// increments atomic: NWriters goroutines × NRounds increments on one edge.
func TestSynchronized_ConcurrentIncrements(t *testing.T) {
	s := core.NewSynchronized(nil)
	var wg sync.WaitGroup
	wg.Add(NWriters)

	for i := 0; i < NWriters; i++ {
		go func() {
			defer wg.Done()
			for r := 0; r < NRounds; r++ {
				s.Update(func(g *core.Digraph) {
					g.SetEdge("x", "y", g.Weight("x", "y")+1)
				})
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(NWriters*NRounds), s.Weight("x", "y"))
	require.NoError(t, s.Snapshot().Validate())
}

// TestSynchronized_MixedReadersWriters mixes mutations and queries to verify
// no races or panics occur; run with -race.
func TestSynchronized_MixedReadersWriters(t *testing.T) {
	s := core.NewSynchronized(core.NewDigraph())
	require.True(t, s.AddVertex("base"))

	var wg sync.WaitGroup
	wg.Add(NWriters + NReaders)

	for i := 0; i < NWriters; i++ {
		go func(id int) {
			defer wg.Done()
			v := fmt.Sprintf("v%d", id)
			for r := 0; r < NRounds; r++ {
				s.SetEdge("base", v, int64(r+1))
				if r%10 == 9 {
					s.RemoveVertex(v)
				}
			}
		}(i)
	}

	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			for r := 0; r < NRounds; r++ {
				_ = s.OutNeighbors("base")
				_ = s.InNeighbors("v1")
				_ = s.Vertices()
				_ = s.HasVertex("base")
				s.View(func(g *core.Digraph) { _ = g.EdgeCount() })
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	require.NoError(t, snap.Validate())
	// Every writer ends on r=99, which removes its vertex.
	require.Equal(t, []string{"base"}, snap.Vertices())
}
