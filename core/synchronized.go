// SPDX-License-Identifier: MIT
// File: synchronized.go
// Role: Coarse-grained locking wrapper for sharing one Digraph across goroutines.
// Concurrency:
//   - A single sync.RWMutex guards the whole graph; queries take the read lock,
//     mutations the write lock.
// AI-HINT (file):
//   - Use Update for read-modify-write sequences (e.g. weight increments); two
//     separate calls to Weight and SetEdge are not atomic together.

package core

import "sync"

// Synchronized guards a Digraph with one RWMutex.
type Synchronized struct {
	mu sync.RWMutex
	g  *Digraph
}

// NewSynchronized wraps g. The caller must not use g directly afterwards.
// A nil g is replaced by an empty Digraph.
func NewSynchronized(g *Digraph) *Synchronized {
	if g == nil {
		g = NewDigraph()
	}
	return &Synchronized{g: g}
}

// AddVertex is Digraph.AddVertex under the write lock.
func (s *Synchronized) AddVertex(label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.AddVertex(label)
}

// SetEdge is Digraph.SetEdge under the write lock.
func (s *Synchronized) SetEdge(source, target string, weight int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.SetEdge(source, target, weight)
}

// RemoveVertex is Digraph.RemoveVertex under the write lock.
func (s *Synchronized) RemoveVertex(label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.RemoveVertex(label)
}

// HasVertex is Digraph.HasVertex under the read lock.
func (s *Synchronized) HasVertex(label string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.HasVertex(label)
}

// Weight is Digraph.Weight under the read lock.
func (s *Synchronized) Weight(source, target string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Weight(source, target)
}

// Vertices is Digraph.Vertices under the read lock.
func (s *Synchronized) Vertices() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Vertices()
}

// OutNeighbors is Digraph.OutNeighbors under the read lock.
func (s *Synchronized) OutNeighbors(source string) map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.OutNeighbors(source)
}

// InNeighbors is Digraph.InNeighbors under the read lock.
func (s *Synchronized) InNeighbors(target string) map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.InNeighbors(target)
}

// Update runs fn with exclusive access to the wrapped graph.
// fn must not retain g after returning.
func (s *Synchronized) Update(fn func(g *Digraph)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.g)
}

// View runs fn with shared read access. fn must not mutate g.
func (s *Synchronized) View(fn func(g *Digraph)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s.g)
}

// Snapshot returns a deep copy taken under the read lock.
func (s *Synchronized) Snapshot() *Digraph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Clone()
}
