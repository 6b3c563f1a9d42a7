// SPDX-License-Identifier: MIT
package poet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saad1551/sclab9/core"
	"github.com/saad1551/sclab9/poet"
)

func TestStats_Empty(t *testing.T) {
	require.Equal(t, poet.Stats{}, poet.New(nil).Stats())
}

func TestStats_SelfLoop(t *testing.T) {
	s := poet.New([]string{"a", "a", "a"}).Stats()

	require.Equal(t, poet.Stats{
		Tokens:        3,
		Vertices:      1,
		Edges:         1,
		TotalWeight:   2,
		MeanWeight:    2,
		MeanOutDegree: 1,
		Heaviest:      core.Edge{From: "a", To: "a", Weight: 2},
	}, s)
}

func TestStats_Mugar(t *testing.T) {
	p, err := poet.NewFromFile(mugarCorpus)
	require.NoError(t, err)
	s := p.Stats()

	require.Equal(t, 11, s.Tokens)
	require.Equal(t, 11, s.Vertices)
	require.Equal(t, 10, s.Edges)
	require.Equal(t, int64(10), s.TotalWeight)
	require.InDelta(t, 1.0, s.MeanWeight, 1e-12)
	require.InDelta(t, 0.0, s.StdDevWeight, 1e-12)
	require.InDelta(t, 10.0/11.0, s.MeanOutDegree, 1e-12)
	require.InDelta(t, math.Sqrt(1.0/11.0), s.StdDevOutDegree, 1e-12)
	// All weights tie at 1; the first edge in (From, To) order wins.
	require.Equal(t, core.Edge{From: "a", To: "test", Weight: 1}, s.Heaviest)
}

func TestStats_Greeting(t *testing.T) {
	p, err := poet.NewFromFile(greetingCorpus)
	require.NoError(t, err)
	s := p.Stats()

	require.Equal(t, 14, s.Tokens)
	require.Equal(t, int64(13), s.TotalWeight, "one adjacency per consecutive token pair")
	require.Equal(t, int64(2), s.Heaviest.Weight)
	require.Equal(t, "and", s.Heaviest.From)
	require.Equal(t, "welcome", s.Heaviest.To)
}
