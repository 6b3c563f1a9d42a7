// SPDX-License-Identifier: MIT
package poet

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/saad1551/sclab9/core"
)

// Stats summarizes a Poet's affinity graph.
type Stats struct {
	Tokens   int
	Vertices int
	Edges    int

	// TotalWeight is the number of adjacencies observed (Tokens-1 when Tokens > 0).
	TotalWeight int64

	MeanWeight   float64
	StdDevWeight float64

	MeanOutDegree   float64
	StdDevOutDegree float64

	// Heaviest is the edge with the largest weight, ties broken by (From, To).
	// Zero value when the graph has no edges.
	Heaviest core.Edge
}

// Stats computes summary statistics over the affinity graph. Standard
// deviations are sample deviations and are reported as 0 with fewer than two
// observations.
func (p *Poet) Stats() Stats {
	s := Stats{
		Tokens:   p.tokens,
		Vertices: p.graph.VertexCount(),
		Edges:    p.graph.EdgeCount(),
	}

	edges := p.graph.Edges()
	weights := make([]float64, len(edges))
	for i, e := range edges {
		weights[i] = float64(e.Weight)
		s.TotalWeight += e.Weight
		if e.Weight > s.Heaviest.Weight {
			s.Heaviest = e
		}
	}
	s.MeanWeight, s.StdDevWeight = meanStdDev(weights)

	labels := p.graph.Vertices()
	degrees := make([]float64, len(labels))
	for i, v := range labels {
		degrees[i] = float64(p.graph.OutDegree(v))
	}
	s.MeanOutDegree, s.StdDevOutDegree = meanStdDev(degrees)

	return s
}

func meanStdDev(x []float64) (mean, std float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	mean, std = stat.MeanStdDev(x, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return mean, std
}
