// SPDX-License-Identifier: MIT
package poet

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/saad1551/sclab9/core"
	"github.com/saad1551/sclab9/corpus"
)

// New builds a Poet from an ordered token stream.
//
// Every consecutive pair (w1, w2) adds 1 to the edge fold(w1) → fold(w2).
// Each canonical form remembers the spelling it was first seen with.
// Zero tokens give an empty graph; a single token gives one vertex and no
// edges. Empty tokens are skipped.
func New(tokens []string, opts ...Option) *Poet {
	p := &Poet{
		graph:     core.NewDigraph(),
		spellings: make(map[string]string),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fold == nil {
		p.fold = lowerFolder()
	}

	prev, havePrev := "", false
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		canon := p.fold(tok)
		if _, seen := p.spellings[canon]; !seen {
			p.spellings[canon] = tok
		}
		p.graph.AddVertex(canon)
		if havePrev {
			p.graph.SetEdge(prev, canon, p.graph.Weight(prev, canon)+1)
		}
		prev, havePrev = canon, true
		p.tokens++
	}

	p.log.Debug("affinity graph built",
		zap.Int("tokens", p.tokens),
		zap.Int("vertices", p.graph.VertexCount()),
		zap.Int("edges", p.graph.EdgeCount()),
	)

	return p
}

// NewFromReader tokenizes r and builds a Poet from it.
func NewFromReader(r io.Reader, opts ...Option) (*Poet, error) {
	tokens, err := corpus.Tokens(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusRead, err)
	}

	return New(tokens, opts...), nil
}

// NewFromFile reads the corpus at path and builds a Poet from it.
func NewFromFile(path string, opts ...Option) (*Poet, error) {
	tokens, err := corpus.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusRead, err)
	}

	return New(tokens, opts...), nil
}

// Graph returns an independent copy of the affinity graph.
func (p *Poet) Graph() *core.Digraph { return p.graph.Clone() }

// Spelling returns the first-seen original spelling of a canonical word.
func (p *Poet) Spelling(canonical string) (string, bool) {
	s, ok := p.spellings[canonical]
	return s, ok
}

// Spellings returns a copy of the canonical → original spelling table.
func (p *Poet) Spellings() map[string]string {
	out := make(map[string]string, len(p.spellings))
	for k, v := range p.spellings {
		out[k] = v
	}
	return out
}

// String describes the poet and its graph.
func (p *Poet) String() string {
	return "poet with graph:\n" + p.graph.Render()
}
