// SPDX-License-Identifier: MIT
package poet

import (
	"strings"

	"go.uber.org/zap"

	"github.com/saad1551/sclab9/corpus"
)

// Bridge returns the best bridge word between a and b, or false when no
// two-edge path fold(a) → m → fold(b) exists.
//
// The score of m is weight(fold(a), m) + weight(m, fold(b)); the highest score
// wins and ties go to the lexicographically smallest m. The returned word is
// the canonical (case-folded) form.
//
// Complexity: O(min(outdeg(a), indeg(b))) after the neighbor snapshots.
func (p *Poet) Bridge(a, b string) (string, bool) {
	return p.bridge(p.fold(a), p.fold(b))
}

func (p *Poet) bridge(a1, b1 string) (string, bool) {
	outs := p.graph.OutNeighbors(a1)
	ins := p.graph.InNeighbors(b1)

	// Walk the smaller side; the other is a lookup.
	small, large := outs, ins
	if len(ins) < len(outs) {
		small, large = ins, outs
	}

	var (
		best      string
		bestScore int64
		found     bool
	)
	for m, w := range small {
		w2, ok := large[m]
		if !ok {
			continue
		}
		score := w + w2
		if !found || score > bestScore || (score == bestScore && m < best) {
			best, bestScore, found = m, score, true
		}
	}

	return best, found
}

// Poem rewrites input by inserting the best bridge word, if any, between each
// pair of adjacent words. Input words keep their case; words are joined by
// single spaces. Input with no words yields "".
func (p *Poet) Poem(input string) string {
	words := corpus.Split(input)
	if len(words) == 0 {
		return ""
	}

	out := make([]string, 0, 2*len(words)-1)
	out = append(out, words[0])
	prev := p.fold(words[0])
	for _, w := range words[1:] {
		next := p.fold(w)
		if m, ok := p.bridge(prev, next); ok {
			p.log.Debug("bridge inserted", zap.String("from", prev), zap.String("bridge", m), zap.String("to", next))
			out = append(out, m)
		}
		out = append(out, w)
		prev = next
	}

	return strings.Join(out, " ")
}
