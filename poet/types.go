// SPDX-License-Identifier: MIT
package poet

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/saad1551/sclab9/core"
)

// ErrCorpusRead indicates the corpus could not be read.
var ErrCorpusRead = errors.New("poet: corpus unreadable")

// Poet holds the affinity graph learned from one corpus.
// A Poet is immutable after construction; it is not safe for concurrent
// use because the default case folder keeps internal state.
type Poet struct {
	graph     *core.Digraph
	spellings map[string]string // canonical form → first-seen original spelling
	tokens    int

	fold func(string) string
	log  *zap.Logger
}

// Option configures a Poet at construction time.
type Option func(*Poet)

// WithLogger attaches a logger for construction and bridging diagnostics.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(p *Poet) {
		if l != nil {
			p.log = l
		}
	}
}

// WithFolder replaces the case-folding function that maps a token to its
// canonical vertex form. Panics on nil.
func WithFolder(fold func(string) string) Option {
	if fold == nil {
		panic("poet: WithFolder(nil)")
	}
	return func(p *Poet) { p.fold = fold }
}

// lowerFolder returns the default folder: Unicode lower-casing with
// language-neutral rules.
func lowerFolder() func(string) string {
	c := cases.Lower(language.Und)
	return c.String
}
