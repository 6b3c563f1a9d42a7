// SPDX-License-Identifier: MIT
// Package sclab9 is a small weighted-digraph library and the bridge-word
// poet built on top of it.
//
// What is inside?
//
//	core/      Digraph: string-labeled vertices, positive int64 edge weights,
//	           O(1) in- and out-neighbor lookup, Validate, Render, WriteDOT,
//	           and a Synchronized wrapper for shared use
//	corpus/    whitespace tokenization of corpus files and input lines
//	poet/      affinity graph from a corpus; Poem inserts bridge words
//	cmd/poet   command line front end (poem, graph, stats, version)
//
// Quick example:
//
//	corpus: "This is a test of the Mugar Omni Theater sound system."
//
//	    test ──1──▶ of ──1──▶ the
//
//	poem("Test the system.") == "Test of the system."
//
// A bridge b between adjacent input words w1, w2 maximizes
// weight(w1→b) + weight(b→w2) over words with both edges present; ties go to
// the lexicographically smallest b. Words are compared case-insensitively.
//
// See the package docs under core/ and poet/ for the full contracts.
package sclab9
