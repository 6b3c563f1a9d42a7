// SPDX-License-Identifier: MIT
// Package poet generates "poems" by bridging consecutive input words through
// a word-affinity graph learned from a corpus.
//
// What
//
//   - Vertices are case-folded words; a word is any maximal run of
//     non-whitespace characters, punctuation included ("hello," ≠ "hello").
//   - The edge w1 → w2 weighs the number of times w1 is immediately followed
//     by w2 anywhere in the corpus token stream (line breaks do not interrupt it).
//   - For each adjacent input pair (A, B) the bridge is the word m maximizing
//     weight(a→m) + weight(m→b) over all two-edge paths a → m → b, where a and
//     b are the case-folded forms of A and B.
//
// Output
//
//	Input words keep their original case; bridge words appear in their
//	case-folded (lower-case) form; exactly one space separates words and there
//	is no leading or trailing whitespace.
//
// Determinism
//
//	Equal best scores are broken by choosing the lexicographically smallest
//	case-folded candidate, so a given corpus and input always yield the same poem.
//
// Example
//
//	corpus: "This is a test of the Mugar Omni Theater sound system."
//	input:  "Test the system."
//	poem:   "Test of the system."
//
// Errors
//
//	NewFromFile / NewFromReader return ErrCorpusRead (wrapping the I/O cause)
//	when the corpus cannot be read; no Poet is returned in that case.
package poet
