// SPDX-License-Identifier: MIT
// Package corpus turns text into the ordered word-token stream the poet
// consumes. A token is a maximal run of non-whitespace runes; whitespace,
// newlines included, only delimits and never appears inside a token.
//
// Lines are not significant: the tokens of consecutive lines form one stream.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrRead indicates the corpus source could not be opened or read.
var ErrRead = errors.New("corpus: read failed")

// maxTokenSize bounds a single token; longer runs of non-space fail the scan.
const maxTokenSize = 1 << 20

// Tokens reads r to EOF and returns its whitespace-separated tokens in order.
// A read failure is returned wrapped with ErrRead; no partial slice is returned.
func Tokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return tokens, nil
}

// ReadFile opens path and returns its tokens.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	tokens, err := Tokens(f)
	if err != nil {
		return nil, fmt.Errorf("corpus: %s: %w", path, err)
	}

	return tokens, nil
}

// Split tokenizes an in-memory string.
func Split(s string) []string {
	return strings.Fields(s)
}
