// SPDX-License-Identifier: MIT

//go:build digraphdebug

package core

// checkRep validates g after every mutation and panics on the first violation.
func checkRep(g *Digraph) {
	if err := g.Validate(); err != nil {
		panic(err)
	}
}
