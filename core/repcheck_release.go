// SPDX-License-Identifier: MIT

//go:build !digraphdebug

package core

// checkRep is a no-op in release builds; see repcheck_debug.go.
func checkRep(*Digraph) {}
