// SPDX-License-Identifier: MIT
// File: dot.go
// Role: Graphviz DOT rendering of a Digraph.
// Determinism:
//   - Nodes are numbered in sorted label order; edges follow (From, To) order.

package core

import (
	"fmt"
	"io"
	"strings"
)

// DOTOptions controls WriteDOT output.
type DOTOptions struct {
	// Name is the graph name. Usually this can be left blank.
	Name string

	// NodeAttrs, if non-nil, returns extra attributes for a vertex.
	// A "label" attribute here overrides the vertex label.
	NodeAttrs func(label string) []DOTAttr

	// EdgeAttrs, if non-nil, returns attributes for an edge. When nil,
	// every edge is labeled with its weight.
	EdgeAttrs func(e Edge) []DOTAttr
}

// DOTAttr is an attribute for a DOT node or edge. Val may be a string
// (which will be escaped), int, int64 or float64.
type DOTAttr struct {
	Name string
	Val  interface{}
}

// WriteDOT writes g to w in Graphviz DOT form.
func (g *Digraph) WriteDOT(w io.Writer, opts DOTOptions) error {
	if _, err := fmt.Fprintf(w, "digraph %s {\n", dotString(opts.Name)); err != nil {
		return err
	}

	labels := g.Vertices()
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i

		var attrs []DOTAttr
		haveLabel := false
		if opts.NodeAttrs != nil {
			attrs = opts.NodeAttrs(label)
			for _, a := range attrs {
				if a.Name == "label" {
					haveLabel = true
					break
				}
			}
		}
		if !haveLabel {
			attrs = attrs[:len(attrs):len(attrs)]
			attrs = append(attrs, DOTAttr{Name: "label", Val: label})
		}
		if _, err := fmt.Fprintf(w, "n%d%s;\n", i, formatDOTAttrs(attrs)); err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		var attrs []DOTAttr
		if opts.EdgeAttrs != nil {
			attrs = opts.EdgeAttrs(e)
		} else {
			attrs = []DOTAttr{{Name: "label", Val: e.Weight}}
		}
		if _, err := fmt.Fprintf(w, "n%d -> n%d%s;\n", index[e.From], index[e.To], formatDOTAttrs(attrs)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}\n")
	return err
}

// dotString returns s as a quoted DOT string.
func dotString(s string) string {
	buf := []byte{'"'}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\\', '"', '{', '}', '<', '>', '|':
			buf = append(buf, '\\', s[i])
		default:
			buf = append(buf, s[i])
		}
	}
	buf = append(buf, '"')

	return string(buf)
}

// formatDOTAttrs formats attrs including the surrounding brackets, or
// returns "" when attrs is empty. Unknown value types panic.
func formatDOTAttrs(attrs []DOTAttr) string {
	if len(attrs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(" [")
	for i, a := range attrs {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(a.Name)
		sb.WriteString("=")
		switch val := a.Val.(type) {
		case string:
			sb.WriteString(dotString(val))
		case int, int64, float64:
			fmt.Fprintf(&sb, "%v", val)
		default:
			panic(fmt.Sprintf("core: dot attribute %s has unsupported type %T", a.Name, a.Val))
		}
	}
	sb.WriteString("]")

	return sb.String()
}
