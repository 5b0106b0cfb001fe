// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: plain-text form of a pattern, used by reports and by the compare
// command to read graphs back.
//
// Format:
//
//	Graph Nodes:
//	X1,X2,X3
//
//	Graph Edges:
//	1. X1 --> X2
//	2. X2 --- X3
//
// Edges are listed in Edges() order, numbered from 1.

package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	headerNodes = "Graph Nodes:"
	headerEdges = "Graph Edges:"
	arrowText   = "-->"
	lineText    = "---"
)

// EdgeString renders e as "A --> B" or "A --- B" using g's node names.
func (g *Graph) EdgeString(e Edge) string {
	if e.Directed {
		return g.Name(e.From) + " " + arrowText + " " + g.Name(e.To)
	}

	return g.Name(e.From) + " " + lineText + " " + g.Name(e.To)
}

// String renders the graph in the text format above.
func (g *Graph) String() string {
	var b strings.Builder
	b.WriteString(headerNodes)
	b.WriteByte('\n')
	b.WriteString(strings.Join(g.Names(), ","))
	b.WriteString("\n\n")
	b.WriteString(headerEdges)
	b.WriteByte('\n')
	for i, e := range g.Edges() {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(g.EdgeString(e))
		b.WriteByte('\n')
	}

	return b.String()
}

// ParseGraph reads a graph in the text format produced by String.
// Edge numbering is optional; "A --> B" and "A --- B" are accepted.
//
// Errors: ErrMalformed (wrapped with the line number), plus any node or edge
// error raised while rebuilding the graph.
func ParseGraph(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	var (
		g       *Graph
		section string
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case line == headerNodes:
			section = headerNodes
			continue
		case line == headerEdges:
			if g == nil {
				return nil, fmt.Errorf("core: line %d: edges before nodes: %w", lineNo, ErrMalformed)
			}
			section = headerEdges
			continue
		}

		switch section {
		case headerNodes:
			if g != nil {
				return nil, fmt.Errorf("core: line %d: second node list: %w", lineNo, ErrMalformed)
			}
			names := strings.Split(line, ",")
			for i := range names {
				names[i] = strings.TrimSpace(names[i])
			}
			var err error
			if g, err = NewGraphFromNames(names); err != nil {
				return nil, fmt.Errorf("core: line %d: %w", lineNo, err)
			}
		case headerEdges:
			if err := parseEdgeLine(g, line); err != nil {
				return nil, fmt.Errorf("core: line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("core: line %d: text outside a section: %w", lineNo, ErrMalformed)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("core: missing %q section: %w", headerNodes, ErrMalformed)
	}

	return g, nil
}

// parseEdgeLine adds the edge described by "[N.] A --> B" or "[N.] A --- B".
func parseEdgeLine(g *Graph, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 4 && strings.HasSuffix(fields[0], ".") {
		fields = fields[1:]
	}
	if len(fields) != 3 {
		return ErrMalformed
	}
	a, okA := g.Index(fields[0])
	b, okB := g.Index(fields[2])
	if !okA || !okB {
		return ErrNodeNotFound
	}
	switch fields[1] {
	case arrowText:
		return g.AddDirected(a, b)
	case lineText:
		return g.AddUndirected(a, b)
	default:
		return ErrMalformed
	}
}
