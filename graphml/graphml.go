// SPDX-License-Identifier: MIT

// Package graphml writes a pattern as GraphML. Every edge carries a boolean
// "directed" datum; undirected edges list the lower-index endpoint as source.
package graphml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/katalvlaran/fgs/core"
)

const (
	namespace   = "http://graphml.graphdrawing.org/xmlns"
	directedKey = "directed"
)

type document struct {
	XMLName xml.Name `xml:"graphml"`
	Xmlns   string   `xml:"xmlns,attr"`
	Keys    []key    `xml:"key"`
	Graph   graph    `xml:"graph"`
}

type key struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

type graph struct {
	ID          string `xml:"id,attr"`
	EdgeDefault string `xml:"edgedefault,attr"`
	Nodes       []node `xml:"node"`
	Edges       []edge `xml:"edge"`
}

type node struct {
	ID string `xml:"id,attr"`
}

type edge struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	Data   data   `xml:"data"`
}

type data struct {
	Key   string `xml:"key,attr"`
	Value bool   `xml:",chardata"`
}

// Write encodes g as a GraphML document whose graph id is name.
func Write(w io.Writer, g *core.Graph, name string) error {
	doc := document{
		Xmlns: namespace,
		Keys:  []key{{ID: directedKey, For: "edge", Name: directedKey, Type: "boolean"}},
		Graph: graph{ID: name, EdgeDefault: "undirected"},
	}
	for _, n := range g.Names() {
		doc.Graph.Nodes = append(doc.Graph.Nodes, node{ID: n})
	}
	for i, e := range g.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, edge{
			ID:     fmt.Sprintf("e%d", i+1),
			Source: g.Name(e.From),
			Target: g.Name(e.To),
			Data:   data{Key: directedKey, Value: e.Directed},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("graphml: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphml: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("graphml: %w", err)
	}

	return nil
}
