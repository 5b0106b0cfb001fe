// Package core defines the pattern graph the structure search mutates:
// variables (Node), endpoint-marked edges (Edge), and the thread-safe Graph.
//
// A Graph is index-based: node i corresponds to variable column i of the
// dataset and covariance matrix the search runs on. Every pair of nodes is
// either non-adjacent, joined by a directed edge a --> b, or joined by an
// undirected edge a --- b (a pattern, i.e. a Markov equivalence class of DAGs).
//
// All methods take the single sync.RWMutex internally, so readers may query a
// graph while no writer is active from any number of goroutines.
//
// Errors:
//
//	ErrEmptyName       - node name is the empty string.
//	ErrDuplicateName   - two nodes share a name.
//	ErrNodeNotFound    - index or name does not refer to a node.
//	ErrLoopNotAllowed  - edge from a node to itself.
//	ErrEdgeExists      - the pair is already adjacent.
//	ErrEdgeNotFound    - the pair is not adjacent.
//	ErrMalformed       - text form of a graph could not be parsed.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates that a node was declared with an empty name.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrDuplicateName indicates that two nodes share the same name.
	ErrDuplicateName = errors.New("core: duplicate node name")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates an edge was added between already adjacent nodes.
	ErrEdgeExists = errors.New("core: nodes already adjacent")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrMalformed indicates unparsable graph text.
	ErrMalformed = errors.New("core: malformed graph text")
)

// Kind tags a variable's measurement type. The search only scores Continuous
// variables; Discrete exists so datasets can carry the tag through.
type Kind int

const (
	// Continuous marks a real-valued variable.
	Continuous Kind = iota
	// Discrete marks a categorical variable.
	Discrete
)

// String returns "continuous" or "discrete".
func (k Kind) String() string {
	if k == Discrete {
		return "discrete"
	}
	return "continuous"
}

// Node is a variable of the search. Immutable for the lifetime of a search.
type Node struct {
	// Name is the variable name, unique within a graph.
	Name string

	// Index is the position of the variable in the dataset columns.
	Index int

	// Kind is the measurement type tag.
	Kind Kind
}

// Endpoint is the mark at one end of an edge.
type Endpoint uint8

const (
	// None means "no edge": used internally for non-adjacent pairs.
	None Endpoint = iota
	// Tail is the plain end of an edge ("-").
	Tail
	// Arrow is an arrowhead (">").
	Arrow
)

// Edge is a snapshot of one adjacency.
// For directed edges From --> To; for undirected edges From < To by index.
type Edge struct {
	From     int
	To       int
	Directed bool
}

// Graph is the mutable pattern.
//
// marks[i*n+j] holds the endpoint at j of the edge i–j (None when i and j are
// not adjacent). A directed edge a --> b stores marks[a*n+b]=Arrow and
// marks[b*n+a]=Tail; an undirected edge stores Tail on both sides.
type Graph struct {
	mu sync.RWMutex

	nodes    []Node
	byName   map[string]int
	marks    []Endpoint
	numEdges int
}

// NewGraph creates an edgeless Graph over nodes. Node indices are reassigned
// to their position in the slice.
//
// Errors: ErrEmptyName, ErrDuplicateName.
// Complexity: O(V^2) for the mark table.
func NewGraph(nodes []Node) (*Graph, error) {
	n := len(nodes)
	g := &Graph{
		nodes:  make([]Node, n),
		byName: make(map[string]int, n),
		marks:  make([]Endpoint, n*n),
	}
	for i, nd := range nodes {
		if nd.Name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := g.byName[nd.Name]; dup {
			return nil, ErrDuplicateName
		}
		nd.Index = i
		g.nodes[i] = nd
		g.byName[nd.Name] = i
	}

	return g, nil
}

// NewGraphFromNames creates an edgeless Graph of continuous nodes named names.
func NewGraphFromNames(names []string) (*Graph, error) {
	nodes := make([]Node, len(names))
	for i, name := range names {
		nodes[i] = Node{Name: name, Index: i, Kind: Continuous}
	}

	return NewGraph(nodes)
}
