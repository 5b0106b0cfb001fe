// Package dfs defines the traversal state and sentinel errors shared by the
// reachability, cycle and ordering routines over a core.Graph pattern.
package dfs

import "errors"

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current DFS stack.
	Black        // Black: the node and all its descendants are finished.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that the directed part of the graph has a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNodeNotFound indicates an out-of-range start or target index.
	ErrNodeNotFound = errors.New("dfs: node not found")
)

// Step decides whether a traversal may move from a to b.
// Both nodes are guaranteed adjacent when Step is called.
type Step func(a, b int) bool
