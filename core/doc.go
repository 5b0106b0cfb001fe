// Package core provides the thread-safe pattern graph the structure search
// builds: a fixed, index-addressed node set plus at most one edge per pair,
// marked directed (a --> b) or undirected (a --- b).
//
// The Graph G = (V,E) supports:
//
//   - Constant-time pair queries via an n×n endpoint-mark table
//     (IsAdjacent, IsDirected, IsUndirected, Endpoint)
//   - Sorted list queries (Parents, Children, Neighbors, Adjacent)
//   - Edge lifecycle: AddDirected, AddUndirected, RemoveEdge, Orient, Undirect
//   - Deterministic snapshots: Edges() orders by (min index, max index)
//   - Clone / CloneEmpty / Equal for pattern replay and tests
//   - A plain-text form (String / ParseGraph) shared by reports and tools
//
// Node indices equal dataset column indices, so a Graph, a covariance
// matrix and a score function built from the same dataset agree on what
// "node 3" means.
//
// Acyclicity is not enforced here. Package dfs answers reachability and
// cycle questions, and packages orient and search consult it before every
// orientation they apply.
//
// Errors:
//
//	ErrEmptyName, ErrDuplicateName – invalid node catalog
//	ErrNodeNotFound                – bad index or name
//	ErrLoopNotAllowed              – a --- a / a --> a
//	ErrEdgeExists, ErrEdgeNotFound – adjacency preconditions
//	ErrMalformed                   – unparsable graph text
package core
