// Package dfs implements the graph walks the structure search relies on,
// over a core.Graph pattern (directed and undirected edges):
//
//   - Reachable: explicit-stack DFS along edges admitted by a Step, never
//     entering blocked nodes. Directed and SemiDirected supply the two Steps
//     the search uses.
//   - ExistsDirectedPath / ExistsSemiDirectedPath: the acyclicity test before
//     an orientation, and the "every semi-directed path is blocked" validity
//     test for edge insertions.
//   - FindDirectedCycle / HasDirectedCycle: White/Gray/Black colouring over
//     directed edges; used to verify the acyclicity invariant after each
//     accepted edit.
//   - TopologicalSort: lowest-index-first ordering of the directed part.
//
// Complexity:
//
//   - Every routine: Time O(V^2) (mark-table neighbour scans), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil       – nil graph.
//   - ErrNodeNotFound   – bad start or target index.
//   - ErrCycleDetected  – TopologicalSort on a graph with a directed cycle.
package dfs
