// Package score provides the decomposable scoring layer of the search.
//
//   - Function: the local score contract, LocalScore(node, parents).
//   - SemBic: penalized linear-Gaussian likelihood computed from a
//     covariance.Matrix, with an optional policy that drops linearly
//     dependent regressors instead of failing.
//   - Cache: a Function wrapper memoizing scores per (node, parent set),
//     safe for concurrent workers, invalidated per node by the coordinator.
//   - IndependenceTest: FisherZ and ScoreIndependence, the strategies the
//     search consults when it assumes faithfulness.
//
// Errors:
//
//	ErrIllDetermined - singular parent block or no residual variance.
//	ErrBadParents    - invalid node or parent indices.
//	ErrBadOption     - invalid constructor option.
package score
