// Package fgs learns the structure of a linear-Gaussian causal model from
// continuous data with Fast Greedy Search, a parallel variant of Greedy
// Equivalence Search.
//
// The search moves through Markov equivalence classes, represented as
// patterns (graphs mixing directed and undirected edges). A forward phase
// applies the best-scoring Insert operator until none improves the score; a
// backward phase then applies Delete operators the same way. After every
// step the pattern is re-oriented with Meek's rules.
//
// Packages:
//
//	core/        pattern graph: nodes, directed and undirected edges, text format
//	matrix/      dense matrices, Cholesky solves, statistics kernels
//	dataset/     delimited continuous data readers and writers
//	covariance/  sample covariance from a dataset or a matrix
//	score/       SEM BIC local score, concurrent score cache, independence tests
//	knowledge/   forbidden, required and tiered edge constraints
//	dfs/         reachability, cycle detection, topological order
//	orient/      Meek orientation rules and consistent DAG extension
//	search/      the FGS engine: operators, parallel evaluation, phases
//	simulate/    random DAGs and linear SEM samples
//	compare/     adjacency and arrowhead precision and recall
//	graphml/     GraphML export
//
// The fgs command (cmd/fgs) wraps search, simulate and compare:
//
//	fgs simulate --nodes 10 --edges 12 --out data.txt --graph-out truth.txt
//	fgs search --data data.txt --prefix-out run --graphml
//	fgs compare --target run_output.txt --reference truth.txt
package fgs
