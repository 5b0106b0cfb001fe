// Package search implements Fast Greedy Search over patterns of linear
// Gaussian DAG models.
//
// An Engine owns one score cache and, per Run, one worker pool. Run starts
// from an empty (or caller-supplied) pattern, greedily applies the best
// Insert operator until none improves the score, then the best Delete
// operator until none does. Every accepted state is a pattern: the orient
// package rebuilds it after each edit and the engine checks acyclicity.
//
// The chosen operator never depends on the number of workers: all deltas of
// a round are computed before the coordinator picks the largest positive
// one, the lowest enumeration index winning ties.
//
// Usage:
//
//	cov, _ := covariance.New(data)
//	cfg := search.DefaultConfig()
//	cfg.Knowledge = k
//	e, err := search.New(cov, cfg)
//	if err != nil {
//		return err
//	}
//	defer e.Close()
//	res, err := e.Run(ctx)
package search
