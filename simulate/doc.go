// Package simulate generates linear-Gaussian structural equation models:
// random forward DAGs, their parameters, samples drawn from them and their
// implied population covariance.
//
// All randomness flows through an explicit *rand.Rand; NewRNG maps a seed to
// a reproducible stream (seed 0 means 1). A *rand.Rand is not safe for
// concurrent use.
package simulate
