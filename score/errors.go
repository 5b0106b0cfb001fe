// SPDX-License-Identifier: MIT
// Package score: sentinel error set.

package score

import "errors"

var (
	// ErrIllDetermined indicates a parent set whose covariance block is
	// singular (or leaves no residual variance) within the tolerance. Callers
	// treat the candidate as unscorable; the search never aborts on it.
	ErrIllDetermined = errors.New("score: ill-determined local score")

	// ErrBadParents indicates an out-of-range node, a repeated parent, or a
	// node listed among its own parents.
	ErrBadParents = errors.New("score: invalid parent set")

	// ErrBadOption indicates an invalid option value (e.g. penalty <= 0).
	ErrBadOption = errors.New("score: invalid option")
)
