// SPDX-License-Identifier: MIT

package search

import "errors"

var (
	// ErrInput marks an invalid configuration or malformed input. The engine
	// does not start.
	ErrInput = errors.New("search: invalid input")

	// ErrResourceExhaustion marks a failure of the worker pool, including a
	// recovered worker panic. The search aborts and no result is returned.
	ErrResourceExhaustion = errors.New("search: resource exhaustion")

	// ErrInvariant marks an accepted state that is not a valid pattern.
	ErrInvariant = errors.New("search: invariant violated")

	// ErrClosed is returned by Run after Close.
	ErrClosed = errors.New("search: engine closed")
)
