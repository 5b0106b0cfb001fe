// SPDX-License-Identifier: MIT

package score

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("fgs.score")

var (
	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics registers the cache counters. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		cacheHits, err = meter.Int64Counter(
			"fgs_score_cache_hits_total",
			metric.WithDescription("Local score lookups served from the cache"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cacheMisses, err = meter.Int64Counter(
			"fgs_score_cache_misses_total",
			metric.WithDescription("Local score lookups that computed a fresh score"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}
