// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("fgs.search")
	meter  = otel.Meter("fgs.search")
)

var (
	operatorsEvaluated metric.Int64Counter
	operatorsAccepted  metric.Int64Counter
	operatorsReverted  metric.Int64Counter
	candidatesRejected metric.Int64Counter
	phaseDuration      metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics registers the search instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		operatorsEvaluated, err = meter.Int64Counter(
			"fgs_search_operators_evaluated_total",
			metric.WithDescription("Candidate operators scored"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		operatorsAccepted, err = meter.Int64Counter(
			"fgs_search_operators_accepted_total",
			metric.WithDescription("Operators applied to the pattern"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		operatorsReverted, err = meter.Int64Counter(
			"fgs_search_operators_reverted_total",
			metric.WithDescription("Operators undone because the rebuilt pattern scored no better"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		candidatesRejected, err = meter.Int64Counter(
			"fgs_search_candidates_rejected_total",
			metric.WithDescription("Candidates rejected for an ill-determined score"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		phaseDuration, err = meter.Float64Histogram(
			"fgs_search_phase_duration_seconds",
			metric.WithDescription("Duration of a search phase"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordEvaluation records one scored batch.
func recordEvaluation(ctx context.Context, phase string, ev evaluation) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("phase", phase))
	operatorsEvaluated.Add(ctx, ev.evaluated, attrs)
	if ev.rejected > 0 {
		candidatesRejected.Add(ctx, ev.rejected, attrs)
	}
}

// recordAccepted records an applied operator.
func recordAccepted(ctx context.Context, kind Kind) {
	if err := initMetrics(); err != nil {
		return
	}
	operatorsAccepted.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind.String())))
}

// recordReverted records an operator that was rolled back.
func recordReverted(ctx context.Context, kind Kind) {
	if err := initMetrics(); err != nil {
		return
	}
	operatorsReverted.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind.String())))
}

// recordPhase records a finished phase.
func recordPhase(ctx context.Context, phase string, d time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}
	phaseDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("phase", phase)))
}

// startRunSpan creates the span of one Run.
func startRunSpan(ctx context.Context, runID string, variables, threads int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Engine.Run",
		trace.WithAttributes(
			attribute.String("fgs.run_id", runID),
			attribute.Int("fgs.variables", variables),
			attribute.Int("fgs.threads", threads),
		),
	)
}

// startPhaseSpan creates the span of one search phase.
func startPhaseSpan(ctx context.Context, phase string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Engine."+phase,
		trace.WithAttributes(attribute.String("fgs.phase", phase)),
	)
}
