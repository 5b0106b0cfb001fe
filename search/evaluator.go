// SPDX-License-Identifier: MIT
// Package search: parallel operator scoring.
//
// Concurrency:
//   - One errgroup of NumThreads workers lives for the whole search; the
//     coordinator hands out contiguous chunks of the candidate slice over an
//     unbuffered channel and blocks until every chunk has replied.
//   - Workers write Delta into their own chunk only and read the score cache.
//   - The best operator is picked by the coordinator after the join, by
//     index, so the choice does not depend on scheduling.
//   - A worker error or panic cancels the group; the search then fails with
//     ErrResourceExhaustion.

package search

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fgs/score"
)

// chunksPerWorker balances uneven chunk costs.
const chunksPerWorker = 4

type chunk struct {
	ops   []Operator
	reply chan<- chunkResult
}

type chunkResult struct {
	evaluated int64
	rejected  int64
	err       error
}

// evaluation is the outcome of one batch.
type evaluation struct {
	best      int // -1 when no operator improves the score
	evaluated int64
	rejected  int64
}

type evaluator struct {
	fn      score.Function
	threads int
	jobs    chan chunk
	group   *errgroup.Group
	ctx     context.Context
	closed  bool
}

// newEvaluator starts the pool.
func newEvaluator(fn score.Function, threads int) *evaluator {
	g, ctx := errgroup.WithContext(context.Background())
	ev := &evaluator{
		fn:      fn,
		threads: threads,
		jobs:    make(chan chunk),
		group:   g,
		ctx:     ctx,
	}
	for w := 0; w < threads; w++ {
		g.Go(ev.work)
	}

	return ev
}

func (ev *evaluator) work() error {
	for {
		select {
		case <-ev.ctx.Done():
			return nil
		case c, ok := <-ev.jobs:
			if !ok {
				return nil
			}
			res := ev.score(c.ops)
			c.reply <- res
			if res.err != nil {
				return res.err
			}
		}
	}
}

// score fills Delta for ops. Ill-determined candidates get -Inf.
func (ev *evaluator) score(ops []Operator) (res chunkResult) {
	defer func() {
		if r := recover(); r != nil {
			res.err = fmt.Errorf("worker panic: %v", r)
		}
	}()
	for i := range ops {
		op := &ops[i]
		res.evaluated++
		after, err := ev.fn.LocalScore(op.Y, op.After)
		if err == nil {
			var before score.Local
			before, err = ev.fn.LocalScore(op.Y, op.Before)
			op.Delta = after.Score - before.Score
		}
		switch {
		case err == nil:
		case errors.Is(err, score.ErrIllDetermined):
			op.Delta = math.Inf(-1)
			res.rejected++
		default:
			res.err = err
			return res
		}
	}

	return res
}

// evaluate scores ops and returns the index of the largest positive delta,
// the lowest index winning ties.
func (ev *evaluator) evaluate(ops []Operator) (evaluation, error) {
	out := evaluation{best: -1}
	if len(ops) == 0 {
		return out, nil
	}

	// 1) Fan out.
	n := ev.threads * chunksPerWorker
	size := (len(ops) + n - 1) / n
	reply := make(chan chunkResult, n)
	sent := 0
	for start := 0; start < len(ops); start += size {
		end := min(start+size, len(ops))
		select {
		case ev.jobs <- chunk{ops: ops[start:end], reply: reply}:
			sent++
		case <-ev.ctx.Done():
			return out, ev.failure()
		}
	}

	// 2) Join.
	for i := 0; i < sent; i++ {
		select {
		case r := <-reply:
			out.evaluated += r.evaluated
			out.rejected += r.rejected
			if r.err != nil {
				return out, ev.failure()
			}
		case <-ev.ctx.Done():
			return out, ev.failure()
		}
	}

	// 3) Reduce.
	for i := range ops {
		if ops[i].Delta > 0 && (out.best < 0 || ops[i].Delta > ops[out.best].Delta) {
			out.best = i
		}
	}

	return out, nil
}

// failure waits for the cancelled pool and reports its first error.
func (ev *evaluator) failure() error {
	err := ev.close()
	if err == nil {
		err = context.Cause(ev.ctx)
	}

	return fmt.Errorf("%w: %w", ErrResourceExhaustion, err)
}

// close stops the workers and returns the first worker error.
func (ev *evaluator) close() error {
	if !ev.closed {
		ev.closed = true
		close(ev.jobs)
	}

	return ev.group.Wait()
}
