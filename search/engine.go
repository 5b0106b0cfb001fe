// SPDX-License-Identifier: MIT
// Package search: the search state machine.
//
// States: Init -> ForwardSearch -> BackwardSearch -> Done.
//
//   - Init: seed the pattern (empty or InitialGraph), add required edges,
//     rebuild, compute the faithfulness table, start the worker pool.
//   - ForwardSearch: apply the best Insert until none improves the score.
//   - BackwardSearch: apply the best Delete until none improves the score.
//   - Done: stop the pool and hand the pattern to the caller.
//
// After every chosen operator the pattern is rebuilt by the orientation
// engine, the cache entries of touched nodes are dropped and acyclicity is
// verified. The rebuilt pattern is kept only when its total score beats the
// previous one; otherwise it is rolled back and the operator is skipped
// until the next accepted step.

package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/covariance"
	"github.com/katalvlaran/fgs/dfs"
	"github.com/katalvlaran/fgs/knowledge"
	"github.com/katalvlaran/fgs/orient"
	"github.com/katalvlaran/fgs/score"
)

const (
	phaseForward  = "ForwardSearch"
	phaseBackward = "BackwardSearch"
)

// Engine runs FGS over one variable set. It owns its score cache; nothing
// is shared between engines.
type Engine struct {
	cfg       Config
	variables []core.Node
	cache     *score.Cache
	know      *knowledge.Index
	logger    *slog.Logger
	out       io.Writer
	closed    bool
}

// New builds an engine scoring with SEM-BIC over cov.
func New(cov *covariance.Matrix, cfg Config) (*Engine, error) {
	if cov == nil {
		return nil, fmt.Errorf("%w: nil covariance", ErrInput)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fn, err := score.NewSemBic(cov,
		score.WithPenaltyDiscount(cfg.PenaltyDiscount),
		score.WithIgnoreLinearDependence(cfg.IgnoreLinearDependence),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}

	return NewWithScore(fn, cov.Variables(), cfg)
}

// NewWithScore builds an engine around any score function. variables names
// the nodes, index i scoring as node i of fn. PenaltyDiscount and
// IgnoreLinearDependence are properties of fn and are not consulted.
func NewWithScore(fn score.Function, variables []core.Node, cfg Config) (*Engine, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil score function", ErrInput)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(variables) != fn.NumVariables() {
		return nil, fmt.Errorf("%w: %d variables for a score over %d", ErrInput, len(variables), fn.NumVariables())
	}

	e := &Engine{
		cfg:       cfg,
		variables: append([]core.Node(nil), variables...),
		cache:     score.NewCache(fn),
		logger:    cfg.Logger,
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Verbose {
		e.out = cfg.Out
	}
	if cfg.Knowledge != nil {
		ix, err := cfg.Knowledge.Compile(e.names())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInput, err)
		}
		e.know = ix
	}

	return e, nil
}

// Close releases the score cache. Run fails with ErrClosed afterwards.
func (e *Engine) Close() error {
	e.closed = true
	e.cache.InvalidateAll()

	return nil
}

// Run performs one complete search. ctx carries tracing only: phases run to
// their fixed point; a deadline is the caller's concern.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.closed {
		return nil, ErrClosed
	}
	runID := uuid.NewString()
	ctx, span := startRunSpan(ctx, runID, len(e.variables), e.cfg.NumThreads)
	defer span.End()

	s := &session{
		e:      e,
		result: &Result{RunID: runID},
		ring:   newRing(e.cfg.NumPatternsToStore),
		gen:    &Generator{Knowledge: e.know, Depth: e.cfg.Depth},
		orient: &orient.Engine{Knowledge: e.know, Logger: e.logger, Out: e.out},
	}
	base := e.cache.Stats()

	if err := s.init(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	s.pool = newEvaluator(e.cache, e.cfg.NumThreads)

	err := s.phase(ctx, phaseForward, s.gen.Inserts, &s.result.Stats.Forward)
	if err == nil {
		err = s.phase(ctx, phaseBackward, s.gen.Deletes, &s.result.Stats.Backward)
	}
	if cerr := s.pool.close(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: %w", ErrResourceExhaustion, cerr)
	}
	if err != nil {
		span.RecordError(err)
		e.logger.Error("search aborted", "run_id", runID, "error", err)
		return nil, err
	}

	st := e.cache.Stats()
	s.result.Stats.CacheHits = st.Hits - base.Hits
	s.result.Stats.CacheMisses = st.Misses - base.Misses
	s.result.Stats.IllDetermined = s.ill
	s.result.Graph = s.graph
	s.result.Patterns = s.ring.snapshot()
	s.result.Status = Converged
	e.logger.Info("search converged",
		"run_id", runID,
		"edges", s.graph.NumEdges(),
		"inserts", s.result.Stats.Inserts,
		"deletes", s.result.Stats.Deletes,
		"score", s.result.Score())

	return s.result, nil
}

func (e *Engine) names() []string {
	out := make([]string, len(e.variables))
	for i, v := range e.variables {
		out[i] = v.Name
	}

	return out
}

// session is the mutable state of one Run. Only the coordinating goroutine
// touches it.
type session struct {
	e      *Engine
	graph  *core.Graph
	gen    *Generator
	orient *orient.Engine
	pool   *evaluator
	ring   *ring
	result *Result
	// ill is the number of ill-determined nodes in the current pattern.
	ill int
}

// init seeds the pattern and the faithfulness table.
func (s *session) init() error {
	e := s.e

	// 1) Seed.
	g, err := e.seedGraph()
	if err != nil {
		return err
	}
	s.graph = g

	// 2) Required edges, directed as given.
	for _, r := range e.know.RequiredEdges() {
		a, b := r[0], r[1]
		switch {
		case g.IsDirected(a, b):
		case g.IsUndirected(a, b):
			_ = g.Orient(a, b)
		case g.IsAdjacent(a, b):
			return fmt.Errorf("%w: initial graph reverses required edge %s --> %s", ErrInput, g.Name(a), g.Name(b))
		default:
			_ = g.AddDirected(a, b)
		}
	}
	if cycle, _ := dfs.FindDirectedCycle(g); cycle != nil {
		return fmt.Errorf("%w: initial graph has a directed cycle %v", ErrInput, cycle)
	}
	s.result.Stats.Conflicts += len(s.orient.Rebuild(g).Conflicts)

	// 3) Marginal dependence under faithfulness.
	if e.cfg.FaithfulnessAssumed {
		dep, err := e.dependence()
		if err != nil {
			return err
		}
		s.gen.Dependent = dep
	}

	total, ill, err := s.totalScore()
	if err != nil {
		return err
	}
	s.ill = ill
	s.result.ScoreTrace = append(s.result.ScoreTrace, total)
	e.logger.Info("search initialized",
		"variables", len(e.variables),
		"edges", g.NumEdges(),
		"depth", e.cfg.Depth,
		"threads", e.cfg.NumThreads,
		"faithful", e.cfg.FaithfulnessAssumed)

	return nil
}

func (e *Engine) seedGraph() (*core.Graph, error) {
	if e.cfg.InitialGraph == nil {
		g, err := core.NewGraph(e.variables)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInput, err)
		}
		return g, nil
	}
	g := e.cfg.InitialGraph.Clone()
	names := g.Names()
	if len(names) != len(e.variables) {
		return nil, fmt.Errorf("%w: initial graph has %d nodes, want %d", ErrInput, len(names), len(e.variables))
	}
	for i, v := range e.variables {
		if names[i] != v.Name {
			return nil, fmt.Errorf("%w: initial graph node %d is %q, want %q", ErrInput, i, names[i], v.Name)
		}
	}

	return g, nil
}

// dependence tests every pair once with the empty conditioning set.
func (e *Engine) dependence() ([][]bool, error) {
	test := e.cfg.Independence
	if test == nil {
		test = score.NewScoreIndependence(e.cache)
	}
	n := len(e.variables)
	dep := make([][]bool, n)
	for i := range dep {
		dep[i] = make([]bool, n)
	}
	for x := 0; x < n; x++ {
		for y := x + 1; y < n; y++ {
			ind, _, err := test.Independent(x, y, nil)
			if err != nil && !errors.Is(err, score.ErrIllDetermined) {
				return nil, fmt.Errorf("%w: independence of %s and %s: %w", ErrInput, e.variables[x].Name, e.variables[y].Name, err)
			}
			dep[x][y] = err != nil || !ind
			dep[y][x] = dep[x][y]
		}
	}

	return dep, nil
}

// phase runs one greedy loop to its fixed point.
func (s *session) phase(ctx context.Context, name string, generate func(*core.Graph) []Operator, elapsed *time.Duration) error {
	ctx, span := startPhaseSpan(ctx, name)
	defer span.End()
	start := time.Now()
	defer func() {
		*elapsed = time.Since(start)
		recordPhase(ctx, name, *elapsed)
	}()

	e := s.e
	e.logger.Info("phase started", "phase", name)
	if e.out != nil {
		if name == phaseForward {
			fmt.Fprintln(e.out, "** FORWARD EQUIVALENCE SEARCH")
		} else {
			fmt.Fprintln(e.out, "** BACKWARD EQUIVALENCE SEARCH")
		}
	}

	excluded := make(map[string]struct{})
	for {
		ops := generate(s.graph)
		if len(excluded) > 0 {
			ops = slices.DeleteFunc(ops, func(op Operator) bool {
				_, skip := excluded[op.key()]
				return skip
			})
		}
		for i := range ops {
			s.result.Stats.LargestSubset = max(s.result.Stats.LargestSubset, len(ops[i].Subset))
		}
		ev, err := s.pool.evaluate(ops)
		s.result.Stats.Evaluated += ev.evaluated
		s.result.Stats.Rejected += ev.rejected
		recordEvaluation(ctx, name, ev)
		if err != nil {
			return err
		}
		if ev.best < 0 {
			break
		}
		kept, err := s.accept(ctx, ops[ev.best])
		if err != nil {
			return err
		}
		if kept {
			clear(excluded)
		} else {
			excluded[ops[ev.best].key()] = struct{}{}
		}
	}
	e.logger.Info("phase finished", "phase", name, "edges", s.graph.NumEdges())

	return nil
}

// accept applies op, rebuilds the pattern and keeps it when the total score
// improves. Otherwise the previous pattern is restored and accept reports
// false.
func (s *session) accept(ctx context.Context, op Operator) (bool, error) {
	e, prev := s.e, s.graph.Clone()
	g := s.graph
	if e.out != nil {
		fmt.Fprintf(e.out, "%s %.6f\n", op.Format(g), op.Delta)
	}

	// 1) Apply.
	touched := []int{op.X, op.Y}
	switch op.Kind {
	case Insert:
		if err := g.AddDirected(op.X, op.Y); err != nil {
			return false, fmt.Errorf("%w: %w", ErrInvariant, err)
		}
		for _, t := range op.Subset {
			_ = g.Orient(t, op.Y)
		}
	case Delete:
		if err := g.RemoveEdge(op.X, op.Y); err != nil {
			return false, fmt.Errorf("%w: %w", ErrInvariant, err)
		}
		for _, h := range op.Subset {
			if g.IsUndirected(op.Y, h) {
				_ = g.Orient(op.Y, h)
			}
			if g.IsUndirected(op.X, h) {
				_ = g.Orient(op.X, h)
			}
		}
	}
	touched = append(touched, op.Subset...)

	// 2) Reorient.
	rep := s.orient.Rebuild(g)

	// 3) Invalidate.
	for _, v := range union(touched, rep.Changed) {
		e.cache.Invalidate(v)
	}

	// 4) Verify.
	if cycle, _ := dfs.FindDirectedCycle(g); cycle != nil {
		return false, fmt.Errorf("%w: directed cycle %v after %s", ErrInvariant, cycle, op.Kind)
	}

	// 5) Keep or roll back.
	total, ill, err := s.totalScore()
	if err != nil {
		return false, err
	}
	if !s.improves(total, ill) {
		s.graph = prev
		s.result.Stats.Reverted++
		recordReverted(ctx, op.Kind)
		e.logger.Debug("operator reverted",
			"kind", op.Kind.String(),
			"x", prev.Name(op.X),
			"y", prev.Name(op.Y),
			"delta", op.Delta,
			"total", total,
			"previous", s.result.Score())
		if e.out != nil {
			fmt.Fprintf(e.out, "Reverted: total %.6f does not improve %.6f\n", total, s.result.Score())
		}
		return false, nil
	}

	// 6) Record.
	e.logger.Debug("operator accepted",
		"kind", op.Kind.String(),
		"x", g.Name(op.X),
		"y", g.Name(op.Y),
		"subset", len(op.Subset),
		"delta", op.Delta)
	if op.Kind == Insert {
		s.result.Stats.Inserts++
	} else {
		s.result.Stats.Deletes++
	}
	s.result.Stats.Conflicts += len(rep.Conflicts)
	recordAccepted(ctx, op.Kind)
	s.ring.push(g.Clone())
	s.ill = ill
	s.result.ScoreTrace = append(s.result.ScoreTrace, total)

	return true, nil
}

// improves orders patterns by fewer ill-determined nodes, then by a strictly
// higher total.
func (s *session) improves(total float64, ill int) bool {
	if ill != s.ill {
		return ill < s.ill
	}

	return total > s.result.Score()
}

// totalScore sums the local scores of a DAG in the pattern's class. Nodes
// with an ill-determined local score are left out of the sum and counted.
func (s *session) totalScore() (float64, int, error) {
	dag, err := orient.ConsistentExtension(s.graph)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	var total float64
	var ill int
	for v := 0; v < dag.NumNodes(); v++ {
		l, err := s.e.cache.LocalScore(v, dag.Parents(v))
		switch {
		case err == nil:
			total += l.Score
		case errors.Is(err, score.ErrIllDetermined):
			ill++
		default:
			return 0, 0, fmt.Errorf("%w: %w", ErrInvariant, err)
		}
	}

	return total, ill, nil
}
