// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/knowledge"
	"github.com/katalvlaran/fgs/score"
)

// DefaultPenaltyDiscount is the BIC penalty multiplier used when none is set.
const DefaultPenaltyDiscount = score.DefaultPenaltyDiscount

var configValidate = validator.New()

// Config is the flat parameter set of one search.
type Config struct {
	// PenaltyDiscount multiplies the BIC complexity penalty.
	PenaltyDiscount float64 `yaml:"penalty-discount" validate:"gt=0"`

	// Depth bounds the conditioning sets of Insert and Delete operators;
	// -1 means unbounded.
	Depth int `yaml:"depth" validate:"gte=-1"`

	// FaithfulnessAssumed skips marginally independent pairs and restricts
	// conditioning candidates to nodes marginally dependent on the target.
	FaithfulnessAssumed bool `yaml:"faithful"`

	// NumThreads is the worker pool size.
	NumThreads int `yaml:"thread" validate:"gte=1"`

	// IgnoreLinearDependence drops linearly dependent regressors instead of
	// rejecting the candidate.
	IgnoreLinearDependence bool `yaml:"ignore-linear-dependence"`

	// Verbose enables progress lines on Out.
	Verbose bool `yaml:"verbose"`

	// NumPatternsToStore is the size of the ring buffer of intermediate
	// patterns. Zero keeps none.
	NumPatternsToStore int `yaml:"num-patterns-to-store" validate:"gte=0"`

	Knowledge    *knowledge.Knowledge   `yaml:"-" validate:"-"`
	InitialGraph *core.Graph            `yaml:"-" validate:"-"`
	Independence score.IndependenceTest `yaml:"-" validate:"-"`
	Out          io.Writer              `yaml:"-" validate:"-"`
	Logger       *slog.Logger           `yaml:"-" validate:"-"`
}

// DefaultConfig returns the defaults of the command-line tool.
func DefaultConfig() Config {
	return Config{
		PenaltyDiscount: DefaultPenaltyDiscount,
		Depth:           -1,
		NumThreads:      runtime.NumCPU(),
	}
}

// Validate checks the numeric fields. Failures wrap ErrInput.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: config: %w", ErrInput, err)
	}

	return nil
}
