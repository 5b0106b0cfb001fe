// Package dataset reads the continuous tabular data a structure search runs
// on: one header line of variable names followed by one numeric row per case.
//
// Parsing is strict. Every row must have as many fields as the header, every
// cell must parse as a finite float64, and names must be unique. Missing
// values are not supported; the only way to drop a column is to exclude it by
// name before the data reaches the search.
package dataset

import (
	"fmt"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/matrix"
)

// Dataset is an immutable rows × variables table.
type Dataset struct {
	variables []core.Node
	data      *matrix.Dense
}

// New wraps data (rows = cases, columns = variables) with variable names.
//
// Errors: ErrMalformed when the name count differs from the column count or
// names are empty or repeated.
func New(names []string, data *matrix.Dense) (*Dataset, error) {
	if data == nil || len(names) != data.Cols() {
		return nil, fmt.Errorf("dataset: %d names for %d columns: %w", len(names), colsOf(data), ErrMalformed)
	}
	g, err := core.NewGraphFromNames(names)
	if err != nil {
		return nil, fmt.Errorf("dataset: %v: %w", err, ErrMalformed)
	}

	return &Dataset{variables: g.Nodes(), data: data}, nil
}

func colsOf(m *matrix.Dense) int {
	if m == nil {
		return 0
	}
	return m.Cols()
}

// Variables returns a copy of the variable list, in column order.
func (d *Dataset) Variables() []core.Node {
	out := make([]core.Node, len(d.variables))
	copy(out, d.variables)

	return out
}

// Names returns the variable names, in column order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.variables))
	for i, v := range d.variables {
		out[i] = v.Name
	}

	return out
}

// NumRows returns the number of cases.
func (d *Dataset) NumRows() int { return d.data.Rows() }

// NumColumns returns the number of variables.
func (d *Dataset) NumColumns() int { return d.data.Cols() }

// Data returns the underlying matrix. Callers must not mutate it.
func (d *Dataset) Data() *matrix.Dense { return d.data }
