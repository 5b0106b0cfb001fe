package dataset

import "errors"

var (
	// ErrMalformed indicates unreadable tabular data: missing header, duplicate
	// or empty names, ragged rows, non-numeric cells, or fewer than two cases.
	ErrMalformed = errors.New("dataset: malformed data")

	// ErrUnknownVariable indicates an excluded name absent from the header.
	ErrUnknownVariable = errors.New("dataset: unknown variable")

	// ErrBadDelimiter indicates a delimiter name or character that cannot be used.
	ErrBadDelimiter = errors.New("dataset: bad delimiter")
)
