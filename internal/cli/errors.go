package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fgs/search"
)

// IsInputError reports whether err comes from bad arguments or unreadable
// inputs rather than from the search itself.
func IsInputError(err error) bool {
	return errors.Is(err, search.ErrInput)
}

func inputErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", search.ErrInput, fmt.Sprintf(format, args...))
}

func inputError(err error) error {
	if err == nil || IsInputError(err) {
		return err
	}

	return fmt.Errorf("%w: %w", search.ErrInput, err)
}
