package readers

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrNoFiles       = errors.New("no files match")
	ErrNoSpectra     = errors.New("no spectra for requested order")
)

// FormatMismatchError reports that a file does not follow the header
// conventions of a format. Format is empty when detection found no match.
type FormatMismatchError struct {
	Format Format
	Path   string
	Reason string
}

func (e *FormatMismatchError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("cannot determine format of %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s does not look like a %s file: %s", e.Path, e.Format, e.Reason)
}
