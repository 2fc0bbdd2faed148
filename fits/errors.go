// Package fits provides access to FITS files as ordered sequences of named
// header/data units, and locates the extensions that spectral readers need.
package fits

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-rainbow/internal/signature"
)

// Common errors
var (
	ErrNotFITS        = signature.ErrNotFITS
	ErrNotFound       = errors.New("extension not found")
	ErrNotTable       = errors.New("extension is not a table")
	ErrColumnNotFound = errors.New("column not found")
	ErrKeyNotFound    = errors.New("header keyword not found")
	ErrKeyType        = errors.New("header keyword has unexpected type")
	ErrUnsupported    = errors.New("unsupported feature")
	ErrClosed         = errors.New("file is closed")
)

// MissingExtensionError reports that a required extension is absent.
// The message format is shared by every reader in this module; callers
// and tools match on the "No '<NAME>' extension found" phrase.
type MissingExtensionError struct {
	Extension string
	Path      string
}

func (e *MissingExtensionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("No '%s' extension found", e.Extension)
	}
	return fmt.Sprintf("No '%s' extension found in %s", e.Extension, e.Path)
}

// Describe returns the human-readable form of the error.
func (e *MissingExtensionError) Describe() string {
	return e.Error()
}

// Is makes errors.Is(err, ErrNotFound) hold for missing extensions.
func (e *MissingExtensionError) Is(target error) bool {
	return target == ErrNotFound
}
