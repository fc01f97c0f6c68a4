package projectpdf

import "errors"

// Sentinel errors returned by the library.
var (
	// ErrClosed is returned when attempting to use a closed [Converter].
	ErrClosed = errors.New("projectpdf: converter is closed")

	// ErrNotDirectory is returned when the source path is missing or is
	// not a directory.
	ErrNotDirectory = errors.New("projectpdf: source is not a directory")
)
