package fileio

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions no reader handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNeedsPath is returned when a SQLite source is passed as a stream.
	ErrNeedsPath = errors.New("sqlite sources must be opened by path")
)
