package chunker

import "errors"

// Defaults for the sliding-window strategy, matching the tuned values of
// the original pipeline.
const (
	DefaultChunkSize      = 600
	DefaultOverlap        = 150
	DefaultMinChunkLength = 200

	// ParagraphSeparator joins paragraphs packed into one chunk.
	ParagraphSeparator = "\n\n"
)

var (
	// ErrInvalidChunkSize is returned when the chunk size is not positive.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInvalidOverlap is returned when the overlap is negative or not
	// strictly less than the chunk size. Equal or larger overlap would
	// prevent the window from advancing.
	ErrInvalidOverlap = errors.New("overlap must be non-negative and less than chunk size")
)
