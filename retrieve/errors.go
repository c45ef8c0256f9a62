package retrieve

import "errors"

var (
	// ErrIndexRequired is returned when an index is not provided.
	ErrIndexRequired = errors.New("index required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrChunkCountMismatch is returned when the chunk sequence does not
	// line up with the index rows.
	ErrChunkCountMismatch = errors.New("chunk count does not match index rows")
)
