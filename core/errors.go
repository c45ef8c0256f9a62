package core

import "errors"

// Domain errors
var (
	// ErrEmptyDocument indicates the extracted document text is empty or
	// whitespace-only. Processing halts before chunking.
	ErrEmptyDocument = errors.New("document text is empty")

	// ErrNoChunks indicates chunking produced zero chunks from non-empty
	// text. Processing halts before embedding.
	ErrNoChunks = errors.New("chunking produced no chunks")

	// ErrDimensionMismatch indicates embeddings of inconsistent dimension
	// reached the index. This is a collaborator contract violation and is
	// not retried.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrNoRelevantContext indicates retrieval returned zero results.
	// Surfaced to the user, not fatal to the process.
	ErrNoRelevantContext = errors.New("no relevant context found")

	// ErrGenerationFailed indicates the generative collaborator failed or
	// returned unusable output. Recovered locally with a fixed message.
	ErrGenerationFailed = errors.New("answer generation failed")

	// ErrNoDocument indicates a query was issued before any document was
	// processed.
	ErrNoDocument = errors.New("no document loaded")
)
