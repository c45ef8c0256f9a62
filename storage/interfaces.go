package storage

import (
	"context"

	"github.com/poiesic/docqa/core"
)

// EmbeddingCache stores computed chunk embeddings keyed by the fingerprint
// of the exact chunk sequence they were computed from. Re-processing an
// unchanged document then skips the embedding collaborator entirely.
//
// Cache entries are invalidated by key identity alone: a new document has
// a new fingerprint and simply misses. No eviction is needed given the
// one-document-at-a-time scope.
type EmbeddingCache interface {
	// Get returns the cached embedding matrix for the fingerprint, with
	// found=false on a miss. A corrupt entry is reported as an error.
	Get(ctx context.Context, fp core.Fingerprint) (vectors [][]float32, found bool, err error)

	// Put stores the embedding matrix for the fingerprint, replacing any
	// previous entry.
	Put(ctx context.Context, fp core.Fingerprint, vectors [][]float32) error

	// Delete removes the entry for the fingerprint. Deleting a missing
	// entry is not an error.
	Delete(ctx context.Context, fp core.Fingerprint) error

	// Close closes the cache backend and releases resources.
	Close() error
}
