package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. Queries and passages may be encoded differently by models that
// require role-disambiguating prefixes.
// Implementations must be safe for sequential reuse across documents.
type Embedder interface {
	// EmbedQuery generates an embedding for a search query.
	// Returns an error if the embedding generation fails.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)

	// EmbedPassages generates embeddings for document passages in a batch.
	// The returned slice contains embeddings in the same order as the
	// input texts. Returns an error if any embedding generation fails.
	EmbedPassages(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces a natural-language continuation for a prompt.
// Implementations must be safe for sequential reuse.
type Generator interface {
	// Generate returns the model's continuation of the prompt using the
	// given decoding options. Returns an error if generation fails;
	// callers decide how to recover.
	Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and
// Generator instances, ensuring they share configuration and resources.
// Models are heavy and loaded once per process; construction failures are
// fatal at startup, not per-call.
type AIProvider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Generator returns the text generation service.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider should not be used.
	Close() error
}
