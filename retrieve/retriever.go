package retrieve

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/docqa/ai"
	"github.com/poiesic/docqa/core"
	"github.com/poiesic/docqa/index"
)

// Default retrieval tuning.
const (
	DefaultTopK = 5

	// DefaultContextBudget bounds the context handed to the generative
	// step. List extraction always receives the untruncated context.
	DefaultContextBudget = 1500

	// ChunkSeparator joins chunk texts in the assembled context.
	ChunkSeparator = "\n\n"
)

// Retriever finds the chunks most relevant to a query and assembles a
// bounded context string. It is bound to one document's index and chunk
// sequence; a new document gets a new Retriever.
type Retriever struct {
	idx           *index.Flat
	chunks        []core.Chunk
	embedder      ai.Embedder
	topK          int
	contextBudget int
	logger        *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithTopK sets how many chunks are retrieved per query.
// Default is DefaultTopK.
func WithTopK(k int) Option {
	return func(r *Retriever) error {
		if k < 1 {
			k = DefaultTopK
		}
		r.topK = k
		return nil
	}
}

// WithContextBudget sets the maximum character budget of the generative
// context. Default is DefaultContextBudget.
func WithContextBudget(budget int) Option {
	return func(r *Retriever) error {
		if budget < 1 {
			budget = DefaultContextBudget
		}
		r.contextBudget = budget
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRetriever creates a retriever over a built index and its chunk
// sequence. Row i of the index must correspond to chunks[i].
func NewRetriever(idx *index.Flat, chunks []core.Chunk, embedder ai.Embedder, opts ...Option) (*Retriever, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if idx.Len() != len(chunks) {
		return nil, ErrChunkCountMismatch
	}

	r := &Retriever{
		idx:           idx,
		chunks:        chunks,
		embedder:      embedder,
		topK:          DefaultTopK,
		contextBudget: DefaultContextBudget,
		logger:        slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Retrieve embeds the query, searches the index, applies definitional
// re-ranking, and assembles the context. Returns
// core.ErrNoRelevantContext when the index holds no chunks.
func (r *Retriever) Retrieve(ctx context.Context, query string) (*core.Retrieval, error) {
	vector, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	hits, err := r.idx.Search(vector, r.topK)
	if err != nil {
		r.logger.Error("error searching index", "err", err)
		return nil, err
	}
	if len(hits) == 0 {
		return nil, core.ErrNoRelevantContext
	}

	// Confidence is the raw top-1 score; re-ranking below only affects
	// context composition.
	topScore := hits[0].Score

	ranked := make([]core.ScoredChunk, len(hits))
	for i, hit := range hits {
		ranked[i] = core.ScoredChunk{Chunk: r.chunks[hit.Row], Score: hit.Score}
	}

	if isDefinitional(query) {
		ranked = promoteDefinitional(ranked)
		r.logger.Debug("applied definitional re-ranking", "query", query)
	}

	full := joinChunks(ranked)
	bounded := truncate(full, r.contextBudget)

	r.logger.Debug("retrieved context",
		"chunks", len(ranked),
		"topScore", topScore,
		"contextLength", len(bounded))

	return &core.Retrieval{
		Chunks:      ranked,
		Context:     bounded,
		FullContext: full,
		TopScore:    topScore,
	}, nil
}

// isDefinitional reports whether the query asks for a definition.
func isDefinitional(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.HasPrefix(q, "what is") || strings.HasPrefix(q, "define")
}

// promoteDefinitional partitions ranked chunks into two buckets: chunks
// containing definitional phrasing first, the rest after. Relative rank
// is preserved within each bucket.
func promoteDefinitional(ranked []core.ScoredChunk) []core.ScoredChunk {
	definitional := make([]core.ScoredChunk, 0, len(ranked))
	rest := make([]core.ScoredChunk, 0, len(ranked))

	for _, sc := range ranked {
		if hasDefinitionalPhrase(sc.Chunk.Text) {
			definitional = append(definitional, sc)
		} else {
			rest = append(rest, sc)
		}
	}
	return append(definitional, rest...)
}

func hasDefinitionalPhrase(text string) bool {
	t := strings.ToLower(text)
	return strings.Contains(t, " is a ") || strings.Contains(t, " is an ")
}

func joinChunks(ranked []core.ScoredChunk) string {
	parts := make([]string, len(ranked))
	for i, sc := range ranked {
		parts[i] = sc.Chunk.Text
	}
	return strings.Join(parts, ChunkSeparator)
}

// truncate cuts s to at most budget bytes without splitting a rune, so
// the bounded context is always valid UTF-8.
func truncate(s string, budget int) string {
	if len(s) <= budget {
		return s
	}
	cut := budget
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
