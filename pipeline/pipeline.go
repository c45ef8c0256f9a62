// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pipeline orchestrates document processing and question
// answering: chunking, embedding (with optional caching), indexing,
// retrieval, and answer composition over one document at a time.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docqa/ai"
	"github.com/poiesic/docqa/answer"
	"github.com/poiesic/docqa/chunker"
	"github.com/poiesic/docqa/core"
	"github.com/poiesic/docqa/index"
	"github.com/poiesic/docqa/retrieve"
	"github.com/poiesic/docqa/storage"
)

// embedBatchSize is the number of chunk texts sent to the embedder in
// one call. Batches are embedded concurrently on the worker pool.
const embedBatchSize = 16

// session holds the state built for one processed document.
type session struct {
	chunks    []core.Chunk
	retriever *retrieve.Retriever
}

// Pipeline wires the document question answering stages together. It is
// safe for concurrent use; processing a new document replaces the
// previous session atomically.
type Pipeline struct {
	chunker        chunker.Chunker
	provider       ai.AIProvider
	cache          storage.EmbeddingCache
	composer       *answer.Composer
	scorer         *answer.ConfidenceScorer
	embedPool      *ants.Pool
	embeddingSpace string
	topK           int
	contextBudget  int
	logger         *slog.Logger

	mu      sync.RWMutex
	session *session
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embedPool != nil {
			p.embedPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.embedPool = pool
		return nil
	}
}

// WithChunker sets the chunking strategy. Default is a sliding window
// with the package defaults.
func WithChunker(c chunker.Chunker) Option {
	return func(p *Pipeline) error {
		if c == nil {
			return ErrChunkerRequired
		}
		p.chunker = c
		return nil
	}
}

// WithCache enables the embedding cache. Without it every Process call
// embeds from scratch.
func WithCache(cache storage.EmbeddingCache) Option {
	return func(p *Pipeline) error {
		p.cache = cache
		return nil
	}
}

// WithEmbeddingSpace names the embedding configuration (model, prefix
// mode) for cache keying. Entries written under one space never hit
// under another, so switching models invalidates instead of reusing
// stale vectors.
func WithEmbeddingSpace(space string) Option {
	return func(p *Pipeline) error {
		p.embeddingSpace = space
		return nil
	}
}

// WithTopK sets the number of chunks retrieved per question.
func WithTopK(k int) Option {
	return func(p *Pipeline) error {
		p.topK = k
		return nil
	}
}

// WithContextBudget sets the character budget for the prompt context.
func WithContextBudget(budget int) Option {
	return func(p *Pipeline) error {
		p.contextBudget = budget
		return nil
	}
}

// WithConfidenceScorer replaces the default confidence scorer.
func WithConfidenceScorer(scorer *answer.ConfidenceScorer) Option {
	return func(p *Pipeline) error {
		if scorer == nil {
			return answer.ErrInvalidThresholds
		}
		p.scorer = scorer
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a question answering pipeline around the given
// AI provider.
func NewPipeline(provider ai.AIProvider, opts ...Option) (*Pipeline, error) {
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	defaultChunker, err := chunker.NewSlidingWindow(chunker.DefaultChunkSize, chunker.DefaultOverlap)
	if err != nil {
		pool.Release()
		return nil, err
	}

	p := &Pipeline{
		chunker:       defaultChunker,
		provider:      provider,
		scorer:        answer.NewConfidenceScorer(),
		embedPool:     pool,
		topK:          retrieve.DefaultTopK,
		contextBudget: retrieve.DefaultContextBudget,
		logger:        slog.Default().With("component", "pipeline"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	composer, err := answer.NewComposer(provider.Generator(), answer.WithLogger(p.logger))
	if err != nil {
		p.Release()
		return nil, err
	}
	p.composer = composer

	return p, nil
}

// Process chunks and indexes the document text, replacing any previous
// session. It returns the number of chunks built.
func (p *Pipeline) Process(ctx context.Context, text string) (int, error) {
	if err := core.ValidateDocumentText(text); err != nil {
		return 0, err
	}

	chunks, err := p.chunker.Chunk(text)
	if err != nil {
		return 0, err
	}
	if len(chunks) == 0 {
		return 0, core.ErrNoChunks
	}

	vectors, err := p.embedChunks(ctx, chunks)
	if err != nil {
		return 0, fmt.Errorf("embed document: %w", err)
	}

	idx, err := index.Build(vectors)
	if err != nil {
		return 0, fmt.Errorf("build index: %w", err)
	}

	retriever, err := retrieve.NewRetriever(idx, chunks, p.provider.Embedder(),
		retrieve.WithTopK(p.topK),
		retrieve.WithContextBudget(p.contextBudget),
		retrieve.WithLogger(p.logger))
	if err != nil {
		return 0, err
	}

	p.mu.Lock()
	p.session = &session{chunks: chunks, retriever: retriever}
	p.mu.Unlock()

	p.logger.Info("document processed", "chunks", len(chunks))
	return len(chunks), nil
}

// Ask answers a question against the most recently processed document.
func (p *Pipeline) Ask(ctx context.Context, question string) (*core.Answer, error) {
	p.mu.RLock()
	sess := p.session
	p.mu.RUnlock()

	if sess == nil {
		return nil, core.ErrNoDocument
	}

	retrieval, err := sess.retriever.Retrieve(ctx, question)
	if err != nil {
		return nil, err
	}

	ans, err := p.composer.Compose(ctx, retrieval, question)
	if err != nil {
		return nil, err
	}

	ans.Score = retrieval.TopScore
	ans.Label = p.scorer.Label(retrieval.TopScore)
	return ans, nil
}

// ChunkCount reports the number of chunks in the current session, or
// zero if no document has been processed.
func (p *Pipeline) ChunkCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.session == nil {
		return 0
	}
	return len(p.session.chunks)
}

// embedChunks returns one vector per chunk, consulting the cache first
// when one is configured. Cache failures are logged and treated as
// misses.
func (p *Pipeline) embedChunks(ctx context.Context, chunks []core.Chunk) ([][]float32, error) {
	fp := core.FingerprintEmbedding(p.embeddingSpace, chunks)

	if p.cache != nil {
		vectors, found, err := p.cache.Get(ctx, fp)
		if err != nil {
			p.logger.Warn("embedding cache read failed", "fingerprint", fp, "err", err)
		} else if found && len(vectors) == len(chunks) {
			p.logger.Debug("embedding cache hit", "fingerprint", fp)
			return vectors, nil
		}
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := p.embedBatches(ctx, texts)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Put(ctx, fp, vectors); err != nil {
			p.logger.Warn("embedding cache write failed", "fingerprint", fp, "err", err)
		}
	}

	return vectors, nil
}

// embedBatches embeds texts in fixed-size batches submitted to the
// worker pool, preserving input order in the result.
func (p *Pipeline) embedBatches(ctx context.Context, texts []string) ([][]float32, error) {
	embedder := p.provider.Embedder()
	vectors := make([][]float32, len(texts))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for start := 0; start < len(texts); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		offset := start
		batch := texts[start:end]

		wg.Add(1)
		submitErr := p.embedPool.Submit(func() {
			defer wg.Done()
			embedded, err := embedder.EmbedPassages(ctx, batch)
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			if len(embedded) != len(batch) {
				errOnce.Do(func() { firstErr = ErrEmbeddingCountMismatch })
				return
			}
			copy(vectors[offset:], embedded)
		})
		if submitErr != nil {
			wg.Done()
			errOnce.Do(func() { firstErr = submitErr })
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return vectors, nil
}

// Release releases the worker pool. The pipeline should not be used
// after calling Release.
func (p *Pipeline) Release() {
	if p.embedPool != nil {
		p.embedPool.Release()
	}
}
