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


// Package docqa answers questions about a document using retrieval
// augmented generation over local OpenAI-compatible models.
package docqa

import (
	"context"
	"log/slog"

	"github.com/poiesic/docqa/ai"
	"github.com/poiesic/docqa/ai/openai"
	"github.com/poiesic/docqa/answer"
	"github.com/poiesic/docqa/chunker"
	"github.com/poiesic/docqa/config"
	"github.com/poiesic/docqa/core"
	"github.com/poiesic/docqa/loader"
	"github.com/poiesic/docqa/pipeline"
	"github.com/poiesic/docqa/storage/badger"
)

// Engine bundles the document loader, embedding cache, AI provider, and
// question answering pipeline behind one handle.
type Engine struct {
	cache    *badger.EmbeddingCache
	provider ai.AIProvider
	pipeline *pipeline.Pipeline
	loader   *loader.Loader
	logger   *slog.Logger
}

// EngineOption configures engine construction.
type EngineOption func(*engineOptions)

type engineOptions struct {
	provider ai.AIProvider
}

// WithAIProvider substitutes the AI provider, bypassing the configured
// OpenAI-compatible endpoints. Intended for tests.
func WithAIProvider(provider ai.AIProvider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// NewEngine builds an engine from the application configuration. A nil
// cfg uses the defaults.
func NewEngine(cfg *config.AppConfig, opts ...EngineOption) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Open the embedding cache. An empty path keeps it in memory. The
	// cache owns its backend and closes it.
	var (
		cache *badger.EmbeddingCache
		err   error
	)
	if cfg.Storage.CachePath != "" {
		backend, berr := badger.OpenBackend(cfg.Storage.CachePath, false)
		if berr != nil {
			return nil, berr
		}
		cache, err = badger.NewEmbeddingCache(backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
	} else {
		cache, err = badger.NewMemoryCache()
		if err != nil {
			return nil, err
		}
	}

	aiCfg := ai.NewConfig(cfg.AIOptions()...)
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(aiCfg)
		if err != nil {
			cache.Close()
			return nil, err
		}
	}

	docChunker, err := NewChunker(cfg)
	if err != nil {
		cache.Close()
		return nil, err
	}

	scorer, err := answer.NewConfidenceScorerWithThresholds(
		cfg.Confidence.HighThreshold, cfg.Confidence.MediumThreshold)
	if err != nil {
		cache.Close()
		return nil, err
	}

	pipe, err := pipeline.NewPipeline(provider,
		pipeline.WithChunker(docChunker),
		pipeline.WithCache(cache),
		pipeline.WithEmbeddingSpace(embeddingSpace(aiCfg)),
		pipeline.WithTopK(cfg.Retrieval.TopK),
		pipeline.WithContextBudget(cfg.Retrieval.ContextBudget),
		pipeline.WithConfidenceScorer(scorer))
	if err != nil {
		cache.Close()
		return nil, err
	}

	return &Engine{
		cache:    cache,
		provider: provider,
		pipeline: pipe,
		loader:   loader.NewLoader(),
		logger:   slog.Default(),
	}, nil
}

// embeddingSpace names the embedding configuration for cache keying, so
// a persistent cache written under one model never serves another.
func embeddingSpace(cfg *ai.Config) string {
	if cfg.RolePrefixes {
		return cfg.EmbeddingModel + "+prefixed"
	}
	return cfg.EmbeddingModel
}

// NewChunker builds the chunking strategy named by the configuration.
func NewChunker(cfg *config.AppConfig) (chunker.Chunker, error) {
	switch cfg.Chunking.Strategy {
	case config.StrategyParagraphs:
		return chunker.NewParagraphs(cfg.Chunking.ChunkSize)
	default:
		return chunker.NewSlidingWindow(cfg.Chunking.ChunkSize, cfg.Chunking.OverlapValue())
	}
}

// ProcessFile loads the document at path and processes it. It returns
// the number of chunks built.
func (e *Engine) ProcessFile(ctx context.Context, path string) (int, error) {
	text, err := e.loader.Load(path)
	if err != nil {
		return 0, err
	}
	return e.pipeline.Process(ctx, text)
}

// Process chunks and indexes the given document text.
func (e *Engine) Process(ctx context.Context, text string) (int, error) {
	return e.pipeline.Process(ctx, text)
}

// Ask answers a question against the processed document.
func (e *Engine) Ask(ctx context.Context, question string) (*core.Answer, error) {
	return e.pipeline.Ask(ctx, question)
}

// Pipeline exposes the underlying pipeline.
func (e *Engine) Pipeline() *pipeline.Pipeline {
	return e.pipeline
}

// Close releases the pipeline, AI provider, and cache.
func (e *Engine) Close() error {
	e.pipeline.Release()

	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}

	if err := e.cache.Close(); err != nil {
		e.logger.Error("error closing embedding cache", "err", err)
		return err
	}
	return nil
}
