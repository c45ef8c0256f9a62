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


// Package answer composes grounded answers from retrieved context.
//
// Composition is hybrid: list questions are answered by deterministic
// extraction of numbered items when possible, and everything else (plus
// failed extraction) goes through the generative collaborator under a
// bounded, context-restricted prompt. Generation failures degrade to a
// fixed placeholder instead of propagating.
package answer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/docqa/ai"
	"github.com/poiesic/docqa/core"
)

// Token budgets per intent. Short contexts cannot support long answers,
// so budgets are halved below ShortContextThreshold.
const (
	shortMaxTokens       = 80
	listMaxTokens        = 220
	explanationMaxTokens = 200

	ShortContextThreshold = 400
)

// Composer builds answers from retrieved context.
type Composer struct {
	generator ai.Generator
	logger    *slog.Logger
}

// Option configures a Composer.
type Option func(*Composer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewComposer creates a new composer.
func NewComposer(generator ai.Generator, opts ...Option) (*Composer, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	c := &Composer{
		generator: generator,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Compose answers the question from the retrieval. List questions try
// deterministic extraction first, over the untruncated context; all other
// intents, and lists that yield no items, are generated from the bounded
// context.
func (c *Composer) Compose(ctx context.Context, retrieval *core.Retrieval, question string) (*core.Answer, error) {
	intent := ClassifyIntent(question)

	if intent == core.IntentList {
		if items, ok := ExtractNumberedList(retrieval.FullContext, question); ok {
			c.logger.Debug("answered by extraction", "question", question)
			return &core.Answer{
				Text:    postprocess(items),
				Intent:  intent,
				Source:  core.SourceExtracted,
				Context: retrieval.Context,
			}, nil
		}
		c.logger.Debug("extraction found no items, falling back to generation", "question", question)
	}

	return c.generate(ctx, retrieval, question, intent)
}

func (c *Composer) generate(ctx context.Context, retrieval *core.Retrieval, question string, intent core.Intent) (*core.Answer, error) {
	prompt := buildPrompt(intent, retrieval.Context, question)
	opts := generationOptions(intent, len(retrieval.Context))

	text, err := c.generator.Generate(ctx, prompt, opts)
	if err != nil {
		// Recovered locally: a failed generation must not invalidate the
		// built index or the query round.
		c.logger.Error("generation failed, substituting placeholder", "question", question, "err", err)
		return &core.Answer{
			Text:    NotAvailableMessage,
			Intent:  intent,
			Source:  core.SourceFallback,
			Context: retrieval.Context,
		}, nil
	}

	text = postprocess(text)
	if strings.TrimSpace(text) == "" {
		c.logger.Warn("generator returned empty output", "question", question)
		return &core.Answer{
			Text:    NotAvailableMessage,
			Intent:  intent,
			Source:  core.SourceFallback,
			Context: retrieval.Context,
		}, nil
	}

	return &core.Answer{
		Text:    text,
		Intent:  intent,
		Source:  core.SourceGenerated,
		Context: retrieval.Context,
	}, nil
}

// generationOptions tunes decoding to the intent and context length.
func generationOptions(intent core.Intent, contextLength int) ai.GenerationOptions {
	opts := ai.DefaultGenerationOptions()

	switch intent {
	case core.IntentList:
		opts.MaxTokens = listMaxTokens
	case core.IntentExplanation:
		opts.MaxTokens = explanationMaxTokens
	default:
		opts.MaxTokens = shortMaxTokens
	}

	if contextLength < ShortContextThreshold {
		opts.MaxTokens /= 2
	}

	return opts
}
