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

// Package config loads the application configuration from YAML with
// sensible defaults for every field, so an absent file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/docqa/ai"
	"github.com/poiesic/docqa/answer"
	"github.com/poiesic/docqa/chunker"
	"github.com/poiesic/docqa/retrieve"
)

// ChunkingConfig configures how documents are split into chunks.
// Overlap is a pointer so that an explicit "overlap: 0" (disjoint
// windows) is distinguishable from an omitted field.
type ChunkingConfig struct {
	Strategy  string `yaml:"strategy"`
	ChunkSize int    `yaml:"chunk_size"`
	Overlap   *int   `yaml:"overlap"`
}

// OverlapValue returns the configured overlap, or the package default
// when the field was omitted.
func (c *ChunkingConfig) OverlapValue() int {
	if c.Overlap == nil {
		return chunker.DefaultOverlap
	}
	return *c.Overlap
}

// RetrievalConfig configures similarity search and context assembly.
type RetrievalConfig struct {
	TopK          int `yaml:"top_k"`
	ContextBudget int `yaml:"context_budget"`
}

// ConfidenceConfig holds the score thresholds for confidence labels.
type ConfidenceConfig struct {
	HighThreshold   float32 `yaml:"high_threshold"`
	MediumThreshold float32 `yaml:"medium_threshold"`
}

// AIConfig configures the OpenAI-compatible model endpoints.
type AIConfig struct {
	EmbeddingHost  string `yaml:"embedding_host"`
	GeneratorHost  string `yaml:"generator_host"`
	EmbeddingModel string `yaml:"embedding_model"`
	GeneratorModel string `yaml:"generator_model"`
	RolePrefixes   bool   `yaml:"role_prefixes"`
}

// StorageConfig configures the on-disk embedding cache. An empty path
// disables persistence and keeps the cache in memory.
type StorageConfig struct {
	CachePath string `yaml:"cache_path"`
}

// AppConfig is the root application configuration.
type AppConfig struct {
	Chunking   ChunkingConfig   `yaml:"chunking"`
	Retrieval  RetrievalConfig  `yaml:"retrieval"`
	Confidence ConfidenceConfig `yaml:"confidence"`
	AI         AIConfig         `yaml:"ai"`
	Storage    StorageConfig    `yaml:"storage"`
}

// Chunking strategy names accepted in the config file.
const (
	StrategySlidingWindow = "sliding_window"
	StrategyParagraphs    = "paragraphs"
)

// Load reads a config from path. If the file does not exist, defaults
// are returned.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *AppConfig {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	return cfg
}

// Validate checks the configuration for values the pipeline cannot use.
func (c *AppConfig) Validate() error {
	switch c.Chunking.Strategy {
	case StrategySlidingWindow, StrategyParagraphs:
	default:
		return fmt.Errorf("%w: unknown chunking strategy %q", ErrInvalidConfig, c.Chunking.Strategy)
	}
	if c.Chunking.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk_size must be positive", ErrInvalidConfig)
	}
	if ov := c.Chunking.OverlapValue(); ov < 0 || ov >= c.Chunking.ChunkSize {
		return fmt.Errorf("%w: overlap must be in [0, chunk_size)", ErrInvalidConfig)
	}
	if c.Retrieval.TopK <= 0 {
		return fmt.Errorf("%w: top_k must be positive", ErrInvalidConfig)
	}
	if c.Retrieval.ContextBudget <= 0 {
		return fmt.Errorf("%w: context_budget must be positive", ErrInvalidConfig)
	}
	if c.Confidence.HighThreshold < c.Confidence.MediumThreshold {
		return fmt.Errorf("%w: high_threshold below medium_threshold", ErrInvalidConfig)
	}
	return nil
}

// AIOptions converts the AI section into options for ai.NewConfig.
// Empty fields are skipped so the ai package defaults apply.
func (c *AppConfig) AIOptions() []ai.ConfigOption {
	var opts []ai.ConfigOption
	if c.AI.EmbeddingHost != "" {
		opts = append(opts, ai.WithEmbeddingHost(c.AI.EmbeddingHost))
	}
	if c.AI.GeneratorHost != "" {
		opts = append(opts, ai.WithGeneratorHost(c.AI.GeneratorHost))
	}
	if c.AI.EmbeddingModel != "" {
		opts = append(opts, ai.WithEmbeddingModel(c.AI.EmbeddingModel))
	}
	if c.AI.GeneratorModel != "" {
		opts = append(opts, ai.WithGeneratorModel(c.AI.GeneratorModel))
	}
	opts = append(opts, ai.WithRolePrefixes(c.AI.RolePrefixes))
	return opts
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Chunking.Strategy == "" {
		cfg.Chunking.Strategy = StrategySlidingWindow
	}
	if cfg.Chunking.ChunkSize == 0 {
		cfg.Chunking.ChunkSize = chunker.DefaultChunkSize
	}
	if cfg.Chunking.Overlap == nil {
		overlap := chunker.DefaultOverlap
		cfg.Chunking.Overlap = &overlap
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = retrieve.DefaultTopK
	}
	if cfg.Retrieval.ContextBudget == 0 {
		cfg.Retrieval.ContextBudget = retrieve.DefaultContextBudget
	}
	if cfg.Confidence.HighThreshold == 0 {
		cfg.Confidence.HighThreshold = answer.DefaultHighThreshold
	}
	if cfg.Confidence.MediumThreshold == 0 {
		cfg.Confidence.MediumThreshold = answer.DefaultMediumThreshold
	}
}
