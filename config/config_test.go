package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, StrategySlidingWindow, cfg.Chunking.Strategy)
	assert.Equal(t, 600, cfg.Chunking.ChunkSize)
	assert.Equal(t, 150, cfg.Chunking.OverlapValue())
	assert.Equal(t, 5, cfg.Retrieval.TopK)
	assert.Equal(t, 1500, cfg.Retrieval.ContextBudget)
	assert.InDelta(t, 0.80, cfg.Confidence.HighThreshold, 1e-6)
	assert.InDelta(t, 0.65, cfg.Confidence.MediumThreshold, 1e-6)
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
chunking:
  strategy: paragraphs
  chunk_size: 800
retrieval:
  top_k: 3
ai:
  embedding_model: nomic-embed-text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StrategyParagraphs, cfg.Chunking.Strategy)
	assert.Equal(t, 800, cfg.Chunking.ChunkSize)
	assert.Equal(t, 150, cfg.Chunking.OverlapValue())
	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, 1500, cfg.Retrieval.ContextBudget)
	assert.Equal(t, "nomic-embed-text", cfg.AI.EmbeddingModel)
}

func intp(v int) *int {
	return &v
}

func TestLoad_ExplicitZeroOverlap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
chunking:
  overlap: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	// An explicit zero configures disjoint windows; it is not rewritten
	// to the default.
	assert.Equal(t, 0, cfg.Chunking.OverlapValue())
	require.NoError(t, cfg.Validate())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunking: [not: a map"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"unknown strategy", func(c *AppConfig) { c.Chunking.Strategy = "semantic" }},
		{"negative overlap", func(c *AppConfig) { c.Chunking.Overlap = intp(-1) }},
		{"overlap at chunk size", func(c *AppConfig) { c.Chunking.Overlap = intp(c.Chunking.ChunkSize) }},
		{"zero top_k", func(c *AppConfig) { c.Retrieval.TopK = -5 }},
		{"zero context budget", func(c *AppConfig) { c.Retrieval.ContextBudget = -1 }},
		{"inverted thresholds", func(c *AppConfig) {
			c.Confidence.HighThreshold = 0.4
			c.Confidence.MediumThreshold = 0.6
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestAppConfig_AIOptions(t *testing.T) {
	cfg := Default()
	cfg.AI.EmbeddingHost = "http://models.internal:8080"
	cfg.AI.RolePrefixes = true

	opts := cfg.AIOptions()
	// One option per populated field plus the role prefix toggle.
	assert.Len(t, opts, 2)
}
