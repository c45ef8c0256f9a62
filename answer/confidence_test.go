package answer

import (
	"testing"

	"github.com/poiesic/docqa/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidenceScorer_Label(t *testing.T) {
	scorer := NewConfidenceScorer()

	tests := []struct {
		score float32
		want  core.ConfidenceLabel
	}{
		{0.90, core.ConfidenceHigh},
		{0.81, core.ConfidenceHigh},
		{0.70, core.ConfidenceMedium},
		{0.66, core.ConfidenceMedium},
		{0.50, core.ConfidenceLow},
		{0.0, core.ConfidenceLow},
		{-0.3, core.ConfidenceLow},
		// Thresholds are exclusive lower bounds for the higher tier
		{0.80, core.ConfidenceMedium},
		{0.65, core.ConfidenceLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scorer.Label(tt.score), "score %v", tt.score)
	}
}

func TestNewConfidenceScorerWithThresholds(t *testing.T) {
	t.Run("custom thresholds", func(t *testing.T) {
		scorer, err := NewConfidenceScorerWithThresholds(0.9, 0.5)
		require.NoError(t, err)
		assert.Equal(t, core.ConfidenceHigh, scorer.Label(0.95))
		assert.Equal(t, core.ConfidenceMedium, scorer.Label(0.6))
		assert.Equal(t, core.ConfidenceLow, scorer.Label(0.4))
	})

	t.Run("inverted thresholds rejected", func(t *testing.T) {
		_, err := NewConfidenceScorerWithThresholds(0.5, 0.9)
		assert.Equal(t, ErrInvalidThresholds, err)
	})
}
