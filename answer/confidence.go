package answer

import "github.com/poiesic/docqa/core"

// Confidence label thresholds. Both bounds are exclusive: a score must
// strictly exceed the threshold to earn the higher label.
const (
	DefaultHighThreshold   = 0.80
	DefaultMediumThreshold = 0.65
)

// ConfidenceScorer maps a retrieval similarity score to a presentational
// label. Purely presentational, no side effects.
type ConfidenceScorer struct {
	high   float32
	medium float32
}

// NewConfidenceScorer creates a scorer with the default thresholds.
func NewConfidenceScorer() *ConfidenceScorer {
	return &ConfidenceScorer{
		high:   DefaultHighThreshold,
		medium: DefaultMediumThreshold,
	}
}

// NewConfidenceScorerWithThresholds creates a scorer with custom
// thresholds. The high threshold must not be below the medium one.
func NewConfidenceScorerWithThresholds(high, medium float32) (*ConfidenceScorer, error) {
	if high < medium {
		return nil, ErrInvalidThresholds
	}
	return &ConfidenceScorer{high: high, medium: medium}, nil
}

// Label grades a top-1 similarity score.
func (s *ConfidenceScorer) Label(score float32) core.ConfidenceLabel {
	switch {
	case score > s.high:
		return core.ConfidenceHigh
	case score > s.medium:
		return core.ConfidenceMedium
	default:
		return core.ConfidenceLow
	}
}
