package ai

// GenerationOptions controls decoding for a single generation call.
// The pipeline favors deterministic, repetition-suppressed decoding over
// sampling, since small generative models loop easily on retrieval
// contexts. Providers map these onto whatever knobs their API exposes.
type GenerationOptions struct {
	// MaxTokens bounds the length of the generated continuation.
	MaxTokens int

	// RepetitionPenalty discourages re-emitting recent tokens.
	// Values > 1.0 penalize repetition; 1.0 disables the penalty.
	RepetitionPenalty float64

	// FrequencyPenalty discourages repeated phrases proportionally to how
	// often they already occurred. Stands in for an n-gram repeat block on
	// APIs that have no direct equivalent.
	FrequencyPenalty float64
}

// DefaultGenerationOptions returns conservative decoding defaults.
func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{
		MaxTokens:         200,
		RepetitionPenalty: 1.2,
		FrequencyPenalty:  0.5,
	}
}
