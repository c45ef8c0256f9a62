package answer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/docqa/ai"
	"github.com/poiesic/docqa/ai/mock"
	"github.com/poiesic/docqa/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retrievalFrom(full string) *core.Retrieval {
	bounded := full
	if len(bounded) > 1500 {
		bounded = bounded[:1500]
	}
	return &core.Retrieval{
		Context:     bounded,
		FullContext: full,
		TopScore:    0.9,
	}
}

func TestNewComposer(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		c, err := NewComposer(mock.NewMockGenerator())
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("nil generator", func(t *testing.T) {
		_, err := NewComposer(nil)
		assert.Equal(t, ErrGeneratorRequired, err)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		c, err := NewComposer(mock.NewMockGenerator(), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestCompose_ListExtraction(t *testing.T) {
	generator := mock.NewMockGenerator()
	c, err := NewComposer(generator)
	require.NoError(t, err)

	full := "Spiral Model.\nAdvantages of the Spiral Model\n1. Risk handling\n2. Flexibility\nDisadvantages\n1. Complex"
	answer, err := c.Compose(context.Background(), retrievalFrom(full), "What are the advantages?")
	require.NoError(t, err)

	assert.Equal(t, "1. Risk handling\n\n2. Flexibility", answer.Text)
	assert.Equal(t, core.IntentList, answer.Intent)
	assert.Equal(t, core.SourceExtracted, answer.Source)
	// Extraction never touches the generator
	assert.Equal(t, 0, generator.CallCount())
}

func TestCompose_ListExtractionUsesFullContext(t *testing.T) {
	generator := mock.NewMockGenerator()
	c, err := NewComposer(generator)
	require.NoError(t, err)

	// Items appear after the 1500-char truncation point, so only the
	// untruncated context can produce them.
	full := strings.Repeat("filler text ", 150) + "\nAdvantages\n1. Late item one\n2. Late item two"
	require.Greater(t, len(full), 1500)

	answer, err := c.Compose(context.Background(), retrievalFrom(full), "List the advantages")
	require.NoError(t, err)
	assert.Equal(t, core.SourceExtracted, answer.Source)
	assert.Contains(t, answer.Text, "Late item one")
}

func TestCompose_ListFallsBackToGeneration(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string, opts ai.GenerationOptions) (string, error) {
		return "The advantages are risk handling and flexibility.", nil
	}
	c, err := NewComposer(generator)
	require.NoError(t, err)

	answer, err := c.Compose(context.Background(), retrievalFrom("Prose without any enumeration."), "What are the advantages?")
	require.NoError(t, err)

	assert.Equal(t, core.SourceGenerated, answer.Source)
	assert.Equal(t, 1, generator.CallCount())
	assert.Equal(t, "The advantages are risk handling and flexibility.", answer.Text)
}

func TestCompose_PromptContainsContextAndQuestion(t *testing.T) {
	generator := mock.NewMockGenerator()
	c, err := NewComposer(generator)
	require.NoError(t, err)

	ret := retrievalFrom("The spiral model is a risk-driven process model.")
	_, err = c.Compose(context.Background(), ret, "What is the spiral model?")
	require.NoError(t, err)

	prompt := generator.LastPrompt()
	assert.Contains(t, prompt, ret.Context)
	assert.Contains(t, prompt, "What is the spiral model?")
	assert.Contains(t, prompt, FallbackPhrase)
}

func TestCompose_GenerationOptionsScaleWithIntent(t *testing.T) {
	longContext := strings.Repeat("c", ShortContextThreshold+100)
	shortContext := "short context"

	tests := []struct {
		name       string
		question   string
		context    string
		wantTokens int
	}{
		{"short intent", "What is X?", longContext, shortMaxTokens},
		{"explanation intent", "Explain X", longContext, explanationMaxTokens},
		{"list fallback", "List the things", longContext, listMaxTokens},
		{"short context halves budget", "Explain X", shortContext, explanationMaxTokens / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := mock.NewMockGenerator()
			c, err := NewComposer(generator)
			require.NoError(t, err)

			_, err = c.Compose(context.Background(), retrievalFrom(tt.context), tt.question)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTokens, generator.LastOptions().MaxTokens)
		})
	}
}

func TestCompose_GenerationFailureIsRecovered(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string, opts ai.GenerationOptions) (string, error) {
		return "", errors.New("model exploded")
	}
	c, err := NewComposer(generator)
	require.NoError(t, err)

	answer, err := c.Compose(context.Background(), retrievalFrom("some context"), "What is X?")
	require.NoError(t, err)
	assert.Equal(t, NotAvailableMessage, answer.Text)
	assert.Equal(t, core.SourceFallback, answer.Source)
}

func TestCompose_EmptyOutputIsReplaced(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string, opts ai.GenerationOptions) (string, error) {
		return "   \n ", nil
	}
	c, err := NewComposer(generator)
	require.NoError(t, err)

	answer, err := c.Compose(context.Background(), retrievalFrom("some context"), "What is X?")
	require.NoError(t, err)
	assert.Equal(t, NotAvailableMessage, answer.Text)
	assert.Equal(t, core.SourceFallback, answer.Source)
}

func TestCompose_OutputIsPostprocessed(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string, opts ai.GenerationOptions) (string, error) {
		return "Points:  1. First 2. Second", nil
	}
	c, err := NewComposer(generator)
	require.NoError(t, err)

	answer, err := c.Compose(context.Background(), retrievalFrom("ctx"), "Explain X")
	require.NoError(t, err)
	assert.Equal(t, "Points:\n1. First\n2. Second", answer.Text)
}
