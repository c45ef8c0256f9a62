package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlidingWindow(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		c, err := NewSlidingWindow(600, 150)
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("zero chunk size", func(t *testing.T) {
		_, err := NewSlidingWindow(0, 0)
		assert.Equal(t, ErrInvalidChunkSize, err)
	})

	t.Run("overlap equal to chunk size", func(t *testing.T) {
		_, err := NewSlidingWindow(100, 100)
		assert.Equal(t, ErrInvalidOverlap, err)
	})

	t.Run("overlap larger than chunk size", func(t *testing.T) {
		_, err := NewSlidingWindow(100, 150)
		assert.Equal(t, ErrInvalidOverlap, err)
	})

	t.Run("negative overlap", func(t *testing.T) {
		_, err := NewSlidingWindow(100, -1)
		assert.Equal(t, ErrInvalidOverlap, err)
	})
}

func TestSlidingWindow_Chunk(t *testing.T) {
	t.Run("empty input yields no chunks", func(t *testing.T) {
		c, err := NewSlidingWindow(600, 150)
		require.NoError(t, err)

		chunks, err := c.Chunk("")
		require.NoError(t, err)
		assert.Empty(t, chunks)

		chunks, err = c.Chunk("  \n\t ")
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("windows respect size and overlap", func(t *testing.T) {
		c, err := NewSlidingWindow(600, 150)
		require.NoError(t, err)

		text := strings.Repeat("abcdefghij", 200) // 2000 chars
		chunks, err := c.Chunk(text)
		require.NoError(t, err)
		require.NotEmpty(t, chunks)

		for i, ch := range chunks {
			assert.LessOrEqual(t, len(ch.Text), 600)
			assert.Equal(t, i, ch.Index)
		}

		// Step is 450, so consecutive full windows share 150 chars.
		first := chunks[0].Text
		second := chunks[1].Text
		assert.Equal(t, first[450:], second[:150])
	})

	t.Run("short windows are filtered", func(t *testing.T) {
		c, err := NewSlidingWindow(600, 150)
		require.NoError(t, err)

		// 100 chars total: the only window strips to below the threshold.
		chunks, err := c.Chunk(strings.Repeat("x", 100))
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("chunk indexes are sequential after filtering", func(t *testing.T) {
		c, err := NewSlidingWindow(300, 0)
		require.NoError(t, err)

		// Dense text followed by trailing whitespace that produces a
		// filtered final window.
		text := strings.Repeat("a", 900) + strings.Repeat(" ", 250)
		chunks, err := c.Chunk(text)
		require.NoError(t, err)
		require.Len(t, chunks, 3)
		for i, ch := range chunks {
			assert.Equal(t, i, ch.Index)
		}
	})
}

func TestNewParagraphs(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		c, err := NewParagraphs(600)
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("zero chunk size", func(t *testing.T) {
		_, err := NewParagraphs(0)
		assert.Equal(t, ErrInvalidChunkSize, err)
	})
}

func TestParagraphs_Chunk(t *testing.T) {
	t.Run("empty input yields no chunks", func(t *testing.T) {
		c, err := NewParagraphs(600)
		require.NoError(t, err)

		chunks, err := c.Chunk("\n\n  \n\n")
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("packs consecutive paragraphs under the size limit", func(t *testing.T) {
		c, err := NewParagraphs(100)
		require.NoError(t, err)

		chunks, err := c.Chunk("first paragraph\n\nsecond paragraph\n\nthird paragraph")
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "first paragraph\n\nsecond paragraph\n\nthird paragraph", chunks[0].Text)
	})

	t.Run("flushes on overflow", func(t *testing.T) {
		c, err := NewParagraphs(40)
		require.NoError(t, err)

		chunks, err := c.Chunk("aaaaaaaaaaaaaaaaaaaa\n\nbbbbbbbbbbbbbbbbbbbb\n\ncc")
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, "aaaaaaaaaaaaaaaaaaaa", chunks[0].Text)
		assert.Equal(t, "bbbbbbbbbbbbbbbbbbbb\n\ncc", chunks[1].Text)
	})

	t.Run("oversized paragraph becomes its own chunk", func(t *testing.T) {
		c, err := NewParagraphs(10)
		require.NoError(t, err)

		big := strings.Repeat("y", 50)
		chunks, err := c.Chunk("short\n\n" + big + "\n\ntail")
		require.NoError(t, err)
		require.Len(t, chunks, 3)
		assert.Equal(t, big, chunks[1].Text)
	})

	t.Run("coverage: every paragraph appears in the output", func(t *testing.T) {
		c, err := NewParagraphs(80)
		require.NoError(t, err)

		paragraphs := []string{
			"The spiral model is a risk-driven software process model.",
			"Each loop of the spiral represents a phase of the process.",
			"Risk analysis drives the number of iterations.",
			"Prototypes are built at every phase.",
		}
		text := strings.Join(paragraphs, "\n\n")

		chunks, err := c.Chunk(text)
		require.NoError(t, err)
		require.NotEmpty(t, chunks)

		var joined strings.Builder
		for _, ch := range chunks {
			joined.WriteString(ch.Text)
			joined.WriteString("\n\n")
		}
		for _, p := range paragraphs {
			assert.Contains(t, joined.String(), p)
		}
	})

	t.Run("windows line endings", func(t *testing.T) {
		c, err := NewParagraphs(10)
		require.NoError(t, err)

		chunks, err := c.Chunk("one\r\n\r\ntwo")
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, "one", chunks[0].Text)
		assert.Equal(t, "two", chunks[1].Text)
	})
}
