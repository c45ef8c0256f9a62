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


// Package chunker splits raw document text into retrievable segments.
//
// Two strategies are provided. The sliding-window strategy advances a
// fixed-size character window with overlap and filters out windows too
// short to be informative. The paragraph-aware strategy packs whole
// paragraphs greedily and is lossless over non-empty paragraphs.
package chunker

import (
	"strings"

	"github.com/poiesic/docqa/core"
)

// Chunker splits document text into an ordered chunk sequence.
type Chunker interface {
	// Chunk splits text into chunks. Empty or whitespace-only input
	// yields an empty sequence and no error.
	Chunk(text string) ([]core.Chunk, error)
}

// SlidingWindow splits text into fixed-size overlapping windows.
// Windows whose stripped length does not exceed minLength are discarded
// as noise (tables of contents, page furniture).
type SlidingWindow struct {
	chunkSize int
	overlap   int
	minLength int
}

// NewSlidingWindow creates a sliding-window chunker.
// Overlap must be strictly less than chunkSize to guarantee progress;
// otherwise ErrInvalidOverlap is returned.
func NewSlidingWindow(chunkSize, overlap int) (*SlidingWindow, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, ErrInvalidOverlap
	}
	return &SlidingWindow{
		chunkSize: chunkSize,
		overlap:   overlap,
		minLength: DefaultMinChunkLength,
	}, nil
}

// Chunk implements Chunker.
func (s *SlidingWindow) Chunk(text string) ([]core.Chunk, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	runes := []rune(text)
	step := s.chunkSize - s.overlap

	var chunks []core.Chunk
	for start := 0; start < len(runes); start += step {
		end := start + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		window := string(runes[start:end])

		// Skip windows too short to be informative
		if len(strings.TrimSpace(window)) > s.minLength {
			chunks = append(chunks, core.Chunk{Index: len(chunks), Text: window})
		}
	}
	return chunks, nil
}

// Paragraphs greedily packs consecutive paragraphs into chunks of at most
// chunkSize characters. A paragraph longer than chunkSize becomes a chunk
// of its own; no paragraph content is ever dropped.
type Paragraphs struct {
	chunkSize int
}

// NewParagraphs creates a paragraph-aware chunker.
func NewParagraphs(chunkSize int) (*Paragraphs, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	return &Paragraphs{chunkSize: chunkSize}, nil
}

// Chunk implements Chunker.
func (p *Paragraphs) Chunk(text string) ([]core.Chunk, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var chunks []core.Chunk
	var acc strings.Builder

	flush := func() {
		if acc.Len() == 0 {
			return
		}
		chunks = append(chunks, core.Chunk{Index: len(chunks), Text: acc.String()})
		acc.Reset()
	}

	for _, para := range splitParagraphs(text) {
		// Overflow: flush the accumulator and start over with this paragraph
		if acc.Len() > 0 && acc.Len()+len(ParagraphSeparator)+len(para) > p.chunkSize {
			flush()
		}
		if acc.Len() > 0 {
			acc.WriteString(ParagraphSeparator)
		}
		acc.WriteString(para)
	}
	flush()

	return chunks, nil
}

// splitParagraphs splits text on blank-line boundaries, dropping empty
// paragraphs and trimming surrounding whitespace.
func splitParagraphs(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(normalized, "\n\n")

	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			paragraphs = append(paragraphs, part)
		}
	}
	return paragraphs
}
