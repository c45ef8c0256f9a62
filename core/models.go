package core

import (
	"encoding/binary"
	"hash"
	"strconv"

	"github.com/go-crypt/x/blake2b"
)

// Chunk is a contiguous segment of document text, the unit of retrieval.
// Chunks are created once per document and immutable thereafter.
type Chunk struct {
	Index int // position in the original chunk sequence
	Text  string
}

// ScoredChunk pairs a chunk with its cosine similarity to a query.
type ScoredChunk struct {
	Chunk Chunk
	Score float32
}

// Retrieval is the outcome of one retrieval round for a query.
type Retrieval struct {
	// Chunks are the retrieved chunks in context order, which may differ
	// from rank order after intent-aware re-ranking.
	Chunks []ScoredChunk

	// Context is the assembled context truncated to the generative budget.
	Context string

	// FullContext is the untruncated concatenation. List extraction reads
	// this one, since truncation can cut enumerated items mid-list.
	FullContext string

	// TopScore is the similarity of the top-ranked chunk before any
	// re-ranking. It reflects raw retrieval quality.
	TopScore float32
}

// Intent categorizes a question to select the answer-composition strategy.
type Intent int

const (
	// IntentShort asks for a brief definition or fact.
	IntentShort Intent = iota + 1
	// IntentList asks for an enumeration.
	IntentList
	// IntentExplanation asks for a structured multi-point explanation.
	IntentExplanation
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case IntentShort:
		return "short"
	case IntentList:
		return "list"
	case IntentExplanation:
		return "explanation"
	}
	return "unknown"
}

// AnswerSource records how an answer was produced.
type AnswerSource int

const (
	// SourceExtracted means the answer was extracted deterministically.
	SourceExtracted AnswerSource = iota + 1
	// SourceGenerated means the generative collaborator produced the answer.
	SourceGenerated
	// SourceFallback means a fixed placeholder replaced unusable output.
	SourceFallback
)

// ConfidenceLabel is a presentational grade of retrieval quality.
type ConfidenceLabel string

const (
	ConfidenceHigh   ConfidenceLabel = "High"
	ConfidenceMedium ConfidenceLabel = "Medium"
	ConfidenceLow    ConfidenceLabel = "Low"
)

// Answer is the final response to a query.
type Answer struct {
	Text    string
	Intent  Intent
	Source  AnswerSource
	Score   float32         // top-1 retrieval similarity
	Label   ConfidenceLabel // derived from Score
	Context string          // assembled context, for display and audit
}

// Fingerprint identifies a chunk sequence by content.
// Identical sequences always produce identical fingerprints, which keys
// the embedding cache.
type Fingerprint uint64

// FingerprintChunks computes a deterministic fingerprint of a chunk
// sequence using BLAKE2b hashing. Each chunk text is length-framed so
// that different splits of the same text cannot collide.
func FingerprintChunks(chunks []Chunk) Fingerprint {
	return FingerprintEmbedding("", chunks)
}

// FingerprintEmbedding computes a fingerprint of a chunk sequence within
// an embedding space. The space identifies the embedding configuration
// (model name, prefix mode), so vectors cached under one model are never
// served for another even when the chunk texts match.
func FingerprintEmbedding(space string, chunks []Chunk) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	writeFramed(h, space)
	for _, c := range chunks {
		writeFramed(h, c.Text)
	}
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// writeFramed hashes s prefixed with its length, so adjacent fields
// cannot collide across different splits.
func writeFramed(h hash.Hash, s string) {
	var frame [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(frame[:], uint64(len(s)))
	h.Write(frame[:n])
	h.Write([]byte(s))
}

// String renders the fingerprint as a decimal key component.
func (f Fingerprint) String() string {
	return strconv.FormatUint(uint64(f), 10)
}
