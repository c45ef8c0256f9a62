package core

import (
	"testing"
)

func TestFingerprintChunks_Deterministic(t *testing.T) {
	chunks := []Chunk{
		{Index: 0, Text: "The spiral model is a risk-driven process model."},
		{Index: 1, Text: "It combines iterative development with systematic aspects."},
	}

	f1 := FingerprintChunks(chunks)
	f2 := FingerprintChunks(chunks)

	if f1 != f2 {
		t.Errorf("FingerprintChunks() produced different fingerprints for same sequence: %d vs %d", f1, f2)
	}
}

func TestFingerprintChunks_OrderSensitive(t *testing.T) {
	a := []Chunk{{Text: "alpha"}, {Text: "beta"}}
	b := []Chunk{{Text: "beta"}, {Text: "alpha"}}

	if FingerprintChunks(a) == FingerprintChunks(b) {
		t.Errorf("FingerprintChunks() ignored chunk order")
	}
}

func TestFingerprintChunks_FramingPreventsSplitCollisions(t *testing.T) {
	// "ab"+"c" and "a"+"bc" concatenate identically but are different splits.
	a := []Chunk{{Text: "ab"}, {Text: "c"}}
	b := []Chunk{{Text: "a"}, {Text: "bc"}}

	if FingerprintChunks(a) == FingerprintChunks(b) {
		t.Errorf("FingerprintChunks() collided on different splits of the same text")
	}
}

func TestFingerprintEmbedding_SpaceSeparatesModels(t *testing.T) {
	chunks := []Chunk{{Text: "alpha"}, {Text: "beta"}}

	a := FingerprintEmbedding("embeddinggemma", chunks)
	b := FingerprintEmbedding("nomic-embed-text", chunks)

	if a == b {
		t.Errorf("FingerprintEmbedding() collided across embedding spaces")
	}
}

func TestFingerprintEmbedding_SpaceAndChunksDoNotBleed(t *testing.T) {
	// The space is framed like a chunk text; it must not be confusable
	// with one.
	a := FingerprintEmbedding("alpha", []Chunk{{Text: "beta"}})
	b := FingerprintEmbedding("", []Chunk{{Text: "alpha"}, {Text: "beta"}})

	if a == b {
		t.Errorf("FingerprintEmbedding() collided between space and chunk content")
	}
}

func TestFingerprintChunks_Empty(t *testing.T) {
	f1 := FingerprintChunks(nil)
	f2 := FingerprintChunks([]Chunk{})

	if f1 != f2 {
		t.Errorf("FingerprintChunks() differed for nil and empty sequences")
	}
}

func TestIntent_String(t *testing.T) {
	tests := []struct {
		intent Intent
		want   string
	}{
		{IntentShort, "short"},
		{IntentList, "list"},
		{IntentExplanation, "explanation"},
		{Intent(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.intent.String(); got != tt.want {
			t.Errorf("Intent(%d).String() = %q, want %q", tt.intent, got, tt.want)
		}
	}
}

func TestValidateDocumentText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "normal text", text: "Some document contents.", wantErr: nil},
		{name: "empty", text: "", wantErr: ErrEmptyDocument},
		{name: "whitespace only", text: " \n\t  ", wantErr: ErrEmptyDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateDocumentText(tt.text); err != tt.wantErr {
				t.Errorf("ValidateDocumentText() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
