package answer

import (
	"testing"

	"github.com/poiesic/docqa/core"
	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		question string
		want     core.Intent
	}{
		{"What are the advantages?", core.IntentList},
		{"Disadvantages of the waterfall model", core.IntentList},
		{"List the phases of the spiral model", core.IntentList},
		{"Name all stakeholders", core.IntentList},
		{"Explain the spiral model", core.IntentExplanation},
		{"Describe risk analysis", core.IntentExplanation},
		{"Why is prototyping useful?", core.IntentExplanation},
		{"How does iteration work?", core.IntentExplanation},
		{"Compare spiral and waterfall", core.IntentExplanation},
		{"What is the spiral model?", core.IntentShort},
		{"Define verification", core.IntentShort},
		// "advantages" outranks the explanation keywords
		{"Explain the advantages", core.IntentList},
		// "all" outranks "how"
		{"How do all phases connect?", core.IntentList},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.question))
		})
	}
}
