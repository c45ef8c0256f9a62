package answer

import (
	"fmt"

	"github.com/poiesic/docqa/core"
)

// FallbackPhrase is the fixed phrase the model is instructed to emit when
// the answer is not present in the context.
const FallbackPhrase = "The answer is not available in the provided context."

// NotAvailableMessage replaces empty or unusable model output.
const NotAvailableMessage = "The answer is not available in the provided document."

const promptTemplate = `You are a professional technical assistant.

%s
Use only the information provided in the context.
If the answer is not present in the context, reply exactly: "%s"

Context:
%s

Question:
%s

Answer:`

// intentInstruction returns the role-specific instruction for an intent.
func intentInstruction(intent core.Intent) string {
	switch intent {
	case core.IntentList:
		return "Answer with the complete numbered list from the context.\n" +
			"Preserve the original numbering.\n" +
			"Do not summarize or omit items."
	case core.IntentExplanation:
		return "Answer the question clearly and in complete sentences.\n" +
			"Structure the explanation into distinct points.\n" +
			"Do not repeat phrases."
	default:
		return "Answer the question clearly and in complete sentences.\n" +
			"Write a short definition of 2-3 sentences."
	}
}

// buildPrompt assembles the single prompt handed to the generator.
func buildPrompt(intent core.Intent, context, question string) string {
	return fmt.Sprintf(promptTemplate, intentInstruction(intent), FallbackPhrase, context, question)
}
