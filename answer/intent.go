package answer

import (
	"strings"

	"github.com/poiesic/docqa/core"
)

// ClassifyIntent categorizes a question to select the composition
// strategy. Rules are evaluated in order on the lower-cased question;
// the first match wins.
func ClassifyIntent(question string) core.Intent {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "advantages") || strings.Contains(q, "disadvantages"):
		return core.IntentList
	case strings.Contains(q, "list") || strings.Contains(q, "all"):
		return core.IntentList
	case strings.Contains(q, "explain") || strings.Contains(q, "describe") ||
		strings.Contains(q, "why") || strings.Contains(q, "how") ||
		strings.Contains(q, "compare"):
		return core.IntentExplanation
	default:
		return core.IntentShort
	}
}
