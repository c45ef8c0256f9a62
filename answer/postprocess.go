package answer

import (
	"regexp"
	"strings"
)

var (
	numberedToken  = regexp.MustCompile(`(\d+)\.\s`)
	trailingSpaces = regexp.MustCompile(` +\n`)
	blankLineRuns  = regexp.MustCompile(`\n{3,}`)
)

// postprocess cleans generated output: collapses doubled spaces, puts
// every numbered item on its own line, and collapses runs of blank lines.
func postprocess(text string) string {
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}

	text = numberedToken.ReplaceAllString(text, "\n$1. ")
	text = trailingSpaces.ReplaceAllString(text, "\n")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
