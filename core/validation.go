package core

import "strings"

// ValidateDocumentText checks that extracted document text is usable.
// Returns ErrEmptyDocument for empty or whitespace-only input.
func ValidateDocumentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyDocument
	}
	return nil
}
