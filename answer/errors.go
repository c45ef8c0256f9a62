package answer

import "errors"

var (
	// ErrGeneratorRequired is returned when a generator is not provided.
	ErrGeneratorRequired = errors.New("generator required")

	// ErrInvalidThresholds is returned when confidence thresholds are not
	// ordered high >= medium.
	ErrInvalidThresholds = errors.New("high threshold must not be below medium threshold")
)
