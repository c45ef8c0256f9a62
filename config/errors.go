package config

import "errors"

// ErrInvalidConfig indicates a configuration value the pipeline cannot
// use. The wrapping error names the offending field.
var ErrInvalidConfig = errors.New("invalid configuration")
