package services

import "errors"

// Failure kinds surfaced to the HTTP layer. Provider detail stays in the wrapped error
// and is only ever logged.
var (
	ErrMissingField     = errors.New("missing required field")
	ErrGenerationFailed = errors.New("generation failed")
	ErrStorageFailed    = errors.New("storage failed")
)
