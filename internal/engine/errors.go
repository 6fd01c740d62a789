package engine

import (
	"errors"
	"fmt"
)

var (
	ErrBuildFailed   = errors.New("build failed with errors")
	ErrEngineFailure = errors.New("build engine failure")
	ErrNoStats       = errors.New("build engine returned no stats")
)

// FailureError is returned when the engine answers with a non-2xx status.
type FailureError struct {
	StatusCode int
	Body       string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("%s: http %d: %s", ErrEngineFailure, e.StatusCode, e.Body)
}

func (e *FailureError) Unwrap() error {
	return ErrEngineFailure
}
