package port

import (
	"errors"
	"fmt"
)

var (
	// ErrPortInUse is reported by a [Prober] for a taken port.
	ErrPortInUse = errors.New("port in use")
	// ErrPortExhausted is returned when no free port was found within the
	// attempt bound.
	ErrPortExhausted = errors.New("no free port found")
	// ErrAlreadyNegotiated is returned when Negotiate is called on a
	// negotiator that has already started.
	ErrAlreadyNegotiated = errors.New("port negotiation already started")

	errPortRangeEnd = errors.New("end of port range")
)

// ExhaustionError reports the range that was probed without success.
type ExhaustionError struct {
	Start    int
	Attempts int
	Err      error
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("%s: probed %d port(s) from %d: %v", ErrPortExhausted, e.Attempts, e.Start, e.Err)
}

func (e *ExhaustionError) Unwrap() []error {
	return []error{ErrPortExhausted, e.Err}
}
