package port

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/port_prober_mock.go -package=mock

// Prober checks whether a port can be bound.
type Prober interface {
	// Probe returns nil when host:port is free, an error wrapping
	// [ErrPortInUse] when it is taken, and any other error for failures
	// that retrying a different port will not fix.
	Probe(ctx context.Context, host string, port int) error
}
