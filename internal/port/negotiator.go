package port

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pack-config/internal/logger"
	"github.com/sethvargo/go-retry"
)

const (
	// DefaultMaxAttempts is used when a non-positive bound is configured.
	DefaultMaxAttempts = 100
	// DefaultProbeInterval is the pause between two probes.
	DefaultProbeInterval = time.Millisecond

	maxPort = 65535
)

// State is the negotiation state.
type State int

const (
	StateIdle State = iota
	StateProbing
	StateBound
	StateExhausted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProbing:
		return "probing"
	case StateBound:
		return "bound"
	case StateExhausted:
		return "exhausted"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Negotiator finds a free port near a preferred one. It is single-shot: the
// first Negotiate call runs to a terminal state and later calls fail with
// [ErrAlreadyNegotiated].
type Negotiator struct {
	prober      Prober
	host        string
	maxAttempts int
	interval    time.Duration
	logger      *logger.Logger

	mu      sync.Mutex
	state   State
	attempt int
	port    int
}

// Option customises a Negotiator.
type Option func(*Negotiator)

// WithProbeInterval sets the pause between probes. Non-positive values are
// ignored.
func WithProbeInterval(d time.Duration) Option {
	return func(n *Negotiator) {
		if d > 0 {
			n.interval = d
		}
	}
}

// NewNegotiator returns an idle negotiator that probes host with prober, at
// most maxAttempts times.
func NewNegotiator(prober Prober, host string, maxAttempts int, log *logger.Logger, opts ...Option) *Negotiator {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if log == nil {
		log = logger.Nop()
	}

	n := &Negotiator{
		prober:      prober,
		host:        host,
		maxAttempts: maxAttempts,
		interval:    DefaultProbeInterval,
		logger:      log,
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Negotiate probes upward from preferred and returns the first free port.
//
// A taken port moves on to the next one; any other probe failure is terminal
// and returned as is. When the attempt bound, the end of the port range or
// the context deadline is reached first, the returned error is an
// [ExhaustionError].
func (n *Negotiator) Negotiate(ctx context.Context, preferred int) (int, error) {
	if err := n.start(); err != nil {
		return 0, err
	}

	candidate := preferred
	attempts := 0

	backoff := retry.WithMaxRetries(uint64(n.maxAttempts-1), retry.NewConstant(n.interval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if candidate < 1 || candidate > maxPort {
			return errPortRangeEnd
		}

		attempts++
		n.setAttempt(attempts)

		err := n.prober.Probe(ctx, n.host, candidate)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrPortInUse) {
			return err
		}

		n.logger.Debug().
			Int("port", candidate).
			Int("attempt", attempts).
			Msg("port in use, probing next")
		candidate++

		return retry.RetryableError(err)
	})

	switch {
	case err == nil:
		n.finish(StateBound, candidate)
		n.logger.Info().Int("port", candidate).Int("attempts", attempts).Msg("port negotiated")
		return candidate, nil

	case errors.Is(err, ErrPortInUse), errors.Is(err, errPortRangeEnd),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		n.finish(StateExhausted, 0)
		return 0, &ExhaustionError{Start: preferred, Attempts: attempts, Err: err}

	default:
		n.finish(StateFailed, 0)
		return 0, fmt.Errorf("error probing port %d: %w", candidate, err)
	}
}

// State returns the current state.
func (n *Negotiator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Attempt returns the number of probes made so far.
func (n *Negotiator) Attempt() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.attempt
}

// Port returns the bound port, or 0 before a successful negotiation.
func (n *Negotiator) Port() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.port
}

func (n *Negotiator) start() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.state != StateIdle {
		return ErrAlreadyNegotiated
	}
	n.state = StateProbing
	return nil
}

func (n *Negotiator) setAttempt(attempt int) {
	n.mu.Lock()
	n.attempt = attempt
	n.mu.Unlock()
}

func (n *Negotiator) finish(state State, port int) {
	n.mu.Lock()
	n.state = state
	n.port = port
	n.mu.Unlock()
}
