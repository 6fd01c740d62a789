package port

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"
)

// TCPProber probes ports by briefly listening on them.
type TCPProber struct{}

// Probe implements [Prober].
func (TCPProber) Probe(ctx context.Context, host string, port int) error {
	var lc net.ListenConfig

	ln, err := lc.Listen(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("%w: %d", ErrPortInUse, port)
		}
		return err
	}

	return ln.Close()
}
