// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package composer

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-pack-config/internal/config"
	"github.com/MKhiriev/go-pack-config/internal/utils"
)

// Invocation is the state of one build run. It owns the resolved dev server
// port, which is written once and read by whatever reports the server URL.
type Invocation struct {
	ID  string
	Env config.Environment

	mu      sync.Mutex
	port    int
	portSet bool
}

// NewInvocation starts an invocation for env with a fresh ID.
func NewInvocation(env config.Environment) *Invocation {
	return &Invocation{
		ID:  utils.NewUUIDGenerator().Generate(),
		Env: env,
	}
}

// SetPort records the resolved port. Only the first call succeeds.
func (i *Invocation) SetPort(port int) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.portSet {
		return fmt.Errorf("%w: %d", ErrPortAlreadySet, i.port)
	}
	i.port = port
	i.portSet = true
	return nil
}

// Port returns the resolved port and whether it has been set.
func (i *Invocation) Port() (int, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.port, i.portSet
}

// URL returns the externally reachable dev server address on host.
func (i *Invocation) URL(host string) (string, error) {
	port, ok := i.Port()
	if !ok {
		return "", ErrPortNotSet
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)), nil
}

// Context tags ctx with the invocation ID.
func (i *Invocation) Context(ctx context.Context) context.Context {
	return utils.WithInvocationID(ctx, i.ID)
}
