// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preview

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pack-config/internal/logger"
	"github.com/MKhiriev/go-pack-config/internal/tree"
	"github.com/MKhiriev/go-pack-config/internal/utils"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves a build output directory.
type Server struct {
	host       string
	negotiator PortNegotiator
	logger     *logger.Logger
	tree       tree.Map

	files      fs.FS
	fileServer http.Handler
	ids        *utils.UUIDGenerator
}

// Option customises a Server.
type Option func(*Server)

// WithConfigTree exposes t on [ConfigPath].
func WithConfigTree(t tree.Map) Option {
	return func(s *Server) {
		s.tree = t
	}
}

// NewServer returns a server for the build output in root. It fails when
// root is not a directory holding an index.html.
func NewServer(root, host string, negotiator PortNegotiator, log *logger.Logger, opts ...Option) (*Server, error) {
	if negotiator == nil {
		return nil, ErrNoNegotiator
	}
	if log == nil {
		log = logger.Nop()
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoRoot, root)
	}
	files := os.DirFS(filepath.Clean(root))
	if _, err = fs.Stat(files, indexFile); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoIndex, root)
	}

	s := &Server{
		host:       host,
		negotiator: negotiator,
		logger:     log,
		files:      files,
		fileServer: http.FileServerFS(files),
		ids:        utils.NewUUIDGenerator(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Run negotiates a port starting at preferred, then serves until ctx is
// done. ready, when non-nil, receives the server URL once it listens.
func (s *Server) Run(ctx context.Context, preferred int, ready func(url string)) error {
	p, err := s.negotiator.Negotiate(ctx, preferred)
	if err != nil {
		return fmt.Errorf("error negotiating preview port: %w", err)
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(p))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	url := "http://" + addr
	s.logger.Info().Str("url", url).Msg("preview server listening")
	if ready != nil {
		ready(url)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("preview server: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err = srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down preview server: %w", err)
		}
		s.logger.Info().Msg("preview server shut down gracefully")
		return nil
	}
}
