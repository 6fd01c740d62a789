// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pack-config/internal/config"
	"github.com/MKhiriev/go-pack-config/internal/logger"
	"github.com/MKhiriev/go-pack-config/internal/tree"
	"github.com/MKhiriev/go-pack-config/internal/utils"
	"github.com/charmbracelet/lipgloss"
)

const servingTip = "  Tip: built files are meant to be served over an HTTP server.\n" +
	"  Opening index.html over file:// won't work.\n"

// Runner runs a build and writes the report to out.
type Runner struct {
	engine Engine
	out    io.Writer
	logger *logger.Logger

	failStyle lipgloss.Style
	doneStyle lipgloss.Style
	tipStyle  lipgloss.Style
}

// NewRunner returns a runner that reports to out. Colours are dropped when
// out is not a terminal.
func NewRunner(engine Engine, out io.Writer, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	r := lipgloss.NewRenderer(out)

	return &Runner{
		engine:    engine,
		out:       out,
		logger:    log,
		failStyle: r.NewStyle().Foreground(lipgloss.Color("1")),
		doneStyle: r.NewStyle().Foreground(lipgloss.Color("6")),
		tipStyle:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Run builds t for env and prints the engine summary followed by the
// verdict. A failed build returns [ErrBuildFailed]; engine errors are
// returned unchanged. Successful production builds also print a reminder
// that the output needs an HTTP server.
func (r *Runner) Run(ctx context.Context, env config.Environment, t tree.Map) error {
	log := r.logger
	if id, ok := utils.GetInvocationIDFromContext(ctx); ok {
		log = log.GetChildLogger(map[string]string{"invocation_id": id})
	}
	log.Info().Str("env", env.String()).Msg("starting build")

	stats, err := r.engine.Run(ctx, t)
	if err != nil {
		log.Error().Err(err).Msg("build engine failure")
		return err
	}
	if stats == nil {
		return ErrNoStats
	}

	if stats.Summary != "" {
		fmt.Fprint(r.out, stats.Summary+"\n\n")
	}
	for _, w := range stats.Warnings {
		log.Warn().Str("file", w.File).Msg(w.Message)
	}

	if stats.HasErrors() {
		fmt.Fprintln(r.out, r.failStyle.Render("  Build failed with errors."))
		log.Error().Int("errors", len(stats.Errors)).Msg("build failed")
		return fmt.Errorf("%w: %d error(s)", ErrBuildFailed, len(stats.Errors))
	}

	fmt.Fprintln(r.out, r.doneStyle.Render("  Build complete."))
	if env.IsProduction() {
		fmt.Fprint(r.out, r.tipStyle.Render(servingTip))
	}
	log.Info().Int("warnings", len(stats.Warnings)).Msg("build complete")

	return nil
}
