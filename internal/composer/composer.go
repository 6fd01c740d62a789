package composer

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pack-config/internal/config"
	"github.com/MKhiriev/go-pack-config/internal/logger"
	"github.com/MKhiriev/go-pack-config/internal/tree"
)

// Composer builds the tree of an invocation from one resolved configuration.
type Composer struct {
	cfg        *config.StructuredConfig
	negotiator PortNegotiator
	logger     *logger.Logger
}

// NewComposer returns a composer over cfg. negotiator is only used for
// development trees and may be nil otherwise.
func NewComposer(cfg *config.StructuredConfig, negotiator PortNegotiator, log *logger.Logger) *Composer {
	if log == nil {
		log = logger.Nop()
	}
	return &Composer{
		cfg:        cfg,
		negotiator: negotiator,
		logger:     log,
	}
}

// Compose returns the tree for the environment of inv. A development tree
// waits for port negotiation; production and testing trees do not.
func (c *Composer) Compose(ctx context.Context, inv *Invocation) (tree.Map, error) {
	if !inv.Env.Valid() {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownEnvironment, inv.Env)
	}

	log := c.logger.GetChildLogger(map[string]string{
		"invocation_id": inv.ID,
		"env":           inv.Env.String(),
	})
	ctx = log.WithContext(inv.Context(ctx))

	var (
		t   tree.Map
		err error
	)
	if inv.Env.IsProduction() {
		t, err = Production(c.cfg, inv.Env)
	} else {
		log.Debug().Int("preferred_port", c.cfg.DevPort()).Msg("negotiating dev server port")
		t, err = Dev(ctx, inv, c.cfg, c.negotiator)
	}
	if err != nil {
		log.Error().Err(err).Msg("error composing configuration tree")
		return nil, err
	}

	log.Info().Msg("configuration tree composed")
	return t, nil
}
