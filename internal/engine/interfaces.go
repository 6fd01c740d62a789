package engine

import (
	"context"

	"github.com/MKhiriev/go-pack-config/internal/tree"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// Engine runs one build for a configuration tree.
type Engine interface {
	// Run returns the build statistics. A non-nil error means the engine
	// could not be driven at all; compile errors are reported in Stats.
	Run(ctx context.Context, config tree.Map) (*Stats, error)
}
