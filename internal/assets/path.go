// Package assets maps logical asset paths to their public output paths.
package assets

import (
	"path"

	"github.com/MKhiriev/go-pack-config/internal/config"
)

// Resolver joins asset paths onto the sub-directory configured for the
// environment of the build.
type Resolver struct {
	DevSubDirectory   string
	BuildSubDirectory string
}

// NewResolver takes the sub-directories from the dev and build settings.
func NewResolver(cfg *config.StructuredConfig) Resolver {
	return Resolver{
		DevSubDirectory:   cfg.Dev.AssetsSubDirectory,
		BuildSubDirectory: cfg.Build.AssetsSubDirectory,
	}
}

// Path returns p below the asset sub-directory of env, using forward slashes
// regardless of the host OS.
func (r Resolver) Path(env config.Environment, p string) string {
	dir := r.DevSubDirectory
	if env.IsProduction() {
		dir = r.BuildSubDirectory
	}
	return path.Join(dir, p)
}
