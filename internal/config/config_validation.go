// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

const maxPort = 65535

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before a configuration tree is composed from it.
//
// All violations are reported together, joined with errors.Join.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if !cfg.Env.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownEnvironment, cfg.Env))
	}

	if cfg.Port != 0 && !validPort(cfg.Port) {
		errs = append(errs, fmt.Errorf("%w: PORT %d", ErrInvalidDevConfigs, cfg.Port))
	}
	if !validPort(cfg.Dev.Port) {
		errs = append(errs, fmt.Errorf("%w: port %d", ErrInvalidDevConfigs, cfg.Dev.Port))
	}
	if strings.TrimSpace(cfg.DevHost()) == "" {
		errs = append(errs, fmt.Errorf("%w: empty host", ErrInvalidDevConfigs))
	}
	if cfg.Dev.MaxPortAttempts < 1 {
		errs = append(errs, fmt.Errorf("%w: max port attempts %d", ErrInvalidDevConfigs, cfg.Dev.MaxPortAttempts))
	}

	if strings.TrimSpace(cfg.Build.AssetsRoot) == "" {
		errs = append(errs, fmt.Errorf("%w: empty assets root", ErrInvalidBuildConfigs))
	}
	if Enabled(cfg.Build.ProductionGzip) && len(cfg.Build.ProductionGzipExtensions) == 0 {
		errs = append(errs, fmt.Errorf("%w: gzip enabled without extensions", ErrInvalidBuildConfigs))
	}

	return errors.Join(errs...)
}

func validPort(port int) bool {
	return port >= 1 && port <= maxPort
}
