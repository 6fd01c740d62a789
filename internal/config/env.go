// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is loaded before the environment is read. Variables that are
// already set in the process environment are not overwritten.
var dotEnvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library, after loading the optional .env file with godotenv. Struct fields
// are mapped via their `env` and `envPrefix` tags defined on
// [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	// a missing .env file is not an error
	_ = godotenv.Load(dotEnvFile)

	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
