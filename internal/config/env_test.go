// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG":            "/path/to/project.hcl",
		"NODE_ENV":          "testing",
		"PACK_CONTEXT":      "/srv/app",
		"HOST":              "0.0.0.0",
		"PORT":              "3000",
		"npm_config_report": "true",

		"DEV_PORT":              "8081",
		"DEV_USE_ESLINT":        "false",
		"DEV_MAX_PORT_ATTEMPTS": "10",

		"BUILD_ASSETS_ROOT":                "out",
		"BUILD_PRODUCTION_GZIP":            "true",
		"BUILD_PRODUCTION_GZIP_EXTENSIONS": "js,css,svg",
		"BUILD_ENGINE_URL":                 "http://engine:9000",
		"BUILD_ENGINE_TIMEOUT":             "30s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/project.hcl", cfg.FilePath)
	assert.Equal(t, Testing, cfg.Env)
	assert.Equal(t, "/srv/app", cfg.Context)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 3000, cfg.Port)
	assert.True(t, Enabled(cfg.Report))

	assert.Equal(t, 8081, cfg.Dev.Port)
	require.NotNil(t, cfg.Dev.UseEslint)
	assert.False(t, *cfg.Dev.UseEslint)
	assert.Equal(t, 10, cfg.Dev.MaxPortAttempts)

	assert.Equal(t, "out", cfg.Build.AssetsRoot)
	assert.True(t, Enabled(cfg.Build.ProductionGzip))
	assert.Equal(t, []string{"js", "css", "svg"}, cfg.Build.ProductionGzipExtensions)
	assert.Equal(t, "http://engine:9000", cfg.Build.EngineURL)
	assert.Equal(t, 30*time.Second, cfg.Build.EngineTimeout)
}

func TestParseEnv_UnsetTogglesStayNil(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, cfg.Dev.UseEslint)
	assert.Nil(t, cfg.Build.ProductionGzip)
	assert.Nil(t, cfg.Report)
	assert.Empty(t, cfg.Env)
}

func TestParseEnv_InvalidEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"NODE_ENV": "staging"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidPort(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "http"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	clearEnvVars(t)

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("DEV_HOST=dotenv.local\n"), 0o600))

	old := dotEnvFile
	dotEnvFile = p
	t.Cleanup(func() { dotEnvFile = old })
	// godotenv writes into the process environment; restore it afterwards
	t.Setenv("DEV_HOST", "")
	require.NoError(t, os.Unsetenv("DEV_HOST"))

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "dotenv.local", cfg.Dev.Host)
}

// Helpers

var knownEnvVars = []string{
	"CONFIG",
	"NODE_ENV",
	"PACK_CONTEXT",
	"HOST",
	"PORT",
	"npm_config_report",

	"DEV_HOST",
	"DEV_PORT",
	"DEV_USE_ESLINT",
	"DEV_USE_POSTCSS",
	"DEV_MAX_PORT_ATTEMPTS",

	"BUILD_ASSETS_ROOT",
	"BUILD_PRODUCTION_GZIP",
	"BUILD_PRODUCTION_GZIP_EXTENSIONS",
	"BUILD_ENGINE_URL",
	"BUILD_ENGINE_TIMEOUT",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads; t.Setenv restores the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range knownEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
