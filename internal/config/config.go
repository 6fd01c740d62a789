// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// StructuredConfig is the top-level project configuration consumed by the
// tree composer. It is populated by merging built-in defaults, an optional
// HCL project file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - hcl: attribute or block name in the HCL project file.
type StructuredConfig struct {
	// Env selects the overlay applied on top of the base tree.
	// Env: NODE_ENV
	Env Environment `env:"NODE_ENV"`

	// Context is the project root every relative path is resolved against.
	// Env: PACK_CONTEXT
	Context string `env:"PACK_CONTEXT"`

	// Host overrides Dev.Host when non-empty.
	// Env: HOST
	Host string `env:"HOST"`

	// Port overrides Dev.Port when non-zero.
	// Env: PORT
	Port int `env:"PORT"`

	// Report requests the post-build bundle composition report.
	// Env: npm_config_report
	Report *bool `env:"npm_config_report"`

	// Dev holds development server and dev-build settings.
	Dev Dev `envPrefix:"DEV_"`

	// Build holds production build settings.
	Build Build `envPrefix:"BUILD_"`

	// FilePath is the optional path to the HCL project file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// Dev groups the settings of the development build and its server.
type Dev struct {
	AssetsSubDirectory string            `env:"ASSETS_SUB_DIRECTORY" hcl:"assets_sub_directory,optional"`
	AssetsPublicPath   string            `env:"ASSETS_PUBLIC_PATH" hcl:"assets_public_path,optional"`
	ProxyTable         map[string]string `hcl:"proxy_table,optional"`

	// Host and Port are the preferred dev server address. When the port is
	// taken, the next free one is negotiated.
	Host string `env:"HOST" hcl:"host,optional"`
	Port int    `env:"PORT" hcl:"port,optional"`

	AutoOpenBrowser *bool `env:"AUTO_OPEN_BROWSER" hcl:"auto_open_browser,optional"`
	ErrorOverlay    *bool `env:"ERROR_OVERLAY" hcl:"error_overlay,optional"`
	NotifyOnErrors  *bool `env:"NOTIFY_ON_ERRORS" hcl:"notify_on_errors,optional"`
	Poll            *bool `env:"POLL" hcl:"poll,optional"`

	UseEslint                 *bool `env:"USE_ESLINT" hcl:"use_eslint,optional"`
	ShowEslintErrorsInOverlay *bool `env:"SHOW_ESLINT_ERRORS_IN_OVERLAY" hcl:"show_eslint_errors_in_overlay,optional"`

	Devtool      string `env:"DEVTOOL" hcl:"devtool,optional"`
	CacheBusting *bool  `env:"CACHE_BUSTING" hcl:"cache_busting,optional"`
	CSSSourceMap *bool  `env:"CSS_SOURCE_MAP" hcl:"css_source_map,optional"`
	UsePostCSS   *bool  `env:"USE_POSTCSS" hcl:"use_postcss,optional"`

	// MaxPortAttempts bounds port negotiation, the preferred port included.
	MaxPortAttempts int `env:"MAX_PORT_ATTEMPTS" hcl:"max_port_attempts,optional"`
}

// Build groups the settings of the production build.
type Build struct {
	// Index is the emitted HTML entry, relative to Context.
	Index              string `env:"INDEX" hcl:"index,optional"`
	AssetsRoot         string `env:"ASSETS_ROOT" hcl:"assets_root,optional"`
	AssetsSubDirectory string `env:"ASSETS_SUB_DIRECTORY" hcl:"assets_sub_directory,optional"`
	AssetsPublicPath   string `env:"ASSETS_PUBLIC_PATH" hcl:"assets_public_path,optional"`

	ProductionSourceMap *bool  `env:"PRODUCTION_SOURCE_MAP" hcl:"production_source_map,optional"`
	Devtool             string `env:"DEVTOOL" hcl:"devtool,optional"`

	ProductionGzip           *bool    `env:"PRODUCTION_GZIP" hcl:"production_gzip,optional"`
	ProductionGzipExtensions []string `env:"PRODUCTION_GZIP_EXTENSIONS" hcl:"production_gzip_extensions,optional"`

	BundleAnalyzerReport *bool `env:"BUNDLE_ANALYZER_REPORT" hcl:"bundle_analyzer_report,optional"`

	// EngineURL is the base URL of the remote build engine.
	// Env: BUILD_ENGINE_URL
	EngineURL string `env:"ENGINE_URL" hcl:"engine_url,optional"`

	// EngineTimeout bounds a single build request (e.g. "5m").
	// Env: BUILD_ENGINE_TIMEOUT
	EngineTimeout time.Duration `env:"ENGINE_TIMEOUT"`
}

// DevHost returns the dev server host, honouring the HOST override.
func (cfg *StructuredConfig) DevHost() string {
	if cfg.Host != "" {
		return cfg.Host
	}
	return cfg.Dev.Host
}

// DevPort returns the preferred dev server port, honouring the PORT override.
func (cfg *StructuredConfig) DevPort() int {
	if cfg.Port != 0 {
		return cfg.Port
	}
	return cfg.Dev.Port
}

// DevAddress joins DevHost and DevPort.
func (cfg *StructuredConfig) DevAddress() string {
	return net.JoinHostPort(cfg.DevHost(), strconv.Itoa(cfg.DevPort()))
}

// ReportRequested reports whether a bundle composition report was asked for,
// either by the build settings or by the npm_config_report override.
func (cfg *StructuredConfig) ReportRequested() bool {
	return Enabled(cfg.Build.BundleAnalyzerReport) || Enabled(cfg.Report)
}

// GetStructuredConfig loads, merges, and validates the project configuration
// from all available sources in the following priority order (later sources
// win for fields they set):
//  1. Built-in defaults
//  2. HCL project file (path resolved from sources 3 and 4)
//  3. .env file and environment variables
//  4. Command-line flags in args
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}

// Enabled dereferences an optional toggle; nil means off.
func Enabled(b *bool) bool {
	return b != nil && *b
}

// Bool returns a pointer to v, for toggles in struct literals.
func Bool(v bool) *bool {
	return &v
}
