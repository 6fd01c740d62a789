package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is incomplete or invalid.
var (
	// ErrUnknownEnvironment indicates an environment name other than
	// development, production or testing.
	ErrUnknownEnvironment = errors.New("unknown environment")
	// ErrInvalidDevConfigs indicates invalid dev server settings
	// (for example, a port outside 1..65535 or a zero probe bound).
	ErrInvalidDevConfigs = errors.New("invalid dev configuration")
	// ErrInvalidBuildConfigs indicates invalid production build settings
	// (for example, an empty assets root).
	ErrInvalidBuildConfigs = errors.New("invalid build configuration")
)
