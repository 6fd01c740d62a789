package config

import (
	"fmt"
	"strings"
)

// Environment selects the overlay and asset sub-path used by one build
// invocation.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Testing     Environment = "testing"
)

// ParseEnvironment normalises s and checks it against the known environments.
func ParseEnvironment(s string) (Environment, error) {
	env := Environment(strings.ToLower(strings.TrimSpace(s)))
	if !env.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
	}
	return env, nil
}

// Valid reports whether e is one of the known environments.
func (e Environment) Valid() bool {
	switch e {
	case Development, Production, Testing:
		return true
	}
	return false
}

// IsProduction reports whether e takes the production build path. Testing
// builds are production builds with the test variable set.
func (e Environment) IsProduction() bool {
	return e == Production || e == Testing
}

// UnmarshalText implements encoding.TextUnmarshaler so the value can be read
// from the environment and flags.
func (e *Environment) UnmarshalText(text []byte) error {
	env, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}

func (e Environment) String() string {
	return string(e)
}
