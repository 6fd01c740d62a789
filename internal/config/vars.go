package config

import (
	"fmt"

	"dario.cat/mergo"
)

// Vars is a set of compile-time variables injected into the bundle as
// process.env. Values are source literals, so strings carry their quotes.
type Vars map[string]string

func prodVars() Vars {
	return Vars{"NODE_ENV": `"production"`}
}

// VarsFor returns the variable set for env. The development set extends the
// production one and the testing set extends the development one.
func VarsFor(env Environment) (Vars, error) {
	vars := prodVars()
	if env == Production {
		return vars, nil
	}

	vars, err := mergeVars(vars, Vars{"NODE_ENV": `"development"`})
	if err != nil {
		return nil, err
	}
	if env == Development {
		return vars, nil
	}

	return mergeVars(vars, Vars{"NODE_ENV": `"testing"`})
}

func mergeVars(base, overlay Vars) (Vars, error) {
	out := Vars{}
	if err := mergo.Merge(&out, base); err != nil {
		return nil, fmt.Errorf("error merging vars: %w", err)
	}
	if err := mergo.Merge(&out, overlay, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging vars: %w", err)
	}
	return out, nil
}
