package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// projectFile is the root of an HCL project file. Every attribute and block
// is optional; absent values leave the lower configuration layers in place.
//
//	environment = "production"
//
//	dev {
//	  port        = 3000
//	  proxy_table = { "/api" = "http://localhost:4000" }
//	}
//
//	build {
//	  production_gzip = true
//	}
type projectFile struct {
	Environment string `hcl:"environment,optional"`
	Context     string `hcl:"context,optional"`
	Dev         *Dev   `hcl:"dev,block"`
	Build       *Build `hcl:"build,block"`
}

func parseHCL(path string) (*StructuredConfig, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("error reading a project file: %w", diags)
	}

	var root projectFile
	if diags = gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("error decoding project file %s: %w", path, diags)
	}

	cfg := &StructuredConfig{
		Context: root.Context,
	}

	if strings.TrimSpace(root.Environment) != "" {
		env, err := ParseEnvironment(root.Environment)
		if err != nil {
			return nil, fmt.Errorf("error decoding project file %s: %w", path, err)
		}
		cfg.Env = env
	}
	if root.Dev != nil {
		cfg.Dev = *root.Dev
	}
	if root.Build != nil {
		cfg.Build = *root.Build
	}

	return cfg, nil
}
