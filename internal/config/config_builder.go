package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"dario.cat/mergo"
)

// source orders configuration layers by priority, lowest first.
type source int

const (
	sourceDefaults source = iota
	sourceFile
	sourceEnv
	sourceFlags
)

type layer struct {
	source source
	cfg    *StructuredConfig
}

type configBuilder struct {
	layers []layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]layer, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	ordered := slices.Clone(b.layers)
	slices.SortStableFunc(ordered, func(a, b layer) int {
		return int(a.source) - int(b.source)
	})

	config := new(StructuredConfig)
	for _, l := range ordered {
		if err := mergo.Merge(config, l.cfg, mergo.WithOverride, mergo.WithTransformers(toggleTransformer{})); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) add(src source, cfg *StructuredConfig) {
	b.layers = append(b.layers, layer{source: src, cfg: cfg})
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.add(sourceDefaults, Default())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(sourceEnv, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(sourceFlags, flagsCfg)
	return b
}

// withFile loads the HCL project file named by the highest-priority layer
// collected so far.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	best := source(-1)

	for _, l := range b.layers {
		if l.cfg.FilePath != "" && l.source > best {
			best = l.source
			path = l.cfg.FilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseHCL(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(sourceFile, fileCfg)
	return b
}

// toggleTransformer lets an explicitly set *bool replace the current value,
// so a higher layer can switch off a toggle that defaults to true.
type toggleTransformer struct{}

var togglePtrType = reflect.TypeOf((*bool)(nil))

func (toggleTransformer) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	if t != togglePtrType {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if !src.IsNil() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}
