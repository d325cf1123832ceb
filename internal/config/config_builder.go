package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration sources in priority order. Errors are
// accumulated so that build reports every broken source at once.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

// add records one source or its error.
func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := new(StructuredConfig)
	if err := parseEnv(cfg); err != nil {
		return b.add(nil, err)
	}
	return b.add(cfg, nil)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(parseFlags(args))
}

// withJSON loads the file named by the last source that set JSONFilePath.
// Without such a source it is a no-op.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}

// build merges the sources, later non-zero fields winning, then fills what is
// still unset with defaults.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := merged.applyDefaults(); err != nil {
		return nil, fmt.Errorf("error applying config defaults: %w", err)
	}

	return merged, nil
}
