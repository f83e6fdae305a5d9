package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs from several sources and merges
// them into one [StructuredConfig].
//
// Sources are merged in the order they were added, later ones overriding
// non-zero fields of earlier ones. The JSON file config, when present, is
// merged first so that env and flags take precedence over it.
type configBuilder struct {
	configs []*StructuredConfig
	json    *StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 2),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	sources := b.configs
	if b.json != nil {
		sources = append([]*StructuredConfig{b.json}, sources...)
	}

	config := new(StructuredConfig)
	for _, cfg := range sources {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.json = jsonCfg

	return b
}
