package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configBuilder collects configuration layers. Layers are merged in a fixed
// priority order regardless of the order the with* methods are called in.
type configBuilder struct {
	defaults  *StructuredConfig
	json      *StructuredConfig
	env       *StructuredConfig
	overrides *StructuredConfig
	err       error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// layers returns the non-nil layers from lowest to highest priority.
func (b *configBuilder) layers() []*StructuredConfig {
	layers := make([]*StructuredConfig, 0, 4)
	for _, l := range []*StructuredConfig{b.defaults, b.json, b.env, b.overrides} {
		if l != nil {
			layers = append(layers, l)
		}
	}
	return layers
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.layers() {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = Defaults()
	return b
}

// withEnv loads .env (when present) into the process environment and parses it.
func (b *configBuilder) withEnv() *configBuilder {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.err = errors.Join(b.err, fmt.Errorf("error loading .env file: %w", err))
		return b
	}

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withOverrides(overrides *StructuredConfig) *configBuilder {
	if overrides != nil {
		b.overrides = overrides
	}
	return b
}

// withJSON reads the JSON file named by the highest-priority layer that sets
// JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range []*StructuredConfig{b.env, b.overrides} {
		if cfg != nil && cfg.JSONFilePath != "" {
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
	jsonCfg.JSONFilePath = jsonPath
	b.json = jsonCfg
	return b
}

// parseEnv fills cfg from the env/envPrefix tags of [StructuredConfig].
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
