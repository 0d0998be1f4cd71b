package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects one StructuredConfig layer per source, in precedence
// order, and remembers every load failure until build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 3)}
}

// build merges the layers, later non-zero fields winning, and validates the
// result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("load client config: %w", b.err)
	}

	merged := &StructuredConfig{}
	for i, layer := range b.configs {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config layer %d: %w", i, err)
		}
	}
	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func (b *configBuilder) add(source string, layer *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.configs = append(b.configs, layer)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := &StructuredConfig{}
	return b.add("env", layer, parseEnv(layer))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	layer, err := ParseFlags(args)
	return b.add("flags", layer, err)
}

// withJSON loads the file named by the last layer that set a config path.
// Without one it adds nothing.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, layer := range b.configs {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	layer, err := parseJSON(path)
	return b.add("json "+path, layer, err)
}
