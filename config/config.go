// Copyright 2024 The cssopt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements reading of the cssopt configuration file.
package config

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v1"

	"github.com/nkls/cssopt/engines"
	"github.com/nkls/cssopt/preset"
)

const (
	// DefaultFileName is the configuration file cssopt looks for
	// when no explicit path is given.
	DefaultFileName = "minify.yml"

	DefaultPreset = "default"
	DefaultEngine = "cssmin"
)

type Config struct {
	Preset    string         `yaml:"preset"`
	Engine    string         `yaml:"engine"`
	Overrides preset.Options `yaml:"overrides"`
}

// Default returns a configuration equivalent to an empty config file:
// the default preset, the default engine, no overrides.
func Default() *Config {
	return &Config{Preset: DefaultPreset, Engine: DefaultEngine}
}

// Load reads configuration from the given YAML file.
func Load(filename string) (*Config, error) {
	var c Config
	if err := unmarshalFile(filename, &c); err != nil {
		return nil, err
	}
	// Set defaults.
	if c.Preset == "" {
		c.Preset = DefaultPreset
	}
	if c.Engine == "" {
		c.Engine = DefaultEngine
	}
	// Make nested override objects the same shape as preset defaults.
	for k, v := range c.Overrides {
		c.Overrides[k] = normalizeValue(v)
	}
	return &c, nil
}

// Descriptor resolves the configured preset with the overrides and
// returns the engine descriptor to run with. Override values are not
// shape-checked here; the engine validates the options it consumes
// when it is made from the descriptor.
func (c *Config) Descriptor() (engines.Descriptor, error) {
	resolved, err := preset.Resolve(c.Preset, c.Overrides)
	if err != nil {
		return engines.Descriptor{}, err
	}
	return engines.Descriptor{Name: c.Engine, Options: resolved}, nil
}

// unmarshalFile reads a YAML file and unmarshalls it into data.
func unmarshalFile(filename string, data interface{}) error {
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, data)
}

// normalizeValue rebuilds nested YAML maps with string keys.
func normalizeValue(v interface{}) interface{} {
	m, ok := v.(map[interface{}]interface{})
	if !ok {
		return v
	}
	c := make(map[string]interface{}, len(m))
	for k, mv := range m {
		c[fmt.Sprint(k)] = normalizeValue(mv)
	}
	return c
}
