// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config selects the network and optional test-network
// parameter overrides from a YAML file and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/quarrychain/quarry/consensus"
)

type Config struct {
	Network  string         `yaml:"network"  envconfig:"NETWORK"`
	Logging  LoggingConfig  `yaml:"logging"`
	Override OverrideConfig `yaml:"override"`
}

type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LOGGING_LEVEL"`
}

// OverrideConfig tweaks consensus parameters, regtest-style networks
// only. Zero values leave the preset untouched.
type OverrideConfig struct {
	PowTargetSpacing    int64 `yaml:"powTargetSpacing"    envconfig:"POW_TARGET_SPACING"`
	PowTargetTimespan   int64 `yaml:"powTargetTimespan"   envconfig:"POW_TARGET_TIMESPAN"`
	LWMAAveragingWindow int64 `yaml:"lwmaAveragingWindow" envconfig:"LWMA_AVERAGING_WINDOW"`
	SwitchLWMABlock     int64 `yaml:"switchLWMABlock"     envconfig:"SWITCH_LWMA_BLOCK"`
}

// Load reads the optional YAML file, then lets QUARRY_* environment
// variables override it.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Network: consensus.MainNet,
		Logging: LoggingConfig{Level: "info"},
	}
	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	if err := envconfig.Process("quarry", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	return cfg, nil
}

// ConsensusParams resolves the configured network and applies any
// overrides. Overrides are refused outside regtest: the other presets
// are consensus, not configuration.
func (c *Config) ConsensusParams() (*consensus.Params, error) {
	params, err := consensus.ParamsByNetwork(c.Network)
	if err != nil {
		return nil, err
	}
	if c.Override == (OverrideConfig{}) {
		return params, nil
	}
	if params.Name != consensus.RegTest {
		return nil, ErrOverrideForbidden
	}
	params = params.Clone()
	if c.Override.PowTargetSpacing > 0 {
		params.PowTargetSpacing = c.Override.PowTargetSpacing
	}
	if c.Override.PowTargetTimespan > 0 {
		params.PowTargetTimespan = c.Override.PowTargetTimespan
	}
	if c.Override.LWMAAveragingWindow > 0 {
		params.LWMAAveragingWindow = c.Override.LWMAAveragingWindow
	}
	if c.Override.SwitchLWMABlock > 0 {
		params.SwitchLWMABlock = c.Override.SwitchLWMABlock
	}
	// A scheduled weighted retarget with no averaging window would send
	// the engine past genesis on its first window read.
	if params.SwitchLWMABlock != consensus.NoLWMA && params.LWMAAveragingWindow <= 0 {
		return nil, ErrLWMAWindowRequired
	}
	return params, nil
}
