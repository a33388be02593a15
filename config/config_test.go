// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quarrychain/quarry/consensus"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quarry.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, consensus.MainNet, cfg.Network)
	assert.Equal(t, "info", cfg.Logging.Level)

	params, err := cfg.ConsensusParams()
	assert.NoError(t, err)
	assert.Equal(t, consensus.MainNet, params.Name)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
network: regtest
logging:
  level: debug
override:
  powTargetSpacing: 30
`)
	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, consensus.RegTest, cfg.Network)
	assert.Equal(t, "debug", cfg.Logging.Level)

	params, err := cfg.ConsensusParams()
	assert.NoError(t, err)
	assert.Equal(t, int64(30), params.PowTargetSpacing)
	// untouched fields keep the preset
	assert.Equal(t, consensus.RegTestParams().PowTargetTimespan, params.PowTargetTimespan)
}

func TestEnvironmentWins(t *testing.T) {
	path := writeConfig(t, "network: regtest\n")
	t.Setenv("QUARRY_NETWORK", "testnet")

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, consensus.TestNet, cfg.Network)
}

func TestOverridesForbiddenOffRegtest(t *testing.T) {
	path := writeConfig(t, `
network: mainnet
override:
  switchLWMABlock: 1
`)
	cfg, err := Load(path)
	assert.NoError(t, err)

	_, err = cfg.ConsensusParams()
	if !errors.Is(err, ErrOverrideForbidden) {
		t.Fatalf("expected ErrOverrideForbidden, got %v", err)
	}
}

func TestOverrideSwitchRequiresWindow(t *testing.T) {
	path := writeConfig(t, `
network: regtest
override:
  switchLWMABlock: 1
`)
	cfg, err := Load(path)
	assert.NoError(t, err)

	_, err = cfg.ConsensusParams()
	if !errors.Is(err, ErrLWMAWindowRequired) {
		t.Fatalf("expected ErrLWMAWindowRequired, got %v", err)
	}

	// supplying the window makes the same override valid
	path = writeConfig(t, `
network: regtest
override:
  switchLWMABlock: 1
  lwmaAveragingWindow: 9
`)
	cfg, err = Load(path)
	assert.NoError(t, err)

	params, err := cfg.ConsensusParams()
	assert.NoError(t, err)
	assert.Equal(t, int64(9), params.LWMAAveragingWindow)
	assert.Equal(t, int64(1), params.SwitchLWMABlock)
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
