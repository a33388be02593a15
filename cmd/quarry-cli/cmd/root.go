// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "quarry-cli" exposes the difficulty engine for inspection: decoding
// and encoding compact targets, replaying retargets over synthetic
// chains, checking work and grinding nonces.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/quarrychain/quarry/config"
	"github.com/quarrychain/quarry/consensus"
)

var (
	configFile string
	network    string

	rootCmd = &cobra.Command{
		Use:        "quarry-cli",
		Short:      "Quarry difficulty engine CLI",
		SuggestFor: []string{"quarry-cli", "quarrycli", "quarryctl"},

		PersistentPreRunE: setupLogging,
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		decodeCmd,
		encodeCmd,
		nextWorkCmd,
		checkCmd,
		mineCmd,
		versionCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"config file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&network,
		"network",
		"",
		"network to load parameters for (overrides the config file)",
	)
}

func Execute() error {
	return rootCmd.Execute()
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lvl, err := log.LvlFromString(cfg.Logging.Level)
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.TerminalFormat())))
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if network != "" {
		cfg.Network = network
	}
	return cfg, nil
}

func loadParams() (*consensus.Params, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.ConsensusParams()
}

// parseBits accepts compact bits as hex, with or without a 0x prefix.
func parseBits(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid compact bits %q: %w", s, err)
	}
	return uint32(v), nil
}
