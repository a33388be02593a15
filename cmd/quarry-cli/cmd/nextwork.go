// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/quarrychain/quarry/chain"
	"github.com/quarrychain/quarry/pow"
)

var (
	chainFile     string
	nextTimestamp int64

	nextWorkCmd = &cobra.Command{
		Use:   "nextwork [options]",
		Short: "Replays a synthetic chain and prints the next required work",
		RunE:  nextWorkFunc,
	}
)

func init() {
	nextWorkCmd.PersistentFlags().StringVar(
		&chainFile,
		"chain-file",
		"chain.yml",
		"YAML chain description (list of {timestamp, bits})",
	)
	nextWorkCmd.PersistentFlags().Int64Var(
		&nextTimestamp,
		"next-timestamp",
		0,
		"timestamp of the candidate block (default: tip + target spacing)",
	)
}

type chainDescription struct {
	Blocks []struct {
		Timestamp int64  `yaml:"timestamp"`
		Bits      string `yaml:"bits"`
	} `yaml:"blocks"`
}

func nextWorkFunc(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}

	buf, err := os.ReadFile(chainFile)
	if err != nil {
		return err
	}
	var desc chainDescription
	if err := yaml.Unmarshal(buf, &desc); err != nil {
		return err
	}
	if len(desc.Blocks) == 0 {
		return fmt.Errorf("chain file %q has no blocks", chainFile)
	}

	var ix *chain.Index
	for i, blk := range desc.Blocks {
		bits, err := parseBits(blk.Bits)
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		if ix == nil {
			ix = chain.NewIndex(&chain.Header{Timestamp: blk.Timestamp, Bits: bits})
			continue
		}
		ix.Extend(blk.Timestamp, bits)
	}

	tip := ix.Tip()
	ts := nextTimestamp
	if ts == 0 {
		ts = tip.Timestamp() + params.PowTargetSpacing
	}
	header := &chain.Header{Parent: tip.ID(), Timestamp: ts}

	bits := pow.GetNextWorkRequired(tip, header, params)
	fmt.Printf("height: %d\n", tip.Height()+1)
	fmt.Printf("bits:   %#08x\n", bits)
	return nil
}
