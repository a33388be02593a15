// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/quarrychain/quarry/pow"
)

var checkCmd = &cobra.Command{
	Use:   "check [hash] [bits]",
	Short: "Checks that a block hash satisfies its claimed target",
	Args:  cobra.ExactArgs(2),
	RunE:  checkFunc,
}

func checkFunc(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}

	raw, err := hex.DecodeString(args[0])
	if err != nil || len(raw) != 32 {
		return fmt.Errorf("invalid hash %q", args[0])
	}
	var hash ids.ID
	copy(hash[:], raw)

	bits, err := parseBits(args[1])
	if err != nil {
		return err
	}

	if !pow.CheckProofOfWork(hash, bits, params) {
		color.Red("invalid proof of work")
		return fmt.Errorf("hash does not satisfy target %#08x", bits)
	}
	color.Green("valid proof of work")
	return nil
}
