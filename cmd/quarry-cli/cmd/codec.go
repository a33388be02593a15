// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarrychain/quarry/arith"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [bits]",
	Short: "Decodes a compact target",
	Args:  cobra.ExactArgs(1),
	RunE:  decodeFunc,
}

func decodeFunc(cmd *cobra.Command, args []string) error {
	bits, err := parseBits(args[0])
	if err != nil {
		return err
	}
	target := arith.NewUint256()
	negative, overflow := target.SetCompact(bits)
	fmt.Printf("target:   %s\n", target)
	fmt.Printf("negative: %v\n", negative)
	fmt.Printf("overflow: %v\n", overflow)
	return nil
}

var encodeCmd = &cobra.Command{
	Use:   "encode [target]",
	Short: "Encodes a 256-bit target to its compact form",
	Args:  cobra.ExactArgs(1),
	RunE:  encodeFunc,
}

func encodeFunc(cmd *cobra.Command, args []string) error {
	target, ok := arith.NewUint256FromHex(args[0])
	if !ok {
		return fmt.Errorf("invalid target %q", args[0])
	}
	fmt.Printf("bits: %#08x\n", target.GetCompact())
	return nil
}
