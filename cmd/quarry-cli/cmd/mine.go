// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quarrychain/quarry/chain"
	"github.com/quarrychain/quarry/miner"
)

var (
	mineBits      string
	mineTimestamp int64
	mineTimeout   time.Duration

	mineCmd = &cobra.Command{
		Use:   "mine [options]",
		Short: "Grinds a nonce for the given compact target",
		RunE:  mineFunc,
	}
)

func init() {
	mineCmd.PersistentFlags().StringVar(
		&mineBits,
		"bits",
		"",
		"compact target the header must satisfy",
	)
	mineCmd.PersistentFlags().Int64Var(
		&mineTimestamp,
		"timestamp",
		0,
		"header timestamp (default: now)",
	)
	mineCmd.PersistentFlags().DurationVar(
		&mineTimeout,
		"timeout",
		time.Minute,
		"give up after this long",
	)
}

func mineFunc(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}

	bits := params.PowLimitBits
	if mineBits != "" {
		if bits, err = parseBits(mineBits); err != nil {
			return err
		}
	}
	ts := mineTimestamp
	if ts == 0 {
		ts = time.Now().Unix()
	}

	ctx, cancel := context.WithTimeout(context.Background(), mineTimeout)
	defer cancel()

	solved, digest, err := miner.Mine(ctx, chain.Header{Timestamp: ts, Bits: bits}, params)
	if err != nil {
		return err
	}
	fmt.Printf("nonce:  %d\n", solved.Nonce)
	fmt.Printf("digest: %x\n", digest[:])
	return nil
}
