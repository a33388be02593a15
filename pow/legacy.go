// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pow

import (
	"github.com/quarrychain/quarry/arith"
	"github.com/quarrychain/quarry/chain"
	"github.com/quarrychain/quarry/consensus"
)

// LegacyGetNextWorkRequired is the inherited periodic retarget: the
// target only moves on interval boundaries, by at most 4x in either
// direction per period.
func LegacyGetNextWorkRequired(tip chain.Node, header *chain.Header, params *consensus.Params) uint32 {
	if tip == nil {
		panic("pow: nil chain tip")
	}
	powLimitBits := params.PowLimitBits
	interval := params.DifficultyAdjustmentInterval()

	if (tip.Height()+1)%interval != 0 {
		if params.PowAllowMinDifficultyBlocks {
			// Testnet rule: a block arriving more than twice the
			// spacing late may be mined at minimum difficulty.
			if header.Timestamp > tip.Timestamp()+params.PowTargetSpacing*2 {
				return powLimitBits
			}

			// Otherwise report the last block that used a normal
			// difficulty, so a burst of min-difficulty blocks does not
			// become the new baseline.
			node := tip
			for node.Parent() != nil && node.Height()%interval != 0 && node.Bits() == powLimitBits {
				node = node.Parent()
			}
			return node.Bits()
		}
		return tip.Bits()
	}

	// Anchor the timespan measurement on the first block of the period
	// that just completed.
	firstHeight := tip.Height() - (interval - 1)
	if firstHeight < 0 {
		panic("pow: insufficient history for retarget")
	}
	first := tip.Ancestor(firstHeight)
	if first == nil {
		panic("pow: missing retarget anchor")
	}

	return CalculateNextWorkRequired(tip, first.Timestamp(), params)
}

// CalculateNextWorkRequired rescales the target by the ratio of the
// observed period duration to the intended one, clamped to 4x either
// way.
func CalculateNextWorkRequired(tip chain.Node, firstBlockTime int64, params *consensus.Params) uint32 {
	if params.PowNoRetargeting {
		return tip.Bits()
	}

	actualTimespan := tip.Timestamp() - firstBlockTime
	if actualTimespan < params.PowTargetTimespan/4 {
		actualTimespan = params.PowTargetTimespan / 4
	}
	if actualTimespan > params.PowTargetTimespan*4 {
		actualTimespan = params.PowTargetTimespan * 4
	}

	next := arith.NewUint256()
	if params.EnforceBIP94 {
		// Use the bits of the first block of the period as the scaling
		// base: the first block may not use the min-difficulty
		// exception, so the real difficulty survives there.
		firstHeight := tip.Height() - (params.DifficultyAdjustmentInterval() - 1)
		first := tip.Ancestor(firstHeight)
		if first == nil {
			panic("pow: missing retarget anchor")
		}
		next.SetCompact(first.Bits())
	} else {
		next.SetCompact(tip.Bits())
	}

	ovf := next.MulDivUint64(uint64(actualTimespan), uint64(params.PowTargetTimespan))
	if ovf || next.Cmp(params.PowLimit) > 0 {
		next = params.PowLimit.Clone()
	}

	return next.GetCompact()
}
