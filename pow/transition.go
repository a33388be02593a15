// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pow

import (
	"github.com/quarrychain/quarry/arith"
	"github.com/quarrychain/quarry/consensus"
)

// PermittedDifficultyTransition checks a peer-supplied difficulty
// change against the periodic retarget bounds without recomputing the
// retarget itself. Off boundary the bits may not move at all; on a
// boundary they must land inside the 4x window derived from oldBits.
//
// The check deliberately mirrors the legacy rules only. It does not
// model the weighted retarget or the min-difficulty walk-back, so on a
// network past SwitchLWMABlock it stays a headers-only sanity bound
// rather than an exact validator.
func PermittedDifficultyTransition(params *consensus.Params, height int64, oldBits, newBits uint32) bool {
	if params.PowAllowMinDifficultyBlocks {
		return true
	}

	if height%params.DifficultyAdjustmentInterval() == 0 {
		smallestTimespan := params.PowTargetTimespan / 4
		largestTimespan := params.PowTargetTimespan * 4

		observedNewTarget := arith.NewUint256()
		observedNewTarget.SetCompact(newBits)

		// The easiest target a 4x-slow period could justify. A product
		// that no longer fits in 256 bits is past the limit by
		// definition, so overflow clamps the same way.
		largestDifficultyTarget := arith.NewUint256()
		largestDifficultyTarget.SetCompact(oldBits)
		ovf := largestDifficultyTarget.MulDivUint64(uint64(largestTimespan), uint64(params.PowTargetTimespan))
		if ovf || largestDifficultyTarget.Cmp(params.PowLimit) > 0 {
			largestDifficultyTarget = params.PowLimit.Clone()
		}

		// Round through the compact encoding so the bound carries the
		// same precision loss the retarget computation itself incurs.
		maximumNewTarget := arith.NewUint256()
		maximumNewTarget.SetCompact(largestDifficultyTarget.GetCompact())
		if maximumNewTarget.Cmp(observedNewTarget) < 0 {
			return false
		}

		// The hardest target a 4x-fast period could justify.
		smallestDifficultyTarget := arith.NewUint256()
		smallestDifficultyTarget.SetCompact(oldBits)
		ovf = smallestDifficultyTarget.MulDivUint64(uint64(smallestTimespan), uint64(params.PowTargetTimespan))
		if ovf || smallestDifficultyTarget.Cmp(params.PowLimit) > 0 {
			smallestDifficultyTarget = params.PowLimit.Clone()
		}

		minimumNewTarget := arith.NewUint256()
		minimumNewTarget.SetCompact(smallestDifficultyTarget.GetCompact())
		if minimumNewTarget.Cmp(observedNewTarget) > 0 {
			return false
		}
	} else if oldBits != newBits {
		return false
	}
	return true
}
