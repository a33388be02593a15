// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pow

import (
	"testing"

	"github.com/quarrychain/quarry/consensus"
)

// strictParams is a 2016-interval network without the min-difficulty
// relaxation, so the transition check actually bites.
func strictParams() *consensus.Params {
	p := consensus.TestNet4Params().Clone()
	p.PowAllowMinDifficultyBlocks = false
	return p
}

func TestPermittedDifficultyTransition(t *testing.T) {
	t.Parallel()

	params := strictParams()
	interval := params.DifficultyAdjustmentInterval()

	const oldBits = uint32(0x1d00ffff)
	// decode(oldBits)/4 re-encoded, the exact lower bound on a boundary
	const quarterBits = uint32(0x1c3fffc0)

	tt := []struct {
		height    int64
		oldBits   uint32
		newBits   uint32
		permitted bool
	}{
		// off boundary: only "no change" is permitted
		{height: 1, oldBits: oldBits, newBits: oldBits, permitted: true},
		{height: interval + 5, oldBits: oldBits, newBits: oldBits, permitted: true},
		{height: 1, oldBits: oldBits, newBits: oldBits - 1, permitted: false},
		{height: interval - 1, oldBits: oldBits, newBits: 0x1c3fffc0, permitted: false},

		// on boundary: anything inside the 4x window
		{height: interval, oldBits: oldBits, newBits: oldBits, permitted: true},
		{height: interval, oldBits: oldBits, newBits: quarterBits, permitted: true},
		// one notch below the lower bound
		{height: interval, oldBits: oldBits, newBits: quarterBits - 1, permitted: false},
		// easier than the pow limit itself
		{height: interval, oldBits: oldBits, newBits: 0x1e00ffff, permitted: false},
		// the 4x-eased bound clamps at the pow limit, which is permitted
		{height: 2 * interval, oldBits: oldBits, newBits: params.PowLimitBits, permitted: true},
	}
	for i, tv := range tt {
		got := PermittedDifficultyTransition(params, tv.height, tv.oldBits, tv.newBits)
		if got != tv.permitted {
			t.Fatalf("#%d: permitted expected %v, got %v", i, tv.permitted, got)
		}
	}
}

func TestPermittedDifficultyTransitionMinDifficultyNetworks(t *testing.T) {
	t.Parallel()

	// Networks with the relaxation skip the check entirely.
	params := consensus.TestNet4Params()
	if !params.PowAllowMinDifficultyBlocks {
		t.Fatal("expected relaxation on testnet4")
	}
	if !PermittedDifficultyTransition(params, 1, 0x1d00ffff, 0x03123456) {
		t.Fatal("expected any transition to be permitted")
	}
}

// Quadrupling a target near the top of the range overflows 256 bits
// and wraps to a tiny magnitude; the eased bound must clamp to the pow
// limit instead of trusting the wrapped value.
func TestPermittedDifficultyTransitionOverflowClamp(t *testing.T) {
	t.Parallel()

	params := consensus.RegTestParams().Clone()
	params.PowAllowMinDifficultyBlocks = false
	interval := params.DifficultyAdjustmentInterval()

	// decodes to exactly 2^254: quadrupled it wraps to zero
	const oldBits = uint32(0x20400000)
	if !PermittedDifficultyTransition(params, interval, oldBits, oldBits) {
		t.Fatal("unchanged bits on a boundary must be permitted")
	}
	if !PermittedDifficultyTransition(params, interval, oldBits, params.PowLimitBits) {
		t.Fatal("the clamped bound is the pow limit itself")
	}
}

// Accepting the unchanged bits must hold at every height, boundary or
// not.
func TestTransitionBoundsSymmetry(t *testing.T) {
	t.Parallel()

	params := strictParams()
	interval := params.DifficultyAdjustmentInterval()
	const bits = uint32(0x1c0ffff0)

	for _, height := range []int64{0, 1, interval - 1, interval, interval + 1, 10 * interval} {
		if !PermittedDifficultyTransition(params, height, bits, bits) {
			t.Fatalf("height %d: unchanged bits must always be permitted", height)
		}
	}
}
