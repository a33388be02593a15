// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package consensus holds the immutable per-network parameters the
// proof-of-work rules are evaluated against.
package consensus

import (
	"math"

	"github.com/quarrychain/quarry/arith"
)

// NoLWMA disables the weighted-average retarget on networks that never
// schedule the fork.
const NoLWMA = int64(math.MaxInt64)

// Params is loaded once per network and never mutated afterwards.
type Params struct {
	// Name identifies the network the parameters belong to.
	Name string

	// PowLimit is the easiest target any block may use; PowLimitBits is
	// its compact form, cached because the retarget rules compare
	// against it constantly.
	PowLimit     *arith.Uint256
	PowLimitBits uint32

	// PowTargetSpacing is the intended number of seconds between
	// blocks; PowTargetTimespan the intended seconds per legacy
	// retarget period.
	PowTargetSpacing  int64
	PowTargetTimespan int64

	// LWMAAveragingWindow is the number of recent blocks the weighted
	// retarget averages over. SwitchLWMABlock is the height at which
	// the weighted retarget replaces the periodic one.
	LWMAAveragingWindow int64
	SwitchLWMABlock     int64

	// PowAllowMinDifficultyBlocks relaxes difficulty on test networks
	// when blocks arrive slowly.
	PowAllowMinDifficultyBlocks bool

	// PowNoRetargeting freezes difficulty entirely (regtest).
	PowNoRetargeting bool

	// EnforceBIP94 anchors the periodic retarget on the first block of
	// the completed period instead of the tip.
	EnforceBIP94 bool
}

// DifficultyAdjustmentInterval is the number of blocks between
// periodic retargets.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return p.PowTargetTimespan / p.PowTargetSpacing
}

// Clone returns a copy whose mutable fields are independent, for
// callers that need to derive a tweaked test network.
func (p *Params) Clone() *Params {
	c := *p
	c.PowLimit = p.PowLimit.Clone()
	return &c
}
