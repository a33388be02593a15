// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pow

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/quarrychain/quarry/arith"
	"github.com/quarrychain/quarry/consensus"
)

// DeriveTarget decodes a claimed compact target and rejects everything
// a valid block could never carry. Each failure mode has its own
// sentinel so callers and tests can tell them apart; any non-nil error
// means the block is invalid.
func DeriveTarget(bits uint32, powLimit *arith.Uint256) (*arith.Uint256, error) {
	target := arith.NewUint256()
	negative, overflow := target.SetCompact(bits)
	switch {
	case negative:
		return nil, ErrTargetNegative
	case target.IsZero():
		return nil, ErrTargetZero
	case overflow:
		return nil, ErrTargetOverflow
	case target.Cmp(powLimit) > 0:
		return nil, ErrTargetAboveLimit
	}
	return target, nil
}

// CheckProofOfWork reports whether the hash, read as a little-endian
// integer, satisfies the claimed target. Fails closed on any target
// that does not derive.
func CheckProofOfWork(hash ids.ID, bits uint32, params *consensus.Params) bool {
	target, err := DeriveTarget(bits, params.PowLimit)
	if err != nil {
		return false
	}
	return arith.NewUint256FromHash(hash).Cmp(target) <= 0
}

// Checker validates that a block hash satisfies its claimed target.
// The interface exists so fuzz harnesses can swap in a structural
// stand-in at the call site instead of flipping a process-wide switch.
type Checker interface {
	Check(hash ids.ID, bits uint32) bool
}

var (
	_ Checker = &workChecker{}
	_ Checker = &structuralChecker{}
)

// New returns the production checker for the given network.
func New(params *consensus.Params) Checker {
	return &workChecker{params: params}
}

type workChecker struct {
	params *consensus.Params
}

func (c *workChecker) Check(hash ids.ID, bits uint32) bool {
	return CheckProofOfWork(hash, bits, c.params)
}

// NewStructural returns a checker that looks at a single bit of the
// hash instead of doing target math, so fuzz inputs do not need real
// proof-of-work. Never wire it into a production path.
func NewStructural() Checker {
	return &structuralChecker{}
}

type structuralChecker struct{}

func (*structuralChecker) Check(hash ids.ID, _ uint32) bool {
	return hash[31]&0x80 == 0
}
