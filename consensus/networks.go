// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consensus

import (
	"strings"

	"github.com/quarrychain/quarry/arith"
)

// Network names accepted by ParamsByNetwork.
const (
	MainNet  = "mainnet"
	TestNet  = "testnet"
	TestNet4 = "testnet4"
	SigNet   = "signet"
	RegTest  = "regtest"
)

// MainNetParams runs a 90 second block schedule and forks to the
// weighted retarget at height 8730.
func MainNetParams() *Params {
	return newParams(&Params{
		Name:                MainNet,
		PowLimit:            mustTarget("0fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		PowTargetSpacing:    90,
		PowTargetTimespan:   3 * 24 * 60 * 60,
		LWMAAveragingWindow: 9,
		SwitchLWMABlock:     8730,
	})
}

// TestNetParams runs the weighted retarget from genesis with a short
// three-block legacy interval underneath it.
func TestNetParams() *Params {
	return newParams(&Params{
		Name:                        TestNet,
		PowLimit:                    mustTarget("0fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		PowTargetSpacing:            3 * 60,
		PowTargetTimespan:           9 * 60,
		LWMAAveragingWindow:         9,
		SwitchLWMABlock:             0,
		PowAllowMinDifficultyBlocks: true,
	})
}

// TestNet4Params keeps the inherited two-week periodic retarget with
// the first-block anchor rule.
func TestNet4Params() *Params {
	return newParams(&Params{
		Name:                        TestNet4,
		PowLimit:                    mustTarget("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		PowTargetSpacing:            10 * 60,
		PowTargetTimespan:           14 * 24 * 60 * 60,
		SwitchLWMABlock:             NoLWMA,
		PowAllowMinDifficultyBlocks: true,
		EnforceBIP94:                true,
	})
}

func SigNetParams() *Params {
	return newParams(&Params{
		Name:              SigNet,
		PowLimit:          mustTarget("00000377ae000000000000000000000000000000000000000000000000000000"),
		PowTargetSpacing:  10 * 60,
		PowTargetTimespan: 14 * 24 * 60 * 60,
		SwitchLWMABlock:   NoLWMA,
	})
}

// RegTestParams never retargets so tests can mine at a fixed, easy
// difficulty.
func RegTestParams() *Params {
	return newParams(&Params{
		Name:                        RegTest,
		PowLimit:                    mustTarget("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		PowTargetSpacing:            10 * 60,
		PowTargetTimespan:           24 * 60 * 60,
		SwitchLWMABlock:             NoLWMA,
		PowAllowMinDifficultyBlocks: true,
		PowNoRetargeting:            true,
	})
}

// ParamsByNetwork resolves a network name to its parameters.
func ParamsByNetwork(name string) (*Params, error) {
	switch strings.ToLower(name) {
	case MainNet:
		return MainNetParams(), nil
	case TestNet:
		return TestNetParams(), nil
	case TestNet4:
		return TestNet4Params(), nil
	case SigNet:
		return SigNetParams(), nil
	case RegTest:
		return RegTestParams(), nil
	default:
		return nil, ErrUnknownNetwork
	}
}

func newParams(p *Params) *Params {
	p.PowLimitBits = p.PowLimit.GetCompact()
	return p
}

func mustTarget(hex string) *arith.Uint256 {
	u, ok := arith.NewUint256FromHex(hex)
	if !ok {
		panic("consensus: invalid target constant " + hex)
	}
	return u
}
