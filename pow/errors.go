// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pow

import (
	"errors"
)

var (
	// Target Correctness
	ErrTargetNegative   = errors.New("target is negative")
	ErrTargetZero       = errors.New("target is zero")
	ErrTargetOverflow   = errors.New("target overflows 256 bits")
	ErrTargetAboveLimit = errors.New("target above proof of work limit")
)
