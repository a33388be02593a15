// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import "errors"

var (
	ErrOverrideForbidden  = errors.New("parameter overrides are only allowed on regtest")
	ErrLWMAWindowRequired = errors.New("switchLWMABlock override requires a positive lwmaAveragingWindow")
)
