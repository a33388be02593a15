// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package miner

import "errors"

// ErrSolution stops the worker group once any worker finds a valid
// nonce; it never escapes Mine.
var ErrSolution = errors.New("solution found")
