// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consensus

import "errors"

var ErrUnknownNetwork = errors.New("unknown network")
