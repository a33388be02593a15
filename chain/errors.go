// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var ErrBadParent = errors.New("header does not extend the tip")
