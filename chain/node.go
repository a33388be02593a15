// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// Node is the read-only view of one accepted block that the difficulty
// engine consumes. Implementations must be immutable once created and
// must keep every node reachable from a tip alive for the duration of
// any call holding that tip.
type Node interface {
	// Height of the block; genesis is 0.
	Height() int64

	// Timestamp is the block time in unix seconds.
	Timestamp() int64

	// Bits is the claimed compact difficulty target.
	Bits() uint32

	// Parent returns the immediate predecessor, nil at genesis.
	Parent() Node

	// Ancestor returns the block at the given height on this node's
	// chain, nil when the height is negative or above the node's own.
	Ancestor(height int64) Node
}
