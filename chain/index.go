// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
)

var _ Node = &BlockNode{}

// BlockNode is an in-memory chain entry. Besides the parent pointer it
// keeps a skip pointer to a much older ancestor, so Ancestor runs in
// O(log n) instead of walking every predecessor.
type BlockNode struct {
	parent *BlockNode
	skip   *BlockNode

	height    int64
	timestamp int64
	bits      uint32
	id        ids.ID
}

// NewBlockNode links a header under its parent. A nil parent creates
// the genesis node at height 0.
func NewBlockNode(header *Header, parent *BlockNode) *BlockNode {
	n := &BlockNode{
		parent:    parent,
		timestamp: header.Timestamp,
		bits:      header.Bits,
		id:        header.ID(),
	}
	if parent != nil {
		n.height = parent.height + 1
		n.skip = parent.ancestor(skipHeight(n.height))
	}
	return n
}

func (n *BlockNode) Height() int64    { return n.height }
func (n *BlockNode) Timestamp() int64 { return n.timestamp }
func (n *BlockNode) Bits() uint32     { return n.bits }
func (n *BlockNode) ID() ids.ID       { return n.id }

func (n *BlockNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *BlockNode) Ancestor(height int64) Node {
	a := n.ancestor(height)
	if a == nil {
		return nil
	}
	return a
}

func (n *BlockNode) ancestor(height int64) *BlockNode {
	if height < 0 || height > n.height {
		return nil
	}

	walk := n
	heightWalk := n.height
	for heightWalk > height {
		heightSkip := skipHeight(heightWalk)
		heightSkipPrev := skipHeight(heightWalk - 1)
		if walk.skip != nil &&
			(heightSkip == height ||
				(heightSkip > height && !(heightSkipPrev < heightSkip-2 && heightSkipPrev >= height))) {
			// Only follow the skip pointer if the parent's own skip
			// would not land closer to the goal.
			walk = walk.skip
			heightWalk = heightSkip
		} else {
			walk = walk.parent
			heightWalk--
		}
	}
	return walk
}

// invertLowestOne clears the lowest set bit of n.
func invertLowestOne(n int64) int64 { return n & (n - 1) }

// skipHeight determines which ancestor height the skip pointer of a
// block at the given height jumps to. Heights near powers of two jump
// further back; the odd/even split spreads pointers so any backward
// walk stays logarithmic.
func skipHeight(height int64) int64 {
	if height < 2 {
		return 0
	}
	if height&1 == 1 {
		return invertLowestOne(invertLowestOne(height-1)) + 1
	}
	return invertLowestOne(height)
}

// Index is an append-only in-memory chain, genesis first. It backs the
// simulator CLI and tests; a real node would keep its own block index
// and only needs to satisfy Node.
type Index struct {
	nodes []*BlockNode
}

// NewIndex starts a chain from a genesis header; the header's Parent
// field is ignored.
func NewIndex(genesis *Header) *Index {
	return &Index{nodes: []*BlockNode{NewBlockNode(genesis, nil)}}
}

func (ix *Index) Tip() *BlockNode { return ix.nodes[len(ix.nodes)-1] }

func (ix *Index) Height() int64 { return ix.Tip().height }

// NodeAt returns the node at the given height, nil when out of range.
func (ix *Index) NodeAt(height int64) *BlockNode {
	if height < 0 || height >= int64(len(ix.nodes)) {
		return nil
	}
	return ix.nodes[height]
}

// Add appends a header that must extend the current tip.
func (ix *Index) Add(header *Header) (*BlockNode, error) {
	if header.Parent != ix.Tip().id {
		return nil, ErrBadParent
	}
	n := NewBlockNode(header, ix.Tip())
	ix.nodes = append(ix.nodes, n)
	return n, nil
}

// Extend appends a block with the given timestamp and bits, filling in
// the parent reference. Convenience for simulations.
func (ix *Index) Extend(timestamp int64, bits uint32) *BlockNode {
	n, err := ix.Add(&Header{
		Parent:    ix.Tip().id,
		Timestamp: timestamp,
		Bits:      bits,
	})
	if err != nil {
		panic(err) // parent is set above, cannot fail
	}
	return n
}
