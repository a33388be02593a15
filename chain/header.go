// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chain provides the read-only chain view the proof-of-work
// rules are evaluated against.
package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
)

const headerSize = 32 + 8 + 4 + 8

// Header carries the fields consensus cares about. Full wire
// serialization lives with the node; the canonical byte form below
// exists only to give headers a stable identity.
type Header struct {
	Parent    ids.ID
	Timestamp int64
	Bits      uint32
	Nonce     uint64
}

func (h *Header) Bytes() []byte {
	b := make([]byte, headerSize)
	copy(b, h.Parent[:])
	binary.BigEndian.PutUint64(b[32:], uint64(h.Timestamp))
	binary.BigEndian.PutUint32(b[40:], h.Bits)
	binary.BigEndian.PutUint64(b[44:], h.Nonce)
	return b
}

// ID is the digest identifying the header.
func (h *Header) ID() ids.ID {
	id, err := ids.ToID(hashing.ComputeHash256(h.Bytes()))
	if err != nil {
		panic(err) // 32-byte digest, cannot fail
	}
	return id
}
