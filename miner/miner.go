// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package miner grinds header nonces until the proof-of-work check
// passes. It exists for the CLI and for tests that need blocks with
// real work; block assembly stays with the node.
package miner

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"
	"golang.org/x/crypto/sha3"
	"golang.org/x/sync/errgroup"

	"github.com/quarrychain/quarry/chain"
	"github.com/quarrychain/quarry/consensus"
	"github.com/quarrychain/quarry/pow"
)

const durPrecision = 10 * time.Millisecond

var concurrency = uint64(runtime.NumCPU())

// PowHash is the digest the proof-of-work check consumes, computed
// over the header's canonical bytes.
func PowHash(h *chain.Header) ids.ID {
	return ids.ID(sha3.Sum256(h.Bytes()))
}

// Mine searches for a nonce whose digest satisfies header.Bits. The
// other header fields are left untouched. Set a context timeout to
// fail fast on targets that are too hard to grind.
func Mine(ctx context.Context, header chain.Header, params *consensus.Params) (chain.Header, ids.ID, error) {
	now := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	// The header and its digest must be published together: two
	// workers can solve within the same instant at easy targets, and
	// interleaved writes would hand back a mismatched pair.
	var (
		solveOnce  sync.Once
		solved     chain.Header
		solvedHash ids.ID
	)

	for i := uint64(0); i < concurrency; i++ {
		j := i // each worker strides the nonce space from its own offset
		g.Go(func() error {
			h := header
			for nonce := j; ; nonce += concurrency {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				h.Nonce = nonce
				digest := PowHash(&h)
				if pow.CheckProofOfWork(digest, h.Bits, params) {
					solveOnce.Do(func() {
						solved = h
						solvedHash = digest
						color.Green(
							"mining complete[%d] (elapsed=%v)",
							nonce, time.Since(now).Round(durPrecision),
						)
					})
					return ErrSolution
				}
			}
		})
	}
	if err := g.Wait(); !errors.Is(err, ErrSolution) {
		return chain.Header{}, ids.ID{}, err
	}
	return solved, solvedHash, nil
}
