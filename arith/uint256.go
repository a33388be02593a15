// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package arith implements the 256-bit unsigned integer used for
// proof-of-work target arithmetic and its compact encoding.
package arith

import (
	"fmt"
	"math/big"
)

var (
	bigOne = big.NewInt(1)

	// oneLsh256 is 1<<256, the first value that no longer fits.
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)

	// max256 masks a big.Int down to 256 bits.
	max256 = new(big.Int).Sub(oneLsh256, bigOne)
)

// Uint256 is a 256-bit unsigned integer. Operations that could exceed
// 256 bits reduce the value modulo 2^256, exactly like the fixed-width
// type the consensus rules were defined against, and report the
// overflow so callers can reject or clamp instead of trusting a
// wrapped value.
type Uint256 struct {
	n big.Int
}

func NewUint256() *Uint256 { return &Uint256{} }

func NewUint256FromUint64(v uint64) *Uint256 {
	u := &Uint256{}
	u.n.SetUint64(v)
	return u
}

// NewUint256FromBig copies b. Returns false when b is negative or does
// not fit in 256 bits.
func NewUint256FromBig(b *big.Int) (*Uint256, bool) {
	if b.Sign() < 0 || b.Cmp(oneLsh256) >= 0 {
		return nil, false
	}
	u := &Uint256{}
	u.n.Set(b)
	return u, true
}

// NewUint256FromHex parses a big-endian hex string of at most 64
// digits, with or without a 0x prefix.
func NewUint256FromHex(s string) (*Uint256, bool) {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) == 0 || len(s) > 64 {
		return nil, false
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok || n.Sign() < 0 {
		return nil, false
	}
	u := &Uint256{}
	u.n.Set(n)
	return u, true
}

// NewUint256FromHash interprets a 32-byte digest as a little-endian
// integer, the convention block hashes use on the wire.
func NewUint256FromHash(h [32]byte) *Uint256 {
	buf := h
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	u := &Uint256{}
	u.n.SetBytes(buf[:])
	return u
}

func (u *Uint256) Clone() *Uint256 {
	c := &Uint256{}
	c.n.Set(&u.n)
	return c
}

// Big returns a copy of the value as a big.Int.
func (u *Uint256) Big() *big.Int { return new(big.Int).Set(&u.n) }

func (u *Uint256) IsZero() bool { return u.n.Sign() == 0 }

// Cmp returns -1, 0 or 1 depending on whether u is less than, equal
// to or greater than v.
func (u *Uint256) Cmp(v *Uint256) int { return u.n.Cmp(&v.n) }

// Add sets u = u + v and reports whether the sum wrapped past 2^256.
func (u *Uint256) Add(v *Uint256) (overflow bool) {
	u.n.Add(&u.n, &v.n)
	return u.reduce()
}

// MulUint64 sets u = u * s and reports whether the product wrapped.
func (u *Uint256) MulUint64(s uint64) (overflow bool) {
	u.n.Mul(&u.n, new(big.Int).SetUint64(s))
	return u.reduce()
}

// DivUint64 sets u = u / s, rounding toward zero. s must be non-zero.
func (u *Uint256) DivUint64(s uint64) {
	u.n.Div(&u.n, new(big.Int).SetUint64(s))
}

// MulDivUint64 sets u = u * num / den. The intermediate product is
// held at full precision, so the multiply never truncates before the
// divide; overflow is reported only if the final quotient does not
// fit in 256 bits.
func (u *Uint256) MulDivUint64(num, den uint64) (overflow bool) {
	u.n.Mul(&u.n, new(big.Int).SetUint64(num))
	u.n.Div(&u.n, new(big.Int).SetUint64(den))
	return u.reduce()
}

// reduce brings the value back into 256 bits after an operation and
// reports whether anything was lost.
func (u *Uint256) reduce() (overflow bool) {
	if u.n.Cmp(oneLsh256) < 0 {
		return false
	}
	u.n.And(&u.n, max256)
	return true
}

// String returns the value as 64 hex digits, zero padded, matching
// how targets are printed in block explorers and debug logs.
func (u *Uint256) String() string {
	return fmt.Sprintf("%064x", &u.n)
}
