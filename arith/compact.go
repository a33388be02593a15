// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package arith

// The compact form packs a 256-bit target into 32 bits the way a
// base-256 floating point number would: the top byte is the exponent
// (the byte length of the full number), bit 23 is the sign and the low
// 23 bits are the mantissa. Only the most significant three bytes of
// the target survive the encoding, which is why consensus code always
// re-decodes after encoding before comparing values.

// SetCompact decodes bits into u and returns whether the encoding was
// negative and whether the magnitude exceeds 256 bits. A value with
// either flag set must be rejected by the caller; the decoded
// magnitude is still stored (reduced modulo 2^256) for inspection.
func (u *Uint256) SetCompact(bits uint32) (negative, overflow bool) {
	size := bits >> 24
	word := bits & 0x007fffff
	if size <= 3 {
		word >>= 8 * (3 - size)
		u.n.SetUint64(uint64(word))
	} else {
		u.n.SetUint64(uint64(word))
		u.n.Lsh(&u.n, uint(8*(size-3)))
		u.reduce()
	}
	negative = word != 0 && bits&0x00800000 != 0
	overflow = word != 0 && (size > 34 ||
		(word > 0xff && size > 33) ||
		(word > 0xffff && size > 32))
	return negative, overflow
}

// GetCompact encodes u using the smallest exponent that preserves the
// top three bytes. A mantissa whose high bit would collide with the
// sign bit is pushed down a byte with the exponent bumped instead.
func (u *Uint256) GetCompact() uint32 {
	size := uint32((u.n.BitLen() + 7) / 8)
	var compact uint32
	if size <= 3 {
		compact = uint32(u.n.Uint64() << (8 * (3 - size)))
	} else {
		top := new(Uint256)
		top.n.Rsh(&u.n, uint(8*(size-3)))
		compact = uint32(top.n.Uint64())
	}
	if compact&0x00800000 != 0 {
		compact >>= 8
		size++
	}
	return compact | size<<24
}
