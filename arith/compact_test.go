// Copyright (C) 2024-2025, Quarry Chain, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package arith

import (
	"testing"
)

func TestSetCompact(t *testing.T) {
	t.Parallel()

	tt := []struct {
		bits     uint32
		hex      string
		negative bool
		overflow bool
	}{
		{bits: 0x00000000, hex: "0"},
		{bits: 0x00123456, hex: "0"},
		{bits: 0x01003456, hex: "0"},
		{bits: 0x02000056, hex: "0"},
		{bits: 0x03000000, hex: "0"},
		{bits: 0x04000000, hex: "0"},
		{bits: 0x00923456, hex: "0"},
		{bits: 0x01803456, hex: "0"},
		{bits: 0x02800056, hex: "0"},
		{bits: 0x03800000, hex: "0"},
		{bits: 0x04800000, hex: "0"},
		{bits: 0x01123456, hex: "12"},
		{bits: 0x01fedcba, hex: "7e", negative: true},
		{bits: 0x02123456, hex: "1234"},
		{bits: 0x03123456, hex: "123456"},
		{bits: 0x04123456, hex: "12345600"},
		{bits: 0x04923456, hex: "12345600", negative: true},
		{bits: 0x05009234, hex: "92340000"},
		{bits: 0x20123456, hex: "1234560000000000000000000000000000000000000000000000000000000000"},
		{bits: 0xff123456, overflow: true},
		{bits: 0x1d00ffff, hex: "ffff0000000000000000000000000000000000000000000000000000"},
		{bits: 0x207fffff, hex: "7fffff0000000000000000000000000000000000000000000000000000000000"},
	}
	for i, tv := range tt {
		u := NewUint256()
		negative, overflow := u.SetCompact(tv.bits)
		if negative != tv.negative {
			t.Fatalf("#%d: negative expected %v, got %v", i, tv.negative, negative)
		}
		if overflow != tv.overflow {
			t.Fatalf("#%d: overflow expected %v, got %v", i, tv.overflow, overflow)
		}
		if tv.overflow {
			continue
		}
		want, ok := NewUint256FromHex(tv.hex)
		if !ok {
			t.Fatalf("#%d: bad test vector %q", i, tv.hex)
		}
		if u.Cmp(want) != 0 {
			t.Fatalf("#%d: value expected %s, got %s", i, want, u)
		}
	}
}

func TestGetCompact(t *testing.T) {
	t.Parallel()

	tt := []struct {
		hex  string
		bits uint32
	}{
		{hex: "0", bits: 0x00000000},
		{hex: "12", bits: 0x01120000},
		{hex: "7e", bits: 0x017e0000},
		{hex: "1234", bits: 0x02123400},
		{hex: "123456", bits: 0x03123456},
		{hex: "12345600", bits: 0x04123456},
		{hex: "92340000", bits: 0x05009234},
		{hex: "1234560000000000000000000000000000000000000000000000000000000000", bits: 0x20123456},
		{hex: "ffff0000000000000000000000000000000000000000000000000000", bits: 0x1d00ffff},
		{hex: "7fffff0000000000000000000000000000000000000000000000000000000000", bits: 0x207fffff},
		{hex: "0fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", bits: 0x200fffff},
		// a mantissa with the sign bit set moves up one exponent byte
		{hex: "80", bits: 0x02008000},
	}
	for i, tv := range tt {
		u, ok := NewUint256FromHex(tv.hex)
		if !ok {
			t.Fatalf("#%d: bad test vector %q", i, tv.hex)
		}
		if bits := u.GetCompact(); bits != tv.bits {
			t.Fatalf("#%d: bits expected %#08x, got %#08x", i, tv.bits, bits)
		}
	}
}

// Values with at most three significant bytes survive an encode/decode
// cycle with both flags clear and the value intact.
func TestCompactRoundTrip(t *testing.T) {
	t.Parallel()

	vectors := []string{
		"1",
		"80",
		"123456",
		"7fffff",
		"ffff0000000000000000000000000000000000000000000000000000",
		"0fffff0000000000000000000000000000000000000000000000000000000000",
		"7fffff0000000000000000000000000000000000000000000000000000000000",
	}
	for i, hex := range vectors {
		u, ok := NewUint256FromHex(hex)
		if !ok {
			t.Fatalf("#%d: bad test vector %q", i, hex)
		}
		rt := NewUint256()
		negative, overflow := rt.SetCompact(u.GetCompact())
		if negative || overflow {
			t.Fatalf("#%d: unexpected flags negative=%v overflow=%v", i, negative, overflow)
		}
		if rt.Cmp(u) != 0 {
			t.Fatalf("#%d: round trip expected %s, got %s", i, u, rt)
		}
	}
}

// Only the top three bytes of a value survive the encoding; everything
// below truncates toward zero.
func TestCompactTruncates(t *testing.T) {
	t.Parallel()

	u, ok := NewUint256FromHex("0fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	if !ok {
		t.Fatal("bad test vector")
	}
	rt := NewUint256()
	if negative, overflow := rt.SetCompact(u.GetCompact()); negative || overflow {
		t.Fatalf("unexpected flags negative=%v overflow=%v", negative, overflow)
	}
	want, ok := NewUint256FromHex("0fffff0000000000000000000000000000000000000000000000000000000000")
	if !ok {
		t.Fatal("bad test vector")
	}
	if rt.Cmp(want) != 0 {
		t.Fatalf("expected truncated %s, got %s", want, rt)
	}
	if rt.Cmp(u) >= 0 {
		t.Fatal("truncation must reduce the value")
	}
}

func BenchmarkSetCompact(b *testing.B) {
	u := NewUint256()
	for n := 0; n < b.N; n++ {
		u.SetCompact(0x1d00ffff)
	}
}

func BenchmarkGetCompact(b *testing.B) {
	u := NewUint256()
	u.SetCompact(0x1d00ffff)
	for n := 0; n < b.N; n++ {
		u.GetCompact()
	}
}
