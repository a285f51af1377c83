// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "testing"

func TestMul64x64(t *testing.T) {
	got := mul64x64(^uint64(0), ^uint64(0))
	// (2**64-1)**2 = 2**128 - 2**65 + 1
	want := uint128{hi: 0xFFFFFFFFFFFFFFFE, lo: 1}
	if got != want {
		t.Fatalf("mul64x64(max,max) = %+v, want %+v", got, want)
	}
}

func TestUint128Add64Carry(t *testing.T) {
	z := uint128{hi: 0, lo: ^uint64(0)}
	got := z.add64(1)
	want := uint128{hi: 1, lo: 0}
	if got != want {
		t.Fatalf("add64 carry: got %+v, want %+v", got, want)
	}
}

func TestUint128Shr(t *testing.T) {
	z := uint128{hi: 1, lo: 0}
	if got, want := z.shr(0), z; got != want {
		t.Errorf("shr(0) = %+v, want %+v", got, want)
	}
	if got, want := z.shr(64), (uint128{hi: 0, lo: 1}); got != want {
		t.Errorf("shr(64) = %+v, want %+v", got, want)
	}
	if got, want := z.shr(65), (uint128{}); got != want {
		t.Errorf("shr(65) = %+v, want %+v", got, want)
	}
	if got, want := z.shr(200), (uint128{}); got != want {
		t.Errorf("shr(200) = %+v, want %+v", got, want)
	}
	z2 := uint128{hi: 0, lo: 0x3}
	if got, want := z2.shr(1), (uint128{hi: 0, lo: 1}); got != want {
		t.Errorf("shr(1) = %+v, want %+v", got, want)
	}
}

func TestUint128ClearBitAndBit128(t *testing.T) {
	v := uint128{hi: 0xF, lo: 0xF}
	v = v.clearBit(0)
	if v.lo != 0xE {
		t.Fatalf("clearBit(0): lo = %x, want %x", v.lo, 0xE)
	}
	v = v.clearBit(64)
	if v.hi != 0xE {
		t.Fatalf("clearBit(64): hi = %x, want %x", v.hi, 0xE)
	}
	if got, want := bit128(0), (uint128{lo: 1}); got != want {
		t.Errorf("bit128(0) = %+v, want %+v", got, want)
	}
	if got, want := bit128(64), (uint128{hi: 1}); got != want {
		t.Errorf("bit128(64) = %+v, want %+v", got, want)
	}
}
