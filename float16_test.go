// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "testing"

func TestBiasedFp128ToBits(t *testing.T) {
	fp := biasedFp128{f: uint128{hi: 0x1, lo: 0x2}, e: 0x1234}
	got := fp.toBits(false)
	wantHi := uint64(0x1) | (uint64(0x1234) << 48)
	if got.Hi != wantHi || got.Lo != 0x2 {
		t.Fatalf("toBits(false) = {Hi:%#x Lo:%#x}, want {Hi:%#x Lo:%#x}", got.Hi, got.Lo, wantHi, uint64(0x2))
	}
	neg := fp.toBits(true)
	if neg.Hi&(uint64(1)<<63) == 0 {
		t.Fatal("toBits(true) did not set the sign bit")
	}
}

func TestZeroAndInfFp128(t *testing.T) {
	z := zeroFp128()
	if z.f != (uint128{}) || z.e != 0 {
		t.Fatalf("zeroFp128() = %+v, want zero value", z)
	}
	inf := infFp128(Float128Info)
	if inf.e != int32(Float128Info.InfinitePower) {
		t.Fatalf("infFp128(Float128Info).e = %d, want %d", inf.e, Float128Info.InfinitePower)
	}
}
