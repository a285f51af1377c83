// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import (
	"math"
	"testing"
)

func TestFastPathF64Direct(t *testing.T) {
	num := Number{Mantissa: 314159, Exponent: -5}
	fp, ok := fastPathF64(num)
	if !ok {
		t.Fatal("fastPathF64 declined a trivially exact input")
	}
	got := math.Float64frombits(fp.toBits(float64Info, false))
	if got != 3.14159 {
		t.Fatalf("fastPathF64({314159,-5}) = %v, want 3.14159", got)
	}
}

func TestFastPathF64Disguised(t *testing.T) {
	// 1 followed by enough zeros to exceed MaxExponentFastPath (22) but
	// stay within MaxExponentFastPathDisguised (37): absorbed by
	// multiplying the mantissa directly.
	num := Number{Mantissa: 1, Exponent: 30}
	fp, ok := fastPathF64(num)
	if !ok {
		t.Fatal("fastPathF64 declined a disguised-range input")
	}
	got := math.Float64frombits(fp.toBits(float64Info, false))
	if got != 1e30 {
		t.Fatalf("fastPathF64({1,30}) = %v, want 1e30", got)
	}
}

func TestFastPathF64DeclinesManyDigits(t *testing.T) {
	num := Number{Mantissa: 1, Exponent: 0, ManyDigits: true}
	if _, ok := fastPathF64(num); ok {
		t.Fatal("fastPathF64 accepted a ManyDigits input")
	}
}

func TestFastPathF64DeclinesOutOfRangeExponent(t *testing.T) {
	num := Number{Mantissa: 1, Exponent: 400}
	if _, ok := fastPathF64(num); ok {
		t.Fatal("fastPathF64 accepted an exponent far outside its fast range")
	}
}

func TestFastPathF32(t *testing.T) {
	num := Number{Mantissa: 5, Exponent: -1}
	fp, ok := fastPathF32(num)
	if !ok {
		t.Fatal("fastPathF32 declined 0.5")
	}
	got := math.Float32frombits(uint32(fp.toBits(float32Info, false)))
	if got != 0.5 {
		t.Fatalf("fastPathF32({5,-1}) = %v, want 0.5", got)
	}
}

func TestFastPathF16(t *testing.T) {
	num := Number{Mantissa: 15, Exponent: -1}
	fp, ok := fastPathF16(num)
	if !ok {
		t.Fatal("fastPathF16 declined 1.5")
	}
	bits := fp.toBits(Float16Info, false)
	// binary16 1.5 = sign 0, exponent 01111 (15), mantissa 1000000000
	wantExp := uint16(15)
	gotExp := uint16(bits>>10) & 0x1F
	if gotExp != wantExp {
		t.Fatalf("fastPathF16({15,-1}) exponent = %d, want %d", gotExp, wantExp)
	}
}

func TestShiftRightRoundToEven(t *testing.T) {
	cases := []struct {
		v, shift, width uint64
		want            uint64
		carried         bool
	}{
		{0b1011, 1, 3, 0b110, false},  // 0b101.1 rounds up (halfway, odd->even up)
		{0b1010, 1, 3, 0b101, false},  // 0b101.0, exact, no rounding
		{0b1001, 1, 3, 0b100, false},  // 0b100.1 rounds to even (100)
		{0, 0, 3, 0, false},
	}
	for _, c := range cases {
		got, carried := shiftRightRoundToEven(c.v, uint(c.shift), uint(c.width))
		if got != c.want || carried != c.carried {
			t.Errorf("shiftRightRoundToEven(%b, %d, %d) = (%b, %v), want (%b, %v)",
				c.v, c.shift, c.width, got, carried, c.want, c.carried)
		}
	}
}

func TestShiftRightRoundToEvenCarries(t *testing.T) {
	// all-ones mantissa rounding up overflows into an extra bit
	got, carried := shiftRightRoundToEven(0b1111, 1, 3)
	if !carried {
		t.Fatal("expected a carry out of width bits")
	}
	if got != 0b100 {
		t.Fatalf("got %b, want %b", got, 0b100)
	}
}

func TestMulCheckedU64(t *testing.T) {
	if v, overflow := mulCheckedU64(2, 3); overflow || v != 6 {
		t.Fatalf("mulCheckedU64(2,3) = (%d,%v), want (6,false)", v, overflow)
	}
	if _, overflow := mulCheckedU64(^uint64(0), 2); !overflow {
		t.Fatal("mulCheckedU64(max,2) should overflow")
	}
}

func TestFastPathF128Direct(t *testing.T) {
	num := Number{Mantissa: 5, Exponent: 0}
	fp, ok := fastPathF128(num)
	if !ok {
		t.Fatal("fastPathF128 declined an exact small integer")
	}
	bits := fp.toBits(false)
	wantBias := uint16(Float128Info.Bias) // 5 = 1.25 * 2**2, biased exp = 2+16383
	gotExp := uint16(bits.Hi>>48) & 0x7FFF
	if int(gotExp)-2 != int(wantBias) {
		t.Fatalf("fastPathF128({5,0}) biased exponent = %d, want %d", gotExp, wantBias+2)
	}
}

func TestFastPathF128DeclinesNegativeExponent(t *testing.T) {
	num := Number{Mantissa: 5, Exponent: -1}
	if _, ok := fastPathF128(num); ok {
		t.Fatal("fastPathF128 accepted a negative decimal exponent")
	}
}
