// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import (
	"math"
	"testing"
)

// TestParseFloat64EndToEnd exercises spec.md §8's literal scenario table.
func TestParseFloat64EndToEnd(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"0", 0x0000000000000000},
		{"-0", 0x8000000000000000},
		{"1e-700", 0x0000000000000000},
		{"1e+700", 0x7ff0000000000000},
		{"-INF", 0xfff0000000000000},
		{"0.7062146892655368", 0x3fe6994f8c4b3584},
	}
	for _, c := range cases {
		got, err := ParseFloat64([]byte(c.in))
		if err != nil {
			t.Errorf("ParseFloat64(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseFloat64(%q) = 0x%016x, want 0x%016x", c.in, got, c.want)
		}
	}
}

func TestParseFloat32EndToEnd(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"1", 0x3f800000},
		{"1.234e3", 0x449a4000},
	}
	for _, c := range cases {
		got, err := ParseFloat32([]byte(c.in))
		if err != nil {
			t.Errorf("ParseFloat32(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseFloat32(%q) = 0x%08x, want 0x%08x", c.in, got, c.want)
		}
	}
}

func TestParseFloat16RoundsToZero(t *testing.T) {
	got, err := ParseFloat16([]byte("2.98023223876953125E-8"))
	if err != nil {
		t.Fatalf("ParseFloat16: unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("ParseFloat16(2.98023223876953125E-8) = 0x%04x, want 0x0000", uint16(got))
	}
}

func TestParseHexFloatSubnormal(t *testing.T) {
	got, err := ParseFloat32([]byte("0x1p-149"))
	if err != nil {
		t.Fatalf("ParseFloat32(0x1p-149): unexpected error: %v", err)
	}
	if got != 0x00000001 {
		t.Fatalf("ParseFloat32(0x1p-149) = 0x%08x, want 0x00000001", got)
	}
}

func TestParseNaN(t *testing.T) {
	for _, in := range []string{"nAn", "NAN", "nan"} {
		got, err := ParseFloat32([]byte(in))
		if err != nil {
			t.Fatalf("ParseFloat32(%q): unexpected error: %v", in, err)
		}
		if got&0x7f800000 != 0x7f800000 {
			t.Fatalf("ParseFloat32(%q) = 0x%08x, exponent not all-ones", in, got)
		}
		if got&0x007fffff == 0 {
			t.Fatalf("ParseFloat32(%q) = 0x%08x, mantissa is zero", in, got)
		}
		if got>>31 != 0 {
			t.Fatalf("ParseFloat32(%q) = 0x%08x, sign bit set", in, got)
		}
	}
}

// TestParseFullConsumption checks spec.md §8's "full consumption" property:
// trailing garbage is always rejected.
func TestParseFullConsumption(t *testing.T) {
	for _, in := range []string{"1abc", "   1", "1 ", "infx", "nanx", "0x1p", "1e"} {
		if _, err := ParseFloat64([]byte(in)); err != ErrInvalid {
			t.Errorf("ParseFloat64(%q) error = %v, want ErrInvalid", in, err)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := ParseFloat64([]byte("")); err != ErrEmpty {
		t.Fatalf("ParseFloat64(\"\") error = %v, want ErrEmpty", err)
	}
}

// TestParseSignSymmetry checks spec.md §8's sign-symmetry property across a
// sample spanning every tier (fast path, Eisel-Lemire, big-decimal).
func TestParseSignSymmetry(t *testing.T) {
	samples := []string{
		"1", "1.5", "100.25", "1.234e3",
		"0.7062146892655368",
		"1.2345678901234567890123456789e10",
		"1e300", "1e-300",
	}
	for _, s := range samples {
		pos, err := ParseFloat64([]byte(s))
		if err != nil {
			t.Fatalf("ParseFloat64(%q): unexpected error: %v", s, err)
		}
		neg, err := ParseFloat64([]byte("-" + s))
		if err != nil {
			t.Fatalf("ParseFloat64(-%q): unexpected error: %v", s, err)
		}
		wantNeg := pos | (uint64(1) << 63)
		if neg != wantNeg {
			t.Errorf("ParseFloat64(-%q) = 0x%016x, want 0x%016x (sign flip of +%q)", s, neg, wantNeg, s)
		}
	}
}

// TestParseUnderscoreEquivalence checks spec.md §8's underscore-insertion
// property: removing valid underscores never changes the parsed value.
func TestParseUnderscoreEquivalence(t *testing.T) {
	got, err := ParseFloat64([]byte("1_2_3.4_5e6_7"))
	if err != nil {
		t.Fatalf("ParseFloat64(underscored): unexpected error: %v", err)
	}
	want, err := ParseFloat64([]byte("123.45e67"))
	if err != nil {
		t.Fatalf("ParseFloat64(plain): unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("underscored literal parsed to 0x%016x, want 0x%016x", got, want)
	}
}

func TestParseHexDecimalEquivalence(t *testing.T) {
	cases := []struct{ hex, dec string }{
		{"0x1p0", "1"},
		{"0x1.8p1", "3"},
		{"0x1.fp10", "1984"},
		{"-0x1.8p1", "-3"},
	}
	for _, c := range cases {
		h, err := ParseFloat64([]byte(c.hex))
		if err != nil {
			t.Fatalf("ParseFloat64(%q): unexpected error: %v", c.hex, err)
		}
		d, err := ParseFloat64([]byte(c.dec))
		if err != nil {
			t.Fatalf("ParseFloat64(%q): unexpected error: %v", c.dec, err)
		}
		if h != d {
			t.Errorf("ParseFloat64(%q) = 0x%016x != ParseFloat64(%q) = 0x%016x", c.hex, h, c.dec, d)
		}
	}
}

func TestFloat64Convenience(t *testing.T) {
	v, ok := Float64([]byte("3.5"))
	if !ok || v != 3.5 {
		t.Fatalf("Float64(\"3.5\") = (%v, %v), want (3.5, true)", v, ok)
	}
	if _, ok := Float64([]byte("")); ok {
		t.Fatal("Float64(\"\") ok = true, want false")
	}
}

func TestFloat32Convenience(t *testing.T) {
	v, ok := Float32([]byte("1.5"))
	if !ok || v != 1.5 {
		t.Fatalf("Float32(\"1.5\") = (%v, %v), want (1.5, true)", v, ok)
	}
}

// TestParseBigDecimalFallback exercises inputs with more than 19 significant
// digits, forcing both the fast path and Eisel-Lemire to decline.
func TestParseBigDecimalFallback(t *testing.T) {
	bits, err := ParseFloat64([]byte("1.2345678901234567890123456789012345e0"))
	if err != nil {
		t.Fatalf("ParseFloat64: unexpected error: %v", err)
	}
	got := math.Float64frombits(bits)
	want := 1.2345678901234567 // the correctly-rounded float64 nearest this value
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseFloat128SmallestSubnormal(t *testing.T) {
	got, err := ParseFloat128([]byte("0x1p-16494"))
	if err != nil {
		t.Fatalf("ParseFloat128: unexpected error: %v", err)
	}
	if got.Hi != 0 || got.Lo != 1 {
		t.Fatalf("ParseFloat128(0x1p-16494) = {%#x, %#x}, want {0, 1}", got.Hi, got.Lo)
	}
}
