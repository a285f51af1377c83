// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "testing"

func tokenize(t *testing.T, s string) Number {
	t.Helper()
	stream := newStream([]byte(s))
	num, err := tokenizeDecimal(&stream, false)
	if err != nil {
		t.Fatalf("tokenizeDecimal(%q) error: %v", s, err)
	}
	if !stream.atEnd() {
		t.Fatalf("tokenizeDecimal(%q) left %d bytes unconsumed", s, stream.len())
	}
	return num
}

func TestTokenizeDecimalBasic(t *testing.T) {
	cases := []struct {
		in       string
		mantissa uint64
		exponent int64
	}{
		{"0", 0, 0},
		{"123", 123, 0},
		{"123.456", 123456, -3},
		{"1.5e10", 15, 9},
		{"1.5e-3", 15, -4},
		{".5", 5, -1},
		{"100", 100, 0},
		{"1_000_000", 1000000, 0},
		{"1_2.3_4", 1234, -2},
	}
	for _, c := range cases {
		num := tokenize(t, c.in)
		if num.Mantissa != c.mantissa || num.Exponent != c.exponent {
			t.Errorf("tokenizeDecimal(%q) = {%d, %d}, want {%d, %d}",
				c.in, num.Mantissa, num.Exponent, c.mantissa, c.exponent)
		}
	}
}

func TestTokenizeDecimalManyDigits(t *testing.T) {
	num := tokenize(t, "1.234567890123456789012345")
	if !num.ManyDigits {
		t.Fatal("ManyDigits = false for a 25-significant-digit literal")
	}
}

func TestTokenizeDecimalRejectsMisplacedUnderscore(t *testing.T) {
	cases := []string{"_1", "1_", "1__2", "1._5", "1.5_", "1e_5", "1e5_"}
	for _, in := range cases {
		s := newStream([]byte(in))
		if _, err := tokenizeDecimal(&s, false); err != errInvalidUnderscore {
			t.Errorf("tokenizeDecimal(%q) error = %v, want errInvalidUnderscore", in, err)
		}
	}
}

func TestTokenizeDecimalRejectsNoDigits(t *testing.T) {
	s := newStream([]byte("."))
	if _, err := tokenizeDecimal(&s, false); err != errNoDigits {
		t.Fatalf("tokenizeDecimal(\".\") error = %v, want errNoDigits", err)
	}
}

func TestTokenizeDecimalMalformedExponent(t *testing.T) {
	s := newStream([]byte("1e"))
	if _, err := tokenizeDecimal(&s, false); err != errMalformedExponent {
		t.Fatalf("tokenizeDecimal(\"1e\") error = %v, want errMalformedExponent", err)
	}
}

func TestTokenizeDecimalExponentOnlySuffixNotConsumedOnFailure(t *testing.T) {
	// "1e+" has no exponent digits: tokenizeDecimal reports
	// errMalformedExponent and rewinds the stream to the 'e', leaving the
	// 'e' and sign unconsumed.
	s := newStream([]byte("1e+"))
	if _, err := tokenizeDecimal(&s, false); err != errMalformedExponent {
		t.Fatalf("tokenizeDecimal(\"1e+\") error = %v, want errMalformedExponent", err)
	}
	if s.offset != 1 {
		t.Fatalf("tokenizeDecimal(\"1e+\") left offset %d, want 1 (at the 'e')", s.offset)
	}
}

func TestSplitDigits(t *testing.T) {
	got := splitDigits(12345678)
	want := [8]byte{1, 2, 3, 4, 5, 6, 7, 8}
	if got != want {
		t.Fatalf("splitDigits(12345678) = %v, want %v", got, want)
	}
}

func TestTokenizeDecimalNegativeThreaded(t *testing.T) {
	s := newStream([]byte("42"))
	num, err := tokenizeDecimal(&s, true)
	if err != nil {
		t.Fatal(err)
	}
	if !num.Negative {
		t.Fatal("Negative = false, want true")
	}
}
