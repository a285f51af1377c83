// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "testing"

func TestStreamCursor(t *testing.T) {
	s := newStream([]byte("1.5e10"))
	if s.atEnd() {
		t.Fatal("atEnd true on fresh stream")
	}
	if s.len() != 6 {
		t.Fatalf("len() = %d, want 6", s.len())
	}
	if b, ok := s.first(); !ok || b != '1' {
		t.Fatalf("first() = %q, %v, want '1', true", b, ok)
	}
	if !s.firstIs('1') {
		t.Fatal("firstIs('1') = false")
	}
	d, ok := s.parseDigit()
	if !ok || d != 1 {
		t.Fatalf("parseDigit() = %d, %v, want 1, true", d, ok)
	}
	if !s.firstIs('.') {
		t.Fatal("firstIs('.') = false after consuming '1'")
	}
	s.advance(1)
	if !s.firstIsEither('5', 'x') {
		t.Fatal("firstIsEither('5','x') = false")
	}
}

func TestStreamAtEnd(t *testing.T) {
	s := newStream([]byte("12"))
	s.advance(2)
	if !s.atEnd() {
		t.Fatal("atEnd() = false after consuming entire input")
	}
	if _, ok := s.first(); ok {
		t.Fatal("first() reported a byte past the end")
	}
	if _, ok := s.parseDigit(); ok {
		t.Fatal("parseDigit() succeeded past the end")
	}
}

func TestStreamHasLenAndWord64(t *testing.T) {
	s := newStream([]byte("12345678"))
	if !s.hasLen(8) {
		t.Fatal("hasLen(8) = false for an 8-byte input")
	}
	if s.hasLen(9) {
		t.Fatal("hasLen(9) = true for an 8-byte input")
	}
	v := s.word64()
	if !eightDigitsMask(v) {
		t.Fatal("eightDigitsMask(v) = false for an all-digit word")
	}
	if got := parseEightDigitsSWAR(v); got != 12345678 {
		t.Fatalf("parseEightDigitsSWAR(v) = %d, want 12345678", got)
	}
}

func TestEightDigitsMaskRejectsNonDigits(t *testing.T) {
	s := newStream([]byte("1234.678"))
	v := s.word64()
	if eightDigitsMask(v) {
		t.Fatal("eightDigitsMask(v) = true for a word containing '.'")
	}
}

func TestSkipChar(t *testing.T) {
	s := newStream([]byte("___5"))
	s.skipChar('_')
	if b, ok := s.first(); !ok || b != '5' {
		t.Fatalf("after skipChar('_'), first() = %q, %v, want '5', true", b, ok)
	}
}

func TestHexDigitValue(t *testing.T) {
	cases := []struct {
		b    byte
		want uint64
	}{
		{'0', 0}, {'9', 9}, {'a', 10}, {'f', 15}, {'A', 10}, {'F', 15},
	}
	for _, c := range cases {
		if !isHexDigit(c.b) {
			t.Errorf("isHexDigit(%q) = false", c.b)
		}
		if got := hexDigitValue(c.b); got != c.want {
			t.Errorf("hexDigitValue(%q) = %d, want %d", c.b, got, c.want)
		}
	}
	if isHexDigit('g') {
		t.Error("isHexDigit('g') = true")
	}
}
