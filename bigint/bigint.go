// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigint adapts math/big values into the inputs floatparse's
// string-oriented parser accepts, for callers that already hold a
// *big.Int or *big.Float: each value is rendered as decimal text and that
// text is parsed.
//
// It plays the role the teacher's stdlib.go played for decimal.Decimal:
// a thin bridge to math/big, not a reimplementation of it.
package bigint

import (
	"math/big"

	"github.com/db47h/floatparse"
)

// FromBigInt renders n as a decimal literal and parses it as a binary64
// value, returning the bit pattern. It is exact whenever n's value is
// exactly representable in binary64, and correctly rounded otherwise,
// since it goes through the same tokenizer/fast-path/Eisel-Lemire/
// big-decimal pipeline as any other input.
func FromBigInt(n *big.Int) (uint64, error) {
	return floatparse.ParseFloat64([]byte(n.String()))
}

// FromBigFloat renders f as a decimal literal at a precision sufficient
// to round-trip f's own precision, then parses it as a binary64 value.
// Unlike f.Float64 (which always rounds to the nearest binary64), this
// goes through floatparse's full pipeline, so it is useful primarily as
// a cross-check: FromBigFloat(f) and f.Float64() should agree whenever
// f's value itself came from a binary64 in the first place.
func FromBigFloat(f *big.Float) (uint64, error) {
	digits := (int(f.Prec()) / 3) + 25 // comfortably more than log10(2)*prec
	text := f.Text('e', digits)
	return floatparse.ParseFloat64([]byte(text))
}

// FromBigRat renders r as a decimal literal to enough digits to
// round-trip a binary64 and parses it, for callers building up exact
// rational values (e.g. sums of parsed literals) that need a final
// nearest-binary64 projection.
func FromBigRat(r *big.Rat) (uint64, error) {
	text := r.FloatString(40)
	return floatparse.ParseFloat64([]byte(text))
}
