// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "math"

// ParseFloat64 parses s as an IEEE-754 binary64 value and returns its bit
// pattern (spec.md §2). Use math.Float64frombits to recover a float64.
func ParseFloat64(s []byte) (uint64, error) {
	bits, _, err := parse(float64Info, s)
	return bits, err
}

// ParseFloat32 parses s as an IEEE-754 binary32 value and returns its bit
// pattern. Use math.Float32frombits to recover a float32.
func ParseFloat32(s []byte) (uint32, error) {
	bits, _, err := parse(float32Info, s)
	return uint32(bits), err
}

// ParseFloat16 parses s as an IEEE-754 binary16 value and returns it as a
// Float16 bit pattern.
func ParseFloat16(s []byte) (Float16, error) {
	bits, _, err := parse(Float16Info, s)
	return Float16(bits), err
}

// ParseFloat128 parses s as an IEEE-754 binary128 value.
func ParseFloat128(s []byte) (Float128, error) {
	_, f128, err := parse(Float128Info, s)
	return f128, err
}

// Float64 is a convenience wrapper around ParseFloat64 for callers that
// want a native float64 directly. ok is false on any parse error.
func Float64(s []byte) (float64, bool) {
	bits, err := ParseFloat64(s)
	return math.Float64frombits(bits), err == nil
}

// Float32 is Float64's float32 counterpart.
func Float32(s []byte) (float32, bool) {
	bits, err := ParseFloat32(s)
	return math.Float32frombits(bits), err == nil
}

// parse implements spec.md §4: strip an optional sign, recognize the
// inf/nan literals, dispatch to the hex-float path on a "0x"/"0X" prefix,
// and otherwise run the three decimal tiers in order (fast, Eisel-Lemire,
// arbitrary precision), requiring the entire input to be consumed. The
// f128 return is only populated when info is Float128Info (its mantissa
// doesn't fit the uint64 return used by every other precision).
func parse(info FloatInfo, input []byte) (uint64, Float128, error) {
	if len(input) == 0 {
		return 0, Float128{}, ErrEmpty
	}

	s := newStream(input)
	negative := false
	if b, _ := s.first(); b == '+' || b == '-' {
		negative = b == '-'
		s.advance(1)
	}

	// inf/infinity/nan never start with a digit, so the common numeric case
	// skips straight past the case-insensitive literal match.
	if !s.firstIsDigit() {
		if bits, f128, ok := parseSpecialLiteral(info, &s, negative); ok {
			if !s.atEnd() {
				return 0, Float128{}, ErrInvalid
			}
			return bits, f128, nil
		}
	}

	if s.hasLen(2) {
		b0, _ := s.first()
		if b0 == '0' {
			b1 := s.b[s.offset+1]
			if b1 == 'x' || b1 == 'X' {
				s.advance(2)
				bits, f128, err := parseHexFloat(info, &s, negative)
				if err != nil {
					return 0, Float128{}, ErrInvalid
				}
				if !s.atEnd() {
					return 0, Float128{}, ErrInvalid
				}
				return bits, f128, nil
			}
		}
	}

	num, err := tokenizeDecimal(&s, negative)
	if err != nil {
		return 0, Float128{}, ErrInvalid
	}
	if !s.atEnd() {
		return 0, Float128{}, ErrInvalid
	}

	if num.Mantissa == 0 {
		return finishBits(info, zeroFp().toBits(info, negative))
	}

	if info.MantissaExplicitBits > 52 {
		// binary128: no Eisel-Lemire tier (spec.md §9).
		if fp, ok := fastPathF128(num); ok {
			return 0, fp.toBits(negative), nil
		}
		d := parseBigDecimal(newStreamFromNumber(input, negative), negative)
		fp := bigToBiasedFp128(info, &d)
		return 0, fp.toBits(negative), nil
	}

	if fp, ok := fastPathFor(info, num); ok {
		return finishBits(info, fp.toBits(info, negative))
	}
	if !num.ManyDigits {
		if fp, ok := eiselLemire(info, num.Mantissa, num.Exponent, negative); ok {
			return finishBits(info, fp.toBits(info, negative))
		}
	}

	d := parseBigDecimal(newStreamFromNumber(input, negative), negative)
	fp := bigToBiasedFp(info, &d)
	return finishBits(info, fp.toBits(info, negative))
}

// finishBits is a small adapter so parse's single return statement shape
// can serve both the uint64-bits precisions and, uniformly, return a zero
// Float128 for them.
func finishBits(info FloatInfo, bits uint64) (uint64, Float128, error) {
	return bits, Float128{}, nil
}

// fastPathFor dispatches to the precision-specific native fast path
// (spec.md §4.3); f128 never reaches here (parse handles it separately
// above since its mantissa doesn't fit a uint64 biasedFp).
func fastPathFor(info FloatInfo, num Number) (biasedFp, bool) {
	switch info.MantissaExplicitBits {
	case float64Info.MantissaExplicitBits:
		return fastPathF64(num)
	case float32Info.MantissaExplicitBits:
		return fastPathF32(num)
	case Float16Info.MantissaExplicitBits:
		return fastPathF16(num)
	default:
		return invalidFp(), false
	}
}

// newStreamFromNumber re-scans the input from the start of the digits
// (skipping any sign byte already consumed by the facade) for the slow
// path, which needs the original digit sequence rather than Number's
// truncated mantissa.
func newStreamFromNumber(input []byte, negative bool) *stream {
	s := newStream(input)
	if b, ok := s.first(); ok && (b == '+' || b == '-') {
		s.advance(1)
	}
	return &s
}

// canonicalNaNMantissa is the quiet-NaN payload assembled for both the
// "nan" literal and any input spec.md's grammar doesn't otherwise
// distinguish further: the most significant explicit mantissa bit (the
// quiet bit, just below the implicit bit position) set and every other
// payload bit clear, so the result is never mistaken for an infinity.
func canonicalNaNMantissa(info FloatInfo) uint64 {
	return uint64(1) << (info.MantissaExplicitBits - 1)
}

// parseSpecialLiteral recognizes "inf", "infinity", and "nan" (any ASCII
// case, per spec.md §4.6), returning the assembled bits/f128 and ok == true
// if s was positioned at one. On a match s is advanced past the literal;
// the caller still enforces full consumption afterward.
func parseSpecialLiteral(info FloatInfo, s *stream, negative bool) (uint64, Float128, bool) {
	if matchCaseless(s, "infinity") || matchCaseless(s, "inf") {
		if info.MantissaExplicitBits > 52 {
			fp := infFp128(info)
			return 0, fp.toBits(negative), true
		}
		return infFp(info).toBits(info, negative), Float128{}, true
	}
	if matchCaseless(s, "nan") {
		if info.MantissaExplicitBits > 52 {
			fp := biasedFp128{f: bit128(info.MantissaExplicitBits - 1), e: int32(info.InfinitePower)}
			return 0, fp.toBits(negative), true
		}
		fp := biasedFp{f: canonicalNaNMantissa(info), e: int32(info.InfinitePower)}
		return fp.toBits(info, negative), Float128{}, true
	}
	return 0, Float128{}, false
}

// matchCaseless reports whether s is positioned at an ASCII
// case-insensitive match of lit, consuming it if so.
func matchCaseless(s *stream, lit string) bool {
	if !s.hasLen(len(lit)) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		c := s.b[s.offset+i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lit[i] {
			return false
		}
	}
	s.advance(len(lit))
	return true
}
