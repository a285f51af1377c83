// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "math/bits"

// hexMantissaBits is the width parseHexDigits accumulates into before
// falling back to tracking truncation: enough for binary128's 112 explicit
// + 1 implicit bits with headroom, using a uint128 rather than a uint64 so
// the same scan serves every target precision (spec.md §4.7).
const hexMantissaBits = 124

// parseHexDigits scans the digit/'.'/'_' portion of a hex-float literal
// (spec.md §4.7) into a normalized-later mantissa and its associated
// decimal... really binary... exponent contribution, common to every
// target precision. s must be positioned just after the "0x"/"0X" prefix.
func parseHexDigits(s *stream) (mantissa uint128, mantissaBits int, exponent int64, truncated, sawDigit bool) {
	sawDot := false
	for {
		b, ok := s.first()
		if !ok {
			break
		}
		switch {
		case b == '_':
			s.skipChar('_')
		case b == '.' && !sawDot:
			sawDot = true
			s.advance(1)
		case isHexDigit(b):
			sawDigit = true
			v := hexDigitValue(b)
			switch {
			case mantissaBits < hexMantissaBits:
				mantissa = mantissa.shl4().or64(v)
				if mantissa != (uint128{}) {
					mantissaBits += 4 // leading zero digits do not use up the budget
				}
				if sawDot {
					exponent -= 4
				}
			case !sawDot:
				if v != 0 {
					truncated = true
				}
				exponent += 4
			default:
				if v != 0 {
					truncated = true
				}
			}
			s.advance(1)
		default:
			return mantissa, mantissaBits, exponent, truncated, sawDigit
		}
	}
	return mantissa, mantissaBits, exponent, truncated, sawDigit
}

// shl4 shifts z left by 4 bits, discarding any overflow beyond 128 bits
// (parseHexDigits never shifts past hexMantissaBits, so there is none in
// practice).
func (z uint128) shl4() uint128 {
	return uint128{hi: z.hi<<4 | z.lo>>60, lo: z.lo << 4}
}

// or64 ORs the low 4 bits of v into z's low bits.
func (z uint128) or64(v uint64) uint128 {
	z.lo |= v
	return z
}

// parseHexExponent consumes the mandatory 'p'/'P' binary exponent suffix
// (spec.md §4.7: unlike the decimal grammar's exponent, this one is not
// optional).
func parseHexExponent(s *stream) (int64, error) {
	if !s.firstIsEither('p', 'P') {
		return 0, errMalformedExponent
	}
	s.advance(1)
	sign := int64(1)
	if s.firstIsEither('+', '-') {
		if s.firstIs('-') {
			sign = -1
		}
		s.advance(1)
	}
	var suffix int64
	sawDigit := false
	for {
		d, ok := s.parseDigit()
		if !ok {
			break
		}
		sawDigit = true
		if suffix < maxExponentMagnitude {
			suffix = suffix*10 + int64(d)
			if suffix > maxExponentMagnitude {
				suffix = maxExponentMagnitude
			}
		}
	}
	if !sawDigit {
		return 0, errMalformedExponent
	}
	return sign * suffix, nil
}

// normalizeHex turns the raw (mantissa, mantissaBits, exponent) triple
// from parseHexDigits/parseHexExponent into a left-normalized 128-bit
// mantissa (top bit set) and the corresponding unbiased binary exponent of
// the represented value, or ok == false for an exact zero.
func normalizeHex(mantissa uint128, exponent int64) (norm uint128, unbiasedExp int64, ok bool) {
	if mantissa.hi == 0 && mantissa.lo == 0 {
		return uint128{}, 0, false
	}
	lz := leadingZeros128(mantissa)
	norm = shiftLeft128(mantissa, uint(lz))
	// norm now occupies the full 128 bits with its top bit set, i.e. it
	// equals 2**127 * (1+frac); the true value is norm * 2**(exponent-lz),
	// which is (1+frac) * 2**(127+exponent-lz).
	return norm, 127 + exponent - int64(lz), true
}

// leadingZeros128 counts leading zero bits of v across both words.
func leadingZeros128(v uint128) int {
	if v.hi != 0 {
		return bits.LeadingZeros64(v.hi)
	}
	return 64 + bits.LeadingZeros64(v.lo)
}

// maskLow128 returns a uint128 with its low n bits set (n in [0, 128)).
func maskLow128(n uint) uint128 {
	switch {
	case n == 0:
		return uint128{}
	case n < 64:
		return uint128{lo: uint64(1)<<n - 1}
	default:
		return uint128{hi: uint64(1)<<(n-64) - 1, lo: ^uint64(0)}
	}
}

// shiftLeft128 shifts v left by n bits (n < 128), discarding overflow.
func shiftLeft128(v uint128, n uint) uint128 {
	switch {
	case n == 0:
		return v
	case n < 64:
		return uint128{hi: v.hi<<n | v.lo>>(64-n), lo: v.lo << n}
	default:
		return uint128{hi: v.lo << (n - 64), lo: 0}
	}
}

// roundHexTo rounds a left-normalized 128-bit mantissa (top bit set,
// representing 1.xxxx) down to mbits+1 significant bits using
// round-half-to-even, given any truncation already recorded upstream
// (spec.md §4.7). It returns the rounded mantissa right-justified in the
// low mbits+1 bits, plus the binary exponent adjusted for a rounding
// carry.
func roundHexTo(norm uint128, unbiasedExp int64, mbits int, truncated bool) (uint128, int64) {
	shift := uint(127 - mbits)
	mant := norm.shr(shift)
	roundBit := norm.shr(shift - 1).lo & 1
	lowMask := maskLow128(shift - 1)
	sticky := truncated || (uint128{hi: norm.hi & lowMask.hi, lo: norm.lo & lowMask.lo}) != uint128{}
	if roundBit == 1 && (sticky || mant.lo&1 == 1) {
		mant = addOne128(mant)
		if leadingOneAt(mant, mbits+1) {
			mant = mant.shr(1)
			unbiasedExp++
		}
	}
	return mant, unbiasedExp
}

// addOne128 adds 1 to v.
func addOne128(v uint128) uint128 {
	return v.add64(1)
}

// leadingOneAt reports whether v's bit at position n is set (used to
// detect a rounding carry that grew the mantissa by one bit).
func leadingOneAt(v uint128, n int) bool {
	if n < 64 {
		return v.lo&(uint64(1)<<uint(n)) != 0
	}
	return v.hi&(uint64(1)<<uint(n-64)) != 0
}

// parseHexFloat implements spec.md §4.7 for any target precision,
// returning the assembled bits for formats whose mantissa fits a uint64
// and, separately, a Float128 for binary128 (the caller knows which one
// to use from the target FloatInfo).
func parseHexFloat(info FloatInfo, s *stream, negative bool) (uint64, Float128, error) {
	mantissa, _, exponent, truncated, sawDigit := parseHexDigits(s)
	if !sawDigit {
		return 0, Float128{}, errNoDigits
	}
	expSuffix, err := parseHexExponent(s)
	if err != nil {
		return 0, Float128{}, err
	}
	exponent += expSuffix

	norm, unbiasedExp, ok := normalizeHex(mantissa, exponent)
	if !ok {
		if info.MantissaExplicitBits > 52 {
			return 0, zeroFp128().toBits(negative), nil
		}
		return zeroFp().toBits(info, negative), Float128{}, nil
	}

	mbits := int(info.MantissaExplicitBits)
	biasedExp := unbiasedExp + int64(info.Bias)
	if biasedExp <= 0 {
		extra := uint(1 - biasedExp)
		if extra >= 128 {
			if info.MantissaExplicitBits > 52 {
				return 0, zeroFp128().toBits(negative), nil
			}
			return zeroFp().toBits(info, negative), Float128{}, nil
		}
		lowMask := maskLow128(extra)
		if (uint128{hi: norm.hi & lowMask.hi, lo: norm.lo & lowMask.lo}) != (uint128{}) {
			truncated = true
		}
		norm = norm.shr(extra)
		biasedExp = 0
	}

	mant, biasedExp := roundHexTo(norm, biasedExp, mbits, truncated)
	if biasedExp == 0 && leadingOneAt(mant, mbits) {
		biasedExp = 1 // a subnormal that rounded up to the smallest normal
	}

	if biasedExp >= int64(info.InfinitePower) {
		if info.MantissaExplicitBits > 52 {
			return 0, infFp128(info).toBits(negative), nil
		}
		return infFp(info).toBits(info, negative), Float128{}, nil
	}

	if info.MantissaExplicitBits > 52 {
		fp := biasedFp128{f: mant.clearBit(uint(mbits)), e: int32(biasedExp)}
		return 0, fp.toBits(negative), nil
	}
	fp := biasedFp{f: mant.lo &^ (uint64(1) << uint(mbits)), e: int32(biasedExp)}
	return fp.toBits(info, negative), Float128{}, nil
}
