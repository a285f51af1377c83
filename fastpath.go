// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import (
	"math"
	"math/big"
	"math/bits"
)

// pow10Float64 holds the powers of ten that are exactly representable as a
// float64 (spec.md §4.3): 10**k == 2**k * 5**k, and 5**k needs at most 53
// bits up to k == 22 (5**23 no longer fits the mantissa). Also used, as is,
// by the f16 fast path below, which computes in float64; f32 has its own
// pow10Float32.
var pow10Float64 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// pow10Float32 holds the powers of ten exactly representable as a float32:
// 5**k needs at most 24 bits, true up to k == 10.
var pow10Float32 = [...]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// mulCheckedU64 computes x*y and reports whether it overflowed 64 bits, the
// integer-domain equivalent of the teacher's carry-producing mulAddWW
// (dec_arith.go) used here to implement the fast path's "disguised" case
// (spec.md §4.3).
func mulCheckedU64(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi != 0
}

// fastPathF64 implements spec.md §4.3 for a float64 target using native
// float64 arithmetic: both operands are guaranteed exact, so IEEE-754
// guarantees the single multiply/divide is the correctly rounded result,
// with no second rounding step to reason about.
func fastPathF64(num Number) (biasedFp, bool) {
	return fastPathNative(float64Info, num, func(m uint64, exp int, negate bool) biasedFp {
		v := float64(m)
		if exp >= 0 {
			v *= pow10Float64[exp]
		} else {
			v /= pow10Float64[-exp]
		}
		if negate {
			v = -v
		}
		return biasedFpFromFloat64(v)
	})
}

// fastPathF32 mirrors fastPathF64 but computes in native float32 arithmetic
// so there is likewise no second rounding step.
func fastPathF32(num Number) (biasedFp, bool) {
	return fastPathNative(float32Info, num, func(m uint64, exp int, negate bool) biasedFp {
		v := float32(m)
		if exp >= 0 {
			v *= pow10Float32[exp]
		} else {
			v /= pow10Float32[-exp]
		}
		if negate {
			v = -v
		}
		return biasedFpFromFloat32(v)
	})
}

// fastPathF16 computes in float64 and narrows the result to binary16. This
// is a genuine double rounding, safe per the classical double-rounding
// theorem (a result correctly rounded to p1 bits is safe to round again to
// p2 bits when p1 >= 2*p2+2): float64's 53 >= 2*11+2 = 24 for binary16's
// 11-bit significand (10 explicit bits plus the implicit one).
func fastPathF16(num Number) (biasedFp, bool) {
	return fastPathNative(Float16Info, num, func(m uint64, exp int, negate bool) biasedFp {
		v := float64(m)
		if exp >= 0 {
			v *= pow10Float64[exp]
		} else {
			v /= pow10Float64[-exp]
		}
		if negate {
			v = -v
		}
		return narrowFloat64ToInfo(v, Float16Info)
	})
}

// fastPathNative holds the range/overflow checks common to every native
// fast-path instantiation (spec.md §4.3's "Direct"/"Disguised" split);
// convert performs the actual arithmetic in whichever native type the
// caller chose and reports the resulting bits.
func fastPathNative(info FloatInfo, num Number, convert func(m uint64, exp int, negate bool) biasedFp) (biasedFp, bool) {
	if num.ManyDigits || num.Mantissa > info.MaxMantissaFastPath {
		return invalidFp(), false
	}
	exp := int(num.Exponent)
	switch {
	case info.MinExponentFastPath <= exp && exp <= info.MaxExponentFastPath:
		return convert(num.Mantissa, exp, num.Negative), true
	case exp > info.MaxExponentFastPath && exp <= info.MaxExponentFastPathDisguised:
		// Disguised fast path: absorb the excess decimal exponent into the
		// integer mantissa via a checked multiply before converting.
		excess := exp - info.MaxExponentFastPath
		scale := uint64(1)
		for i := 0; i < excess; i++ {
			scale *= 10
		}
		m, overflow := mulCheckedU64(num.Mantissa, scale)
		if overflow || m > info.MaxMantissaFastPath {
			return invalidFp(), false
		}
		return convert(m, info.MaxExponentFastPath, num.Negative), true
	default:
		return invalidFp(), false
	}
}

// biasedFpFromFloat64 decomposes an already correctly-rounded, finite,
// nonzero float64 into a biasedFp for binary64.
func biasedFpFromFloat64(v float64) biasedFp {
	bits := math.Float64bits(v)
	return biasedFp{
		f: bits & ((1 << 52) - 1),
		e: int32((bits >> 52) & 0x7FF),
	}
}

// biasedFpFromFloat32 decomposes an already correctly-rounded, finite,
// nonzero float32 into a biasedFp for binary32.
func biasedFpFromFloat32(v float32) biasedFp {
	bits := math.Float32bits(v)
	return biasedFp{
		f: uint64(bits & ((1 << 23) - 1)),
		e: int32((bits >> 23) & 0xFF),
	}
}

// narrowFloat64ToInfo re-rounds an exact/correctly-rounded float64 value
// down into a narrower FloatInfo's bit layout (used by fastPathF16). v is
// assumed finite; overflow to infinity and underflow to zero/subnormal are
// both handled.
func narrowFloat64ToInfo(v float64, info FloatInfo) biasedFp {
	bits := math.Float64bits(v)
	negExp := int64((bits>>52)&0x7FF) - 1023
	mant := bits & ((1 << 52) - 1)
	full := mant | (1 << 52) // restore implicit bit (v != 0 on this path)

	shift := uint(52 - info.MantissaExplicitBits)
	trueExp := int(negExp) + info.Bias
	if trueExp >= info.InfinitePower {
		return infFp(info)
	}
	if trueExp <= 0 {
		// Subnormal in the target format: shift further right by the
		// additional amount needed to reach exponent 1, rounding to even.
		extra := uint(1 - trueExp)
		shift += extra
		trueExp = 0
	}
	mbits := uint(info.MantissaExplicitBits) + 1
	rounded, carried := shiftRightRoundToEven(full, shift, mbits)
	if carried {
		trueExp++
	}
	if trueExp >= info.InfinitePower {
		return infFp(info)
	}
	return biasedFp{f: rounded &^ (1 << info.MantissaExplicitBits), e: int32(trueExp)}
}

// shiftRightRoundToEven shifts v right by shift bits, rounding the
// discarded bits to nearest-even. width is the bit width the result is
// expected to fit after shifting (e.g. MantissaExplicitBits+1); if rounding
// carries one bit past it (an all-ones mantissa rounding up to the next
// power of two), the result is returned already shifted right by one more
// bit and the second return is true, so the caller only bumps its exponent.
func shiftRightRoundToEven(v uint64, shift, width uint) (uint64, bool) {
	if shift == 0 {
		return v, false
	}
	if shift >= 64 {
		return 0, false
	}
	halfway := uint64(1) << (shift - 1)
	rem := v & ((1 << shift) - 1)
	q := v >> shift
	switch {
	case rem > halfway, rem == halfway && q&1 == 1:
		q++
	}
	if q>>width != 0 {
		return q >> 1, true
	}
	return q, false
}

// fastPathF128 implements only the exact-integer ("direct", non-negative
// decimal exponent) sub-case of spec.md §4.3 for binary128, using
// arbitrary-precision integer arithmetic (math/big) so there is no
// floating-point rounding at all to reason about. The disguised/negative-
// exponent sub-cases are not attempted for f128: spec.md §9 notes f128
// uses "fast + slow only", and the bigdecimal fallback is always
// available and always correct, so declining here simply routes those
// inputs to bigdecimal.go instead of risking an unverifiable extended-
// precision division.
func fastPathF128(num Number) (biasedFp128, bool) {
	if num.ManyDigits || num.Exponent < 0 || num.Exponent > int64(Float128Info.MaxExponentFastPathDisguised) {
		return biasedFp128{}, false
	}
	v := new(big.Int).SetUint64(num.Mantissa)
	if num.Exponent > 0 {
		p := new(big.Int).Exp(big.NewInt(10), big.NewInt(num.Exponent), nil)
		v.Mul(v, p)
	}
	return biasedFp128FromBigInt(v)
}

// biasedFp128FromBigInt normalizes a nonnegative, exactly-known integer
// value into a biasedFp128, rounding to even on truncation.
func biasedFp128FromBigInt(v *big.Int) (biasedFp128, bool) {
	if v.Sign() == 0 {
		return zeroFp128(), true
	}
	info := Float128Info
	bitLen := v.BitLen()
	mbits := int(info.MantissaExplicitBits) + 1
	trueExp := bitLen - 1 + info.Bias
	if trueExp >= info.InfinitePower {
		return infFp128(info), true
	}
	shift := bitLen - mbits
	var q *big.Int
	var carried bool
	if shift <= 0 {
		q = new(big.Int).Lsh(v, uint(-shift))
	} else {
		full := new(big.Int).Rsh(v, uint(shift))
		rem := new(big.Int).Sub(v, new(big.Int).Lsh(full, uint(shift)))
		half := new(big.Int).Lsh(big.NewInt(1), uint(shift-1))
		cmp := rem.Cmp(half)
		q = full
		if cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
			q.Add(q, big.NewInt(1))
			carried = true
		}
	}
	mant := bigIntToUint128(q)
	if carried && q.BitLen() > mbits {
		mant = mant.shr(1)
		trueExp++
	}
	if trueExp >= info.InfinitePower {
		return infFp128(info), true
	}
	return biasedFp128{f: mant.clearBit(uint(info.MantissaExplicitBits)), e: int32(trueExp)}, true
}
