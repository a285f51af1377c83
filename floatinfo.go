// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

// Float is the set of built-in Go floating-point types infoFor maps to
// their FloatInfo. The parsing tiers themselves are not generic: they take
// a FloatInfo value, which is also how Float16Info and Float128Info (below)
// are handled, float16 and float128 having no native Go type.
type Float interface {
	~float32 | ~float64
}

// FloatInfo holds the per-target-precision constants the tokenizer and the
// fast/Eisel-Lemire/slow tiers need to stay branchless. Every field is a
// compile-time constant of the target binary format; none depend on the
// input being parsed. See spec.md §3 "FloatInfo(T)".
type FloatInfo struct {
	// MantissaExplicitBits is the number of explicitly stored mantissa bits
	// (i.e. excluding the implicit leading 1 for normal values).
	MantissaExplicitBits uint

	// ExponentBits is the width of the biased exponent field.
	ExponentBits uint

	// Bias is the exponent bias; a stored biased exponent e represents true
	// binary exponent e - Bias for normal values.
	Bias int

	// MinExponent is the minimum representable true exponent for normal
	// values (== 1 - Bias, since subnormals extend one step lower).
	MinExponent int

	// InfinitePower is the biased exponent value reserved for Inf/NaN.
	InfinitePower int

	// SmallestPowerOfTen and LargestPowerOfTen bound the decimal exponent q
	// beyond which the result is trivially ±0 or ±Inf regardless of
	// mantissa, independent of any parsing tier.
	SmallestPowerOfTen int
	LargestPowerOfTen  int

	// MaxMantissaFastPath is the largest mantissa the fast path will accept:
	// 2^(MantissaExplicitBits+1), the largest integer exactly representable
	// in the target's mantissa plus implicit bit.
	MaxMantissaFastPath uint64

	// MaxExponentFastPath is the largest decimal exponent for which
	// 10^exponent is itself exactly representable in the target format (the
	// "direct" fast path of spec.md §4.3).
	MaxExponentFastPath int

	// MinExponentFastPath is the smallest decimal exponent the fast path
	// will attempt (a negative power of ten small enough to still be exact).
	MinExponentFastPath int

	// MaxExponentFastPathDisguised extends MaxExponentFastPath for the
	// "disguised" fast-path case (spec.md §4.3), where excess decimal
	// exponent is absorbed by multiplying the integer mantissa directly.
	MaxExponentFastPathDisguised int

	// MinExponentRoundToEven and MaxExponentRoundToEven bound the decimal
	// exponents for which Eisel-Lemire must perform the explicit
	// round-to-even halfway check (spec.md §4.4).
	MinExponentRoundToEven int
	MaxExponentRoundToEven int
}

// float64Info describes IEEE-754 binary64.
var float64Info = FloatInfo{
	MantissaExplicitBits:         52,
	ExponentBits:                 11,
	Bias:                         1023,
	MinExponent:                  -1022,
	InfinitePower:                0x7FF,
	SmallestPowerOfTen:           -342,
	LargestPowerOfTen:            308,
	MaxMantissaFastPath:          1 << 53,
	MaxExponentFastPath:          22,
	MinExponentFastPath:          -22,
	MaxExponentFastPathDisguised: 37,
	MinExponentRoundToEven:       -4,
	MaxExponentRoundToEven:       23,
}

// float32Info describes IEEE-754 binary32.
var float32Info = FloatInfo{
	MantissaExplicitBits:         23,
	ExponentBits:                 8,
	Bias:                         127,
	MinExponent:                  -126,
	InfinitePower:                0xFF,
	SmallestPowerOfTen:           -65,
	LargestPowerOfTen:            38,
	MaxMantissaFastPath:          1 << 24,
	MaxExponentFastPath:          10,
	MinExponentFastPath:          -10,
	MaxExponentFastPathDisguised: 17,
	MinExponentRoundToEven:       -17,
	MaxExponentRoundToEven:       10,
}

// Float16Info describes IEEE-754 binary16. Its fast path (fastPathF16)
// computes in float64 and reuses pow10Float64, so it needs no table of its
// own; after that it goes through Eisel-Lemire before falling back to the
// big-decimal path.
var Float16Info = FloatInfo{
	MantissaExplicitBits:         10,
	ExponentBits:                 5,
	Bias:                         15,
	MinExponent:                  -14,
	InfinitePower:                0x1F,
	SmallestPowerOfTen:           -27,
	LargestPowerOfTen:            19,
	MaxMantissaFastPath:          1 << 11,
	MaxExponentFastPath:          4,
	MinExponentFastPath:          -4,
	MaxExponentFastPathDisguised: 9,
	MinExponentRoundToEven:       -10,
	MaxExponentRoundToEven:       5,
}

// Float128Info describes IEEE-754 binary128. Eisel-Lemire is not used for
// f128 (spec.md §9): only the fast path and the big-decimal fallback apply,
// so MinExponentRoundToEven/MaxExponentRoundToEven are unused for this
// target and left at 0. MaxMantissaFastPath would need 113 bits (more than
// a uint64 can hold); fastPathF128 works from Number.Mantissa's 64-bit
// value and math/big directly instead of consulting this field, so it is
// set to the widest representable placeholder rather than a value that
// would overflow.
var Float128Info = FloatInfo{
	MantissaExplicitBits:         112,
	ExponentBits:                 15,
	Bias:                         16383,
	MinExponent:                  -16382,
	InfinitePower:                0x7FFF,
	SmallestPowerOfTen:           -4966,
	LargestPowerOfTen:            4932,
	MaxMantissaFastPath:          ^uint64(0),
	MaxExponentFastPath:          48,
	MinExponentFastPath:          -48,
	MaxExponentFastPathDisguised: 48,
}

func infoFor[F Float]() FloatInfo {
	var z F
	switch any(z).(type) {
	case float32:
		return float32Info
	case float64:
		return float64Info
	default:
		panic("floatparse: unsupported Float type")
	}
}
