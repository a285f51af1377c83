// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

// Float16 holds the raw 16-bit encoding of an IEEE-754 binary16 value.
// Go has no native half-precision type, so ParseFloat16 returns this bit
// pattern directly (spec.md §2) rather than a converted float32/float64,
// which would silently discard the distinction between a binary16 NaN
// payload and its widened equivalent.
type Float16 uint16

// Float128 holds the raw 128-bit encoding of an IEEE-754 binary128 value,
// split into the high and low 64-bit halves in big-endian word order (Hi
// holds the sign, exponent, and the top 48 explicit mantissa bits; Lo
// holds the remaining 64 mantissa bits). Go has no native quad-precision
// type.
type Float128 struct {
	Hi, Lo uint64
}

// biasedFp128 is biasedFp's binary128 counterpart: the 112-bit explicit
// mantissa doesn't fit in a uint64, so this tier carries a full uint128
// significand instead. Only the fast path (fastPathF128) and slow path
// (bigToBiasedFp128) ever produce one; spec.md §9 excludes f128 from the
// Eisel-Lemire tier.
type biasedFp128 struct {
	f uint128
	e int32
}

func zeroFp128() biasedFp128 { return biasedFp128{} }

func infFp128(info FloatInfo) biasedFp128 {
	return biasedFp128{e: int32(info.InfinitePower)}
}

// toBits assembles the final binary128 bit pattern: Hi carries the sign,
// the 15-bit exponent, and the top 48 mantissa bits; Lo carries the
// remaining 64 mantissa bits.
func (b biasedFp128) toBits(negative bool) Float128 {
	hi := b.f.hi | (uint64(b.e) << 48)
	if negative {
		hi |= uint64(1) << 63
	}
	return Float128{Hi: hi, Lo: b.f.lo}
}
