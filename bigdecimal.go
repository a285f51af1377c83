// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "math/big"

// bigDecimalMaxDigits bounds the digit buffer (spec.md §4.5): enough to
// hold every significant digit of the smallest positive subnormal in any
// supported format plus its full fractional expansion, with slack to
// spare. Digits beyond this count cannot affect the correctly-rounded
// result and are folded into the truncated flag instead of stored.
const bigDecimalMaxDigits = 768

// bigDecimal is the arbitrary-precision decimal significand used as a last
// resort when neither the fast path nor Eisel-Lemire could produce a
// trusted result (spec.md §4.5). Unlike the teacher's packed-declet Decimal
// (dec.go), digits are stored one decimal digit per byte: this
// implementation never needs decimal arithmetic beyond repeated doubling
// and halving, so the simpler representation is both clearer and exactly
// matched to what shiftLeft/shiftRight below do.
//
// Invariant (outside of a method body actively restoring it): digits[0]
// and digits[numDigits-1] are both nonzero, or numDigits == 0 and the
// value is zero. digits[:decimalPoint] is the integer part; decimalPoint
// may be <= 0 or >= numDigits.
type bigDecimal struct {
	digits       [bigDecimalMaxDigits]byte
	numDigits    int
	decimalPoint int
	negative     bool
	truncated    bool // true if a nonzero digit beyond the buffer was dropped
}

// parseBigDecimal rebuilds a bigDecimal directly from the original input
// bytes (spec.md §4.5): unlike Number, it does not collapse digits into a
// 64-bit mantissa, so no precision is lost before the slow path's exact
// shifting arithmetic takes over. s must already be positioned at the
// start of the digits (sign handling happens in the facade).
func parseBigDecimal(s *stream, negative bool) bigDecimal {
	var d bigDecimal
	d.negative = negative

	sawDot := false
	sawDigits := false
	n := 0 // significant digits read, including any the full buffer dropped
loop:
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
			d.decimalPoint = n
			s.advance(1)
		case isDigit(b):
			sawDigits = true
			if b == '0' && n == 0 {
				// Leading zeros are not stored; after the dot each one
				// moves the decimal point down instead.
				if sawDot {
					d.decimalPoint--
				}
			} else {
				n++
				d.tryAddDigit(b - '0')
			}
			s.advance(1)
		default:
			break loop
		}
	}
	if !sawDot {
		d.decimalPoint = n
	}
	if !sawDigits {
		return d
	}

	if s.firstIsEither('e', 'E') {
		save := s.offset
		s.advance(1)
		expSign := int64(1)
		if s.firstIsEither('+', '-') {
			if s.firstIs('-') {
				expSign = -1
			}
			s.advance(1)
		}
		var exp int64
		sawExpDigit := false
		for {
			if s.firstIs('_') {
				s.skipChar('_')
				continue
			}
			digit, ok := s.parseDigit()
			if !ok {
				break
			}
			sawExpDigit = true
			if exp < maxExponentMagnitude {
				exp = exp*10 + int64(digit)
				if exp > maxExponentMagnitude {
					exp = maxExponentMagnitude
				}
			}
		}
		if sawExpDigit {
			d.decimalPoint += int(expSign * exp)
		} else {
			s.offset = save
		}
	}

	d.normalize()
	return d
}

// normalize strips insignificant leading zeros (shifting decimalPoint
// alongside) and trailing zeros, restoring the struct's documented
// invariant.
func (d *bigDecimal) normalize() {
	lead := 0
	for lead < d.numDigits && d.digits[lead] == 0 {
		lead++
	}
	if lead > 0 {
		copy(d.digits[:], d.digits[lead:d.numDigits])
		d.numDigits -= lead
		d.decimalPoint -= lead
	}
	d.trim()
}

// tryAddDigit appends digit to d, dropping it (but recording truncation if
// nonzero) once the buffer is full — spec.md §4.5 only requires enough
// digits to determine the correctly-rounded result, never the literal
// input's full length.
func (d *bigDecimal) tryAddDigit(digit byte) {
	if d.numDigits < bigDecimalMaxDigits {
		d.digits[d.numDigits] = digit
		d.numDigits++
		return
	}
	if digit != 0 {
		d.truncated = true
	}
}

// trim drops trailing zero digits, restoring the normalized invariant
// after an operation (like shiftLeftSmall/shiftRightSmall) that can
// introduce them.
func (d *bigDecimal) trim() {
	for d.numDigits > 0 && d.digits[d.numDigits-1] == 0 {
		d.numDigits--
	}
	if d.numDigits == 0 {
		d.decimalPoint = 0
	}
}

// isZero reports whether d represents the value zero.
func (d *bigDecimal) isZero() bool {
	return d.numDigits == 0
}

// shiftLeft multiplies d by 2**shift in place (spec.md §4.5's "multiply
// each digit, propagate carry" loop). Deliberately not using a
// precomputed cutoff/cheat table the way some standard library
// decimal-to-float conversions do to predict the result's new digit
// count: simulating the multiply directly and measuring the carry that
// falls out is unconditionally correct, and the extra work is cheap
// relative to the rest of the slow path.
func (d *bigDecimal) shiftLeft(shift uint) {
	for shift > 0 {
		s := shift
		if s > 60 {
			s = 60
		}
		d.shiftLeftSmall(s)
		shift -= s
	}
}

// shiftLeftSmall multiplies d by 2**shift for shift in [0, 60] via a
// right-to-left schoolbook multiply with carry propagation, the digit-base
// equivalent of the teacher's mulAddVWW (dec_arith.go) generalized from a
// 10^19 word base to a single decimal digit.
func (d *bigDecimal) shiftLeftSmall(shift uint) {
	if d.isZero() {
		return
	}
	mul := uint64(1) << shift
	const pad = 24 // more than enough room for 2**60's extra leading digits
	var scratch [bigDecimalMaxDigits + pad]byte
	pos := len(scratch)
	carry := uint64(0)
	for i := d.numDigits - 1; i >= 0; i-- {
		v := uint64(d.digits[i])*mul + carry
		pos--
		scratch[pos] = byte(v % 10)
		carry = v / 10
	}
	for carry > 0 {
		pos--
		scratch[pos] = byte(carry % 10)
		carry /= 10
	}
	fullLen := len(scratch) - pos
	extra := fullLen - d.numDigits

	newLen := fullLen
	if newLen > bigDecimalMaxDigits {
		for i := pos + bigDecimalMaxDigits; i < pos+fullLen; i++ {
			if scratch[i] != 0 {
				d.truncated = true
			}
		}
		newLen = bigDecimalMaxDigits
	}
	copy(d.digits[:], scratch[pos:pos+newLen])
	d.numDigits = newLen
	d.decimalPoint += extra
	d.trim()
}

// shiftRight divides d by 2**shift in place (spec.md §4.5), shift in
// [0, 60].
func (d *bigDecimal) shiftRight(shift uint) {
	for shift > 0 {
		s := shift
		if s > 60 {
			s = 60
		}
		d.shiftRightSmall(s)
		shift -= s
	}
}

// shiftRightSmall divides d by 2**shift for shift in [0, 60] via a single
// left-to-right long-division pass: read digits one at a time into a
// running remainder n, emit n>>shift as the next output digit, and keep
// the low shift bits of n as the carried remainder. Matches the shape of
// the teacher's decimal_toa.go digit-extraction loop, generalized to a
// binary divisor.
func (d *bigDecimal) shiftRightSmall(shift uint) {
	nd := d.numDigits
	r := 0
	var n uint64
	for n>>shift == 0 {
		if r >= nd {
			if n == 0 {
				d.numDigits = 0
				d.decimalPoint = 0
				return
			}
			for n>>shift == 0 {
				n *= 10
				r++
			}
			break
		}
		n = n*10 + uint64(d.digits[r])
		r++
	}
	d.decimalPoint -= r - 1

	mask := (uint64(1) << shift) - 1
	var out [bigDecimalMaxDigits]byte
	w := 0
	emit := func(dig uint64) {
		if w < len(out) {
			out[w] = byte(dig)
			w++
		} else if dig != 0 {
			d.truncated = true
		}
	}
	for ; r < nd; r++ {
		emit(n >> shift)
		n = (n & mask) * 10
		n += uint64(d.digits[r])
	}
	for n > 0 {
		emit(n >> shift)
		n = (n & mask) * 10
	}
	copy(d.digits[:], out[:w])
	d.numDigits = w
	d.trim()
}

// shouldRoundUp applies round-half-to-even at digit index cut: digits
// before cut are kept, digits at and after cut are the fraction being
// rounded away. truncated stands in for the sticky bit when the exact
// digit stream was itself cut short upstream.
func (d *bigDecimal) shouldRoundUp(cut int) bool {
	if cut >= d.numDigits {
		return false
	}
	first := d.digits[cut]
	if first < 5 {
		return false
	}
	if first > 5 {
		return true
	}
	for i := cut + 1; i < d.numDigits; i++ {
		if d.digits[i] != 0 {
			return true
		}
	}
	if d.truncated {
		return true
	}
	if cut == 0 {
		return false // rounding to even against an implicit leading 0
	}
	return d.digits[cut-1]%2 == 1
}

// toUint64Capped reads up to limit significant digits of d's integer part
// as a uint64, padding with trailing zeros up to decimalPoint. Used both
// for bigToBiasedFp's coarse magnitude comparisons (limit 19, well within
// uint64 range) and, with limit == numDigits, for reading out a fully
// rounded integer result.
func (d *bigDecimal) toUint64Capped(limit int) uint64 {
	n := d.decimalPoint
	if n > limit {
		n = limit
	}
	if n > d.numDigits {
		n = d.numDigits
	}
	var v uint64
	for i := 0; i < n; i++ {
		v = v*10 + uint64(d.digits[i])
	}
	for i := n; i < d.decimalPoint && i < limit; i++ {
		v *= 10
	}
	return v
}

// roundToInteger reduces d to its rounded integer value (spec.md §4.5),
// applying round-half-to-even at the decimal point.
func (d *bigDecimal) roundToInteger() uint64 {
	if d.decimalPoint <= 0 {
		if d.shouldRoundUp(0) {
			return 1
		}
		return 0
	}
	roundUp := d.shouldRoundUp(d.decimalPoint)
	v := d.toUint64Capped(d.decimalPoint)
	if roundUp {
		v++
	}
	return v
}

// toBigIntCapped is toUint64Capped's arbitrary-precision counterpart, used
// by the binary128 slow path (bigToBiasedFp128) where the mantissa can
// need more than 64 bits.
func (d *bigDecimal) toBigIntCapped(limit int) *big.Int {
	n := d.decimalPoint
	if n > limit {
		n = limit
	}
	if n > d.numDigits {
		n = d.numDigits
	}
	ten := big.NewInt(10)
	v := new(big.Int)
	for i := 0; i < n; i++ {
		v.Mul(v, ten)
		v.Add(v, big.NewInt(int64(d.digits[i])))
	}
	for i := n; i < d.decimalPoint && i < limit; i++ {
		v.Mul(v, ten)
	}
	return v
}

// roundToIntegerBig is roundToInteger's arbitrary-precision counterpart.
func (d *bigDecimal) roundToIntegerBig() *big.Int {
	if d.decimalPoint <= 0 {
		if d.shouldRoundUp(0) {
			return big.NewInt(1)
		}
		return new(big.Int)
	}
	roundUp := d.shouldRoundUp(d.decimalPoint)
	v := d.toBigIntCapped(d.decimalPoint)
	if roundUp {
		v.Add(v, big.NewInt(1))
	}
	return v
}

// bigIntToUint128 extracts the low 128 bits of a nonnegative big.Int.
func bigIntToUint128(v *big.Int) uint128 {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(v, mask64).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	return uint128{hi: hi, lo: lo}
}

// bigToBiasedFp128 is bigToBiasedFp's binary128 counterpart: the same
// repeated-shift outer loop, targeting [2**mbits, 2**(mbits+1)) the same
// way, but comparing against and rounding a mantissa wider than 64 bits,
// so the hot comparisons go through math/big instead of a plain uint64
// (spec.md §9 notes f128 only needs the fast and slow tiers, never
// Eisel-Lemire, so there is no 128-bit analog of that tier to keep
// consistent with).
func bigToBiasedFp128(info FloatInfo, d *bigDecimal) biasedFp128 {
	if d.isZero() {
		return zeroFp128()
	}

	mbits := int(info.MantissaExplicitBits)
	exp2 := 0

	for d.decimalPoint > 2 {
		n := uint(d.decimalPoint - 1)
		if n > 60 {
			n = 60
		}
		d.shiftRight(n)
		exp2 += int(n)
	}
	for d.decimalPoint < 1 {
		n := uint(1 - d.decimalPoint)
		if n > 60 {
			n = 60
		}
		d.shiftLeft(n)
		exp2 -= int(n)
	}

	want := new(big.Int).Lsh(big.NewInt(1), uint(mbits))
	wantHi := new(big.Int).Lsh(big.NewInt(1), uint(mbits+1))
	for {
		v := d.toBigIntCapped(mbits + 40)
		if v.Cmp(want) >= 0 && v.Cmp(wantHi) < 0 {
			break
		}
		if v.Cmp(want) < 0 {
			d.shiftLeft(1)
			exp2--
		} else {
			d.shiftRight(1)
			exp2++
		}
	}

	if sub := 1 - (exp2 + mbits + info.Bias); sub > 0 {
		// Subnormal: shift down to exponent 1 first so the value is
		// rounded once, at the precision the subnormal actually has.
		if sub > mbits+1 {
			return zeroFp128() // less than half the smallest subnormal
		}
		d.shiftRight(uint(sub))
		exp2 += sub
	}

	mantissa := d.roundToIntegerBig()
	if mantissa.Cmp(wantHi) >= 0 {
		mantissa.Rsh(mantissa, 1)
		exp2++
	}

	unbiasedExp := exp2 + mbits
	biased := unbiasedExp + info.Bias
	if biased >= info.InfinitePower {
		return infFp128(info)
	}
	m128 := bigIntToUint128(mantissa)
	if mantissa.Cmp(want) < 0 {
		biased = 0 // subnormal: no implicit bit
	}
	return biasedFp128{f: m128.clearBit(uint(mbits)), e: int32(biased)}
}

// bigToBiasedFp implements the slow path's outer loop (spec.md §4.5):
// repeatedly shift d by powers of two until its value sits in
// [2**mbits, 2**(mbits+1)), then round to an integer mantissa of exactly
// mbits+1 bits (the implicit bit plus the mbits explicit ones).
func bigToBiasedFp(info FloatInfo, d *bigDecimal) biasedFp {
	if d.isZero() {
		return zeroFp()
	}

	mbits := int(info.MantissaExplicitBits)
	exp2 := 0

	// Coarse alignment: bring decimalPoint near 1 so the fine loop below
	// only ever needs single-bit shifts, avoiding an unbounded number of
	// iterations for extreme exponents.
	for d.decimalPoint > 2 {
		n := uint(d.decimalPoint - 1)
		if n > 60 {
			n = 60
		}
		d.shiftRight(n)
		exp2 += int(n)
	}
	for d.decimalPoint < 1 {
		n := uint(1 - d.decimalPoint)
		if n > 60 {
			n = 60
		}
		d.shiftLeft(n)
		exp2 -= int(n)
	}

	want := uint64(1) << uint(mbits)
	wantHi := uint64(1) << uint(mbits+1)
	for {
		v := d.toUint64Capped(19)
		if v >= want && v < wantHi {
			break
		}
		if v < want {
			d.shiftLeft(1)
			exp2--
		} else {
			d.shiftRight(1)
			exp2++
		}
	}

	if sub := 1 - (exp2 + mbits + info.Bias); sub > 0 {
		// Subnormal: shift down to exponent 1 first so the value is
		// rounded once, at the precision the subnormal actually has.
		if sub > mbits+1 {
			return zeroFp() // less than half the smallest subnormal
		}
		d.shiftRight(uint(sub))
		exp2 += sub
	}

	mantissa := d.roundToInteger()
	if mantissa >= wantHi {
		mantissa >>= 1
		exp2++
	}

	unbiasedExp := exp2 + mbits
	biased := unbiasedExp + info.Bias
	if biased >= info.InfinitePower {
		return infFp(info)
	}
	if mantissa < want {
		biased = 0 // subnormal: no implicit bit
	}
	return biasedFp{f: mantissa &^ (uint64(1) << uint(mbits)), e: int32(biased)}
}
