// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

// Number is the tokenizer's output (spec.md §3): an unsigned mantissa
// carrying up to 19 significant decimal digits, a decimal exponent q such
// that the represented value is mantissa * 10**q (up to truncation), and
// flags recording the input's sign, whether truncation happened, and
// whether the literal was a hex float.
//
// Invariant: if !ManyDigits, Mantissa * 10**Exponent equals the exact input
// value; if ManyDigits, Mantissa holds exactly the input's first 19
// significant digits and Exponent has been adjusted so the represented
// value is within one ULP (in the decimal) of the input.
type Number struct {
	Mantissa   uint64
	Exponent   int64
	Negative   bool
	ManyDigits bool
	Hex        bool
}

// maxMantissaDigits is the significant-digit budget spec.md §4.2 fixes:
// once 19 significant digits have been folded into Mantissa, every further
// digit only adjusts Exponent (integer part) or is dropped (fraction part).
const maxMantissaDigits = 19

// maxExponentMagnitude is the saturation bound spec.md §4.2 places on the
// explicit exponent suffix: digits beyond it cannot change the outcome
// since they only push the value further past the trivial zero/infinity
// cutoffs every FloatInfo already defines.
const maxExponentMagnitude = 65536

// splitDigits decomposes an already-validated 8-digit SWAR value (see
// parseEightDigitsSWAR) into its individual digits, most significant first.
func splitDigits(v uint64) [8]byte {
	var d [8]byte
	for i := 7; i >= 0; i-- {
		d[i] = byte(v % 10)
		v /= 10
	}
	return d
}

// tokenizeDecimal implements spec.md §4.2: it consumes the longest prefix
// of the stream that matches the grammar below and stops at the first byte
// that does not fit (the facade then requires full consumption; see
// parse.go):
//
//	number := digits ('.' digits?)? (('e'|'E') ('+'|'-')? digits)?
//	        |         '.' digits    (('e'|'E') ('+'|'-')? digits)?
//	digits  := digit (('_')? digit)*
//
// negative has already been stripped by the facade and is only threaded
// through so the returned Number is complete.
func tokenizeDecimal(s *stream, negative bool) (Number, error) {
	var mantissa uint64
	var nDigits int     // digits folded into mantissa so far, capped at maxMantissaDigits
	var totalDigits int // all significant digits seen, uncapped (drives ManyDigits)
	var exponent int64
	var sawNonzero bool
	var sawAnyDigit bool

	// consumeDigit folds one decimal digit d into the running
	// mantissa/exponent state. afterDot distinguishes fractional digits
	// (which push the exponent down as they're absorbed, and have no
	// effect on it once the mantissa budget is exhausted) from integer
	// digits (which push the exponent up once the budget is exhausted,
	// since they represent higher powers of ten the mantissa can no
	// longer hold).
	consumeDigit := func(d byte, afterDot bool) {
		sawAnyDigit = true
		if d == 0 && !sawNonzero {
			if afterDot {
				exponent--
			}
			return
		}
		sawNonzero = true
		totalDigits++
		if nDigits < maxMantissaDigits {
			mantissa = mantissa*10 + uint64(d)
			nDigits++
			if afterDot {
				exponent--
			}
		} else if !afterDot {
			exponent++
		}
	}

	// scanDigits consumes digit(('_')?digit)* starting with prevWasDigit
	// already reflecting whatever byte preceded this call (a real digit,
	// or not — '.' and 'e'/'E' both count as "not a digit" so that an
	// underscore adjacent to either is rejected same as one at the very
	// start or end of the whole literal, per spec.md §4.2).
	scanDigits := func(afterDot bool, prevWasDigit bool) error {
		trailingUnderscore := false
		for {
			if nDigits < maxMantissaDigits && s.hasLen(8) {
				if v := s.word64(); eightDigitsMask(v) {
					for _, d := range splitDigits(parseEightDigitsSWAR(v)) {
						consumeDigit(d, afterDot)
					}
					s.advance(8)
					prevWasDigit = true
					trailingUnderscore = false
					continue
				}
			}
			if s.firstIs('_') {
				if !prevWasDigit {
					return errInvalidUnderscore
				}
				s.advance(1)
				prevWasDigit = false
				trailingUnderscore = true
				continue
			}
			d, ok := s.parseDigit()
			if !ok {
				break
			}
			consumeDigit(d, afterDot)
			prevWasDigit = true
			trailingUnderscore = false
		}
		if trailingUnderscore {
			return errInvalidUnderscore
		}
		return nil
	}

	if err := scanDigits(false, false); err != nil {
		return Number{}, err
	}

	if s.firstIs('.') {
		s.advance(1)
		if err := scanDigits(true, false); err != nil {
			return Number{}, err
		}
	}

	if !sawAnyDigit {
		return Number{}, errNoDigits
	}

	if s.firstIsEither('e', 'E') {
		expSign := int64(1)
		save := s.offset
		s.advance(1)
		if s.firstIsEither('+', '-') {
			if s.firstIs('-') {
				expSign = -1
			}
			s.advance(1)
		}
		var expMantissa int64
		var sawExpDigit bool
		prevWasDigit := false
		trailingUnderscore := false
		for {
			if s.firstIs('_') {
				if !prevWasDigit {
					return Number{}, errInvalidUnderscore
				}
				s.advance(1)
				prevWasDigit = false
				trailingUnderscore = true
				continue
			}
			d, ok := s.parseDigit()
			if !ok {
				break
			}
			sawExpDigit = true
			if expMantissa < maxExponentMagnitude {
				expMantissa = expMantissa*10 + int64(d)
				if expMantissa > maxExponentMagnitude {
					expMantissa = maxExponentMagnitude
				}
			}
			prevWasDigit = true
			trailingUnderscore = false
		}
		if trailingUnderscore {
			return Number{}, errInvalidUnderscore
		}
		if !sawExpDigit {
			s.offset = save
			return Number{}, errMalformedExponent
		}
		exponent += expSign * expMantissa
	}

	if exponent > maxExponentMagnitude {
		exponent = maxExponentMagnitude
	} else if exponent < -maxExponentMagnitude {
		exponent = -maxExponentMagnitude
	}

	return Number{
		Mantissa:   mantissa,
		Exponent:   exponent,
		Negative:   negative,
		ManyDigits: totalDigits > maxMantissaDigits,
	}, nil
}
