// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constcheck verifies the fixed-point constant eisellemire.go
// hard-codes for its power-of-five exponent estimate (spec.md §4.4)
// against an arbitrary-precision computation of the same logarithm. It is
// a build-time/test-time tool, not part of the parse hot path: the hot
// path cannot afford arbitrary-precision arithmetic per spec.md §9, which
// is exactly why the constant is frozen into a plain int multiply instead
// of computed at runtime.
//
// The verification method mirrors the teacher package's math.Log (the
// Salamin AGM algorithm), reimplemented over math/big.Float since the
// teacher's own decimal.Decimal arithmetic type has no role left once
// decimal parsing, rather than decimal computation, is the point of this
// module (see DESIGN.md's dropped-dependency ledger for decimal.go).
package constcheck

import "math/big"

// workingPrec is the binary working precision used for the AGM
// computations below; comfortably more than enough to resolve a Q16
// fixed-point constant to certainty.
const workingPrec = 200

// Log2Of5Q16 computes round(log2(5) * 2^16), for comparison against
// eisellemire.go's log2Of5Q16 constant.
func Log2Of5Q16() int64 {
	l5 := agmLn(big.NewFloat(5))
	l2 := agmLn(big.NewFloat(2))
	log2Of5 := new(big.Float).SetPrec(workingPrec).Quo(l5, l2)
	scaled := new(big.Float).SetPrec(workingPrec).Mul(log2Of5, big.NewFloat(65536))
	half := new(big.Float).SetPrec(workingPrec).SetFloat64(0.5)
	scaled.Add(scaled, half)
	i, _ := scaled.Int(nil)
	return i.Int64()
}

// agmLn returns ln(x) for x > 1 via the Gauss AGM identity
//
//	ln(x) = pi / (2 * agm(1, 4/s)) - m*ln(2),   s = x * 2^m
//
// choosing m so that s exceeds 2^(workingPrec/2), the same pre-scaling
// the teacher's math.Log performs (in base 10) before handing off to its
// own agm helper (math/log.go).
func agmLn(x *big.Float) *big.Float {
	const prec = workingPrec
	one := bf(1)
	two := bf(2)

	m := 0
	s := new(big.Float).SetPrec(prec).Copy(x)
	threshold := new(big.Float).SetPrec(prec).SetMantExp(one, prec/2+8)
	for s.Cmp(threshold) < 0 {
		s.Mul(s, two)
		m++
	}

	lnS := agmLnPrescaled(s)
	if m == 0 {
		return lnS
	}
	mLn2 := new(big.Float).SetPrec(prec).Mul(bf(int64(m)), ln2Const())
	return new(big.Float).SetPrec(prec).Sub(lnS, mLn2)
}

// agmLnPrescaled returns ln(s) for an s already large enough
// (s > 2^(workingPrec/2)) that pi/(2*agm(1,4/s)) converges to ln(s)
// directly, with no further m-scaling term.
func agmLnPrescaled(s *big.Float) *big.Float {
	const prec = workingPrec
	one := bf(1)
	four := bf(4)

	a := new(big.Float).SetPrec(prec).Copy(one)
	b := new(big.Float).SetPrec(prec).Quo(four, s)
	agm(a, b)

	pi := agmPi()
	return new(big.Float).SetPrec(prec).Quo(pi, new(big.Float).SetPrec(prec).Mul(a, bf(2)))
}

var ln2Cache *big.Float

// ln2Const computes ln(2) once, by solving the prescaled identity for
// s=2^(k+1) (chosen large enough for convergence): pi/(2*agm(1,4/s)) =
// (k+1)*ln(2).
func ln2Const() *big.Float {
	if ln2Cache != nil {
		return ln2Cache
	}
	const prec = workingPrec
	one := bf(1)
	k := 0
	s := bf(2)
	threshold := new(big.Float).SetPrec(prec).SetMantExp(one, prec/2+8)
	for s.Cmp(threshold) < 0 {
		s = new(big.Float).SetPrec(prec).Mul(s, bf(2))
		k++
	}
	lhs := agmLnPrescaled(s)
	ln2Cache = new(big.Float).SetPrec(prec).Quo(lhs, bf(int64(k+1)))
	return ln2Cache
}

// agm replaces a, b in place with their arithmetic-geometric mean,
// converging both to the same limit.
func agm(a, b *big.Float) {
	const prec = workingPrec
	epsilon := new(big.Float).SetPrec(prec).SetMantExp(bf(1), -prec+16)
	diff := new(big.Float).SetPrec(prec)
	for {
		diff.Sub(a, b)
		diff.Abs(diff)
		if diff.Cmp(epsilon) <= 0 {
			return
		}
		aNext := new(big.Float).SetPrec(prec).Add(a, b)
		aNext.Quo(aNext, bf(2))
		bNext := new(big.Float).SetPrec(prec).Mul(a, b)
		bNext.Sqrt(bNext)
		a.Copy(aNext)
		b.Copy(bNext)
	}
}

var piCache *big.Float

// agmPi computes pi via the Salamin-Brent AGM iteration, the same
// construction the teacher's math.pi helper names in its doc comment.
func agmPi() *big.Float {
	if piCache != nil {
		return piCache
	}
	const prec = workingPrec
	one := bf(1)
	two := bf(2)

	a := new(big.Float).SetPrec(prec).Copy(one)
	b := new(big.Float).SetPrec(prec).Sqrt(two)
	b.Quo(one, b)
	t := new(big.Float).SetPrec(prec).SetMantExp(one, -2)
	p := new(big.Float).SetPrec(prec).Copy(one)

	epsilon := new(big.Float).SetPrec(prec).SetMantExp(one, -prec+16)
	for {
		aNext := new(big.Float).SetPrec(prec).Add(a, b)
		aNext.Quo(aNext, two)
		bNext := new(big.Float).SetPrec(prec).Mul(a, b)
		bNext.Sqrt(bNext)

		d := new(big.Float).SetPrec(prec).Sub(a, aNext)
		d.Mul(d, d)
		d.Mul(d, p)
		t.Sub(t, d)
		p.Mul(p, two)

		diff := new(big.Float).SetPrec(prec).Sub(aNext, bNext)
		diff.Abs(diff)
		a, b = aNext, bNext
		if diff.Cmp(epsilon) <= 0 {
			break
		}
	}

	sum := new(big.Float).SetPrec(prec).Add(a, b)
	sum.Mul(sum, sum)
	four := new(big.Float).SetPrec(prec).Mul(t, bf(4))
	piCache = new(big.Float).SetPrec(prec).Quo(sum, four)
	return piCache
}

func bf(v int64) *big.Float {
	return new(big.Float).SetPrec(workingPrec).SetInt64(v)
}
