// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "math/bits"

// uint128 is a fixed 128-bit unsigned integer, stored as two 64-bit halves.
// It plays the role the teacher's packed Word slices play for arbitrary
// precision, but fixed at exactly two words: Eisel-Lemire (spec.md §4.4)
// only ever needs a single 64x64->128 product and a 128+64 carry-propagated
// add, never a variable-length accumulation.
type uint128 struct {
	hi, lo uint64
}

// mul64x64 computes the full 128-bit product of x and y, the same
// operation the teacher's mulAdd10VWW performs for a single decimal Word
// pair, here done in binary via math/bits.Mul64 rather than a declet-base
// software multiply.
func mul64x64(x, y uint64) uint128 {
	hi, lo := bits.Mul64(x, y)
	return uint128{hi: hi, lo: lo}
}

// add64 adds y into z's low 64 bits, propagating any carry into the high
// 64 bits. Mirrors the carry-propagation shape of the teacher's add10VW.
func (z uint128) add64(y uint64) uint128 {
	lo, carry := bits.Add64(z.lo, y, 0)
	hi, _ := bits.Add64(z.hi, 0, carry)
	return uint128{hi: hi, lo: lo}
}

// shr shifts z right by n bits (n may exceed 64), used by the binary128
// path to denormalize a subnormal mantissa (eisellemire.go has no f128
// equivalent, but bigdecimal.go's f128 rounding does).
func (z uint128) shr(n uint) uint128 {
	switch {
	case n == 0:
		return z
	case n >= 128:
		return uint128{}
	case n < 64:
		return uint128{hi: z.hi >> n, lo: (z.lo >> n) | (z.hi << (64 - n))}
	default:
		return uint128{hi: 0, lo: z.hi >> (n - 64)}
	}
}

// clearBit clears bit n (n < 128) of z, used to strip binary128's implicit
// mantissa bit before final assembly.
func (z uint128) clearBit(n uint) uint128 {
	if n < 64 {
		z.lo &^= uint64(1) << n
	} else {
		z.hi &^= uint64(1) << (n - 64)
	}
	return z
}

// bit128 returns a uint128 with only bit n (n < 128) set.
func bit128(n uint) uint128 {
	if n < 64 {
		return uint128{lo: uint64(1) << n}
	}
	return uint128{hi: uint64(1) << (n - 64)}
}
