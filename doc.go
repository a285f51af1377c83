// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package floatparse parses decimal and hexadecimal floating-point literals
directly into correctly-rounded IEEE-754 binary16, binary32, binary64, and
binary128 bit patterns, without an intermediate arbitrary-precision
decimal value on the common path.

Parsing runs in three tiers, attempted in order of increasing cost:

  - a fast path that performs the conversion in the target format's own
    native arithmetic (for binary16, in float64 arithmetic, safe under the
    standard double-rounding margin; for binary128, in exact big-integer
    arithmetic, non-negative decimal exponents only) whenever both the mantissa and
    the decimal exponent fall within the range where the result is exact
    or trivially and unambiguously rounded;

  - the Eisel-Lemire algorithm, which approximates the exact product of
    the decimal mantissa and the appropriate power of ten using a 128-bit
    fixed-point multiply against a precomputed table, and detects when
    that approximation is precise enough to be trusted;

  - an arbitrary-precision decimal fallback, guaranteed correct for every
    input, used only when the faster tiers decline.

binary128 skips the Eisel-Lemire tier (its 113-bit mantissa would need a
wider table than is worth precomputing) and falls back to the
arbitrary-precision tier directly whenever its fast path declines.

    bits, err := floatparse.ParseFloat64([]byte("3.14159"))
    f := math.Float64frombits(bits)

ParseFloat16 and ParseFloat128 return Float16 and Float128, the package's
own bit-pattern types for formats Go has no native representation of.
Float32 and Float64 are convenience wrappers that return a native Go
float directly.

The context subpackage wraps the parser with a pinned target precision
and an optional trap policy for infinite or NaN results and for nonzero
subnormal results, in the same sticky-error-until-checked
style used throughout this package's error handling.
*/
package floatparse
