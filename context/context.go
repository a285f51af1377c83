// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides a small IEEE-754 style wrapper around
// floatparse that pins a target precision and a trap policy for
// exceptional results (an infinity or NaN, a nonzero subnormal), and
// accumulates the first such condition seen since it was last checked.
//
// It plays the same role the teacher package played for decimal.Decimal:
// a stateful convenience layer in front of a stateless parsing core, using
// the same sticky-error-until-checked convention (Context.Err).
package context

import (
	"errors"
	"math"

	"github.com/db47h/floatparse"
)

// Precision selects which IEEE-754 binary format a Context parses into.
type Precision int

const (
	Binary16 Precision = iota
	Binary32
	Binary64
	Binary128
)

// ErrTrapped is the error Context.Err returns when a parse produced an
// infinity or NaN, or a nonzero subnormal, while the Context's matching
// trap flag was set.
var ErrTrapped = errors.New("context: exceptional result trapped")

// A Context pins a target precision and trap flags for Parse's exceptional
// results. Overflow trapping applies to any result whose exponent field is
// all ones: a finite input that rounds to infinity, and also an "inf" or
// "nan" literal. Underflow trapping applies to a nonzero subnormal result;
// an input that rounds all the way to zero is not trapped. Both default to
// false, matching floatparse's own behavior of silently producing the IEEE
// result.
type Context struct {
	prec          Precision
	trapOverflow  bool
	trapUnderflow bool
	err           error
}

// New creates a Context for the given precision with trapping disabled.
func New(prec Precision) *Context {
	return &Context{prec: prec}
}

// Precision returns c's target precision.
func (c *Context) Precision() Precision {
	return c.prec
}

// SetPrecision sets c's target precision and returns c.
func (c *Context) SetPrecision(prec Precision) *Context {
	c.prec = prec
	return c
}

// SetTrapOverflow controls whether Parse reports an error (rather than
// silently returning the value) when the result is an infinity or NaN.
func (c *Context) SetTrapOverflow(trap bool) *Context {
	c.trapOverflow = trap
	return c
}

// SetTrapUnderflow is SetTrapOverflow's counterpart for nonzero subnormal
// results; a result of zero is not trapped.
func (c *Context) SetTrapUnderflow(trap bool) *Context {
	c.trapUnderflow = trap
	return c
}

// Err returns the first error encountered by a Parse call since the last
// call to Err, and clears the error state — the same sticky-until-checked
// convention the teacher package used for NaN-producing operations.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// ParseFloat16 parses s as a binary16 value under c's trap policy (c's
// precision is not consulted). If c already holds an unchecked error, it returns the zero value
// without attempting the parse.
func (c *Context) ParseFloat16(s []byte) floatparse.Float16 {
	if c.err != nil {
		return 0
	}
	v, err := floatparse.ParseFloat16(s)
	if err != nil {
		c.err = err
		return 0
	}
	exp := (uint16(v) >> 10) & 0x1F
	mantZero := uint16(v)&0x3FF == 0
	if c.trapped(exp == 0x1F, exp == 0 && !mantZero) {
		return 0
	}
	return v
}

// ParseFloat32 parses s as a binary32 value under c's trap policy (c's
// precision is not consulted).
func (c *Context) ParseFloat32(s []byte) float32 {
	if c.err != nil {
		return 0
	}
	bits, err := floatparse.ParseFloat32(s)
	if err != nil {
		c.err = err
		return 0
	}
	exp := (bits >> 23) & 0xFF
	mantZero := bits&0x7FFFFF == 0
	if c.trapped(exp == 0xFF, exp == 0 && !mantZero) {
		return 0
	}
	return math.Float32frombits(bits)
}

// ParseFloat64 parses s as a binary64 value under c's trap policy (c's
// precision is not consulted).
func (c *Context) ParseFloat64(s []byte) float64 {
	if c.err != nil {
		return 0
	}
	bits, err := floatparse.ParseFloat64(s)
	if err != nil {
		c.err = err
		return 0
	}
	exp := (bits >> 52) & 0x7FF
	mantZero := bits&((uint64(1)<<52)-1) == 0
	if c.trapped(exp == 0x7FF, exp == 0 && !mantZero) {
		return 0
	}
	return math.Float64frombits(bits)
}

// ParseFloat128 parses s as a binary128 value under c's trap policy (c's
// precision is not consulted).
func (c *Context) ParseFloat128(s []byte) floatparse.Float128 {
	if c.err != nil {
		return floatparse.Float128{}
	}
	v, err := floatparse.ParseFloat128(s)
	if err != nil {
		c.err = err
		return floatparse.Float128{}
	}
	exp := (v.Hi >> 48) & 0x7FFF
	mantZero := v.Hi&((uint64(1)<<48)-1) == 0 && v.Lo == 0
	if c.trapped(exp == 0x7FFF, exp == 0 && !mantZero) {
		return floatparse.Float128{}
	}
	return v
}

// trapped records ErrTrapped and reports true if either condition is set
// and its matching trap flag is enabled.
func (c *Context) trapped(isInf, isSubnormalNonzero bool) bool {
	if (c.trapOverflow && isInf) || (c.trapUnderflow && isSubnormalNonzero) {
		c.err = ErrTrapped
		return true
	}
	return false
}

// Parse dispatches to the precision-specific Parse method matching c's
// pinned Precision, returning the result boxed in an interface{} (one of
// floatparse.Float16, float32, float64, or floatparse.Float128).
func (c *Context) Parse(s []byte) interface{} {
	switch c.prec {
	case Binary16:
		return c.ParseFloat16(s)
	case Binary32:
		return c.ParseFloat32(s)
	case Binary128:
		return c.ParseFloat128(s)
	default:
		return c.ParseFloat64(s)
	}
}
