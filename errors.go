// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "errors"

// ErrEmpty is returned by Parse when the input byte slice has zero length.
var ErrEmpty = errors.New("floatparse: empty input")

// ErrInvalid is returned by Parse for any syntactic rejection: an
// unrecognized byte, a malformed underscore, an unterminated exponent, or
// trailing bytes after an otherwise valid literal. Parse never reports a
// partial result alongside this error.
var ErrInvalid = errors.New("floatparse: invalid syntax")

// errNoDigits and errInvalidUnderscore are internal tokenizer signals folded
// into ErrInvalid at the facade (parse.go); they exist only to give tests a
// more specific assertion than the single exported ErrInvalid.
var (
	errNoDigits          = errors.New("floatparse: no digits")
	errInvalidUnderscore = errors.New("floatparse: misplaced underscore")
	errMalformedExponent = errors.New("floatparse: malformed exponent")
)
