// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatparse

import "encoding/binary"

// stream is a cursor over an input byte slice. Every read is bounds-checked
// and out-of-range reads report "none" rather than panicking (spec.md §4.1):
// there is no way to drive a stream out of bounds. It plays the same role
// as the teacher's io.ByteScanner-based scan loop (dec_conv.go), but as a
// direct slice cursor so it can do the bulk 8-byte SWAR read the tokenizer's
// fast digit path needs, which a ByteScanner cannot offer without buffering.
type stream struct {
	b      []byte
	offset int
}

func newStream(b []byte) stream {
	return stream{b: b}
}

// len returns the number of unread bytes.
func (s *stream) len() int {
	return len(s.b) - s.offset
}

// atEnd reports whether every byte has been consumed.
func (s *stream) atEnd() bool {
	return s.offset >= len(s.b)
}

// hasLen reports whether at least n bytes remain.
func (s *stream) hasLen(n int) bool {
	return s.len() >= n
}

// first returns the next byte and true, or 0 and false at end of input.
func (s *stream) first() (byte, bool) {
	if s.atEnd() {
		return 0, false
	}
	return s.b[s.offset], true
}

// firstIs reports whether the next byte is c, without consuming it.
func (s *stream) firstIs(c byte) bool {
	b, ok := s.first()
	return ok && b == c
}

// firstIsEither reports whether the next byte is c1 or c2, without
// consuming it.
func (s *stream) firstIsEither(c1, c2 byte) bool {
	b, ok := s.first()
	return ok && (b == c1 || b == c2)
}

// firstIsDigit reports whether the next byte is an ASCII decimal digit.
func (s *stream) firstIsDigit() bool {
	b, ok := s.first()
	return ok && isDigit(b)
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isHexDigit reports whether b is an ASCII hexadecimal digit.
func isHexDigit(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// hexDigitValue returns the numeric value of a hex digit; the caller must
// have already verified isHexDigit(b).
func hexDigitValue(b byte) uint64 {
	switch {
	case b <= '9':
		return uint64(b - '0')
	case b <= 'F':
		return uint64(b-'A') + 10
	default:
		return uint64(b-'a') + 10
	}
}

// advance consumes n bytes unconditionally; the caller is responsible for
// not advancing past len(s.b) (callers only ever advance by a count they
// just verified was available).
func (s *stream) advance(n int) {
	s.offset += n
}

// parseDigit consumes one byte and returns its digit value and true, or
// false if the next byte is not a decimal digit (in which case nothing is
// consumed).
func (s *stream) parseDigit() (byte, bool) {
	b, ok := s.first()
	if !ok || !isDigit(b) {
		return 0, false
	}
	s.advance(1)
	return b - '0', true
}

// skipChar advances past every consecutive occurrence of c.
func (s *stream) skipChar(c byte) {
	for s.firstIs(c) {
		s.advance(1)
	}
}

// word64 reads 8 raw bytes at the current offset as a little-endian u64,
// for the bit-parallel ("SWAR") eight-digit check in the tokenizer's fast
// path (spec.md §4.2). The caller must have verified hasLen(8).
func (s *stream) word64() uint64 {
	return binary.LittleEndian.Uint64(s.b[s.offset : s.offset+8])
}

// eightDigitsMask is the bit-parallel predicate from spec.md §4.2:
// ((v + 0x46...46) | (v - 0x30...30)) & 0x80...80 == 0 iff all eight bytes
// of v are ASCII digits '0'-'9'.
func eightDigitsMask(v uint64) bool {
	const lomask = 0x4646464646464646
	const himask = 0x3030303030303030
	const topbits = 0x8080808080808080
	return ((v+lomask)|(v-himask))&topbits == 0
}

// parseEightDigitsSWAR decodes eight packed ASCII digits (already verified
// by eightDigitsMask) into their numeric value using three multiplications,
// per spec.md §4.2's "Fast digit ingestion".
func parseEightDigitsSWAR(v uint64) uint64 {
	const mask = 0x0000_00FF_0000_00FF
	const mul1 = 0x000F_4240_0000_0064 // 100 + (1000000ULL << 32)
	const mul2 = 0x0000_2710_0000_0001 // 1 + (10000ULL << 32)

	v -= 0x3030303030303030
	v = (v * 10) + (v >> 8) // merge adjacent pairs, byte lanes
	v = ((v & mask) * mul1 + ((v >> 16) & mask) * mul2) >> 32
	return v
}
