// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constcheck

import "testing"

// TestLog2Of5Q16 cross-checks the fixed-point constant eisellemire.go
// hard-codes for its power2 estimate against an independent
// arbitrary-precision computation of log2(5).
func TestLog2Of5Q16(t *testing.T) {
	const wantLog2Of5Q16 = 152170 // eisellemire.go's log2Of5Q16

	got := Log2Of5Q16()
	if got != wantLog2Of5Q16 {
		t.Fatalf("Log2Of5Q16() = %d, want %d", got, wantLog2Of5Q16)
	}
}

// TestLog2Of5Q16Bounds sanity-checks the constant against the known
// decimal value of log2(5) ~= 2.321928094887362, independent of the AGM
// code path above.
func TestLog2Of5Q16Bounds(t *testing.T) {
	approxLog2Of5 := 2.321928094887362
	want := int64(approxLog2Of5*65536 + 0.5)
	got := Log2Of5Q16()
	if got != want {
		t.Fatalf("Log2Of5Q16() = %d, want %d (from float64 approximation)", got, want)
	}
}
