// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math"
	"math/big"
	"testing"
)

func TestFromBigInt(t *testing.T) {
	bits, err := FromBigInt(big.NewInt(1234567))
	if err != nil {
		t.Fatal(err)
	}
	if got := math.Float64frombits(bits); got != 1234567 {
		t.Fatalf("got %v, want 1234567", got)
	}
}

func TestFromBigFloat(t *testing.T) {
	f := new(big.Float).SetPrec(200).SetFloat64(3.5)
	bits, err := FromBigFloat(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := math.Float64frombits(bits); got != 3.5 {
		t.Fatalf("got %v, want 3.5", got)
	}
}

func TestFromBigRat(t *testing.T) {
	r := big.NewRat(1, 4)
	bits, err := FromBigRat(r)
	if err != nil {
		t.Fatal(err)
	}
	if got := math.Float64frombits(bits); got != 0.25 {
		t.Fatalf("got %v, want 0.25", got)
	}
}
