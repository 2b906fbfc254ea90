// Copyright 2020 The SWCharEst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckProps compares estimated soil water characteristics against expected values.
// tolW is the relative tolerance for the water contents (WP, FC, thetaS) and tolKs
// the one for the conductivity
func CheckProps(tst *testing.T, label string, res, expected Props, tolW, tolKs float64) {
	checkClose(tst, label+": WP    ", tolW, res.WP, expected.WP)
	checkClose(tst, label+": FC    ", tolW, res.FC, expected.FC)
	checkClose(tst, label+": thetaS", tolW, res.ThetaS, expected.ThetaS)
	checkClose(tst, label+": Ks    ", tolKs, res.Ks, expected.Ks)
}

// checkClose reports a test error unless a and b are close within the relative
// tolerance tol: |a-b|/a ≤ tol (a≠0), or |a-b|/b ≤ tol (b≠0), or the difference
// is below floating-point granularity
func checkClose(tst *testing.T, msg string, tol, a, b float64) {
	if areClose(a, b, tol) {
		if chk.Verbose {
			io.Pfgreen("%s OK  a=%v b=%v\n", msg, a, b)
		}
		return
	}
	io.PfRed("%s FAIL  a=%v b=%v diff=%v\n", msg, a, b, math.Abs(a-b))
	tst.Errorf("%s: %v is not close to %v within tol=%v\n", msg, a, b, tol)
}

// areClose implements the relative closeness rule of the original SWCharEst tests
func areClose(a, b, tol float64) bool {
	if 1+(a-b)-1 == 0 { // difference below floating-point granularity
		return true
	}
	if a != 0 {
		return math.Abs((a-b)/a) <= tol
	}
	return math.Abs((a-b)/b) <= tol
}
