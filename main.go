// Copyright 2020 The SWCharEst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tehilinski/SWCharEst/swc"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// input data
	sand := io.ArgToFloat(0, 0.85)
	clay := io.ArgToFloat(1, 0.04)
	ompc := io.ArgToFloat(2, 2.08)
	verbose := io.ArgToBool(3, false)

	// message
	io.PfWhite("\nSWCharEst -- soil water characteristics from texture and organic matter\n")
	io.Pf("Saxton KE and Rawls WJ (2006), Soil Sci. Soc. Am. J. 70(5), 1569-1578\n")
	io.Pf("\n%v\n", swc.Usage())
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"sand weight fraction", "sand", sand,
		"clay weight fraction", "clay", clay,
		"soil organic matter [wt%]", "ompc", ompc,
		"print intermediate values", "verbose", verbose,
	))

	// estimate
	v, err := swc.Derive(sand, clay, ompc)
	if err != nil {
		chk.Panic("estimation failed:\n%v", err)
	}

	// intermediate values
	if verbose {
		io.Pfyel("om         = %v\n", v.Om)
		io.Pfyel("theta1500t = %v\n", v.Theta1500t)
		io.Pfyel("theta1500  = %v\n", v.Theta1500)
		io.Pfyel("theta33t   = %v\n", v.Theta33t)
		io.Pfyel("theta33    = %v\n", v.Theta33)
		io.Pfyel("thetaS33t  = %v\n", v.ThetaS33t)
		io.Pfyel("thetaS33   = %v\n", v.ThetaS33)
		io.Pfyel("thetaS     = %v\n", v.ThetaS)
		io.Pfyel("B          = %v\n", v.B)
		io.Pfyel("lambda     = %v\n", v.Lam)
		io.Pfyel("Ks         = %v\n", v.Ks)
	}

	// results
	io.Pf("\nRESULTS\n")
	io.Pforan("WP     = %v [volume fraction]\n", v.Theta1500)
	io.Pforan("FC     = %v [volume fraction]\n", v.Theta33)
	io.Pforan("thetaS = %v [volume fraction]\n", v.ThetaS)
	io.Pforan("Ks     = %v [cm/sec]\n", v.Ks)
}
