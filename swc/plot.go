// Copyright 2020 The SWCharEst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swc

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotTexture plots WP, FC and thetaS against the clay fraction, with the sand
// fraction and organic matter held fixed. Clay values for which the chain is
// undefined are skipped
func PlotTexture(sand, ompc float64, npts int) {
	var X, Wp, Fc, Ts []float64
	for _, clay := range utl.LinSpace(0, 1-sand, npts) {
		v, err := Derive(sand, clay, ompc)
		if err != nil {
			continue
		}
		X = append(X, clay)
		Wp = append(Wp, v.Theta1500)
		Fc = append(Fc, v.Theta33)
		Ts = append(Ts, v.ThetaS)
	}
	plt.Plot(X, Wp, &plt.A{C: "r", M: ".", L: "WP"})
	plt.Plot(X, Fc, &plt.A{C: "b", M: "+", L: "FC"})
	plt.Plot(X, Ts, &plt.A{C: "g", M: "*", L: "thetaS"})
	plt.Title(io.Sf("sand=%g, om=%g wt%%", sand, ompc), nil)
	plt.Gll("clay fraction", "water content [volume fraction]", nil)
}
