// Copyright 2020 The SWCharEst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swc

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// derive evaluates the Saxton & Rawls chain with no domain guards. The literal
// coefficients are the fitted regression values from [1] and must not change.
// om must have been limited to 70 wt% already.
func derive(sand, clay, om float64) (v Inter) {
	v.Om = om

	v.Theta1500t = -0.024*sand + 0.487*clay + 0.006*om +
		0.005*sand*om - 0.013*clay*om + 0.068*sand*clay + 0.031
	v.Theta1500 = math.Max(0.01, v.Theta1500t+0.14*v.Theta1500t-0.02) // constrain

	v.Theta33t = -0.251*sand + 0.195*clay + 0.011*om +
		0.006*sand*om - 0.027*clay*om + 0.452*sand*clay + 0.299
	v.Theta33 = math.Min(0.80, v.Theta33t+1.283*v.Theta33t*v.Theta33t-0.374*v.Theta33t-0.015) // constrain

	v.Theta1500 = math.Min(v.Theta1500, 0.80*v.Theta33) // constrain

	v.ThetaS33t = 0.278*sand + 0.034*clay + 0.022*om -
		0.018*sand*om - 0.027*clay*om - 0.584*sand*clay + 0.078
	v.ThetaS33 = v.ThetaS33t + 0.636*v.ThetaS33t - 0.107

	v.ThetaS = v.Theta33 + v.ThetaS33 - 0.097*sand + 0.043

	v.B = 3.816713 / (math.Log(v.Theta33) - math.Log(v.Theta1500))
	v.Lam = 1.0 / v.B
	v.Ks = 1930.0 * math.Pow(v.ThetaS-v.Theta33, 3.0-v.Lam) / 36000.0
	return
}

// Derive computes the full estimation chain and returns every intermediate value.
// The organic matter is limited to 70 wt% before the input check, thus arguments
// with ompc above 70 behave as ompc = 70. An error is returned if the input is
// out of range or if the chain hits an undefined operation: Theta33 non-positive
// (logarithm) or ThetaS below Theta33 (fractional power of a negative base)
func Derive(sand, clay, ompc float64) (v Inter, err error) {
	om := math.Min(70.0, ompc) // upper limit OM%
	if err = CheckInput(sand, clay, om); err != nil {
		return
	}
	v = derive(sand, clay, om)
	if v.Theta33 <= 0 {
		err = chk.Err("moisture-tension coefficient is undefined: theta33=%g is non-positive (sand=%g, clay=%g, om=%g)", v.Theta33, sand, clay, om)
		v = Inter{}
		return
	}
	if v.ThetaS < v.Theta33 {
		err = chk.Err("conductivity is undefined: thetaS=%g is below theta33=%g (sand=%g, clay=%g, om=%g)", v.ThetaS, v.Theta33, sand, clay, om)
		v = Inter{}
	}
	return
}

// Estimate computes the soil water characteristics from the sand weight fraction,
// the clay weight fraction and the soil organic matter content in weight percent.
// Each call returns a fresh value; it is safe for concurrent use
func Estimate(sand, clay, ompc float64) (p Props, err error) {
	v, err := Derive(sand, clay, ompc)
	if err != nil {
		return
	}
	p = Props{WP: v.Theta1500, FC: v.Theta33, ThetaS: v.ThetaS, Ks: v.Ks}
	return
}

// EstimateVec is like Estimate but takes the three soil values packed as
// soil = {sand, clay, ompc}
func EstimateVec(soil []float64) (Props, error) {
	if len(soil) != 3 {
		return Props{}, chk.Err("soil vector must have 3 components: sand, clay, om. len=%d is invalid", len(soil))
	}
	return Estimate(soil[0], soil[1], soil[2])
}

// Get reproduces the contract of the original SWCharEst tool: the result is always
// the 4-vector {WP, FC, thetaS, Ks}, with all components zero when the input is
// invalid. The arithmetic is unguarded, so adversarial in-range inputs may produce
// NaN components. New code should call Estimate instead
func Get(sand, clay, ompc float64) []float64 {
	res := make([]float64, 4)
	om := math.Min(70.0, ompc) // upper limit OM%
	if CheckInput(sand, clay, om) != nil {
		return res
	}
	v := derive(sand, clay, om)
	res[0] = v.Theta1500 // WP
	res[1] = v.Theta33   // FC
	res[2] = v.ThetaS    // thetaS
	res[3] = v.Ks        // Ks
	return res
}
