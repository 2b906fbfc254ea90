// Copyright 2020 The SWCharEst Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package swc estimates soil water characteristics from soil texture and organic matter
//  The wilting point, field capacity, saturated water content and saturated hydraulic
//  conductivity are computed with the pedotransfer equations from:
//   [1] Saxton KE and Rawls WJ (2006) Soil water characteristic estimates by texture
//       and organic matter for hydrologic solutions. Soil Science Society of America
//       Journal, 70(5), 1569-1578, http://dx.doi.org/10.2136/sssaj2005.0117
//       Spreadsheet available at: http://hydrolab.arsusda.gov/soilwater/Index.htm
package swc

import "github.com/cpmech/gosl/chk"

// Props holds the estimated soil water characteristics
type Props struct {
	WP     float64 // 1 wilting point (1500 kPa moisture) [volume fraction]
	FC     float64 // 2 field capacity (33 kPa moisture) [volume fraction]
	ThetaS float64 // 3 saturated water content [volume fraction]
	Ks     float64 // 4 saturated hydraulic conductivity [cm/sec]
}

// Inter holds every intermediate value of the estimation chain; see [1] Table 1
type Inter struct {
	Om         float64 // 1  organic matter after the 70 wt% upper limit
	Theta1500t float64 // 2  1500 kPa moisture, first solution
	Theta1500  float64 // 3  1500 kPa moisture, adjusted and constrained (= WP)
	Theta33t   float64 // 4  33 kPa moisture, first solution
	Theta33    float64 // 5  33 kPa moisture, adjusted and constrained (= FC)
	ThetaS33t  float64 // 6  saturation-33 kPa moisture, first solution
	ThetaS33   float64 // 7  saturation-33 kPa moisture, adjusted
	ThetaS     float64 // 8  saturated moisture
	B          float64 // 9  coefficient of the moisture-tension curve
	Lam        float64 // 10 slope of the log tension-moisture curve (1/B)
	Ks         float64 // 11 saturated hydraulic conductivity [cm/sec]
}

// CheckInput returns an error if the soil arguments are out of range. The sand and
// clay weight fractions must be within [0,1] and must not sum above 1 (the remainder
// is silt); the organic matter content must be within [0,70] wt%
func CheckInput(sand, clay, ompc float64) error {
	if sand < 0 || sand > 1 {
		return chk.Err("sand fraction must be within [0,1]. sand=%g is invalid", sand)
	}
	if clay < 0 || clay > 1 {
		return chk.Err("clay fraction must be within [0,1]. clay=%g is invalid", clay)
	}
	if ompc < 0 || ompc > 70 {
		return chk.Err("organic matter must be within [0,70] wt%%. om=%g is invalid", ompc)
	}
	if sand+clay > 1 {
		return chk.Err("sand and clay fractions must not sum above 1. sand+clay=%g is invalid", sand+clay)
	}
	return nil
}

// Usage returns a message describing the arguments and results of Estimate
func Usage() string {
	return `Usage:
  props, err := swc.Estimate(sandFraction, clayFraction, somPercent)
Arguments:
  sand-fraction = sand weight fraction (0-1)
  clay-fraction = clay weight fraction (0-1)
  SOM-percent   = soil organic matter (weight %)
Results:
  WP     = wilting point (volume fraction)
  FC     = field capacity (volume fraction)
  thetaS = saturated water content (volume fraction)
  Ks     = saturated hydraulic conductivity (cm/sec)`
}
