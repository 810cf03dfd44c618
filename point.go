// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// Point is a mutable (x, y, z, m) tuple passed by value everywhere in this
// package. For geographic CRSs x/y are longitude/latitude in radians; for
// projected CRSs they are easting/northing in the CRS's declared unit. Z is
// height in the CRS's linear unit. M is "absent" when NaN.
//
// Transformer.Transform returns a fresh value and Transformer.TransformAll a
// fresh slice; neither mutates the caller's Points.
type Point struct {
	X, Y, Z, M float64
}

// NewPoint builds a 2-D point with an absent M.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, M: math.NaN()}
}

// NewPoint3 builds a 3-D point with an absent M.
func NewPoint3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z, M: math.NaN()}
}

// HasM reports whether the point carries a measure value.
func (p Point) HasM() bool {
	return !math.IsNaN(p.M)
}

// IsValid reports whether neither coordinate is NaN. Transformer.Transform
// returns an invalid Point (NaN, NaN) together with an error when a point
// fails.
func (p Point) IsValid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

var invalidPoint = Point{X: math.NaN(), Y: math.NaN()}
