// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// geodeticToGeocentric converts (lon, lat, h) in radians/meters to an
// earth-centered, earth-fixed Cartesian vector, using gonum's r3.Vec as the
// carrier type (ctessum/geom/proj/datum.go does the same conversion with
// plain float64 triples; this generalizes it onto a real vector type so the
// Helmert step below can use r3's arithmetic instead of manual component
// juggling).
func geodeticToGeocentric(e Ellipsoid, lon, lat, h float64) r3.Vec {
	sinPhi, cosPhi := math.Sin(lat), math.Cos(lat)
	n := e.A
	if !e.Sphere {
		n = e.A / math.Sqrt(1-e.Es*sinPhi*sinPhi)
	}
	x := (n + h) * cosPhi * math.Cos(lon)
	y := (n + h) * cosPhi * math.Sin(lon)
	z := (n*(1-e.Es) + h) * sinPhi
	return r3.Vec{X: x, Y: y, Z: z}
}

// geocentricToGeodetic recovers (lon, lat, h) from an ECEF vector.
//
// Bowring's closed-form approximation seeds the latitude, and an iterative
// refinement always follows: at most 10 passes, stopping once the latitude
// changes by less than 1e-12 radians. Generalized from the iterative
// fallback in ctessum/geom/proj/datum.go.
func geocentricToGeodetic(e Ellipsoid, v r3.Vec) (lon, lat, h float64) {
	p := math.Hypot(v.X, v.Y)
	if p == 0 {
		lat = math.Copysign(halfPi, v.Z)
		return 0, lat, math.Abs(v.Z) - e.B
	}
	lon = math.Atan2(v.Y, v.X)

	if e.Sphere {
		r := math.Sqrt(p*p + v.Z*v.Z)
		return lon, math.Asin(v.Z / r), r - e.A
	}

	theta := math.Atan2(v.Z*e.A, p*e.B)
	sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
	lat = math.Atan2(v.Z+e.Ep2*e.B*sinTheta*sinTheta*sinTheta,
		p-e.Es*e.A*cosTheta*cosTheta*cosTheta)

	for i := 0; i < 10; i++ {
		sinPhi := math.Sin(lat)
		n := e.A / math.Sqrt(1-e.Es*sinPhi*sinPhi)
		h = p/math.Cos(lat) - n
		newLat := math.Atan2(v.Z, p*(1-e.Es*n/(n+h)))
		if math.Abs(newLat-lat) < 1e-12 {
			lat = newLat
			break
		}
		lat = newLat
	}
	sinPhi := math.Sin(lat)
	n := e.A / math.Sqrt(1-e.Es*sinPhi*sinPhi)
	h = p/math.Cos(lat) - n
	return lon, lat, h
}
