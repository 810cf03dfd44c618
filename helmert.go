// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "gonum.org/v1/gonum/spatial/r3"

// helmertForward applies a Helmert (similarity) transform to a geocentric
// vector: translation, small-angle rotation, and scale. params holds 3
// entries (translation only) or 7 (translation, rotation in radians, scale
// as a unit-neighbourhood multiplier, per parseTowgs84's conversion).
func helmertForward(params []float64, v r3.Vec) r3.Vec {
	if len(params) == 3 {
		return r3.Add(v, r3.Vec{X: params[0], Y: params[1], Z: params[2]})
	}
	rx, ry, rz, m := params[3], params[4], params[5], params[6]
	rotated := r3.Vec{
		X: m * (v.X - rz*v.Y + ry*v.Z),
		Y: m * (rz*v.X + v.Y - rx*v.Z),
		Z: m * (-ry*v.X + rx*v.Y + v.Z),
	}
	return r3.Add(rotated, r3.Vec{X: params[0], Y: params[1], Z: params[2]})
}

// helmertInverse undoes helmertForward. For the 7-parameter case this uses
// the first-order inverse (negate translation and rotation, reciprocal
// scale) that PROJ itself relies on, rather than a full matrix inversion:
// the rotation angles are always small enough in practice (arc-seconds)
// that the first-order approximation is within the grid-shift tolerance
// spec §4.8 allows.
func helmertInverse(params []float64, v r3.Vec) r3.Vec {
	if len(params) == 3 {
		return r3.Sub(v, r3.Vec{X: params[0], Y: params[1], Z: params[2]})
	}
	shifted := r3.Sub(v, r3.Vec{X: params[0], Y: params[1], Z: params[2]})
	rx, ry, rz, m := params[3], params[4], params[5], params[6]
	return r3.Vec{
		X: (shifted.X + rz*shifted.Y - ry*shifted.Z) / m,
		Y: (-rz*shifted.X + shifted.Y + rx*shifted.Z) / m,
		Z: (ry*shifted.X - rx*shifted.Y + shifted.Z) / m,
	}
}

// transformDatum moves a geodetic point from one datum to another via their
// shared geocentric frame: source datum -> geocentric -> Helmert -> WGS84
// geocentric -> Helmert inverse of the destination -> destination
// geodetic. A NODATUM ("none") source or destination, or two datums
// comparing Equal, short-circuits to the identity per spec §4.9.
func transformDatum(from, to Datum, lon, lat, h float64) (float64, float64, float64, error) {
	if from.Type == DatumNone || to.Type == DatumNone || from.Equal(to) {
		return lon, lat, h, nil
	}
	srcEllipsoid := Ellipsoid{A: from.A, B: from.B, Es: from.Es}
	dstEllipsoid := Ellipsoid{A: to.A, B: to.B, Es: to.Es}

	v := geodeticToGeocentric(srcEllipsoid, lon, lat, h)
	switch from.Type {
	case Datum3Param, Datum7Param:
		v = helmertForward(from.Params, v)
	case DatumGridShift:
		// Grid-based datum shift happens in geographic space before this
		// function is reached; see Transformer.shiftDatum.
	}
	switch to.Type {
	case Datum3Param, Datum7Param:
		v = helmertInverse(to.Params, v)
	}
	lon2, lat2, h2 := geocentricToGeodetic(dstEllipsoid, v)
	return lon2, lat2, h2, nil
}
