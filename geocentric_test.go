// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func wgs84Ellipsoid() Ellipsoid {
	return deriveEllipsoid(math.NaN(), math.NaN(), math.NaN(), "WGS84")
}

func TestGeocentricRoundTrip(t *testing.T) {
	e := wgs84Ellipsoid()
	lon, lat, h := -75*d2r, 40*d2r, 100.0
	v := geodeticToGeocentric(e, lon, lat, h)
	gotLon, gotLat, gotH := geocentricToGeodetic(e, v)
	assert.InDelta(t, lon, gotLon, 1e-9)
	assert.InDelta(t, lat, gotLat, 1e-9)
	assert.InDelta(t, h, gotH, 1e-6)
}

func TestGeocentricEquatorPoint(t *testing.T) {
	e := wgs84Ellipsoid()
	v := geodeticToGeocentric(e, 0, 0, 0)
	assert.InDelta(t, e.A, v.X, 1e-6)
	assert.InDelta(t, 0, v.Y, 1e-6)
	assert.InDelta(t, 0, v.Z, 1e-6)
}

func TestGeocentricPole(t *testing.T) {
	e := wgs84Ellipsoid()
	_, lat, _ := geocentricToGeodetic(e, r3.Vec{X: 0, Y: 0, Z: e.B})
	assert.InDelta(t, halfPi, lat, 1e-6)
}

func TestGeocentricSphereShortcut(t *testing.T) {
	e := deriveEllipsoid(6371000, 6371000, math.NaN(), "")
	lon, lat, h := geocentricToGeodetic(e, r3.Vec{X: e.A, Y: 0, Z: 0})
	assert.InDelta(t, 0, lon, 1e-9)
	assert.InDelta(t, 0, lat, 1e-9)
	assert.InDelta(t, 0, h, 1e-6)
}
