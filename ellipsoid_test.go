// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveEllipsoidNamed(t *testing.T) {
	e := deriveEllipsoid(math.NaN(), math.NaN(), math.NaN(), "WGS84")
	assert.InDelta(t, 6378137.0, e.A, 1e-6)
	assert.False(t, e.Sphere)
	assert.Greater(t, e.Es, 0.0)
}

func TestDeriveEllipsoidExplicitAB(t *testing.T) {
	e := deriveEllipsoid(6378206.4, 6356583.8, math.NaN(), "")
	assert.InDelta(t, 6378206.4, e.A, 1e-6)
	assert.InDelta(t, 6356583.8, e.B, 1e-6)
	assert.False(t, e.Sphere)
}

func TestDeriveEllipsoidExplicitARf(t *testing.T) {
	e := deriveEllipsoid(6378137.0, math.NaN(), 298.257223563, "")
	assert.InDelta(t, 6378137.0, e.A, 1e-6)
	assert.InDelta(t, 6356752.314, e.B, 1e-2)
}

func TestDeriveEllipsoidSphereDefault(t *testing.T) {
	e := deriveEllipsoid(6371000, math.NaN(), math.NaN(), "")
	assert.True(t, e.Sphere)
	assert.Equal(t, 0.0, e.Es)
	assert.Equal(t, e.A, e.B)
}

func TestDeriveEllipsoidFallsBackToWGS84(t *testing.T) {
	e := deriveEllipsoid(math.NaN(), math.NaN(), math.NaN(), "")
	assert.InDelta(t, 6378137.0, e.A, 1e-6)
}

func TestLookupEllipsoidMiss(t *testing.T) {
	_, ok := lookupEllipsoid("not-a-real-ellipsoid")
	assert.False(t, ok)
}

func TestAuthalicRadius(t *testing.T) {
	wgs84 := ellipsoidTable["WGS84"]
	e := deriveEllipsoid(wgs84.a, math.NaN(), wgs84.rf, "")
	r := authalicRadius(e.A, e.Es)
	assert.Less(t, r, e.A)
	assert.Greater(t, r, e.B)
}
