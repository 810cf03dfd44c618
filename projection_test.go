// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip forward-projects a geodetic point then inverts it, asserting
// the result returns to the original within tolerance. This is the shape
// every projection in the catalogue is expected to satisfy away from its
// singular points (poles for azimuthal projections, antipodes, etc.).
func roundTrip(t *testing.T, projStr string, lamDeg, phiDeg float64) {
	t.Helper()
	p, err := NewProjectionFromString(projStr)
	require.NoError(t, err)
	lam, phi := lamDeg*d2r, phiDeg*d2r
	x, y, err := p.Forward(lam, phi)
	require.NoError(t, err)
	gotLam, gotPhi, err := p.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, lam, gotLam, 1e-7, "longitude round trip for %s", projStr)
	assert.InDelta(t, phi, gotPhi, 1e-7, "latitude round trip for %s", projStr)
}

func TestLongLatIdentity(t *testing.T) {
	p, err := NewProjectionFromString("+proj=longlat +ellps=WGS84")
	require.NoError(t, err)
	x, y, err := p.Forward(1*d2r, 2*d2r)
	require.NoError(t, err)
	assert.InDelta(t, 1*d2r, x, 1e-9)
	assert.InDelta(t, 2*d2r, y, 1e-9)
}

func TestMercatorRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=merc +lat_ts=0 +ellps=WGS84", 10, 45)
	roundTrip(t, "+proj=merc +ellps=sphere", -120, -30)
}

func TestEquirectangularRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=eqc +ellps=WGS84", 5, 40)
}

func TestCEARoundTrip(t *testing.T) {
	roundTrip(t, "+proj=cea +ellps=WGS84", 12, 20)
}

func TestSinusoidalRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=sinu +ellps=WGS84", 30, 10)
	roundTrip(t, "+proj=sinu +ellps=sphere", 30, 10)
}

func TestLCCRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=lcc +lat_1=33 +lat_2=45 +lat_0=23 +lon_0=-96 +ellps=WGS84", -100, 40)
}

func TestAEARoundTrip(t *testing.T) {
	roundTrip(t, "+proj=aea +lat_1=29.5 +lat_2=45.5 +lat_0=23 +lon_0=-96 +ellps=WGS84", -100, 40)
}

func TestStereographicPolarRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=stere +lat_0=90 +lat_ts=90 +lon_0=0 +ellps=WGS84", 10, 80)
}

func TestStereographicObliqueRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=stere +lat_0=52 +lon_0=5 +ellps=WGS84", 6, 53)
}

func TestOrthographicRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=ortho +lat_0=40 +lon_0=-100 +ellps=sphere", -98, 41)
}

func TestGnomonicRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=gnom +lat_0=40 +lon_0=-100 +ellps=sphere", -98, 41)
}

func TestAEQDRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=aeqd +lat_0=40 +lon_0=-100 +ellps=WGS84", -98, 41)
}

func TestAEQDPolarRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=aeqd +lat_0=90 +lon_0=0 +ellps=WGS84", 10, 70)
}

func TestTMercRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=tmerc +lon_0=-75 +lat_0=0 +k=0.9996 +x_0=500000 +ellps=WGS84", -74, 40)
}

func TestUTMRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=utm +zone=33 +ellps=WGS84", 15, 45)
}

func TestUTMSouthRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=utm +zone=33 +south +ellps=WGS84", 15, -45)
}

func TestCassiniRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=cass +lat_0=10 +lon_0=20 +ellps=WGS84", 21, 11)
}

func TestRobinsonRoundTrip(t *testing.T) {
	roundTrip(t, "+proj=robin +ellps=sphere", 40, 30)
}

func TestForwardOutOfDomain(t *testing.T) {
	p, err := NewProjectionFromString("+proj=merc +ellps=WGS84")
	require.NoError(t, err)
	_, _, err = p.Forward(20, 2)
	require.Error(t, err)
}

func TestUnknownProjectionRejectedAtCompile(t *testing.T) {
	def := NewProjectionDef()
	def.Proj = "does-not-exist"
	_, err := NewProjection(def)
	require.Error(t, err)
}

func TestGeocentricLatitudeAdjustment(t *testing.T) {
	p, err := NewProjectionFromString("+proj=longlat +geoc +ellps=WGS84")
	require.NoError(t, err)
	_, y, err := p.Forward(0, 45*d2r)
	require.NoError(t, err)
	assert.NotEqual(t, 45*d2r, y)
	assert.False(t, math.IsNaN(y))
}
