// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestHelmertForwardInverseThreeParam(t *testing.T) {
	params := []float64{10, -20, 30}
	v := r3.Vec{X: 100, Y: 200, Z: 300}
	fwd := helmertForward(params, v)
	back := helmertInverse(params, fwd)
	assert.InDelta(t, v.X, back.X, 1e-9)
	assert.InDelta(t, v.Y, back.Y, 1e-9)
	assert.InDelta(t, v.Z, back.Z, 1e-9)
}

func TestHelmertForwardInverseSevenParam(t *testing.T) {
	params := []float64{598.1, 73.7, 418.2, 0.202 * sec2rad, 0.045 * sec2rad, -2.455 * sec2rad, 6.7/1e6 + 1}
	v := r3.Vec{X: 4e6, Y: 1e6, Z: 4.5e6}
	fwd := helmertForward(params, v)
	back := helmertInverse(params, fwd)
	assert.InDelta(t, v.X, back.X, 1e-3)
	assert.InDelta(t, v.Y, back.Y, 1e-3)
	assert.InDelta(t, v.Z, back.Z, 1e-3)
}

func TestTransformDatumShortCircuitsOnEqual(t *testing.T) {
	d := Datum{Type: DatumWGS84, A: 6378137, Es: 0.00669438}
	lon, lat, h, err := transformDatum(d, d, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, lon)
	assert.Equal(t, 2.0, lat)
	assert.Equal(t, 3.0, h)
}

func TestTransformDatumNoneShortCircuits(t *testing.T) {
	none := Datum{Type: DatumNone}
	wgs := Datum{Type: DatumWGS84, A: 6378137, Es: 0.00669438}
	lon, lat, h, err := transformDatum(none, wgs, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, lon)
	assert.Equal(t, 2.0, lat)
	assert.Equal(t, 3.0, h)
}

func TestTransformDatumHelmertRoundTrip(t *testing.T) {
	wgs := Datum{Type: DatumWGS84, A: 6378137, Es: 0.00669438}
	bessel := Datum{
		Type:   Datum7Param,
		A:      6377397.155,
		Es:     1 - (6356078.963/6377397.155)*(6356078.963/6377397.155),
		Params: []float64{598.1, 73.7, 418.2, 0.202 * sec2rad, 0.045 * sec2rad, -2.455 * sec2rad, 6.7/1e6 + 1},
	}
	lon, lat, h := -75 * d2r, 40 * d2r, 0.0
	lon2, lat2, h2, err := transformDatum(bessel, wgs, lon, lat, h)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(lon2))
	assert.False(t, math.IsNaN(lat2))
	assert.False(t, math.IsNaN(h2))
}
