// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjStringBasic(t *testing.T) {
	def, err := ParseProjString("+proj=merc +lat_ts=0 +ellps=WGS84 +datum=WGS84 +units=m +no_defs")
	require.NoError(t, err)
	assert.Equal(t, "merc", def.Proj)
	assert.InDelta(t, 6378137.0, def.Ellipsoid.A, 1e-6)
	assert.Equal(t, 1.0, def.ToMeter)
}

func TestParseProjStringNegativeValue(t *testing.T) {
	// The teacher's original tokenizer (strings.Split on "+") mishandled
	// negative parameters; this is the regression case for the fix.
	def, err := ParseProjString("+proj=tmerc +lon_0=-75 +x_0=500000 +ellps=WGS84")
	require.NoError(t, err)
	assert.InDelta(t, -75*d2r, def.Lam0, 1e-9)
	assert.Equal(t, 500000.0, def.X0)
}

func TestParseProjStringMissingProj(t *testing.T) {
	_, err := ParseProjString("+lat_0=10")
	require.Error(t, err)
	perr := err.(*Error)
	assert.Equal(t, KindMissingParameter, perr.Kind)
}

func TestParseProjStringUnknownProjection(t *testing.T) {
	_, err := ParseProjString("+proj=bogus")
	require.Error(t, err)
	perr := err.(*Error)
	assert.Equal(t, KindUnknownProjection, perr.Kind)
}

func TestParseProjStringZoneSouth(t *testing.T) {
	def, err := ParseProjString("+proj=utm +zone=33 +south +ellps=WGS84")
	require.NoError(t, err)
	assert.Equal(t, 33, def.Zone)
	assert.True(t, def.SouthZone)
}

func TestParseProjStringTowgs84(t *testing.T) {
	def, err := ParseProjString("+proj=longlat +ellps=bessel +towgs84=598.1,73.7,418.2")
	require.NoError(t, err)
	assert.Equal(t, Datum3Param, def.Datum.Type)
	assert.Equal(t, []float64{598.1, 73.7, 418.2}, def.Datum.Params)
}

func TestParseProjStringNadgrids(t *testing.T) {
	def, err := ParseProjString("+proj=longlat +ellps=clrk66 +nadgrids=@conus,@ntv2_0.gsb")
	require.NoError(t, err)
	assert.Equal(t, DatumGridShift, def.Datum.Type)
	require.Len(t, def.Datum.Grids, 2)
	assert.False(t, def.Datum.Grids[0].Mandatory)
}

func TestParseProjStringInvalidScale(t *testing.T) {
	_, err := ParseProjString("+proj=merc +k=-1")
	require.Error(t, err)
}

func TestParseProjStringPrimeMeridianNamed(t *testing.T) {
	def, err := ParseProjString("+proj=longlat +pm=paris")
	require.NoError(t, err)
	lon, _ := lookupPrimeMeridian("paris")
	assert.InDelta(t, lon*d2r, def.FromGreenwich, 1e-9)
}
