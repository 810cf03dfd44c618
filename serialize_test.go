// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProjStringRoundTrips(t *testing.T) {
	def, err := ParseProjString("+proj=tmerc +lat_0=0 +lon_0=15 +k=0.9996 +x_0=500000 +y_0=0 +ellps=WGS84")
	require.NoError(t, err)
	out := ToProjString(def)
	assert.Contains(t, out, "+proj=tmerc")
	assert.Contains(t, out, "+lon_0=15")
	assert.Contains(t, out, "+ellps=WGS84")

	reparsed, err := ParseProjString(out)
	require.NoError(t, err)
	assert.Equal(t, def.Proj, reparsed.Proj)
	assert.InDelta(t, def.Lam0, reparsed.Lam0, 1e-9)
	assert.InDelta(t, def.X0, reparsed.X0, 1e-9)
}

func TestToProjStringIsDeterministic(t *testing.T) {
	def, err := ParseProjString("+proj=lcc +lat_1=33 +lat_2=45 +lat_0=23 +lon_0=-96 +x_0=0 +y_0=0 +ellps=GRS80")
	require.NoError(t, err)
	a := ToProjString(def)
	b := ToProjString(def)
	assert.Equal(t, a, b)
}

func TestToProjStringOmitsDefaultScale(t *testing.T) {
	def, err := ParseProjString("+proj=merc +ellps=WGS84")
	require.NoError(t, err)
	out := ToProjString(def)
	assert.NotContains(t, out, "+k=")
}

func TestToProjStringEmitsUnknownEllipsoidAsAB(t *testing.T) {
	def, err := ParseProjString("+proj=longlat +a=6400000 +b=6300000")
	require.NoError(t, err)
	out := ToProjString(def)
	assert.True(t, strings.Contains(out, "+a=6400000") || strings.Contains(out, "+ellps="))
}

func TestEPSGGuessFindsWebMercator(t *testing.T) {
	def, err := ParseProjString("+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null +no_defs")
	require.NoError(t, err)
	code := EPSGGuess(def)
	assert.Equal(t, "EPSG:3857", code)
}

func TestEPSGGuessFindsWGS84LongLat(t *testing.T) {
	def, err := ParseProjString("+proj=longlat +ellps=WGS84 +datum=WGS84 +no_defs")
	require.NoError(t, err)
	code := EPSGGuess(def)
	assert.Equal(t, "EPSG:4326", code)
}

func TestEPSGGuessReturnsEmptyForUnknown(t *testing.T) {
	def, err := ParseProjString("+proj=aeqd +lat_0=10 +lon_0=20 +ellps=clrk66")
	require.NoError(t, err)
	assert.Equal(t, "", EPSGGuess(def))
}

func TestToPROJJSONIsDeterministic(t *testing.T) {
	def, err := ParseProjString("+proj=tmerc +lat_0=0 +lon_0=15 +k=0.9996 +x_0=500000 +y_0=0 +ellps=WGS84")
	require.NoError(t, err)
	a, err := ToPROJJSON(def)
	require.NoError(t, err)
	b, err := ToPROJJSON(def)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestToPROJJSONGeographic(t *testing.T) {
	def, err := ParseProjString("+proj=longlat +ellps=WGS84")
	require.NoError(t, err)
	data, err := ToPROJJSON(def)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"GeographicCRS"`)
}
