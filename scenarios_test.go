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

func mustProjection(t *testing.T, s string) *Projection {
	t.Helper()
	p, err := NewProjectionFromString(s)
	require.NoError(t, err)
	return p
}

func mustRegistryProjection(t *testing.T, authority, code string) *Projection {
	t.Helper()
	def, err := Lookup(authority + ":" + code)
	require.NoError(t, err)
	p, err := NewProjection(def)
	require.NoError(t, err)
	return p
}

// S1: WGS84 -> Web Mercator at the origin.
func TestScenarioS1OriginToWebMercator(t *testing.T) {
	src := mustRegistryProjection(t, "EPSG", "4326")
	dst := mustRegistryProjection(t, "EPSG", "3857")
	tr, err := NewTransformer(src, dst, nil)
	require.NoError(t, err)

	out, err := tr.Transform(NewPoint(0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0, out.X, 1e-2)
	assert.InDelta(t, 0, out.Y, 1e-2)
}

// S2: San Francisco WGS84 -> Web Mercator.
func TestScenarioS2SanFrancisco(t *testing.T) {
	src := mustRegistryProjection(t, "EPSG", "4326")
	dst := mustRegistryProjection(t, "EPSG", "3857")
	tr, err := NewTransformer(src, dst, nil)
	require.NoError(t, err)

	in := NewPoint(-122.4194*d2r, 37.7749*d2r)
	out, err := tr.Transform(in)
	require.NoError(t, err)
	assert.InDelta(t, -13627665.27, out.X, 10)
	assert.InDelta(t, 4547675.35, out.Y, 10)
}

// S3: UTM zone 32N, Munich.
func TestScenarioS3MunichUTM32N(t *testing.T) {
	src := mustRegistryProjection(t, "EPSG", "4326")
	dst := mustRegistryProjection(t, "EPSG", "32632")
	fwd, err := NewTransformer(src, dst, nil)
	require.NoError(t, err)
	bwd, err := NewTransformer(dst, src, nil)
	require.NoError(t, err)

	in := NewPoint(11.5820*d2r, 48.1351*d2r)
	out, err := fwd.Transform(in)
	require.NoError(t, err)
	assert.InDelta(t, 600000, out.X, 100000)
	assert.True(t, out.Y > 5300000 && out.Y < 5400000)

	back, err := bwd.Transform(out)
	require.NoError(t, err)
	assert.InDelta(t, in.X/d2r, back.X/d2r, 1e-6)
	assert.InDelta(t, in.Y/d2r, back.Y/d2r, 1e-6)
}

// S4: NAD27 -> NAD83 via a synthetic grid covering the CONUS area. The real
// CONUS NADCON grid ships as a binary file outside this repository; this
// exercises the same GRIDSHIFT code path against a small in-memory stand-in
// whose shift values are representative of the real grid's magnitude.
func TestScenarioS4NAD27ToNAD83Grid(t *testing.T) {
	gs := NewGridStore()
	gs.Put(Grid{
		Name: "conus",
		Subgrids: []Subgrid{{
			LowerLeftLon: -130 * d2r, LowerLeftLat: 20 * d2r,
			CellLon: 1 * d2r, CellLat: 1 * d2r,
			Cols: 60, Rows: 30,
			DLon: constantShiftGrid(60*30, 0.000002),
			DLat: constantShiftGrid(60*30, -0.000003),
		}},
	})

	nad27, err := NewProjectionFromString("+proj=longlat +ellps=clrk66 +nadgrids=conus")
	require.NoError(t, err)
	nad83, err := NewProjectionFromString("+proj=longlat +ellps=GRS80 +datum=NAD83")
	require.NoError(t, err)
	tr, err := NewTransformer(nad27, nad83, gs)
	require.NoError(t, err)

	in := NewPoint(-77.0369*d2r, 38.9072*d2r)
	out, err := tr.Transform(in)
	require.NoError(t, err)
	assert.Less(t, math.Abs(out.X-in.X)/d2r, 0.01)
	assert.Less(t, math.Abs(out.Y-in.Y)/d2r, 0.01)
}

// S5: ED50 -> WGS84 via a three-parameter Helmert shift.
func TestScenarioS5ED50ToWGS84(t *testing.T) {
	src, err := NewProjectionFromString("+proj=longlat +ellps=intl +towgs84=-87,-98,-121")
	require.NoError(t, err)
	dst, err := NewProjectionFromString("+proj=longlat +ellps=WGS84 +datum=WGS84")
	require.NoError(t, err)
	tr, err := NewTransformer(src, dst, nil)
	require.NoError(t, err)

	in := NewPoint(2.3522*d2r, 48.8566*d2r)
	out, err := tr.Transform(in)
	require.NoError(t, err)
	assert.Less(t, math.Abs(out.X-in.X)/d2r, 0.01)
	assert.Less(t, math.Abs(out.Y-in.Y)/d2r, 0.01)
}

// S6: Robinson world map round-trip on a graticule grid.
func TestScenarioS6RobinsonRoundTrip(t *testing.T) {
	p := mustProjection(t, "+proj=robin +ellps=WGS84")
	for lonDeg := -175.0; lonDeg <= 175.0; lonDeg += 35 {
		for latDeg := -85.0; latDeg <= 85.0; latDeg += 17 {
			lam, phi := lonDeg*d2r, latDeg*d2r
			x, y, err := p.Forward(lam, phi)
			require.NoError(t, err)
			lam2, phi2, err := p.Inverse(x, y)
			require.NoError(t, err)
			assert.InDelta(t, lam, lam2, 1e-6)
			assert.InDelta(t, phi, phi2, 1e-6)
		}
	}
}

// S7: UTM south hemisphere, zone 33S.
func TestScenarioS7UTMSouthHemisphere(t *testing.T) {
	src := mustRegistryProjection(t, "EPSG", "4326")
	dst := mustRegistryProjection(t, "EPSG", "32733")
	fwd, err := NewTransformer(src, dst, nil)
	require.NoError(t, err)
	bwd, err := NewTransformer(dst, src, nil)
	require.NoError(t, err)

	in := NewPoint(20*d2r, -25*d2r)
	out, err := fwd.Transform(in)
	require.NoError(t, err)
	assert.True(t, out.Y > 7200000 && out.Y < 7400000)
	assert.True(t, out.X > 700000 && out.X < 800000)

	back, err := bwd.Transform(out)
	require.NoError(t, err)
	assert.InDelta(t, in.X/d2r, back.X/d2r, 1e-6)
	assert.InDelta(t, in.Y/d2r, back.Y/d2r, 1e-6)
}

// Invariant 1: round-trip at the projection level.
func TestInvariantProjectionRoundTrip(t *testing.T) {
	for _, s := range []string{
		"+proj=merc +ellps=WGS84",
		"+proj=tmerc +lon_0=9 +ellps=WGS84",
		"+proj=lcc +lat_1=33 +lat_2=45 +lat_0=23 +lon_0=-96 +ellps=GRS80",
		"+proj=aea +lat_1=20 +lat_2=60 +lon_0=0 +ellps=WGS84",
		"+proj=stere +lat_0=90 +ellps=WGS84",
		"+proj=gnom +lat_0=10 +lon_0=10 +ellps=WGS84",
	} {
		p := mustProjection(t, s)
		lam, phi := 12*d2r, 34*d2r
		x, y, err := p.Forward(lam, phi)
		require.NoError(t, err)
		lam2, phi2, err := p.Inverse(x, y)
		require.NoError(t, err)
		assert.InDelta(t, lam, lam2, 1e-6, s)
		assert.InDelta(t, phi, phi2, 1e-6, s)
	}
}

// Invariant 2: round-trip across a datum shift.
func TestInvariantDatumShiftRoundTrip(t *testing.T) {
	src, err := NewProjectionFromString("+proj=longlat +ellps=bessel +towgs84=598.1,73.7,418.2")
	require.NoError(t, err)
	dst, err := NewProjectionFromString("+proj=longlat +ellps=WGS84 +datum=WGS84")
	require.NoError(t, err)
	fwd, err := NewTransformer(src, dst, nil)
	require.NoError(t, err)
	bwd, err := NewTransformer(dst, src, nil)
	require.NoError(t, err)

	in := NewPoint(9*d2r, 52*d2r)
	mid, err := fwd.Transform(in)
	require.NoError(t, err)
	back, err := bwd.Transform(mid)
	require.NoError(t, err)
	assert.InDelta(t, in.X, back.X, 1e-9)
	assert.InDelta(t, in.Y, back.Y, 1e-9)
}

// Invariant 3: identical CRS pair short-circuits exactly, no float drift.
func TestInvariantIdentityShortCircuitExact(t *testing.T) {
	p := mustProjection(t, "+proj=merc +ellps=WGS84")
	tr, err := NewTransformer(p, p, nil)
	require.NoError(t, err)
	in := NewPoint(0.123456789, -0.987654321)
	out, err := tr.Transform(in)
	require.NoError(t, err)
	assert.Equal(t, in.X, out.X)
	assert.Equal(t, in.Y, out.Y)
	assert.Equal(t, in.Z, out.Z)
	assert.Equal(t, in.HasM(), out.HasM())
}

// Invariant 4: WGS84 and GRS80 datums compare equal and transform as identity.
func TestInvariantWGS84GRS80Equivalence(t *testing.T) {
	wgs84, err := NewProjectionFromString("+proj=longlat +ellps=WGS84 +datum=WGS84")
	require.NoError(t, err)
	grs80, err := NewProjectionFromString("+proj=longlat +ellps=GRS80 +datum=NAD83")
	require.NoError(t, err)
	assert.True(t, wgs84.Def.Datum.Equal(grs80.Def.Datum))

	tr, err := NewTransformer(wgs84, grs80, nil)
	require.NoError(t, err)
	assert.True(t, tr.sameDatum)
	in := NewPoint(-75*d2r, 40*d2r)
	out, err := tr.Transform(in)
	require.NoError(t, err)
	assert.InDelta(t, in.X, out.X, 1e-12)
	assert.InDelta(t, in.Y, out.Y, 1e-12)
}

// Invariant 5: PROJ-string serialise+parse round-trip preserves a and k0.
func TestInvariantProjStringSerializeRoundTrip(t *testing.T) {
	def, err := ParseProjString("+proj=merc +ellps=clrk66 +k=0.9999")
	require.NoError(t, err)
	out := ToProjString(def)
	reparsed, err := ParseProjString(out)
	require.NoError(t, err)
	assert.InDelta(t, def.Ellipsoid.A, reparsed.Ellipsoid.A, 0.1)
	assert.InDelta(t, def.K0, reparsed.K0, 1e-6)
}

// Invariant 6: grid-shift forward/inverse round-trip at an interior point.
func TestInvariantGridShiftRoundTrip(t *testing.T) {
	g := flatGrid()
	s := g.Subgrids[0]
	lon, lat := s.CellLon*0.4, s.CellLat*0.4
	fLon, fLat, ok := g.ApplyForward(lon, lat)
	require.True(t, ok)
	backLon, backLat, err := g.ApplyInverse(fLon, fLat)
	require.NoError(t, err)
	assert.InDelta(t, lon, backLon, 1e-12)
	assert.InDelta(t, lat, backLat, 1e-12)
}

func constantShiftGrid(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
