// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// Grid is a loaded horizontal shift grid: one or more rectangular subgrids
// of (dLon, dLat) corrections in radians, indexed south-to-north,
// west-to-east. Generalized from the NTv2/GeoTIFF decoders' shared shape;
// grounded structurally on ctessum/geom/proj/datum.go's nad27/nad83 grid
// handling, extended to carry multiple subgrids per spec §3.5.
type Grid struct {
	Name     string
	Subgrids []Subgrid
}

// Subgrid is one rectangular cell of a Grid: an origin, a cell size, a
// row/column count, and the shift values themselves (row-major,
// south-to-north then west-to-east, matching NTv2's on-disk order).
type Subgrid struct {
	LowerLeftLon, LowerLeftLat float64 // radians
	CellLon, CellLat          float64 // radians
	Cols, Rows                int
	DLon, DLat                []float64 // len == Cols*Rows
}

// gridEpsilon is the containment tolerance spec §3.5 allows at a subgrid's
// edge, absorbing floating-point rounding from the angular cell size.
const gridEpsilon = 1e-12

// contains reports whether (lon, lat) (radians) falls within this
// subgrid's bounding box, inclusive of edges within gridEpsilon.
func (s Subgrid) contains(lon, lat float64) bool {
	maxLon := s.LowerLeftLon + s.CellLon*float64(s.Cols-1)
	maxLat := s.LowerLeftLat + s.CellLat*float64(s.Rows-1)
	return lon >= s.LowerLeftLon-gridEpsilon && lon <= maxLon+gridEpsilon &&
		lat >= s.LowerLeftLat-gridEpsilon && lat <= maxLat+gridEpsilon
}

// bestSubgrid returns the most specific (smallest-area) subgrid containing
// the point, matching NTv2's convention that child subgrids refine their
// parent over a sub-region.
func (g Grid) bestSubgrid(lon, lat float64) (Subgrid, bool) {
	var best Subgrid
	found := false
	var bestArea float64
	for _, s := range g.Subgrids {
		if !s.contains(lon, lat) {
			continue
		}
		area := (s.CellLon * float64(s.Cols)) * (s.CellLat * float64(s.Rows))
		if !found || math.Abs(area) < math.Abs(bestArea) {
			best, bestArea, found = s, area, true
		}
	}
	return best, found
}

// interpolate bilinearly interpolates the (dLon, dLat) shift at (lon, lat)
// within this subgrid.
func (s Subgrid) interpolate(lon, lat float64) (dLon, dLat float64) {
	fx := (lon - s.LowerLeftLon) / s.CellLon
	fy := (lat - s.LowerLeftLat) / s.CellLat
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x0 = clampInt(x0, 0, s.Cols-2)
	y0 = clampInt(y0, 0, s.Rows-2)
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	idx := func(col, row int) int { return row*s.Cols + col }
	lon00, lat00 := s.DLon[idx(x0, y0)], s.DLat[idx(x0, y0)]
	lon10, lat10 := s.DLon[idx(x0+1, y0)], s.DLat[idx(x0+1, y0)]
	lon01, lat01 := s.DLon[idx(x0, y0+1)], s.DLat[idx(x0, y0+1)]
	lon11, lat11 := s.DLon[idx(x0+1, y0+1)], s.DLat[idx(x0+1, y0+1)]

	dLon = bilerp(lon00, lon10, lon01, lon11, tx, ty)
	dLat = bilerp(lat00, lat10, lat01, lat11, tx, ty)
	return dLon, dLat
}

func bilerp(v00, v10, v01, v11, tx, ty float64) float64 {
	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApplyForward shifts a geodetic point by this grid's correction,
// (lon, lat) in radians, additive: lon + dLon, lat + dLat.
func (g Grid) ApplyForward(lon, lat float64) (float64, float64, bool) {
	s, ok := g.bestSubgrid(lon, lat)
	if !ok {
		return lon, lat, false
	}
	dLon, dLat := s.interpolate(lon, lat)
	return lon + dLon, lat + dLat, true
}

// gridShiftMaxIter bounds the Newton-style fixed-point iteration
// ApplyInverse uses to invert the (generally non-analytic) forward shift,
// per spec §3.5.
const gridShiftMaxIter = 9

// ApplyInverse inverts ApplyForward by iterating: guess the source point is
// the destination point, apply the forward shift, and correct the guess by
// the residual, repeating until convergence or the iteration cap.
func (g Grid) ApplyInverse(lon, lat float64) (float64, float64, error) {
	guessLon, guessLat := lon, lat
	for i := 0; i < gridShiftMaxIter; i++ {
		fLon, fLat, ok := g.ApplyForward(guessLon, guessLat)
		if !ok {
			return 0, 0, newGridOutOfBounds(lon, lat)
		}
		dLon, dLat := lon-fLon, lat-fLat
		guessLon += dLon
		guessLat += dLat
		if math.Abs(dLon) < 1e-12 && math.Abs(dLat) < 1e-12 {
			return guessLon, guessLat, nil
		}
	}
	return 0, 0, newNonconvergent("grid_inverse", 0)
}
