// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// DatumType enumerates the datum-shift strategies a ProjectionDef can carry,
// per spec §3.3.
type DatumType int

const (
	// DatumWGS84 is the implicit identity datum.
	DatumWGS84 DatumType = iota
	// DatumNone means the user explicitly opted out of any datum shift
	// (+nadgrids=@null or datum=none).
	DatumNone
	// Datum3Param is a Helmert translation-only shift.
	Datum3Param
	// Datum7Param is a full Helmert shift (translation + rotation + scale).
	Datum7Param
	// DatumGridShift means one or more named shift grids apply.
	DatumGridShift
)

// GridRef names a grid the datum engine should consult, with whether it is
// mandatory (a point outside it is a hard error rather than an identity
// pass-through).
type GridRef struct {
	Name      string
	Mandatory bool
}

// Datum bundles a datum-shift strategy with the ellipsoid it's defined
// over. Params holds 3 or 7 Helmert parameters (already converted: the 7th
// is a unit-neighbourhood scale 1+M*1e-6, rotations are radians).
type Datum struct {
	Type    DatumType
	A, B    float64
	Es, Ep2 float64
	Params  []float64
	Grids   []GridRef
}

// datumEqualEs is the tolerance spec §3.3 gives for matching datums'
// eccentricities (loose enough that WGS84 and GRS80 compare equal).
const datumEqualEs = 5e-11

// Equal implements the datum-comparison rule of spec §3.3: same type, same
// semi-major axis, eccentricities within tolerance, and (for parametric
// datums) identical parameter arrays.
func (d Datum) Equal(o Datum) bool {
	if d.Type != o.Type {
		return false
	}
	if d.A != o.A || !floats.EqualWithinAbs(d.Es, o.Es, datumEqualEs) {
		return false
	}
	switch d.Type {
	case Datum3Param, Datum7Param:
		if len(d.Params) != len(o.Params) {
			return false
		}
		for i := range d.Params {
			if d.Params[i] != o.Params[i] {
				return false
			}
		}
		return true
	case DatumGridShift:
		if len(d.Grids) != len(o.Grids) {
			return false
		}
		for i := range d.Grids {
			if d.Grids[i] != o.Grids[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// namedDatum describes a datum known by name (+datum=xxx), resolving to a
// towgs84 array and an ellipsoid alias. Grounded on
// samlecuyer-projectron/defs.go's datums_list, cross-checked and extended
// against ctessum/geom/proj/DatumDef.go's richer datumDefs table (which adds
// ggrs87, rassadiran, s_jtsk, beduaram, gunung_segara, rnb72).
type namedDatum struct {
	towgs84  []float64
	ellps    string
	nadgrids []string
}

var namedDatumTable = map[string]namedDatum{
	"WGS84":         {towgs84: []float64{0, 0, 0}, ellps: "WGS84"},
	"GGRS87":        {towgs84: []float64{-199.87, 74.79, 246.62}, ellps: "GRS80"},
	"NAD83":         {towgs84: []float64{0, 0, 0}, ellps: "GRS80"},
	"NAD27":         {ellps: "clrk66", nadgrids: []string{"@conus", "@alaska", "@ntv2_0.gsb", "@ntv1_can.dat"}},
	"potsdam":       {towgs84: []float64{598.1, 73.7, 418.2, 0.202, 0.045, -2.455, 6.7}, ellps: "bessel"},
	"carthage":      {towgs84: []float64{-263.0, 6.0, 431.0}, ellps: "clrk80ign"},
	"hermannskogel": {towgs84: []float64{577.326, 90.129, 463.919, 5.137, 1.474, 5.297, 2.4232}, ellps: "bessel"},
	"ire65":         {towgs84: []float64{482.530, -130.596, 564.557, -1.042, -0.214, -0.631, 8.15}, ellps: "mod_airy"},
	"nzgd49":        {towgs84: []float64{59.47, -5.04, 187.44, 0.47, -0.1, 1.024, -4.5993}, ellps: "intl"},
	"OSGB36":        {towgs84: []float64{446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894}, ellps: "airy"},
	"rassadiran":    {towgs84: []float64{-133.63, -157.5, -158.62}, ellps: "intl"},
	"s_jtsk":        {towgs84: []float64{589, 76, 480}, ellps: "bessel"},
	"beduaram":      {towgs84: []float64{-106, -87, 188}, ellps: "clrk80"},
	"gunung_segara": {towgs84: []float64{-403, 684, 41}, ellps: "bessel"},
	"rnb72":         {towgs84: []float64{106.869, -52.2978, 103.724, -0.33657, 0.456955, -1.84218, 1}, ellps: "intl"},
}

// sec2rad converts arc-seconds to radians.
const sec2rad = 4.84813681109535993589914102357e-6

// parseTowgs84 parses a comma-separated towgs84 value into Helmert
// parameters, converting arc-second rotations to radians and the ppm scale
// to a unit-neighbourhood multiplier, per spec §4.1.
func parseTowgs84(s string) ([]float64, DatumType, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 7 {
		return nil, DatumNone, newParseError("towgs84: expected 3 or 7 comma-separated values, got %d", len(parts))
	}
	params := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, DatumNone, newParseError("towgs84: %v", err)
		}
		params[i] = v
	}
	if len(params) == 7 {
		params[3] *= sec2rad
		params[4] *= sec2rad
		params[5] *= sec2rad
		params[6] = params[6]/1e6 + 1
		return params, Datum7Param, nil
	}
	return params, Datum3Param, nil
}
