// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// ProjectionDef is the canonical, surface-syntax-independent description of
// a coordinate reference system. Every parser (PROJ-string, WKT1, WKT2,
// PROJJSON) builds one of these; every serializer renders one back out.
// Generalized from samlecuyer-projectron's pj struct (projection.go),
// broadened per spec §3.4 to carry the full ellipsoid/datum/unit/axis model
// instead of the teacher's flat float fields.
type ProjectionDef struct {
	Proj string // catalogue key: "merc", "tmerc", "lcc", ...

	Ellipsoid Ellipsoid
	Datum     Datum

	Lam0, Phi0       float64 // central meridian / latitude, radians
	Phi1, Phi2       float64 // standard parallels, radians
	LatTS            float64 // latitude of true scale, radians
	K0               float64 // scale factor
	X0, Y0           float64 // false easting/northing, meters
	Alpha            float64 // rectified grid angle, radians (oblique stereo etc.)

	Axis           string // 3-letter axis order, e.g. "enu"
	ToMeter        float64
	FromMeter      float64
	VToMeter       float64
	VFromMeter     float64
	FromGreenwich  float64 // prime meridian offset, radians

	Geoc         bool // +geoc: use geocentric latitude
	Over         bool // +over: suppress longitude wrap
	LongWrapSet  bool
	LongWrap     float64

	Title string // optional human-readable name, carried through from WKT/PROJJSON
	Code  string // authority:code this def was resolved from, if any

	Zone       int  // +zone, consulted by utmInit when lon_0 wasn't given explicitly
	ZoneSet    bool
	SouthZone  bool // +south, forces the UTM southern-hemisphere false northing
}

// NewProjectionDef returns a ProjectionDef with the identity defaults spec
// §4.1 assumes when a parser doesn't see an explicit value: WGS84 ellipsoid
// and datum, unit scale 1 (meters), "enu" axis order, k0=1.
func NewProjectionDef() *ProjectionDef {
	wgs84 := deriveEllipsoid(math.NaN(), math.NaN(), math.NaN(), "WGS84")
	return &ProjectionDef{
		Ellipsoid:  wgs84,
		Datum:      Datum{Type: DatumWGS84, A: wgs84.A, B: wgs84.B, Es: wgs84.Es},
		Axis:       "enu",
		ToMeter:    1,
		FromMeter:  1,
		VToMeter:   1,
		VFromMeter: 1,
		K0:         1,
	}
}

// IsLngLat reports whether this definition is a geographic (lon/lat)
// coordinate system rather than a projected one.
func (d *ProjectionDef) IsLngLat() bool {
	switch d.Proj {
	case "longlat", "latlong", "latlon", "lonlat", "":
		return true
	default:
		return false
	}
}
