// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"math"
	"strings"
)

// wkt1ProjectionNames maps WKT1's PROJECTION["..."] names to this catalogue's
// +proj tags. WKT2's METHOD["..."] names reuse the same table, normalized
// the same way (lower-cased, spaces turned to underscores) since OGC's WKT2
// method names and ESRI's WKT1 projection names differ only in spacing and
// capitalization for every method this catalogue implements.
var wkt1ProjectionNames = map[string]string{
	"mercator_1sp":                       "merc",
	"mercator_2sp":                       "merc",
	"mercator_auxiliary_sphere":          "merc",
	"popular_visualisation_pseudo_mercator": "merc",
	"transverse_mercator":                "tmerc",
	"transverse_mercator_south_orientated": "tmerc",
	"universal_transverse_mercator":      "utm",
	"lambert_conformal_conic_1sp":        "lcc",
	"lambert_conformal_conic_2sp":        "lcc",
	"lambert_conformal_conic_2sp_belgium": "lcc",
	"albers_conic_equal_area":            "aea",
	"albers_equal_area":                  "aea",
	"cassini_soldner":                    "cass",
	"polar_stereographic":                "stere",
	"stereographic":                      "stere",
	"oblique_stereographic":              "stere",
	"orthographic":                       "ortho",
	"gnomonic":                           "gnom",
	"azimuthal_equidistant":              "aeqd",
	"modified_azimuthal_equidistant":     "aeqd",
	"sinusoidal":                         "sinu",
	"equirectangular":                    "eqc",
	"equidistant_cylindrical":            "eqc",
	"plate_carree":                       "eqc",
	"cylindrical_equal_area":             "cea",
	"lambert_cylindrical_equal_area":     "cea",
	"robinson":                           "robin",
}

// wktParameterNames maps WKT1/WKT2 PARAMETER names (lower-cased, spaces to
// underscores) to the ProjectionDef field they set.
var wktParameterNames = map[string]string{
	"latitude_of_origin":             "lat_0",
	"latitude_of_natural_origin":     "lat_0",
	"latitude_of_center":             "lat_0",
	"latitude_of_false_origin":       "lat_0",
	"central_parallel":               "lat_0",
	"longitude_of_origin":            "lon_0",
	"longitude_of_center":            "lon_0",
	"longitude_of_natural_origin":    "lon_0",
	"central_meridian":               "lon_0",
	"longitude_of_false_origin":      "lon_0",
	"standard_parallel_1":            "lat_1",
	"latitude_of_1st_standard_parallel": "lat_1",
	"standard_parallel_2":            "lat_2",
	"latitude_of_2nd_standard_parallel": "lat_2",
	"latitude_of_true_scale":         "lat_ts",
	"scale_factor":                   "k",
	"scale_factor_at_natural_origin": "k",
	"false_easting":                  "x_0",
	"easting_at_false_origin":        "x_0",
	"false_northing":                 "y_0",
	"northing_at_false_origin":       "y_0",
	"azimuth":                        "alpha",
}

func normalizeWKTName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// lowerWKT converts a parsed WKT tree (WKT1 GEOGCS/PROJCS or WKT2
// GEOGCRS/PROJCRS/BOUNDCRS) into a ProjectionDef for ParseWKT. PROJJSON is
// lowered separately, through projjson.go's own typed structs.
func lowerWKT(root *wktNode) (*ProjectionDef, error) {
	def := NewProjectionDef()

	switch root.keyword {
	case "PROJCS", "PROJCRS", "PROJECTEDCRS":
		if name, ok := root.leafString(0); ok {
			def.Title = name
		}
		geogcs := root.firstChild("GEOGCS", "GEOGCRS", "BASEGEOGCRS")
		if geogcs == nil {
			return nil, newParseError("wkt: %s has no base geographic CRS", root.keyword)
		}
		if err := lowerWKTGeogCS(geogcs, def); err != nil {
			return nil, err
		}
		proj := root.firstChild("PROJECTION")
		method := root.firstChild("CONVERSION", "DEFININGCONVERSION")
		var methodName string
		if proj != nil {
			methodName, _ = proj.leafString(0)
		} else if method != nil {
			if m := method.firstChild("METHOD"); m != nil {
				methodName, _ = m.leafString(0)
			}
		}
		tag, ok := wkt1ProjectionNames[normalizeWKTName(methodName)]
		if !ok {
			return nil, newUnknownProjection(methodName)
		}
		def.Proj = tag

		params := root.childrenNamed("PARAMETER")
		if method != nil {
			params = append(params, method.childrenNamed("PARAMETER")...)
		}
		for _, p := range params {
			name, _ := p.leafString(0)
			val, _ := p.leafFloat(1)
			applyWKTParameter(def, normalizeWKTName(name), val)
		}

		if unit := root.firstChild("UNIT", "LENGTHUNIT"); unit != nil {
			applyWKTLinearUnit(def, unit)
		}

	case "GEOGCS", "GEOGCRS", "GEOGRAPHICCRS":
		def.Proj = "longlat"
		if name, ok := root.leafString(0); ok {
			def.Title = name
		}
		if err := lowerWKTGeogCS(root, def); err != nil {
			return nil, err
		}

	case "BOUNDCRS":
		base := root.firstChild("SOURCECRS")
		if base == nil || len(base.children) == 0 {
			return nil, newParseError("wkt: BOUNDCRS missing SOURCECRS")
		}
		inner, err := lowerWKT(base.children[0])
		if err != nil {
			return nil, err
		}
		def = inner
		if abr := root.firstChild("ABRIDGEDTRANSFORMATION"); abr != nil {
			if params := abr.firstChild("PARAMETERFILE"); params != nil {
				// Grid-based bound CRS: not modeled further here.
				_ = params
			} else if vals := collectNumericLeaves(abr); len(vals) == 3 || len(vals) == 7 {
				def.Datum.Params = vals
				if len(vals) == 3 {
					def.Datum.Type = Datum3Param
				} else {
					def.Datum.Type = Datum7Param
				}
			}
		}

	default:
		return nil, newParseError("wkt: unsupported top-level element %q", root.keyword)
	}

	return def, nil
}

func collectNumericLeaves(n *wktNode) []float64 {
	var out []float64
	for _, p := range n.childrenNamed("PARAMETER") {
		if v, ok := p.leafFloat(1); ok {
			out = append(out, v)
		}
	}
	return out
}

func lowerWKTGeogCS(n *wktNode, def *ProjectionDef) error {
	datum := n.firstChild("DATUM", "GEODETICDATUM", "TRF")
	if datum == nil {
		return newParseError("wkt: geographic CRS missing DATUM")
	}
	if name, ok := datum.leafString(0); ok {
		lowerWKTDatumName(name, def)
	}
	spheroid := datum.firstChild("SPHEROID", "ELLIPSOID")
	if spheroid == nil {
		return newParseError("wkt: DATUM missing SPHEROID")
	}
	ellpsName, _ := spheroid.leafString(0)
	a, _ := spheroid.leafFloat(1)
	rf, _ := spheroid.leafFloat(2)
	def.Ellipsoid = deriveEllipsoid(a, math.NaN(), rf, normalizeEllipsoidName(ellpsName))
	def.Datum.A = def.Ellipsoid.A
	def.Datum.B = def.Ellipsoid.B
	def.Datum.Es = def.Ellipsoid.Es

	if towgs := datum.firstChild("TOWGS84"); towgs != nil {
		var parts []string
		for _, lf := range towgs.leaves {
			parts = append(parts, lf.text)
		}
		p, kind, err := parseTowgs84(strings.Join(parts, ","))
		if err == nil {
			def.Datum.Params = p
			def.Datum.Type = kind
		}
	}

	if pm := n.firstChild("PRIMEM"); pm != nil {
		if v, ok := pm.leafFloat(1); ok {
			def.FromGreenwich = v * d2r
		}
	}
	return nil
}

// normalizeEllipsoidName loosely maps a handful of common WKT spheroid
// names to this catalogue's ellipsoidTable keys, mirroring
// ctessum/geom/proj/wkt.go's parseWKTSpheroid string massaging.
func normalizeEllipsoidName(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "wgs 84") || strings.Contains(n, "wgs84"):
		return "WGS84"
	case strings.Contains(n, "grs 1980") || strings.Contains(n, "grs80"):
		return "GRS80"
	case strings.Contains(n, "clarke 1866"):
		return "clrk66"
	case strings.Contains(n, "clarke 1880"):
		return "clrk80"
	case strings.Contains(n, "bessel"):
		return "bessel"
	case strings.Contains(n, "airy"):
		return "airy"
	case strings.Contains(n, "international"):
		return "intl"
	default:
		return ""
	}
}

func lowerWKTDatumName(name string, def *ProjectionDef) {
	n := strings.ToLower(name)
	n = strings.TrimPrefix(n, "d_")
	if strings.Contains(n, "wgs_1984") || strings.Contains(n, "wgs 1984") || strings.Contains(n, "wgs84") {
		def.Datum.Type = DatumWGS84
	}
}

func applyWKTParameter(def *ProjectionDef, name string, val float64) {
	field, ok := wktParameterNames[name]
	if !ok {
		return
	}
	switch field {
	case "lat_0":
		def.Phi0 = val * d2r
	case "lon_0":
		def.Lam0 = val * d2r
	case "lat_1":
		def.Phi1 = val * d2r
	case "lat_2":
		def.Phi2 = val * d2r
	case "lat_ts":
		def.LatTS = val * d2r
	case "k":
		def.K0 = val
	case "x_0":
		def.X0 = val
	case "y_0":
		def.Y0 = val
	case "alpha":
		def.Alpha = val * d2r
	}
}

func applyWKTLinearUnit(def *ProjectionDef, unit *wktNode) {
	if toMeter, ok := unit.leafFloat(1); ok {
		def.ToMeter = toMeter
		def.FromMeter = 1 / toMeter
	}
}

// ParseWKT parses a WKT1 or WKT2 (2015/2019) coordinate system string into
// a ProjectionDef. Version is detected implicitly: WKT2 keywords
// (GEOGCRS/PROJCRS/BOUNDCRS) and WKT1 keywords (GEOGCS/PROJCS) share a
// single lowering path since their shapes differ only in keyword spelling
// and nesting depth, both already reflected in the childrenNamed alias
// lists above.
func ParseWKT(s string) (*ProjectionDef, error) {
	root, err := parseWKT(s)
	if err != nil {
		return nil, err
	}
	return lowerWKT(root)
}
