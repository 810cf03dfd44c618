// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"math"
	"strconv"
	"strings"
)

// ParseProjString parses a PROJ-string ("+proj=merc +lat_ts=0 +ellps=WGS84
// ...") into a ProjectionDef.
//
// samlecuyer-projectron's NewProjection split the whole string on "+"
// (strings.Split(str, "+")), which silently breaks on any negative
// parameter value such as "+x_0=-500000" (the "-" survives, but a
// comma-separated signed list inside a single token, or a value that itself
// contains a literal "+", does not survive unmangled). This parser instead
// splits on whitespace first and only strips a token's own leading "+",
// matching how PROJ's own command-line tools tokenize the string.
func ParseProjString(s string) (*ProjectionDef, error) {
	params := make(paramset)
	for _, tok := range strings.Fields(s) {
		tok = strings.TrimPrefix(tok, "+")
		if tok == "" {
			continue
		}
		key, val := keyVal(tok)
		params[key] = val
	}

	proj, ok := params.string("proj")
	if !ok {
		return nil, newMissingParameter("", "proj")
	}
	if _, ok := lookupImpl(proj); !ok {
		return nil, newUnknownProjection(proj)
	}

	def := NewProjectionDef()
	def.Proj = proj

	if err := applyDatum(def, params); err != nil {
		return nil, err
	}
	applyEllipsoid(def, params)

	def.Geoc, _ = params.bool("geoc")
	def.Over, _ = params.bool("over")

	if lwc, ok := params.degree("lon_wrap"); ok {
		def.LongWrapSet = true
		def.LongWrap = lwc
	}

	if axis, ok := params.string("axis"); ok {
		if len(axis) != 3 {
			return nil, newParseError("axis: expected a 3-letter axis order, got %q", axis)
		}
		def.Axis = axis
	}

	def.Lam0, _ = params.degree("lon_0")
	def.Phi0, _ = params.degree("lat_0")
	def.Phi1, _ = params.degree("lat_1")
	def.Phi2, _ = params.degree("lat_2")
	def.LatTS, _ = params.degree("lat_ts")
	def.Alpha, _ = params.degree("alpha")

	def.X0, _ = params.float("x_0")
	def.Y0, _ = params.float("y_0")

	if z, ok := params.float("zone"); ok {
		def.Zone = int(z)
		def.ZoneSet = true
	}
	def.SouthZone, _ = params.bool("south")

	if k0, ok := params.float("k_0"); ok {
		def.K0 = k0
	} else if k0, ok := params.float("k"); ok {
		def.K0 = k0
	}
	if def.K0 <= 0 {
		return nil, newParseError("k_0/k must be positive, got %v", def.K0)
	}

	applyUnits(def, params)

	if name, ok := params.string("pm"); ok {
		if off, ok := lookupPrimeMeridian(name); ok {
			def.FromGreenwich = off * d2r
		} else if v, err := strconv.ParseFloat(name, 64); err == nil {
			def.FromGreenwich = v * d2r
		} else {
			def.FromGreenwich = parseDegreeString(name) * d2r
		}
	}

	return def, nil
}

func applyDatum(def *ProjectionDef, params paramset) error {
	if name, ok := params.string("datum"); ok {
		if nd, ok := namedDatumTable[name]; ok {
			if _, has := params["ellps"]; !has && nd.ellps != "" {
				params["ellps"] = nd.ellps
			}
			if _, has := params["towgs84"]; !has && len(nd.towgs84) > 0 {
				strs := make([]string, len(nd.towgs84))
				for i, v := range nd.towgs84 {
					strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
				}
				params["towgs84"] = strings.Join(strs, ",")
			}
			if _, has := params["nadgrids"]; !has && len(nd.nadgrids) > 0 {
				params["nadgrids"] = strings.Join(nd.nadgrids, ",")
			}
		}
	}

	switch {
	case hasFlag(params, "nadgrids"):
		grids, _ := params.string("nadgrids")
		def.Datum.Type = DatumGridShift
		for _, g := range strings.Split(grids, ",") {
			g = strings.TrimSpace(g)
			if g == "" || g == "@null" {
				continue
			}
			mandatory := !strings.HasPrefix(g, "@")
			def.Datum.Grids = append(def.Datum.Grids, GridRef{Name: strings.TrimPrefix(g, "@"), Mandatory: mandatory})
		}
		if len(def.Datum.Grids) == 0 {
			def.Datum.Type = DatumNone
		}
	case hasFlag(params, "towgs84"):
		raw, _ := params.string("towgs84")
		p, kind, err := parseTowgs84(raw)
		if err != nil {
			return err
		}
		def.Datum.Params = p
		def.Datum.Type = kind
	}
	return nil
}

func hasFlag(params paramset, key string) bool {
	_, ok := params[key]
	return ok
}

func applyEllipsoid(def *ProjectionDef, params paramset) {
	a, b, rf := math.NaN(), math.NaN(), math.NaN()
	ellps, _ := params.string("ellps")

	if r, ok := params.float("R"); ok {
		a = r
		b = r
		rf = math.Inf(1)
	} else {
		if v, ok := params.float("a"); ok {
			a = v
		}
		if es, ok := params.float("es"); ok {
			rf = math.NaN()
			def.Ellipsoid = deriveEllipsoid(a, math.NaN(), math.NaN(), ellps)
			def.Ellipsoid.Es = es
			def.Ellipsoid.E = math.Sqrt(es)
			return
		} else if e, ok := params.float("e"); ok {
			def.Ellipsoid = deriveEllipsoid(a, math.NaN(), math.NaN(), ellps)
			def.Ellipsoid.Es = e * e
			def.Ellipsoid.E = e
			return
		} else if v, ok := params.float("rf"); ok {
			rf = v
		} else if v, ok := params.float("f"); ok {
			es := v * (2 - v)
			def.Ellipsoid = deriveEllipsoid(a, math.NaN(), math.NaN(), ellps)
			def.Ellipsoid.Es = es
			def.Ellipsoid.E = math.Sqrt(es)
			return
		} else if v, ok := params.float("b"); ok {
			b = v
		}
	}

	def.Ellipsoid = deriveEllipsoid(a, b, rf, ellps)

	if ra, ok := params.bool("R_A"); ra && ok {
		es := def.Ellipsoid.Es
		def.Ellipsoid.A *= 1 - es*(sixth+es*(ra4+es*ra6))
		def.Ellipsoid.Es = 0
		def.Ellipsoid.Sphere = true
	} else if rv, ok := params.bool("R_V"); rv && ok {
		es := def.Ellipsoid.Es
		def.Ellipsoid.A *= 1 - es*(sixth+es*(rv4+es*rv6))
		def.Ellipsoid.Es = 0
		def.Ellipsoid.Sphere = true
	} else if rg, ok := params.bool("R_g"); rg && ok {
		def.Ellipsoid.A = math.Sqrt(def.Ellipsoid.A * def.Ellipsoid.B)
		def.Ellipsoid.Es = 0
		def.Ellipsoid.Sphere = true
	} else if rh, ok := params.bool("R_h"); rh && ok {
		a, b := def.Ellipsoid.A, def.Ellipsoid.B
		def.Ellipsoid.A = 2 * a * b / (a + b)
		def.Ellipsoid.Es = 0
		def.Ellipsoid.Sphere = true
	}

	def.Datum.A = def.Ellipsoid.A
	def.Datum.B = def.Ellipsoid.B
	def.Datum.Es = def.Ellipsoid.Es
}

func applyUnits(def *ProjectionDef, params paramset) {
	if name, ok := params.string("units"); ok {
		if toMeter, ok := lookupUnit(name); ok {
			def.ToMeter = toMeter
			def.FromMeter = 1 / toMeter
		}
	} else if s, ok := params.float("to_meter"); ok {
		def.ToMeter = s
		def.FromMeter = 1 / s
	}

	if name, ok := params.string("vunits"); ok {
		if toMeter, ok := lookupUnit(name); ok {
			def.VToMeter = toMeter
			def.VFromMeter = 1 / toMeter
		}
	} else if s, ok := params.float("vto_meter"); ok {
		def.VToMeter = s
		def.VFromMeter = 1 / s
	} else {
		def.VToMeter = def.ToMeter
		def.VFromMeter = def.FromMeter
	}
}
