// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"math"
	"strconv"
	"strings"
)

// ToProjString renders a ProjectionDef back into +proj= surface syntax,
// the inverse of ParseProjString. Parameters are emitted in a fixed order
// so two equivalent definitions always produce byte-identical strings,
// per spec §4.11's determinism requirement.
func ToProjString(def *ProjectionDef) string {
	var b strings.Builder
	emit := func(k, v string) {
		b.WriteByte(' ')
		b.WriteByte('+')
		b.WriteString(k)
		if v != "" {
			b.WriteByte('=')
			b.WriteString(v)
		}
	}
	emitF := func(k string, v float64) {
		emit(k, strconv.FormatFloat(v, 'g', 15, 64))
	}

	b.WriteString("+proj=")
	b.WriteString(def.Proj)

	if def.ZoneSet {
		emitF("zone", float64(def.Zone))
		if def.SouthZone {
			emit("south", "")
		}
	}
	if def.Lam0 != 0 {
		emitF("lon_0", def.Lam0/d2r)
	}
	if def.Phi0 != 0 {
		emitF("lat_0", def.Phi0/d2r)
	}
	if def.Phi1 != 0 {
		emitF("lat_1", def.Phi1/d2r)
	}
	if def.Phi2 != 0 {
		emitF("lat_2", def.Phi2/d2r)
	}
	if def.LatTS != 0 {
		emitF("lat_ts", def.LatTS/d2r)
	}
	if def.Alpha != 0 {
		emitF("alpha", def.Alpha/d2r)
	}
	if def.K0 != 1 && def.K0 != 0 {
		emitF("k", def.K0)
	}
	if def.X0 != 0 {
		emitF("x_0", def.X0)
	}
	if def.Y0 != 0 {
		emitF("y_0", def.Y0)
	}

	emitEllipsoid(emit, emitF, def.Ellipsoid)
	emitDatum(emit, def.Datum)

	if def.ToMeter != 1 {
		emitF("to_meter", def.ToMeter)
	}
	if def.VToMeter != 1 {
		emitF("vto_meter", def.VToMeter)
	}
	if def.Axis != "" && def.Axis != "enu" {
		emit("axis", def.Axis)
	}
	if def.Geoc {
		emit("geoc", "")
	}
	if def.Over {
		emit("over", "")
	}
	if def.FromGreenwich != 0 {
		emitF("pm", def.FromGreenwich/d2r)
	}
	emit("no_defs", "")

	return strings.TrimSpace(b.String())
}

func emitEllipsoid(emit func(k, v string), emitF func(k string, v float64), e Ellipsoid) {
	for name, d := range ellipsoidTable {
		if floatsEqual(d.a, e.A) && (d.b != 0 && floatsEqual(d.b, e.B) || d.rf != 0 && floatsEqual(d.rf, e.Rf)) {
			emit("ellps", name)
			return
		}
	}
	emitF("a", e.A)
	if !math.IsInf(e.Rf, 1) {
		emitF("rf", e.Rf)
	} else {
		emitF("b", e.B)
	}
}

func floatsEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Abs(a))
}

func emitDatum(emit func(k, v string), d Datum) {
	for name, nd := range namedDatumTable {
		if ellipsMatchesDatum(nd, d) {
			emit("datum", name)
			return
		}
	}
	switch d.Type {
	case Datum3Param, Datum7Param:
		parts := make([]string, len(d.Params))
		for i, p := range d.Params {
			parts[i] = strconv.FormatFloat(p, 'g', -1, 64)
		}
		emit("towgs84", strings.Join(parts, ","))
	case DatumGridShift:
		names := make([]string, len(d.Grids))
		for i, g := range d.Grids {
			if g.Mandatory {
				names[i] = g.Name
			} else {
				names[i] = "@" + g.Name
			}
		}
		emit("nadgrids", strings.Join(names, ","))
	}
}

func ellipsMatchesDatum(nd namedDatum, d Datum) bool {
	if _, ok := lookupEllipsoid(nd.ellps); !ok || len(nd.towgs84) == 0 {
		return false
	}
	ell := deriveEllipsoid(math.NaN(), math.NaN(), math.NaN(), nd.ellps)
	if ell.A != d.A || ell.Es != d.Es || len(nd.towgs84) != len(d.Params) {
		return false
	}
	for i, v := range nd.towgs84 {
		switch {
		case i >= 3 && i < 6:
			v *= sec2rad
		case i == 6:
			v = v/1e6 + 1
		}
		if !floatsEqual(v, d.Params[i]) {
			return false
		}
	}
	return true
}
