// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"fmt"
	"strconv"
	"strings"
)

// wkt1ProjectionNamesReverse is the inverse of wkt1ProjectionNames, picking
// one canonical WKT1 PROJECTION name per +proj tag.
var wkt1ProjectionNamesReverse = map[string]string{
	"merc":  "Mercator_1SP",
	"tmerc": "Transverse_Mercator",
	"utm":   "Transverse_Mercator",
	"lcc":   "Lambert_Conformal_Conic_2SP",
	"aea":   "Albers_Conic_Equal_Area",
	"cass":  "Cassini_Soldner",
	"stere": "Oblique_Stereographic",
	"ortho": "Orthographic",
	"gnom":  "Gnomonic",
	"aeqd":  "Azimuthal_Equidistant",
	"sinu":  "Sinusoidal",
	"eqc":   "Equirectangular",
	"cea":   "Cylindrical_Equal_Area",
	"robin": "Robinson",
}

// ToWKT1 renders a ProjectionDef as a WKT1 GEOGCS/PROJCS string, the
// inverse of ParseWKT for the WKT1 surface.
func ToWKT1(def *ProjectionDef) string {
	var b strings.Builder
	geogcsName := "unknown"
	datumName := "unknown"
	writeGeogCS(&b, geogcsName, datumName, def)
	if def.IsLngLat() {
		return b.String()
	}

	var proj strings.Builder
	title := def.Title
	if title == "" {
		title = "unnamed"
	}
	fmt.Fprintf(&proj, `PROJCS["%s",%s,PROJECTION["%s"]`, quoteWKT(title), b.String(), wkt1ProjectionNamesReverse[def.Proj])
	writeWKT1Param(&proj, "latitude_of_origin", def.Phi0)
	writeWKT1Param(&proj, "central_meridian", def.Lam0)
	writeWKT1Param(&proj, "standard_parallel_1", def.Phi1)
	writeWKT1Param(&proj, "standard_parallel_2", def.Phi2)
	writeWKT1Param(&proj, "scale_factor", def.K0)
	writeWKT1Param(&proj, "false_easting", def.X0)
	writeWKT1Param(&proj, "false_northing", def.Y0)
	proj.WriteString(`,UNIT["metre",1]]`)
	return proj.String()
}

func writeGeogCS(b *strings.Builder, name, datumName string, def *ProjectionDef) {
	rf := def.Ellipsoid.Rf
	rfStr := formatWKTFloat(rf)
	fmt.Fprintf(b, `GEOGCS["%s",DATUM["%s",SPHEROID["%s",%s,%s]`,
		quoteWKT(name), quoteWKT(datumName), ellipsoidWKTName(def.Ellipsoid), formatWKTFloat(def.Ellipsoid.A), rfStr)
	if len(def.Datum.Params) > 0 {
		parts := make([]string, len(def.Datum.Params))
		for i, p := range def.Datum.Params {
			parts[i] = formatWKTFloat(p)
		}
		fmt.Fprintf(b, `,TOWGS84[%s]`, strings.Join(parts, ","))
	}
	b.WriteString(`],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]]`)
}

func ellipsoidWKTName(e Ellipsoid) string {
	for name, d := range ellipsoidTable {
		if floatsEqual(d.a, e.A) && (d.b != 0 && floatsEqual(d.b, e.B) || d.rf != 0 && floatsEqual(d.rf, e.Rf)) {
			return name
		}
	}
	return "unknown"
}

func writeWKT1Param(b *strings.Builder, name string, valRadOrScale float64) {
	if valRadOrScale == 0 {
		return
	}
	v := valRadOrScale
	switch name {
	case "latitude_of_origin", "central_meridian", "standard_parallel_1", "standard_parallel_2":
		v /= d2r
	}
	fmt.Fprintf(b, `,PARAMETER["%s",%s]`, name, formatWKTFloat(v))
}

func formatWKTFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func quoteWKT(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}
