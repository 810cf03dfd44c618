// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// Ellipsoid holds the semantic attributes of a named reference ellipsoid.
// Only A and one of {B, Rf} are independent; the rest are derived by
// deriveEllipsoid. Invariant: 0 <= Es < 1, B <= A.
type Ellipsoid struct {
	A, B, Rf   float64
	Es, E, Ep2 float64
	Sphere     bool
}

// Series coefficients for the +R_A (authalic) and +R_V (volumetric) sphere
// reductions, matching PROJ's pj_init.c SIXTH/RA4/RA6/RV4/RV6 constants.
const (
	sixth = 0.1666666666666666667
	ra4   = 0.04722222222222222222
	ra6   = 0.02215608465608465608
	rv4   = 0.06944444444444444444
	rv6   = 0.04243827160493827160
)

type ellipsoidDef struct {
	a, b, rf float64
	name     string
}

// ellipsoidTable is the read-only named-ellipsoid table, cross-checked
// against samlecuyer-projectron/defs.go (ellipse_list) and
// ctessum/geom/proj/EllipsoidDef.go (ellipsoidDefs) — the latter carries
// clrk58, absent from the former, which is kept here.
var ellipsoidTable = map[string]ellipsoidDef{
	"MERIT":     {a: 6378137.0, rf: 298.257, name: "MERIT 1983"},
	"SGS85":     {a: 6378136.0, rf: 298.257, name: "Soviet Geodetic System 85"},
	"GRS80":     {a: 6378137.0, rf: 298.257222101, name: "GRS 1980(IUGG, 1980)"},
	"IAU76":     {a: 6378140.0, rf: 298.257, name: "IAU 1976"},
	"airy":      {a: 6377563.396, b: 6356256.910, name: "Airy 1830"},
	"APL4.9":    {a: 6378137.0, rf: 298.25, name: "Appl. Physics. 1965"},
	"NWL9D":     {a: 6378145.0, rf: 298.25, name: "Naval Weapons Lab., 1965"},
	"mod_airy":  {a: 6377340.189, b: 6356034.446, name: "Modified Airy"},
	"andrae":    {a: 6377104.43, rf: 300.0, name: "Andrae 1876 (Den., Iclnd.)"},
	"aust_SA":   {a: 6378160.0, rf: 298.25, name: "Australian Natl & S. Amer. 1969"},
	"GRS67":     {a: 6378160.0, rf: 298.2471674270, name: "GRS 67(IUGG 1967)"},
	"bessel":    {a: 6377397.155, rf: 299.1528128, name: "Bessel 1841"},
	"bess_nam":  {a: 6377483.865, rf: 299.1528128, name: "Bessel 1841 (Namibia)"},
	"clrk66":    {a: 6378206.4, b: 6356583.8, name: "Clarke 1866"},
	"clrk80":    {a: 6378249.145, rf: 293.4663, name: "Clarke 1880 mod."},
	"clrk58":    {a: 6378293.645208759, rf: 294.2606763692654, name: "Clarke 1858"},
	"clrk80ign": {a: 6378249.2, rf: 293.4660212936269, name: "Clarke 1880 (IGN)."},
	"CPM":       {a: 6375738.7, rf: 334.29, name: "Comm. des Poids et Mesures 1799"},
	"delmbr":    {a: 6376428.0, rf: 311.5, name: "Delambre 1810 (Belgium)"},
	"engelis":   {a: 6378136.05, rf: 298.2566, name: "Engelis 1985"},
	"evrst30":   {a: 6377276.345, rf: 300.8017, name: "Everest 1830"},
	"evrst48":   {a: 6377304.063, rf: 300.8017, name: "Everest 1948"},
	"evrst56":   {a: 6377301.243, rf: 300.8017, name: "Everest 1956"},
	"evrst69":   {a: 6377295.664, rf: 300.8017, name: "Everest 1969"},
	"evrstSS":   {a: 6377298.556, rf: 300.8017, name: "Everest (Sabah & Sarawak)"},
	"fschr60":   {a: 6378166.0, rf: 298.3, name: "Fischer (Mercury Datum) 1960"},
	"fschr60m":  {a: 6378155.0, rf: 298.3, name: "Modified Fischer 1960"},
	"fschr68":   {a: 6378150.0, rf: 298.3, name: "Fischer 1968"},
	"helmert":   {a: 6378200.0, rf: 298.3, name: "Helmert 1906"},
	"hough":     {a: 6378270.0, rf: 297.0, name: "Hough"},
	"intl":      {a: 6378388.0, rf: 297.0, name: "International 1909 (Hayford)"},
	"krass":     {a: 6378245.0, rf: 298.3, name: "Krassovsky, 1942"},
	"kaula":     {a: 6378163.0, rf: 298.24, name: "Kaula 1961"},
	"lerch":     {a: 6378139.0, rf: 298.257, name: "Lerch 1979"},
	"mprts":     {a: 6397300.0, rf: 191.0, name: "Maupertius 1738"},
	"new_intl":  {a: 6378157.5, b: 6356772.2, name: "New International 1967"},
	"plessis":   {a: 6376523.0, b: 6355863.0, name: "Plessis 1817 (France)"},
	"SEasia":    {a: 6378155.0, b: 6356773.3205, name: "Southeast Asia"},
	"walbeck":   {a: 6376896.0, b: 6355834.8467, name: "Walbeck"},
	"WGS60":     {a: 6378165.0, rf: 298.3, name: "WGS 60"},
	"WGS66":     {a: 6378145.0, rf: 298.25, name: "WGS 66"},
	"WGS72":     {a: 6378135.0, rf: 298.26, name: "WGS 72"},
	"WGS84":     {a: 6378137.0, rf: 298.257223563, name: "WGS 84"},
	"sphere":    {a: 6370997.0, b: 6370997.0, name: "Normal Sphere (r=6370997)"},
}

// lookupEllipsoid returns the named ellipsoid's (a, b, rf), with b or rf
// left zero when the table only supplies the other.
func lookupEllipsoid(name string) (ellipsoidDef, bool) {
	d, ok := ellipsoidTable[name]
	return d, ok
}

// deriveEllipsoid resolves (a, b, rf, es, e, ep2, sphere) from whichever
// subset of {a, b, rf, ellps} was supplied, per spec §4.4's four cases:
// explicit a&b, explicit a&rf, named ellps, or fall back to WGS84.
func deriveEllipsoid(a, b, rf float64, ellps string) Ellipsoid {
	haveA := !math.IsNaN(a)
	haveB := !math.IsNaN(b)
	haveRf := !math.IsNaN(rf)

	if !haveA && !haveB && !haveRf && ellps == "" {
		ellps = "WGS84"
	}
	if ellps != "" && (!haveA || (!haveB && !haveRf)) {
		if d, ok := lookupEllipsoid(ellps); ok {
			if !haveA {
				a = d.a
				haveA = true
			}
			if !haveB && d.b != 0 {
				b = d.b
				haveB = true
			}
			if !haveRf && d.rf != 0 {
				rf = d.rf
				haveRf = true
			}
		}
	}
	if !haveA {
		a = ellipsoidTable["WGS84"].a
	}

	switch {
	case haveB:
		if a == b {
			rf = math.Inf(1)
		} else {
			rf = a / (a - b)
		}
	case haveRf:
		b = a * (1 - 1/rf)
	default:
		// Neither b nor rf resolved; default to sphere.
		b = a
		rf = math.Inf(1)
	}

	es := 1 - (b/a)*(b/a)
	sphere := a == b
	if sphere {
		es = 0
	}
	e := math.Sqrt(es)
	var ep2 float64
	if !sphere {
		ep2 = (a*a - b*b) / (b * b)
	}
	return Ellipsoid{A: a, B: b, Rf: rf, Es: es, E: e, Ep2: ep2, Sphere: sphere}
}

// authalicRadius computes the radius of the sphere with the same surface
// area as the ellipsoid, for the +R_A flag (spec §4.4).
func authalicRadius(a, es float64) float64 {
	if es == 0 {
		return a
	}
	e := math.Sqrt(es)
	return a * math.Sqrt(0.5*(1-((1-es)/(2*e))*math.Log((1-e)/(1+e))))
}
