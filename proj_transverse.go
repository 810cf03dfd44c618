// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

func init() {
	registerProjection([]string{"tmerc"}, catalogEntry{init: tmercInit, fwd: tmercFwd, inv: tmercInv})
	registerProjection([]string{"etmerc"}, catalogEntry{init: etmercInit, fwd: etmercFwd, inv: etmercInv})
	registerProjection([]string{"utm"}, catalogEntry{init: utmInit, fwd: etmercFwd, inv: etmercInv})
}

// tmercState precomputes the meridional-arc coefficients and a handful of
// series constants for the 6th-order ellipsoidal Transverse Mercator,
// following Snyder's "Map Projections — A Working Manual" §8; grounded
// structurally on tzneal/coordconv/transversemercator.go's coefficient
// layout, generalized to share mathkernel.go's MeridianCoefficients instead
// of a private duplicate.
type tmercState struct {
	coeffs MeridianCoefficients
	esp    float64 // e'^2, the second eccentricity squared
	ml0    float64 // M(phi0)
	sphere bool
}

func tmercInit(def *ProjectionDef) (interface{}, error) {
	s := &tmercState{sphere: def.Ellipsoid.Sphere}
	if !s.sphere {
		s.coeffs = DeriveMeridianCoefficients(def.Ellipsoid.Es)
		s.esp = def.Ellipsoid.Es / (1 - def.Ellipsoid.Es)
		s.ml0 = Mlfn(s.coeffs, def.Phi0)
	}
	return s, nil
}

// utmInit resolves the UTM shortcut: zone number (1-60) selects the central
// meridian unless lon_0 was given explicitly, and UTM always uses k0=0.9996
// with a 500000m false easting (plus a 10,000,000m false northing south of
// the equator). UTM is wired to the extended TM series (etmercInit), not the
// classic Snyder series: a 6-term Gauss-Krüger short series drifts by
// centimetres near the edge of a UTM zone, well short of the series-to-order-6
// Poder/Engsager formulation's millimetre accuracy over the whole zone width.
func utmInit(def *ProjectionDef) (interface{}, error) {
	if def.ZoneSet && def.Lam0 == 0 {
		def.Lam0 = (6*float64(def.Zone) - 183) * d2r
	}
	def.K0 = 0.9996
	def.X0 = 500000
	if def.SouthZone || def.Phi0 < 0 {
		def.Y0 = 10000000
	} else {
		def.Y0 = 0
	}
	return etmercInit(def)
}

func tmercFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*tmercState)
	if s.sphere {
		b := math.Cos(phi) * math.Sin(lam)
		if math.Abs(math.Abs(b)-1) < epsln {
			return math.NaN(), math.NaN(), newParseError("tmerc: point projects to infinity")
		}
		x := 0.5 * def.K0 * math.Log((1+b)/(1-b))
		ts := math.Atan2(math.Tan(phi), math.Cos(lam))
		if ts-def.Phi0 < -halfPi {
			ts -= math.Pi
		} else if ts-def.Phi0 > halfPi {
			ts += math.Pi
		}
		y := def.K0 * (ts - def.Phi0)
		return x, y, nil
	}
	sinphi, cosphi := math.Sin(phi), math.Cos(phi)
	t := 0.0
	if math.Abs(cosphi) > epsln {
		t = sinphi / cosphi
		t *= t
	}
	al := cosphi * lam
	als := al * al
	c := s.esp * cosphi * cosphi
	n := def.Ellipsoid.A / math.Sqrt(1-def.Ellipsoid.Es*sinphi*sinphi)

	x := n * al * (1 + als/6*(1-t+c+
		als/20*(5-18*t+t*t+72*c-58*s.esp))) / def.Ellipsoid.A

	y := Mlfn(s.coeffs, phi) - s.ml0 +
		n*math.Tan(phi)*(als*(0.5+als/24*(5-t+9*c+4*c*c+
			als/30*(61-58*t+t*t+600*c-330*s.esp))))/def.Ellipsoid.A

	return def.K0 * x, def.K0 * y, nil
}

func tmercInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*tmercState)
	if s.sphere {
		f := math.Exp(x / def.K0)
		g := 0.5 * (f - 1/f)
		tmp := def.Phi0 + y/def.K0
		h := math.Cos(tmp)
		con := math.Sqrt((1 - h*h) / (1 + g*g))
		phi := Asinz(con)
		if tmp < 0 {
			phi = -phi
		}
		var lam float64
		if g == 0 && h == 0 {
			lam = 0
		} else {
			lam = math.Atan2(g, h)
		}
		return lam, phi, nil
	}
	x *= def.Ellipsoid.A
	y *= def.Ellipsoid.A
	ml := s.ml0 + y/(def.Ellipsoid.A*def.K0)
	phi, err := InvMlfn(s.coeffs, ml)
	if err != nil {
		return 0, 0, err
	}
	if math.Abs(phi) >= halfPi {
		return 0, math.Copysign(halfPi, phi), nil
	}
	sinphi, cosphi := math.Sin(phi), math.Cos(phi)
	tanphi := sinphi / cosphi
	c := s.esp * cosphi * cosphi
	cs := c * c
	t := tanphi * tanphi
	ts := t * t
	n := def.Ellipsoid.A / math.Sqrt(1-def.Ellipsoid.Es*sinphi*sinphi)
	r := n * (1 - def.Ellipsoid.Es) / (1 - def.Ellipsoid.Es*sinphi*sinphi)
	d := x / (n * def.K0)
	ds := d * d

	lat := phi - (n*tanphi/r)*ds*(0.5-ds/24*(5+3*t+10*c-4*cs-9*s.esp-
		ds/30*(61+90*t+298*c+45*ts-252*s.esp-3*cs)))
	lam := (d - ds*d/6*(1+2*t+c) +
		ds*ds*d/120*(5-2*c+28*t-3*cs+8*s.esp+24*ts)) / cosphi

	return lam, lat, nil
}

// etmercState holds the Krüger n-series coefficients for the extended
// ("exact") Transverse Mercator, grounded on the Poder/Engsager algorithm in
// tzneal/coordconv/transversemercator.go's generateCoefficients,
// latLonToNorthingEasting and northingEastingToLatLon, generalized from that
// file's per-ellipsoid coefficient table to the closed-form polynomials in
// Helmert's third flattening n its default branch falls back to, since
// projectron derives ellipsoid parameters from +a/+rf rather than named
// codes. aCoeff/bCoeff carry six harmonics (n^2 through n^12), the order
// Poder and Engsager found sufficient for sub-millimetre UTM accuracy
// worldwide, against the classic 6-term Snyder series tmercFwd/tmercInv use.
type etmercState struct {
	aCoeff, bCoeff [6]float64
	r4oa           float64
	e              float64 // first eccentricity
	yOrigin        float64 // raw series y at (lat_0, lon_0), so y=0 at the origin
}

func etmercInit(def *ProjectionDef) (interface{}, error) {
	f := 0.0
	if def.Ellipsoid.A != 0 {
		f = 1 - def.Ellipsoid.B/def.Ellipsoid.A
	}
	n := f / (2 - f)
	s := &etmercState{e: def.Ellipsoid.E}
	s.aCoeff, s.bCoeff, s.r4oa = etmercCoefficients(n)
	_, s.yOrigin = etmercForwardSeries(s.aCoeff, s.e, def.Phi0, 0)
	return s, nil
}

func etmercFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*etmercState)
	xStar, yStar := etmercForwardSeries(s.aCoeff, s.e, phi, lam)
	scale := def.K0 * s.r4oa
	return scale * xStar, scale * (yStar - s.yOrigin), nil
}

func etmercInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*etmercState)
	scale := def.K0 * s.r4oa
	if scale == 0 {
		return 0, 0, newParseError("etmerc: degenerate scale")
	}
	xStar := x / scale
	yStar := y/scale + s.yOrigin
	lam, phi := etmercInverseSeries(s.bCoeff, s.e, xStar, yStar)
	return lam, phi, nil
}

// etmercForwardSeries maps a geodetic point to the Gauss-Krüger plane through
// the conformal latitude's complex substitution: longitude and the conformal
// latitude's hyperbolic arctangent become a complex "isometric" coordinate
// U+iV, which the aCoeff harmonics expand into the plane's x*+iy* (still
// normalized by R4/a and k0; etmercFwd applies those afterwards).
func etmercForwardSeries(aCoeff [6]float64, e, phi, lam float64) (xStar, yStar float64) {
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	sinLam, cosLam := math.Sin(lam), math.Cos(lam)

	p := math.Exp(e * math.Atanh(e*sinPhi))
	part1 := (1 + sinPhi) / p
	part2 := (1 - sinPhi) * p
	denom := part1 + part2
	cosChi := 2 * cosPhi / denom
	sinChi := (part1 - part2) / denom

	u := math.Atanh(cosChi * sinLam)
	v := math.Atan2(sinChi, cosChi*cosLam)

	ck, sk := hyperbolicSeries6(2 * u)
	cv, sv := trigSeries6(2 * v)
	for k := 0; k < 6; k++ {
		xStar += aCoeff[k] * sk[k] * cv[k]
		yStar += aCoeff[k] * ck[k] * sv[k]
	}
	xStar += u
	yStar += v
	return xStar, yStar
}

// etmercInverseSeries is the symmetric inverse of etmercForwardSeries, using
// bCoeff in place of aCoeff and recovering the geodetic latitude from the
// conformal latitude by the fixed-point iteration geodeticLatFromChi runs.
func etmercInverseSeries(bCoeff [6]float64, e, xStar, yStar float64) (lam, phi float64) {
	ck, sk := hyperbolicSeries6(2 * xStar)
	cv, sv := trigSeries6(2 * yStar)

	var u, v float64
	for k := 0; k < 6; k++ {
		u += bCoeff[k] * sk[k] * cv[k]
		v += bCoeff[k] * ck[k] * sv[k]
	}
	u += xStar
	v += yStar

	coshU, sinhU := math.Cosh(u), math.Sinh(u)
	cosV, sinV := math.Cos(v), math.Sin(v)
	if cosV == 0 && coshU == 0 {
		lam = 0
	} else {
		lam = math.Atan2(sinhU, cosV)
	}
	sinChi := sinV / coshU
	phi = geodeticLatFromChi(sinChi, e)
	return lam, phi
}

// geodeticLatFromChi inverts the conformal-latitude substitution by fixed
// point iteration on sin(chi), the same approach PROJ's pj_phi2-adjacent
// etmerc code and tzneal/coordconv's geodeticLat use; it converges in a
// handful of steps away from the poles.
func geodeticLatFromChi(sinChi, e float64) float64 {
	s, sOld := sinChi, math.Inf(1)
	onePlus, oneMinus := 1+sinChi, 1-sinChi
	for i := 0; i < 30; i++ {
		p := math.Exp(e * math.Atanh(e*s))
		pSq := p * p
		s = (onePlus*pSq - oneMinus) / (onePlus*pSq + oneMinus)
		if math.Abs(s-sOld) < 1e-12 {
			break
		}
		sOld = s
	}
	return math.Asin(s)
}

// hyperbolicSeries6 returns cosh(2kX) and sinh(2kX) for k=1..6 via the
// double-angle recurrences tzneal/coordconv's computeHyperbolicSeries uses,
// avoiding six independent calls to math.Cosh/math.Sinh.
func hyperbolicSeries6(twoX float64) (c, s [6]float64) {
	c[0] = math.Cosh(twoX)
	s[0] = math.Sinh(twoX)
	c[1] = 2*c[0]*c[0] - 1
	s[1] = 2 * c[0] * s[0]
	c[2] = c[0]*c[1] + s[0]*s[1]
	s[2] = c[1]*s[0] + c[0]*s[1]
	c[3] = 2*c[1]*c[1] - 1
	s[3] = 2 * c[1] * s[1]
	c[4] = c[0]*c[3] + s[0]*s[3]
	s[4] = c[3]*s[0] + c[0]*s[3]
	c[5] = 2*c[2]*c[2] - 1
	s[5] = 2 * c[2] * s[2]
	return
}

// trigSeries6 is hyperbolicSeries6's circular counterpart: cos(2kY) and
// sin(2kY) for k=1..6.
func trigSeries6(twoY float64) (c, s [6]float64) {
	c[0] = math.Cos(twoY)
	s[0] = math.Sin(twoY)
	c[1] = 2*c[0]*c[0] - 1
	s[1] = 2 * c[0] * s[0]
	c[2] = c[1]*c[0] - s[1]*s[0]
	s[2] = c[1]*s[0] + c[0]*s[1]
	c[3] = 2*c[1]*c[1] - 1
	s[3] = 2 * c[1] * s[1]
	c[4] = c[3]*c[0] - s[3]*s[0]
	s[4] = c[3]*s[0] + c[0]*s[3]
	c[5] = 2*c[2]*c[2] - 1
	s[5] = 2 * c[2] * s[2]
	return
}

// etmercCoefficients derives the aCoeff/bCoeff harmonics and the R4/a radius
// ratio from Helmert's third flattening n, by the generic (arbitrary
// ellipsoid) polynomials tzneal/coordconv/transversemercator.go's
// generateCoefficients falls back to outside its named-ellipsoid table,
// truncated to six harmonics (n^2 through n^12).
func etmercCoefficients(n float64) (aCoeff, bCoeff [6]float64, r4oa float64) {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	n6 := n5 * n
	n7 := n6 * n
	n8 := n7 * n

	aCoeff[0] = -18975107.0*n8/50803200.0 + 72161.0*n7/387072.0 + 7891.0*n6/37800.0 - 127.0*n5/288.0 + 41.0*n4/180.0 + 5.0*n3/16.0 - 2.0*n2/3.0 + n/2.0
	aCoeff[1] = 148003883.0*n8/174182400.0 + 13769.0*n7/28800.0 - 1983433.0*n6/1935360.0 + 281.0*n5/630.0 + 557.0*n4/1440.0 - 3.0*n3/5.0 + 13.0*n2/48.0
	aCoeff[2] = 79682431.0*n8/79833600.0 - 67102379.0*n7/29030400.0 + 167603.0*n6/181440.0 + 15061.0*n5/26880.0 - 103.0*n4/140.0 + 61.0*n3/240.0
	aCoeff[3] = -40176129013.0*n8/7664025600.0 + 97445.0*n7/49896.0 + 6601661.0*n6/7257600.0 - 179.0*n5/168.0 + 49561.0*n4/161280.0
	aCoeff[4] = 2605413599.0*n8/622702080.0 + 14644087.0*n7/9123840.0 - 3418889.0*n6/1995840.0 + 34729.0*n5/80640.0
	aCoeff[5] = 175214326799.0*n8/58118860800.0 - 30705481.0*n7/10378368.0 + 212378941.0*n6/319334400.0

	bCoeff[0] = -7944359.0*n8/67737600.0 + 5406467.0*n7/38707200.0 - 96199.0*n6/604800.0 + 81.0*n5/512.0 + n4/360.0 - 37.0*n3/96.0 + 2.0*n2/3.0 - n/2.0
	bCoeff[1] = -24749483.0*n8/348364800.0 - 51841.0*n7/1209600.0 + 1118711.0*n6/3870720.0 - 46.0*n5/105.0 + 437.0*n4/1440.0 - n3/15.0 - n2/48.0
	bCoeff[2] = 6457463.0*n8/17740800.0 - 9261899.0*n7/58060800.0 - 5569.0*n6/90720.0 + 209.0*n5/4480.0 + 37.0*n4/840.0 - 17.0*n3/480.0
	bCoeff[3] = -324154477.0*n8/7664025600.0 - 466511.0*n7/2494800.0 + 830251.0*n6/7257600.0 + 11.0*n5/504.0 - 4397.0*n4/161280.0
	bCoeff[4] = -22894433.0*n8/124540416.0 + 8005831.0*n7/63866880.0 + 108847.0*n6/3991680.0 - 4583.0*n5/161280.0
	bCoeff[5] = 2204645983.0*n8/12915302400.0 + 16363163.0*n7/518918400.0 - 20648693.0*n6/638668800.0

	r4oa = (1 + n2/4 + n4/64 + n6/256) / (1 + n)
	return
}
