// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

func init() {
	registerProjection([]string{"cass"}, catalogEntry{init: cassInit, fwd: cassFwd, inv: cassInv})
	registerProjection([]string{"robin"}, catalogEntry{init: robinInit, fwd: robinFwd, inv: robinInv})
}

// cassState precomputes the meridional-arc coefficients the ellipsoidal
// Cassini needs for its arc-length correction term.
type cassState struct {
	coeffs MeridianCoefficients
	ml0    float64
	sphere bool
}

func cassInit(def *ProjectionDef) (interface{}, error) {
	s := &cassState{sphere: def.Ellipsoid.Sphere}
	if !s.sphere {
		s.coeffs = DeriveMeridianCoefficients(def.Ellipsoid.Es)
		s.ml0 = Mlfn(s.coeffs, def.Phi0)
	}
	return s, nil
}

func cassFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*cassState)
	if s.sphere {
		x := math.Asin(math.Cos(phi) * math.Sin(lam))
		y := math.Atan2(math.Tan(phi), math.Cos(lam)) - def.Phi0
		return x, y, nil
	}
	sinphi, cosphi := math.Sin(phi), math.Cos(phi)
	n := 1 / math.Sqrt(1-def.Ellipsoid.Es*sinphi*sinphi)
	tn := math.Tan(phi)
	t := tn * tn
	a1 := lam * cosphi
	c := cosphi * cosphi * def.Ellipsoid.Ep2
	a2 := a1 * a1
	x := n * a1 * (1 - a2*t*(1.0/6-(8-t+8*c)*a2/120))
	y := Mlfn(s.coeffs, phi) - s.ml0 +
		n*tn*a2*(0.5+(5-t+6*c)*a2/24)
	return x, y, nil
}

func cassInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*cassState)
	if s.sphere {
		dd := y + def.Phi0
		phi := math.Asin(math.Sin(dd) * math.Cos(x))
		lam := math.Atan2(math.Tan(x), math.Cos(dd))
		return lam, phi, nil
	}
	ml1 := s.ml0 + y
	phi1, err := InvMlfn(s.coeffs, ml1)
	if err != nil {
		return 0, 0, err
	}
	if math.Abs(phi1) >= halfPi {
		return x, math.Copysign(halfPi, phi1), nil
	}
	tn := math.Tan(phi1)
	t := tn * tn
	sin1 := math.Sin(phi1)
	n := 1 / math.Sqrt(1-def.Ellipsoid.Es*sin1*sin1)
	r := n * n * n * (1 - def.Ellipsoid.Es)
	dd := x / n
	d2 := dd * dd
	phi := phi1 - (n*tn/r)*d2*(0.5-(1+3*t)*d2/24)
	lam := (dd - t*d2*dd/3) / math.Cos(phi1)
	return lam, phi, nil
}

// robinCoefficients is Robinson's published table of 19 rows (latitude 0
// to 90 in 5 degree steps) giving the pearson-fit X and Y scale
// coefficients, per spec's literal-table requirement. Values follow
// proj4js/PROJ's own ROBIN_TABLE.
var robinCoefficients = [19][2]float64{
	{1.0000, 0.0000}, {0.9986, 0.0620}, {0.9954, 0.1240}, {0.9900, 0.1860},
	{0.9822, 0.2480}, {0.9730, 0.3100}, {0.9600, 0.3720}, {0.9427, 0.4340},
	{0.9216, 0.4958}, {0.8962, 0.5571}, {0.8679, 0.6176}, {0.8350, 0.6769},
	{0.7986, 0.7346}, {0.7597, 0.7903}, {0.7186, 0.8435}, {0.6732, 0.8936},
	{0.6213, 0.9394}, {0.5722, 0.9761}, {0.5322, 1.0000},
}

type robinState struct{}

func robinInit(def *ProjectionDef) (interface{}, error) { return &robinState{}, nil }

// robinInterp locates the table row for |phi| in degrees and linearly
// interpolates the (X, Y) scale pair.
func robinInterp(phiDeg float64) (x, y float64) {
	if phiDeg < 0 {
		phiDeg = -phiDeg
	}
	if phiDeg >= 90 {
		return robinCoefficients[18][0], robinCoefficients[18][1]
	}
	i := int(phiDeg / 5)
	frac := (phiDeg - float64(i)*5) / 5
	x = robinCoefficients[i][0] + frac*(robinCoefficients[i+1][0]-robinCoefficients[i][0])
	y = robinCoefficients[i][1] + frac*(robinCoefficients[i+1][1]-robinCoefficients[i][1])
	return x, y
}

const robinFXC = 0.8487
const robinFYC = 1.3523

func robinFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	phiDeg := phi * r2d
	xf, yf := robinInterp(phiDeg)
	x := robinFXC * lam * xf
	y := robinFYC * yf
	if phi < 0 {
		y = -y
	}
	return x, y, nil
}

func robinInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	yy := math.Abs(y) / robinFYC
	lo, hi := 0, 18
	for lo < hi {
		mid := (lo + hi) / 2
		if robinCoefficients[mid][1] < yy {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	i := lo
	if i == 0 {
		i = 1
	}
	y0, y1 := robinCoefficients[i-1][1], robinCoefficients[i][1]
	frac := 0.0
	if y1 != y0 {
		frac = (yy - y0) / (y1 - y0)
	}
	phiDeg := (float64(i-1) + frac) * 5
	if y < 0 {
		phiDeg = -phiDeg
	}
	phi := phiDeg * d2r
	xScale, _ := robinInterp(phiDeg)
	lam := x / (robinFXC * xScale)
	return lam, phi, nil
}
