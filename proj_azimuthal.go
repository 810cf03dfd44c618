// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

const (
	modeNorthPole = iota
	modeSouthPole
	modeEquatorial
	modeOblique
)

func init() {
	registerProjection([]string{"stere"}, catalogEntry{init: stereInit, fwd: stereFwd, inv: stereInv})
	registerProjection([]string{"ortho"}, catalogEntry{init: orthoInit, fwd: orthoFwd, inv: orthoInv})
	registerProjection([]string{"gnom"}, catalogEntry{init: gnomInit, fwd: gnomFwd, inv: gnomInv})
	registerProjection([]string{"aeqd"}, catalogEntry{init: aeqdInit, fwd: aeqdFwd, inv: aeqdInv})
}

func azimuthalMode(phi0 float64) int {
	switch {
	case math.Abs(phi0-halfPi) < epsln:
		return modeNorthPole
	case math.Abs(phi0+halfPi) < epsln:
		return modeSouthPole
	case math.Abs(phi0) < epsln:
		return modeEquatorial
	default:
		return modeOblique
	}
}

// stereState is the Stereographic projection's precomputed state,
// supporting polar, equatorial and oblique aspects in one tagged entry
// rather than three catalogue entries.
type stereState struct {
	mode               int
	sinPhi0, cosPhi0   float64
	sinChi0, cosChi0   float64
	akm1               float64
	sphere             bool
}

// conformalLat maps a geodetic latitude to its conformal-sphere latitude,
// the substitution the ellipsoidal oblique/equatorial stereographic uses so
// the spherical formulas apply unchanged (PROJ's pj_stere.c "snyder"
// branch). Tsfn(phi,...) = tan(pi/4 - chi/2), so this is its inverse.
func conformalLat(phi, e float64) float64 {
	return halfPi - 2*math.Atan(Tsfn(phi, math.Sin(phi), e))
}

func stereInit(def *ProjectionDef) (interface{}, error) {
	s := &stereState{mode: azimuthalMode(def.Phi0), sphere: def.Ellipsoid.Sphere}
	s.sinPhi0 = math.Sin(def.Phi0)
	s.cosPhi0 = math.Cos(def.Phi0)
	if s.sphere {
		s.akm1 = 2 * def.K0
		return s, nil
	}
	e := def.Ellipsoid.E
	switch s.mode {
	case modeNorthPole, modeSouthPole:
		s.akm1 = 2 * def.K0 /
			math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e))
	default:
		chi0 := conformalLat(def.Phi0, e)
		s.sinChi0, s.cosChi0 = math.Sin(chi0), math.Cos(chi0)
		m1 := Msfn(s.sinPhi0, s.cosPhi0, def.Ellipsoid.Es)
		s.akm1 = 2 * def.K0 * m1 / s.cosChi0
	}
	return s, nil
}

func stereFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*stereState)
	sinphi, cosphi := math.Sin(phi), math.Cos(phi)
	coslam, sinlam := math.Cos(lam), math.Sin(lam)
	if s.sphere {
		switch s.mode {
		case modeEquatorial, modeOblique:
			var k float64
			if s.mode == modeEquatorial {
				k = s.akm1 / (1 + cosphi*coslam)
				return k * cosphi * sinlam, k * sinphi, nil
			}
			k = s.akm1 / (1 + s.sinPhi0*sinphi + s.cosPhi0*cosphi*coslam)
			return k * cosphi * sinlam, k * (s.cosPhi0*sinphi - s.sinPhi0*cosphi*coslam), nil
		default:
			if s.mode == modeSouthPole {
				phi, coslam = -phi, -coslam
				sinphi = -sinphi
			}
			if math.Abs(phi+halfPi) < epsln {
				return 0, 0, newParseError("stere: point at antipodal pole")
			}
			k := s.akm1 * math.Tan(fortPi-0.5*phi)
			y := -k * coslam
			if s.mode == modeSouthPole {
				y = -y
			}
			return k * sinlam, y, nil
		}
	}
	// Ellipsoidal polar case, the common UPS usage.
	if s.mode == modeNorthPole || s.mode == modeSouthPole {
		if s.mode == modeSouthPole {
			phi = -phi
		}
		ts := Tsfn(phi, math.Sin(phi), def.Ellipsoid.E)
		x := s.akm1 * ts * math.Sin(lam)
		y := -s.akm1 * ts * math.Cos(lam)
		if s.mode == modeSouthPole {
			y = -y
		}
		return x, y, nil
	}
	// Equatorial/oblique ellipsoidal: substitute the conformal latitude and
	// apply the same formula as the spherical case (PROJ's pj_stere.c).
	chi := conformalLat(phi, def.Ellipsoid.E)
	sinChi, cosChi := math.Sin(chi), math.Cos(chi)
	var cosc float64
	if s.mode == modeEquatorial {
		cosc = cosChi * coslam
	} else {
		cosc = s.sinChi0*sinChi + s.cosChi0*cosChi*coslam
	}
	k := s.akm1 / (1 + cosc)
	x := k * cosChi * sinlam
	var y float64
	if s.mode == modeEquatorial {
		y = k * sinChi
	} else {
		y = k * (s.cosChi0*sinChi - s.sinChi0*cosChi*coslam)
	}
	return x, y, nil
}

func stereInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*stereState)
	rho := math.Hypot(x, y)
	if s.sphere {
		c := 2 * math.Atan(rho/s.akm1)
		sinc, cosc := math.Sin(c), math.Cos(c)
		lam := 0.0
		var phi float64
		switch s.mode {
		case modeEquatorial:
			if rho <= epsln {
				return 0, 0, nil
			}
			phi = math.Asin(y * sinc / rho)
			lam = math.Atan2(x*sinc, rho*cosc)
		case modeOblique:
			if rho <= epsln {
				return 0, def.Phi0, nil
			}
			phi = math.Asin(cosc*s.sinPhi0 + y*sinc*s.cosPhi0/rho)
			lam = math.Atan2(x*sinc, rho*s.cosPhi0*cosc-y*s.sinPhi0*sinc)
		default:
			if s.mode == modeSouthPole {
				y = -y
			}
			phi = halfPi - 2*math.Atan(rho/s.akm1)
			if s.mode == modeSouthPole {
				phi = -phi
			}
			lam = math.Atan2(x, -y)
			if s.mode == modeSouthPole {
				lam = math.Atan2(x, y)
			}
		}
		return lam, phi, nil
	}
	if s.mode == modeNorthPole || s.mode == modeSouthPole {
		ts := rho / s.akm1
		phi, err := Phi2(def.Ellipsoid.E, ts)
		if err != nil {
			return 0, 0, err
		}
		lam := math.Atan2(x, -y)
		if s.mode == modeSouthPole {
			phi, lam = -phi, math.Atan2(x, y)
		}
		return lam, phi, nil
	}
	// Equatorial/oblique ellipsoidal: invert through the conformal sphere,
	// then Phi2 converts the conformal latitude back to geodetic (since
	// Tsfn(phi,...) = tan(pi/4 - chi/2) by construction).
	if rho <= epsln {
		return 0, def.Phi0, nil
	}
	c := 2 * math.Atan(rho/s.akm1)
	sinc, cosc := math.Sin(c), math.Cos(c)
	var chi, lam float64
	if s.mode == modeEquatorial {
		chi = math.Asin(y * sinc / rho)
		lam = math.Atan2(x*sinc, rho*cosc)
	} else {
		chi = math.Asin(cosc*s.sinChi0 + y*sinc*s.cosChi0/rho)
		lam = math.Atan2(x*sinc, rho*s.cosChi0*cosc-y*s.sinChi0*sinc)
	}
	phi, err := Phi2(def.Ellipsoid.E, math.Tan(fortPi-0.5*chi))
	if err != nil {
		return 0, 0, err
	}
	return lam, phi, nil
}

// orthoState/gnomState/aeqdState share the same azimuthal-aspect shape as
// stere but with their own radial projection function.
type orthoState struct {
	mode             int
	sinPhi0, cosPhi0 float64
}

func orthoInit(def *ProjectionDef) (interface{}, error) {
	return &orthoState{mode: azimuthalMode(def.Phi0), sinPhi0: math.Sin(def.Phi0), cosPhi0: math.Cos(def.Phi0)}, nil
}

func orthoFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*orthoState)
	sinphi, cosphi := math.Sin(phi), math.Cos(phi)
	coslam := math.Cos(lam)
	switch s.mode {
	case modeEquatorial:
		if cosphi*coslam < -epsln {
			return math.NaN(), math.NaN(), newParseError("ortho: point on far hemisphere")
		}
		return cosphi * math.Sin(lam), sinphi, nil
	case modeOblique:
		cosc := s.sinPhi0*sinphi + s.cosPhi0*cosphi*coslam
		if cosc < -epsln {
			return math.NaN(), math.NaN(), newParseError("ortho: point on far hemisphere")
		}
		return cosphi * math.Sin(lam), s.cosPhi0*sinphi - s.sinPhi0*cosphi*coslam, nil
	default:
		if s.mode == modeSouthPole {
			phi = -phi
			coslam = -coslam
		}
		if phi < -epsln {
			return math.NaN(), math.NaN(), newParseError("ortho: point on far hemisphere")
		}
		y := -cosphi * coslam
		return cosphi * math.Sin(lam), y, nil
	}
}

func orthoInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*orthoState)
	rho := math.Hypot(x, y)
	if rho > 1+epsln {
		return 0, 0, newParseError("ortho: point outside the visible disc")
	}
	if rho > 1 {
		rho = 1
	}
	c := math.Asin(rho)
	sinc, cosc := math.Sin(c), math.Cos(c)
	var phi, lam float64
	switch s.mode {
	case modeEquatorial:
		if rho <= epsln {
			return 0, 0, nil
		}
		phi = math.Asin(y * sinc / rho)
		lam = math.Atan2(x*sinc, rho*cosc)
	case modeOblique:
		if rho <= epsln {
			return 0, def.Phi0, nil
		}
		phi = math.Asin(cosc*s.sinPhi0 + y*sinc*s.cosPhi0/rho)
		lam = math.Atan2(x*sinc, rho*s.cosPhi0*cosc-y*s.sinPhi0*sinc)
	default:
		if s.mode == modeSouthPole {
			y = -y
		}
		phi = math.Asin(cosc)
		if s.mode == modeSouthPole {
			phi = -phi
		}
		lam = math.Atan2(x, -y)
	}
	return lam, phi, nil
}

type gnomState struct {
	mode             int
	sinPhi0, cosPhi0 float64
}

func gnomInit(def *ProjectionDef) (interface{}, error) {
	return &gnomState{mode: azimuthalMode(def.Phi0), sinPhi0: math.Sin(def.Phi0), cosPhi0: math.Cos(def.Phi0)}, nil
}

func gnomFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*gnomState)
	sinphi, cosphi := math.Sin(phi), math.Cos(phi)
	coslam := math.Cos(lam)
	var cosc float64
	switch s.mode {
	case modeEquatorial:
		cosc = cosphi * coslam
	case modeOblique:
		cosc = s.sinPhi0*sinphi + s.cosPhi0*cosphi*coslam
	default:
		if s.mode == modeSouthPole {
			phi, coslam = -phi, -coslam
			sinphi = -sinphi
		}
		cosc = sinphi
	}
	if cosc <= epsln {
		return math.NaN(), math.NaN(), newParseError("gnom: point beyond the projection's horizon")
	}
	switch s.mode {
	case modeEquatorial:
		return cosphi * math.Sin(lam) / cosc, sinphi / cosc, nil
	case modeOblique:
		x := cosphi * math.Sin(lam) / cosc
		y := (s.cosPhi0*sinphi - s.sinPhi0*cosphi*coslam) / cosc
		return x, y, nil
	default:
		y := -cosphi * coslam / cosc
		return cosphi * math.Sin(lam) / cosc, y, nil
	}
}

func gnomInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*gnomState)
	rho := math.Hypot(x, y)
	c := math.Atan(rho)
	sinc, cosc := math.Sin(c), math.Cos(c)
	var phi, lam float64
	switch s.mode {
	case modeEquatorial:
		if rho <= epsln {
			return 0, 0, nil
		}
		phi = math.Asin(y * sinc / rho)
		lam = math.Atan2(x*sinc, rho*cosc)
	case modeOblique:
		if rho <= epsln {
			return 0, def.Phi0, nil
		}
		phi = math.Asin(cosc*s.sinPhi0 + y*sinc*s.cosPhi0/rho)
		lam = math.Atan2(x*sinc, rho*s.cosPhi0*cosc-y*s.sinPhi0*sinc)
	default:
		if s.mode == modeSouthPole {
			y = -y
		}
		phi = math.Asin(cosc)
		if s.mode == modeSouthPole {
			phi = -phi
		}
		lam = math.Atan2(x, -y)
	}
	return lam, phi, nil
}

// aeqdState precomputes the meridional-arc coefficients for the ellipsoidal
// azimuthal equidistant projection. The ellipsoidal polar aspects use the
// meridional arc; the equatorial and oblique aspects always use Vincenty's
// geodesic formulas.
type aeqdState struct {
	mode             int
	sinPhi0, cosPhi0 float64
	coeffs           MeridianCoefficients
	mp               float64
}

func aeqdInit(def *ProjectionDef) (interface{}, error) {
	s := &aeqdState{mode: azimuthalMode(def.Phi0), sinPhi0: math.Sin(def.Phi0), cosPhi0: math.Cos(def.Phi0)}
	if !def.Ellipsoid.Sphere {
		s.coeffs = DeriveMeridianCoefficients(def.Ellipsoid.Es)
		s.mp = Mlfn(s.coeffs, halfPi)
	}
	return s, nil
}

func aeqdFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*aeqdState)
	if def.Ellipsoid.Sphere {
		sinphi, cosphi := math.Sin(phi), math.Cos(phi)
		coslam := math.Cos(lam)
		var cosc float64
		switch s.mode {
		case modeEquatorial:
			cosc = cosphi * coslam
		case modeOblique:
			cosc = s.sinPhi0*sinphi + s.cosPhi0*cosphi*coslam
		default:
			cosc = sinphi
			if s.mode == modeSouthPole {
				cosc = -sinphi
			}
		}
		c := math.Acos(clampUnit(cosc))
		var k float64
		if c != 0 {
			k = c / math.Sin(c)
		} else {
			k = 1
		}
		switch s.mode {
		case modeEquatorial:
			return k * cosphi * math.Sin(lam), k * sinphi, nil
		case modeOblique:
			return k * cosphi * math.Sin(lam), k * (s.cosPhi0*sinphi - s.sinPhi0*cosphi*coslam), nil
		default:
			y := -c * coslam
			if s.mode == modeSouthPole {
				y = -y
			}
			return c * math.Sin(lam), y, nil
		}
	}
	// Ellipsoidal case: the polar aspects use the meridional arc below; the
	// equatorial and oblique aspects always use Vincenty's inverse formula.
	if s.mode == modeNorthPole || s.mode == modeSouthPole {
		phi0 := def.Phi0
		if s.mode == modeSouthPole {
			phi0, phi = -phi0, -phi
		}
		mp := s.mp
		rho := mp - Mlfn(s.coeffs, phi)
		y := -rho * math.Cos(lam)
		if s.mode == modeSouthPole {
			y = -y
		}
		return rho * math.Sin(lam), y, nil
	}
	az, dist, err := vincentyInverse(def.Ellipsoid, def.Phi0, 0, phi, lam)
	if err != nil {
		return 0, 0, err
	}
	return dist * math.Sin(az), dist * math.Cos(az), nil
}

func aeqdInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*aeqdState)
	rho := math.Hypot(x, y)
	if rho < epsln {
		return 0, def.Phi0, nil
	}
	if def.Ellipsoid.Sphere {
		c := rho
		sinc, cosc := math.Sin(c), math.Cos(c)
		var phi, lam float64
		switch s.mode {
		case modeEquatorial:
			phi = math.Asin(y * sinc / rho)
			lam = math.Atan2(x*sinc, rho*cosc)
		case modeOblique:
			phi = math.Asin(cosc*s.sinPhi0 + y*sinc*s.cosPhi0/rho)
			lam = math.Atan2(x*sinc, rho*s.cosPhi0*cosc-y*s.sinPhi0*sinc)
		default:
			if s.mode == modeSouthPole {
				y = -y
			}
			phi = halfPi - c
			if s.mode == modeSouthPole {
				phi = -phi
			}
			lam = math.Atan2(x, -y)
		}
		return lam, phi, nil
	}
	if s.mode == modeNorthPole || s.mode == modeSouthPole {
		yy := y
		if s.mode == modeSouthPole {
			yy = -y
		}
		arg := s.mp - rho
		phi, err := InvMlfn(s.coeffs, arg)
		if err != nil {
			return 0, 0, err
		}
		if s.mode == modeSouthPole {
			phi = -phi
		}
		lam := math.Atan2(x, -yy)
		return lam, phi, nil
	}
	az := math.Atan2(x, y)
	phi, lam, err := vincentyDirect(def.Ellipsoid, def.Phi0, 0, az, rho)
	if err != nil {
		return 0, 0, err
	}
	return lam, phi, nil
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
