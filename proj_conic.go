// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

func init() {
	registerProjection([]string{"lcc"}, catalogEntry{init: lccInit, fwd: lccFwd, inv: lccInv})
	registerProjection([]string{"aea"}, catalogEntry{init: aeaInit, fwd: aeaFwd, inv: aeaInv})
}

// conicState is shared by the Lambert Conformal Conic and Albers Equal Area
// families: a central scale c, cone constant n, and origin radius rho0.
// Generalized from samlecuyer-projectron's LCC type (projections.go).
type conicState struct {
	c, n, rho0 float64
	ellips     bool
	coeffs     AuthalicCoefficients // aea only
}

func lccInit(def *ProjectionDef) (interface{}, error) {
	phi1, phi2 := def.Phi1, def.Phi2
	if phi2 == 0 {
		phi2 = phi1
		if def.Phi0 == 0 {
			def.Phi0 = phi1
		}
	}
	if math.Abs(phi1+phi2) <= epsln {
		return nil, newParseError("lcc: lat_1 and lat_2 cannot be opposite")
	}
	s := &conicState{}
	sinphi := math.Sin(phi1)
	s.n = sinphi
	cosphi := math.Cos(phi1)
	secant := math.Abs(phi1-phi2) >= epsln
	s.ellips = !def.Ellipsoid.Sphere
	if s.ellips {
		e := def.Ellipsoid.E
		m1 := Msfn(sinphi, cosphi, def.Ellipsoid.Es)
		ml1 := Tsfn(phi1, sinphi, e)
		if secant {
			sinphi2 := math.Sin(phi2)
			s.n = math.Log(m1/Msfn(sinphi2, math.Cos(phi2), def.Ellipsoid.Es)) /
				math.Log(ml1/Tsfn(phi2, sinphi2, e))
		}
		s.c = m1 * math.Pow(ml1, -s.n) / s.n
		if math.Abs(math.Abs(def.Phi0)-halfPi) < epsln {
			s.rho0 = 0
		} else {
			s.rho0 = s.c * math.Pow(Tsfn(def.Phi0, math.Sin(def.Phi0), e), s.n)
		}
	} else {
		if secant {
			s.n = math.Log(cosphi/math.Cos(phi2)) /
				math.Log(math.Tan(fortPi+.5*phi2)/math.Tan(fortPi+.5*phi1))
		}
		s.c = cosphi * math.Pow(math.Tan(fortPi+.5*phi1), s.n) / s.n
		if math.Abs(math.Abs(def.Phi0)-halfPi) < epsln {
			s.rho0 = 0
		} else {
			s.rho0 = s.c * math.Pow(math.Tan(fortPi+0.5*def.Phi0), -s.n)
		}
	}
	return s, nil
}

func lccFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*conicState)
	var rho float64
	if math.Abs(math.Abs(phi)-halfPi) < epsln {
		if phi*s.n <= 0 {
			return math.NaN(), math.NaN(), newParseError("lcc: point projects to infinity")
		}
		rho = 0
	} else if s.ellips {
		rho = s.c * math.Pow(Tsfn(phi, math.Sin(phi), def.Ellipsoid.E), s.n)
	} else {
		rho = s.c * math.Pow(math.Tan(fortPi+0.5*phi), -s.n)
	}
	lam *= s.n
	return rho * math.Sin(lam), s.rho0 - rho*math.Cos(lam), nil
}

func lccInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*conicState)
	rho0mY := s.rho0 - y
	rho := Sign(s.n) * math.Hypot(x, rho0mY)
	lam := 0.0
	if rho != 0 {
		lam = math.Atan2(Sign(s.n)*x, Sign(s.n)*rho0mY) / s.n
	}
	if s.ellips {
		ts := math.Pow(rho/s.c, 1/s.n)
		phi, err := Phi2(def.Ellipsoid.E, ts)
		if err != nil {
			return 0, 0, err
		}
		return lam, phi, nil
	}
	phi := 2*math.Atan(math.Pow(s.c/rho, 1/s.n)) - halfPi
	return lam, phi, nil
}

func aeaInit(def *ProjectionDef) (interface{}, error) {
	phi1, phi2 := def.Phi1, def.Phi2
	if phi2 == 0 {
		phi2 = phi1
	}
	if math.Abs(phi1+phi2) < epsln {
		return nil, newParseError("aea: lat_1 and lat_2 cannot be opposite")
	}
	s := &conicState{ellips: !def.Ellipsoid.Sphere}
	es := def.Ellipsoid.Es
	e := def.Ellipsoid.E
	sin1, cos1 := math.Sin(phi1), math.Cos(phi1)
	n0 := Qsfn(e, sin1)

	if s.ellips {
		m1 := Msfn(sin1, cos1, es)
		m2 := Msfn(math.Sin(phi2), math.Cos(phi2), es)
		q1 := n0
		q2 := Qsfn(e, math.Sin(phi2))
		if math.Abs(phi1-phi2) > epsln {
			s.n = (m1*m1 - m2*m2) / (q2 - q1)
		} else {
			s.n = sin1
		}
		s.c = m1*m1 + s.n*q1
		q0 := Qsfn(e, math.Sin(def.Phi0))
		s.rho0 = math.Sqrt(s.c-s.n*q0) / s.n
	} else {
		if math.Abs(phi1-phi2) > epsln {
			s.n = (sin1 + math.Sin(phi2)) / 2
		} else {
			s.n = sin1
		}
		s.c = cos1*cos1 + 2*s.n*sin1
		s.rho0 = math.Sqrt(s.c-2*s.n*math.Sin(def.Phi0)) / s.n
	}
	return s, nil
}

func aeaFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*conicState)
	var rho float64
	if s.ellips {
		q := Qsfn(def.Ellipsoid.E, math.Sin(phi))
		rho = math.Sqrt(s.c-s.n*q) / s.n
	} else {
		rho = math.Sqrt(s.c-2*s.n*math.Sin(phi)) / s.n
	}
	lam *= s.n
	return rho * math.Sin(lam), s.rho0 - rho*math.Cos(lam), nil
}

func aeaInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*conicState)
	rho0mY := s.rho0 - y
	rho := math.Hypot(x, rho0mY)
	if s.n < 0 {
		rho = -rho
		x = -x
		rho0mY = -rho0mY
	}
	lam := 0.0
	if rho != 0 {
		lam = math.Atan2(x, rho0mY) / s.n
	}
	if s.ellips {
		rn := rho * s.n
		q := (s.c - rn*rn) / s.n
		beta := Asinz(q / (1 - (1-def.Ellipsoid.Es)/(2*def.Ellipsoid.E)*math.Log((1-def.Ellipsoid.E)/(1+def.Ellipsoid.E))))
		phi := AuthLat(beta, AuthSet(def.Ellipsoid.Es))
		return lam, phi, nil
	}
	phi := Asinz((s.c - rho*rho*s.n*s.n) / (2 * s.n))
	return lam, phi, nil
}
