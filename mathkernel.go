// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// Shared ellipsoidal series used by the projection catalogue. Names and
// closed forms follow proj4js/PROJ.4; see the per-function source comment
// for the defining equation. msfn/tsfn/phi2/adjlng/sign are generalized
// from samlecuyer-projectron/math.go; qsfn/mlfn/inv_mlfn/authset/authlat/
// asinz/adjust_lat were absent from the teacher and are added here in the
// same style.

const (
	spi    float64 = 3.14159265359
	twoPi  float64 = math.Pi * 2
	halfPi float64 = math.Pi / 2
	fortPi float64 = math.Pi / 4
	d2r    float64 = math.Pi / 180
	r2d    float64 = 180 / math.Pi
	epsln  float64 = 1.0e-10
)

// Msfn computes the ellipsoidal meridional scale factor:
//
//	m(phi) = cos(phi) / sqrt(1 - e^2 sin^2(phi))
func Msfn(sinphi, cosphi, es float64) float64 {
	return cosphi / math.Sqrt(1-es*sinphi*sinphi)
}

// Tsfn computes the isometric-latitude helper used by the conformal
// projections:
//
//	t(phi) = tan(pi/4 - phi/2) / ((1-e sinphi)/(1+e sinphi))^(e/2)
func Tsfn(phi, sinphi, e float64) float64 {
	sinphi *= e
	return math.Tan(.5*(halfPi-phi)) / math.Pow((1-sinphi)/(1+sinphi), .5*e)
}

// Phi2 inverts Tsfn by Newton-like iteration, capped at 15 iterations as
// specified. It returns a Nonconvergent error if the residual doesn't drop
// below 1e-10 radians within the cap.
func Phi2(e, ts float64) (float64, error) {
	eccnth := 0.5 * e
	phi := halfPi - 2*math.Atan(ts)
	var con, dphi float64
	for i := 0; i < 15; i++ {
		con = e * math.Sin(phi)
		dphi = halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) < 1e-10 {
			return phi, nil
		}
	}
	return 0, newNonconvergent("phi2z", dphi)
}

// Qsfn computes the authalic-latitude series:
//
//	q(phi) = (1-e^2) [ sinphi/(1-e^2 sin^2 phi) - (1/2e) ln((1-e sinphi)/(1+e sinphi)) ]
func Qsfn(e, sinphi float64) float64 {
	if e < 1e-7 {
		return 2 * sinphi
	}
	con := e * sinphi
	return (1 - e*e) * (sinphi/(1-con*con) - (0.5/e)*math.Log((1-con)/(1+con)))
}

// MeridianCoefficients holds the e0..e3 coefficients Mlfn/InvMlfn need,
// precomputed once per ellipsoid from es.
type MeridianCoefficients struct {
	E0, E1, E2, E3 float64
}

// DeriveMeridianCoefficients computes e0..e3 from the ellipsoid's first
// eccentricity squared.
func DeriveMeridianCoefficients(es float64) MeridianCoefficients {
	return MeridianCoefficients{
		E0: 1 - es*(1.0/4+es*(3.0/64+5.0/256*es)),
		E1: es * (3.0/8 + es*(3.0/32+45.0/1024*es)),
		E2: es * es * (15.0/256 + es*45.0/1024),
		E3: es * es * es * (35.0 / 3072),
	}
}

// Mlfn evaluates the meridional arc length:
//
//	M(phi) = e0*phi - e1*sin(2phi) + e2*sin(4phi) - e3*sin(6phi)
func Mlfn(c MeridianCoefficients, phi float64) float64 {
	return c.E0*phi - c.E1*math.Sin(2*phi) + c.E2*math.Sin(4*phi) - c.E3*math.Sin(6*phi)
}

// InvMlfn inverts Mlfn against arg = M/a by Newton iteration, capped at 15
// iterations.
func InvMlfn(c MeridianCoefficients, arg float64) (float64, error) {
	phi := arg / c.E0
	for i := 0; i < 15; i++ {
		num := arg - Mlfn(c, phi)
		den := c.E0 - 2*c.E1*math.Cos(2*phi) + 4*c.E2*math.Cos(4*phi) - 6*c.E3*math.Cos(6*phi)
		dphi := num / den
		phi += dphi
		if math.Abs(dphi) <= 1e-10 {
			return phi, nil
		}
	}
	return phi, newNonconvergent("inv_mlfn", 0)
}

// AuthalicCoefficients holds the APA0..APA2 coefficients AuthLat needs,
// derived once per ellipsoid by AuthSet.
type AuthalicCoefficients struct {
	P0, P1, P2 float64
}

// AuthSet derives the authalic-latitude series coefficients from es,
// following the standard P series (Snyder, "Map Projections — A Working
// Manual", eq. 3-18).
func AuthSet(es float64) AuthalicCoefficients {
	return AuthalicCoefficients{
		P0: es*(1.0/3) + es*es*(31.0/180) + es*es*es*(517.0/5040),
		P1: es*es*(23.0/360) + es*es*es*(251.0/3780),
		P2: es * es * es * (761.0 / 45360),
	}
}

// AuthLat converts an authalic latitude beta to geodetic latitude using the
// coefficients from AuthSet:
//
//	phi = beta + P0 sin(2beta) + P1 sin(4beta) + P2 sin(6beta)
func AuthLat(beta float64, c AuthalicCoefficients) float64 {
	return beta + c.P0*math.Sin(2*beta) + c.P1*math.Sin(4*beta) + c.P2*math.Sin(6*beta)
}

// AdjustLon brings a longitude into (-pi, pi], unless over suppresses
// wrapping (the +over PROJ flag).
func AdjustLon(lon float64, over bool) float64 {
	if over {
		return lon
	}
	if math.Abs(lon) <= spi {
		return lon
	}
	lon += math.Pi
	lon -= twoPi * math.Floor(lon/twoPi)
	lon -= math.Pi
	return lon
}

// AdjustLat reflects a latitude into [-pi/2, pi/2].
func AdjustLat(lat float64) float64 {
	if math.Abs(lat) < halfPi {
		return lat
	}
	return lat - math.Copysign(math.Pi, lat)*math.Floor((math.Abs(lat)+halfPi)/math.Pi)
}

// Asinz is arcsin with its argument clamped to [-1, 1], suppressing the
// domain error math.Asin would raise from rounding noise just outside that
// range.
func Asinz(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return math.Asin(x)
}

// Sign returns -1 when x's sign bit is set (negative values, negative zero,
// and a NaN with its sign bit set) and 1 otherwise.
func Sign(x float64) float64 {
	if math.Signbit(x) {
		return -1
	}
	return 1
}
