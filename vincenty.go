// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// vincentyInverse solves the geodesic inverse problem on the ellipsoid:
// given two geodetic points, return the forward azimuth (radians, from
// phi1/lam1 towards phi2/lam2) and the ellipsoidal distance in units of the
// semi-major axis. Used by the azimuthal equidistant projection's forward
// transform to avoid the meridional-arc series' divergence away from the
// poles, per spec §4.6.
func vincentyInverse(e Ellipsoid, phi1, lam1, phi2, lam2 float64) (azimuth, dist float64, err error) {
	if e.Sphere {
		dlam := lam2 - lam1
		cosc := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(dlam)
		c := math.Acos(clampUnit(cosc))
		az := math.Atan2(math.Cos(phi2)*math.Sin(dlam),
			math.Cos(phi1)*math.Sin(phi2)-math.Sin(phi1)*math.Cos(phi2)*math.Cos(dlam))
		return az, c, nil
	}
	f := 1 - e.B/e.A
	L := lam2 - lam1
	U1 := math.Atan((1 - f) * math.Tan(phi1))
	U2 := math.Atan((1 - f) * math.Tan(phi2))
	sinU1, cosU1 := math.Sin(U1), math.Cos(U1)
	sinU2, cosU2 := math.Sin(U2), math.Cos(U2)

	lambda := L
	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64
	for i := 0; i < 100; i++ {
		sinLambda, cosLambda := math.Sin(lambda), math.Cos(lambda)
		sinSigma = math.Sqrt(math.Pow(cosU2*sinLambda, 2) +
			math.Pow(cosU1*sinU2-sinU1*cosU2*cosLambda, 2))
		if sinSigma == 0 {
			return 0, 0, nil
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		cos2SigmaM = 0.0
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}
		C := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		lambdaPrev := lambda
		lambda = L + (1-C)*f*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-lambdaPrev) < 1e-12 {
			break
		}
	}

	uSq := cosSqAlpha * (e.A*e.A - e.B*e.B) / (e.B * e.B)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
	s := e.B * A * (sigma - deltaSigma)

	az := math.Atan2(cosU2*math.Sin(lambda), cosU1*sinU2-sinU1*cosU2*math.Cos(lambda))
	return az, s / e.A, nil
}

// vincentyDirect solves the geodesic direct problem: given a starting
// point, azimuth and distance (in semi-major-axis units), returns the
// destination geodetic point.
func vincentyDirect(e Ellipsoid, phi1, lam1, azimuth, dist float64) (phi2, lam2 float64, err error) {
	s := dist * e.A
	if e.Sphere {
		phi2 = math.Asin(math.Sin(phi1)*math.Cos(dist) + math.Cos(phi1)*math.Sin(dist)*math.Cos(azimuth))
		lam2 = lam1 + math.Atan2(math.Sin(azimuth)*math.Sin(dist)*math.Cos(phi1),
			math.Cos(dist)-math.Sin(phi1)*math.Sin(phi2))
		return phi2, lam2, nil
	}
	f := 1 - e.B/e.A
	U1 := math.Atan((1 - f) * math.Tan(phi1))
	sinU1, cosU1 := math.Sin(U1), math.Cos(U1)
	sinAlpha1, cosAlpha1 := math.Sin(azimuth), math.Cos(azimuth)
	sigma1 := math.Atan2(math.Tan(U1), cosAlpha1)
	sinAlpha := cosU1 * sinAlpha1
	cosSqAlpha := 1 - sinAlpha*sinAlpha
	uSq := cosSqAlpha * (e.A*e.A - e.B*e.B) / (e.B * e.B)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	sigma := s / (e.B * A)
	var sigmaP, cos2SigmaM, sinSigma, cosSigma float64
	for i := 0; i < 100; i++ {
		cos2SigmaM = math.Cos(2*sigma1 + sigma)
		sinSigma = math.Sin(sigma)
		cosSigma = math.Cos(sigma)
		deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
		sigmaP = sigma
		sigma = s/(e.B*A) + deltaSigma
		if math.Abs(sigma-sigmaP) < 1e-12 {
			break
		}
	}

	tmp := sinU1*sinSigma - cosU1*cosSigma*cosAlpha1
	phi2 = math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosAlpha1,
		(1-f)*math.Sqrt(sinAlpha*sinAlpha+tmp*tmp))
	lambda := math.Atan2(sinSigma*sinAlpha1, cosU1*cosSigma-sinU1*sinSigma*cosAlpha1)
	c := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
	L := lambda - (1-c)*f*sinAlpha*
		(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
	lam2 = lam1 + L
	return phi2, lam2, nil
}
