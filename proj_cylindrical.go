// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

func init() {
	registerProjection([]string{"longlat", "latlong", "latlon", "lonlat"}, catalogEntry{
		init: func(def *ProjectionDef) (interface{}, error) { return nil, nil },
		fwd: func(def *ProjectionDef, _ interface{}, lam, phi float64) (float64, float64, error) {
			return lam / def.Ellipsoid.A, phi / def.Ellipsoid.A, nil
		},
		inv: func(def *ProjectionDef, _ interface{}, x, y float64) (float64, float64, error) {
			return x * def.Ellipsoid.A, y * def.Ellipsoid.A, nil
		},
	})

	registerProjection([]string{"merc"}, catalogEntry{init: mercInit, fwd: mercFwd, inv: mercInv})
	registerProjection([]string{"eqc"}, catalogEntry{init: eqcInit, fwd: eqcFwd, inv: eqcInv})
	registerProjection([]string{"cea"}, catalogEntry{init: ceaInit, fwd: ceaFwd, inv: ceaInv})
	registerProjection([]string{"sinu"}, catalogEntry{init: sinuInit, fwd: sinuFwd, inv: sinuInv})
}

// mercState is the precomputed state for the Mercator projection,
// generalized from samlecuyer-projectron's Mercator type.
type mercState struct {
	k0 float64
}

func mercInit(def *ProjectionDef) (interface{}, error) {
	k0 := def.K0
	if latTS, ok := nonZero(def.LatTS); ok {
		phits := math.Abs(latTS)
		if !def.Ellipsoid.Sphere {
			k0 = Msfn(math.Sin(phits), math.Cos(phits), def.Ellipsoid.Es)
		} else {
			k0 = math.Cos(phits)
		}
	}
	return &mercState{k0: k0}, nil
}

func nonZero(v float64) (float64, bool) { return v, v != 0 }

func mercFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*mercState)
	es := def.Ellipsoid.Es
	if es != 0 {
		return s.k0 * lam, -s.k0 * math.Log(Tsfn(phi, math.Sin(phi), def.Ellipsoid.E)), nil
	}
	return s.k0 * lam, s.k0 * math.Log(math.Tan(fortPi+0.5*phi)), nil
}

func mercInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*mercState)
	es := def.Ellipsoid.Es
	if es != 0 {
		phi, err := Phi2(def.Ellipsoid.E, math.Exp(-y/s.k0))
		if err != nil {
			return 0, 0, err
		}
		return x / s.k0, phi, nil
	}
	return x / s.k0, halfPi - 2*math.Atan(math.Exp(-y/s.k0)), nil
}

// eqcState carries the cosine of the standard parallel for Plate Carree /
// Equirectangular, generalized from samlecuyer-projectron's
// Equirectangular type.
type eqcState struct {
	cosPhi1 float64
}

func eqcInit(def *ProjectionDef) (interface{}, error) {
	return &eqcState{cosPhi1: math.Cos(def.Phi1)}, nil
}

func eqcFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*eqcState)
	return lam * s.cosPhi1, phi, nil
}

func eqcInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*eqcState)
	if s.cosPhi1 == 0 {
		return 0, 0, newParseError("eqc: lat_1 too close to a pole")
	}
	return x / s.cosPhi1, y, nil
}

// ceaState carries the scale factor for the cylindrical equal-area
// projection.
type ceaState struct {
	k0 float64
}

func ceaInit(def *ProjectionDef) (interface{}, error) {
	k0 := def.K0
	if latTS, ok := nonZero(def.LatTS); ok {
		phits := math.Abs(latTS)
		k0 = math.Cos(phits)
		if !def.Ellipsoid.Sphere {
			k0 /= math.Sqrt(1 - def.Ellipsoid.Es*math.Sin(phits)*math.Sin(phits))
		}
	}
	return &ceaState{k0: k0}, nil
}

func ceaFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*ceaState)
	es := def.Ellipsoid.Es
	x := s.k0 * lam
	var y float64
	if es != 0 {
		y = 0.5 * Qsfn(def.Ellipsoid.E, math.Sin(phi)) / s.k0
	} else {
		y = math.Sin(phi) / s.k0
	}
	return x, y, nil
}

func ceaInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*ceaState)
	es := def.Ellipsoid.Es
	lam := x / s.k0
	var phi float64
	if es != 0 {
		qp := Qsfn(def.Ellipsoid.E, 1)
		phi = AuthLat(Asinz(2*y*s.k0/qp), AuthSet(es))
	} else {
		phi = Asinz(y * s.k0)
	}
	return lam, phi, nil
}

// sinuState carries the meridional-arc coefficients for the sinusoidal
// equal-area projection.
type sinuState struct {
	coeffs MeridianCoefficients
	sphere bool
}

func sinuInit(def *ProjectionDef) (interface{}, error) {
	return &sinuState{
		coeffs: DeriveMeridianCoefficients(def.Ellipsoid.Es),
		sphere: def.Ellipsoid.Sphere,
	}, nil
}

func sinuFwd(def *ProjectionDef, state interface{}, lam, phi float64) (float64, float64, error) {
	s := state.(*sinuState)
	if s.sphere {
		return lam * math.Cos(phi), phi, nil
	}
	y := Mlfn(s.coeffs, phi)
	x := lam * math.Cos(phi) / math.Sqrt(1-def.Ellipsoid.Es*math.Sin(phi)*math.Sin(phi))
	return x, y, nil
}

func sinuInv(def *ProjectionDef, state interface{}, x, y float64) (float64, float64, error) {
	s := state.(*sinuState)
	if s.sphere {
		phi := y
		if math.Abs(phi) >= halfPi {
			return 0, phi, nil
		}
		return x / math.Cos(phi), phi, nil
	}
	phi, err := InvMlfn(s.coeffs, y)
	if err != nil {
		return 0, 0, err
	}
	if math.Abs(phi) >= halfPi {
		return 0, phi, nil
	}
	lam := x * math.Sqrt(1-def.Ellipsoid.Es*math.Sin(phi)*math.Sin(phi)) / math.Cos(phi)
	return lam, phi, nil
}
