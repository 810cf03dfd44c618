// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// catalogEntry is one projection's init/forward/inverse triple. The
// catalogue dispatches on the PROJ-string "+proj" tag rather than through a
// Go interface implemented once per concrete type: state is an opaque value
// returned by init and handed back to fwd/inv, so adding a projection means
// adding one table entry rather than a new exported type satisfying a
// shared interface. This mirrors proj4js's own pj_<name>.js per-projection
// modules (seen in samlecuyer-projectron's single-file catalogue) scaled up
// to the ~20-entry set spec'd here.
type catalogEntry struct {
	init func(def *ProjectionDef) (state interface{}, err error)
	fwd  func(def *ProjectionDef, state interface{}, lam, phi float64) (x, y float64, err error)
	inv  func(def *ProjectionDef, state interface{}, x, y float64) (lam, phi float64, err error)
}

var catalogue = map[string]catalogEntry{}

func registerProjection(tags []string, entry catalogEntry) {
	for _, t := range tags {
		catalogue[t] = entry
	}
}

func lookupImpl(proj string) (catalogEntry, bool) {
	e, ok := catalogue[proj]
	return e, ok
}

// Projection is a compiled, immutable projection: a ProjectionDef plus the
// catalogue entry's precomputed per-definition state. Safe for concurrent
// use by multiple goroutines once constructed.
type Projection struct {
	Def   *ProjectionDef
	entry catalogEntry
	state interface{}
}

// NewProjectionFromString parses a PROJ string and compiles it.
func NewProjectionFromString(s string) (*Projection, error) {
	def, err := ParseProjString(s)
	if err != nil {
		return nil, err
	}
	return NewProjection(def)
}

// NewProjection compiles an already-built ProjectionDef.
func NewProjection(def *ProjectionDef) (*Projection, error) {
	entry, ok := lookupImpl(def.Proj)
	if !ok {
		return nil, newUnknownProjection(def.Proj)
	}
	state, err := entry.init(def)
	if err != nil {
		return nil, err
	}
	return &Projection{Def: def, entry: entry, state: state}, nil
}

// Forward projects a geodetic point (radians) to the projection's plane
// (in the definition's output unit). Generalized from
// samlecuyer-projectron's (*pj).commonFwd.
func (p *Projection) Forward(lam, phi float64) (x, y float64, err error) {
	d := p.Def
	t := math.Abs(phi) - halfPi
	if t > epsln || math.Abs(lam) > 10 {
		return math.NaN(), math.NaN(), newParseError("forward: longitude/latitude out of range (lam=%v phi=%v)", lam, phi)
	}
	if math.Abs(t) <= epsln {
		phi = math.Copysign(halfPi, phi)
	} else if d.Geoc {
		phi = math.Atan((1 - d.Ellipsoid.Es) * math.Tan(phi))
	}
	lam -= d.Lam0
	if !d.Over {
		lam = AdjustLon(lam, false)
	}
	x, y, err = p.entry.fwd(d, p.state, lam, phi)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	x = d.FromMeter * (d.Ellipsoid.A*x + d.X0)
	y = d.FromMeter * (d.Ellipsoid.A*y + d.Y0)
	return x, y, nil
}

// Inverse projects a plane point back to geodetic radians. Generalized from
// samlecuyer-projectron's (*pj).commonInv.
func (p *Projection) Inverse(x, y float64) (lam, phi float64, err error) {
	d := p.Def
	x = (x*d.ToMeter - d.X0) / d.Ellipsoid.A
	y = (y*d.ToMeter - d.Y0) / d.Ellipsoid.A
	lam, phi, err = p.entry.inv(d, p.state, x, y)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	lam += d.Lam0
	if !d.Over {
		lam = AdjustLon(lam, false)
	}
	if d.Geoc && math.Abs(math.Abs(phi)-halfPi) > epsln {
		phi = math.Atan((1 / (1 - d.Ellipsoid.Es)) * math.Tan(phi))
	}
	return lam, phi, nil
}
