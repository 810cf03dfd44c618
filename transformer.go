// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

// Transformer converts Points from a source ProjectionDef to a destination
// ProjectionDef through the shared pipeline spec §4.9 describes: unit
// scaling, inverse source projection, datum shift, forward destination
// projection, unit scaling again. Immutable and safe for concurrent use by
// multiple goroutines once built by NewTransformer, the way
// ctessum/geom/proj/transform.go's NewTransform closure is a one-shot
// compile producing a reusable function value.
type Transformer struct {
	src, dst       *Projection
	sameDatum      bool
	grids          *GridStore
}

// NewTransformer compiles a Transformer between two already-parsed
// projections. grids may be nil, in which case DefaultGridStore is used.
func NewTransformer(src, dst *Projection, grids *GridStore) (*Transformer, error) {
	if grids == nil {
		grids = DefaultGridStore
	}
	return &Transformer{
		src:       src,
		dst:       dst,
		sameDatum: src.Def.Datum.Equal(dst.Def.Datum),
		grids:     grids,
	}, nil
}

// Transform converts one point and returns the result as a new Point,
// following spec §4.9's short circuits: when source and destination are the
// same *Projection, p is returned unchanged; when they share a datum, the
// datum-shift stage is skipped.
// Projection.Inverse/Forward are only invoked for a projected endpoint; a
// geographic endpoint's lon/lat (radians) pass through untouched (spec §4.9
// steps 3, 10).
func (t *Transformer) Transform(p Point) (Point, error) {
	if t.src == t.dst {
		return p, nil
	}
	lam, phi := p.X, p.Y
	if !t.src.Def.IsLngLat() {
		var err error
		lam, phi, err = t.src.Inverse(p.X, p.Y)
		if err != nil {
			return invalidPoint, err
		}
	}
	lam += t.src.Def.FromGreenwich

	if !t.sameDatum {
		var err error
		lam, phi, p.Z, err = t.shiftDatum(lam, phi, p.Z)
		if err != nil {
			return invalidPoint, err
		}
	}
	lam -= t.dst.Def.FromGreenwich

	if t.dst.Def.IsLngLat() {
		return Point{X: lam, Y: phi, Z: p.Z, M: p.M}, nil
	}
	x, y, err := t.dst.Forward(lam, phi)
	if err != nil {
		return invalidPoint, err
	}
	return Point{X: x, Y: y, Z: p.Z, M: p.M}, nil
}

// TransformAll converts a batch of points into a new slice. It stops at the
// first point that fails and returns that error with a nil slice; no partial
// results are returned.
func (t *Transformer) TransformAll(pts []Point) ([]Point, error) {
	out := make([]Point, len(pts))
	for i, p := range pts {
		tp, err := t.Transform(p)
		if err != nil {
			return nil, err
		}
		out[i] = tp
	}
	return out, nil
}

// shiftDatum moves a geodetic point (radians, ellipsoidal height) from the
// source datum to the destination datum, consulting grid shifts before
// falling back to a Helmert transform, per spec §4.9's ordering: a
// GRIDSHIFT datum tries each named grid in order, falling through to the
// next on a miss, and only erroring if a mandatory grid's miss leaves no
// fallback.
func (t *Transformer) shiftDatum(lon, lat, h float64) (float64, float64, float64, error) {
	src, dst := t.src.Def.Datum, t.dst.Def.Datum
	w := ellipsoidTable["WGS84"]
	wb := w.a * (1 - 1/w.rf)
	pivot := Datum{Type: DatumWGS84, A: w.a, B: wb, Es: 1 - (wb/w.a)*(wb/w.a)}

	if src.Type == DatumGridShift {
		shifted, ok, err := t.applyGridShift(src, lon, lat, true)
		if err != nil {
			return 0, 0, 0, err
		}
		if ok {
			lon, lat = shifted[0], shifted[1]
		}
	} else {
		var err error
		lon, lat, h, err = transformDatum(src, pivot, lon, lat, h)
		if err != nil {
			return 0, 0, 0, err
		}
	}

	if dst.Type == DatumGridShift {
		shifted, ok, err := t.applyGridShift(dst, lon, lat, false)
		if err != nil {
			return 0, 0, 0, err
		}
		if ok {
			lon, lat = shifted[0], shifted[1]
		}
		return lon, lat, h, nil
	}

	lon, lat, h, err := transformDatum(pivot, dst, lon, lat, h)
	return lon, lat, h, err
}

// applyGridShift runs the named grids for one datum in order, forward when
// moving away from that datum (toWGS84==true) or inverse when moving onto
// it, stopping at the first grid whose extent contains the point.
func (t *Transformer) applyGridShift(d Datum, lon, lat float64, toWGS84 bool) ([2]float64, bool, error) {
	for _, ref := range d.Grids {
		g, ok := t.grids.Get(ref.Name)
		if !ok {
			if ref.Mandatory {
				return [2]float64{}, false, newGridParseError("grid %q not loaded", ref.Name)
			}
			continue
		}
		if toWGS84 {
			nl, nlat, ok := g.ApplyForward(lon, lat)
			if ok {
				return [2]float64{nl, nlat}, true, nil
			}
		} else {
			nl, nlat, err := g.ApplyInverse(lon, lat)
			if err == nil {
				return [2]float64{nl, nlat}, true, nil
			}
		}
		if ref.Mandatory {
			return [2]float64{}, false, newGridOutOfBounds(lon, lat)
		}
	}
	return [2]float64{}, false, nil
}
