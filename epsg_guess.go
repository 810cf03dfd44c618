// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// EPSGGuess attempts to identify a well-known authority:code for def by
// comparing it against DefaultRegistry's built-in entries, returning ""
// if nothing matches. This is a best-effort heuristic, not a guarantee:
// spec §4.11 only requires that a guess, when made, be correct. Among
// several equivalent entries it prefers one whose eccentricity matches def's
// exactly, then the lexically smallest key.
func EPSGGuess(def *ProjectionDef) string {
	DefaultRegistry.mu.RLock()
	defer DefaultRegistry.mu.RUnlock()
	best, bestExact := "", false
	for code, candidate := range DefaultRegistry.crs {
		if !projectionDefsEquivalent(def, candidate) {
			continue
		}
		exact := candidate.Ellipsoid.Es == def.Ellipsoid.Es
		if best == "" || exact && !bestExact || exact == bestExact && code < best {
			best, bestExact = code, exact
		}
	}
	return best
}

func projectionDefsEquivalent(a, b *ProjectionDef) bool {
	if a.Proj != b.Proj {
		return false
	}
	if !floatsEqual(a.Ellipsoid.A, b.Ellipsoid.A) || !floatsEqual(a.Ellipsoid.B, b.Ellipsoid.B) {
		return false
	}
	if !a.Datum.Equal(b.Datum) {
		return false
	}
	same := func(x, y float64) bool { return math.Abs(x-y) < 1e-9 }
	return same(a.Lam0, b.Lam0) && same(a.Phi0, b.Phi0) && a.Zone == b.Zone && a.SouthZone == b.SouthZone
}
