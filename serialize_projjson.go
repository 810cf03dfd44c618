// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "encoding/json"

// ToPROJJSON renders a ProjectionDef as a PROJJSON document. Uses an
// explicit field-ordered struct rather than a map, so key order in the
// emitted JSON is deterministic without depending on Go's unordered map
// iteration (spec §4.11).
func ToPROJJSON(def *ProjectionDef) ([]byte, error) {
	datum := &projjsonDatum{
		Type: "GeodeticReferenceFrame",
		Name: ellipsoidWKTName(def.Ellipsoid),
		Ellipsoid: projjsonEllipsoid{
			Name:              ellipsoidWKTName(def.Ellipsoid),
			SemiMajorAxis:     def.Ellipsoid.A,
			InverseFlattening: def.Ellipsoid.Rf,
		},
	}
	if def.FromGreenwich != 0 {
		datum.PrimeMeridian = &projjsonPrimeMeridian{Name: "non-Greenwich", Longitude: def.FromGreenwich / d2r}
	}

	if def.IsLngLat() {
		doc := projjsonCRS{
			Type:  "GeographicCRS",
			Name:  nonEmpty(def.Title, "unnamed"),
			Datum: datum,
		}
		return json.MarshalIndent(doc, "", "  ")
	}

	base := projjsonCRS{
		Type:  "GeographicCRS",
		Name:  "unnamed base",
		Datum: datum,
	}

	params := []projjsonParameter{}
	addParam := func(name string, v float64, isAngle bool) {
		if v == 0 {
			return
		}
		if isAngle {
			v /= d2r
		}
		params = append(params, projjsonParameter{Name: name, Value: v})
	}
	addParam("Latitude of natural origin", def.Phi0, true)
	addParam("Longitude of natural origin", def.Lam0, true)
	addParam("Latitude of 1st standard parallel", def.Phi1, true)
	addParam("Latitude of 2nd standard parallel", def.Phi2, true)
	addParam("Scale factor at natural origin", def.K0, false)
	addParam("False easting", def.X0, false)
	addParam("False northing", def.Y0, false)

	conv := &projjsonConversion{
		Name:       "unnamed conversion",
		Method:     projjsonMethod{Name: wkt1ProjectionNamesReverse[def.Proj]},
		Parameters: params,
	}

	doc := projjsonCRS{
		Type:       "ProjectedCRS",
		Name:       nonEmpty(def.Title, "unnamed"),
		BaseCRS:    &base,
		Conversion: conv,
	}
	return json.MarshalIndent(doc, "", "  ")
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
