// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"encoding/json"
	"math"
	"strconv"
)

// PROJJSON is decoded with encoding/json: no example repo in the retrieval
// pack imports a third-party JSON library (encoding/json appears in nearly
// every pack repo instead), and PROJJSON is plain, schema-described JSON
// with no binary framing or streaming requirement that would justify
// reaching past the standard decoder.

type projjsonEllipsoid struct {
	Name           string  `json:"name"`
	SemiMajorAxis  float64 `json:"semi_major_axis"`
	InverseFlattening float64 `json:"inverse_flattening,omitempty"`
	SemiMinorAxis  float64 `json:"semi_minor_axis,omitempty"`
}

type projjsonPrimeMeridian struct {
	Name           string  `json:"name"`
	Longitude      float64 `json:"longitude"`
}

type projjsonDatum struct {
	Type          string                 `json:"type"`
	Name          string                 `json:"name"`
	Ellipsoid     projjsonEllipsoid      `json:"ellipsoid"`
	PrimeMeridian *projjsonPrimeMeridian `json:"prime_meridian,omitempty"`
}

type projjsonParameter struct {
	Name  string      `json:"name"`
	Value float64     `json:"value"`
	Unit  interface{} `json:"unit,omitempty"`
}

type projjsonMethod struct {
	Name string `json:"name"`
}

type projjsonConversion struct {
	Name       string              `json:"name"`
	Method     projjsonMethod      `json:"method"`
	Parameters []projjsonParameter `json:"parameters"`
}

type projjsonCRS struct {
	Type          string              `json:"type"`
	Name          string              `json:"name"`
	Datum         *projjsonDatum      `json:"datum,omitempty"`
	BaseCRS       *projjsonCRS        `json:"base_crs,omitempty"`
	Conversion    *projjsonConversion `json:"conversion,omitempty"`
	ID            *struct {
		Authority string `json:"authority"`
		Code      interface{} `json:"code"`
	} `json:"id,omitempty"`
}

// ParsePROJJSON decodes a PROJJSON document into a ProjectionDef, sharing
// the same WKT2 parameter-name table since PROJJSON's "parameters" array
// uses the identical OGC method/parameter vocabulary as WKT2's
// CONVERSION/METHOD/PARAMETER nodes (spec §4.3).
func ParsePROJJSON(data []byte) (*ProjectionDef, error) {
	var doc projjsonCRS
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, newParseError("projjson: %v", err)
	}

	def := NewProjectionDef()
	def.Title = doc.Name

	switch doc.Type {
	case "GeographicCRS":
		def.Proj = "longlat"
		if err := lowerPROJJSONDatum(doc.Datum, def); err != nil {
			return nil, err
		}
	case "ProjectedCRS":
		if doc.BaseCRS == nil {
			return nil, newParseError("projjson: ProjectedCRS missing base_crs")
		}
		if err := lowerPROJJSONDatum(doc.BaseCRS.Datum, def); err != nil {
			return nil, err
		}
		if doc.Conversion == nil {
			return nil, newParseError("projjson: ProjectedCRS missing conversion")
		}
		tag, ok := wkt1ProjectionNames[normalizeWKTName(doc.Conversion.Method.Name)]
		if !ok {
			return nil, newUnknownProjection(doc.Conversion.Method.Name)
		}
		def.Proj = tag
		for _, p := range doc.Conversion.Parameters {
			applyWKTParameter(def, normalizeWKTName(p.Name), p.Value)
		}
	default:
		return nil, newParseError("projjson: unsupported type %q", doc.Type)
	}

	if doc.ID != nil {
		def.Code = doc.ID.Authority + ":" + jsonScalarToString(doc.ID.Code)
	}
	return def, nil
}

func jsonScalarToString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.Itoa(int(t))
	default:
		return ""
	}
}

func lowerPROJJSONDatum(d *projjsonDatum, def *ProjectionDef) error {
	if d == nil {
		return newParseError("projjson: missing datum")
	}
	if d.Name == "World Geodetic System 1984" {
		def.Datum.Type = DatumWGS84
	}
	a := d.Ellipsoid.SemiMajorAxis
	rf := d.Ellipsoid.InverseFlattening
	b := d.Ellipsoid.SemiMinorAxis
	if b == 0 {
		b = math.NaN()
	}
	if rf == 0 {
		rf = math.NaN()
	}
	def.Ellipsoid = deriveEllipsoid(a, b, rf, normalizeEllipsoidName(d.Ellipsoid.Name))
	def.Datum.A = def.Ellipsoid.A
	def.Datum.B = def.Ellipsoid.B
	def.Datum.Es = def.Ellipsoid.Es
	if d.PrimeMeridian != nil {
		def.FromGreenwich = d.PrimeMeridian.Longitude * d2r
	}
	return nil
}
