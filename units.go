// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

// unitDef names a linear unit and its conversion factor to meters.
// Grounded on samlecuyer-projectron/defs.go's units_list.
type unitDef struct {
	toMeter float64
	name    string
}

var unitTable = map[string]unitDef{
	"km":     {1000, "Kilometer"},
	"m":      {1.0, "Meter"},
	"dm":     {0.1, "Decimeter"},
	"cm":     {0.01, "Centimeter"},
	"mm":     {0.001, "Millimeter"},
	"kmi":    {1852.0, "International Nautical Mile"},
	"in":     {0.0254, "International Inch"},
	"ft":     {0.3048, "International Foot"},
	"yd":     {0.9144, "International Yard"},
	"mi":     {1609.344, "International Statute Mile"},
	"fath":   {1.8288, "International Fathom"},
	"ch":     {20.1168, "International Chain"},
	"link":   {0.201168, "International Link"},
	"us-in":  {0.0254000508, "U.S. Surveyor's Inch"},
	"us-ft":  {0.304800609601219, "U.S. Surveyor's Foot"},
	"us-yd":  {0.914401828803658, "U.S. Surveyor's Yard"},
	"us-ch":  {20.11684023368047, "U.S. Surveyor's Chain"},
	"us-mi":  {1609.347218694437, "U.S. Surveyor's Statute Mile"},
	"ind-yd": {0.91439523, "Indian Yard"},
	"ind-ft": {0.30479841, "Indian Foot"},
	"ind-ch": {20.11669506, "Indian Chain"},
}

// lookupUnit returns the conversion-to-meters factor for a named unit.
func lookupUnit(name string) (float64, bool) {
	u, ok := unitTable[name]
	if !ok {
		return 0, false
	}
	return u.toMeter, true
}
