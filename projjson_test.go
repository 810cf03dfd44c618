// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mercatorPROJJSON = `{
  "type": "ProjectedCRS",
  "name": "WGS 84 / Pseudo-Mercator",
  "base_crs": {
    "type": "GeographicCRS",
    "name": "WGS 84",
    "datum": {
      "type": "GeodeticReferenceFrame",
      "name": "World Geodetic System 1984",
      "ellipsoid": {
        "name": "WGS 84",
        "semi_major_axis": 6378137,
        "inverse_flattening": 298.257223563
      }
    }
  },
  "conversion": {
    "name": "Popular Visualisation Pseudo-Mercator",
    "method": {"name": "Popular Visualisation Pseudo Mercator"},
    "parameters": [
      {"name": "Latitude of natural origin", "value": 0},
      {"name": "Longitude of natural origin", "value": 0},
      {"name": "False easting", "value": 0},
      {"name": "False northing", "value": 0}
    ]
  },
  "id": {"authority": "EPSG", "code": 3857}
}`

func TestParsePROJJSONProjected(t *testing.T) {
	def, err := ParsePROJJSON([]byte(mercatorPROJJSON))
	require.NoError(t, err)
	assert.Equal(t, "merc", def.Proj)
	assert.InDelta(t, 6378137.0, def.Ellipsoid.A, 1e-3)
	assert.Equal(t, "EPSG:3857", def.Code)
}

func TestParsePROJJSONGeographic(t *testing.T) {
	doc := `{"type":"GeographicCRS","name":"WGS 84","datum":{"type":"GeodeticReferenceFrame","name":"World Geodetic System 1984","ellipsoid":{"name":"WGS 84","semi_major_axis":6378137,"inverse_flattening":298.257223563}}}`
	def, err := ParsePROJJSON([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "longlat", def.Proj)
	assert.Equal(t, DatumWGS84, def.Datum.Type)
}

func TestParsePROJJSONUnknownType(t *testing.T) {
	_, err := ParsePROJJSON([]byte(`{"type":"VerticalCRS","name":"x"}`))
	require.Error(t, err)
}

func TestParsePROJJSONMalformed(t *testing.T) {
	_, err := ParsePROJJSON([]byte(`not json`))
	require.Error(t, err)
}

func TestToPROJJSONRoundTrips(t *testing.T) {
	def, err := ParseProjString("+proj=merc +ellps=WGS84")
	require.NoError(t, err)
	data, err := ToPROJJSON(def)
	require.NoError(t, err)
	reparsed, err := ParsePROJJSON(data)
	require.NoError(t, err)
	assert.Equal(t, def.Proj, reparsed.Proj)
}
