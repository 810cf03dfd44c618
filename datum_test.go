// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatumEqualSameType(t *testing.T) {
	wgs84 := Datum{Type: DatumWGS84, A: 6378137, Es: 0.00669438}
	grs80 := Datum{Type: DatumWGS84, A: 6378137, Es: 0.0066943800229}
	assert.True(t, wgs84.Equal(grs80))
}

func TestDatumEqualDifferentType(t *testing.T) {
	a := Datum{Type: DatumWGS84}
	b := Datum{Type: DatumNone}
	assert.False(t, a.Equal(b))
}

func TestDatumEqualParams(t *testing.T) {
	a := Datum{Type: Datum3Param, A: 1, Params: []float64{1, 2, 3}}
	b := Datum{Type: Datum3Param, A: 1, Params: []float64{1, 2, 3}}
	c := Datum{Type: Datum3Param, A: 1, Params: []float64{1, 2, 4}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestParseTowgs84ThreeParam(t *testing.T) {
	p, kind, err := parseTowgs84("1,2,3")
	require.NoError(t, err)
	assert.Equal(t, Datum3Param, kind)
	assert.Equal(t, []float64{1, 2, 3}, p)
}

func TestParseTowgs84SevenParam(t *testing.T) {
	p, kind, err := parseTowgs84("1,2,3,4,5,6,7")
	require.NoError(t, err)
	assert.Equal(t, Datum7Param, kind)
	assert.InDelta(t, 4*sec2rad, p[3], 1e-15)
	assert.InDelta(t, 1+7.0/1e6, p[6], 1e-12)
}

func TestParseTowgs84BadCount(t *testing.T) {
	_, _, err := parseTowgs84("1,2")
	require.Error(t, err)
}
