// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySeededWGS84(t *testing.T) {
	def, ok := DefaultRegistry.Get("EPSG", "4326")
	require.True(t, ok)
	assert.Equal(t, "longlat", def.Proj)
}

func TestRegistrySeededWebMercatorAlias(t *testing.T) {
	def, ok := DefaultRegistry.Get("epsg", "900913")
	require.True(t, ok)
	assert.Equal(t, "merc", def.Proj)
}

func TestRegistrySeededUTMZones(t *testing.T) {
	north, ok := DefaultRegistry.Get("EPSG", "32633")
	require.True(t, ok)
	assert.Equal(t, 33, north.Zone)
	assert.False(t, north.SouthZone)

	south, ok := DefaultRegistry.Get("EPSG", "32733")
	require.True(t, ok)
	assert.True(t, south.SouthZone)
}

func TestRegistrySetGetRemove(t *testing.T) {
	r := NewRegistry()
	def := mustParse("+proj=longlat +ellps=WGS84")
	r.Set("LOCAL", "1", def)
	assert.True(t, r.Has("local", "1"))
	got, ok := r.Get("LOCAL", "1")
	require.True(t, ok)
	assert.Same(t, def, got)
	r.Remove("LOCAL", "1")
	assert.False(t, r.Has("LOCAL", "1"))
}

func TestRegistryAliasUnknownBase(t *testing.T) {
	r := NewRegistry()
	err := r.Alias("LOCAL", "404", "LOCAL", "405")
	require.Error(t, err)
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry()
	r.Reset()
	assert.True(t, r.Has("EPSG", "4326"))
}

func TestLookupUnknownCode(t *testing.T) {
	_, err := Lookup("not-authority-code")
	require.Error(t, err)
	_, err = Lookup("EPSG:999999")
	require.Error(t, err)
}

func TestLookupKnownCode(t *testing.T) {
	def, err := Lookup("EPSG:3857")
	require.NoError(t, err)
	assert.Equal(t, "merc", def.Proj)
}
