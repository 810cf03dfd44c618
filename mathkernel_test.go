// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMsfnSphere(t *testing.T) {
	m := Msfn(math.Sin(0), math.Cos(0), 0)
	assert.InDelta(t, 1.0, m, 1e-9)
}

func TestTsfnPhi2RoundTrip(t *testing.T) {
	e := 0.0818191908426
	phi := 0.5
	ts := Tsfn(phi, math.Sin(phi), e)
	got, err := Phi2(e, ts)
	require.NoError(t, err)
	assert.InDelta(t, phi, got, 1e-9)
}

func TestPhi2Nonconvergent(t *testing.T) {
	_, err := Phi2(math.NaN(), 1)
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindNonconvergent, perr.Kind)
}

func TestQsfnSphereShortcut(t *testing.T) {
	q := Qsfn(0, 0.5)
	assert.InDelta(t, 1.0, q, 1e-12)
}

func TestMlfnInvMlfnRoundTrip(t *testing.T) {
	es := 0.00669438
	c := DeriveMeridianCoefficients(es)
	phi := 0.7
	arc := Mlfn(c, phi)
	got, err := InvMlfn(c, arc)
	require.NoError(t, err)
	assert.InDelta(t, phi, got, 1e-9)
}

func TestAuthSetAuthLatSphereIdentity(t *testing.T) {
	c := AuthSet(0)
	phi := 0.4
	assert.InDelta(t, phi, AuthLat(phi, c), 1e-9)
}

func TestAdjustLonWrap(t *testing.T) {
	assert.InDelta(t, 0, AdjustLon(twoPi, false), 1e-9)
	assert.InDelta(t, 0.1, AdjustLon(twoPi+0.1, false), 1e-6)
}

func TestAdjustLonOverSuppressesWrap(t *testing.T) {
	big := 4.0
	assert.Equal(t, big, AdjustLon(big, true))
}

func TestAdjustLat(t *testing.T) {
	assert.InDelta(t, -(halfPi - 0.1), AdjustLat(halfPi+0.1), 1e-9)
}

func TestAsinzClamps(t *testing.T) {
	assert.InDelta(t, halfPi, Asinz(2), 1e-9)
	assert.InDelta(t, -halfPi, Asinz(-2), 1e-9)
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3))
	assert.Equal(t, -1.0, Sign(-3))
	assert.Equal(t, -1.0, Sign(math.Copysign(0, -1)))
}
