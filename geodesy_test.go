// Copyright (c) 2026 dev@aeronav.io. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

package fcord

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestToGPSZeroDisplacement(t *testing.T) {
	origin := NewGPSCoord(63.07646, 21.62397, 28.5)
	got := NewNEDCoord(0, 0, 0).ToGPS(origin)
	assert.InDelta(t, origin.Lat, got.Lat, 1e-7)
	assert.InDelta(t, origin.Lon, got.Lon, 1e-7)
	assert.InDelta(t, origin.Alt, got.Alt, 1e-3)
}

func TestTangentPlaneRoundTrip(t *testing.T) {
	origin := NewGPSCoord(63.07646, 21.62397, 28.5)
	cases := []NEDCoord{
		NewNEDCoord(1200.5, -800.25, 35),
		NewNEDCoord(-5000, 3000, -120),
		NewNEDCoord(10, 10, 10),
	}
	for _, ned := range cases {
		back := ned.ToGPS(origin).ToNED(origin)
		assert.InDelta(t, ned.N, back.N, 1e-2)
		assert.InDelta(t, ned.E, back.E, 1e-2)
		assert.InDelta(t, ned.D, back.D, 1e-2)
	}
}

func TestNorthDisplacementMovesNorth(t *testing.T) {
	origin := NewGPSCoord(63.07646, 21.62397, 28.5)

	north := NewNEDCoord(1000, 0, 0).ToGPS(origin)
	assert.Greater(t, north.Lat, origin.Lat)
	assert.InDelta(t, origin.Lon, north.Lon, 1e-6)

	east := NewNEDCoord(0, 1000, 0).ToGPS(origin)
	assert.Greater(t, east.Lon, origin.Lon)

	// down is negative altitude
	down := NewNEDCoord(0, 0, 100).ToGPS(origin)
	assert.InDelta(t, origin.Alt-100, down.Alt, 1e-2)

	up := NewNEDCoord(0, 0, -100).ToGPS(origin)
	assert.InDelta(t, origin.Alt+100, up.Alt, 1e-2)
}

func TestENUAndNEDToGPSAgree(t *testing.T) {
	origin := NewGPSCoord(35.73101206, 139.7396917, 80.33)
	enu := NewENUCoord(250, -300, 12.5)

	a := enu.ToGPS(origin)
	b := enu.ToNED().ToGPS(origin)
	if diff := cmp.Diff(a, b, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("ENU and NED disagree (-enu +ned):\n%s", diff)
	}
}

func TestGPSToNEDInverse(t *testing.T) {
	origin := NewGPSCoord(35.73101206, 139.7396917, 80.33)
	p := NewGPSCoord(35.74101206, 139.7296917, 120.0)

	ned := p.ToNED(origin)
	assert.True(t, ned.HasOrigin())
	assert.Greater(t, ned.N, 0.0)  // p lies north of the origin
	assert.Less(t, ned.E, 0.0)     // and west of it
	assert.Less(t, ned.D, 0.0)     // and above it

	back := ned.ToGPS(origin)
	assert.InDelta(t, p.Lat, back.Lat, 1e-7)
	assert.InDelta(t, p.Lon, back.Lon, 1e-7)
	assert.InDelta(t, p.Alt, back.Alt, 1e-2)
}

func TestGPSToENUMatchesToNED(t *testing.T) {
	origin := NewGPSCoord(63.07646, 21.62397, 28.5)
	p := NewGPSCoord(63.08, 21.63, 50)

	enu := p.ToENU(origin)
	ned := p.ToNED(origin)
	assert.Equal(t, ned.N, enu.N)
	assert.Equal(t, ned.E, enu.E)
	assert.Equal(t, -ned.D, enu.U)
}
