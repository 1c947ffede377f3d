// Copyright (c) 2026 dev@aeronav.io. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

package fcord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartesianAddSub(t *testing.T) {
	a := NewCartesianCoord(1, 2, 3)
	b := NewCartesianCoord(10, -20, 30)

	assert.Equal(t, NewCartesianCoord(11, -18, 33), a.Add(b))
	assert.Equal(t, NewCartesianCoord(-9, 22, -27), a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
}

func TestCartesianToGPSRoundTrip(t *testing.T) {
	cases := []GPSCoord{
		NewGPSCoord(35.73101206, 139.7396917, 80.33),
		NewGPSCoord(-45.5, 170.25, 1200.0),
		NewGPSCoord(0.0, -90.0, 0.0),
		NewGPSCoord(63.07646, 21.62397, 28.5),
	}
	for _, want := range cases {
		got := want.ECEF().ToGPS()
		assert.InDelta(t, want.Lat, got.Lat, 1e-7)
		assert.InDelta(t, want.Lon, got.Lon, 1e-7)
		assert.InDelta(t, want.Alt, got.Alt, 1e-3)
	}
}

func TestCartesianToGPSOrigin(t *testing.T) {
	g := NewCartesianCoord(0, 0, 0).ToGPS()
	assert.Equal(t, 0.0, g.Lat)
	assert.Equal(t, 0.0, g.Lon)
	assert.Equal(t, -Re, g.Alt)
}

func TestCartesianString(t *testing.T) {
	assert.Equal(t, "1.0000 -2.5000 3.0000", NewCartesianCoord(1, -2.5, 3).String())
}
