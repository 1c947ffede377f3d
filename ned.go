// Copyright (c) 2026 dev@aeronav.io. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

package fcord

import (
	"fmt"
	"math"
)

//-------------------------------------------------------------------
// NEDCoord
//-------------------------------------------------------------------

// NEDCoord is a North-East-Down displacement in meters. It mirrors
// ENUCoord with permuted axes and a negated vertical; see ENUCoord for
// the yaw/origin conventions.
type NEDCoord struct {
	N      float64
	E      float64
	D      float64
	Yaw    float64
	Origin GPSCoord
}

func NewNEDCoord(n, e, d float64) NEDCoord {
	return NEDCoord{
		N:      n,
		E:      e,
		D:      d,
		Yaw:    math.NaN(),
		Origin: noOrigin(),
	}
}

func (p NEDCoord) Frame() Frame {
	return NED
}

func (p NEDCoord) Vec() [3]float64 {
	return [3]float64{p.N, p.E, p.D}
}

func (p NEDCoord) HasYaw() bool {
	return !math.IsNaN(p.Yaw)
}

func (p NEDCoord) HasOrigin() bool {
	return !math.IsNaN(p.Origin.Lat)
}

// WithYaw returns a copy with the heading set.
func (p NEDCoord) WithYaw(yaw float64) NEDCoord {
	p.Yaw = yaw
	return p
}

// WithOrigin returns a copy anchored at origin.
func (p NEDCoord) WithOrigin(origin GPSCoord) NEDCoord {
	p.Origin = origin
	return p
}

// ToENU permutes the axes into East-North-Up. Exact inverse of
// ENUCoord.ToNED; yaw and origin are carried over.
func (p NEDCoord) ToENU() ENUCoord {
	return ENUCoord{E: p.E, N: p.N, U: -p.D, Yaw: p.Yaw, Origin: p.Origin}
}

func (p NEDCoord) Add(q NEDCoord) NEDCoord {
	return NEDCoord{N: p.N + q.N, E: p.E + q.E, D: p.D + q.D, Yaw: p.Yaw, Origin: p.Origin}
}

func (p NEDCoord) Sub(q NEDCoord) NEDCoord {
	return NEDCoord{N: p.N - q.N, E: p.E - q.E, D: p.D - q.D, Yaw: p.Yaw, Origin: p.Origin}
}

// ToGPS resolves the displacement into an absolute geodetic point using
// the local tangent plane at origin. Accurate only while the
// displacement is small against the Earth's radius.
func (p NEDCoord) ToGPS(origin GPSCoord) GPSCoord {
	lat, lon, alt := localToGeodetic(p.N, p.E, p.D, origin)
	return GPSCoord{Lat: lat, Lon: lon, Alt: alt, Yaw: p.Yaw}
}

// Azimuth returns the bearing of the displacement from north [rad].
func (p NEDCoord) Azimuth() float64 {
	return math.Atan2(p.E, p.N)
}

// Elevation returns the angle of the displacement above the horizontal
// plane [rad].
func (p NEDCoord) Elevation() float64 {
	return math.Atan2(-p.D, math.Sqrt(p.E*p.E+p.N*p.N))
}

// Convert to string
func (p NEDCoord) String() string {
	return fmt.Sprintf("%.4f %.4f %.4f", p.N, p.E, p.D)
}
