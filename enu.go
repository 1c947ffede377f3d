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
// ENUCoord
//-------------------------------------------------------------------

// ENUCoord is an East-North-Up displacement in meters. Yaw and Origin
// are optional metadata riding along with the vector: Origin is a copy
// of the GPS point the local frame is anchored at (all-NaN when unset),
// and neither field takes part in arithmetic or norms. Arithmetic
// results keep the left operand's metadata.
type ENUCoord struct {
	E      float64
	N      float64
	U      float64
	Yaw    float64
	Origin GPSCoord
}

func NewENUCoord(e, n, u float64) ENUCoord {
	return ENUCoord{
		E:      e,
		N:      n,
		U:      u,
		Yaw:    math.NaN(),
		Origin: noOrigin(),
	}
}

func (p ENUCoord) Frame() Frame {
	return ENU
}

func (p ENUCoord) Vec() [3]float64 {
	return [3]float64{p.E, p.N, p.U}
}

func (p ENUCoord) HasYaw() bool {
	return !math.IsNaN(p.Yaw)
}

func (p ENUCoord) HasOrigin() bool {
	return !math.IsNaN(p.Origin.Lat)
}

// WithYaw returns a copy with the heading set.
func (p ENUCoord) WithYaw(yaw float64) ENUCoord {
	p.Yaw = yaw
	return p
}

// WithOrigin returns a copy anchored at origin.
func (p ENUCoord) WithOrigin(origin GPSCoord) ENUCoord {
	p.Origin = origin
	return p
}

// ToNED permutes the axes into North-East-Down. Exact inverse of
// NEDCoord.ToENU; yaw and origin are carried over.
func (p ENUCoord) ToNED() NEDCoord {
	return NEDCoord{N: p.N, E: p.E, D: -p.U, Yaw: p.Yaw, Origin: p.Origin}
}

func (p ENUCoord) Add(q ENUCoord) ENUCoord {
	return ENUCoord{E: p.E + q.E, N: p.N + q.N, U: p.U + q.U, Yaw: p.Yaw, Origin: p.Origin}
}

func (p ENUCoord) Sub(q ENUCoord) ENUCoord {
	return ENUCoord{E: p.E - q.E, N: p.N - q.N, U: p.U - q.U, Yaw: p.Yaw, Origin: p.Origin}
}

// ToGPS resolves the displacement into an absolute geodetic point using
// the local tangent plane at origin. Accurate only while the
// displacement is small against the Earth's radius.
func (p ENUCoord) ToGPS(origin GPSCoord) GPSCoord {
	lat, lon, alt := localToGeodetic(p.N, p.E, -p.U, origin)
	return GPSCoord{Lat: lat, Lon: lon, Alt: alt, Yaw: p.Yaw}
}

// Azimuth returns the bearing of the displacement from north [rad].
func (p ENUCoord) Azimuth() float64 {
	return math.Atan2(p.E, p.N)
}

// Elevation returns the angle of the displacement above the horizontal
// plane [rad].
func (p ENUCoord) Elevation() float64 {
	return math.Atan2(p.U, math.Sqrt(p.E*p.E+p.N*p.N))
}

// Convert to string
func (p ENUCoord) String() string {
	return fmt.Sprintf("%.4f %.4f %.4f", p.E, p.N, p.U)
}
