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
// CartesianCoord
//-------------------------------------------------------------------

// CartesianCoord is an ECEF point in meters. It carries no frame
// metadata; arithmetic is defined against CartesianCoord only.
type CartesianCoord struct {
	X float64
	Y float64
	Z float64
}

func NewCartesianCoord(x, y, z float64) CartesianCoord {
	return CartesianCoord{
		X: x,
		Y: y,
		Z: z,
	}
}

func (p CartesianCoord) Frame() Frame {
	return Cartesian
}

func (p CartesianCoord) Vec() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

func (p CartesianCoord) Add(q CartesianCoord) CartesianCoord {
	return CartesianCoord{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func (p CartesianCoord) Sub(q CartesianCoord) CartesianCoord {
	return CartesianCoord{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// ToGPS converts the ECEF point to geodetic coordinates on the WGS84
// ellipsoid (closed form, no iteration). Degrees out, yaw unset.
func (p CartesianCoord) ToGPS() GPSCoord {
	// In case of origin
	if p.X == 0 && p.Y == 0 && p.Z == 0 {
		return GPSCoord{Lat: 0, Lon: 0, Alt: -Re, Yaw: math.NaN()}
	}

	// Parameters for coordinate transformation
	h := Re*Re - Be*Be
	pr := math.Sqrt(p.X*p.X + p.Y*p.Y)
	t := math.Atan2(p.Z*Re, pr*Be)
	sint := math.Sin(t)
	cost := math.Cos(t)

	// Conversion to latitude and longitude
	lat := math.Atan2(p.Z+h/Be*sint*sint*sint, pr-h/Re*cost*cost*cost)
	lon := math.Atan2(p.Y, p.X)
	n := Re / math.Sqrt(1-E2*SQ(math.Sin(lat))) // Radius of curvature in the prime vertical
	alt := pr/math.Cos(lat) - n
	return GPSCoord{Lat: ToDeg(lat), Lon: ToDeg(lon), Alt: alt, Yaw: math.NaN()}
}

// Convert to string
func (p CartesianCoord) String() string {
	return fmt.Sprintf("%.4f %.4f %.4f", p.X, p.Y, p.Z)
}
