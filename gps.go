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
	"strconv"
	"strings"
)

//-------------------------------------------------------------------
// GPSCoord
//-------------------------------------------------------------------

// GPSCoord is a geodetic point on the WGS84 ellipsoid. Lat and Lon in
// degrees, Alt in meters above the ellipsoid, Yaw in radians. A NaN yaw
// means no heading is attached; the sentinel passes through conversions
// and message adapters untouched. Inputs are taken as given, out of
// range latitude or longitude is not clamped or wrapped.
type GPSCoord struct {
	Lat float64
	Lon float64
	Alt float64
	Yaw float64
}

func NewGPSCoord(lat, lon, alt float64) GPSCoord {
	return GPSCoord{
		Lat: lat,
		Lon: lon,
		Alt: alt,
		Yaw: math.NaN(),
	}
}

// noOrigin is the sentinel for a displacement without an anchor point.
func noOrigin() GPSCoord {
	return GPSCoord{Lat: math.NaN(), Lon: math.NaN(), Alt: math.NaN(), Yaw: math.NaN()}
}

func (p GPSCoord) Frame() Frame {
	return GPS
}

func (p GPSCoord) Vec() [3]float64 {
	return [3]float64{p.Lat, p.Lon, p.Alt}
}

func (p GPSCoord) HasYaw() bool {
	return !math.IsNaN(p.Yaw)
}

// WithYaw returns a copy with the heading set.
func (p GPSCoord) WithYaw(yaw float64) GPSCoord {
	p.Yaw = yaw
	return p
}

// ECEF converts the geodetic point to Earth-centered Cartesian
// coordinates on the WGS84 ellipsoid.
func (p GPSCoord) ECEF() CartesianCoord {
	latRad := ToRad(p.Lat)
	lonRad := ToRad(p.Lon)

	n := Re / math.Sqrt(1-E2*SQ(math.Sin(latRad)))
	return CartesianCoord{
		X: (n + p.Alt) * math.Cos(latRad) * math.Cos(lonRad),
		Y: (n + p.Alt) * math.Cos(latRad) * math.Sin(lonRad),
		Z: (n*(1-E2) + p.Alt) * math.Sin(latRad),
	}
}

// Distance returns the straight-line distance to q in meters, measured
// in ECEF space. Not a great-circle distance.
func (p GPSCoord) Distance(q GPSCoord) float64 {
	return L2Norm(p.ECEF().Sub(q.ECEF()))
}

// ToNED returns the displacement of p relative to origin in the local
// tangent plane at origin. The result is anchored at origin and keeps
// p's yaw.
func (p GPSCoord) ToNED(origin GPSCoord) NEDCoord {
	n, e, d := geodeticToLocal(p, origin)
	return NEDCoord{N: n, E: e, D: d, Yaw: p.Yaw, Origin: origin}
}

// ToENU is ToNED with the axes permuted into East-North-Up.
func (p GPSCoord) ToENU(origin GPSCoord) ENUCoord {
	n, e, d := geodeticToLocal(p, origin)
	return ENUCoord{E: e, N: n, U: -d, Yaw: p.Yaw, Origin: origin}
}

// Read from string ("lat lon alt" in degrees and meters)
func (p *GPSCoord) Set(s string) error {
	f := strings.Fields(s)
	if len(f) != 3 {
		return fmt.Errorf("expected \"lat lon alt\", got %q", s)
	}
	var err error
	p.Lat, err = strconv.ParseFloat(f[0], 64)
	if err != nil {
		return err
	}
	p.Lon, err = strconv.ParseFloat(f[1], 64)
	if err != nil {
		return err
	}
	p.Alt, err = strconv.ParseFloat(f[2], 64)
	if err != nil {
		return err
	}
	p.Yaw = math.NaN()
	return nil
}

// Convert to string
func (p GPSCoord) String() string {
	return fmt.Sprintf("%.8f %.8f %.4f", p.Lat, p.Lon, p.Alt)
}
