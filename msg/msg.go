// Copyright (c) 2026 dev@aeronav.io. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

// Package msg holds the flat records exchanged with the host messaging
// framework. Field names and units are a fixed contract. The yaw field
// is optional: producers that predate it omit the field, so it is a
// pointer rather than a plain float.
package msg

// Ned is a North-East-Down displacement record in meters. Yaw in
// radians, nil when not included.
type Ned struct {
	N   float64  `json:"n"`
	E   float64  `json:"e"`
	D   float64  `json:"d"`
	Yaw *float64 `json:"yaw,omitempty"`
}

// Gps is a geodetic fix record. Lat and Lon in degrees, Alt in meters
// above the ellipsoid, Yaw in radians, nil when not included.
type Gps struct {
	Lat float64  `json:"lat"`
	Lon float64  `json:"lon"`
	Alt float64  `json:"alt"`
	Yaw *float64 `json:"yaw,omitempty"`
}
