// Copyright (c) 2026 dev@aeronav.io. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

package fcord

import (
	"github.com/aeronav/fcord/msg"
)

//-------------------------------------------------------------------
// Message adapters
//-------------------------------------------------------------------

// ToMessage copies the displacement into its wire record field for
// field. A NaN yaw is written as-is so the sentinel survives the round
// trip; the origin is metadata and does not travel.
func (p NEDCoord) ToMessage() msg.Ned {
	yaw := p.Yaw
	return msg.Ned{N: p.N, E: p.E, D: p.D, Yaw: &yaw}
}

// ToMessage copies the fix into its wire record field for field.
func (p GPSCoord) ToMessage() msg.Gps {
	yaw := p.Yaw
	return msg.Gps{Lat: p.Lat, Lon: p.Lon, Alt: p.Alt, Yaw: &yaw}
}

// NEDFromMessage builds a NEDCoord from the wire record. A record
// without a yaw yields the NaN sentinel, never an error. Chain
// WithOrigin to anchor the result.
func NEDFromMessage(m msg.Ned) NEDCoord {
	c := NewNEDCoord(m.N, m.E, m.D)
	if m.Yaw != nil {
		c.Yaw = *m.Yaw
	}
	return c
}

// GPSFromMessage builds a GPSCoord from the wire record. A record
// without a yaw yields the NaN sentinel, never an error.
func GPSFromMessage(m msg.Gps) GPSCoord {
	c := NewGPSCoord(m.Lat, m.Lon, m.Alt)
	if m.Yaw != nil {
		c.Yaw = *m.Yaw
	}
	return c
}
