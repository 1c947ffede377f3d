// Copyright (c) 2026 dev@aeronav.io. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

package fcord

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

//-------------------------------------------------------------------
// Local tangent plane
//-------------------------------------------------------------------

// enuRotation returns the ECEF-to-ENU rotation matrix at the given
// geodetic latitude and longitude [rad]. Its transpose rotates a local
// vector back into an ECEF offset.
func enuRotation(lat, lon float64) *mat.Dense {
	s1, c1 := math.Sincos(lon)
	s2, c2 := math.Sincos(lat)
	return mat.NewDense(3, 3, []float64{
		-s1, c1, 0,
		-c1 * s2, -s1 * s2, c2,
		c1 * c2, s1 * c2, s2,
	})
}

// localToGeodetic resolves a NED displacement at origin into absolute
// geodetic coordinates: rotate the displacement into an ECEF offset at
// the origin, add the origin's ECEF position, convert back. Degrees and
// meters out.
func localToGeodetic(n, e, d float64, origin GPSCoord) (lat, lon, alt float64) {
	r := enuRotation(ToRad(origin.Lat), ToRad(origin.Lon))
	var off mat.VecDense
	off.MulVec(r.T(), mat.NewVecDense(3, []float64{e, n, -d}))

	base := origin.ECEF()
	p := CartesianCoord{
		X: base.X + off.AtVec(0),
		Y: base.Y + off.AtVec(1),
		Z: base.Z + off.AtVec(2),
	}
	g := p.ToGPS()
	return g.Lat, g.Lon, g.Alt
}

// geodeticToLocal is the inverse projection: the NED displacement of p
// relative to origin, from the rotated ECEF difference.
func geodeticToLocal(p, origin GPSCoord) (n, e, d float64) {
	base := origin.ECEF()
	pt := p.ECEF()

	r := enuRotation(ToRad(origin.Lat), ToRad(origin.Lon))
	var enu mat.VecDense
	enu.MulVec(r, mat.NewVecDense(3, []float64{pt.X - base.X, pt.Y - base.Y, pt.Z - base.Z}))
	return enu.AtVec(1), enu.AtVec(0), -enu.AtVec(2)
}
