// Copyright (c) 2026 dev@aeronav.io. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

package fcord

const (
	PI = 3.1415926535897932  // Pi
	Re = 6378137.0           // WGS84 semi-major axis [m]
	Fe = 1.0 / 298.257223563 // WGS84 flattening
	Be = Re * (1 - Fe)       // WGS84 semi-minor axis [m]

	// Square of the first eccentricity
	E2 = (Re*Re - Be*Be) / (Re * Re)
)
