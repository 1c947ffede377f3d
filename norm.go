// Copyright (c) 2026 dev@aeronav.io. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

package fcord

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// L2Norm returns the Euclidean norm of the coordinate's vector view.
func L2Norm(c Coord) float64 {
	v := c.Vec()
	return floats.Norm(v[:], 2)
}

// HorizontalDistance returns the magnitude of the first two vector
// components. Meaningful for the local frames, where they span the
// horizontal plane; the third component is ignored.
func HorizontalDistance(c Coord) float64 {
	v := c.Vec()
	return floats.Norm(v[:2], 2)
}

// VerticalDistance returns the absolute value of the third vector
// component.
func VerticalDistance(c Coord) float64 {
	v := c.Vec()
	return math.Abs(v[2])
}
