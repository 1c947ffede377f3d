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
	"gonum.org/v1/gonum/floats/scalar"
)

func TestL2Norm(t *testing.T) {
	assert.Equal(t, 0.0, L2Norm(NewCartesianCoord(0, 0, 0)))
	assert.True(t, scalar.EqualWithinAbs(L2Norm(NewCartesianCoord(1, 2, 2)), 3, 1e-12))
	assert.True(t, scalar.EqualWithinAbs(L2Norm(NewNEDCoord(3, 4, 0)), 5, 1e-12))
}

func TestHorizontalDistance(t *testing.T) {
	// only the first two components count
	assert.True(t, scalar.EqualWithinAbs(HorizontalDistance(NewENUCoord(3, 4, 999)), 5, 1e-12))
	assert.True(t, scalar.EqualWithinAbs(HorizontalDistance(NewENUCoord(3, 4, -999)), 5, 1e-12))
	assert.Equal(t, HorizontalDistance(NewNEDCoord(3, 4, 0)), HorizontalDistance(NewNEDCoord(3, 4, 123)))
}

func TestVerticalDistance(t *testing.T) {
	assert.Equal(t, 7.5, VerticalDistance(NewENUCoord(1, 2, 7.5)))
	assert.Equal(t, 7.5, VerticalDistance(NewNEDCoord(1, 2, -7.5)))
	assert.Equal(t, 0.0, VerticalDistance(NewCartesianCoord(9, 9, 0)))
}

func TestAngleHelpers(t *testing.T) {
	assert.InDelta(t, PI, ToRad(180), 1e-15)
	assert.InDelta(t, 180.0, ToDeg(PI), 1e-12)
	assert.Equal(t, 6.25, SQ(2.5))
}
