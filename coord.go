// Copyright (c) 2026 dev@aeronav.io. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.27
//

package fcord

import (
	"errors"
	"fmt"
)

//-------------------------------------------------------------------
// Frame
//-------------------------------------------------------------------

// Reference frame tag (0: ECEF Cartesian, 1: GPS, 2: ENU, 3: NED)
type Frame int

const (
	Cartesian Frame = iota
	GPS
	ENU
	NED
)

func (f Frame) String() string {
	switch f {
	case Cartesian:
		return "Cartesian"
	case GPS:
		return "GPS"
	case ENU:
		return "ENU"
	case NED:
		return "NED"
	default:
		return "UNKNOWN!"
	}
}

//-------------------------------------------------------------------
// Coord
//-------------------------------------------------------------------

// Coord is the common view of a coordinate in any frame. Vec returns
// the three named components in frame order; it is built fresh on each
// call and never stored.
type Coord interface {
	Frame() Frame
	Vec() [3]float64
}

// ErrFrameMismatch marks arithmetic between incompatible frames.
var ErrFrameMismatch = errors.New("frame mismatch")

// FrameError reports which two operand types could not be combined.
type FrameError struct {
	Op    string
	Left  Frame
	Right Frame
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("cannot %s %vCoord and %vCoord", e.Op, e.Left, e.Right)
}

func (e *FrameError) Unwrap() error {
	return ErrFrameMismatch
}

//-------------------------------------------------------------------
// Arithmetic dispatch
//-------------------------------------------------------------------

// Add returns a + b expressed in a's frame. Operands must share a frame
// or be mutually convertible (ENU and NED); every other pairing fails
// with a FrameError. Origin and yaw of the result follow a.
func Add(a, b Coord) (Coord, error) {
	switch p := a.(type) {
	case CartesianCoord:
		if q, ok := b.(CartesianCoord); ok {
			return p.Add(q), nil
		}
	case ENUCoord:
		switch q := b.(type) {
		case ENUCoord:
			return p.Add(q), nil
		case NEDCoord:
			return p.Add(q.ToENU()), nil
		}
	case NEDCoord:
		switch q := b.(type) {
		case NEDCoord:
			return p.Add(q), nil
		case ENUCoord:
			return p.Add(q.ToNED()), nil
		}
	case GPSCoord:
		// Geodetic points do not form a vector space.
	}
	return nil, &FrameError{Op: "add", Left: a.Frame(), Right: b.Frame()}
}

// Sub returns a - b expressed in a's frame, under the same pairing
// rules as Add.
func Sub(a, b Coord) (Coord, error) {
	switch p := a.(type) {
	case CartesianCoord:
		if q, ok := b.(CartesianCoord); ok {
			return p.Sub(q), nil
		}
	case ENUCoord:
		switch q := b.(type) {
		case ENUCoord:
			return p.Sub(q), nil
		case NEDCoord:
			return p.Sub(q.ToENU()), nil
		}
	case NEDCoord:
		switch q := b.(type) {
		case NEDCoord:
			return p.Sub(q), nil
		case ENUCoord:
			return p.Sub(q.ToNED()), nil
		}
	case GPSCoord:
		// Geodetic points do not form a vector space.
	}
	return nil, &FrameError{Op: "subtract", Left: a.Frame(), Right: b.Frame()}
}
