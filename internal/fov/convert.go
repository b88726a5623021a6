// Package fov converts between horizontal and vertical field-of-view angles of a
// rectangular viewport with a known aspect ratio.
//
// For a pinhole camera both angles share the same focal distance, so with r = width/height:
//
//	vertical   = 2 × atan(tan(horizontal / 2) / r)
//	horizontal = 2 × atan(tan(vertical / 2) × r)
package fov

import (
	"math"
)

// Direction selects which axis a conversion produces
type Direction int

const (
	// ToVertical computes a vertical FOV from a horizontal one
	ToVertical Direction = iota + 1

	// ToHorizontal computes a horizontal FOV from a vertical one
	ToHorizontal
)

func (d Direction) String() string {
	switch d {
	case ToVertical:
		return "vertical"
	case ToHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// DirectionFromFlags resolves the mutually exclusive vertical and horizontal selectors
func DirectionFromFlags(vertical, horizontal bool) (Direction, error) {
	switch {
	case vertical && horizontal:
		return 0, ErrConflictingDirection
	case vertical:
		return ToVertical, nil
	case horizontal:
		return ToHorizontal, nil
	default:
		return 0, ErrMissingDirection
	}
}

// Convert produces the complementary angle for the given direction
func Convert(d Direction, ratio AspectRatio, angle Angle) (Angle, error) {
	switch d {
	case ToVertical:
		return VerticalFromHorizontal(ratio, angle)
	case ToHorizontal:
		return HorizontalFromVertical(ratio, angle)
	default:
		return Angle{}, ErrMissingDirection
	}
}

// VerticalFromHorizontal calculates the vertical field of view.
// Formula: vfov = 2 × atan(tan(hfov / 2) / ratio)
func VerticalFromHorizontal(ratio AspectRatio, hfov Angle) (Angle, error) {
	return complementary(math.Tan(hfov.Radians()/2) / ratio.value)
}

// HorizontalFromVertical calculates the horizontal field of view.
// Formula: hfov = 2 × atan(tan(vfov / 2) × ratio)
func HorizontalFromVertical(ratio AspectRatio, vfov Angle) (Angle, error) {
	return complementary(math.Tan(vfov.Radians()/2) * ratio.value)
}

// complementary turns the scaled half-angle tangent back into a full angle in degrees.
// Extreme ratios can underflow the tangent to zero or produce NaN, both rejected here.
// Dividing by Pi first keeps atan(+Inf) at exactly 180 degrees.
func complementary(halfTan float64) (Angle, error) {
	degrees := math.Atan(halfTan) / math.Pi * 360
	if !isValidFOV(degrees) {
		return Angle{}, inputError(FieldResult, formatFloat(degrees), ErrGeometricOverflow)
	}
	return Angle{degrees: degrees}, nil
}
