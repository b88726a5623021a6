package fov

import (
	"math"
)

// MaxDegrees is the widest representable field of view
const MaxDegrees = 180.0

// Angle is a field of view in degrees, always in (0, 180]
type Angle struct {
	degrees float64
}

// NewAngle validates a raw number of degrees
func NewAngle(degrees float64) (Angle, error) {
	if !isValidFOV(degrees) {
		return Angle{}, inputError(FieldFOV, formatFloat(degrees), ErrInvalidFOV)
	}
	return Angle{degrees: degrees}, nil
}

// ParseAngle parses a field of view given in degrees (e.g., "90", "55.4")
func ParseAngle(text string) (Angle, error) {
	degrees, err := parseToken(text)
	if err != nil || !isValidFOV(degrees) {
		return Angle{}, inputError(FieldFOV, text, ErrInvalidFOV)
	}
	return Angle{degrees: degrees}, nil
}

// Degrees returns the angle in degrees
func (a Angle) Degrees() float64 {
	return a.degrees
}

// Radians returns the angle in radians
func (a Angle) Radians() float64 {
	return a.degrees / MaxDegrees * math.Pi
}

func (a Angle) String() string {
	return formatFloat(a.degrees)
}

func isValidFOV(degrees float64) bool {
	return isPositiveFinite(degrees) && degrees <= MaxDegrees
}
