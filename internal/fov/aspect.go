package fov

import (
	"math"
	"strconv"
	"strings"
)

// RatioSeparator splits the width and height of a "W:H" aspect ratio
const RatioSeparator = ":"

// AspectRatio is a viewport width divided by its height.
// A value obtained from NewAspectRatio or ParseAspectRatio is always positive and finite.
type AspectRatio struct {
	value float64
}

// NewAspectRatio validates a raw width/height quotient
func NewAspectRatio(value float64) (AspectRatio, error) {
	if !isPositiveFinite(value) {
		return AspectRatio{}, inputError(FieldAspectRatio, formatFloat(value), ErrInvalidAspectRatio)
	}
	return AspectRatio{value: value}, nil
}

// ParseAspectRatio parses a value that can be either:
// - A single decimal ratio (e.g., "1.33", "2.39")
// - A width and height pair (e.g., "4:3", "16:9")
//
// A pair with a zero height fails with ErrZeroHeight. A pair whose quotient is not
// positive (e.g., "-4:3") fails with ErrInvalidAspectRatio.
func ParseAspectRatio(text string) (AspectRatio, error) {
	parts := strings.Split(text, RatioSeparator)

	switch len(parts) {
	case 1:
		value, err := parseToken(parts[0])
		if err != nil {
			return AspectRatio{}, inputError(FieldAspectRatio, text, ErrMalformedRatio)
		}
		if !isPositiveFinite(value) {
			return AspectRatio{}, inputError(FieldAspectRatio, text, ErrInvalidAspectRatio)
		}
		return AspectRatio{value: value}, nil
	case 2:
		width, err := parseToken(parts[0])
		if err != nil {
			return AspectRatio{}, inputError(FieldAspectRatio, text, ErrMalformedRatio)
		}
		height, err := parseToken(parts[1])
		if err != nil {
			return AspectRatio{}, inputError(FieldAspectRatio, text, ErrMalformedRatio)
		}
		if height == 0 {
			return AspectRatio{}, inputError(FieldAspectRatio, text, ErrZeroHeight)
		}
		if !isPositiveFinite(width / height) {
			return AspectRatio{}, inputError(FieldAspectRatio, text, ErrInvalidAspectRatio)
		}
		return AspectRatio{value: width / height}, nil
	default:
		return AspectRatio{}, inputError(FieldAspectRatio, text, ErrMalformedRatio)
	}
}

// Value returns width divided by height
func (r AspectRatio) Value() float64 {
	return r.value
}

// Inverse returns height divided by width, which swaps the roles of the two axes.
// It fails only for subnormal ratios whose reciprocal overflows.
func (r AspectRatio) Inverse() (AspectRatio, error) {
	return NewAspectRatio(1 / r.value)
}

func (r AspectRatio) String() string {
	return formatFloat(r.value)
}

func parseToken(token string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(token), 64)
}

func isPositiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
