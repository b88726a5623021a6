package fov

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{name: "pair 4:3", input: "4:3", want: 4.0 / 3.0},
		{name: "pair 16:9", input: "16:9", want: 16.0 / 9.0},
		{name: "decimal ratio", input: "1.33", want: 1.33},
		{name: "decimal pair", input: "2.39:1", want: 2.39},
		{name: "tall pair", input: "9:16", want: 9.0 / 16.0},
		{name: "surrounding whitespace", input: " 16 : 9 ", want: 16.0 / 9.0},
		{name: "exponent notation", input: "1e1:5", want: 2},

		{name: "zero height", input: "4:0", wantErr: ErrZeroHeight},
		{name: "negative zero height", input: "4:-0", wantErr: ErrZeroHeight},
		{name: "zero height with zero width", input: "0:0", wantErr: ErrZeroHeight},

		{name: "three parts", input: "4:3:2", wantErr: ErrMalformedRatio},
		{name: "letters", input: "abc", wantErr: ErrMalformedRatio},
		{name: "empty", input: "", wantErr: ErrMalformedRatio},
		{name: "separator only", input: ":", wantErr: ErrMalformedRatio},
		{name: "non-numeric width", input: "a:3", wantErr: ErrMalformedRatio},
		{name: "non-numeric height", input: "4:b", wantErr: ErrMalformedRatio},
		{name: "wrong separator", input: "4/3", wantErr: ErrMalformedRatio},

		{name: "negative width", input: "-4:3", wantErr: ErrInvalidAspectRatio},
		{name: "negative height", input: "4:-3", wantErr: ErrInvalidAspectRatio},
		{name: "zero width", input: "0:3", wantErr: ErrInvalidAspectRatio},
		{name: "negative decimal", input: "-1.5", wantErr: ErrInvalidAspectRatio},
		{name: "zero decimal", input: "0", wantErr: ErrInvalidAspectRatio},
		{name: "infinite decimal", input: "inf", wantErr: ErrInvalidAspectRatio},
		{name: "NaN decimal", input: "NaN", wantErr: ErrInvalidAspectRatio},
		{name: "quotient overflows", input: "1e308:1e-308", wantErr: ErrInvalidAspectRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAspectRatio(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, AspectRatio{}, got)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Value(), 1e-12)
		})
	}
}

func TestParseAspectRatio_ErrorMessage(t *testing.T) {
	_, err := ParseAspectRatio("4:0")
	require.Error(t, err)
	assert.Equal(t, `aspect ratio "4:0": aspect ratio height is zero`, err.Error())

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, FieldAspectRatio, inputErr.Field)
	assert.Equal(t, "4:0", inputErr.Input)
}

func TestNewAspectRatio(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "square", value: 1},
		{name: "widescreen", value: 16.0 / 9.0},
		{name: "smallest positive", value: math.SmallestNonzeroFloat64},
		{name: "largest finite", value: math.MaxFloat64},
		{name: "zero", value: 0, wantErr: true},
		{name: "negative", value: -1.5, wantErr: true},
		{name: "positive infinity", value: math.Inf(1), wantErr: true},
		{name: "NaN", value: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAspectRatio(tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAspectRatio)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, got.Value())
		})
	}
}

func TestAspectRatio_Inverse(t *testing.T) {
	r, err := ParseAspectRatio("16:9")
	require.NoError(t, err)

	inv, err := r.Inverse()
	require.NoError(t, err)
	assert.InDelta(t, 9.0/16.0, inv.Value(), 1e-12)

	tiny, err := NewAspectRatio(math.SmallestNonzeroFloat64)
	require.NoError(t, err)
	_, err = tiny.Inverse()
	assert.ErrorIs(t, err, ErrInvalidAspectRatio)
}

func TestAspectRatio_String(t *testing.T) {
	r, err := ParseAspectRatio("2:1")
	require.NoError(t, err)
	assert.Equal(t, "2", r.String())

	r, err = ParseAspectRatio("1.85")
	require.NoError(t, err)
	assert.Equal(t, "1.85", r.String())
}
