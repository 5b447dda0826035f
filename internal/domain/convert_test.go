package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCToF(t *testing.T) {
	tests := []struct {
		name     string
		celsius  float64
		expected float64
	}{
		{"freezing", 0, 32},
		{"boiling", 100, 212},
		{"body temperature", 37, 98.6},
		{"negative", -40, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CToF(tt.celsius), 1e-9)
		})
	}
}

func TestFToC_InvertsCToF(t *testing.T) {
	for _, c := range []float64{-40, -17.5, 0, 12.34, 37, 100} {
		assert.InDelta(t, c, FToC(CToF(c)), 1e-9)
	}
}

func TestPressureConversions(t *testing.T) {
	assert.InDelta(t, 1013.25*0.750062, HPaToMmHg(1013.25), 1e-9)
	assert.InDelta(t, 0.0, HPaToMmHg(0), 1e-9)
	assert.InDelta(t, 760*0.03937, MmHgToInHg(760), 1e-9)
}

func TestLengthAndSpeedConversions(t *testing.T) {
	assert.InDelta(t, 25.4*0.03937008, MmToInches(25.4), 1e-9)
	assert.InDelta(t, 100*0.62137119, KmhToMph(100), 1e-9)
	assert.InDelta(t, 10000*0.00062137, MetersToMiles(10000), 1e-9)
	assert.InDelta(t, 95*3.2808399, MetersToFeet(95), 1e-9)
	assert.InDelta(t, 289.0*0.0006213712, StationDistanceMiles(289.0), 1e-9)
}

func TestCompassText(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected string
	}{
		{"due north", 0, "north"},
		{"rounds up to north east", 44, "north east"},
		{"east", 90, "east"},
		{"south east", 135, "south east"},
		{"south", 180, "south"},
		{"south west", 225, "south west"},
		{"west", 270, "west"},
		{"north west", 315, "north west"},
		{"full circle wraps", 360, "north"},
		{"rounds down to north", 22, "north"},
		{"rounds up past north", 338, "north"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompassText(tt.deg))
		})
	}
}

func TestUVRisk(t *testing.T) {
	tests := []struct {
		uvi      float64
		expected string
	}{
		{0, "low"},
		{2.9, "low"},
		{3, "moderate"},
		{5, "moderate"},
		{6.5, "high"},
		{8, "very high"},
		{10, "very high"},
		{11, "extreme"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, UVRisk(tt.uvi), "uvi=%v", tt.uvi)
	}
}
