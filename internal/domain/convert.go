package domain

import "math"

// Unit conversions used at the display edge. Factors match the upstream
// providers' documentation; rounding is left to the formatters.

// CToF converts Celsius to Fahrenheit.
func CToF(c float64) float64 { return c*9/5 + 32 }

// FToC converts Fahrenheit to Celsius.
func FToC(f float64) float64 { return (f - 32) * 5 / 9 }

// HPaToMmHg converts hectopascals to millimeters of mercury.
func HPaToMmHg(hpa float64) float64 { return hpa * 0.750062 }

// MmHgToInHg converts millimeters of mercury to inches of mercury.
func MmHgToInHg(mmhg float64) float64 { return mmhg * 0.03937 }

// MmToInches converts millimeters of precipitation to inches.
func MmToInches(mm float64) float64 { return mm * 0.03937008 }

// KmhToMph converts kilometers per hour to miles per hour.
func KmhToMph(kmh float64) float64 { return kmh * 0.62137119 }

// MetersToMiles converts visibility in meters to miles.
func MetersToMiles(m float64) float64 { return m * 0.00062137 }

// MetersToFeet converts elevation in meters to feet.
func MetersToFeet(m float64) float64 { return m * 3.2808399 }

// StationDistanceMiles converts a station lookup's distance value (reported
// in meters) to miles.
func StationDistanceMiles(d float64) float64 { return d * 0.0006213712 }

var compassPoints = [8]string{
	"north", "north east", "east", "south east",
	"south", "south west", "west", "north west",
}

// CompassText maps a wind direction in degrees to one of eight compass
// point names. 360° wraps back to north.
func CompassText(deg float64) string {
	idx := int(math.Round(deg/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return compassPoints[idx]
}

// UVRisk labels a UV index with its exposure risk category.
func UVRisk(uvi float64) string {
	switch {
	case uvi < 3:
		return "low"
	case uvi <= 5:
		return "moderate"
	case uvi <= 7:
		return "high"
	case uvi <= 10:
		return "very high"
	default:
		return "extreme"
	}
}
