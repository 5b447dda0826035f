package domain

import "fmt"

// ValidCoordinates reports whether lat/lon describe a point on earth.
func ValidCoordinates(lat, lon float64) bool {
	if lat < -90 || lat > 90 {
		return false
	}
	if lon < -180 || lon > 180 {
		return false
	}
	return true
}

// CheckCoordinates returns a descriptive error for out-of-range coordinates.
// Callers must run this before making any network call.
func CheckCoordinates(lat, lon float64) error {
	if !ValidCoordinates(lat, lon) {
		return fmt.Errorf("latitude %v or longitude %v is out of range: latitude must be within -90 to 90 and longitude within -180 to 180", lat, lon)
	}
	return nil
}
