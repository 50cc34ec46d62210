package kernel

import (
	"errors"
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in decimal degrees.
	LatitudeMin float64 = -90
	// LatitudeMax is the maximum valid latitude in decimal degrees.
	LatitudeMax float64 = 90
	// LongitudeMin is the minimum valid longitude in decimal degrees.
	LongitudeMin float64 = -180
	// LongitudeMax is the maximum valid longitude in decimal degrees.
	LongitudeMax float64 = 180

	// earthRadiusKm is the mean Earth radius used for great-circle distance.
	earthRadiusKm = 6371
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position with validated coordinates.
// GeoPoint is an immutable value object; the zero value is invalid and fails
// validation - use the constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(10.7769, 106.7009)
//	if err != nil {
//	    // Handle validation error
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in decimal degrees.
// Returns an error if either coordinate is outside the valid range.
func NewGeoPoint(lat float64, lon float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed via NewGeoPoint.
// The zero value fails this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in decimal degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// String returns a human-readable representation, useful for logging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lon)
}

// IsEqual compares two points for exact coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the haversine formula. Both points must be properly
// constructed for the calculation to succeed.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := toRad(other.lat - p.lat)
	dLon := toRad(other.lon - p.lon)
	latA := toRad(p.lat)
	latB := toRad(other.lat)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(latA)*math.Cos(latB)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c, nil
}

// setLat sets the latitude with validation.
// Note: private setters use pointer receivers to enable self-encapsulated
// validation during object construction, while the public API stays on
// value receivers.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

// setLon sets the longitude with validation.
func (p *GeoPoint) setLon(lon float64) error {
	if lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lon", lon, LongitudeMin, LongitudeMax)
	}

	p.lon = lon
	return nil
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
