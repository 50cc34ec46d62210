package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// Geocoder resolves a free-form street address to geographic coordinates.
// Implementations call an external geocoding provider.
type Geocoder interface {
	// Geocode returns the position of the given address line.
	Geocode(ctx context.Context, address string) (kernel.GeoPoint, error)
}
