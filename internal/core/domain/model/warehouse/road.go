package warehouse

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrRoadIsNotConstructed is returned when a Road instance was not created
// through the NewRoad factory method.
var ErrRoadIsNotConstructed = errors.New("Road must be created via NewRoad constructor")

// Road is a symmetric weighted edge between two warehouses. The distance is
// the travel cost in kilometers and is identical in both directions.
type Road struct {
	id          kernel.UUID
	origin      kernel.UUID
	destination kernel.UUID
	distanceKm  float64

	isConstructed bool
}

// NewRoad creates a road between two distinct warehouses.
// The distance must be non-negative.
func NewRoad(id kernel.UUID, origin kernel.UUID, destination kernel.UUID, distanceKm float64) (*Road, error) {
	road := &Road{
		isConstructed: true,
	}

	if err := errors.Join(
		road.setID(id),
		road.setEndpoints(origin, destination),
		road.setDistance(distanceKm),
	); err != nil {
		return nil, err
	}

	return road, nil
}

// RestoreRoad reconstructs a road from persistence.
func RestoreRoad(id kernel.UUID, origin kernel.UUID, destination kernel.UUID, distanceKm float64) (*Road, error) {
	return NewRoad(id, origin, destination, distanceKm)
}

// Validate ensures the Road instance was properly constructed.
func (r *Road) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRoadIsNotConstructed
	}

	return nil
}

// ID returns the road's unique identifier.
func (r *Road) ID() kernel.UUID {
	return r.id
}

// Origin returns the identifier of one endpoint warehouse.
// The naming follows the order the road was registered in; routing treats
// both endpoints interchangeably.
func (r *Road) Origin() kernel.UUID {
	return r.origin
}

// Destination returns the identifier of the other endpoint warehouse.
func (r *Road) Destination() kernel.UUID {
	return r.destination
}

// DistanceKm returns the travel cost of the road in kilometers.
func (r *Road) DistanceKm() float64 {
	return r.distanceKm
}

// Connects reports whether the road touches the given warehouse.
func (r *Road) Connects(warehouseID kernel.UUID) bool {
	return r.origin.IsEqual(warehouseID) || r.destination.IsEqual(warehouseID)
}

func (r *Road) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Road) setEndpoints(origin kernel.UUID, destination kernel.UUID) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}

	if origin.IsEqual(destination) {
		return errs.NewValueIsInvalidErrorWithCause("destination",
			fmt.Errorf("road endpoints must be distinct, got %s twice", origin))
	}

	r.origin = origin
	r.destination = destination
	return nil
}

func (r *Road) setDistance(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%f is negative", distanceKm))
	}
	r.distanceKm = distanceKm
	return nil
}
