package warehouse

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was not
// created through the NewWarehouse factory method.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse represents a storage facility in the delivery network. It is used
// as a vertex of the routing graph and as the resolution target for free-form
// address endpoints.
//
// Warehouse follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name and province
//   - Must have a valid geographic position
//   - Can only be created through NewWarehouse or RestoreWarehouse
type Warehouse struct {
	id       kernel.UUID
	name     string
	province string
	point    kernel.GeoPoint

	isConstructed bool
}

// NewWarehouse creates a new Warehouse instance with validation. This is the
// only way to create a valid Warehouse apart from restoring one from
// persistence.
func NewWarehouse(id kernel.UUID, name string, province string, point kernel.GeoPoint) (*Warehouse, error) {
	wh := &Warehouse{
		isConstructed: true,
	}

	if err := errors.Join(
		wh.setID(id),
		wh.setName(name),
		wh.setProvince(province),
		wh.setPoint(point),
	); err != nil {
		return nil, err
	}

	return wh, nil
}

// RestoreWarehouse reconstructs a warehouse from persistence.
// The same invariants as NewWarehouse apply.
func RestoreWarehouse(id kernel.UUID, name string, province string, point kernel.GeoPoint) (*Warehouse, error) {
	return NewWarehouse(id, name, province, point)
}

// Validate ensures the Warehouse instance was properly constructed.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}

	return nil
}

// IsEqual compares two warehouses by their unique identifiers.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Name returns the warehouse's display name.
func (w *Warehouse) Name() string {
	return w.name
}

// Province returns the province the warehouse operates in.
// Coverage decisions for routing are made against this value.
func (w *Warehouse) Province() string {
	return w.province
}

// Point returns the warehouse's geographic position.
func (w *Warehouse) Point() kernel.GeoPoint {
	return w.point
}

// Relocate updates the warehouse's position and province.
// Warehouses are otherwise immutable once created.
func (w *Warehouse) Relocate(province string, point kernel.GeoPoint) error {
	if err := w.Validate(); err != nil {
		return err
	}

	if err := errors.Join(w.setProvince(province), w.setPoint(point)); err != nil {
		return err
	}

	return nil
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setProvince(province string) error {
	if province == "" {
		return errs.NewValueIsRequiredError("province")
	}
	w.province = province
	return nil
}

func (w *Warehouse) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	w.point = point
	return nil
}
