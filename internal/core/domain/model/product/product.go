package product

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// ErrShipmentIsNotConstructed is returned when a Shipment was not created
// through NewShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// ErrQuantityMismatch is returned when the parts of a split do not sum
// exactly to the product's quantity.
var ErrQuantityMismatch = errors.New("split quantities do not sum to the product quantity")

// PriceFunc prices one shipment of the given quantity. It is supplied by the
// caller at split time so the aggregate stays free of pricing concerns.
type PriceFunc func(quantity float64) (int64, error)

// Shipment is one priced part of a split product.
type Shipment struct {
	id       kernel.UUID
	quantity float64
	value    int64

	isConstructed bool
}

// NewShipment creates a shipment part. The quantity must be strictly
// positive and the value must not be negative.
func NewShipment(id kernel.UUID, quantity float64, value int64) (Shipment, error) {
	if err := id.Validate(); err != nil {
		return Shipment{}, err
	}
	if quantity <= 0 {
		return Shipment{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%f is not greater than 0", quantity))
	}
	if value < 0 {
		return Shipment{}, errs.NewValueIsInvalidErrorWithCause("value",
			fmt.Errorf("%d is negative", value))
	}

	return Shipment{
		id:            id,
		quantity:      quantity,
		value:         value,
		isConstructed: true,
	}, nil
}

// Validate ensures the Shipment was properly constructed.
func (s Shipment) Validate() error {
	if !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s Shipment) ID() kernel.UUID {
	return s.id
}

// Quantity returns the shipment's share of the product quantity.
func (s Shipment) Quantity() float64 {
	return s.quantity
}

// Value returns the shipment's price.
func (s Shipment) Value() int64 {
	return s.value
}

// Product represents one line of an order. It is an aggregate root owning
// the shipments its quantity has been split into.
//
// Product follows these invariants:
//   - Quantity is strictly positive
//   - Shipment quantities always sum exactly to the product quantity
//   - Status reflects whether a shipment set exists
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	id       kernel.UUID
	orderID  kernel.UUID
	name     string
	quantity float64
	unit     kernel.Unit
	note     string

	status    Status
	shipments []Shipment

	isConstructed bool
}

// NewProduct creates a product pending split.
func NewProduct(
	id kernel.UUID,
	orderID kernel.UUID,
	name string,
	quantity float64,
	unit kernel.Unit,
	note string,
) (*Product, error) {
	product := &Product{
		status:        StatusPending,
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setOrderID(orderID),
		product.setName(name),
		product.setQuantity(quantity),
		product.setUnit(unit),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a product from persistence with its shipment
// set. The shipment quantities must still sum to the product quantity.
func RestoreProduct(
	id kernel.UUID,
	orderID kernel.UUID,
	name string,
	quantity float64,
	unit kernel.Unit,
	note string,
	status Status,
	shipments []Shipment,
) (*Product, error) {
	product, err := NewProduct(id, orderID, name, quantity, unit, note)
	if err != nil {
		return nil, err
	}

	if err := product.setStatus(status); err != nil {
		return nil, err
	}
	if err := product.setShipments(shipments); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order the product belongs to.
func (p *Product) OrderID() kernel.UUID {
	return p.orderID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Quantity returns the product's total quantity.
func (p *Product) Quantity() float64 {
	return p.quantity
}

// Unit returns the unit the quantity is measured in.
func (p *Product) Unit() kernel.Unit {
	return p.unit
}

// Note returns the free-form handling note, possibly empty.
func (p *Product) Note() string {
	return p.note
}

// Status returns the product's split state.
func (p *Product) Status() Status {
	return p.status
}

// IsSplit reports whether the product has a shipment set.
func (p *Product) IsSplit() bool {
	return p.status == StatusAlreadySplit
}

// Shipments returns a copy of the product's shipment set.
func (p *Product) Shipments() []Shipment {
	if p.shipments == nil {
		return nil
	}
	shipments := make([]Shipment, len(p.shipments))
	copy(shipments, p.shipments)
	return shipments
}

// ShipmentsValue returns the summed price of the product's shipments.
func (p *Product) ShipmentsValue() int64 {
	var total int64
	for _, shipment := range p.shipments {
		total += shipment.value
	}
	return total
}

// Split partitions the product quantity into priced shipments.
//
// The parts must be non-empty, strictly positive, and sum exactly to the
// product's quantity; any other partition fails with an error wrapping
// ErrQuantityMismatch. Each part is priced through price. On success the
// previous shipment set, if any, is replaced wholesale and the product
// becomes StatusAlreadySplit. On failure the product is unchanged.
func (p *Product) Split(quantities []float64, price PriceFunc) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(quantities) == 0 {
		return errs.NewValueIsRequiredError("quantities")
	}
	if price == nil {
		return errs.NewValueIsRequiredError("price")
	}

	var sum float64
	for _, quantity := range quantities {
		if quantity <= 0 {
			return fmt.Errorf("%w: part %f is not greater than 0", ErrQuantityMismatch, quantity)
		}
		sum += quantity
	}
	if sum != p.quantity {
		return fmt.Errorf("%w: parts sum to %f, product quantity is %f",
			ErrQuantityMismatch, sum, p.quantity)
	}

	shipments := make([]Shipment, 0, len(quantities))
	for _, quantity := range quantities {
		value, err := price(quantity)
		if err != nil {
			return err
		}
		shipment, err := NewShipment(kernel.NewUUID(), quantity, value)
		if err != nil {
			return err
		}
		shipments = append(shipments, shipment)
	}

	p.shipments = shipments
	p.status = StatusAlreadySplit
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%f is not greater than 0", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Product) setUnit(unit kernel.Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	p.unit = unit
	return nil
}

func (p *Product) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Product) setShipments(shipments []Shipment) error {
	if p.status == StatusPending {
		if len(shipments) != 0 {
			return errs.NewValueIsInvalidErrorWithCause("shipments",
				fmt.Errorf("pending product cannot carry %d shipments", len(shipments)))
		}
		return nil
	}

	if len(shipments) == 0 {
		return errs.NewValueIsRequiredError("shipments")
	}

	var sum float64
	for _, shipment := range shipments {
		if err := shipment.Validate(); err != nil {
			return err
		}
		sum += shipment.quantity
	}
	if sum != p.quantity {
		return fmt.Errorf("%w: shipments sum to %f, product quantity is %f",
			ErrQuantityMismatch, sum, p.quantity)
	}

	p.shipments = make([]Shipment, len(shipments))
	copy(p.shipments, shipments)
	return nil
}
