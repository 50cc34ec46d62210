package order

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrEndpointIsNotConstructed is returned when an Endpoint was not created
// through one of its factory methods.
var ErrEndpointIsNotConstructed = errors.New("Endpoint must be created via NewOnSiteEndpoint or NewShipEndpoint constructor")

// ErrAddressIsNotConstructed is returned when an Address was not created
// through NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// EndpointKind discriminates the two endpoint flavors.
type EndpointKind int

const (
	// EndpointUnknown represents an invalid or undefined endpoint kind.
	EndpointUnknown EndpointKind = iota

	// EndpointOnSite is a warehouse endpoint: goods are dropped off or
	// picked up at a warehouse chosen by the customer.
	EndpointOnSite

	// EndpointShip is a free-address endpoint: goods are collected from or
	// delivered to a street address, routed via the nearest warehouse.
	EndpointShip
)

// Address is a free-form street address. Ward and district are optional;
// street and province are required.
type Address struct {
	street   string
	ward     string
	district string
	province string

	isConstructed bool
}

// NewAddress creates a street address.
func NewAddress(street, ward, district, province string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if province == "" {
		return Address{}, errs.NewValueIsRequiredError("province")
	}

	return Address{
		street:        street,
		ward:          ward,
		district:      district,
		province:      province,
		isConstructed: true,
	}, nil
}

// Validate ensures the Address was properly constructed.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// Ward returns the ward, or an empty string.
func (a Address) Ward() string {
	return a.ward
}

// District returns the district, or an empty string.
func (a Address) District() string {
	return a.district
}

// Province returns the address's province.
func (a Address) Province() string {
	return a.province
}

// String returns the address as a single comma-separated line, skipping the
// optional parts that are empty.
func (a Address) String() string {
	line := a.street
	if a.ward != "" {
		line += ", " + a.ward
	}
	if a.district != "" {
		line += ", " + a.district
	}
	return line + ", " + a.province
}

// Endpoint is one end of an order's movement. An on-site endpoint names a
// warehouse; a ship endpoint carries a street address to be resolved to the
// nearest warehouse. Both flavors expose the province used for zone
// classification.
type Endpoint struct {
	kind        EndpointKind
	warehouseID kernel.UUID
	address     Address
	province    string

	isConstructed bool
}

// NewOnSiteEndpoint creates a warehouse endpoint. The province is the
// warehouse's province, captured at order creation.
func NewOnSiteEndpoint(warehouseID kernel.UUID, province string) (Endpoint, error) {
	if err := warehouseID.Validate(); err != nil {
		return Endpoint{}, err
	}
	if province == "" {
		return Endpoint{}, errs.NewValueIsRequiredError("province")
	}

	return Endpoint{
		kind:          EndpointOnSite,
		warehouseID:   warehouseID,
		province:      province,
		isConstructed: true,
	}, nil
}

// NewShipEndpoint creates a free-address endpoint.
func NewShipEndpoint(address Address) (Endpoint, error) {
	if err := address.Validate(); err != nil {
		return Endpoint{}, err
	}

	return Endpoint{
		kind:          EndpointShip,
		address:       address,
		province:      address.Province(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Endpoint was properly constructed.
func (e Endpoint) Validate() error {
	if !e.isConstructed {
		return ErrEndpointIsNotConstructed
	}
	return nil
}

// Kind returns the endpoint's flavor.
func (e Endpoint) Kind() EndpointKind {
	return e.kind
}

// Province returns the endpoint's province. For a ship endpoint this is the
// address's province; for an on-site endpoint it is the warehouse's province.
func (e Endpoint) Province() string {
	return e.province
}

// WarehouseID returns the warehouse named by an on-site endpoint.
func (e Endpoint) WarehouseID() (kernel.UUID, error) {
	if e.kind != EndpointOnSite {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("endpoint",
			fmt.Errorf("%d is not an on-site endpoint", e.kind))
	}
	return e.warehouseID, nil
}

// Address returns the street address of a ship endpoint.
func (e Endpoint) Address() (Address, error) {
	if e.kind != EndpointShip {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("endpoint",
			fmt.Errorf("%d is not a ship endpoint", e.kind))
	}
	return e.address, nil
}
