package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// EndpointInput describes one end of the requested movement. When
// WarehouseID is set the endpoint is on-site at that warehouse; otherwise it
// is a free address to be served via the nearest covered warehouse.
type EndpointInput struct {
	WarehouseID *kernel.UUID

	Street   string
	Ward     string
	District string
	Province string
}

// Validate checks the input describes exactly one endpoint flavor.
func (e EndpointInput) Validate() error {
	if e.WarehouseID != nil {
		return e.WarehouseID.Validate()
	}
	if e.Street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	if e.Province == "" {
		return errs.NewValueIsRequiredError("province")
	}
	return nil
}

// ProductInput is one product line of a new order.
type ProductInput struct {
	Name     string
	Quantity float64
	Unit     string
	Note     string
}

// Validate checks the product line carries a name, a positive quantity and
// a known unit code.
func (p ProductInput) Validate() error {
	if p.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if p.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%f is not greater than 0", p.Quantity))
	}
	if _, err := kernel.UnitFromString(p.Unit); err != nil {
		return err
	}
	return nil
}

// CreateOrderCommand represents a request to register a new order in the
// Waiting status, together with its product lines.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	serviceID kernel.UUID

	senderName    string
	senderPhone   string
	receiverName  string
	receiverPhone string

	origin      EndpointInput
	destination EndpointInput

	products []ProductInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, contacts, both endpoints and every product line.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	serviceID kernel.UUID,
	senderName, senderPhone string,
	receiverName, receiverPhone string,
	origin EndpointInput,
	destination EndpointInput,
	products []ProductInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setServiceID(serviceID),
		cmd.setSender(senderName, senderPhone),
		cmd.setReceiver(receiverName, receiverPhone),
		cmd.setEndpoints(origin, destination),
		cmd.setProducts(products),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to create.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ServiceID returns the identifier of the chosen delivery service.
func (c CreateOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// SenderName returns the sender's display name.
func (c CreateOrderCommand) SenderName() string {
	return c.senderName
}

// SenderPhone returns the sender's phone number.
func (c CreateOrderCommand) SenderPhone() string {
	return c.senderPhone
}

// ReceiverName returns the receiver's display name.
func (c CreateOrderCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverPhone returns the receiver's phone number.
func (c CreateOrderCommand) ReceiverPhone() string {
	return c.receiverPhone
}

// Origin returns the pickup endpoint input.
func (c CreateOrderCommand) Origin() EndpointInput {
	return c.origin
}

// Destination returns the delivery endpoint input.
func (c CreateOrderCommand) Destination() EndpointInput {
	return c.destination
}

// Products returns the order's product lines.
func (c CreateOrderCommand) Products() []ProductInput {
	return c.products
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	c.serviceID = serviceID
	return nil
}

func (c *CreateOrderCommand) setSender(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("senderName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("senderPhone")
	}
	c.senderName = name
	c.senderPhone = phone
	return nil
}

func (c *CreateOrderCommand) setReceiver(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("receiverName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("receiverPhone")
	}
	c.receiverName = name
	c.receiverPhone = phone
	return nil
}

func (c *CreateOrderCommand) setEndpoints(origin, destination EndpointInput) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}
	c.origin = origin
	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setProducts(products []ProductInput) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("products")
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	c.products = make([]ProductInput, len(products))
	copy(c.products, products)
	return nil
}
