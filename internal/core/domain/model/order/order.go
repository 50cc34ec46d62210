package order

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// ErrContactIsNotConstructed is returned when a Contact was not created
// through NewContact.
var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

// Contact identifies a sender or receiver of an order.
type Contact struct {
	name  string
	phone string

	isConstructed bool
}

// NewContact creates a contact. Both the name and the phone are required.
func NewContact(name, phone string) (Contact, error) {
	if name == "" {
		return Contact{}, errs.NewValueIsRequiredError("name")
	}
	if phone == "" {
		return Contact{}, errs.NewValueIsRequiredError("phone")
	}

	return Contact{
		name:          name,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// Validate ensures the Contact was properly constructed.
func (c Contact) Validate() error {
	if !c.isConstructed {
		return ErrContactIsNotConstructed
	}
	return nil
}

// Name returns the contact's display name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the contact's phone number.
func (c Contact) Phone() string {
	return c.phone
}

// Order represents a customer order in the system. It is the aggregate root
// managing the order lifecycle from creation through acceptance and payment
// to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and delivery service reference
//   - Origin and destination endpoints must be constructed
//   - Status transitions follow the closed transition table
//   - The total price is never negative
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id        kernel.UUID
	serviceID kernel.UUID

	sender   Contact
	receiver Contact

	origin      Endpoint
	destination Endpoint

	status     Status
	route      []kernel.UUID
	totalPrice int64

	isConstructed bool
}

// NewOrder creates a new Order in the Waiting status with no route and a
// zero total price. This is the entry point of the order lifecycle.
func NewOrder(
	id kernel.UUID,
	serviceID kernel.UUID,
	sender Contact,
	receiver Contact,
	origin Endpoint,
	destination Endpoint,
) (*Order, error) {
	order := &Order{
		status:        Waiting,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setServiceID(serviceID),
		order.setSender(sender),
		order.setReceiver(receiver),
		order.setEndpoints(origin, destination),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence with its full state.
func RestoreOrder(
	id kernel.UUID,
	serviceID kernel.UUID,
	sender Contact,
	receiver Contact,
	origin Endpoint,
	destination Endpoint,
	status Status,
	route []kernel.UUID,
	totalPrice int64,
) (*Order, error) {
	order, err := NewOrder(id, serviceID, sender, receiver, origin, destination)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		order.setStatus(status),
		order.setRoute(route),
		order.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ServiceID returns the identifier of the delivery service the order uses.
func (o *Order) ServiceID() kernel.UUID {
	return o.serviceID
}

// Sender returns the order's sender contact.
func (o *Order) Sender() Contact {
	return o.sender
}

// Receiver returns the order's receiver contact.
func (o *Order) Receiver() Contact {
	return o.receiver
}

// Origin returns the order's pickup endpoint.
func (o *Order) Origin() Endpoint {
	return o.origin
}

// Destination returns the order's delivery endpoint.
func (o *Order) Destination() Endpoint {
	return o.destination
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Route returns a copy of the warehouse identifiers of the computed route,
// in travel order. An order without a computed route returns nil.
func (o *Order) Route() []kernel.UUID {
	if o.route == nil {
		return nil
	}
	route := make([]kernel.UUID, len(o.route))
	copy(route, o.route)
	return route
}

// TotalPrice returns the order's total price snapshot.
func (o *Order) TotalPrice() int64 {
	return o.totalPrice
}

// ChangeStatus moves the order to the next status.
//
// The transition must be in the table:
//
//	Waiting -> Accepted | Refused
//	Unpaid  -> Paid | Cancelled
//	Paid    -> Completed
//
// Anything else fails with an error wrapping ErrIllegalTransition, leaving
// the order unchanged.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignRoute records the computed route as an ordered list of warehouse
// identifiers. The route must be non-empty and every identifier valid.
func (o *Order) AssignRoute(route []kernel.UUID) error {
	if len(route) == 0 {
		return errs.NewValueIsRequiredError("route")
	}
	for _, id := range route {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	o.route = make([]kernel.UUID, len(route))
	copy(o.route, route)
	return nil
}

// SetTotalPrice records the order's total price. The price must not be
// negative.
func (o *Order) SetTotalPrice(total int64) error {
	return o.setTotalPrice(total)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	o.serviceID = serviceID
	return nil
}

func (o *Order) setSender(sender Contact) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	o.sender = sender
	return nil
}

func (o *Order) setReceiver(receiver Contact) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	o.receiver = receiver
	return nil
}

func (o *Order) setEndpoints(origin, destination Endpoint) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}
	o.origin = origin
	o.destination = destination
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setRoute(route []kernel.UUID) error {
	if len(route) == 0 {
		o.route = nil
		return nil
	}
	return o.AssignRoute(route)
}

func (o *Order) setTotalPrice(total int64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%d is negative", total))
	}
	o.totalPrice = total
	return nil
}
