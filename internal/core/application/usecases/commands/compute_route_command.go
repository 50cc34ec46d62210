package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrComputeRouteCommandIsNotConstructed = errors.New(
		"ComputeRouteCommand must be created via NewComputeRouteCommand constructor",
	)
)

// ComputeRouteCommand represents a request to compute and store the
// warehouse route of an order.
type ComputeRouteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewComputeRouteCommand creates a command to compute an order's route.
func NewComputeRouteCommand(orderID kernel.UUID) (ComputeRouteCommand, error) {
	cmd := ComputeRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ComputeRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ComputeRouteCommand) Validate() error {
	return c.guard.Validate(ErrComputeRouteCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to route.
func (c ComputeRouteCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ComputeRouteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
