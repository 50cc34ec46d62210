// Package queries contains read-only operations against the database.
// Implements the query side of the CQRS architecture: handlers read
// denormalized rows directly instead of rehydrating full aggregates.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves every order currently in a given status.
// Used by back-office listings and by the notification redelivery job.
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status filter.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// GetOrdersByStatusQueryResponse represents one order row of a status listing.
type GetOrdersByStatusQueryResponse struct {
	ID                  kernel.UUID
	SenderName          string
	ReceiverName        string
	OriginProvince      string
	DestinationProvince string
	TotalPrice          int64
}
