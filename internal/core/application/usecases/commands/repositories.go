// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// ServiceRepoFactory provides access to the delivery service repository within a transaction.
	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	// OrderProductUoW manages transactions spanning an order and its products.
	// Used by status changes, which read products and write the order atomically.
	OrderProductUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderProductUoWFactory creates new order/product unit of work instances.
	OrderProductUoWFactory interface {
		Create() OrderProductUoW
	}

	// UoW manages transactions across all aggregates.
	// Used by commands that coordinate orders, products, warehouses and services.
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		WarehouseRepoFactory
		ServiceRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
