// Package ports defines repository interfaces for the verification domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its identifier.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is conditional on the aggregate's version token: a stale
	// snapshot is rejected with a CONFLICT application error and nothing
	// is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, complete
	// with its observations and attached documents.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the oldest order awaiting verifier
	// assignment. Used by the auto-dispatch workflow.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllRequiringAttention retrieves non-terminal orders that carry
	// pending observations.
	GetAllRequiringAttention(ctx context.Context) ([]*order.Order, error)
}
