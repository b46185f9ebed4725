package ports

import (
	"context"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/observation"
)

// ObservationRepository defines the persistence contract for observation
// entities. Observations belong to the order aggregate but are read and
// written individually by the observation sub-lifecycle operations.
type ObservationRepository interface {
	// Add persists a new observation and assigns its identifier.
	Add(ctx context.Context, obs *observation.Observation) error

	// Update persists changes to an existing observation.
	Update(ctx context.Context, obs *observation.Observation) error

	// Get retrieves an observation by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*observation.Observation, error)

	// GetAllByOrder retrieves every observation of an order in creation order.
	GetAllByOrder(ctx context.Context, orderID kernel.ID) ([]*observation.Observation, error)

	// Delete removes an observation.
	Delete(ctx context.Context, id kernel.ID) error
}
