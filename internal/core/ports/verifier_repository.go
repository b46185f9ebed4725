package ports

import (
	"context"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/verifier"
)

// VerifierRepository defines the persistence contract for verifier entities.
type VerifierRepository interface {
	// Add persists a new verifier and assigns its identifier.
	Add(ctx context.Context, v *verifier.Verifier) error

	// Update persists changes to an existing verifier.
	Update(ctx context.Context, v *verifier.Verifier) error

	// Get retrieves a verifier by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*verifier.Verifier, error)

	// GetAllActive retrieves all verifiers in ACTIVO status.
	GetAllActive(ctx context.Context) ([]*verifier.Verifier, error)

	// CountActiveOrders returns the number of non-terminal orders currently
	// assigned to the given verifier. Used as the load input for assignment.
	CountActiveOrders(ctx context.Context, verifierID kernel.ID) (int, error)
}
