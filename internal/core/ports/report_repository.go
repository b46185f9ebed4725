package ports

import (
	"context"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/report"
)

// ReportRepository defines the persistence contract for report aggregates.
type ReportRepository interface {
	// Add persists a new report aggregate and assigns its identifier.
	Add(ctx context.Context, aggregate *report.Report) error

	// Update persists changes to an existing report aggregate.
	Update(ctx context.Context, aggregate *report.Report) error

	// Get retrieves a report aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*report.Report, error)

	// GetByOrder retrieves the report generated for the given order.
	GetByOrder(ctx context.Context, orderID kernel.ID) (*report.Report, error)
}
