package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderSummariesQueryHandler retrieves order summaries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderSummariesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummariesQueryHandler creates a handler for order summary
// queries. Requires a GORM database connection for query execution.
func NewGetOrderSummariesQueryHandler(db *gorm.DB) GetOrderSummariesQueryHandler {
	return GetOrderSummariesQueryHandler{db: db}
}

// Handle executes the query to retrieve all order summaries.
// Returns one row per order sorted by order code, with the pending
// observation count aggregated in the database.
func (h GetOrderSummariesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummariesQuery,
) ([]GetOrderSummariesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]GetOrderSummariesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_code,
			o.client_name,
			o.status,
			v.name AS verifier_name,
			COUNT(obs.id) FILTER (WHERE obs.status = 'PENDIENTE') AS pending_observations
		FROM orders o
		LEFT JOIN verifiers v ON v.id = o.verifier_id
		LEFT JOIN observations obs ON obs.order_id = o.id
		GROUP BY o.id, o.order_code, o.client_name, o.status, v.name
		ORDER BY o.order_code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary GetOrderSummariesQueryResponse

		err = rows.Scan(
			&summary.OrderID,
			&summary.OrderCode,
			&summary.ClientName,
			&summary.Status,
			&summary.VerifierName,
			&summary.PendingObservationCount,
		)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
