package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAssignedOrdersQueryHandler retrieves a verifier's visit agenda.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for agenda queries.
// Requires a GORM database connection for query execution.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle executes the query for the verifier's assigned orders.
// Rows are sorted by visit date then time, earliest first.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]GetAssignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agenda := make([]GetAssignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_code,
			o.client_name,
			o.street,
			o.district,
			o.status,
			o.visit_date,
			o.visit_time
		FROM orders o
		WHERE o.verifier_id = ?
		  AND o.status IN ('ASIGNADO', 'EN_PROCESO', 'OBSERVADO', 'SUBSANADA')
		ORDER BY o.visit_date, o.visit_time
	`, query.VerifierID().Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAssignedOrdersQueryResponse

		err = rows.Scan(
			&row.OrderID,
			&row.OrderCode,
			&row.ClientName,
			&row.Street,
			&row.District,
			&row.Status,
			&row.VisitDate,
			&row.VisitTime,
		)
		if err != nil {
			return nil, err
		}

		agenda = append(agenda, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agenda, nil
}
