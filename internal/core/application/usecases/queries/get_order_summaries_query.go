// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"verification/internal/pkg/guard"
)

var ErrGetOrderSummariesQueryIsNotConstructed = errors.New(
	"GetOrderSummariesQuery must be created via NewGetOrderSummariesQuery constructor",
)

// GetOrderSummariesQuery retrieves the order list for the operations board.
// Returns one row per order with its status, assignee and attention signal.
type GetOrderSummariesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderSummariesQuery creates a query to retrieve all order summaries.
func NewGetOrderSummariesQuery() GetOrderSummariesQuery {
	return GetOrderSummariesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummariesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummariesQueryIsNotConstructed)
}

// GetOrderSummariesQueryResponse is the read model of one order row.
// VerifierName is nil while the order is unassigned.
type GetOrderSummariesQueryResponse struct {
	OrderID                 int64
	OrderCode               string
	ClientName              string
	Status                  string
	VerifierName            *string
	PendingObservationCount int
}

// RequiresAttention mirrors the aggregate's derived flag on the read model:
// pending observations on a non-terminal order.
func (r GetOrderSummariesQueryResponse) RequiresAttention() bool {
	return r.PendingObservationCount > 0 &&
		r.Status != "COMPLETADA" && r.Status != "CANCELADA"
}
