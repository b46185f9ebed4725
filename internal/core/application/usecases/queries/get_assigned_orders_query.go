package queries

import (
	"errors"
	"time"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery retrieves the visit agenda of one verifier:
// every order currently assigned to them with its scheduled slot.
type GetAssignedOrdersQuery struct { //nolint:recvcheck //using for validation
	verifierID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a query for a verifier's assigned
// orders.
func NewGetAssignedOrdersQuery(verifierID int64) (GetAssignedOrdersQuery, error) {
	query := GetAssignedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setVerifierID(verifierID); err != nil {
		return GetAssignedOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// VerifierID returns the verifier whose agenda is requested.
func (q GetAssignedOrdersQuery) VerifierID() kernel.ID {
	return q.verifierID
}

func (q *GetAssignedOrdersQuery) setVerifierID(raw int64) error {
	verifierID, err := kernel.NewID(raw)
	if err != nil {
		return err
	}

	q.verifierID = verifierID
	return nil
}

// GetAssignedOrdersQueryResponse is the read model of one agenda row.
type GetAssignedOrdersQueryResponse struct {
	OrderID    int64
	OrderCode  string
	ClientName string
	Street     string
	District   string
	Status     string
	VisitDate  time.Time
	VisitTime  string
}
