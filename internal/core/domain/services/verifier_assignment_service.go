package services

import (
	"errors"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/order"
	"verification/internal/core/domain/model/verifier"
)

// ErrVerifierNotFound is returned when no suitable verifier is available
// for an order. This occurs when either no verifiers are provided or none
// of them is active with a schedule covering the visit day.
var ErrVerifierNotFound = errors.New("verifier not found")

// VerifierLoad pairs a verifier with the number of orders currently
// assigned to them. The count is a read-model input supplied by the caller.
type VerifierLoad struct {
	Verifier         *verifier.Verifier
	ActiveOrderCount int
}

// VerifierAssignmentService is a domain service responsible for finding
// and assigning the best available verifier for a verification order.
//
// Business rules:
//   - Only active verifiers are eligible
//   - The verifier's work schedule must cover the visit day
//   - The least-loaded eligible verifier wins
//   - The first candidate wins ties, so the caller's ordering is stable
//
// The service mutates the order through its guarded Assign mutator; it
// never writes to the verifier.
type VerifierAssignmentService struct{}

// NewVerifierAssignmentService creates a new VerifierAssignmentService
// instance.
func NewVerifierAssignmentService() VerifierAssignmentService {
	return VerifierAssignmentService{}
}

// Dispatch finds the best verifier for the order and executes the
// assignment workflow for the given visit slot.
//
// Returns:
//   - *verifier.Verifier: the verifier assigned to the order
//   - error: ErrVerifierNotFound when no eligible verifier exists, or
//     validation/assignment errors
func (s VerifierAssignmentService) Dispatch(
	o *order.Order,
	candidates []VerifierLoad,
	visitDate kernel.VisitDate,
	visitTime kernel.VisitTime,
) (*verifier.Verifier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := s.findBestVerifier(candidates, visitDate)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID(), visitDate, visitTime); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestVerifier evaluates the candidates and picks the least-loaded
// eligible one. Candidates are inspected in the order given; a strictly
// smaller load is required to displace the current best, so the first
// eligible candidate wins ties.
func (s VerifierAssignmentService) findBestVerifier(
	candidates []VerifierLoad,
	visitDate kernel.VisitDate,
) (*verifier.Verifier, error) {
	var best *verifier.Verifier
	bestLoad := 0

	day := visitDate.Value().Weekday()

	for _, candidate := range candidates {
		if err := candidate.Verifier.Validate(); err != nil {
			return nil, err
		}

		if !candidate.Verifier.IsActive() {
			continue
		}
		if !candidate.Verifier.WorksOn(day) {
			continue
		}

		if best == nil || candidate.ActiveOrderCount < bestLoad {
			best = candidate.Verifier
			bestLoad = candidate.ActiveOrderCount
		}
	}

	if best == nil {
		return nil, ErrVerifierNotFound
	}

	return best, nil
}
