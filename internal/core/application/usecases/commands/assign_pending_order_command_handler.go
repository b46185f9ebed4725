package commands

import (
	"context"
	"errors"
	"time"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/services"
	"verification/internal/pkg/errs"
)

var (
	ErrNoActiveVerifiersFound = errors.New("no active verifiers found")
	ErrNoPendingOrderFound    = errors.New("no pending order found")
)

// autoDispatchVisitTime is the default visit time for auto-assigned orders.
// Operators reschedule through the manual assignment command when needed.
const autoDispatchVisitTime = "09:00"

// AssignPendingOrderCommandHandler orchestrates automatic verifier
// assignment. Finds the oldest pending order, builds the current load per
// active verifier and lets the assignment service pick the winner. Both
// reads and the order update run in a single transaction.
type AssignPendingOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignPendingOrderCommandHandler creates a handler for auto-dispatch
// operations.
func NewAssignPendingOrderCommandHandler(uowFactory UoWFactory) AssignPendingOrderCommandHandler {
	return AssignPendingOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the auto-dispatch command.
// The visit is scheduled for the next day at the default time; verifiers
// whose schedule does not cover that day are filtered by the service.
// Returns ErrNoPendingOrderFound or ErrNoActiveVerifiersFound when there
// is nothing to do, so the job can log and move on.
func (h AssignPendingOrderCommandHandler) Handle(ctx context.Context, cmd AssignPendingOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	verifierRepo := uow.VerifierRepository()

	aggregate, err := orderRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrderFound
	}
	if err != nil {
		return err
	}

	verifiers, err := verifierRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}
	if len(verifiers) == 0 {
		return ErrNoActiveVerifiersFound
	}

	candidates := make([]services.VerifierLoad, 0, len(verifiers))
	for _, v := range verifiers {
		count, countErr := verifierRepo.CountActiveOrders(ctx, v.ID())
		if countErr != nil {
			return countErr
		}
		candidates = append(candidates, services.VerifierLoad{
			Verifier:         v,
			ActiveOrderCount: count,
		})
	}

	visitDate, err := kernel.NewVisitDate(time.Now().AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	visitTime, err := kernel.NewVisitTime(autoDispatchVisitTime)
	if err != nil {
		return err
	}

	if _, err = services.NewVerifierAssignmentService().Dispatch(
		aggregate, candidates, visitDate, visitTime); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
