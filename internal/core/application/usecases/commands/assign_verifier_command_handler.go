package commands

import (
	"context"

	"verification/internal/pkg/apperr"
)

// AssignVerifierCommandHandler orchestrates manual verifier assignment.
// Loads both aggregates, checks verifier eligibility for the visit day and
// performs the guarded order transition within one transaction.
type AssignVerifierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignVerifierCommandHandler creates a handler for manual assignment
// operations. Requires a UoWFactory spanning order and verifier repositories.
func NewAssignVerifierCommandHandler(uowFactory UoWFactory) AssignVerifierCommandHandler {
	return AssignVerifierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual assignment command.
// The chosen verifier must be active and working on the visit day;
// otherwise the command fails without touching the order.
func (h AssignVerifierCommandHandler) Handle(ctx context.Context, cmd AssignVerifierCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assignee, err := uow.VerifierRepository().Get(ctx, cmd.VerifierID())
	if err != nil {
		return err
	}

	if !assignee.IsActive() {
		return apperr.ErrVerifierNotEligible.WrapMessage("verifier is not active")
	}
	if !assignee.WorksOn(cmd.VisitDate().Value().Weekday()) {
		return apperr.ErrVerifierNotEligible.WrapMessage("visit day is outside the verifier's schedule")
	}

	if err = aggregate.Assign(assignee.ID(), cmd.VisitDate(), cmd.VisitTime()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
