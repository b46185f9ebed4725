package commands

import (
	"context"

	"verification/internal/core/domain/model/observation"
	"verification/internal/pkg/apperr"
)

// CreateObservationCommandHandler records defects against orders.
// Recording an observation never transitions the order; moving it to
// OBSERVADO is a separate explicit status update.
type CreateObservationCommandHandler struct {
	uowFactory ObservationUoWFactory
}

// NewCreateObservationCommandHandler creates a handler for observation
// creation operations.
func NewCreateObservationCommandHandler(uowFactory ObservationUoWFactory) CreateObservationCommandHandler {
	return CreateObservationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the observation creation command.
// The owning order must exist and must not be in a terminal status.
func (h CreateObservationCommandHandler) Handle(ctx context.Context, cmd CreateObservationCommand) error {
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

	owner, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if owner.IsTerminal() {
		return apperr.ErrIllegalStatusTransition.WrapMessage(
			"cannot record observations on a terminal order")
	}

	obs, err := observation.NewObservation(
		cmd.OrderID(), cmd.ObservationType(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.ObservationRepository().Add(ctx, obs); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
