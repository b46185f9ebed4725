package commands

import (
	"context"

	"verification/internal/pkg/apperr"
)

// UpdateObservationStatusCommandHandler moves observations through their
// resolution sub-lifecycle. Resolving the last pending observation makes
// the order eligible for SUBSANADA but never transitions it; that remains
// an explicit order-level command.
type UpdateObservationStatusCommandHandler struct {
	uowFactory ObservationUoWFactory
}

// NewUpdateObservationStatusCommandHandler creates a handler for
// observation status updates.
func NewUpdateObservationStatusCommandHandler(uowFactory ObservationUoWFactory) UpdateObservationStatusCommandHandler {
	return UpdateObservationStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the observation status update.
// The observation must belong to the order named in the command.
func (h UpdateObservationStatusCommandHandler) Handle(ctx context.Context, cmd UpdateObservationStatusCommand) error {
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

	obs, err := uow.ObservationRepository().Get(ctx, cmd.ObservationID())
	if err != nil {
		return err
	}

	if !obs.OrderID().IsEqual(cmd.OrderID()) {
		return apperr.ErrObservationNotFound.WrapMessage(
			"observation does not belong to the given order")
	}

	if err = obs.UpdateStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if err = uow.ObservationRepository().Update(ctx, obs); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
