package commands

import (
	"context"
)

// StartVisitCommandHandler moves an assigned order into EN_PROCESO.
type StartVisitCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartVisitCommandHandler creates a handler for visit start operations.
func NewStartVisitCommandHandler(uowFactory OrderUoWFactory) StartVisitCommandHandler {
	return StartVisitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the visit start command. The transition guard rejects
// orders that are not in ASIGNADO or SUBSANADA status.
func (h StartVisitCommandHandler) Handle(ctx context.Context, cmd StartVisitCommand) error {
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

	if err = aggregate.StartProcessing(); err != nil {
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
