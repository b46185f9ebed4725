package commands

import (
	"context"

	"verification/internal/core/domain/model/order"
)

// CreateOrderRequestCommandHandler handles the business logic for order
// intake. New orders start in PENDIENTE status and wait for assignment.
type CreateOrderRequestCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderRequestCommandHandler creates a handler for order intake
// operations. Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderRequestCommandHandler(uowFactory OrderUoWFactory) CreateOrderRequestCommandHandler {
	return CreateOrderRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order intake command.
// Creates the order in PENDIENTE status and persists it, letting the
// repository assign the identifier.
func (h *CreateOrderRequestCommandHandler) Handle(ctx context.Context, cmd CreateOrderRequestCommand) error {
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

	aggregate, err := order.NewOrder(cmd.OrderCode(), cmd.Client(), cmd.Company())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
