package commands

import (
	"context"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/report"
)

// CompleteOrderCommandHandler finishes a verification visit.
// Completing an order and opening its report skeleton happen in one
// transaction: an order never ends up COMPLETADA without a report.
type CompleteOrderCommandHandler struct {
	uowFactory OrderReportUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion
// operations. Requires an OrderReportUoWFactory spanning both aggregates.
func NewCompleteOrderCommandHandler(uowFactory OrderReportUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// The report skeleton starts with ENTREVISTA_ARRENDADOR_FALTANTE for tenant
// clients, whose landlord still has to be interviewed, and CONFORME otherwise.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = aggregate.Complete(); err != nil {
		return err
	}

	initialResult := kernel.Conforme
	if aggregate.Client().IsTenant() {
		initialResult = kernel.EntrevistaFaltante
	}

	skeleton, err := report.NewReport(cmd.ReportCode(), cmd.OrderID(), initialResult)
	if err != nil {
		return err
	}

	if err = uow.ReportRepository().Add(ctx, skeleton); err != nil {
		return err
	}

	if err = aggregate.AttachReport(skeleton.ID()); err != nil {
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
