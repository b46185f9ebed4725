package commands

import (
	"context"
)

// UpdateLandlordInterviewCommandHandler records landlord interview answers
// on the report of an order.
//
// Storing the interview does not move the final result away from
// ENTREVISTA_ARRENDADOR_FALTANTE; that change arrives through a separate
// report update once a reviewer confirms the verdict.
type UpdateLandlordInterviewCommandHandler struct {
	uowFactory OrderReportUoWFactory
}

// NewUpdateLandlordInterviewCommandHandler creates a handler for landlord
// interview updates.
func NewUpdateLandlordInterviewCommandHandler(uowFactory OrderReportUoWFactory) UpdateLandlordInterviewCommandHandler {
	return UpdateLandlordInterviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the landlord interview update.
// Resolves the report through the order reference.
func (h UpdateLandlordInterviewCommandHandler) Handle(ctx context.Context, cmd UpdateLandlordInterviewCommand) error {
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

	aggregate, err := uow.ReportRepository().GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetLandlordInterview(cmd.Interview()); err != nil {
		return err
	}

	if err = uow.ReportRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
