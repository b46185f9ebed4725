package commands

import (
	"context"
)

// UpdateReportCommandHandler applies verdict updates to reports.
type UpdateReportCommandHandler struct {
	uowFactory ReportUoWFactory
}

// NewUpdateReportCommandHandler creates a handler for report verdict
// updates.
func NewUpdateReportCommandHandler(uowFactory ReportUoWFactory) UpdateReportCommandHandler {
	return UpdateReportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the report update command.
func (h UpdateReportCommandHandler) Handle(ctx context.Context, cmd UpdateReportCommand) error {
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

	aggregate, err := uow.ReportRepository().Get(ctx, cmd.ReportID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateResult(
		cmd.FinalResult(), cmd.IsResultValid(), cmd.Summary(), cmd.Observations()); err != nil {
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
