package commands

import (
	"errors"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand finishes a verification visit. Completion creates
// the report skeleton under the given report code in the same transaction.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	reportCode kernel.ReportCode

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order and open
// its report.
func NewCompleteOrderCommand(orderID int64, reportCode string) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setReportCode(reportCode),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// ReportCode returns the business key for the new report.
func (c CompleteOrderCommand) ReportCode() kernel.ReportCode {
	return c.reportCode
}

func (c *CompleteOrderCommand) setOrderID(raw int64) error {
	orderID, err := kernel.NewID(raw)
	if err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setReportCode(raw string) error {
	reportCode, err := kernel.NewReportCode(raw)
	if err != nil {
		return err
	}

	c.reportCode = reportCode
	return nil
}
