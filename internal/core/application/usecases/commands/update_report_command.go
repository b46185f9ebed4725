package commands

import (
	"errors"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/pkg/guard"
)

var ErrUpdateReportCommandIsNotConstructed = errors.New(
	"UpdateReportCommand must be created via NewUpdateReportCommand constructor",
)

// UpdateReportCommand sets the verdict and narrative fields of a report.
// The observation requirement for OBSERVADO and RECHAZADO verdicts is
// enforced by the report aggregate when the command is handled.
type UpdateReportCommand struct { //nolint:recvcheck //using for validation
	reportID      kernel.ID
	finalResult   kernel.FinalResult
	isResultValid bool
	summary       string
	observations  []string

	guard guard.ConstructorGuard
}

// NewUpdateReportCommand creates a command to update a report's verdict.
func NewUpdateReportCommand(reportID int64, finalResult string, isResultValid bool, summary string, observations []string) (UpdateReportCommand, error) {
	command := UpdateReportCommand{
		isResultValid: isResultValid,
		summary:       summary,
		observations:  observations,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setReportID(reportID),
		command.setFinalResult(finalResult),
	); err != nil {
		return UpdateReportCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReportCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReportCommandIsNotConstructed)
}

// ReportID returns the report to update.
func (c UpdateReportCommand) ReportID() kernel.ID {
	return c.reportID
}

// FinalResult returns the requested verdict.
func (c UpdateReportCommand) FinalResult() kernel.FinalResult {
	return c.finalResult
}

// IsResultValid returns the reviewer's sign-off flag.
func (c UpdateReportCommand) IsResultValid() bool {
	return c.isResultValid
}

// Summary returns the free-text summary.
func (c UpdateReportCommand) Summary() string {
	return c.summary
}

// Observations returns the report-level observation notes.
func (c UpdateReportCommand) Observations() []string {
	return c.observations
}

func (c *UpdateReportCommand) setReportID(raw int64) error {
	reportID, err := kernel.NewID(raw)
	if err != nil {
		return err
	}

	c.reportID = reportID
	return nil
}

func (c *UpdateReportCommand) setFinalResult(raw string) error {
	finalResult, err := kernel.FinalResultFromString(raw)
	if err != nil {
		return err
	}

	c.finalResult = finalResult
	return nil
}
