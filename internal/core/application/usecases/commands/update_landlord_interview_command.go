package commands

import (
	"errors"
	"strings"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/report"
	"verification/internal/pkg/errs"
	"verification/internal/pkg/guard"
)

var ErrUpdateLandlordInterviewCommandIsNotConstructed = errors.New(
	"UpdateLandlordInterviewCommand must be created via NewUpdateLandlordInterviewCommand constructor",
)

// InterviewParams carries the raw landlord interview answers.
type InterviewParams struct {
	LandlordName    string
	LandlordPhone   string
	Interviewed     bool
	ConfirmsTenancy bool
	Notes           string
}

// UpdateLandlordInterviewCommand supplies the missing landlord interview
// for a tenant client's report. It is addressed by order, not by report:
// callers supplying interview data know the order they visited.
type UpdateLandlordInterviewCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	interview report.LandlordInterview

	guard guard.ConstructorGuard
}

// NewUpdateLandlordInterviewCommand creates a command to record the
// landlord interview of an order's report.
func NewUpdateLandlordInterviewCommand(orderID int64, interview InterviewParams) (UpdateLandlordInterviewCommand, error) {
	command := UpdateLandlordInterviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setInterview(interview),
	); err != nil {
		return UpdateLandlordInterviewCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLandlordInterviewCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLandlordInterviewCommandIsNotConstructed)
}

// OrderID returns the order whose report receives the interview.
func (c UpdateLandlordInterviewCommand) OrderID() kernel.ID {
	return c.orderID
}

// Interview returns the landlord's answers.
func (c UpdateLandlordInterviewCommand) Interview() report.LandlordInterview {
	return c.interview
}

func (c *UpdateLandlordInterviewCommand) setOrderID(raw int64) error {
	orderID, err := kernel.NewID(raw)
	if err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateLandlordInterviewCommand) setInterview(params InterviewParams) error {
	if strings.TrimSpace(params.LandlordName) == "" {
		return errs.NewValueIsRequiredError("landlord name")
	}

	c.interview = report.LandlordInterview{
		LandlordName:    strings.TrimSpace(params.LandlordName),
		LandlordPhone:   strings.TrimSpace(params.LandlordPhone),
		Interviewed:     params.Interviewed,
		ConfirmsTenancy: params.ConfirmsTenancy,
		Notes:           strings.TrimSpace(params.Notes),
	}
	return nil
}
