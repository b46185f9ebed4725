package commands

import (
	"errors"
	"time"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/pkg/guard"
)

var ErrAssignVerifierCommandIsNotConstructed = errors.New(
	"AssignVerifierCommand must be created via NewAssignVerifierCommand constructor",
)

// AssignVerifierCommand represents a manual request to assign a specific
// verifier to an order with a scheduled visit slot. The visit date must be
// today or later at construction time.
type AssignVerifierCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	verifierID kernel.ID
	visitDate  kernel.VisitDate
	visitTime  kernel.VisitTime

	guard guard.ConstructorGuard
}

// NewAssignVerifierCommand creates a command to assign a verifier to an
// order. Validates that both IDs are positive, the visit date is today or
// later, and the visit time is a valid HH:MM value.
func NewAssignVerifierCommand(orderID, verifierID int64, visitDate time.Time, visitTime string) (AssignVerifierCommand, error) {
	command := AssignVerifierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setVerifierID(verifierID),
		command.setVisitDate(visitDate),
		command.setVisitTime(visitTime),
	); err != nil {
		return AssignVerifierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVerifierCommand) Validate() error {
	return c.guard.Validate(ErrAssignVerifierCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignVerifierCommand) OrderID() kernel.ID {
	return c.orderID
}

// VerifierID returns the verifier to assign.
func (c AssignVerifierCommand) VerifierID() kernel.ID {
	return c.verifierID
}

// VisitDate returns the scheduled visit day.
func (c AssignVerifierCommand) VisitDate() kernel.VisitDate {
	return c.visitDate
}

// VisitTime returns the scheduled visit time.
func (c AssignVerifierCommand) VisitTime() kernel.VisitTime {
	return c.visitTime
}

func (c *AssignVerifierCommand) setOrderID(raw int64) error {
	orderID, err := kernel.NewID(raw)
	if err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignVerifierCommand) setVerifierID(raw int64) error {
	verifierID, err := kernel.NewID(raw)
	if err != nil {
		return err
	}

	c.verifierID = verifierID
	return nil
}

func (c *AssignVerifierCommand) setVisitDate(raw time.Time) error {
	visitDate, err := kernel.NewVisitDate(raw)
	if err != nil {
		return err
	}

	c.visitDate = visitDate
	return nil
}

func (c *AssignVerifierCommand) setVisitTime(raw string) error {
	visitTime, err := kernel.NewVisitTime(raw)
	if err != nil {
		return err
	}

	c.visitTime = visitTime
	return nil
}
