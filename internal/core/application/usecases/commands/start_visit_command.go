package commands

import (
	"errors"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/pkg/guard"
)

var ErrStartVisitCommandIsNotConstructed = errors.New(
	"StartVisitCommand must be created via NewStartVisitCommand constructor",
)

// StartVisitCommand marks the site visit of an assigned order as underway.
type StartVisitCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewStartVisitCommand creates a command to start the site visit.
func NewStartVisitCommand(orderID int64) (StartVisitCommand, error) {
	command := StartVisitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return StartVisitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartVisitCommand) Validate() error {
	return c.guard.Validate(ErrStartVisitCommandIsNotConstructed)
}

// OrderID returns the order whose visit starts.
func (c StartVisitCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *StartVisitCommand) setOrderID(raw int64) error {
	orderID, err := kernel.NewID(raw)
	if err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
