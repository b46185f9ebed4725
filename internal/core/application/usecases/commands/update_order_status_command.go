package commands

import (
	"errors"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/order"
	"verification/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand performs a generic guarded status transition.
// It covers the OBSERVADO and SUBSANADA paths that have no dedicated
// command; the transition table still applies.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command for a guarded status
// transition. The status is parsed from its wire name; whether the
// transition is legal is decided against the loaded order.
func NewUpdateOrderStatusCommand(orderID int64, newStatus string) (UpdateOrderStatusCommand, error) {
	command := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *UpdateOrderStatusCommand) setOrderID(raw int64) error {
	orderID, err := kernel.NewID(raw)
	if err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(raw string) error {
	status, err := order.StatusFromString(raw)
	if err != nil {
		return err
	}

	c.newStatus = status
	return nil
}
