package commands

import (
	"errors"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/observation"
	"verification/internal/pkg/guard"
)

var ErrUpdateObservationStatusCommandIsNotConstructed = errors.New(
	"UpdateObservationStatusCommand must be created via NewUpdateObservationStatusCommand constructor",
)

// UpdateObservationStatusCommand moves an observation through its
// resolution sub-lifecycle. There is no transition table; any valid
// status is individually settable.
type UpdateObservationStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.ID
	observationID kernel.ID
	newStatus     observation.Status

	guard guard.ConstructorGuard
}

// NewUpdateObservationStatusCommand creates a command to update an
// observation's resolution status.
func NewUpdateObservationStatusCommand(orderID, observationID int64, newStatus string) (UpdateObservationStatusCommand, error) {
	command := UpdateObservationStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setObservationID(observationID),
		command.setNewStatus(newStatus),
	); err != nil {
		return UpdateObservationStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateObservationStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateObservationStatusCommandIsNotConstructed)
}

// OrderID returns the owning order.
func (c UpdateObservationStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

// ObservationID returns the observation to update.
func (c UpdateObservationStatusCommand) ObservationID() kernel.ID {
	return c.observationID
}

// NewStatus returns the requested resolution status.
func (c UpdateObservationStatusCommand) NewStatus() observation.Status {
	return c.newStatus
}

func (c *UpdateObservationStatusCommand) setOrderID(raw int64) error {
	orderID, err := kernel.NewID(raw)
	if err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateObservationStatusCommand) setObservationID(raw int64) error {
	observationID, err := kernel.NewID(raw)
	if err != nil {
		return err
	}

	c.observationID = observationID
	return nil
}

func (c *UpdateObservationStatusCommand) setNewStatus(raw string) error {
	status, err := observation.StatusFromString(raw)
	if err != nil {
		return err
	}

	c.newStatus = status
	return nil
}
