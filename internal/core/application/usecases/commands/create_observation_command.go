package commands

import (
	"errors"
	"strings"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/observation"
	"verification/internal/pkg/errs"
	"verification/internal/pkg/guard"
)

var ErrCreateObservationCommandIsNotConstructed = errors.New(
	"CreateObservationCommand must be created via NewCreateObservationCommand constructor",
)

// CreateObservationCommand records a defect against an order.
// The description length bounds are enforced later by the observation
// constructor; the command only checks presence.
type CreateObservationCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.ID
	observationType observation.Type
	description     string

	guard guard.ConstructorGuard
}

// NewCreateObservationCommand creates a command to record a defect.
func NewCreateObservationCommand(orderID int64, observationType, description string) (CreateObservationCommand, error) {
	command := CreateObservationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setObservationType(observationType),
		command.setDescription(description),
	); err != nil {
		return CreateObservationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateObservationCommand) Validate() error {
	return c.guard.Validate(ErrCreateObservationCommandIsNotConstructed)
}

// OrderID returns the order the defect is recorded against.
func (c CreateObservationCommand) OrderID() kernel.ID {
	return c.orderID
}

// ObservationType returns the defect category.
func (c CreateObservationCommand) ObservationType() observation.Type {
	return c.observationType
}

// Description returns the defect description.
func (c CreateObservationCommand) Description() string {
	return c.description
}

func (c *CreateObservationCommand) setOrderID(raw int64) error {
	orderID, err := kernel.NewID(raw)
	if err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateObservationCommand) setObservationType(raw string) error {
	observationType, err := observation.TypeFromString(raw)
	if err != nil {
		return err
	}

	c.observationType = observationType
	return nil
}

func (c *CreateObservationCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}
