package commands

import (
	"errors"

	"verification/internal/pkg/guard"
)

var ErrAssignPendingOrderCommandIsNotConstructed = errors.New(
	"AssignPendingOrderCommand must be created via NewAssignPendingOrderCommand constructor",
)

// AssignPendingOrderCommand triggers the automatic assignment of the
// oldest pending order to the least-loaded eligible verifier. This is a
// parameterless command issued periodically by the assignment job.
type AssignPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingOrderCommand creates a new command to trigger
// auto-dispatch.
func NewAssignPendingOrderCommand() AssignPendingOrderCommand {
	return AssignPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignPendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingOrderCommandIsNotConstructed)
}
