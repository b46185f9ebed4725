package commands

import (
	"context"

	"verification/internal/core/domain/model/verifier"
)

// CreateVerifierCommandHandler registers new field agents in ACTIVO status.
type CreateVerifierCommandHandler struct {
	uowFactory VerifierUoWFactory
}

// NewCreateVerifierCommandHandler creates a handler for verifier
// registration operations.
func NewCreateVerifierCommandHandler(uowFactory VerifierUoWFactory) CreateVerifierCommandHandler {
	return CreateVerifierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verifier registration command.
func (h CreateVerifierCommandHandler) Handle(ctx context.Context, cmd CreateVerifierCommand) error {
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

	agent, err := verifier.NewVerifier(
		cmd.Name(), cmd.Document(), cmd.Phone(), cmd.Email(), cmd.Schedule())
	if err != nil {
		return err
	}

	if err = uow.VerifierRepository().Add(ctx, agent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
