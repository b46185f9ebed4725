package commands

import (
	"errors"
	"strings"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/pkg/errs"
	"verification/internal/pkg/guard"
)

var ErrCreateVerifierCommandIsNotConstructed = errors.New(
	"CreateVerifierCommand must be created via NewCreateVerifierCommand constructor",
)

// CreateVerifierCommand registers a new field agent.
type CreateVerifierCommand struct { //nolint:recvcheck //using for validation
	name     string
	document kernel.DocumentNumber
	phone    kernel.PhoneNumber
	email    *kernel.Email
	schedule kernel.WorkSchedule

	guard guard.ConstructorGuard
}

// NewCreateVerifierCommand creates a command to register a field agent.
// The schedule is a Spanish day descriptor like "LUNES A VIERNES".
func NewCreateVerifierCommand(name, documentType, documentNumber, phone, email, schedule string) (CreateVerifierCommand, error) {
	command := CreateVerifierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setDocument(documentType, documentNumber),
		command.setPhone(phone),
		command.setEmail(email),
		command.setSchedule(schedule),
	); err != nil {
		return CreateVerifierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVerifierCommand) Validate() error {
	return c.guard.Validate(ErrCreateVerifierCommandIsNotConstructed)
}

// Name returns the verifier's full name.
func (c CreateVerifierCommand) Name() string {
	return c.name
}

// Document returns the verifier's identity document.
func (c CreateVerifierCommand) Document() kernel.DocumentNumber {
	return c.document
}

// Phone returns the verifier's contact phone.
func (c CreateVerifierCommand) Phone() kernel.PhoneNumber {
	return c.phone
}

// Email returns the verifier's optional contact email, nil when absent.
func (c CreateVerifierCommand) Email() *kernel.Email {
	return c.email
}

// Schedule returns the verifier's work schedule.
func (c CreateVerifierCommand) Schedule() kernel.WorkSchedule {
	return c.schedule
}

func (c *CreateVerifierCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("verifier name")
	}

	c.name = name
	return nil
}

func (c *CreateVerifierCommand) setDocument(documentType, documentNumber string) error {
	parsedType, err := kernel.DocumentTypeFromString(documentType)
	if err != nil {
		return err
	}

	document, err := kernel.NewDocumentNumber(parsedType, documentNumber)
	if err != nil {
		return err
	}

	c.document = document
	return nil
}

func (c *CreateVerifierCommand) setPhone(raw string) error {
	phone, err := kernel.NewPhoneNumber(raw)
	if err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *CreateVerifierCommand) setEmail(raw string) error {
	if raw == "" {
		return nil
	}

	email, err := kernel.NewEmail(raw)
	if err != nil {
		return err
	}

	c.email = &email
	return nil
}

func (c *CreateVerifierCommand) setSchedule(raw string) error {
	schedule, err := kernel.NewWorkSchedule(raw)
	if err != nil {
		return err
	}

	c.schedule = schedule
	return nil
}
