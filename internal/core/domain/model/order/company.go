package order

import (
	"errors"
	"strings"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/pkg/errs"
	"verification/internal/pkg/guard"
)

// Domain errors for company construction.
var (
	// ErrCompanyNameIsRequired is returned when the legal name is empty.
	ErrCompanyNameIsRequired = errs.NewValueIsRequiredError("company legal name")
	// ErrCompanyIsNotConstructed is returned when using an improperly
	// initialized Company.
	ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany constructor")
)

// Company is the requesting organization paying for the verification.
type Company struct {
	legalName   string
	ruc         kernel.Ruc
	contactName string
	phone       kernel.PhoneNumber
	email       *kernel.Email

	guard guard.ConstructorGuard
}

// NewCompany creates a validated Company.
// Legal name, RUC and contact phone are required; the contact person name
// and email are optional.
func NewCompany(
	legalName string,
	ruc kernel.Ruc,
	contactName string,
	phone kernel.PhoneNumber,
	email *kernel.Email,
) (Company, error) {
	company := Company{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		company.setLegalName(legalName),
		company.setRuc(ruc),
		company.setContact(contactName, phone, email),
	); err != nil {
		return Company{}, err
	}

	return company, nil
}

// Validate ensures the company was created through NewCompany.
func (c Company) Validate() error {
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

// LegalName returns the registered company name.
func (c Company) LegalName() string {
	return c.legalName
}

// Ruc returns the company tax registration number.
func (c Company) Ruc() kernel.Ruc {
	return c.ruc
}

// ContactName returns the optional contact person name.
func (c Company) ContactName() string {
	return c.contactName
}

// Phone returns the company contact phone.
func (c Company) Phone() kernel.PhoneNumber {
	return c.phone
}

// Email returns the optional contact email, nil when absent.
func (c Company) Email() *kernel.Email {
	return c.email
}

func (c *Company) setLegalName(legalName string) error {
	legalName = strings.TrimSpace(legalName)
	if legalName == "" {
		return ErrCompanyNameIsRequired
	}
	c.legalName = legalName
	return nil
}

func (c *Company) setRuc(ruc kernel.Ruc) error {
	if err := ruc.Validate(); err != nil {
		return err
	}
	c.ruc = ruc
	return nil
}

func (c *Company) setContact(contactName string, phone kernel.PhoneNumber, email *kernel.Email) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	if email != nil {
		if err := email.Validate(); err != nil {
			return err
		}
		c.email = email
	}
	c.contactName = strings.TrimSpace(contactName)
	c.phone = phone
	return nil
}
