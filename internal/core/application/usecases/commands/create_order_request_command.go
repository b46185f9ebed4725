package commands

import (
	"errors"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/order"
	"verification/internal/pkg/guard"
)

var ErrCreateOrderRequestCommandIsNotConstructed = errors.New(
	"CreateOrderRequestCommand must be created via NewCreateOrderRequestCommand constructor",
)

// ClientParams carries the raw client fields of an intake request.
type ClientParams struct {
	Name           string
	DocumentType   string
	DocumentNumber string
	Phone          string
	Email          string
	Street         string
	District       string
	Province       string
	Department     string
	Reference      string
	IsTenant       bool
	LandlordName   string
	LandlordPhone  string
}

// CompanyParams carries the raw company fields of an intake request.
type CompanyParams struct {
	LegalName   string
	Ruc         string
	ContactName string
	Phone       string
	Email       string
}

// CreateOrderRequestCommand represents a request to register a new
// verification order. All raw fields are parsed into domain value objects
// at construction, so a constructed command always carries a valid client
// and company.
type CreateOrderRequestCommand struct { //nolint:recvcheck //using for validation
	orderCode kernel.OrderCode
	client    order.Client
	company   order.Company

	guard guard.ConstructorGuard
}

// NewCreateOrderRequestCommand creates a command to register a new
// verification order. Returns an error when any field fails domain
// validation, including the tenant/landlord consistency rule.
func NewCreateOrderRequestCommand(orderCode string, client ClientParams, company CompanyParams) (CreateOrderRequestCommand, error) {
	command := CreateOrderRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderCode(orderCode),
		command.setClient(client),
		command.setCompany(company),
	); err != nil {
		return CreateOrderRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderRequestCommandIsNotConstructed)
}

// OrderCode returns the unique business key of the new order.
func (c CreateOrderRequestCommand) OrderCode() kernel.OrderCode {
	return c.orderCode
}

// Client returns the validated client of the new order.
func (c CreateOrderRequestCommand) Client() order.Client {
	return c.client
}

// Company returns the validated requesting company of the new order.
func (c CreateOrderRequestCommand) Company() order.Company {
	return c.company
}

func (c *CreateOrderRequestCommand) setOrderCode(raw string) error {
	orderCode, err := kernel.NewOrderCode(raw)
	if err != nil {
		return err
	}

	c.orderCode = orderCode
	return nil
}

func (c *CreateOrderRequestCommand) setClient(params ClientParams) error {
	documentType, err := kernel.DocumentTypeFromString(params.DocumentType)
	if err != nil {
		return err
	}
	document, err := kernel.NewDocumentNumber(documentType, params.DocumentNumber)
	if err != nil {
		return err
	}
	phone, err := kernel.NewPhoneNumber(params.Phone)
	if err != nil {
		return err
	}
	address, err := kernel.NewAddress(
		params.Street, params.District, params.Province, params.Department, params.Reference)
	if err != nil {
		return err
	}

	var email *kernel.Email
	if params.Email != "" {
		parsed, emailErr := kernel.NewEmail(params.Email)
		if emailErr != nil {
			return emailErr
		}
		email = &parsed
	}

	client, err := order.NewClient(
		params.Name, document, phone, email, address,
		params.IsTenant, params.LandlordName, params.LandlordPhone)
	if err != nil {
		return err
	}

	c.client = client
	return nil
}

func (c *CreateOrderRequestCommand) setCompany(params CompanyParams) error {
	ruc, err := kernel.NewRuc(params.Ruc)
	if err != nil {
		return err
	}
	phone, err := kernel.NewPhoneNumber(params.Phone)
	if err != nil {
		return err
	}

	var email *kernel.Email
	if params.Email != "" {
		parsed, emailErr := kernel.NewEmail(params.Email)
		if emailErr != nil {
			return emailErr
		}
		email = &parsed
	}

	company, err := order.NewCompany(params.LegalName, ruc, params.ContactName, phone, email)
	if err != nil {
		return err
	}

	c.company = company
	return nil
}
