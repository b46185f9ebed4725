package order

import (
	"errors"
	"strings"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/pkg/errs"
	"verification/internal/pkg/guard"
)

// Domain errors for client construction.
var (
	// ErrClientNameIsRequired is returned when the client name is empty.
	ErrClientNameIsRequired = errs.NewValueIsRequiredError("client name")
	// ErrLandlordDataIsRequired is returned when a tenant client is missing
	// the landlord name or phone.
	ErrLandlordDataIsRequired = errs.NewValueIsRequiredError(
		"landlord name and phone are required for tenant clients")
	// ErrLandlordDataIsForbidden is returned when a non-tenant client carries
	// landlord data.
	ErrLandlordDataIsForbidden = errs.NewValueIsInvalidError(
		"landlord data is only allowed for tenant clients")
	// ErrClientIsNotConstructed is returned when using an improperly
	// initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
)

// Landlord holds the landlord sub-record attached to tenant clients.
type Landlord struct {
	name  string
	phone kernel.PhoneNumber
}

// Name returns the landlord's name.
func (l Landlord) Name() string {
	return l.name
}

// Phone returns the landlord's phone number.
func (l Landlord) Phone() kernel.PhoneNumber {
	return l.phone
}

// Client is the person whose home or workplace is being verified.
//
// Invariant: the landlord sub-record is present iff the client is a tenant.
// Both sides are enforced at construction, so a persisted client can never
// carry inconsistent tenancy data.
type Client struct {
	name     string
	document kernel.DocumentNumber
	phone    kernel.PhoneNumber
	email    *kernel.Email
	address  kernel.Address
	isTenant bool
	landlord *Landlord

	guard guard.ConstructorGuard
}

// NewClient creates a validated Client.
//
// Parameters:
//   - name: full client name (required)
//   - document: validated identity document
//   - phone: validated contact phone
//   - email: optional contact email (nil when absent)
//   - address: validated visit address
//   - isTenant: whether the client rents the dwelling
//   - landlordName, landlordPhone: required iff isTenant, must be empty otherwise
func NewClient(
	name string,
	document kernel.DocumentNumber,
	phone kernel.PhoneNumber,
	email *kernel.Email,
	address kernel.Address,
	isTenant bool,
	landlordName string,
	landlordPhone string,
) (Client, error) {
	client := Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		client.setName(name),
		client.setDocument(document),
		client.setPhone(phone),
		client.setEmail(email),
		client.setAddress(address),
		client.setTenancy(isTenant, landlordName, landlordPhone),
	); err != nil {
		return Client{}, err
	}

	return client, nil
}

// Validate ensures the client was created through NewClient.
func (c Client) Validate() error {
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// Name returns the client's full name.
func (c Client) Name() string {
	return c.name
}

// Document returns the client's identity document.
func (c Client) Document() kernel.DocumentNumber {
	return c.document
}

// Phone returns the client's contact phone.
func (c Client) Phone() kernel.PhoneNumber {
	return c.phone
}

// Email returns the client's optional contact email, nil when absent.
func (c Client) Email() *kernel.Email {
	return c.email
}

// Address returns the visit address.
func (c Client) Address() kernel.Address {
	return c.address
}

// IsTenant reports whether the client rents the dwelling.
func (c Client) IsTenant() bool {
	return c.isTenant
}

// Landlord returns the landlord sub-record, nil for non-tenant clients.
func (c Client) Landlord() *Landlord {
	return c.landlord
}

func (c *Client) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrClientNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Client) setDocument(document kernel.DocumentNumber) error {
	if err := document.Validate(); err != nil {
		return err
	}
	c.document = document
	return nil
}

func (c *Client) setPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Client) setEmail(email *kernel.Email) error {
	if email == nil {
		return nil
	}
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Client) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *Client) setTenancy(isTenant bool, landlordName, landlordPhone string) error {
	landlordName = strings.TrimSpace(landlordName)
	landlordPhone = strings.TrimSpace(landlordPhone)

	if !isTenant {
		if landlordName != "" || landlordPhone != "" {
			return ErrLandlordDataIsForbidden
		}
		return nil
	}

	if landlordName == "" || landlordPhone == "" {
		return ErrLandlordDataIsRequired
	}

	phone, err := kernel.NewPhoneNumber(landlordPhone)
	if err != nil {
		return err
	}

	c.isTenant = true
	c.landlord = &Landlord{name: landlordName, phone: phone}
	return nil
}
