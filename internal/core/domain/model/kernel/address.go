package kernel

import (
	"strings"

	"verification/internal/pkg/errs"
)

// Address is the value object for a site-visit destination.
// The street is required; district, province, department and the free-text
// reference are optional context used by the verifier to locate the site.
type Address struct {
	street     string
	district   string
	province   string
	department string
	reference  string
}

// NewAddress validates and wraps a visit address.
// All fields are trimmed; only the street is required.
func NewAddress(street, district, province, department, reference string) (Address, error) {
	street = strings.TrimSpace(street)
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}

	return Address{
		street:     street,
		district:   strings.TrimSpace(district),
		province:   strings.TrimSpace(province),
		department: strings.TrimSpace(department),
		reference:  strings.TrimSpace(reference),
	}, nil
}

// Street returns the required street line.
func (a Address) Street() string {
	return a.street
}

// District returns the optional district.
func (a Address) District() string {
	return a.district
}

// Province returns the optional province.
func (a Address) Province() string {
	return a.province
}

// Department returns the optional department.
func (a Address) Department() string {
	return a.department
}

// Reference returns the optional free-text location hint.
func (a Address) Reference() string {
	return a.reference
}

// String joins the non-empty address parts with commas.
func (a Address) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.street, a.district, a.province, a.department} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a == other
}

// Validate returns an error for a zero-value Address.
func (a Address) Validate() error {
	if a.street == "" {
		return errs.NewValueIsRequiredError("Address must be created via NewAddress")
	}
	return nil
}
