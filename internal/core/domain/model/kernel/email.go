package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"verification/internal/pkg/errs"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email is a value object for a contact email address.
// Construction trims surrounding whitespace and lowercases the address
// before validating its shape.
type Email struct {
	value string
}

// NewEmail normalizes and validates an email address.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	if !emailPattern.MatchString(normalized) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", raw))
	}

	return Email{value: normalized}, nil
}

// Value returns the normalized email address.
func (e Email) Value() string {
	return e.value
}

// String implements fmt.Stringer.
func (e Email) String() string {
	return e.value
}

// IsEqual compares two emails by normalized value.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// Validate returns an error for a zero-value Email.
func (e Email) Validate() error {
	if e.value == "" {
		return errs.NewValueIsRequiredError("Email must be created via NewEmail")
	}
	return nil
}
