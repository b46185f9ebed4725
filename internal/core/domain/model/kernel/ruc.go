package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"verification/internal/pkg/errs"
)

var rucPattern = regexp.MustCompile(`^(10|20)\d{9}$`)

// Ruc is a value object for a company tax registration number.
// A valid RUC has exactly 11 digits and starts with 10 (natural person)
// or 20 (legal entity).
type Ruc struct {
	value string
}

// NewRuc validates and wraps a RUC.
func NewRuc(raw string) (Ruc, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Ruc{}, errs.NewValueIsRequiredError("ruc")
	}

	if !rucPattern.MatchString(value) {
		return Ruc{}, errs.NewValueIsInvalidErrorWithCause("ruc",
			fmt.Errorf("%q is not a valid RUC, expected 11 digits starting with 10 or 20", raw))
	}

	return Ruc{value: value}, nil
}

// Value returns the validated RUC.
func (r Ruc) Value() string {
	return r.value
}

// String implements fmt.Stringer.
func (r Ruc) String() string {
	return r.value
}

// IsEqual compares two RUCs by value.
func (r Ruc) IsEqual(other Ruc) bool {
	return r.value == other.value
}

// Validate returns an error for a zero-value Ruc.
func (r Ruc) Validate() error {
	if r.value == "" {
		return errs.NewValueIsRequiredError("Ruc must be created via NewRuc")
	}
	return nil
}
