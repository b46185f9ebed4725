package kernel

import (
	"strings"
	"unicode"

	"verification/internal/pkg/errs"
)

const (
	phoneMinDigits = 6
	phoneMaxDigits = 9
)

// PhoneNumber is a value object for a contact phone number.
// Construction strips all formatting (spaces, dashes, parentheses) and keeps
// only digits, so "(987) 654-321" and "987654321" produce equal objects.
// The normalized number must have between 6 and 9 digits, covering both
// landlines and mobiles.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber normalizes and validates a phone number.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	normalized := b.String()
	if normalized == "" {
		return PhoneNumber{}, errs.NewValueIsRequiredError("phone number")
	}

	if len(normalized) < phoneMinDigits || len(normalized) > phoneMaxDigits {
		return PhoneNumber{}, errs.NewValueIsOutOfRangeError(
			"phone number digits", len(normalized), phoneMinDigits, phoneMaxDigits)
	}

	return PhoneNumber{value: normalized}, nil
}

// Value returns the normalized digits-only phone number.
func (p PhoneNumber) Value() string {
	return p.value
}

// String implements fmt.Stringer.
func (p PhoneNumber) String() string {
	return p.value
}

// IsEqual compares two phone numbers by normalized value.
func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.value == other.value
}

// Validate returns an error for a zero-value PhoneNumber.
func (p PhoneNumber) Validate() error {
	if p.value == "" {
		return errs.NewValueIsRequiredError("PhoneNumber must be created via NewPhoneNumber")
	}
	return nil
}
