package kernel

import (
	"strings"

	"verification/internal/pkg/errs"
)

const (
	orderCodeMinLength = 3
	orderCodeMaxLength = 20
)

// OrderCode is the unique business key of a verification order.
// Construction trims surrounding whitespace and uppercases the code;
// the result must be between 3 and 20 characters.
type OrderCode struct {
	value string
}

// NewOrderCode normalizes and validates an order code.
func NewOrderCode(raw string) (OrderCode, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return OrderCode{}, errs.NewValueIsRequiredError("order code")
	}

	if len(value) < orderCodeMinLength || len(value) > orderCodeMaxLength {
		return OrderCode{}, errs.NewValueIsOutOfRangeError(
			"order code length", len(value), orderCodeMinLength, orderCodeMaxLength)
	}

	return OrderCode{value: value}, nil
}

// Value returns the normalized order code.
func (c OrderCode) Value() string {
	return c.value
}

// String implements fmt.Stringer.
func (c OrderCode) String() string {
	return c.value
}

// IsEqual compares two order codes by normalized value.
func (c OrderCode) IsEqual(other OrderCode) bool {
	return c.value == other.value
}

// Validate returns an error for a zero-value OrderCode.
func (c OrderCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("OrderCode must be created via NewOrderCode")
	}
	return nil
}
