package kernel

import (
	"fmt"
	"strconv"

	"verification/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not created through NewID
// or restored from persistence.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object wrapping the numeric identity assigned by the
// persistence collaborator. A valid ID is always positive; the zero value
// represents "not yet persisted" and fails validation.
//
// ID is immutable and safe for concurrent use.
type ID struct {
	value int64
}

// NewID wraps a persistence-assigned identifier.
// Returns an error when the value is not positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// Value returns the numeric identifier.
func (i ID) Value() int64 {
	return i.value
}

// String returns the decimal representation of the identifier.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsZero reports whether the ID has not been assigned yet.
func (i ID) IsZero() bool {
	return i.value == 0
}

// IsEqual compares two IDs by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate returns ErrIDIsNotConstructed for a zero-value ID.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
