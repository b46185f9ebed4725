package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"verification/internal/pkg/errs"
)

var visitTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// VisitTime is the value object for the scheduled visit time of day,
// stored as "HH:MM" in 24-hour format.
type VisitTime struct {
	value string
}

// NewVisitTime validates and wraps a visit time.
func NewVisitTime(raw string) (VisitTime, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return VisitTime{}, errs.NewValueIsRequiredError("visit time")
	}

	if !visitTimePattern.MatchString(value) {
		return VisitTime{}, errs.NewValueIsInvalidErrorWithCause("visit time",
			fmt.Errorf("%q is not a valid time, expected HH:MM in 24-hour format", raw))
	}

	return VisitTime{value: value}, nil
}

// Value returns the "HH:MM" visit time.
func (t VisitTime) Value() string {
	return t.value
}

// String implements fmt.Stringer.
func (t VisitTime) String() string {
	return t.value
}

// IsEqual compares two visit times by value.
func (t VisitTime) IsEqual(other VisitTime) bool {
	return t.value == other.value
}

// Validate returns an error for a zero-value VisitTime.
func (t VisitTime) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("VisitTime must be created via NewVisitTime")
	}
	return nil
}
