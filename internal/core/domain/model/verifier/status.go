package verifier

import (
	"fmt"

	"verification/internal/pkg/errs"
)

// Status represents the availability of a verifier for assignment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Activo marks a verifier eligible for new assignments.
	Activo

	// Inactivo marks a verifier excluded from assignment.
	Inactivo
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Activo:        "ACTIVO",
		Inactivo:      "INACTIVO",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Activo:   "ACTIVO",
		Inactivo: "INACTIVO",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("verifier status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire name into a Status.
func StatusFromString(str string) (Status, error) {
	for s, name := range getValidStatusStrings() {
		if name == str {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("verifier status",
		fmt.Errorf("%q is not a valid status", str))
}
