package observation

import (
	"fmt"

	"verification/internal/pkg/errs"
)

// Status represents the resolution state of an observation.
//
// Unlike the order state machine, no transition table exists for
// observations: any valid status may be set directly, and only the
// resolved-date invariant couples status to the rest of the record.
//
// The canonical set is PENDIENTE, EN_REVISION, SUBSANADA, RECHAZADA.
// RESUELTA is a legacy value kept for records written by the previous
// reporting module; it is treated as resolved but never produced by new
// workflow operations.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pendiente means the defect is recorded and awaiting action.
	Pendiente

	// EnRevision means the defect is being reviewed by the back office.
	EnRevision

	// Subsanada means the defect was corrected and verified.
	Subsanada

	// Rechazada means the correction attempt was rejected.
	Rechazada

	// Resuelta is the legacy resolved value from the reporting module.
	// Kept as a read alias; new status updates should use Subsanada.
	Resuelta
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Pendiente:     "PENDIENTE",
		EnRevision:    "EN_REVISION",
		Subsanada:     "SUBSANADA",
		Rechazada:     "RECHAZADA",
		Resuelta:      "RESUELTA",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pendiente:  "PENDIENTE",
		EnRevision: "EN_REVISION",
		Subsanada:  "SUBSANADA",
		Rechazada:  "RECHAZADA",
		Resuelta:   "RESUELTA",
	}
}

// Validate checks if the Status is one of the storable values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("observation status",
			fmt.Errorf("%d is not a valid observation status", s))
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
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("observation status",
		fmt.Errorf("%q is not a valid observation status", str))
}

// IsPending reports whether the observation still awaits action.
func (s Status) IsPending() bool {
	return s == Pendiente
}

// IsResolved reports whether the status indicates a corrected defect,
// covering both the canonical SUBSANADA and the legacy RESUELTA.
func (s Status) IsResolved() bool {
	return s == Subsanada || s == Resuelta
}
