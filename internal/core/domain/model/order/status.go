package order

import (
	"errors"
	"fmt"

	"verification/internal/pkg/errs"
)

// ErrStatusTransitionNotAllowed rejects a move the transition table forbids.
// It marks a business-rule violation on a well-formed request, as opposed to
// the validation errors raised for malformed values.
var ErrStatusTransitionNotAllowed = errors.New("status transition is not allowed")

// Status represents the lifecycle state of a verification order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	PENDIENTE ──┬──> ASIGNADO ──> EN_PROCESO ──> COMPLETADA
//	            │        │             │
//	            │        v             v
//	            ├──> OBSERVADO ──> SUBSANADA ──> (ASIGNADO | EN_PROCESO)
//	            │        │
//	            └────────┴──────> CANCELADA
//
// COMPLETADA and CANCELADA are terminal. ENTREVISTA_FALTANTE is a valid
// stored status written only by the persistence collaborator; it has no
// transitions in either direction.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pendiente is the initial status when an order request is received.
	// Orders in this status are waiting to be assigned to a verifier.
	Pendiente

	// Asignado indicates a verifier has been assigned and a visit is scheduled.
	Asignado

	// EnProceso indicates the site visit is underway.
	EnProceso

	// Completada indicates the verification finished and a report exists.
	// This is a final state with no further transitions allowed.
	Completada

	// Cancelada indicates the order was cancelled.
	// This is a final state with no further transitions allowed.
	Cancelada

	// Observado indicates defects were recorded that block progress.
	Observado

	// Subsanada indicates the recorded defects were resolved and the order
	// may re-enter the assignment or visit flow.
	Subsanada

	// EntrevistaFaltante indicates the landlord interview is missing.
	// Set only by the persistence collaborator; no guarded transitions exist.
	EntrevistaFaltante
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "UNKNOWN",
		Pendiente:          "PENDIENTE",
		Asignado:           "ASIGNADO",
		EnProceso:          "EN_PROCESO",
		Completada:         "COMPLETADA",
		Cancelada:          "CANCELADA",
		Observado:          "OBSERVADO",
		Subsanada:          "SUBSANADA",
		EntrevistaFaltante: "ENTREVISTA_FALTANTE",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pendiente:          "PENDIENTE",
		Asignado:           "ASIGNADO",
		EnProceso:          "EN_PROCESO",
		Completada:         "COMPLETADA",
		Cancelada:          "CANCELADA",
		Observado:          "OBSERVADO",
		Subsanada:          "SUBSANADA",
		EntrevistaFaltante: "ENTREVISTA_FALTANTE",
	}
}

// legalTransitions is the closed transition table of the order state machine.
// Any (source, target) pair not present here is rejected by the guard.
func legalTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pendiente: {Asignado, Cancelada, Observado},
		Asignado:  {EnProceso, Cancelada, Observado},
		EnProceso: {Completada, Cancelada, Observado},
		Observado: {Subsanada, Cancelada},
		Subsanada: {Asignado, EnProceso},
	}
}

// Validate checks if the Status value is one of the stored statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports whether the status has no outgoing transitions
// in the guarded workflow.
func (s Status) IsTerminal() bool {
	return s == Completada || s == Cancelada
}

// IsValidStatusTransition is the pure transition guard of the order state
// machine. It reports whether moving from current to next is listed in the
// transition table; it performs no mutation. Callers must consult the guard
// with their last known snapshot of the current status before submitting a
// status-mutating update. The guard never re-derives authoritative state,
// so staleness is the caller's responsibility.
func IsValidStatusTransition(current, next Status) bool {
	for _, target := range legalTransitions()[current] {
		if target == next {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether the transition from s to next is legal.
func (s Status) CanTransitionTo(next Status) bool {
	return IsValidStatusTransition(s, next)
}

// TransitionTo returns next when the transition from s is legal.
//
// Returns:
//   - (next, nil) on a legal transition
//   - (0, error) when the transition table forbids the move
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !IsValidStatusTransition(s, next) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionNotAllowed, s, next)
	}

	return next, nil
}
