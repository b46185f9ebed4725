package verifier

import (
	"errors"
	"strings"
	"time"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/pkg/errs"
	"verification/internal/pkg/guard"
)

// Domain errors for verifier operations.
var (
	// ErrVerifierIsNotConstructed is returned when using an improperly
	// initialized Verifier.
	ErrVerifierIsNotConstructed = errors.New(
		"Verifier must be created via NewVerifier constructor")
	// ErrVerifierNameIsRequired is returned when the verifier name is empty.
	ErrVerifierNameIsRequired = errs.NewValueIsRequiredError("verifier name")
)

// Verifier is a field agent who performs site visits.
//
// A verifier is eligible for assignment when active and when the visit day
// falls inside the work schedule. Eligibility is evaluated by the
// assignment service; the entity only answers the individual questions.
type Verifier struct {
	id       kernel.ID
	name     string
	document kernel.DocumentNumber
	phone    kernel.PhoneNumber
	email    *kernel.Email
	status   Status
	schedule kernel.WorkSchedule

	guard guard.ConstructorGuard
}

// NewVerifier registers a new field agent in ACTIVO status.
func NewVerifier(
	name string,
	document kernel.DocumentNumber,
	phone kernel.PhoneNumber,
	email *kernel.Email,
	schedule kernel.WorkSchedule,
) (*Verifier, error) {
	verifier := &Verifier{
		status: Activo,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		verifier.setName(name),
		verifier.setDocument(document),
		verifier.setPhone(phone),
		verifier.setEmail(email),
		verifier.setSchedule(schedule),
	); err != nil {
		return nil, err
	}

	return verifier, nil
}

// RestoreVerifier reconstructs a Verifier from persistence.
func RestoreVerifier(
	id kernel.ID,
	name string,
	document kernel.DocumentNumber,
	phone kernel.PhoneNumber,
	email *kernel.Email,
	status Status,
	schedule kernel.WorkSchedule,
) (*Verifier, error) {
	verifier := &Verifier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		verifier.setID(id),
		verifier.setName(name),
		verifier.setDocument(document),
		verifier.setPhone(phone),
		verifier.setEmail(email),
		verifier.setStatus(status),
		verifier.setSchedule(schedule),
	); err != nil {
		return nil, err
	}

	return verifier, nil
}

// Validate ensures the verifier was created through a constructor.
func (v *Verifier) Validate() error {
	if v == nil {
		return ErrVerifierIsNotConstructed
	}
	return v.guard.Validate(ErrVerifierIsNotConstructed)
}

// ID returns the verifier identifier, zero until persisted.
func (v *Verifier) ID() kernel.ID {
	return v.id
}

// SetID records the persistence-assigned identifier.
// It can only be set once.
func (v *Verifier) SetID(id kernel.ID) error {
	if !v.id.IsZero() {
		return errs.NewValueIsInvalidError("verifier id is already assigned")
	}
	return v.setID(id)
}

// Name returns the verifier's full name.
func (v *Verifier) Name() string {
	return v.name
}

// Document returns the verifier's identity document.
func (v *Verifier) Document() kernel.DocumentNumber {
	return v.document
}

// Phone returns the verifier's contact phone.
func (v *Verifier) Phone() kernel.PhoneNumber {
	return v.phone
}

// Email returns the verifier's optional contact email, nil when absent.
func (v *Verifier) Email() *kernel.Email {
	return v.email
}

// Status returns the availability status.
func (v *Verifier) Status() Status {
	return v.status
}

// Schedule returns the verifier's work schedule.
func (v *Verifier) Schedule() kernel.WorkSchedule {
	return v.schedule
}

// IsActive reports whether the verifier can receive new assignments.
func (v *Verifier) IsActive() bool {
	return v.status == Activo
}

// WorksOn reports whether the verifier's schedule covers the given day.
func (v *Verifier) WorksOn(day time.Weekday) bool {
	return v.schedule.CoversDay(day)
}

// Activate marks the verifier eligible for assignment.
func (v *Verifier) Activate() {
	v.status = Activo
}

// Deactivate excludes the verifier from assignment.
// Existing assignments are untouched.
func (v *Verifier) Deactivate() {
	v.status = Inactivo
}

func (v *Verifier) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Verifier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrVerifierNameIsRequired
	}
	v.name = name
	return nil
}

func (v *Verifier) setDocument(document kernel.DocumentNumber) error {
	if err := document.Validate(); err != nil {
		return err
	}
	v.document = document
	return nil
}

func (v *Verifier) setPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	v.phone = phone
	return nil
}

func (v *Verifier) setEmail(email *kernel.Email) error {
	if email == nil {
		return nil
	}
	if err := email.Validate(); err != nil {
		return err
	}
	v.email = email
	return nil
}

func (v *Verifier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}

func (v *Verifier) setSchedule(schedule kernel.WorkSchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	v.schedule = schedule
	return nil
}
