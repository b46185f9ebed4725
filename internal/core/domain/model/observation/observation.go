package observation

import (
	"errors"
	"strings"
	"time"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/pkg/errs"
	"verification/internal/pkg/guard"
)

const (
	// DescriptionMinLength is the minimum accepted description length.
	DescriptionMinLength = 10
	// DescriptionMaxLength is the maximum accepted description length.
	DescriptionMaxLength = 500
)

// Domain errors for observation operations.
var (
	// ErrObservationIsNotConstructed is returned when using an improperly
	// initialized Observation.
	ErrObservationIsNotConstructed = errors.New(
		"Observation must be created via NewObservation constructor")
	// ErrResolvedDateWithoutResolution is returned when a resolved date is
	// present but the status does not indicate resolution.
	ErrResolvedDateWithoutResolution = errs.NewValueIsInvalidError(
		"resolved date requires a resolved status")
)

// Observation is a defect or discrepancy recorded against a verification
// order. It is a child entity of the Order aggregate: it references the
// owning order by ID but has its own resolution lifecycle.
//
// Invariant: resolvedAt is non-nil iff the status indicates resolution
// (SUBSANADA or the legacy RESUELTA).
//
// There is no transition table for observation statuses. Any valid status
// may be set via UpdateStatus; only the resolved-date invariant is enforced.
type Observation struct {
	id              kernel.ID
	orderID         kernel.ID
	observationType Type
	description     string
	status          Status
	createdAt       time.Time
	resolvedAt      *time.Time

	guard guard.ConstructorGuard
}

// NewObservation records a new defect against an order.
// The observation starts in PENDIENTE status with no resolved date.
//
// Parameters:
//   - orderID: the owning order (must be persisted, ID valid)
//   - observationType: defect category
//   - description: 10-500 characters after trimming
func NewObservation(orderID kernel.ID, observationType Type, description string) (*Observation, error) {
	obs := &Observation{
		status:    Pendiente,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		obs.setOrderID(orderID),
		obs.setType(observationType),
		obs.setDescription(description),
	); err != nil {
		return nil, err
	}

	return obs, nil
}

// RestoreObservation reconstructs an Observation from persistence,
// re-checking the resolved-date invariant but not the creation-time rules.
func RestoreObservation(
	id kernel.ID,
	orderID kernel.ID,
	observationType Type,
	description string,
	status Status,
	createdAt time.Time,
	resolvedAt *time.Time,
) (*Observation, error) {
	obs := &Observation{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		obs.setID(id),
		obs.setOrderID(orderID),
		obs.setType(observationType),
		obs.setDescription(description),
		obs.setStatus(status, resolvedAt),
	); err != nil {
		return nil, err
	}

	return obs, nil
}

// Validate ensures the observation was created through a constructor.
func (o *Observation) Validate() error {
	if o == nil {
		return ErrObservationIsNotConstructed
	}
	return o.guard.Validate(ErrObservationIsNotConstructed)
}

// ID returns the observation identifier, zero until persisted.
func (o *Observation) ID() kernel.ID {
	return o.id
}

// SetID records the persistence-assigned identifier.
// It can only be set once.
func (o *Observation) SetID(id kernel.ID) error {
	if !o.id.IsZero() {
		return errs.NewValueIsInvalidError("observation id is already assigned")
	}
	return o.setID(id)
}

// OrderID returns the owning order's identifier.
func (o *Observation) OrderID() kernel.ID {
	return o.orderID
}

// Type returns the defect category.
func (o *Observation) Type() Type {
	return o.observationType
}

// Description returns the defect description.
func (o *Observation) Description() string {
	return o.description
}

// Status returns the current resolution status.
func (o *Observation) Status() Status {
	return o.status
}

// CreatedAt returns when the defect was recorded.
func (o *Observation) CreatedAt() time.Time {
	return o.createdAt
}

// ResolvedAt returns when the defect was resolved, nil while unresolved.
func (o *Observation) ResolvedAt() *time.Time {
	return o.resolvedAt
}

// IsPending reports whether the observation still awaits action.
func (o *Observation) IsPending() bool {
	return o.status.IsPending()
}

// IsResolved reports whether the observation's defect was corrected.
func (o *Observation) IsResolved() bool {
	return o.status.IsResolved()
}

// UpdateStatus moves the observation to a new status, maintaining the
// resolved-date invariant: entering a resolved status stamps the resolution
// time, leaving one clears it.
func (o *Observation) UpdateStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	if status.IsResolved() {
		now := time.Now()
		o.resolvedAt = &now
	} else {
		o.resolvedAt = nil
	}

	return nil
}

func (o *Observation) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Observation) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	o.orderID = orderID
	return nil
}

func (o *Observation) setType(observationType Type) error {
	if err := observationType.Validate(); err != nil {
		return err
	}
	o.observationType = observationType
	return nil
}

func (o *Observation) setDescription(description string) error {
	description = strings.TrimSpace(description)
	length := len([]rune(description))
	if length < DescriptionMinLength || length > DescriptionMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"description length", length, DescriptionMinLength, DescriptionMaxLength)
	}
	o.description = description
	return nil
}

func (o *Observation) setStatus(status Status, resolvedAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if resolvedAt != nil && !status.IsResolved() {
		return ErrResolvedDateWithoutResolution
	}

	o.status = status
	o.resolvedAt = resolvedAt
	return nil
}
