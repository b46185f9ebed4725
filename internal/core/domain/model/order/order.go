package order

import (
	"errors"
	"fmt"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/observation"
	"verification/internal/pkg/errs"
	"verification/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrReportAlreadyAttached is returned when attaching a report to an
	// order that already has one.
	ErrReportAlreadyAttached = errors.New("order already has a report")
	// ErrVisitNotScheduled is returned when assigning a verifier without a
	// visit slot.
	ErrVisitNotScheduled = errs.NewValueIsRequiredError("visit date and time")
)

// Order is the root aggregate tracking a single field-verification request
// from intake to completion.
//
// Order follows these invariants:
//   - Exactly one status from the lattice at any time; mutators consult
//     the transition guard before changing it
//   - A verifier reference and visit slot are present iff the order ever
//     reached ASIGNADO
//   - The landlord sub-record on the client is present iff the client is
//     a tenant (enforced by Client)
//   - The version token increases on every persisted update; repositories
//     reject writes against a stale version
//
// Derived flags (pending observation count, requires-attention) are pure
// projections over the observation collection. They never fire order
// transitions themselves: resolving the last pending observation makes the
// order eligible for SUBSANADA, but an operator must issue the status
// command explicitly.
type Order struct {
	id        kernel.ID
	version   int64
	orderCode kernel.OrderCode
	client    Client
	company   Company

	verifierID *kernel.ID
	visitDate  *kernel.VisitDate
	visitTime  *kernel.VisitTime

	status       Status
	reportID     *kernel.ID
	observations []*observation.Observation
	documents    []AttachedDocument

	guard guard.ConstructorGuard
}

// NewOrder creates a new verification order in PENDIENTE status.
// The identifier stays zero until the persistence collaborator assigns one.
//
// Parameters:
//   - orderCode: unique business key (validated OrderCode)
//   - client: the person being verified (validated Client)
//   - company: the requesting organization (validated Company)
func NewOrder(orderCode kernel.OrderCode, client Client, company Company) (*Order, error) {
	order := &Order{
		status: Pendiente,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setOrderCode(orderCode),
		order.setClient(client),
		order.setCompany(company),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistence, including
// its assignment state, children and version token. Unlike NewOrder it
// accepts any valid status and does not re-run creation-time rules such as
// the visit-date boundary.
func RestoreOrder(
	id kernel.ID,
	version int64,
	orderCode kernel.OrderCode,
	client Client,
	company Company,
	status Status,
	verifierID *kernel.ID,
	visitDate *kernel.VisitDate,
	visitTime *kernel.VisitTime,
	reportID *kernel.ID,
	observations []*observation.Observation,
	documents []AttachedDocument,
) (*Order, error) {
	order := &Order{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderCode(orderCode),
		order.setClient(client),
		order.setCompany(company),
		order.setStatus(status),
		order.setAssignment(verifierID, visitDate, visitTime),
		order.setReportID(reportID),
		order.setObservations(observations),
		order.setDocuments(documents),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier, zero until persisted.
func (o *Order) ID() kernel.ID {
	return o.id
}

// SetID records the persistence-assigned identifier.
// It can only be set once.
func (o *Order) SetID(id kernel.ID) error {
	if !o.id.IsZero() {
		return errs.NewValueIsInvalidError("order id is already assigned")
	}
	return o.setID(id)
}

// Version returns the optimistic-concurrency token of the loaded snapshot.
func (o *Order) Version() int64 {
	return o.version
}

// OrderCode returns the unique business key.
func (o *Order) OrderCode() kernel.OrderCode {
	return o.orderCode
}

// Client returns the person being verified.
func (o *Order) Client() Client {
	return o.client
}

// Company returns the requesting organization.
func (o *Order) Company() Company {
	return o.company
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Verifier returns the assigned verifier's ID, nil while unassigned.
func (o *Order) Verifier() *kernel.ID {
	return o.verifierID
}

// VisitDate returns the scheduled visit day, nil while unassigned.
func (o *Order) VisitDate() *kernel.VisitDate {
	return o.visitDate
}

// VisitTime returns the scheduled visit time, nil while unassigned.
func (o *Order) VisitTime() *kernel.VisitTime {
	return o.visitTime
}

// Report returns the generated report's ID, nil while absent.
func (o *Order) Report() *kernel.ID {
	return o.reportID
}

// Observations returns the recorded observations in creation order.
func (o *Order) Observations() []*observation.Observation {
	return o.observations
}

// Documents returns the attached documents in attach order.
func (o *Order) Documents() []AttachedDocument {
	return o.documents
}

// IsPending reports whether the order awaits verifier assignment.
func (o *Order) IsPending() bool {
	return o.status == Pendiente
}

// IsAssigned reports whether a verifier is assigned and the visit scheduled.
func (o *Order) IsAssigned() bool {
	return o.status == Asignado
}

// IsInProgress reports whether the site visit is underway.
func (o *Order) IsInProgress() bool {
	return o.status == EnProceso
}

// IsTerminal reports whether the order reached a final status.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// HasVerifier reports whether a verifier reference is present.
func (o *Order) HasVerifier() bool {
	return o.verifierID != nil
}

// HasReport reports whether a report was generated for this order.
func (o *Order) HasReport() bool {
	return o.reportID != nil
}

// PendingObservationCount returns the number of observations still in
// PENDIENTE status.
func (o *Order) PendingObservationCount() int {
	count := 0
	for _, obs := range o.observations {
		if obs.IsPending() {
			count++
		}
	}
	return count
}

// HasPendingObservations reports whether any observation awaits action.
func (o *Order) HasPendingObservations() bool {
	return o.PendingObservationCount() > 0
}

// RequiresAttention reports whether the order has pending observations and
// is not yet in a terminal status.
func (o *Order) RequiresAttention() bool {
	return o.HasPendingObservations() && !o.IsTerminal()
}

// Assign assigns a verifier and visit slot, transitioning to ASIGNADO.
// Legal from PENDIENTE (initial assignment) and SUBSANADA (re-entry after
// resolving observations). The visit-date boundary was already checked when
// the VisitDate was constructed.
func (o *Order) Assign(verifierID kernel.ID, visitDate kernel.VisitDate, visitTime kernel.VisitTime) error {
	if err := verifierID.Validate(); err != nil {
		return err
	}
	if err := errors.Join(visitDate.Validate(), visitTime.Validate()); err != nil {
		return ErrVisitNotScheduled
	}

	newStatus, err := o.status.TransitionTo(Asignado)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.verifierID = &verifierID
	o.visitDate = &visitDate
	o.visitTime = &visitTime
	return nil
}

// StartProcessing marks the site visit as underway.
// Legal from ASIGNADO and SUBSANADA.
func (o *Order) StartProcessing() error {
	return o.transition(EnProceso)
}

// Complete finishes the verification. Legal only from EN_PROCESO.
// COMPLETADA is terminal.
func (o *Order) Complete() error {
	return o.transition(Completada)
}

// Cancel cancels the order. Legal from any non-terminal status in the
// transition table. CANCELADA is terminal.
func (o *Order) Cancel() error {
	return o.transition(Cancelada)
}

// MarkObserved records that blocking defects exist.
// Legal from PENDIENTE, ASIGNADO and EN_PROCESO.
func (o *Order) MarkObserved() error {
	return o.transition(Observado)
}

// MarkResolved records that the blocking defects were dealt with.
// Legal only from OBSERVADO. Eligibility is the caller's decision: the
// engine exposes HasPendingObservations but does not require it to be
// false before accepting the transition.
func (o *Order) MarkResolved() error {
	return o.transition(Subsanada)
}

// ChangeStatus performs an arbitrary guarded transition.
// Used by the generic status-update operation; the dedicated mutators are
// preferred where the intent is known.
func (o *Order) ChangeStatus(next Status) error {
	if next == Asignado {
		// Assignment carries extra state (verifier, visit slot) and must
		// go through Assign.
		if !o.HasVerifier() {
			return fmt.Errorf("%w: cannot enter %s without a verifier",
				ErrStatusTransitionNotAllowed, Asignado)
		}
	}
	return o.transition(next)
}

// AddObservation records a defect against this order.
// The observation must reference this order.
func (o *Order) AddObservation(obs *observation.Observation) error {
	if err := obs.Validate(); err != nil {
		return err
	}

	if !o.id.IsZero() && !obs.OrderID().IsEqual(o.id) {
		return errs.NewValueIsInvalidErrorWithCause("observation",
			fmt.Errorf("observation belongs to order %s, not %s", obs.OrderID(), o.id))
	}

	o.observations = append(o.observations, obs)
	return nil
}

// AttachDocument adds a stored file to the order.
func (o *Order) AttachDocument(doc AttachedDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	o.documents = append(o.documents, doc)
	return nil
}

// AttachReport links the generated report. An order has at most one report.
func (o *Order) AttachReport(reportID kernel.ID) error {
	if err := reportID.Validate(); err != nil {
		return err
	}
	if o.reportID != nil {
		return ErrReportAlreadyAttached
	}
	o.reportID = &reportID
	return nil
}

func (o *Order) transition(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderCode(orderCode kernel.OrderCode) error {
	if err := orderCode.Validate(); err != nil {
		return err
	}
	o.orderCode = orderCode
	return nil
}

func (o *Order) setClient(client Client) error {
	if err := client.Validate(); err != nil {
		return err
	}
	o.client = client
	return nil
}

func (o *Order) setCompany(company Company) error {
	if err := company.Validate(); err != nil {
		return err
	}
	o.company = company
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAssignment(verifierID *kernel.ID, visitDate *kernel.VisitDate, visitTime *kernel.VisitTime) error {
	if verifierID == nil {
		if visitDate != nil || visitTime != nil {
			return errs.NewValueIsInvalidError("visit slot without a verifier")
		}
		return nil
	}

	if err := verifierID.Validate(); err != nil {
		return err
	}
	if visitDate == nil || visitTime == nil {
		return ErrVisitNotScheduled
	}
	if err := errors.Join(visitDate.Validate(), visitTime.Validate()); err != nil {
		return err
	}

	o.verifierID = verifierID
	o.visitDate = visitDate
	o.visitTime = visitTime
	return nil
}

func (o *Order) setReportID(reportID *kernel.ID) error {
	if reportID == nil {
		return nil
	}
	if err := reportID.Validate(); err != nil {
		return err
	}
	o.reportID = reportID
	return nil
}

func (o *Order) setObservations(observations []*observation.Observation) error {
	for _, obs := range observations {
		if err := obs.Validate(); err != nil {
			return err
		}
	}
	o.observations = observations
	return nil
}

func (o *Order) setDocuments(documents []AttachedDocument) error {
	for _, doc := range documents {
		if err := doc.Validate(); err != nil {
			return err
		}
	}
	o.documents = documents
	return nil
}
