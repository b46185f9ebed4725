package report

import (
	"errors"
	"math"
	"strings"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/pkg/errs"
	"verification/internal/pkg/guard"
)

// trackedSections is the number of optional sections that factor into
// completeness.
const trackedSections = 7

// Domain errors for report operations.
var (
	// ErrReportIsNotConstructed is returned when using an improperly
	// initialized Report.
	ErrReportIsNotConstructed = errors.New("Report must be created via NewReport constructor")
	// ErrObservationsAreRequired is returned when a final result that demands
	// observations is set without any.
	ErrObservationsAreRequired = errs.NewValueIsRequiredError(
		"observations are required for OBSERVADO and RECHAZADO results")
)

// Report is the outcome document of a completed verification visit.
//
// A report starts as a skeleton created together with the order completion
// and is filled in afterwards: field sections, contact references,
// attachments and the final result arrive through separate updates.
//
// Completeness is derived purely from section presence (seven tracked
// sections at equal weight); it never factors the final result or the
// reviewer sign-off flag. Exportability depends only on the final result:
// a report awaiting the landlord interview cannot be exported.
type Report struct {
	id          kernel.ID
	reportCode  kernel.ReportCode
	orderID     kernel.ID
	finalResult kernel.FinalResult
	// isResultValid is the human reviewer's sign-off, independent of the
	// final result value.
	isResultValid bool
	summary       string

	dwelling          *Dwelling
	zone              *Zone
	location          *GeoLocation
	residence         *Residence
	garage            *Garage
	contactReferences []ContactReference
	landlordInterview *LandlordInterview
	observations      []string
	glossary          []string
	casuistics        []string
	attachments       []string

	guard guard.ConstructorGuard
}

// NewReport creates a report skeleton for a completed order.
// The caller chooses the initial final result: ENTREVISTA_ARRENDADOR_FALTANTE
// for tenant clients whose landlord has not been interviewed yet, CONFORME
// otherwise.
func NewReport(reportCode kernel.ReportCode, orderID kernel.ID, finalResult kernel.FinalResult) (*Report, error) {
	report := &Report{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		report.setReportCode(reportCode),
		report.setOrderID(orderID),
		report.setFinalResult(finalResult),
	); err != nil {
		return nil, err
	}

	return report, nil
}

// RestoreReport reconstructs a Report from persistence.
func RestoreReport(
	id kernel.ID,
	reportCode kernel.ReportCode,
	orderID kernel.ID,
	finalResult kernel.FinalResult,
	isResultValid bool,
	summary string,
	dwelling *Dwelling,
	zone *Zone,
	location *GeoLocation,
	residence *Residence,
	garage *Garage,
	contactReferences []ContactReference,
	landlordInterview *LandlordInterview,
	observations []string,
	glossary []string,
	casuistics []string,
	attachments []string,
) (*Report, error) {
	report := &Report{
		isResultValid:     isResultValid,
		summary:           summary,
		dwelling:          dwelling,
		zone:              zone,
		location:          location,
		residence:         residence,
		garage:            garage,
		contactReferences: contactReferences,
		landlordInterview: landlordInterview,
		observations:      observations,
		glossary:          glossary,
		casuistics:        casuistics,
		attachments:       attachments,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		report.setID(id),
		report.setReportCode(reportCode),
		report.setOrderID(orderID),
		report.setFinalResult(finalResult),
	); err != nil {
		return nil, err
	}

	return report, nil
}

// Validate ensures the report was created through a constructor.
func (r *Report) Validate() error {
	if r == nil {
		return ErrReportIsNotConstructed
	}
	return r.guard.Validate(ErrReportIsNotConstructed)
}

// ID returns the report identifier, zero until persisted.
func (r *Report) ID() kernel.ID {
	return r.id
}

// SetID records the persistence-assigned identifier.
// It can only be set once.
func (r *Report) SetID(id kernel.ID) error {
	if !r.id.IsZero() {
		return errs.NewValueIsInvalidError("report id is already assigned")
	}
	return r.setID(id)
}

// ReportCode returns the unique report business key.
func (r *Report) ReportCode() kernel.ReportCode {
	return r.reportCode
}

// OrderID returns the owning order's identifier.
func (r *Report) OrderID() kernel.ID {
	return r.orderID
}

// FinalResult returns the verification verdict.
func (r *Report) FinalResult() kernel.FinalResult {
	return r.finalResult
}

// IsResultValid returns the reviewer's sign-off flag.
func (r *Report) IsResultValid() bool {
	return r.isResultValid
}

// Summary returns the free-text summary.
func (r *Report) Summary() string {
	return r.summary
}

// Dwelling returns the dwelling section, nil while absent.
func (r *Report) Dwelling() *Dwelling {
	return r.dwelling
}

// Zone returns the zone section, nil while absent.
func (r *Report) Zone() *Zone {
	return r.zone
}

// Location returns the geocoded location, nil while absent.
func (r *Report) Location() *GeoLocation {
	return r.location
}

// Residence returns the residence section, nil while absent.
func (r *Report) Residence() *Residence {
	return r.residence
}

// Garage returns the garage section, nil while absent.
func (r *Report) Garage() *Garage {
	return r.garage
}

// ContactReferences returns the consulted references.
func (r *Report) ContactReferences() []ContactReference {
	return r.contactReferences
}

// Interview returns the landlord interview, nil while absent.
func (r *Report) Interview() *LandlordInterview {
	return r.landlordInterview
}

// Observations returns the report-level observation notes.
func (r *Report) Observations() []string {
	return r.observations
}

// Glossary returns the term explanations attached to the report.
func (r *Report) Glossary() []string {
	return r.glossary
}

// Casuistics returns the case notes attached to the report.
func (r *Report) Casuistics() []string {
	return r.casuistics
}

// Attachments returns the attached file URLs.
func (r *Report) Attachments() []string {
	return r.attachments
}

// Completeness returns the filled percentage over the seven tracked
// sections (dwelling, zone, geocoded location, residence, contact
// references, attachments, observations), each at equal weight, rounded
// to the nearest integer percent.
func (r *Report) Completeness() int {
	present := 0
	for _, ok := range []bool{
		r.dwelling != nil,
		r.zone != nil,
		r.location != nil,
		r.residence != nil,
		len(r.contactReferences) > 0,
		len(r.attachments) > 0,
		len(r.observations) > 0,
	} {
		if ok {
			present++
		}
	}
	return int(math.Round(float64(present) * 100 / trackedSections))
}

// IsComplete reports whether every tracked section is present.
func (r *Report) IsComplete() bool {
	return r.Completeness() == 100
}

// CanExport reports whether the report may be exported.
// Only the missing landlord interview blocks export.
func (r *Report) CanExport() bool {
	return r.finalResult.CanExportReport()
}

// UpdateResult sets the verdict, the reviewer sign-off and the narrative
// fields. OBSERVADO and RECHAZADO require at least one observation note.
func (r *Report) UpdateResult(finalResult kernel.FinalResult, isResultValid bool, summary string, observations []string) error {
	if err := finalResult.Validate(); err != nil {
		return err
	}
	if finalResult.RequiresObservations() && len(observations) == 0 {
		return ErrObservationsAreRequired
	}

	r.finalResult = finalResult
	r.isResultValid = isResultValid
	r.summary = strings.TrimSpace(summary)
	r.observations = observations
	return nil
}

// SetDwelling records the dwelling section.
func (r *Report) SetDwelling(dwelling Dwelling) {
	r.dwelling = &dwelling
}

// SetZone records the zone section.
func (r *Report) SetZone(zone Zone) {
	r.zone = &zone
}

// SetLocation records the geocoded location.
func (r *Report) SetLocation(location GeoLocation) {
	r.location = &location
}

// SetResidence records the residence section.
func (r *Report) SetResidence(residence Residence) {
	r.residence = &residence
}

// SetGarage records the garage section.
func (r *Report) SetGarage(garage Garage) {
	r.garage = &garage
}

// AddContactReference records a consulted reference.
func (r *Report) AddContactReference(reference ContactReference) error {
	if strings.TrimSpace(reference.Name) == "" {
		return errs.NewValueIsRequiredError("contact reference name")
	}
	r.contactReferences = append(r.contactReferences, reference)
	return nil
}

// AddAttachment records an attached file URL.
func (r *Report) AddAttachment(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return errs.NewValueIsRequiredError("attachment url")
	}
	r.attachments = append(r.attachments, url)
	return nil
}

// SetGlossary replaces the glossary entries.
func (r *Report) SetGlossary(entries []string) {
	r.glossary = entries
}

// SetCasuistics replaces the case notes.
func (r *Report) SetCasuistics(entries []string) {
	r.casuistics = entries
}

// SetLandlordInterview stores the landlord's answers.
//
// It does not touch the final result: moving away from
// ENTREVISTA_ARRENDADOR_FALTANTE is an explicit follow-up via UpdateResult.
func (r *Report) SetLandlordInterview(interview LandlordInterview) error {
	if strings.TrimSpace(interview.LandlordName) == "" {
		return errs.NewValueIsRequiredError("landlord name")
	}
	r.landlordInterview = &interview
	return nil
}

func (r *Report) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Report) setReportCode(reportCode kernel.ReportCode) error {
	if err := reportCode.Validate(); err != nil {
		return err
	}
	r.reportCode = reportCode
	return nil
}

func (r *Report) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	r.orderID = orderID
	return nil
}

func (r *Report) setFinalResult(finalResult kernel.FinalResult) error {
	if err := finalResult.Validate(); err != nil {
		return err
	}
	r.finalResult = finalResult
	return nil
}
