// Package reportrepo provides data transfer objects and mapping functions for
// report persistence. Report sections are flattened into nullable column
// groups; a section is present exactly when its columns are non-null, which
// lets the read side compute completeness without loading payloads.
package reportrepo

import (
	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/report"

	"github.com/lib/pq"
)

// ReportDTO represents the database structure for persisting report
// aggregates.
type ReportDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	ReportCode    string `gorm:"uniqueIndex"`
	OrderID       int64  `gorm:"uniqueIndex"`
	FinalResult   string
	IsResultValid bool
	Summary       string

	DwellingType      *string
	DwellingMaterial  *string
	DwellingFloors    *int
	DwellingCondition *string

	ZoneType          *string
	ZoneAccessibility *string
	ZoneRiskLevel     *string

	Latitude  *float64
	Longitude *float64

	ResidenceOwnership     *string
	ResidenceYears         *int
	ResidenceHouseholdSize *int

	GaragePresent  *bool
	GarageCapacity *int

	LandlordName            *string
	LandlordPhone           *string
	LandlordInterviewed     *bool
	LandlordConfirmsTenancy *bool
	LandlordNotes           *string

	Observations pq.StringArray `gorm:"type:text[]"`
	Glossary     pq.StringArray `gorm:"type:text[]"`
	Casuistics   pq.StringArray `gorm:"type:text[]"`
	Attachments  pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for report entities.
func (ReportDTO) TableName() string {
	return "reports"
}

// ReferenceDTO represents one contact reference row of a report.
type ReferenceDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	ReportID     int64 `gorm:"index"`
	Name         string
	Phone        string
	Relationship string
}

// TableName specifies the database table name for contact references.
func (ReferenceDTO) TableName() string {
	return "report_references"
}

func ptr[T any](value T) *T {
	return &value
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// fromDomain converts a report aggregate to its database representation.
func fromDomain(aggregate *report.Report) ReportDTO {
	dto := ReportDTO{
		ID:            aggregate.ID().Value(),
		ReportCode:    aggregate.ReportCode().Value(),
		OrderID:       aggregate.OrderID().Value(),
		FinalResult:   aggregate.FinalResult().String(),
		IsResultValid: aggregate.IsResultValid(),
		Summary:       aggregate.Summary(),
		Observations:  pq.StringArray(aggregate.Observations()),
		Glossary:      pq.StringArray(aggregate.Glossary()),
		Casuistics:    pq.StringArray(aggregate.Casuistics()),
		Attachments:   pq.StringArray(aggregate.Attachments()),
	}

	if dwelling := aggregate.Dwelling(); dwelling != nil {
		dto.DwellingType = ptr(dwelling.DwellingType)
		dto.DwellingMaterial = ptr(dwelling.Material)
		dto.DwellingFloors = ptr(dwelling.Floors)
		dto.DwellingCondition = ptr(dwelling.Condition)
	}
	if zone := aggregate.Zone(); zone != nil {
		dto.ZoneType = ptr(zone.ZoneType)
		dto.ZoneAccessibility = ptr(zone.Accessibility)
		dto.ZoneRiskLevel = ptr(zone.RiskLevel)
	}
	if location := aggregate.Location(); location != nil {
		dto.Latitude = ptr(location.Latitude)
		dto.Longitude = ptr(location.Longitude)
	}
	if residence := aggregate.Residence(); residence != nil {
		dto.ResidenceOwnership = ptr(residence.Ownership)
		dto.ResidenceYears = ptr(residence.YearsOfResidence)
		dto.ResidenceHouseholdSize = ptr(residence.HouseholdSize)
	}
	if garage := aggregate.Garage(); garage != nil {
		dto.GaragePresent = ptr(garage.Present)
		dto.GarageCapacity = ptr(garage.Capacity)
	}
	if interview := aggregate.Interview(); interview != nil {
		dto.LandlordName = ptr(interview.LandlordName)
		dto.LandlordPhone = ptr(interview.LandlordPhone)
		dto.LandlordInterviewed = ptr(interview.Interviewed)
		dto.LandlordConfirmsTenancy = ptr(interview.ConfirmsTenancy)
		dto.LandlordNotes = ptr(interview.Notes)
	}

	return dto
}

// referencesFromDomain converts the report's contact references to rows.
func referencesFromDomain(aggregate *report.Report) []ReferenceDTO {
	references := aggregate.ContactReferences()
	dtos := make([]ReferenceDTO, 0, len(references))
	for _, reference := range references {
		dtos = append(dtos, ReferenceDTO{
			ReportID:     aggregate.ID().Value(),
			Name:         reference.Name,
			Phone:        reference.Phone,
			Relationship: reference.Relationship,
		})
	}
	return dtos
}

// toDomain converts database rows to a report domain aggregate using
// RestoreReport.
func toDomain(dto ReportDTO, referenceDTOs []ReferenceDTO) (*report.Report, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	reportCode, err := kernel.NewReportCode(dto.ReportCode)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	finalResult, err := kernel.FinalResultFromString(dto.FinalResult)
	if err != nil {
		return nil, err
	}

	var dwelling *report.Dwelling
	if dto.DwellingType != nil {
		dwelling = &report.Dwelling{
			DwellingType: deref(dto.DwellingType),
			Material:     deref(dto.DwellingMaterial),
			Floors:       deref(dto.DwellingFloors),
			Condition:    deref(dto.DwellingCondition),
		}
	}

	var zone *report.Zone
	if dto.ZoneType != nil {
		zone = &report.Zone{
			ZoneType:      deref(dto.ZoneType),
			Accessibility: deref(dto.ZoneAccessibility),
			RiskLevel:     deref(dto.ZoneRiskLevel),
		}
	}

	var location *report.GeoLocation
	if dto.Latitude != nil {
		location = &report.GeoLocation{
			Latitude:  deref(dto.Latitude),
			Longitude: deref(dto.Longitude),
		}
	}

	var residence *report.Residence
	if dto.ResidenceOwnership != nil {
		residence = &report.Residence{
			Ownership:        deref(dto.ResidenceOwnership),
			YearsOfResidence: deref(dto.ResidenceYears),
			HouseholdSize:    deref(dto.ResidenceHouseholdSize),
		}
	}

	var garage *report.Garage
	if dto.GaragePresent != nil {
		garage = &report.Garage{
			Present:  deref(dto.GaragePresent),
			Capacity: deref(dto.GarageCapacity),
		}
	}

	var interview *report.LandlordInterview
	if dto.LandlordName != nil {
		interview = &report.LandlordInterview{
			LandlordName:    deref(dto.LandlordName),
			LandlordPhone:   deref(dto.LandlordPhone),
			Interviewed:     deref(dto.LandlordInterviewed),
			ConfirmsTenancy: deref(dto.LandlordConfirmsTenancy),
			Notes:           deref(dto.LandlordNotes),
		}
	}

	references := make([]report.ContactReference, 0, len(referenceDTOs))
	for _, referenceDTO := range referenceDTOs {
		references = append(references, report.ContactReference{
			Name:         referenceDTO.Name,
			Phone:        referenceDTO.Phone,
			Relationship: referenceDTO.Relationship,
		})
	}

	return report.RestoreReport(id, reportCode, orderID, finalResult,
		dto.IsResultValid, dto.Summary,
		dwelling, zone, location, residence, garage,
		references, interview,
		dto.Observations, dto.Glossary, dto.Casuistics, dto.Attachments)
}
