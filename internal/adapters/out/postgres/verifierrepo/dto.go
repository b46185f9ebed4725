// Package verifierrepo provides data transfer objects and mapping functions
// for verifier persistence.
package verifierrepo

import (
	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/verifier"
)

// VerifierDTO represents the database structure for persisting verifiers.
type VerifierDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	Name           string
	DocumentType   string
	DocumentNumber string `gorm:"uniqueIndex"`
	Phone          string
	Email          *string
	Status         string `gorm:"index"`
	Schedule       string
}

// TableName specifies the database table name for verifier entities.
func (VerifierDTO) TableName() string {
	return "verifiers"
}

// fromDomain converts a verifier entity to its database representation.
func fromDomain(v *verifier.Verifier) VerifierDTO {
	dto := VerifierDTO{
		ID:             v.ID().Value(),
		Name:           v.Name(),
		DocumentType:   v.Document().Type().String(),
		DocumentNumber: v.Document().Value(),
		Phone:          v.Phone().Value(),
		Status:         v.Status().String(),
		Schedule:       v.Schedule().Descriptor(),
	}

	if email := v.Email(); email != nil {
		value := email.Value()
		dto.Email = &value
	}

	return dto
}

// toDomain converts a database DTO back to a verifier entity using
// RestoreVerifier.
func toDomain(dto VerifierDTO) (*verifier.Verifier, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	documentType, err := kernel.DocumentTypeFromString(dto.DocumentType)
	if err != nil {
		return nil, err
	}

	document, err := kernel.NewDocumentNumber(documentType, dto.DocumentNumber)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhoneNumber(dto.Phone)
	if err != nil {
		return nil, err
	}

	var email *kernel.Email
	if dto.Email != nil {
		value, emailErr := kernel.NewEmail(*dto.Email)
		if emailErr != nil {
			return nil, emailErr
		}
		email = &value
	}

	status, err := verifier.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	schedule, err := kernel.NewWorkSchedule(dto.Schedule)
	if err != nil {
		return nil, err
	}

	return verifier.RestoreVerifier(id, dto.Name, document, phone, email, status, schedule)
}
