// Package observationrepo provides data transfer objects and mapping functions
// for observation persistence. Observations live in their own table keyed by
// the owning order, so the sub-lifecycle operations can read and write them
// without rehydrating the whole order aggregate.
package observationrepo

import (
	"time"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/observation"
)

// ObservationDTO represents the database structure for persisting observations.
type ObservationDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	OrderID     int64  `gorm:"index"`
	Type        string
	Description string
	Status      string `gorm:"index"`
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// TableName specifies the database table name for observation entities.
func (ObservationDTO) TableName() string {
	return "observations"
}

// FromDomain converts an observation entity to its database representation.
func FromDomain(obs *observation.Observation) ObservationDTO {
	return ObservationDTO{
		ID:          obs.ID().Value(),
		OrderID:     obs.OrderID().Value(),
		Type:        obs.Type().String(),
		Description: obs.Description(),
		Status:      obs.Status().String(),
		CreatedAt:   obs.CreatedAt(),
		ResolvedAt:  obs.ResolvedAt(),
	}
}

// ToDomain converts a database DTO back to an observation entity.
// Exported because the order repository rehydrates an order's observations
// through the same mapping.
func ToDomain(dto ObservationDTO) (*observation.Observation, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	observationType, err := observation.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := observation.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return observation.RestoreObservation(
		id, orderID, observationType, dto.Description, status,
		dto.CreatedAt, dto.ResolvedAt,
	)
}
