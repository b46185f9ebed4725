package observationrepo

import (
	"context"
	"errors"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/observation"
	"verification/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormObservationRepository implements ObservationRepository using GORM.
type GormObservationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormObservationRepository creates a new GORM observation repository.
func NewGormObservationRepository(db *gorm.DB, tracker aggregateTracker) *GormObservationRepository {
	return &GormObservationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new observation and assigns its database identifier.
func (r *GormObservationRepository) Add(ctx context.Context, obs *observation.Observation) error {
	if err := obs.Validate(); err != nil {
		return err
	}

	dto := FromDomain(obs)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if obs.ID().IsZero() {
		id, err := kernel.NewID(dto.ID)
		if err != nil {
			return err
		}
		if err := obs.SetID(id); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(obs.ID(), obs)
	return nil
}

// Update saves an existing observation to the database.
func (r *GormObservationRepository) Update(ctx context.Context, obs *observation.Observation) error {
	if err := obs.Validate(); err != nil {
		return err
	}

	dto := FromDomain(obs)
	result := r.db.WithContext(ctx).Model(&ObservationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(obs.ID(), obs)
	return nil
}

// Get retrieves an observation by ID.
func (r *GormObservationRepository) Get(ctx context.Context, id kernel.ID) (*observation.Observation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ObservationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("observation", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAllByOrder retrieves every observation of an order in creation order.
func (r *GormObservationRepository) GetAllByOrder(ctx context.Context, orderID kernel.ID) ([]*observation.Observation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ObservationDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "order_id = ?", orderID.Value()).Error; err != nil {
		return nil, err
	}

	observations := make([]*observation.Observation, 0, len(dtos))
	for _, dto := range dtos {
		obs, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		observations = append(observations, obs)
	}

	return observations, nil
}

// Delete removes an observation.
func (r *GormObservationRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ObservationDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("observation", id.String())
	}

	return nil
}
