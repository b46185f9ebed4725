package verifierrepo

import (
	"context"
	"errors"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/order"
	"verification/internal/core/domain/model/verifier"
	"verification/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVerifierRepository implements VerifierRepository using GORM.
type GormVerifierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormVerifierRepository creates a new GORM verifier repository.
func NewGormVerifierRepository(db *gorm.DB, tracker aggregateTracker) *GormVerifierRepository {
	return &GormVerifierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new verifier to the database and assigns its identifier.
func (r *GormVerifierRepository) Add(ctx context.Context, v *verifier.Verifier) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if v.ID().IsZero() {
		id, err := kernel.NewID(dto.ID)
		if err != nil {
			return err
		}
		if err := v.SetID(id); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(v.ID(), v)
	return nil
}

// Update saves an existing verifier to the database.
func (r *GormVerifierRepository) Update(ctx context.Context, v *verifier.Verifier) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	result := r.db.WithContext(ctx).Model(&VerifierDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(v.ID(), v)
	return nil
}

// Get retrieves a verifier by ID.
func (r *GormVerifierRepository) Get(ctx context.Context, id kernel.ID) (*verifier.Verifier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VerifierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("verifier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all verifiers in ACTIVO status.
func (r *GormVerifierRepository) GetAllActive(ctx context.Context) ([]*verifier.Verifier, error) {
	var dtos []VerifierDTO
	err := r.db.WithContext(ctx).Order("id").
		Find(&dtos, "status = ?", verifier.Activo.String()).Error
	if err != nil {
		return nil, err
	}

	verifiers := make([]*verifier.Verifier, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		verifiers = append(verifiers, v)
	}

	return verifiers, nil
}

// CountActiveOrders returns the number of non-terminal orders currently
// assigned to the given verifier.
func (r *GormVerifierRepository) CountActiveOrders(ctx context.Context, verifierID kernel.ID) (int, error) {
	if err := verifierID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Table("orders").
		Where("verifier_id = ?", verifierID.Value()).
		Where("status NOT IN ?", []string{order.Completada.String(), order.Cancelada.String()}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
