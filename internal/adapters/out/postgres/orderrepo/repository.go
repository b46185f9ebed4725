package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"verification/internal/adapters/out/postgres/observationrepo"
	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/observation"
	"verification/internal/core/domain/model/order"
	"verification/internal/pkg/apperr"
	"verification/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database and assigns its identifier.
// The first persisted version is always 1.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if dto.Version == 0 {
		dto.Version = 1
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if aggregate.ID().IsZero() {
		id, err := kernel.NewID(dto.ID)
		if err != nil {
			return err
		}
		if err := aggregate.SetID(id); err != nil {
			return err
		}
	}

	if err := r.saveDocuments(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The write is guarded by
// the version token loaded with the aggregate: when another transaction
// committed in between, no row matches and the update is rejected with a
// stale-version conflict.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").Omit("id").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperr.ErrStaleOrderVersion.WrapMessage(
			fmt.Sprintf("order %d changed since it was loaded", dto.ID))
	}

	if err := r.saveDocuments(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, complete with its observations and
// attachments.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return r.loadAggregate(ctx, dto)
}

// GetFirstInPendingStatus retrieves the oldest order awaiting assignment.
func (r *GormOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Order("id").First(&dto, "status = ?", order.Pendiente.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first in pending status")
		}
		return nil, err
	}

	return r.loadAggregate(ctx, dto)
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	return r.loadAggregates(ctx, dtos)
}

// GetAllRequiringAttention retrieves non-terminal orders that carry pending
// observations.
func (r *GormOrderRepository) GetAllRequiringAttention(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []string{order.Completada.String(), order.Cancelada.String()}).
		Where("EXISTS (SELECT 1 FROM observations obs WHERE obs.order_id = orders.id AND obs.status = ?)",
			observation.Pendiente.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.loadAggregates(ctx, dtos)
}

// saveDocuments persists any attachments not yet stored. Attachments are
// immutable once written, so conflicts on the storage key are ignored.
func (r *GormOrderRepository) saveDocuments(ctx context.Context, aggregate *order.Order) error {
	dtos := documentsFromDomain(aggregate)
	for _, dto := range dtos {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// loadAggregate rehydrates one order with its children.
func (r *GormOrderRepository) loadAggregate(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	var obsDTOs []observationrepo.ObservationDTO
	err := r.db.WithContext(ctx).Order("id").
		Find(&obsDTOs, "order_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	var docDTOs []DocumentDTO
	err = r.db.WithContext(ctx).Order("attached_at").
		Find(&docDTOs, "order_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, obsDTOs, docDTOs)
}

func (r *GormOrderRepository) loadAggregates(ctx context.Context, dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := r.loadAggregate(ctx, dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
