package reportrepo

import (
	"context"
	"errors"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/report"
	"verification/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReportRepository implements ReportRepository using GORM.
type GormReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormReportRepository creates a new GORM report repository.
func NewGormReportRepository(db *gorm.DB, tracker aggregateTracker) *GormReportRepository {
	return &GormReportRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new report to the database and assigns its identifier.
func (r *GormReportRepository) Add(ctx context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
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

	if err := r.saveReferences(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing report to the database. Contact references are
// rewritten as a whole since the aggregate holds them as one list.
func (r *GormReportRepository) Update(ctx context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReportDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.saveReferences(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a report by ID, complete with its contact references.
func (r *GormReportRepository) Get(ctx context.Context, id kernel.ID) (*report.Report, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("report", id.String())
		}
		return nil, err
	}

	return r.loadAggregate(ctx, dto)
}

// GetByOrder retrieves the report generated for the given order.
func (r *GormReportRepository) GetByOrder(ctx context.Context, orderID kernel.ID) (*report.Report, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("report for order", orderID.String())
		}
		return nil, err
	}

	return r.loadAggregate(ctx, dto)
}

// saveReferences replaces the stored contact references with the aggregate's
// current list.
func (r *GormReportRepository) saveReferences(ctx context.Context, aggregate *report.Report) error {
	err := r.db.WithContext(ctx).
		Where("report_id = ?", aggregate.ID().Value()).
		Delete(&ReferenceDTO{}).Error
	if err != nil {
		return err
	}

	dtos := referencesFromDomain(aggregate)
	for _, dto := range dtos {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
	}
	return nil
}

// loadAggregate rehydrates one report with its contact references.
func (r *GormReportRepository) loadAggregate(ctx context.Context, dto ReportDTO) (*report.Report, error) {
	var referenceDTOs []ReferenceDTO
	err := r.db.WithContext(ctx).Order("id").
		Find(&referenceDTOs, "report_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, referenceDTOs)
}
