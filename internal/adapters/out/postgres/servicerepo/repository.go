package servicerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceRepository implements ServiceRepository using GORM. Price tables
// are persisted through the same repository because delivery services are
// their only consumers.
type GormServiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceRepository creates a new GORM delivery service repository.
func NewGormServiceRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceRepository {
	return &GormServiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery service to the database.
func (r *GormServiceRepository) Add(ctx context.Context, aggregate *delivery.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := serviceFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery service to the database, replacing its
// stored coverage records.
func (r *GormServiceRepository) Update(ctx context.Context, aggregate *delivery.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := serviceFromDomain(aggregate)

	// Coverage edits replace the record set wholesale, so stale rows are
	// removed before saving.
	if err := r.db.WithContext(ctx).
		Where("service_id = ?", dto.ID).
		Delete(&DistanceRecordDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery service by ID.
func (r *GormServiceRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).Preload("Distances").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery service", id.String())
		}
		return nil, err
	}

	return serviceToDomain(dto)
}

// GetAll retrieves every delivery service.
func (r *GormServiceRepository) GetAll(ctx context.Context) ([]*delivery.Service, error) {
	var dtos []ServiceDTO
	if err := r.db.WithContext(ctx).Preload("Distances").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	services := make([]*delivery.Service, 0, len(dtos))
	for _, dto := range dtos {
		service, err := serviceToDomain(dto)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	return services, nil
}

// AddPrice saves a new price table to the database.
func (r *GormServiceRepository) AddPrice(ctx context.Context, price *pricing.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	dto, err := priceFromDomain(price)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(price.ID(), price)
	return nil
}

// GetPrice retrieves a price table by ID.
func (r *GormServiceRepository) GetPrice(ctx context.Context, id kernel.UUID) (*pricing.Price, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PriceDTO
	if err := r.db.WithContext(ctx).Preload("Tiers").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("price", id.String())
		}
		return nil, err
	}

	return priceToDomain(dto)
}
