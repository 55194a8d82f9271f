package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(externalID string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order record. Each call creates a new record even when
// the external id already exists; the natural key is not unique.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatus overwrites the status of the records with the given external
// id. Matching zero records is not an error: the operation performs no
// existence check.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	externalID string,
	status order.Status,
) error {
	if externalID == "" {
		return errs.NewValueIsRequiredError("externalID")
	}
	if err := status.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("external_id = ?", externalID).
		Update("status", string(status)).Error
}

// Get retrieves the order with the given external id.
// When duplicates share the id, the oldest record wins.
func (r *GormOrderRepository) Get(ctx context.Context, externalID string) (*order.Order, error) {
	if externalID == "" {
		return nil, errs.NewValueIsRequiredError("externalID")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		Order("created_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", externalID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatuses retrieves all orders whose status is one of the supplied values.
func (r *GormOrderRepository) GetAllInStatuses(
	ctx context.Context,
	statuses ...order.Status,
) ([]*order.Order, error) {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return nil, err
		}
		values = append(values, string(status))
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status IN ?", values).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
