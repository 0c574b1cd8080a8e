package orderrepo

import (
	"context"
	"errors"

	"travelorders/internal/adapters/out/postgres/statusrepo"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/model/status"
	"travelorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with version 1.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order, guarded by the optimistic-lock version the
// aggregate was loaded with. A stale version means another transaction won
// the race; the caller gets a ConflictError and nothing is written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"requester_name": dto.RequesterName,
			"destination":    dto.Destination,
			"departure_date": dto.DepartureDate,
			"return_date":    dto.ReturnDate,
			"status_id":      dto.StatusID,
			"version":        aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderID", aggregate.ID().String())
		}
		return errs.NewConflictError("orderID", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a non-deleted order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// GetIncludingDeleted retrieves an order regardless of soft-delete state.
func (r *GormOrderRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Unscoped().First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// Delete soft-deletes the order.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", aggregate.ID().Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID().String())
	}

	return nil
}

// restore resolves the referenced status row and rebuilds the aggregate.
// The status read is unscoped: an order may still carry a custom status that
// was removed from the registry after the transition.
func (r *GormOrderRepository) restore(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	var statusDTO statusrepo.StatusDTO
	err := r.db.WithContext(ctx).Unscoped().First(&statusDTO, "id = ?", dto.StatusID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("statusID", dto.StatusID.String())
		}
		return nil, err
	}

	statusID, err := kernel.UUIDFromBytes(statusDTO.ID[:])
	if err != nil {
		return nil, err
	}
	current, err := status.RestoreStatus(statusID, statusDTO.Name, statusDTO.IsCustom)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, current)
}
