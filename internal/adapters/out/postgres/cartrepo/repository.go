package cartrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Line) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartLineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cartLine", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRetailer retrieves the retailer's lines, oldest first.
func (r *GormCartRepository) GetByRetailer(
	ctx context.Context, retailerID kernel.UUID,
) ([]*cart.Line, error) {
	if err := retailerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	err := r.db.WithContext(ctx).
		Where("retailer_id = ?", retailerID.Bytes()).
		Order("created_date, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	lines := make([]*cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (r *GormCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CartLineDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartLine", id.String())
	}

	return nil
}

// DeleteByRetailer removes every line of the retailer. Deleting an
// already-empty cart is not an error.
func (r *GormCartRepository) DeleteByRetailer(ctx context.Context, retailerID kernel.UUID) error {
	if err := retailerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&CartLineDTO{}, "retailer_id = ?", retailerID.Bytes()).Error
}
