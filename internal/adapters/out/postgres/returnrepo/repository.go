package returnrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/returns"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReturnRepository implements ports.ReturnRepository using GORM.
type GormReturnRepository struct {
	db *gorm.DB
}

func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

func (r *GormReturnRepository) Add(ctx context.Context, aggregate *returns.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormReturnRepository) Update(ctx context.Context, aggregate *returns.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReturnRequestDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":       dto.Status,
			"updated_date": dto.UpdatedDate,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("returnRequest", aggregate.ID().String())
	}

	return nil
}

func (r *GormReturnRepository) Get(ctx context.Context, id kernel.UUID) (*returns.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReturnRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("returnRequest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
