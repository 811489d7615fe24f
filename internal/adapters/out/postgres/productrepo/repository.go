package productrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DecrementStock subtracts qty from the product's quantity in one guarded
// update. The WHERE clause refuses the write when fewer than qty units
// remain, so concurrent checkouts can never drive a quantity negative:
// the database serializes the row updates and exactly one of two racing
// buyers of the last units wins.
func (r *GormProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, qty int) (int, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}
	if qty <= 0 {
		return 0, errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND quantity >= ?", id.Bytes(), qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		var dto ProductDTO
		if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, errs.NewObjectNotFoundError("product", id.String())
			}
			return 0, err
		}
		return 0, errs.NewInsufficientStockError(dto.Name, qty, dto.Quantity)
	}

	var remaining int
	err := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Select("quantity").
		Scan(&remaining).Error
	if err != nil {
		return 0, err
	}

	return remaining, nil
}

// GetBelowThreshold retrieves the wholesaler's active products whose
// stock fell strictly below their minimum threshold.
func (r *GormProductRepository) GetBelowThreshold(
	ctx context.Context, wholesalerID kernel.UUID,
) ([]*product.Product, error) {
	if err := wholesalerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("wholesaler_id = ? AND active = ? AND quantity < min_threshold", wholesalerID.Bytes(), true).
		Order("quantity").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		products = append(products, p)
	}

	return products, nil
}
