// Package cartrepo persists cart lines with GORM.
package cartrepo

import (
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartLineDTO is the database row behind one cart line.
type CartLineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RetailerID  uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;index"`
	Quantity    int
	CreatedDate time.Time
}

func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(line *cart.Line) CartLineDTO {
	return CartLineDTO{
		ID:          line.ID().Bytes(),
		RetailerID:  line.RetailerID().Bytes(),
		ProductID:   line.ProductID().Bytes(),
		Quantity:    line.Quantity(),
		CreatedDate: line.CreatedDate(),
	}
}

func toDomain(dto CartLineDTO) (*cart.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	retailerID, err := kernel.UUIDFromBytes(dto.RetailerID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return cart.RestoreLine(id, retailerID, productID, dto.Quantity, dto.CreatedDate)
}
