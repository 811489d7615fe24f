// Package productrepo persists catalog products with GORM.
package productrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO is the database row behind a product. Image URLs are stored
// as a JSON-serialized list; quantity and min_threshold drive the
// low-stock queries so both stay plain integer columns.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	WholesalerID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Description  string
	Category     string `gorm:"index"`
	Brand        string
	UnitType     string
	Price        float64
	Quantity     int
	MinThreshold int
	ImageURLs    []string `gorm:"serializer:json"`
	Active       bool
	CreatedDate  time.Time
	UpdatedDate  time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID().Bytes(),
		WholesalerID: p.WholesalerID().Bytes(),
		Name:         p.Name(),
		Description:  p.Description(),
		Category:     p.Category(),
		Brand:        p.Brand(),
		UnitType:     p.UnitType(),
		Price:        p.Price(),
		Quantity:     p.Quantity(),
		MinThreshold: p.MinThreshold(),
		ImageURLs:    p.ImageURLs(),
		Active:       p.IsActive(),
		CreatedDate:  p.CreatedDate(),
		UpdatedDate:  p.UpdatedDate(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	wholesalerID, err := kernel.UUIDFromBytes(dto.WholesalerID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, wholesalerID,
		dto.Name, dto.Description, dto.Category, dto.Brand, dto.UnitType,
		dto.Price, dto.Quantity, dto.MinThreshold,
		dto.ImageURLs, dto.Active, dto.CreatedDate, dto.UpdatedDate,
	)
}
