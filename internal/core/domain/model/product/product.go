// Package product contains the product aggregate owned by wholesalers.
// Quantity is the only genuinely contended field in the system; the
// persistence layer mutates it through an atomic bounded decrement so it
// can never go negative under concurrent checkouts.
package product

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// maxImages bounds the image list, as the storefront renders at most five.
const maxImages = 5

// Product is a catalog entry owned by a wholesaler. Soft-deleted products
// stay in storage with active=false.
type Product struct {
	id            kernel.UUID
	name          string
	description   string
	price         float64
	quantity      int
	category      string
	brand         string
	imageURLs     []string
	unitType      string
	minThreshold  int
	wholesalerID  kernel.UUID
	active        bool
	createdDate   time.Time
	updatedDate   time.Time
	isConstructed bool
}

// NewProduct creates an active product.
func NewProduct(
	id, wholesalerID kernel.UUID,
	name, description, category, brand, unitType string,
	price float64,
	quantity, minThreshold int,
	imageURLs []string,
	now time.Time,
) (*Product, error) {
	if err := errors.Join(id.Validate(), wholesalerID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidError("price")
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	if minThreshold < 0 {
		return nil, errs.NewValueIsInvalidError("minimumStockThreshold")
	}
	if len(imageURLs) > maxImages {
		return nil, errs.NewValueIsInvalidErrorWithCause("imageUrls",
			fmt.Errorf("at most %d images allowed", maxImages))
	}

	return &Product{
		id:            id,
		name:          name,
		description:   description,
		price:         price,
		quantity:      quantity,
		category:      category,
		brand:         brand,
		imageURLs:     imageURLs,
		unitType:      unitType,
		minThreshold:  minThreshold,
		wholesalerID:  wholesalerID,
		active:        true,
		createdDate:   now,
		updatedDate:   now,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id, wholesalerID kernel.UUID,
	name, description, category, brand, unitType string,
	price float64,
	quantity, minThreshold int,
	imageURLs []string,
	active bool,
	createdDate, updatedDate time.Time,
) (*Product, error) {
	p, err := NewProduct(id, wholesalerID, name, description, category, brand, unitType,
		price, quantity, minThreshold, imageURLs, createdDate)
	if err != nil {
		return nil, err
	}
	p.active = active
	p.updatedDate = updatedDate
	return p, nil
}

// Validate ensures the Product was built through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID           { return p.id }
func (p *Product) Name() string              { return p.name }
func (p *Product) Description() string       { return p.description }
func (p *Product) Price() float64            { return p.price }
func (p *Product) Quantity() int             { return p.quantity }
func (p *Product) Category() string          { return p.category }
func (p *Product) Brand() string             { return p.brand }
func (p *Product) UnitType() string          { return p.unitType }
func (p *Product) MinThreshold() int         { return p.minThreshold }
func (p *Product) WholesalerID() kernel.UUID { return p.wholesalerID }
func (p *Product) IsActive() bool            { return p.active }
func (p *Product) CreatedDate() time.Time    { return p.createdDate }
func (p *Product) UpdatedDate() time.Time    { return p.updatedDate }

// ImageURLs returns a copy of the image list.
func (p *Product) ImageURLs() []string {
	urls := make([]string, len(p.imageURLs))
	copy(urls, p.imageURLs)
	return urls
}

// IsOwnedBy reports whether the given wholesaler owns this product.
func (p *Product) IsOwnedBy(wholesalerID kernel.UUID) bool {
	return p.wholesalerID.IsEqual(wholesalerID)
}

// BelowThreshold reports whether the quantity is strictly below the
// minimum-stock threshold. Quantity equal to the threshold does not count
// as low stock.
func (p *Product) BelowThreshold() bool {
	return p.quantity < p.minThreshold
}
