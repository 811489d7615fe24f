package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrLowStockProductsQueryIsNotConstructed = errors.New(
	"LowStockProductsQuery must be created via NewLowStockProductsQuery constructor",
)

// LowStockProductsQuery lists a wholesaler's active products whose stock
// fell strictly below their minimum threshold.
type LowStockProductsQuery struct {
	wholesalerEmail string

	guard kernel.ConstructorGuard
}

func NewLowStockProductsQuery(wholesalerEmail string) (LowStockProductsQuery, error) {
	if wholesalerEmail == "" {
		return LowStockProductsQuery{}, ErrEmailIsRequired
	}
	return LowStockProductsQuery{
		wholesalerEmail: wholesalerEmail,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

func (q LowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrLowStockProductsQueryIsNotConstructed)
}

// LowStockProductResponse is one product needing restocking.
type LowStockProductResponse struct {
	ID           kernel.UUID
	Name         string
	Quantity     int
	MinThreshold int
}
