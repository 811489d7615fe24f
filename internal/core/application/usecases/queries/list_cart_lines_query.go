package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrListCartLinesQueryIsNotConstructed = errors.New(
	"ListCartLinesQuery must be created via NewListCartLinesQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListCartLinesQuery retrieves one page of the retailer's cart, oldest
// line first, together with a live snapshot of each product. The snapshot
// price is the product's current price, not a frozen one: carts only
// freeze prices at checkout.
type ListCartLinesQuery struct {
	retailerEmail string
	page          int
	pageSize      int

	guard kernel.ConstructorGuard
}

// NewListCartLinesQuery creates the query. Pages start at 0; a page size
// outside [1, 100] falls back to the default of 20.
func NewListCartLinesQuery(retailerEmail string, page, pageSize int) (ListCartLinesQuery, error) {
	if retailerEmail == "" {
		return ListCartLinesQuery{}, ErrEmailIsRequired
	}
	if page < 0 {
		page = 0
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return ListCartLinesQuery{
		retailerEmail: retailerEmail,
		page:          page,
		pageSize:      pageSize,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

func (q ListCartLinesQuery) Validate() error {
	return q.guard.Validate(ErrListCartLinesQueryIsNotConstructed)
}

// CartLineResponse is one cart line with its product snapshot.
type CartLineResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Brand       string
	ImageURLs   []string
	UnitPrice   float64
	Quantity    int
	Subtotal    float64
}

// CartPageResponse is one page of the cart plus the full cart total.
type CartPageResponse struct {
	Lines      []CartLineResponse
	Page       int
	PageSize   int
	TotalLines int
}
