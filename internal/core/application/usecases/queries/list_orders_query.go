package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via a ListOrdersQuery constructor",
)

type orderScope int

const (
	scopeAllOrders orderScope = iota
	scopeRetailerOrders
	scopeWholesalerOrders
)

// ListOrdersQuery retrieves one page of orders with their items, newest
// first. The scope decides whose orders: a retailer sees the orders they
// placed, a wholesaler sees every order containing at least one of their
// products, and the unscoped form serves administrative views.
type ListOrdersQuery struct {
	scope    orderScope
	email    string
	page     int
	pageSize int

	guard kernel.ConstructorGuard
}

// NewListAllOrdersQuery retrieves every order.
func NewListAllOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{
		scope:    scopeAllOrders,
		pageSize: defaultPageSize,
		guard:    kernel.NewConstructorGuard(),
	}
}

// NewListRetailerOrdersQuery retrieves the orders placed by the retailer.
func NewListRetailerOrdersQuery(retailerEmail string) (ListOrdersQuery, error) {
	if retailerEmail == "" {
		return ListOrdersQuery{}, ErrEmailIsRequired
	}
	return ListOrdersQuery{
		scope:    scopeRetailerOrders,
		email:    retailerEmail,
		pageSize: defaultPageSize,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// NewListWholesalerOrdersQuery retrieves the orders that contain at least
// one product owned by the wholesaler.
func NewListWholesalerOrdersQuery(wholesalerEmail string) (ListOrdersQuery, error) {
	if wholesalerEmail == "" {
		return ListOrdersQuery{}, ErrEmailIsRequired
	}
	return ListOrdersQuery{
		scope:    scopeWholesalerOrders,
		email:    wholesalerEmail,
		pageSize: defaultPageSize,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// WithPage selects a page. Pages start at 0; a page size outside
// [1, 100] falls back to the default of 20.
func (q ListOrdersQuery) WithPage(page, pageSize int) ListOrdersQuery {
	if page < 0 {
		page = 0
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	q.page = page
	q.pageSize = pageSize
	return q
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderItemResponse is one line of an order as read for display.
type OrderItemResponse struct {
	ID              kernel.UUID
	ProductID       kernel.UUID
	ProductName     string
	Quantity        int
	PriceAtPurchase float64
	Subtotal        float64
}

// OrderResponse is one order with its items.
type OrderResponse struct {
	ID           kernel.UUID
	RetailerID   kernel.UUID
	RetailerName string
	OrderDate    time.Time
	TotalAmount  float64
	Status       string
	Items        []OrderItemResponse
}

// OrderPageResponse is one page of orders plus the filtered total.
type OrderPageResponse struct {
	Orders      []OrderResponse
	Page        int
	PageSize    int
	TotalOrders int
}
