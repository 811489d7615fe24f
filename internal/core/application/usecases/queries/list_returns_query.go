package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/returns"
)

var ErrListReturnsQueryIsNotConstructed = errors.New(
	"ListReturnsQuery must be created via a ListReturnsQuery constructor",
)

type returnScope int

const (
	scopeAllReturns returnScope = iota
	scopeRetailerReturns
	scopeWholesalerReturns
)

// ListReturnsQuery retrieves one page of return requests, newest first.
// A retailer sees the returns they opened, a wholesaler sees returns
// against their products, and the unscoped form serves administrative
// views. An optional status narrows any scope.
type ListReturnsQuery struct {
	scope     returnScope
	email     string
	status    returns.Status
	hasStatus bool
	page      int
	pageSize  int

	guard kernel.ConstructorGuard
}

func NewListAllReturnsQuery() ListReturnsQuery {
	return ListReturnsQuery{
		scope:    scopeAllReturns,
		pageSize: defaultPageSize,
		guard:    kernel.NewConstructorGuard(),
	}
}

func NewListRetailerReturnsQuery(retailerEmail string) (ListReturnsQuery, error) {
	if retailerEmail == "" {
		return ListReturnsQuery{}, ErrEmailIsRequired
	}
	return ListReturnsQuery{
		scope:    scopeRetailerReturns,
		email:    retailerEmail,
		pageSize: defaultPageSize,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

func NewListWholesalerReturnsQuery(wholesalerEmail string) (ListReturnsQuery, error) {
	if wholesalerEmail == "" {
		return ListReturnsQuery{}, ErrEmailIsRequired
	}
	return ListReturnsQuery{
		scope:    scopeWholesalerReturns,
		email:    wholesalerEmail,
		pageSize: defaultPageSize,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// WithStatus narrows the query to one return status.
func (q ListReturnsQuery) WithStatus(status returns.Status) (ListReturnsQuery, error) {
	if err := status.Validate(); err != nil {
		return ListReturnsQuery{}, err
	}
	q.status = status
	q.hasStatus = true
	return q, nil
}

// WithPage selects a page. Pages start at 0; a page size outside
// [1, 100] falls back to the default of 20.
func (q ListReturnsQuery) WithPage(page, pageSize int) ListReturnsQuery {
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

func (q ListReturnsQuery) Validate() error {
	return q.guard.Validate(ErrListReturnsQueryIsNotConstructed)
}

// ReturnResponse is one return request as read for display.
type ReturnResponse struct {
	ID          kernel.UUID
	OrderItemID kernel.UUID
	RetailerID  kernel.UUID
	ProductName string
	Quantity    int
	Reason      string
	Status      string
	RequestDate time.Time
	UpdatedDate time.Time
}

// ReturnPageResponse is one page of return requests plus the filtered
// total.
type ReturnPageResponse struct {
	Returns      []ReturnResponse
	Page         int
	PageSize     int
	TotalReturns int
}
