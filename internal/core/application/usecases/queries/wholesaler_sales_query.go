package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrWholesalerSalesQueryIsNotConstructed = errors.New(
	"WholesalerSalesQuery must be created via NewWholesalerSalesQuery constructor",
)

// WholesalerSalesQuery summarizes one wholesaler's delivered sales: their
// totals plus their five best-selling products by units. An optional
// category and an optional inclusive date range narrow the report.
type WholesalerSalesQuery struct {
	wholesalerEmail string
	category        string
	from            time.Time
	to              time.Time

	guard kernel.ConstructorGuard
}

func NewWholesalerSalesQuery(wholesalerEmail string) (WholesalerSalesQuery, error) {
	if wholesalerEmail == "" {
		return WholesalerSalesQuery{}, ErrEmailIsRequired
	}
	return WholesalerSalesQuery{
		wholesalerEmail: wholesalerEmail,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

// WithCategory restricts the report to one product category.
func (q WholesalerSalesQuery) WithCategory(category string) WholesalerSalesQuery {
	q.category = category
	return q
}

// WithRange restricts the report to an inclusive date range. Zero bounds
// stay unbounded.
func (q WholesalerSalesQuery) WithRange(from, to time.Time) (WholesalerSalesQuery, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return WholesalerSalesQuery{}, errs.NewValueIsInvalidError("dateRange")
	}
	q.from = from
	q.to = to
	return q, nil
}

func (q WholesalerSalesQuery) Validate() error {
	return q.guard.Validate(ErrWholesalerSalesQueryIsNotConstructed)
}

// WholesalerSalesResponse is a wholesaler's sales dashboard.
type WholesalerSalesResponse struct {
	Totals      SalesTotals
	TopProducts []TopProductResponse
}
