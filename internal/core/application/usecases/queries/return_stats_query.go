package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrReturnStatsQueryIsNotConstructed = errors.New(
	"ReturnStatsQuery must be created via NewReturnStatsQuery constructor",
)

// ReturnStatsQuery summarizes the return workflow over an inclusive date
// range: how many requests sit in each status, and which products are
// returned most. The unscoped form covers the whole marketplace for
// administrative views; the wholesaler form only counts returns against
// the wholesaler's own products. By default rejected requests count in
// the status breakdown but not in the most-returned ranking, since a
// rejected return never left the retailer.
type ReturnStatsQuery struct {
	wholesalerEmail string
	from            time.Time
	to              time.Time
	includeRejected bool

	guard kernel.ConstructorGuard
}

// NewReturnStatsQuery creates the marketplace-wide query. Zero time
// bounds stay unbounded.
func NewReturnStatsQuery(from, to time.Time) (ReturnStatsQuery, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return ReturnStatsQuery{}, errs.NewValueIsInvalidError("dateRange")
	}
	return ReturnStatsQuery{
		from:  from,
		to:    to,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// NewWholesalerReturnStatsQuery creates the query scoped to returns
// against the wholesaler's products.
func NewWholesalerReturnStatsQuery(wholesalerEmail string, from, to time.Time) (ReturnStatsQuery, error) {
	if wholesalerEmail == "" {
		return ReturnStatsQuery{}, ErrEmailIsRequired
	}
	q, err := NewReturnStatsQuery(from, to)
	if err != nil {
		return ReturnStatsQuery{}, err
	}
	q.wholesalerEmail = wholesalerEmail
	return q, nil
}

// IncludingRejected counts rejected requests in the most-returned ranking
// as well.
func (q ReturnStatsQuery) IncludingRejected() ReturnStatsQuery {
	q.includeRejected = true
	return q
}

func (q ReturnStatsQuery) Validate() error {
	return q.guard.Validate(ErrReturnStatsQueryIsNotConstructed)
}

// ReturnedProductResponse is one product in the most-returned ranking.
// Products are grouped by name, like in the sales reports.
type ReturnedProductResponse struct {
	Name  string
	Units int
}

// ReturnStatsResponse is the return workflow summary.
type ReturnStatsResponse struct {
	CountsByStatus map[string]int
	MostReturned   []ReturnedProductResponse
}
