package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrTotalSalesStatsQueryIsNotConstructed = errors.New(
	"TotalSalesStatsQuery must be created via NewTotalSalesStatsQuery constructor",
)

// TotalSalesStatsQuery computes revenue, order count and units sold over
// delivered orders. Both date bounds are optional and inclusive; a zero
// bound leaves that side open.
type TotalSalesStatsQuery struct {
	from time.Time
	to   time.Time

	guard kernel.ConstructorGuard
}

func NewTotalSalesStatsQuery(from, to time.Time) (TotalSalesStatsQuery, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return TotalSalesStatsQuery{}, errs.NewValueIsInvalidError("dateRange")
	}
	return TotalSalesStatsQuery{from: from, to: to, guard: kernel.NewConstructorGuard()}, nil
}

func (q TotalSalesStatsQuery) Validate() error {
	return q.guard.Validate(ErrTotalSalesStatsQueryIsNotConstructed)
}
