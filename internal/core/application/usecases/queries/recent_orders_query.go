package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrRecentOrdersQueryIsNotConstructed = errors.New(
	"RecentOrdersQuery must be created via a RecentOrdersQuery constructor",
)

// recentOrdersLimit caps the recent-activity feed.
const recentOrdersLimit = 10

// RecentOrdersQuery retrieves the ten most recent orders of any status,
// newest first, either marketplace-wide or narrowed to orders containing
// a wholesaler's products.
type RecentOrdersQuery struct {
	wholesalerEmail string

	guard kernel.ConstructorGuard
}

func NewRecentOrdersQuery() RecentOrdersQuery {
	return RecentOrdersQuery{guard: kernel.NewConstructorGuard()}
}

func NewRecentWholesalerOrdersQuery(wholesalerEmail string) (RecentOrdersQuery, error) {
	if wholesalerEmail == "" {
		return RecentOrdersQuery{}, ErrEmailIsRequired
	}
	return RecentOrdersQuery{
		wholesalerEmail: wholesalerEmail,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

func (q RecentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrRecentOrdersQueryIsNotConstructed)
}

// RecentOrderResponse is one order in the recent-activity feed.
type RecentOrderResponse struct {
	ID           kernel.UUID
	RetailerName string
	OrderDate    time.Time
	TotalAmount  float64
	Status       string
}
