package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrTopPerformersQueryIsNotConstructed = errors.New(
	"top performers queries must be created via their constructors",
)

type performerDimension int

const (
	dimensionWholesalers performerDimension = iota
	dimensionRetailers
	dimensionCategories
)

// TopPerformersQuery ranks the marketplace's best sellers over delivered
// orders: wholesalers and retailers by revenue, categories by units sold.
// Rankings are capped at five entries; ties keep whichever party sold
// first. Date bounds are optional and inclusive.
type TopPerformersQuery struct {
	dimension performerDimension
	from      time.Time
	to        time.Time

	guard kernel.ConstructorGuard
}

func NewTopWholesalersQuery(from, to time.Time) (TopPerformersQuery, error) {
	return newTopPerformersQuery(dimensionWholesalers, from, to)
}

func NewTopRetailersQuery(from, to time.Time) (TopPerformersQuery, error) {
	return newTopPerformersQuery(dimensionRetailers, from, to)
}

func NewTopCategoriesQuery(from, to time.Time) (TopPerformersQuery, error) {
	return newTopPerformersQuery(dimensionCategories, from, to)
}

func newTopPerformersQuery(dimension performerDimension, from, to time.Time) (TopPerformersQuery, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return TopPerformersQuery{}, errs.NewValueIsInvalidError("dateRange")
	}
	return TopPerformersQuery{
		dimension: dimension,
		from:      from,
		to:        to,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

func (q TopPerformersQuery) Validate() error {
	return q.guard.Validate(ErrTopPerformersQueryIsNotConstructed)
}

// TopPerformersResponse carries whichever ranking the query asked for;
// the other slice stays empty.
type TopPerformersResponse struct {
	Performers []TopPerformerResponse
	Categories []TopCategoryResponse
}
