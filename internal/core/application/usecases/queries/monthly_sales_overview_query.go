package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrMonthlySalesOverviewQueryIsNotConstructed = errors.New(
	"MonthlySalesOverviewQuery must be created via NewMonthlySalesOverviewQuery constructor",
)

// MonthlySalesOverviewQuery folds one calendar year of delivered sales
// into twelve chronological monthly buckets. Months without sales appear
// with zero values.
type MonthlySalesOverviewQuery struct {
	year int

	guard kernel.ConstructorGuard
}

func NewMonthlySalesOverviewQuery(year int) (MonthlySalesOverviewQuery, error) {
	if year < 2000 || year > 2200 {
		return MonthlySalesOverviewQuery{}, errs.NewValueIsInvalidError("year")
	}
	return MonthlySalesOverviewQuery{year: year, guard: kernel.NewConstructorGuard()}, nil
}

func (q MonthlySalesOverviewQuery) Validate() error {
	return q.guard.Validate(ErrMonthlySalesOverviewQueryIsNotConstructed)
}
