package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type MonthlySalesOverviewQueryHandler struct {
	db *gorm.DB
}

func NewMonthlySalesOverviewQueryHandler(db *gorm.DB) MonthlySalesOverviewQueryHandler {
	return MonthlySalesOverviewQueryHandler{db: db}
}

func (h MonthlySalesOverviewQueryHandler) Handle(
	ctx context.Context,
	query MonthlySalesOverviewQuery,
) ([]MonthlySalesResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	from := time.Date(query.year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(query.year, time.December, 31, 23, 59, 59, 999999999, time.UTC)

	rows, err := loadSalesRows(ctx, h.db, salesFilter{from: from, to: to})
	if err != nil {
		return nil, err
	}

	return bucketByMonth(rows, query.year), nil
}
