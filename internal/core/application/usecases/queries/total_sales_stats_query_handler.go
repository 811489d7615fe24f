package queries

import (
	"context"

	"gorm.io/gorm"
)

type TotalSalesStatsQueryHandler struct {
	db *gorm.DB
}

func NewTotalSalesStatsQueryHandler(db *gorm.DB) TotalSalesStatsQueryHandler {
	return TotalSalesStatsQueryHandler{db: db}
}

func (h TotalSalesStatsQueryHandler) Handle(
	ctx context.Context,
	query TotalSalesStatsQuery,
) (SalesTotals, error) {
	if err := query.Validate(); err != nil {
		return SalesTotals{}, err
	}

	rows, err := loadSalesRows(ctx, h.db, salesFilter{from: query.from, to: query.to})
	if err != nil {
		return SalesTotals{}, err
	}

	return sumSales(rows), nil
}
