package queries

import (
	"context"

	"gorm.io/gorm"
)

type WholesalerSalesQueryHandler struct {
	db *gorm.DB
}

func NewWholesalerSalesQueryHandler(db *gorm.DB) WholesalerSalesQueryHandler {
	return WholesalerSalesQueryHandler{db: db}
}

func (h WholesalerSalesQueryHandler) Handle(
	ctx context.Context,
	query WholesalerSalesQuery,
) (WholesalerSalesResponse, error) {
	if err := query.Validate(); err != nil {
		return WholesalerSalesResponse{}, err
	}

	rows, err := loadSalesRows(ctx, h.db, salesFilter{
		from:            query.from,
		to:              query.to,
		wholesalerEmail: query.wholesalerEmail,
		category:        query.category,
	})
	if err != nil {
		return WholesalerSalesResponse{}, err
	}

	return WholesalerSalesResponse{
		Totals:      sumSales(rows),
		TopProducts: rankProducts(rows),
	}, nil
}
