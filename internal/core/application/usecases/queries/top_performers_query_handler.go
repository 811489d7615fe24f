package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type TopPerformersQueryHandler struct {
	db *gorm.DB
}

func NewTopPerformersQueryHandler(db *gorm.DB) TopPerformersQueryHandler {
	return TopPerformersQueryHandler{db: db}
}

func (h TopPerformersQueryHandler) Handle(
	ctx context.Context,
	query TopPerformersQuery,
) (TopPerformersResponse, error) {
	if err := query.Validate(); err != nil {
		return TopPerformersResponse{}, err
	}

	rows, err := loadSalesRows(ctx, h.db, salesFilter{from: query.from, to: query.to})
	if err != nil {
		return TopPerformersResponse{}, err
	}

	switch query.dimension {
	case dimensionWholesalers:
		return TopPerformersResponse{
			Performers: rankUsers(rows, func(r salesRow) (kernel.UUID, string) {
				return r.WholesalerID, r.WholesalerName
			}),
		}, nil
	case dimensionRetailers:
		return TopPerformersResponse{
			Performers: rankUsers(rows, func(r salesRow) (kernel.UUID, string) {
				return r.RetailerID, r.RetailerName
			}),
		}, nil
	case dimensionCategories:
		return TopPerformersResponse{Categories: rankCategories(rows)}, nil
	}

	return TopPerformersResponse{}, nil
}
