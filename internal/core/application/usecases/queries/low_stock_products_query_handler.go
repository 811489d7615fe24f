package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LowStockProductsQueryHandler struct {
	db *gorm.DB
}

func NewLowStockProductsQueryHandler(db *gorm.DB) LowStockProductsQueryHandler {
	return LowStockProductsQueryHandler{db: db}
}

func (h LowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query LowStockProductsQuery,
) ([]LowStockProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.id, p.name, p.quantity, p.min_threshold
		FROM products p
		JOIN users wu ON wu.id = p.wholesaler_id
		WHERE LOWER(wu.email) = LOWER(?)
		  AND p.active = TRUE
		  AND p.quantity < p.min_threshold
		ORDER BY p.quantity, p.name
	`, query.wholesalerEmail).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]LowStockProductResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var resp LowStockProductResponse

		if err = rows.Scan(&id, &resp.Name, &resp.Quantity, &resp.MinThreshold); err != nil {
			return nil, err
		}
		if resp.ID, err = scanUUID(id); err != nil {
			return nil, err
		}
		result = append(result, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
