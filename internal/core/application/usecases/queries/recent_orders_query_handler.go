package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecentOrdersQueryHandler struct {
	db *gorm.DB
}

func NewRecentOrdersQueryHandler(db *gorm.DB) RecentOrdersQueryHandler {
	return RecentOrdersQueryHandler{db: db}
}

func (h RecentOrdersQueryHandler) Handle(
	ctx context.Context,
	query RecentOrdersQuery,
) ([]RecentOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT o.id, ru.name, o.order_date, o.total_amount, o.status
		FROM orders o
		JOIN users ru ON ru.id = o.retailer_id
		WHERE o.active = TRUE
	`
	var args []any

	if query.wholesalerEmail != "" {
		sql += ` AND o.id IN (
			SELECT oi.order_id
			FROM order_items oi
			JOIN products p ON p.id = oi.product_id
			JOIN users wu ON wu.id = p.wholesaler_id
			WHERE LOWER(wu.email) = LOWER(?)
		)`
		args = append(args, query.wholesalerEmail)
	}

	sql += ` ORDER BY o.order_date DESC, o.id LIMIT ?`
	args = append(args, recentOrdersLimit)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]RecentOrderResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var retailerName, status string
		var orderDate time.Time
		var totalAmount float64

		if err = rows.Scan(&id, &retailerName, &orderDate, &totalAmount, &status); err != nil {
			return nil, err
		}

		resp := RecentOrderResponse{
			RetailerName: retailerName,
			OrderDate:    orderDate,
			TotalAmount:  totalAmount,
			Status:       status,
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
