package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// salesRow is one delivered order item flattened with the parties and the
// product around it. All sales statistics aggregate over these rows, so
// every stats handler shares one loading path and the arithmetic stays in
// plain functions.
type salesRow struct {
	OrderID        kernel.UUID
	RetailerID     kernel.UUID
	RetailerName   string
	WholesalerID   kernel.UUID
	WholesalerName string
	ProductID      kernel.UUID
	ProductName    string
	Category       string
	OrderDate      time.Time
	Quantity       int
	Price          float64
}

func (r salesRow) revenue() float64 {
	return r.Price * float64(r.Quantity)
}

// salesFilter narrows the delivered rows loaded for aggregation. Zero
// time bounds mean unbounded; both bounds are inclusive.
type salesFilter struct {
	from            time.Time
	to              time.Time
	wholesalerEmail string
	category        string
}

// loadSalesRows reads every delivered order item matching the filter.
// Only active, delivered orders count as sales: placed, shipped,
// cancelled and soft-deleted orders contribute nothing to any statistic.
func loadSalesRows(ctx context.Context, db *gorm.DB, filter salesFilter) ([]salesRow, error) {
	sql := `
		SELECT
			o.id,
			o.retailer_id,
			ru.name,
			p.wholesaler_id,
			wu.name,
			oi.product_id,
			p.name,
			p.category,
			o.order_date,
			oi.quantity,
			oi.price_at_purchase
		FROM orders o
		JOIN users ru ON ru.id = o.retailer_id
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		JOIN users wu ON wu.id = p.wholesaler_id
		WHERE o.status = 'DELIVERED' AND o.active = TRUE
	`
	var args []any

	if !filter.from.IsZero() {
		sql += ` AND o.order_date >= ?`
		args = append(args, filter.from)
	}
	if !filter.to.IsZero() {
		sql += ` AND o.order_date <= ?`
		args = append(args, filter.to)
	}
	if filter.wholesalerEmail != "" {
		sql += ` AND LOWER(wu.email) = LOWER(?)`
		args = append(args, filter.wholesalerEmail)
	}
	if filter.category != "" {
		sql += ` AND p.category = ?`
		args = append(args, filter.category)
	}

	sql += ` ORDER BY o.order_date, o.id, oi.id`

	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]salesRow, 0)
	for rows.Next() {
		var orderID, retailerID, wholesalerID, productID uuid.UUID
		var row salesRow

		if err = rows.Scan(
			&orderID, &retailerID, &row.RetailerName, &wholesalerID, &row.WholesalerName,
			&productID, &row.ProductName, &row.Category, &row.OrderDate, &row.Quantity, &row.Price,
		); err != nil {
			return nil, err
		}

		if row.OrderID, err = scanUUID(orderID); err != nil {
			return nil, err
		}
		if row.RetailerID, err = scanUUID(retailerID); err != nil {
			return nil, err
		}
		if row.WholesalerID, err = scanUUID(wholesalerID); err != nil {
			return nil, err
		}
		if row.ProductID, err = scanUUID(productID); err != nil {
			return nil, err
		}

		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
