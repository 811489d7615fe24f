package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads orders and their items in one joined pass.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (OrderPageResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderPageResponse{}, err
	}

	filter := `
		FROM orders o
		JOIN users ru ON ru.id = o.retailer_id
		WHERE 1 = 1
	`
	var filterArgs []any

	switch query.scope {
	case scopeRetailerOrders:
		filter += ` AND LOWER(ru.email) = LOWER(?)`
		filterArgs = append(filterArgs, query.email)
	case scopeWholesalerOrders:
		filter += ` AND o.id IN (
			SELECT oi2.order_id
			FROM order_items oi2
			JOIN products p2 ON p2.id = oi2.product_id
			JOIN users wu ON wu.id = p2.wholesaler_id
			WHERE LOWER(wu.email) = LOWER(?)
		)`
		filterArgs = append(filterArgs, query.email)
	case scopeAllOrders:
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*)`+filter, filterArgs...).Scan(&total).Error
	if err != nil {
		return OrderPageResponse{}, err
	}

	// The page boundary applies to orders, not joined rows, so the page
	// of order ids is selected first and the items joined onto it.
	sql := `
		SELECT
			o.id,
			o.retailer_id,
			ru.name,
			o.order_date,
			o.total_amount,
			o.status,
			oi.id,
			oi.product_id,
			p.name,
			oi.quantity,
			oi.price_at_purchase
		FROM orders o
		JOIN users ru ON ru.id = o.retailer_id
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		WHERE o.id IN (
			SELECT o.id ` + filter + `
			ORDER BY o.order_date DESC, o.id
			LIMIT ? OFFSET ?
		)
		ORDER BY o.order_date DESC, o.id, oi.id
	`
	args := append(append([]any{}, filterArgs...), query.pageSize, query.page*query.pageSize)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return OrderPageResponse{}, err
	}
	defer rows.Close()

	page := OrderPageResponse{
		Orders:      make([]OrderResponse, 0),
		Page:        query.page,
		PageSize:    query.pageSize,
		TotalOrders: int(total),
	}
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var orderID, retailerID, itemID, productID uuid.UUID
		var retailerName, status, productName string
		var orderDate time.Time
		var totalAmount, priceAtPurchase float64
		var quantity int

		if err = rows.Scan(
			&orderID, &retailerID, &retailerName, &orderDate, &totalAmount, &status,
			&itemID, &productID, &productName, &quantity, &priceAtPurchase,
		); err != nil {
			return OrderPageResponse{}, err
		}

		oid, idErr := scanUUID(orderID)
		if idErr != nil {
			return OrderPageResponse{}, idErr
		}

		pos, seen := index[oid]
		if !seen {
			rid, ridErr := scanUUID(retailerID)
			if ridErr != nil {
				return OrderPageResponse{}, ridErr
			}
			page.Orders = append(page.Orders, OrderResponse{
				ID:           oid,
				RetailerID:   rid,
				RetailerName: retailerName,
				OrderDate:    orderDate,
				TotalAmount:  totalAmount,
				Status:       status,
				Items:        make([]OrderItemResponse, 0),
			})
			pos = len(page.Orders) - 1
			index[oid] = pos
		}

		iid, iidErr := scanUUID(itemID)
		if iidErr != nil {
			return OrderPageResponse{}, iidErr
		}
		pid, pidErr := scanUUID(productID)
		if pidErr != nil {
			return OrderPageResponse{}, pidErr
		}

		page.Orders[pos].Items = append(page.Orders[pos].Items, OrderItemResponse{
			ID:              iid,
			ProductID:       pid,
			ProductName:     productName,
			Quantity:        quantity,
			PriceAtPurchase: priceAtPurchase,
			Subtotal:        priceAtPurchase * float64(quantity),
		})
	}

	if err = rows.Err(); err != nil {
		return OrderPageResponse{}, err
	}

	return page, nil
}
