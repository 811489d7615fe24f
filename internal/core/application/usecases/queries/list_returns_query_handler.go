package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListReturnsQueryHandler reads return requests joined with the product
// they concern.
type ListReturnsQueryHandler struct {
	db *gorm.DB
}

func NewListReturnsQueryHandler(db *gorm.DB) ListReturnsQueryHandler {
	return ListReturnsQueryHandler{db: db}
}

func (h ListReturnsQueryHandler) Handle(
	ctx context.Context,
	query ListReturnsQuery,
) (ReturnPageResponse, error) {
	if err := query.Validate(); err != nil {
		return ReturnPageResponse{}, err
	}

	filter := `
		FROM return_requests rr
		JOIN order_items oi ON oi.id = rr.order_item_id
		JOIN products p ON p.id = oi.product_id
		WHERE 1 = 1
	`
	var args []any

	switch query.scope {
	case scopeRetailerReturns:
		filter += ` AND rr.retailer_id IN (SELECT id FROM users WHERE LOWER(email) = LOWER(?))`
		args = append(args, query.email)
	case scopeWholesalerReturns:
		filter += ` AND p.wholesaler_id IN (SELECT id FROM users WHERE LOWER(email) = LOWER(?))`
		args = append(args, query.email)
	case scopeAllReturns:
	}

	if query.hasStatus {
		filter += ` AND rr.status = ?`
		args = append(args, query.status.String())
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*)`+filter, args...).Scan(&total).Error
	if err != nil {
		return ReturnPageResponse{}, err
	}

	sql := `
		SELECT
			rr.id,
			rr.order_item_id,
			rr.retailer_id,
			p.name,
			rr.quantity,
			rr.reason,
			rr.status,
			rr.request_date,
			rr.updated_date
	` + filter + `
		ORDER BY rr.request_date DESC, rr.id
		LIMIT ? OFFSET ?
	`
	args = append(args, query.pageSize, query.page*query.pageSize)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return ReturnPageResponse{}, err
	}
	defer rows.Close()

	page := ReturnPageResponse{
		Returns:      make([]ReturnResponse, 0),
		Page:         query.page,
		PageSize:     query.pageSize,
		TotalReturns: int(total),
	}

	for rows.Next() {
		var id, orderItemID, retailerID uuid.UUID
		var productName, reason, status string
		var quantity int
		var requestDate, updatedDate time.Time

		if err = rows.Scan(
			&id, &orderItemID, &retailerID, &productName,
			&quantity, &reason, &status, &requestDate, &updatedDate,
		); err != nil {
			return ReturnPageResponse{}, err
		}

		resp := ReturnResponse{
			ProductName: productName,
			Quantity:    quantity,
			Reason:      reason,
			Status:      status,
			RequestDate: requestDate,
			UpdatedDate: updatedDate,
		}
		if resp.ID, err = scanUUID(id); err != nil {
			return ReturnPageResponse{}, err
		}
		if resp.OrderItemID, err = scanUUID(orderItemID); err != nil {
			return ReturnPageResponse{}, err
		}
		if resp.RetailerID, err = scanUUID(retailerID); err != nil {
			return ReturnPageResponse{}, err
		}

		page.Returns = append(page.Returns, resp)
	}

	if err = rows.Err(); err != nil {
		return ReturnPageResponse{}, err
	}

	return page, nil
}
