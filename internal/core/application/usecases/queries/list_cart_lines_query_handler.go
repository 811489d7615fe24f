package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCartLinesQueryHandler reads the retailer's cart page straight from
// the database, joining each line with the current product row.
type ListCartLinesQueryHandler struct {
	db *gorm.DB
}

func NewListCartLinesQueryHandler(db *gorm.DB) ListCartLinesQueryHandler {
	return ListCartLinesQueryHandler{db: db}
}

func (h ListCartLinesQueryHandler) Handle(
	ctx context.Context,
	query ListCartLinesQuery,
) (CartPageResponse, error) {
	if err := query.Validate(); err != nil {
		return CartPageResponse{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM cart_lines cl
		JOIN users u ON u.id = cl.retailer_id
		WHERE LOWER(u.email) = LOWER(?)
	`, query.retailerEmail).Scan(&total).Error
	if err != nil {
		return CartPageResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cl.id,
			cl.product_id,
			p.name,
			p.brand,
			p.image_urls,
			p.price,
			cl.quantity
		FROM cart_lines cl
		JOIN users u ON u.id = cl.retailer_id
		JOIN products p ON p.id = cl.product_id
		WHERE LOWER(u.email) = LOWER(?)
		ORDER BY cl.created_date, cl.id
		LIMIT ? OFFSET ?
	`, query.retailerEmail, query.pageSize, query.page*query.pageSize).Rows()
	if err != nil {
		return CartPageResponse{}, err
	}
	defer rows.Close()

	page := CartPageResponse{
		Lines:      make([]CartLineResponse, 0),
		Page:       query.page,
		PageSize:   query.pageSize,
		TotalLines: int(total),
	}

	for rows.Next() {
		var lineID, productID uuid.UUID
		var imageURLs sql.NullString
		var line CartLineResponse

		if err = rows.Scan(
			&lineID, &productID, &line.ProductName, &line.Brand,
			&imageURLs, &line.UnitPrice, &line.Quantity,
		); err != nil {
			return CartPageResponse{}, err
		}

		if line.ID, err = scanUUID(lineID); err != nil {
			return CartPageResponse{}, err
		}
		if line.ProductID, err = scanUUID(productID); err != nil {
			return CartPageResponse{}, err
		}
		if imageURLs.Valid && imageURLs.String != "" {
			if err = json.Unmarshal([]byte(imageURLs.String), &line.ImageURLs); err != nil {
				return CartPageResponse{}, err
			}
		}

		line.Subtotal = line.UnitPrice * float64(line.Quantity)
		page.Lines = append(page.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return CartPageResponse{}, err
	}

	return page, nil
}
