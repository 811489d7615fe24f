package queries

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/returns"
)

// ReturnStatsQueryHandler summarizes return requests: counts per status
// plus a most-returned product ranking grouped by product name.
type ReturnStatsQueryHandler struct {
	db *gorm.DB
}

func NewReturnStatsQueryHandler(db *gorm.DB) ReturnStatsQueryHandler {
	return ReturnStatsQueryHandler{db: db}
}

func (h ReturnStatsQueryHandler) Handle(
	ctx context.Context,
	query ReturnStatsQuery,
) (ReturnStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return ReturnStatsResponse{}, err
	}

	sql := `
		SELECT rr.status, rr.quantity, p.name
		FROM return_requests rr
		JOIN order_items oi ON oi.id = rr.order_item_id
		JOIN products p ON p.id = oi.product_id
		WHERE 1 = 1
	`
	var args []any
	if query.wholesalerEmail != "" {
		sql += ` AND p.wholesaler_id IN (SELECT id FROM users WHERE LOWER(email) = LOWER(?))`
		args = append(args, query.wholesalerEmail)
	}
	if !query.from.IsZero() {
		sql += ` AND rr.request_date >= ?`
		args = append(args, query.from)
	}
	if !query.to.IsZero() {
		sql += ` AND rr.request_date <= ?`
		args = append(args, query.to)
	}
	sql += ` ORDER BY rr.request_date, rr.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return ReturnStatsResponse{}, err
	}
	defer rows.Close()

	stats := ReturnStatsResponse{
		CountsByStatus: make(map[string]int),
		MostReturned:   make([]ReturnedProductResponse, 0),
	}
	index := make(map[string]int)

	rejected := returns.StatusRejected.String()
	for rows.Next() {
		var status, productName string
		var quantity int
		if err = rows.Scan(&status, &quantity, &productName); err != nil {
			return ReturnStatsResponse{}, err
		}

		stats.CountsByStatus[status]++

		// A rejected return never left the retailer, so it stays out
		// of the ranking unless explicitly requested.
		if status == rejected && !query.includeRejected {
			continue
		}
		i, ok := index[productName]
		if !ok {
			i = len(stats.MostReturned)
			index[productName] = i
			stats.MostReturned = append(stats.MostReturned, ReturnedProductResponse{Name: productName})
		}
		stats.MostReturned[i].Units += quantity
	}
	if err = rows.Err(); err != nil {
		return ReturnStatsResponse{}, err
	}

	sort.SliceStable(stats.MostReturned, func(i, j int) bool {
		return stats.MostReturned[i].Units > stats.MostReturned[j].Units
	})
	if len(stats.MostReturned) > topLimit {
		stats.MostReturned = stats.MostReturned[:topLimit]
	}

	return stats, nil
}
