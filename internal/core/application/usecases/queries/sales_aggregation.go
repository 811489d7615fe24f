package queries

import (
	"sort"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// topLimit caps the marketplace-wide leaderboards. Dashboards show the
// top five wholesalers, retailers and categories.
const topLimit = 5

// SalesTotals summarizes a set of delivered sales rows.
type SalesTotals struct {
	Revenue           float64
	OrderCount        int
	UnitsSold         int
	AverageOrderValue float64
}

// TopPerformerResponse is one ranked wholesaler or retailer.
type TopPerformerResponse struct {
	ID      kernel.UUID
	Name    string
	Revenue float64
	Units   int
}

// TopCategoryResponse is one ranked product category.
type TopCategoryResponse struct {
	Category string
	Units    int
	Revenue  float64
}

// TopProductResponse is one ranked product. Products are grouped by name,
// mirroring how the sales reports present them.
type TopProductResponse struct {
	Name    string
	Units   int
	Revenue float64
}

// MonthlySalesResponse is one month of a yearly overview.
type MonthlySalesResponse struct {
	Month      time.Month
	Revenue    float64
	OrderCount int
	UnitsSold  int
}

func sumSales(rows []salesRow) SalesTotals {
	totals := SalesTotals{}
	orders := make(map[kernel.UUID]struct{})

	for _, row := range rows {
		totals.Revenue += row.revenue()
		totals.UnitsSold += row.Quantity
		orders[row.OrderID] = struct{}{}
	}
	totals.OrderCount = len(orders)
	if totals.OrderCount > 0 {
		totals.AverageOrderValue = totals.Revenue / float64(totals.OrderCount)
	}
	return totals
}

// rankUsers ranks wholesalers or retailers by revenue, descending. Ties
// keep the order in which a party first appears in the rows, which are
// loaded oldest sale first.
func rankUsers(rows []salesRow, key func(salesRow) (kernel.UUID, string)) []TopPerformerResponse {
	index := make(map[kernel.UUID]int)
	ranked := make([]TopPerformerResponse, 0)

	for _, row := range rows {
		id, name := key(row)
		pos, seen := index[id]
		if !seen {
			ranked = append(ranked, TopPerformerResponse{ID: id, Name: name})
			pos = len(ranked) - 1
			index[id] = pos
		}
		ranked[pos].Revenue += row.revenue()
		ranked[pos].Units += row.Quantity
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})
	if len(ranked) > topLimit {
		ranked = ranked[:topLimit]
	}
	return ranked
}

// rankCategories ranks product categories by units sold, descending, with
// the same first-seen tie order as rankUsers.
func rankCategories(rows []salesRow) []TopCategoryResponse {
	index := make(map[string]int)
	ranked := make([]TopCategoryResponse, 0)

	for _, row := range rows {
		pos, seen := index[row.Category]
		if !seen {
			ranked = append(ranked, TopCategoryResponse{Category: row.Category})
			pos = len(ranked) - 1
			index[row.Category] = pos
		}
		ranked[pos].Units += row.Quantity
		ranked[pos].Revenue += row.revenue()
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Units > ranked[j].Units
	})
	if len(ranked) > topLimit {
		ranked = ranked[:topLimit]
	}
	return ranked
}

// rankProducts ranks products by units sold, descending, grouped by name.
// Unlike the marketplace leaderboards the list is not truncated: a
// wholesaler's report covers every product they sold.
func rankProducts(rows []salesRow) []TopProductResponse {
	index := make(map[string]int)
	ranked := make([]TopProductResponse, 0)

	for _, row := range rows {
		pos, seen := index[row.ProductName]
		if !seen {
			ranked = append(ranked, TopProductResponse{Name: row.ProductName})
			pos = len(ranked) - 1
			index[row.ProductName] = pos
		}
		ranked[pos].Units += row.Quantity
		ranked[pos].Revenue += row.revenue()
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Units > ranked[j].Units
	})
	return ranked
}

// bucketByMonth folds one year of rows into twelve chronological buckets.
// Months without sales stay at zero.
func bucketByMonth(rows []salesRow, year int) []MonthlySalesResponse {
	months := make([]MonthlySalesResponse, 12)
	orders := make([]map[kernel.UUID]struct{}, 12)
	for i := range months {
		months[i].Month = time.Month(i + 1)
		orders[i] = make(map[kernel.UUID]struct{})
	}

	for _, row := range rows {
		if row.OrderDate.Year() != year {
			continue
		}
		i := int(row.OrderDate.Month()) - 1
		months[i].Revenue += row.revenue()
		months[i].UnitsSold += row.Quantity
		orders[i][row.OrderID] = struct{}{}
	}

	for i := range months {
		months[i].OrderCount = len(orders[i])
	}
	return months
}
