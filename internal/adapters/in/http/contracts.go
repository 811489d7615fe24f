package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/returns"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type AddCartLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CartLine struct {
	ID          string   `json:"id"`
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
	UnitPrice   float64  `json:"unit_price,omitempty"`
	Quantity    int      `json:"quantity"`
	Subtotal    float64  `json:"subtotal,omitempty"`
}

type CartPage struct {
	Lines      []CartLine `json:"lines"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalLines int        `json:"total_lines"`
}

type OrderItem struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name,omitempty"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
	Subtotal        float64 `json:"subtotal"`
}

type Order struct {
	ID           string      `json:"id"`
	RetailerID   string      `json:"retailer_id"`
	RetailerName string      `json:"retailer_name,omitempty"`
	OrderDate    time.Time   `json:"order_date"`
	TotalAmount  float64     `json:"total_amount"`
	Status       string      `json:"status"`
	Items        []OrderItem `json:"items"`
}

type OrderPage struct {
	Orders      []Order `json:"orders"`
	Page        int     `json:"page"`
	PageSize    int     `json:"page_size"`
	TotalOrders int     `json:"total_orders"`
}

type CancelOrderResult struct {
	Cancelled bool `json:"cancelled"`
}

type AdvanceOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateReturnRequest struct {
	OrderItemID string `json:"order_item_id"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason"`
}

type UpdateReturnStatusRequest struct {
	Status string `json:"status"`
}

type Return struct {
	ID          string    `json:"id"`
	OrderItemID string    `json:"order_item_id"`
	RetailerID  string    `json:"retailer_id"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	RequestDate time.Time `json:"request_date"`
	UpdatedDate time.Time `json:"updated_date"`
}

type ReturnPage struct {
	Returns      []Return `json:"returns"`
	Page         int      `json:"page"`
	PageSize     int      `json:"page_size"`
	TotalReturns int      `json:"total_returns"`
}

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Seen      bool      `json:"seen"`
	Timestamp time.Time `json:"timestamp"`
}

type MarkSeenResult struct {
	Updated bool `json:"updated"`
}

type MarkAllSeenResult struct {
	Updated int `json:"updated"`
}

type SalesTotals struct {
	Revenue           float64 `json:"revenue"`
	OrderCount        int     `json:"order_count"`
	UnitsSold         int     `json:"units_sold"`
	AverageOrderValue float64 `json:"average_order_value"`
}

type TopPerformer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Units   int     `json:"units"`
}

type TopCategory struct {
	Category string  `json:"category"`
	Units    int     `json:"units"`
	Revenue  float64 `json:"revenue"`
}

type TopProduct struct {
	Name    string  `json:"name"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

type MonthlySales struct {
	Month      int     `json:"month"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
	UnitsSold  int     `json:"units_sold"`
}

type WholesalerSales struct {
	Totals      SalesTotals  `json:"totals"`
	TopProducts []TopProduct `json:"top_products"`
}

type RecentOrder struct {
	ID           string    `json:"id"`
	RetailerName string    `json:"retailer_name"`
	OrderDate    time.Time `json:"order_date"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
}

type LowStockProduct struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"min_threshold"`
}

type ReturnedProduct struct {
	Name  string `json:"name"`
	Units int    `json:"units"`
}

type ReturnStats struct {
	CountsByStatus map[string]int    `json:"counts_by_status"`
	MostReturned   []ReturnedProduct `json:"most_returned"`
}

func toCartLine(line *cart.Line) CartLine {
	return CartLine{
		ID:        line.ID().String(),
		ProductID: line.ProductID().String(),
		Quantity:  line.Quantity(),
	}
}

func toCartPage(page queries.CartPageResponse) CartPage {
	lines := make([]CartLine, len(page.Lines))
	for i, l := range page.Lines {
		lines[i] = CartLine{
			ID:          l.ID.String(),
			ProductID:   l.ProductID.String(),
			ProductName: l.ProductName,
			Brand:       l.Brand,
			ImageURLs:   l.ImageURLs,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal,
		}
	}
	return CartPage{
		Lines:      lines,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalLines: page.TotalLines,
	}
}

func toOrderFromAggregate(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			ID:              item.ID().String(),
			ProductID:       item.ProductID().String(),
			Quantity:        item.Quantity(),
			PriceAtPurchase: item.PriceAtPurchase(),
			Subtotal:        item.Subtotal(),
		})
	}
	return Order{
		ID:          o.ID().String(),
		RetailerID:  o.RetailerID().String(),
		OrderDate:   o.OrderDate(),
		TotalAmount: o.TotalAmount(),
		Status:      o.Status().String(),
		Items:       items,
	}
}

func toOrders(responses []queries.OrderResponse) []Order {
	result := make([]Order, len(responses))
	for i, resp := range responses {
		items := make([]OrderItem, len(resp.Items))
		for j, item := range resp.Items {
			items[j] = OrderItem{
				ID:              item.ID.String(),
				ProductID:       item.ProductID.String(),
				ProductName:     item.ProductName,
				Quantity:        item.Quantity,
				PriceAtPurchase: item.PriceAtPurchase,
				Subtotal:        item.Subtotal,
			}
		}
		result[i] = Order{
			ID:           resp.ID.String(),
			RetailerID:   resp.RetailerID.String(),
			RetailerName: resp.RetailerName,
			OrderDate:    resp.OrderDate,
			TotalAmount:  resp.TotalAmount,
			Status:       resp.Status,
			Items:        items,
		}
	}
	return result
}

func toOrderPage(page queries.OrderPageResponse) OrderPage {
	return OrderPage{
		Orders:      toOrders(page.Orders),
		Page:        page.Page,
		PageSize:    page.PageSize,
		TotalOrders: page.TotalOrders,
	}
}

func toReturnFromAggregate(r *returns.Request) Return {
	return Return{
		ID:          r.ID().String(),
		OrderItemID: r.OrderItemID().String(),
		RetailerID:  r.RetailerID().String(),
		Quantity:    r.Quantity(),
		Reason:      r.Reason(),
		Status:      r.Status().String(),
		RequestDate: r.RequestDate(),
		UpdatedDate: r.UpdatedDate(),
	}
}

func toReturnPage(page queries.ReturnPageResponse) ReturnPage {
	result := make([]Return, len(page.Returns))
	for i, resp := range page.Returns {
		result[i] = Return{
			ID:          resp.ID.String(),
			OrderItemID: resp.OrderItemID.String(),
			RetailerID:  resp.RetailerID.String(),
			ProductName: resp.ProductName,
			Quantity:    resp.Quantity,
			Reason:      resp.Reason,
			Status:      resp.Status,
			RequestDate: resp.RequestDate,
			UpdatedDate: resp.UpdatedDate,
		}
	}
	return ReturnPage{
		Returns:      result,
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalReturns: page.TotalReturns,
	}
}

func toNotifications(responses []queries.NotificationResponse) []Notification {
	result := make([]Notification, len(responses))
	for i, resp := range responses {
		result[i] = Notification{
			ID:        resp.ID.String(),
			Message:   resp.Message,
			Seen:      resp.Seen,
			Timestamp: resp.Timestamp,
		}
	}
	return result
}

func toSalesTotals(totals queries.SalesTotals) SalesTotals {
	return SalesTotals{
		Revenue:           totals.Revenue,
		OrderCount:        totals.OrderCount,
		UnitsSold:         totals.UnitsSold,
		AverageOrderValue: totals.AverageOrderValue,
	}
}

func toTopPerformers(responses []queries.TopPerformerResponse) []TopPerformer {
	result := make([]TopPerformer, len(responses))
	for i, resp := range responses {
		result[i] = TopPerformer{
			ID:      resp.ID.String(),
			Name:    resp.Name,
			Revenue: resp.Revenue,
			Units:   resp.Units,
		}
	}
	return result
}

func toTopCategories(responses []queries.TopCategoryResponse) []TopCategory {
	result := make([]TopCategory, len(responses))
	for i, resp := range responses {
		result[i] = TopCategory{
			Category: resp.Category,
			Units:    resp.Units,
			Revenue:  resp.Revenue,
		}
	}
	return result
}

func toTopProducts(responses []queries.TopProductResponse) []TopProduct {
	result := make([]TopProduct, len(responses))
	for i, resp := range responses {
		result[i] = TopProduct{
			Name:    resp.Name,
			Units:   resp.Units,
			Revenue: resp.Revenue,
		}
	}
	return result
}

func toMonthlySales(responses []queries.MonthlySalesResponse) []MonthlySales {
	result := make([]MonthlySales, len(responses))
	for i, resp := range responses {
		result[i] = MonthlySales{
			Month:      int(resp.Month),
			Revenue:    resp.Revenue,
			OrderCount: resp.OrderCount,
			UnitsSold:  resp.UnitsSold,
		}
	}
	return result
}

func toRecentOrders(responses []queries.RecentOrderResponse) []RecentOrder {
	result := make([]RecentOrder, len(responses))
	for i, resp := range responses {
		result[i] = RecentOrder{
			ID:           resp.ID.String(),
			RetailerName: resp.RetailerName,
			OrderDate:    resp.OrderDate,
			TotalAmount:  resp.TotalAmount,
			Status:       resp.Status,
		}
	}
	return result
}

func toLowStockProducts(responses []queries.LowStockProductResponse) []LowStockProduct {
	result := make([]LowStockProduct, len(responses))
	for i, resp := range responses {
		result[i] = LowStockProduct{
			ID:           resp.ID.String(),
			Name:         resp.Name,
			Quantity:     resp.Quantity,
			MinThreshold: resp.MinThreshold,
		}
	}
	return result
}

func toReturnStats(stats queries.ReturnStatsResponse) ReturnStats {
	ranked := make([]ReturnedProduct, len(stats.MostReturned))
	for i, resp := range stats.MostReturned {
		ranked[i] = ReturnedProduct{
			Name:  resp.Name,
			Units: resp.Units,
		}
	}
	return ReturnStats{
		CountsByStatus: stats.CountsByStatus,
		MostReturned:   ranked,
	}
}
