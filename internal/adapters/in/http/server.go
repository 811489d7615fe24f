package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/returns"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userEmailHeader carries the caller's identity. Authentication happens
// upstream; by the time a request reaches this service the gateway has
// already verified the user and forwards the email.
const userEmailHeader = "X-User-Email"

const dateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartLineHandler    commands.AddCartLineCommandHandler
	removeCartLineHandler commands.RemoveCartLineCommandHandler
	clearCartHandler      commands.ClearCartCommandHandler
	checkoutHandler       commands.CheckoutCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	advanceOrderHandler   commands.AdvanceOrderStatusCommandHandler
	createReturnHandler   commands.CreateReturnRequestCommandHandler
	updateReturnHandler   commands.UpdateReturnStatusCommandHandler
	markSeenHandler       commands.MarkNotificationSeenCommandHandler
	markAllSeenHandler    commands.MarkAllNotificationsSeenCommandHandler

	// Query handlers
	listCartLinesHandler     queries.ListCartLinesQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	listReturnsHandler       queries.ListReturnsQueryHandler
	listNotificationsHandler queries.ListNotificationsQueryHandler
	totalSalesHandler        queries.TotalSalesStatsQueryHandler
	topPerformersHandler     queries.TopPerformersQueryHandler
	monthlySalesHandler      queries.MonthlySalesOverviewQueryHandler
	wholesalerSalesHandler   queries.WholesalerSalesQueryHandler
	recentOrdersHandler      queries.RecentOrdersQueryHandler
	lowStockHandler          queries.LowStockProductsQueryHandler
	returnStatsHandler       queries.ReturnStatsQueryHandler
}

// ServerDeps bundles everything the server needs; the composition root
// fills it in one place instead of threading twenty constructor arguments.
type ServerDeps struct {
	AddCartLine    commands.AddCartLineCommandHandler
	RemoveCartLine commands.RemoveCartLineCommandHandler
	ClearCart      commands.ClearCartCommandHandler
	Checkout       commands.CheckoutCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler
	AdvanceOrder   commands.AdvanceOrderStatusCommandHandler
	CreateReturn   commands.CreateReturnRequestCommandHandler
	UpdateReturn   commands.UpdateReturnStatusCommandHandler
	MarkSeen       commands.MarkNotificationSeenCommandHandler
	MarkAllSeen    commands.MarkAllNotificationsSeenCommandHandler

	ListCartLines     queries.ListCartLinesQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	ListReturns       queries.ListReturnsQueryHandler
	ListNotifications queries.ListNotificationsQueryHandler
	TotalSales        queries.TotalSalesStatsQueryHandler
	TopPerformers     queries.TopPerformersQueryHandler
	MonthlySales      queries.MonthlySalesOverviewQueryHandler
	WholesalerSales   queries.WholesalerSalesQueryHandler
	RecentOrders      queries.RecentOrdersQueryHandler
	LowStock          queries.LowStockProductsQueryHandler
	ReturnStats       queries.ReturnStatsQueryHandler
}

// NewServer creates a new HTTP server from the assembled dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		addCartLineHandler:       deps.AddCartLine,
		removeCartLineHandler:    deps.RemoveCartLine,
		clearCartHandler:         deps.ClearCart,
		checkoutHandler:          deps.Checkout,
		cancelOrderHandler:       deps.CancelOrder,
		advanceOrderHandler:      deps.AdvanceOrder,
		createReturnHandler:      deps.CreateReturn,
		updateReturnHandler:      deps.UpdateReturn,
		markSeenHandler:          deps.MarkSeen,
		markAllSeenHandler:       deps.MarkAllSeen,
		listCartLinesHandler:     deps.ListCartLines,
		listOrdersHandler:        deps.ListOrders,
		listReturnsHandler:       deps.ListReturns,
		listNotificationsHandler: deps.ListNotifications,
		totalSalesHandler:        deps.TotalSales,
		topPerformersHandler:     deps.TopPerformers,
		monthlySalesHandler:      deps.MonthlySales,
		wholesalerSalesHandler:   deps.WholesalerSales,
		recentOrdersHandler:      deps.RecentOrders,
		lowStockHandler:          deps.LowStock,
		returnStatsHandler:       deps.ReturnStats,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartLine)
	api.DELETE("/cart/items/:id", s.RemoveCartLine)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/orders/checkout", s.Checkout)
	api.GET("/orders", s.GetAllOrders)
	api.GET("/orders/my", s.GetMyOrders)
	api.GET("/orders/received", s.GetReceivedOrders)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/status", s.AdvanceOrderStatus)

	api.POST("/returns", s.CreateReturn)
	api.GET("/returns", s.GetAllReturns)
	api.GET("/returns/my", s.GetMyReturns)
	api.GET("/returns/received", s.GetReceivedReturns)
	api.POST("/returns/:id/status", s.UpdateReturnStatus)

	api.GET("/notifications", s.GetNotifications)
	api.POST("/notifications/:id/seen", s.MarkNotificationSeen)
	api.POST("/notifications/seen", s.MarkAllNotificationsSeen)

	api.GET("/stats/sales", s.GetTotalSales)
	api.GET("/stats/top-wholesalers", s.GetTopWholesalers)
	api.GET("/stats/top-retailers", s.GetTopRetailers)
	api.GET("/stats/top-categories", s.GetTopCategories)
	api.GET("/stats/monthly", s.GetMonthlySales)
	api.GET("/stats/my-sales", s.GetMySales)
	api.GET("/stats/recent-orders", s.GetRecentOrders)
	api.GET("/stats/my-recent-orders", s.GetMyRecentOrders)
	api.GET("/stats/low-stock", s.GetLowStockProducts)
	api.GET("/stats/returns", s.GetReturnStats)
	api.GET("/stats/my-returns", s.GetMyReturnStats)
}

// userEmail extracts the caller identity from the request headers.
func userEmail(ctx echo.Context) (string, error) {
	email := ctx.Request().Header.Get(userEmailHeader)
	if email == "" {
		return "", errors.New("missing " + userEmailHeader + " header")
	}
	return email, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// handlerError maps application errors onto HTTP status codes.
func handlerError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientStock), errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// dateRange parses the optional from/to query parameters. The "to" date is
// widened to the end of its day so both bounds stay inclusive.
func dateRange(ctx echo.Context) (time.Time, time.Time, error) {
	var from, to time.Time

	if raw := ctx.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	return from, to, nil
}

// AddCartLine handles POST /api/v1/cart/items - adds a product to the cart.
func (s *Server) AddCartLine(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AddCartLineRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddCartLineCommand(email, productID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	line, err := s.addCartLineHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCartLine(line))
}

// RemoveCartLine handles DELETE /api/v1/cart/items/:id.
func (s *Server) RemoveCartLine(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	lineID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRemoveCartLineCommand(email, lineID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.removeCartLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(email)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/cart - one page of the caller's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("page_size"))

	query, err := queries.NewListCartLinesQuery(email, page, pageSize)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.listCartLinesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartPage(result))
}

// Checkout handles POST /api/v1/orders/checkout - places an order from the
// caller's cart.
func (s *Server) Checkout(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCheckoutCommand(email)
	if err != nil {
		return badRequest(ctx, err)
	}

	placed, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderFromAggregate(placed))
}

// GetAllOrders handles GET /api/v1/orders - every order, for back office use.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.NewListAllOrdersQuery())
}

// GetMyOrders handles GET /api/v1/orders/my - the caller's own orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewListRetailerOrdersQuery(email)
	if err != nil {
		return badRequest(ctx, err)
	}

	return s.listOrders(ctx, query)
}

// GetReceivedOrders handles GET /api/v1/orders/received - orders containing
// the calling wholesaler's products.
func (s *Server) GetReceivedOrders(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewListWholesalerOrdersQuery(email)
	if err != nil {
		return badRequest(ctx, err)
	}

	return s.listOrders(ctx, query)
}

func (s *Server) listOrders(ctx echo.Context, query queries.ListOrdersQuery) error {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("page_size"))
	query = query.WithPage(page, pageSize)

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPage(result))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. Cancelling an order
// that already moved past PLACED is a no-op, reported in the response.
func (s *Server) CancelOrder(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, email)
	if err != nil {
		return badRequest(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CancelOrderResult{Cancelled: cancelled})
}

// AdvanceOrderStatus handles POST /api/v1/orders/:id/status - the selling
// wholesaler moves the order along its lifecycle.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AdvanceOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, email, target)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateReturn handles POST /api/v1/returns.
func (s *Server) CreateReturn(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateReturnRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	orderItemID, err := kernel.UUIDFromString(req.OrderItemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateReturnRequestCommand(orderItemID, email, req.Quantity, req.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	request, err := s.createReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toReturnFromAggregate(request))
}

// UpdateReturnStatus handles POST /api/v1/returns/:id/status.
func (s *Server) UpdateReturnStatus(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	returnID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateReturnStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	status, err := returns.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateReturnStatusCommand(returnID, email, status)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.updateReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAllReturns handles GET /api/v1/returns, optionally filtered by ?status=.
func (s *Server) GetAllReturns(ctx echo.Context) error {
	return s.listReturns(ctx, queries.NewListAllReturnsQuery(), nil)
}

// GetMyReturns handles GET /api/v1/returns/my.
func (s *Server) GetMyReturns(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewListRetailerReturnsQuery(email)
	return s.listReturns(ctx, query, err)
}

// GetReceivedReturns handles GET /api/v1/returns/received - return requests
// against the calling wholesaler's products.
func (s *Server) GetReceivedReturns(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewListWholesalerReturnsQuery(email)
	return s.listReturns(ctx, query, err)
}

func (s *Server) listReturns(ctx echo.Context, query queries.ListReturnsQuery, buildErr error) error {
	if buildErr != nil {
		return badRequest(ctx, buildErr)
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := returns.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		if query, err = query.WithStatus(status); err != nil {
			return badRequest(ctx, err)
		}
	}

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("page_size"))
	query = query.WithPage(page, pageSize)

	result, err := s.listReturnsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReturnPage(result))
}

// GetNotifications handles GET /api/v1/notifications, newest first.
// Pass ?unseen=true to fetch only unread notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	unseenOnly := ctx.QueryParam("unseen") == "true"

	query, err := queries.NewListNotificationsQuery(email, unseenOnly)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.listNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toNotifications(result))
}

// MarkNotificationSeen handles POST /api/v1/notifications/:id/seen.
func (s *Server) MarkNotificationSeen(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	notificationID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationSeenCommand(notificationID, email)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.markSeenHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MarkSeenResult{Updated: updated})
}

// MarkAllNotificationsSeen handles POST /api/v1/notifications/seen.
func (s *Server) MarkAllNotificationsSeen(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMarkAllNotificationsSeenCommand(email)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.markAllSeenHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MarkAllSeenResult{Updated: updated})
}

// GetTotalSales handles GET /api/v1/stats/sales?from=&to=.
func (s *Server) GetTotalSales(ctx echo.Context) error {
	from, to, err := dateRange(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewTotalSalesStatsQuery(from, to)
	if err != nil {
		return badRequest(ctx, err)
	}

	totals, err := s.totalSalesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSalesTotals(totals))
}

// GetTopWholesalers handles GET /api/v1/stats/top-wholesalers?from=&to=.
func (s *Server) GetTopWholesalers(ctx echo.Context) error {
	return s.topPerformers(ctx, queries.NewTopWholesalersQuery)
}

// GetTopRetailers handles GET /api/v1/stats/top-retailers?from=&to=.
func (s *Server) GetTopRetailers(ctx echo.Context) error {
	return s.topPerformers(ctx, queries.NewTopRetailersQuery)
}

func (s *Server) topPerformers(
	ctx echo.Context,
	build func(from, to time.Time) (queries.TopPerformersQuery, error),
) error {
	from, to, err := dateRange(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := build(from, to)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.topPerformersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTopPerformers(result.Performers))
}

// GetTopCategories handles GET /api/v1/stats/top-categories?from=&to=.
func (s *Server) GetTopCategories(ctx echo.Context) error {
	from, to, err := dateRange(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewTopCategoriesQuery(from, to)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.topPerformersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTopCategories(result.Categories))
}

// GetMonthlySales handles GET /api/v1/stats/monthly?year=.
func (s *Server) GetMonthlySales(ctx echo.Context) error {
	year, err := strconv.Atoi(ctx.QueryParam("year"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewMonthlySalesOverviewQuery(year)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.monthlySalesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMonthlySales(result))
}

// GetMySales handles GET /api/v1/stats/my-sales - the calling wholesaler's
// sales totals and best-selling products.
func (s *Server) GetMySales(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewWholesalerSalesQuery(email)
	if err != nil {
		return badRequest(ctx, err)
	}
	if category := ctx.QueryParam("category"); category != "" {
		query = query.WithCategory(category)
	}
	from, to, err := dateRange(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	if !from.IsZero() || !to.IsZero() {
		if query, err = query.WithRange(from, to); err != nil {
			return badRequest(ctx, err)
		}
	}

	result, err := s.wholesalerSalesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WholesalerSales{
		Totals:      toSalesTotals(result.Totals),
		TopProducts: toTopProducts(result.TopProducts),
	})
}

// GetRecentOrders handles GET /api/v1/stats/recent-orders.
func (s *Server) GetRecentOrders(ctx echo.Context) error {
	return s.recentOrders(ctx, queries.NewRecentOrdersQuery())
}

// GetMyRecentOrders handles GET /api/v1/stats/my-recent-orders - the latest
// orders containing the calling wholesaler's products.
func (s *Server) GetMyRecentOrders(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewRecentWholesalerOrdersQuery(email)
	if err != nil {
		return badRequest(ctx, err)
	}

	return s.recentOrders(ctx, query)
}

func (s *Server) recentOrders(ctx echo.Context, query queries.RecentOrdersQuery) error {
	result, err := s.recentOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRecentOrders(result))
}

// GetLowStockProducts handles GET /api/v1/stats/low-stock - the calling
// wholesaler's products below their restocking threshold.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewLowStockProductsQuery(email)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.lowStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLowStockProducts(result))
}

// GetReturnStats handles GET /api/v1/stats/returns.
func (s *Server) GetReturnStats(ctx echo.Context) error {
	from, to, err := dateRange(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewReturnStatsQuery(from, to)
	if err != nil {
		return badRequest(ctx, err)
	}
	if ctx.QueryParam("include_rejected") == "true" {
		query = query.IncludingRejected()
	}

	result, err := s.returnStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReturnStats(result))
}

// GetMyReturnStats handles GET /api/v1/stats/my-returns - return
// statistics scoped to the calling wholesaler's products.
func (s *Server) GetMyReturnStats(ctx echo.Context) error {
	email, err := userEmail(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	from, to, err := dateRange(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewWholesalerReturnStatsQuery(email, from, to)
	if err != nil {
		return badRequest(ctx, err)
	}
	if ctx.QueryParam("include_rejected") == "true" {
		query = query.IncludingRejected()
	}

	result, err := s.returnStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReturnStats(result))
}
