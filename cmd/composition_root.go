package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/invoice"
	"marketplace/internal/adapters/out/mailer"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/jobs"
	"marketplace/internal/notify"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	dispatcher *notify.AsyncDispatcher
	invoices   *invoice.PDFRenderer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	smtp := mailer.NewSMTPMailer(
		config.SMTPHost, config.SMTPPort,
		config.SMTPUser, config.SMTPPassword, config.SMTPFrom,
	)

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: uowFactory,
		dispatcher: notify.NewAsyncDispatcher(uowFactory, smtp, logger),
		invoices:   invoice.NewPDFRenderer(config.SellerName),
		logger:     logger,
	}
}

// Dispatcher exposes the shared side-effect dispatcher so main can drain
// it on shutdown.
func (c *CompositionRoot) Dispatcher() *notify.AsyncDispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.dispatcher, c.logger)
}

// CreateServer assembles the HTTP server with every handler wired.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerDeps{
		AddCartLine:    c.CreateAddCartLineCommandHandler(),
		RemoveCartLine: c.CreateRemoveCartLineCommandHandler(),
		ClearCart:      c.CreateClearCartCommandHandler(),
		Checkout:       c.CreateCheckoutCommandHandler(),
		CancelOrder:    c.CreateCancelOrderCommandHandler(),
		AdvanceOrder:   c.CreateAdvanceOrderStatusCommandHandler(),
		CreateReturn:   c.CreateCreateReturnRequestCommandHandler(),
		UpdateReturn:   c.CreateUpdateReturnStatusCommandHandler(),
		MarkSeen:       c.CreateMarkNotificationSeenCommandHandler(),
		MarkAllSeen:    c.CreateMarkAllNotificationsSeenCommandHandler(),

		ListCartLines:     queries.NewListCartLinesQueryHandler(c.gormDB),
		ListOrders:        queries.NewListOrdersQueryHandler(c.gormDB),
		ListReturns:       queries.NewListReturnsQueryHandler(c.gormDB),
		ListNotifications: queries.NewListNotificationsQueryHandler(c.gormDB),
		TotalSales:        queries.NewTotalSalesStatsQueryHandler(c.gormDB),
		TopPerformers:     queries.NewTopPerformersQueryHandler(c.gormDB),
		MonthlySales:      queries.NewMonthlySalesOverviewQueryHandler(c.gormDB),
		WholesalerSales:   queries.NewWholesalerSalesQueryHandler(c.gormDB),
		RecentOrders:      queries.NewRecentOrdersQueryHandler(c.gormDB),
		LowStock:          queries.NewLowStockProductsQueryHandler(c.gormDB),
		ReturnStats:       queries.NewReturnStatsQueryHandler(c.gormDB),
	})
}

func (c *CompositionRoot) CreateAddCartLineCommandHandler() commands.AddCartLineCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartLineCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartLineCommandHandler() commands.RemoveCartLineCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartLineCommandHandler(f)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCartCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.dispatcher, c.invoices, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateCreateReturnRequestCommandHandler() commands.CreateReturnRequestCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReturnRequestCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateReturnStatusCommandHandler() commands.UpdateReturnStatusCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateReturnStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateMarkNotificationSeenCommandHandler() commands.MarkNotificationSeenCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationSeenCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkAllNotificationsSeenCommandHandler() commands.MarkAllNotificationsSeenCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkAllNotificationsSeenCommandHandler(f)
}

// The Func*UoWFactory adapters narrow the full unit of work to the exact
// repository set each command declares.

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
