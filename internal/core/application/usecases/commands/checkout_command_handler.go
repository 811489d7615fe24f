package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// lowStockAlert carries what the dispatcher needs for one wholesaler
// notification, captured inside the transaction so no repository is
// touched after commit.
type lowStockAlert struct {
	wholesaler *user.User
	product    *product.Product
	remaining  int
}

// CheckoutCommandHandler converts a retailer's cart into a placed order.
//
// Inside one transaction it reserves stock through the repository's atomic
// bounded decrement (so no interleaving of concurrent checkouts can
// oversell a product), freezes each item's price, recomputes the total
// server-side, persists the order and clears the cart. Only after the
// commit does it hand the low-stock alerts and the invoice email to the
// fire-and-forget dispatcher; their failures are logged and never affect
// the returned order.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	dispatcher ports.Dispatcher
	invoices   ports.InvoiceRenderer
	logger     *slog.Logger
}

// NewCheckoutCommandHandler creates the checkout handler.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	dispatcher ports.Dispatcher,
	invoices ports.InvoiceRenderer,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		invoices:   invoices,
		logger:     logger.With("component", "checkout"),
	}
}

// Handle executes the checkout and returns the persisted order.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	retailer, err := uow.UserRepository().GetByEmail(ctx, cmd.RetailerEmail())
	if err != nil {
		return nil, err
	}

	lines, err := uow.CartRepository().GetByRetailer(ctx, retailer.ID())
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewObjectNotFoundError("cart", "cart is empty")
	}

	// Decrement in product-id order so concurrent checkouts touching the
	// same products always lock their rows in the same sequence.
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ProductID().String() < lines[j].ProductID().String()
	})

	products := uow.ProductRepository()
	items := make([]order.Item, 0, len(lines))
	byID := make(map[kernel.UUID]*product.Product, len(lines))
	var alerts []lowStockAlert

	for _, line := range lines {
		prod, prodErr := products.Get(ctx, line.ProductID())
		if prodErr != nil {
			return nil, prodErr
		}

		// The bounded decrement either subtracts the full requested
		// quantity or fails; a failure aborts the whole checkout and the
		// rollback undoes every earlier deduction.
		remaining, decErr := products.DecrementStock(ctx, prod.ID(), line.Quantity())
		if decErr != nil {
			return nil, decErr
		}

		if remaining < prod.MinThreshold() {
			wholesaler, userErr := uow.UserRepository().Get(ctx, prod.WholesalerID())
			if userErr != nil {
				return nil, userErr
			}
			alerts = append(alerts, lowStockAlert{wholesaler: wholesaler, product: prod, remaining: remaining})
		}

		item, itemErr := order.NewItem(kernel.NewUUID(), prod.ID(), line.Quantity(), prod.Price())
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
		byID[prod.ID()] = prod
	}

	placed, err := order.NewOrder(kernel.NewUUID(), retailer.ID(), items, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.CartRepository().DeleteByRetailer(ctx, retailer.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatchAlerts(ctx, alerts)
	h.dispatchInvoice(ctx, placed, retailer, byID)

	return placed, nil
}

func (h *CheckoutCommandHandler) dispatchAlerts(ctx context.Context, alerts []lowStockAlert) {
	for _, alert := range alerts {
		h.dispatcher.Notify(ctx, alert.wholesaler.ID(),
			"Low stock alert",
			fmt.Sprintf("Stock low for product: %s. Remaining: %d", alert.product.Name(), alert.remaining))

		h.dispatcher.SendEmail(ctx, alert.wholesaler.Email(),
			"Low Stock Alert: "+alert.product.Name(),
			fmt.Sprintf(
				"<p>Dear %s,</p><p>Your product <strong>%s</strong> is running low on stock. "+
					"Only %d units are left after a recent order. Please consider restocking soon.</p>",
				alert.wholesaler.Name(), alert.product.Name(), alert.remaining))
	}
}

func (h *CheckoutCommandHandler) dispatchInvoice(
	ctx context.Context,
	placed *order.Order,
	retailer *user.User,
	products map[kernel.UUID]*product.Product,
) {
	pdf, err := h.invoices.Render(placed, retailer, products)
	if err != nil {
		h.logger.ErrorContext(ctx, "invoice rendering failed", "order_id", placed.ID().String(), "error", err)
		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thank you for your order. Please find your invoice attached.</p>"+
			"<p><strong>Total Amount:</strong> %.2f</p><p>We will notify you when your order is shipped.</p>",
		retailer.Name(), placed.TotalAmount())

	h.dispatcher.SendEmailWithAttachment(ctx, retailer.Email(),
		fmt.Sprintf("Order Confirmation - #%s", placed.ID().String()),
		body, pdf, fmt.Sprintf("Invoice_%s.pdf", placed.ID().String()))
}
