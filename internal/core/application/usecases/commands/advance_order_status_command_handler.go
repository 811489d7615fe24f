package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// AdvanceOrderStatusCommandHandler lets a wholesaler move an order along
// the fulfilment path. The caller must own every product in the order;
// the target transition is validated by the order aggregate itself. The
// retailer is told about the change after the commit.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.Dispatcher
}

func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory, dispatcher ports.Dispatcher,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher}
}

func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	wholesaler, err := uow.UserRepository().GetByEmail(ctx, cmd.WholesalerEmail())
	if err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	for _, item := range o.Items() {
		prod, prodErr := uow.ProductRepository().Get(ctx, item.ProductID())
		if prodErr != nil {
			return prodErr
		}
		if !prod.IsOwnedBy(wholesaler.ID()) {
			return errs.NewUnauthorizedError(cmd.WholesalerEmail(), "order "+cmd.OrderID().String())
		}
	}

	if err = o.AdvanceTo(cmd.Target()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	retailer, err := uow.UserRepository().Get(ctx, o.RetailerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Notify(ctx, retailer.ID(),
		"Order status updated",
		fmt.Sprintf("Your order #%s is now %s", o.ID().String(), o.Status().String()))

	h.dispatcher.SendEmail(ctx, retailer.Email(),
		fmt.Sprintf("Order #%s - Status Update", o.ID().String()),
		fmt.Sprintf(
			"<p>Dear %s,</p><p>The status of your order <strong>#%s</strong> changed to <strong>%s</strong>.</p>",
			retailer.Name(), o.ID().String(), o.Status().String()))

	return nil
}
