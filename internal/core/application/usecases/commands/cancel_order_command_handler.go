package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order on behalf of its retailer.
// Handle reports whether the order actually changed state: cancelling an
// order that already left the placed status is a no-op, not an error.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	retailer, err := uow.UserRepository().GetByEmail(ctx, cmd.RetailerEmail())
	if err != nil {
		return false, err
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if !o.RetailerID().IsEqual(retailer.ID()) {
		return false, errs.NewUnauthorizedError(cmd.RetailerEmail(), "order "+cmd.OrderID().String())
	}

	changed := o.Cancel()
	if changed {
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return false, err
		}
	}

	return changed, uow.Commit(ctx)
}
