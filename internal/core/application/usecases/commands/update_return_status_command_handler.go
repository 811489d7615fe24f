package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// UpdateReturnStatusCommandHandler approves, rejects or processes a
// return request. The retailer who opened it is told after the commit.
type UpdateReturnStatusCommandHandler struct {
	uowFactory ReturnUoWFactory
	dispatcher ports.Dispatcher
}

func NewUpdateReturnStatusCommandHandler(
	uowFactory ReturnUoWFactory, dispatcher ports.Dispatcher,
) UpdateReturnStatusCommandHandler {
	return UpdateReturnStatusCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher}
}

func (h *UpdateReturnStatusCommandHandler) Handle(ctx context.Context, cmd UpdateReturnStatusCommand) error {
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

	request, err := uow.ReturnRepository().Get(ctx, cmd.ReturnID())
	if err != nil {
		return err
	}

	o, err := uow.OrderRepository().GetByItemID(ctx, request.OrderItemID())
	if err != nil {
		return err
	}

	item, err := o.ItemByID(request.OrderItemID())
	if err != nil {
		return err
	}

	prod, err := uow.ProductRepository().Get(ctx, item.ProductID())
	if err != nil {
		return err
	}

	if cmd.WholesalerEmail() != "" {
		wholesaler, userErr := uow.UserRepository().GetByEmail(ctx, cmd.WholesalerEmail())
		if userErr != nil {
			return userErr
		}
		if !prod.IsOwnedBy(wholesaler.ID()) {
			return errs.NewUnauthorizedError(cmd.WholesalerEmail(), "return "+cmd.ReturnID().String())
		}
	}

	if err = request.SetStatus(cmd.Status(), time.Now()); err != nil {
		return err
	}

	if err = uow.ReturnRepository().Update(ctx, request); err != nil {
		return err
	}

	retailer, err := uow.UserRepository().Get(ctx, request.RetailerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Notify(ctx, retailer.ID(),
		"Return status updated",
		fmt.Sprintf("Your return for %s is now %s", prod.Name(), request.Status().String()))

	h.dispatcher.SendEmail(ctx, retailer.Email(),
		"Return Update: "+prod.Name(),
		fmt.Sprintf(
			"<p>Dear %s,</p><p>Your return request for <strong>%s</strong> is now "+
				"<strong>%s</strong>.</p>",
			retailer.Name(), prod.Name(), request.Status().String()))

	return nil
}
