package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/returns"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateReturnRequestCommandHandler opens a return request for an order
// item. The caller must be the retailer who placed the order, and the
// requested quantity can never exceed what the item purchased. The
// wholesaler owning the product is told after the commit.
type CreateReturnRequestCommandHandler struct {
	uowFactory ReturnUoWFactory
	dispatcher ports.Dispatcher
}

func NewCreateReturnRequestCommandHandler(
	uowFactory ReturnUoWFactory, dispatcher ports.Dispatcher,
) CreateReturnRequestCommandHandler {
	return CreateReturnRequestCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher}
}

func (h *CreateReturnRequestCommandHandler) Handle(
	ctx context.Context, cmd CreateReturnRequestCommand,
) (*returns.Request, error) {
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

	o, err := uow.OrderRepository().GetByItemID(ctx, cmd.OrderItemID())
	if err != nil {
		return nil, err
	}

	if !o.RetailerID().IsEqual(retailer.ID()) {
		return nil, errs.NewUnauthorizedError(cmd.RetailerEmail(), "order item "+cmd.OrderItemID().String())
	}

	item, err := o.ItemByID(cmd.OrderItemID())
	if err != nil {
		return nil, err
	}

	request, err := returns.NewRequest(
		kernel.NewUUID(), item.ID(), retailer.ID(),
		cmd.Quantity(), item.Quantity(), cmd.Reason(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.ReturnRepository().Add(ctx, request); err != nil {
		return nil, err
	}

	prod, err := uow.ProductRepository().Get(ctx, item.ProductID())
	if err != nil {
		return nil, err
	}

	wholesaler, err := uow.UserRepository().Get(ctx, prod.WholesalerID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Notify(ctx, wholesaler.ID(),
		"Return requested",
		fmt.Sprintf("Return requested for product: %s. Quantity: %d", prod.Name(), request.Quantity()))

	h.dispatcher.SendEmail(ctx, wholesaler.Email(),
		"Return Request: "+prod.Name(),
		fmt.Sprintf(
			"<p>Dear %s,</p><p>A retailer requested to return <strong>%d</strong> unit(s) of "+
				"<strong>%s</strong>.</p><p>Reason: %s</p>",
			wholesaler.Name(), request.Quantity(), prod.Name(), request.Reason()))

	return request, nil
}
