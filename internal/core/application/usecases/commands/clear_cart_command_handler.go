package commands

import (
	"context"
)

// ClearCartCommandHandler removes all of a retailer's cart lines.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory}
}

func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	retailer, err := uow.UserRepository().GetByEmail(ctx, cmd.RetailerEmail())
	if err != nil {
		return err
	}

	if err = uow.CartRepository().DeleteByRetailer(ctx, retailer.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
