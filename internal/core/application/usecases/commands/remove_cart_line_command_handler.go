package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// RemoveCartLineCommandHandler deletes one cart line after verifying the
// caller owns it.
type RemoveCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewRemoveCartLineCommandHandler(uowFactory CartUoWFactory) RemoveCartLineCommandHandler {
	return RemoveCartLineCommandHandler{uowFactory: uowFactory}
}

func (h *RemoveCartLineCommandHandler) Handle(ctx context.Context, cmd RemoveCartLineCommand) error {
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

	line, err := uow.CartRepository().Get(ctx, cmd.LineID())
	if err != nil {
		return err
	}

	if !line.BelongsTo(retailer.ID()) {
		return errs.NewUnauthorizedError(cmd.RetailerEmail(), "cart line "+cmd.LineID().String())
	}

	if err = uow.CartRepository().Delete(ctx, line.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
