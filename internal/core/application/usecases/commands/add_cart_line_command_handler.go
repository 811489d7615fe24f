package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// AddCartLineCommandHandler appends a new cart line for the retailer.
// The referenced product must exist and be active; inactive (soft-deleted)
// products are reported as not found.
type AddCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartLineCommandHandler creates a handler for cart additions.
func NewAddCartLineCommandHandler(uowFactory CartUoWFactory) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the created line.
func (h *AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) (*cart.Line, error) {
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

	prod, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}
	if !prod.IsActive() {
		return nil, errs.NewObjectNotFoundError("productId", cmd.ProductID().String())
	}

	line, err := cart.NewLine(kernel.NewUUID(), retailer.ID(), prod.ID(), cmd.Quantity(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.CartRepository().Add(ctx, line); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return line, nil
}
