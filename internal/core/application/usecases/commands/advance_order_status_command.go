package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)
	ErrWholesalerEmailIsRequired = errors.New("wholesaler email is required")
)

// AdvanceOrderStatusCommand moves an order forward along the fulfilment
// path (placed to shipped, shipped to delivered) on behalf of the
// wholesaler whose products it contains.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	wholesalerEmail string
	target          order.Status

	guard kernel.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(
	orderID kernel.UUID, wholesalerEmail string, target order.Status,
) (AdvanceOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}
	if wholesalerEmail == "" {
		return AdvanceOrderStatusCommand{}, ErrWholesalerEmailIsRequired
	}
	if err := target.Validate(); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return AdvanceOrderStatusCommand{
		orderID:         orderID,
		wholesalerEmail: wholesalerEmail,
		target:          target,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID    { return c.orderID }
func (c AdvanceOrderStatusCommand) WholesalerEmail() string { return c.wholesalerEmail }
func (c AdvanceOrderStatusCommand) Target() order.Status    { return c.target }
