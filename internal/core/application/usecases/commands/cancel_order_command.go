package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a placed order. Only the order's retailer may
// cancel it; cancellation never restocks inventory.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	retailerEmail string

	guard kernel.ConstructorGuard
}

func NewCancelOrderCommand(orderID kernel.UUID, retailerEmail string) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	if retailerEmail == "" {
		return CancelOrderCommand{}, ErrRetailerEmailIsRequired
	}

	return CancelOrderCommand{
		orderID:       orderID,
		retailerEmail: retailerEmail,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c CancelOrderCommand) RetailerEmail() string { return c.retailerEmail }
