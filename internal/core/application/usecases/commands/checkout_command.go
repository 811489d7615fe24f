package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand converts the caller's cart into a placed order as one
// atomic unit: stock reservation, order creation and cart clearing commit
// together or not at all.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	retailerEmail string

	guard kernel.ConstructorGuard
}

func NewCheckoutCommand(retailerEmail string) (CheckoutCommand, error) {
	if retailerEmail == "" {
		return CheckoutCommand{}, ErrRetailerEmailIsRequired
	}

	return CheckoutCommand{
		retailerEmail: retailerEmail,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) RetailerEmail() string { return c.retailerEmail }
