package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand deletes every line of the caller's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	retailerEmail string

	guard kernel.ConstructorGuard
}

func NewClearCartCommand(retailerEmail string) (ClearCartCommand, error) {
	if retailerEmail == "" {
		return ClearCartCommand{}, ErrRetailerEmailIsRequired
	}

	return ClearCartCommand{
		retailerEmail: retailerEmail,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) RetailerEmail() string { return c.retailerEmail }
