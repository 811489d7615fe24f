package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	ErrAddCartLineCommandIsNotConstructed = errors.New(
		"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
	)
	ErrRetailerEmailIsRequired = errors.New("retailer email is required")
)

// AddCartLineCommand represents a retailer's request to put a product into
// their cart. Adding the same product twice appends a second line; lines
// are never merged.
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	retailerEmail string
	productID     kernel.UUID
	quantity      int

	guard kernel.ConstructorGuard
}

// NewAddCartLineCommand validates that the caller email is present, the
// product ID is valid and the quantity is positive.
func NewAddCartLineCommand(retailerEmail string, productID kernel.UUID, quantity int) (AddCartLineCommand, error) {
	cmd := AddCartLineCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRetailerEmail(retailerEmail),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

func (c AddCartLineCommand) RetailerEmail() string  { return c.retailerEmail }
func (c AddCartLineCommand) ProductID() kernel.UUID { return c.productID }
func (c AddCartLineCommand) Quantity() int          { return c.quantity }

func (c *AddCartLineCommand) setRetailerEmail(email string) error {
	if email == "" {
		return ErrRetailerEmailIsRequired
	}
	c.retailerEmail = email
	return nil
}

func (c *AddCartLineCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *AddCartLineCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
