package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrCreateReturnRequestCommandIsNotConstructed = errors.New(
	"CreateReturnRequestCommand must be created via NewCreateReturnRequestCommand constructor",
)

// CreateReturnRequestCommand opens a return for one item of a retailer's
// order. Quantity bounds against what was purchased are enforced by the
// return aggregate once the order item is loaded.
type CreateReturnRequestCommand struct { //nolint:recvcheck //using for validation
	orderItemID   kernel.UUID
	retailerEmail string
	quantity      int
	reason        string

	guard kernel.ConstructorGuard
}

func NewCreateReturnRequestCommand(
	orderItemID kernel.UUID, retailerEmail string, quantity int, reason string,
) (CreateReturnRequestCommand, error) {
	if err := orderItemID.Validate(); err != nil {
		return CreateReturnRequestCommand{}, err
	}
	if retailerEmail == "" {
		return CreateReturnRequestCommand{}, ErrRetailerEmailIsRequired
	}
	if quantity <= 0 {
		return CreateReturnRequestCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", errors.New("must be positive"))
	}

	return CreateReturnRequestCommand{
		orderItemID:   orderItemID,
		retailerEmail: retailerEmail,
		quantity:      quantity,
		reason:        reason,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

func (c CreateReturnRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnRequestCommandIsNotConstructed)
}

func (c CreateReturnRequestCommand) OrderItemID() kernel.UUID { return c.orderItemID }
func (c CreateReturnRequestCommand) RetailerEmail() string    { return c.retailerEmail }
func (c CreateReturnRequestCommand) Quantity() int            { return c.quantity }
func (c CreateReturnRequestCommand) Reason() string           { return c.reason }
