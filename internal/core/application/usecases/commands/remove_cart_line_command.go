package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrRemoveCartLineCommandIsNotConstructed = errors.New(
	"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
)

// RemoveCartLineCommand removes one line from the caller's cart. A line
// belonging to a different retailer is rejected as unauthorized.
type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	retailerEmail string
	lineID        kernel.UUID

	guard kernel.ConstructorGuard
}

func NewRemoveCartLineCommand(retailerEmail string, lineID kernel.UUID) (RemoveCartLineCommand, error) {
	if retailerEmail == "" {
		return RemoveCartLineCommand{}, ErrRetailerEmailIsRequired
	}
	if err := lineID.Validate(); err != nil {
		return RemoveCartLineCommand{}, err
	}

	return RemoveCartLineCommand{
		retailerEmail: retailerEmail,
		lineID:        lineID,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

func (c RemoveCartLineCommand) RetailerEmail() string { return c.retailerEmail }
func (c RemoveCartLineCommand) LineID() kernel.UUID   { return c.lineID }
