package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/returns"
)

var ErrUpdateReturnStatusCommandIsNotConstructed = errors.New(
	"UpdateReturnStatusCommand must be created via NewUpdateReturnStatusCommand constructor",
)

// UpdateReturnStatusCommand changes the status of a return request. With
// an empty wholesaler email the change is administrative and skips the
// ownership check; otherwise the caller must own the returned product.
type UpdateReturnStatusCommand struct { //nolint:recvcheck //using for validation
	returnID        kernel.UUID
	wholesalerEmail string
	status          returns.Status

	guard kernel.ConstructorGuard
}

func NewUpdateReturnStatusCommand(
	returnID kernel.UUID, wholesalerEmail string, status returns.Status,
) (UpdateReturnStatusCommand, error) {
	if err := returnID.Validate(); err != nil {
		return UpdateReturnStatusCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return UpdateReturnStatusCommand{}, err
	}

	return UpdateReturnStatusCommand{
		returnID:        returnID,
		wholesalerEmail: wholesalerEmail,
		status:          status,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

func (c UpdateReturnStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReturnStatusCommandIsNotConstructed)
}

func (c UpdateReturnStatusCommand) ReturnID() kernel.UUID   { return c.returnID }
func (c UpdateReturnStatusCommand) WholesalerEmail() string { return c.wholesalerEmail }
func (c UpdateReturnStatusCommand) Status() returns.Status  { return c.status }
