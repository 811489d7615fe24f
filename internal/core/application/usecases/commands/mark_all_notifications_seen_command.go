package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrMarkAllNotificationsSeenCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsSeenCommand must be created via NewMarkAllNotificationsSeenCommand constructor",
)

// MarkAllNotificationsSeenCommand marks every unseen notification of one
// user as seen.
type MarkAllNotificationsSeenCommand struct { //nolint:recvcheck //using for validation
	userEmail string

	guard kernel.ConstructorGuard
}

func NewMarkAllNotificationsSeenCommand(userEmail string) (MarkAllNotificationsSeenCommand, error) {
	if userEmail == "" {
		return MarkAllNotificationsSeenCommand{}, ErrUserEmailIsRequired
	}

	return MarkAllNotificationsSeenCommand{
		userEmail: userEmail,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

func (c MarkAllNotificationsSeenCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsSeenCommandIsNotConstructed)
}

func (c MarkAllNotificationsSeenCommand) UserEmail() string { return c.userEmail }
