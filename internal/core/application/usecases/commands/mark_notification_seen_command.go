package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var (
	ErrMarkNotificationSeenCommandIsNotConstructed = errors.New(
		"MarkNotificationSeenCommand must be created via NewMarkNotificationSeenCommand constructor",
	)
	ErrUserEmailIsRequired = errors.New("user email is required")
)

// MarkNotificationSeenCommand flips one notification's seen flag for its
// recipient.
type MarkNotificationSeenCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	userEmail      string

	guard kernel.ConstructorGuard
}

func NewMarkNotificationSeenCommand(
	notificationID kernel.UUID, userEmail string,
) (MarkNotificationSeenCommand, error) {
	if err := notificationID.Validate(); err != nil {
		return MarkNotificationSeenCommand{}, err
	}
	if userEmail == "" {
		return MarkNotificationSeenCommand{}, ErrUserEmailIsRequired
	}

	return MarkNotificationSeenCommand{
		notificationID: notificationID,
		userEmail:      userEmail,
		guard:          kernel.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationSeenCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationSeenCommandIsNotConstructed)
}

func (c MarkNotificationSeenCommand) NotificationID() kernel.UUID { return c.notificationID }
func (c MarkNotificationSeenCommand) UserEmail() string           { return c.userEmail }
