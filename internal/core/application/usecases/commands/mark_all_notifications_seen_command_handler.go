package commands

import (
	"context"
)

// MarkAllNotificationsSeenCommandHandler marks every unseen notification
// of the caller as seen and returns how many actually flipped.
type MarkAllNotificationsSeenCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkAllNotificationsSeenCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkAllNotificationsSeenCommandHandler {
	return MarkAllNotificationsSeenCommandHandler{uowFactory: uowFactory}
}

func (h *MarkAllNotificationsSeenCommandHandler) Handle(
	ctx context.Context, cmd MarkAllNotificationsSeenCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	recipient, err := uow.UserRepository().GetByEmail(ctx, cmd.UserEmail())
	if err != nil {
		return 0, err
	}

	all, err := uow.NotificationRepository().GetByRecipient(ctx, recipient.ID())
	if err != nil {
		return 0, err
	}

	flipped := 0
	for _, n := range all {
		if !n.MarkSeen() {
			continue
		}
		if err = uow.NotificationRepository().Update(ctx, n); err != nil {
			return 0, err
		}
		flipped++
	}

	return flipped, uow.Commit(ctx)
}
