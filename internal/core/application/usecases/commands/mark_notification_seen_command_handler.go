package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// MarkNotificationSeenCommandHandler marks one notification as seen. A
// notification that is already seen stays seen; Handle reports whether
// the flag actually flipped.
type MarkNotificationSeenCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationSeenCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationSeenCommandHandler {
	return MarkNotificationSeenCommandHandler{uowFactory: uowFactory}
}

func (h *MarkNotificationSeenCommandHandler) Handle(
	ctx context.Context, cmd MarkNotificationSeenCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	recipient, err := uow.UserRepository().GetByEmail(ctx, cmd.UserEmail())
	if err != nil {
		return false, err
	}

	n, err := uow.NotificationRepository().Get(ctx, cmd.NotificationID())
	if err != nil {
		return false, err
	}

	if !n.BelongsTo(recipient.ID()) {
		return false, errs.NewUnauthorizedError(cmd.UserEmail(), "notification "+cmd.NotificationID().String())
	}

	changed := n.MarkSeen()
	if changed {
		if err = uow.NotificationRepository().Update(ctx, n); err != nil {
			return false, err
		}
	}

	return changed, uow.Commit(ctx)
}
