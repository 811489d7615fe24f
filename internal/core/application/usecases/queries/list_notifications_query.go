package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery retrieves a user's in-app notifications, newest
// first. The unseen-only form feeds the notification badge.
type ListNotificationsQuery struct {
	userEmail  string
	unseenOnly bool

	guard kernel.ConstructorGuard
}

func NewListNotificationsQuery(userEmail string, unseenOnly bool) (ListNotificationsQuery, error) {
	if userEmail == "" {
		return ListNotificationsQuery{}, ErrEmailIsRequired
	}
	return ListNotificationsQuery{
		userEmail:  userEmail,
		unseenOnly: unseenOnly,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// NotificationResponse is one in-app notification.
type NotificationResponse struct {
	ID        kernel.UUID
	Message   string
	Seen      bool
	Timestamp time.Time
}
