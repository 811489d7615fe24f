// Package notification contains the in-app notification entity. Delivery is
// fire-and-forget: the dispatcher persists these records outside the
// triggering transaction and failures never surface to the caller.
package notification

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification")

// Notification is one in-app message for a user. The seen flag flips only
// false -> true.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	message     string
	seen        bool
	timestamp   time.Time

	isConstructed bool
}

// NewNotification creates an unseen notification.
func NewNotification(id, recipientID kernel.UUID, message string, now time.Time) (*Notification, error) {
	if err := errors.Join(id.Validate(), recipientID.Validate()); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		id:            id,
		recipientID:   recipientID,
		message:       message,
		seen:          false,
		timestamp:     now,
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id, recipientID kernel.UUID,
	message string,
	seen bool,
	timestamp time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, recipientID, message, timestamp)
	if err != nil {
		return nil, err
	}
	n.seen = seen
	return n, nil
}

// Validate ensures the Notification was built through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID          { return n.id }
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }
func (n *Notification) Message() string          { return n.message }
func (n *Notification) IsSeen() bool             { return n.seen }
func (n *Notification) Timestamp() time.Time     { return n.timestamp }

// BelongsTo reports whether the notification targets the given user.
func (n *Notification) BelongsTo(recipientID kernel.UUID) bool {
	return n.recipientID.IsEqual(recipientID)
}

// MarkSeen flips the seen flag to true and reports whether anything
// changed. A seen notification stays seen.
func (n *Notification) MarkSeen() bool {
	if n.seen {
		return false
	}
	n.seen = true
	return true
}
