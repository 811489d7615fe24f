package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT n.id, n.message, n.seen, n.timestamp
		FROM notifications n
		JOIN users u ON u.id = n.recipient_id
		WHERE LOWER(u.email) = LOWER(?)
	`
	args := []any{query.userEmail}

	if query.unseenOnly {
		sql += ` AND n.seen = FALSE`
	}

	sql += ` ORDER BY n.timestamp DESC, n.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]NotificationResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var message string
		var seen bool
		var timestamp time.Time

		if err = rows.Scan(&id, &message, &seen, &timestamp); err != nil {
			return nil, err
		}

		resp := NotificationResponse{Message: message, Seen: seen, Timestamp: timestamp}
		if resp.ID, err = scanUUID(id); err != nil {
			return nil, err
		}
		result = append(result, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
