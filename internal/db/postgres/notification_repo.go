package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Glimpse/internal/core/notifications"
	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
)

type postgresNotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepository creates a new PostgreSQL notification repository.
// Writes go through insertNotificationTx inside the mutating repositories'
// transactions; this repository only reads and marks.
func NewNotificationRepository(db *sql.DB) notifications.Repository {
	return &postgresNotificationRepo{db: db}
}

// ListByRecipient returns the recipient's notifications newest first. Actor
// identity and the subject post's first image are joined in the listing
// query so the client renders each row without follow-up lookups.
func (r *postgresNotificationRepo) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*notifications.NotificationView, error) {
	query := `
		SELECT n.id, n.type, n.post_id, n.read, n.created_at,
		       u.id, u.username, u.avatar,
		       (p.images)[1]
		FROM notifications n
		JOIN users u ON u.id = n.actor_id
		LEFT JOIN posts p ON p.id = n.post_id
		WHERE n.recipient_id = $1
		ORDER BY n.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	views := []*notifications.NotificationView{}
	for rows.Next() {
		var v notifications.NotificationView
		var actor posts.AuthorView
		var postID sql.NullString
		var postImage sql.NullString

		if err := rows.Scan(
			&v.ID, &v.Type, &postID, &v.Read, &v.CreatedAt,
			&actor.ID, &actor.Username, &actor.Avatar,
			&postImage,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		v.Actor = &actor
		if postID.Valid {
			id, err := uuid.Parse(postID.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse post id: %w", err)
			}
			v.PostID = &id
		}
		if postImage.Valid {
			v.PostImage = &postImage.String
		}

		views = append(views, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return views, nil
}

// MarkAllRead flips the read flag on every unread notification for the
// recipient. Idempotent: a second call affects zero rows.
func (r *postgresNotificationRepo) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE recipient_id = $1 AND read = FALSE
	`

	if _, err := r.db.ExecContext(ctx, query, recipientID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}
