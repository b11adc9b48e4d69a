package notifications

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for notification reads. Writes happen
// inside the graph/ledger mutation transactions (see FromTransition), so
// there is no standalone create path to expose here.
type Repository interface {
	// ListByRecipient returns the recipient's notifications newest first,
	// actor identity and post image joined in the listing query.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*NotificationView, error)

	// MarkAllRead flips the read flag on every unread notification
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error
}

// Service defines the business logic interface for the notification feed
type Service interface {
	List(ctx context.Context, recipientID uuid.UUID) ([]*NotificationView, error)
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error
}
