package notifications

import (
	"time"

	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
)

// Type enumerates the relationship transitions that fan out a notification
type Type string

const (
	TypeLike    Type = "like"
	TypeComment Type = "comment"
	TypeFollow  Type = "follow"
)

// Notification records a single qualifying transition: someone liked a post,
// commented on it, or followed its recipient. It is appended exactly once
// per transition into the triggering state (a like/unlike/like cycle
// produces a fresh one on every like, none on unlike) and only ever mutated
// by the read flag.
type Notification struct {
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	Type        Type       `json:"type" db:"type"`
	ID          uuid.UUID  `json:"id" db:"id"`
	RecipientID uuid.UUID  `json:"recipientId" db:"recipient_id"`
	ActorID     uuid.UUID  `json:"actorId" db:"actor_id"`
	PostID      *uuid.UUID `json:"postId,omitempty" db:"post_id"`
	Read        bool       `json:"read" db:"read"`
}

// Event describes a transition *into* a triggering state, as observed by
// the graph and ledger at the moment they apply the mutation. Removals
// (unlike, unfollow, comment deletion) are not events.
type Event struct {
	Type      Type
	ActorID   uuid.UUID
	Recipient uuid.UUID
	PostID    *uuid.UUID
}

// FromTransition builds the notification for a qualifying event, or nil
// when no notification is due: a user acting on their own content is never
// notified. The caller persists the result inside the transaction that
// applied the transition, so the edge write and the fan-out commit as one
// unit.
func FromTransition(ev Event) *Notification {
	if ev.ActorID == ev.Recipient {
		return nil
	}
	return &Notification{
		RecipientID: ev.Recipient,
		Type:        ev.Type,
		ActorID:     ev.ActorID,
		PostID:      ev.PostID,
	}
}

// NotificationView is a notification joined with the actor's public identity
// and, for like/comment notifications, the referenced post's first image.
type NotificationView struct {
	CreatedAt time.Time         `json:"createdAt"`
	Type      Type              `json:"type"`
	Actor     *posts.AuthorView `json:"from"`
	PostID    *uuid.UUID        `json:"postId,omitempty"`
	PostImage *string           `json:"postImage,omitempty"`
	ID        uuid.UUID         `json:"id"`
	Read      bool              `json:"read"`
}
