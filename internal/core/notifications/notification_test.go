package notifications

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromTransition_Like tests the like transition fan-out
func TestFromTransition_Like(t *testing.T) {
	actorID := uuid.New()
	recipientID := uuid.New()
	postID := uuid.New()

	n := FromTransition(Event{
		Type:      TypeLike,
		ActorID:   actorID,
		Recipient: recipientID,
		PostID:    &postID,
	})

	require.NotNil(t, n)
	assert.Equal(t, TypeLike, n.Type)
	assert.Equal(t, recipientID, n.RecipientID)
	assert.Equal(t, actorID, n.ActorID)
	require.NotNil(t, n.PostID)
	assert.Equal(t, postID, *n.PostID)
	assert.False(t, n.Read)
}

// TestFromTransition_Follow tests that follow notifications carry no post
func TestFromTransition_Follow(t *testing.T) {
	n := FromTransition(Event{
		Type:      TypeFollow,
		ActorID:   uuid.New(),
		Recipient: uuid.New(),
	})

	require.NotNil(t, n)
	assert.Equal(t, TypeFollow, n.Type)
	assert.Nil(t, n.PostID)
}

// TestFromTransition_SelfAction tests that acting on one's own content
// produces no notification
func TestFromTransition_SelfAction(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	for _, typ := range []Type{TypeLike, TypeComment, TypeFollow} {
		n := FromTransition(Event{
			Type:      typ,
			ActorID:   userID,
			Recipient: userID,
			PostID:    &postID,
		})
		assert.Nil(t, n, "self %s should not notify", typ)
	}
}
