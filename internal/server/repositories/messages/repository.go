package messages

import (
	"context"

	"github.com/orderly-app/orderly/internal/server/models"
)

// Repository stores direct messages. The table is reserved for the
// messaging feature: the request router has no handler for it yet, so
// nothing on the wire reaches these methods.
type Repository interface {
	Save(ctx context.Context, msg *models.Message) error

	// Conversation returns the messages exchanged between two users in
	// either direction, oldest first, capped at limit.
	Conversation(ctx context.Context, userID, peerID string, limit int) ([]models.Message, error)
}
