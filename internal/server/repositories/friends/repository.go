package friends

import (
	"context"

	"github.com/orderly-app/orderly/internal/server/models"
)

// Repository stores directed friend edges (user_id, friend_id). An edge
// exists at most once per pair and is never mirrored automatically.
type Repository interface {
	// Add inserts the edge. Returns common.ErrorAlreadyExists if it is
	// already present.
	Add(ctx context.Context, userID, friendID string) error

	// Remove deletes the edge if present. Removing a missing edge is not
	// an error.
	Remove(ctx context.Context, userID, friendID string) error

	Exists(ctx context.Context, userID, friendID string) (bool, error)

	// Count returns the number of outgoing edges from userID.
	Count(ctx context.Context, userID string) (int64, error)

	// ListWithNames returns the users userID has added, joined against the
	// users table for display names, ordered by username.
	ListWithNames(ctx context.Context, userID string) ([]models.Friend, error)
}
