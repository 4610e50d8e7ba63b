package users

import (
	"context"

	"github.com/orderly-app/orderly/internal/server/models"
)

// Repository is the credential store: account rows plus the uniqueness
// checks signup relies on. Implementations translate driver errors into
// the sentinels in internal/common.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
