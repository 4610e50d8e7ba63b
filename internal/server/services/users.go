// Package services contains the stateless business logic layered on the
// repositories: account registration and authentication, and friend-graph
// operations. Every read-check-write sequence runs inside one transaction.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/orderly-app/orderly/internal/common"
	"github.com/orderly-app/orderly/internal/cryptox"
	"github.com/orderly-app/orderly/internal/dbx"
	"github.com/orderly-app/orderly/internal/server/models"
	"github.com/orderly-app/orderly/internal/server/repositories/repomanager"
)

// saltBytes is the per-registration salt entropy (hex-encoded for storage).
const saltBytes = 16

type UserService struct {
	db *sql.DB
	rm repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, rm: rm}
}

// Register creates a new account. The duplicate check and the insert run in
// one transaction; the unique constraints on username/email are the backstop
// for races between concurrent signups.
//
// Returns common.ErrorAlreadyExists when username or email is taken and
// common.ErrorValidation when a required field is empty.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {

	if username == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	salt, err := common.MakeRandHexString(saltBytes)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: cryptox.HashPassword(password, salt),
		Salt:         salt,
		CreatedAt:    time.Now().UTC(),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.rm.Users(tx)

		exists, err := repo.ExistsByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return err
		}
		if exists {
			return common.ErrorAlreadyExists
		}

		return repo.Create(ctx, user)
	})

	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate verifies username/password and returns the account on an
// exact match. Unknown user and wrong password are indistinguishable to the
// caller: both come back as common.ErrorUnauthorized, and the KDF runs in
// both cases so the two paths cost about the same.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {

	repo := s.rm.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.HashPassword(password, "decoy")
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// Profile looks up an account by id for the user_info request.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {

	if userID == "" {
		return nil, common.ErrorValidation
	}

	repo := s.rm.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
