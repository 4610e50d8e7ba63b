package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/orderly-app/orderly/internal/common"
	"github.com/orderly-app/orderly/internal/dbx"
	"github.com/orderly-app/orderly/internal/server/models"
	"github.com/orderly-app/orderly/internal/server/repositories/repomanager"
)

type FriendService struct {
	db *sql.DB
	rm repomanager.RepositoryManager
}

func NewFriendService(db *sql.DB, rm repomanager.RepositoryManager) *FriendService {
	return &FriendService{db: db, rm: rm}
}

// List returns the users that userID has added, with display names,
// ordered by username. The edge is directed: the result says nothing about
// who added userID back.
func (s *FriendService) List(ctx context.Context, userID string) ([]models.Friend, error) {
	list, err := s.rm.Friends(s.db).ListWithNames(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return list, nil
}

// Count returns the number of outgoing edges from userID.
func (s *FriendService) Count(ctx context.Context, userID string) (int64, error) {
	count, err := s.rm.Friends(s.db).Count(ctx, userID)
	if err != nil {
		return 0, common.ErrorInternal
	}
	return count, nil
}

// Add inserts the directed edge (userID, friendID). The friend-existence
// check, the duplicate check and the insert run in one transaction, with
// the composite primary key as the backstop for concurrent adds of the
// same pair: exactly one such call can succeed.
//
// Returns common.ErrorNotFound if friendID names no user and
// common.ErrorAlreadyExists if the edge is already present.
func (s *FriendService) Add(ctx context.Context, userID, friendID string) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.rm.Users(tx).GetByID(ctx, friendID); err != nil {
			return err
		}

		repo := s.rm.Friends(tx)

		exists, err := repo.Exists(ctx, userID, friendID)
		if err != nil {
			return err
		}
		if exists {
			return common.ErrorAlreadyExists
		}

		return repo.Add(ctx, userID, friendID)
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorAlreadyExists) {
			return err
		}
		return fmt.Errorf("error adding friend: %w", err)
	}

	return nil
}

// Remove deletes the directed edge (userID, friendID). Removing an edge
// that does not exist is not an error.
func (s *FriendService) Remove(ctx context.Context, userID, friendID string) error {
	if err := s.rm.Friends(s.db).Remove(ctx, userID, friendID); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// AreFriends reports whether the directed edge (userID, friendID) exists.
func (s *FriendService) AreFriends(ctx context.Context, userID, friendID string) (bool, error) {
	exists, err := s.rm.Friends(s.db).Exists(ctx, userID, friendID)
	if err != nil {
		return false, common.ErrorInternal
	}
	return exists, nil
}
