package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/orderly-app/orderly/internal/client/client"
	"github.com/orderly-app/orderly/internal/protocol"
)

// FriendService defines friend-list operations for the CLI. Add and Remove
// return the server's confirmation message for display.
type FriendService interface {
	List(ctx context.Context, userID string) ([]protocol.UserInfo, error)
	Add(ctx context.Context, userID, friendID string) (string, error)
	Remove(ctx context.Context, userID, friendID string) (string, error)
	Count(ctx context.Context, userID string) (int64, error)
}

type friendService struct {
	client client.Client
}

// NewFriendService constructs a FriendService bound to the given API client.
func NewFriendService(c client.Client) FriendService {
	return &friendService{client: c}
}

func (f *friendService) List(ctx context.Context, userID string) ([]protocol.UserInfo, error) {
	resp, err := f.client.Do(ctx, protocol.Request{
		Type:   protocol.TypeFriendList,
		Action: protocol.ActionGet,
		UserID: userID,
	})
	if err != nil {
		return nil, err
	}
	if resp.Status != protocol.StatusSuccess {
		return nil, fmt.Errorf("%w: %s", client.ErrRejected, resp.Message)
	}
	return resp.Friends, nil
}

func (f *friendService) Add(ctx context.Context, userID, friendID string) (string, error) {
	resp, err := f.client.Do(ctx, protocol.Request{
		Type:     protocol.TypeFriendList,
		Action:   protocol.ActionAdd,
		UserID:   userID,
		FriendID: friendID,
	})
	if err != nil {
		return "", err
	}
	if resp.Status != protocol.StatusSuccess {
		return "", fmt.Errorf("%w: %s", client.ErrRejected, resp.Message)
	}
	return resp.Message, nil
}

func (f *friendService) Remove(ctx context.Context, userID, friendID string) (string, error) {
	resp, err := f.client.Do(ctx, protocol.Request{
		Type:     protocol.TypeFriendList,
		Action:   protocol.ActionRemove,
		UserID:   userID,
		FriendID: friendID,
	})
	if err != nil {
		return "", err
	}
	if resp.Status != protocol.StatusSuccess {
		return "", fmt.Errorf("%w: %s", client.ErrRejected, resp.Message)
	}
	return resp.Message, nil
}

func (f *friendService) Count(ctx context.Context, userID string) (int64, error) {
	resp, err := f.client.Do(ctx, protocol.Request{
		Type:   protocol.TypeFriendList,
		Action: protocol.ActionCount,
		UserID: userID,
	})
	if err != nil {
		return 0, err
	}
	if resp.Status != protocol.StatusSuccess {
		return 0, fmt.Errorf("%w: %s", client.ErrRejected, resp.Message)
	}
	count, err := strconv.ParseInt(resp.Message, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected count %q: %w", resp.Message, err)
	}
	return count, nil
}
