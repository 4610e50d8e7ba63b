// Package services contains application services for the Orderly CLI. They
// translate wire responses into Go values and errors, so the command layer
// never inspects raw protocol frames.
package services

import (
	"context"
	"fmt"

	"github.com/orderly-app/orderly/internal/client/client"
	"github.com/orderly-app/orderly/internal/protocol"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Register: create an account on the server.
//   - Login: authenticate and return the server-assigned identity.
//   - UserInfo: look up a public user profile by id.
//   - Close: release the underlying connection.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, username, email string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (*protocol.UserInfo, error)
	UserInfo(ctx context.Context, userID string) (*protocol.UserInfo, error)
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func (a *authService) Register(ctx context.Context, username, email string, password []byte) error {
	resp, err := a.client.Do(ctx, protocol.Request{
		Type:     protocol.TypeSignup,
		Username: username,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return err
	}
	if resp.Status != protocol.StatusSuccess {
		return fmt.Errorf("%w: %s", client.ErrRejected, resp.Message)
	}
	return nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*protocol.UserInfo, error) {
	resp, err := a.client.Do(ctx, protocol.Request{
		Type:     protocol.TypeLogin,
		Username: username,
		Password: string(password),
	})
	if err != nil {
		return nil, err
	}
	if resp.Status != protocol.StatusSuccess {
		return nil, fmt.Errorf("%w: %s", client.ErrRejected, resp.Message)
	}
	if resp.User == nil {
		return nil, fmt.Errorf("%w: response carries no user", client.ErrRejected)
	}
	return resp.User, nil
}

func (a *authService) UserInfo(ctx context.Context, userID string) (*protocol.UserInfo, error) {
	resp, err := a.client.Do(ctx, protocol.Request{
		Type:   protocol.TypeUserInfo,
		UserID: userID,
	})
	if err != nil {
		return nil, err
	}
	if resp.Status != protocol.StatusSuccess {
		return nil, fmt.Errorf("%w: %s", client.ErrRejected, resp.Message)
	}
	if resp.User == nil {
		return nil, fmt.Errorf("%w: response carries no user", client.ErrRejected)
	}
	return resp.User, nil
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
