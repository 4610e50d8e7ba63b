package tcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/orderly-app/orderly/internal/common"
	"github.com/orderly-app/orderly/internal/protocol"
)

// route decodes one frame and dispatches it. Any panic while building the
// response is converted to an error_response; the connection stays open.
func (s *Server) route(ctx context.Context, conn net.Conn, raw []byte) (resp any) {

	defer func() {
		if p := recover(); p != nil {
			s.logger.Error(ctx, "panic in request handler", "panic", fmt.Sprint(p))
			resp = protocol.Failed(protocol.TypeErrorResponse, "Internal server error")
		}
	}()

	var req protocol.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return protocol.Failed(protocol.TypeErrorResponse, "Invalid JSON format")
	}

	switch req.Type {
	case protocol.TypeLogin:
		return s.handleLogin(ctx, conn, &req)
	case protocol.TypeSignup:
		return s.handleSignup(ctx, &req)
	case protocol.TypeFriendList:
		return s.handleFriendList(ctx, &req)
	case protocol.TypeUserInfo:
		return s.handleUserInfo(ctx, &req)
	default:
		return protocol.Failed(protocol.TypeErrorResponse, fmt.Sprintf("Unknown request type: %s", req.Type))
	}
}

// handleLogin verifies credentials and, on success, binds the user to this
// connection in the session registry. Unknown user and wrong password get
// the same answer.
func (s *Server) handleLogin(ctx context.Context, conn net.Conn, req *protocol.Request) any {

	user, err := s.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return protocol.Failed(protocol.TypeAuthResponse, "Invalid username or password.")
		}
		s.logger.Error(ctx, "login error", "error", err)
		return protocol.Failed(protocol.TypeAuthResponse, "Internal server error")
	}

	s.sessions.Bind(user.ID, user.Username, conn)
	s.logger.Info(ctx, "User logged in", "username", user.Username)

	return protocol.UserResponse{
		Type:   protocol.TypeAuthResponse,
		Status: protocol.StatusSuccess,
		User:   &protocol.UserInfo{ID: user.ID, Username: user.Username},
	}
}

// handleSignup registers an account. The generated id is never returned to
// the caller.
func (s *Server) handleSignup(ctx context.Context, req *protocol.Request) any {

	_, err := s.users.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			return protocol.Failed(protocol.TypeSignupResponse, "Username or email already exists.")
		case errors.Is(err, common.ErrorValidation):
			return protocol.Failed(protocol.TypeSignupResponse, "Missing required parameters.")
		default:
			s.logger.Error(ctx, "signup error", "error", err)
			return protocol.Failed(protocol.TypeSignupResponse, "Internal server error")
		}
	}

	s.logger.Info(ctx, "User registered", "username", req.Username)
	return protocol.OK(protocol.TypeSignupResponse, "Signup successful!")
}

func (s *Server) handleFriendList(ctx context.Context, req *protocol.Request) any {

	if req.UserID == "" || req.Action == "" {
		return protocol.Failed(protocol.TypeFriendListResponse, "Missing required parameters.")
	}

	switch req.Action {

	case protocol.ActionGet:
		list, err := s.friends.List(ctx, req.UserID)
		if err != nil {
			s.logger.Error(ctx, "friend list error", "error", err)
			return protocol.Failed(protocol.TypeFriendListResponse, "An error occurred while processing your request.")
		}
		infos := make([]protocol.UserInfo, 0, len(list))
		for _, f := range list {
			infos = append(infos, protocol.UserInfo{ID: f.ID, Username: f.Username})
		}
		return protocol.FriendsResponse{
			Type:    protocol.TypeFriendListResponse,
			Status:  protocol.StatusSuccess,
			Friends: infos,
		}

	case protocol.ActionAdd:
		if req.FriendID == "" {
			return protocol.Failed(protocol.TypeFriendListResponse, "Friend ID required for adding friend.")
		}
		if err := s.friends.Add(ctx, req.UserID, req.FriendID); err != nil {
			switch {
			case errors.Is(err, common.ErrorNotFound):
				return protocol.Failed(protocol.TypeFriendListResponse, "User not found")
			case errors.Is(err, common.ErrorAlreadyExists):
				return protocol.Failed(protocol.TypeFriendListResponse, "Already friends")
			default:
				s.logger.Error(ctx, "add friend error", "error", err)
				return protocol.Failed(protocol.TypeFriendListResponse, "An error occurred while processing your request.")
			}
		}
		return protocol.OK(protocol.TypeFriendListResponse, "Friend added successfully")

	case protocol.ActionRemove:
		if req.FriendID == "" {
			return protocol.Failed(protocol.TypeFriendListResponse, "Friend ID required for removing friend.")
		}
		if err := s.friends.Remove(ctx, req.UserID, req.FriendID); err != nil {
			s.logger.Error(ctx, "remove friend error", "error", err)
			return protocol.Failed(protocol.TypeFriendListResponse, "An error occurred while processing your request.")
		}
		return protocol.OK(protocol.TypeFriendListResponse, "Friend removed successfully")

	case protocol.ActionCount:
		count, err := s.friends.Count(ctx, req.UserID)
		if err != nil {
			s.logger.Error(ctx, "friend count error", "error", err)
			return protocol.Failed(protocol.TypeFriendListResponse, "An error occurred while processing your request.")
		}
		return protocol.OK(protocol.TypeFriendListResponse, strconv.FormatInt(count, 10))

	default:
		return protocol.Failed(protocol.TypeFriendListResponse,
			fmt.Sprintf("Invalid action '%s'. Expected 'get', 'add', 'remove', or 'count'.", req.Action))
	}
}

func (s *Server) handleUserInfo(ctx context.Context, req *protocol.Request) any {

	user, err := s.users.Profile(ctx, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return protocol.Failed(protocol.TypeUserInfoResponse, "User ID is required.")
		case errors.Is(err, common.ErrorNotFound):
			return protocol.Failed(protocol.TypeUserInfoResponse, "User not found.")
		default:
			s.logger.Error(ctx, "user info error", "error", err)
			return protocol.Failed(protocol.TypeUserInfoResponse, "Internal server error.")
		}
	}

	return protocol.UserResponse{
		Type:   protocol.TypeUserInfoResponse,
		Status: protocol.StatusSuccess,
		User:   &protocol.UserInfo{ID: user.ID, Username: user.Username},
	}
}
