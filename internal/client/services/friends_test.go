package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderly-app/orderly/internal/client/client"
	"github.com/orderly-app/orderly/internal/protocol"
)

func TestList_ReturnsFriends(t *testing.T) {
	fc := &fakeClient{resp: protocol.Response{
		Type:    protocol.TypeFriendListResponse,
		Status:  protocol.StatusSuccess,
		Friends: []protocol.UserInfo{{ID: "u2", Username: "bob"}},
	}}
	svc := NewFriendService(fc)

	friends, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0].Username)

	assert.Equal(t, protocol.TypeFriendList, fc.lastReq.Type)
	assert.Equal(t, protocol.ActionGet, fc.lastReq.Action)
	assert.Equal(t, "u1", fc.lastReq.UserID)
}

func TestAdd_ReturnsConfirmationMessage(t *testing.T) {
	fc := &fakeClient{resp: protocol.Response{
		Type: protocol.TypeFriendListResponse, Status: protocol.StatusSuccess, Message: "Friend added successfully",
	}}
	svc := NewFriendService(fc)

	msg, err := svc.Add(context.Background(), "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "Friend added successfully", msg)
	assert.Equal(t, "u2", fc.lastReq.FriendID)
}

func TestAdd_Rejection(t *testing.T) {
	fc := &fakeClient{resp: protocol.Response{
		Type: protocol.TypeFriendListResponse, Status: protocol.StatusFailed, Message: "Already friends",
	}}
	svc := NewFriendService(fc)

	_, err := svc.Add(context.Background(), "u1", "u2")
	require.ErrorIs(t, err, client.ErrRejected)
	assert.Contains(t, err.Error(), "Already friends")
}

func TestRemove(t *testing.T) {
	fc := &fakeClient{resp: protocol.Response{
		Type: protocol.TypeFriendListResponse, Status: protocol.StatusSuccess, Message: "Friend removed successfully",
	}}
	svc := NewFriendService(fc)

	msg, err := svc.Remove(context.Background(), "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "Friend removed successfully", msg)
	assert.Equal(t, protocol.ActionRemove, fc.lastReq.Action)
}

func TestCount_ParsesMessage(t *testing.T) {
	fc := &fakeClient{resp: protocol.Response{
		Type: protocol.TypeFriendListResponse, Status: protocol.StatusSuccess, Message: "12",
	}}
	svc := NewFriendService(fc)

	count, err := svc.Count(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestCount_GarbageMessage(t *testing.T) {
	fc := &fakeClient{resp: protocol.Response{
		Type: protocol.TypeFriendListResponse, Status: protocol.StatusSuccess, Message: "many",
	}}
	svc := NewFriendService(fc)

	_, err := svc.Count(context.Background(), "u1")
	require.Error(t, err)
}
