package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderly-app/orderly/internal/common"
	"github.com/orderly-app/orderly/internal/server/models"
)

func setupFriends(t *testing.T) (*UserService, *FriendService) {
	t.Helper()
	db, rm := setupStore(t)
	return NewUserService(db, rm), NewFriendService(db, rm)
}

func register(t *testing.T, users *UserService, name string) *models.User {
	t.Helper()
	user, err := users.Register(context.Background(), name, name+"@example.com", "pw-"+name)
	require.NoError(t, err)
	return user
}

func TestAdd_OneDirectional(t *testing.T) {
	users, friends := setupFriends(t)
	ctx := context.Background()

	alice := register(t, users, "alice")
	bob := register(t, users, "bob")

	require.NoError(t, friends.Add(ctx, alice.ID, bob.ID))

	aliceList, err := friends.List(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Friend{{ID: bob.ID, Username: "bob"}}, aliceList)

	// bob never added alice: his list stays empty
	bobList, err := friends.List(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobList)

	ab, err := friends.AreFriends(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, ab)

	ba, err := friends.AreFriends(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, ba)
}

func TestAdd_UnknownFriend(t *testing.T) {
	users, friends := setupFriends(t)
	ctx := context.Background()

	alice := register(t, users, "alice")

	err := friends.Add(ctx, alice.ID, "no-such-user")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAdd_DuplicateEdge(t *testing.T) {
	users, friends := setupFriends(t)
	ctx := context.Background()

	alice := register(t, users, "alice")
	bob := register(t, users, "bob")

	require.NoError(t, friends.Add(ctx, alice.ID, bob.ID))
	require.ErrorIs(t, friends.Add(ctx, alice.ID, bob.ID), common.ErrorAlreadyExists)

	count, err := friends.Count(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRemove_Idempotent(t *testing.T) {
	users, friends := setupFriends(t)
	ctx := context.Background()

	alice := register(t, users, "alice")
	bob := register(t, users, "bob")

	// removing an edge that was never added succeeds
	require.NoError(t, friends.Remove(ctx, alice.ID, bob.ID))

	require.NoError(t, friends.Add(ctx, alice.ID, bob.ID))
	require.NoError(t, friends.Remove(ctx, alice.ID, bob.ID))
	require.NoError(t, friends.Remove(ctx, alice.ID, bob.ID))

	count, err := friends.Count(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCountAgreesWithList(t *testing.T) {
	users, friends := setupFriends(t)
	ctx := context.Background()

	alice := register(t, users, "alice")
	bob := register(t, users, "bob")
	carol := register(t, users, "carol")

	require.NoError(t, friends.Add(ctx, alice.ID, bob.ID))
	require.NoError(t, friends.Add(ctx, alice.ID, carol.ID))

	list, err := friends.List(ctx, alice.ID)
	require.NoError(t, err)
	count, err := friends.Count(ctx, alice.ID)
	require.NoError(t, err)

	assert.Len(t, list, 2)
	assert.EqualValues(t, len(list), count)
}

func TestAdd_ConcurrentSamePair(t *testing.T) {
	users, friends := setupFriends(t)
	ctx := context.Background()

	alice := register(t, users, "alice")
	bob := register(t, users, "bob")

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = friends.Add(ctx, alice.ID, bob.ID)
		}(i)
	}
	wg.Wait()

	var okCount, dupCount int
	for _, err := range results {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, common.ErrorAlreadyExists):
			dupCount++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactly one add must succeed")
	assert.Equal(t, 1, dupCount, "the other must observe the existing edge")

	count, err := friends.Count(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "edge count increases by exactly one, never two")
}
