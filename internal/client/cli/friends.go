package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
)

var errNotLoggedIn = errors.New("not logged in")

// requireLogin guards commands that need the current user's id.
func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return errNotLoggedIn
	}
	return nil
}

// Friends prints the current user's friend list.
func (a *App) Friends(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	friends, err := a.friendService.List(ctx, a.user.ID)
	if err != nil {
		log.Printf("Friend list unsuccessfull: %s", err.Error())
		return err
	}

	if len(friends) == 0 {
		fmt.Println("No friends yet")
		return nil
	}
	for _, f := range friends {
		fmt.Printf("%s  %s\n", f.ID, f.Username)
	}
	return nil
}

// AddFriend prompts for a user id and adds it to the friend list.
func (a *App) AddFriend(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	friendID, err := getSimpleText(a.reader, "Enter friend id", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.friendService.Add(ctx, a.user.ID, friendID)
	if err != nil {
		log.Printf("Add friend unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Println(msg)
	return nil
}

// RemoveFriend prompts for a user id and removes it from the friend list.
func (a *App) RemoveFriend(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	friendID, err := getSimpleText(a.reader, "Enter friend id", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.friendService.Remove(ctx, a.user.ID, friendID)
	if err != nil {
		log.Printf("Remove friend unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Println(msg)
	return nil
}

// CountFriends prints the size of the current user's friend list.
func (a *App) CountFriends(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	count, err := a.friendService.Count(ctx, a.user.ID)
	if err != nil {
		log.Printf("Friend count unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Printf("Friends: %d\n", count)
	return nil
}

// Whois prompts for a user id and prints the public profile. It works
// without a login, matching the server's per-request model.
func (a *App) Whois(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.UserInfo(ctx, userID)
	if err != nil {
		log.Printf("User lookup unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Printf("%s  %s\n", user.ID, user.Username)
	return nil
}
