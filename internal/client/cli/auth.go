package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/orderly-app/orderly/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username, email and password and attempts
// to create a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is wiped before returning. Any I/O or service error is logged and returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, email, password); err != nil {
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the returned identity is remembered for the session; friend
// commands use its id. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	log.Printf("Login successfull")
	a.user = user
	return nil
}

// Logout forgets the in-memory identity. The server keeps no per-request
// session state, so there is nothing to tell it.
func (a *App) Logout(ctx context.Context) error {
	a.user = nil
	return nil
}

// Whoami prints the identity the current session logged in as.
func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s  %s\n", a.user.ID, a.user.Username)
	return nil
}
