package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Friends(ctx context.Context) error
	AddFriend(ctx context.Context) error
	RemoveFriend(ctx context.Context) error
	CountFriends(ctx context.Context) error
	Whois(ctx context.Context) error
	Whoami(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Orderly CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - whois          — look a user up by id
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - friends        — list your friends
//	  - add            — add a friend by id
//	  - remove         — remove a friend by id
//	  - count          — count your friends
//	  - whois          — look a user up by id
//	  - whoami         — show your own id and username
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("orderly> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (f)riends, add, remove, count, whois, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, whois, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "f", "friends":
			_ = a.Friends(ctx)

		case "add":
			_ = a.AddFriend(ctx)

		case "remove":
			_ = a.RemoveFriend(ctx)

		case "count":
			_ = a.CountFriends(ctx)

		case "whois":
			_ = a.Whois(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
