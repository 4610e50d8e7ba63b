// Package models holds the persisted data shapes of the Orderly server.
package models

import "time"

// User is an account row. Rows are created on signup and never mutated or
// deleted afterwards. Username and email are unique.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
}
