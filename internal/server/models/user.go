// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account identity. Credentials never leave the server.
type User struct {
	ID           string
	Email        string
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
}
