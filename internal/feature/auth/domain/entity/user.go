// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
type User struct {
	// ID is the store-generated identifier (24 hex characters).
	ID string

	// Name is the optional display name given at registration.
	Name string

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string

	CreatedAt time.Time
	UpdatedAt time.Time
}
