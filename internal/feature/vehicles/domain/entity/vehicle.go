// Package entity defines the domain models for the vehicles feature.
package entity

import "time"

// Vehicle is a car recorded by a user.
// OwnerID is the identifier of the owning user and never changes after creation.
type Vehicle struct {
	ID        string
	OwnerID   string
	Make      string
	Model     string
	Year      int
	CreatedAt time.Time
	UpdatedAt time.Time
}
