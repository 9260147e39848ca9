package usecase

import "errors"

var (
	// ErrInvalidUserID is returned when the owner identifier is missing or malformed.
	ErrInvalidUserID = errors.New("invalid or missing user id")
	// ErrInvalidVehicle is returned when make, model or year is missing.
	ErrInvalidVehicle = errors.New("make, model and year are required")
	// ErrOwnerNotFound is returned when owner enforcement is on and the user does not exist.
	ErrOwnerNotFound = errors.New("owner not found")
)
