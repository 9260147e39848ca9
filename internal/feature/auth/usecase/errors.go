package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRegistrationRequired is returned when an unknown email logs in without a display name.
	ErrRegistrationRequired = errors.New("user not found, registration required")

	// ErrInvalidInput is returned when email or password is missing or unusable.
	ErrInvalidInput = errors.New("invalid email or password input")
)
