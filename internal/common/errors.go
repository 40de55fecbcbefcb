package common

import "errors"

var (
	// Auth errors. ErrInvalidCredentials is shown to the user as is and must
	// not reveal which of the two fields was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyInUse  = errors.New("email already in use")

	// Form validation errors.
	ErrInvalidEmail     = errors.New("enter a valid email")
	ErrPasswordTooShort = errors.New("min 8 characters")
)
