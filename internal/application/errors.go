package application

import "errors"

// Error taxonomy of the identity and task services. Handlers map these to
// HTTP statuses; credential-related failures stay generic on the wire.
var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrNoPendingCode      = errors.New("no pending verification")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrCodeInvalid        = errors.New("invalid verification code")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMailDispatch       = errors.New("verification email dispatch failed")

	ErrTaskNotFound = errors.New("task not found")
)
