package auth

import "errors"

// The user-facing authentication failures are a small fixed set; anything
// else surfaces as ErrUnknown so internals never leak into responses.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidRole        = errors.New("role must be 'patient' or 'professional'")
	ErrProfileMissing     = errors.New("no profile found for this account")
	ErrUnknown            = errors.New("authentication failed")
)
