package services

import "errors"

// Sentinel errors for explicit error handling
// These errors allow callers to distinguish between different failure modes
// using errors.Is() instead of string matching

var (
	// ErrInvalidCredentials indicates login failed. Unknown username and
	// wrong password collapse into this one error so responses cannot be
	// used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired indicates the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates a bad signature or malformed token.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrWeakPassword indicates the supplied password is too short.
	ErrWeakPassword = errors.New("password must be at least 8 characters")

	// ErrInvalidUsername indicates the supplied username is out of bounds.
	ErrInvalidUsername = errors.New("username must be between 1 and 255 characters")
)
