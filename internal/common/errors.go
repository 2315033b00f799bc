package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrUnavailable wraps persistence and broker failures. It is the only
	// category a caller may retry.
	ErrUnavailable = errors.New("service unavailable")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")
	ErrForbidden  = errors.New("forbidden")

	// Authentication errors returned by the orchestrator.
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidAccessToken   = errors.New("invalid access token")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrUserNotFound         = errors.New("user not found")
	ErrTooManyLoginAttempts = errors.New("too many login attempts")

	// Registration conflicts.
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUserName = errors.New("username already taken")
	ErrAlreadyMember     = errors.New("already a member")

	// Token codec errors.
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
)
