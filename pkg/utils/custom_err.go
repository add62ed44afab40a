package utils

import "errors"

var (
	ErrMissingRequiredField   = errors.New("missing required fields")
	ErrPlanNotFound           = errors.New("plan not found")
	ErrNoPlansFound           = errors.New("no travel plans found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidResetToken      = errors.New("invalid or expired reset token")
	ErrGuideUnavailable       = errors.New("guide generation unavailable")
	ErrUpstreamUnavailable    = errors.New("upstream service unavailable")
	ErrDatabaseError          = errors.New("database error")
)
