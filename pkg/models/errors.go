package models

import "errors"

// Common errors for store operations.
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user already exists")
	ErrUserDisabled  = errors.New("user account is disabled")

	// Settings errors
	ErrSettingsNotFound = errors.New("settings not found")

	// Cleanup run errors
	ErrRunNotFound  = errors.New("cleanup run not found")
	ErrDuplicateRun = errors.New("cleanup run already exists")
)
