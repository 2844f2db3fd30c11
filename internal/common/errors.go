// Package common defines shared constants and sentinel errors used across
// the storage, service, and cli layers of eduterm. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrStorageCorrupt = errors.New("storage corrupt")

	// Session and authorization errors. ErrAuthFailed is deliberately
	// generic: the login path does not distinguish an unknown username
	// from a wrong password.
	ErrAuthFailed       = errors.New("invalid credentials")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPermissionDenied = errors.New("permission denied")

	// Account deletion guards.
	ErrAdminSelfDelete        = errors.New("admin accounts must be deleted via the administrative path")
	ErrSelfDeleteViaAdminPath = errors.New("own account must be deleted via the account menu")
	ErrNotConfirmed           = errors.New("confirmation mismatch")

	// Field validation.
	ErrValidation = errors.New("validation error")

	// Certificate eligibility.
	ErrNotEnrolled  = errors.New("not enrolled in course")
	ErrNotCompleted = errors.New("course not completed")

	// Artifact rendering.
	ErrRenderFailed = errors.New("render failed")
)
