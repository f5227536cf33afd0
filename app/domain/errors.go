package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the account saga, resolution and routing logic. All of
// these are returned as typed results from the usecase boundary, never thrown
// past it.
var (
	// ErrValidation marks missing or malformed caller input; the caller may
	// correct and resubmit.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials covers bad passwords and unknown accounts alike so
	// the two cases are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrServerConfig marks missing administrator configuration. Fatal until
	// fixed; surfaced as a generic message, never echoing configuration state.
	ErrServerConfig = errors.New("server configuration error")

	// ErrMetadataUpdate marks a failed role-metadata write mid-saga. Always
	// followed by identity compensation.
	ErrMetadataUpdate = errors.New("failed to set account role")

	// ErrProfileInsert marks a failed profile-row insert mid-saga. Always
	// followed by identity compensation.
	ErrProfileInsert = errors.New("profile creation failed")

	// ErrProvisioning is the general provisioning failure, including the
	// provider's duplicate-email rejection.
	ErrProvisioning = errors.New("account provisioning failed")

	// ErrNotAuthenticated means no trusted session accompanied the request.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrProfileMissing is the data-integrity case: role metadata names a
	// table but no row exists there. Distinct from ErrNotAuthenticated.
	ErrProfileMissing = errors.New("profile not found for authenticated identity")

	// ErrProfileNotFound is the plain no-row result from a profile probe.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrTargetNotFound means the deletion probe exhausted every role table.
	ErrTargetNotFound = errors.New("target profile not found")

	// ErrUnauthorized marks a failed role check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnknownRole marks a resolved role value outside the closed set.
	ErrUnknownRole = errors.New("unknown role")
)

// DeletionError reports a failed account deletion. Deletion has no
// compensating rollback: when the profile row was already removed but the
// identity delete failed, ProfileRemoved is true and the partial state is
// surfaced to the caller instead of being silently retried. Re-running the
// delete is safe because the profile delete is idempotent.
type DeletionError struct {
	ProfileRemoved bool
	Cause          error
}

func (e *DeletionError) Error() string {
	if e.ProfileRemoved {
		return fmt.Sprintf("account deletion incomplete, profile removed but identity remains: %v", e.Cause)
	}
	return fmt.Sprintf("account deletion failed: %v", e.Cause)
}

func (e *DeletionError) Unwrap() error { return e.Cause }
