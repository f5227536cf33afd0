package port

//go:generate mockgen -source=account_port.go -destination=../mocks/mock_account_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"kalinga-portal/app/domain"
)

// AccountProvisioner orchestrates the identity-plus-profile creation saga.
type AccountProvisioner interface {
	// ProvisionAccount runs the ordered creation steps with compensating
	// rollback. On return, success or failure, no sign-in-capable identity
	// exists without its profile row. The returned string is the
	// role-appropriate confirmation message.
	ProvisionAccount(ctx context.Context, input domain.ProvisionInput) (string, error)
}

// ProfileResolver maps an authenticated request to exactly one role and
// profile.
type ProfileResolver interface {
	// ResolveProfile returns the caller's unified profile, or
	// domain.ErrNotAuthenticated / domain.ErrProfileMissing /
	// domain.ErrUnknownRole when resolution cannot produce one.
	ResolveProfile(ctx context.Context, session domain.RequestSession) (domain.Profile, error)
}

// AccountRemover locates and removes a profile row together with its identity.
type AccountRemover interface {
	// DeleteAccount removes targetID, or the caller's own account when
	// targetID is uuid.Nil. Cross-deletion requires the caller to have
	// resolved role admin; administrator self-deletion is always rejected.
	DeleteAccount(ctx context.Context, session domain.RequestSession, targetID uuid.UUID) error
}

// AdminAuthenticator validates the statically configured administrator
// credential and describes the resulting synthetic profile.
type AdminAuthenticator interface {
	// SignIn checks email (case-insensitive) and password against server
	// configuration. domain.ErrServerConfig when the credential is not
	// configured; domain.ErrInvalidCredentials on mismatch.
	SignIn(ctx context.Context, email, password string) error

	// Profile returns the configured administrator's synthetic profile.
	Profile() *domain.AdminProfile
}

// LoginResult pairs the provider session with the profile resolved for it.
type LoginResult struct {
	Session *domain.Session
	Profile domain.Profile
}

// SessionAuthenticator signs office and stakeholder accounts in and out
// through the identity provider.
type SessionAuthenticator interface {
	// Login signs in and resolves the resulting session to a profile. A session
	// that cannot be resolved to a profile is revoked before the error is
	// returned, so no half-usable session survives a failed login.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Logout revokes the session behind the token. An already-dead session is
	// not an error.
	Logout(ctx context.Context, sessionToken string) error
}

// AccountUpdater applies self-service profile edits for office and
// stakeholder accounts.
type AccountUpdater interface {
	UpdateProfile(ctx context.Context, session domain.RequestSession, update domain.ProfileUpdate) (domain.Profile, error)
}
