package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"kalinga-portal/app/domain"
)

// CreateIdentityParams describes an administratively created identity. Role
// metadata and the verified-email flag are attached at creation time, which
// the provider supports on this path.
type CreateIdentityParams struct {
	Email        string
	Password     string
	Name         string
	Role         domain.Role
	PreConfirmed bool
}

// IdentityProvider is the contract with the external identity service. All
// calls are blocking with a bounded timeout owned by the implementation; a
// timeout is reported as the call's failure.
type IdentityProvider interface {
	// CreateIdentity creates an identity through the provider's admin surface
	// with role metadata and confirmation state set atomically.
	CreateIdentity(ctx context.Context, params CreateIdentityParams) (*domain.Identity, error)

	// RegisterIdentity creates an identity through self-service registration.
	// This path cannot attach role metadata; the returned identity has an
	// empty Role and the caller must follow up with UpdateRoleMetadata.
	RegisterIdentity(ctx context.Context, email, password, name string) (*domain.Identity, error)

	// UpdateRoleMetadata sets the role tag on an existing identity.
	UpdateRoleMetadata(ctx context.Context, id uuid.UUID, role domain.Role) error

	// DeleteIdentity removes the identity; used both for account deletion and
	// for saga compensation.
	DeleteIdentity(ctx context.Context, id uuid.UUID) error

	// SignIn performs password-based sign-in and returns a session.
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)

	// GetCurrentIdentity resolves a session token to its identity, or
	// domain.ErrNotAuthenticated when the token is absent or invalid.
	GetCurrentIdentity(ctx context.Context, sessionToken string) (*domain.Identity, error)

	// RefreshSession revalidates the session token and returns the current
	// session state, including a rotated token when the provider rotated it.
	RefreshSession(ctx context.Context, sessionToken string) (*domain.Session, error)

	// SignOut revokes the session behind the token.
	SignOut(ctx context.Context, sessionToken string) error
}
