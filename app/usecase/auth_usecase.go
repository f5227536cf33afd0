package usecase

import (
	"context"
	"log/slog"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/port"
)

// AuthUsecase signs office and stakeholder accounts in and out. A login only
// succeeds when the fresh session also resolves to a profile; an identity with
// no resolvable role must never hold a live session.
type AuthUsecase struct {
	identities port.IdentityProvider
	resolver   port.ProfileResolver
	logger     *slog.Logger
}

// NewAuthUsecase creates the session authenticator.
func NewAuthUsecase(
	identities port.IdentityProvider,
	resolver port.ProfileResolver,
	logger *slog.Logger,
) port.SessionAuthenticator {
	return &AuthUsecase{
		identities: identities,
		resolver:   resolver,
		logger:     logger.With("component", "auth_usecase"),
	}
}

// Login performs provider sign-in and resolves the session to a profile. When
// resolution fails the session is revoked before the resolution error is
// returned.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*port.LoginResult, error) {
	session, err := u.identities.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile, err := u.resolver.ResolveProfile(ctx, domain.RequestSession{Token: session.Token})
	if err != nil {
		u.logger.Warn("login session could not be resolved to a profile, revoking",
			"error", err)
		if revokeErr := u.identities.SignOut(context.WithoutCancel(ctx), session.Token); revokeErr != nil {
			u.logger.Error("failed to revoke unresolvable login session", "error", revokeErr)
		}
		return nil, err
	}

	u.logger.Info("login succeeded",
		"identity_id", profile.Common().ID,
		"role", profile.Role())

	return &port.LoginResult{Session: session, Profile: profile}, nil
}

// Logout revokes the session behind the token.
func (u *AuthUsecase) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}
	return u.identities.SignOut(ctx, sessionToken)
}
