package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/port"
)

// ResolveUsecase maps an authenticated request to exactly one role and
// profile. Role metadata on the identity is the fast path; when the metadata
// write has not caught up the resolver probes the profile tables directly,
// stakeholder first because self-registration is the path where metadata lags.
type ResolveUsecase struct {
	identities port.IdentityProvider
	profiles   port.ProfileStore
	admin      port.AdminAuthenticator
	logger     *slog.Logger
}

// NewResolveUsecase creates the profile resolver.
func NewResolveUsecase(
	identities port.IdentityProvider,
	profiles port.ProfileStore,
	admin port.AdminAuthenticator,
	logger *slog.Logger,
) port.ProfileResolver {
	return &ResolveUsecase{
		identities: identities,
		profiles:   profiles,
		admin:      admin,
		logger:     logger.With("component", "resolve_usecase"),
	}
}

// ResolveProfile resolves the caller's unified profile. Administrator sessions
// never touch the identity provider or the profile tables; their profile is
// synthesized from server configuration.
func (u *ResolveUsecase) ResolveProfile(ctx context.Context, session domain.RequestSession) (domain.Profile, error) {
	if session.Admin {
		return u.admin.Profile(), nil
	}

	if session.Token == "" {
		return nil, domain.ErrNotAuthenticated
	}

	identity, err := u.identities.GetCurrentIdentity(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	if identity.Role == "" {
		return u.resolveByProbe(ctx, identity)
	}

	role, err := domain.ParseRole(string(identity.Role))
	if err != nil {
		u.logger.Error("identity carries unrecognized role metadata",
			"identity_id", identity.ID,
			"role", identity.Role)
		return nil, err
	}

	switch role {
	case domain.RoleAdmin:
		// Metadata-tagged administrators are resolved from the identity itself,
		// not from a profile table.
		return &domain.AdminProfile{
			ProfileCommon: domain.ProfileCommon{
				ID:        identity.ID,
				Name:      identity.Name,
				Email:     identity.Email,
				CreatedAt: identity.CreatedAt,
				UpdatedAt: identity.UpdatedAt,
			},
		}, nil
	case domain.RoleOffice:
		profile, err := u.profiles.GetOffice(ctx, identity.ID)
		return u.checkIntegrity(profile, err, identity, role)
	case domain.RoleStakeholder:
		profile, err := u.profiles.GetStakeholder(ctx, identity.ID)
		return u.checkIntegrity(profile, err, identity, role)
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRole, role)
}

// resolveByProbe handles identities whose role metadata is absent. The
// stakeholder table is probed before the office table; a hit backfills the
// metadata so the next request takes the fast path.
func (u *ResolveUsecase) resolveByProbe(ctx context.Context, identity *domain.Identity) (domain.Profile, error) {
	found, err := u.profiles.ExistsStakeholder(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if found {
		profile, err := u.profiles.GetStakeholder(ctx, identity.ID)
		if err != nil {
			return nil, err
		}
		u.backfillRole(ctx, identity, domain.RoleStakeholder)
		return profile, nil
	}

	found, err = u.profiles.ExistsOffice(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if found {
		profile, err := u.profiles.GetOffice(ctx, identity.ID)
		if err != nil {
			return nil, err
		}
		u.backfillRole(ctx, identity, domain.RoleOffice)
		return profile, nil
	}

	u.logger.Warn("authenticated identity has no profile row in any table",
		"identity_id", identity.ID)
	return nil, domain.ErrProfileMissing
}

// checkIntegrity converts a no-row result on the metadata fast path into the
// integrity error: the metadata named a table but the row is gone.
func (u *ResolveUsecase) checkIntegrity(profile domain.Profile, err error, identity *domain.Identity, role domain.Role) (domain.Profile, error) {
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			u.logger.Error("role metadata names a table without a matching row",
				"identity_id", identity.ID,
				"role", role)
			return nil, domain.ErrProfileMissing
		}
		return nil, err
	}
	return profile, nil
}

// backfillRole writes the probed role onto the identity. Best effort only; the
// next request will probe again if the write fails.
func (u *ResolveUsecase) backfillRole(ctx context.Context, identity *domain.Identity, role domain.Role) {
	if err := u.identities.UpdateRoleMetadata(ctx, identity.ID, role); err != nil {
		u.logger.Warn("role metadata backfill failed",
			"identity_id", identity.ID,
			"role", role,
			"error", err)
	}
}
