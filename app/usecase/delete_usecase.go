package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/port"
)

// DeleteUsecase removes an account: the profile row first, then the identity.
// There is no compensating rollback on this path. A failed identity delete
// after a successful row delete is surfaced as partial state rather than
// re-inserting the row, because the row delete is idempotent and the whole
// operation can simply be retried.
type DeleteUsecase struct {
	identities port.IdentityProvider
	profiles   port.ProfileStore
	resolver   port.ProfileResolver
	logger     *slog.Logger
}

// NewDeleteUsecase creates the account deletion coordinator.
func NewDeleteUsecase(
	identities port.IdentityProvider,
	profiles port.ProfileStore,
	resolver port.ProfileResolver,
	logger *slog.Logger,
) port.AccountRemover {
	return &DeleteUsecase{
		identities: identities,
		profiles:   profiles,
		resolver:   resolver,
		logger:     logger.With("component", "delete_usecase"),
	}
}

// DeleteAccount removes targetID, or the caller's own account when targetID is
// the zero UUID. Cross-deletion requires the caller to resolve as admin. The
// configured administrator account is never deletable: it has no identity and
// no row, only configuration.
func (u *DeleteUsecase) DeleteAccount(ctx context.Context, session domain.RequestSession, targetID uuid.UUID) error {
	caller, err := u.resolver.ResolveProfile(ctx, session)
	if err != nil {
		return err
	}

	self := targetID == uuid.Nil || targetID == caller.Common().ID

	if caller.Role() == domain.RoleAdmin && self {
		return domain.ErrUnauthorized
	}
	if caller.Role() != domain.RoleAdmin && !self {
		return domain.ErrUnauthorized
	}

	if self {
		targetID = caller.Common().ID
	}

	role, err := u.locate(ctx, targetID)
	if err != nil {
		return err
	}

	if err := u.removeRow(ctx, role, targetID); err != nil {
		return &domain.DeletionError{Cause: err}
	}

	if err := u.identities.DeleteIdentity(ctx, targetID); err != nil {
		u.logger.Error("identity delete failed after profile row removal",
			"target_id", targetID,
			"role", role,
			"error", err)
		return &domain.DeletionError{ProfileRemoved: true, Cause: err}
	}

	u.logger.Info("account deleted",
		"target_id", targetID,
		"role", role,
		"by_admin", caller.Role() == domain.RoleAdmin)

	if self && session.Token != "" {
		// The caller's session is now dangling at the provider; revoke it so
		// the browser cookie stops resolving. Failure here is cosmetic.
		if err := u.identities.SignOut(ctx, session.Token); err != nil {
			u.logger.Warn("post-deletion sign-out failed", "error", err)
		}
	}

	return nil
}

// locate finds which role table holds the target. Office accounts are probed
// first; they are the common subjects of administrative deletion.
func (u *DeleteUsecase) locate(ctx context.Context, id uuid.UUID) (domain.Role, error) {
	found, err := u.profiles.ExistsOffice(ctx, id)
	if err != nil {
		return "", err
	}
	if found {
		return domain.RoleOffice, nil
	}

	found, err = u.profiles.ExistsStakeholder(ctx, id)
	if err != nil {
		return "", err
	}
	if found {
		return domain.RoleStakeholder, nil
	}

	return "", domain.ErrTargetNotFound
}

func (u *DeleteUsecase) removeRow(ctx context.Context, role domain.Role, id uuid.UUID) error {
	var err error
	switch role {
	case domain.RoleOffice:
		err = u.profiles.DeleteOffice(ctx, id)
	case domain.RoleStakeholder:
		err = u.profiles.DeleteStakeholder(ctx, id)
	}
	if errors.Is(err, domain.ErrProfileNotFound) {
		// The row vanished between probe and delete; treat the retry of a
		// half-finished deletion as still having its row gone.
		return nil
	}
	return err
}
