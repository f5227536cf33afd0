package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/port"
)

// UpdateUsecase applies self-service profile edits. Role, email and id are
// immutable after provisioning; only the editable fields travel through here.
type UpdateUsecase struct {
	profiles port.ProfileStore
	resolver port.ProfileResolver
	logger   *slog.Logger
}

// NewUpdateUsecase creates the profile updater.
func NewUpdateUsecase(
	profiles port.ProfileStore,
	resolver port.ProfileResolver,
	logger *slog.Logger,
) port.AccountUpdater {
	return &UpdateUsecase{
		profiles: profiles,
		resolver: resolver,
		logger:   logger.With("component", "update_usecase"),
	}
}

// UpdateProfile edits the caller's own profile row. The administrator profile
// is configuration, not data, and cannot be edited here.
func (u *UpdateUsecase) UpdateProfile(ctx context.Context, session domain.RequestSession, update domain.ProfileUpdate) (domain.Profile, error) {
	if strings.TrimSpace(update.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}

	caller, err := u.resolver.ResolveProfile(ctx, session)
	if err != nil {
		return nil, err
	}

	switch caller.Role() {
	case domain.RoleOffice:
		profile, err := u.profiles.UpdateOffice(ctx, caller.Common().ID, update)
		if err != nil {
			return nil, err
		}
		u.logger.Info("office profile updated", "id", profile.ID)
		return profile, nil
	case domain.RoleStakeholder:
		profile, err := u.profiles.UpdateStakeholder(ctx, caller.Common().ID, update)
		if err != nil {
			return nil, err
		}
		u.logger.Info("stakeholder profile updated", "id", profile.ID)
		return profile, nil
	default:
		return nil, domain.ErrUnauthorized
	}
}
