package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"kalinga-portal/app/domain"
)

// ProfileStore is the contract with the per-role profile tables. Get and
// Delete report domain.ErrProfileNotFound when no row exists for the id;
// Exists probes are the cheap membership checks used by the resolution
// fallback chain and the deletion coordinator.
type ProfileStore interface {
	InsertOffice(ctx context.Context, profile *domain.OfficeProfile) error
	InsertStakeholder(ctx context.Context, profile *domain.StakeholderProfile) error

	GetOffice(ctx context.Context, id uuid.UUID) (*domain.OfficeProfile, error)
	GetStakeholder(ctx context.Context, id uuid.UUID) (*domain.StakeholderProfile, error)

	ExistsOffice(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsStakeholder(ctx context.Context, id uuid.UUID) (bool, error)

	UpdateOffice(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.OfficeProfile, error)
	UpdateStakeholder(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.StakeholderProfile, error)

	DeleteOffice(ctx context.Context, id uuid.UUID) error
	DeleteStakeholder(ctx context.Context, id uuid.UUID) error

	ListOffices(ctx context.Context) ([]*domain.OfficeProfile, error)
	ListStakeholders(ctx context.Context) ([]*domain.StakeholderProfile, error)
}
