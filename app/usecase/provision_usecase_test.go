package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/mocks"
	"kalinga-portal/app/port"
	"kalinga-portal/app/utils/logger"
)

const testDomain = "dlsl.edu.ph"

func newTestIdentity(id uuid.UUID, email, name string, role domain.Role) *domain.Identity {
	now := time.Now().UTC()
	return &domain.Identity{
		ID:        id,
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestProvisionAccount_OfficeSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	profiles := mocks.NewMockProfileStore(ctrl)

	id := uuid.New()
	input := domain.ProvisionInput{
		Kind:       domain.RoleOffice,
		Email:      "cdrrmo@dlsl.edu.ph",
		Password:   "secure-password",
		Name:       "CDRRMO Officer",
		OfficeName: "City Disaster Risk Reduction Office",
	}

	identities.EXPECT().
		CreateIdentity(gomock.Any(), port.CreateIdentityParams{
			Email:        input.Email,
			Password:     input.Password,
			Name:         input.Name,
			Role:         domain.RoleOffice,
			PreConfirmed: true,
		}).
		Return(newTestIdentity(id, input.Email, input.Name, domain.RoleOffice), nil)

	profiles.EXPECT().
		InsertOffice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, profile *domain.OfficeProfile) error {
			assert.Equal(t, id, profile.ID)
			assert.Equal(t, input.OfficeName, profile.OfficeName)
			return nil
		})

	uc := NewProvisionUsecase(identities, profiles, testDomain, logger.NewTestLogger())

	message, err := uc.ProvisionAccount(context.Background(), input)
	require.NoError(t, err)
	assert.Contains(t, message, input.OfficeName)
}

func TestProvisionAccount_StakeholderSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	profiles := mocks.NewMockProfileStore(ctrl)

	id := uuid.New()
	input := domain.ProvisionInput{
		Kind:     domain.RoleStakeholder,
		Email:    "juan.delacruz@dlsl.edu.ph",
		Password: "secure-password",
		Name:     "Juan Dela Cruz",
	}

	// Self-registration cannot attach role metadata, so the saga must follow
	// up with a metadata write before inserting the row.
	identities.EXPECT().
		RegisterIdentity(gomock.Any(), input.Email, input.Password, input.Name).
		Return(newTestIdentity(id, input.Email, input.Name, ""), nil)
	identities.EXPECT().
		UpdateRoleMetadata(gomock.Any(), id, domain.RoleStakeholder).
		Return(nil)
	profiles.EXPECT().
		InsertStakeholder(gomock.Any(), gomock.Any()).
		Return(nil)

	uc := NewProvisionUsecase(identities, profiles, testDomain, logger.NewTestLogger())

	message, err := uc.ProvisionAccount(context.Background(), input)
	require.NoError(t, err)
	assert.Contains(t, message, "check your email")
}

func TestProvisionAccount_MetadataFailureCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	profiles := mocks.NewMockProfileStore(ctrl)

	id := uuid.New()
	input := domain.ProvisionInput{
		Kind:     domain.RoleStakeholder,
		Email:    "juan.delacruz@dlsl.edu.ph",
		Password: "secure-password",
		Name:     "Juan Dela Cruz",
	}

	identities.EXPECT().
		RegisterIdentity(gomock.Any(), input.Email, input.Password, input.Name).
		Return(newTestIdentity(id, input.Email, input.Name, ""), nil)
	identities.EXPECT().
		UpdateRoleMetadata(gomock.Any(), id, domain.RoleStakeholder).
		Return(domain.ErrMetadataUpdate)
	identities.EXPECT().
		DeleteIdentity(gomock.Any(), id).
		Return(nil)

	uc := NewProvisionUsecase(identities, profiles, testDomain, logger.NewTestLogger())

	_, err := uc.ProvisionAccount(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrMetadataUpdate)
}

func TestProvisionAccount_InsertFailureCompensates(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	profiles := mocks.NewMockProfileStore(ctrl)

	id := uuid.New()
	input := domain.ProvisionInput{
		Kind:       domain.RoleOffice,
		Email:      "cdrrmo@dlsl.edu.ph",
		Password:   "secure-password",
		Name:       "CDRRMO Officer",
		OfficeName: "City Disaster Risk Reduction Office",
	}

	identities.EXPECT().
		CreateIdentity(gomock.Any(), gomock.Any()).
		Return(newTestIdentity(id, input.Email, input.Name, domain.RoleOffice), nil)
	profiles.EXPECT().
		InsertOffice(gomock.Any(), gomock.Any()).
		Return(errors.New("duplicate key"))
	identities.EXPECT().
		DeleteIdentity(gomock.Any(), id).
		Return(nil)

	uc := NewProvisionUsecase(identities, profiles, testDomain, logger.NewTestLogger())

	_, err := uc.ProvisionAccount(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrProfileInsert)
}

func TestProvisionAccount_CompensationFailureStillReturnsSagaError(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	profiles := mocks.NewMockProfileStore(ctrl)

	id := uuid.New()
	input := domain.ProvisionInput{
		Kind:       domain.RoleOffice,
		Email:      "cdrrmo@dlsl.edu.ph",
		Password:   "secure-password",
		Name:       "CDRRMO Officer",
		OfficeName: "City Disaster Risk Reduction Office",
	}

	identities.EXPECT().
		CreateIdentity(gomock.Any(), gomock.Any()).
		Return(newTestIdentity(id, input.Email, input.Name, domain.RoleOffice), nil)
	profiles.EXPECT().
		InsertOffice(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))
	identities.EXPECT().
		DeleteIdentity(gomock.Any(), id).
		Return(errors.New("provider unavailable"))

	uc := NewProvisionUsecase(identities, profiles, testDomain, logger.NewTestLogger())

	_, err := uc.ProvisionAccount(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrProfileInsert)
}

func TestProvisionAccount_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input domain.ProvisionInput
	}{
		{
			name: "admin is not provisionable",
			input: domain.ProvisionInput{
				Kind:     domain.RoleAdmin,
				Email:    "admin@dlsl.edu.ph",
				Password: "secure-password",
				Name:     "Admin",
			},
		},
		{
			name: "missing email",
			input: domain.ProvisionInput{
				Kind:     domain.RoleStakeholder,
				Password: "secure-password",
				Name:     "Juan Dela Cruz",
			},
		},
		{
			name: "short password",
			input: domain.ProvisionInput{
				Kind:     domain.RoleStakeholder,
				Email:    "juan@dlsl.edu.ph",
				Password: "short",
				Name:     "Juan Dela Cruz",
			},
		},
		{
			name: "office without office name",
			input: domain.ProvisionInput{
				Kind:     domain.RoleOffice,
				Email:    "cdrrmo@dlsl.edu.ph",
				Password: "secure-password",
				Name:     "CDRRMO Officer",
			},
		},
		{
			name: "stakeholder with outside email",
			input: domain.ProvisionInput{
				Kind:     domain.RoleStakeholder,
				Email:    "juan@gmail.com",
				Password: "secure-password",
				Name:     "Juan Dela Cruz",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			identities := mocks.NewMockIdentityProvider(ctrl)
			profiles := mocks.NewMockProfileStore(ctrl)

			uc := NewProvisionUsecase(identities, profiles, testDomain, logger.NewTestLogger())

			_, err := uc.ProvisionAccount(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestProvisionAccount_InstitutionalMarkerAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	profiles := mocks.NewMockProfileStore(ctrl)

	id := uuid.New()
	// The bare institutional marker anywhere in the address passes the check
	// even off the canonical domain.
	input := domain.ProvisionInput{
		Kind:     domain.RoleStakeholder,
		Email:    "juan.dlsl@gmail.com",
		Password: "secure-password",
		Name:     "Juan Dela Cruz",
	}

	identities.EXPECT().
		RegisterIdentity(gomock.Any(), input.Email, input.Password, input.Name).
		Return(newTestIdentity(id, input.Email, input.Name, ""), nil)
	identities.EXPECT().
		UpdateRoleMetadata(gomock.Any(), id, domain.RoleStakeholder).
		Return(nil)
	profiles.EXPECT().
		InsertStakeholder(gomock.Any(), gomock.Any()).
		Return(nil)

	uc := NewProvisionUsecase(identities, profiles, testDomain, logger.NewTestLogger())

	_, err := uc.ProvisionAccount(context.Background(), input)
	assert.NoError(t, err)
}
