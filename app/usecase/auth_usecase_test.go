package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/mocks"
	"kalinga-portal/app/utils/logger"
)

func TestLogin_ResolvesProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	resolver := mocks.NewMockProfileResolver(ctrl)

	id := uuid.New()
	session := &domain.Session{ID: "sess", Token: "token", ExpiresAt: time.Now().Add(time.Hour)}

	identities.EXPECT().
		SignIn(gomock.Any(), "juan@dlsl.edu.ph", "secure-password").
		Return(session, nil)
	resolver.EXPECT().
		ResolveProfile(gomock.Any(), domain.RequestSession{Token: "token"}).
		Return(&domain.StakeholderProfile{
			ProfileCommon: domain.ProfileCommon{ID: id, Name: "Juan"},
		}, nil)

	uc := NewAuthUsecase(identities, resolver, logger.NewTestLogger())

	result, err := uc.Login(context.Background(), "juan@dlsl.edu.ph", "secure-password")
	require.NoError(t, err)
	assert.Equal(t, "token", result.Session.Token)
	assert.Equal(t, domain.RoleStakeholder, result.Profile.Role())
}

func TestLogin_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	resolver := mocks.NewMockProfileResolver(ctrl)

	identities.EXPECT().
		SignIn(gomock.Any(), "juan@dlsl.edu.ph", "wrong").
		Return(nil, domain.ErrInvalidCredentials)

	uc := NewAuthUsecase(identities, resolver, logger.NewTestLogger())

	_, err := uc.Login(context.Background(), "juan@dlsl.edu.ph", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnresolvableSessionIsRevoked(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	resolver := mocks.NewMockProfileResolver(ctrl)

	session := &domain.Session{ID: "sess", Token: "token"}

	identities.EXPECT().
		SignIn(gomock.Any(), "juan@dlsl.edu.ph", "secure-password").
		Return(session, nil)
	resolver.EXPECT().
		ResolveProfile(gomock.Any(), domain.RequestSession{Token: "token"}).
		Return(nil, domain.ErrProfileMissing)
	identities.EXPECT().
		SignOut(gomock.Any(), "token").
		Return(nil)

	uc := NewAuthUsecase(identities, resolver, logger.NewTestLogger())

	_, err := uc.Login(context.Background(), "juan@dlsl.edu.ph", "secure-password")
	assert.ErrorIs(t, err, domain.ErrProfileMissing)
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	resolver := mocks.NewMockProfileResolver(ctrl)

	identities.EXPECT().SignOut(gomock.Any(), "token").Return(nil)

	uc := NewAuthUsecase(identities, resolver, logger.NewTestLogger())

	assert.NoError(t, uc.Logout(context.Background(), "token"))
}

func TestLogout_EmptyTokenIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	resolver := mocks.NewMockProfileResolver(ctrl)

	uc := NewAuthUsecase(identities, resolver, logger.NewTestLogger())

	assert.NoError(t, uc.Logout(context.Background(), ""))
}
