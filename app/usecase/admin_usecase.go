package usecase

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/port"
)

// AdminUsecase validates the statically configured administrator credential.
// The administrator is not an identity-provider account: trust rests on the
// server configuration and the admin session cookie alone.
type AdminUsecase struct {
	email    string
	password string
	name     string
	logger   *slog.Logger
}

// NewAdminUsecase creates the administrator authenticator from the configured
// credential. Empty email or password leaves the admin path unconfigured;
// sign-in then reports a server configuration error rather than a credential
// mismatch.
func NewAdminUsecase(email, password, name string, logger *slog.Logger) port.AdminAuthenticator {
	return &AdminUsecase{
		email:    email,
		password: password,
		name:     name,
		logger:   logger.With("component", "admin_usecase"),
	}
}

// SignIn checks the submitted credential against configuration. Email matches
// case-insensitively; the password comparison is constant time.
func (u *AdminUsecase) SignIn(_ context.Context, email, password string) error {
	if u.email == "" || u.password == "" {
		u.logger.Error("administrator credential is not configured")
		return domain.ErrServerConfig
	}

	emailOK := strings.EqualFold(strings.TrimSpace(email), u.email)
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(u.password)) == 1

	if !emailOK || !passwordOK {
		u.logger.Warn("administrator sign-in rejected")
		return domain.ErrInvalidCredentials
	}

	u.logger.Info("administrator signed in")
	return nil
}

// Profile returns the synthetic administrator profile.
func (u *AdminUsecase) Profile() *domain.AdminProfile {
	return domain.NewAdminProfile(u.name, u.email)
}
