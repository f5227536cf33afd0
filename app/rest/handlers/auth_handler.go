package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/port"
	custommw "kalinga-portal/app/rest/middleware"
)

// AuthHandler serves sign-in, sign-out, stakeholder signup and role
// resolution for office and stakeholder accounts.
type AuthHandler struct {
	auth        port.SessionAuthenticator
	provisioner port.AccountProvisioner
	resolver    port.ProfileResolver
	production  bool
	logger      *slog.Logger
}

// NewAuthHandler creates the authentication handler.
func NewAuthHandler(
	auth port.SessionAuthenticator,
	provisioner port.AccountProvisioner,
	resolver port.ProfileResolver,
	production bool,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		auth:        auth,
		provisioner: provisioner,
		resolver:    resolver,
		production:  production,
		logger:      logger.With("component", "auth_handler"),
	}
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse reports the resolved role and where to send the browser.
type SessionResponse struct {
	Role     domain.Role    `json:"role"`
	Redirect string         `json:"redirect"`
	User     domain.Profile `json:"user"`
}

// Login signs a user in, resolves their role and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required"})
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	custommw.WriteSessionCookie(c, result.Session.Token, result.Session.ExpiresAt, h.production)

	return c.JSON(http.StatusOK, SessionResponse{
		Role:     result.Profile.Role(),
		Redirect: result.Profile.Role().LandingPath(),
		User:     result.Profile,
	})
}

// Logout revokes the caller's session and clears the cookie. Always succeeds
// from the browser's point of view.
func (h *AuthHandler) Logout(c echo.Context) error {
	session := custommw.RequestSessionFrom(c)

	if err := h.auth.Logout(c.Request().Context(), session.Token); err != nil {
		h.logger.Warn("logout failed upstream, clearing cookie anyway", "error", err)
	}

	custommw.ClearSessionCookie(c, h.production)
	return c.JSON(http.StatusOK, MessageResponse{Message: "signed out"})
}

// SignupRequest is the public stakeholder self-registration payload.
type SignupRequest struct {
	Email            string  `json:"email" validate:"required,email"`
	Password         string  `json:"password" validate:"required,min=8"`
	Name             string  `json:"name" validate:"required"`
	Age              *int    `json:"age,omitempty"`
	Community        *string `json:"community,omitempty"`
	Contact          *string `json:"contact,omitempty"`
	PermanentAddress *string `json:"permanent_address,omitempty"`
	CurrentAddress   *string `json:"current_address,omitempty"`
}

// Signup provisions a stakeholder account through the creation saga.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	message, err := h.provisioner.ProvisionAccount(c.Request().Context(), domain.ProvisionInput{
		Kind:             domain.RoleStakeholder,
		Email:            req.Email,
		Password:         req.Password,
		Name:             req.Name,
		Age:              req.Age,
		Community:        req.Community,
		Contact:          req.Contact,
		PermanentAddress: req.PermanentAddress,
		CurrentAddress:   req.CurrentAddress,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: message})
}

// Role resolves the caller's role and landing path from their session.
func (h *AuthHandler) Role(c echo.Context) error {
	profile, err := h.resolver.ResolveProfile(c.Request().Context(), custommw.RequestSessionFrom(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SessionResponse{
		Role:     profile.Role(),
		Redirect: profile.Role().LandingPath(),
		User:     profile,
	})
}
