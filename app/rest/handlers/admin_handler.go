package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/port"
	custommw "kalinga-portal/app/rest/middleware"
)

// AdminHandler serves the administrator surface: static-credential sign-in,
// office account creation, listings and account deletion.
type AdminHandler struct {
	admin       port.AdminAuthenticator
	provisioner port.AccountProvisioner
	remover     port.AccountRemover
	profiles    port.ProfileStore
	production  bool
	logger      *slog.Logger
}

// NewAdminHandler creates the administrator handler.
func NewAdminHandler(
	admin port.AdminAuthenticator,
	provisioner port.AccountProvisioner,
	remover port.AccountRemover,
	profiles port.ProfileStore,
	production bool,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		admin:       admin,
		provisioner: provisioner,
		remover:     remover,
		profiles:    profiles,
		production:  production,
		logger:      logger.With("component", "admin_handler"),
	}
}

// Login validates the static administrator credential and issues the admin
// session cookie.
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required"})
	}

	if err := h.admin.SignIn(c.Request().Context(), req.Email, req.Password); err != nil {
		return respondError(c, h.logger, err)
	}

	c.SetCookie(domain.NewAdminCookie(h.production))

	profile := h.admin.Profile()
	return c.JSON(http.StatusOK, SessionResponse{
		Role:     domain.RoleAdmin,
		Redirect: domain.RoleAdmin.LandingPath(),
		User:     profile,
	})
}

// Logout expires the administrator session cookie.
func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(domain.ExpiredAdminCookie(h.production))
	return c.JSON(http.StatusOK, MessageResponse{Message: "signed out"})
}

// OfficeCreateRequest is the administrator's office provisioning payload.
type OfficeCreateRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8"`
	Name       string  `json:"name" validate:"required"`
	OfficeName string  `json:"office_name" validate:"required"`
	Age        *int    `json:"age,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	Contact    *string `json:"contact,omitempty"`
}

// CreateOffice provisions an office account through the creation saga.
func (h *AdminHandler) CreateOffice(c echo.Context) error {
	var req OfficeCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	message, err := h.provisioner.ProvisionAccount(c.Request().Context(), domain.ProvisionInput{
		Kind:       domain.RoleOffice,
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		OfficeName: req.OfficeName,
		Age:        req.Age,
		Gender:     req.Gender,
		Contact:    req.Contact,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: message})
}

// ListOffices returns every office profile, newest first.
func (h *AdminHandler) ListOffices(c echo.Context) error {
	offices, err := h.profiles.ListOffices(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"offices": offices,
		"count":   len(offices),
	})
}

// ListStakeholders returns every stakeholder profile, newest first.
func (h *AdminHandler) ListStakeholders(c echo.Context) error {
	stakeholders, err := h.profiles.ListStakeholders(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"stakeholders": stakeholders,
		"count":        len(stakeholders),
	})
}

// DeleteAccount removes the account named by the path parameter.
func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account id"})
	}

	session := custommw.RequestSessionFrom(c)
	if err := h.remover.DeleteAccount(c.Request().Context(), session, targetID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "account deleted"})
}
