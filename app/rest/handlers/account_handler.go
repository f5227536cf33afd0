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

// AccountHandler serves the signed-in user's own profile: read, update and
// self-deletion.
type AccountHandler struct {
	resolver   port.ProfileResolver
	updater    port.AccountUpdater
	remover    port.AccountRemover
	production bool
	logger     *slog.Logger
}

// NewAccountHandler creates the account handler.
func NewAccountHandler(
	resolver port.ProfileResolver,
	updater port.AccountUpdater,
	remover port.AccountRemover,
	production bool,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		resolver:   resolver,
		updater:    updater,
		remover:    remover,
		production: production,
		logger:     logger.With("component", "account_handler"),
	}
}

// GetProfile returns the caller's resolved profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	profile, err := h.resolver.ResolveProfile(c.Request().Context(), custommw.RequestSessionFrom(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies edits to the caller's own profile row.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var update domain.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	profile, err := h.updater.UpdateProfile(c.Request().Context(), custommw.RequestSessionFrom(c), update)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// DeleteSelf removes the caller's own account and clears the session cookie.
func (h *AccountHandler) DeleteSelf(c echo.Context) error {
	session := custommw.RequestSessionFrom(c)

	if err := h.remover.DeleteAccount(c.Request().Context(), session, uuid.Nil); err != nil {
		return respondError(c, h.logger, err)
	}

	custommw.ClearSessionCookie(c, h.production)
	return c.JSON(http.StatusOK, MessageResponse{Message: "account deleted"})
}
