package handlers

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"kalinga-portal/app/utils/apperrors"
)

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse is the JSON body for operations whose result is a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps a usecase error onto the HTTP surface. The stable code and
// short message go to the client; the cause stays in the log.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.FromDomain(err)
	}

	if appErr.StatusCode >= 500 {
		logger.Error("request failed",
			"path", c.Request().URL.Path,
			"code", appErr.Code,
			"error", appErr)
	} else {
		logger.Warn("request rejected",
			"path", c.Request().URL.Path,
			"code", appErr.Code,
			"error", appErr)
	}

	return c.JSON(appErr.StatusCode, ErrorResponse{
		Error: appErr.Message,
		Code:  string(appErr.Code),
	})
}
