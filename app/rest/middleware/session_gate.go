package middleware

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/port"
)

// SessionCookieName is the browser cookie carrying the provider session token
// for office and stakeholder accounts.
const SessionCookieName = "oks_session"

// requestSessionKey stores the per-request authentication context in Echo.
const requestSessionKey = "request_session"

// staticAssetPattern matches paths the gate never inspects: bundled assets,
// favicons and framework-internal files.
var staticAssetPattern = regexp.MustCompile(
	`(^/static/|^/assets/|^/_next/|^/favicon)|\.(css|js|map|ico|png|jpg|jpeg|svg|gif|webp|woff2?|ttf)$`)

// SessionGate builds the request's authentication context exactly once, ahead
// of every handler. Admin paths trust the admin cookie alone and never touch
// the identity provider; every other path refreshes the provider session and
// rewrites the cookie when the provider rotated the token.
type SessionGate struct {
	identities port.IdentityProvider
	production bool
	logger     *slog.Logger
}

// NewSessionGate creates the session gate middleware.
func NewSessionGate(identities port.IdentityProvider, production bool, logger *slog.Logger) *SessionGate {
	return &SessionGate{
		identities: identities,
		production: production,
		logger:     logger.With("component", "session_gate"),
	}
}

// Skipper excludes static assets and framework-internal paths from the gate.
func Skipper(c echo.Context) bool {
	return staticAssetPattern.MatchString(c.Request().URL.Path)
}

// Gate returns the middleware function. It never rejects a request itself;
// handlers and the Require* middleware decide what an unauthenticated context
// means for their route.
func (g *SessionGate) Gate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Skipper(c) {
				return next(c)
			}

			if adminPath(c.Request().URL.Path) {
				c.Set(requestSessionKey, domain.RequestSession{Admin: validAdminCookie(c)})
				return next(c)
			}

			token := extractSessionToken(c)
			if token == "" {
				c.Set(requestSessionKey, domain.RequestSession{})
				return next(c)
			}

			session, err := g.identities.RefreshSession(c.Request().Context(), token)
			if err != nil {
				// Dead token. Clear the cookie so the browser stops sending it
				// and let the route decide whether that is a 401.
				g.logger.Debug("session refresh failed", "error", err)
				ClearSessionCookie(c, g.production)
				c.Set(requestSessionKey, domain.RequestSession{})
				return next(c)
			}

			if session.Token != "" && session.Token != token {
				WriteSessionCookie(c, session.Token, session.ExpiresAt, g.production)
				token = session.Token
			}

			c.Set(requestSessionKey, domain.RequestSession{Token: token})
			return next(c)
		}
	}
}

// RequestSessionFrom returns the authentication context the gate attached to
// the request. Routes behind the Skipper get the zero value.
func RequestSessionFrom(c echo.Context) domain.RequestSession {
	if session, ok := c.Get(requestSessionKey).(domain.RequestSession); ok {
		return session
	}
	return domain.RequestSession{}
}

// adminPath reports whether the path belongs to the administrator surface,
// which is trusted on the admin cookie and bypasses provider refresh.
func adminPath(path string) bool {
	return strings.HasPrefix(path, "/admin") || strings.HasPrefix(path, "/v1/admin")
}

func validAdminCookie(c echo.Context) bool {
	cookie, err := c.Cookie(domain.AdminCookieName)
	if err != nil {
		return false
	}
	return domain.ValidAdminCookie(cookie)
}

// extractSessionToken pulls the provider token from the session cookie, the
// X-Session-Token header, or a bearer Authorization header, in that order.
func extractSessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if token := c.Request().Header.Get("X-Session-Token"); token != "" {
		return token
	}

	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// WriteSessionCookie sets the provider session cookie on the response.
func WriteSessionCookie(c echo.Context, token string, expiresAt time.Time, secure bool) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if !expiresAt.IsZero() {
		cookie.Expires = expiresAt
	}
	c.SetCookie(cookie)
}

// ClearSessionCookie expires the provider session cookie.
func ClearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
