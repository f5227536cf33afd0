package domain

import (
	"net/http"
	"time"
)

// Administrator session cookie contract. Presence of the exact value is the
// sole authorization check for the administrator area.
const (
	AdminCookieName  = "oks_admin_session"
	AdminCookieValue = "authenticated"
	AdminSessionTTL  = 24 * time.Hour
)

// NewAdminCookie builds the signed-in administrator cookie. The Secure flag
// follows the deployment environment: lax same-site, HTTP-only, root path.
func NewAdminCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     AdminCookieName,
		Value:    AdminCookieValue,
		Path:     "/",
		MaxAge:   int(AdminSessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredAdminCookie builds the cookie that clears an administrator session.
func ExpiredAdminCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     AdminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ValidAdminCookie reports whether the given request cookie authenticates an
// administrator session.
func ValidAdminCookie(c *http.Cookie) bool {
	return c != nil && c.Name == AdminCookieName && c.Value == AdminCookieValue
}
