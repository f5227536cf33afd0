package domain

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminCookieRoundTrip(t *testing.T) {
	cookie := NewAdminCookie(true)

	assert.Equal(t, AdminCookieName, cookie.Name)
	assert.Equal(t, AdminCookieValue, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	assert.True(t, ValidAdminCookie(cookie))
}

func TestExpiredAdminCookie(t *testing.T) {
	cookie := ExpiredAdminCookie(false)

	assert.Equal(t, AdminCookieName, cookie.Name)
	assert.Negative(t, cookie.MaxAge)
	assert.False(t, ValidAdminCookie(cookie))
}

func TestValidAdminCookie(t *testing.T) {
	assert.False(t, ValidAdminCookie(nil))
	assert.False(t, ValidAdminCookie(&http.Cookie{Name: AdminCookieName, Value: "forged"}))
	assert.False(t, ValidAdminCookie(&http.Cookie{Name: "other", Value: AdminCookieValue}))
	assert.True(t, ValidAdminCookie(&http.Cookie{Name: AdminCookieName, Value: AdminCookieValue}))
}
