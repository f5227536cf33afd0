package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/mocks"
	"kalinga-portal/app/utils/logger"
)

func newGateTest(t *testing.T) (*SessionGate, *mocks.MockIdentityProvider) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityProvider(ctrl)
	gate := NewSessionGate(identities, false, logger.NewTestLogger())
	return gate, identities
}

func runGate(t *testing.T, gate *SessionGate, req *http.Request) (domain.RequestSession, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured domain.RequestSession
	handler := gate.Gate()(func(c echo.Context) error {
		captured = RequestSessionFrom(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return captured, rec
}

func TestGate_AdminPathBypassesProviderRefresh(t *testing.T) {
	gate, identities := newGateTest(t)
	// No RefreshSession expectation: touching the provider on an admin path
	// fails the test.
	_ = identities

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/offices", nil)
	req.AddCookie(domain.NewAdminCookie(false))

	session, _ := runGate(t, gate, req)
	assert.True(t, session.Admin)
	assert.Empty(t, session.Token)
}

func TestGate_AdminPathWithoutCookie(t *testing.T) {
	gate, _ := newGateTest(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)

	session, _ := runGate(t, gate, req)
	assert.False(t, session.Admin)
	assert.False(t, session.Authenticated())
}

func TestGate_AdminCookieWrongValueRejected(t *testing.T) {
	gate, _ := newGateTest(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/offices", nil)
	req.AddCookie(&http.Cookie{Name: domain.AdminCookieName, Value: "forged"})

	session, _ := runGate(t, gate, req)
	assert.False(t, session.Admin)
}

func TestGate_RefreshesProviderSession(t *testing.T) {
	gate, identities := newGateTest(t)

	identities.EXPECT().
		RefreshSession(gomock.Any(), "token").
		Return(&domain.Session{ID: "sess", Token: "token", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/account/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token"})

	session, _ := runGate(t, gate, req)
	assert.Equal(t, "token", session.Token)
	assert.False(t, session.Admin)
}

func TestGate_RewritesRotatedToken(t *testing.T) {
	gate, identities := newGateTest(t)

	identities.EXPECT().
		RefreshSession(gomock.Any(), "old-token").
		Return(&domain.Session{ID: "sess", Token: "new-token", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/account/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "old-token"})

	session, rec := runGate(t, gate, req)
	assert.Equal(t, "new-token", session.Token)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == SessionCookieName {
			found = true
			assert.Equal(t, "new-token", cookie.Value)
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.True(t, found)
}

func TestGate_DeadTokenClearsCookie(t *testing.T) {
	gate, identities := newGateTest(t)

	identities.EXPECT().
		RefreshSession(gomock.Any(), "expired").
		Return(nil, domain.ErrNotAuthenticated)

	req := httptest.NewRequest(http.MethodGet, "/v1/account/profile", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "expired"})

	session, rec := runGate(t, gate, req)
	assert.False(t, session.Authenticated())

	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestGate_NoTokenPassesThroughUnauthenticated(t *testing.T) {
	gate, _ := newGateTest(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/role", nil)

	session, _ := runGate(t, gate, req)
	assert.False(t, session.Authenticated())
}

func TestGate_TokenFromHeader(t *testing.T) {
	gate, identities := newGateTest(t)

	identities.EXPECT().
		RefreshSession(gomock.Any(), "header-token").
		Return(&domain.Session{ID: "sess", Token: "header-token"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/account/profile", nil)
	req.Header.Set("X-Session-Token", "header-token")

	session, _ := runGate(t, gate, req)
	assert.Equal(t, "header-token", session.Token)
}

func TestGate_StaticAssetsSkipped(t *testing.T) {
	gate, _ := newGateTest(t)

	paths := []string{
		"/static/app.css",
		"/assets/logo.png",
		"/favicon.ico",
		"/_next/chunk.js",
		"/js/bundle.min.js",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			// A token rides along but the provider must never be called.
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token"})

			session, _ := runGate(t, gate, req)
			assert.False(t, session.Authenticated())
		})
	}
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()

	handler := RequireAuth()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/account/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(requestSessionKey, domain.RequestSession{})

	err := handler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	c = e.NewContext(req, httptest.NewRecorder())
	c.Set(requestSessionKey, domain.RequestSession{Token: "token"})
	assert.NoError(t, handler(c))
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()

	handler := RequireAdmin()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/offices", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(requestSessionKey, domain.RequestSession{Token: "token"})

	err := handler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	c = e.NewContext(req, httptest.NewRecorder())
	c.Set(requestSessionKey, domain.RequestSession{Admin: true})
	assert.NoError(t, handler(c))
}
