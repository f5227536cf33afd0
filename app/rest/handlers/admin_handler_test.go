package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/mocks"
	"kalinga-portal/app/utils/logger"
)

type adminHandlerMocks struct {
	admin       *mocks.MockAdminAuthenticator
	provisioner *mocks.MockAccountProvisioner
	remover     *mocks.MockAccountRemover
	profiles    *mocks.MockProfileStore
}

func newAdminHandlerTest(t *testing.T) (*AdminHandler, adminHandlerMocks) {
	ctrl := gomock.NewController(t)
	m := adminHandlerMocks{
		admin:       mocks.NewMockAdminAuthenticator(ctrl),
		provisioner: mocks.NewMockAccountProvisioner(ctrl),
		remover:     mocks.NewMockAccountRemover(ctrl),
		profiles:    mocks.NewMockProfileStore(ctrl),
	}
	h := NewAdminHandler(m.admin, m.provisioner, m.remover, m.profiles, false, logger.NewTestLogger())
	return h, m
}

func TestAdminLogin_IssuesCookie(t *testing.T) {
	h, m := newAdminHandlerTest(t)

	m.admin.EXPECT().
		SignIn(gomock.Any(), "admin@dlsl.edu.ph", "super-secret").
		Return(nil)
	m.admin.EXPECT().
		Profile().
		Return(domain.NewAdminProfile("Administrator", "admin@dlsl.edu.ph"))

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/v1/admin/login",
		`{"email":"admin@dlsl.edu.ph","password":"super-secret"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/admin/dashboard"`)

	var issued bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == domain.AdminCookieName {
			issued = true
			assert.Equal(t, domain.AdminCookieValue, cookie.Value)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, int(domain.AdminSessionTTL.Seconds()), cookie.MaxAge)
		}
	}
	assert.True(t, issued)
}

func TestAdminLogin_NotConfigured(t *testing.T) {
	h, m := newAdminHandlerTest(t)

	m.admin.EXPECT().
		SignIn(gomock.Any(), "admin@dlsl.edu.ph", "super-secret").
		Return(domain.ErrServerConfig)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/v1/admin/login",
		`{"email":"admin@dlsl.edu.ph","password":"super-secret"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Generic message only; configuration state is never echoed.
	assert.NotContains(t, rec.Body.String(), "ADMIN_EMAIL")
}

func TestAdminLogout_ExpiresCookie(t *testing.T) {
	h, _ := newAdminHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var expired bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == domain.AdminCookieName && cookie.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired)
}

func TestCreateOffice(t *testing.T) {
	h, m := newAdminHandlerTest(t)

	m.provisioner.EXPECT().
		ProvisionAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input domain.ProvisionInput) (string, error) {
			assert.Equal(t, domain.RoleOffice, input.Kind)
			assert.Equal(t, "Disaster Office", input.OfficeName)
			return "Office account created for Disaster Office", nil
		})

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/v1/admin/offices",
		`{"email":"cdrrmo@dlsl.edu.ph","password":"secure-password","name":"CDRRMO","office_name":"Disaster Office"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateOffice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListOffices(t *testing.T) {
	h, m := newAdminHandlerTest(t)

	m.profiles.EXPECT().
		ListOffices(gomock.Any()).
		Return([]*domain.OfficeProfile{
			{ProfileCommon: domain.ProfileCommon{ID: uuid.New(), Name: "CDRRMO"}},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/offices", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListOffices(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestAdminDeleteAccount(t *testing.T) {
	h, m := newAdminHandlerTest(t)

	target := uuid.New()
	m.remover.EXPECT().
		DeleteAccount(gomock.Any(), gomock.Any(), target).
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/accounts/"+target.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(target.String())

	require.NoError(t, h.DeleteAccount(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminDeleteAccount_BadID(t *testing.T) {
	h, _ := newAdminHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/accounts/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.DeleteAccount(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminDeleteAccount_SelfDeleteForbidden(t *testing.T) {
	h, m := newAdminHandlerTest(t)

	m.remover.EXPECT().
		DeleteAccount(gomock.Any(), gomock.Any(), uuid.Nil).
		Return(domain.ErrUnauthorized)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/accounts/"+uuid.Nil.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.Nil.String())

	require.NoError(t, h.DeleteAccount(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
