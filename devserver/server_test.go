package devserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paycanvas/console/api"
	"github.com/paycanvas/console/devserver"
	"github.com/paycanvas/console/internal/config"
	"github.com/paycanvas/console/session"
)

const (
	testCompanyAdminEmail = "admin@paycanvas.io"
	testStaffEmail        = "staff@paycanvas.io"
	testSuperAdminEmail   = "root@paycanvas.io"
	testPassword          = "password"
)

type serverFixture struct {
	t      *testing.T
	server *httptest.Server
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	s, err := devserver.New(config.New())
	require.NoError(t, err)
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return &serverFixture{t: t, server: ts}
}

func (f *serverFixture) do(method, path, bearer string, body any) *http.Response {
	f.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(f.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, f.server.URL+path, &buf)
	require.NoError(f.t, err)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(f.t, err)
	f.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (f *serverFixture) login(email, password string) api.LoginResponse {
	f.t.Helper()
	resp := f.do(http.MethodPost, "/api/auth/login", "", api.LoginRequest{Email: email, Password: password})
	require.Equal(f.t, http.StatusOK, resp.StatusCode)
	var out api.LoginResponse
	require.NoError(f.t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestLoginReturnsTokenPairAndProfile(t *testing.T) {
	f := newServerFixture(t)

	out := f.login(testCompanyAdminEmail, testPassword)
	require.NotEmpty(t, out.AccessToken)
	require.NotEmpty(t, out.RefreshToken)
	require.Equal(t, session.RoleCompanyAdmin, out.User.Role)
	require.Equal(t, "Northwind Retail", out.User.CompanyName)

	expiresAt, err := time.Parse(time.RFC3339, out.ExpiresAt)
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))
}

func TestLoginRejectsBadPassword(t *testing.T) {
	f := newServerFixture(t)

	resp := f.do(http.MethodPost, "/api/auth/login", "", api.LoginRequest{Email: testCompanyAdminEmail, Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = f.do(http.MethodPost, "/api/auth/login", "", api.LoginRequest{Email: "nobody@paycanvas.io", Password: testPassword})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRefreshRotatesTokens(t *testing.T) {
	f := newServerFixture(t)
	first := f.login(testCompanyAdminEmail, testPassword)

	resp := f.do(http.MethodPost, "/api/auth/refresh", "", map[string]string{"refreshToken": first.RefreshToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var second api.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))
	require.NotEmpty(t, second.AccessToken)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)
	require.Equal(t, first.User, second.User)

	// The redeemed token is single use.
	resp = f.do(http.MethodPost, "/api/auth/refresh", "", map[string]string{"refreshToken": first.RefreshToken})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedEndpointsRequireBearer(t *testing.T) {
	f := newServerFixture(t)

	resp := f.do(http.MethodGet, "/api/dashboard/summary", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = f.do(http.MethodGet, "/api/dashboard/summary", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestExpiredBearerIsRejected(t *testing.T) {
	defer func() { devserver.NowTimeFunc = time.Now }()

	f := newServerFixture(t)
	out := f.login(testCompanyAdminEmail, testPassword)

	devserver.NowTimeFunc = func() time.Time { return time.Now().Add(24 * time.Hour) }
	resp := f.do(http.MethodGet, "/api/dashboard/summary", out.AccessToken, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoleEnforcement(t *testing.T) {
	f := newServerFixture(t)
	staff := f.login(testStaffEmail, testPassword)
	admin := f.login(testCompanyAdminEmail, testPassword)

	// Staff can see the dashboard but not company administration.
	resp := f.do(http.MethodGet, "/api/dashboard/summary", staff.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = f.do(http.MethodGet, "/api/staff", staff.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Company admins cannot reach the platform surface.
	resp = f.do(http.MethodGet, "/api/super/companies", admin.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestStoreCRUD(t *testing.T) {
	f := newServerFixture(t)
	admin := f.login(testCompanyAdminEmail, testPassword)

	resp := f.do(http.MethodPost, "/api/masters/stores", admin.AccessToken, api.StorePayload{Name: "Riverside", StoreType: "STANDARD"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created api.StoreMaster
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, "Riverside", created.Name)

	resp = f.do(http.MethodPut, "/api/masters/stores/4", admin.AccessToken, api.StorePayload{Name: "Riverside East"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(http.MethodDelete, "/api/masters/stores/4", admin.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = f.do(http.MethodDelete, "/api/masters/stores/4", admin.AccessToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEmployeeListResolvesMasterNames(t *testing.T) {
	f := newServerFixture(t)
	admin := f.login(testCompanyAdminEmail, testPassword)

	resp := f.do(http.MethodGet, "/api/staff", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var employees []api.EmployeeMaster
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&employees))
	require.Len(t, employees, 3)

	require.NotNil(t, employees[0].Grade)
	require.Equal(t, "Junior", *employees[0].Grade)
	require.NotNil(t, employees[0].StoreName)
	require.Equal(t, "Harbourfront", *employees[0].StoreName)

	// The part-timer has no assignments yet.
	require.Nil(t, employees[2].Grade)
	require.Nil(t, employees[2].StoreName)
}

func TestPayrollExecuteValidatesMonth(t *testing.T) {
	f := newServerFixture(t)
	admin := f.login(testCompanyAdminEmail, testPassword)

	resp := f.do(http.MethodPost, "/api/payroll/execute", admin.AccessToken, map[string]string{"targetMonth": "August"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = f.do(http.MethodPost, "/api/payroll/execute", admin.AccessToken, map[string]string{"targetMonth": "2025-08"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var job api.PayrollJob
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&job))
	require.Equal(t, "2025-08", job.TargetMonth)
}

func TestFeatureToggleAndAdminProvisioning(t *testing.T) {
	f := newServerFixture(t)
	root := f.login(testSuperAdminEmail, testPassword)

	resp := f.do(http.MethodPatch, "/api/features/forecasting", root.AccessToken, map[string]bool{"isEnabled": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feature api.FeatureToggle
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feature))
	require.True(t, feature.IsEnabled)

	resp = f.do(http.MethodPost, "/api/super/users", root.AccessToken, api.AdminUserPayload{
		CompanyID:   11,
		Email:       "ops@contoso.example",
		DisplayName: "Contoso Ops",
		Password:    "s3cret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user api.AdminUser
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	require.Equal(t, "Contoso Foods", user.CompanyName)

	// The freshly provisioned admin can log in.
	out := f.login("ops@contoso.example", "s3cret")
	require.Equal(t, session.RoleCompanyAdmin, out.User.Role)
}
