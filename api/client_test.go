package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paycanvas/console/api"
	apperrors "github.com/paycanvas/console/internal/errors"
	"github.com/paycanvas/console/session"
)

const (
	staleToken   = "stale-access-token"
	freshToken   = "fresh-access-token"
	refreshToken = "refresh-token-1"
	testExpires  = "2024-01-01T00:00:00Z"
)

type fixture struct {
	kv          *session.InMemoryKV
	store       *session.Store
	bus         *session.Bus
	client      *api.Client
	server      *httptest.Server
	invalidated int
}

func loginResponseJSON(accessToken, refresh string) string {
	resp := api.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh,
		ExpiresAt:    testExpires,
		User: api.LoginUser{
			UserID:          1,
			CompanyID:       2,
			CompanyName:     "Acme",
			Role:            session.RoleCompanyAdmin,
			EnabledFeatures: []string{},
			Name:            "Admin",
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func newFixture(t *testing.T, handler http.Handler) *fixture {
	t.Helper()
	f := &fixture{
		kv:  session.NewInMemoryKV(),
		bus: session.NewBus(),
	}
	f.store = session.NewStore(f.kv)
	f.server = httptest.NewServer(handler)
	t.Cleanup(f.server.Close)

	client, err := api.New(f.server.URL, f.store, f.bus,
		api.WithHTTPClient(f.server.Client()),
		api.WithInvalidatedHook(func() { f.invalidated++ }),
	)
	require.NoError(t, err)
	f.client = client
	return f
}

func (f *fixture) seedSession(t *testing.T) {
	t.Helper()
	sess, err := session.NewAuthenticated(staleToken, refreshToken, testExpires, session.User{
		ID: 1, Name: "Admin", CompanyID: 2, CompanyName: "Acme", Role: session.RoleCompanyAdmin,
	})
	require.NoError(t, err)
	f.store.Save(sess)
}

func TestRequestAttachesBearerAndContentType(t *testing.T) {
	var gotAuth, gotContentType, gotRequestID string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/echo", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	f := newFixture(t, mux)
	f.seedSession(t)

	var out map[string]bool
	require.NoError(t, f.client.Post(context.Background(), "/api/echo", map[string]string{"a": "b"}, &out))
	require.Equal(t, "Bearer "+staleToken, gotAuth)
	require.Equal(t, "application/json", gotContentType)
	require.NotEmpty(t, gotRequestID)
	require.True(t, out["ok"])
}

func TestExpiredTokenIsRefreshedOnceAndRequestRetried(t *testing.T) {
	refreshCalls := 0
	dataCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, refreshToken, body["refreshToken"])
		require.Empty(t, r.Header.Get("Authorization"), "expired bearer must not ride along with the refresh call")
		_, _ = w.Write([]byte(loginResponseJSON(freshToken, "refresh-token-2")))
	})
	mux.HandleFunc("GET /api/payslips", func(w http.ResponseWriter, r *http.Request) {
		dataCalls++
		if r.Header.Get("Authorization") != "Bearer "+freshToken {
			http.Error(w, "expired", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"p1","employeeName":"Sato","netPay":250000}]`))
	})

	f := newFixture(t, mux)
	f.seedSession(t)
	tokenBefore := f.store.AccessToken()

	payslips, err := f.client.Payslips(context.Background(), "2024-01")
	require.NoError(t, err)
	require.Len(t, payslips, 1)
	require.Equal(t, "Sato", payslips[0].EmployeeName)

	require.Equal(t, 1, refreshCalls)
	require.Equal(t, 2, dataCalls)
	require.NotEqual(t, tokenBefore, f.store.AccessToken())
	require.Equal(t, freshToken, f.store.AccessToken())
	require.Zero(t, f.invalidated)
}

func TestSecondConsecutive401NeverTriggersSecondRefresh(t *testing.T) {
	refreshCalls := 0
	dataCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		_, _ = w.Write([]byte(loginResponseJSON(freshToken, "refresh-token-2")))
	})
	mux.HandleFunc("GET /api/staff", func(w http.ResponseWriter, r *http.Request) {
		dataCalls++
		http.Error(w, "still unauthorized", http.StatusUnauthorized)
	})

	f := newFixture(t, mux)
	f.seedSession(t)

	_, err := f.client.Employees(context.Background())
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, api.StatusOf(err))

	require.Equal(t, 1, refreshCalls, "post-retry 401 must not refresh again")
	require.Equal(t, 2, dataCalls, "at most one retry per call")
	require.Equal(t, session.Default(), f.store.Load())
	require.Equal(t, 1, f.invalidated)
}

func TestMissingRefreshTokenForcesLogout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/staff", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})

	f := newFixture(t, mux)
	f.seedSession(t)
	f.kv.Delete("paycanvas_refresh")

	var published []session.Session
	f.bus.Subscribe(func(s session.Session) { published = append(published, s) })

	_, err := f.client.Employees(context.Background())
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, api.StatusOf(err))

	require.Equal(t, session.Default(), f.store.Load())
	require.Equal(t, "", f.store.AccessToken())
	require.Equal(t, []session.Session{session.Default()}, published)
	require.Equal(t, 1, f.invalidated)
}

func TestRejectedRefreshLeavesNoCredentialsBehind(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "refresh token revoked", http.StatusUnauthorized)
	})
	mux.HandleFunc("GET /api/staff", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})

	f := newFixture(t, mux)
	f.seedSession(t)

	_, err := f.client.Employees(context.Background())
	require.Error(t, err)
	require.Equal(t, session.Default(), f.store.Load())
	require.Equal(t, 1, f.invalidated)
}

func TestAuthEndpoint401ClearsStoreWithoutRefreshOrNavigation(t *testing.T) {
	refreshCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		_, _ = w.Write([]byte(loginResponseJSON(freshToken, "refresh-token-2")))
	})
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})

	f := newFixture(t, mux)
	f.seedSession(t)

	var published []session.Session
	f.bus.Subscribe(func(s session.Session) { published = append(published, s) })

	_, err := f.client.Login(context.Background(), "admin@paycanvas.io", "wrong")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	require.Zero(t, refreshCalls)
	require.Zero(t, f.invalidated, "auth endpoints must not force navigation")

	// Any 401 reaching this point wipes the credential record, a rejected
	// login included.
	require.Equal(t, session.Default(), f.store.Load())
	require.Equal(t, []session.Session{session.Default()}, published)
}

func TestDeleteAndNoContentReturnNoPayload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/masters/stores/3", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	f := newFixture(t, mux)
	f.seedSession(t)

	require.NoError(t, f.client.DeleteStore(context.Background(), 3))

	var out map[string]any
	require.NoError(t, f.client.Get(context.Background(), "/api/empty", &out))
	require.Nil(t, out)
}

func TestErrorCarriesStatusAndBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/daily", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	f := newFixture(t, mux)
	f.seedSession(t)

	_, err := f.client.Daily(context.Background())
	require.Error(t, err)

	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusBadGateway, reqErr.Status)
	require.Equal(t, "upstream exploded", strings.TrimSpace(reqErr.Body))
	require.Zero(t, f.invalidated)
}

func TestRefreshPublishesNewSessionOnBus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(loginResponseJSON(freshToken, "refresh-token-2")))
	})
	mux.HandleFunc("GET /api/dashboard/summary", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+freshToken {
			http.Error(w, "expired", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"metrics":[],"tasks":[],"announcements":[]}`))
	})

	f := newFixture(t, mux)
	f.seedSession(t)

	var published []session.Session
	f.bus.Subscribe(func(s session.Session) { published = append(published, s) })

	_, err := f.client.DashboardSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, published, 1)
	require.True(t, published[0].IsAuthenticated)
	require.Equal(t, freshToken, published[0].AccessToken)
	require.Equal(t, "refresh-token-2", published[0].RefreshToken)
}

func TestLoginMapsResponseIntoSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "admin@paycanvas.io", body.Email)
		require.Equal(t, "password", body.Password)
		_, _ = w.Write([]byte(`{"accessToken":"a","refreshToken":"r","expiresAt":"2024-01-01T00:00:00Z","user":{"userId":1,"companyId":2,"companyName":"Acme","role":"COMPANY_ADMIN","enabledFeatures":[],"name":"Admin"}}`))
	})

	f := newFixture(t, mux)

	sess, err := f.client.Login(context.Background(), "admin@paycanvas.io", "password")
	require.NoError(t, err)
	require.True(t, sess.IsAuthenticated)
	require.Equal(t, "a", sess.AccessToken)
	require.Equal(t, "r", sess.RefreshToken)
	require.Equal(t, session.RoleCompanyAdmin, sess.User.Role)
	require.Equal(t, "Acme", sess.User.CompanyName)
}
