package session_test

import (
	"testing"

	"github.com/paycanvas/console/session"
	"github.com/stretchr/testify/require"
)

const (
	testAccessToken  = "access-token-1"
	testRefreshToken = "refresh-token-1"
	testExpiresAt    = "2024-01-01T00:00:00Z"
)

func testUser() session.User {
	return session.User{
		ID:              1,
		Name:            "Admin",
		CompanyID:       2,
		CompanyName:     "Acme",
		Role:            session.RoleCompanyAdmin,
		EnabledFeatures: []string{"payroll"},
	}
}

func authenticatedSession(t *testing.T) session.Session {
	t.Helper()
	sess, err := session.NewAuthenticated(testAccessToken, testRefreshToken, testExpiresAt, testUser())
	require.NoError(t, err)
	return sess
}

func TestStoreRoundTrip(t *testing.T) {
	store := session.NewStore(session.NewInMemoryKV())
	saved := authenticatedSession(t)

	store.Save(saved)
	loaded := store.Load()

	require.True(t, loaded.IsAuthenticated)
	require.Equal(t, saved.AccessToken, loaded.AccessToken)
	require.Equal(t, saved.RefreshToken, loaded.RefreshToken)
	require.Equal(t, saved.ExpiresAt, loaded.ExpiresAt)
	require.Equal(t, saved.User, loaded.User)
}

func TestStoreLoadMissingKeyReturnsDefault(t *testing.T) {
	keys := []string{"paycanvas_token", "paycanvas_refresh", "paycanvas_token_expires", "paycanvas_user"}
	for _, missing := range keys {
		t.Run(missing, func(t *testing.T) {
			kv := session.NewInMemoryKV()
			store := session.NewStore(kv)
			store.Save(authenticatedSession(t))

			kv.Delete(missing)

			require.Equal(t, session.Default(), store.Load())
		})
	}
}

func TestStoreLoadCorruptUserPurgesEntry(t *testing.T) {
	kv := session.NewInMemoryKV()
	store := session.NewStore(kv)
	store.Save(authenticatedSession(t))
	kv.Set("paycanvas_user", "{not json")

	require.Equal(t, session.Default(), store.Load())

	_, ok := kv.Get("paycanvas_user")
	require.False(t, ok, "corrupt user entry should be deleted")
}

func TestStoreLoadMissingCompanyNameDefaultsToEmpty(t *testing.T) {
	kv := session.NewInMemoryKV()
	store := session.NewStore(kv)
	store.Save(authenticatedSession(t))
	kv.Set("paycanvas_user", `{"id":1,"name":"Admin","companyId":2,"role":"COMPANY_ADMIN","enabledFeatures":[]}`)

	loaded := store.Load()

	require.True(t, loaded.IsAuthenticated)
	require.Equal(t, "", loaded.User.CompanyName)
}

func TestStoreSaveUnauthenticatedDeletesAllKeys(t *testing.T) {
	kv := session.NewInMemoryKV()
	store := session.NewStore(kv)
	store.Save(authenticatedSession(t))

	store.Save(session.Default())

	require.Equal(t, session.Default(), store.Load())
	require.Equal(t, "", store.AccessToken())
	require.Equal(t, "", store.RefreshToken())
}

func TestStoreClearDeletesAllKeys(t *testing.T) {
	kv := session.NewInMemoryKV()
	store := session.NewStore(kv)
	store.Save(authenticatedSession(t))

	store.Clear()

	for _, key := range []string{"paycanvas_token", "paycanvas_refresh", "paycanvas_token_expires", "paycanvas_user"} {
		_, ok := kv.Get(key)
		require.False(t, ok, "key %s should be deleted", key)
	}
}

func TestNewAuthenticatedRequiresTokens(t *testing.T) {
	_, err := session.NewAuthenticated("", testRefreshToken, testExpiresAt, testUser())
	require.Error(t, err)

	_, err = session.NewAuthenticated(testAccessToken, "", testExpiresAt, testUser())
	require.Error(t, err)
}

func TestFileKVSurvivesReopen(t *testing.T) {
	path := t.TempDir() + "/credentials.json"

	store := session.NewStore(session.NewFileKV(path))
	store.Save(authenticatedSession(t))

	reopened := session.NewStore(session.NewFileKV(path))
	loaded := reopened.Load()
	require.True(t, loaded.IsAuthenticated)
	require.Equal(t, testAccessToken, loaded.AccessToken)
}
