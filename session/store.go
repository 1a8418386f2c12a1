package session

import "encoding/json"

// Storage keys for the persisted credential record. All four must be present
// to reconstruct an authenticated Session.
const (
	keyAccessToken  = "paycanvas_token"
	keyRefreshToken = "paycanvas_refresh"
	keyExpiresAt    = "paycanvas_token_expires"
	keyUser         = "paycanvas_user"
)

// Store persists the four credential fields of a Session in a KV and
// reconstructs a Session from them.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load reads the persisted credential record. If any of the four keys is
// missing it returns the unauthenticated default. A corrupt user entry is
// purged and treated as absence.
func (s *Store) Load() Session {
	token, okToken := s.kv.Get(keyAccessToken)
	refresh, okRefresh := s.kv.Get(keyRefreshToken)
	expiresAt, okExpires := s.kv.Get(keyExpiresAt)
	userJSON, okUser := s.kv.Get(keyUser)
	if !okToken || !okRefresh || !okExpires || !okUser {
		return Default()
	}

	var user User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		s.kv.Delete(keyUser)
		return Default()
	}

	return Session{
		IsAuthenticated: true,
		AccessToken:     token,
		RefreshToken:    refresh,
		ExpiresAt:       expiresAt,
		User:            &user,
	}
}

// Save overwrites the persisted record from the given Session: each field is
// written when present and deleted when absent. There is no partial merge.
func (s *Store) Save(sess Session) {
	s.writeOrDelete(keyAccessToken, sess.AccessToken)
	s.writeOrDelete(keyRefreshToken, sess.RefreshToken)
	s.writeOrDelete(keyExpiresAt, sess.ExpiresAt)

	if sess.User != nil {
		data, err := json.Marshal(sess.User)
		if err == nil {
			s.kv.Set(keyUser, string(data))
			return
		}
	}
	s.kv.Delete(keyUser)
}

// Clear deletes all four credential keys.
func (s *Store) Clear() {
	s.kv.Delete(keyAccessToken)
	s.kv.Delete(keyRefreshToken)
	s.kv.Delete(keyExpiresAt)
	s.kv.Delete(keyUser)
}

// AccessToken returns the stored access token, or "" when absent. Callers
// read it fresh at request time rather than holding a reference.
func (s *Store) AccessToken() string {
	token, _ := s.kv.Get(keyAccessToken)
	return token
}

// RefreshToken returns the stored refresh token, or "" when absent.
func (s *Store) RefreshToken() string {
	token, _ := s.kv.Get(keyRefreshToken)
	return token
}

func (s *Store) writeOrDelete(key, value string) {
	if value != "" {
		s.kv.Set(key, value)
		return
	}
	s.kv.Delete(key)
}
