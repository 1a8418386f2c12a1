// Package session holds the authentication state of the running console:
// the Session model, the credential store that persists it between runs,
// and the event bus that broadcasts session changes within the process.
package session

import "github.com/pkg/errors"

// Role identifies the access level of an authenticated user.
type Role string

const (
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RoleCompanyAdmin Role = "COMPANY_ADMIN"
	RoleStaff        Role = "STAFF"
)

// User is the authenticated principal embedded in a Session. It belongs to
// exactly one company and is replaced atomically with its Session, never
// mutated in place.
type User struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	CompanyID       int      `json:"companyId"`
	CompanyName     string   `json:"companyName"`
	Role            Role     `json:"role"`
	EnabledFeatures []string `json:"enabledFeatures"`
}

// Session is the authentication state of the console. It is created at
// startup from the credential store (or defaulted to unauthenticated),
// replaced wholesale on login or token refresh, and cleared wholesale on
// logout or an unrecoverable 401.
type Session struct {
	IsAuthenticated bool
	AccessToken     string
	RefreshToken    string
	ExpiresAt       string
	User            *User
}

// Default returns the unauthenticated session.
func Default() Session {
	return Session{}
}

// NewAuthenticated builds an authenticated Session, enforcing at construction
// that both tokens and the user are present.
func NewAuthenticated(accessToken, refreshToken, expiresAt string, user User) (Session, error) {
	if accessToken == "" {
		return Session{}, errors.New("[NewAuthenticated] access token is required")
	}
	if refreshToken == "" {
		return Session{}, errors.New("[NewAuthenticated] refresh token is required")
	}
	return Session{
		IsAuthenticated: true,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		ExpiresAt:       expiresAt,
		User:            &user,
	}, nil
}

// Role returns the role of the authenticated user, or false when no user is
// present.
func (s Session) Role() (Role, bool) {
	if s.User == nil {
		return "", false
	}
	return s.User.Role, true
}

// HasFeature reports whether the named feature flag is enabled for the
// authenticated user.
func (s Session) HasFeature(name string) bool {
	if s.User == nil {
		return false
	}
	for _, f := range s.User.EnabledFeatures {
		if f == name {
			return true
		}
	}
	return false
}
