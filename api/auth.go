package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	apperrors "github.com/paycanvas/console/internal/errors"
	"github.com/paycanvas/console/session"
)

// LoginRequest carries the credentials for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser is the user profile embedded in a login or refresh response.
type LoginUser struct {
	UserID          int          `json:"userId"`
	CompanyID       int          `json:"companyId"`
	CompanyName     string       `json:"companyName"`
	Role            session.Role `json:"role"`
	EnabledFeatures []string     `json:"enabledFeatures"`
	Name            string       `json:"name"`
}

// LoginResponse is the token pair plus user profile returned by the login and
// refresh endpoints.
type LoginResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    string    `json:"expiresAt"`
	User         LoginUser `json:"user"`
}

// Session maps the wire response into an authenticated Session.
func (r LoginResponse) Session() (session.Session, error) {
	return session.NewAuthenticated(r.AccessToken, r.RefreshToken, r.ExpiresAt, session.User{
		ID:              r.User.UserID,
		Name:            r.User.Name,
		CompanyID:       r.User.CompanyID,
		CompanyName:     r.User.CompanyName,
		Role:            r.User.Role,
		EnabledFeatures: r.User.EnabledFeatures,
	})
}

// Login exchanges email and password for an authenticated Session. The
// returned Session is not persisted here; that is the session controller's
// job.
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	var resp LoginResponse
	err := c.Post(ctx, RouteAuthLogin, LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		if StatusOf(err) == http.StatusUnauthorized {
			return session.Session{}, apperrors.ErrInvalidCredentials
		}
		return session.Session{}, errors.Wrap(err, "[Client.Login] login request")
	}

	sess, err := resp.Session()
	if err != nil {
		return session.Session{}, errors.Wrap(err, "[Client.Login] malformed login response")
	}
	return sess, nil
}
