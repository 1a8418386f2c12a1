package devserver

import (
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/paycanvas/console/api"
)

func (s *Server) loginResponse(account *Account) (api.LoginResponse, error) {
	accessToken, expiresAt, err := s.tokens.IssueAccessToken(*account)
	if err != nil {
		return api.LoginResponse{}, err
	}
	return api.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: s.tokens.IssueRefreshToken(account.ID),
		ExpiresAt:    expiresAt.UTC().Format(time.RFC3339),
		User: api.LoginUser{
			UserID:          account.ID,
			CompanyID:       account.CompanyID,
			CompanyName:     account.CompanyName,
			Role:            account.Role,
			EnabledFeatures: account.Features,
			Name:            account.Name,
		},
	}, nil
}

// LoginHandler exchanges email and password for a token pair.
func (s *Server) LoginHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		if !readJSON(w, r, &req) {
			return
		}

		account, err := s.data.AccountByEmail(req.Email)
		if err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		if bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(req.Password)) != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		resp, err := s.loginResponse(account)
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshHandler redeems a refresh token for a fresh token pair. The old
// refresh token is invalidated in the process.
func (s *Server) RefreshHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if !readJSON(w, r, &req) {
			return
		}

		userID, err := s.tokens.RedeemRefreshToken(req.RefreshToken)
		if err != nil {
			http.Error(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}

		account, err := s.data.AccountByID(userID)
		if err != nil {
			http.Error(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}

		resp, err := s.loginResponse(account)
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
