package devserver

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/paycanvas/console/api"
	apperrors "github.com/paycanvas/console/internal/errors"
)

func (s *Server) FeaturesHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.data.Features())
	}
}

type featureUpdateRequest struct {
	IsEnabled bool `json:"isEnabled"`
}

func (s *Server) UpdateFeatureHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req featureUpdateRequest
		if !readJSON(w, r, &req) {
			return
		}
		feature, err := s.data.SetFeatureEnabled(r.PathValue("id"), req.IsEnabled)
		if err != nil {
			http.Error(w, "feature not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, feature)
	}
}

func (s *Server) CompaniesHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.data.Companies())
	}
}

func (s *Server) CreateAdminUserHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload api.AdminUserPayload
		if !readJSON(w, r, &payload) {
			return
		}
		if payload.Email == "" || payload.Password == "" || payload.CompanyID == 0 {
			http.Error(w, "companyId, email and password are required", http.StatusBadRequest)
			return
		}
		user, err := s.data.CreateAdminUser(payload)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				http.Error(w, "company not found", http.StatusNotFound)
				return
			}
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		respondJSON(w, http.StatusCreated, user)
	}
}
