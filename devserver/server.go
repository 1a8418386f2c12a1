// Package devserver is a development stand-in for the PayCanvas backend. It
// serves the full REST surface the console talks to, backed by seeded
// in-memory data, so the console can be exercised end to end without the real
// backend.
package devserver

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/paycanvas/console/internal/config"
)

type Server struct {
	env    string
	mux    *http.ServeMux
	routes []string
	config config.ServerConfig
	data   *Repository
	tokens *TokenService
}

func New(cfg config.Config) (*Server, error) {
	tokens, err := NewTokenService(cfg.GetSigningSecret(), cfg.GetAccessTokenTTL(), cfg.GetRefreshTokenTTL())
	if err != nil {
		return nil, fmt.Errorf("[devserver.New] token service: %w", err)
	}

	s := &Server{
		env:    cfg.GetEnv(),
		mux:    http.NewServeMux(),
		config: cfg,
		data:   NewSeededRepository(),
		tokens: tokens,
	}
	s.initRoutes()
	s.logRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	for _, route := range s.routes {
		log.Debug().Str("route", route).Msg("registered")
	}
}
