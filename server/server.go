// Package server is the HTTP surface of the portal gateway: the admin
// back-office and shop self-service portals, their login flows, the route
// guards, and the authenticated passthrough to the retail backend.
package server

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/shopdesk/portalgate/backend"
	"github.com/shopdesk/portalgate/internal/config"
	"github.com/shopdesk/portalgate/portal"
)

type Server struct {
	env    string // Environment (e.g., "DEV", "production")
	mux    *http.ServeMux
	routes []string
	config config.Config
	admin  *portal.AdminManager
	shop   *portal.ShopManager
	api    backend.API
}

func New(cfg config.Config, admin *portal.AdminManager, shop *portal.ShopManager, api backend.API) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		config: cfg,
		admin:  admin,
		shop:   shop,
		api:    api,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			log.Debug().Str("method", parts[0]).Str("path", parts[1]).Msg("route registered")
		} else {
			log.Debug().Str("path", parts[0]).Msg("route registered")
		}
	}
}
