// Package stubapi is a development stand-in for the retail backend: just
// enough of its auth surface for the gateway to run and be demoed without
// the real thing. The gateway itself keeps treating tokens as opaque; only
// the stub knows they are JWTs.
package stubapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/shopdesk/portalgate/session"
)

type Server struct {
	mux        *http.ServeMux
	signingKey []byte
	admins     map[string]Account // keyed by email
	shops      map[string]Account // keyed by username
	adminsByID map[string]Account
	shopsByID  map[string]Account
}

// New seeds one admin and one shop account and wires the auth routes.
func New(signingKey []byte) (*Server, error) {
	if len(signingKey) == 0 {
		return nil, errors.New("[stubapi.New] signing key is required")
	}
	s := &Server{
		mux:        http.NewServeMux(),
		signingKey: signingKey,
		admins:     make(map[string]Account),
		shops:      make(map[string]Account),
		adminsByID: make(map[string]Account),
		shopsByID:  make(map[string]Account),
	}

	admin, err := seedAccount("admin@example.com", "Admin123!", session.Profile{
		"name":  "Store Admin",
		"email": "admin@example.com",
		"phone": "+1-555-0100",
	})
	if err != nil {
		return nil, err
	}
	shop, err := seedAccount("shop1", "Shop123!", session.Profile{
		"name":      "Acme Repairs",
		"ownerName": "Avery Acme",
		"logo":      "/assets/acme.png",
	})
	if err != nil {
		return nil, err
	}
	s.admins[admin.Identifier] = admin
	s.adminsByID[admin.ID] = admin
	s.shops[shop.Identifier] = shop
	s.shopsByID[shop.ID] = shop

	s.mux.HandleFunc("POST /admin/login", s.adminLoginHandler)
	s.mux.HandleFunc("GET /admin/me", s.adminMeHandler)
	s.mux.HandleFunc("POST /shop/login", s.shopLoginHandler)
	s.mux.HandleFunc("GET /shop/me", s.shopMeHandler)
	s.mux.HandleFunc("POST /admin/forgot-verify", s.acceptedHandler)
	s.mux.HandleFunc("POST /admin/reset-password", s.acceptedHandler)
	s.mux.HandleFunc("POST /shop/forgot-verify", s.acceptedHandler)
	s.mux.HandleFunc("POST /shop/reset-password", s.acceptedHandler)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) adminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	account, err := authenticate(s.admins, req.Email, req.Password)
	if err != nil {
		s.writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	token, err := s.mintToken("admin", account.ID)
	if err != nil {
		log.Err(err).Msg("failed to mint admin token")
		s.writeError(w, http.StatusInternalServerError, "token generation failed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"token": token, "admin": account.Profile})
}

func (s *Server) shopLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	account, err := authenticate(s.shops, req.Username, req.Password)
	if err != nil {
		s.writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	token, err := s.mintToken("shop", account.ID)
	if err != nil {
		log.Err(err).Msg("failed to mint shop token")
		s.writeError(w, http.StatusInternalServerError, "token generation failed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"token": token, "shop": account.Profile})
}

func (s *Server) adminMeHandler(w http.ResponseWriter, r *http.Request) {
	account, ok := s.accountFromToken(w, r, "admin", s.adminsByID)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"admin": account.Profile})
}

func (s *Server) shopMeHandler(w http.ResponseWriter, r *http.Request) {
	account, ok := s.accountFromToken(w, r, "shop", s.shopsByID)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"shop": account.Profile})
}

func (s *Server) accountFromToken(w http.ResponseWriter, r *http.Request, portal string, byID map[string]Account) (Account, bool) {
	raw, ok := bearerToken(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "missing bearer token")
		return Account{}, false
	}
	subject, err := s.verifyToken(raw, portal)
	if err != nil {
		s.writeError(w, http.StatusUnauthorized, "invalid token")
		return Account{}, false
	}
	account, found := byID[subject]
	if !found {
		s.writeError(w, http.StatusUnauthorized, "unknown account")
		return Account{}, false
	}
	return account, true
}

func (s *Server) acceptedHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]any{"message": message})
}
