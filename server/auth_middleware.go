package server

import (
	"net/http"

	"github.com/shopdesk/portalgate/session"
)

// RequireAdminSession guards the admin portal subtree. Without an active
// admin session the wrapped handler never runs and the request is redirected
// to the admin login screen. The check is a pure read of manager state,
// re-evaluated on every request; it has no side effect beyond the redirect.
func (s *Server) RequireAdminSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := s.admin.Current(); !ok {
				http.Redirect(w, r, RouteAdminLogin, http.StatusSeeOther)
				return
			}
			next(w, r)
		}
	}
}

// shopSessionOrRedirect is the shop portal's equivalent of the admin guard,
// applied inline by each shop page handler rather than as middleware — same
// contract, different placement. ok is false when the caller must return
// immediately because a redirect was written.
func (s *Server) shopSessionOrRedirect(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	sess, ok := s.shop.Current()
	if !ok {
		http.Redirect(w, r, RouteShopLogin, http.StatusSeeOther)
		return session.Session{}, false
	}
	return sess, true
}

// adminSessionOr401 is the API flavor of the admin guard: JSON 401 instead
// of a login redirect, for the CRUD passthrough.
func (s *Server) adminSessionOr401(w http.ResponseWriter) (session.Session, bool) {
	sess, ok := s.admin.Current()
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "not authenticated")
		return session.Session{}, false
	}
	return sess, true
}

func (s *Server) shopSessionOr401(w http.ResponseWriter) (session.Session, bool) {
	sess, ok := s.shop.Current()
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "not authenticated")
		return session.Session{}, false
	}
	return sess, true
}
