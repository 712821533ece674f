package server

import (
	"encoding/json"
	"net/http"

	"github.com/shopdesk/portalgate/session"
)

// AdminDashboardHandler renders the admin layout shell. The guard has
// already run, so a session is guaranteed here.
func (s *Server) AdminDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := s.admin.Current()
		renderHTML(w, adminDashboardTmpl, adminDashboardData{
			Name:  sess.Profile.Field("name"),
			Email: sess.Profile.Field("email"),
			Phone: sess.Profile.Field("phone"),
		})
	}
}

// ShopDashboardHandler renders the shop layout shell. The session check is
// inline: no session means the redirect has been written and we return.
func (s *Server) ShopDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.shopSessionOrRedirect(w, r)
		if !ok {
			return
		}
		renderHTML(w, shopDashboardTmpl, shopDashboardData{
			Name:      sess.Profile.Field("name"),
			OwnerName: sess.Profile.Field("ownerName"),
			Logo:      sess.Profile.Field("logo"),
		})
	}
}

// ShopProfileUpdateHandler shallow-merges a JSON partial into the shop
// profile and returns the merged session profile.
func (s *Server) ShopProfileUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.shopSessionOr401(w); !ok {
			return
		}
		var partial session.Profile
		if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		s.shop.UpdateShop(partial)

		sess, ok := s.shop.Current()
		if !ok {
			// Session vanished between the check and the update (e.g. a
			// concurrent self-healing logout); report it instead of a
			// stale merge result.
			writeJSONError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"shop": sess.Profile})
	}
}
