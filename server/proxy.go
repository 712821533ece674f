package server

import (
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// The business CRUD surface (items, bills, repairs, offers, orders,
// expenses, reports) is owned and validated by the backend; the gateway
// relays those calls untouched with the portal session's bearer token
// attached.

// AdminAPIProxyHandler relays /admin/api/{path...} to the backend's /admin
// namespace using the admin session token.
func (s *Server) AdminAPIProxyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.adminSessionOr401(w)
		if !ok {
			return
		}
		s.forward(w, r, "/admin/"+r.PathValue("path"), sess.Token)
	}
}

// ShopAPIProxyHandler relays /shop/api/{path...} to the backend's /shop
// namespace using the shop session token.
func (s *Server) ShopAPIProxyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.shopSessionOr401(w)
		if !ok {
			return
		}
		s.forward(w, r, "/shop/"+r.PathValue("path"), sess.Token)
	}
}

func (s *Server) forward(w http.ResponseWriter, r *http.Request, path, token string) {
	resp, err := s.api.Forward(r.Context(), r.Method, path, r.URL.Query(), r.Header, r.Body, token)
	if err != nil {
		log.Ctx(r.Context()).Err(err).Str("path", path).Msg("backend forward failed")
		writeJSONError(w, http.StatusBadGateway, "backend unavailable")
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("response relay interrupted")
	}
}
