package server

import (
	"context"
	"encoding/json"
	"net/http"
)

// The password recovery endpoints are simple call-throughs: the gateway
// forwards the JSON payload unauthenticated and relays the backend's answer.

func (s *Server) AdminForgotVerifyHandler() http.HandlerFunc {
	return s.callThroughHandler(s.api.AdminForgotVerify)
}

func (s *Server) AdminResetPasswordHandler() http.HandlerFunc {
	return s.callThroughHandler(s.api.AdminResetPassword)
}

func (s *Server) ShopForgotVerifyHandler() http.HandlerFunc {
	return s.callThroughHandler(s.api.ShopForgotVerify)
}

func (s *Server) ShopResetPasswordHandler() http.HandlerFunc {
	return s.callThroughHandler(s.api.ShopResetPassword)
}

func (s *Server) callThroughHandler(call func(context.Context, map[string]any) (map[string]any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		out, err := call(r.Context(), payload)
		if err != nil {
			relayError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}
