package server

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/shopdesk/portalgate/backend"
	"github.com/shopdesk/portalgate/internal/errors"
)

const (
	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"
)

func renderHTML(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", contentTypeHTML)
	if err := tmpl.Execute(w, data); err != nil {
		log.Err(err).Str("template", tmpl.Name()).Msg("failed to render template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Err(err).Msg("failed to encode response")
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message})
}

// userMessage extracts a message fit for display from a failed backend call.
// Backend rejections keep the server's wording; transport failures get a
// generic line.
func userMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Unable to reach the server, please try again"
}

// relayError converts a failed backend call into a response: backend
// rejections are relayed with their status, transport failures become 502.
func relayError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		writeJSONError(w, apiErr.StatusCode, apiErr.Message)
		return
	}
	writeJSONError(w, http.StatusBadGateway, errors.ErrBackendUnavailable.Error())
}

func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}
