package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// AdminLoginPageHandler displays the admin login form (GET /admin/login).
func (s *Server) AdminLoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := loginPageData{
			Title:           "Back Office",
			Action:          RouteAdminLogin,
			IdentifierLabel: "Email",
			IdentifierField: "email",
			Identifier:      r.URL.Query().Get("email"),
			Error:           r.URL.Query().Get("error"),
		}
		renderHTML(w, loginTmpl, data)
	}
}

// AdminLoginSubmissionHandler processes the admin login form. The backend
// call and the session commit happen here; the manager itself only receives
// the full login payload.
func (s *Server) AdminLoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		email := r.FormValue("email")
		password := r.FormValue("password")
		if email == "" || password == "" {
			renderLoginError(w, r, RouteAdminLogin, "Email and password are required", "email", email)
			return
		}

		sess, err := s.api.AdminLogin(r.Context(), email, password)
		if err != nil {
			log.Ctx(r.Context()).Info().Err(err).Msg("admin login rejected")
			renderLoginError(w, r, RouteAdminLogin, userMessage(err), "email", email)
			return
		}

		s.admin.Login(sess)
		redirectSuccess(w, r, RouteAdminDashboard)
	}
}

// AdminLogoutConfirmHandler shows the confirmation step the admin topbar
// requires before committing to logout.
func (s *Server) AdminLogoutConfirmHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderHTML(w, logoutConfirmTmpl, nil)
	}
}

// AdminLogoutSubmissionHandler clears the admin session and sends the
// browser back to the dashboard; the guard's next evaluation performs the
// actual bounce to the login screen.
func (s *Server) AdminLogoutSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.admin.Logout()
		redirectSuccess(w, r, RouteAdminDashboard)
	}
}

// ShopLoginPageHandler displays the shop login form (GET /shop/login).
func (s *Server) ShopLoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := loginPageData{
			Title:           "Shop Portal",
			Action:          RouteShopLogin,
			IdentifierLabel: "Username",
			IdentifierField: "username",
			Identifier:      r.URL.Query().Get("username"),
			Error:           r.URL.Query().Get("error"),
		}
		renderHTML(w, loginTmpl, data)
	}
}

// ShopLoginSubmissionHandler processes the shop login form through the shop
// manager. The manager's in-flight flag stands in for a disabled submit
// button: a submission racing another one is turned away rather than issued
// twice.
func (s *Server) ShopLoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		username := r.FormValue("username")
		password := r.FormValue("password")
		if username == "" || password == "" {
			renderLoginError(w, r, RouteShopLogin, "Username and password are required", "username", username)
			return
		}
		if s.shop.LoginInFlight() {
			renderLoginError(w, r, RouteShopLogin, "Sign-in already in progress", "username", username)
			return
		}

		if _, err := s.shop.Login(r.Context(), username, password); err != nil {
			log.Ctx(r.Context()).Info().Err(err).Msg("shop login rejected")
			renderLoginError(w, r, RouteShopLogin, userMessage(err), "username", username)
			return
		}
		redirectSuccess(w, r, RouteShopDashboard)
	}
}

// ShopLogoutHandler clears the shop session. The redirect goes back to the
// dashboard, whose inline session check completes the bounce to login.
func (s *Server) ShopLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.shop.Logout()
		redirectSuccess(w, r, RouteShopDashboard)
	}
}

// renderLoginError redirects back to the login page with an error message,
// preserving the typed identifier.
func renderLoginError(w http.ResponseWriter, r *http.Request, loginRoute, errorMsg, identifierField, identifier string) {
	redirectURL := loginRoute + "?error=" + url.QueryEscape(errorMsg)
	if identifier != "" {
		redirectURL += "&" + identifierField + "=" + url.QueryEscape(identifier)
	}
	redirectSuccess(w, r, redirectURL)
}
