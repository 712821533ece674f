package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET /{$}", s.RootHandler())
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())
	s.RegisterRouteHandler("GET "+RouteMetrics, promhttp.Handler())

	// Admin portal. Pages past login are wrapped by the session guard; the
	// logout confirmation lives behind it too since it is part of the
	// protected chrome.
	s.RegisterRouteFunc("GET "+RouteAdminLogin, ChainMiddleware(s.AdminLoginPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteAdminLogin, ChainMiddleware(s.AdminLoginSubmissionHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteAdminDashboard, ChainMiddleware(s.AdminDashboardHandler(), s.HTMLMiddleware(s.RequireAdminSession())...))
	s.RegisterRouteFunc("GET "+RouteAdminLogout, ChainMiddleware(s.AdminLogoutConfirmHandler(), s.HTMLMiddleware(s.RequireAdminSession())...))
	s.RegisterRouteFunc("POST "+RouteAdminLogout, ChainMiddleware(s.AdminLogoutSubmissionHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteAdminForgotVerify, ChainMiddleware(s.AdminForgotVerifyHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteAdminResetPassword, ChainMiddleware(s.AdminResetPasswordHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc(RouteAdminAPI, ChainMiddleware(s.AdminAPIProxyHandler(), s.APIMiddleware()...))

	// Shop portal. The session check happens inline in each page handler
	// rather than in a middleware wrapper.
	s.RegisterRouteFunc("GET "+RouteShopLogin, ChainMiddleware(s.ShopLoginPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteShopLogin, ChainMiddleware(s.ShopLoginSubmissionHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteShopDashboard, ChainMiddleware(s.ShopDashboardHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteShopLogout, ChainMiddleware(s.ShopLogoutHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteShopProfile, ChainMiddleware(s.ShopProfileUpdateHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteShopForgotVerify, ChainMiddleware(s.ShopForgotVerifyHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteShopResetPassword, ChainMiddleware(s.ShopResetPasswordHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc(RouteShopAPI, ChainMiddleware(s.ShopAPIProxyHandler(), s.APIMiddleware()...))
}

// RootHandler sends an unauthenticated visitor to the shop login screen and
// an authenticated shop owner to their dashboard.
func (s *Server) RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.shop.Current(); ok {
			http.Redirect(w, r, RouteShopDashboard, http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RouteShopLogin, http.StatusSeeOther)
	}
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}
}
