package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Admin portal
	RouteAdminLogin         = "/admin/login"
	RouteAdminLogout        = "/admin/logout"
	RouteAdminDashboard     = "/admin/dashboard"
	RouteAdminForgotVerify  = "/admin/forgot-verify"
	RouteAdminResetPassword = "/admin/reset-password"
	RouteAdminAPI           = "/admin/api/{path...}"

	// Shop portal
	RouteShopLogin         = "/shop/login"
	RouteShopLogout        = "/shop/logout"
	RouteShopDashboard     = "/shop/dashboard"
	RouteShopProfile       = "/shop/profile"
	RouteShopForgotVerify  = "/shop/forgot-verify"
	RouteShopResetPassword = "/shop/reset-password"
	RouteShopAPI           = "/shop/api/{path...}"

	// Operational
	RouteHealth  = "/health"
	RouteMetrics = "/metrics"
)
