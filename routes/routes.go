// Package routes defines the navigable pages of the console, the roles
// allowed on each, and the guard that gates navigation.
package routes

import "github.com/paycanvas/console/session"

// Route path constants
// All navigable pages are defined here to ensure consistency and prevent typos
const (
	RouteLogin = "/login"

	RouteDashboard    = "/dashboard"
	RouteDailyMetrics = "/daily-metrics"
	RoutePayroll      = "/payroll"
	RoutePayslips     = "/payslips"

	// Master-data screens
	RouteStaffEmployees   = "/staff/employees"
	RouteStaffStores      = "/staff/stores"
	RouteStaffGrades      = "/staff/grades"
	RouteStaffSalaryTiers = "/staff/salary-tiers"

	// Platform administration screens
	RouteSuperUsers     = "/super/users"
	RouteSuperCompanies = "/super/companies"
	RouteSuperFeatures  = "/super/features"
)

// allowedRoles maps each page to the roles permitted to render it.
var allowedRoles = map[string][]session.Role{
	RouteDashboard:        {session.RoleSuperAdmin, session.RoleCompanyAdmin, session.RoleStaff},
	RouteDailyMetrics:     {session.RoleCompanyAdmin},
	RoutePayroll:          {session.RoleCompanyAdmin},
	RoutePayslips:         {session.RoleCompanyAdmin, session.RoleStaff},
	RouteStaffEmployees:   {session.RoleCompanyAdmin},
	RouteStaffStores:      {session.RoleCompanyAdmin},
	RouteStaffGrades:      {session.RoleCompanyAdmin},
	RouteStaffSalaryTiers: {session.RoleCompanyAdmin},
	RouteSuperUsers:       {session.RoleSuperAdmin},
	RouteSuperCompanies:   {session.RoleSuperAdmin},
	RouteSuperFeatures:    {session.RoleSuperAdmin},
}

// routesByRole lists the pages reachable per role, first entry being the
// default landing page.
var routesByRole = map[session.Role][]string{
	session.RoleSuperAdmin:   {RouteDashboard, RouteSuperUsers, RouteSuperCompanies, RouteSuperFeatures},
	session.RoleCompanyAdmin: {RouteDashboard, RouteDailyMetrics, RoutePayroll, RoutePayslips, RouteStaffEmployees, RouteStaffStores, RouteStaffGrades, RouteStaffSalaryTiers},
	session.RoleStaff:        {RouteDashboard, RoutePayslips},
}

// Home returns the default landing page for a role.
func Home(role session.Role) string {
	if pages, ok := routesByRole[role]; ok && len(pages) > 0 {
		return pages[0]
	}
	return RouteDashboard
}

// ForRole returns the pages reachable by the given role, used to build the
// navigation menu.
func ForRole(role session.Role) []string {
	pages := routesByRole[role]
	out := make([]string, len(pages))
	copy(out, pages)
	return out
}

// Known reports whether path is a defined page.
func Known(path string) bool {
	_, ok := allowedRoles[path]
	return ok || path == RouteLogin
}
