package routes_test

import (
	"testing"

	"github.com/paycanvas/console/routes"
	"github.com/paycanvas/console/session"
	"github.com/stretchr/testify/require"
)

func sessionWithRole(t *testing.T, role session.Role) session.Session {
	t.Helper()
	sess, err := session.NewAuthenticated("a", "r", "2024-01-01T00:00:00Z", session.User{ID: 1, Role: role})
	require.NoError(t, err)
	return sess
}

func TestGuardUnauthenticatedRedirectsToLogin(t *testing.T) {
	decision := routes.Evaluate(session.Default(), routes.RouteDashboard)

	require.Equal(t, routes.RedirectLogin, decision.Kind)
	require.Equal(t, routes.RouteLogin, decision.Target)
}

func TestGuardRoleDeniedRedirectsToDashboard(t *testing.T) {
	staff := sessionWithRole(t, session.RoleStaff)

	decision := routes.Evaluate(staff, routes.RoutePayroll)

	require.Equal(t, routes.RedirectHome, decision.Kind)
	require.Equal(t, routes.RouteDashboard, decision.Target)
	require.Equal(t, routes.RoutePayroll, decision.From)
}

func TestGuardRolePermittedRenders(t *testing.T) {
	admin := sessionWithRole(t, session.RoleCompanyAdmin)

	decision := routes.Evaluate(admin, routes.RoutePayroll)

	require.Equal(t, routes.Render, decision.Kind)
	require.Equal(t, routes.RoutePayroll, decision.Target)
}

func TestGuardUnknownPathRedirectsToRoleHome(t *testing.T) {
	admin := sessionWithRole(t, session.RoleSuperAdmin)

	decision := routes.Evaluate(admin, "/does-not-exist")

	require.Equal(t, routes.RedirectHome, decision.Kind)
	require.Equal(t, routes.RouteDashboard, decision.Target)
}

func TestGuardRoleMatrix(t *testing.T) {
	cases := []struct {
		role session.Role
		path string
		kind routes.DecisionKind
	}{
		{session.RoleSuperAdmin, routes.RouteDashboard, routes.Render},
		{session.RoleSuperAdmin, routes.RouteSuperCompanies, routes.Render},
		{session.RoleSuperAdmin, routes.RouteSuperFeatures, routes.Render},
		{session.RoleSuperAdmin, routes.RoutePayroll, routes.RedirectHome},
		{session.RoleCompanyAdmin, routes.RouteDailyMetrics, routes.Render},
		{session.RoleCompanyAdmin, routes.RouteStaffSalaryTiers, routes.Render},
		{session.RoleCompanyAdmin, routes.RouteSuperUsers, routes.RedirectHome},
		{session.RoleStaff, routes.RoutePayslips, routes.Render},
		{session.RoleStaff, routes.RouteStaffEmployees, routes.RedirectHome},
		{session.RoleStaff, routes.RouteSuperCompanies, routes.RedirectHome},
	}

	for _, tc := range cases {
		decision := routes.Evaluate(sessionWithRole(t, tc.role), tc.path)
		require.Equalf(t, tc.kind, decision.Kind, "%s requesting %s", tc.role, tc.path)
	}
}

func TestHomePerRole(t *testing.T) {
	require.Equal(t, routes.RouteDashboard, routes.Home(session.RoleSuperAdmin))
	require.Equal(t, routes.RouteDashboard, routes.Home(session.RoleCompanyAdmin))
	require.Equal(t, routes.RouteDashboard, routes.Home(session.RoleStaff))
}

func TestForRoleReturnsCopy(t *testing.T) {
	pages := routes.ForRole(session.RoleStaff)
	require.Equal(t, []string{routes.RouteDashboard, routes.RoutePayslips}, pages)

	pages[0] = "/mutated"
	require.Equal(t, []string{routes.RouteDashboard, routes.RoutePayslips}, routes.ForRole(session.RoleStaff))
}
