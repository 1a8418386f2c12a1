package devserver

import (
	"net/http"

	"github.com/paycanvas/console/session"
)

// Route path constants
// All API routes are defined here to ensure consistency and prevent typos
const (
	RouteAuthLogin   = "/api/auth/login"
	RouteAuthRefresh = "/api/auth/refresh"

	RouteDashboardSummary = "/api/dashboard/summary"
	RouteDaily            = "/api/daily"

	RoutePayrollJobs    = "/api/payroll/jobs"
	RoutePayrollExecute = "/api/payroll/execute"
	RoutePayslips       = "/api/payslips"

	RouteStaff     = "/api/staff"
	RouteStaffByID = "/api/staff/{id}"

	RouteMasterStores         = "/api/masters/stores"
	RouteMasterStoreByID      = "/api/masters/stores/{id}"
	RouteMasterGrades         = "/api/masters/grades"
	RouteMasterGradeByID      = "/api/masters/grades/{id}"
	RouteMasterSalaryTiers    = "/api/masters/salary-tiers"
	RouteMasterSalaryTierByID = "/api/masters/salary-tiers/{id}"

	RouteFeatures    = "/api/features"
	RouteFeatureByID = "/api/features/{id}"

	RouteSuperCompanies = "/api/super/companies"
	RouteSuperUsers     = "/api/super/users"
)

func (s *Server) initRoutes() {
	anyRole := []session.Role{session.RoleSuperAdmin, session.RoleCompanyAdmin, session.RoleStaff}
	companyAdmin := []session.Role{session.RoleCompanyAdmin}
	superAdmin := []session.Role{session.RoleSuperAdmin}
	payslipReaders := []session.Role{session.RoleCompanyAdmin, session.RoleStaff}

	// Authentication (unauthenticated by definition)
	s.RegisterRouteFunc("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteAuthRefresh, ChainMiddleware(s.RefreshHandler(), s.APIMiddleware()...))

	// Dashboard and daily metrics
	s.RegisterRouteFunc("GET "+RouteDashboardSummary, s.protected(s.DashboardSummaryHandler(), anyRole))
	s.RegisterRouteFunc("GET "+RouteDaily, s.protected(s.DailyHandler(), companyAdmin))

	// Payroll
	s.RegisterRouteFunc("GET "+RoutePayrollJobs, s.protected(s.PayrollJobsHandler(), companyAdmin))
	s.RegisterRouteFunc("POST "+RoutePayrollExecute, s.protected(s.PayrollExecuteHandler(), companyAdmin))
	s.RegisterRouteFunc("GET "+RoutePayslips, s.protected(s.PayslipsHandler(), payslipReaders))

	// Staff master
	s.RegisterRouteFunc("GET "+RouteStaff, s.protected(s.EmployeesHandler(), companyAdmin))
	s.RegisterRouteFunc("POST "+RouteStaff, s.protected(s.CreateEmployeeHandler(), companyAdmin))
	s.RegisterRouteFunc("PUT "+RouteStaffByID, s.protected(s.UpdateEmployeeHandler(), companyAdmin))
	s.RegisterRouteFunc("DELETE "+RouteStaffByID, s.protected(s.DeleteEmployeeHandler(), companyAdmin))

	// Master data
	s.RegisterRouteFunc("GET "+RouteMasterStores, s.protected(s.StoresHandler(), companyAdmin))
	s.RegisterRouteFunc("POST "+RouteMasterStores, s.protected(s.CreateStoreHandler(), companyAdmin))
	s.RegisterRouteFunc("PUT "+RouteMasterStoreByID, s.protected(s.UpdateStoreHandler(), companyAdmin))
	s.RegisterRouteFunc("DELETE "+RouteMasterStoreByID, s.protected(s.DeleteStoreHandler(), companyAdmin))
	s.RegisterRouteFunc("GET "+RouteMasterGrades, s.protected(s.GradesHandler(), companyAdmin))
	s.RegisterRouteFunc("POST "+RouteMasterGrades, s.protected(s.CreateGradeHandler(), companyAdmin))
	s.RegisterRouteFunc("PUT "+RouteMasterGradeByID, s.protected(s.UpdateGradeHandler(), companyAdmin))
	s.RegisterRouteFunc("DELETE "+RouteMasterGradeByID, s.protected(s.DeleteGradeHandler(), companyAdmin))
	s.RegisterRouteFunc("GET "+RouteMasterSalaryTiers, s.protected(s.SalaryTiersHandler(), companyAdmin))
	s.RegisterRouteFunc("POST "+RouteMasterSalaryTiers, s.protected(s.CreateSalaryTierHandler(), companyAdmin))
	s.RegisterRouteFunc("PUT "+RouteMasterSalaryTierByID, s.protected(s.UpdateSalaryTierHandler(), companyAdmin))
	s.RegisterRouteFunc("DELETE "+RouteMasterSalaryTierByID, s.protected(s.DeleteSalaryTierHandler(), companyAdmin))

	// Feature toggles and platform administration
	s.RegisterRouteFunc("GET "+RouteFeatures, s.protected(s.FeaturesHandler(), superAdmin))
	s.RegisterRouteFunc("PATCH "+RouteFeatureByID, s.protected(s.UpdateFeatureHandler(), superAdmin))
	s.RegisterRouteFunc("GET "+RouteSuperCompanies, s.protected(s.CompaniesHandler(), superAdmin))
	s.RegisterRouteFunc("POST "+RouteSuperUsers, s.protected(s.CreateAdminUserHandler(), superAdmin))
}

// protected wraps a handler in the standard API middleware plus bearer
// verification and a role allow-list.
func (s *Server) protected(handler func(http.ResponseWriter, *http.Request), roles []session.Role) func(http.ResponseWriter, *http.Request) {
	mw := append(s.APIMiddleware(), s.RequireAuth(), s.RequireRole(roles...))
	return ChainMiddleware(handler, mw...)
}
