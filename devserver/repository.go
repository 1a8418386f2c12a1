package devserver

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/paycanvas/console/api"
	apperrors "github.com/paycanvas/console/internal/errors"
	"github.com/paycanvas/console/session"
)

// Account is a login-capable user of the development backend.
type Account struct {
	ID           int
	Email        string
	Name         string
	PasswordHash []byte
	CompanyID    int
	CompanyName  string
	Role         session.Role
	Features     []string
}

// Repository holds all development data in memory. Every collection is
// guarded by the single mutex; the data set is small enough that finer
// locking buys nothing.
type Repository struct {
	mu sync.RWMutex

	accounts      map[string]*Account
	nextAccountID int

	dashboard api.DashboardSummary
	daily     api.DailyReport

	jobs      []api.PayrollJob
	nextJobID int

	payslips map[string][]api.Payslip

	employees      map[int]*api.EmployeeMaster
	nextEmployeeID int

	stores      map[int]*api.StoreMaster
	nextStoreID int

	grades      map[int]*api.GradeMaster
	nextGradeID int

	tiers      map[int]*api.SalaryTierMaster
	nextTierID int

	features  map[string]*api.FeatureToggle
	companies []api.CompanySummary
}

func mustHash(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
}

// NewSeededRepository builds a repository pre-loaded with one account per
// role and enough master data to exercise every screen. All seed accounts
// use the password "password".
func NewSeededRepository() *Repository {
	password := mustHash("password")

	r := &Repository{
		accounts:       make(map[string]*Account),
		nextAccountID:  100,
		payslips:       make(map[string][]api.Payslip),
		employees:      make(map[int]*api.EmployeeMaster),
		nextEmployeeID: 4,
		stores:         make(map[int]*api.StoreMaster),
		nextStoreID:    4,
		grades:         make(map[int]*api.GradeMaster),
		nextGradeID:    4,
		tiers:          make(map[int]*api.SalaryTierMaster),
		nextTierID:     3,
		features:       make(map[string]*api.FeatureToggle),
		nextJobID:      2,
	}

	for _, account := range []*Account{
		{ID: 1, Email: "root@paycanvas.io", Name: "Platform Root", PasswordHash: password, CompanyID: 0, CompanyName: "", Role: session.RoleSuperAdmin},
		{ID: 2, Email: "admin@paycanvas.io", Name: "Aiko Tanaka", PasswordHash: password, CompanyID: 10, CompanyName: "Northwind Retail", Role: session.RoleCompanyAdmin, Features: []string{"payroll", "daily-metrics"}},
		{ID: 3, Email: "staff@paycanvas.io", Name: "Ben Okafor", PasswordHash: password, CompanyID: 10, CompanyName: "Northwind Retail", Role: session.RoleStaff},
	} {
		r.accounts[account.Email] = account
	}

	r.dashboard = api.DashboardSummary{
		Metrics: []api.SummaryMetric{
			{ID: "headcount", Label: "Active staff", Value: "42", Change: "+3", Positive: true},
			{ID: "gross-pay", Label: "Gross pay (Aug)", Value: "$186,400", Change: "+2.1%", Positive: true},
			{ID: "overtime", Label: "Overtime hours", Value: "118", Change: "+14", Positive: false},
		},
		Tasks: []api.PendingTask{
			{ID: "t1", Title: "Approve August payroll", Description: "3 payslips flagged for review", DueDate: "2025-09-05"},
			{ID: "t2", Title: "Confirm new hire grades", Description: "2 employees missing a grade"},
		},
		Announcements: []api.Announcement{
			{ID: "a1", Message: "September pay dates moved to the 27th", Date: "2025-08-28"},
		},
	}

	r.daily = api.DailyReport{
		Attendances: []api.DailyAttendance{
			{ID: "at1", Date: "2025-08-29", StaffName: "Ben Okafor", StoreName: "Harbourfront", CheckIn: "09:02", CheckOut: "17:31", WorkHours: 7.5, TardyMinutes: 2, Status: "PRESENT"},
			{ID: "at2", Date: "2025-08-29", StaffName: "Mei Ling", StoreName: "Central", CheckIn: "08:55", CheckOut: "18:05", WorkHours: 8.2, TardyMinutes: 0, Status: "PRESENT"},
		},
		StoreMetrics: []api.StoreMetric{
			{ID: "sm1", Date: "2025-08-29", StoreName: "Harbourfront", Sales: 12400, Discount: 310, TotalHours: 54.5},
			{ID: "sm2", Date: "2025-08-29", StoreName: "Central", Sales: 18750, Discount: 420, TotalHours: 62.0},
		},
		PersonalMetrics: []api.PersonalMetric{
			{ID: "pm1", Date: "2025-08-29", StaffName: "Ben Okafor", Sales: 3100, ProductSales: 640},
			{ID: "pm2", Date: "2025-08-29", StaffName: "Mei Ling", Sales: 4650, ProductSales: 910},
		},
	}

	r.jobs = []api.PayrollJob{
		{ID: "job-1", TargetMonth: "2025-07", Status: api.JobCompleted, Progress: 100, StartedAt: "2025-08-01T09:00:00Z"},
	}

	r.payslips["2025-07"] = []api.Payslip{
		{ID: "ps1", EmployeeName: "Ben Okafor", Role: "Sales Associate", BaseSalary: 3200, Allowances: 250, Deductions: 410, NetPay: 3040, Status: "PAID"},
		{ID: "ps2", EmployeeName: "Mei Ling", Role: "Store Manager", BaseSalary: 4500, Allowances: 600, Deductions: 580, NetPay: 4520, Status: "PAID"},
	}

	for _, store := range []*api.StoreMaster{
		{ID: 1, Name: "Harbourfront", StoreType: "FLAGSHIP", Address: "1 Quay Street"},
		{ID: 2, Name: "Central", StoreType: "STANDARD", Address: "88 Mercer Road"},
		{ID: 3, Name: "Airport", StoreType: "KIOSK"},
	} {
		r.stores[store.ID] = store
	}

	for _, grade := range []*api.GradeMaster{
		{ID: 1, GradeName: "Junior", CommissionRate: 0.02},
		{ID: 2, GradeName: "Senior", CommissionRate: 0.04},
		{ID: 3, GradeName: "Manager", CommissionRate: 0.06},
	} {
		r.grades[grade.ID] = grade
	}

	for _, tier := range []*api.SalaryTierMaster{
		{ID: 1, PlanName: "Standard", MonthlyDaysOff: 8, BaseSalary: 3200},
		{ID: 2, PlanName: "Manager", MonthlyDaysOff: 8, BaseSalary: 4500},
	} {
		r.tiers[tier.ID] = tier
	}

	intPtr := func(v int) *int { return &v }
	for _, employee := range []*api.EmployeeMaster{
		{ID: 1, Name: "Ben Okafor", EmploymentType: "FULL_TIME", GradeID: intPtr(1), SalaryTierID: intPtr(1), StoreID: intPtr(1)},
		{ID: 2, Name: "Mei Ling", EmploymentType: "FULL_TIME", GradeID: intPtr(3), SalaryTierID: intPtr(2), StoreID: intPtr(2), ManagerAllowance: intPtr(400)},
		{ID: 3, Name: "Sofia Marques", EmploymentType: "PART_TIME"},
	} {
		r.employees[employee.ID] = employee
	}

	for _, feature := range []*api.FeatureToggle{
		{ID: "payroll", Name: "Payroll runs", Description: "Monthly payroll calculation", EnabledTenants: 12, IsEnabled: true},
		{ID: "daily-metrics", Name: "Daily metrics", Description: "Store and staff daily reporting", EnabledTenants: 8, IsEnabled: true},
		{ID: "forecasting", Name: "Sales forecasting", Description: "Experimental demand forecasting", EnabledTenants: 1, IsEnabled: false},
	} {
		r.features[feature.ID] = feature
	}

	r.companies = []api.CompanySummary{
		{ID: 10, Name: "Northwind Retail", Status: "ACTIVE"},
		{ID: 11, Name: "Contoso Foods", Status: "ACTIVE"},
		{ID: 12, Name: "Fabrikam Outfitters", Status: "SUSPENDED"},
	}

	return r
}

func (r *Repository) AccountByEmail(email string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (r *Repository) AccountByID(id int) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *Repository) Dashboard() api.DashboardSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dashboard
}

func (r *Repository) Daily() api.DailyReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.daily
}

func (r *Repository) PayrollJobs() []api.PayrollJob {
	r.mu.RLock()
	defer r.mu.RUnlock()
	jobs := make([]api.PayrollJob, len(r.jobs))
	copy(jobs, r.jobs)
	return jobs
}

// StartPayrollJob queues a new run. It completes instantly since there is no
// real calculation behind it.
func (r *Repository) StartPayrollJob(targetMonth, startedAt string) api.PayrollJob {
	r.mu.Lock()
	defer r.mu.Unlock()
	job := api.PayrollJob{
		ID:          fmt.Sprintf("job-%d", r.nextJobID),
		TargetMonth: targetMonth,
		Status:      api.JobCompleted,
		Progress:    100,
		StartedAt:   startedAt,
	}
	r.nextJobID++
	r.jobs = append(r.jobs, job)
	return job
}

func (r *Repository) Payslips(targetMonth string) []api.Payslip {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payslips := make([]api.Payslip, len(r.payslips[targetMonth]))
	copy(payslips, r.payslips[targetMonth])
	return payslips
}

// Employees returns all employees with their grade, tier and store names
// resolved against the master data.
func (r *Repository) Employees() []api.EmployeeMaster {
	r.mu.RLock()
	defer r.mu.RUnlock()
	employees := make([]api.EmployeeMaster, 0, len(r.employees))
	for id := 1; id < r.nextEmployeeID; id++ {
		employee, ok := r.employees[id]
		if !ok {
			continue
		}
		employees = append(employees, r.resolveEmployee(*employee))
	}
	return employees
}

func (r *Repository) resolveEmployee(employee api.EmployeeMaster) api.EmployeeMaster {
	if employee.GradeID != nil {
		if grade, ok := r.grades[*employee.GradeID]; ok {
			employee.Grade = &grade.GradeName
		}
	}
	if employee.SalaryTierID != nil {
		if tier, ok := r.tiers[*employee.SalaryTierID]; ok {
			employee.SalaryPlan = &tier.PlanName
		}
	}
	if employee.StoreID != nil {
		if store, ok := r.stores[*employee.StoreID]; ok {
			employee.StoreName = &store.Name
		}
	}
	return employee
}

func (r *Repository) CreateEmployee(payload api.EmployeePayload) api.EmployeeMaster {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee := &api.EmployeeMaster{
		ID:                      r.nextEmployeeID,
		Name:                    payload.Name,
		EmploymentType:          payload.EmploymentType,
		GradeID:                 payload.GradeID,
		SalaryTierID:            payload.SalaryTierID,
		StoreID:                 payload.StoreID,
		GuaranteedMinimumSalary: payload.GuaranteedMinimumSalary,
		ManagerAllowance:        payload.ManagerAllowance,
	}
	r.nextEmployeeID++
	r.employees[employee.ID] = employee
	return r.resolveEmployee(*employee)
}

func (r *Repository) UpdateEmployee(id int, payload api.EmployeePayload) (api.EmployeeMaster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee, ok := r.employees[id]
	if !ok {
		return api.EmployeeMaster{}, apperrors.ErrNotFound
	}
	employee.Name = payload.Name
	employee.EmploymentType = payload.EmploymentType
	employee.GradeID = payload.GradeID
	employee.SalaryTierID = payload.SalaryTierID
	employee.StoreID = payload.StoreID
	employee.GuaranteedMinimumSalary = payload.GuaranteedMinimumSalary
	employee.ManagerAllowance = payload.ManagerAllowance
	return r.resolveEmployee(*employee), nil
}

func (r *Repository) DeleteEmployee(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *Repository) Stores() []api.StoreMaster {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stores := make([]api.StoreMaster, 0, len(r.stores))
	for id := 1; id < r.nextStoreID; id++ {
		if store, ok := r.stores[id]; ok {
			stores = append(stores, *store)
		}
	}
	return stores
}

func (r *Repository) CreateStore(payload api.StorePayload) api.StoreMaster {
	r.mu.Lock()
	defer r.mu.Unlock()
	store := &api.StoreMaster{ID: r.nextStoreID, Name: payload.Name, StoreType: payload.StoreType, Address: payload.Address}
	r.nextStoreID++
	r.stores[store.ID] = store
	return *store
}

func (r *Repository) UpdateStore(id int, payload api.StorePayload) (api.StoreMaster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, ok := r.stores[id]
	if !ok {
		return api.StoreMaster{}, apperrors.ErrNotFound
	}
	store.Name = payload.Name
	store.StoreType = payload.StoreType
	store.Address = payload.Address
	return *store, nil
}

func (r *Repository) DeleteStore(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stores[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.stores, id)
	return nil
}

func (r *Repository) Grades() []api.GradeMaster {
	r.mu.RLock()
	defer r.mu.RUnlock()
	grades := make([]api.GradeMaster, 0, len(r.grades))
	for id := 1; id < r.nextGradeID; id++ {
		if grade, ok := r.grades[id]; ok {
			grades = append(grades, *grade)
		}
	}
	return grades
}

func (r *Repository) CreateGrade(payload api.GradePayload) api.GradeMaster {
	r.mu.Lock()
	defer r.mu.Unlock()
	grade := &api.GradeMaster{ID: r.nextGradeID, GradeName: payload.GradeName, CommissionRate: payload.CommissionRatePercent / 100}
	r.nextGradeID++
	r.grades[grade.ID] = grade
	return *grade
}

func (r *Repository) UpdateGrade(id int, payload api.GradePayload) (api.GradeMaster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	grade, ok := r.grades[id]
	if !ok {
		return api.GradeMaster{}, apperrors.ErrNotFound
	}
	grade.GradeName = payload.GradeName
	grade.CommissionRate = payload.CommissionRatePercent / 100
	return *grade, nil
}

func (r *Repository) DeleteGrade(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.grades[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.grades, id)
	return nil
}

func (r *Repository) SalaryTiers() []api.SalaryTierMaster {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tiers := make([]api.SalaryTierMaster, 0, len(r.tiers))
	for id := 1; id < r.nextTierID; id++ {
		if tier, ok := r.tiers[id]; ok {
			tiers = append(tiers, *tier)
		}
	}
	return tiers
}

func (r *Repository) CreateSalaryTier(payload api.SalaryTierPayload) api.SalaryTierMaster {
	r.mu.Lock()
	defer r.mu.Unlock()
	tier := &api.SalaryTierMaster{ID: r.nextTierID, PlanName: payload.PlanName, MonthlyDaysOff: payload.MonthlyDaysOff, BaseSalary: payload.BaseSalary}
	r.nextTierID++
	r.tiers[tier.ID] = tier
	return *tier
}

func (r *Repository) UpdateSalaryTier(id int, payload api.SalaryTierPayload) (api.SalaryTierMaster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tier, ok := r.tiers[id]
	if !ok {
		return api.SalaryTierMaster{}, apperrors.ErrNotFound
	}
	tier.PlanName = payload.PlanName
	tier.MonthlyDaysOff = payload.MonthlyDaysOff
	tier.BaseSalary = payload.BaseSalary
	return *tier, nil
}

func (r *Repository) DeleteSalaryTier(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tiers[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.tiers, id)
	return nil
}

func (r *Repository) Features() []api.FeatureToggle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := []string{"payroll", "daily-metrics", "forecasting"}
	features := make([]api.FeatureToggle, 0, len(r.features))
	for _, id := range ids {
		if feature, ok := r.features[id]; ok {
			features = append(features, *feature)
		}
	}
	return features
}

func (r *Repository) SetFeatureEnabled(id string, enabled bool) (api.FeatureToggle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	feature, ok := r.features[id]
	if !ok {
		return api.FeatureToggle{}, apperrors.ErrNotFound
	}
	feature.IsEnabled = enabled
	return *feature, nil
}

func (r *Repository) Companies() []api.CompanySummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	companies := make([]api.CompanySummary, len(r.companies))
	copy(companies, r.companies)
	return companies
}

// CreateAdminUser provisions a COMPANY_ADMIN login for an existing company.
func (r *Repository) CreateAdminUser(payload api.AdminUserPayload) (api.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var companyName string
	for _, company := range r.companies {
		if company.ID == payload.CompanyID {
			companyName = company.Name
			break
		}
	}
	if companyName == "" {
		return api.AdminUser{}, apperrors.ErrNotFound
	}
	if _, exists := r.accounts[payload.Email]; exists {
		return api.AdminUser{}, apperrors.ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return api.AdminUser{}, err
	}

	account := &Account{
		ID:           r.nextAccountID,
		Email:        payload.Email,
		Name:         payload.DisplayName,
		PasswordHash: hash,
		CompanyID:    payload.CompanyID,
		CompanyName:  companyName,
		Role:         session.RoleCompanyAdmin,
	}
	r.nextAccountID++
	r.accounts[account.Email] = account

	return api.AdminUser{
		ID:          account.ID,
		Email:       account.Email,
		DisplayName: account.Name,
		CompanyID:   account.CompanyID,
		CompanyName: account.CompanyName,
	}, nil
}
