package console

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/paycanvas/console/api"
	"github.com/paycanvas/console/routes"
)

func (c *Console) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <email> <password>")
	}

	sess, err := c.controller.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "logged in as %s (%s)\n", sess.User.Name, sess.User.Role)

	// A navigation recorded before the redirect to login is resumed now,
	// provided the new role is actually allowed there.
	c.mu.Lock()
	target := c.returnTo
	c.returnTo = ""
	c.mu.Unlock()
	if target == "" {
		target = routes.Home(sess.User.Role)
	}
	if c.navigate(target) == "" {
		c.navigate(routes.Home(sess.User.Role))
	}
	return nil
}

func (c *Console) cmdLogout() {
	c.controller.Logout()
	c.mu.Lock()
	c.page = routes.RouteLogin
	c.returnTo = ""
	c.mu.Unlock()
	fmt.Fprintln(c.out, "logged out")
}

func (c *Console) cmdWhoami() {
	sess := c.controller.Current()
	if !sess.IsAuthenticated {
		fmt.Fprintln(c.out, "not logged in")
		return
	}
	fmt.Fprintf(c.out, "%s <id %d>\n", sess.User.Name, sess.User.ID)
	fmt.Fprintf(c.out, "role:     %s\n", sess.User.Role)
	if sess.User.CompanyName != "" {
		fmt.Fprintf(c.out, "company:  %s (id %d)\n", sess.User.CompanyName, sess.User.CompanyID)
	}
	if len(sess.User.EnabledFeatures) > 0 {
		fmt.Fprintf(c.out, "features: %v\n", sess.User.EnabledFeatures)
	}
	fmt.Fprintf(c.out, "expires:  %s\n", sess.ExpiresAt)
}

// cmdToken decodes the held access token without verifying its signature;
// the console has no signing key and only wants the claims for display.
func (c *Console) cmdToken() error {
	sess := c.controller.Current()
	if !sess.IsAuthenticated {
		return errors.New("not logged in")
	}

	parsed, _, err := jwtlib.NewParser().ParseUnverified(sess.AccessToken, jwtlib.MapClaims{})
	if err != nil {
		return errors.Wrap(err, "[Console.cmdToken] decode access token")
	}
	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return errors.New("[Console.cmdToken] unexpected claim shape")
	}

	keys := make([]string, 0, len(claims))
	for k := range claims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(c.out, "%-12s %v\n", k, claims[k])
	}
	return nil
}

func (c *Console) cmdRoutes() {
	role, ok := c.controller.Current().Role()
	if !ok {
		fmt.Fprintln(c.out, routes.RouteLogin)
		return
	}
	for _, page := range routes.ForRole(role) {
		marker := " "
		if page == c.Page() {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %s\n", marker, page)
	}
}

func (c *Console) cmdOpen(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: open <path>")
	}
	page := c.navigate(args[0])
	if page == "" {
		return nil
	}
	return c.renderPage(ctx, page)
}

// renderPage fetches and prints the data behind an admitted page.
func (c *Console) renderPage(ctx context.Context, page string) error {
	switch page {
	case routes.RouteDashboard:
		return c.renderDashboard(ctx)
	case routes.RouteDailyMetrics:
		return c.renderDaily(ctx)
	case routes.RoutePayroll:
		return c.renderPayrollJobs(ctx)
	case routes.RoutePayslips:
		fmt.Fprintln(c.out, "pick a month: payslips <YYYY-MM>")
		return nil
	case routes.RouteStaffEmployees:
		return c.renderEmployees(ctx)
	case routes.RouteStaffStores:
		return c.renderStores(ctx)
	case routes.RouteStaffGrades:
		return c.renderGrades(ctx)
	case routes.RouteStaffSalaryTiers:
		return c.renderTiers(ctx)
	case routes.RouteSuperCompanies:
		return c.renderCompanies(ctx)
	case routes.RouteSuperFeatures:
		return c.renderFeatures(ctx)
	case routes.RouteSuperUsers:
		fmt.Fprintln(c.out, "provision with: super add-admin <companyId> <email> <name> <password>")
		return nil
	}
	return nil
}

func (c *Console) cmdPayroll(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "jobs" {
		return c.onPage(ctx, routes.RoutePayroll, func() error { return c.renderPayrollJobs(ctx) })
	}
	if args[0] == "run" {
		if len(args) != 2 {
			return errors.New("usage: payroll run <YYYY-MM>")
		}
		return c.onPage(ctx, routes.RoutePayroll, func() error {
			job, err := c.client.ExecutePayroll(ctx, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "started %s for %s (%s)\n", job.ID, job.TargetMonth, job.Status)
			return nil
		})
	}
	return errors.New("usage: payroll jobs | payroll run <YYYY-MM>")
}

func (c *Console) cmdPayslips(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: payslips <YYYY-MM>")
	}
	return c.onPage(ctx, routes.RoutePayslips, func() error { return c.renderPayslips(ctx, args[0]) })
}

func (c *Console) cmdStaff(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return c.onPage(ctx, routes.RouteStaffEmployees, func() error { return c.renderEmployees(ctx) })
	}
	switch args[0] {
	case "add":
		if len(args) != 3 {
			return errors.New("usage: staff add <name> <FULL_TIME|PART_TIME>")
		}
		return c.onPage(ctx, routes.RouteStaffEmployees, func() error {
			employee, err := c.client.CreateEmployee(ctx, api.EmployeePayload{Name: args[1], EmploymentType: args[2]})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "created employee %d\n", employee.ID)
			return nil
		})
	case "rm":
		if len(args) != 2 {
			return errors.New("usage: staff rm <id>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.New("id must be a number")
		}
		return c.onPage(ctx, routes.RouteStaffEmployees, func() error {
			if err := c.client.DeleteEmployee(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "deleted employee %d\n", id)
			return nil
		})
	}
	return errors.New("usage: staff list | staff add <name> <type> | staff rm <id>")
}

func (c *Console) cmdStores(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return c.onPage(ctx, routes.RouteStaffStores, func() error { return c.renderStores(ctx) })
	}
	switch args[0] {
	case "add":
		if len(args) < 2 {
			return errors.New("usage: stores add <name> [type]")
		}
		payload := api.StorePayload{Name: args[1]}
		if len(args) > 2 {
			payload.StoreType = args[2]
		}
		return c.onPage(ctx, routes.RouteStaffStores, func() error {
			store, err := c.client.CreateStore(ctx, payload)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "created store %d\n", store.ID)
			return nil
		})
	case "rm":
		if len(args) != 2 {
			return errors.New("usage: stores rm <id>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.New("id must be a number")
		}
		return c.onPage(ctx, routes.RouteStaffStores, func() error {
			if err := c.client.DeleteStore(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "deleted store %d\n", id)
			return nil
		})
	}
	return errors.New("usage: stores list | stores add <name> [type] | stores rm <id>")
}

func (c *Console) cmdGrades(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return c.onPage(ctx, routes.RouteStaffGrades, func() error { return c.renderGrades(ctx) })
	}
	switch args[0] {
	case "add":
		if len(args) != 3 {
			return errors.New("usage: grades add <name> <commission%>")
		}
		rate, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return errors.New("commission must be a number")
		}
		return c.onPage(ctx, routes.RouteStaffGrades, func() error {
			grade, err := c.client.CreateGrade(ctx, api.GradePayload{GradeName: args[1], CommissionRatePercent: rate})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "created grade %d\n", grade.ID)
			return nil
		})
	case "rm":
		if len(args) != 2 {
			return errors.New("usage: grades rm <id>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.New("id must be a number")
		}
		return c.onPage(ctx, routes.RouteStaffGrades, func() error {
			if err := c.client.DeleteGrade(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "deleted grade %d\n", id)
			return nil
		})
	}
	return errors.New("usage: grades list | grades add <name> <commission%> | grades rm <id>")
}

func (c *Console) cmdTiers(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return c.onPage(ctx, routes.RouteStaffSalaryTiers, func() error { return c.renderTiers(ctx) })
	}
	switch args[0] {
	case "add":
		if len(args) != 4 {
			return errors.New("usage: tiers add <name> <daysOff> <baseSalary>")
		}
		daysOff, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.New("daysOff must be a number")
		}
		baseSalary, err := strconv.Atoi(args[3])
		if err != nil {
			return errors.New("baseSalary must be a number")
		}
		return c.onPage(ctx, routes.RouteStaffSalaryTiers, func() error {
			tier, err := c.client.CreateSalaryTier(ctx, api.SalaryTierPayload{PlanName: args[1], MonthlyDaysOff: daysOff, BaseSalary: baseSalary})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "created salary tier %d\n", tier.ID)
			return nil
		})
	case "rm":
		if len(args) != 2 {
			return errors.New("usage: tiers rm <id>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.New("id must be a number")
		}
		return c.onPage(ctx, routes.RouteStaffSalaryTiers, func() error {
			if err := c.client.DeleteSalaryTier(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "deleted salary tier %d\n", id)
			return nil
		})
	}
	return errors.New("usage: tiers list | tiers add <name> <daysOff> <baseSalary> | tiers rm <id>")
}

func (c *Console) cmdFeatures(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return c.onPage(ctx, routes.RouteSuperFeatures, func() error { return c.renderFeatures(ctx) })
	}
	if args[0] == "toggle" {
		if len(args) != 3 || (args[2] != "on" && args[2] != "off") {
			return errors.New("usage: features toggle <id> on|off")
		}
		return c.onPage(ctx, routes.RouteSuperFeatures, func() error {
			feature, err := c.client.UpdateFeature(ctx, args[1], args[2] == "on")
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s is now %s\n", feature.Name, onOff(feature.IsEnabled))
			return nil
		})
	}
	return errors.New("usage: features list | features toggle <id> on|off")
}

func (c *Console) cmdSuper(ctx context.Context, args []string) error {
	if len(args) != 5 || args[0] != "add-admin" {
		return errors.New("usage: super add-admin <companyId> <email> <name> <password>")
	}
	companyID, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.New("companyId must be a number")
	}
	return c.onPage(ctx, routes.RouteSuperUsers, func() error {
		user, err := c.client.CreateCompanyAdmin(ctx, api.AdminUserPayload{
			CompanyID:   companyID,
			Email:       args[2],
			DisplayName: args[3],
			Password:    args[4],
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "created admin %s for %s\n", user.Email, user.CompanyName)
		return nil
	})
}
