package console

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
)

// ANSI colours for the prompt and notices.
const (
	colourCyan   = "\033[36m"
	colourYellow = "\033[33m"
	colourGreen  = "\033[32m"
	colourReset  = "\033[0m"
)

func (c *Console) warn(msg string) string {
	return colourYellow + msg + colourReset
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// table prints rows under a header through a tabwriter.
func (c *Console) table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func (c *Console) renderDashboard(ctx context.Context) error {
	summary, err := c.client.DashboardSummary(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(summary.Metrics))
	for _, m := range summary.Metrics {
		change := m.Change
		if m.Positive {
			change = colourGreen + change + colourReset
		}
		rows = append(rows, []string{m.Label, m.Value, change})
	}
	c.table([]string{"METRIC", "VALUE", "CHANGE"}, rows)

	if len(summary.Tasks) > 0 {
		fmt.Fprintln(c.out, "\nPending tasks:")
		for _, t := range summary.Tasks {
			due := ""
			if t.DueDate != "" {
				due = " (due " + t.DueDate + ")"
			}
			fmt.Fprintf(c.out, "  - %s%s: %s\n", t.Title, due, t.Description)
		}
	}
	for _, a := range summary.Announcements {
		fmt.Fprintf(c.out, "\n[%s] %s\n", a.Date, a.Message)
	}
	return nil
}

func (c *Console) renderDaily(ctx context.Context) error {
	report, err := c.client.Daily(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(report.Attendances))
	for _, a := range report.Attendances {
		rows = append(rows, []string{a.Date, a.StaffName, a.StoreName, a.CheckIn, a.CheckOut,
			fmt.Sprintf("%.1f", a.WorkHours), fmt.Sprintf("%d", a.TardyMinutes), a.Status})
	}
	c.table([]string{"DATE", "STAFF", "STORE", "IN", "OUT", "HOURS", "TARDY", "STATUS"}, rows)

	fmt.Fprintln(c.out)
	rows = rows[:0]
	for _, m := range report.StoreMetrics {
		rows = append(rows, []string{m.Date, m.StoreName, fmt.Sprintf("%d", m.Sales),
			fmt.Sprintf("%d", m.Discount), fmt.Sprintf("%.1f", m.TotalHours)})
	}
	c.table([]string{"DATE", "STORE", "SALES", "DISCOUNT", "HOURS"}, rows)
	return nil
}

func (c *Console) renderPayrollJobs(ctx context.Context) error {
	jobs, err := c.client.PayrollJobs(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{j.ID, j.TargetMonth, j.Status, fmt.Sprintf("%d%%", j.Progress), j.StartedAt})
	}
	c.table([]string{"JOB", "MONTH", "STATUS", "PROGRESS", "STARTED"}, rows)
	return nil
}

func (c *Console) renderPayslips(ctx context.Context, targetMonth string) error {
	payslips, err := c.client.Payslips(ctx, targetMonth)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(payslips))
	for _, p := range payslips {
		rows = append(rows, []string{p.EmployeeName, p.Role, fmt.Sprintf("%d", p.BaseSalary),
			fmt.Sprintf("%d", p.Allowances), fmt.Sprintf("%d", p.Deductions), fmt.Sprintf("%d", p.NetPay), p.Status})
	}
	c.table([]string{"EMPLOYEE", "ROLE", "BASE", "ALLOW", "DEDUCT", "NET", "STATUS"}, rows)
	return nil
}

func (c *Console) renderEmployees(ctx context.Context) error {
	employees, err := c.client.Employees(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{fmt.Sprintf("%d", e.ID), e.Name, e.EmploymentType,
			deref(e.Grade), deref(e.SalaryPlan), deref(e.StoreName)})
	}
	c.table([]string{"ID", "NAME", "TYPE", "GRADE", "PLAN", "STORE"}, rows)
	return nil
}

func (c *Console) renderStores(ctx context.Context) error {
	stores, err := c.client.Stores(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(stores))
	for _, s := range stores {
		rows = append(rows, []string{fmt.Sprintf("%d", s.ID), s.Name, s.StoreType, s.Address})
	}
	c.table([]string{"ID", "NAME", "TYPE", "ADDRESS"}, rows)
	return nil
}

func (c *Console) renderGrades(ctx context.Context) error {
	grades, err := c.client.Grades(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(grades))
	for _, g := range grades {
		rows = append(rows, []string{fmt.Sprintf("%d", g.ID), g.GradeName, fmt.Sprintf("%.1f%%", g.CommissionRate*100)})
	}
	c.table([]string{"ID", "GRADE", "COMMISSION"}, rows)
	return nil
}

func (c *Console) renderTiers(ctx context.Context) error {
	tiers, err := c.client.SalaryTiers(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(tiers))
	for _, t := range tiers {
		rows = append(rows, []string{fmt.Sprintf("%d", t.ID), t.PlanName,
			fmt.Sprintf("%d", t.MonthlyDaysOff), fmt.Sprintf("%d", t.BaseSalary)})
	}
	c.table([]string{"ID", "PLAN", "DAYS OFF", "BASE"}, rows)
	return nil
}

func (c *Console) renderCompanies(ctx context.Context) error {
	companies, err := c.client.Companies(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(companies))
	for _, company := range companies {
		rows = append(rows, []string{fmt.Sprintf("%d", company.ID), company.Name, company.Status})
	}
	c.table([]string{"ID", "COMPANY", "STATUS"}, rows)
	return nil
}

func (c *Console) renderFeatures(ctx context.Context) error {
	features, err := c.client.Features(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(features))
	for _, f := range features {
		rows = append(rows, []string{f.ID, f.Name, onOff(f.IsEnabled), fmt.Sprintf("%d", f.EnabledTenants), f.Description})
	}
	c.table([]string{"ID", "FEATURE", "STATE", "TENANTS", "DESCRIPTION"}, rows)
	return nil
}
