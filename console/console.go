// Package console is the presentation layer: a line-oriented command loop
// over the PayCanvas API. Every screen change goes through the route guard,
// so the visible surface always matches the session's role.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/paycanvas/console/api"
	"github.com/paycanvas/console/auth"
	"github.com/paycanvas/console/routes"
)

// Console drives the interactive loop. It owns the current page and the
// recorded path a role-denied navigation came from, nothing else; session
// state lives in the auth controller.
type Console struct {
	controller *auth.Controller
	client     *api.Client

	in  *bufio.Scanner
	out io.Writer

	mu          sync.Mutex
	page        string
	returnTo    string
	invalidated bool
}

func New(controller *auth.Controller, client *api.Client, in io.Reader, out io.Writer) *Console {
	c := &Console{
		controller: controller,
		client:     client,
		in:         bufio.NewScanner(in),
		out:        out,
		page:       routes.RouteLogin,
	}
	// A session persisted from a previous run skips the login screen.
	if role, ok := controller.Current().Role(); ok {
		c.page = routes.Home(role)
	}
	return c
}

// SessionInvalidated is wired as the API client's invalidated hook. It flags
// the loop to drop back to the login screen before the next prompt.
func (c *Console) SessionInvalidated() {
	c.mu.Lock()
	c.invalidated = true
	c.mu.Unlock()
}

// Page returns the page the console is currently showing.
func (c *Console) Page() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Run reads commands until EOF or "exit".
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Type 'help' for the command list.")
	for {
		c.checkInvalidated()
		fmt.Fprintf(c.out, "%s%s>%s ", colourCyan, c.Page(), colourReset)
		if !c.in.Scan() {
			return c.in.Err()
		}
		fields := strings.Fields(c.in.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			return nil
		}
		c.dispatch(ctx, fields[0], fields[1:])
	}
}

func (c *Console) checkInvalidated() {
	c.mu.Lock()
	flagged := c.invalidated
	c.invalidated = false
	if flagged {
		c.page = routes.RouteLogin
		c.returnTo = ""
	}
	c.mu.Unlock()
	if flagged {
		fmt.Fprintln(c.out, c.warn("session expired, please log in again"))
	}
}

func (c *Console) dispatch(ctx context.Context, command string, args []string) {
	var err error
	switch command {
	case "help":
		c.printHelp()
	case "login":
		err = c.cmdLogin(ctx, args)
	case "logout":
		c.cmdLogout()
	case "whoami":
		c.cmdWhoami()
	case "token":
		err = c.cmdToken()
	case "routes":
		c.cmdRoutes()
	case "open":
		err = c.cmdOpen(ctx, args)
	case "dashboard":
		err = c.onPage(ctx, routes.RouteDashboard, func() error { return c.renderDashboard(ctx) })
	case "daily":
		err = c.onPage(ctx, routes.RouteDailyMetrics, func() error { return c.renderDaily(ctx) })
	case "payroll":
		err = c.cmdPayroll(ctx, args)
	case "payslips":
		err = c.cmdPayslips(ctx, args)
	case "staff":
		err = c.cmdStaff(ctx, args)
	case "stores":
		err = c.cmdStores(ctx, args)
	case "grades":
		err = c.cmdGrades(ctx, args)
	case "tiers":
		err = c.cmdTiers(ctx, args)
	case "companies":
		err = c.onPage(ctx, routes.RouteSuperCompanies, func() error { return c.renderCompanies(ctx) })
	case "features":
		err = c.cmdFeatures(ctx, args)
	case "super":
		err = c.cmdSuper(ctx, args)
	default:
		fmt.Fprintf(c.out, "unknown command %q, try 'help'\n", command)
	}
	if err != nil {
		fmt.Fprintln(c.out, c.warn(err.Error()))
	}
}

// navigate runs one guard evaluation and applies its decision to the current
// page. It returns the admitted page, or "" when the navigation was redirected.
func (c *Console) navigate(path string) string {
	decision := routes.Evaluate(c.controller.Current(), path)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch decision.Kind {
	case routes.Render:
		c.page = decision.Target
		return decision.Target
	case routes.RedirectLogin:
		c.page = routes.RouteLogin
		if path != routes.RouteLogin {
			c.returnTo = path
		}
		fmt.Fprintln(c.out, c.warn("not logged in, redirected to "+routes.RouteLogin))
	case routes.RedirectHome:
		c.page = decision.Target
		if decision.From != "" {
			c.returnTo = decision.From
			fmt.Fprintln(c.out, c.warn("no access to "+decision.From+", redirected to "+decision.Target))
		} else {
			fmt.Fprintln(c.out, c.warn("unknown page, redirected to "+decision.Target))
		}
	}
	return ""
}

// onPage navigates to the page owning a data command, then runs it if the
// guard admitted the navigation.
func (c *Console) onPage(ctx context.Context, path string, render func() error) error {
	if c.navigate(path) == "" {
		return nil
	}
	return render()
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `Commands:
  login <email> <password>      authenticate
  logout                        clear the session
  whoami                        show the current session
  token                         decode the held access token
  routes                        list pages reachable with the current role
  open <path>                   navigate to a page
  dashboard                     dashboard summary
  daily                         daily attendance and sales metrics
  payroll jobs | run <YYYY-MM>  payroll runs
  payslips <YYYY-MM>            payslips for a month
  staff list|add|update|rm      employee master
  stores list|add|update|rm     store master
  grades list|add|update|rm     grade master
  tiers list|add|update|rm      salary tier master
  companies                     tenant companies (super admin)
  features list|toggle          feature flags (super admin)
  super add-admin               provision a company admin (super admin)
  exit
`)
}
