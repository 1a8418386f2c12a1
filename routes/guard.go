package routes

import "github.com/paycanvas/console/session"

// DecisionKind is the outcome of a guard evaluation.
type DecisionKind int

const (
	// Render admits the requested page.
	Render DecisionKind = iota
	// RedirectLogin sends the navigation to the login page.
	RedirectLogin
	// RedirectHome sends the navigation to the default landing page.
	RedirectHome
)

// Decision is the result of evaluating one navigation attempt.
type Decision struct {
	Kind   DecisionKind
	Target string // destination when redirecting, or the admitted page
	From   string // attempted path, recorded on a role-denied redirect
}

// Evaluate gates one navigation attempt against the current session. It is a
// pure, synchronous decision: the guard holds no state of its own.
func Evaluate(s session.Session, path string) Decision {
	role, ok := s.Role()
	if !ok {
		return Decision{Kind: RedirectLogin, Target: RouteLogin}
	}

	allowed, known := allowedRoles[path]
	if !known {
		return Decision{Kind: RedirectHome, Target: Home(role)}
	}

	for _, r := range allowed {
		if r == role {
			return Decision{Kind: Render, Target: path}
		}
	}
	return Decision{Kind: RedirectHome, Target: RouteDashboard, From: path}
}
