// Package access implements the role-gated navigation decision used by
// every protected route: given the current session and a route's allowed
// roles, decide whether to render, redirect, or keep showing a loading
// placeholder. The decision is pure and must be re-evaluated on every
// navigation; nothing here caches session state.
package access

import "supermall/internal/domain/entity"

// Route targets used by redirect decisions.
const (
	LoginPath    = "/login"
	AdminHome    = "/admin"
	MerchantHome = "/merchant"
	UserHome     = "/user"
)

// State describes what is known about the current session.
type State int

const (
	// StateUnknown means the identity stream has not resolved yet.
	// It only occurs on clients still waiting for the provider callback;
	// server-side token verification is synchronous and never produces it.
	StateUnknown State = iota
	// StateAnonymous means no identity is signed in.
	StateAnonymous
	// StateAuthenticated means an identity is signed in and its profile
	// role has been resolved.
	StateAuthenticated
)

// Session is the gate's input: the resolved session state and, when
// authenticated, the profile role. It is passed explicitly; the gate never
// reads ambient globals.
type Session struct {
	State State
	Role  entity.Role
}

// Outcome is the kind of decision the gate produces.
type Outcome int

const (
	// ShowLoading keeps the loading placeholder until the session resolves.
	ShowLoading Outcome = iota
	// Render allows the requested route.
	Render
	// Redirect denies the requested route and names where to go instead.
	Redirect
)

// Decision is the gate's output. Target is set only for Redirect.
type Decision struct {
	Outcome Outcome
	Target  string
}

// RoleHome maps a role to its dashboard path. Unrecognized roles fall back
// to the login page.
func RoleHome(role entity.Role) string {
	switch role {
	case entity.RoleAdmin:
		return AdminHome
	case entity.RoleMerchant:
		return MerchantHome
	case entity.RoleUser:
		return UserHome
	default:
		return LoginPath
	}
}

// Evaluate decides whether the session may proceed to a route restricted to
// allowedRoles. An empty allowedRoles set means any authenticated role.
//
// Rules: an unresolved session keeps loading; an anonymous session is sent
// to login; an authenticated session renders when its role is permitted and
// is otherwise sent to its own dashboard, or to login when the role itself
// is unrecognized.
func Evaluate(session Session, allowedRoles entity.Roles) Decision {
	switch session.State {
	case StateUnknown:
		return Decision{Outcome: ShowLoading}
	case StateAnonymous:
		return Decision{Outcome: Redirect, Target: LoginPath}
	}

	if !session.Role.IsValid() {
		return Decision{Outcome: Redirect, Target: LoginPath}
	}

	if len(allowedRoles) == 0 || allowedRoles.Contains(session.Role) {
		return Decision{Outcome: Render}
	}

	return Decision{Outcome: Redirect, Target: RoleHome(session.Role)}
}
