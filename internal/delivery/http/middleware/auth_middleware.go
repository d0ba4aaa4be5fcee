package middleware

import (
	"net/http"
	"strings"

	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/delivery/http/response"
	"supermall/internal/domain/access"
	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware verifies the caller's ID token and resolves their role.
// The role is read fresh from the profile store on every request; a role
// revoked between two requests takes effect on the very next one.
type AuthMiddleware struct {
	identity    service.IdentityProvider
	profileRepo repository.ProfileRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider, profileRepo repository.ProfileRepository) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, profileRepo: profileRepo}
}

// session resolves the gate input for the current request. Requests
// without a usable bearer token are anonymous, not errors; the gate
// decides what anonymity means for the route. A profile store failure
// is an error, not anonymity, so an outage surfaces as a 500 instead
// of a login redirect.
func (m *AuthMiddleware) session(c echo.Context) (access.Session, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return access.Session{State: access.StateAnonymous}, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return access.Session{State: access.StateAnonymous}, nil
	}

	identity, err := m.identity.VerifyIDToken(c.Request().Context(), tokenString)
	if err != nil {
		return access.Session{State: access.StateAnonymous}, nil
	}

	profile, err := m.profileRepo.FindByUID(c.Request().Context(), identity.UID)
	if err != nil {
		// A verified identity without a profile is anonymous until role
		// selection completes.
		if errors.Is(err, repository.ErrProfileNotFound) {
			return access.Session{State: access.StateAnonymous}, nil
		}

		return access.Session{}, errors.Wrap(err, "failed to resolve session profile")
	}

	c.Set(string(deliverycontext.KeyIdentityUID), profile.UID)
	c.Set(string(deliverycontext.KeyIdentityRole), profile.Role)

	return access.Session{State: access.StateAuthenticated, Role: profile.Role}, nil
}

// RequireRoles gates a route group on the allowed roles. An empty list
// admits any authenticated role. Denials carry the redirect target the
// client should navigate to: login for anonymous callers, the caller's
// own dashboard for wrong-role callers.
func (m *AuthMiddleware) RequireRoles(allowedRoles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := m.session(c)
			if err != nil {
				return err
			}

			decision := access.Evaluate(sess, allowedRoles)
			switch decision.Outcome {
			case access.Render:
				return next(c)
			case access.Redirect:
				if decision.Target == access.LoginPath {
					return response.Denied(c, http.StatusUnauthorized, "UNAUTHORIZED", "", decision.Target)
				}

				return response.Denied(c, http.StatusForbidden, "FORBIDDEN", "", decision.Target)
			default:
				// ShowLoading never occurs server-side; verification is
				// synchronous. Refuse rather than hang.
				return response.Denied(c, http.StatusUnauthorized, "UNAUTHORIZED", "", access.LoginPath)
			}
		}
	}
}

// IdentityUID returns the authenticated uid set by RequireRoles.
func IdentityUID(c echo.Context) string {
	if uid, ok := c.Get(string(deliverycontext.KeyIdentityUID)).(string); ok {
		return uid
	}

	return ""
}

// IdentityRole returns the authenticated role set by RequireRoles.
func IdentityRole(c echo.Context) entity.Role {
	if role, ok := c.Get(string(deliverycontext.KeyIdentityRole)).(entity.Role); ok {
		return role
	}

	return ""
}
