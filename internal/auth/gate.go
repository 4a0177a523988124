package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"eventadmin/internal/model"
)

// LoginPath is the portal login entry point the gate redirects to.
const LoginPath = "/login"

// SessionCookieName is the cookie carrying the session token for page routes.
const SessionCookieName = "session"

// sessionContextKey is where the gate stores the resolved session.
const sessionContextKey = "auth.session"

// Session is the resolved identity of the current request.
type Session struct {
	UserID  uint
	Email   string
	TokenID string
}

// RoleReader loads a user's current role memberships. The gate re-reads
// roles on every request; role claims are never trusted from the token.
type RoleReader interface {
	RolesForUser(ctx context.Context, userID uint) ([]model.Role, error)
}

// Requirement is a declarative access-control constraint for a protected
// route. Zero value means "any authenticated user".
type Requirement struct {
	Role  model.Role
	Roles []model.Role
	// Custom runs after role checks; returning false denies access the
	// same way a failed role check does.
	Custom func(c echo.Context, s *Session) (bool, error)
}

// requiredRoles collects the declared roles plus the implicit GlobalAdmin
// escalation: a GlobalAdmin caller satisfies any requirement.
func (r Requirement) requiredRoles() []model.Role {
	if r.Role == "" && len(r.Roles) == 0 {
		return nil
	}
	required := []model.Role{model.RoleGlobalAdmin}
	if r.Role != "" {
		required = append(required, r.Role)
	}
	required = append(required, r.Roles...)
	return required
}

// RoleSatisfied reports whether the caller's role set intersects the
// required set.
func RoleSatisfied(userRoles, required []model.Role) bool {
	for _, have := range userRoles {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Resolver extracts and validates the session artifact of a request.
type Resolver struct {
	jwt      *JWTService
	sessions SessionStoreInterface
}

// NewResolver creates a session resolver.
func NewResolver(jwt *JWTService, sessions SessionStoreInterface) *Resolver {
	return &Resolver{jwt: jwt, sessions: sessions}
}

// Resolve returns the session of the request, or false when there is none.
// A missing, malformed, expired or revoked token and a subject that does not
// parse to a valid identifier are all the same normal "not signed in" state.
func (r *Resolver) Resolve(c echo.Context) (*Session, bool) {
	token := tokenFromRequest(c)
	if token == "" {
		return nil, false
	}

	claims, err := r.jwt.ValidateToken(token)
	if err != nil {
		return nil, false
	}

	userID, ok := claims.UserID()
	if !ok {
		return nil, false
	}

	if revoked, _ := r.sessions.IsRevoked(c.Request().Context(), claims.ID); revoked {
		return nil, false
	}

	return &Session{UserID: userID, Email: claims.Email, TokenID: claims.ID}, true
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// Gate wraps protected routes with a Requirement.
type Gate struct {
	resolver *Resolver
	roles    RoleReader
}

// NewGate creates an authorization gate.
func NewGate(resolver *Resolver, roles RoleReader) *Gate {
	return &Gate{resolver: resolver, roles: roles}
}

// Require builds middleware enforcing the given Requirement.
//
// Unauthenticated callers are redirected to the login entry point with the
// originally requested URL as callback. Authenticated callers failing a role
// or custom check get a plain 404, indistinguishable from a missing route,
// so the resource's existence is not revealed.
func (g *Gate) Require(req Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := g.resolver.Resolve(c)
			if !ok {
				return redirectToLogin(c)
			}

			if required := req.requiredRoles(); required != nil {
				userRoles, err := g.roles.RolesForUser(c.Request().Context(), sess.UserID)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
				}
				if !RoleSatisfied(userRoles, required) {
					return echo.ErrNotFound
				}
			}

			if req.Custom != nil {
				allowed, err := req.Custom(c, sess)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
				}
				if !allowed {
					return echo.ErrNotFound
				}
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

func redirectToLogin(c echo.Context) error {
	target := LoginPath + "?callbackUrl=" + url.QueryEscape(c.Request().RequestURI)
	return c.Redirect(http.StatusFound, target)
}

// SessionFromContext returns the session stored by the gate, or false when
// the route was not gated or the caller is anonymous.
func SessionFromContext(c echo.Context) (*Session, bool) {
	sess, ok := c.Get(sessionContextKey).(*Session)
	return sess, ok
}
