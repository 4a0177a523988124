package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"eventadmin/internal/model"
)

// withSession injects a resolved session, standing in for the jwt middleware.
func withSession(userID uint) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID != 0 {
				c.Set(sessionContextKey, &Session{UserID: userID, Email: "user@example.com", TokenID: "t"})
			}
			return next(c)
		}
	}
}

func TestRequireRolesAPI(t *testing.T) {
	tests := []struct {
		name         string
		userID       uint
		userRoles    []model.Role
		required     []model.Role
		expectedCode int
	}{
		{
			name:         "admin passes the admin-only group",
			userID:       1,
			userRoles:    []model.Role{model.RoleGlobalAdmin},
			required:     nil,
			expectedCode: http.StatusOK,
		},
		{
			name:         "editor denied by the admin-only group",
			userID:       2,
			userRoles:    []model.Role{model.RoleEventEditor, model.RoleInfoScreenEditor},
			required:     nil,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "required role passes",
			userID:       3,
			userRoles:    []model.Role{model.RoleInfoScreenEditor},
			required:     []model.Role{model.RoleInfoScreenEditor},
			expectedCode: http.StatusOK,
		},
		{
			name:         "admin passes any required set",
			userID:       4,
			userRoles:    []model.Role{model.RoleGlobalAdmin},
			required:     []model.Role{model.RoleInfoScreenEditor},
			expectedCode: http.StatusOK,
		},
		{
			name:         "roleless user denied",
			userID:       5,
			userRoles:    nil,
			required:     []model.Role{model.RoleInfoScreenEditor},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "no session denied",
			userID:       0,
			required:     nil,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := &fakeRoleReader{roles: map[uint][]model.Role{}}
			if tt.userID != 0 {
				roles.set(tt.userID, tt.userRoles...)
			}

			e := echo.New()
			e.GET("/organizers", okHandler, withSession(tt.userID), RequireRolesAPI(roles, tt.required...))

			req := httptest.NewRequest(http.MethodGet, "/organizers", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
