package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventadmin/internal/auth"
	"eventadmin/internal/handler"
	"eventadmin/internal/model"
	"eventadmin/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uint) (*model.User, []model.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.User), args.Get(1).([]model.Role), args.Error(2)
}

type noRevocations struct{}

func (noRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return nil
}

func (noRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, nil
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

const testSecret = "test-secret"

// newAuthAPI wires the auth handler the way the router does: public login
// plus a token-guarded /api group.
func newAuthAPI(svc service.AuthService) *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	h := handler.NewAuthHandler(svc)
	e.POST("/login", h.Login)

	api := e.Group("/api", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(testSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + auth.SessionCookieName,
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		},
	}), auth.SessionMiddleware(noRevocations{}))

	api.POST("/change-password", h.ChangePassword)
	api.GET("/me", h.Me)

	return e
}

func sessionToken(t *testing.T, userID uint) string {
	t.Helper()
	_, token, err := auth.NewJWTService(testSecret).GenerateSessionToken(userID, "editor@example.com")
	require.NoError(t, err)
	return token
}

func TestLogin_Success(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "editor@example.com", "abc12345").
		Return("signed-token", &model.User{ID: 1, Email: "editor@example.com"}, nil)

	apitest.New().
		Handler(newAuthAPI(svc)).
		Post("/login").
		JSON(`{"email":"editor@example.com","password":"abc12345"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.token", "signed-token")).
		Assert(jsonpath.Equal("$.user.email", "editor@example.com")).
		End()
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "editor@example.com", "abc12345").
		Return("signed-token", &model.User{ID: 1, Email: "editor@example.com"}, nil)

	apitest.New().
		Handler(newAuthAPI(svc)).
		Post("/login").
		JSON(`{"email":"editor@example.com","password":"abc12345"}`).
		Expect(t).
		Status(http.StatusOK).
		CookiePresent(auth.SessionCookieName).
		End()
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	svc := new(MockAuthService)
	// unknown email and wrong password produce the same service error and
	// must produce the same response
	svc.On("Login", mock.Anything, "nobody@example.com", "x-password").
		Return("", nil, service.ErrInvalidCredentials)
	svc.On("Login", mock.Anything, "editor@example.com", "wrong-password").
		Return("", nil, service.ErrInvalidCredentials)

	e := newAuthAPI(svc)

	for _, body := range []string{
		`{"email":"nobody@example.com","password":"x-password"}`,
		`{"email":"editor@example.com","password":"wrong-password"}`,
	} {
		apitest.New().
			Handler(e).
			Post("/login").
			JSON(body).
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal("$.code", "INVALID_CREDENTIALS")).
			End()
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	svc := new(MockAuthService)

	apitest.New().
		Handler(newAuthAPI(svc)).
		Post("/login").
		JSON(`{"email":"not-an-email","password":""}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestChangePassword_Unauthenticated(t *testing.T) {
	svc := new(MockAuthService)

	apitest.New().
		Handler(newAuthAPI(svc)).
		Post("/api/change-password").
		JSON(`{"oldPassword":"abc12345","newPassword":"abcdefgh"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestChangePassword_WrongMethod(t *testing.T) {
	svc := new(MockAuthService)

	apitest.New().
		Handler(newAuthAPI(svc)).
		Get("/api/change-password").
		Header(echo.HeaderAuthorization, "Bearer "+sessionToken(t, 1)).
		Expect(t).
		Status(http.StatusMethodNotAllowed).
		End()
}

func TestChangePassword_ValidationFailures(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantError  string
	}{
		{"missing fields", service.ErrMissingFields, "missing fields"},
		{"unchanged", service.ErrPasswordUnchanged, "new password must be different"},
		{"too short", service.ErrPasswordTooShort, "new password must be at least 8 characters"},
		{"old incorrect", service.ErrOldPasswordIncorrect, "old password incorrect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			svc.On("ChangePassword", mock.Anything, uint(1), mock.Anything, mock.Anything).
				Return(tt.serviceErr)

			apitest.New().
				Handler(newAuthAPI(svc)).
				Post("/api/change-password").
				Header(echo.HeaderAuthorization, "Bearer "+sessionToken(t, 1)).
				JSON(`{"oldPassword":"a","newPassword":"b"}`).
				Expect(t).
				Status(http.StatusBadRequest).
				Assert(jsonpath.Equal("$.error", tt.wantError)).
				End()
		})
	}
}

func TestChangePassword_Success(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("ChangePassword", mock.Anything, uint(1), "abc12345", "a new password").
		Return(nil)

	apitest.New().
		Handler(newAuthAPI(svc)).
		Post("/api/change-password").
		Header(echo.HeaderAuthorization, "Bearer "+sessionToken(t, 1)).
		JSON(`{"oldPassword":"abc12345","newPassword":"a new password"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.success", true)).
		End()
}

func TestMe_ReportsPasswordChangeRequired(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("CurrentUser", mock.Anything, uint(1)).
		Return(&model.User{ID: 1, Email: "editor@example.com"}, []model.Role{model.RoleEventEditor}, nil)

	apitest.New().
		Handler(newAuthAPI(svc)).
		Get("/api/me").
		Header(echo.HeaderAuthorization, "Bearer "+sessionToken(t, 1)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.email", "editor@example.com")).
		Assert(jsonpath.Equal("$.passwordChangeRequired", true)).
		End()
}
