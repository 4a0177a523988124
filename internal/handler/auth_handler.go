package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"eventadmin/internal/auth"
	"eventadmin/internal/errors"
	"eventadmin/internal/service"
)

// AuthHandler handles login, logout and password management endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a credential login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// ChangePasswordRequest represents a password rotation request.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Login verifies credentials and establishes a session. Unknown email and
// wrong password produce the identical response.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to login",
			Code:  "LOGIN_FAILED",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionExpiry),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  user,
	})
}

// Logout revokes the current session token and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	if err := h.authService.Logout(c.Request().Context(), sess.TokenID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to logout",
			Code:  "LOGOUT_FAILED",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// ChangePassword rotates the caller's credentials. Validation and policy
// failures each carry a distinct message but all surface as 400.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	err := h.authService.ChangePassword(c.Request().Context(), sess.UserID, req.OldPassword, req.NewPassword)
	if err != nil {
		switch err {
		case service.ErrMissingFields,
			service.ErrPasswordUnchanged,
			service.ErrPasswordTooShort,
			service.ErrOldPasswordIncorrect:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Error: "failed to change password",
				Code:  "PASSWORD_CHANGE_FAILED",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Me returns the session user's identity, roles and whether the provisioned
// password still needs to be rotated.
func (h *AuthHandler) Me(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	user, roles, err := h.authService.CurrentUser(c.Request().Context(), sess.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to load user",
			Code:  "USER_LOAD_FAILED",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":                     user.ID,
		"email":                  user.Email,
		"roles":                  roles,
		"organizer_id":           user.OrganizerID,
		"passwordChangeRequired": user.LastPasswordChange == nil,
	})
}
