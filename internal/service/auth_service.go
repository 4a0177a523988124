package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"eventadmin/internal/auth"
	"eventadmin/internal/model"
	"eventadmin/internal/repository"
)

// minPasswordLength is the policy minimum for new passwords.
const minPasswordLength = 8

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Unknown email and wrong password are indistinguishable on purpose.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrMissingFields is returned when a password-change field is empty.
	ErrMissingFields = errors.New("missing fields")
	// ErrPasswordUnchanged is returned when the new password equals the old one.
	ErrPasswordUnchanged = errors.New("new password must be different")
	// ErrPasswordTooShort is returned when the new password violates policy.
	ErrPasswordTooShort = errors.New("new password must be at least 8 characters")
	// ErrOldPasswordIncorrect is returned when old-password verification fails.
	ErrOldPasswordIncorrect = errors.New("old password incorrect")
)

// AuthService handles credential verification, session issuing and
// password rotation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, tokenID string) error
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
	CurrentUser(ctx context.Context, userID uint) (*model.User, []model.Role, error)
}

type authService struct {
	users    repository.UserRepository
	jwt      *auth.JWTService
	sessions auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwt *auth.JWTService, sessions auth.SessionStoreInterface) AuthService {
	return &authService{
		users:    users,
		jwt:      jwt,
		sessions: sessions,
	}
}

// Login verifies credentials and mints a session token. The returned user
// carries identity fields only; salt and hash are stripped.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	// Best-effort: a failed timestamp write must not abort the login.
	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		log.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to update last login")
	}

	_, token, err := s.jwt.GenerateSessionToken(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	user.Salt = nil
	user.PasswordHash = nil
	return token, user, nil
}

// Logout revokes the session token id until the token would expire anyway.
func (s *authService) Logout(ctx context.Context, tokenID string) error {
	return s.sessions.Revoke(ctx, tokenID, auth.SessionExpiry)
}

// CurrentUser returns the identity and current role memberships of a user.
// Salt and hash are stripped from the returned value.
func (s *authService) CurrentUser(ctx context.Context, userID uint) (*model.User, []model.Role, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load user: %w", err)
	}
	roles, err := s.users.RolesForUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load roles: %w", err)
	}
	user.Salt = nil
	user.PasswordHash = nil
	return user, roles, nil
}

// ChangePassword validates the old/new pair against policy, re-verifies the
// old password and rotates salt and hash together.
func (s *authService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return ErrMissingFields
	}
	if oldPassword == newPassword {
		return ErrPasswordUnchanged
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	if !auth.VerifyPassword(oldPassword, user.Salt, user.PasswordHash) {
		return ErrOldPasswordIncorrect
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return err
	}
	hash := auth.DerivePassword(newPassword, salt)

	if err := s.users.UpdateCredentials(ctx, userID, salt, hash, time.Now()); err != nil {
		return fmt.Errorf("rotate credentials: %w", err)
	}
	return nil
}
