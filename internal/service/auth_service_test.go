package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventadmin/internal/auth"
	"eventadmin/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) RolesForUser(ctx context.Context, userID uint) ([]model.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockUserRepository) AddRole(ctx context.Context, userID uint, role model.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveRole(ctx context.Context, userID uint, role model.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRepository) SetOrganizer(ctx context.Context, id, organizerID uint) error {
	args := m.Called(ctx, id, organizerID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateCredentials(ctx context.Context, id uint, salt, hash []byte, changedAt time.Time) error {
	args := m.Called(ctx, id, salt, hash, changedAt)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of auth.SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func testUser(id uint, email, password string) *model.User {
	salt, err := auth.GenerateSalt()
	if err != nil {
		panic(err)
	}
	return &model.User{
		ID:           id,
		Email:        email,
		Salt:         salt,
		PasswordHash: auth.DerivePassword(password, salt),
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "editor@example.com",
			password: "abc12345",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "editor@example.com").
					Return(testUser(1, "editor@example.com", "abc12345"), nil)
				m.On("UpdateLastLogin", mock.Anything, uint(1), mock.AnythingOfType("time.Time")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "abc12345",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "editor@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "editor@example.com").
					Return(testUser(1, "editor@example.com", "abc12345"), nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, new(MockSessionStore))

			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				require.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				// identity only: credentials are stripped
				assert.Nil(t, user.Salt)
				assert.Nil(t, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByEmail", mock.Anything, "editor@example.com").
		Return(testUser(1, "editor@example.com", "abc12345"), nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockSessionStore))

	_, _, unknownErr := service.Login(context.Background(), "nobody@example.com", "whatever")
	_, _, wrongErr := service.Login(context.Background(), "editor@example.com", "not-the-password")

	assert.Equal(t, unknownErr, wrongErr, "unknown email and wrong password must be identical to the caller")
}

func TestAuthService_Login_LastLoginBestEffort(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "editor@example.com").
		Return(testUser(1, "editor@example.com", "abc12345"), nil)
	mockRepo.On("UpdateLastLogin", mock.Anything, uint(1), mock.AnythingOfType("time.Time")).
		Return(gorm.ErrInvalidDB)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockSessionStore))

	token, user, err := service.Login(context.Background(), "editor@example.com", "abc12345")

	assert.NoError(t, err, "a failed last-login write must not abort the login")
	assert.NotEmpty(t, token)
	assert.NotNil(t, user)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ChangePassword_Validation(t *testing.T) {
	user := testUser(1, "editor@example.com", "abc12345")

	tests := []struct {
		name          string
		oldPassword   string
		newPassword   string
		needsUser     bool
		expectedError error
	}{
		{
			name:          "missing old password",
			oldPassword:   "",
			newPassword:   "abcdefgh",
			expectedError: ErrMissingFields,
		},
		{
			name:          "missing new password",
			oldPassword:   "abc12345",
			newPassword:   "",
			expectedError: ErrMissingFields,
		},
		{
			name:          "unchanged password",
			oldPassword:   "abc12345",
			newPassword:   "abc12345",
			expectedError: ErrPasswordUnchanged,
		},
		{
			name:          "policy violation",
			oldPassword:   "abc12345",
			newPassword:   "short",
			expectedError: ErrPasswordTooShort,
		},
		{
			name:          "old password incorrect",
			oldPassword:   "not-the-password",
			newPassword:   "a new password",
			needsUser:     true,
			expectedError: ErrOldPasswordIncorrect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			if tt.needsUser {
				mockRepo.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
			}

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockSessionStore))
			err := service.ChangePassword(context.Background(), 1, tt.oldPassword, tt.newPassword)

			assert.Equal(t, tt.expectedError, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ChangePassword_RotatesCredentials(t *testing.T) {
	user := testUser(1, "editor@example.com", "abc12345")
	oldSalt := append([]byte(nil), user.Salt...)
	oldHash := append([]byte(nil), user.PasswordHash...)
	start := time.Now()

	var newSalt, newHash []byte
	var changedAt time.Time

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
	mockRepo.On("UpdateCredentials", mock.Anything, uint(1), mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			newSalt = args.Get(2).([]byte)
			newHash = args.Get(3).([]byte)
			changedAt = args.Get(4).(time.Time)
		}).
		Return(nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockSessionStore))
	err := service.ChangePassword(context.Background(), 1, "abc12345", "brand new password")
	require.NoError(t, err)

	assert.False(t, bytes.Equal(oldSalt, newSalt), "salt must rotate")
	assert.False(t, bytes.Equal(oldHash, newHash), "hash must rotate")
	assert.False(t, changedAt.Before(start), "rotation timestamp must not predate the call")

	// the new password verifies against the rotated pair, the old one fails
	assert.True(t, auth.VerifyPassword("brand new password", newSalt, newHash))
	assert.False(t, auth.VerifyPassword("abc12345", newSalt, newHash))

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Logout(t *testing.T) {
	sessions := new(MockSessionStore)
	sessions.On("Revoke", mock.Anything, "token-id", auth.SessionExpiry).Return(nil)

	service := NewAuthService(new(MockUserRepository), auth.NewJWTService("test-secret"), sessions)
	err := service.Logout(context.Background(), "token-id")

	assert.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestAuthService_CurrentUser(t *testing.T) {
	user := testUser(4, "admin@example.com", "abc12345")
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(4)).Return(user, nil)
	mockRepo.On("RolesForUser", mock.Anything, uint(4)).
		Return([]model.Role{model.RoleGlobalAdmin}, nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockSessionStore))
	got, roles, err := service.CurrentUser(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", got.Email)
	assert.Equal(t, []model.Role{model.RoleGlobalAdmin}, roles)
	assert.Nil(t, got.Salt)
	assert.Nil(t, got.PasswordHash)
}
