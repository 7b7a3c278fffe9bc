package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hopedeeds/internal/auth"
	"hopedeeds/internal/errors"
	"hopedeeds/internal/model"
)

func TestAuthService_RegisterOrganization(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository, *MockOrganizationRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			email: "admin@example.com",
			setupMock: func(userRepo *MockUserRepository, orgRepo *MockOrganizationRepository) {
				userRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(nil, gorm.ErrRecordNotFound)
				orgRepo.On("CreateWithAdmin", mock.Anything, mock.AnythingOfType("*model.Organization"), mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "email already registered",
			email: "taken@example.com",
			setupMock: func(userRepo *MockUserRepository, orgRepo *MockOrganizationRepository) {
				userRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: errors.ErrEmailInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			orgRepo := new(MockOrganizationRepository)
			tt.setupMock(userRepo, orgRepo)

			svc := NewAuthService(userRepo, orgRepo, auth.NewJWTService("test-secret"))
			token, org, user, err := svc.RegisterOrganization(context.Background(), "Helping Hands", tt.email, "password123")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, org)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, "Helping Hands", org.Name)
				assert.Equal(t, model.RoleAdmin, user.Role)
				// Founding admins skip volunteer gating.
				assert.True(t, user.HasBackgroundCheck)
				assert.True(t, user.HasAttendedOrientation)
				assert.NotEmpty(t, user.PasswordHash)
			}

			userRepo.AssertExpectations(t)
			orgRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RegisterVolunteer(t *testing.T) {
	orgID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository, *MockOrganizationRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			setupMock: func(userRepo *MockUserRepository, orgRepo *MockOrganizationRepository) {
				orgRepo.On("FindByID", mock.Anything, orgID).Return(&model.Organization{ID: orgID}, nil)
				userRepo.On("FindByEmail", mock.Anything, "vol@example.com").Return(nil, gorm.ErrRecordNotFound)
				userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "unknown organization",
			setupMock: func(userRepo *MockUserRepository, orgRepo *MockOrganizationRepository) {
				orgRepo.On("FindByID", mock.Anything, orgID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrOrganizationNotFound,
		},
		{
			name: "email already registered",
			setupMock: func(userRepo *MockUserRepository, orgRepo *MockOrganizationRepository) {
				orgRepo.On("FindByID", mock.Anything, orgID).Return(&model.Organization{ID: orgID}, nil)
				userRepo.On("FindByEmail", mock.Anything, "vol@example.com").Return(&model.User{Email: "vol@example.com"}, nil)
			},
			expectedError: errors.ErrEmailInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			orgRepo := new(MockOrganizationRepository)
			tt.setupMock(userRepo, orgRepo)

			svc := NewAuthService(userRepo, orgRepo, auth.NewJWTService("test-secret"))
			token, user, err := svc.RegisterVolunteer(context.Background(), "Ben", "vol@example.com", "555-0102", "password123", orgID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, model.RoleVolunteer, user.Role)
				assert.Equal(t, orgID, user.OrganizationID)
				assert.False(t, user.HasBackgroundCheck)
				assert.False(t, user.HasAttendedOrientation)
			}

			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	orgID := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	stored := &model.User{
		ID:             uuid.New(),
		Email:          "user@example.com",
		PasswordHash:   string(hash),
		Role:           model.RoleVolunteer,
		OrganizationID: orgID,
	}

	tests := []struct {
		name          string
		password      string
		setupMock     func(*MockUserRepository, *MockOrganizationRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			password: "password123",
			setupMock: func(userRepo *MockUserRepository, orgRepo *MockOrganizationRepository) {
				userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(stored, nil)
				orgRepo.On("FindByID", mock.Anything, orgID).Return(&model.Organization{ID: orgID}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			password: "wrong",
			setupMock: func(userRepo *MockUserRepository, orgRepo *MockOrganizationRepository) {
				userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(stored, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "password123",
			setupMock: func(userRepo *MockUserRepository, orgRepo *MockOrganizationRepository) {
				userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			orgRepo := new(MockOrganizationRepository)
			tt.setupMock(userRepo, orgRepo)

			svc := NewAuthService(userRepo, orgRepo, auth.NewJWTService("test-secret"))
			token, user, org, err := svc.Login(context.Background(), "user@example.com", tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
				assert.Nil(t, org)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, stored.ID, user.ID)
				assert.Equal(t, orgID, org.ID)
			}

			userRepo.AssertExpectations(t)
		})
	}
}
