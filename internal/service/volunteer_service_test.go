package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hopedeeds/internal/errors"
	"hopedeeds/internal/model"
)

func TestVolunteerService_Update(t *testing.T) {
	orgID := uuid.New()
	volID := uuid.New()

	volunteer := func() *model.User {
		return &model.User{ID: volID, OrganizationID: orgID, Role: model.RoleVolunteer, Name: "Ben"}
	}

	t.Run("admin can promote to manager", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByIDInOrg", mock.Anything, volID, orgID).Return(volunteer(), nil)
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewVolunteerService(userRepo, new(MockHourRepository))
		manager := model.RoleManager
		updated, err := svc.Update(context.Background(), volID, orgID, model.RoleAdmin, VolunteerUpdate{Role: &manager})

		assert.NoError(t, err)
		assert.Equal(t, model.RoleManager, updated.Role)
	})

	t.Run("manager cannot change roles", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByIDInOrg", mock.Anything, volID, orgID).Return(volunteer(), nil)

		svc := NewVolunteerService(userRepo, new(MockHourRepository))
		admin := model.RoleAdmin
		_, err := svc.Update(context.Background(), volID, orgID, model.RoleManager, VolunteerUpdate{Role: &admin})

		httpErr, ok := err.(*errors.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 403, httpErr.StatusCode)
		assert.Equal(t, "Only admin can change roles", httpErr.Message)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByIDInOrg", mock.Anything, volID, orgID).Return(volunteer(), nil)

		svc := NewVolunteerService(userRepo, new(MockHourRepository))
		bogus := model.Role("superuser")
		_, err := svc.Update(context.Background(), volID, orgID, model.RoleAdmin, VolunteerUpdate{Role: &bogus})

		httpErr, ok := err.(*errors.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.StatusCode)
	})

	t.Run("duplicate email maps to the conflict error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByIDInOrg", mock.Anything, volID, orgID).Return(volunteer(), nil)
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)

		svc := NewVolunteerService(userRepo, new(MockHourRepository))
		email := "taken@example.com"
		_, err := svc.Update(context.Background(), volID, orgID, model.RoleAdmin, VolunteerUpdate{Email: &email})

		assert.Equal(t, errors.ErrEmailInUse, err)
	})

	t.Run("volunteer outside the organization is not found", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByIDInOrg", mock.Anything, volID, orgID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewVolunteerService(userRepo, new(MockHourRepository))
		_, err := svc.Update(context.Background(), volID, orgID, model.RoleAdmin, VolunteerUpdate{})

		assert.Equal(t, errors.ErrVolunteerNotFound, err)
	})
}

func TestVolunteerService_Deactivate(t *testing.T) {
	orgID := uuid.New()
	volID := uuid.New()

	userRepo := new(MockUserRepository)
	userRepo.On("FindByIDInOrg", mock.Anything, volID, orgID).
		Return(&model.User{ID: volID, OrganizationID: orgID, Role: model.RoleVolunteer}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleInactive
	})).Return(nil)

	svc := NewVolunteerService(userRepo, new(MockHourRepository))
	err := svc.Deactivate(context.Background(), volID, orgID)

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestVolunteerService_AddHours(t *testing.T) {
	orgID := uuid.New()
	volID := uuid.New()

	t.Run("logs a positive amount rounded to two places", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		hourRepo := new(MockHourRepository)
		userRepo.On("FindByIDInOrg", mock.Anything, volID, orgID).
			Return(&model.User{ID: volID, OrganizationID: orgID}, nil)
		hourRepo.On("Create", mock.Anything, mock.MatchedBy(func(h *model.VolunteerHour) bool {
			return h.Amount.String() == "2.33" && h.Description == "Community garden"
		})).Return(nil)

		svc := NewVolunteerService(userRepo, hourRepo)
		hour, err := svc.AddHours(context.Background(), volID, orgID, decimal.NewFromFloat(2.333), "Community garden")

		assert.NoError(t, err)
		assert.Equal(t, "2.33", hour.Amount.String())
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByIDInOrg", mock.Anything, volID, orgID).
			Return(&model.User{ID: volID, OrganizationID: orgID}, nil)

		svc := NewVolunteerService(userRepo, new(MockHourRepository))
		_, err := svc.AddHours(context.Background(), volID, orgID, decimal.Zero, "")

		httpErr, ok := err.(*errors.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, "Hours must be positive", httpErr.Message)
	})
}
