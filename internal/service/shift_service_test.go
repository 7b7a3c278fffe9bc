package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hopedeeds/internal/errors"
	"hopedeeds/internal/model"
)

type shiftServiceMocks struct {
	shiftRepo  *MockShiftRepository
	oppRepo    *MockOpportunityRepository
	signupRepo *MockSignupRepository
	userRepo   *MockUserRepository
}

func newShiftServiceWithMocks() (ShiftService, shiftServiceMocks) {
	m := shiftServiceMocks{
		shiftRepo:  new(MockShiftRepository),
		oppRepo:    new(MockOpportunityRepository),
		signupRepo: new(MockSignupRepository),
		userRepo:   new(MockUserRepository),
	}
	return NewShiftService(m.shiftRepo, m.oppRepo, m.signupRepo, m.userRepo), m
}

func readyUser(id uuid.UUID) *model.User {
	return &model.User{
		ID:                     id,
		Role:                   model.RoleVolunteer,
		HasBackgroundCheck:     true,
		HasAttendedOrientation: true,
	}
}

func TestShiftService_Create(t *testing.T) {
	orgID := uuid.New()
	oppID := uuid.New()
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("defaults capacity when omitted", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.oppRepo.On("FindByIDInOrg", mock.Anything, oppID, orgID).Return(&model.Opportunity{ID: oppID}, nil)
		m.shiftRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Shift")).Return(nil)

		shift, err := svc.Create(context.Background(), orgID, oppID, start, start.Add(3*time.Hour), nil)

		assert.NoError(t, err)
		assert.Equal(t, model.DefaultShiftCapacity, shift.Capacity)
	})

	t.Run("rejects inverted times", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.oppRepo.On("FindByIDInOrg", mock.Anything, oppID, orgID).Return(&model.Opportunity{ID: oppID}, nil)

		_, err := svc.Create(context.Background(), orgID, oppID, start, start, nil)

		assert.Equal(t, errors.ErrShiftTimesInverted, err)
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.oppRepo.On("FindByIDInOrg", mock.Anything, oppID, orgID).Return(&model.Opportunity{ID: oppID}, nil)
		zero := 0

		_, err := svc.Create(context.Background(), orgID, oppID, start, start.Add(time.Hour), &zero)

		assert.Equal(t, errors.ErrInvalidCapacity, err)
	})

	t.Run("rejects an opportunity outside the organization", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.oppRepo.On("FindByIDInOrg", mock.Anything, oppID, orgID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(context.Background(), orgID, oppID, start, start.Add(time.Hour), nil)

		assert.Equal(t, errors.ErrOpportunityNotFound, err)
	})
}

func TestShiftService_Update_Capacity(t *testing.T) {
	orgID := uuid.New()
	shiftID := uuid.New()
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	existing := func() *model.Shift {
		return &model.Shift{ID: shiftID, StartTime: start, EndTime: start.Add(4 * time.Hour), Capacity: 5}
	}

	t.Run("cannot shrink below current signups", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.shiftRepo.On("FindByIDInOrg", mock.Anything, shiftID, orgID).Return(existing(), nil)
		m.signupRepo.On("CountByShift", mock.Anything, shiftID).Return(int64(3), nil)
		two := 2

		_, err := svc.Update(context.Background(), shiftID, orgID, ShiftUpdate{Capacity: &two})

		httpErr, ok := err.(*errors.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.StatusCode)
		assert.Equal(t, "Capacity (2) cannot be less than current signups (3)", httpErr.Message)
	})

	t.Run("can shrink down to current signups", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.shiftRepo.On("FindByIDInOrg", mock.Anything, shiftID, orgID).Return(existing(), nil)
		m.signupRepo.On("CountByShift", mock.Anything, shiftID).Return(int64(3), nil)
		m.shiftRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Shift")).Return(nil)
		three := 3

		shift, err := svc.Update(context.Background(), shiftID, orgID, ShiftUpdate{Capacity: &three})

		assert.NoError(t, err)
		assert.Equal(t, 3, shift.Capacity)
	})

	t.Run("rejects times inverted after partial update", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.shiftRepo.On("FindByIDInOrg", mock.Anything, shiftID, orgID).Return(existing(), nil)
		newStart := start.Add(5 * time.Hour)

		_, err := svc.Update(context.Background(), shiftID, orgID, ShiftUpdate{StartTime: &newStart})

		assert.Equal(t, errors.ErrShiftTimesInverted, err)
	})
}

func TestShiftService_Signup(t *testing.T) {
	orgID := uuid.New()
	userID := uuid.New()
	shiftID := uuid.New()
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	shift := &model.Shift{ID: shiftID, StartTime: start, EndTime: start.Add(2 * time.Hour), Capacity: 10}

	t.Run("registers a ready volunteer", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.userRepo.On("FindByID", mock.Anything, userID).Return(readyUser(userID), nil)
		m.shiftRepo.On("FindByIDInOrg", mock.Anything, shiftID, orgID).Return(shift, nil)
		m.signupRepo.On("CountByShift", mock.Anything, shiftID).Return(int64(4), nil)
		m.signupRepo.On("ListByUserInOrg", mock.Anything, userID, orgID).Return([]model.ShiftSignup{}, nil)
		m.signupRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ShiftSignup")).Return(nil)

		signup, err := svc.Signup(context.Background(), shiftID, userID, orgID)

		assert.NoError(t, err)
		assert.Equal(t, shiftID, signup.ShiftID)
		assert.Equal(t, userID, signup.UserID)
	})

	t.Run("rejects incomplete gating", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		user := readyUser(userID)
		user.HasAttendedOrientation = false
		m.userRepo.On("FindByID", mock.Anything, userID).Return(user, nil)

		_, err := svc.Signup(context.Background(), shiftID, userID, orgID)

		assert.Equal(t, errors.ErrGatingIncomplete, err)
		m.signupRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a full shift", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.userRepo.On("FindByID", mock.Anything, userID).Return(readyUser(userID), nil)
		m.shiftRepo.On("FindByIDInOrg", mock.Anything, shiftID, orgID).Return(shift, nil)
		m.signupRepo.On("CountByShift", mock.Anything, shiftID).Return(int64(10), nil)

		_, err := svc.Signup(context.Background(), shiftID, userID, orgID)

		assert.Equal(t, errors.ErrShiftFull, err)
	})

	t.Run("rejects an overlapping signup and accepts an adjacent one", func(t *testing.T) {
		// Existing signup covers 10:00-12:00. A shift 11:00-13:00 overlaps;
		// a shift 12:00-14:00 merely touches and is allowed.
		existing := []model.ShiftSignup{{
			ShiftID: uuid.New(),
			UserID:  userID,
			Shift:   &model.Shift{StartTime: start, EndTime: start.Add(2 * time.Hour)},
		}}

		overlapping := &model.Shift{ID: uuid.New(), StartTime: start.Add(time.Hour), EndTime: start.Add(3 * time.Hour), Capacity: 10}
		adjacent := &model.Shift{ID: uuid.New(), StartTime: start.Add(2 * time.Hour), EndTime: start.Add(4 * time.Hour), Capacity: 10}

		svc, m := newShiftServiceWithMocks()
		m.userRepo.On("FindByID", mock.Anything, userID).Return(readyUser(userID), nil)
		m.shiftRepo.On("FindByIDInOrg", mock.Anything, overlapping.ID, orgID).Return(overlapping, nil)
		m.shiftRepo.On("FindByIDInOrg", mock.Anything, adjacent.ID, orgID).Return(adjacent, nil)
		m.signupRepo.On("CountByShift", mock.Anything, mock.Anything).Return(int64(0), nil)
		m.signupRepo.On("ListByUserInOrg", mock.Anything, userID, orgID).Return(existing, nil)
		m.signupRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ShiftSignup")).Return(nil)

		_, err := svc.Signup(context.Background(), overlapping.ID, userID, orgID)
		assert.Equal(t, errors.ErrOverlappingShift, err)

		_, err = svc.Signup(context.Background(), adjacent.ID, userID, orgID)
		assert.NoError(t, err)
	})

	t.Run("reports a duplicate before the overlap check", func(t *testing.T) {
		existing := []model.ShiftSignup{{
			ShiftID: shiftID,
			UserID:  userID,
			Shift:   shift,
		}}

		svc, m := newShiftServiceWithMocks()
		m.userRepo.On("FindByID", mock.Anything, userID).Return(readyUser(userID), nil)
		m.shiftRepo.On("FindByIDInOrg", mock.Anything, shiftID, orgID).Return(shift, nil)
		m.signupRepo.On("CountByShift", mock.Anything, shiftID).Return(int64(4), nil)
		m.signupRepo.On("ListByUserInOrg", mock.Anything, userID, orgID).Return(existing, nil)

		_, err := svc.Signup(context.Background(), shiftID, userID, orgID)

		assert.Equal(t, errors.ErrAlreadySignedUp, err)
	})

	t.Run("translates a duplicate-key race into the duplicate error", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.userRepo.On("FindByID", mock.Anything, userID).Return(readyUser(userID), nil)
		m.shiftRepo.On("FindByIDInOrg", mock.Anything, shiftID, orgID).Return(shift, nil)
		m.signupRepo.On("CountByShift", mock.Anything, shiftID).Return(int64(4), nil)
		m.signupRepo.On("ListByUserInOrg", mock.Anything, userID, orgID).Return([]model.ShiftSignup{}, nil)
		m.signupRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ShiftSignup")).Return(gorm.ErrDuplicatedKey)

		_, err := svc.Signup(context.Background(), shiftID, userID, orgID)

		assert.Equal(t, errors.ErrAlreadySignedUp, err)
	})
}

func TestShiftService_CancelSignup(t *testing.T) {
	svc, m := newShiftServiceWithMocks()
	shiftID := uuid.New()
	userID := uuid.New()
	m.signupRepo.On("DeleteByShiftAndUser", mock.Anything, shiftID, userID).Return(nil)

	// Cancel is idempotent; a missing signup is not an error.
	assert.NoError(t, svc.CancelSignup(context.Background(), shiftID, userID))
	m.signupRepo.AssertExpectations(t)
}

func TestShiftService_Delete(t *testing.T) {
	orgID := uuid.New()
	shiftID := uuid.New()

	t.Run("deletes the shift with its signups", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.shiftRepo.On("FindByIDInOrg", mock.Anything, shiftID, orgID).Return(&model.Shift{ID: shiftID}, nil)
		m.shiftRepo.On("DeleteWithSignups", mock.Anything, shiftID).Return(nil)

		err := svc.Delete(context.Background(), shiftID, orgID)

		assert.NoError(t, err)
		m.shiftRepo.AssertCalled(t, "DeleteWithSignups", mock.Anything, shiftID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newShiftServiceWithMocks()
		m.shiftRepo.On("FindByIDInOrg", mock.Anything, shiftID, orgID).Return(nil, gorm.ErrRecordNotFound)

		err := svc.Delete(context.Background(), shiftID, orgID)

		assert.Equal(t, errors.ErrShiftNotFound, err)
		m.shiftRepo.AssertNotCalled(t, "DeleteWithSignups", mock.Anything, mock.Anything)
	})
}
