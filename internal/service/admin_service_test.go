package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hopedeeds/internal/model"
)

func TestAdminService_Overview(t *testing.T) {
	orgID := uuid.New()
	userRepo := new(MockUserRepository)
	oppRepo := new(MockOpportunityRepository)
	shiftRepo := new(MockShiftRepository)
	signupRepo := new(MockSignupRepository)
	attRepo := new(MockAttendanceRepository)
	hourRepo := new(MockHourRepository)

	userRepo.On("CountVolunteers", mock.Anything, orgID).Return(int64(12), nil)
	userRepo.On("CountActiveVolunteers", mock.Anything, orgID).Return(int64(10), nil)
	userRepo.On("CountPendingBackground", mock.Anything, orgID).Return(int64(3), nil)
	userRepo.On("CountPendingOrientation", mock.Anything, orgID).Return(int64(2), nil)
	oppRepo.On("CountByOrg", mock.Anything, orgID).Return(int64(4), nil)
	shiftRepo.On("CountByOrg", mock.Anything, orgID).Return(int64(9), nil)
	shiftRepo.On("CountUpcoming", mock.Anything, orgID, mock.Anything).Return(int64(5), nil)
	hourRepo.On("SumByOrg", mock.Anything, orgID).Return(decimal.NewFromFloat(120.5), nil)
	hourRepo.On("SumByOrgSince", mock.Anything, orgID, mock.Anything).Return(decimal.NewFromFloat(14.25), nil)

	// A nil cache client degrades every lookup to a miss.
	svc := NewAdminService(userRepo, oppRepo, shiftRepo, signupRepo, attRepo, hourRepo, nil)
	ov, err := svc.Overview(context.Background(), orgID)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), ov.Volunteers.Total)
	assert.Equal(t, int64(10), ov.Volunteers.Active)
	assert.Equal(t, int64(3), ov.Volunteers.PendingBackground)
	assert.Equal(t, int64(2), ov.Volunteers.PendingOrientation)
	assert.Equal(t, int64(4), ov.Opportunities.Total)
	assert.Equal(t, int64(9), ov.Opportunities.TotalShifts)
	assert.Equal(t, int64(5), ov.Opportunities.UpcomingShifts)
	assert.Equal(t, "120.5", ov.Hours.AllTime.String())
	assert.Equal(t, "14.25", ov.Hours.ThisMonth.String())
}

func TestAdminService_UpcomingShifts(t *testing.T) {
	orgID := uuid.New()
	shiftRepo := new(MockShiftRepository)
	signupRepo := new(MockSignupRepository)

	full := model.Shift{ID: uuid.New(), Capacity: 5, Opportunity: &model.Opportunity{Title: "Food Bank Sorting"}}
	empty := model.Shift{ID: uuid.New(), Capacity: 8}

	shiftRepo.On("ListUpcoming", mock.Anything, orgID, mock.Anything, 20).Return([]model.Shift{full, empty}, nil)
	signupRepo.On("CountByShiftIDs", mock.Anything, []uuid.UUID{full.ID, empty.ID}).
		Return(map[uuid.UUID]int64{full.ID: 5}, nil)

	svc := NewAdminService(new(MockUserRepository), new(MockOpportunityRepository), shiftRepo, signupRepo, new(MockAttendanceRepository), new(MockHourRepository), nil)
	// Zero limit falls back to the default of 20.
	shifts, err := svc.UpcomingShifts(context.Background(), orgID, 0)

	assert.NoError(t, err)
	assert.Len(t, shifts, 2)
	assert.Equal(t, int64(5), shifts[0].SignedUp)
	assert.Equal(t, int64(0), shifts[0].RemainingSpots)
	assert.Equal(t, int64(0), shifts[1].SignedUp)
	assert.Equal(t, int64(8), shifts[1].RemainingSpots)
}
