package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hopedeeds/internal/cache"
	"hopedeeds/internal/model"
	"hopedeeds/internal/repository"
)

const (
	overviewCacheTTL = time.Minute

	defaultUpcomingLimit = 20
	defaultRecentLimit   = 50
)

// VolunteerStats is the volunteer block of the overview.
type VolunteerStats struct {
	Total              int64 `json:"total"`
	Active             int64 `json:"active"`
	PendingBackground  int64 `json:"pendingBackground"`
	PendingOrientation int64 `json:"pendingOrientation"`
}

// OpportunityStats is the opportunity block of the overview.
type OpportunityStats struct {
	Total          int64 `json:"total"`
	TotalShifts    int64 `json:"totalShifts"`
	UpcomingShifts int64 `json:"upcomingShifts"`
}

// HourStats is the hours block of the overview.
type HourStats struct {
	AllTime   decimal.Decimal `json:"allTime"`
	ThisMonth decimal.Decimal `json:"thisMonth"`
}

// Overview is the org-wide statistics rollup.
type Overview struct {
	Volunteers    VolunteerStats   `json:"volunteers"`
	Opportunities OpportunityStats `json:"opportunities"`
	Hours         HourStats        `json:"hours"`
}

// UpcomingShift is a shift with its remaining-capacity rollup.
type UpcomingShift struct {
	ID             uuid.UUID          `json:"id"`
	StartTime      time.Time          `json:"startTime"`
	EndTime        time.Time          `json:"endTime"`
	Capacity       int                `json:"capacity"`
	SignedUp       int64              `json:"signedUp"`
	RemainingSpots int64              `json:"remainingSpots"`
	Opportunity    *model.Opportunity `json:"opportunity"`
}

// AdminService produces the read-only statistics rollups for the
// dashboard. Results may be served from a short-TTL cache; the rollups
// are informational and tolerate a minute of staleness.
type AdminService interface {
	Overview(ctx context.Context, orgID uuid.UUID) (*Overview, error)
	UpcomingShifts(ctx context.Context, orgID uuid.UUID, limit int) ([]UpcomingShift, error)
	RecentAttendance(ctx context.Context, orgID uuid.UUID, limit int) ([]model.Attendance, error)
	PendingVolunteers(ctx context.Context, orgID uuid.UUID) ([]model.User, error)
}

type adminService struct {
	userRepo   repository.UserRepository
	oppRepo    repository.OpportunityRepository
	shiftRepo  repository.ShiftRepository
	signupRepo repository.SignupRepository
	attRepo    repository.AttendanceRepository
	hourRepo   repository.HourRepository
	cache      *cache.Client
}

// NewAdminService creates a new admin statistics service.
func NewAdminService(
	userRepo repository.UserRepository,
	oppRepo repository.OpportunityRepository,
	shiftRepo repository.ShiftRepository,
	signupRepo repository.SignupRepository,
	attRepo repository.AttendanceRepository,
	hourRepo repository.HourRepository,
	cacheClient *cache.Client,
) AdminService {
	return &adminService{
		userRepo:   userRepo,
		oppRepo:    oppRepo,
		shiftRepo:  shiftRepo,
		signupRepo: signupRepo,
		attRepo:    attRepo,
		hourRepo:   hourRepo,
		cache:      cacheClient,
	}
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func (s *adminService) Overview(ctx context.Context, orgID uuid.UUID) (*Overview, error) {
	cacheKey := fmt.Sprintf("admin:overview:%s", orgID)
	if data, _ := s.cache.Get(ctx, cacheKey); data != nil {
		var cached Overview
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	now := time.Now()
	var (
		ov  Overview
		err error
	)

	if ov.Volunteers.Total, err = s.userRepo.CountVolunteers(ctx, orgID); err != nil {
		return nil, fmt.Errorf("count volunteers: %w", err)
	}
	if ov.Volunteers.Active, err = s.userRepo.CountActiveVolunteers(ctx, orgID); err != nil {
		return nil, fmt.Errorf("count active volunteers: %w", err)
	}
	if ov.Volunteers.PendingBackground, err = s.userRepo.CountPendingBackground(ctx, orgID); err != nil {
		return nil, fmt.Errorf("count pending background: %w", err)
	}
	if ov.Volunteers.PendingOrientation, err = s.userRepo.CountPendingOrientation(ctx, orgID); err != nil {
		return nil, fmt.Errorf("count pending orientation: %w", err)
	}

	if ov.Opportunities.Total, err = s.oppRepo.CountByOrg(ctx, orgID); err != nil {
		return nil, fmt.Errorf("count opportunities: %w", err)
	}
	if ov.Opportunities.TotalShifts, err = s.shiftRepo.CountByOrg(ctx, orgID); err != nil {
		return nil, fmt.Errorf("count shifts: %w", err)
	}
	if ov.Opportunities.UpcomingShifts, err = s.shiftRepo.CountUpcoming(ctx, orgID, now); err != nil {
		return nil, fmt.Errorf("count upcoming shifts: %w", err)
	}

	if ov.Hours.AllTime, err = s.hourRepo.SumByOrg(ctx, orgID); err != nil {
		return nil, fmt.Errorf("sum hours: %w", err)
	}
	if ov.Hours.ThisMonth, err = s.hourRepo.SumByOrgSince(ctx, orgID, startOfMonth(now)); err != nil {
		return nil, fmt.Errorf("sum hours this month: %w", err)
	}

	if payload, err := json.Marshal(&ov); err == nil {
		_ = s.cache.Set(ctx, cacheKey, payload, overviewCacheTTL)
	}
	return &ov, nil
}

func (s *adminService) UpcomingShifts(ctx context.Context, orgID uuid.UUID, limit int) ([]UpcomingShift, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}

	shifts, err := s.shiftRepo.ListUpcoming(ctx, orgID, time.Now(), limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming shifts: %w", err)
	}

	ids := make([]uuid.UUID, len(shifts))
	for i := range shifts {
		ids[i] = shifts[i].ID
	}
	counts, err := s.signupRepo.CountByShiftIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count signups: %w", err)
	}

	result := make([]UpcomingShift, 0, len(shifts))
	for i := range shifts {
		signedUp := counts[shifts[i].ID]
		result = append(result, UpcomingShift{
			ID:             shifts[i].ID,
			StartTime:      shifts[i].StartTime,
			EndTime:        shifts[i].EndTime,
			Capacity:       shifts[i].Capacity,
			SignedUp:       signedUp,
			RemainingSpots: int64(shifts[i].Capacity) - signedUp,
			Opportunity:    shifts[i].Opportunity,
		})
	}
	return result, nil
}

func (s *adminService) RecentAttendance(ctx context.Context, orgID uuid.UUID, limit int) ([]model.Attendance, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.attRepo.ListRecentByOrg(ctx, orgID, limit)
}

func (s *adminService) PendingVolunteers(ctx context.Context, orgID uuid.UUID) ([]model.User, error) {
	return s.userRepo.ListPendingByOrg(ctx, orgID)
}
