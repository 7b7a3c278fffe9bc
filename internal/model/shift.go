package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultShiftCapacity is the effectively-unbounded capacity applied when a
// shift is created without one.
const DefaultShiftCapacity = 999999

// Shift is a bounded time window with a capacity of volunteer slots.
// Invariant: StartTime < EndTime.
type Shift struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	OpportunityID uuid.UUID `json:"opportunityId" gorm:"type:char(36);not null;index"`
	StartTime     time.Time `json:"startTime" gorm:"not null;index"`
	EndTime       time.Time `json:"endTime" gorm:"not null"`
	Capacity      int       `json:"capacity" gorm:"not null;default:999999"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Relations
	Opportunity *Opportunity  `json:"opportunity,omitempty" gorm:"foreignKey:OpportunityID"`
	Signups     []ShiftSignup `json:"signups,omitempty" gorm:"foreignKey:ShiftID"`

	// SignupCount is populated by detail queries, not a column.
	SignupCount int64 `json:"signupCount,omitempty" gorm:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Overlaps reports whether the half-open interval [StartTime, EndTime)
// intersects [start, end). Shifts that merely touch do not overlap.
func (s *Shift) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && start.Before(s.EndTime)
}

// ShiftSummary is the reduced shift shape embedded in kiosk responses.
type ShiftSummary struct {
	ID               uuid.UUID `json:"id"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	OpportunityTitle string    `json:"opportunityTitle,omitempty"`
}
